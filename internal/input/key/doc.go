// Package key provides the key-code space and command table for the
// motion engine.
//
// This package defines:
//
//   - Code: a numeric key code in the classic ASCII keyboard code space
//     (27 is Escape, printable characters are their character codes)
//   - Command: the enumerated NORMAL-mode commands
//   - Lookup: the mapping from codes to commands, applied at the input
//     boundary so the engine never switches on raw numbers
//
// # Key Specifications
//
// ParseSequence turns a string into codes for scripted and headless input.
// Plain characters map to their own codes; Vim-style names in angle
// brackets name special keys:
//
//	codes, err := key.ParseSequence("wwe<Esc>ihi<Esc>")
package key
