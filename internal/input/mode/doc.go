// Package mode provides the modal editing states of the motion engine.
//
// Two modes exist:
//   - Normal: navigation, deletion, entering insert mode
//   - Insert: text input until Escape
//
// # Mode Lifecycle
//
//	┌─────────┐      i       ┌─────────┐
//	│ Normal  │ ───────────▶ │ Insert  │
//	└─────────┘              └─────────┘
//	     ▲                        │
//	     │        <Esc>           │
//	     └────────────────────────┘
//
// The engine holds the current Mode; this package only describes modes
// (names, status-line indicator, cursor style).
package mode
