// Package motion implements word motions over a line buffer.
//
// Word motions search for the next semantically meaningful column, possibly
// on a later line. Each motion is a Fallback: a same-line search from the
// cursor, then a per-line search over the following rows, then a default
// position on the last row visited.
//
//	target := motion.WordForward(buf, buffer.Point{Row: 0, Col: 0})
//	// target.Point is the destination; target.Via says which phase found it.
//
// Characters are classified with package charclass. Scans never leave the
// content of a line; the EOL marker reads as whitespace.
package motion
