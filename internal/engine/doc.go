// Package engine provides the modal motion/edit engine.
//
// The engine package serves as the facade that combines the line buffer,
// the cursor state, and the modal state machine into a keystroke-driven
// API: given a key code it computes the next cursor position, the next
// mode, and any buffer mutation.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: lines with saturating row and column arithmetic
//   - charclass: word/symbol/space classification
//   - cursor: row, column, and remembered column
//   - motion: word-forward and word-end searches
//
// Key codes are resolved to commands by package key before dispatch, so
// the command table is keyed by an enumerated key.Command.
//
// # Outcomes
//
// Every key yields an Outcome. An applied outcome carries a MotionResult and
// has already been folded into the engine's state. A rejected outcome (an
// unmapped key, Escape in normal mode, a command that cannot run) carries no
// payload and leaves the state untouched; callers must not redraw.
//
// # Basic Usage
//
//	e, err := engine.New([]string{"foo bar", "", "baz"})
//	if err != nil {
//	    return err
//	}
//
//	out := e.HandleKey(key.CodeW)     // word-forward
//	if out.IsApplied() {
//	    fmt.Println(out.Result.Row, out.Result.Col) // 0 4
//	}
//
// # Thread Safety
//
// The engine is single-threaded: each key runs to completion before the next
// is accepted. Callers that share an Engine across goroutines must serialize
// access themselves.
package engine
