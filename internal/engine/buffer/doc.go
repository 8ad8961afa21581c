// Package buffer provides the line-indexed text buffer used by the motion
// engine.
//
// The buffer package provides:
//
//   - Line: one line of characters terminated by an EOL marker, with
//     saturating column arithmetic (Offset, Last), insertion and removal
//   - Buffer: a fixed sequence of lines with saturating row arithmetic
//   - Point: a row/column position
//
// Basic usage:
//
//	buf, err := buffer.New([]string{"foo bar", "", "baz"})
//	if err != nil {
//	    return err
//	}
//
//	line := buf.Offset(0, +1)   // row 1; Offset never goes out of range
//	col := line.Offset(0, -5)   // 0; columns saturate the same way
//
//	buf.Line(0).Insert('x', 3)  // "fooxbar"
//	buf.Line(0).Remove(3)       // back to "foo bar"
//
// Saturation:
//
// Neither rows nor columns are ever reported out of range. Offsetting past
// either end clamps to the nearest valid position, which is how cursor
// motions stop at line and document boundaries.
//
// Thread Safety:
//
// Buffer and Line are not safe for concurrent use.
package buffer
