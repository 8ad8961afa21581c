// Package cursor provides the cursor state held by the motion engine.
//
// A Cursor carries the current row and column plus the remembered column
// used by vertical motions. Moving down onto a shorter line clamps the
// column for display but keeps LastCol, so moving on to a longer line
// returns to the remembered column:
//
//	c := cursor.New(0, 5)      // LastCol 5
//	c = c.MoveTo(1, 2)         // shorter line: Col 2, LastCol still 5
//	c = c.Remember(c.Col)      // horizontal motions overwrite LastCol
//
// Thread Safety:
//
// Cursor is an immutable value type and safe for concurrent use.
package cursor
