package cursor

import (
	"fmt"

	"github.com/dshills/vimotion/internal/engine/buffer"
)

// Cursor is the engine's cursor state.
// Cursor is an immutable value type.
type Cursor struct {
	// Row indexes into the buffer's lines.
	Row int

	// Col indexes into the row's content.
	Col int

	// LastCol is the remembered column used by vertical motions.
	LastCol int
}

// New creates a cursor at row and col that remembers col.
func New(row, col int) Cursor {
	row = max(row, 0)
	col = max(col, 0)
	return Cursor{Row: row, Col: col, LastCol: col}
}

// Point returns the cursor position.
func (c Cursor) Point() buffer.Point {
	return buffer.Point{Row: c.Row, Col: c.Col}
}

// MoveTo returns a cursor at row and col that keeps the remembered column.
func (c Cursor) MoveTo(row, col int) Cursor {
	c.Row = row
	c.Col = col
	return c
}

// Remember returns a cursor whose remembered column is col.
func (c Cursor) Remember(col int) Cursor {
	c.LastCol = col
	return c
}

// Clamp returns a cursor whose row and column are valid for buf.
// The column is limited to the row's last content column.
func (c Cursor) Clamp(buf *buffer.Buffer) Cursor {
	line := buf.Line(c.Row)
	c.Row = line.Row()
	c.Col = line.Offset(c.Col, 0)
	return c
}

// Equals returns true if two cursors are at the same position.
// The remembered column is not compared.
func (c Cursor) Equals(other Cursor) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d last=%d)", c.Row, c.Col, c.LastCol)
}
