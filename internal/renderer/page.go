package renderer

import (
	"github.com/dshills/vimotion/internal/engine"
	"github.com/dshills/vimotion/internal/input/mode"
)

// Page is a snapshot of everything the renderer draws.
type Page struct {
	Lines []string
	Row   int
	Col   int
	Mode  mode.Mode
}

// PageOf captures the current page of e.
func PageOf(e *engine.Engine) Page {
	c := e.Cursor()
	return Page{
		Lines: e.Lines(),
		Row:   c.Row,
		Col:   c.Col,
		Mode:  e.Mode(),
	}
}

// Split returns the text before the cursor cell, the cursor cell, and the
// text after it for line i. The cursor cell is a blank when the cursor is
// past the end of the line. ok is false for lines without the cursor.
func (p Page) Split(i int) (before, cell, after string, ok bool) {
	if i != p.Row || i < 0 || i >= len(p.Lines) {
		return "", "", "", false
	}
	rs := []rune(p.Lines[i])
	col := max(p.Col, 0)
	if col >= len(rs) {
		return string(rs), " ", "", true
	}
	return string(rs[:col]), string(rs[col]), string(rs[col+1:]), true
}

// CommandText returns the command window text.
func (p Page) CommandText() string {
	return p.Mode.Indicator()
}
