package buffer

import (
	"errors"
	"strings"
)

// Errors returned by buffer operations.
var (
	// ErrEmptyText indicates a buffer was seeded with no lines.
	ErrEmptyText = errors.New("buffer requires at least one line")
)

// Buffer is an ordered sequence of lines. Row numbers index into it.
// The number of lines is fixed at creation; only line contents change.
//
// Buffer is not safe for concurrent use. The engine owns it and mutates it
// only in response to a dispatched key.
type Buffer struct {
	lines []*Line
}

// New creates a buffer holding one line per element of text.
func New(text []string) (*Buffer, error) {
	if len(text) == 0 {
		return nil, ErrEmptyText
	}

	b := &Buffer{lines: make([]*Line, len(text))}
	for i, s := range text {
		b.lines[i] = NewLine(s, i)
	}
	return b, nil
}

// NewFromString splits s on newlines and creates a buffer from the parts.
// A trailing newline does not produce an extra empty line.
func NewFromString(s string) (*Buffer, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return New(strings.Split(s, "\n"))
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at row, clamped to the valid row range.
func (b *Buffer) Line(row int) *Line {
	return b.Offset(row, 0)
}

// Offset returns the line at row+diff, saturated to [0, LineCount()-1].
func (b *Buffer) Offset(row, diff int) *Line {
	newRow := max(0, row+diff)
	if newRow >= len(b.lines) {
		newRow = max(0, len(b.lines)-1)
	}
	return b.lines[newRow]
}

// LastLine returns the final line of the buffer.
func (b *Buffer) LastLine() *Line {
	return b.lines[len(b.lines)-1]
}

// AllLines returns a snapshot of every line's content in row order.
func (b *Buffer) AllLines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

// Text returns the whole buffer joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.AllLines(), "\n")
}
