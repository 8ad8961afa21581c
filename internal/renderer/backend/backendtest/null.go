// Package backendtest provides an in-memory terminal backend for tests of
// code that draws through backend.Backend.
package backendtest

import (
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/renderer/backend"
)

var _ backend.Backend = (*NullBackend)(nil)

// KeyEvent returns the key event that types code.
func KeyEvent(code key.Code) backend.Event {
	switch code {
	case key.CodeEscape:
		return backend.Event{Type: backend.EventKey, Key: backend.KeyEscape}
	case key.CodeTab:
		return backend.Event{Type: backend.EventKey, Key: backend.KeyTab}
	case key.CodeEnter:
		return backend.Event{Type: backend.EventKey, Key: backend.KeyEnter}
	case key.CodeBackspace:
		return backend.Event{Type: backend.EventKey, Key: backend.KeyBackspace}
	default:
		return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: code.Rune()}
	}
}

// Cell is a cell recorded by NullBackend.
type Cell struct {
	Rune  rune
	Style backend.Style
}

// NullBackend is an in-memory backend.Backend that records what is drawn.
type NullBackend struct {
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   backend.CursorStyle
	shows         int
	events        chan backend.Event
	closed        chan struct{}
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		events: make(chan backend.Event, 100),
		closed: make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.Clear()
	return nil
}

func (b *NullBackend) Shutdown() {
	select {
	case <-b.closed:
	default:
		close(b.closed)
	}
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, r rune, style backend.Style) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = Cell{Rune: r, Style: style}
	}
}

// GetCell returns the cell at the given position.
func (b *NullBackend) GetCell(x, y int) Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height && b.cells != nil {
		return b.cells[y][x]
	}
	return Cell{Rune: ' '}
}

func (b *NullBackend) Clear() {
	b.cells = make([][]Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = Cell{Rune: ' '}
		}
	}
}

func (b *NullBackend) Show() {
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style backend.CursorStyle) {
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() backend.Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.closed:
		return backend.Event{Type: backend.EventNone}
	}
}

func (b *NullBackend) PostEvent(event backend.Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Row returns the text of screen row y with trailing blanks removed.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height || b.cells == nil {
		return ""
	}
	rs := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		rs = append(rs, c.Rune)
	}
	end := len(rs)
	for end > 0 && rs[end-1] == ' ' {
		end--
	}
	return string(rs[:end])
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style for testing.
func (b *NullBackend) CursorStyleValue() backend.CursorStyle {
	return b.cursorStyle
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	return b.shows
}
