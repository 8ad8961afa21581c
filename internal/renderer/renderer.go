package renderer

import (
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/vimotion/internal/input/mode"
	"github.com/dshills/vimotion/internal/renderer/backend"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the renderer colors.
func WithTheme(t Theme) Option {
	return func(r *Renderer) {
		r.theme = t
	}
}

// Renderer draws pages onto a backend.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	theme   Theme

	page    Page
	hasPage bool
	blinkOn bool
	top     int
	frames  uint64

	// Cursor cell screen position of the last frame
	cursorX, cursorY int
	cursorVisible    bool
}

// New creates a new renderer on b.
func New(b backend.Backend, opts ...Option) *Renderer {
	r := &Renderer{
		backend: b,
		theme:   DefaultTheme(),
		blinkOn: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetTheme changes the colors and redraws the current page.
func (r *Renderer) SetTheme(t Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.theme = t
	if r.hasPage {
		r.render()
	}
}

// Theme returns the current colors.
func (r *Renderer) Theme() Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.theme
}

// RenderPage draws p and restarts the blink in the "on" phase.
func (r *Renderer) RenderPage(p Page) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.page = p
	r.hasPage = true
	r.blinkOn = true
	r.render()
}

// Redraw draws the current page again, after a resize for example.
func (r *Renderer) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasPage {
		r.render()
	}
}

// Blink flips the cursor cell between its two color pairs.
func (r *Renderer) Blink() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.hasPage || !r.cursorVisible {
		return
	}
	r.blinkOn = !r.blinkOn
	r.drawCursorCell()
	r.backend.Show()
}

// BlinkOn returns true if the cursor cell shows its "on" colors.
func (r *Renderer) BlinkOn() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blinkOn
}

// FrameCount returns the number of full frames drawn.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// render draws the whole page. Caller holds the lock.
func (r *Renderer) render() {
	width, height := r.backend.Size()
	textRows := max(height-1, 0)

	r.backend.Clear()
	r.scrollTo(textRows)

	r.cursorVisible = false
	for y := 0; y < textRows; y++ {
		i := r.top + y
		if i >= len(r.page.Lines) {
			break
		}
		r.drawLine(i, y, width)
	}

	if height > 0 {
		r.drawCommandWindow(height-1, width)
	}

	r.backend.SetCursorStyle(cursorStyle(r.page.Mode))
	if r.cursorVisible {
		r.drawCursorCell()
		r.backend.ShowCursor(r.cursorX, r.cursorY)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
	r.frames++
}

// scrollTo keeps the cursor row inside a window of rows screen rows.
func (r *Renderer) scrollTo(rows int) {
	if rows <= 0 {
		r.top = 0
		return
	}
	if r.page.Row < r.top {
		r.top = r.page.Row
	}
	if r.page.Row >= r.top+rows {
		r.top = r.page.Row - rows + 1
	}
	r.top = max(r.top, 0)
}

// drawLine draws document line i on screen row y.
func (r *Renderer) drawLine(i, y, width int) {
	x := 0
	for col, ch := range []rune(r.page.Lines[i]) {
		if i == r.page.Row && col == r.page.Col {
			r.markCursor(x, y, width)
		}
		x = r.putRune(x, y, width, ch, backend.DefaultStyle)
	}
	if i == r.page.Row && r.page.Col >= runeCount(r.page.Lines[i]) {
		r.markCursor(x, y, width)
	}
}

// markCursor records the cursor cell if it is on screen.
func (r *Renderer) markCursor(x, y, width int) {
	if x < width {
		r.cursorX, r.cursorY = x, y
		r.cursorVisible = true
	}
}

// drawCursorCell draws the highlighted cell in the current blink phase.
func (r *Renderer) drawCursorCell() {
	ch := ' '
	if _, cell, _, ok := r.page.Split(r.page.Row); ok {
		ch = []rune(cell)[0]
	}
	if runewidth.RuneWidth(ch) == 0 {
		ch = ' '
	}
	r.backend.SetCell(r.cursorX, r.cursorY, ch, r.theme.CursorStyle(r.blinkOn))
}

// drawCommandWindow draws the mode indicator on screen row y.
func (r *Renderer) drawCommandWindow(y, width int) {
	style := r.theme.StatusStyle()
	x := 0
	for _, ch := range r.page.CommandText() {
		x = r.putRune(x, y, width, ch, style)
	}
	for ; x < width; x++ {
		r.backend.SetCell(x, y, ' ', style)
	}
}

// putRune draws ch at x and returns the next free column. Zero-width
// characters such as tab take one blank cell.
func (r *Renderer) putRune(x, y, width int, ch rune, style backend.Style) int {
	w := runewidth.RuneWidth(ch)
	if w == 0 {
		ch, w = ' ', 1
	}
	if x+w <= width {
		r.backend.SetCell(x, y, ch, style)
	}
	return x + w
}

func runeCount(s string) int {
	return len([]rune(s))
}

// cursorStyle maps a mode's cursor shape to the backend's.
func cursorStyle(m mode.Mode) backend.CursorStyle {
	if m.CursorStyle() == mode.CursorBar {
		return backend.CursorBar
	}
	return backend.CursorBlock
}
