package markup

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dshills/vimotion/internal/renderer"
	"github.com/dshills/vimotion/internal/renderer/backend"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile forces a color profile instead of detecting one from the
// output.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.lg.SetColorProfile(p)
	}
}

// Renderer renders pages as strings.
type Renderer struct {
	lg     *lipgloss.Renderer
	cursor lipgloss.Style
	status lipgloss.Style
}

// New creates a renderer for output written to w.
func New(w io.Writer, theme renderer.Theme, opts ...Option) *Renderer {
	r := &Renderer{lg: lipgloss.NewRenderer(w)}
	for _, opt := range opts {
		opt(r)
	}
	r.SetTheme(theme)
	return r
}

// SetTheme changes the colors.
func (r *Renderer) SetTheme(theme renderer.Theme) {
	r.cursor = r.style(theme.CursorForeground, theme.CursorBackground)
	r.status = r.style(theme.StatusForeground, theme.StatusBackground)
}

// Render returns the page lines followed by the command window line.
func (r *Renderer) Render(p renderer.Page) string {
	var sb strings.Builder
	for i, line := range p.Lines {
		if before, cell, after, ok := p.Split(i); ok {
			sb.WriteString(before)
			sb.WriteString(r.cursor.Render(cell))
			sb.WriteString(after)
		} else {
			sb.WriteString(line)
		}
		sb.WriteByte('\n')
	}
	if text := p.CommandText(); text != "" {
		sb.WriteString(r.status.Render(text))
	}
	return sb.String()
}

// style builds a style from two theme colors. Unknown colors are left unset.
func (r *Renderer) style(fg, bg string) lipgloss.Style {
	st := r.lg.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if hex, ok := backend.HexColor(fg); ok {
		st = st.Foreground(lipgloss.Color(hex))
	}
	if hex, ok := backend.HexColor(bg); ok {
		st = st.Background(lipgloss.Color(hex))
	}
	return st
}
