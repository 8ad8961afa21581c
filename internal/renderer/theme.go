package renderer

import "github.com/dshills/vimotion/internal/renderer/backend"

// Theme holds the renderer colors. Colors are names or #rrggbb values.
type Theme struct {
	CursorForeground string
	CursorBackground string
	StatusForeground string
	StatusBackground string
}

// DefaultTheme returns the default colors.
func DefaultTheme() Theme {
	return Theme{
		CursorForeground: "#2c3331",
		CursorBackground: "white",
		StatusForeground: "",
		StatusBackground: "",
	}
}

// CursorStyle returns the style of the cursor cell in the given blink phase.
// The "off" phase swaps the colors.
func (t Theme) CursorStyle(on bool) backend.Style {
	if on {
		return backend.Style{Foreground: t.CursorForeground, Background: t.CursorBackground}
	}
	return backend.Style{Foreground: t.CursorBackground, Background: t.CursorForeground}
}

// StatusStyle returns the style of the command window.
func (t Theme) StatusStyle() backend.Style {
	return backend.Style{Foreground: t.StatusForeground, Background: t.StatusBackground}
}
