package engine

import (
	"github.com/dshills/vimotion/internal/input/mode"
)

// Logger receives engine diagnostics.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithLogger sets the logger used for rejected keys and motion fallbacks.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCursor sets the initial cursor position. The position is clamped to
// the document.
func WithCursor(row, col int) Option {
	return func(e *Engine) {
		e.initRow = row
		e.initCol = col
	}
}

// WithMode sets the initial mode.
func WithMode(m mode.Mode) Option {
	return func(e *Engine) {
		e.state.Mode = m
	}
}
