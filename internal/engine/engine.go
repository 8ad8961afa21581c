package engine

import (
	"errors"
	"fmt"

	"github.com/dshills/vimotion/internal/engine/buffer"
	"github.com/dshills/vimotion/internal/engine/cursor"
	"github.com/dshills/vimotion/internal/engine/motion"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/input/mode"
)

// State is the engine's mutable session state.
type State struct {
	Cursor cursor.Cursor
	Mode   mode.Mode
}

// Engine is the modal motion/edit engine.
type Engine struct {
	buf    *buffer.Buffer
	state  State
	logger Logger

	initRow int
	initCol int
}

// New creates an engine over a buffer holding text, one element per line.
func New(text []string, opts ...Option) (*Engine, error) {
	buf, err := buffer.New(text)
	if err != nil {
		if errors.Is(err, buffer.ErrEmptyText) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("creating buffer: %w", err)
	}
	return NewWithBuffer(buf, opts...), nil
}

// NewWithBuffer creates an engine over an existing buffer.
// The engine takes ownership of buf.
func NewWithBuffer(buf *buffer.Buffer, opts ...Option) *Engine {
	e := &Engine{
		buf:    buf,
		logger: nopLogger{},
		state:  State{Mode: mode.Normal},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.state.Cursor = cursor.New(e.initRow, e.initCol)
	e.state.Cursor = e.clamp(e.state).Cursor
	e.state.Cursor = e.state.Cursor.Remember(e.state.Cursor.Col)
	return e
}

// Buffer returns the engine's buffer.
func (e *Engine) Buffer() *buffer.Buffer {
	return e.buf
}

// Lines returns a snapshot of the document, one string per row.
func (e *Engine) Lines() []string {
	return e.buf.AllLines()
}

// State returns the current session state.
func (e *Engine) State() State {
	return e.state
}

// Cursor returns the current cursor.
func (e *Engine) Cursor() cursor.Cursor {
	return e.state.Cursor
}

// Mode returns the current mode.
func (e *Engine) Mode() mode.Mode {
	return e.state.Mode
}

// HandleKey handles code at the current cursor position.
func (e *Engine) HandleKey(code key.Code) Outcome {
	return e.Handle(e.state.Cursor.Row, e.state.Cursor.Col, code)
}

// Handle handles code with the cursor at row and col. The remembered
// column and mode come from the engine. On an applied outcome the engine
// state is updated from the result; on a rejected outcome nothing changes.
func (e *Engine) Handle(row, col int, code key.Code) Outcome {
	s := e.state
	s.Cursor = s.Cursor.MoveTo(row, col)
	s = e.clamp(s)

	out := dispatch(e.buf, s, code)
	if !out.IsApplied() {
		e.logger.Debug("key %s rejected in %s mode: %s", code, s.Mode, out.Reason)
		return out
	}

	if out.via != motion.PhaseSameLine {
		e.logger.Debug("%s resolved by %s to %d:%d", out.Command, out.via, out.Result.Row, out.Result.Col)
	}

	e.state = Apply(s, out.Result)
	return out
}

// Apply folds a motion result into s and returns the new state.
func Apply(s State, r MotionResult) State {
	s.Cursor = s.Cursor.MoveTo(r.Row, r.Col)
	if r.RememberCol {
		s.Cursor = s.Cursor.Remember(r.LastCol)
	}
	s.Mode = r.Mode
	return s
}

// clamp keeps the cursor inside the document. Normal mode limits the column
// to the last content character; insert mode may sit one past it.
func (e *Engine) clamp(s State) State {
	line := e.buf.Line(s.Cursor.Row)
	c := s.Cursor.MoveTo(line.Row(), s.Cursor.Col)
	if s.Mode == mode.Insert {
		c.Col = min(max(c.Col, 0), line.Length())
	} else {
		c = c.Clamp(e.buf)
	}
	s.Cursor = c
	return s
}
