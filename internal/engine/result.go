package engine

import (
	"github.com/dshills/vimotion/internal/engine/cursor"
	"github.com/dshills/vimotion/internal/engine/motion"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/input/mode"
)

// MotionResult is the effect of an applied command.
type MotionResult struct {
	// Row and Col are the new cursor position.
	Row int
	Col int

	// LastCol is the column to remember for vertical motions.
	// It is meaningful only when RememberCol is set; vertical motions
	// leave it unset so the remembered column survives them.
	LastCol     int
	RememberCol bool

	// Mode is the mode after the command.
	Mode mode.Mode

	// Refresh requests a redraw even if position and mode are unchanged
	// (buffer edits, mode indicator changes).
	Refresh bool
}

// NeedsRedraw returns true if a view showing prev in prevMode is out of
// date after this result.
func (r MotionResult) NeedsRedraw(prev cursor.Cursor, prevMode mode.Mode) bool {
	return r.Row != prev.Row ||
		r.Col != prev.Col ||
		r.Mode != prevMode ||
		r.Refresh
}

// Status indicates whether a key was applied.
type Status uint8

const (
	// StatusRejected means the key had no effect.
	StatusRejected Status = iota
	// StatusApplied means the key changed the engine state.
	StatusApplied
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusRejected:
		return "rejected"
	case StatusApplied:
		return "applied"
	default:
		return "unknown"
	}
}

// Reason explains a rejection. Reasons are diagnostic only; every rejection
// looks the same to callers.
type Reason uint8

const (
	ReasonNone Reason = iota
	// ReasonUnknownKey means the code is not bound in the current mode.
	ReasonUnknownKey
	// ReasonWrongMode means the command is bound but meaningless in the
	// current mode (Escape in normal mode).
	ReasonWrongMode
	// ReasonUnsupported means the command is recognized but not implemented.
	ReasonUnsupported
	// ReasonNothingToDelete means delete-char ran on an empty line.
	ReasonNothingToDelete
)

// String returns a string representation of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonUnknownKey:
		return "unknown key"
	case ReasonWrongMode:
		return "wrong mode"
	case ReasonUnsupported:
		return "unsupported"
	case ReasonNothingToDelete:
		return "nothing to delete"
	default:
		return "unknown"
	}
}

// Outcome is the result of handling one key.
type Outcome struct {
	// Status indicates whether the key was applied.
	Status Status

	// Command is the command the key resolved to, if any.
	Command key.Command

	// Result is set for applied outcomes.
	Result MotionResult

	// Reason is set for rejected outcomes.
	Reason Reason

	// via records which search phase produced a word motion target.
	via motion.Phase
}

// IsApplied returns true if the key changed the engine state.
func (o Outcome) IsApplied() bool {
	return o.Status == StatusApplied
}

// applied creates an applied outcome.
func applied(cmd key.Command, r MotionResult) Outcome {
	return Outcome{Status: StatusApplied, Command: cmd, Result: r}
}

// rejected creates a rejected outcome.
func rejected(cmd key.Command, reason Reason) Outcome {
	return Outcome{Status: StatusRejected, Command: cmd, Reason: reason}
}

// moveTo creates a result at row and col in mode m that remembers col.
func moveTo(row, col int, m mode.Mode) MotionResult {
	return MotionResult{Row: row, Col: col, LastCol: col, RememberCol: true, Mode: m}
}

// WithRefresh returns a copy of the result that requests a redraw.
func (r MotionResult) WithRefresh() MotionResult {
	r.Refresh = true
	return r
}
