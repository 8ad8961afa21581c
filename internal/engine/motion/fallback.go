package motion

import (
	"github.com/dshills/vimotion/internal/engine/buffer"
)

// Direction is the order in which rows are walked after the same-line
// search fails.
type Direction int

const (
	// Forward walks rows in increasing order.
	Forward Direction = 1
	// Backward walks rows in decreasing order.
	Backward Direction = -1
)

// Phase identifies which part of a Fallback produced a target.
type Phase uint8

const (
	// PhaseSameLine means the target is on the starting row.
	PhaseSameLine Phase = iota
	// PhaseLineWalk means a later row produced the target.
	PhaseLineWalk
	// PhaseDefault means no row matched and the default applied.
	PhaseDefault
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSameLine:
		return "same-line"
	case PhaseLineWalk:
		return "line-walk"
	case PhaseDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Target is the result of a motion search.
type Target struct {
	buffer.Point
	Via Phase
}

// SameLineFunc searches line starting after col.
// found is false when the line holds no destination.
type SameLineFunc func(line *buffer.Line, col int) (dest int, found bool)

// LineFunc searches a whole line that the walk has moved onto.
type LineFunc func(line *buffer.Line) (dest int, found bool)

// DefaultFunc picks a column on the last row visited when every search failed.
type DefaultFunc func(line *buffer.Line) int

// Fallback is the multiline search shared by the word motions.
type Fallback struct {
	SameLine  SameLineFunc
	NextLine  LineFunc
	Default   DefaultFunc
	Direction Direction
}

// Search runs the fallback from p over buf.
func (f Fallback) Search(buf *buffer.Buffer, p buffer.Point) Target {
	line := buf.Line(p.Row)
	if f.SameLine != nil {
		if col, ok := f.SameLine(line, p.Col); ok {
			return Target{Point: buffer.Point{Row: line.Row(), Col: col}, Via: PhaseSameLine}
		}
	}

	dir := f.Direction
	if dir == 0 {
		dir = Forward
	}

	last := line
	for row := line.Row() + int(dir); row >= 0 && row < buf.LineCount(); row += int(dir) {
		last = buf.Line(row)
		if f.NextLine == nil {
			continue
		}
		if col, ok := f.NextLine(last); ok {
			return Target{Point: buffer.Point{Row: row, Col: col}, Via: PhaseLineWalk}
		}
	}

	col := last.Last()
	if f.Default != nil {
		col = f.Default(last)
	}
	return Target{Point: buffer.Point{Row: last.Row(), Col: col}, Via: PhaseDefault}
}
