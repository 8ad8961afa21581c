package engine

import (
	"github.com/dshills/vimotion/internal/engine/buffer"
	"github.com/dshills/vimotion/internal/engine/motion"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/input/mode"
)

// commandFunc runs a command against buf in state s.
type commandFunc func(buf *buffer.Buffer, s State) Outcome

// normalCommands is the normal-mode command table.
var normalCommands = map[key.Command]commandFunc{
	key.CommandLeft:         left,
	key.CommandRight:        right,
	key.CommandDown:         down,
	key.CommandUp:           up,
	key.CommandLineStart:    lineStart,
	key.CommandLineEnd:      lineEnd,
	key.CommandDeleteChar:   deleteChar,
	key.CommandInsert:       enterInsert,
	key.CommandEscape:       escapeNormal,
	key.CommandWordForward:  wordForward,
	key.CommandWordEnd:      wordEnd,
	key.CommandWordBackward: wordBackward,
}

// dispatch resolves code in the current mode and runs the command.
func dispatch(buf *buffer.Buffer, s State, code key.Code) Outcome {
	if s.Mode == mode.Insert {
		return dispatchInsert(buf, s, code)
	}

	cmd, ok := key.Lookup(code)
	if !ok {
		return rejected(key.CommandNone, ReasonUnknownKey)
	}
	fn, ok := normalCommands[cmd]
	if !ok {
		return rejected(cmd, ReasonUnknownKey)
	}
	return fn(buf, s)
}

// dispatchInsert handles insert mode: Escape leaves, text is typed.
func dispatchInsert(buf *buffer.Buffer, s State, code key.Code) Outcome {
	if code == key.CodeEscape {
		return escapeInsert(buf, s)
	}
	if !code.IsText() {
		return rejected(key.CommandNone, ReasonUnknownKey)
	}
	return insertChar(buf, s, code.Rune())
}

func left(buf *buffer.Buffer, s State) Outcome {
	c := s.Cursor
	col := buf.Line(c.Row).Offset(c.Col, -1)
	return applied(key.CommandLeft, moveTo(c.Row, col, s.Mode))
}

func right(buf *buffer.Buffer, s State) Outcome {
	c := s.Cursor
	col := buf.Line(c.Row).Offset(c.Col, 1)
	return applied(key.CommandRight, moveTo(c.Row, col, s.Mode))
}

func down(buf *buffer.Buffer, s State) Outcome {
	return applied(key.CommandDown, vertical(buf, s, 1))
}

func up(buf *buffer.Buffer, s State) Outcome {
	return applied(key.CommandUp, vertical(buf, s, -1))
}

// vertical moves diff rows and lands on the remembered column, or on the
// last column of a line too short to hold it. The remembered column is
// left as is.
func vertical(buf *buffer.Buffer, s State, diff int) MotionResult {
	line := buf.Offset(s.Cursor.Row, diff)
	col := s.Cursor.LastCol
	if line.Length() <= col {
		col = line.Last()
	}
	return MotionResult{Row: line.Row(), Col: col, Mode: s.Mode}
}

func lineStart(_ *buffer.Buffer, s State) Outcome {
	return applied(key.CommandLineStart, moveTo(s.Cursor.Row, 0, s.Mode))
}

func lineEnd(buf *buffer.Buffer, s State) Outcome {
	c := s.Cursor
	return applied(key.CommandLineEnd, moveTo(c.Row, buf.Line(c.Row).Last(), s.Mode))
}

// deleteChar removes the character under the cursor. Removing the last
// character of a line moves the cursor left onto the new last character.
func deleteChar(buf *buffer.Buffer, s State) Outcome {
	c := s.Cursor
	line := buf.Line(c.Row)
	if line.Length() == 0 {
		return rejected(key.CommandDeleteChar, ReasonNothingToDelete)
	}

	wasLast := c.Col >= line.Last()
	if _, ok := line.Remove(c.Col); !ok {
		return rejected(key.CommandDeleteChar, ReasonNothingToDelete)
	}

	col := c.Col
	if wasLast {
		col = line.Offset(c.Col, -1)
	}
	return applied(key.CommandDeleteChar, moveTo(c.Row, col, s.Mode).WithRefresh())
}

func enterInsert(_ *buffer.Buffer, s State) Outcome {
	c := s.Cursor
	r := MotionResult{Row: c.Row, Col: c.Col, Mode: mode.Insert}
	return applied(key.CommandInsert, r.WithRefresh())
}

// escapeNormal is Escape pressed in normal mode, which does nothing.
func escapeNormal(_ *buffer.Buffer, _ State) Outcome {
	return rejected(key.CommandEscape, ReasonWrongMode)
}

// escapeInsert leaves insert mode and steps back onto the last typed
// character.
func escapeInsert(buf *buffer.Buffer, s State) Outcome {
	c := s.Cursor
	col := buf.Line(c.Row).Offset(c.Col, -1)
	return applied(key.CommandEscape, moveTo(c.Row, col, mode.Normal).WithRefresh())
}

// insertChar types r at the cursor and advances past it.
func insertChar(buf *buffer.Buffer, s State, r rune) Outcome {
	c := s.Cursor
	buf.Line(c.Row).Insert(r, c.Col)
	return applied(key.CommandNone, moveTo(c.Row, c.Col+1, s.Mode).WithRefresh())
}

func wordForward(buf *buffer.Buffer, s State) Outcome {
	t := motion.WordForward(buf, s.Cursor.Point())
	out := applied(key.CommandWordForward, moveTo(t.Row, t.Col, s.Mode))
	out.via = t.Via
	return out
}

func wordEnd(buf *buffer.Buffer, s State) Outcome {
	t := motion.WordEnd(buf, s.Cursor.Point())
	out := applied(key.CommandWordEnd, moveTo(t.Row, t.Col, s.Mode))
	out.via = t.Via
	return out
}

// wordBackward is recognized but not implemented.
func wordBackward(_ *buffer.Buffer, _ State) Outcome {
	return rejected(key.CommandWordBackward, ReasonUnsupported)
}
