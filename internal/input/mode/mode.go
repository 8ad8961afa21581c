package mode

import (
	"fmt"
	"strings"
)

// Mode is an editor mode.
type Mode uint8

const (
	// Normal is the initial mode: keys are commands.
	Normal Mode = iota

	// Insert types keys into the current line.
	Insert
)

// Standard mode names.
const (
	NameNormal = "normal"
	NameInsert = "insert"
)

// String returns the mode identifier (e.g., "normal", "insert").
func (m Mode) String() string {
	switch m {
	case Normal:
		return NameNormal
	case Insert:
		return NameInsert
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	return strings.ToUpper(m.String())
}

// Indicator returns the command-window text for the mode.
// Normal mode shows nothing.
func (m Mode) Indicator() string {
	if m == Insert {
		return "-- INSERT --"
	}
	return ""
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// Parse returns the mode named name.
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameNormal:
		return Normal, nil
	case NameInsert:
		return Insert, nil
	default:
		return Normal, fmt.Errorf("unknown mode: %s", name)
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}
