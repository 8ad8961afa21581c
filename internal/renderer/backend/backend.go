// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"github.com/dshills/vimotion/internal/input/key"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorHidden
)

// String returns the cursor style name.
func (s CursorStyle) String() string {
	switch s {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Style is the appearance of a cell. Colors are color names or #rrggbb
// values; an empty color is the terminal default.
type Style struct {
	Foreground string
	Background string
	Reverse    bool
}

// DefaultStyle is the terminal's default appearance.
var DefaultStyle = Style{}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the editor distinguishes.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyCtrlC
	KeyCtrlQ
	KeyOther
)

// IsQuit returns true if the event asks to end the session.
func (ev Event) IsQuit() bool {
	return ev.Type == EventKey && (ev.Key == KeyCtrlC || ev.Key == KeyCtrlQ)
}

// Code translates a key event into the engine's key-code space.
// Escape, tab, and characters translate; other keys do not.
func (ev Event) Code() (key.Code, bool) {
	if ev.Type != EventKey {
		return 0, false
	}
	switch ev.Key {
	case KeyRune:
		return key.FromRune(ev.Rune), true
	case KeyEscape:
		return key.CodeEscape, true
	case KeyTab:
		return key.CodeTab, true
	default:
		return 0, false
	}
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, r rune, style Style)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent waits for and returns the next terminal event.
	// It returns an event of type EventNone once the backend is shut down.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)
}
