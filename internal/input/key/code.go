package key

import (
	"fmt"
	"unicode"
)

// Code is a keystroke in the classic ASCII key-code space.
type Code int

// Key codes used by the command table.
const (
	CodeTab       Code = 9
	CodeEnter     Code = 13
	CodeEscape    Code = 27
	CodeSpace     Code = 32
	CodeDollar    Code = 36
	CodeZero      Code = 48
	CodeB         Code = 98
	CodeE         Code = 101
	CodeH         Code = 104
	CodeI         Code = 105
	CodeJ         Code = 106
	CodeK         Code = 107
	CodeL         Code = 108
	CodeW         Code = 119
	CodeX         Code = 120
	CodeBackspace Code = 127
)

// FromRune returns the code for r.
func FromRune(r rune) Code {
	return Code(r)
}

// Rune returns the character for the code.
func (c Code) Rune() rune {
	return rune(c)
}

// IsText returns true if the code stands for a character that may be typed
// into a line: a printable character or a tab.
func (c Code) IsText() bool {
	if c < 0 || c > unicode.MaxRune {
		return false
	}
	r := c.Rune()
	return r == '\t' || unicode.IsPrint(r)
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case CodeTab:
		return "<Tab>"
	case CodeEnter:
		return "<CR>"
	case CodeEscape:
		return "<Esc>"
	case CodeSpace:
		return "<Space>"
	case CodeBackspace:
		return "<BS>"
	}
	if c.IsText() {
		return string(c.Rune())
	}
	return fmt.Sprintf("<%d>", int(c))
}
