// Package charclass classifies characters for word motions.
//
// Every character falls into exactly one Class. A word, for motion purposes,
// is a maximal run of Word characters or a maximal run of Symbol characters;
// runs of Space separate words and are never part of one.
package charclass

// Class is the motion class of a single character.
type Class uint8

const (
	// Space is a space, tab, newline, or other blank character.
	Space Class = iota

	// Word is an ASCII letter, digit, or underscore.
	Word

	// Symbol is anything that is neither Word nor Space.
	Symbol
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Space:
		return "space"
	case Word:
		return "word"
	case Symbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Of returns the class of r.
func Of(r rune) Class {
	switch {
	case IsWhitespace(r):
		return Space
	case IsWordChar(r):
		return Word
	default:
		return Symbol
	}
}

// IsWordChar reports whether r matches [A-Za-z0-9_].
func IsWordChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}

// IsSymbolChar reports whether r is neither a word character nor whitespace.
func IsSymbolChar(r rune) bool {
	return !IsWordChar(r) && !IsWhitespace(r)
}

// IsWhitespace reports whether r is whitespace in the \s sense: space, tab,
// newline, carriage return, vertical tab, form feed, and the Unicode blanks
// a JavaScript-style \s also accepts.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f',
		0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}
