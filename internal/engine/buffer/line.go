package buffer

// EOL is the end-of-line marker stored after the content of every line.
const EOL = '\n'

// Line is a single line of text.
// The character slice always ends with the EOL marker, so a Line is never
// truly empty; Length reports only the content characters.
type Line struct {
	row   int
	chars []rune
}

// NewLine creates a line from s. A trailing newline in s is taken as the
// line's EOL marker rather than content.
func NewLine(s string, row int) *Line {
	l := &Line{row: row, chars: make([]rune, 0, len(s)+1)}
	for _, r := range s {
		l.chars = append(l.chars, r)
	}
	if n := len(l.chars); n == 0 || l.chars[n-1] != EOL {
		l.chars = append(l.chars, EOL)
	}
	return l
}

// Row returns the row this line was created at.
func (l *Line) Row() int {
	return l.row
}

// Length returns the number of content characters, ignoring the EOL marker.
func (l *Line) Length() int {
	return max(0, len(l.chars)-1)
}

// At returns the character at col. Positions at or past the end of the
// content, and negative positions, read as the EOL marker.
func (l *Line) At(col int) rune {
	if col < 0 || col >= l.Length() {
		return EOL
	}
	return l.chars[col]
}

// Insert places r at col, shifting the characters at and after col one
// position right. col is clamped to [0, Length()].
func (l *Line) Insert(r rune, col int) {
	col = min(max(col, 0), l.Length())
	l.chars = append(l.chars, 0)
	copy(l.chars[col+1:], l.chars[col:])
	l.chars[col] = r
}

// Append adds r to the end of the content, before the EOL marker.
func (l *Line) Append(r rune) {
	l.Insert(r, l.Length())
}

// Remove deletes the character at col and returns it.
// ok is false when col is outside the content range.
func (l *Line) Remove(col int) (r rune, ok bool) {
	if col < 0 || col >= l.Length() {
		return 0, false
	}
	r = l.chars[col]
	l.chars = append(l.chars[:col], l.chars[col+1:]...)
	return r, true
}

// Offset returns col+diff saturated to [0, Last()].
func (l *Line) Offset(col, diff int) int {
	newCol := max(0, col+diff)
	if newCol >= l.Length() {
		newCol = l.Last()
	}
	return newCol
}

// Last returns the column of the final content character, or 0 for an
// empty line.
func (l *Line) Last() int {
	return max(0, l.Length()-1)
}

// String returns the content of the line without the EOL marker.
func (l *Line) String() string {
	return string(l.chars[:l.Length()])
}
