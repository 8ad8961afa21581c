package motion

import (
	"github.com/dshills/vimotion/internal/engine/buffer"
	"github.com/dshills/vimotion/internal/engine/charclass"
)

var (
	wordForward = Fallback{
		SameLine:  nextWordStart,
		NextLine:  firstWordStart,
		Default:   lastColumn,
		Direction: Forward,
	}

	wordEnd = Fallback{
		SameLine:  nextWordEnd,
		NextLine:  firstWordEnd,
		Default:   lastColumn,
		Direction: Forward,
	}
)

// WordForward finds the start of the next word after p.
//
// On the starting line the nearest of these wins: the next character of the
// opposite non-space class (symbol after a word, word after a symbol), the
// first non-space character when starting on a space, and the first word
// after a gap of whitespace. Later lines stop at an empty line or their
// first non-space character. With nothing left, the target is the last
// column of the last line.
func WordForward(buf *buffer.Buffer, p buffer.Point) Target {
	return wordForward.Search(buf, p)
}

// WordEnd finds the end of the current or next word after p.
//
// A run of word characters ends before the first other character; a run
// that starts on a symbol ends before the next whitespace.
// Later lines stop at the end of their first word; empty and blank lines are
// skipped. With nothing left, the target is the last column of the last line.
func WordEnd(buf *buffer.Buffer, p buffer.Point) Target {
	return wordEnd.Search(buf, p)
}

// nextWordStart is the same-line phase of WordForward.
func nextWordStart(line *buffer.Line, col int) (int, bool) {
	from := col + 1
	best := -1
	take := func(c int) {
		if c >= 0 && (best < 0 || c < best) {
			best = c
		}
	}

	switch charclass.Of(line.At(col)) {
	case charclass.Word:
		take(scan(line, from, charclass.IsSymbolChar))
	case charclass.Symbol:
		take(scan(line, from, charclass.IsWordChar))
	case charclass.Space:
		take(scan(line, from, notSpace))
	}
	take(afterGap(line, from))

	return best, best >= 0
}

// firstWordStart is the line-walk phase of WordForward. An empty line is a
// stop of its own.
func firstWordStart(line *buffer.Line) (int, bool) {
	if line.Length() == 0 {
		return 0, true
	}
	c := scan(line, 0, notSpace)
	return c, c >= 0
}

// nextWordEnd is the same-line phase of WordEnd.
func nextWordEnd(line *buffer.Line, col int) (int, bool) {
	start := col + 1
	if charclass.IsWhitespace(line.At(start)) {
		start = scan(line, start, notSpace)
		if start < 0 {
			return 0, false
		}
	}
	return endOfRun(line, start), true
}

// firstWordEnd is the line-walk phase of WordEnd.
func firstWordEnd(line *buffer.Line) (int, bool) {
	start := scan(line, 0, notSpace)
	if start < 0 {
		return 0, false
	}
	return endOfRun(line, start), true
}

// lastColumn is the default phase of the forward motions.
func lastColumn(line *buffer.Line) int {
	return line.Last()
}

// endOfRun returns the last column of the word that starts at start, where
// start holds a non-space character. A word-character run ends before the
// first character that is not a word character. A symbol run ends only
// before whitespace, so it takes in any word characters that follow it. The
// EOL marker counts as whitespace.
func endOfRun(line *buffer.Line, start int) int {
	if start >= line.Last() {
		return line.Last()
	}

	stop := charclass.IsWhitespace
	if charclass.IsWordChar(line.At(start)) {
		stop = func(r rune) bool { return !charclass.IsWordChar(r) }
	}
	for p := start + 1; p <= line.Length(); p++ {
		if stop(line.At(p)) {
			return p - 1
		}
	}
	return line.Last()
}

// scan returns the first content column at or after from whose character
// satisfies match, or -1.
func scan(line *buffer.Line, from int, match func(rune) bool) int {
	for p := max(from, 0); p < line.Length(); p++ {
		if match(line.At(p)) {
			return p
		}
	}
	return -1
}

// afterGap returns the first non-space column that follows a whitespace run
// beginning at or after from, or -1.
func afterGap(line *buffer.Line, from int) int {
	gap := scan(line, from, charclass.IsWhitespace)
	if gap < 0 {
		return -1
	}
	return scan(line, gap+1, notSpace)
}

func notSpace(r rune) bool {
	return !charclass.IsWhitespace(r)
}
