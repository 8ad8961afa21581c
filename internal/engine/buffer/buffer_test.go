package buffer

import (
	"errors"
	"testing"
)

func TestNewLine(t *testing.T) {
	tests := []struct {
		input  string
		length int
		text   string
	}{
		{"", 0, ""},
		{"\n", 0, ""},
		{"hello", 5, "hello"},
		{"hello\n", 5, "hello"},
		{"a b\tc", 5, "a b\tc"},
		{"héllo", 5, "héllo"},
	}

	for _, tt := range tests {
		l := NewLine(tt.input, 3)
		if l.Length() != tt.length {
			t.Errorf("NewLine(%q).Length() = %d, want %d", tt.input, l.Length(), tt.length)
		}
		if l.String() != tt.text {
			t.Errorf("NewLine(%q).String() = %q, want %q", tt.input, l.String(), tt.text)
		}
		if l.Row() != 3 {
			t.Errorf("NewLine(%q).Row() = %d, want 3", tt.input, l.Row())
		}
	}
}

func TestLineAt(t *testing.T) {
	l := NewLine("ab", 0)

	if l.At(0) != 'a' || l.At(1) != 'b' {
		t.Errorf("At() returned wrong content: %q %q", l.At(0), l.At(1))
	}
	if l.At(2) != EOL {
		t.Errorf("At(length) = %q, want EOL", l.At(2))
	}
	if l.At(-1) != EOL {
		t.Errorf("At(-1) = %q, want EOL", l.At(-1))
	}
}

func TestLineOffset(t *testing.T) {
	l := NewLine("hello", 0)

	tests := []struct {
		col, diff, want int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{2, -1, 1},
		{0, -1, 0},
		{0, -10, 0},
		{4, 1, 4},
		{4, 10, 4},
		{3, 1, 4},
	}

	for _, tt := range tests {
		if got := l.Offset(tt.col, tt.diff); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.col, tt.diff, got, tt.want)
		}
	}
}

func TestLineOffsetEmpty(t *testing.T) {
	l := NewLine("", 0)

	for _, diff := range []int{-3, -1, 0, 1, 3} {
		if got := l.Offset(0, diff); got != 0 {
			t.Errorf("empty line Offset(0, %d) = %d, want 0", diff, got)
		}
	}
	if l.Last() != 0 {
		t.Errorf("empty line Last() = %d, want 0", l.Last())
	}
}

func TestLineOffsetProperties(t *testing.T) {
	for _, s := range []string{"x", "hi", "foo bar", "a.b,c  d"} {
		l := NewLine(s, 0)
		for c := 0; c < l.Length(); c++ {
			if got := l.Offset(c, 0); got != c {
				t.Errorf("%q: Offset(%d, 0) = %d", s, c, got)
			}
			if got := l.Offset(c, -1); got < 0 {
				t.Errorf("%q: Offset(%d, -1) = %d, want >= 0", s, c, got)
			}
			if got := l.Offset(c, 1); got > l.Last() {
				t.Errorf("%q: Offset(%d, 1) = %d, want <= %d", s, c, got, l.Last())
			}
		}
		for k := 0; k < 5; k++ {
			if got := l.Offset(0, -k); got != 0 {
				t.Errorf("%q: Offset(0, -%d) = %d, want 0", s, k, got)
			}
			if got := l.Offset(l.Last(), k); got != l.Last() {
				t.Errorf("%q: Offset(last, %d) = %d, want %d", s, k, got, l.Last())
			}
		}
	}
}

func TestLineInsert(t *testing.T) {
	l := NewLine("hllo", 0)
	l.Insert('e', 1)
	if l.String() != "hello" {
		t.Errorf("expected 'hello', got %q", l.String())
	}

	l.Insert('!', l.Length())
	if l.String() != "hello!" {
		t.Errorf("expected 'hello!', got %q", l.String())
	}

	l.Insert('>', 0)
	if l.String() != ">hello!" {
		t.Errorf("expected '>hello!', got %q", l.String())
	}
	if l.At(l.Length()) != EOL {
		t.Error("EOL marker should remain last after insert")
	}
}

func TestLineAppend(t *testing.T) {
	l := NewLine("", 0)
	for _, r := range "abc" {
		l.Append(r)
	}
	if l.String() != "abc" || l.Length() != 3 {
		t.Errorf("expected 'abc' (3), got %q (%d)", l.String(), l.Length())
	}
}

func TestLineRemove(t *testing.T) {
	l := NewLine("hello", 0)

	r, ok := l.Remove(4)
	if !ok || r != 'o' {
		t.Errorf("Remove(4) = %q, %v; want 'o', true", r, ok)
	}
	if l.String() != "hell" {
		t.Errorf("expected 'hell', got %q", l.String())
	}

	if _, ok := l.Remove(4); ok {
		t.Error("Remove past content should fail")
	}
	if _, ok := l.Remove(-1); ok {
		t.Error("Remove(-1) should fail")
	}

	empty := NewLine("", 0)
	if _, ok := empty.Remove(0); ok {
		t.Error("Remove on empty line should fail")
	}
}

func TestLineInsertRemoveRoundTrip(t *testing.T) {
	for _, s := range []string{"", "a", "foo bar", "x_y.z"} {
		for c := 0; c <= len(s); c++ {
			l := NewLine(s, 0)
			l.Insert('#', c)
			r, ok := l.Remove(c)
			if !ok || r != '#' {
				t.Fatalf("%q col %d: Remove returned %q, %v", s, c, r, ok)
			}
			if l.String() != s {
				t.Errorf("%q col %d: round trip produced %q", s, c, l.String())
			}
		}
	}
}

func TestNewBuffer(t *testing.T) {
	b, err := New([]string{"one", "", "three"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}

	for i, want := range []string{"one", "", "three"} {
		if got := b.Line(i).String(); got != want {
			t.Errorf("line %d = %q, want %q", i, got, want)
		}
		if b.Line(i).Row() != i {
			t.Errorf("line %d has row %d", i, b.Line(i).Row())
		}
	}
}

func TestNewBufferEmpty(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}

func TestNewBufferFromString(t *testing.T) {
	b, err := NewFromString("line1\r\nline2\n\nline4\n")
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	want := []string{"line1", "line2", "", "line4"}
	got := b.AllLines()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if b.Text() != "line1\nline2\n\nline4" {
		t.Errorf("unexpected Text(): %q", b.Text())
	}
}

func TestBufferOffset(t *testing.T) {
	b, _ := New([]string{"a", "b", "c"})

	tests := []struct {
		row, diff, want int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 2},
		{2, 10, 2},
		{0, -1, 0},
		{1, -5, 0},
	}

	for _, tt := range tests {
		if got := b.Offset(tt.row, tt.diff).Row(); got != tt.want {
			t.Errorf("Offset(%d, %d) row = %d, want %d", tt.row, tt.diff, got, tt.want)
		}
	}

	if b.LastLine().String() != "c" {
		t.Errorf("LastLine() = %q, want 'c'", b.LastLine().String())
	}
}

func TestBufferAllLinesIsSnapshot(t *testing.T) {
	b, _ := New([]string{"abc"})
	snap := b.AllLines()

	b.Line(0).Remove(0)

	if snap[0] != "abc" {
		t.Errorf("snapshot changed after edit: %q", snap[0])
	}
	if b.AllLines()[0] != "bc" {
		t.Errorf("expected 'bc' after edit, got %q", b.AllLines()[0])
	}
}

func TestPointCompare(t *testing.T) {
	a := Point{Row: 1, Col: 5}
	b := Point{Row: 2, Col: 0}

	if !a.Before(b) || b.Before(a) {
		t.Error("expected (1:5) before (2:0)")
	}
	if !b.After(a) {
		t.Error("expected (2:0) after (1:5)")
	}
	if a.Compare(Point{Row: 1, Col: 5}) != 0 {
		t.Error("expected equal points to compare 0")
	}
	if a.String() != "(1:5)" {
		t.Errorf("String() = %q", a.String())
	}
}
