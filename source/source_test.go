package source

import (
	"strconv"
	"testing"
)

type result struct {
	pos, line, col int
}

func assert(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Fatal(msg)
	}
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
			{-5, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 4, 2},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
			{5, 3, 2},
		},
	}

	for text, results := range samples {
		source := New("", text)
		for _, res := range results {
			l, c := source.LineCol(res.pos)
			if l != res.line || c != res.col {
				t.Errorf("sample %q: expected %v, got line: %d, col: %d", text, res, l, c)
			}
		}
	}
}

func TestSourcePos(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{0, 1, 2},
			{0, 2, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 1, 2},
			{1, 2, 1},
			{1, 2, 2},
			{1, 3, 1},
		},
		"hello\nworld\n": {
			{0, 1, 1},
			{1, 1, 2},
			{6, 2, 1},
			{7, 2, 2},
			{12, 2, 10},
			{12, 3, 1},
			{12, 4, 1},
		},
	}

	for text, results := range samples {
		source := New("", text)
		for _, res := range results {
			p := source.Pos(res.line, res.col)
			if p != res.pos {
				t.Errorf("sample %q: expected %v, got pos: %d", text, res, p)
			}
		}
	}
}

func TestInputAdvance(t *testing.T) {
	in := NewInput("hello")
	assert(t, in.Len() == 5, "expecting len=5, got "+strconv.Itoa(in.Len()))

	rest := in.Advance(2)
	assert(t, rest.String() == "llo", "expecting llo, got "+rest.String())
	assert(t, rest.Pos() == 2, "expecting pos=2, got "+strconv.Itoa(rest.Pos()))
	assert(t, in.String() == "hello", "original view changed: "+in.String())
	assert(t, rest.Source() == in.Source(), "source is not shared")
	assert(t, in.Consumed(rest) == "he", "expecting he, got "+in.Consumed(rest))

	end := rest.Advance(100)
	assert(t, end.IsEmpty(), "expecting empty input, got "+end.String())
	assert(t, end.Pos() == 5, "expecting pos=5, got "+strconv.Itoa(end.Pos()))

	same := rest.Advance(-1)
	assert(t, same == rest, "negative advance moved the view")
}

func TestInputPeek(t *testing.T) {
	in := NewInput("ab")
	b, ok := in.Peek()
	assert(t, ok && b == 'a', "expecting 'a'")
	assert(t, in.At(1) == 'b', "expecting 'b'")
	assert(t, in.HasPrefix("ab"), "expecting prefix ab")
	assert(t, !in.HasPrefix("abc"), "unexpected prefix abc")
	assert(t, in.Slice(10) == "ab", "expecting ab, got "+in.Slice(10))
	assert(t, in.Slice(1) == "a", "expecting a, got "+in.Slice(1))

	_, ok = in.Advance(2).Peek()
	assert(t, !ok, "expecting no unit at end of input")
}

func TestZeroInput(t *testing.T) {
	var in Input
	assert(t, in.IsEmpty(), "zero input is not empty")
	assert(t, in.String() == "", "zero input has content")
	assert(t, in.Advance(1) == in, "zero input advanced")
	l, c := in.LineCol()
	assert(t, l == 0 && c == 0, "zero input has position")
	assert(t, in.SourcePos().SourceName() == "", "zero input has source name")
}

func TestInputSourcePos(t *testing.T) {
	s := New("sample", "foo\nbar baz")
	p := s.Input().Advance(8).SourcePos()
	assert(t, p.SourceName() == "sample", "expecting sample, got "+p.SourceName())
	assert(t, p.Line() == 2, "expecting line=2, got "+strconv.Itoa(p.Line()))
	assert(t, p.Col() == 5, "expecting col=5, got "+strconv.Itoa(p.Col()))
	assert(t, p.Pos() == 8, "expecting pos=8, got "+strconv.Itoa(p.Pos()))
}
