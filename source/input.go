package source

import (
	"strings"
)

// Input is an immutable view of source content starting at some offset.
// Advancing the view creates a new Input sharing the same Source,
// the content itself is never copied or modified.
// Zero Input is a valid empty input.
type Input struct {
	src *Source
	pos int
}

// NewInput creates input view of unnamed source containing text.
func NewInput(text string) Input {
	return New("", text).Input()
}

func (in Input) Source() *Source {
	return in.src
}

// Pos returns absolute byte offset of the view in its source.
func (in Input) Pos() int {
	return in.pos
}

func (in Input) content() string {
	if in.src == nil {
		return ""
	}
	return in.src.content[in.pos:]
}

// Len returns the number of units left.
func (in Input) Len() int {
	if in.src == nil {
		return 0
	}
	return len(in.src.content) - in.pos
}

func (in Input) IsEmpty() bool {
	return in.Len() == 0
}

// Peek returns the first unit without consuming it; ok is false for empty input.
func (in Input) Peek() (b byte, ok bool) {
	if in.IsEmpty() {
		return 0, false
	}
	return in.src.content[in.pos], true
}

// At returns i-th unit of the view, panics if i is out of range.
func (in Input) At(i int) byte {
	return in.content()[i]
}

// Advance returns the view with n leading units consumed.
// The result never goes past the end of the source, negative n is treated as 0.
func (in Input) Advance(n int) Input {
	if n <= 0 || in.src == nil {
		return in
	}
	if n > in.Len() {
		n = in.Len()
	}
	return Input{in.src, in.pos + n}
}

// Slice returns up to n leading units as a string without consuming them.
func (in Input) Slice(n int) string {
	c := in.content()
	if n < 0 {
		n = 0
	} else if n > len(c) {
		n = len(c)
	}
	return c[:n]
}

// Consumed returns the text between in and rest, rest must be a suffix of in.
func (in Input) Consumed(rest Input) string {
	return in.Slice(rest.pos - in.pos)
}

// String returns the remaining text.
func (in Input) String() string {
	return in.content()
}

func (in Input) HasPrefix(prefix string) bool {
	return strings.HasPrefix(in.content(), prefix)
}

// LineCol returns 1-based line and column of the view start, or 0, 0 for zero Input.
func (in Input) LineCol() (line, col int) {
	if in.src == nil {
		return 0, 0
	}
	return in.src.LineCol(in.pos)
}

// SourcePos returns the position of the view start.
func (in Input) SourcePos() Pos {
	res := Pos{in.src, in.pos, 0, 0}
	res.line, res.col = in.LineCol()
	return res
}
