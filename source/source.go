// Package source defines text source and the immutable input view consumed by parsers.
package source

import (
	"sort"
	"strings"
)

type Source struct {
	name       string
	content    string
	lineStarts []int
}

func New(name, content string) *Source {
	s := &Source{name: name, content: content}
	lineCnt := strings.Count(content, "\n") + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() string {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// Input returns input view positioned at the start of source.
func (s *Source) Input() Input {
	return Input{s, 0}
}

// LineCol converts byte offset to 1-based line and column numbers.
// Offsets outside of source are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	return lineIndex + 1, pos - s.lineStarts[lineIndex] + 1
}

// Pos converts 1-based line and column numbers to byte offset.
// Non-positive line or column gives 0, positions past the end give source length.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	} else {
		return res
	}
}

// Pos holds source position, implements combo.Location.
type Pos struct {
	src            *Source
	pos, line, col int
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	} else {
		return p.src.name
	}
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
