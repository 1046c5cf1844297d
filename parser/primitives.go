package parser

import (
	"regexp"
	"strings"

	"github.com/ava12/combo/source"
)

// Result creates parser that always succeeds with x and consumes nothing.
func Result[T any](x T) Parser[T] {
	return Func[T](func(in source.Input) (T, source.Input, bool) {
		return x, in, true
	})
}

// Zero creates parser that always fails.
func Zero[T any]() Parser[T] {
	return Func[T](fail[T])
}

// Fail is the same as Zero.
func Fail[T any]() Parser[T] {
	return Zero[T]()
}

// Item consumes exactly one unit, fails on empty input.
var Item Parser[byte] = Func[byte](func(in source.Input) (byte, source.Input, bool) {
	b, ok := in.Peek()
	if !ok {
		return fail[byte](in)
	}
	return b, in.Advance(1), true
})

// EOF succeeds with no consumption at the end of input only.
var EOF Parser[struct{}] = Func[struct{}](func(in source.Input) (struct{}, source.Input, bool) {
	if !in.IsEmpty() {
		return fail[struct{}](in)
	}
	return struct{}{}, in, true
})

// Char creates parser consuming unit c.
func Char(c byte) Parser[byte] {
	return Sat(Item, func(b byte) bool {
		return b == c
	})
}

// OneOf creates parser consuming any unit contained in set.
func OneOf(set string) Parser[byte] {
	return Sat(Item, func(b byte) bool {
		return strings.IndexByte(set, b) >= 0
	})
}

// Digit consumes a single ASCII digit.
var Digit = Sat(Item, func(b byte) bool {
	return b >= '0' && b <= '9'
})

// Space consumes a single whitespace unit: space, tab, CR, or LF.
var Space = OneOf(" \t\r\n")

// Tag creates parser consuming literal text t.
// Empty t always succeeds with no consumption.
func Tag(t string) Parser[string] {
	return Func[string](func(in source.Input) (string, source.Input, bool) {
		if !in.HasPrefix(t) {
			return fail[string](in)
		}
		return t, in.Advance(len(t)), true
	})
}

// Regexp creates parser consuming a match of re anchored at the current position.
// The result is the matched text. Matches of zero length are allowed,
// so Regexp parsers must not be used with Many unless re never matches empty text.
//
// re sees only the rest of input: ^, \A, and \b treat the current position
// as the beginning of text, whatever precedes it. The pattern is recompiled,
// so leftmost-longest mode set with re.Longest is not kept; use RegexpLongest for it.
func Regexp(re *regexp.Regexp) Parser[string] {
	return regexpParser(regexp.MustCompile(anchoredPattern(re)))
}

// RegexpLongest is Regexp preferring the longest match among alternatives.
func RegexpLongest(re *regexp.Regexp) Parser[string] {
	anchored := regexp.MustCompile(anchoredPattern(re))
	anchored.Longest()
	return regexpParser(anchored)
}

func anchoredPattern(re *regexp.Regexp) string {
	return `\A(?:` + re.String() + `)`
}

func regexpParser(anchored *regexp.Regexp) Parser[string] {
	return Func[string](func(in source.Input) (string, source.Input, bool) {
		loc := anchored.FindStringIndex(in.String())
		if loc == nil {
			return fail[string](in)
		}
		return in.Slice(loc[1]), in.Advance(loc[1]), true
	})
}
