/*
Package parser defines parser combinators.

A parser is any value implementing Parser[T]: applied to source.Input it either
returns a result of type T together with the unconsumed rest of the input,
or reports failure with ok == false. Failure carries no message or position;
the input a failed parser was given is left untouched, so an enclosing
alternation simply retries the next alternative on the same input.

Parsers hold no mutable state (Ref being the only exception, it is bound once
while the grammar is constructed), so a composed parser may be applied any
number of times and from any number of goroutines.

Primitives:
  - Result: succeeds with a fixed value, consumes nothing;
  - Zero (Fail): always fails;
  - Item: consumes a single unit;
  - Char, OneOf, Digit, Space, Tag, Regexp, RegexpLongest, EOF: common unit parsers.

Combinators:
  - Bind, Map, Sat, Value, Discard: transformation and filtering;
  - Seq, Sequence, Both, Left, Right, Between: sequencing;
  - Either, Or: ordered choice;
  - Many, OneOrMore, Optional, SepBy1, Count: repetition;
  - Ref: forward reference for recursive rules;
  - Skip, Token, Prefixed, Suffixed, Skipper: discarding insignificant input around content.
*/
package parser

import (
	"github.com/ava12/combo/source"
)

// Parser is the contract every primitive and combinator satisfies.
// On success Parse returns the result and the rest of input, rest is always a suffix of in.
// On failure ok is false and value and rest must be ignored.
type Parser[T any] interface {
	Parse(in source.Input) (value T, rest source.Input, ok bool)
}

// Func adapts an ordinary function to Parser.
type Func[T any] func(in source.Input) (value T, rest source.Input, ok bool)

func (f Func[T]) Parse(in source.Input) (T, source.Input, bool) {
	return f(in)
}

func fail[T any](in source.Input) (value T, rest source.Input, ok bool) {
	return value, in, false
}

// Run applies p to text, returns the result and unconsumed text.
func Run[T any](p Parser[T], text string) (value T, rest string, ok bool) {
	v, r, ok := p.Parse(source.NewInput(text))
	if !ok {
		return v, text, false
	}
	return v, r.String(), true
}

// Complete creates parser that succeeds only if p succeeds and consumes all input.
func Complete[T any](p Parser[T]) Parser[T] {
	return Func[T](func(in source.Input) (T, source.Input, bool) {
		v, rest, ok := p.Parse(in)
		if !ok || !rest.IsEmpty() {
			return fail[T](in)
		}
		return v, rest, true
	})
}
