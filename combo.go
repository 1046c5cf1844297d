/*
Package combo is a small parser combinator library.

Consists of subpackages:
  - source: defines text source and immutable input view consumed by parsers;
  - parser: defines the Parser contract, primitive parsers, and combinators
    for sequencing, alternation, repetition, transformation, forward references,
    and filler skipping;
  - examples/calc: arithmetic expression evaluator built on top of parser.

Typical usage is:

1. Describe every grammar rule as a parser value composed from primitives
(parser.Item, parser.Char, parser.Tag, ...) and combinators (parser.Seq,
parser.Either, parser.Many, parser.Map, ...). Rules referring to rules defined
later (or to themselves) go through parser.Ref.

2. Apply the top-level parser to an input. A parser either returns its result
and the unconsumed rest of the input, or reports failure. Failure carries no
information, parsers never consume input on failure.

3. Decide how to report failure: the library itself has no error messages,
client code may use Error defined here.
*/
package combo

import (
	"fmt"
)

// Error classes. A class is the first of 100 consecutive error codes.
const (
	SyntaxErrors = 201 // input does not match the grammar
	EvalErrors   = 301 // input matches the grammar, but has no value
)

// Location tells where in the source an error was detected. source.Pos is a Location.
type Location interface {
	SourceName() string
	Line() int
	Col() int
}

// Error is a coded error, optionally tied to a place in the source.
// Line and Col are 0 if the place is unknown, SourceName may be empty for anonymous sources.
type Error struct {
	Code       int
	Message    string
	SourceName string
	Line, Col  int
}

// Error returns the message followed by the place, if known.
func (e *Error) Error() string {
	switch {
	case e.Line == 0:
		return e.Message
	case e.SourceName == "":
		return fmt.Sprintf("%s at line %d col %d", e.Message, e.Line, e.Col)
	default:
		return fmt.Sprintf("%s in %s at line %d col %d", e.Message, e.SourceName, e.Line, e.Col)
	}
}

// Errorf creates Error not tied to any place.
func Errorf(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorAt creates Error detected at loc.
func ErrorAt(loc Location, code int, format string, args ...any) *Error {
	e := Errorf(code, format, args...)
	e.SourceName, e.Line, e.Col = loc.SourceName(), loc.Line(), loc.Col()
	return e
}
