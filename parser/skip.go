package parser

import (
	"reflect"

	"github.com/ava12/combo/source"
)

func skipAll[F any](filler Parser[F], in source.Input) source.Input {
	for {
		_, rest, ok := filler.Parse(in)
		if !ok || rest.Pos() == in.Pos() {
			return in
		}
		in = rest
	}
}

// spliced is p that keeps union members of its content visible to Either.
type spliced[T any] struct {
	Parser[T]
	members []reflect.Type
}

func (s spliced[T]) unionMembers() []reflect.Type {
	return s.members
}

func keepMembers[C, T any](content Parser[C], p Parser[T]) Parser[T] {
	if up, f := content.(unionParser); f {
		return spliced[T]{p, up.unionMembers()}
	}
	return p
}

// Skip discards any number of filler matches, then runs p.
// A filler match consuming nothing stops skipping.
// If p is created by Either, an enclosing Either splices its members.
func Skip[F, T any](filler Parser[F], p Parser[T]) Parser[T] {
	return keepMembers(p, Func[T](func(in source.Input) (T, source.Input, bool) {
		v, rest, ok := p.Parse(skipAll(filler, in))
		if !ok {
			return fail[T](in)
		}
		return v, rest, true
	}))
}

// Token runs p, then discards any number of filler matches.
func Token[T, F any](p Parser[T], filler Parser[F]) Parser[T] {
	return keepMembers(p, Func[T](func(in source.Input) (T, source.Input, bool) {
		v, rest, ok := p.Parse(in)
		if !ok {
			return fail[T](in)
		}
		return v, skipAll(filler, rest), true
	}))
}

// Prefixed runs prefix once, then p, and keeps the result of p.
// Unlike Skip the prefix is mandatory.
func Prefixed[F, T any](prefix Parser[F], p Parser[T]) Parser[T] {
	return keepMembers(p, Right(prefix, p))
}

// Suffixed runs p, then suffix once, and keeps the result of p.
func Suffixed[T, F any](p Parser[T], suffix Parser[F]) Parser[T] {
	return keepMembers(p, Left(p, suffix))
}

// Skipper holds filler parser shared by many content parsers of different result types.
type Skipper struct {
	filler Parser[any]
}

func NewSkipper[F any](filler Parser[F]) Skipper {
	return Skipper{Erase(filler)}
}

// SkipWith is Skip using filler of s.
func SkipWith[T any](s Skipper, p Parser[T]) Parser[T] {
	return Skip(s.filler, p)
}

// TokenWith is Token using filler of s.
func TokenWith[T any](s Skipper, p Parser[T]) Parser[T] {
	return Token(p, s.filler)
}
