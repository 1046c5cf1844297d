package parser

import (
	"github.com/ava12/combo/source"
)

// Bind runs p, passes its result to f, and runs the parser returned by f on the rest of input.
// Fails if either p or the parser returned by f fails.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return Func[U](func(in source.Input) (U, source.Input, bool) {
		v, rest, ok := p.Parse(in)
		if !ok {
			return fail[U](in)
		}
		u, rest, ok := f(v).Parse(rest)
		if !ok {
			return fail[U](in)
		}
		return u, rest, true
	})
}

// Map transforms the result of p with f, success and consumption are those of p.
// Same as Bind(p, func(x T) Parser[U] { return Result(f(x)) }).
func Map[T, U any](f func(T) U, p Parser[T]) Parser[U] {
	return Func[U](func(in source.Input) (U, source.Input, bool) {
		v, rest, ok := p.Parse(in)
		if !ok {
			return fail[U](in)
		}
		return f(v), rest, true
	})
}

// Sat succeeds with the result of p only if pred holds for that result.
// Rejected result is a failure: nothing is consumed, and an enclosing alternation
// retries its next alternative from the same position p started at.
func Sat[T any](p Parser[T], pred func(T) bool) Parser[T] {
	return Func[T](func(in source.Input) (T, source.Input, bool) {
		v, rest, ok := p.Parse(in)
		if !ok || !pred(v) {
			return fail[T](in)
		}
		return v, rest, true
	})
}

// Value replaces the result of p with x.
func Value[T, U any](p Parser[T], x U) Parser[U] {
	return Map(func(T) U { return x }, p)
}

// Discard drops the result of p.
func Discard[T any](p Parser[T]) Parser[struct{}] {
	return Value(p, struct{}{})
}
