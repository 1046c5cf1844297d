package parser

import (
	"github.com/ava12/combo/source"
)

// Many applies p to successive rests of input until it fails and collects the results.
// Many never fails, zero matches give an empty (non-nil) slice.
// p must consume input on every success, otherwise Many never terminates.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Func[[]T](func(in source.Input) ([]T, source.Input, bool) {
		res := make([]T, 0)
		rest := in
		for {
			v, r, ok := p.Parse(rest)
			if !ok {
				return res, rest, true
			}
			res = append(res, v)
			rest = r
		}
	})
}

// OneOrMore is Many that fails if p does not match at least once.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	m := Many(p)
	return Func[[]T](func(in source.Input) ([]T, source.Input, bool) {
		res, rest, _ := m.Parse(in)
		if len(res) == 0 {
			return fail[[]T](in)
		}
		return res, rest, true
	})
}

// Optional succeeds with a pointer to the result of p, or with nil and no consumption if p fails.
// Optional never fails.
func Optional[T any](p Parser[T]) Parser[*T] {
	return Func[*T](func(in source.Input) (*T, source.Input, bool) {
		v, rest, ok := p.Parse(in)
		if !ok {
			return nil, in, true
		}
		return &v, rest, true
	})
}

// SepBy1 parses one or more p separated by sep, separator results are dropped.
// A trailing separator is not consumed.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Map(func(r Pair[T, []T]) []T {
		return append([]T{r.First}, r.Second...)
	}, Both(p, Many(Right(sep, p))))
}

// Count applies p exactly n times.
func Count[T any](n int, p Parser[T]) Parser[[]T] {
	return Func[[]T](func(in source.Input) ([]T, source.Input, bool) {
		res := make([]T, 0, n)
		rest := in
		for i := 0; i < n; i++ {
			v, r, ok := p.Parse(rest)
			if !ok {
				return fail[[]T](in)
			}
			res = append(res, v)
			rest = r
		}
		return res, rest, true
	})
}
