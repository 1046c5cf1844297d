package parser

import (
	"github.com/ava12/combo/source"
)

// Tuple is the flat ordered record produced by sequencing.
type Tuple []any

// Get returns i-th element of t converted to T.
// Panics if i is out of range or the element is not of type T.
func Get[T any](t Tuple, i int) T {
	return t[i].(T)
}

func appendFlat(t Tuple, v any) Tuple {
	if vt, f := v.(Tuple); f {
		return append(t, vt...)
	}
	return append(t, v)
}

// Seq runs p, then q on the rest of input. Results are combined into a single flat Tuple:
// a result that is itself a Tuple is spliced, so Seq(Seq(a, b), c) and Seq(a, Seq(b, c))
// both produce Tuple{a, b, c}.
// If q fails after p succeeded, Seq fails as a whole.
func Seq[A, B any](p Parser[A], q Parser[B]) Parser[Tuple] {
	return Func[Tuple](func(in source.Input) (Tuple, source.Input, bool) {
		a, rest, ok := p.Parse(in)
		if !ok {
			return fail[Tuple](in)
		}
		b, rest, ok := q.Parse(rest)
		if !ok {
			return fail[Tuple](in)
		}
		return appendFlat(appendFlat(make(Tuple, 0, 2), a), b), rest, true
	})
}

// Erase converts Parser[T] to Parser[any].
func Erase[T any](p Parser[T]) Parser[any] {
	if ap, f := p.(Parser[any]); f {
		return ap
	}
	return Map(func(v T) any { return v }, p)
}

// Sequence runs all ps one after another, flattening results like Seq does.
// Sequence with no parsers succeeds with empty Tuple.
func Sequence(ps ...Parser[any]) Parser[Tuple] {
	return Func[Tuple](func(in source.Input) (Tuple, source.Input, bool) {
		res := make(Tuple, 0, len(ps))
		rest := in
		for _, p := range ps {
			v, r, ok := p.Parse(rest)
			if !ok {
				return fail[Tuple](in)
			}
			res = appendFlat(res, v)
			rest = r
		}
		return res, rest, true
	})
}

// Pair is the typed result of Both.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Both is the typed counterpart of Seq, no flattening is done.
func Both[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return Func[Pair[A, B]](func(in source.Input) (Pair[A, B], source.Input, bool) {
		a, rest, ok := p.Parse(in)
		if !ok {
			return fail[Pair[A, B]](in)
		}
		b, rest, ok := q.Parse(rest)
		if !ok {
			return fail[Pair[A, B]](in)
		}
		return Pair[A, B]{a, b}, rest, true
	})
}

// Left runs p, then q, and keeps the result of p.
func Left[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(func(r Pair[A, B]) A { return r.First }, Both(p, q))
}

// Right runs p, then q, and keeps the result of q.
func Right[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(func(r Pair[A, B]) B { return r.Second }, Both(p, q))
}

// Between runs open, p, and closing, keeps the result of p.
func Between[O, T, C any](open Parser[O], p Parser[T], closing Parser[C]) Parser[T] {
	return Left(Right(open, p), closing)
}
