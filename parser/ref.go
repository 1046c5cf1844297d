package parser

import (
	"fmt"
	"reflect"

	"github.com/ava12/combo/source"
)

// Ref is a forward reference: a parser that delegates to a target set later.
// It allows grammar rules to refer to rules (including themselves) that are not constructed yet.
// The target must be set exactly once, before the first Parse call;
// after that Ref is read-only and safe for concurrent use.
type Ref[T any] struct {
	target Parser[T]
}

func NewRef[T any]() *Ref[T] {
	return &Ref[T]{}
}

// Set binds r to p. Panics if r is already bound or p is nil.
func (r *Ref[T]) Set(p Parser[T]) {
	if p == nil {
		panic("parser.Ref: nil target")
	}
	if r.target != nil {
		panic("parser.Ref: target already set")
	}
	r.target = p
}

// IsSet reports whether r is bound.
func (r *Ref[T]) IsSet() bool {
	return r.target != nil
}

// Parse invokes the target, panics if r is not bound.
func (r *Ref[T]) Parse(in source.Input) (T, source.Input, bool) {
	if r.target == nil {
		panic(fmt.Sprintf("parser.Ref[%s]: target is not set", reflect.TypeFor[T]()))
	}
	return r.target.Parse(in)
}
