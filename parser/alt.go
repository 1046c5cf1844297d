package parser

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/ava12/combo/source"
)

// Union is the tagged result of Either.
// It holds the list of member types (result types of all alternatives, without duplicates)
// and the value produced by the alternative that succeeded.
// Zero Union has no members and holds no value.
type Union struct {
	members []reflect.Type
	index   int
	value   any
}

// Members returns member types in first-occurrence order. The slice must not be modified.
func (u Union) Members() []reflect.Type {
	return u.members
}

// Index returns the index of the member type the value belongs to, -1 for zero Union.
func (u Union) Index() int {
	if u.members == nil {
		return -1
	}
	return u.index
}

// Type returns the member type of the value, nil for zero Union.
func (u Union) Type() reflect.Type {
	if u.members == nil {
		return nil
	}
	return u.members[u.index]
}

func (u Union) Value() any {
	return u.value
}

func (u Union) String() string {
	names := make([]string, len(u.members))
	for i, m := range u.members {
		names[i] = m.String()
	}
	return fmt.Sprintf("(%s)(%v)", strings.Join(names, "|"), u.value)
}

// Is reports whether u holds a value of member type T.
func Is[T any](u Union) bool {
	return u.members != nil && u.Type() == reflect.TypeFor[T]()
}

// As returns the value held by u if its member type is T.
func As[T any](u Union) (value T, ok bool) {
	if !Is[T](u) {
		return
	}
	value, _ = u.value.(T)
	return value, true
}

type unionParser interface {
	unionMembers() []reflect.Type
}

func sideMembers[T any](p Parser[T]) (members []reflect.Type, splice bool) {
	if up, f := p.(unionParser); f {
		return up.unionMembers(), true
	}
	return []reflect.Type{reflect.TypeFor[T]()}, false
}

func mergeMembers(dst, src []reflect.Type) ([]reflect.Type, []int) {
	indexes := make([]int, len(src))
	for i, t := range src {
		j := slices.Index(dst, t)
		if j < 0 {
			j = len(dst)
			dst = append(dst, t)
		}
		indexes[i] = j
	}
	return dst, indexes
}

type either[A, B any] struct {
	p                Parser[A]
	q                Parser[B]
	members          []reflect.Type
	pIndex, qIndex   []int
	pSplice, qSplice bool
}

// Either tries p and, if p fails, q on the same input. The first success wins.
//
// The result is a Union whose member types are the result types of p and q without duplicates,
// in first-occurrence order. If p or q is itself created by Either, its members are spliced
// instead of nesting one Union in another, so Either(Either(a, b), c) has members of a, b, and c.
// If p or q is created by Skip, Token, Prefixed, Suffixed, SkipWith, or TokenWith
// around Either, its members are spliced as well.
//
// The result is a Union even when p and q have the same result type,
// since the result type of Either cannot depend on its type arguments being equal;
// such a Union has a single member. Use Or[T] to get a value of type T itself.
func Either[A, B any](p Parser[A], q Parser[B]) Parser[Union] {
	pm, ps := sideMembers(p)
	qm, qs := sideMembers(q)
	members, pIndex := mergeMembers(nil, pm)
	members, qIndex := mergeMembers(members, qm)
	return &either[A, B]{p, q, members, pIndex, qIndex, ps, qs}
}

func (e *either[A, B]) unionMembers() []reflect.Type {
	return e.members
}

func (e *either[A, B]) wrap(v any, indexes []int, splice bool) Union {
	if splice {
		u := v.(Union)
		return Union{e.members, indexes[u.index], u.value}
	}
	return Union{e.members, indexes[0], v}
}

func (e *either[A, B]) Parse(in source.Input) (Union, source.Input, bool) {
	if a, rest, ok := e.p.Parse(in); ok {
		return e.wrap(a, e.pIndex, e.pSplice), rest, true
	}
	if b, rest, ok := e.q.Parse(in); ok {
		return e.wrap(b, e.qIndex, e.qSplice), rest, true
	}
	return fail[Union](in)
}

// Or tries each of ps in turn on the same input, the first success wins.
// All alternatives share result type, so the result is not adorned.
// Or with no alternatives always fails.
func Or[T any](ps ...Parser[T]) Parser[T] {
	return Func[T](func(in source.Input) (T, source.Input, bool) {
		for _, p := range ps {
			if v, rest, ok := p.Parse(in); ok {
				return v, rest, true
			}
		}
		return fail[T](in)
	})
}
