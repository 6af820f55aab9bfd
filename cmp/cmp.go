// Package cmp provides the comparator, equality, and hash defaults shared
// by every container in gostl, along with the small set of interfaces a
// user type can implement to override them.
package cmp

import (
	"fmt"
	"hash/fnv"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Comparator is a strict weak ordering over T: irreflexive, asymmetric,
// and transitive, with a transitive derived equivalence.
type Comparator[T any] func(a, b T) bool

// Lesser is implemented by user types that know how to order themselves.
// Less mirrors the conventional "a < b" STL comparator contract.
type Lesser[T any] interface {
	Less(other T) bool
}

// Equaler is implemented by user types with a notion of strong equality
// distinct from their Comparator's derived equivalence.
type Equaler[T any] interface {
	EqualTo(other T) bool
}

// Hasher is implemented by user types with a custom hash code.
type Hasher interface {
	HashCode() uint32
}

// Less returns the default ordering for ordered primitives.
func Less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// LessAny reports whether a orders before b, preferring a user Less
// method, falling back to lexicographic comparison of the %v
// representation. It has the shape of a Comparator[T] and can serve
// as one where a type parameter cannot be constrained to
// constraints.Ordered (e.g. container value types supplied by callers
// that only satisfy `any`).
func LessAny[T any](a, b T) bool {
	if al, ok := any(a).(Lesser[T]); ok {
		return al.Less(b)
	}
	return fmt.Sprintf("%v", a) < fmt.Sprintf("%v", b)
}

// Equiv derives the equivalence relation induced by a strict weak
// ordering: a ≡ b ⇔ ¬less(a,b) ∧ ¬less(b,a). Tree containers must use
// this, not EqualTo, for uniqueness.
func Equiv[T any](less Comparator[T], a, b T) bool {
	return !less(a, b) && !less(b, a)
}

// EqualTo is the default strong-equality predicate: a user EqualTo
// method if present, else deep structural equality.
func EqualTo[T any](a, b T) bool {
	if ae, ok := any(a).(Equaler[T]); ok {
		return ae.EqualTo(b)
	}
	return reflect.DeepEqual(a, b)
}

// Hash computes a 32-bit FNV-1a hash over the UTF-8 bytes of v's
// canonical string form, or delegates to a user HashCode method.
func Hash[T any](v T) uint32 {
	if h, ok := any(v).(Hasher); ok {
		return h.HashCode()
	}
	f := fnv.New32a()
	_, _ = f.Write([]byte(fmt.Sprintf("%v", v)))
	return f.Sum32()
}

// EqualFunc returns an equality predicate for T, matching the
// EqualTo default but usable as a first-class func value.
func EqualFunc[T any]() func(a, b T) bool {
	return EqualTo[T]
}
