// Package sequence implements the sequence containers and adaptors
// (Vector, Deque, List, Stack, Queue): thin wrappers built only to the
// degree the associative container family needs — i.e. enough to
// expose iterators satisfying the protocol in the iterator package.
package sequence

import (
	"github.com/student/gostl/iterator"
	"github.com/student/gostl/xerrors"
)

// Vector is a dynamic array, the sequence-container analogue of the
// teacher's fixed built-in array type, grown via Go's native append.
type Vector[T any] struct {
	data []T
}

// NewVector returns an empty Vector.
func NewVector[T any]() *Vector[T] { return &Vector[T]{} }

// VectorFromSlice copies vs into a new Vector.
func VectorFromSlice[T any](vs []T) *Vector[T] {
	return &Vector[T]{data: append([]T(nil), vs...)}
}

func (v *Vector[T]) Len() int    { return len(v.data) }
func (v *Vector[T]) Empty() bool { return len(v.data) == 0 }

// Reserve pre-allocates capacity for n elements, a true reservation
// hint rather than a no-op: Go's append-growth semantics make it
// cheap to do correctly.
func (v *Vector[T]) Reserve(n int) {
	if cap(v.data) >= n {
		return
	}
	grown := make([]T, len(v.data), n)
	copy(grown, v.data)
	v.data = grown
}

func (v *Vector[T]) PushBack(val T) { v.data = append(v.data, val) }

func (v *Vector[T]) PopBack() error {
	if len(v.data) == 0 {
		return xerrors.NewLogicError(xerrors.OutOfRange, "Vector.PopBack: empty")
	}
	v.data = v.data[:len(v.data)-1]
	return nil
}

func (v *Vector[T]) Front() (T, error) {
	var zero T
	if len(v.data) == 0 {
		return zero, xerrors.NewLogicError(xerrors.OutOfRange, "Vector.Front: empty")
	}
	return v.data[0], nil
}

func (v *Vector[T]) Back() (T, error) {
	var zero T
	if len(v.data) == 0 {
		return zero, xerrors.NewLogicError(xerrors.OutOfRange, "Vector.Back: empty")
	}
	return v.data[len(v.data)-1], nil
}

// Get returns the element at index i. Undefined if i is out of range:
// precondition violations are UB, not checked.
func (v *Vector[T]) Get(i int) T { return v.data[i] }

// Set overwrites the element at index i.
func (v *Vector[T]) Set(i int, val T) { v.data[i] = val }

// At is the checked counterpart to Get, returning an out-of-range
// error instead of panicking.
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(v.data) {
		return zero, xerrors.NewLogicError(xerrors.OutOfRange, "Vector.At: index out of range")
	}
	return v.data[i], nil
}

// Insert inserts val before index pos.
func (v *Vector[T]) Insert(pos int, val T) {
	v.data = append(v.data, val)
	copy(v.data[pos+1:], v.data[pos:len(v.data)-1])
	v.data[pos] = val
}

// Erase removes the element at index pos.
func (v *Vector[T]) Erase(pos int) {
	v.data = append(v.data[:pos], v.data[pos+1:]...)
}

// Clear empties the Vector without shrinking its capacity.
func (v *Vector[T]) Clear() { v.data = v.data[:0] }

// Slice returns the backing slice itself, not a copy, for callers that
// need a plain Go slice (e.g. sort.Slice interop); writes through it
// modify the Vector.
func (v *Vector[T]) Slice() []T { return v.data }

// VectorIterator is a RandomAccess iterator over a Vector.
type VectorIterator[T any] struct {
	v   *Vector[T]
	idx int
}

// Begin returns an iterator to the first element, or End if empty.
func (v *Vector[T]) Begin() VectorIterator[T] { return VectorIterator[T]{v, 0} }

// End returns the sentinel one-past-the-last iterator.
func (v *Vector[T]) End() VectorIterator[T] { return VectorIterator[T]{v, len(v.data)} }

func (it VectorIterator[T]) Value() T { return it.v.data[it.idx] }

func (it VectorIterator[T]) Next() iterator.Forward[T] {
	return VectorIterator[T]{it.v, it.idx + 1}
}

func (it VectorIterator[T]) Prev() iterator.Bidirectional[T] {
	return VectorIterator[T]{it.v, it.idx - 1}
}

func (it VectorIterator[T]) Index() int { return it.idx }

func (it VectorIterator[T]) Advance(n int) iterator.RandomAccess[T] {
	return VectorIterator[T]{it.v, it.idx + n}
}

func (it VectorIterator[T]) EqualTo(other iterator.Forward[T]) bool {
	o, ok := other.(VectorIterator[T])
	return ok && it.v == o.v && it.idx == o.idx
}
