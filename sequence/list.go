package sequence

import (
	"github.com/student/gostl/internal/cellist"
	"github.com/student/gostl/iterator"
	"github.com/student/gostl/xerrors"
)

// List is the sequence-container analogue of the associative
// containers' intrusive backing list: a doubly linked list with
// stable node identity, reused directly from internal/cellist rather
// than reimplemented, since its O(1) splice operations are exactly
// what a standalone List needs.
type List[T any] struct {
	l *cellist.List[T, struct{}]
}

// NewList returns an empty List.
func NewList[T any]() *List[T] { return &List[T]{l: cellist.New[T, struct{}]()} }

func (l *List[T]) Len() int    { return l.l.Len() }
func (l *List[T]) Empty() bool { return l.l.Len() == 0 }

func (l *List[T]) PushBack(v T) { l.l.PushBack(v, struct{}{}) }

func (l *List[T]) PushFront(v T) { l.l.InsertBefore(l.l.Begin(), v, struct{}{}) }

func (l *List[T]) PopBack() error {
	if l.Empty() {
		return xerrors.NewLogicError(xerrors.OutOfRange, "List.PopBack: empty")
	}
	l.l.Erase(l.l.Last())
	return nil
}

func (l *List[T]) PopFront() error {
	if l.Empty() {
		return xerrors.NewLogicError(xerrors.OutOfRange, "List.PopFront: empty")
	}
	l.l.Erase(l.l.Begin())
	return nil
}

func (l *List[T]) Front() (T, error) {
	var zero T
	if l.Empty() {
		return zero, xerrors.NewLogicError(xerrors.OutOfRange, "List.Front: empty")
	}
	return l.l.Begin().Key, nil
}

func (l *List[T]) Back() (T, error) {
	var zero T
	if l.Empty() {
		return zero, xerrors.NewLogicError(xerrors.OutOfRange, "List.Back: empty")
	}
	return l.l.Last().Key, nil
}

func (l *List[T]) Clear() { l.l.Clear() }

// ListIterator is a Bidirectional iterator over a List.
type ListIterator[T any] struct {
	l    *cellist.List[T, struct{}]
	cell *cellist.Cell[T, struct{}]
}

func (l *List[T]) Begin() ListIterator[T] { return ListIterator[T]{l.l, l.l.Begin()} }
func (l *List[T]) End() ListIterator[T]   { return ListIterator[T]{l.l, l.l.End()} }

// Insert splices v immediately before it and returns an iterator to
// the new node. O(1); no existing iterator is invalidated.
func (l *List[T]) Insert(it ListIterator[T], v T) ListIterator[T] {
	return ListIterator[T]{l.l, l.l.InsertBefore(it.cell, v, struct{}{})}
}

// Erase unlinks the node at it and returns an iterator to the node
// that followed it.
func (l *List[T]) Erase(it ListIterator[T]) ListIterator[T] {
	return ListIterator[T]{l.l, l.l.Erase(it.cell)}
}

// EraseRange unlinks every node in [first, last) and returns last.
func (l *List[T]) EraseRange(first, last ListIterator[T]) ListIterator[T] {
	return ListIterator[T]{l.l, l.l.EraseRange(first.cell, last.cell)}
}

func (it ListIterator[T]) Value() T { return it.cell.Key }

func (it ListIterator[T]) Next() iterator.Forward[T] {
	return ListIterator[T]{it.l, it.cell.Next()}
}

func (it ListIterator[T]) Prev() iterator.Bidirectional[T] {
	return ListIterator[T]{it.l, it.cell.Prev()}
}

func (it ListIterator[T]) EqualTo(other iterator.Forward[T]) bool {
	o, ok := other.(ListIterator[T])
	return ok && it.l == o.l && it.cell == o.cell
}
