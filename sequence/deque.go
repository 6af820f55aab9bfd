package sequence

import "github.com/student/gostl/xerrors"

// Deque is a double-ended queue backed by a single growable buffer
// with a head offset, so PushFront and PushBack are both amortized
// O(1) without shifting the whole buffer on every front push.
type Deque[T any] struct {
	buf  []T
	head int
}

// NewDeque returns an empty Deque.
func NewDeque[T any]() *Deque[T] { return &Deque[T]{} }

func (d *Deque[T]) Len() int    { return len(d.buf) - d.head }
func (d *Deque[T]) Empty() bool { return d.Len() == 0 }

func (d *Deque[T]) PushBack(v T) { d.buf = append(d.buf, v) }

func (d *Deque[T]) PushFront(v T) {
	if d.head > 0 {
		d.head--
		d.buf[d.head] = v
		return
	}
	// No room before head: reallocate with n+1 slots of spare room up
	// front so the next n+1 PushFronts are O(1) before regrowing,
	// giving the same amortized-doubling behavior PushBack gets for
	// free from append.
	n := d.Len()
	spare := n + 1
	grown := make([]T, spare+n+1)
	copy(grown[spare+1:], d.buf[d.head:d.head+n])
	grown[spare] = v
	d.buf = grown
	d.head = spare
}

func (d *Deque[T]) PopBack() error {
	if d.Empty() {
		return xerrors.NewLogicError(xerrors.OutOfRange, "Deque.PopBack: empty")
	}
	d.buf = d.buf[:len(d.buf)-1]
	return nil
}

func (d *Deque[T]) PopFront() error {
	if d.Empty() {
		return xerrors.NewLogicError(xerrors.OutOfRange, "Deque.PopFront: empty")
	}
	d.head++
	switch {
	case d.head == len(d.buf):
		// Drained: drop the backing array instead of letting a
		// PushBack-only/PopFront-only usage (a Queue) grow it without
		// bound.
		d.buf = d.buf[:0]
		d.head = 0
	case d.head*2 > len(d.buf):
		// More than half the buffer is consumed front space; compact
		// now so that space doesn't accumulate indefinitely under
		// sustained push/pop traffic.
		n := copy(d.buf, d.buf[d.head:])
		d.buf = d.buf[:n]
		d.head = 0
	}
	return nil
}

func (d *Deque[T]) Front() (T, error) {
	var zero T
	if d.Empty() {
		return zero, xerrors.NewLogicError(xerrors.OutOfRange, "Deque.Front: empty")
	}
	return d.buf[d.head], nil
}

func (d *Deque[T]) Back() (T, error) {
	var zero T
	if d.Empty() {
		return zero, xerrors.NewLogicError(xerrors.OutOfRange, "Deque.Back: empty")
	}
	return d.buf[len(d.buf)-1], nil
}

// Get returns the i-th element from the front. Undefined if out of
// range.
func (d *Deque[T]) Get(i int) T { return d.buf[d.head+i] }

// Set overwrites the i-th element from the front.
func (d *Deque[T]) Set(i int, v T) { d.buf[d.head+i] = v }

// Clear empties the Deque.
func (d *Deque[T]) Clear() {
	d.buf = d.buf[:0]
	d.head = 0
}
