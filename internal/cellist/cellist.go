// Package cellist is the intrusive doubly linked backing store shared
// by every associative container. Each Cell has stable pointer
// identity for its lifetime; indices (rbtree, hashindex) hold *Cell
// references rather than copies of the value.
package cellist

// Cell holds one element. For sets only Key is used (callers using
// cellist for a set instantiate V as struct{}); for maps Value is the
// mapped value.
type Cell[K, V any] struct {
	Key   K
	Value V

	// Link is a back-pointer an index (rbtree, hashindex) may use to
	// reach its own bookkeeping node for this cell in O(1), rather than
	// re-searching by key on erase-after-find.
	Link any

	next, prev *Cell[K, V]
	list       *List[K, V]
}

// List is a sentinel-terminated doubly linked list. Begin is the
// first cell; End is the sentinel one-past-the-last. All operations
// are O(1) except EraseRange, which is O(range length), and Clear,
// which is O(n).
type List[K, V any] struct {
	end  Cell[K, V] // sentinel; end.next == Begin, end.prev == last cell
	size int
}

// New returns an empty list.
func New[K, V any]() *List[K, V] {
	l := &List[K, V]{}
	l.end.next = &l.end
	l.end.prev = &l.end
	l.end.list = l
	return l
}

// Len returns the number of cells in the list.
func (l *List[K, V]) Len() int { return l.size }

// End returns the sentinel cell. It is never dereferenceable.
func (l *List[K, V]) End() *Cell[K, V] { return &l.end }

// Begin returns the first cell, or End() if the list is empty.
func (l *List[K, V]) Begin() *Cell[K, V] { return l.end.next }

// Last returns the last cell, or End() if the list is empty.
func (l *List[K, V]) Last() *Cell[K, V] { return l.end.prev }

// Next returns the cell following c, or End() if c is the last cell.
// Next on End is undefined (it wraps around and returns Begin()).
func (c *Cell[K, V]) Next() *Cell[K, V] { return c.next }

// Prev returns the cell preceding c, or End() if c is the first cell.
func (c *Cell[K, V]) Prev() *Cell[K, V] { return c.prev }

// IsEnd reports whether c is its owning list's sentinel.
func (c *Cell[K, V]) IsEnd() bool { return c.list != nil && c == &c.list.end }

// InsertBefore splices a new cell holding (key, value) immediately
// before "before" (which may be l.End(), yielding a push-back) and
// returns it. O(1). Node identity of every other cell is preserved.
func (l *List[K, V]) InsertBefore(before *Cell[K, V], key K, value V) *Cell[K, V] {
	n := &Cell[K, V]{Key: key, Value: value, list: l}
	p := before.prev
	n.prev = p
	n.next = before
	p.next = n
	before.prev = n
	l.size++
	return n
}

// PushBack appends (key, value) at the tail. O(1).
func (l *List[K, V]) PushBack(key K, value V) *Cell[K, V] {
	return l.InsertBefore(&l.end, key, value)
}

// Erase unlinks c and returns the cell that followed it (c.Next()
// before the unlink, i.e. the cell now occupying the vacated
// position). Erasing End is undefined. O(1).
func (l *List[K, V]) Erase(c *Cell[K, V]) *Cell[K, V] {
	next := c.next
	c.prev.next = c.next
	c.next.prev = c.prev
	c.next, c.prev, c.list = nil, nil, nil
	l.size--
	return next
}

// EraseRange unlinks every cell in [first, last) and returns last.
// O(range length).
func (l *List[K, V]) EraseRange(first, last *Cell[K, V]) *Cell[K, V] {
	for c := first; c != last; {
		c = l.Erase(c)
	}
	return last
}

// Clear removes every cell, resetting the list to empty. O(n).
func (l *List[K, V]) Clear() {
	l.EraseRange(l.Begin(), l.End())
}
