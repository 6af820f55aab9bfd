package container

import (
	"github.com/student/gostl/cmp"
	"github.com/student/gostl/internal/cellist"
	"github.com/student/gostl/iterator"
	"golang.org/x/exp/constraints"
)

// TreeSet is a tree-backed, uniquely-keyed ordered set.
type TreeSet[T any] struct {
	core *treeCore[T, struct{}]
}

// NewTreeSet returns an empty TreeSet ordered by cmp.Less, or by the
// comparator supplied via WithComparator.
func NewTreeSet[T constraints.Ordered](opts ...TreeOption[T]) *TreeSet[T] {
	cfg := resolveTreeConfig(cmp.Less[T], opts)
	return &TreeSet[T]{core: newTreeCore[T, struct{}](cfg.Less, true)}
}

// NewTreeSetFunc returns an empty TreeSet ordered by less, for
// element types with no natural ordering.
func NewTreeSetFunc[T any](less func(a, b T) bool) *TreeSet[T] {
	return &TreeSet[T]{core: newTreeCore[T, struct{}](less, true)}
}

// TreeSetFromSlice builds a TreeSet from vs, ordered by cmp.Less.
func TreeSetFromSlice[T constraints.Ordered](vs []T) *TreeSet[T] {
	s := NewTreeSet[T]()
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

// TreeSetFromSliceFunc builds a TreeSet from vs, ordered by less.
func TreeSetFromSliceFunc[T any](vs []T, less func(a, b T) bool) *TreeSet[T] {
	s := NewTreeSetFunc(less)
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

// TreeSetFromRange builds a TreeSet from [first, last), ordered by
// cmp.Less.
func TreeSetFromRange[T constraints.Ordered](first, last iterator.Forward[T]) *TreeSet[T] {
	s := NewTreeSet[T]()
	s.InsertRange(first, last)
	return s
}

// TreeSetFromRangeFunc builds a TreeSet from [first, last), ordered by
// less.
func TreeSetFromRangeFunc[T any](first, last iterator.Forward[T], less func(a, b T) bool) *TreeSet[T] {
	s := NewTreeSetFunc(less)
	s.InsertRange(first, last)
	return s
}

// TreeSetFromContainer returns a copy of src — the named-factory form
// of the copy constructor, equivalent to src.Clone().
func TreeSetFromContainer[T any](src *TreeSet[T]) *TreeSet[T] {
	return src.Clone()
}

// Clone returns an independent copy of s with the same comparator.
func (s *TreeSet[T]) Clone() *TreeSet[T] {
	c := &TreeSet[T]{core: newTreeCore[T, struct{}](s.core.less, true)}
	c.InsertRange(s.Begin(), s.End())
	return c
}

func (s *TreeSet[T]) Len() int    { return s.core.Len() }
func (s *TreeSet[T]) Empty() bool { return s.core.Len() == 0 }
func (s *TreeSet[T]) Clear()      { s.core.Clear() }

func (s *TreeSet[T]) wrap(cell *cellist.Cell[T, struct{}]) SetIterator[T] {
	if cell == nil {
		return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.End()}}
	}
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, cell}}
}

// Begin returns an iterator to the smallest element, or End if empty.
func (s *TreeSet[T]) Begin() SetIterator[T] {
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.Begin()}}
}

// End returns the non-dereferenceable sentinel iterator.
func (s *TreeSet[T]) End() SetIterator[T] {
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.End()}}
}

// Find returns an iterator to an element equivalent to v, or End.
func (s *TreeSet[T]) Find(v T) SetIterator[T] { return s.wrap(s.core.Find(v)) }

// Count returns the number of elements equivalent to v (0 or 1).
func (s *TreeSet[T]) Count(v T) int { return s.core.Count(v) }

// Contains reports whether an element equivalent to v is present.
func (s *TreeSet[T]) Contains(v T) bool { return s.core.Find(v) != nil }

// LowerBound returns an iterator to the smallest element not less
// than v.
func (s *TreeSet[T]) LowerBound(v T) SetIterator[T] { return s.wrap(s.core.LowerBound(v)) }

// UpperBound returns an iterator to the smallest element strictly
// greater than v.
func (s *TreeSet[T]) UpperBound(v T) SetIterator[T] { return s.wrap(s.core.UpperBound(v)) }

// EqualRange returns [LowerBound(v), UpperBound(v)).
func (s *TreeSet[T]) EqualRange(v T) (lo, hi SetIterator[T]) {
	l, h := s.core.EqualRange(v)
	return s.wrap(l), s.wrap(h)
}

// Insert adds v if no equivalent element is present. Returns the
// element's iterator and whether insertion happened.
func (s *TreeSet[T]) Insert(v T) (SetIterator[T], bool) {
	cell, inserted := s.core.Insert(v, struct{}{})
	return s.wrap(cell), inserted
}

// InsertHint inserts v immediately after hint when hint strictly
// precedes v and its successor is End or strictly follows v; that
// list placement is O(1). The tree index is still updated by a full
// O(log n) descent from the root, so the call as a whole is O(log n).
// An End hint or a wrong hint falls back to Insert.
func (s *TreeSet[T]) InsertHint(hint SetIterator[T], v T) (SetIterator[T], bool) {
	cell, inserted := s.core.InsertHint(hint.cell, v, struct{}{})
	return s.wrap(cell), inserted
}

// InsertRange inserts every element in [first, last) via Insert,
// skipping any already equivalent to an existing element.
func (s *TreeSet[T]) InsertRange(first, last iterator.Forward[T]) {
	for cur := first; !cur.EqualTo(last); cur = cur.Next() {
		s.Insert(cur.Value())
	}
}

// Erase removes the element at it and returns an iterator to the
// element that followed it.
func (s *TreeSet[T]) Erase(it SetIterator[T]) SetIterator[T] {
	return s.wrap(s.core.Erase(it.cell))
}

// EraseKey removes the element equivalent to v, if any, and reports
// how many elements were removed (0 or 1).
func (s *TreeSet[T]) EraseKey(v T) int { return s.core.EraseKey(v) }

// EraseRange removes [first, last) and returns last.
func (s *TreeSet[T]) EraseRange(first, last SetIterator[T]) SetIterator[T] {
	return s.wrap(s.core.EraseRange(first.cell, last.cell))
}

// Swap exchanges contents (including comparator state) with other in
// O(1).
func (s *TreeSet[T]) Swap(other *TreeSet[T]) { s.core.Swap(other.core) }

// KeyComp returns the set's ordering comparator.
func (s *TreeSet[T]) KeyComp() func(a, b T) bool { return s.core.less }

// TreeMultiSet is a tree-backed ordered set permitting duplicate
// (equivalent) elements.
type TreeMultiSet[T any] struct {
	core *treeCore[T, struct{}]
}

func NewTreeMultiSet[T constraints.Ordered](opts ...TreeOption[T]) *TreeMultiSet[T] {
	cfg := resolveTreeConfig(cmp.Less[T], opts)
	return &TreeMultiSet[T]{core: newTreeCore[T, struct{}](cfg.Less, false)}
}

func NewTreeMultiSetFunc[T any](less func(a, b T) bool) *TreeMultiSet[T] {
	return &TreeMultiSet[T]{core: newTreeCore[T, struct{}](less, false)}
}

func TreeMultiSetFromSlice[T constraints.Ordered](vs []T) *TreeMultiSet[T] {
	s := NewTreeMultiSet[T]()
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

// TreeMultiSetFromSliceFunc builds a TreeMultiSet from vs, ordered by
// less.
func TreeMultiSetFromSliceFunc[T any](vs []T, less func(a, b T) bool) *TreeMultiSet[T] {
	s := NewTreeMultiSetFunc(less)
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

// TreeMultiSetFromRange builds a TreeMultiSet from [first, last),
// ordered by cmp.Less.
func TreeMultiSetFromRange[T constraints.Ordered](first, last iterator.Forward[T]) *TreeMultiSet[T] {
	s := NewTreeMultiSet[T]()
	s.InsertRange(first, last)
	return s
}

// TreeMultiSetFromRangeFunc builds a TreeMultiSet from [first, last),
// ordered by less.
func TreeMultiSetFromRangeFunc[T any](first, last iterator.Forward[T], less func(a, b T) bool) *TreeMultiSet[T] {
	s := NewTreeMultiSetFunc(less)
	s.InsertRange(first, last)
	return s
}

// TreeMultiSetFromContainer returns a copy of src.
func TreeMultiSetFromContainer[T any](src *TreeMultiSet[T]) *TreeMultiSet[T] {
	return src.Clone()
}

// Clone returns an independent copy of s with the same comparator.
func (s *TreeMultiSet[T]) Clone() *TreeMultiSet[T] {
	c := &TreeMultiSet[T]{core: newTreeCore[T, struct{}](s.core.less, false)}
	c.InsertRange(s.Begin(), s.End())
	return c
}

func (s *TreeMultiSet[T]) Len() int    { return s.core.Len() }
func (s *TreeMultiSet[T]) Empty() bool { return s.core.Len() == 0 }
func (s *TreeMultiSet[T]) Clear()      { s.core.Clear() }

func (s *TreeMultiSet[T]) wrap(cell *cellist.Cell[T, struct{}]) SetIterator[T] {
	if cell == nil {
		return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.End()}}
	}
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, cell}}
}

func (s *TreeMultiSet[T]) Begin() SetIterator[T] {
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.Begin()}}
}

func (s *TreeMultiSet[T]) End() SetIterator[T] {
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.End()}}
}

func (s *TreeMultiSet[T]) Find(v T) SetIterator[T]       { return s.wrap(s.core.Find(v)) }
func (s *TreeMultiSet[T]) Count(v T) int                 { return s.core.Count(v) }
func (s *TreeMultiSet[T]) LowerBound(v T) SetIterator[T] { return s.wrap(s.core.LowerBound(v)) }
func (s *TreeMultiSet[T]) UpperBound(v T) SetIterator[T] { return s.wrap(s.core.UpperBound(v)) }

func (s *TreeMultiSet[T]) EqualRange(v T) (lo, hi SetIterator[T]) {
	l, h := s.core.EqualRange(v)
	return s.wrap(l), s.wrap(h)
}

// Insert always adds v and returns its iterator.
func (s *TreeMultiSet[T]) Insert(v T) SetIterator[T] {
	cell, _ := s.core.Insert(v, struct{}{})
	return s.wrap(cell)
}

func (s *TreeMultiSet[T]) InsertHint(hint SetIterator[T], v T) SetIterator[T] {
	cell, _ := s.core.InsertHint(hint.cell, v, struct{}{})
	return s.wrap(cell)
}

// InsertRange inserts every element in [first, last).
func (s *TreeMultiSet[T]) InsertRange(first, last iterator.Forward[T]) {
	for cur := first; !cur.EqualTo(last); cur = cur.Next() {
		s.Insert(cur.Value())
	}
}

func (s *TreeMultiSet[T]) Erase(it SetIterator[T]) SetIterator[T] {
	return s.wrap(s.core.Erase(it.cell))
}

func (s *TreeMultiSet[T]) EraseKey(v T) int { return s.core.EraseKey(v) }

func (s *TreeMultiSet[T]) EraseRange(first, last SetIterator[T]) SetIterator[T] {
	return s.wrap(s.core.EraseRange(first.cell, last.cell))
}

func (s *TreeMultiSet[T]) Swap(other *TreeMultiSet[T]) { s.core.Swap(other.core) }

func (s *TreeMultiSet[T]) KeyComp() func(a, b T) bool { return s.core.less }
