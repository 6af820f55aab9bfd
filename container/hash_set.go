package container

import (
	"github.com/student/gostl/cmp"
	"github.com/student/gostl/internal/cellist"
	"github.com/student/gostl/iterator"
)

// HashSet is a hash-backed, uniquely-keyed unordered set.
type HashSet[T comparable] struct {
	core *hashCore[T, struct{}]
}

// NewHashSet returns an empty HashSet using cmp.Hash and ==.
func NewHashSet[T comparable](opts ...HashOption[T]) *HashSet[T] {
	cfg := resolveHashConfig(cmp.Hash[T], equalComparable[T], opts)
	core := newHashCore[T, struct{}](cfg.Hash, cfg.Eq, true)
	applyHashConfig(core, cfg)
	return &HashSet[T]{core: core}
}

func equalComparable[T comparable](a, b T) bool { return a == b }

// HashSetFromSlice builds a HashSet from vs.
func HashSetFromSlice[T comparable](vs []T, opts ...HashOption[T]) *HashSet[T] {
	s := NewHashSet[T](opts...)
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

// HashSetFromRange builds a HashSet from [first, last).
func HashSetFromRange[T comparable](first, last iterator.Forward[T], opts ...HashOption[T]) *HashSet[T] {
	s := NewHashSet[T](opts...)
	s.InsertRange(first, last)
	return s
}

// HashSetFromContainer returns a copy of src.
func HashSetFromContainer[T comparable](src *HashSet[T]) *HashSet[T] {
	return src.Clone()
}

// Clone returns an independent copy of s with the same hash/equality
// functions and load-factor threshold.
func (s *HashSet[T]) Clone() *HashSet[T] {
	core := newHashCore[T, struct{}](s.core.hash, s.core.eq, true)
	core.index.SetMaxLoadFactor(s.core.index.MaxLoadFactor())
	c := &HashSet[T]{core: core}
	c.InsertRange(s.Begin(), s.End())
	return c
}

func (s *HashSet[T]) Len() int    { return s.core.Len() }
func (s *HashSet[T]) Empty() bool { return s.core.Len() == 0 }
func (s *HashSet[T]) Clear()      { s.core.Clear() }

func (s *HashSet[T]) wrap(cell *cellist.Cell[T, struct{}]) SetIterator[T] {
	if cell == nil {
		return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.End()}}
	}
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, cell}}
}

func (s *HashSet[T]) Begin() SetIterator[T] {
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.Begin()}}
}

func (s *HashSet[T]) End() SetIterator[T] {
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.End()}}
}

func (s *HashSet[T]) Find(v T) SetIterator[T] { return s.wrap(s.core.Find(v)) }
func (s *HashSet[T]) Count(v T) int           { return s.core.Count(v) }
func (s *HashSet[T]) Contains(v T) bool       { return s.core.Find(v) != nil }

func (s *HashSet[T]) EqualRange(v T) (lo, hi SetIterator[T]) {
	l, h := s.core.EqualRange(v)
	return s.wrap(l), s.wrap(h)
}

func (s *HashSet[T]) Insert(v T) (SetIterator[T], bool) {
	cell, inserted := s.core.Insert(v, struct{}{})
	return s.wrap(cell), inserted
}

// InsertRange inserts every element in [first, last), skipping any
// already present.
func (s *HashSet[T]) InsertRange(first, last iterator.Forward[T]) {
	for cur := first; !cur.EqualTo(last); cur = cur.Next() {
		s.Insert(cur.Value())
	}
}

func (s *HashSet[T]) Erase(it SetIterator[T]) SetIterator[T] {
	return s.wrap(s.core.Erase(it.cell))
}

func (s *HashSet[T]) EraseKey(v T) int { return s.core.EraseKey(v) }

func (s *HashSet[T]) EraseRange(first, last SetIterator[T]) SetIterator[T] {
	return s.wrap(s.core.EraseRange(first.cell, last.cell))
}

func (s *HashSet[T]) Swap(other *HashSet[T]) { s.core.Swap(other.core) }

func (s *HashSet[T]) HashFunction() func(T) uint32 { return s.core.hash }
func (s *HashSet[T]) KeyEq() func(a, b T) bool     { return s.core.eq }
func (s *HashSet[T]) BucketCount() int             { return s.core.index.BucketCount() }
func (s *HashSet[T]) LoadFactor() float64          { return s.core.index.LoadFactor() }

// HashMultiSet is a hash-backed unordered set permitting duplicate
// keys.
type HashMultiSet[T comparable] struct {
	core *hashCore[T, struct{}]
}

func NewHashMultiSet[T comparable](opts ...HashOption[T]) *HashMultiSet[T] {
	cfg := resolveHashConfig(cmp.Hash[T], equalComparable[T], opts)
	core := newHashCore[T, struct{}](cfg.Hash, cfg.Eq, false)
	applyHashConfig(core, cfg)
	return &HashMultiSet[T]{core: core}
}

// HashMultiSetFromSlice builds a HashMultiSet from vs.
func HashMultiSetFromSlice[T comparable](vs []T, opts ...HashOption[T]) *HashMultiSet[T] {
	s := NewHashMultiSet[T](opts...)
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

// HashMultiSetFromRange builds a HashMultiSet from [first, last).
func HashMultiSetFromRange[T comparable](first, last iterator.Forward[T], opts ...HashOption[T]) *HashMultiSet[T] {
	s := NewHashMultiSet[T](opts...)
	s.InsertRange(first, last)
	return s
}

// HashMultiSetFromContainer returns a copy of src.
func HashMultiSetFromContainer[T comparable](src *HashMultiSet[T]) *HashMultiSet[T] {
	return src.Clone()
}

// Clone returns an independent copy of s with the same hash/equality
// functions and load-factor threshold.
func (s *HashMultiSet[T]) Clone() *HashMultiSet[T] {
	core := newHashCore[T, struct{}](s.core.hash, s.core.eq, false)
	core.index.SetMaxLoadFactor(s.core.index.MaxLoadFactor())
	c := &HashMultiSet[T]{core: core}
	c.InsertRange(s.Begin(), s.End())
	return c
}

func (s *HashMultiSet[T]) Len() int    { return s.core.Len() }
func (s *HashMultiSet[T]) Empty() bool { return s.core.Len() == 0 }
func (s *HashMultiSet[T]) Clear()      { s.core.Clear() }

func (s *HashMultiSet[T]) wrap(cell *cellist.Cell[T, struct{}]) SetIterator[T] {
	if cell == nil {
		return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.End()}}
	}
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, cell}}
}

func (s *HashMultiSet[T]) Begin() SetIterator[T] {
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.Begin()}}
}

func (s *HashMultiSet[T]) End() SetIterator[T] {
	return SetIterator[T]{cellIter[T, struct{}]{s.core.list, s.core.End()}}
}

func (s *HashMultiSet[T]) Find(v T) SetIterator[T] { return s.wrap(s.core.Find(v)) }
func (s *HashMultiSet[T]) Count(v T) int           { return s.core.Count(v) }

func (s *HashMultiSet[T]) EqualRange(v T) (lo, hi SetIterator[T]) {
	l, h := s.core.EqualRange(v)
	return s.wrap(l), s.wrap(h)
}

func (s *HashMultiSet[T]) Insert(v T) SetIterator[T] {
	cell, _ := s.core.Insert(v, struct{}{})
	return s.wrap(cell)
}

// InsertRange inserts every element in [first, last).
func (s *HashMultiSet[T]) InsertRange(first, last iterator.Forward[T]) {
	for cur := first; !cur.EqualTo(last); cur = cur.Next() {
		s.Insert(cur.Value())
	}
}

func (s *HashMultiSet[T]) Erase(it SetIterator[T]) SetIterator[T] {
	return s.wrap(s.core.Erase(it.cell))
}

func (s *HashMultiSet[T]) EraseKey(v T) int { return s.core.EraseKey(v) }

func (s *HashMultiSet[T]) EraseRange(first, last SetIterator[T]) SetIterator[T] {
	return s.wrap(s.core.EraseRange(first.cell, last.cell))
}

func (s *HashMultiSet[T]) Swap(other *HashMultiSet[T]) { s.core.Swap(other.core) }

func (s *HashMultiSet[T]) HashFunction() func(T) uint32 { return s.core.hash }
func (s *HashMultiSet[T]) KeyEq() func(a, b T) bool     { return s.core.eq }
