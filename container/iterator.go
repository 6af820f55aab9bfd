package container

import (
	"github.com/student/gostl/internal/cellist"
	"github.com/student/gostl/iterator"
	"github.com/student/gostl/pair"
)

// cellIter is the shared cell-traversal core behind every tree/hash
// container iterator. Containers wrap it to present their own element
// type (K for sets, pair.Pair[K,V] for maps).
type cellIter[K, V any] struct {
	list *cellist.List[K, V]
	cell *cellist.Cell[K, V]
}

func (c cellIter[K, V]) isEnd() bool { return c.cell.IsEnd() }

func (c cellIter[K, V]) sameList(o cellIter[K, V]) bool { return c.list == o.list }

// SetIterator is the Bidirectional iterator over TreeSet/HashSet.
type SetIterator[T any] struct {
	cellIter[T, struct{}]
}

func (it SetIterator[T]) Value() T { return it.cell.Key }

func (it SetIterator[T]) Next() iterator.Forward[T] {
	return SetIterator[T]{cellIter[T, struct{}]{it.list, it.cell.Next()}}
}

func (it SetIterator[T]) Prev() iterator.Bidirectional[T] {
	return SetIterator[T]{cellIter[T, struct{}]{it.list, it.cell.Prev()}}
}

func (it SetIterator[T]) EqualTo(other iterator.Forward[T]) bool {
	o, ok := other.(SetIterator[T])
	return ok && it.sameList(o.cellIter) && it.cell == o.cell
}

// IsEnd reports whether it is the container's sentinel End iterator.
func (it SetIterator[T]) IsEnd() bool { return it.isEnd() }

// NextT is Next without the iterator.Forward type assertion, for
// callers traversing within the container package's own type.
func (it SetIterator[T]) NextT() SetIterator[T] { return it.Next().(SetIterator[T]) }

// PrevT is Prev without the iterator.Bidirectional type assertion.
func (it SetIterator[T]) PrevT() SetIterator[T] { return it.Prev().(SetIterator[T]) }

// MapIterator is the Bidirectional iterator over TreeMap/HashMap. Its
// Value is a Pair; MappedValue/SetValue give direct access to (and
// in-place mutation of) the value half, since map values — unlike
// keys — are mutable post-insertion.
type MapIterator[K, V any] struct {
	cellIter[K, V]
}

func (it MapIterator[K, V]) Value() pair.Pair[K, V] { return pair.Make(it.cell.Key, it.cell.Value) }

func (it MapIterator[K, V]) Key() K { return it.cell.Key }

func (it MapIterator[K, V]) MappedValue() V { return it.cell.Value }

// SetValue mutates the value half of the cell in place. Undefined if
// it is the End iterator.
func (it MapIterator[K, V]) SetValue(v V) { it.cell.Value = v }

func (it MapIterator[K, V]) Next() iterator.Forward[pair.Pair[K, V]] {
	return MapIterator[K, V]{cellIter[K, V]{it.list, it.cell.Next()}}
}

func (it MapIterator[K, V]) Prev() iterator.Bidirectional[pair.Pair[K, V]] {
	return MapIterator[K, V]{cellIter[K, V]{it.list, it.cell.Prev()}}
}

func (it MapIterator[K, V]) EqualTo(other iterator.Forward[pair.Pair[K, V]]) bool {
	o, ok := other.(MapIterator[K, V])
	return ok && it.sameList(o.cellIter) && it.cell == o.cell
}

// IsEnd reports whether it is the container's sentinel End iterator.
func (it MapIterator[K, V]) IsEnd() bool { return it.isEnd() }

// NextT is Next without the iterator.Forward type assertion.
func (it MapIterator[K, V]) NextT() MapIterator[K, V] { return it.Next().(MapIterator[K, V]) }

// PrevT is Prev without the iterator.Bidirectional type assertion.
func (it MapIterator[K, V]) PrevT() MapIterator[K, V] { return it.Prev().(MapIterator[K, V]) }
