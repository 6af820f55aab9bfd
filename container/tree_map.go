package container

import (
	"github.com/student/gostl/cmp"
	"github.com/student/gostl/internal/cellist"
	"github.com/student/gostl/iterator"
	"github.com/student/gostl/pair"
	"github.com/student/gostl/xerrors"
	"golang.org/x/exp/constraints"
)

// TreeMap is a tree-backed, uniquely-keyed ordered map.
type TreeMap[K, V any] struct {
	core *treeCore[K, V]
}

func NewTreeMap[K constraints.Ordered, V any](opts ...TreeOption[K]) *TreeMap[K, V] {
	cfg := resolveTreeConfig(cmp.Less[K], opts)
	return &TreeMap[K, V]{core: newTreeCore[K, V](cfg.Less, true)}
}

func NewTreeMapFunc[K, V any](less func(a, b K) bool) *TreeMap[K, V] {
	return &TreeMap[K, V]{core: newTreeCore[K, V](less, true)}
}

// TreeMapFromSlice builds a TreeMap from vs, ordered by cmp.Less. As
// with Insert, the first occurrence of a duplicate key wins.
func TreeMapFromSlice[K constraints.Ordered, V any](vs []pair.Pair[K, V]) *TreeMap[K, V] {
	m := NewTreeMap[K, V]()
	for _, p := range vs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// TreeMapFromSliceFunc builds a TreeMap from vs, ordered by less.
func TreeMapFromSliceFunc[K, V any](vs []pair.Pair[K, V], less func(a, b K) bool) *TreeMap[K, V] {
	m := NewTreeMapFunc[K, V](less)
	for _, p := range vs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// TreeMapFromRange builds a TreeMap from [first, last), ordered by
// cmp.Less.
func TreeMapFromRange[K constraints.Ordered, V any](first, last iterator.Forward[pair.Pair[K, V]]) *TreeMap[K, V] {
	m := NewTreeMap[K, V]()
	m.InsertRange(first, last)
	return m
}

// TreeMapFromRangeFunc builds a TreeMap from [first, last), ordered by
// less.
func TreeMapFromRangeFunc[K, V any](first, last iterator.Forward[pair.Pair[K, V]], less func(a, b K) bool) *TreeMap[K, V] {
	m := NewTreeMapFunc[K, V](less)
	m.InsertRange(first, last)
	return m
}

// TreeMapFromContainer returns a copy of src.
func TreeMapFromContainer[K, V any](src *TreeMap[K, V]) *TreeMap[K, V] {
	return src.Clone()
}

// Clone returns an independent copy of m with the same comparator.
func (m *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	c := &TreeMap[K, V]{core: newTreeCore[K, V](m.core.less, true)}
	c.InsertRange(m.Begin(), m.End())
	return c
}

func (m *TreeMap[K, V]) Len() int    { return m.core.Len() }
func (m *TreeMap[K, V]) Empty() bool { return m.core.Len() == 0 }
func (m *TreeMap[K, V]) Clear()      { m.core.Clear() }

func (m *TreeMap[K, V]) wrap(cell *cellist.Cell[K, V]) MapIterator[K, V] {
	if cell == nil {
		return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.End()}}
	}
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, cell}}
}

func (m *TreeMap[K, V]) Begin() MapIterator[K, V] {
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.Begin()}}
}

func (m *TreeMap[K, V]) End() MapIterator[K, V] {
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.End()}}
}

func (m *TreeMap[K, V]) Find(k K) MapIterator[K, V]       { return m.wrap(m.core.Find(k)) }
func (m *TreeMap[K, V]) Count(k K) int                    { return m.core.Count(k) }
func (m *TreeMap[K, V]) LowerBound(k K) MapIterator[K, V] { return m.wrap(m.core.LowerBound(k)) }
func (m *TreeMap[K, V]) UpperBound(k K) MapIterator[K, V] { return m.wrap(m.core.UpperBound(k)) }

func (m *TreeMap[K, V]) EqualRange(k K) (lo, hi MapIterator[K, V]) {
	l, h := m.core.EqualRange(k)
	return m.wrap(l), m.wrap(h)
}

// At returns the value mapped to k, or an out-of-range error if k is
// absent.
func (m *TreeMap[K, V]) At(k K) (V, error) {
	cell := m.core.Find(k)
	if cell == nil {
		var zero V
		return zero, xerrors.NewLogicError(xerrors.OutOfRange, "TreeMap.At: key not found")
	}
	return cell.Value, nil
}

// GetOrInsert returns the value mapped to k, inserting (k, dflt) if
// absent. It is the Go idiom for STL's operator[], which always
// default-inserts on a miss rather than returning an error.
func (m *TreeMap[K, V]) GetOrInsert(k K, dflt V) V {
	cell, _ := m.core.Insert(k, dflt)
	return cell.Value
}

// Set assigns k to v, inserting if absent or overwriting the mapped
// value in place if present.
func (m *TreeMap[K, V]) Set(k K, v V) {
	cell := m.core.Find(k)
	if cell != nil {
		cell.Value = v
		return
	}
	m.core.Insert(k, v)
}

// Insert adds (k, v) if k is absent. Returns the element's iterator
// and whether insertion happened.
func (m *TreeMap[K, V]) Insert(k K, v V) (MapIterator[K, V], bool) {
	cell, inserted := m.core.Insert(k, v)
	return m.wrap(cell), inserted
}

func (m *TreeMap[K, V]) InsertHint(hint MapIterator[K, V], k K, v V) (MapIterator[K, V], bool) {
	cell, inserted := m.core.InsertHint(hint.cell, k, v)
	return m.wrap(cell), inserted
}

// InsertRange inserts every (key, value) pair in [first, last),
// skipping any key already present.
func (m *TreeMap[K, V]) InsertRange(first, last iterator.Forward[pair.Pair[K, V]]) {
	for cur := first; !cur.EqualTo(last); cur = cur.Next() {
		p := cur.Value()
		m.Insert(p.Key, p.Value)
	}
}

func (m *TreeMap[K, V]) Erase(it MapIterator[K, V]) MapIterator[K, V] {
	return m.wrap(m.core.Erase(it.cell))
}

func (m *TreeMap[K, V]) EraseKey(k K) int { return m.core.EraseKey(k) }

func (m *TreeMap[K, V]) EraseRange(first, last MapIterator[K, V]) MapIterator[K, V] {
	return m.wrap(m.core.EraseRange(first.cell, last.cell))
}

func (m *TreeMap[K, V]) Swap(other *TreeMap[K, V]) { m.core.Swap(other.core) }

func (m *TreeMap[K, V]) KeyComp() func(a, b K) bool { return m.core.less }

// ValueComp orders two Pairs by key alone, the conventional
// value_comp observer.
func (m *TreeMap[K, V]) ValueComp() func(a, b pair.Pair[K, V]) bool {
	less := m.core.less
	return func(a, b pair.Pair[K, V]) bool { return less(a.Key, b.Key) }
}

// TreeMultiMap is a tree-backed ordered map permitting duplicate
// keys.
type TreeMultiMap[K, V any] struct {
	core *treeCore[K, V]
}

func NewTreeMultiMap[K constraints.Ordered, V any](opts ...TreeOption[K]) *TreeMultiMap[K, V] {
	cfg := resolveTreeConfig(cmp.Less[K], opts)
	return &TreeMultiMap[K, V]{core: newTreeCore[K, V](cfg.Less, false)}
}

func NewTreeMultiMapFunc[K, V any](less func(a, b K) bool) *TreeMultiMap[K, V] {
	return &TreeMultiMap[K, V]{core: newTreeCore[K, V](less, false)}
}

// TreeMultiMapFromSlice builds a TreeMultiMap from vs, ordered by
// cmp.Less.
func TreeMultiMapFromSlice[K constraints.Ordered, V any](vs []pair.Pair[K, V]) *TreeMultiMap[K, V] {
	m := NewTreeMultiMap[K, V]()
	for _, p := range vs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// TreeMultiMapFromSliceFunc builds a TreeMultiMap from vs, ordered by
// less.
func TreeMultiMapFromSliceFunc[K, V any](vs []pair.Pair[K, V], less func(a, b K) bool) *TreeMultiMap[K, V] {
	m := NewTreeMultiMapFunc[K, V](less)
	for _, p := range vs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// TreeMultiMapFromRange builds a TreeMultiMap from [first, last),
// ordered by cmp.Less.
func TreeMultiMapFromRange[K constraints.Ordered, V any](first, last iterator.Forward[pair.Pair[K, V]]) *TreeMultiMap[K, V] {
	m := NewTreeMultiMap[K, V]()
	m.InsertRange(first, last)
	return m
}

// TreeMultiMapFromRangeFunc builds a TreeMultiMap from [first, last),
// ordered by less.
func TreeMultiMapFromRangeFunc[K, V any](first, last iterator.Forward[pair.Pair[K, V]], less func(a, b K) bool) *TreeMultiMap[K, V] {
	m := NewTreeMultiMapFunc[K, V](less)
	m.InsertRange(first, last)
	return m
}

// TreeMultiMapFromContainer returns a copy of src.
func TreeMultiMapFromContainer[K, V any](src *TreeMultiMap[K, V]) *TreeMultiMap[K, V] {
	return src.Clone()
}

// Clone returns an independent copy of m with the same comparator.
func (m *TreeMultiMap[K, V]) Clone() *TreeMultiMap[K, V] {
	c := &TreeMultiMap[K, V]{core: newTreeCore[K, V](m.core.less, false)}
	c.InsertRange(m.Begin(), m.End())
	return c
}

func (m *TreeMultiMap[K, V]) Len() int    { return m.core.Len() }
func (m *TreeMultiMap[K, V]) Empty() bool { return m.core.Len() == 0 }
func (m *TreeMultiMap[K, V]) Clear()      { m.core.Clear() }

func (m *TreeMultiMap[K, V]) wrap(cell *cellist.Cell[K, V]) MapIterator[K, V] {
	if cell == nil {
		return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.End()}}
	}
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, cell}}
}

func (m *TreeMultiMap[K, V]) Begin() MapIterator[K, V] {
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.Begin()}}
}

func (m *TreeMultiMap[K, V]) End() MapIterator[K, V] {
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.End()}}
}

func (m *TreeMultiMap[K, V]) Find(k K) MapIterator[K, V]       { return m.wrap(m.core.Find(k)) }
func (m *TreeMultiMap[K, V]) Count(k K) int                    { return m.core.Count(k) }
func (m *TreeMultiMap[K, V]) LowerBound(k K) MapIterator[K, V] { return m.wrap(m.core.LowerBound(k)) }
func (m *TreeMultiMap[K, V]) UpperBound(k K) MapIterator[K, V] { return m.wrap(m.core.UpperBound(k)) }

func (m *TreeMultiMap[K, V]) EqualRange(k K) (lo, hi MapIterator[K, V]) {
	l, h := m.core.EqualRange(k)
	return m.wrap(l), m.wrap(h)
}

func (m *TreeMultiMap[K, V]) Insert(k K, v V) MapIterator[K, V] {
	cell, _ := m.core.Insert(k, v)
	return m.wrap(cell)
}

func (m *TreeMultiMap[K, V]) InsertHint(hint MapIterator[K, V], k K, v V) MapIterator[K, V] {
	cell, _ := m.core.InsertHint(hint.cell, k, v)
	return m.wrap(cell)
}

// InsertRange inserts every (key, value) pair in [first, last).
func (m *TreeMultiMap[K, V]) InsertRange(first, last iterator.Forward[pair.Pair[K, V]]) {
	for cur := first; !cur.EqualTo(last); cur = cur.Next() {
		p := cur.Value()
		m.Insert(p.Key, p.Value)
	}
}

func (m *TreeMultiMap[K, V]) Erase(it MapIterator[K, V]) MapIterator[K, V] {
	return m.wrap(m.core.Erase(it.cell))
}

func (m *TreeMultiMap[K, V]) EraseKey(k K) int { return m.core.EraseKey(k) }

func (m *TreeMultiMap[K, V]) EraseRange(first, last MapIterator[K, V]) MapIterator[K, V] {
	return m.wrap(m.core.EraseRange(first.cell, last.cell))
}

func (m *TreeMultiMap[K, V]) Swap(other *TreeMultiMap[K, V]) { m.core.Swap(other.core) }

func (m *TreeMultiMap[K, V]) KeyComp() func(a, b K) bool { return m.core.less }
