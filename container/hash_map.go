package container

import (
	"github.com/student/gostl/cmp"
	"github.com/student/gostl/internal/cellist"
	"github.com/student/gostl/iterator"
	"github.com/student/gostl/pair"
	"github.com/student/gostl/xerrors"
)

// HashMap is a hash-backed, uniquely-keyed unordered map.
type HashMap[K comparable, V any] struct {
	core *hashCore[K, V]
}

func NewHashMap[K comparable, V any](opts ...HashOption[K]) *HashMap[K, V] {
	cfg := resolveHashConfig(cmp.Hash[K], equalComparable[K], opts)
	core := newHashCore[K, V](cfg.Hash, cfg.Eq, true)
	applyHashConfig(core, cfg)
	return &HashMap[K, V]{core: core}
}

// HashMapFromSlice builds a HashMap from vs. The first occurrence of a
// duplicate key wins.
func HashMapFromSlice[K comparable, V any](vs []pair.Pair[K, V], opts ...HashOption[K]) *HashMap[K, V] {
	m := NewHashMap[K, V](opts...)
	for _, p := range vs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// HashMapFromRange builds a HashMap from [first, last).
func HashMapFromRange[K comparable, V any](first, last iterator.Forward[pair.Pair[K, V]], opts ...HashOption[K]) *HashMap[K, V] {
	m := NewHashMap[K, V](opts...)
	m.InsertRange(first, last)
	return m
}

// HashMapFromContainer returns a copy of src.
func HashMapFromContainer[K comparable, V any](src *HashMap[K, V]) *HashMap[K, V] {
	return src.Clone()
}

// Clone returns an independent copy of m with the same hash/equality
// functions and load-factor threshold.
func (m *HashMap[K, V]) Clone() *HashMap[K, V] {
	core := newHashCore[K, V](m.core.hash, m.core.eq, true)
	core.index.SetMaxLoadFactor(m.core.index.MaxLoadFactor())
	c := &HashMap[K, V]{core: core}
	c.InsertRange(m.Begin(), m.End())
	return c
}

func (m *HashMap[K, V]) Len() int    { return m.core.Len() }
func (m *HashMap[K, V]) Empty() bool { return m.core.Len() == 0 }
func (m *HashMap[K, V]) Clear()      { m.core.Clear() }

func (m *HashMap[K, V]) wrap(cell *cellist.Cell[K, V]) MapIterator[K, V] {
	if cell == nil {
		return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.End()}}
	}
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, cell}}
}

func (m *HashMap[K, V]) Begin() MapIterator[K, V] {
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.Begin()}}
}

func (m *HashMap[K, V]) End() MapIterator[K, V] {
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.End()}}
}

func (m *HashMap[K, V]) Find(k K) MapIterator[K, V] { return m.wrap(m.core.Find(k)) }
func (m *HashMap[K, V]) Count(k K) int              { return m.core.Count(k) }

// At returns the value mapped to k, or an out-of-range error if k is
// absent.
func (m *HashMap[K, V]) At(k K) (V, error) {
	cell := m.core.Find(k)
	if cell == nil {
		var zero V
		return zero, xerrors.NewLogicError(xerrors.OutOfRange, "HashMap.At: key not found")
	}
	return cell.Value, nil
}

// GetOrInsert returns the value mapped to k, inserting (k, dflt) if
// absent.
func (m *HashMap[K, V]) GetOrInsert(k K, dflt V) V {
	cell, _ := m.core.Insert(k, dflt)
	return cell.Value
}

// Set assigns k to v, inserting if absent or overwriting in place if
// present.
func (m *HashMap[K, V]) Set(k K, v V) {
	if cell := m.core.Find(k); cell != nil {
		cell.Value = v
		return
	}
	m.core.Insert(k, v)
}

func (m *HashMap[K, V]) Insert(k K, v V) (MapIterator[K, V], bool) {
	cell, inserted := m.core.Insert(k, v)
	return m.wrap(cell), inserted
}

// InsertRange inserts every (key, value) pair in [first, last),
// skipping any key already present.
func (m *HashMap[K, V]) InsertRange(first, last iterator.Forward[pair.Pair[K, V]]) {
	for cur := first; !cur.EqualTo(last); cur = cur.Next() {
		p := cur.Value()
		m.Insert(p.Key, p.Value)
	}
}

func (m *HashMap[K, V]) Erase(it MapIterator[K, V]) MapIterator[K, V] {
	return m.wrap(m.core.Erase(it.cell))
}

func (m *HashMap[K, V]) EraseKey(k K) int { return m.core.EraseKey(k) }

func (m *HashMap[K, V]) EraseRange(first, last MapIterator[K, V]) MapIterator[K, V] {
	return m.wrap(m.core.EraseRange(first.cell, last.cell))
}

func (m *HashMap[K, V]) Swap(other *HashMap[K, V]) { m.core.Swap(other.core) }

func (m *HashMap[K, V]) HashFunction() func(K) uint32 { return m.core.hash }
func (m *HashMap[K, V]) KeyEq() func(a, b K) bool     { return m.core.eq }
func (m *HashMap[K, V]) BucketCount() int             { return m.core.index.BucketCount() }
func (m *HashMap[K, V]) LoadFactor() float64          { return m.core.index.LoadFactor() }

// HashMultiMap is a hash-backed unordered map permitting duplicate
// keys.
type HashMultiMap[K comparable, V any] struct {
	core *hashCore[K, V]
}

func NewHashMultiMap[K comparable, V any](opts ...HashOption[K]) *HashMultiMap[K, V] {
	cfg := resolveHashConfig(cmp.Hash[K], equalComparable[K], opts)
	core := newHashCore[K, V](cfg.Hash, cfg.Eq, false)
	applyHashConfig(core, cfg)
	return &HashMultiMap[K, V]{core: core}
}

// HashMultiMapFromSlice builds a HashMultiMap from vs.
func HashMultiMapFromSlice[K comparable, V any](vs []pair.Pair[K, V], opts ...HashOption[K]) *HashMultiMap[K, V] {
	m := NewHashMultiMap[K, V](opts...)
	for _, p := range vs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// HashMultiMapFromRange builds a HashMultiMap from [first, last).
func HashMultiMapFromRange[K comparable, V any](first, last iterator.Forward[pair.Pair[K, V]], opts ...HashOption[K]) *HashMultiMap[K, V] {
	m := NewHashMultiMap[K, V](opts...)
	m.InsertRange(first, last)
	return m
}

// HashMultiMapFromContainer returns a copy of src.
func HashMultiMapFromContainer[K comparable, V any](src *HashMultiMap[K, V]) *HashMultiMap[K, V] {
	return src.Clone()
}

// Clone returns an independent copy of m with the same hash/equality
// functions and load-factor threshold.
func (m *HashMultiMap[K, V]) Clone() *HashMultiMap[K, V] {
	core := newHashCore[K, V](m.core.hash, m.core.eq, false)
	core.index.SetMaxLoadFactor(m.core.index.MaxLoadFactor())
	c := &HashMultiMap[K, V]{core: core}
	c.InsertRange(m.Begin(), m.End())
	return c
}

func (m *HashMultiMap[K, V]) Len() int    { return m.core.Len() }
func (m *HashMultiMap[K, V]) Empty() bool { return m.core.Len() == 0 }
func (m *HashMultiMap[K, V]) Clear()      { m.core.Clear() }

func (m *HashMultiMap[K, V]) wrap(cell *cellist.Cell[K, V]) MapIterator[K, V] {
	if cell == nil {
		return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.End()}}
	}
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, cell}}
}

func (m *HashMultiMap[K, V]) Begin() MapIterator[K, V] {
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.Begin()}}
}

func (m *HashMultiMap[K, V]) End() MapIterator[K, V] {
	return MapIterator[K, V]{cellIter[K, V]{m.core.list, m.core.End()}}
}

func (m *HashMultiMap[K, V]) Find(k K) MapIterator[K, V] { return m.wrap(m.core.Find(k)) }
func (m *HashMultiMap[K, V]) Count(k K) int              { return m.core.Count(k) }

func (m *HashMultiMap[K, V]) EqualRange(k K) (lo, hi MapIterator[K, V]) {
	l, h := m.core.EqualRange(k)
	return m.wrap(l), m.wrap(h)
}

func (m *HashMultiMap[K, V]) Insert(k K, v V) MapIterator[K, V] {
	cell, _ := m.core.Insert(k, v)
	return m.wrap(cell)
}

// InsertRange inserts every (key, value) pair in [first, last).
func (m *HashMultiMap[K, V]) InsertRange(first, last iterator.Forward[pair.Pair[K, V]]) {
	for cur := first; !cur.EqualTo(last); cur = cur.Next() {
		p := cur.Value()
		m.Insert(p.Key, p.Value)
	}
}

func (m *HashMultiMap[K, V]) Erase(it MapIterator[K, V]) MapIterator[K, V] {
	return m.wrap(m.core.Erase(it.cell))
}

func (m *HashMultiMap[K, V]) EraseKey(k K) int { return m.core.EraseKey(k) }

func (m *HashMultiMap[K, V]) EraseRange(first, last MapIterator[K, V]) MapIterator[K, V] {
	return m.wrap(m.core.EraseRange(first.cell, last.cell))
}

func (m *HashMultiMap[K, V]) Swap(other *HashMultiMap[K, V]) { m.core.Swap(other.core) }

func (m *HashMultiMap[K, V]) HashFunction() func(K) uint32 { return m.core.hash }
func (m *HashMultiMap[K, V]) KeyEq() func(a, b K) bool     { return m.core.eq }
