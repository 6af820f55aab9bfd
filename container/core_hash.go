package container

import (
	"github.com/student/gostl/hashindex"
	"github.com/student/gostl/internal/cellist"
	"github.com/student/gostl/internal/obs"
	"go.uber.org/zap"
)

// hashCore is the shared engine behind the four hash-backed
// containers (HashSet, HashMultiSet, HashMap, HashMultiMap).
type hashCore[K, V any] struct {
	list   *cellist.List[K, V]
	index  *hashindex.Index[K, V]
	hash   func(K) uint32
	eq     func(a, b K) bool
	unique bool
}

func newHashCore[K, V any](hash func(K) uint32, eq func(a, b K) bool, unique bool) *hashCore[K, V] {
	return &hashCore[K, V]{
		list:   cellist.New[K, V](),
		index:  hashindex.New[K, V](hash, eq),
		hash:   hash,
		eq:     eq,
		unique: unique,
	}
}

func (c *hashCore[K, V]) Len() int { return c.list.Len() }

func (c *hashCore[K, V]) Clear() {
	c.list.Clear()
	c.index.Clear()
}

func (c *hashCore[K, V]) Find(key K) *cellist.Cell[K, V] { return c.index.Find(key) }

func (c *hashCore[K, V]) Count(key K) int { return c.index.Count(key) }

// EqualRange returns the contiguous list range spanning every cell
// with key equal to key, exploiting the invariant that multi-hash
// insertion keeps equal-keyed cells adjacent in the list.
func (c *hashCore[K, V]) EqualRange(key K) (lo, hi *cellist.Cell[K, V]) {
	first := c.index.Find(key)
	if first == nil {
		return nil, nil
	}
	lo = first
	for !lo.Prev().IsEnd() && c.eq(lo.Prev().Key, key) {
		lo = lo.Prev()
	}
	hi = first
	for !hi.IsEnd() && c.eq(hi.Key, key) {
		hi = hi.Next()
	}
	return lo, hi
}

// Insert places (key, value). For unique containers, a pre-existing
// equal key is returned with inserted=false. For multi containers,
// the new cell is placed adjacent to any existing equal-keyed cells
// if present, otherwise at the list tail.
func (c *hashCore[K, V]) Insert(key K, value V) (*cellist.Cell[K, V], bool) {
	existing := c.index.Find(key)
	if c.unique && existing != nil {
		return existing, false
	}
	var cell *cellist.Cell[K, V]
	if existing != nil {
		cell = c.list.InsertBefore(existing.Next(), key, value)
	} else {
		cell = c.list.PushBack(key, value)
	}
	c.index.Insert(cell)
	if obs.Enabled() {
		obs.Debug("hash insert", zap.Int("size", c.list.Len()), zap.Int("buckets", c.index.BucketCount()))
	}
	return cell, true
}

func (c *hashCore[K, V]) Erase(cell *cellist.Cell[K, V]) *cellist.Cell[K, V] {
	c.index.Erase(cell)
	return c.list.Erase(cell)
}

func (c *hashCore[K, V]) EraseKey(key K) int {
	lo, hi := c.EqualRange(key)
	if lo == nil {
		return 0
	}
	n := 0
	for cell := lo; cell != hi; {
		next := cell.Next()
		c.Erase(cell)
		cell = next
		n++
	}
	return n
}

func (c *hashCore[K, V]) EraseRange(first, last *cellist.Cell[K, V]) *cellist.Cell[K, V] {
	for cell := first; cell != last; {
		next := cell.Next()
		c.Erase(cell)
		cell = next
	}
	return last
}

func (c *hashCore[K, V]) Begin() *cellist.Cell[K, V] { return c.list.Begin() }
func (c *hashCore[K, V]) End() *cellist.Cell[K, V]   { return c.list.End() }

// Swap exchanges the entire backing store with other in O(1).
func (c *hashCore[K, V]) Swap(other *hashCore[K, V]) {
	*c, *other = *other, *c
}
