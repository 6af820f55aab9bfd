package container

import (
	"github.com/student/gostl/cmp"
	"github.com/student/gostl/internal/cellist"
	"github.com/student/gostl/internal/obs"
	"github.com/student/gostl/rbtree"
	"go.uber.org/zap"
)

// treeCore is the shared engine behind the four tree-backed
// containers (TreeSet, TreeMultiSet, TreeMap, TreeMultiMap). It
// coordinates the intrusive list (external element sequence) with the
// red-black tree (internal index): an insert mutates the list first,
// then updates the index; an erase removes the cell from the index
// first, then unlinks it from the list.
type treeCore[K, V any] struct {
	list   *cellist.List[K, V]
	tree   *rbtree.Tree[K, V]
	less   func(a, b K) bool
	unique bool
}

func newTreeCore[K, V any](less func(a, b K) bool, unique bool) *treeCore[K, V] {
	return &treeCore[K, V]{
		list:   cellist.New[K, V](),
		tree:   rbtree.New[K, V](less),
		less:   less,
		unique: unique,
	}
}

func (c *treeCore[K, V]) Len() int { return c.list.Len() }

func (c *treeCore[K, V]) Clear() {
	c.list.Clear()
	c.tree = rbtree.New[K, V](c.less)
}

func (c *treeCore[K, V]) Find(key K) *cellist.Cell[K, V] { return c.tree.Find(key) }

func (c *treeCore[K, V]) LowerBound(key K) *cellist.Cell[K, V] { return c.tree.LowerBound(key) }

func (c *treeCore[K, V]) UpperBound(key K) *cellist.Cell[K, V] { return c.tree.UpperBound(key) }

func (c *treeCore[K, V]) EqualRange(key K) (lo, hi *cellist.Cell[K, V]) {
	return c.tree.EqualRange(key)
}

func (c *treeCore[K, V]) Count(key K) int {
	lo, hi := c.EqualRange(key)
	if lo == nil {
		return 0
	}
	n := 0
	hiCell := hi
	if hiCell == nil {
		hiCell = c.list.End()
	}
	for cell := lo; cell != hiCell; cell = cell.Next() {
		n++
	}
	return n
}

// insertionPoint returns the list cell before which a cell keyed by
// key should be placed: UpperBound(key), so equal keys stay
// contiguous (required for EqualRange) and a multi-insert lands after
// any existing equivalent cells, mirroring the hash containers'
// contiguity rule for the same EqualRange reason.
func (c *treeCore[K, V]) insertionPoint(key K) *cellist.Cell[K, V] {
	if ub := c.tree.UpperBound(key); ub != nil {
		return ub
	}
	return c.list.End()
}

// Insert places (key, value). For unique containers, if an
// equivalent key is already present, returns that cell and false.
func (c *treeCore[K, V]) Insert(key K, value V) (*cellist.Cell[K, V], bool) {
	if c.unique {
		if existing := c.tree.Find(key); existing != nil {
			return existing, false
		}
	}
	before := c.insertionPoint(key)
	cell := c.list.InsertBefore(before, key, value)
	c.tree.Insert(cell)
	if obs.Enabled() {
		obs.Debug("tree insert", zap.Int("size", c.list.Len()))
	}
	return cell, true
}

// InsertHint implements the standard hint contract: for unique
// containers, hint must strictly precede key; for multi containers,
// equivalence also qualifies. When the hint is right, the list
// placement is O(1); the tree index is still rebuilt via a full
// Insert, since rbtree.Tree has no attach-at-known-node primitive.
// When the hint is wrong, InsertHint falls back to the full Insert
// for the list placement too.
func (c *treeCore[K, V]) InsertHint(hint *cellist.Cell[K, V], key K, value V) (*cellist.Cell[K, V], bool) {
	if hint != nil && !hint.IsEnd() {
		hintOK := c.less(hint.Key, key)
		if !hintOK && !c.unique {
			hintOK = cmp.Equiv(c.less, hint.Key, key)
		}
		if hintOK {
			next := hint.Next()
			if next.IsEnd() || c.less(key, next.Key) {
				cell := c.list.InsertBefore(next, key, value)
				c.tree.Insert(cell)
				return cell, true
			}
		}
	}
	return c.Insert(key, value)
}

// Erase removes cell from both the tree and the list.
func (c *treeCore[K, V]) Erase(cell *cellist.Cell[K, V]) *cellist.Cell[K, V] {
	c.tree.Erase(cell)
	return c.list.Erase(cell)
}

// EraseKey removes every cell equivalent to key and returns the count
// removed.
func (c *treeCore[K, V]) EraseKey(key K) int {
	lo, hi := c.EqualRange(key)
	if lo == nil {
		return 0
	}
	hiCell := hi
	if hiCell == nil {
		hiCell = c.list.End()
	}
	n := 0
	for cell := lo; cell != hiCell; {
		next := cell.Next()
		c.Erase(cell)
		cell = next
		n++
	}
	return n
}

// EraseRange removes every cell in [first, last) and returns last.
func (c *treeCore[K, V]) EraseRange(first, last *cellist.Cell[K, V]) *cellist.Cell[K, V] {
	for cell := first; cell != last; {
		next := cell.Next()
		c.Erase(cell)
		cell = next
	}
	return last
}

func (c *treeCore[K, V]) Begin() *cellist.Cell[K, V] { return c.list.Begin() }
func (c *treeCore[K, V]) End() *cellist.Cell[K, V]   { return c.list.End() }

// Swap exchanges the entire backing store (list, tree, comparator,
// uniqueness policy) with other in O(1).
func (c *treeCore[K, V]) Swap(other *treeCore[K, V]) {
	*c, *other = *other, *c
}
