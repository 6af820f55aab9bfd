// Package rbtree implements the red-black tree index used by the
// tree-backed associative containers. It indexes *cellist.Cell
// pointers by key; the payload is the cell, never a copy of the
// value, so lookups always read through to the list.
package rbtree

import "github.com/student/gostl/internal/cellist"

type color bool

const (
	red   color = false
	black color = true
)

type node[K, V any] struct {
	color  color
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
	cell   *cellist.Cell[K, V]
}

// Tree is a red-black tree keyed by a strict weak ordering less.
// Uniqueness (for unique containers) is enforced by the caller using
// Equiv over less, never strong equality.
type Tree[K, V any] struct {
	root *node[K, V]
	nilN *node[K, V] // sentinel, always black
	size int
	less func(a, b K) bool
}

// New returns an empty tree ordered by less.
func New[K, V any](less func(a, b K) bool) *Tree[K, V] {
	sentinel := &node[K, V]{color: black}
	sentinel.left, sentinel.right, sentinel.parent = sentinel, sentinel, sentinel
	return &Tree[K, V]{root: sentinel, nilN: sentinel, less: less}
}

// Len returns the number of indexed cells.
func (t *Tree[K, V]) Len() int { return t.size }

// Find returns the cell whose key is equivalent to k, or nil if none.
func (t *Tree[K, V]) Find(k K) *cellist.Cell[K, V] {
	n := t.lowerBoundNode(k)
	if n == t.nilN || t.less(k, n.cell.Key) {
		return nil
	}
	return n.cell
}

// LowerBound returns the cell with the smallest key not less than k,
// or nil if every key is less than k.
func (t *Tree[K, V]) LowerBound(k K) *cellist.Cell[K, V] {
	n := t.lowerBoundNode(k)
	if n == t.nilN {
		return nil
	}
	return n.cell
}

// UpperBound returns the cell with the smallest key strictly greater
// than k, or nil if no such key exists.
func (t *Tree[K, V]) UpperBound(k K) *cellist.Cell[K, V] {
	n := t.upperBoundNode(k)
	if n == t.nilN {
		return nil
	}
	return n.cell
}

// EqualRange returns (LowerBound(k), UpperBound(k)).
func (t *Tree[K, V]) EqualRange(k K) (lo, hi *cellist.Cell[K, V]) {
	return t.LowerBound(k), t.UpperBound(k)
}

func (t *Tree[K, V]) lowerBoundNode(k K) *node[K, V] {
	n, result := t.root, t.nilN
	for n != t.nilN {
		if !t.less(n.cell.Key, k) {
			result = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return result
}

func (t *Tree[K, V]) upperBoundNode(k K) *node[K, V] {
	n, result := t.root, t.nilN
	for n != t.nilN {
		if t.less(k, n.cell.Key) {
			result = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return result
}

// Insert places cell into the index by its key and rebalances. The
// cell must already have been linked into the container's list at
// the caller-chosen position; Insert only maintains the tree. cell's
// Link is set to the new tree node for O(1) Erase.
func (t *Tree[K, V]) Insert(cell *cellist.Cell[K, V]) {
	y := t.nilN
	x := t.root
	for x != t.nilN {
		y = x
		if t.less(cell.Key, x.cell.Key) {
			x = x.left
		} else {
			x = x.right
		}
	}
	z := &node[K, V]{color: red, left: t.nilN, right: t.nilN, parent: y, cell: cell}
	cell.Link = z
	if y == t.nilN {
		t.root = z
	} else if t.less(cell.Key, y.cell.Key) {
		y.left = z
	} else {
		y.right = z
	}
	t.size++
	t.insertFixup(z)
}

// Erase removes cell from the index in O(log n), using its Link
// back-pointer rather than re-searching by key.
func (t *Tree[K, V]) Erase(cell *cellist.Cell[K, V]) {
	z, ok := cell.Link.(*node[K, V])
	if !ok || z == nil {
		return
	}
	t.deleteNode(z)
	cell.Link = nil
	t.size--
}

func (t *Tree[K, V]) leftRotate(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != t.nilN {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilN {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K, V]) rightRotate(y *node[K, V]) {
	x := y.left
	y.left = x.right
	if x.right != t.nilN {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == t.nilN {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}

func (t *Tree[K, V]) insertFixup(z *node[K, V]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

func (t *Tree[K, V]) transplant(u, v *node[K, V]) {
	if u.parent == t.nilN {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Tree[K, V]) minNode(n *node[K, V]) *node[K, V] {
	for n.left != t.nilN {
		n = n.left
	}
	return n
}

func (t *Tree[K, V]) deleteNode(z *node[K, V]) {
	y := z
	yOrigColor := y.color
	var x *node[K, V]

	if z.left == t.nilN {
		x = z.right
		t.transplant(z, z.right)
	} else if z.right == t.nilN {
		x = z.left
		t.transplant(z, z.left)
	} else {
		y = t.minNode(z.right)
		yOrigColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if yOrigColor == black {
		t.deleteFixup(x)
	}
}

func (t *Tree[K, V]) deleteFixup(x *node[K, V]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

// BlackHeight walks the leftmost spine and counts black nodes,
// exposed only for invariant testing.
func (t *Tree[K, V]) BlackHeight() int {
	h := 0
	for n := t.root; n != t.nilN; n = n.left {
		if n.color == black {
			h++
		}
	}
	return h
}

// Validate checks the red-black invariants (root is black, no red
// node has a red child, every root-to-leaf path has the same black
// height) and returns the first violation found, or nil.
func (t *Tree[K, V]) Validate() error {
	if t.root.color != black {
		return errColor
	}
	_, err := t.validate(t.root)
	return err
}

var errColor = validationError("root is not black")
var errRedRed = validationError("red node has a red child")
var errBlackHeight = validationError("unequal black-height across paths")

type validationError string

func (e validationError) Error() string { return string(e) }

func (t *Tree[K, V]) validate(n *node[K, V]) (blackHeight int, err error) {
	if n == t.nilN {
		return 1, nil
	}
	if n.color == red {
		if n.left.color == red || n.right.color == red {
			return 0, errRedRed
		}
	}
	lh, err := t.validate(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := t.validate(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, errBlackHeight
	}
	if n.color == black {
		lh++
	}
	return lh, nil
}
