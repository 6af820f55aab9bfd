package rbtree

import (
	"testing"

	"github.com/student/gostl/internal/cellist"
	"github.com/stretchr/testify/require"
)

func less(a, b int) bool { return a < b }

// TestTreeSetScenario checks that inserting [3,1,4,1,5,9,2,6] into a
// unique tree yields [1,2,3,4,5,6,9] in order, with lower_bound(4)==4,
// upper_bound(4)==5, equal_range(1)==[it→1, it→2).
func TestTreeSetScenario(t *testing.T) {
	list := cellist.New[int, struct{}]()
	tree := New[int, struct{}](less)

	insertUnique := func(v int) {
		if tree.Find(v) != nil {
			return
		}
		before := tree.UpperBound(v)
		var beforeCell *cellist.Cell[int, struct{}]
		if before == nil {
			beforeCell = list.End()
		} else {
			beforeCell = before
		}
		cell := list.InsertBefore(beforeCell, v, struct{}{})
		tree.Insert(cell)
	}

	for _, v := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		insertUnique(v)
	}

	var got []int
	for c := list.Begin(); c != list.End(); c = c.Next() {
		got = append(got, c.Key)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 9}, got)
	require.NoError(t, tree.Validate())

	require.Equal(t, 4, tree.LowerBound(4).Key)
	require.Equal(t, 5, tree.UpperBound(4).Key)

	lo, hi := tree.EqualRange(1)
	require.NotNil(t, lo)
	require.Equal(t, 1, lo.Key)
	require.NotNil(t, hi)
	require.Equal(t, 2, hi.Key)
}

func TestTreeMultiSetScenario(t *testing.T) {
	list := cellist.New[int, struct{}]()
	tree := New[int, struct{}](less)

	insertMulti := func(v int) {
		ub := tree.UpperBound(v)
		var beforeCell *cellist.Cell[int, struct{}]
		if ub == nil {
			beforeCell = list.End()
		} else {
			beforeCell = ub
		}
		cell := list.InsertBefore(beforeCell, v, struct{}{})
		tree.Insert(cell)
	}

	for _, v := range []int{2, 2, 1, 2, 3} {
		insertMulti(v)
	}

	var got []int
	for c := list.Begin(); c != list.End(); c = c.Next() {
		got = append(got, c.Key)
	}
	require.Equal(t, []int{1, 2, 2, 2, 3}, got)
	require.NoError(t, tree.Validate())

	lo, hi := tree.EqualRange(2)
	n := 0
	for c := lo; c != hi; c = c.Next() {
		n++
	}
	require.Equal(t, 3, n)
}

func TestEraseRebalances(t *testing.T) {
	list := cellist.New[int, struct{}]()
	tree := New[int, struct{}](less)
	var cells []*cellist.Cell[int, struct{}]
	for i := 0; i < 100; i++ {
		c := list.PushBack(i, struct{}{})
		tree.Insert(c)
		cells = append(cells, c)
	}
	require.NoError(t, tree.Validate())
	require.Equal(t, 100, tree.Len())

	for i := 0; i < 50; i++ {
		tree.Erase(cells[i])
		list.Erase(cells[i])
		require.NoError(t, tree.Validate())
	}
	require.Equal(t, 50, tree.Len())
	require.Nil(t, tree.Find(10))
	require.NotNil(t, tree.Find(60))
}
