package algo_test

import (
	"testing"

	"github.com/student/gostl/algo"
	"github.com/student/gostl/container"
	"github.com/student/gostl/sequence"
	"github.com/stretchr/testify/require"
)

func TestForEachFindCount(t *testing.T) {
	s := container.TreeSetFromSlice([]int{1, 2, 3, 4, 5})

	var sum int
	algo.ForEach[int](s.Begin(), s.End(), func(v int) { sum += v })
	require.Equal(t, 15, sum)

	found := algo.Find[int](s.Begin(), s.End(), 3, func(a, b int) bool { return a == b })
	require.Equal(t, 3, found.Value())

	notFound := algo.Find[int](s.Begin(), s.End(), 99, func(a, b int) bool { return a == b })
	require.True(t, notFound.EqualTo(s.End()))

	even := algo.Count[int](s.Begin(), s.End(), func(v int) bool { return v%2 == 0 })
	require.Equal(t, 2, even)
}

func TestSortRandomAccessVector(t *testing.T) {
	v := sequence.VectorFromSlice([]int{5, 3, 8, 1, 9, 2})
	algo.Sort[int](v, func(a, b int) bool { return a < b })
	require.Equal(t, []int{1, 2, 3, 5, 8, 9}, v.Slice())
}

func TestStableSortPreservesEqualOrder(t *testing.T) {
	type rec struct {
		key int
		seq int
	}
	in := []rec{{1, 0}, {2, 0}, {1, 1}, {2, 1}, {1, 2}}
	v := sequence.VectorFromSlice(in)
	algo.StableSort[rec](v, func(a, b rec) bool { return a.key < b.key })

	got := v.Slice()
	require.Equal(t, 1, got[0].key)
	require.Equal(t, 0, got[0].seq)
	require.Equal(t, 1, got[1].key)
	require.Equal(t, 1, got[1].seq)
	require.Equal(t, 1, got[2].key)
	require.Equal(t, 2, got[2].seq)
	require.Equal(t, 2, got[3].key)
	require.Equal(t, 0, got[3].seq)
	require.Equal(t, 2, got[4].key)
	require.Equal(t, 1, got[4].seq)
}
