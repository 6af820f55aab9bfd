package hashindex

import (
	"testing"

	"github.com/student/gostl/cmp"
	"github.com/student/gostl/internal/cellist"
	"github.com/stretchr/testify/require"
)

func TestFindCountInsertErase(t *testing.T) {
	list := cellist.New[string, int]()
	idx := New[string, int](cmp.Hash[string], func(a, b string) bool { return a == b })

	c1 := list.PushBack("a", 1)
	idx.Insert(c1)
	c2 := list.PushBack("b", 2)
	idx.Insert(c2)

	require.Equal(t, 2, idx.Len())
	require.Equal(t, c1, idx.Find("a"))
	require.Equal(t, 1, idx.Count("a"))
	require.Nil(t, idx.Find("z"))

	idx.Erase(c1)
	list.Erase(c1)
	require.Nil(t, idx.Find("a"))
	require.Equal(t, 1, idx.Len())
}

func TestRehashOnLoadFactor(t *testing.T) {
	list := cellist.New[int, struct{}]()
	idx := New[int, struct{}](cmp.Hash[int], func(a, b int) bool { return a == b })
	initialBuckets := idx.BucketCount()

	for i := 0; i < 1000; i++ {
		c := list.PushBack(i, struct{}{})
		idx.Insert(c)
	}
	require.Greater(t, idx.BucketCount(), initialBuckets)
	require.LessOrEqual(t, idx.LoadFactor(), idx.MaxLoadFactor())

	for i := 0; i < 1000; i++ {
		require.NotNil(t, idx.Find(i), "missing key %d after rehash", i)
	}
}

func TestEveryCellReachableExactlyOnce(t *testing.T) {
	list := cellist.New[int, struct{}]()
	idx := New[int, struct{}](cmp.Hash[int], func(a, b int) bool { return a == b })
	const n = 200
	for i := 0; i < n; i++ {
		c := list.PushBack(i, struct{}{})
		idx.Insert(c)
	}
	seen := map[int]int{}
	for _, bucket := range idx.buckets {
		for _, cell := range bucket {
			seen[cell.Key]++
		}
	}
	require.Len(t, seen, n)
	for k, count := range seen {
		require.Equal(t, 1, count, "key %d reachable %d times", k, count)
	}
}
