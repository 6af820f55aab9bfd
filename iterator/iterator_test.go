package iterator_test

import (
	"testing"

	"github.com/student/gostl/container"
	"github.com/student/gostl/iterator"
	"github.com/stretchr/testify/require"
)

// TestReverseAdaptor checks reverse(it).Value() == it.Prev().Value()
// and Base(Reverse(it)) == it.
func TestReverseAdaptor(t *testing.T) {
	s := container.TreeSetFromSlice([]int{1, 2, 3})
	last := s.Find(3)

	rev := iterator.MakeReverse[int](last)
	require.Equal(t, last.Prev().Value(), rev.Value())

	base := rev.Base()
	require.True(t, base.EqualTo(last))
}

func TestDistance(t *testing.T) {
	s := container.TreeSetFromSlice([]int{1, 2, 3, 4, 5})
	d := iterator.Distance[int](s.Begin(), s.End())
	require.Equal(t, 5, d)
}

// TestDistanceAdditivity checks
// distance(i,j) + distance(j, end) == distance(i, end).
func TestDistanceAdditivity(t *testing.T) {
	s := container.TreeSetFromSlice([]int{1, 2, 3, 4, 5})
	i := s.Begin()
	j := s.LowerBound(3)
	end := s.End()
	require.Equal(t,
		iterator.Distance[int](i, end),
		iterator.Distance[int](i, j)+iterator.Distance[int](j, end))
}
