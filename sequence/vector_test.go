package sequence

import (
	"testing"

	"github.com/student/gostl/xerrors"
	"github.com/stretchr/testify/require"
)

func TestVectorPushBackAndAt(t *testing.T) {
	v := NewVector[int]()
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3)
	require.Equal(t, 3, v.Len())

	got, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 2, got)

	_, err = v.At(9)
	require.Error(t, err)
	require.True(t, xerrors.IsOutOfRange(err))
}

func TestVectorInsertErase(t *testing.T) {
	v := VectorFromSlice([]int{1, 2, 4, 5})
	v.Insert(2, 3)
	require.Equal(t, []int{1, 2, 3, 4, 5}, v.Slice())

	v.Erase(0)
	require.Equal(t, []int{2, 3, 4, 5}, v.Slice())
}

func TestVectorReserveIsRealCapacity(t *testing.T) {
	v := NewVector[int]()
	v.Reserve(64)
	require.GreaterOrEqual(t, cap(v.Slice()), 64)
}

func TestVectorIteratorRandomAccess(t *testing.T) {
	v := VectorFromSlice([]int{10, 20, 30})
	it := v.Begin()
	require.Equal(t, 10, it.Value())

	adv := it.Advance(2)
	require.Equal(t, 30, adv.Value())

	n := it.Next()
	require.Equal(t, 20, n.Value())

	end := v.End()
	require.False(t, it.EqualTo(end))
}

func TestVectorPopBackOnEmpty(t *testing.T) {
	v := NewVector[int]()
	err := v.PopBack()
	require.Error(t, err)
	require.True(t, xerrors.IsOutOfRange(err))
}
