package sequence

import (
	"testing"

	"github.com/student/gostl/xerrors"
	"github.com/stretchr/testify/require"
)

func TestDequePushFrontAndBack(t *testing.T) {
	d := NewDeque[int]()
	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)

	require.Equal(t, 3, d.Len())
	front, err := d.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)

	back, err := d.Back()
	require.NoError(t, err)
	require.Equal(t, 3, back)
}

func TestDequeRepeatedPushFrontGrows(t *testing.T) {
	d := NewDeque[int]()
	for i := 0; i < 5; i++ {
		d.PushFront(i)
	}
	// most-recently-pushed-front is at index 0
	require.Equal(t, 4, d.Get(0))
	require.Equal(t, 0, d.Get(4))
}

func TestDequePopEmpty(t *testing.T) {
	d := NewDeque[int]()
	require.True(t, xerrors.IsOutOfRange(d.PopFront()))
	require.True(t, xerrors.IsOutOfRange(d.PopBack()))
}

func TestDequeClear(t *testing.T) {
	d := NewDeque[int]()
	d.PushBack(1)
	d.PushBack(2)
	d.Clear()
	require.True(t, d.Empty())
	d.PushBack(9)
	v, _ := d.Front()
	require.Equal(t, 9, v)
}

// TestDequeSustainedFIFODoesNotLeakBackingArray checks that a long run
// of PushBack/PopFront (a Queue's access pattern) keeps the backing
// array's capacity bounded by the live length rather than the total
// number of items ever pushed.
func TestDequeSustainedFIFODoesNotLeakBackingArray(t *testing.T) {
	d := NewDeque[int]()
	for i := 0; i < 100000; i++ {
		d.PushBack(i)
		require.NoError(t, d.PopFront())
	}
	require.True(t, d.Empty())
	require.Less(t, cap(d.buf), 100)
}
