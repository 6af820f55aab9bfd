package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackLIFO(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	top, err := s.Top()
	require.NoError(t, err)
	require.Equal(t, 3, top)

	require.NoError(t, s.Pop())
	top, _ = s.Top()
	require.Equal(t, 2, top)
	require.Equal(t, 2, s.Len())
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)

	front, err := q.Front()
	require.NoError(t, err)
	require.Equal(t, 1, front)

	require.NoError(t, q.Pop())
	front, _ = q.Front()
	require.Equal(t, 2, front)
	require.Equal(t, 2, q.Len())

	back, _ := q.Back()
	require.Equal(t, 3, back)
}
