package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListPushAndTraverse(t *testing.T) {
	l := NewList[int]()
	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)

	var got []int
	for it := l.Begin(); !it.EqualTo(l.End()); it = it.Next().(ListIterator[int]) {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestListInsertEraseO1Splice(t *testing.T) {
	l := NewList[int]()
	l.PushBack(1)
	three := l.Insert(l.End(), 3)
	l.Insert(three, 2)

	var got []int
	for it := l.Begin(); !it.EqualTo(l.End()); it = it.Next().(ListIterator[int]) {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{1, 2, 3}, got)

	next := l.Erase(three)
	require.True(t, next.EqualTo(l.End()))

	front, _ := l.Front()
	back, _ := l.Back()
	require.Equal(t, 1, front)
	require.Equal(t, 2, back)
}

func TestListEraseRange(t *testing.T) {
	l := NewList[int]()
	for _, v := range []int{1, 2, 3, 4, 5} {
		l.PushBack(v)
	}
	it := l.Begin()
	second := it.Next().(ListIterator[int])
	fourth := second.Next().(ListIterator[int]).Next().(ListIterator[int])
	l.EraseRange(second, fourth)

	var got []int
	for it := l.Begin(); !it.EqualTo(l.End()); it = it.Next().(ListIterator[int]) {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{1, 4, 5}, got)
}
