package container

import (
	"testing"

	"github.com/student/gostl/pair"
	"github.com/student/gostl/xerrors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTreeMapBasics(t *testing.T) {
	m := NewTreeMap[int, string]()
	_, inserted := m.Insert(1, "one")
	require.True(t, inserted)
	_, inserted = m.Insert(1, "uno")
	require.False(t, inserted)

	v, err := m.At(1)
	require.NoError(t, err)
	require.Equal(t, "one", v)

	_, err = m.At(2)
	require.Error(t, err)
	require.True(t, xerrors.IsOutOfRange(err))
}

func TestTreeMapGetOrInsertAndSet(t *testing.T) {
	m := NewTreeMap[string, int]()
	require.Equal(t, 0, m.GetOrInsert("a", 0))
	m.Set("a", 42)
	v, err := m.At("a")
	require.NoError(t, err)
	require.Equal(t, 42, v)

	m.Set("b", 7)
	v, err = m.At("b")
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestTreeMapIteratorSetValue(t *testing.T) {
	m := NewTreeMap[int, int]()
	it, _ := m.Insert(1, 100)
	it.SetValue(200)
	v, _ := m.At(1)
	require.Equal(t, 200, v)
}

func TestTreeMultiMapOrderAndCount(t *testing.T) {
	mm := NewTreeMultiMap[int, string]()
	mm.Insert(2, "a")
	mm.Insert(1, "b")
	mm.Insert(2, "c")

	var keys []int
	for it := mm.Begin(); !it.EqualTo(mm.End()); it = it.NextT() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{1, 2, 2}, keys)
	require.Equal(t, 2, mm.Count(2))

	var got []pair.Pair[int, string]
	for it := mm.Begin(); !it.EqualTo(mm.End()); it = it.NextT() {
		got = append(got, it.Value())
	}
	want := []pair.Pair[int, string]{{Key: 1, Value: "b"}, {Key: 2, Value: "a"}, {Key: 2, Value: "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected pair sequence (-want +got):\n%s", diff)
	}
}

func TestTreeMapWithComparator(t *testing.T) {
	desc := func(a, b int) bool { return a > b }
	m := NewTreeMap[int, string](WithComparator(desc))
	m.Insert(1, "one")
	m.Insert(3, "three")
	m.Insert(2, "two")
	var keys []int
	for it := m.Begin(); !it.EqualTo(m.End()); it = it.NextT() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{3, 2, 1}, keys)
}

func TestTreeMapFromSliceFirstOccurrenceWins(t *testing.T) {
	m := TreeMapFromSlice([]pair.Pair[int, string]{{Key: 1, Value: "first"}, {Key: 1, Value: "second"}})
	v, err := m.At(1)
	require.NoError(t, err)
	require.Equal(t, "first", v)
	require.Equal(t, 1, m.Len())
}

func TestTreeMapInsertRangeFromRangeAndContainer(t *testing.T) {
	src := TreeMapFromSlice([]pair.Pair[int, string]{{Key: 1, Value: "a"}, {Key: 2, Value: "b"}})

	dst := NewTreeMap[int, string]()
	dst.InsertRange(src.Begin(), src.End())
	require.Equal(t, 2, dst.Len())

	ranged := TreeMapFromRange[int, string](src.Begin(), src.End())
	require.Equal(t, 2, ranged.Len())

	copied := TreeMapFromContainer(src)
	copied.Insert(3, "c")
	require.Equal(t, 2, src.Len())
	require.Equal(t, 3, copied.Len())
}

func TestTreeMapCloneIsIndependent(t *testing.T) {
	src := TreeMapFromSlice([]pair.Pair[int, string]{{Key: 1, Value: "a"}})
	clone := src.Clone()
	clone.Set(1, "changed")
	v, _ := src.At(1)
	require.Equal(t, "a", v)
}

func TestTreeMultiMapFromSliceAndInsertRange(t *testing.T) {
	src := TreeMultiMapFromSlice([]pair.Pair[int, string]{{Key: 1, Value: "a"}, {Key: 1, Value: "b"}})
	require.Equal(t, 2, src.Count(1))

	dst := NewTreeMultiMap[int, string]()
	dst.InsertRange(src.Begin(), src.End())
	require.Equal(t, 2, dst.Count(1))

	clone := TreeMultiMapFromContainer(src)
	clone.Insert(1, "c")
	require.Equal(t, 2, src.Count(1))
	require.Equal(t, 3, clone.Count(1))
}
