package container

import (
	"testing"

	"github.com/student/gostl/pair"
	"github.com/stretchr/testify/require"
)

func TestHashMapInsertAndAt(t *testing.T) {
	m := NewHashMap[string, int]()
	_, inserted := m.Insert("a", 1)
	require.True(t, inserted)
	_, inserted = m.Insert("b", 2)
	require.True(t, inserted)
	it, inserted := m.Insert("a", 3)
	require.False(t, inserted)
	require.Equal(t, "a", it.Key())

	require.Equal(t, 2, m.Len())
	v, err := m.At("a")
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestHashMapGetOrInsertSet(t *testing.T) {
	m := NewHashMap[int, string]()
	require.Equal(t, "", m.GetOrInsert(1, ""))
	m.Set(1, "one")
	v, _ := m.At(1)
	require.Equal(t, "one", v)
}

func TestHashMultiMapEqualRange(t *testing.T) {
	mm := NewHashMultiMap[int, string]()
	mm.Insert(1, "a")
	mm.Insert(1, "b")
	mm.Insert(2, "c")
	require.Equal(t, 2, mm.Count(1))

	lo, hi := mm.EqualRange(1)
	vals := map[string]bool{}
	for it := lo; !it.EqualTo(hi); it = it.NextT() {
		vals[it.MappedValue()] = true
	}
	require.True(t, vals["a"] && vals["b"])
}

func TestHashMapCustomHasherAndCapacityHint(t *testing.T) {
	calls := 0
	m := NewHashMap[int, int](
		WithHasher(func(k int) uint32 {
			calls++
			return uint32(k)
		}),
		WithCapacityHint[int](1000),
		WithMaxLoadFactor[int](0.5),
	)
	require.GreaterOrEqual(t, m.BucketCount(), 2000)
	m.Insert(1, 1)
	require.Greater(t, calls, 0)
}

func TestHashMapFromSliceAndInsertRange(t *testing.T) {
	src := HashMapFromSlice([]pair.Pair[string, int]{{Key: "a", Value: 1}, {Key: "b", Value: 2}})
	require.Equal(t, 2, src.Len())

	dst := NewHashMap[string, int]()
	dst.InsertRange(src.Begin(), src.End())
	require.Equal(t, 2, dst.Len())

	ranged := HashMapFromRange[string, int](src.Begin(), src.End())
	require.Equal(t, 2, ranged.Len())
}

func TestHashMapFromContainerAndClone(t *testing.T) {
	src := HashMapFromSlice([]pair.Pair[string, int]{{Key: "a", Value: 1}})
	copied := HashMapFromContainer(src)
	copied.Set("a", 2)
	v, _ := src.At("a")
	require.Equal(t, 1, v)

	clone := src.Clone()
	clone.Insert("b", 3)
	require.Equal(t, 1, src.Len())
	require.Equal(t, 2, clone.Len())
}

func TestHashMultiMapFromSliceAndInsertRange(t *testing.T) {
	src := HashMultiMapFromSlice([]pair.Pair[int, string]{{Key: 1, Value: "a"}, {Key: 1, Value: "b"}})
	require.Equal(t, 2, src.Count(1))

	dst := NewHashMultiMap[int, string]()
	dst.InsertRange(src.Begin(), src.End())
	require.Equal(t, 2, dst.Count(1))

	clone := HashMultiMapFromContainer(src)
	clone.Insert(1, "c")
	require.Equal(t, 2, src.Count(1))
	require.Equal(t, 3, clone.Count(1))
}
