// Package algo holds the small set of generic algorithms that depend
// only on the iterator protocol — a consumer of the container
// packages, never modified by them.
package algo

import "github.com/student/gostl/iterator"

// ForEach applies f to every element in [first, last).
func ForEach[T any](first, last iterator.Forward[T], f func(T)) {
	for it := first; !it.EqualTo(last); it = it.Next() {
		f(it.Value())
	}
}

// Find returns the first iterator in [first, last) whose value
// equals target under eq, or last if none match.
func Find[T any](first, last iterator.Forward[T], target T, eq func(a, b T) bool) iterator.Forward[T] {
	for it := first; !it.EqualTo(last); it = it.Next() {
		if eq(it.Value(), target) {
			return it
		}
	}
	return last
}

// Count returns the number of elements in [first, last) for which
// pred returns true.
func Count[T any](first, last iterator.Forward[T], pred func(T) bool) int {
	n := 0
	for it := first; !it.EqualTo(last); it = it.Next() {
		if pred(it.Value()) {
			n++
		}
	}
	return n
}

// Distance returns the number of Next steps from first to last.
func Distance[T any](first, last iterator.Forward[T]) int {
	return iterator.Distance(first, last)
}

// LowerBound returns the first iterator in the sorted range
// [first, last) for which less(value, target) is false.
func LowerBound[T any](first, last iterator.Forward[T], target T, less func(a, b T) bool) iterator.Forward[T] {
	for it := first; !it.EqualTo(last); it = it.Next() {
		if !less(it.Value(), target) {
			return it
		}
	}
	return last
}

// UpperBound returns the first iterator in the sorted range
// [first, last) for which less(target, value) is true.
func UpperBound[T any](first, last iterator.Forward[T], target T, less func(a, b T) bool) iterator.Forward[T] {
	for it := first; !it.EqualTo(last); it = it.Next() {
		if less(target, it.Value()) {
			return it
		}
	}
	return last
}

// Sort sorts every element of ra in place using less. It requires
// random-access (indexed) storage and is NOT guaranteed stable; use
// StableSort when stability matters.
func Sort[T any](ra RandomAccessRange[T], less func(a, b T) bool) {
	n := ra.Len()
	quicksort(ra, less, 0, n-1)
}

// StableSort sorts every element of ra in place using less, preserving
// the relative order of elements that compare equal.
func StableSort[T any](ra RandomAccessRange[T], less func(a, b T) bool) {
	n := ra.Len()
	buf := make([]T, n)
	for i := 0; i < n; i++ {
		buf[i] = ra.Get(i)
	}
	mergeSort(buf, less)
	for i := 0; i < n; i++ {
		ra.Set(i, buf[i])
	}
}

// RandomAccessRange is the minimal capability Sort/StableSort need
// from a random-access container: indexed get/set and a length. It is
// satisfied by sequence.Vector and sequence.Deque.
type RandomAccessRange[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, v T)
}

func quicksort[T any](ra RandomAccessRange[T], less func(a, b T) bool, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(ra, less, lo, hi)
	quicksort(ra, less, lo, p-1)
	quicksort(ra, less, p+1, hi)
}

func partition[T any](ra RandomAccessRange[T], less func(a, b T) bool, lo, hi int) int {
	pivot := ra.Get(hi)
	i := lo
	for j := lo; j < hi; j++ {
		if less(ra.Get(j), pivot) {
			swap(ra, i, j)
			i++
		}
	}
	swap(ra, i, hi)
	return i
}

func swap[T any](ra RandomAccessRange[T], i, j int) {
	a, b := ra.Get(i), ra.Get(j)
	ra.Set(i, b)
	ra.Set(j, a)
}

func mergeSort[T any](buf []T, less func(a, b T) bool) {
	n := len(buf)
	if n < 2 {
		return
	}
	mid := n / 2
	left := append([]T(nil), buf[:mid]...)
	right := append([]T(nil), buf[mid:]...)
	mergeSort(left, less)
	mergeSort(right, less)
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			buf[k] = right[j]
			j++
		} else {
			buf[k] = left[i]
			i++
		}
		k++
	}
	for i < len(left) {
		buf[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		buf[k] = right[j]
		j++
		k++
	}
}
