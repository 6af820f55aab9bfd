// Package hashindex implements the bucketed open-hashing index used
// by the unordered associative containers. Like rbtree, it indexes
// *cellist.Cell pointers, never copies of the value.
package hashindex

import "github.com/student/gostl/internal/cellist"

const defaultBucketCount = 8

// DefaultMaxLoadFactor is the default rehash threshold.
const DefaultMaxLoadFactor = 1.0

type link[K, V any] struct {
	bucket int
}

// Index is an array of buckets, each a short slice of cell handles
// whose keys hash to that bucket modulo the bucket count.
type Index[K, V any] struct {
	buckets       [][]*cellist.Cell[K, V]
	size          int
	hash          func(K) uint32
	eq            func(a, b K) bool
	maxLoadFactor float64
}

// New returns an empty hash index. Contiguity bookkeeping for multi
// containers' EqualRange is the caller's responsibility — Index only
// maintains bucket membership.
func New[K, V any](hash func(K) uint32, eq func(a, b K) bool) *Index[K, V] {
	return &Index[K, V]{
		buckets:       make([][]*cellist.Cell[K, V], defaultBucketCount),
		hash:          hash,
		eq:            eq,
		maxLoadFactor: DefaultMaxLoadFactor,
	}
}

// Len returns the number of indexed cells.
func (h *Index[K, V]) Len() int { return h.size }

// BucketCount returns the current number of buckets. Always ≥ 1.
func (h *Index[K, V]) BucketCount() int { return len(h.buckets) }

// LoadFactor returns size / BucketCount.
func (h *Index[K, V]) LoadFactor() float64 {
	return float64(h.size) / float64(len(h.buckets))
}

// MaxLoadFactor returns the current rehash threshold.
func (h *Index[K, V]) MaxLoadFactor() float64 { return h.maxLoadFactor }

// SetMaxLoadFactor changes the rehash threshold and rehashes
// immediately if the current load factor now exceeds it.
func (h *Index[K, V]) SetMaxLoadFactor(f float64) {
	h.maxLoadFactor = f
	if h.LoadFactor() > h.maxLoadFactor {
		h.Rehash(h.size)
	}
}

func (h *Index[K, V]) bucketFor(k K) int {
	return int(h.hash(k) % uint32(len(h.buckets)))
}

// Find returns the first indexed cell whose key is equal to k under
// eq, or nil if none.
func (h *Index[K, V]) Find(k K) *cellist.Cell[K, V] {
	b := h.buckets[h.bucketFor(k)]
	for _, c := range b {
		if h.eq(c.Key, k) {
			return c
		}
	}
	return nil
}

// Count returns the number of indexed cells with key equal to k.
// O(bucket length).
func (h *Index[K, V]) Count(k K) int {
	n := 0
	for _, c := range h.buckets[h.bucketFor(k)] {
		if h.eq(c.Key, k) {
			n++
		}
	}
	return n
}

// EqualRange returns every indexed cell with key equal to k.
// O(bucket length).
func (h *Index[K, V]) EqualRange(k K) []*cellist.Cell[K, V] {
	var out []*cellist.Cell[K, V]
	for _, c := range h.buckets[h.bucketFor(k)] {
		if h.eq(c.Key, k) {
			out = append(out, c)
		}
	}
	return out
}

// Insert adds cell to its bucket and rehashes if the load factor
// would exceed MaxLoadFactor. The caller is responsible for having
// already placed cell into the container's list (and, for multi
// containers, adjacent to any existing equal-keyed cells, so
// EqualRange sees a contiguous run); Insert only maintains bucket
// membership.
func (h *Index[K, V]) Insert(cell *cellist.Cell[K, V]) {
	if float64(h.size+1)/float64(len(h.buckets)) > h.maxLoadFactor {
		h.Rehash(len(h.buckets) * 2)
	}
	b := h.bucketFor(cell.Key)
	h.buckets[b] = append(h.buckets[b], cell)
	cell.Link = &link[K, V]{bucket: b}
	h.size++
}

// Erase removes cell from its bucket in O(bucket length), using its
// Link back-pointer to avoid rehashing the key.
func (h *Index[K, V]) Erase(cell *cellist.Cell[K, V]) {
	lk, ok := cell.Link.(*link[K, V])
	if !ok || lk == nil {
		return
	}
	b := h.buckets[lk.bucket]
	for i, c := range b {
		if c == cell {
			h.buckets[lk.bucket] = append(b[:i], b[i+1:]...)
			break
		}
	}
	cell.Link = nil
	h.size--
}

// Rehash rebuilds the bucket array with newBucketCount buckets (at
// least 1, and at least enough to keep the load factor within
// MaxLoadFactor). O(n).
func (h *Index[K, V]) Rehash(newBucketCount int) {
	min := int(float64(h.size)/h.maxLoadFactor) + 1
	if newBucketCount < min {
		newBucketCount = min
	}
	if newBucketCount < 1 {
		newBucketCount = 1
	}
	old := h.buckets
	h.buckets = make([][]*cellist.Cell[K, V], newBucketCount)
	for _, bucket := range old {
		for _, c := range bucket {
			b := h.bucketFor(c.Key)
			h.buckets[b] = append(h.buckets[b], c)
			c.Link = &link[K, V]{bucket: b}
		}
	}
}

// Clear empties every bucket without shrinking the bucket array.
func (h *Index[K, V]) Clear() {
	for i := range h.buckets {
		h.buckets[i] = nil
	}
	h.size = 0
}
