package container

import "github.com/student/gostl/hashindex"

// HashConfig collects the constructor-time knobs for a hash-backed
// container: hash/equality overrides, initial load-factor threshold,
// and a capacity hint, expressed as Go functional options rather than
// overloaded constructors.
type HashConfig[K any] struct {
	Hash          func(K) uint32
	Eq            func(a, b K) bool
	MaxLoadFactor float64
	CapacityHint  int
}

// HashOption mutates a HashConfig at construction time.
type HashOption[K any] func(*HashConfig[K])

// WithHasher overrides the default hash function.
func WithHasher[K any](hash func(K) uint32) HashOption[K] {
	return func(c *HashConfig[K]) { c.Hash = hash }
}

// WithKeyEq overrides the default equality predicate.
func WithKeyEq[K any](eq func(a, b K) bool) HashOption[K] {
	return func(c *HashConfig[K]) { c.Eq = eq }
}

// WithMaxLoadFactor overrides the default rehash threshold (1.0).
func WithMaxLoadFactor[K any](f float64) HashOption[K] {
	return func(c *HashConfig[K]) { c.MaxLoadFactor = f }
}

// WithCapacityHint pre-sizes the bucket array to accommodate n
// elements at the configured max load factor without an immediate
// rehash.
func WithCapacityHint[K any](n int) HashOption[K] {
	return func(c *HashConfig[K]) { c.CapacityHint = n }
}

func resolveHashConfig[K any](defaultHash func(K) uint32, defaultEq func(a, b K) bool, opts []HashOption[K]) HashConfig[K] {
	cfg := HashConfig[K]{Hash: defaultHash, Eq: defaultEq, MaxLoadFactor: hashindex.DefaultMaxLoadFactor}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func applyHashConfig[K, V any](core *hashCore[K, V], cfg HashConfig[K]) {
	core.index.SetMaxLoadFactor(cfg.MaxLoadFactor)
	if cfg.CapacityHint > 0 {
		core.index.Rehash(int(float64(cfg.CapacityHint)/cfg.MaxLoadFactor) + 1)
	}
}

// TreeConfig collects the constructor-time knobs for a tree-backed
// container: currently just the ordering comparator.
type TreeConfig[K any] struct {
	Less func(a, b K) bool
}

// TreeOption mutates a TreeConfig at construction time.
type TreeOption[K any] func(*TreeConfig[K])

// WithComparator overrides the default (cmp.Less) ordering used by an
// Ordered-keyed tree container's constructor.
func WithComparator[K any](less func(a, b K) bool) TreeOption[K] {
	return func(c *TreeConfig[K]) { c.Less = less }
}

func resolveTreeConfig[K any](defaultLess func(a, b K) bool, opts []TreeOption[K]) TreeConfig[K] {
	cfg := TreeConfig[K]{Less: defaultLess}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
