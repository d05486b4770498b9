package modwt

// Filter kinds for cache keys.
const (
	KindLow  uint8 = iota // scaling (low-pass) filter
	KindHigh              // wavelet (high-pass) filter
)

// filterKey identifies one prepared cascade filter: the base filter's
// identity, the cascade level, the post-truncation length and whether it is
// the low- or high-pass branch.
type filterKey struct {
	id     uint64
	level  int
	target int
	kind   uint8
}

// DefaultFilterCacheSize bounds the number of prepared per-level filters the
// cascade engine retains.
const DefaultFilterCacheSize = 64

// FilterCache memoizes upsampled and truncated cascade filters so repeated
// decompositions at the same level and signal length reuse prepared taps.
type FilterCache struct {
	lru *LRU[filterKey, []float64]
}

// NewFilterCache creates a cache bounded to capacity entries
// (DefaultFilterCacheSize when capacity < 1).
func NewFilterCache(capacity int) *FilterCache {
	if capacity < 1 {
		capacity = DefaultFilterCacheSize
	}

	return &FilterCache{lru: NewLRU[filterKey, []float64](capacity)}
}

// LevelFilter returns the level-j cascade filter derived from base: the taps
// upsampled by 2^(j-1) and truncated to n when longer. base must already
// carry the 2^(-1/2) scale. id identifies the base filter; kind
// distinguishes the low- and high-pass branches.
//
// Cached entries are shared; callers must not mutate the returned slice.
func (c *FilterCache) LevelFilter(base []float64, id uint64, kind uint8, level, n int) []float64 {
	target := min(ScaledLength(len(base), level), n)

	key := filterKey{id: id, level: level, target: target, kind: kind}
	if taps, ok := c.lru.Get(key); ok {
		return taps
	}

	taps := TruncateFilter(UpsampleForLevel(base, level), n)
	c.lru.Put(key, taps)

	return taps
}

// Len returns the number of cached filters.
func (c *FilterCache) Len() int {
	return c.lru.Len()
}

// Clear removes all cached filters.
func (c *FilterCache) Clear() {
	c.lru.Clear()
}
