package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
// It is used to derive stable wavelet identities for cache keys.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
