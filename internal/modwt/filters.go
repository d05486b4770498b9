package modwt

import "math"

// LevelCap is the hard upper bound on decomposition depth. The effective
// filter span doubles per level, so the cap keeps all shift arithmetic far
// from 32-bit overflow regardless of the signal length.
const LevelCap = 10

// Sqrt2Inv is the per-level MODWT filter scale 2^(-1/2).
var Sqrt2Inv = 1.0 / math.Sqrt2

// ScaleFilter returns taps multiplied by scale.
func ScaleFilter(taps []float64, scale float64) []float64 {
	scaled := make([]float64, len(taps))
	for i, v := range taps {
		scaled[i] = v * scale
	}

	return scaled
}

// ScaledLength returns the span of the level-j upsampled filter:
// (L-1)*2^(j-1) + 1. level must be in [1, LevelCap]; the cap guarantees the
// shift cannot overflow.
func ScaledLength(filterLen, level int) int {
	return (filterLen-1)<<uint(level-1) + 1
}

// UpsampleForLevel inserts 2^(level-1)-1 zeros between consecutive taps,
// producing the level-j cascade filter. Level 1 returns a copy of taps.
func UpsampleForLevel(taps []float64, level int) []float64 {
	if level <= 1 {
		out := make([]float64, len(taps))
		copy(out, taps)

		return out
	}

	gap := 1 << uint(level-1)
	out := make([]float64, ScaledLength(len(taps), level))

	for i, v := range taps {
		out[i*gap] = v
	}

	return out
}

// TruncateFilter returns the first n taps of taps. Short signals convolve
// with truncated upsampled filters; the resulting boundary behavior is
// intentional, not an error.
func TruncateFilter(taps []float64, n int) []float64 {
	if len(taps) <= n {
		return taps
	}

	out := make([]float64, n)
	copy(out, taps[:n])

	return out
}

// MaxLevels returns the deepest decomposition level for a signal of length n
// and a base filter of length filterLen: the largest j with
// ScaledLength(filterLen, j) <= n, capped at LevelCap. Signals shorter than
// the filter still admit one level (with filter truncation), so the result
// is at least 1 for any n >= 1.
func MaxLevels(n, filterLen int) int {
	if n < 1 || filterLen < 2 {
		return 0
	}

	levels := 0

	for j := 1; j <= LevelCap; j++ {
		if ScaledLength(filterLen, j) > n {
			break
		}

		levels = j
	}

	if levels == 0 {
		levels = 1
	}

	return levels
}
