// Package modwt implements the core arithmetic of the maximal-overlap
// discrete wavelet transform: circular convolution kernels, per-level filter
// preparation, the bounded filter cache, and the structure-of-arrays batch
// layout. The canonical definitions of BoundaryMode and the filter helpers
// live here; the root package re-exports what is public API.
package modwt

// BoundaryMode selects how convolution treats indices outside [0, n).
type BoundaryMode int

const (
	// Periodic wraps indices modulo the signal length. This is the only
	// mode with an exact inverse at the signal boundaries.
	Periodic BoundaryMode = iota

	// ZeroPadding treats out-of-range samples as zero. Reconstruction
	// near the edges is approximate.
	ZeroPadding

	// Symmetric mirrors the signal at its edges (half-point reflection).
	// Reconstruction near the edges is approximate.
	Symmetric
)

// String returns the mode name.
func (m BoundaryMode) String() string {
	switch m {
	case Periodic:
		return "periodic"
	case ZeroPadding:
		return "zero-padding"
	case Symmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a recognized boundary mode.
func (m BoundaryMode) Valid() bool {
	return m >= Periodic && m <= Symmetric
}

// extendIndex maps a possibly out-of-range index into [0, n) according to
// the boundary mode. The second result is false when the sample contributes
// nothing (zero padding outside the signal).
func extendIndex(i, n int, mode BoundaryMode) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}

	switch mode {
	case Periodic:
		i %= n
		if i < 0 {
			i += n
		}

		return i, true
	case ZeroPadding:
		return 0, false
	case Symmetric:
		// Half-point reflection with period 2n: ...2,1,0,0,1,2...
		period := 2 * n

		i %= period
		if i < 0 {
			i += period
		}

		if i >= n {
			i = period - 1 - i
		}

		return i, true
	default:
		return 0, false
	}
}
