package modwt

import "math"

// Forward computes one analysis step: for each output index t,
//
//	approx[t] = Σ_l lo[l]·x[(t-l)]    detail[t] = Σ_l hi[l]·x[(t-l)]
//
// with out-of-range indices resolved by mode. approx and detail must have
// length len(x). The filters are the already-scaled (and, for cascade
// levels, upsampled) taps.
func Forward(approx, detail, x, lo, hi []float64, mode BoundaryMode) {
	ForwardRange(approx, detail, x, lo, hi, mode, 0, len(x))
}

// ForwardRange computes Forward for output indices [t0, t1) only. Output
// samples are independent, so disjoint ranges can run concurrently and
// produce output identical to a single sequential pass.
func ForwardRange(approx, detail, x, lo, hi []float64, mode BoundaryMode, t0, t1 int) {
	n := len(x)

	for t := t0; t < t1; t++ {
		var a, d float64

		for l := range lo {
			idx, ok := extendIndex(t-l, n, mode)
			if !ok {
				continue
			}

			v := x[idx]
			a += lo[l] * v
			d += hi[l] * v
		}

		approx[t] = a
		detail[t] = d
	}
}

// Inverse computes one synthesis step:
//
//	dst[t] = Σ_l lo[l]·approx[(t+l)] + hi[l]·detail[(t+l)]
//
// the exact adjoint of Forward under Periodic mode. dst must have length
// len(approx).
func Inverse(dst, approx, detail, lo, hi []float64, mode BoundaryMode) {
	InverseRange(dst, approx, detail, lo, hi, mode, 0, len(approx))
}

// InverseRange computes Inverse for output indices [t0, t1) only.
func InverseRange(dst, approx, detail, lo, hi []float64, mode BoundaryMode, t0, t1 int) {
	n := len(approx)

	for t := t0; t < t1; t++ {
		var sum float64

		for l := range lo {
			idx, ok := extendIndex(t+l, n, mode)
			if !ok {
				continue
			}

			sum += lo[l]*approx[idx] + hi[l]*detail[idx]
		}

		dst[t] = sum
	}
}

// FindInvalid returns the index of the first NaN or infinite sample,
// or (-1, false) when the signal is finite throughout.
func FindInvalid(signal []float64) (int, bool) {
	for i, v := range signal {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i, true
		}
	}

	return -1, false
}
