package modwt

// Structure-of-arrays layout: index i*batch + b holds sample i of signal b,
// so one time index is contiguous across the whole batch and the inner
// convolution loop runs along vector lanes.

// ToSoA converts batch signals (each of length n) into a freshly allocated
// structure-of-arrays slice of length batch*n.
func ToSoA(signals [][]float64) []float64 {
	batch := len(signals)
	if batch == 0 {
		return nil
	}

	n := len(signals[0])
	dst := make([]float64, batch*n)
	ToSoAInto(dst, signals)

	return dst
}

// ToSoAInto converts signals into dst, which must have length
// len(signals)*len(signals[0]).
func ToSoAInto(dst []float64, signals [][]float64) {
	batch := len(signals)

	for b, sig := range signals {
		for i, v := range sig {
			dst[i*batch+b] = v
		}
	}
}

// FromSoA converts a structure-of-arrays slice back into per-signal rows.
// FromSoA(ToSoA(s), len(s), len(s[0])) reproduces s exactly for any batch
// size and length.
func FromSoA(soa []float64, batch, n int) [][]float64 {
	signals := make([][]float64, batch)

	for b := 0; b < batch; b++ {
		sig := make([]float64, n)
		for i := 0; i < n; i++ {
			sig[i] = soa[i*batch+b]
		}

		signals[b] = sig
	}

	return signals
}

// ForwardSoA runs the single-level analysis convolution across a whole batch
// in structure-of-arrays layout. approx and detail must be zeroed slices of
// length batch*n. The inner loop over the batch dimension is unrolled to
// match the caller's vector lane count (eight wide when unroll >= 8, four
// wide otherwise); each lane performs exactly the arithmetic of the scalar
// Forward kernel, so results match the scalar path bit for bit at any
// unroll width.
//
// tile > 0 processes the time axis in blocks of that many indices to keep
// the working set cache-resident; tile <= 0 disables blocking.
func ForwardSoA(approx, detail, soa []float64, batch, n int, lo, hi []float64, mode BoundaryMode, tile, unroll int) {
	ForwardSoARange(approx, detail, soa, batch, n, lo, hi, mode, tile, unroll, 0, n)
}

// ForwardSoARange restricts ForwardSoA to output time indices [from, to).
// Disjoint ranges are independent and can run concurrently.
func ForwardSoARange(approx, detail, soa []float64, batch, n int, lo, hi []float64, mode BoundaryMode, tile, unroll, from, to int) {
	if tile <= 0 {
		tile = n
	}

	wide := unroll >= 8

	for t0 := from; t0 < to; t0 += tile {
		t1 := min(t0+tile, to)

		for t := t0; t < t1; t++ {
			outBase := t * batch

			for l := range lo {
				idx, ok := extendIndex(t-l, n, mode)
				if !ok {
					continue
				}

				cLo := lo[l]
				cHi := hi[l]
				srcBase := idx * batch

				b := 0
				if wide {
					for ; b+7 < batch; b += 8 {
						v0 := soa[srcBase+b]
						v1 := soa[srcBase+b+1]
						v2 := soa[srcBase+b+2]
						v3 := soa[srcBase+b+3]
						v4 := soa[srcBase+b+4]
						v5 := soa[srcBase+b+5]
						v6 := soa[srcBase+b+6]
						v7 := soa[srcBase+b+7]

						approx[outBase+b] += cLo * v0
						approx[outBase+b+1] += cLo * v1
						approx[outBase+b+2] += cLo * v2
						approx[outBase+b+3] += cLo * v3
						approx[outBase+b+4] += cLo * v4
						approx[outBase+b+5] += cLo * v5
						approx[outBase+b+6] += cLo * v6
						approx[outBase+b+7] += cLo * v7

						detail[outBase+b] += cHi * v0
						detail[outBase+b+1] += cHi * v1
						detail[outBase+b+2] += cHi * v2
						detail[outBase+b+3] += cHi * v3
						detail[outBase+b+4] += cHi * v4
						detail[outBase+b+5] += cHi * v5
						detail[outBase+b+6] += cHi * v6
						detail[outBase+b+7] += cHi * v7
					}
				}

				for ; b+3 < batch; b += 4 {
					v0 := soa[srcBase+b]
					v1 := soa[srcBase+b+1]
					v2 := soa[srcBase+b+2]
					v3 := soa[srcBase+b+3]

					approx[outBase+b] += cLo * v0
					approx[outBase+b+1] += cLo * v1
					approx[outBase+b+2] += cLo * v2
					approx[outBase+b+3] += cLo * v3

					detail[outBase+b] += cHi * v0
					detail[outBase+b+1] += cHi * v1
					detail[outBase+b+2] += cHi * v2
					detail[outBase+b+3] += cHi * v3
				}

				for ; b < batch; b++ {
					v := soa[srcBase+b]
					approx[outBase+b] += cLo * v
					detail[outBase+b] += cHi * v
				}
			}
		}
	}
}
