package algomodwt

import (
	"fmt"

	"github.com/cwbudde/algo-modwt/internal/modwt"
)

// MultiLevelTransform is the cascade decomposition engine. Level j filters
// the previous level's approximation with the base filters upsampled by
// 2^(j-1); the per-level 2^(-1/2) scale accumulates to the 2^(-j/2) carried
// by the filter equivalent to level j. Upsampled filters longer than the
// signal are truncated to its length (intentional behavior for short
// signals), and prepared filters are memoized in a bounded LRU cache.
//
// All boundary modes are accepted. Perfect reconstruction of the full
// cascade holds under Periodic mode; ZeroPadding and Symmetric introduce a
// bounded reconstruction error near the signal edges.
type MultiLevelTransform struct {
	wavelet *Wavelet
	mode    BoundaryMode
	cache   *modwt.FilterCache
}

// NewMultiLevel creates a cascade engine for the given wavelet and boundary
// mode.
func NewMultiLevel(w *Wavelet, mode BoundaryMode) (*MultiLevelTransform, error) {
	if w == nil {
		return nil, ErrNilWavelet
	}

	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrBoundaryMode, mode)
	}

	return &MultiLevelTransform{
		wavelet: w,
		mode:    mode,
		cache:   modwt.NewFilterCache(0),
	}, nil
}

// Wavelet returns the wavelet this engine was built with.
func (t *MultiLevelTransform) Wavelet() *Wavelet { return t.wavelet }

// Mode returns the boundary mode.
func (t *MultiLevelTransform) Mode() BoundaryMode { return t.mode }

// MaxLevels returns the deepest decomposition supported for a signal of
// length n: the effective filter span (L-1)·2^(j-1)+1 doubles per level and
// must stay within n, with a hard cap of 10 levels so the shift arithmetic
// can never overflow. Signals shorter than the filter admit one (truncated)
// level.
func (t *MultiLevelTransform) MaxLevels(n int) int {
	return modwt.MaxLevels(n, t.wavelet.FilterLength())
}

// forwardStep runs one analysis convolution; the parallel driver substitutes
// a fan-out implementation with identical per-sample arithmetic.
type forwardStep func(approx, detail, x, lo, hi []float64)

// Decompose computes the multi-level MODWT of signal down to the requested
// depth. levels must lie in [1, MaxLevels(len(signal))].
func (t *MultiLevelTransform) Decompose(signal []float64, levels int) (*MultiLevelResult, error) {
	return t.decomposeUsing(signal, levels, func(approx, detail, x, lo, hi []float64) {
		modwt.Forward(approx, detail, x, lo, hi, t.mode)
	})
}

func (t *MultiLevelTransform) decomposeUsing(signal []float64, levels int, step forwardStep) (*MultiLevelResult, error) {
	if err := validateSignal(signal); err != nil {
		return nil, err
	}

	n := len(signal)

	maxL := t.MaxLevels(n)
	if levels < 1 || levels > maxL {
		return nil, fmt.Errorf("%w: levels=%d outside [1, %d] for signal length %d",
			ErrLevelRange, levels, maxL, n)
	}

	current := copyTaps(signal)
	details := make([][]float64, levels)

	for j := 1; j <= levels; j++ {
		lo, hi := t.levelFilters(j, n)

		approx := make([]float64, n)
		detail := make([]float64, n)
		step(approx, detail, current, lo, hi)

		details[j-1] = detail
		current = approx
	}

	return &MultiLevelResult{details: details, approx: current, n: n}, nil
}

// levelFilters returns the cached level-j analysis filters, upsampled and
// truncated for signal length n.
func (t *MultiLevelTransform) levelFilters(level, n int) (lo, hi []float64) {
	w := t.wavelet
	lo = t.cache.LevelFilter(w.scaledLo, w.id, modwt.KindLow, level, n)
	hi = t.cache.LevelFilter(w.scaledHi, w.id, modwt.KindHigh, level, n)

	return lo, hi
}

// Reconstruct inverts the full cascade, synthesizing from the final
// approximation and every detail level.
func (t *MultiLevelTransform) Reconstruct(res *MultiLevelResult) ([]float64, error) {
	if err := t.checkResult(res); err != nil {
		return nil, err
	}

	return t.reconstructBand(res, 1, res.Levels(), true), nil
}

// ReconstructFromLevel zeroes all detail levels finer than level before
// inverting, yielding the low-pass (denoised) reconstruction. level may be
// res.Levels()+1 to reconstruct from the final approximation alone.
func (t *MultiLevelTransform) ReconstructFromLevel(res *MultiLevelResult, level int) ([]float64, error) {
	if err := t.checkResult(res); err != nil {
		return nil, err
	}

	if level < 1 || level > res.Levels()+1 {
		return nil, fmt.Errorf("%w: level=%d outside [1, %d]",
			ErrLevelRange, level, res.Levels()+1)
	}

	return t.reconstructBand(res, level, res.Levels(), true), nil
}

// ReconstructLevels keeps only the inclusive detail band [lo, hi], zeroing
// the remaining detail levels and the final approximation, yielding a
// band-pass reconstruction.
func (t *MultiLevelTransform) ReconstructLevels(res *MultiLevelResult, lo, hi int) ([]float64, error) {
	if err := t.checkResult(res); err != nil {
		return nil, err
	}

	if lo < 1 || hi > res.Levels() || lo > hi {
		return nil, fmt.Errorf("%w: band [%d, %d] outside [1, %d]",
			ErrLevelRange, lo, hi, res.Levels())
	}

	return t.reconstructBand(res, lo, hi, false), nil
}

// reconstructBand runs the synthesis cascade from the deepest level down,
// substituting zeros for detail levels outside [loBand, hiBand] and for the
// final approximation when keepApprox is false.
func (t *MultiLevelTransform) reconstructBand(res *MultiLevelResult, loBand, hiBand int, keepApprox bool) []float64 {
	n := res.n
	levels := res.Levels()
	zero := make([]float64, n)

	var current []float64
	if keepApprox {
		current = copyTaps(res.approx)
	} else {
		current = make([]float64, n)
	}

	for j := levels; j >= 1; j-- {
		lo, hi := t.levelFilters(j, n)

		detail := zero
		if j >= loBand && j <= hiBand {
			detail = res.details[j-1]
		}

		dst := make([]float64, n)
		modwt.Inverse(dst, current, detail, lo, hi, t.mode)
		current = dst
	}

	return current
}

func (t *MultiLevelTransform) checkResult(res *MultiLevelResult) error {
	if res == nil {
		return ErrNilResult
	}

	if res.Levels() < 1 || res.n == 0 {
		return fmt.Errorf("%w: result has %d levels, length %d",
			ErrLengthMismatch, res.Levels(), res.n)
	}

	return nil
}
