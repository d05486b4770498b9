package algomodwt

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-modwt/internal/modwt"
)

// Result holds the output of one single-level forward transform: the
// approximation (low-pass) and detail (high-pass) coefficient arrays, both
// of the source signal's length.
//
// Approx and Detail return defensive copies; ApproxInPlace and DetailInPlace
// expose the backing arrays for in-place workflows and invalidate the cached
// band energies.
type Result struct {
	approx []float64
	detail []float64
	n      int

	energyValid  bool
	approxEnergy float64
	detailEnergy float64
}

func newResult(approx, detail []float64) *Result {
	return &Result{approx: approx, detail: detail, n: len(approx)}
}

// Len returns the source signal length N.
func (r *Result) Len() int { return r.n }

// Approx returns a copy of the approximation coefficients.
func (r *Result) Approx() []float64 { return copyTaps(r.approx) }

// Detail returns a copy of the detail coefficients.
func (r *Result) Detail() []float64 { return copyTaps(r.detail) }

// ApproxInPlace returns the backing approximation array. Mutating it
// invalidates the cached energies.
func (r *Result) ApproxInPlace() []float64 {
	r.invalidate()
	return r.approx
}

// DetailInPlace returns the backing detail array. Mutating it invalidates
// the cached energies.
func (r *Result) DetailInPlace() []float64 {
	r.invalidate()
	return r.detail
}

// Valid reports whether every coefficient is finite.
func (r *Result) Valid() bool {
	if _, bad := modwt.FindInvalid(r.approx); bad {
		return false
	}

	_, bad := modwt.FindInvalid(r.detail)

	return !bad
}

// Energy returns the sums of squared approximation and detail coefficients.
// The values are computed lazily and cached until the backing arrays are
// exposed for mutation.
func (r *Result) Energy() (approx, detail float64) {
	if !r.energyValid {
		r.approxEnergy = sumSquares(r.approx)
		r.detailEnergy = sumSquares(r.detail)
		r.energyValid = true
	}

	return r.approxEnergy, r.detailEnergy
}

func (r *Result) invalidate() { r.energyValid = false }

func sumSquares(xs []float64) float64 {
	var sum float64
	for _, v := range xs {
		sum += v * v
	}

	return sum
}

// MultiLevelResult holds a cascade decomposition: detail coefficients for
// levels 1..J (level 1 is the finest) and the final level-J approximation,
// every array of the source signal's length.
type MultiLevelResult struct {
	details [][]float64
	approx  []float64
	n       int
}

// Levels returns the decomposition depth J.
func (m *MultiLevelResult) Levels() int { return len(m.details) }

// Len returns the source signal length N.
func (m *MultiLevelResult) Len() int { return m.n }

// Detail returns a copy of the detail coefficients at the given level
// (1 = finest).
func (m *MultiLevelResult) Detail(level int) ([]float64, error) {
	if level < 1 || level > len(m.details) {
		return nil, fmt.Errorf("%w: level=%d outside [1, %d]",
			ErrLevelRange, level, len(m.details))
	}

	return copyTaps(m.details[level-1]), nil
}

// DetailInPlace returns the backing detail array at the given level.
func (m *MultiLevelResult) DetailInPlace(level int) ([]float64, error) {
	if level < 1 || level > len(m.details) {
		return nil, fmt.Errorf("%w: level=%d outside [1, %d]",
			ErrLevelRange, level, len(m.details))
	}

	return m.details[level-1], nil
}

// FinalApprox returns a copy of the level-J approximation coefficients.
func (m *MultiLevelResult) FinalApprox() []float64 { return copyTaps(m.approx) }

// FinalApproxInPlace returns the backing approximation array.
func (m *MultiLevelResult) FinalApproxInPlace() []float64 { return m.approx }

// EnergyDistribution returns J+1 values, one per detail level plus the final
// approximation, each the share of total squared-coefficient energy in that
// band. The values are non-negative and sum to 1 for any non-zero
// decomposition; an all-zero decomposition yields all zeros.
func (m *MultiLevelResult) EnergyDistribution() []float64 {
	dist := make([]float64, len(m.details)+1)

	var total float64

	for i, d := range m.details {
		dist[i] = sumSquares(d)
		total += dist[i]
	}

	dist[len(m.details)] = sumSquares(m.approx)
	total += dist[len(m.details)]

	if total == 0 {
		return dist
	}

	for i := range dist {
		dist[i] /= total
	}

	return dist
}

// Threshold applies coefficient thresholding to one detail level in place,
// the elementary denoising step. With soft=false coefficients with magnitude
// below lambda are zeroed; with soft=true surviving coefficients are
// additionally shrunk toward zero by lambda.
func (m *MultiLevelResult) Threshold(level int, lambda float64, soft bool) error {
	if lambda < 0 || math.IsNaN(lambda) {
		return fmt.Errorf("%w: threshold lambda=%g must be >= 0", ErrConfig, lambda)
	}

	d, err := m.DetailInPlace(level)
	if err != nil {
		return err
	}

	for i, v := range d {
		switch {
		case math.Abs(v) <= lambda:
			d[i] = 0
		case soft && v > 0:
			d[i] = v - lambda
		case soft:
			d[i] = v + lambda
		}
	}

	return nil
}
