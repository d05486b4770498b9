package algomodwt

import (
	"fmt"

	"github.com/cwbudde/algo-modwt/internal/modwt"
)

// Transform is the single-level periodized MODWT kernel. It is a pure
// computation over the wavelet's immutable filters: Forward and Inverse keep
// no state and are safe for concurrent use.
//
// Only the Periodic boundary mode is accepted; it is the one mode for which
// Inverse(Forward(x)) reproduces x exactly (to double-precision tolerance)
// for any signal length N >= 1. The multi-level and streaming layers emulate
// the other modes.
type Transform struct {
	wavelet *Wavelet
	mode    BoundaryMode
	lo, hi  []float64
}

// New creates a single-level transform for the given wavelet.
// Boundary modes other than Periodic are rejected with ErrBoundaryMode.
func New(w *Wavelet, mode BoundaryMode) (*Transform, error) {
	if w == nil {
		return nil, ErrNilWavelet
	}

	if mode != Periodic {
		return nil, fmt.Errorf("%w: single-level kernel requires %v, got %v",
			ErrBoundaryMode, Periodic, mode)
	}

	return &Transform{
		wavelet: w,
		mode:    mode,
		lo:      w.scaledLo,
		hi:      w.scaledHi,
	}, nil
}

// Wavelet returns the wavelet this transform was built with.
func (t *Transform) Wavelet() *Wavelet { return t.wavelet }

// Mode returns the boundary mode.
func (t *Transform) Mode() BoundaryMode { return t.mode }

// Forward computes the single-level MODWT of signal:
//
//	V[t] = Σ_l h'[l]·X[(t-l) mod N]    W[t] = Σ_l g'[l]·X[(t-l) mod N]
//
// where h', g' are the wavelet's filters scaled by 2^(-1/2). Both output
// arrays have length N. The signal must be non-empty and finite throughout.
func (t *Transform) Forward(signal []float64) (*Result, error) {
	if err := validateSignal(signal); err != nil {
		return nil, err
	}

	n := len(signal)
	approx := make([]float64, n)
	detail := make([]float64, n)

	modwt.Forward(approx, detail, signal, t.lo, t.hi, t.mode)

	return newResult(approx, detail), nil
}

// Inverse reconstructs the signal from a forward result:
//
//	X[t] = Σ_l h'[l]·V[(t+l) mod N] + g'[l]·W[(t+l) mod N]
//
// For results produced by Forward under Periodic mode the reconstruction is
// exact to ~1e-10 relative error.
func (t *Transform) Inverse(res *Result) ([]float64, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	if res.n == 0 || len(res.approx) != res.n || len(res.detail) != res.n {
		return nil, fmt.Errorf("%w: result arrays %d/%d for length %d",
			ErrLengthMismatch, len(res.approx), len(res.detail), res.n)
	}

	dst := make([]float64, res.n)
	modwt.Inverse(dst, res.approx, res.detail, t.lo, t.hi, t.mode)

	return dst, nil
}

// validateSignal rejects nil/empty signals and any NaN or infinite sample
// before computation starts.
func validateSignal(signal []float64) error {
	if len(signal) == 0 {
		return ErrEmptySignal
	}

	if i, bad := modwt.FindInvalid(signal); bad {
		return fmt.Errorf("%w: sample %d is %g", ErrInvalidSignal, i, signal[i])
	}

	return nil
}
