package algomodwt

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-modwt/internal/hash"
	"github.com/cwbudde/algo-modwt/internal/modwt"
)

// Wavelet holds the immutable filter bank of one wavelet family: the
// low/high-pass decomposition pair and the matching reconstruction pair.
// Instances are constructed once and shared read-only across transforms;
// accessor methods return defensive copies.
type Wavelet struct {
	name string
	id   uint64

	loD, hiD []float64 // decomposition (analysis) filters
	loR, hiR []float64 // reconstruction (synthesis) filters

	// Analysis filters with the MODWT 2^(-1/2) scale applied, shared by
	// every transform built on this wavelet.
	scaledLo, scaledHi []float64
}

// NewWavelet builds an orthogonal wavelet from its scaling (low-pass)
// coefficients. The high-pass filter is derived by the quadrature-mirror
// relation g[l] = (-1)^l h[L-1-l]; for orthogonal families the
// reconstruction pair equals the decomposition pair under the periodized
// MODWT inverse. Returns ErrWaveletFilter when the taps fail the
// orthonormality checks (sum √2, unit energy, shift-orthogonality).
func NewWavelet(name string, scaling []float64) (*Wavelet, error) {
	if len(scaling) < 2 || len(scaling)%2 != 0 {
		return nil, fmt.Errorf("%w: %q needs an even tap count >= 2, got %d",
			ErrWaveletFilter, name, len(scaling))
	}

	lo := make([]float64, len(scaling))
	copy(lo, scaling)

	hi := quadratureMirror(lo)

	if err := validateOrthonormal(name, lo, hi); err != nil {
		return nil, err
	}

	return &Wavelet{
		name:     name,
		id:       hash.ID(name),
		loD:      lo,
		hiD:      hi,
		loR:      lo,
		hiR:      hi,
		scaledLo: modwt.ScaleFilter(lo, modwt.Sqrt2Inv),
		scaledHi: modwt.ScaleFilter(hi, modwt.Sqrt2Inv),
	}, nil
}

// quadratureMirror derives the high-pass taps from the scaling taps.
func quadratureMirror(lo []float64) []float64 {
	l := len(lo)
	hi := make([]float64, l)

	for i := 0; i < l; i++ {
		if i%2 == 0 {
			hi[i] = lo[l-1-i]
		} else {
			hi[i] = -lo[l-1-i]
		}
	}

	return hi
}

// validateOrthonormal checks the conditions that make the periodized MODWT
// exactly invertible: Σh = √2, Σh²+Σg² = 2, and Σ h[l]h[l+2k] = 0 for every
// even shift k > 0.
func validateOrthonormal(name string, lo, hi []float64) error {
	const tol = 1e-8

	var sum, energy float64
	for _, v := range lo {
		sum += v
		energy += v * v
	}

	for _, v := range hi {
		energy += v * v
	}

	if math.Abs(sum-math.Sqrt2) > tol {
		return fmt.Errorf("%w: %q scaling taps sum to %.12g, want √2",
			ErrWaveletFilter, name, sum)
	}

	if math.Abs(energy-2) > tol {
		return fmt.Errorf("%w: %q filter energy Σh²+Σg² = %.12g, want 2",
			ErrWaveletFilter, name, energy)
	}

	for k := 1; k < len(lo)/2; k++ {
		var dot float64
		for l := 0; l+2*k < len(lo); l++ {
			dot += lo[l] * lo[l+2*k]
		}

		if math.Abs(dot) > tol {
			return fmt.Errorf("%w: %q scaling taps not orthogonal at shift %d (dot=%.3g)",
				ErrWaveletFilter, name, 2*k, dot)
		}
	}

	return nil
}

// Name returns the wavelet's name.
func (w *Wavelet) Name() string { return w.name }

// ID returns a stable identity hash used as a cache key component.
func (w *Wavelet) ID() uint64 { return w.id }

// FilterLength returns the number of taps L.
func (w *Wavelet) FilterLength() int { return len(w.loD) }

// LoDecomp returns a copy of the low-pass decomposition taps.
func (w *Wavelet) LoDecomp() []float64 { return copyTaps(w.loD) }

// HiDecomp returns a copy of the high-pass decomposition taps.
func (w *Wavelet) HiDecomp() []float64 { return copyTaps(w.hiD) }

// LoRecon returns a copy of the low-pass reconstruction taps.
func (w *Wavelet) LoRecon() []float64 { return copyTaps(w.loR) }

// HiRecon returns a copy of the high-pass reconstruction taps.
func (w *Wavelet) HiRecon() []float64 { return copyTaps(w.hiR) }

func (w *Wavelet) String() string { return w.name }

func copyTaps(taps []float64) []float64 {
	out := make([]float64, len(taps))
	copy(out, taps)

	return out
}

func mustWavelet(name string, scaling []float64) *Wavelet {
	w, err := NewWavelet(name, scaling)
	if err != nil {
		panic(err)
	}

	return w
}

// Predefined orthogonal wavelets. The coefficient tables are the standard
// published values; each satisfies Σh²+Σg² = 2 exactly to double precision.
var (
	// Haar is the 2-tap Haar wavelet.
	Haar = mustWavelet("haar", []float64{
		1.0 / math.Sqrt2, 1.0 / math.Sqrt2,
	})

	// DB2 is the 4-tap Daubechies wavelet with 2 vanishing moments.
	DB2 = mustWavelet("db2", []float64{
		(1 + math.Sqrt(3)) / (4 * math.Sqrt2),
		(3 + math.Sqrt(3)) / (4 * math.Sqrt2),
		(3 - math.Sqrt(3)) / (4 * math.Sqrt2),
		(1 - math.Sqrt(3)) / (4 * math.Sqrt2),
	})

	// DB3 is the 6-tap Daubechies wavelet with 3 vanishing moments.
	DB3 = mustWavelet("db3", []float64{
		0.3326705529509569,
		0.8068915093133388,
		0.4598775021193313,
		-0.13501102001039084,
		-0.08544127388224149,
		0.035226291882100656,
	})

	// DB4 is the 8-tap Daubechies wavelet with 4 vanishing moments.
	DB4 = mustWavelet("db4", []float64{
		0.23037781330885523,
		0.7148465705525415,
		0.6308807679295904,
		-0.02798376941698385,
		-0.18703481171888114,
		0.030841381835986965,
		0.032883011666982945,
		-0.010597401784997278,
	})

	// Sym4 is the 8-tap least-asymmetric Daubechies (symlet) wavelet.
	Sym4 = mustWavelet("sym4", []float64{
		0.03222310060404270,
		-0.012603967262037833,
		-0.09921954357684722,
		0.29785779560527736,
		0.8037387518059161,
		0.49761866763201545,
		-0.02963552764599851,
		-0.07576571478927333,
	})
)

// Wavelets returns the predefined wavelet families.
func Wavelets() []*Wavelet {
	return []*Wavelet{Haar, DB2, DB3, DB4, Sym4}
}

// WaveletByName looks up a predefined wavelet by name.
func WaveletByName(name string) (*Wavelet, bool) {
	for _, w := range Wavelets() {
		if w.name == name {
			return w, true
		}
	}

	return nil, false
}
