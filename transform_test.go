package algomodwt

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

// TestRoundTrip checks inverse(forward(x)) == x under periodic mode for
// every predefined wavelet across lengths including 1, primes, and values
// shorter than the filter.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	sizes := []int{1, 2, 3, 4, 5, 7, 8, 16, 33, 100, 257}

	for _, w := range Wavelets() {
		w := w
		t.Run(w.Name(), func(t *testing.T) {
			t.Parallel()

			tr, err := New(w, Periodic)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			for _, n := range sizes {
				x := randSignal(n, int64(n)*31+7)

				res, err := tr.Forward(x)
				if err != nil {
					t.Fatalf("Forward(n=%d): %v", n, err)
				}

				if res.Len() != n {
					t.Fatalf("Len() = %d, want %d", res.Len(), n)
				}

				rec, err := tr.Inverse(res)
				if err != nil {
					t.Fatalf("Inverse(n=%d): %v", n, err)
				}

				assertApproxSlice(t, rec, x, 1e-9, fmt.Sprintf("round trip n=%d", n))
			}
		})
	}
}

// TestRoundTripKnownSignal is the concrete Haar scenario: [1,2,3,4] survives
// forward+inverse within 1e-10.
func TestRoundTripKnownSignal(t *testing.T) {
	t.Parallel()

	tr, err := New(Haar, Periodic)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	x := []float64{1, 2, 3, 4}

	res, err := tr.Forward(x)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	rec, err := tr.Inverse(res)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	assertApproxSlice(t, rec, x, 1e-10, "haar [1,2,3,4]")
}

// TestShiftInvariance verifies the defining MODWT property: circularly
// shifting the input shifts both coefficient arrays by the same amount.
func TestShiftInvariance(t *testing.T) {
	t.Parallel()

	for _, w := range []*Wavelet{Haar, DB2, DB4} {
		w := w
		t.Run(w.Name(), func(t *testing.T) {
			t.Parallel()

			tr, _ := New(w, Periodic)

			const n = 64

			x := randSignal(n, 4242)

			base, err := tr.Forward(x)
			if err != nil {
				t.Fatalf("Forward: %v", err)
			}

			for _, k := range []int{1, 3, 17, n - 1} {
				shifted, err := tr.Forward(rotate(x, k))
				if err != nil {
					t.Fatalf("Forward(shifted): %v", err)
				}

				assertApproxSlice(t, shifted.Approx(), rotate(base.Approx(), k), 1e-10,
					fmt.Sprintf("approx shift k=%d", k))
				assertApproxSlice(t, shifted.Detail(), rotate(base.Detail(), k), 1e-10,
					fmt.Sprintf("detail shift k=%d", k))
			}
		})
	}
}

// TestLinearity verifies forward(a·x + b·y) == a·forward(x) + b·forward(y).
func TestLinearity(t *testing.T) {
	t.Parallel()

	tr, _ := New(DB4, Periodic)

	const n = 100

	x := randSignal(n, 1)
	y := randSignal(n, 2)

	const (
		a = 2.5
		b = -1.75
	)

	combined := make([]float64, n)
	for i := range combined {
		combined[i] = a*x[i] + b*y[i]
	}

	resX, _ := tr.Forward(x)
	resY, _ := tr.Forward(y)

	resC, err := tr.Forward(combined)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	wantApprox := make([]float64, n)
	wantDetail := make([]float64, n)
	ax, dx := resX.Approx(), resX.Detail()
	ay, dy := resY.Approx(), resY.Detail()

	for i := 0; i < n; i++ {
		wantApprox[i] = a*ax[i] + b*ay[i]
		wantDetail[i] = a*dx[i] + b*dy[i]
	}

	assertApproxSlice(t, resC.Approx(), wantApprox, 1e-10, "linearity approx")
	assertApproxSlice(t, resC.Detail(), wantDetail, 1e-10, "linearity detail")
}

// TestEnergyConservation: under periodic mode the transform is orthonormal,
// so coefficient energy equals signal energy.
func TestEnergyConservation(t *testing.T) {
	t.Parallel()

	tr, _ := New(DB2, Periodic)

	x := randSignal(128, 55)

	res, err := tr.Forward(x)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	ae, de := res.Energy()
	if diff := math.Abs(ae + de - signalEnergy(x)); diff > 1e-9 {
		t.Errorf("energy mismatch: %g", diff)
	}
}

func TestNewRejectsNonPeriodicModes(t *testing.T) {
	t.Parallel()

	for _, mode := range []BoundaryMode{ZeroPadding, Symmetric} {
		if _, err := New(Haar, mode); !errors.Is(err, ErrBoundaryMode) {
			t.Errorf("New(Haar, %v) error = %v, want ErrBoundaryMode", mode, err)
		}
	}

	if _, err := New(nil, Periodic); !errors.Is(err, ErrNilWavelet) {
		t.Errorf("New(nil) error = %v, want ErrNilWavelet", err)
	}
}

func TestForwardValidation(t *testing.T) {
	t.Parallel()

	tr, _ := New(Haar, Periodic)

	tests := []struct {
		name   string
		signal []float64
		want   error
	}{
		{"nil", nil, ErrEmptySignal},
		{"empty", []float64{}, ErrEmptySignal},
		{"NaN", []float64{1, math.NaN(), 3}, ErrInvalidSignal},
		{"+Inf", []float64{math.Inf(1)}, ErrInvalidSignal},
		{"-Inf", []float64{0, math.Inf(-1)}, ErrInvalidSignal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tr.Forward(tt.signal); !errors.Is(err, tt.want) {
				t.Errorf("Forward error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInverseValidation(t *testing.T) {
	t.Parallel()

	tr, _ := New(Haar, Periodic)

	if _, err := tr.Inverse(nil); !errors.Is(err, ErrNilResult) {
		t.Errorf("Inverse(nil) error = %v, want ErrNilResult", err)
	}
}

func TestResultAccessors(t *testing.T) {
	t.Parallel()

	tr, _ := New(Haar, Periodic)
	res, _ := tr.Forward([]float64{1, 2, 3, 4})

	if !res.Valid() {
		t.Error("result of a finite signal should be valid")
	}

	// Defensive copy: mutating the returned slice must not affect the result.
	a := res.Approx()
	a[0] = 1e9

	if res.Approx()[0] == 1e9 {
		t.Error("Approx must return a defensive copy")
	}

	// In-place access invalidates the energy cache; the recomputed values
	// must reflect the mutation.
	_, before := res.Energy()
	d := res.DetailInPlace()
	for i := range d {
		d[i] = 0
	}

	if _, after := res.Energy(); after == before && before != 0 {
		t.Error("Energy cache must be invalidated by DetailInPlace")
	}
}
