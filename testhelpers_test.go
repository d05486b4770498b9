package algomodwt

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files.

func assertApproxSlice(t *testing.T, got, want []float64, tol float64, label string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: len = %d, want %d", label, len(got), len(want))
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("%s: [%d] = %.15g, want %.15g (diff=%g)",
				label, i, got[i], want[i], math.Abs(got[i]-want[i]))
		}
	}
}

func randSignal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	x := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}

	return x
}

// rotate returns x circularly shifted right by k: out[(i+k) mod n] = x[i].
func rotate(x []float64, k int) []float64 {
	n := len(x)
	out := make([]float64, n)

	for i := range x {
		out[((i+k)%n+n)%n] = x[i]
	}

	return out
}

func signalEnergy(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}

	return sum
}
