package algomodwt

import "time"

// TimingObserver receives fire-and-forget timing measurements from the
// engines, e.g. for an external performance-estimation service. Observers
// must be fast; they are invoked synchronously after a transform completes.
// A panicking observer is ignored; reporting is never required for
// correctness.
type TimingObserver interface {
	ObserveTransform(op string, n, levels int, elapsed time.Duration)
}

// TimingObserverFunc adapts a function to the TimingObserver interface.
type TimingObserverFunc func(op string, n, levels int, elapsed time.Duration)

// ObserveTransform calls f.
func (f TimingObserverFunc) ObserveTransform(op string, n, levels int, elapsed time.Duration) {
	f(op, n, levels, elapsed)
}

// observe reports a measurement to obs, tolerating nil observers and
// swallowing observer panics.
func observe(obs TimingObserver, op string, n, levels int, elapsed time.Duration) {
	if obs == nil {
		return
	}

	defer func() { _ = recover() }()

	obs.ObserveTransform(op, n, levels, elapsed)
}
