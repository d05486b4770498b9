package algomodwt

import (
	"fmt"

	"github.com/cwbudde/algo-modwt/internal/modwt"
	"github.com/cwbudde/algo-modwt/internal/pool"
)

// WorkerPool is a fixed-size pool of persistent workers that can be shared
// between engines.
type WorkerPool = pool.Pool

// NewWorkerPool creates a worker pool with n workers. n <= 0 selects
// GOMAXPROCS.
func NewWorkerPool(n int) *WorkerPool { return pool.New(n) }

// ParallelMultiLevelTransform runs the cascade decomposition with its
// per-level convolution fanned out over a worker pool. Cascade levels are
// serially dependent, so parallelism is across the time axis within one
// level and across signals in DecomposeBatch. Every output sample is
// computed by the same arithmetic as the sequential engine, so results are
// bit-compatible with MultiLevelTransform.
type ParallelMultiLevelTransform struct {
	seq     *MultiLevelTransform
	workers *pool.Pool
	owned   bool
}

// NewParallelMultiLevel creates a parallel cascade driver owning its worker
// pool. workers <= 0 selects GOMAXPROCS.
func NewParallelMultiLevel(w *Wavelet, mode BoundaryMode, workers int) (*ParallelMultiLevelTransform, error) {
	seq, err := NewMultiLevel(w, mode)
	if err != nil {
		return nil, err
	}

	return &ParallelMultiLevelTransform{
		seq:     seq,
		workers: pool.New(workers),
		owned:   true,
	}, nil
}

// NewParallelMultiLevelWith creates a parallel cascade driver on a
// caller-supplied pool. The caller keeps ownership; Close does not release
// the pool, so one pool can back several drivers.
func NewParallelMultiLevelWith(w *Wavelet, mode BoundaryMode, workers *WorkerPool) (*ParallelMultiLevelTransform, error) {
	if workers == nil {
		return nil, fmt.Errorf("%w: nil worker pool", ErrConfig)
	}

	seq, err := NewMultiLevel(w, mode)
	if err != nil {
		return nil, err
	}

	return &ParallelMultiLevelTransform{
		seq:     seq,
		workers: workers,
	}, nil
}

// MaxLevels reports the same bound as the sequential engine.
func (t *ParallelMultiLevelTransform) MaxLevels(n int) int { return t.seq.MaxLevels(n) }

// Decompose computes the multi-level MODWT with the same validation and the
// same numeric output as MultiLevelTransform.Decompose.
func (t *ParallelMultiLevelTransform) Decompose(signal []float64, levels int) (*MultiLevelResult, error) {
	mode := t.seq.mode

	return t.seq.decomposeUsing(signal, levels, func(approx, detail, x, lo, hi []float64) {
		t.workers.ParallelFor(len(x), func(from, to int) {
			modwt.ForwardRange(approx, detail, x, lo, hi, mode, from, to)
		})
	})
}

// DecomposeBatch decomposes independent signals concurrently, one sequential
// cascade per worker task. Signals may have differing lengths; each is
// validated against its own level bound.
func (t *ParallelMultiLevelTransform) DecomposeBatch(signals [][]float64, levels int) ([]*MultiLevelResult, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrEmptySignal)
	}

	results := make([]*MultiLevelResult, len(signals))
	errs := make([]error, len(signals))

	t.workers.ParallelFor(len(signals), func(from, to int) {
		for i := from; i < to; i++ {
			results[i], errs[i] = t.seq.Decompose(signals[i], levels)
		}
	})

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", i, err)
		}
	}

	return results, nil
}

// Reconstruct delegates to the sequential engine.
func (t *ParallelMultiLevelTransform) Reconstruct(res *MultiLevelResult) ([]float64, error) {
	return t.seq.Reconstruct(res)
}

// ReconstructFromLevel delegates to the sequential engine.
func (t *ParallelMultiLevelTransform) ReconstructFromLevel(res *MultiLevelResult, level int) ([]float64, error) {
	return t.seq.ReconstructFromLevel(res, level)
}

// ReconstructLevels delegates to the sequential engine.
func (t *ParallelMultiLevelTransform) ReconstructLevels(res *MultiLevelResult, lo, hi int) ([]float64, error) {
	return t.seq.ReconstructLevels(res, lo, hi)
}

// Close releases the worker pool if the driver owns it. In-flight
// decompositions complete before the workers exit; Close is idempotent.
// Caller-supplied pools are left running.
func (t *ParallelMultiLevelTransform) Close() error {
	if t.owned {
		t.workers.Close()
	}

	return nil
}
