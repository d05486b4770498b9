package algomodwt

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-modwt/internal/cpu"
	"github.com/cwbudde/algo-modwt/internal/modwt"
	"github.com/cwbudde/algo-modwt/internal/pool"
)

// DefaultMaxKernelCache bounds the number of prepared (wavelet, mode) kernel
// instances a batch engine retains. Insertion past the bound evicts the
// least recently used entry.
const DefaultMaxKernelCache = 16

// defaultTile is the time-axis block length used when cache blocking is
// enabled.
const defaultTile = 256

type kernelKey struct {
	id   uint64
	mode BoundaryMode
}

// preparedKernel holds the scaled analysis filters for one (wavelet, mode)
// pair, ready for repeated batch application.
type preparedKernel struct {
	lo, hi []float64
	mode   BoundaryMode
}

// BatchEngine transforms many independent signals at once. With the SoA
// layout enabled the batch is converted to structure-of-arrays order so the
// convolution inner loop runs along the batch dimension in vector-friendly
// strides; the output is numerically identical to running the scalar kernel
// on each signal independently.
//
// The engine owns its resources: an optional worker pool (Parallelism > 1)
// released by Close, a bounded LRU cache of prepared kernels, and an
// optional scratch-buffer pool.
type BatchEngine struct {
	cfg      Config
	features cpu.Features
	kernels  *modwt.LRU[kernelKey, *preparedKernel]
	workers  *pool.Pool
	buffers  *pool.Float64Pool
	obs      atomic.Pointer[TimingObserver]
	closed   atomic.Bool
}

// NewBatchEngine creates a batch engine from cfg. Parallelism must be >= 1;
// 1 selects pure sequential execution with no pool.
func NewBatchEngine(cfg Config) (*BatchEngine, error) {
	if cfg.Parallelism < 1 {
		return nil, fmt.Errorf("%w: parallelism=%d must be >= 1", ErrConfig, cfg.Parallelism)
	}

	e := &BatchEngine{
		cfg:      cfg,
		features: cpu.DetectFeatures(),
		kernels:  modwt.NewLRU[kernelKey, *preparedKernel](DefaultMaxKernelCache),
	}

	if cfg.Parallelism > 1 {
		e.workers = pool.New(cfg.Parallelism)
	}

	if cfg.MemoryPool {
		e.buffers = pool.NewFloat64Pool(0)
	}

	return e, nil
}

// Config returns the engine configuration.
func (e *BatchEngine) Config() Config { return e.cfg }

// SetTimingObserver registers a fire-and-forget timing sink. Pass nil to
// disable reporting. Safe to call while transforms are in flight; running
// batches keep whichever observer they loaded.
func (e *BatchEngine) SetTimingObserver(obs TimingObserver) {
	if obs == nil {
		e.obs.Store(nil)
		return
	}

	e.obs.Store(&obs)
}

func (e *BatchEngine) observer() TimingObserver {
	if p := e.obs.Load(); p != nil {
		return *p
	}

	return nil
}

// TransformBatch computes the single-level MODWT of every signal in the
// batch. All signals must be non-empty, finite, and of equal length.
func (e *BatchEngine) TransformBatch(signals [][]float64, w *Wavelet, mode BoundaryMode) ([]*Result, error) {
	if e.closed.Load() {
		return nil, ErrClosed
	}

	if w == nil {
		return nil, ErrNilWavelet
	}

	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrBoundaryMode, mode)
	}

	if len(signals) == 0 {
		return nil, fmt.Errorf("%w: empty batch", ErrEmptySignal)
	}

	n := len(signals[0])

	for i, sig := range signals {
		if err := validateSignal(sig); err != nil {
			return nil, fmt.Errorf("signal %d: %w", i, err)
		}

		if len(sig) != n {
			return nil, fmt.Errorf("%w: signal %d has length %d, signal 0 has %d",
				ErrLengthMismatch, i, len(sig), n)
		}
	}

	k := e.kernel(w, mode)
	start := time.Now()

	var results []*Result
	if e.cfg.SoALayout {
		results = e.transformSoA(signals, k, n)
	} else {
		results = e.transformScalar(signals, k, n)
	}

	observe(e.observer(), "batch", n, 1, time.Since(start))

	return results, nil
}

// transformSoA runs the vectorized structure-of-arrays path. Output time
// indices are independent, so the pool splits the time axis. The detected
// vector lane count selects the batch-dimension unroll width.
func (e *BatchEngine) transformSoA(signals [][]float64, k *preparedKernel, n int) []*Result {
	batch := len(signals)
	size := batch * n

	soa := e.scratch(size)
	approxSoA := e.scratch(size)
	detailSoA := e.scratch(size)

	modwt.ToSoAInto(soa, signals)

	tile := 0
	if e.cfg.CacheBlocking {
		tile = defaultTile
	}

	unroll := e.features.VectorLanes()

	if e.workers != nil {
		e.workers.ParallelFor(n, func(from, to int) {
			modwt.ForwardSoARange(approxSoA, detailSoA, soa, batch, n, k.lo, k.hi, k.mode, tile, unroll, from, to)
		})
	} else {
		modwt.ForwardSoA(approxSoA, detailSoA, soa, batch, n, k.lo, k.hi, k.mode, tile, unroll)
	}

	approxRows := modwt.FromSoA(approxSoA, batch, n)
	detailRows := modwt.FromSoA(detailSoA, batch, n)

	e.release(soa)
	e.release(approxSoA)
	e.release(detailSoA)

	results := make([]*Result, batch)
	for b := 0; b < batch; b++ {
		results[b] = newResult(approxRows[b], detailRows[b])
	}

	return results
}

// transformScalar runs the per-signal scalar kernel, parallelized over
// signals when a pool is configured.
func (e *BatchEngine) transformScalar(signals [][]float64, k *preparedKernel, n int) []*Result {
	batch := len(signals)
	results := make([]*Result, batch)

	run := func(from, to int) {
		for b := from; b < to; b++ {
			approx := make([]float64, n)
			detail := make([]float64, n)
			modwt.Forward(approx, detail, signals[b], k.lo, k.hi, k.mode)
			results[b] = newResult(approx, detail)
		}
	}

	if e.workers != nil {
		e.workers.ParallelFor(batch, run)
	} else {
		run(0, batch)
	}

	return results
}

// kernel returns the prepared kernel for (wavelet, mode), consulting the
// bounded LRU cache.
func (e *BatchEngine) kernel(w *Wavelet, mode BoundaryMode) *preparedKernel {
	key := kernelKey{id: w.ID(), mode: mode}
	if k, ok := e.kernels.Get(key); ok {
		return k
	}

	k := &preparedKernel{lo: w.scaledLo, hi: w.scaledHi, mode: mode}
	e.kernels.Put(key, k)

	return k
}

func (e *BatchEngine) scratch(n int) []float64 {
	if e.buffers != nil {
		return e.buffers.Get(n)
	}

	return make([]float64, n)
}

func (e *BatchEngine) release(buf []float64) {
	if e.buffers != nil {
		e.buffers.Put(buf)
	}
}

// CacheSize returns the number of cached prepared kernels.
func (e *BatchEngine) CacheSize() int { return e.kernels.Len() }

// MaxCacheSize returns the cache bound.
func (e *BatchEngine) MaxCacheSize() int { return e.kernels.Capacity() }

// ClearCache empties the prepared-kernel cache.
func (e *BatchEngine) ClearCache() { e.kernels.Clear() }

// Close releases the worker pool. In-flight batches complete before the
// workers exit. Close is idempotent; subsequent TransformBatch calls return
// ErrClosed.
func (e *BatchEngine) Close() error {
	if e.closed.Swap(true) {
		return nil
	}

	if e.workers != nil {
		e.workers.Close()
	}

	return nil
}
