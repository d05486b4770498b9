package algomodwt

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/cwbudde/algo-modwt/internal/modwt"
)

// ResultListener receives every emitted streaming window, in emission order.
type ResultListener interface {
	OnResult(*Result)
}

// ResultListenerFunc adapts a function to the ResultListener interface.
type ResultListenerFunc func(*Result)

// OnResult calls f.
func (f ResultListenerFunc) OnResult(r *Result) { f(r) }

// StreamingStatistics summarizes a streaming transform's activity.
type StreamingStatistics struct {
	SamplesProcessed int64
	BlocksProcessed  int64
	AvgBlockTime     time.Duration
}

// maxStreamingBytes caps the sample storage a streaming transform may
// request, bounding worst-case memory ahead of time.
const maxStreamingBytes = 100 << 20 // 100 MB

// StreamingTransform processes an unbounded sample sequence through a
// fixed-size sliding window. Whenever bufferSize-overlap new samples
// accumulate beyond the carried overlap (overlap = L-1), one forward
// transform of the full window is emitted to every subscriber; the last
// overlap samples seed the next window so convolution history is continuous
// across windows.
//
// All entry points are safe for concurrent producers: the window state is
// guarded by a mutex, so emission and overlap bookkeeping are atomic and
// every sample is incorporated exactly once. Delivery is synchronous with
// respect to the Process call that fills a window; listeners must not call
// back into the transform.
type StreamingTransform struct {
	wavelet *Wavelet
	mode    BoundaryMode
	lo, hi  []float64

	bufferSize int
	overlap    int

	mu        sync.Mutex
	window    []float64
	fill      int
	carried   bool // current fill is only the overlap carried from the last window
	listeners []ResultListener
	closed    bool

	samples   int64
	blocks    int64
	totalTime time.Duration
}

// NewStreaming creates a streaming transform. bufferSize must be positive,
// at least the wavelet's filter length, and small enough that the window
// plus overlap neither overflows 32-bit arithmetic nor exceeds the 100 MB
// sample-storage ceiling.
func NewStreaming(w *Wavelet, mode BoundaryMode, bufferSize int) (*StreamingTransform, error) {
	if w == nil {
		return nil, ErrNilWavelet
	}

	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrBoundaryMode, mode)
	}

	l := w.FilterLength()

	if bufferSize <= 0 {
		return nil, fmt.Errorf("%w: bufferSize=%d must be positive", ErrBufferSize, bufferSize)
	}

	if bufferSize < l {
		return nil, fmt.Errorf("%w: bufferSize=%d must be at least filterLength=%d",
			ErrBufferSize, bufferSize, l)
	}

	overlap := l - 1

	if bufferSize > math.MaxInt32-overlap {
		return nil, fmt.Errorf("%w: bufferSize=%d plus overlap=%d overflows 32-bit arithmetic",
			ErrBufferSize, bufferSize, overlap)
	}

	if bytes := (bufferSize + overlap) * 8; bytes > maxStreamingBytes {
		return nil, fmt.Errorf("%w: bufferSize=%d requires %d bytes, ceiling is %d",
			ErrBufferSize, bufferSize, bytes, maxStreamingBytes)
	}

	return &StreamingTransform{
		wavelet:    w,
		mode:       mode,
		lo:         w.scaledLo,
		hi:         w.scaledHi,
		bufferSize: bufferSize,
		overlap:    overlap,
		window:     make([]float64, bufferSize),
	}, nil
}

// Subscribe registers a listener. Every listener receives every emitted
// result, in order. Subscribing the same listener twice delivers each result
// twice to it.
func (s *StreamingTransform) Subscribe(l ResultListener) error {
	if l == nil {
		return ErrNilListener
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.listeners = append(s.listeners, l)

	return nil
}

// Process incorporates a batch of samples, emitting a window for every
// bufferSize-overlap new samples accumulated.
func (s *StreamingTransform) Process(samples []float64) error {
	if err := validateSignal(samples); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	for _, x := range samples {
		s.push(x)
	}

	s.samples += int64(len(samples))

	return nil
}

// ProcessSample incorporates a single sample.
func (s *StreamingTransform) ProcessSample(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: sample is %g", ErrInvalidSignal, x)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.push(x)
	s.samples++

	return nil
}

// push appends one sample and emits when the window is full.
// Caller holds s.mu.
func (s *StreamingTransform) push(x float64) {
	s.window[s.fill] = x
	s.fill++
	s.carried = false

	if s.fill == s.bufferSize {
		s.emit()

		// Carry the last overlap samples into the next window.
		copy(s.window[:s.overlap], s.window[s.bufferSize-s.overlap:])
		s.fill = s.overlap
		s.carried = true
	}
}

// Flush forces emission of whatever is currently buffered, zero-padded to a
// full window. A window holding only the carried overlap is not re-emitted.
// After Flush the window is empty; the next window starts without history.
func (s *StreamingTransform) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	if s.fill == 0 || s.carried {
		return nil
	}

	for i := s.fill; i < s.bufferSize; i++ {
		s.window[i] = 0
	}

	s.emit()
	s.fill = 0
	s.carried = false

	return nil
}

// emit transforms the current full window and delivers the result to every
// listener. Caller holds s.mu.
func (s *StreamingTransform) emit() {
	start := time.Now()

	approx := make([]float64, s.bufferSize)
	detail := make([]float64, s.bufferSize)
	modwt.Forward(approx, detail, s.window, s.lo, s.hi, s.mode)

	elapsed := time.Since(start)
	s.blocks++
	s.totalTime += elapsed

	res := newResult(approx, detail)
	for _, l := range s.listeners {
		l.OnResult(res)
	}
}

// Reset clears the window state and statistics. Subscribers stay registered.
func (s *StreamingTransform) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fill = 0
	s.carried = false
	s.samples = 0
	s.blocks = 0
	s.totalTime = 0
}

// Close marks the transform closed. Subsequent Process/Flush calls return
// ErrClosed. Close is idempotent and never blocks.
func (s *StreamingTransform) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.listeners = nil

	return nil
}

// BufferLevel returns the number of samples currently buffered, including a
// carried overlap.
func (s *StreamingTransform) BufferLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fill
}

// BufferSize returns the window size.
func (s *StreamingTransform) BufferSize() int { return s.bufferSize }

// Overlap returns the number of samples carried between windows (L-1).
func (s *StreamingTransform) Overlap() int { return s.overlap }

// Statistics returns a snapshot of the activity counters.
func (s *StreamingTransform) Statistics() StreamingStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := StreamingStatistics{
		SamplesProcessed: s.samples,
		BlocksProcessed:  s.blocks,
	}

	if s.blocks > 0 {
		stats.AvgBlockTime = s.totalTime / time.Duration(s.blocks)
	}

	return stats
}
