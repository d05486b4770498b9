package algomodwt

// Config holds the recognized engine options. A Config is copied at engine
// construction and immutable afterwards.
type Config struct {
	// Parallelism is the worker count for batch execution. 1 means no
	// worker pool: pure sequential execution with identical results.
	Parallelism int

	// MemoryPool enables scratch-buffer reuse across calls.
	MemoryPool bool

	// SoALayout enables the structure-of-arrays batch path, processing
	// the same time index across many signals per inner-loop step.
	SoALayout bool

	// CacheBlocking tiles the convolution time loop for cache locality.
	CacheBlocking bool
}

// DefaultConfig returns the default engine configuration: sequential
// execution with buffer reuse and the SoA batch path enabled.
func DefaultConfig() Config {
	return Config{
		Parallelism: 1,
		MemoryPool:  true,
		SoALayout:   true,
	}
}
