package pool

import "sync"

// Float64Pool reuses float64 scratch slices across transform calls.
// Slices larger than maxRetain are not returned to the pool so that one
// oversized request cannot pin memory indefinitely.
type Float64Pool struct {
	pool      sync.Pool
	maxRetain int
}

// DefaultMaxRetain is the largest slice capacity the pool holds on to.
const DefaultMaxRetain = 1 << 22 // 4M samples, 32 MiB

// NewFloat64Pool creates a slice pool. maxRetain <= 0 selects
// DefaultMaxRetain.
func NewFloat64Pool(maxRetain int) *Float64Pool {
	if maxRetain <= 0 {
		maxRetain = DefaultMaxRetain
	}

	return &Float64Pool{maxRetain: maxRetain}
}

// Get returns a zeroed slice of length n.
func (p *Float64Pool) Get(n int) []float64 {
	if v := p.pool.Get(); v != nil {
		buf := v.([]float64)
		if cap(buf) >= n {
			buf = buf[:n]
			for i := range buf {
				buf[i] = 0
			}

			return buf
		}
	}

	return make([]float64, n)
}

// Put returns a slice to the pool for reuse.
func (p *Float64Pool) Put(buf []float64) {
	if buf == nil || cap(buf) > p.maxRetain {
		return
	}

	p.pool.Put(buf[:0]) //nolint:staticcheck // slice header, not pointer
}
