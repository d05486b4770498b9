package pool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelForCoversAllIndices(t *testing.T) {
	p := New(4)
	defer p.Close()

	const n = 1000

	counts := make([]int32, n)
	p.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})

	for i, c := range counts {
		require.Equal(t, int32(1), c, "index %d visited %d times", i, c)
	}
}

func TestParallelForEmptyRange(t *testing.T) {
	p := New(2)
	defer p.Close()

	called := false
	p.ParallelFor(0, func(start, end int) { called = true })
	assert.False(t, called)
}

func TestParallelForAfterClose(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close() // idempotent

	var total int64
	p.ParallelFor(100, func(start, end int) {
		atomic.AddInt64(&total, int64(end-start))
	})
	assert.Equal(t, int64(100), total, "closed pool should fall back to sequential")
}

func TestNumWorkersDefault(t *testing.T) {
	p := New(0)
	defer p.Close()
	assert.Positive(t, p.NumWorkers())
}

func TestFloat64PoolReuse(t *testing.T) {
	p := NewFloat64Pool(0)

	buf := p.Get(64)
	require.Len(t, buf, 64)

	for i := range buf {
		buf[i] = float64(i)
	}
	p.Put(buf)

	// Reused slices must come back zeroed.
	buf2 := p.Get(32)
	require.Len(t, buf2, 32)
	for i, v := range buf2 {
		require.Zero(t, v, "index %d not zeroed", i)
	}
}

func TestFloat64PoolOversized(t *testing.T) {
	p := NewFloat64Pool(16)
	// Must not panic; oversized buffers are simply dropped.
	p.Put(make([]float64, 1024))

	buf := p.Get(8)
	assert.Len(t, buf, 8)
}
