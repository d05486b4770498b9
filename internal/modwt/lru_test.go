package modwt

import "testing"

func TestLRUBoundAndEviction(t *testing.T) {
	t.Parallel()

	c := NewLRU[int, string](3)

	for i := 0; i < 10; i++ {
		c.Put(i, "v")

		if c.Len() > 3 {
			t.Fatalf("after insert %d: len = %d exceeds capacity", i, c.Len())
		}
	}

	// 7, 8, 9 should remain; 0..6 evicted.
	for i := 0; i < 7; i++ {
		if _, ok := c.Get(i); ok {
			t.Errorf("key %d should have been evicted", i)
		}
	}

	for i := 7; i < 10; i++ {
		if _, ok := c.Get(i); !ok {
			t.Errorf("key %d should be present", i)
		}
	}
}

func TestLRURecencyUpdate(t *testing.T) {
	t.Parallel()

	c := NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = (%d, %v)", v, ok)
	}

	c.Put("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}

	if _, ok := c.Get("a"); !ok {
		t.Error("a should have survived")
	}
}

func TestLRUPutExisting(t *testing.T) {
	t.Parallel()

	c := NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("a", 2)

	if c.Len() != 1 {
		t.Errorf("len = %d, want 1", c.Len())
	}

	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d, want 2", v)
	}
}

func TestLRUClear(t *testing.T) {
	t.Parallel()

	c := NewLRU[int, int](4)
	for i := 0; i < 4; i++ {
		c.Put(i, i)
	}

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("len after Clear = %d, want 0", c.Len())
	}

	c.Put(1, 1)

	if c.Len() != 1 {
		t.Errorf("len after reuse = %d, want 1", c.Len())
	}
}

func TestFilterCacheReuse(t *testing.T) {
	t.Parallel()

	c := NewFilterCache(0)
	base := []float64{0.5, 0.5}

	f1 := c.LevelFilter(base, 1, KindLow, 2, 100)
	f2 := c.LevelFilter(base, 1, KindLow, 2, 100)

	if &f1[0] != &f2[0] {
		t.Error("second lookup should return the cached slice")
	}

	if c.Len() != 1 {
		t.Errorf("cache len = %d, want 1", c.Len())
	}

	// Distinct level, kind, or target length are distinct entries.
	c.LevelFilter(base, 1, KindHigh, 2, 100)
	c.LevelFilter(base, 1, KindLow, 3, 100)
	c.LevelFilter(base, 1, KindLow, 2, 2)

	if c.Len() != 4 {
		t.Errorf("cache len = %d, want 4", c.Len())
	}

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("cache len after Clear = %d, want 0", c.Len())
	}
}

func TestFilterCacheTruncates(t *testing.T) {
	t.Parallel()

	c := NewFilterCache(0)
	base := []float64{1, 2, 3, 4}

	// Level 3 span = 3*4+1 = 13, truncated to n = 5.
	taps := c.LevelFilter(base, 7, KindLow, 3, 5)
	if len(taps) != 5 {
		t.Fatalf("len = %d, want 5", len(taps))
	}

	assertSliceEqual(t, taps, []float64{1, 0, 0, 0, 2}, "truncated level filter")
}
