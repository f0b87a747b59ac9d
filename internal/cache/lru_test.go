package cache

import (
	"sync"
	"testing"
)

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU[string, int](2)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.Set("a", 1)
	c.Set("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v", v, ok)
	}

	// a was used last, so b is evicted
	c.Set("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Fatal("expected b to be evicted")
	}
	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}

	c.Set("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Fatalf("Get(a) after overwrite = %d", v)
	}
}

func TestLRU_MinimumSize(t *testing.T) {
	c := NewLRU[int, string](0)
	c.Set(1, "x")
	c.Set(2, "y")
	if c.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", c.Size())
	}
}

func TestLRU_GetOrCompute(t *testing.T) {
	c := NewLRU[string, int](4)
	calls := 0
	compute := func() int { calls++; return 42 }

	for i := 0; i < 3; i++ {
		if v := c.GetOrCompute("k", compute); v != 42 {
			t.Fatalf("GetOrCompute = %d", v)
		}
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1", calls)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[int, int](8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				c.Set(i%16, g)
				c.Get(i % 16)
			}
		}(g)
	}
	wg.Wait()
	if c.Size() > 8 {
		t.Fatalf("Size() = %d exceeds bound", c.Size())
	}
}
