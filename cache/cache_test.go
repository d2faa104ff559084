package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestCache_Basic(t *testing.T) {
	c := New[string, int](10)

	c.Set("con-3", 1)
	if v, ok := c.Get("con-3"); !ok || v != 1 {
		t.Errorf("Get(con-3) = %v, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("con-4"); ok {
		t.Error("Get(con-4) should miss")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Len())
	}
}

func TestCache_Eviction(t *testing.T) {
	c := New[string, int](2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a is now most recent
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should still be cached")
	}
	if s := c.Stats(); s.Evicts != 1 {
		t.Errorf("Evicts = %d; want 1", s.Evicts)
	}
}

func TestCache_Update(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("a", 2)

	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) = %d; want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Len())
	}
}

func TestCache_DeleteClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("a should be deleted")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear() = %d; want 0", c.Len())
	}
}

func TestCache_GetOrLoad(t *testing.T) {
	c := New[string, string](4)
	calls := 0
	load := func() (string, error) {
		calls++
		return "compiled", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("expr", load)
		if err != nil || v != "compiled" {
			t.Fatalf("GetOrLoad() = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times; want 1", calls)
	}

	boom := errors.New("syntax error")
	if _, err := c.GetOrLoad("bad", func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Errorf("GetOrLoad() error = %v; want %v", err, boom)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed loads must not be cached")
	}
}

func TestCache_Stats(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("z")

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Hits/Misses = %d/%d; want 2/1", s.Hits, s.Misses)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("HitRate = %f; want ~0.667", s.HitRate)
	}
	if s.Size != 1 || s.Capacity != 4 {
		t.Errorf("Size/Capacity = %d/%d; want 1/4", s.Size, s.Capacity)
	}
}

func TestCache_ZeroCapacity(t *testing.T) {
	c := New[int, int](0)
	if s := c.Stats(); s.Capacity != 100 {
		t.Errorf("Capacity = %d; want 100", s.Capacity)
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[string, int](50)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := strconv.Itoa(j % 60)
				c.Set(key, j)
				c.Get(key)
				_, _ = c.GetOrLoad(key, func() (int, error) { return i, nil })
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("Len() = %d; exceeds capacity 50", c.Len())
	}
}

func BenchmarkCache_GetOrLoad(b *testing.B) {
	c := New[string, int](128)
	load := func() (int, error) { return 1, nil }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.GetOrLoad(strconv.Itoa(i%64), load)
	}
}
