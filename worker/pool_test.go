package worker

import (
	"context"
	"testing"
	"time"
)

func feed(values ...int) <-chan int {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for _, v := range values {
			ch <- v
		}
	}()
	return ch
}

func TestPool_DefaultWorkers(t *testing.T) {
	pool := NewPool(func(_ context.Context, v int) int { return v }, 0)
	if pool.Workers() <= 0 {
		t.Errorf("Workers() = %d; want > 0", pool.Workers())
	}
}

func TestPool_PreservesOrder(t *testing.T) {
	// Earlier inputs take longer, so completion order is reversed.
	pool := NewPool(func(_ context.Context, v int) int {
		time.Sleep(time.Duration(10-v) * time.Millisecond)
		return v * v
	}, 4)

	var got []int
	for v := range pool.Run(context.Background(), feed(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)) {
		got = append(got, v)
	}

	if len(got) != 10 {
		t.Fatalf("got %d results; want 10", len(got))
	}
	for i, v := range got {
		if v != i*i {
			t.Errorf("result[%d] = %d; want %d", i, v, i*i)
		}
	}

	stats := pool.Stats()
	if stats.JobsSubmitted != 10 || stats.JobsCompleted != 10 {
		t.Errorf("Stats() = %+v; want 10 submitted and completed", stats)
	}
	if stats.AvgDuration <= 0 {
		t.Errorf("AvgDuration = %v; want > 0", stats.AvgDuration)
	}
}

func TestPool_EmptyInput(t *testing.T) {
	pool := NewPool(func(_ context.Context, v int) int { return v }, 2)
	for v := range pool.Run(context.Background(), feed()) {
		t.Errorf("unexpected result %d", v)
	}
}

func TestPool_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan int)
	pool := NewPool(func(ctx context.Context, v int) int { return v }, 2)
	out := pool.Run(ctx, in)

	in <- 1
	if v := <-out; v != 1 {
		t.Fatalf("first result = %d; want 1", v)
	}
	cancel()

	done := make(chan struct{})
	go func() {
		for range out {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not close its output after cancel")
	}
}
