package worker

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Func processes one input. It must return even when ctx is done.
type Func[T, R any] func(ctx context.Context, in T) R

// Pool applies a Func to inputs in parallel, preserving input order.
type Pool[T, R any] struct {
	workers int
	fn      Func[T, R]

	// Metrics
	jobsSubmitted atomic.Uint64
	jobsCompleted atomic.Uint64
	totalDuration atomic.Uint64
}

type job[T any] struct {
	index int
	input T
}

type jobResult[R any] struct {
	index  int
	output R
}

// NewPool creates a pool with the specified number of workers.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewPool[T, R any](fn Func[T, R], workers int) *Pool[T, R] {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool[T, R]{workers: workers, fn: fn}
}

// Workers returns the number of goroutines Run starts.
func (p *Pool[T, R]) Workers() int {
	return p.workers
}

// Run consumes in until it is closed or ctx is done and returns the outputs in
// input order. The returned channel is closed once every accepted input has been
// processed. After ctx is done no new input is accepted and pending outputs are dropped.
func (p *Pool[T, R]) Run(ctx context.Context, in <-chan T) <-chan R {
	jobs := make(chan job[T], p.workers*2)
	results := make(chan jobResult[R], p.workers*2)
	out := make(chan R, p.workers)

	go func() {
		defer close(jobs)
		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				p.jobsSubmitted.Add(1)
				jobs <- job[T]{index: i, input: v}
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(p.workers)
	for w := 0; w < p.workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				start := time.Now()
				r := p.fn(ctx, j.input)
				p.jobsCompleted.Add(1)
				p.totalDuration.Add(uint64(time.Since(start).Nanoseconds())) //nolint:gosec // durations are non-negative
				results <- jobResult[R]{index: j.index, output: r}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(out)
		pending := make(map[int]R)
		next := 0
		for r := range results {
			pending[r.index] = r.output
			for {
				v, ok := pending[next]
				if !ok {
					break
				}
				select {
				case out <- v:
				case <-ctx.Done():
					// Keep draining so workers can exit.
					for range results {
					}
					return
				}
				delete(pending, next)
				next++
			}
		}
	}()

	return out
}

// Stats returns current pool statistics.
func (p *Pool[T, R]) Stats() PoolStats {
	return PoolStats{
		Workers:       p.workers,
		JobsSubmitted: p.jobsSubmitted.Load(),
		JobsCompleted: p.jobsCompleted.Load(),
		AvgDuration:   p.averageDuration(),
	}
}

// PoolStats contains pool statistics.
type PoolStats struct {
	Workers       int
	JobsSubmitted uint64
	JobsCompleted uint64
	AvgDuration   time.Duration
}

func (p *Pool[T, R]) averageDuration() time.Duration {
	completed := p.jobsCompleted.Load()
	if completed == 0 {
		return 0
	}
	return time.Duration(p.totalDuration.Load() / completed) //nolint:gosec // nanoseconds within int64 range
}
