package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func newTestPool(t *testing.T, workers int) *WorkerPool {
	t.Helper()
	pool, err := NewWorkerPool(workers)
	if err != nil {
		t.Fatalf("NewWorkerPool(%d) error = %v", workers, err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func TestWorkerPool_Create(t *testing.T) {
	pool := newTestPool(t, 4)

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateInvalidWorkers(t *testing.T) {
	for _, n := range []int{0, -1, -5} {
		pool, err := NewWorkerPool(n)
		if !errors.Is(err, ErrInvalidWorkers) {
			t.Errorf("NewWorkerPool(%d) error = %v, want ErrInvalidWorkers", n, err)
		}
		if pool != nil {
			t.Errorf("NewWorkerPool(%d) returned a pool, want nil", n)
			pool.Close()
		}
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := newTestPool(t, 4)

	var counter atomic.Int64
	numTasks := 100

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() {
			counter.Add(1)
		}
	}

	pool.ExecuteAll(work)

	if counter.Load() != int64(numTasks) {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_ExecuteAll_AllIndices(t *testing.T) {
	pool := newTestPool(t, 4)

	var mu sync.Mutex
	seen := make(map[int]bool)

	work := make([]func(), 10)
	for i := range work {
		i := i // per-iteration copy: go 1.21 loop variable semantics
		work[i] = func() {
			mu.Lock()
			seen[i] = true
			mu.Unlock()
		}
	}

	pool.ExecuteAll(work)

	for i := 0; i < 10; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := newTestPool(t, 4)

	// Should not panic or block
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
	pool.ExecuteAll([]func(){nil, nil})
}

func TestWorkerPool_ExecuteAll_AfterClose(t *testing.T) {
	pool, err := NewWorkerPool(2)
	if err != nil {
		t.Fatal(err)
	}
	pool.Close()

	var executed atomic.Bool
	pool.ExecuteAll([]func(){
		func() { executed.Store(true) },
	})

	if !executed.Load() {
		t.Error("ExecuteAll on a closed pool should run work inline")
	}
}

// =============================================================================
// ForEachRange Tests
// =============================================================================

func TestWorkerPool_ForEachRange_DisjointWrites(t *testing.T) {
	for _, workers := range []int{1, 2, 8, 17} {
		pool := newTestPool(t, workers)

		const n = 1000
		hits := make([]int32, n)
		pool.ForEachRange(n, workers*4, func(r Range) {
			for i := r.Start; i < r.End; i++ {
				hits[i]++
			}
		})

		for i, h := range hits {
			if h != 1 {
				t.Fatalf("workers=%d: index %d written %d times, want 1", workers, i, h)
			}
		}
	}
}

func TestWorkerPool_ForEachRange_Zero(t *testing.T) {
	pool := newTestPool(t, 4)

	called := false
	pool.ForEachRange(0, 16, func(Range) { called = true })
	if called {
		t.Error("fn called for empty range")
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool, err := NewWorkerPool(4)
	if err != nil {
		t.Fatal(err)
	}

	// Multiple closes should not panic
	pool.Close()
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after close")
	}
}

// =============================================================================
// Concurrency Tests
// =============================================================================

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := newTestPool(t, 4)

	var counter atomic.Int64
	numGoroutines := 10
	numTasksPerGoroutine := 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for g := 0; g < numGoroutines; g++ {
		go func() {
			defer wg.Done()

			work := make([]func(), numTasksPerGoroutine)
			for i := range work {
				work[i] = func() {
					counter.Add(1)
				}
			}

			pool.ExecuteAll(work)
		}()
	}

	wg.Wait()

	expected := int64(numGoroutines * numTasksPerGoroutine)
	if counter.Load() != expected {
		t.Errorf("counter = %d, want %d", counter.Load(), expected)
	}
}

func TestWorkerPool_WorkStealing(t *testing.T) {
	pool := newTestPool(t, 4)

	var fastCount, slowCount atomic.Int64

	work := make([]func(), 100)
	for i := range work {
		if i%10 == 0 {
			work[i] = func() {
				time.Sleep(10 * time.Millisecond)
				slowCount.Add(1)
			}
		} else {
			work[i] = func() {
				fastCount.Add(1)
			}
		}
	}

	start := time.Now()
	pool.ExecuteAll(work)
	elapsed := time.Since(start)

	if slowCount.Load() != 10 {
		t.Errorf("slowCount = %d, want 10", slowCount.Load())
	}
	if fastCount.Load() != 90 {
		t.Errorf("fastCount = %d, want 90", fastCount.Load())
	}
	t.Logf("Elapsed time: %v", elapsed)
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	runtime.GC()
	time.Sleep(50 * time.Millisecond)
	baseline := runtime.NumGoroutine()

	for i := 0; i < 5; i++ {
		pool, err := NewWorkerPool(4)
		if err != nil {
			t.Fatal(err)
		}

		work := make([]func(), 100)
		for j := range work {
			work[j] = func() {}
		}
		pool.ExecuteAll(work)

		pool.Close()
	}

	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	final := runtime.NumGoroutine()

	// Allow for some variance (test framework goroutines, etc.)
	if final > baseline+2 {
		t.Errorf("goroutine count: baseline=%d, final=%d (leak detected)", baseline, final)
	}
}
