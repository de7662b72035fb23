package parallel

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrInvalidWorkers is returned by NewWorkerPool for a non-positive worker count.
var ErrInvalidWorkers = errors.New("parallel: worker count must be positive")

// WorkerPool is a fixed-size pool of goroutines for data-parallel maps.
//
// Each worker owns a queue. A worker whose queue is empty steals from the
// others, which keeps workers busy when partitions have uneven cost (trial
// division gets slower as the integers grow).
//
// The number of workers is fixed at construction and never changes.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int

	// workQueues holds per-worker queues.
	workQueues []chan func()

	// done signals workers to stop.
	done chan struct{}

	wg sync.WaitGroup

	running atomic.Bool
}

// NewWorkerPool starts a pool with exactly workers goroutines.
// It returns ErrInvalidWorkers if workers is zero or negative.
func NewWorkerPool(workers int) (*WorkerPool, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}

	return p, nil
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(myQueue)
			return

		case work := <-myQueue:
			work()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drainQueue(myQueue)
				return
			case work := <-myQueue:
				work()
			}
		}
	}
}

func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work round-robin across the workers and blocks
// until every item has returned. Nil items are skipped.
//
// Work handed to a closed pool runs on the calling goroutine, so ExecuteAll
// always returns with every item executed.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			if fn != nil {
				fn()
			}
		}
		return
	}

	var completion sync.WaitGroup
	for i, fn := range work {
		fn := fn // per-iteration copy: go 1.21 loop variable semantics
		if fn == nil {
			continue
		}
		completion.Add(1)
		wrapped := func() {
			defer completion.Done()
			fn()
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}

	completion.Wait()
}

// ForEachRange splits [0, n) with Partition into chunks and calls fn once per
// chunk on the pool. It returns after every chunk has finished.
func (p *WorkerPool) ForEachRange(n, chunks int, fn func(r Range)) {
	ranges := Partition(n, chunks)
	work := make([]func(), len(ranges))
	for i, r := range ranges {
		r := r // per-iteration copy: go 1.21 loop variable semantics
		work[i] = func() { fn(r) }
	}
	p.ExecuteAll(work)
}

// Close stops the workers after draining queued work.
// Close is safe to call multiple times, but must not overlap an ExecuteAll
// call on the same pool.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still dispatches to its workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
