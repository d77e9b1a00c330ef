// Package batch runs index-addressed work on a fixed set of goroutines.
package batch

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed from one queue.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int

	// queue carries work items to the workers.
	queue chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// mu is held for reading by Run and for writing by Close, so Close
	// never stops workers under an unfinished Run.
	mu sync.RWMutex

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queue:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case work := <-p.queue:
			work()
		}
	}
}

// Run calls fn(i) for every i in [0, n) on the workers and waits for all
// calls to return. If the pool is closed, Run calls fn on the calling
// goroutine instead. fn must not call Run on the same pool.
func (p *Pool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.running.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		p.queue <- func() {
			defer wg.Done()
			fn(i)
		}
	}
	wg.Wait()
}

// Close waits for running Run calls and stops the workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
