// Package worker analyses many positions in parallel. Each position is still
// searched by a single goroutine; parallelism is across positions only.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/iroh-go/internal/output"
)

// WorkItem is one position queued for analysis.
type WorkItem struct {
	FEN   string
	Index int // Position in the input, used to restore order
}

// ProcessResult pairs an analysis with the index of its WorkItem.
type ProcessResult struct {
	Index    int
	Analysis output.Analysis
}

// ProcessFunc analyses one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of goroutines.
//
// The caller starts the pool, submits items from one goroutine, calls Close
// when done submitting, and drains Results until it is closed.
type Pool struct {
	numWorkers int
	bufferSize int
	process    ProcessFunc
	items      chan WorkItem
	results    chan ProcessResult
	wg         sync.WaitGroup
	stopped    atomic.Bool
	closeOnce  sync.Once
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool returns a pool that runs process on every submitted item.
// Without options it has one worker and a buffer of 10.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues item, blocking while the buffer is full. It reports false,
// without queueing, once the pool is stopped or ctx is done.
func (p *Pool) Submit(ctx context.Context, item WorkItem) bool {
	if p.stopped.Load() || ctx.Err() != nil {
		return false
	}
	select {
	case p.items <- item:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop makes workers discard queued items instead of processing them.
// Items already being processed still produce results.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and closes Results.
// It is safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.items)
		p.wg.Wait()
		close(p.results)
	})
}

// Results is closed after Close once every worker has exited.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
