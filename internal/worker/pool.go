// Package worker provides the concurrency plumbing shared by the CLI
// and the pipeline: a bounded worker pool for batch analysis, a
// per-host rate limiter for remote inputs and a debouncer for rapid
// successive submissions.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a job.
type Result interface {
	Err() error
}

// Pool runs jobs across a fixed number of workers. A pool is used for
// one wave of jobs: Submit everything, then Wait once.
type Pool struct {
	workers   int
	jobs      chan Job
	results   chan Result
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the given number of workers, minimum one.
func NewPool(workers int) *Pool {
	return NewSizedPool(workers, 0)
}

// NewSizedPool creates a pool whose queue holds the whole wave. Submit
// blocks once the queue is full, and workers block once the result
// buffer is full, so a wave larger than both buffers must size the
// pool to the wave to keep Submit-everything-then-Wait deadlock-free.
func NewSizedPool(workers, queue int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queue < workers*2 {
		queue = workers * 2
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, queue),
		results: make(chan Result, queue),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job. After Shutdown it returns without queueing.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobs <- job:
	}
}

// Wait closes the queue, waits for the workers to drain it and returns
// every result. Call exactly once, after the last Submit.
func (p *Pool) Wait() []Result {
	close(p.jobs)
	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []Result
	for result := range p.results {
		results = append(results, result)
	}
	return results
}

// Shutdown stops the pool immediately, discarding queued jobs.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
