// Package worker provides a small fixed-size pool for dispatching
// independent per-target mapping jobs.
package worker

import "sync"

// Pool runs submitted funcs across a fixed set of goroutines. Jobs must
// not share mutable state with each other; callers coordinate completion
// with their own WaitGroup when a batch must finish before proceeding.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup
	once sync.Once
}

// NewPool starts a pool with the given worker count and queue size.
func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = workers
	}
	p := &Pool{jobs: make(chan func(), queueSize)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

// Submit queues a job, blocking while the queue is full.
func (p *Pool) Submit(job func()) {
	p.jobs <- job
}

// Close drains the queue and waits for the workers to exit.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
}
