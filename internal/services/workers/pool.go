package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/ternarybob/arbor"
)

// Task is a unit of work executed by the pool
type Task func(ctx context.Context) error

// Pool runs tasks on a fixed number of workers. Tasks produce independent
// results; the pool itself holds no task state beyond collected errors.
type Pool struct {
	tasks      chan Task
	maxWorkers int
	wg         sync.WaitGroup
	ctx        context.Context
	errors     []error
	errorsMu   sync.Mutex
	logger     arbor.ILogger
}

// NewPool creates a worker pool bound to ctx. Cancelling ctx stops idle
// workers; a running task sees the cancellation through its own ctx
// argument.
func NewPool(ctx context.Context, maxWorkers int, logger arbor.ILogger) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = 8
	}

	return &Pool{
		tasks:      make(chan Task, maxWorkers*2),
		maxWorkers: maxWorkers,
		ctx:        ctx,
		logger:     logger,
	}
}

// Start begins the worker pool
func (p *Pool) Start() {
	p.logger.Debug().
		Int("max_workers", p.maxWorkers).
		Msg("Starting worker pool")

	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Submit adds a task to the pool
func (p *Pool) Submit(task Task) error {
	if err := p.ctx.Err(); err != nil {
		return fmt.Errorf("worker pool is shutting down: %w", err)
	}

	select {
	case p.tasks <- task:
		return nil
	case <-p.ctx.Done():
		return fmt.Errorf("worker pool is shutting down: %w", p.ctx.Err())
	}
}

// Wait closes the task queue and blocks until all submitted tasks finish
func (p *Pool) Wait() {
	close(p.tasks)
	p.wg.Wait()
}

// Errors returns all errors collected from failed tasks
func (p *Pool) Errors() []error {
	p.errorsMu.Lock()
	defer p.errorsMu.Unlock()
	return p.errors
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}

			if err := task(p.ctx); err != nil {
				p.errorsMu.Lock()
				p.errors = append(p.errors, err)
				p.errorsMu.Unlock()

				p.logger.Warn().
					Err(err).
					Int("worker_id", id).
					Msg("Task failed")
			}

		case <-p.ctx.Done():
			return
		}
	}
}
