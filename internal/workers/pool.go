// Package workers runs queued tasks on a fixed number of goroutines.
package workers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// DefaultSize is the worker count used when a non-positive size is given.
const DefaultSize = 3

var ErrPoolStopped = errors.New("worker pool is stopped")

// Task is one unit of work. The context is the pool's run context.
type Task func(ctx context.Context)

// Pool is a bounded worker pool. Submit blocks while every worker is busy and
// the backlog is full, which applies back-pressure to the producer.
type Pool struct {
	size  int
	tasks chan Task

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
	logger  *slog.Logger
}

func NewPool(size, backlog int, logger *slog.Logger) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	if backlog < 0 {
		backlog = 0
	}
	return &Pool{
		size:   size,
		tasks:  make(chan Task, backlog),
		logger: logger.With("component", "WorkerPool"),
	}
}

func (p *Pool) Size() int { return p.size }

// Start launches the workers. They exit after Stop once the backlog drains.
func (p *Pool) Start(ctx context.Context) {
	for i := range p.size {
		p.wg.Add(1)
		go p.work(ctx, i)
	}
	p.logger.InfoContext(ctx, "worker pool started", "workers", p.size)
}

func (p *Pool) work(ctx context.Context, id int) {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(ctx, id, task)
	}
}

func (p *Pool) run(ctx context.Context, id int, task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.ErrorContext(ctx, "task panicked", "worker", id, "panic", r)
		}
	}()
	task(ctx)
}

// Submit hands task to a worker. It returns ctx.Err() if ctx ends first and
// ErrPoolStopped after Stop.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop refuses new tasks and waits for queued and running ones to finish.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
	p.logger.Info("worker pool stopped")
}
