package dispatch

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/observing/pkg/logger"
)

// Concurrent runs every task on its own goroutine. Tasks have no relative
// ordering.
type Concurrent struct {
	id     uuid.UUID
	name   string
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	group  errgroup.Group
}

// NewConcurrent creates a concurrent queue.
func NewConcurrent(name string, opts ...Option) *Concurrent {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Concurrent{
		id:     uuid.New(),
		name:   name,
		logger: o.logger,
	}
}

// ID returns the queue's unique identifier.
func (q *Concurrent) ID() uuid.UUID {
	return q.id
}

// Name returns the queue label.
func (q *Concurrent) Name() string {
	return q.name
}

// Async starts task on a new goroutine. Tasks submitted after Close are dropped.
func (q *Concurrent) Async(task func()) {
	if task == nil {
		return
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.logger.Debug("dispatch: task dropped, queue closed",
			logger.Component("dispatch"),
			logger.Queue(q.name),
			logger.QueueID(q.id.String()),
		)
		return
	}

	q.group.Go(func() error {
		runTask(q.logger, q.name, q.id, task)
		return nil
	})
}

// Close stops accepting tasks and waits for running ones to finish.
func (q *Concurrent) Close() error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	return q.group.Wait()
}
