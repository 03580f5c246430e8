package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/observing/pkg/logger"
)

// Serial runs tasks one at a time, in submission order, on a single goroutine.
// The backlog is unbounded, so Async never blocks.
type Serial struct {
	id              uuid.UUID
	name            string
	logger          *slog.Logger
	shutdownTimeout time.Duration

	mu     sync.Mutex
	cond   *sync.Cond
	tasks  []func()
	closed bool
	done   chan struct{}
}

// NewSerial creates a serial queue and starts its worker goroutine.
func NewSerial(name string, opts ...Option) *Serial {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	q := &Serial{
		id:              uuid.New(),
		name:            name,
		logger:          o.logger,
		shutdownTimeout: o.shutdownTimeout,
		done:            make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)

	go q.run()

	return q
}

// ID returns the queue's unique identifier.
func (q *Serial) ID() uuid.UUID {
	return q.id
}

// Name returns the queue label.
func (q *Serial) Name() string {
	return q.name
}

// Async appends task to the backlog. Tasks submitted after Close are dropped.
func (q *Serial) Async(task func()) {
	if task == nil {
		return
	}
	if !q.enqueue(task) {
		q.logger.Debug("dispatch: task dropped, queue closed",
			logger.Component("dispatch"),
			logger.Queue(q.name),
			logger.QueueID(q.id.String()),
		)
	}
}

// Flush blocks until every task submitted before the call has run,
// or ctx is done.
func (q *Serial) Flush(ctx context.Context) error {
	done := make(chan struct{})
	if !q.enqueue(func() { close(done) }) {
		return ErrQueueClosed
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		q.logger.DebugContext(ctx, "dispatch: flush abandoned",
			logger.Component("dispatch"),
			logger.Queue(q.name),
			logger.QueueID(q.id.String()),
			logger.Error(ctx.Err()),
		)
		return ctx.Err()
	}
}

// Len returns the number of tasks waiting to run.
func (q *Serial) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Shutdown stops accepting tasks and waits until the backlog drains.
// If ctx is done first, ErrShutdownTimeout is returned and the worker keeps
// draining in the background.
func (q *Serial) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		q.cond.Broadcast()
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		q.logger.WarnContext(ctx, "dispatch: shutdown timed out, backlog still draining",
			logger.Component("dispatch"),
			logger.Queue(q.name),
			logger.QueueID(q.id.String()),
			slog.Int("pending", q.Len()),
		)
		return ErrShutdownTimeout
	}
}

// Close is Shutdown without a deadline. It is safe to call multiple times.
func (q *Serial) Close() error {
	return q.Shutdown(context.Background())
}

// Run returns a function suitable for errgroup: it blocks until ctx is done
// and then shuts the queue down within the configured shutdown timeout.
func (q *Serial) Run(ctx context.Context) func() error {
	return func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), q.shutdownTimeout)
		defer cancel()

		return q.Shutdown(shutdownCtx)
	}
}

func (q *Serial) enqueue(task func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.tasks = append(q.tasks, task)
	q.cond.Signal()
	return true
}

func (q *Serial) run() {
	defer close(q.done)

	for {
		q.mu.Lock()
		for len(q.tasks) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return
		}
		task := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		runTask(q.logger, q.name, q.id, task)
	}
}
