package dispatch

import "errors"

var (
	// ErrQueueClosed is returned when waiting on a queue that no longer accepts tasks.
	ErrQueueClosed = errors.New("dispatch: queue is closed")

	// ErrShutdownTimeout is returned when the backlog did not drain before the deadline.
	ErrShutdownTimeout = errors.New("dispatch: shutdown timeout exceeded")
)
