package dispatch

import (
	"log/slog"
	"time"
)

// Option configures a queue.
type Option func(*options)

type options struct {
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

func defaultOptions() *options {
	return &options{
		logger:          slog.Default(),
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// WithLogger sets the logger used for recovered panics and dropped tasks.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithShutdownTimeout bounds how long Run waits for the backlog to drain
// once its context is cancelled.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}
