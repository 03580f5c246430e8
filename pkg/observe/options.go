package observe

import (
	"log/slog"

	"github.com/dmitrymomot/observing/pkg/dispatch"
)

// Option configures a container.
type Option func(*options)

type options struct {
	queue  dispatch.Queue
	logger *slog.Logger
	clone  any
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if o.queue == nil {
		o.queue = dispatch.Main()
	}
	return o
}

// WithQueue sets the default delivery queue used by Watch.
// Without it the container delivers on dispatch.Main().
func WithQueue(q dispatch.Queue) Option {
	return func(o *options) {
		if q != nil {
			o.queue = q
		}
	}
}

// WithLogger sets the logger for subscription bookkeeping.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClone sets the function used to copy a Value's payload for each
// subscriber. Use it for slice, map or pointer-bearing element types so that
// subscribers never share memory with each other or with the stored value.
// The hook applies to a Value[T]; a hook of any other element type is ignored.
// Sequence always copies its snapshots.
func WithClone[T any](clone func(T) T) Option {
	return func(o *options) {
		if clone != nil {
			o.clone = clone
		}
	}
}
