package observe

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/observing/pkg/dispatch"
	"github.com/dmitrymomot/observing/pkg/logger"
)

// Event describes an accepted assignment to a Value.
type Event[T any] struct {
	New T
	Old T
}

// Value holds a single value and notifies subscribers when it changes.
//
// Value is not safe for concurrent mutation; it expects a single writer.
// Notifications are delivered asynchronously on each subscription's queue.
// Payloads are passed as is unless a WithClone hook is set.
type Value[T any] struct {
	value  T
	policy Policy[T]
	queue  dispatch.Queue
	engine *engine[Event[T]]
}

// New creates a Value that notifies on every assignment.
func New[T any](initial T, opts ...Option) *Value[T] {
	return NewWithPolicy(initial, nil, opts...)
}

// NewWithPolicy creates a Value that consults policy before notifying.
func NewWithPolicy[T any](initial T, policy Policy[T], opts ...Option) *Value[T] {
	o := newOptions(opts)
	return &Value[T]{
		value:  initial,
		policy: policy,
		queue:  o.queue,
		engine: newEngine(o.logger, eventClone[T](o)),
	}
}

// eventClone adapts the WithClone hook to Value events.
func eventClone[T any](o *options) func(Event[T]) Event[T] {
	if o.clone == nil {
		return nil
	}
	clone, ok := o.clone.(func(T) T)
	if !ok {
		o.logger.Warn("observe: clone hook ignored, element type mismatch",
			logger.Component("observe"),
			slog.String("hook", fmt.Sprintf("%T", o.clone)),
		)
		return nil
	}
	return func(e Event[T]) Event[T] {
		return Event[T]{New: clone(e.New), Old: clone(e.Old)}
	}
}

// NewComparable creates a Value that skips assignments equal to the current value.
func NewComparable[T comparable](initial T, opts ...Option) *Value[T] {
	return NewWithPolicy(initial, Equal[T](), opts...)
}

// NewIdentity creates a Value that skips assignments of the same pointer.
func NewIdentity[E any](initial *E, opts ...Option) *Value[*E] {
	return NewWithPolicy(initial, Same[E](), opts...)
}

// NewDeepEqual creates a Value that skips assignments deeply equal to the
// current value. Combine it with WithClone when subscribers may modify the
// payload.
func NewDeepEqual[T any](initial T, opts ...Option) *Value[T] {
	return NewWithPolicy(initial, DeepEqual[T](), opts...)
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set stores next and, unless the policy suppresses it, notifies subscribers
// with the previous and new values. The value is stored even when suppressed.
func (v *Value[T]) Set(next T) {
	prev := v.value
	v.value = next

	if v.policy.suppress(next, prev) {
		return
	}
	v.engine.trigger(Event[T]{New: next, Old: prev})
}

// DefaultQueue returns the queue used by Watch.
func (v *Value[T]) DefaultQueue() dispatch.Queue {
	return v.queue
}

// Unwatch removes every subscription owned by owner. Deliveries already
// scheduled are not recalled.
func (v *Value[T]) Unwatch(owner any) {
	v.engine.removeWhere(owner)
}

func (v *Value[T]) subscribe(s *subscription[Event[T]]) {
	v.engine.append(s)
}
