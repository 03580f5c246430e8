package observe

import "github.com/dmitrymomot/observing/pkg/dispatch"

// Observable is implemented by the containers in this package. E is the
// event type delivered to subscribers.
type Observable[E any] interface {
	// DefaultQueue returns the queue Watch delivers on.
	DefaultQueue() dispatch.Queue

	// Unwatch removes every subscription owned by owner.
	Unwatch(owner any)

	subscribe(s *subscription[E])
}

// Watch subscribes owner to c on the container's default queue.
//
// The container holds owner weakly: once nothing else references owner, its
// subscriptions stop receiving events and are reaped on the next
// notification. emitter receives each event together with owner. A nil owner
// or emitter registers nothing.
func Watch[E, O any](c Observable[E], owner *O, emitter func(event E, owner *O)) {
	WatchOn(c, owner, nil, emitter)
}

// WatchOn is Watch with an explicit delivery queue. A nil queue means the
// container's default queue.
//
// The same owner may hold any number of subscriptions at once; each is
// delivered independently.
func WatchOn[E, O any](c Observable[E], owner *O, queue dispatch.Queue, emitter func(event E, owner *O)) {
	if owner == nil || emitter == nil {
		return
	}
	if queue == nil {
		queue = c.DefaultQueue()
	}
	c.subscribe(newSubscription(owner, queue, emitter))
}

// Setter is implemented by containers that accept wholesale assignment.
type Setter[T any] interface {
	Set(T)
}

// Assign is shorthand for c.Set(v).
func Assign[T any](c Setter[T], v T) {
	c.Set(v)
}
