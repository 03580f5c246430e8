package observe

import (
	"weak"

	"github.com/google/uuid"

	"github.com/dmitrymomot/observing/pkg/dispatch"
)

// ownerRef is a non-owning handle to a subscriber.
type ownerRef interface {
	// resolve returns the subscriber, or nil once it has been collected.
	resolve() any
}

type weakOwner[O any] struct {
	p weak.Pointer[O]
}

func (w weakOwner[O]) resolve() any {
	if o := w.p.Value(); o != nil {
		return o
	}
	return nil
}

// subscription binds a weakly held subscriber to a queue and an emitter.
// It never holds a strong reference to the subscriber.
type subscription[E any] struct {
	id    uuid.UUID
	owner ownerRef
	queue dispatch.Queue
	emit  func(event E, owner any)
}

func newSubscription[E, O any](owner *O, queue dispatch.Queue, emitter func(E, *O)) *subscription[E] {
	return &subscription[E]{
		id:    uuid.New(),
		owner: weakOwner[O]{p: weak.Make(owner)},
		queue: queue,
		emit: func(event E, owner any) {
			emitter(event, owner.(*O))
		},
	}
}
