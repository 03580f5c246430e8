package observe

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/observing/pkg/logger"
)

// engine owns the subscription list of one container and delivers events.
// It is not synchronized; the owning container is single-writer.
type engine[E any] struct {
	subs   []*subscription[E]
	logger *slog.Logger

	// clone gives each subscriber its own copy of an event. Nil means events
	// are plain values and can be shared.
	clone func(E) E
}

func newEngine[E any](log *slog.Logger, clone func(E) E) *engine[E] {
	return &engine[E]{logger: log, clone: clone}
}

func (e *engine[E]) append(s *subscription[E]) {
	e.subs = append(e.subs, s)
}

// removeWhere drops every subscription owned by owner, and every subscription
// whose owner has expired.
func (e *engine[E]) removeWhere(owner any) {
	e.subs = slices.DeleteFunc(e.subs, func(s *subscription[E]) bool {
		o := s.owner.resolve()
		return o == nil || o == owner
	})
}

func (e *engine[E]) len() int {
	return len(e.subs)
}

type delivery[E any] struct {
	sub   *subscription[E]
	owner any
}

// trigger walks the list backwards, reaping expired subscriptions in place,
// then schedules the live ones in registration order. Each subscriber is
// resolved once, at schedule time, and the strong reference lives only in
// the scheduled task.
func (e *engine[E]) trigger(event E) {
	if len(e.subs) == 0 {
		return
	}

	live := make([]delivery[E], 0, len(e.subs))
	for i := len(e.subs) - 1; i >= 0; i-- {
		s := e.subs[i]
		owner := s.owner.resolve()
		if owner == nil {
			e.subs = slices.Delete(e.subs, i, i+1)
			e.logger.Debug("observe: reaped expired subscription",
				logger.Component("observe"),
				logger.SubscriptionID(s.id.String()),
				logger.Queue(s.queue.Name()),
			)
			continue
		}
		live = append(live, delivery[E]{sub: s, owner: owner})
	}

	e.logger.Debug("observe: notifying subscribers",
		logger.Component("observe"),
		logger.Subscribers(len(live)),
	)

	for i := len(live) - 1; i >= 0; i-- {
		d := live[i]
		ev := event
		if e.clone != nil {
			ev = e.clone(event)
		}
		d.sub.queue.Async(func() {
			d.sub.emit(ev, d.owner)
		})
	}
}
