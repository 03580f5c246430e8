// Package observe provides observable containers: a single Value and an
// ordered Sequence that notify a dynamic set of subscribers when they change.
//
// Subscribers are held weakly. A container never keeps a subscriber alive;
// once the subscriber is garbage collected its subscriptions stop receiving
// events and are removed the next time the container notifies. Unwatch
// removes a subscriber's subscriptions immediately.
//
// Each subscription is bound to a dispatch.Queue and its emitter runs there,
// asynchronously. Mutations run synchronously on the caller's goroutine:
// policy evaluation, snapshotting and reaping finish before the call returns.
// Subscriptions on the same serial queue observe a mutation in registration
// order; subscriptions on different queues have no relative order.
//
// # Values
//
// A Value consults a Policy to decide whether an assignment counts as a
// change:
//
//	name := observe.NewComparable("guest", observe.WithQueue(ui))
//	observe.Watch(name, view, func(e observe.Event[string], v *View) {
//	    v.SetTitle(e.New)
//	})
//	name.Set("alice") // notifies
//	name.Set("alice") // suppressed, value still stored
//
// Named constructors cover the common policies: New (always notify),
// NewComparable (==), NewIdentity (same pointer), NewDeepEqual
// (reflect.DeepEqual) and NewOptional for values that may be absent.
//
// # Sequences
//
// A Sequence reports how it changed through Change: Setting for wholesale
// assignment, Insertion, Removal and Replacement for positional edits, each
// with the affected element and index. Set always notifies; Replace notifies
// only when the policy does not suppress it. RemoveAll emits one Removal per
// element, from the end.
//
// # Error Handling
//
// Positional operations return *IndexError, which unwraps to ErrOutOfRange or
// ErrEmpty. A failed operation leaves the sequence unchanged. Delivery has no
// error channel: a panicking emitter is recovered by its queue and does not
// affect other subscriptions.
//
// # Concurrency
//
// Containers are not synchronized and assume a single writer. Events are
// immutable snapshots, so emitters may read them from any goroutine.
package observe
