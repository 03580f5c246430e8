package observe

import (
	"slices"

	"github.com/dmitrymomot/observing/pkg/dispatch"
	"github.com/dmitrymomot/observing/pkg/logger"
)

// SequenceEvent describes a mutation of a Sequence. New and Old are snapshots
// taken at the time of the mutation; each subscriber receives its own copies.
type SequenceEvent[T any] struct {
	New    []T
	Old    []T
	Change Change[T]
}

func cloneSequenceEvent[T any](e SequenceEvent[T]) SequenceEvent[T] {
	return SequenceEvent[T]{
		New:    slices.Clone(e.New),
		Old:    slices.Clone(e.Old),
		Change: e.Change,
	}
}

// Sequence holds an ordered list and notifies subscribers about how it changed.
//
// Wholesale assignment with Set always notifies. Positional replacement
// notifies only when the policy does not suppress it. Insertions and removals
// always notify, one event per element.
//
// Like Value, Sequence expects a single writer.
type Sequence[T any] struct {
	values []T
	policy Policy[T]
	queue  dispatch.Queue
	engine *engine[SequenceEvent[T]]
}

// NewSequence creates a Sequence holding a copy of initial. policy filters
// Replace; a nil policy never suppresses.
func NewSequence[T any](initial []T, policy Policy[T], opts ...Option) *Sequence[T] {
	o := newOptions(opts)
	return &Sequence[T]{
		values: slices.Clone(initial),
		policy: policy,
		queue:  o.queue,
		engine: newEngine(o.logger, cloneSequenceEvent[T]),
	}
}

// NewComparableSequence creates a Sequence whose Replace skips equal elements.
func NewComparableSequence[T comparable](initial []T, opts ...Option) *Sequence[T] {
	return NewSequence(initial, Equal[T](), opts...)
}

// Values returns a copy of the current elements.
func (s *Sequence[T]) Values() []T {
	return slices.Clone(s.values)
}

// Set replaces the whole sequence and always notifies with a Setting change.
func (s *Sequence[T]) Set(values []T) {
	s.commit(slices.Clone(values), setting[T]())
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	return len(s.values)
}

// IsEmpty reports whether the sequence has no elements.
func (s *Sequence[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// First returns the first element, or false if the sequence is empty.
func (s *Sequence[T]) First() (T, bool) {
	if len(s.values) == 0 {
		var zero T
		return zero, false
	}
	return s.values[0], true
}

// Last returns the last element, or false if the sequence is empty.
func (s *Sequence[T]) Last() (T, bool) {
	if len(s.values) == 0 {
		var zero T
		return zero, false
	}
	return s.values[len(s.values)-1], true
}

// At returns the element at index.
func (s *Sequence[T]) At(index int) (T, error) {
	if err := s.checkIndex("at", index); err != nil {
		var zero T
		return zero, err
	}
	return s.values[index], nil
}

// Replace overwrites the element at index. The element is stored even when
// the policy suppresses the Replacement notification.
func (s *Sequence[T]) Replace(index int, v T) error {
	if err := s.checkIndex("replace", index); err != nil {
		return err
	}

	prev := s.values[index]
	next := slices.Clone(s.values)
	next[index] = v

	if s.policy.suppress(v, prev) {
		s.values = next
		return nil
	}
	s.commit(next, replacement(v, index))
	return nil
}

// Append adds v to the end and notifies with an Insertion change.
func (s *Sequence[T]) Append(v T) {
	s.insert(len(s.values), v)
}

// Extend appends each element in order, one Insertion notification per element.
func (s *Sequence[T]) Extend(values ...T) {
	for _, v := range values {
		s.Append(v)
	}
}

// Insert places v at index, shifting later elements. index may equal Len.
func (s *Sequence[T]) Insert(index int, v T) error {
	if index < 0 || index > len(s.values) {
		return &IndexError{Op: "insert", Index: index, Len: len(s.values), Err: ErrOutOfRange}
	}
	s.insert(index, v)
	return nil
}

// RemoveAt removes and returns the element at index.
func (s *Sequence[T]) RemoveAt(index int) (T, error) {
	if len(s.values) == 0 {
		var zero T
		return zero, &IndexError{Op: "remove", Index: index, Err: ErrEmpty}
	}
	if err := s.checkIndex("remove", index); err != nil {
		var zero T
		return zero, err
	}

	v := s.values[index]
	next := slices.Delete(slices.Clone(s.values), index, index+1)
	s.commit(next, removal(v, index))
	return v, nil
}

// RemoveLast removes and returns the last element.
func (s *Sequence[T]) RemoveLast() (T, error) {
	if len(s.values) == 0 {
		var zero T
		return zero, &IndexError{Op: "remove last", Index: -1, Err: ErrEmpty}
	}
	return s.RemoveAt(len(s.values) - 1)
}

// RemoveAll removes elements one at a time from the end, notifying with a
// Removal change for each.
func (s *Sequence[T]) RemoveAll() {
	for len(s.values) > 0 {
		_, _ = s.RemoveLast()
	}
}

// DefaultQueue returns the queue used by Watch.
func (s *Sequence[T]) DefaultQueue() dispatch.Queue {
	return s.queue
}

// Unwatch removes every subscription owned by owner. Deliveries already
// scheduled are not recalled.
func (s *Sequence[T]) Unwatch(owner any) {
	s.engine.removeWhere(owner)
}

func (s *Sequence[T]) subscribe(sub *subscription[SequenceEvent[T]]) {
	s.engine.append(sub)
}

func (s *Sequence[T]) insert(index int, v T) {
	next := slices.Insert(slices.Clone(s.values), index, v)
	s.commit(next, insertion(v, index))
}

// commit installs next and notifies. Old snapshots stay valid because every
// mutation builds a fresh backing array.
func (s *Sequence[T]) commit(next []T, change Change[T]) {
	prev := s.values
	s.values = next
	s.engine.logger.Debug("observe: sequence changed",
		logger.Component("observe"),
		logger.Change(change.Kind),
		logger.Index(change.Index),
	)
	s.engine.trigger(SequenceEvent[T]{New: next, Old: prev, Change: change})
}

func (s *Sequence[T]) checkIndex(op string, index int) error {
	if index < 0 || index >= len(s.values) {
		return &IndexError{Op: op, Index: index, Len: len(s.values), Err: ErrOutOfRange}
	}
	return nil
}
