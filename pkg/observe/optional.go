package observe

// Optional is a value that may be absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the held value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// OptionalPolicy lifts inner to Optional values:
//
//	present -> present  suppress iff inner suppresses
//	present -> absent   notify
//	absent  -> present  notify
//	absent  -> absent   suppress
func OptionalPolicy[T any](inner Policy[T]) Policy[Optional[T]] {
	return func(next, prev Optional[T]) bool {
		switch {
		case prev.present && next.present:
			return inner.suppress(next.value, prev.value)
		case !prev.present && !next.present:
			return true
		default:
			return false
		}
	}
}

// NewOptional creates a Value over Optional[T] using OptionalPolicy(inner).
func NewOptional[T any](initial Optional[T], inner Policy[T], opts ...Option) *Value[Optional[T]] {
	return NewWithPolicy(initial, OptionalPolicy(inner), opts...)
}

// NewOptionalComparable creates an optional Value with value equality.
func NewOptionalComparable[T comparable](initial Optional[T], opts ...Option) *Value[Optional[T]] {
	return NewOptional(initial, Equal[T](), opts...)
}
