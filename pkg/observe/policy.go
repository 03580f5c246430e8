package observe

import "reflect"

// Policy reports whether a mutation from prev to next should be suppressed,
// i.e. produce no notification. A nil Policy never suppresses.
type Policy[T any] func(next, prev T) bool

func (p Policy[T]) suppress(next, prev T) bool {
	return p != nil && p(next, prev)
}

// Equal suppresses when next == prev.
// Interface element types holding non-comparable dynamic values panic, as with ==.
func Equal[T comparable]() Policy[T] {
	return func(next, prev T) bool { return next == prev }
}

// EqualFunc suppresses when eq reports the values equal. A nil eq never suppresses.
func EqualFunc[T any](eq func(a, b T) bool) Policy[T] {
	if eq == nil {
		return nil
	}
	return func(next, prev T) bool { return eq(next, prev) }
}

// DeepEqual suppresses when reflect.DeepEqual reports the values equal.
// Useful for slice, map and struct payloads that are not comparable.
func DeepEqual[T any]() Policy[T] {
	return func(next, prev T) bool { return reflect.DeepEqual(next, prev) }
}

// Same suppresses when next and prev point to the same object.
func Same[E any]() Policy[*E] {
	return func(next, prev *E) bool { return next == prev }
}

// AlwaysNotify never suppresses.
func AlwaysNotify[T any]() Policy[T] {
	return func(T, T) bool { return false }
}
