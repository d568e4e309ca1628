package pipe

import "github.com/hasbyte1/go-ext-utils/option"

// Thrush passes v to fn and returns its result, so a conversion can be
// written after the value it applies to.
func Thrush[T, R any](v T, fn func(T) R) R {
	return fn(v)
}

// Tap calls fn with a pointer to a copy of v for side effects, then returns
// v unchanged.
func Tap[T any](v T, fn func(*T)) T {
	c := v
	fn(&c)
	return v
}

// When returns Some(v) if fn(v) is true.
func When[T any](v T, fn func(T) bool) option.Option[T] {
	return option.ThenSome(fn(v), v)
}

// WhenRef is like [When] but yields a pointer to the caller's value instead
// of a copy.
func WhenRef[T any](v *T, fn func(*T) bool) option.Option[*T] {
	return option.ThenSome(fn(v), v)
}
