package option

import (
	"fmt"

	"github.com/hasbyte1/go-ext-utils/arr"
)

// Option holds either a value (Some) or nothing (None).
//
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromPair returns Some(v) when ok is true, for wrapping comma-ok results:
//
//	opt := option.FromPair(m["key"])
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// Unwrap returns the value, panicking with [ErrNone] when o is empty.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(ErrNone)
	}
	return o.value
}

// UnwrapOr returns the value, or def when o is empty.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// UnwrapOrDefault returns the value, or the zero value of T.
func (o Option[T]) UnwrapOrDefault() T { return o.UnwrapOr(arr.Zero[T]()) }

// UnwrapOrElse returns the value, or the result of fn when o is empty.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.ok {
		return fn()
	}
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// String returns "Some(v)" or "None". It implements [fmt.Stringer].
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-preserving combinators
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns o if it holds a value satisfying fn, otherwise None.
func (o Option[T]) Filter(fn func(T) bool) Option[T] {
	if o.ok && fn(o.value) {
		return o
	}
	return None[T]()
}

// OrElse returns o if it holds a value, otherwise the result of fn.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return fn()
}

// Matches reports whether o holds a value satisfying fn.
func (o Option[T]) Matches(fn func(T) bool) bool {
	return o.ok && fn(o.value)
}

// IsNoneOrMatches reports whether o is empty or holds a value satisfying fn.
func (o Option[T]) IsNoneOrMatches(fn func(T) bool) bool {
	return !o.ok || fn(o.value)
}

// TryMatches is like [Option.Matches] for a fallible predicate. None yields
// false without calling fn.
func (o Option[T]) TryMatches(fn func(T) (bool, error)) (bool, error) {
	if !o.ok {
		return false, nil
	}
	return fn(o.value)
}

// TryFilter is like [Option.Filter] for a fallible predicate.
func (o Option[T]) TryFilter(fn func(T) (bool, error)) (Option[T], error) {
	if !o.ok {
		return o, nil
	}
	keep, err := fn(o.value)
	if err != nil {
		return None[T](), err
	}
	if !keep {
		return None[T](), nil
	}
	return o, nil
}

// TryOrElse returns o if it holds a value, otherwise the result of fn.
func (o Option[T]) TryOrElse(fn func() (Option[T], error)) (Option[T], error) {
	if o.ok {
		return o, nil
	}
	return fn()
}

// TryUnwrapOrElse returns the value, or the result of fn when o is empty.
func (o Option[T]) TryUnwrapOrElse(fn func() (T, error)) (T, error) {
	if o.ok {
		return o.value, nil
	}
	return fn()
}

// TryGetOrInsertWith returns a pointer to the value, first storing the
// result of fn when o is empty. On error o is left unchanged.
func (o *Option[T]) TryGetOrInsertWith(fn func() (T, error)) (*T, error) {
	if !o.ok {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		o.value, o.ok = v, true
	}
	return &o.value, nil
}
