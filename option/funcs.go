package option

import "github.com/hasbyte1/go-ext-utils/arr"

// This file contains the operations that change the wrapped type.
// Methods cannot introduce type parameters, so these are package-level
// functions:
//
//	n, err := option.TryMap(option.Some("42"), strconv.Atoi)

// Map applies fn to the value of o.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

// AndThen applies fn to the value of o and flattens the result.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return fn(o.value)
}

// MapOrDefault applies fn to the value of o, or returns the zero U.
func MapOrDefault[T, U any](o Option[T], fn func(T) U) U {
	return Map(o, fn).UnwrapOrDefault()
}

// TryMap applies a fallible fn to the value of o. Errors from fn are
// returned unchanged.
func TryMap[T, U any](o Option[T], fn func(T) (U, error)) (Option[U], error) {
	if !o.ok {
		return None[U](), nil
	}
	v, err := fn(o.value)
	if err != nil {
		return None[U](), err
	}
	return Some(v), nil
}

// TryAndThen applies a fallible fn to the value of o and flattens the result.
func TryAndThen[T, U any](o Option[T], fn func(T) (Option[U], error)) (Option[U], error) {
	if !o.ok {
		return None[U](), nil
	}
	return fn(o.value)
}

// TryMapOr applies fn to the value of o, or returns def when o is empty.
func TryMapOr[T, U any](o Option[T], def U, fn func(T) (U, error)) (U, error) {
	if !o.ok {
		return def, nil
	}
	return fn(o.value)
}

// TryMapOrElse applies fn to the value of o, or returns the result of def
// when o is empty.
func TryMapOrElse[T, U any](o Option[T], def func() (U, error), fn func(T) (U, error)) (U, error) {
	if !o.ok {
		return def()
	}
	return fn(o.value)
}

// TryMapOrDefault applies fn to the value of o, or returns the zero U.
func TryMapOrDefault[T, U any](o Option[T], fn func(T) (U, error)) (U, error) {
	return TryMapOr(o, arr.Zero[U](), fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Bool helpers
// ─────────────────────────────────────────────────────────────────────────────

// Then returns Some(fn()) when cond is true, calling fn only then.
func Then[T any](cond bool, fn func() T) Option[T] {
	if !cond {
		return None[T]()
	}
	return Some(fn())
}

// ThenSome returns Some(v) when cond is true.
func ThenSome[T any](cond bool, v T) Option[T] {
	if !cond {
		return None[T]()
	}
	return Some(v)
}

// ThenAnd returns fn() when cond is true, None otherwise.
func ThenAnd[T any](cond bool, fn func() Option[T]) Option[T] {
	if !cond {
		return None[T]()
	}
	return fn()
}

// TryThen is like [Then] for a fallible fn.
func TryThen[T any](cond bool, fn func() (T, error)) (Option[T], error) {
	if !cond {
		return None[T](), nil
	}
	v, err := fn()
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}

// TryThenAnd is like [ThenAnd] for a fallible fn.
func TryThenAnd[T any](cond bool, fn func() (Option[T], error)) (Option[T], error) {
	if !cond {
		return None[T](), nil
	}
	return fn()
}
