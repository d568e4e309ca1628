package cow

import (
	"encoding/json"
	"slices"
	"unsafe"
)

// Slice is a copy-on-write adapter over a []E.
//
// The zero value is an empty Borrowed slice.
//
// The slice returned by [Slice.Value] must be treated as read-only; call
// [Slice.ToMut] to obtain a slice that may be written.
type Slice[E any] struct {
	data  []E
	owned bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// BorrowSlice returns a Borrowed adapter viewing s. Nothing is copied.
func BorrowSlice[E any](s []E) Slice[E] {
	return Slice[E]{data: s}
}

// OwnSlice returns an Owned adapter that takes over s. Nothing is copied;
// the caller hands s over and must not use it afterwards.
func OwnSlice[E any](s []E) Slice[E] {
	return Slice[E]{data: s, owned: true}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Value returns the current content without copying.
func (s Slice[E]) Value() []E { return s.data }

// Len returns the number of elements.
func (s Slice[E]) Len() int { return len(s.data) }

// IsEmpty reports whether the content has no elements.
func (s Slice[E]) IsEmpty() bool { return len(s.data) == 0 }

// IsOwned reports whether s holds its own allocation.
func (s Slice[E]) IsOwned() bool { return s.owned }

// IsBorrowed reports whether s is a view of data owned elsewhere.
func (s Slice[E]) IsBorrowed() bool { return !s.owned }

// MarshalJSON encodes the content as a JSON array, ignoring the state.
func (s Slice[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.data)
}

// Equal reports whether a and b hold equal elements, whatever their state.
func Equal[E comparable](a, b Slice[E]) bool {
	return slices.Equal(a.data, b.data)
}

// ─────────────────────────────────────────────────────────────────────────────
// Ownership
// ─────────────────────────────────────────────────────────────────────────────

// IntoOwned returns an Owned adapter with the same content. A Borrowed s is
// cloned; an Owned s is returned unchanged.
func (s Slice[E]) IntoOwned() Slice[E] {
	if s.owned {
		return s
	}
	return Slice[E]{data: slices.Clone(s.data), owned: true}
}

// ToMut promotes s to Owned (cloning a Borrowed view) and returns the owned
// slice, which may be written freely.
func (s *Slice[E]) ToMut() []E {
	if !s.owned {
		*s = s.IntoOwned()
	}
	return s.data
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// MapBorrowed applies the view transform to the content.
//
// A Borrowed s yields a Borrowed result without allocating. An Owned s keeps
// its allocation when view returns the whole content unchanged, and clones
// the view into a new allocation otherwise.
func (s Slice[E]) MapBorrowed(view func([]E) []E) Slice[E] {
	v := view(s.data)
	if !s.owned {
		return Slice[E]{data: v}
	}
	if sameSlice(v, s.data) {
		return s
	}
	return Slice[E]{data: slices.Clone(v), owned: true}
}

// MapBorrowedRef is like [Slice.MapBorrowed] but an Owned s always yields a
// fresh copy, leaving s the sole holder of its allocation.
func (s Slice[E]) MapBorrowedRef(view func([]E) []E) Slice[E] {
	v := view(s.data)
	if !s.owned {
		return Slice[E]{data: v}
	}
	return Slice[E]{data: slices.Clone(v), owned: true}
}

// MapCow applies fn, which builds a new adapter from the content, and
// flattens the result.
//
// For a Borrowed s the result of fn is returned as is. For an Owned s the
// result is always Owned: an Owned result is returned as is, a Borrowed
// result spanning the whole content keeps the original allocation, and any
// other Borrowed result is cloned.
func (s Slice[E]) MapCow(fn func([]E) Slice[E]) Slice[E] {
	next := fn(s.data)
	if !s.owned || next.owned {
		return next
	}
	if sameSlice(next.data, s.data) {
		return s
	}
	return next.IntoOwned()
}

// MapCowRef is like [Slice.MapCow] but never returns the allocation held by
// an Owned s: an Owned result of fn that shares any part of the receiver's
// backing array is cloned as well.
func (s Slice[E]) MapCowRef(fn func([]E) Slice[E]) Slice[E] {
	next := fn(s.data)
	if !s.owned {
		return next
	}
	if next.owned && !overlaps(next.data, s.data) {
		return next
	}
	return Slice[E]{data: slices.Clone(next.data), owned: true}
}

// Sliced selects a sub-range of the content with [Slice.MapBorrowed]
// semantics. selector receives the current length.
//
// Sliced panics with an error wrapping [ErrOutOfBounds] when the range does
// not fit inside the content.
func (s Slice[E]) Sliced(selector func(n int) Range) Slice[E] {
	r := selector(len(s.data))
	r.mustFit(len(s.data))
	return s.MapBorrowed(func(v []E) []E { return v[r.Start:r.End:r.End] })
}

// sameSlice reports whether a and b are the same view: same backing storage
// and same length.
func sameSlice[E any](a, b []E) bool {
	return len(a) == len(b) && unsafe.SliceData(a) == unsafe.SliceData(b)
}

// overlaps reports whether a shares any element with the backing array of b
// from b's start up to its capacity.
func overlaps[E any](a, b []E) bool {
	var zero E
	size := unsafe.Sizeof(zero)
	if len(a) == 0 || cap(b) == 0 || size == 0 {
		return false
	}
	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return pa < pb+uintptr(cap(b))*size && pb < pa+uintptr(len(a))*size
}
