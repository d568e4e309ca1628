// Package cow provides copy-on-write adapters for slices and strings.
//
// # Overview
//
// An adapter holds its content in one of two states:
//
//   - Borrowed: a view into data owned by somebody else. Creating or
//     narrowing a Borrowed view never allocates.
//   - Owned: an allocation the adapter holds on its own. Nobody else is
//     expected to read or write it.
//
// Combinators transform the content while copying as little as possible:
//
//	s := cow.BorrowString("  foo bar  ").Trimmed()   // Borrowed "foo bar", no copy
//	o := cow.OwnString("hello").Trimmed()            // same Owned allocation, no copy
//	p := cow.OwnString("  hello  ").Trimmed()        // new Owned "hello"
//
// # Ownership rules
//
// A view transform applied to a Borrowed adapter stays Borrowed. Applied to
// an Owned adapter, the result keeps the original allocation only when the
// view is the whole owned value (same backing storage, same length);
// otherwise the view is cloned into a fresh allocation so that the result
// never aliases part of the receiver.
//
// The *Ref variants ([Slice.MapBorrowedRef], [String.MapCowRef], ...) never
// hand the receiver's allocation out: an Owned receiver always yields a
// fresh copy, so the receiver may keep being mutated afterwards.
//
// # Equality
//
// Two adapters are equal when their contents are equal, whatever their
// state. Use [String.Equal] and [Equal].
//
// # Bounds
//
// [Slice.Sliced] and [String.Sliced] panic when the selected [Range] falls
// outside the content, and [String.Sliced] also panics when a bound is not
// on a UTF-8 character start. The panic value is an error wrapping
// [ErrOutOfBounds] or [ErrCharBoundary]. Both are programmer errors and are
// never recovered by this package.
//
// # Concurrency
//
// Adapters are plain values. Reading the same adapter from several
// goroutines is safe; the data behind a Borrowed adapter must not be
// written while the adapter is in use.
package cow
