package iterx

import (
	"iter"
	"slices"

	"github.com/go-logr/logr"
)

// Log drains seq, logs the collected items under key and returns a fresh
// sequence over them. It is meant for inspecting a pipeline mid-way:
//
//	names = iterx.Log(names, logger.V(1), "after filter")
//
// The items are logged with logger.Info under the "items" key.
func Log[T any](seq iter.Seq[T], logger logr.Logger, key string) iter.Seq[T] {
	collected := Collect(seq)
	logger.Info(key, "items", collected, "count", len(collected))
	return slices.Values(collected)
}

// Collect gathers the values yielded by seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

// Map yields fn(v) for every v of seq, stopping as soon as the consumer does.
func Map[T, R any](seq iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter yields the values of seq for which pred returns true.
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}
