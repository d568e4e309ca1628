package arr

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// AndPush appends item to items and returns the result.
func AndPush[S ~[]T, T any](items S, item T) S {
	return append(items, item)
}

// AndExtend appends values to items and returns the result.
func AndExtend[S ~[]T, T any](items S, values []T) S {
	return append(items, values...)
}

// AndExtendSeq appends every value yielded by seq and returns the result.
func AndExtendSeq[S ~[]T, T any](items S, seq iter.Seq[T]) S {
	return slices.AppendSeq(items, seq)
}

// AndSort sorts items in place and returns it.
func AndSort[S ~[]T, T constraints.Ordered](items S) S {
	slices.Sort(items)
	return items
}

// AndSortFunc sorts items in place by cmp (stable) and returns it.
func AndSortFunc[S ~[]T, T any](items S, cmp func(a, b T) int) S {
	slices.SortStableFunc(items, cmp)
	return items
}

// Sorted returns a sorted copy of items; items itself is left untouched.
func Sorted[S ~[]T, T constraints.Ordered](items S) S {
	return AndSort(slices.Clone(items))
}

// SortedFunc returns a copy of items sorted by cmp (stable).
func SortedFunc[S ~[]T, T any](items S, cmp func(a, b T) int) S {
	return AndSortFunc(slices.Clone(items), cmp)
}
