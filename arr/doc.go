// Package arr provides standalone generic helpers for Go slices, maps and
// sets.
//
// # Chaining
//
// The And* helpers mutate their argument and hand it back, so building a
// value reads as a single expression:
//
//	ids := arr.AndSort(arr.AndExtend(arr.AndPush(ids, 42), extra))
//	env := arr.MapAndExtend(map[string]string{"A": "1"}, maps.All(defaults))
//
// [Sorted] is the non-mutating counterpart of [AndSort]: it returns a sorted
// copy and leaves its input untouched.
//
// # Membership
//
// [Container] abstracts "does it contain x" over a [Set] and a plain slice
// ([Values]), so callers can accept either.
//
// # Slice helpers
//
// All slice helpers operate on plain []T values, no wrapper type required:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
package arr
