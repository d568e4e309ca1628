package arr

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func First[T any](items []T, fns ...func(T) bool) (T, bool) {
	if len(fns) == 0 {
		if len(items) == 0 {
			return Zero[T](), false
		}
		return items[0], true
	}
	if i := Search(items, fns[0]); i >= 0 {
		return items[i], true
	}
	return Zero[T](), false
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when items is empty or no element matches.
func Last[T any](items []T, fns ...func(T) bool) (T, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](items[i]) {
			return items[i], true
		}
	}
	return Zero[T](), false
}

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	return Search(items, fn) >= 0
}

// ContainsValue reports whether items contains value.
func ContainsValue[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	return Search(items, func(item T) bool { return item == value })
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reduce reduces items to a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// Unique returns items with duplicates removed, preserving the first
// occurrence.
func Unique[T comparable](items []T) []T {
	seen := NewSet[T]()
	return Filter(items, func(item T, _ int) bool {
		if seen.Contains(item) {
			return false
		}
		seen.Add(item)
		return true
	})
}

// Chunk splits items into consecutive groups of size. The last group may be
// shorter. Each group is a copy.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunks = append(chunks, AndExtend(make([]T, 0, end-i), items[i:end]))
	}
	return chunks
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Zero returns the zero value of T.
//
//	var buf = arr.Zero[bytes.Buffer]()
func Zero[T any]() T {
	var zero T
	return zero
}
