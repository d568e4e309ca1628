package arr

import (
	"iter"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// MapAndExtend inserts every pair yielded by seq into m and returns m.
// Later pairs overwrite earlier ones. A nil m is allocated first.
func MapAndExtend[M ~map[K]V, K comparable, V any](m M, seq iter.Seq2[K, V]) M {
	if m == nil {
		m = make(M)
	}
	maps.Insert(m, seq)
	return m
}

// Keys returns the keys of m in unspecified order.
func Keys[M ~map[K]V, K comparable, V any](m M) []K {
	return slices.AppendSeq(make([]K, 0, len(m)), maps.Keys(m))
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K constraints.Ordered, V any](m M) []K {
	return AndSort(Keys(m))
}
