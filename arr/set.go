package arr

import (
	"iter"
	"maps"
)

// Container is satisfied by collections that can answer membership queries.
type Container[T any] interface {
	Contains(item T) bool
}

var (
	_ Container[int] = Set[int]{}
	_ Container[int] = Values[int]{}
)

// Set is an unordered collection of distinct values backed by a map.
// A nil Set is empty and read-only.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item and returns s.
func (s Set[T]) Add(item T) Set[T] {
	s[item] = struct{}{}
	return s
}

// Contains reports whether item is in s.
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of items.
func (s Set[T]) Len() int { return len(s) }

// All yields the items in unspecified order.
func (s Set[T]) All() iter.Seq[T] { return maps.Keys(s) }

// Values adapts a slice to [Container] using linear search.
type Values[T comparable] []T

// Contains reports whether item is one of v.
func (v Values[T]) Contains(item T) bool { return ContainsValue(v, item) }
