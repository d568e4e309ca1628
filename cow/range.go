package cow

import "fmt"

// Range is a half-open index range [Start, End).
type Range struct {
	Start int
	End   int
}

// Span returns the range [start, end).
func Span(start, end int) Range { return Range{Start: start, End: end} }

// From returns the range [start, n), for use in a selector:
//
//	s.Sliced(func(n int) cow.Range { return cow.From(2, n) })
func From(start, n int) Range { return Range{Start: start, End: n} }

// Len returns End-Start.
func (r Range) Len() int { return r.End - r.Start }

// String returns "[start:end]".
func (r Range) String() string { return fmt.Sprintf("[%d:%d]", r.Start, r.End) }

// mustFit panics with an error wrapping ErrOutOfBounds unless
// 0 <= Start <= End <= n.
func (r Range) mustFit(n int) {
	if r.Start < 0 || r.End < r.Start || r.End > n {
		panic(fmt.Errorf("%w: %s with length %d", ErrOutOfBounds, r, n))
	}
}
