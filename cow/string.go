package cow

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// String is a copy-on-write adapter over text.
//
// The zero value is an empty Borrowed string.
type String struct {
	data  string
	owned bool
}

// BorrowString returns a Borrowed adapter viewing s.
func BorrowString(s string) String {
	return String{data: s}
}

// OwnString returns an Owned adapter holding s as its allocation.
func OwnString(s string) String {
	return String{data: s, owned: true}
}

// String returns the content without copying. It implements [fmt.Stringer].
func (s String) String() string { return s.data }

// Len returns the length of the content in bytes.
func (s String) Len() int { return len(s.data) }

// IsEmpty reports whether the content is "".
func (s String) IsEmpty() bool { return len(s.data) == 0 }

// IsOwned reports whether s holds its own allocation.
func (s String) IsOwned() bool { return s.owned }

// IsBorrowed reports whether s is a view of text owned elsewhere.
func (s String) IsBorrowed() bool { return !s.owned }

// Equal reports whether s and other hold the same text, whatever their state.
func (s String) Equal(other String) bool { return s.data == other.data }

// MarshalJSON encodes the content as a JSON string.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.data)
}

// IntoOwned returns an Owned adapter with the same text, cloning a Borrowed s.
func (s String) IntoOwned() String {
	if s.owned {
		return s
	}
	return String{data: strings.Clone(s.data), owned: true}
}

// Append promotes s to Owned and appends text to it.
func (s *String) Append(text string) {
	s.data += text
	s.owned = true
}

// MapBorrowed applies the view transform (a substring of its input).
//
// A Borrowed s stays Borrowed. An Owned s keeps its allocation when view
// returns the whole text, and clones the substring otherwise.
func (s String) MapBorrowed(view func(string) string) String {
	v := view(s.data)
	if !s.owned {
		return String{data: v}
	}
	if sameString(v, s.data) {
		return s
	}
	return String{data: strings.Clone(v), owned: true}
}

// MapBorrowedRef is like [String.MapBorrowed] but an Owned s always yields a
// fresh copy.
func (s String) MapBorrowedRef(view func(string) string) String {
	v := view(s.data)
	if !s.owned {
		return String{data: v}
	}
	return String{data: strings.Clone(v), owned: true}
}

// MapCow applies fn, which builds a new adapter from the text, and flattens
// the result. See [Slice.MapCow] for the ownership rules.
func (s String) MapCow(fn func(string) String) String {
	next := fn(s.data)
	if !s.owned || next.owned {
		return next
	}
	if sameString(next.data, s.data) {
		return s
	}
	return next.IntoOwned()
}

// MapCowRef is like [String.MapCow] but never returns the allocation held by
// an Owned s, nor an Owned result of fn that is a substring of it.
func (s String) MapCowRef(fn func(string) String) String {
	next := fn(s.data)
	if !s.owned {
		return next
	}
	if next.owned && !overlapsString(next.data, s.data) {
		return next
	}
	return String{data: strings.Clone(next.data), owned: true}
}

// Sliced selects the byte range returned by selector, which receives the
// current length in bytes.
//
// Sliced panics with an error wrapping [ErrOutOfBounds] when the range does
// not fit, and with one wrapping [ErrCharBoundary] when either bound falls
// inside a multi-byte character.
func (s String) Sliced(selector func(n int) Range) String {
	r := selector(len(s.data))
	r.mustFit(len(s.data))
	for _, i := range [2]int{r.Start, r.End} {
		if !isCharBoundary(s.data, i) {
			panic(fmt.Errorf("%w: byte %d of %q", ErrCharBoundary, i, s.data))
		}
	}
	return s.MapBorrowed(func(v string) string { return v[r.Start:r.End] })
}

// Trimmed removes leading and trailing white space, as defined by Unicode.
// An Owned s that has nothing to trim is returned without copying.
func (s String) Trimmed() String {
	return s.MapBorrowed(strings.TrimSpace)
}

// TrimmedFunc removes leading and trailing runes satisfying f.
func (s String) TrimmedFunc(f func(rune) bool) String {
	return s.MapBorrowed(func(v string) string { return strings.TrimFunc(v, f) })
}

// TrimPrefix removes prefix if s starts with it.
func (s String) TrimPrefix(prefix string) String {
	return s.MapBorrowed(func(v string) string { return strings.TrimPrefix(v, prefix) })
}

// TrimSuffix removes suffix if s ends with it.
func (s String) TrimSuffix(suffix string) String {
	return s.MapBorrowed(func(v string) string { return strings.TrimSuffix(v, suffix) })
}

func isCharBoundary(s string, i int) bool {
	return i == 0 || i == len(s) || utf8.RuneStart(s[i])
}

func sameString(a, b string) bool {
	return len(a) == len(b) && unsafe.StringData(a) == unsafe.StringData(b)
}

func overlapsString(a, b string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	pa := uintptr(unsafe.Pointer(unsafe.StringData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.StringData(b)))
	return pa < pb+uintptr(len(b)) && pb < pa+uintptr(len(a))
}
