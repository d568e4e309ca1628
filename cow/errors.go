package cow

import "errors"

// Errors carried by the panics of range-based combinators.
//
// Recover and match with [errors.Is]:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, cow.ErrOutOfBounds) {
//	        // ...
//	    }
//	}()
var (
	// ErrOutOfBounds is wrapped by the panic raised when a selected range
	// does not fit inside the content.
	ErrOutOfBounds = errors.New("cow: range out of bounds")

	// ErrCharBoundary is wrapped by the panic raised when a string is cut at
	// a byte offset inside a multi-byte UTF-8 sequence.
	ErrCharBoundary = errors.New("cow: byte index is not a char boundary")
)
