package option

import "errors"

// ErrNone is the panic value of [Option.Unwrap] on an empty Option.
var ErrNone = errors.New("option: unwrap of None")
