// Package option provides a generic Option type and the helpers that turn
// booleans and possibly-empty values into options.
//
// Fallible variants take callbacks returning (value, error) and hand any
// error back untouched, so callers can still use [errors.Is]:
//
//	port, err := option.TryMap(option.FromPair(os.LookupEnv("PORT")), strconv.Atoi)
//
// Operations that change the wrapped type ([Map], [AndThen], [TryMap], ...)
// are package-level functions because Go methods cannot declare type
// parameters.
package option
