// Package pipe provides helpers for threading a value through callbacks.
//
// # Conversions
//
// [Thrush] applies a function to a value, so the conversion reads after the
// value it works on:
//
//	n := pipe.Thrush("42", mustAtoi)
//
// # Side effects
//
// [Tap] runs a callback on a copy of the value and hands the value back:
//
//	cfg = pipe.Tap(cfg, func(c *Config) { c.Debug = true })
//
// # Conditional values
//
// [When] and [WhenRef] return the value wrapped in an [option.Option] when a
// predicate holds, and None otherwise:
//
//	port := pipe.When(p, func(p int) bool { return p > 0 }).UnwrapOr(8080)
package pipe
