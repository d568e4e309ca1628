// Package iterx provides helpers over [iter.Seq].
//
// # Transformations
//
// [Map] and [Filter] are lazy: they pull from the source only as far as the
// consumer ranges. [Collect] drains a sequence into a slice.
//
//	upper := iterx.Map(iterx.Filter(words, isLong), strings.ToUpper)
//
// # Logging
//
// [Log] drains a sequence, logs the items through a [logr.Logger] and
// returns a fresh sequence over them. Verbosity is left to the logger, so a
// call made with logger.V(1) is silent unless that level is enabled:
//
//	names = iterx.Log(names, logger.V(1), "after filter")
package iterx
