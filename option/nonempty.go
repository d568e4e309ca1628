package option

// NonEmptyString returns Some(s) unless s is "".
func NonEmptyString[S ~string](s S) Option[S] {
	return ThenSome(len(s) > 0, s)
}

// NonEmptySlice returns Some(s) unless s has no elements.
func NonEmptySlice[S ~[]E, E any](s S) Option[S] {
	return ThenSome(len(s) > 0, s)
}

// NonEmptyMap returns Some(m) unless m has no entries.
func NonEmptyMap[M ~map[K]V, K comparable, V any](m M) Option[M] {
	return ThenSome(len(m) > 0, m)
}

// NonEmptyStringOption narrows o to None when it holds "".
func NonEmptyStringOption[S ~string](o Option[S]) Option[S] {
	return AndThen(o, NonEmptyString[S])
}

// NonEmptySliceOption narrows o to None when it holds an empty slice.
func NonEmptySliceOption[S ~[]E, E any](o Option[S]) Option[S] {
	return AndThen(o, NonEmptySlice[S, E])
}
