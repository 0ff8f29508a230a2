package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Clip returns s with its capacity trimmed to its length, so that appending to
// the result never writes into memory shared with s.
func Clip[S ~[]E, E any](s S) S {
	return s[:len(s):len(s)]
}
