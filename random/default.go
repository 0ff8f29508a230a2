package random

import (
	"time"

	"datakit/utils"
)

var defaultGenerator = New()

// Default returns the process-wide generator used by the package functions.
func Default() *Generator {
	return defaultGenerator
}

// Int returns an integer in [ceil(min), floor(max)].
func Int[T utils.Number](min, max T) int {
	return defaultGenerator.Int(float64(min), float64(max))
}

// Float returns a number in [min, max) rounded to decimals places.
func Float(min, max float64, decimals int) float64 {
	return defaultGenerator.Float(min, max, decimals)
}

// Bool returns true with probability p.
func Bool(p float64) bool {
	return defaultGenerator.Bool(p)
}

// Item returns one element of s, or ErrEmptySequence when s is empty.
func Item[T any](s []T) (T, error) {
	return ItemWith(defaultGenerator, s)
}

// Items returns count elements of s chosen without replacement.
func Items[T any](s []T, count int) []T {
	return ItemsWith(defaultGenerator, s, count)
}

// String returns n alphanumeric characters.
func String(n int) string {
	return defaultGenerator.String(n)
}

// StringFrom returns n characters drawn from alphabet.
func StringFrom(n int, alphabet string) string {
	return defaultGenerator.StringFrom(n, alphabet)
}

// Color returns a "#rrggbb" color code.
func Color() string {
	return defaultGenerator.Color()
}

// UUID returns a version 4 UUID.
func UUID() string {
	return defaultGenerator.UUID()
}

// IP returns a random IPv4 address.
func IP() string {
	return defaultGenerator.IP()
}

// PhoneNumber returns a random mainland China mobile number.
func PhoneNumber() string {
	return defaultGenerator.PhoneNumber()
}

// ChineseName returns a random Chinese full name.
func ChineseName() string {
	return defaultGenerator.ChineseName()
}

// Date returns a time in [start, end).
func Date(start, end time.Time) time.Time {
	return defaultGenerator.Date(start, end)
}

// AnyDate returns a date between 2000-01-01 and now.
func AnyDate() time.Time {
	return defaultGenerator.AnyDate()
}
