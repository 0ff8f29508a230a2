package collection

import (
	"datakit/internal/common"
	"datakit/utils"
)

// Sum returns the total of s, or zero for an empty slice.
func Sum[T utils.Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}

	return total
}

// Average returns the arithmetic mean of s. An empty slice averages to 0.
func Average[T utils.Number](s []T) float64 {
	if common.IsEmpty(s) {
		return 0
	}

	var total float64
	for _, v := range s {
		total += float64(v)
	}

	return total / float64(len(s))
}

// Max returns the largest element of s. The boolean is false when s is empty.
func Max[T utils.Number](s []T) (T, bool) {
	return reduce(s, func(best, v T) bool { return v > best })
}

// Min returns the smallest element of s. The boolean is false when s is empty.
func Min[T utils.Number](s []T) (T, bool) {
	return reduce(s, func(best, v T) bool { return v < best })
}

func reduce[T utils.Number](s []T, better func(best, v T) bool) (T, bool) {
	best, ok := common.First(s)
	if !ok {
		return best, false
	}

	for _, v := range s[1:] {
		if better(best, v) {
			best = v
		}
	}

	return best, true
}
