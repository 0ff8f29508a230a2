package collection

import (
	"errors"
	"fmt"

	"datakit/internal/common"
	"datakit/internal/rng"
)

// ErrInvalidChunkSize is returned by Chunk when the requested size is not positive.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// Unique returns the elements of s with later duplicates removed.
// The order of first occurrences is preserved.
func Unique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))

	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// GroupBy groups elements by the stringified value returned by key.
// Elements keep their input order inside each group.
func GroupBy[T any, K any](s []T, key func(T) K) map[string][]T {
	groups := make(map[string][]T)

	for _, v := range s {
		k := fmt.Sprint(key(v))
		groups[k] = append(groups[k], v)
	}

	return groups
}

// Intersection returns the distinct elements of a that are also present in b,
// in the order they first appear in a.
func Intersection[T comparable](a, b []T) []T {
	inB := toSet(b)

	return Unique(filter(a, func(v T) bool {
		_, ok := inB[v]
		return ok
	}))
}

// Difference returns the distinct elements of a that are absent from b,
// in the order they first appear in a.
func Difference[T comparable](a, b []T) []T {
	inB := toSet(b)

	return Unique(filter(a, func(v T) bool {
		_, ok := inB[v]
		return !ok
	}))
}

// Union returns the distinct elements of a followed by those of b.
func Union[T comparable](a, b []T) []T {
	return Unique(append(common.Clip(a), b...))
}

// Chunk splits s into consecutive groups of at most size elements.
// The last group holds the remainder. Each group is an independent copy.
func Chunk[T any](s []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, size)
	}

	n := len(s) / size
	if len(s)%size != 0 {
		n++
	}

	out := make([][]T, 0, n)

	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		part := make([]T, end-start)
		copy(part, s[start:end])
		out = append(out, part)
	}

	return out, nil
}

// Shuffle returns a random permutation of s using the process-wide source.
func Shuffle[T any](s []T) []T {
	return ShuffleWith(rng.Default(), s)
}

// ShuffleWith returns a random permutation of s drawn from src (Fisher-Yates).
func ShuffleWith[T any](src rng.Source, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(src, i+1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

func toSet[T comparable](s []T) map[T]struct{} {
	set := make(map[T]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}

	return set
}

func filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))

	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}
