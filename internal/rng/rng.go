// Package rng defines the random-number capability shared by the collection
// and random packages.
package rng

import "math/rand/v2"

// Source yields pseudo-random floats in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Default returns the process-wide source. It is safe for concurrent use.
func Default() Source {
	return globalSource{}
}

// NewSeeded returns a deterministic source. It is not safe for concurrent use.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Intn returns an int in [0, n) drawn from src. n must be positive.
func Intn(src Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i >= n {
		// guards against sources that round up to 1.0
		i = n - 1
	}

	return i
}
