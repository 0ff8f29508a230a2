package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

func TestNewSeeded_Deterministic(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for range 10 {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestIntn(t *testing.T) {
	assert.Equal(t, 0, Intn(fixed(0), 5))
	assert.Equal(t, 2, Intn(fixed(0.5), 5))
	assert.Equal(t, 4, Intn(fixed(0.9999), 5))
	assert.Equal(t, 4, Intn(fixed(1), 5))

	src := Default()
	for range 100 {
		n := Intn(src, 3)
		assert.True(t, n >= 0 && n < 3, "got %d", n)
	}
}
