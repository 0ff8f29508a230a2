package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(1, 1, 3))
	assert.True(t, IsInRange(1, 3, 3))
	assert.False(t, IsInRange(1, 4, 3))
	assert.True(t, IsInRange(0.5, 0.75, 1.0))
	assert.False(t, IsInRange[uint8](10, 9, 20))
}

func TestUnpack2(t *testing.T) {
	a, b := Unpack2([]string{"k", "v", "extra"})
	assert.Equal(t, "k", a)
	assert.Equal(t, "v", b)

	a, b = Unpack2([]string{"k"})
	assert.Equal(t, "k", a)
	assert.Empty(t, b)

	a, b = Unpack2([]string(nil))
	assert.Empty(t, a)
	assert.Empty(t, b)
}
