package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntBetweenIsInclusive(t *testing.T) {
	r := NewRand(1)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.IntBetween(2, 4)
		assert.GreaterOrEqual(t, v, 2)
		assert.LessOrEqual(t, v, 4)
		seen[v] = true
	}

	// Over a thousand draws every value in the range shows up.
	assert.True(t, seen[2] && seen[3] && seen[4])
}

func TestIntBetweenSingleValueRange(t *testing.T) {
	r := NewRand(1)
	assert.Equal(t, 7, r.IntBetween(7, 7))
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewRand(42), NewRand(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
	assert.Equal(t, a.Perm(10), b.Perm(10))
}
