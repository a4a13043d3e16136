package nogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandIsDeterministicGivenSeed(t *testing.T) {
	a := NewRand(1234)
	b := NewRand(1234)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestRandIntnStaysInRange(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 1000; i++ {
		n := r.Intn(7)
		assert.True(t, n >= 0 && n < 7)
	}
}

func TestRandDiffersAcrossSeeds(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)
	assert.NotEqual(t, a.Uint64(), b.Uint64())
}
