package nogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSetTestClear(t *testing.T) {
	var m Mask
	m.Set(0)
	m.Set(63)
	m.Set(64)
	m.Set(80)
	assert.True(t, m.Test(0))
	assert.True(t, m.Test(63))
	assert.True(t, m.Test(64))
	assert.True(t, m.Test(80))
	assert.Equal(t, 4, m.Count())
	m.Clear(64)
	assert.False(t, m.Test(64))
	assert.Equal(t, 3, m.Count())
}

func TestMaskNthSet(t *testing.T) {
	var m Mask
	for _, p := range []int{2, 9, 40, 70, 80} {
		m.Set(p)
	}
	for i, want := range []int{2, 9, 40, 70, 80} {
		assert.Equal(t, want, m.NthSet(i))
	}
}

func TestNeighborsCorner(t *testing.T) {
	n := neighbors(maskOf(0))
	assert.Equal(t, 2, n.Count())
	assert.True(t, n.Test(1))
	assert.True(t, n.Test(Size))
}

func TestNeighborsCenterHasFour(t *testing.T) {
	center := 4*Size + 4
	n := neighbors(maskOf(center))
	assert.Equal(t, 4, n.Count())
}

func TestNeighborsNoRowWraparound(t *testing.T) {
	// Rightmost point of row 0 must not claim the leftmost point of row 1
	// as a neighbor.
	n := neighbors(maskOf(Size - 1))
	assert.False(t, n.Test(Size))
}
