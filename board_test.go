package nogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(t *testing.T, s string) Point {
	t.Helper()
	p, err := ParseVertex(s)
	require.NoError(t, err)
	return p
}

func TestPlaceOnEmptyPointSucceeds(t *testing.T) {
	b := NewBoard()
	ok := b.Place(Black, pt(t, "E5"))
	assert.True(t, ok)
	c, occupied := b.Stone(pt(t, "E5"))
	assert.True(t, occupied)
	assert.Equal(t, Black, c)
}

func TestPlaceOnOccupiedPointFails(t *testing.T) {
	b := NewBoard()
	b.Place(Black, pt(t, "E5"))
	assert.False(t, b.Place(White, pt(t, "E5")))
}

func TestCaptureAttemptIsIllegal(t *testing.T) {
	b := NewBoard()
	// White single stone at E5 with three liberties filled by Black,
	// leaving D5 as its only liberty. Black may not play D5: that would
	// capture the White stone, and NoGo forbids capturing.
	require.True(t, b.Place(White, pt(t, "E5")))
	require.True(t, b.Place(Black, pt(t, "E6")))
	require.True(t, b.Place(Black, pt(t, "F5")))
	require.True(t, b.Place(Black, pt(t, "E4")))
	assert.False(t, b.Place(Black, pt(t, "D5")))
}

func TestSelfSuicideIsIllegal(t *testing.T) {
	b := NewBoard()
	require.True(t, b.Place(White, pt(t, "E6")))
	require.True(t, b.Place(White, pt(t, "D5")))
	require.True(t, b.Place(White, pt(t, "F5")))
	require.True(t, b.Place(White, pt(t, "E4")))
	assert.False(t, b.Place(Black, pt(t, "E5")))
}

func TestBoardCloneByValueIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Place(Black, pt(t, "E5"))
	clone := b
	clone.Place(White, pt(t, "D5"))
	_, occupied := b.Stone(pt(t, "D5"))
	assert.False(t, occupied)
	_, cloneOccupied := clone.Stone(pt(t, "D5"))
	assert.True(t, cloneOccupied)
}

func TestHasLegalMoveOnEmptyBoard(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.HasLegalMove(Black))
	assert.Equal(t, NumPoints, b.LegalMoves(Black).Count())
}

func TestShowBoardPrintsColumnEightAsJ(t *testing.T) {
	b := NewBoard()
	s := b.String()
	assert.Contains(t, s, "A B C D E F G H J")
	assert.NotContains(t, s, " I ")
}

func TestSampleLegalReturnsLegalPoint(t *testing.T) {
	b := NewBoard()
	b.Place(Black, pt(t, "E5"))
	rng := NewRand(42)
	for i := 0; i < 50; i++ {
		p := b.SampleLegal(White, rng)
		assert.True(t, b.LegalMoves(White).Test(int(p)))
	}
}
