package nogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolloutAlwaysTerminates(t *testing.T) {
	rng := NewRand(5)
	for i := 0; i < 20; i++ {
		b := NewBoard()
		result := Rollout(b, Black, rng)
		assert.True(t, result.Winner == Black || result.Winner == White)
	}
}

func TestRolloutWithRaveRecordsOnlyPreferredMoves(t *testing.T) {
	rng := NewRand(11)
	b := NewBoard()
	// White around E5 makes E5 self-kill for Black, so it is not a two-go
	// point even though White may still play it.
	for _, v := range []string{"E6", "D5", "F5", "E4"} {
		b.Place(White, pt(t, v))
	}
	twoGo := b.LegalMoves(Black).And(b.LegalMoves(White))
	result := RolloutWithRave(b, Black, rng)
	for _, c := range []Color{Black, White} {
		assert.True(t, result.Rave[c].AndNot(twoGo).IsZero())
	}
	assert.True(t, result.Winner == Black || result.Winner == White)
}

func TestRolloutDoesNotMutateCallerBoard(t *testing.T) {
	b := NewBoard()
	before := b
	rng := NewRand(3)
	Rollout(b, Black, rng)
	assert.Equal(t, before, b)
}
