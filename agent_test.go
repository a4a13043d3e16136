package nogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomAgentPlaysLegalMove(t *testing.T) {
	b := NewBoard()
	a := RandomAgent{Rand: NewRand(4)}
	p := a.TakeAction(b, Black)
	assert.NotEqual(t, Resign, p)
	assert.True(t, b.LegalMoves(Black).Test(int(p)))
}

func TestRandomAgentResignsWithNoLegalMove(t *testing.T) {
	b := NewBoard()
	b.forbid[Black] = fullMask
	a := RandomAgent{Rand: NewRand(4)}
	assert.Equal(t, Resign, a.TakeAction(b, Black))
}

func TestMCTSAgentPlaysLegalMove(t *testing.T) {
	b := NewBoard()
	a := MCTSAgent{Config: testConfig(), Rand: NewRand(9)}
	p := a.TakeAction(b, Black)
	assert.True(t, b.LegalMoves(Black).Test(int(p)))
}
