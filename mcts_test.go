package nogo

import (
	"time"

	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() Config {
	return Config{MinPlayouts: 50, TimeBudget: 0, Heuristic: true}
}

func TestSearchReturnsLegalMove(t *testing.T) {
	b := NewBoard()
	rng := NewRand(21)
	p := Search(b, Black, testConfig(), rng)
	assert.NotEqual(t, Resign, p)
	assert.True(t, b.LegalMoves(Black).Test(int(p)))
}

func TestSearchResignsWithNoLegalMove(t *testing.T) {
	b := NewBoard()
	b.forbid[White] = fullMask
	rng := NewRand(1)
	got := Search(b, White, testConfig(), rng)
	assert.Equal(t, Resign, got)
}

func TestSearchWithZeroTimeBudgetFinishesPromptly(t *testing.T) {
	b := NewBoard()
	rng := NewRand(2)
	cfg := Config{MinPlayouts: 200, TimeBudget: 0, Heuristic: false}
	start := time.Now()
	Search(b, Black, cfg, rng)
	assert.True(t, time.Since(start) < 5*time.Second)
}

func TestSearchFinalMoveIsMostVisitedChild(t *testing.T) {
	b := NewBoard()
	rng := NewRand(8)
	tr := newTree(White)
	for i := 0; i < 300; i++ {
		tr.playout(0, b, rng, testConfig())
	}
	root := &tr.nodes[0]
	assert.True(t, len(root.children) > 0)
	best := root.children[0]
	for _, c := range root.children[1:] {
		if tr.nodes[c].visits > tr.nodes[best].visits {
			best = c
		}
	}
	for _, c := range root.children {
		assert.True(t, tr.nodes[best].visits >= tr.nodes[c].visits)
	}
}
