package nogo

import (
	"time"

	"github.com/chewxy/math32"
)

// raveInitWins and raveInitVisits seed every new child with an optimistic
// RAVE prior so early selection isn't purely random before real visits
// accumulate.
const (
	raveInitWins   = 10
	raveInitVisits = 20
	explorationC   = 0.25
)

const noNode = -1

// node is one position in the search tree. mover is the color that played
// point to reach this node from its parent; it is also the color credited
// with a win here. Children are stored by index into the owning tree's
// arena rather than by pointer, so the whole tree can be dropped by
// truncating one slice instead of walking a graph of pointers.
type node struct {
	mover    Color
	point    Point
	parent   int32
	children []int32

	untried     Mask
	untriedSet  bool

	visits     uint32
	wins       uint32
	raveVisits uint32
	raveWins   uint32
	logVisits  float32
}

// tree is the playout arena for one genmove call.
type tree struct {
	nodes []node
}

func newTree(rootMover Color) *tree {
	t := &tree{nodes: make([]node, 0, 1024)}
	t.nodes = append(t.nodes, node{
		mover:      rootMover,
		point:      Resign,
		parent:     noNode,
		raveWins:   raveInitWins,
		raveVisits: raveInitVisits,
	})
	return t
}

func (t *tree) newChild(parent int32, mover Color, p Point) int32 {
	id := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		mover:      mover,
		point:      p,
		parent:     parent,
		raveWins:   raveInitWins,
		raveVisits: raveInitVisits,
	})
	return id
}

// score is the UCT+RAVE selection value for a child given its parent's
// cached log(visits).
func score(n *node, parentLogVisits float32) float32 {
	explore := explorationC * math32.Sqrt(parentLogVisits*float32(n.visits))
	num := float32(n.raveWins) + float32(n.wins) + explore
	den := float32(n.raveVisits) + float32(n.visits)
	return num / den
}

// selectChild returns the index of the best-scoring child of n, breaking
// near-ties (within 1e-4) uniformly at random.
func (t *tree) selectChild(id int32, rng *Rand) int32 {
	n := &t.nodes[id]
	best := n.children[0]
	bestScore := score(&t.nodes[best], n.logVisits)
	tied := []int32{best}
	for _, c := range n.children[1:] {
		s := score(&t.nodes[c], n.logVisits)
		switch {
		case s > bestScore+1e-4:
			best, bestScore, tied = c, s, []int32{c}
		case s >= bestScore-1e-4:
			tied = append(tied, c)
		}
	}
	if len(tied) == 1 {
		return best
	}
	return tied[rng.Intn(len(tied))]
}

// Config tunes the search: it stops once at least MinPlayouts have
// completed AND at least TimeBudget has elapsed. Both conditions must hold
// so a position with a forced reply doesn't return instantly and a
// position under time pressure doesn't run forever.
type Config struct {
	MinPlayouts int
	TimeBudget  time.Duration
	Heuristic   bool // use the "two-go" rollout heuristic
}

// DefaultConfig matches the strongest known variant: at least 10,000
// playouts and at least one second of search, whichever finishes later.
func DefaultConfig() Config {
	return Config{MinPlayouts: 10000, TimeBudget: time.Second, Heuristic: true}
}

// Search runs MCTS from board with side to move and returns the chosen
// point, or Resign if side has no legal move.
func Search(board Board, side Color, cfg Config, rng *Rand) Point {
	if !board.HasLegalMove(side) {
		return Resign
	}

	t := newTree(side.Opponent())
	start := time.Now()
	playouts := 0

	for playouts < cfg.MinPlayouts || time.Since(start) < cfg.TimeBudget {
		t.playout(0, board, rng, cfg)
		playouts++
	}

	root := &t.nodes[0]
	if len(root.children) == 0 {
		return Resign
	}
	best := root.children[0]
	for _, c := range root.children[1:] {
		if t.nodes[c].visits > t.nodes[best].visits {
			best = c
		}
	}
	return t.nodes[best].point
}

// playout runs one selection/expansion/simulation/backpropagation cycle
// starting at node id, whose position is exactly board with toMove being
// the player to move at id. It returns the playout's result.
func (t *tree) playout(id int32, board Board, rng *Rand, cfg Config) RolloutResult {
	toMove := t.nodes[id].mover.Opponent()

	// Selection: descend while id is fully expanded.
	for {
		n := &t.nodes[id]
		if !n.untriedSet {
			n.untried = board.LegalMoves(toMove)
			n.untriedSet = true
		}
		if !n.untried.IsZero() || len(n.children) == 0 {
			break
		}
		child := t.selectChild(id, rng)
		board.Place(toMove, t.nodes[child].point)
		toMove = toMove.Opponent()
		id = child
	}

	n := &t.nodes[id]
	var result RolloutResult
	if n.untried.IsZero() {
		// Terminal: toMove has no legal move here.
		result = RolloutResult{Winner: toMove.Opponent()}
	} else {
		// Expansion: pop one untried move at random and create its child.
		idx := rng.Intn(n.untried.Count())
		p := Point(n.untried.NthSet(idx))
		n.untried.Clear(int(p))
		child := t.newChild(id, toMove, p)
		t.nodes[id].children = append(t.nodes[id].children, child)
		board.Place(toMove, p)

		if cfg.Heuristic {
			result = RolloutWithRave(board, toMove.Opponent(), rng)
		} else {
			result = Rollout(board, toMove.Opponent(), rng)
		}
		id = child
	}

	t.backprop(id, result)
	return result
}

func (t *tree) backprop(id int32, result RolloutResult) {
	for id != noNode {
		n := &t.nodes[id]
		n.visits++
		if result.Winner == n.mover {
			n.wins++
		}
		n.logVisits = math32.Log(float32(n.visits))

		winnerRave := result.Rave[result.Winner]
		for _, c := range n.children {
			child := &t.nodes[c]
			if winnerRave.Test(int(child.point)) {
				child.raveVisits++
				if child.mover == result.Winner {
					child.raveWins++
				}
			}
		}
		id = n.parent
	}
}
