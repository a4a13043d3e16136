package nogo

// RolloutResult is the outcome of one random playout to completion.
type RolloutResult struct {
	Winner Color
	// Rave holds, per color, the points that color played via the
	// "two-go" preferred path during the rollout. Backpropagation only
	// credits RAVE statistics for moves recorded here, not every move
	// played.
	Rave [2]Mask
}

// Rollout plays alternating uniformly-random legal moves from board,
// starting with side to move, until the side on move has no legal move. It
// does not mutate the caller's board.
func Rollout(board Board, side Color, rng *Rand) RolloutResult {
	return rolloutWithTwoGo(board, side, rng, false)
}

// RolloutWithRave is Rollout plus the "two-go" heuristic: points legal for
// both colors at the start of the rollout are preferred when available,
// since a point both sides can still play tends to stay open longer and
// is less likely to be a self-filling mistake.
func RolloutWithRave(board Board, side Color, rng *Rand) RolloutResult {
	return rolloutWithTwoGo(board, side, rng, true)
}

func rolloutWithTwoGo(board Board, side Color, rng *Rand, heuristic bool) RolloutResult {
	var twoGo Mask
	if heuristic {
		twoGo = board.LegalMoves(Black).And(board.LegalMoves(White))
	}

	var rave [2]Mask
	current := side
	for board.HasLegalMove(current) {
		legal := board.LegalMoves(current)
		var p Point
		if heuristic {
			preferred := legal.And(twoGo)
			if !preferred.IsZero() {
				p = Point(preferred.NthSet(rng.Intn(preferred.Count())))
				rave[current].Set(int(p))
				board.Place(current, p)
				current = current.Opponent()
				continue
			}
		}
		p = Point(legal.NthSet(rng.Intn(legal.Count())))
		board.Place(current, p)
		current = current.Opponent()
	}
	return RolloutResult{Winner: current.Opponent(), Rave: rave}
}
