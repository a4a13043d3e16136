package nogo

// Agent picks a move for color on board. RandomAgent and MCTSAgent are the
// two concrete strategies; collapsing them behind one interface keeps
// Session and the benchmark harness oblivious to which is in play.
type Agent interface {
	TakeAction(board Board, color Color) Point
}

// RandomAgent plays a uniformly random legal move, or Resign if none
// exists. It does no search at all.
type RandomAgent struct {
	Rand *Rand
}

func (a RandomAgent) TakeAction(board Board, color Color) Point {
	if !board.HasLegalMove(color) {
		return Resign
	}
	return board.SampleLegal(color, a.Rand)
}

// MCTSAgent plays the move chosen by Search under the given Config.
type MCTSAgent struct {
	Config Config
	Rand   *Rand
}

func (a MCTSAgent) TakeAction(board Board, color Color) Point {
	return Search(board, color, a.Config, a.Rand)
}
