package nogo

// snapshot captures everything Undo needs to restore: the board is a plain
// value so copying it is just an array copy, no aliasing to worry about.
type snapshot struct {
	board Board
	side  Color
}

// Session is one GTP-speaking game: the live board, whose turn it is, a
// move-for-move history for Undo, and the agent genmove delegates to.
type Session struct {
	board   Board
	side    Color
	komi    float64
	history []snapshot
	agent   Agent
	rng     *Rand
}

// NewSession starts a fresh 9x9 game driven by agent.
func NewSession(agent Agent, rng *Rand) *Session {
	return &Session{
		board: NewBoard(),
		side:  Black,
		agent: agent,
		rng:   rng,
	}
}

// SetBoardSize accepts only the fixed size this engine supports.
func (s *Session) SetBoardSize(size int) error {
	if size != Size {
		return errUnacceptableSize
	}
	return nil
}

// ClearBoard resets to an empty board with Black to move, discarding
// history.
func (s *Session) ClearBoard() {
	s.board = NewBoard()
	s.side = Black
	s.history = nil
}

// SetKomi records komi for reporting purposes. NoGo has no scoring margin,
// so it never affects legality or search.
func (s *Session) SetKomi(k float64) { s.komi = k }

// Play applies a move by color at p, advancing whoever has the next turn
// regardless of who actually played (GTP lets either side move out of
// turn).
func (s *Session) Play(color Color, p Point) error {
	s.history = append(s.history, snapshot{board: s.board, side: s.side})
	if !s.board.Place(color, p) {
		s.history = s.history[:len(s.history)-1]
		return errIllegalMove
	}
	s.side = color.Opponent()
	return nil
}

// GenMove asks the session's agent for a move for color, plays it if one
// exists, and returns it (or Resign).
func (s *Session) GenMove(color Color) Point {
	p := s.agent.TakeAction(s.board, color)
	if p == Resign {
		return Resign
	}
	s.history = append(s.history, snapshot{board: s.board, side: s.side})
	s.board.Place(color, p)
	s.side = color.Opponent()
	return p
}

// Undo restores the position before the last successful Play or GenMove.
func (s *Session) Undo() error {
	if len(s.history) == 0 {
		return errCannotUndo
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.board = last.board
	s.side = last.side
	return nil
}

// FinalScore reports which color wins under the "whoever is stuck loses"
// rule, in the "B+1" / "W+1" shorthand: NoGo games aren't scored by
// territory, only by who runs out of legal moves first.
func (s *Session) FinalScore() string {
	winner := s.side
	if !s.board.HasLegalMove(s.side) {
		winner = s.side.Opponent()
	}
	if winner == Black {
		return "B+1"
	}
	return "W+1"
}

// ShowBoard renders the current position.
func (s *Session) ShowBoard() string {
	return s.board.String()
}
