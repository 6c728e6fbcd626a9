package game

// Snapshot is a copy of a session's state. Changing it does not affect the
// session it was taken from.
type Snapshot struct {
	Board       Board  `json:"board"`
	CurrentTurn Player `json:"current_turn"`
}

// Session is one game: a board and whose turn it is. It is not safe for
// concurrent use; the owning room serializes access.
type Session struct {
	board Board
	turn  Player
}

func NewSession() *Session {
	return &Session{
		board: InitialBoard(),
		turn:  Red,
	}
}

func (s *Session) Turn() Player {
	return s.turn
}

// ApplyMove plays a move for mover. Whose turn it is gets checked once the
// source square is known to hold one of mover's pieces. The session is left
// untouched when an error is returned.
func (s *Session) ApplyMove(mover Player, from, to Position) error {
	if err := checkSource(s.board, mover, from, to); err != nil {
		return err
	}
	if mover != s.turn {
		return ErrNotYourTurn
	}

	next, err := ValidateAndApply(s.board, mover, from, to)
	if err != nil {
		return err
	}

	s.board = next
	s.turn = s.turn.Opponent()

	return nil
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:       s.board,
		CurrentTurn: s.turn,
	}
}

// LegalMoves lists the moves p could make on the current board, regardless
// of whose turn it is.
func (s *Session) LegalMoves(p Player) []Move {
	return LegalMoves(s.board, p)
}
