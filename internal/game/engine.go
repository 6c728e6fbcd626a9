package game

// ValidateAndApply checks a move by mover from one square to another and
// returns the board after it. b is never modified; on error the returned
// board is the input unchanged.
//
// There is no forced capture and no multi-jump: a move captures at most the
// single piece between its endpoints.
func ValidateAndApply(b Board, mover Player, from, to Position) (Board, error) {
	if err := checkSource(b, mover, from, to); err != nil {
		return b, err
	}

	piece := b.At(from)
	if b.At(to) != Empty {
		return b, ErrDestinationOccupied
	}

	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if abs(dr) != abs(dc) {
		return b, ErrNotDiagonal
	}

	king := IsKing(piece)
	forward := ForwardDirection(mover)
	next := b

	switch abs(dr) {
	case 1:
		if !king && dr != forward {
			return b, ErrManMovesForwardOnly
		}
	case 2:
		mid := Position{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}
		if OwnerOf(b.At(mid)) != mover.Opponent() {
			return b, ErrNothingToCapture
		}
		if !king && dr != 2*forward {
			return b, ErrManCapturesForwardOnly
		}
		next.set(mid, Empty)
	default:
		return b, ErrInvalidDistance
	}

	next.set(from, Empty)
	next.set(to, promote(piece, mover, to))

	return next, nil
}

// checkSource rejects moves that are off the board or that do not start on
// one of mover's pieces.
func checkSource(b Board, mover Player, from, to Position) error {
	if !from.InBounds() || !to.InBounds() {
		return ErrOutOfBounds
	}

	piece := b.At(from)
	if piece == Empty {
		return ErrEmptySource
	}
	if OwnerOf(piece) != mover {
		return ErrNotYourPiece
	}
	return nil
}

// promote crowns a man that reached the opponent's back rank. Kings are
// returned as they are.
func promote(piece Cell, owner Player, at Position) Cell {
	if !IsKing(piece) && at.Row == BackRank(owner) {
		return KingOf(owner)
	}
	return piece
}

var moveDeltas = [...][2]int{
	{1, -1}, {1, 1}, {-1, -1}, {-1, 1},
	{2, -2}, {2, 2}, {-2, -2}, {-2, 2},
}

// LegalMoves lists every move ValidateAndApply accepts for p, ordered by the
// source square row by row.
func LegalMoves(b Board, p Player) []Move {
	moves := []Move{}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if OwnerOf(b[r][c]) != p {
				continue
			}
			from := Position{Row: r, Col: c}
			for _, d := range moveDeltas {
				to := Position{Row: r + d[0], Col: c + d[1]}
				if _, err := ValidateAndApply(b, p, from, to); err != nil {
					continue
				}
				moves = append(moves, Move{From: from, To: to, Capture: abs(d[0]) == 2})
			}
		}
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
