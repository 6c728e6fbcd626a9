package game

import "errors"

// ErrInvalidMove matches every rejected move with errors.Is.
var ErrInvalidMove = errors.New("invalid move")

// MoveError is a rejected move. Reason is shown to the player as is.
type MoveError struct {
	Reason string
}

func (e *MoveError) Error() string {
	return e.Reason
}

func (e *MoveError) Is(target error) bool {
	return target == ErrInvalidMove
}

var (
	ErrOutOfBounds            = &MoveError{Reason: "position is off the board"}
	ErrEmptySource            = &MoveError{Reason: "there is no piece at the source position"}
	ErrNotYourPiece           = &MoveError{Reason: "that piece does not belong to you"}
	ErrNotYourTurn            = &MoveError{Reason: "it's not your turn"}
	ErrDestinationOccupied    = &MoveError{Reason: "the destination is not empty"}
	ErrNotDiagonal            = &MoveError{Reason: "moves must be diagonal"}
	ErrInvalidDistance        = &MoveError{Reason: "pieces move one square or capture by jumping two"}
	ErrManMovesForwardOnly    = &MoveError{Reason: "a man can only move forward"}
	ErrNothingToCapture       = &MoveError{Reason: "there is no opponent piece to capture"}
	ErrManCapturesForwardOnly = &MoveError{Reason: "a man can only capture forward"}
)
