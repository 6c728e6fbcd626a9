package shared

import "checkers/internal/game"

const (
	TypeJoined = "joined"
	TypeMove   = "move"
	TypeState  = "state"
	TypeError  = "error"
)

// Envelope is decoded first to find out which message a client sent.
type Envelope struct {
	Type string `json:"type"`
}

// MoveRequest carries [row, col] pairs. They are slices so that a pair of
// the wrong length can be told apart from a valid one.
type MoveRequest struct {
	Type string `json:"type"`
	From []int  `json:"from"`
	To   []int  `json:"to"`
}

type JoinedMessage struct {
	Type string      `json:"type"`
	You  game.Player `json:"you"`
}

type StateMessage struct {
	Type        string      `json:"type"`
	You         game.Player `json:"you"`
	Board       game.Board  `json:"board"`
	CurrentTurn game.Player `json:"current_turn"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewJoined(you game.Player) JoinedMessage {
	return JoinedMessage{Type: TypeJoined, You: you}
}

// NewState tags a snapshot with the colour of the client it is sent to.
func NewState(you game.Player, snap game.Snapshot) StateMessage {
	return StateMessage{
		Type:        TypeState,
		You:         you,
		Board:       snap.Board,
		CurrentTurn: snap.CurrentTurn,
	}
}

func NewError(message string) ErrorMessage {
	return ErrorMessage{Type: TypeError, Message: message}
}
