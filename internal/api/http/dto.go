package http

import (
	"checkers/internal/game"
	"checkers/internal/room"
)

// RoomsResponse is returned by GET /api/rooms.
type RoomsResponse struct {
	Rooms []room.Summary `json:"rooms"`
}

// MoveDTO is a move in the [row, col] form clients send over the websocket.
type MoveDTO struct {
	From    [2]int `json:"from"`
	To      [2]int `json:"to"`
	Capture bool   `json:"capture"`
}

// MovesResponse is returned by GET /api/rooms/:roomID/moves.
type MovesResponse struct {
	RoomID string      `json:"room_id"`
	Player game.Player `json:"player"`
	Moves  []MoveDTO   `json:"moves"`
}

func toMoveDTOs(moves []game.Move) []MoveDTO {
	out := make([]MoveDTO, 0, len(moves))
	for _, m := range moves {
		out = append(out, MoveDTO{
			From:    m.From.Pair(),
			To:      m.To.Pair(),
			Capture: m.Capture,
		})
	}
	return out
}
