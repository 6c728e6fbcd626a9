package ws

import (
	"checkers/internal/game"
	"checkers/internal/room"
)

type RoomRegistry interface {
	Connect(roomID string, p room.Participant) (*room.Room, game.Player, error)
	Disconnect(roomID string, player game.Player)
}
