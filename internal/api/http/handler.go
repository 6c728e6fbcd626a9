package http

import (
	"net/http"

	"checkers/internal/game"
	"checkers/internal/room"

	"github.com/gin-gonic/gin"
)

// RoomReader is the read-only view of the registry used by the REST API.
type RoomReader interface {
	Get(roomID string) (*room.Room, bool)
	Rooms() []room.Summary
}

func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Multiplayer checkers server. Connect to /ws/{room_id} to play.",
		})
	}
}

func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ListRoomsHandler lists open rooms and who is seated in them.
func ListRoomsHandler(rr RoomReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, RoomsResponse{Rooms: rr.Rooms()})
	}
}

// GetRoomHandler returns the board and turn of one room.
func GetRoomHandler(rr RoomReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rr.Get(c.Param("roomID"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, rx.State())
	}
}

// PossibleMovesHandler lists the legal moves of ?player= in a room.
func PossibleMovesHandler(rr RoomReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		player := game.Player(c.Query("player"))
		if !player.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player must be red or black"})
			return
		}
		rx, ok := rr.Get(c.Param("roomID"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, MovesResponse{
			RoomID: rx.ID,
			Player: player,
			Moves:  toMoveDTOs(rx.LegalMoves(player)),
		})
	}
}
