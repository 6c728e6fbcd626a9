package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"checkers/internal/config"
	"checkers/internal/game"
	"checkers/internal/room"
	"checkers/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub turns websocket connections into room participants.
type Hub struct {
	registry RoomRegistry
	cfg      config.WebSocket
	log      *zap.SugaredLogger
	upgrader websocket.Upgrader
}

func NewHub(registry RoomRegistry, cfg config.Config, log *zap.SugaredLogger) *Hub {
	h := &Hub{
		registry: registry,
		cfg:      cfg.WS,
		log:      log.With("component", "ws"),
	}
	if cfg.CORSAllowAll {
		h.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}
	return h
}

// HandleWS serves GET /ws/:roomID.
func (h *Hub) HandleWS(c *gin.Context) {
	roomID := c.Param("roomID")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": room.ErrEmptyRoomID.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnw("failed to upgrade connection", "room_id", roomID, "error", err)
		return
	}

	connID := uuid.NewString()
	log := h.log.With("room_id", roomID, "conn_id", connID)
	cl := newClient(connID, conn, h.cfg, log)

	rm, player, err := h.registry.Connect(roomID, cl)
	if err != nil {
		log.Infow("connection rejected", "error", err)
		h.reject(conn, err)
		return
	}

	log = log.With("player", player)
	cl.log = log
	log.Infow("connection established")

	go cl.writePump()

	defer func() {
		h.registry.Disconnect(roomID, player)
		cl.close()
		<-cl.stopped
		log.Infow("connection closed")
	}()

	h.readLoop(cl, rm, player)
}

// reject tells a client why it cannot join and closes the connection.
func (h *Hub) reject(conn *websocket.Conn, reason error) {
	deadline := time.Now().Add(h.cfg.WriteTimeout)
	_ = conn.SetWriteDeadline(deadline)
	_ = conn.WriteJSON(shared.NewError(reason.Error()))
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason.Error()), deadline)
	_ = conn.Close()
}

func (h *Hub) readLoop(cl *client, rm *room.Room, player game.Player) {
	cl.prepareRead()

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				cl.log.Warnw("unexpected close", "error", err)
			} else {
				cl.log.Debugw("read ended", "error", err)
			}
			return
		}

		if err := h.handleMessage(cl, rm, player, data); err != nil {
			cl.log.Debugw("message rejected", "error", err)
		}
	}
}

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownType      = errors.New("unknown message type")
)

func (h *Hub) handleMessage(cl *client, rm *room.Room, player game.Player, data []byte) error {
	var env shared.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return h.replyError(cl, errMalformedMessage)
	}

	switch env.Type {
	case shared.TypeMove:
		var req shared.MoveRequest
		if err := json.Unmarshal(data, &req); err != nil || len(req.From) != 2 || len(req.To) != 2 {
			return h.replyError(cl, errMalformedMessage)
		}
		// the room reports rejected moves to the mover itself
		return rm.Move(player, game.PositionFromPair([2]int(req.From)), game.PositionFromPair([2]int(req.To)))
	default:
		return h.replyError(cl, errUnknownType)
	}
}

func (h *Hub) replyError(cl *client, reason error) error {
	if err := cl.Send(shared.NewError(reason.Error())); err != nil {
		cl.log.Warnw("failed to queue error", "error", err)
	}
	return reason
}
