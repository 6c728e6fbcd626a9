package http

import (
	"checkers/internal/api/ws"
	"checkers/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(rr RoomReader, hub *ws.Hub, cfg config.Config, log *zap.SugaredLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log.With("component", "http")))
	if cfg.CORSAllowAll {
		r.Use(AllowAllCORS())
	}

	r.GET("/", RootHandler())
	r.GET("/healthz", HealthHandler())

	// Game connection, one per player
	r.GET("/ws/:roomID", hub.HandleWS)

	api := r.Group("/api")
	api.GET("/rooms", ListRoomsHandler(rr))
	api.GET("/rooms/:roomID", GetRoomHandler(rr))
	api.GET("/rooms/:roomID/moves", PossibleMovesHandler(rr))

	return r
}
