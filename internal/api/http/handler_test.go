package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkers/internal/api/ws"
	"checkers/internal/config"
	"checkers/internal/game"
	"checkers/internal/room"
	"checkers/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type discard struct{}

func (discard) Send(any) error { return nil }

func setup(t *testing.T) (*gin.Engine, *room.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop().Sugar()
	cfg := config.Default()
	registry := room.NewRegistry(store.NewMemoryStore(), log)
	return NewRouter(registry, ws.NewHub(registry, cfg, log), cfg, log), registry
}

func get(t *testing.T, r *gin.Engine, path string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestRootAndHealth(t *testing.T) {
	r, _ := setup(t)

	var root map[string]string
	assert.Equal(t, http.StatusOK, get(t, r, "/", &root))
	assert.Contains(t, root["message"], "/ws/")

	var health map[string]string
	assert.Equal(t, http.StatusOK, get(t, r, "/healthz", &health))
	assert.Equal(t, "ok", health["status"])
}

func TestListRooms(t *testing.T) {
	r, registry := setup(t)

	var empty RoomsResponse
	assert.Equal(t, http.StatusOK, get(t, r, "/api/rooms", &empty))
	assert.Empty(t, empty.Rooms)

	_, _, err := registry.Connect("abc", discard{})
	require.NoError(t, err)

	var resp RoomsResponse
	assert.Equal(t, http.StatusOK, get(t, r, "/api/rooms", &resp))
	assert.Equal(t, []room.Summary{{ID: "abc", Players: []game.Player{game.Red}}}, resp.Rooms)
}

func TestGetRoom(t *testing.T) {
	t.Run("Unknown room", func(t *testing.T) {
		r, registry := setup(t)

		assert.Equal(t, http.StatusNotFound, get(t, r, "/api/rooms/nope", nil))
		_, ok := registry.Get("nope")
		assert.False(t, ok, "reading must not create rooms")
	})

	t.Run("Board and turn after a move", func(t *testing.T) {
		r, registry := setup(t)
		rx, _, err := registry.Connect("abc", discard{})
		require.NoError(t, err)
		require.NoError(t, rx.Move(game.Red, game.Position{Row: 2, Col: 1}, game.Position{Row: 3, Col: 2}))

		var st room.State
		assert.Equal(t, http.StatusOK, get(t, r, "/api/rooms/abc", &st))

		assert.Equal(t, "abc", st.ID)
		assert.Equal(t, game.Black, st.CurrentTurn)
		assert.Equal(t, game.RedMan, st.Board[3][2])
		assert.Equal(t, map[game.Player]int{game.Red: 12, game.Black: 12}, st.Pieces)
		assert.False(t, st.Full)
	})
}

func TestPossibleMoves(t *testing.T) {
	r, registry := setup(t)
	_, _, err := registry.Connect("abc", discard{})
	require.NoError(t, err)

	t.Run("Lists moves of the requested player", func(t *testing.T) {
		var resp MovesResponse
		assert.Equal(t, http.StatusOK, get(t, r, "/api/rooms/abc/moves?player=black", &resp))

		assert.Equal(t, game.Black, resp.Player)
		require.Len(t, resp.Moves, 7)
		assert.Equal(t, MoveDTO{From: [2]int{5, 0}, To: [2]int{4, 1}}, resp.Moves[0])
	})

	t.Run("Rejects an unknown player", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get(t, r, "/api/rooms/abc/moves?player=green", nil))
	})

	t.Run("Unknown room", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, r, "/api/rooms/nope/moves?player=red", nil))
	})
}

func TestCORS(t *testing.T) {
	r, _ := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/rooms", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
