package room

import (
	"sort"
	"sync"

	"checkers/internal/game"

	"go.uber.org/zap"
)

type Store interface {
	GetRoom(id string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(id string)
	ListRooms() []*Room
}

// Registry creates rooms on first connect and drops them once the last
// participant has left, so a drained room id always starts a new game.
type Registry struct {
	mu    sync.Mutex
	store Store
	log   *zap.SugaredLogger
}

func NewRegistry(s Store, log *zap.SugaredLogger) *Registry {
	return &Registry{
		store: s,
		log:   log.With("component", "registry"),
	}
}

// Connect seats p in the room with the given id, creating the room if it
// does not exist. ErrRoomFull leaves the room untouched.
func (reg *Registry) Connect(roomID string, p Participant) (*Room, game.Player, error) {
	if roomID == "" {
		return nil, game.NoPlayer, ErrEmptyRoomID
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.store.GetRoom(roomID)
	if !ok {
		r = newRoom(roomID, reg.log)
		reg.store.SaveRoom(r)
		reg.log.Infow("room created", "room_id", roomID)
	}

	player, err := r.join(p)
	if err != nil {
		return nil, game.NoPlayer, err
	}

	reg.log.Infow("player joined", "room_id", roomID, "player", player)

	return r, player, nil
}

// Disconnect frees the seat held by player. The room and its game are
// discarded when nobody is left.
func (reg *Registry) Disconnect(roomID string, player game.Player) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.store.GetRoom(roomID)
	if !ok {
		return
	}

	remaining := r.leave(player)
	reg.log.Infow("player left", "room_id", roomID, "player", player, "remaining", remaining)

	if remaining == 0 {
		reg.store.DeleteRoom(roomID)
		reg.log.Infow("room closed", "room_id", roomID)
	}
}

func (reg *Registry) Get(roomID string) (*Room, bool) {
	return reg.store.GetRoom(roomID)
}

// Rooms returns a summary of every open room sorted by id.
func (reg *Registry) Rooms() []Summary {
	rooms := reg.store.ListRooms()
	out := make([]Summary, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Summary())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
