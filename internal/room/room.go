package room

import (
	"errors"
	"sync"

	"checkers/internal/game"
	"checkers/internal/shared"

	"go.uber.org/zap"
)

var (
	ErrRoomFull    = errors.New("room is full")
	ErrEmptyRoomID = errors.New("room id is required")
)

// seats in the order they are handed out.
var seats = [...]game.Player{game.Red, game.Black}

// Room pairs two participants around one game session. All mutation and
// the broadcasts that follow it happen under mu.
type Room struct {
	ID string

	mu           sync.Mutex
	session      *game.Session
	participants map[game.Player]Participant
	log          *zap.SugaredLogger
}

// Summary is a read-only description of a room.
type Summary struct {
	ID      string        `json:"room_id"`
	Players []game.Player `json:"players"`
	Full    bool          `json:"full"`
}

// State is a room summary together with its game snapshot and how many
// pieces each side has left. A side with no pieces has lost.
type State struct {
	Summary
	game.Snapshot
	Pieces map[game.Player]int `json:"pieces"`
}

func newRoom(id string, log *zap.SugaredLogger) *Room {
	return &Room{
		ID:           id,
		session:      game.NewSession(),
		participants: make(map[game.Player]Participant, len(seats)),
		log:          log.With("room_id", id),
	}
}

// join seats p in the first free slot, acknowledges it and, once both
// seats are taken, sends the game state to both players.
func (r *Room) join(p Participant) (game.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player := game.NoPlayer
	for _, seat := range seats {
		if r.participants[seat] == nil {
			player = seat
			break
		}
	}
	if player == game.NoPlayer {
		return game.NoPlayer, ErrRoomFull
	}

	r.participants[player] = p
	r.send(player, p, shared.NewJoined(player))

	if len(r.participants) == len(seats) {
		r.broadcastState()
	}

	return player, nil
}

// leave frees the seat of player and returns how many participants remain.
func (r *Room) leave(player game.Player) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.participants, player)
	return len(r.participants)
}

// Move plays a move for player. On success both participants receive the
// new state; otherwise only player is told why the move was rejected.
func (r *Room) Move(player game.Player, from, to game.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.session.ApplyMove(player, from, to); err != nil {
		if p := r.participants[player]; p != nil {
			r.send(player, p, shared.NewError(err.Error()))
		}
		return err
	}

	r.log.Debugw("move applied", "player", player, "from", from, "to", to, "next_turn", r.session.Turn())
	r.broadcastState()

	return nil
}

func (r *Room) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.summary()
}

func (r *Room) summary() Summary {
	players := make([]game.Player, 0, len(seats))
	for _, seat := range seats {
		if r.participants[seat] != nil {
			players = append(players, seat)
		}
	}
	return Summary{
		ID:      r.ID,
		Players: players,
		Full:    len(players) == len(seats),
	}
}

func (r *Room) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.session.Snapshot()
	pieces := make(map[game.Player]int, len(seats))
	for _, seat := range seats {
		pieces[seat] = snap.Board.Count(seat)
	}
	return State{
		Summary:  r.summary(),
		Snapshot: snap,
		Pieces:   pieces,
	}
}

func (r *Room) LegalMoves(player game.Player) []game.Move {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.session.LegalMoves(player)
}
