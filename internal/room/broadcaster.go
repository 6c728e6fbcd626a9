package room

import (
	"checkers/internal/game"
	"checkers/internal/shared"
)

// Participant is one connected client. Send must not block: it queues msg
// for delivery and fails if the client cannot take more.
type Participant interface {
	Send(msg any) error
}

// broadcastState sends the current snapshot to every seated participant,
// each tagged with its own colour. Callers hold r.mu.
func (r *Room) broadcastState() {
	snap := r.session.Snapshot()
	for _, player := range seats {
		p := r.participants[player]
		if p == nil {
			continue
		}
		r.send(player, p, shared.NewState(player, snap))
	}
}

func (r *Room) send(player game.Player, p Participant, msg any) {
	if err := p.Send(msg); err != nil {
		r.log.Warnw("failed to queue message", "player", player, "error", err)
	}
}
