package store

import (
	"checkers/internal/room"
	"sync"
)

type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*room.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]*room.Room{},
	}
}

func (m *MemoryStore) GetRoom(id string) (*room.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	return r, ok
}

func (m *MemoryStore) SaveRoom(r *room.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[r.ID] = r
}

func (m *MemoryStore) DeleteRoom(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, id)
}

func (m *MemoryStore) ListRooms() []*room.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*room.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out
}
