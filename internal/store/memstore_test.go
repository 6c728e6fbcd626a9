package store

import (
	"testing"

	"checkers/internal/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()

	_, ok := m.GetRoom("x")
	assert.False(t, ok)

	r := &room.Room{ID: "x"}
	m.SaveRoom(r)

	got, ok := m.GetRoom("x")
	require.True(t, ok)
	assert.Same(t, r, got)
	assert.Equal(t, []*room.Room{r}, m.ListRooms())

	m.DeleteRoom("x")
	_, ok = m.GetRoom("x")
	assert.False(t, ok)
	assert.Empty(t, m.ListRooms())

	assert.NotPanics(t, func() { m.DeleteRoom("missing") })
}
