package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialBoard(t *testing.T) {
	b := InitialBoard()

	t.Run("Places twelve men per side", func(t *testing.T) {
		assert.Equal(t, 12, b.Count(Red))
		assert.Equal(t, 12, b.Count(Black))
	})

	t.Run("Uses only dark squares of the starting rows", func(t *testing.T) {
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				cell := b[r][c]
				switch {
				case !isDark(r, c):
					assert.Equal(t, Empty, cell, "light square (%d,%d)", r, c)
				case r <= 2:
					assert.Equal(t, RedMan, cell, "(%d,%d)", r, c)
				case r >= 5:
					assert.Equal(t, BlackMan, cell, "(%d,%d)", r, c)
				default:
					assert.Equal(t, Empty, cell, "(%d,%d)", r, c)
				}
			}
		}
	})

	t.Run("Is deterministic", func(t *testing.T) {
		assert.Equal(t, b, InitialBoard())
	})
}

func TestCellHelpers(t *testing.T) {
	assert.Equal(t, NoPlayer, OwnerOf(Empty))
	assert.Equal(t, Red, OwnerOf(RedMan))
	assert.Equal(t, Red, OwnerOf(RedKing))
	assert.Equal(t, Black, OwnerOf(BlackMan))
	assert.Equal(t, Black, OwnerOf(BlackKing))

	assert.False(t, IsKing(Empty))
	assert.False(t, IsKing(RedMan))
	assert.False(t, IsKing(BlackMan))
	assert.True(t, IsKing(RedKing))
	assert.True(t, IsKing(BlackKing))
}

func TestPlayerHelpers(t *testing.T) {
	assert.Equal(t, 1, ForwardDirection(Red))
	assert.Equal(t, -1, ForwardDirection(Black))

	assert.Equal(t, 7, BackRank(Red))
	assert.Equal(t, 0, BackRank(Black))

	assert.Equal(t, Black, Red.Opponent())
	assert.Equal(t, Red, Black.Opponent())
	assert.Equal(t, NoPlayer, NoPlayer.Opponent())

	assert.True(t, Red.Valid())
	assert.False(t, Player("green").Valid())
}

func TestPosition(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 7}.InBounds())
	assert.False(t, Position{Row: 8, Col: 0}.InBounds())
	assert.False(t, Position{Row: 0, Col: -1}.InBounds())

	p := Position{Row: 2, Col: 5}
	assert.Equal(t, [2]int{2, 5}, p.Pair())
	assert.Equal(t, p, PositionFromPair(p.Pair()))
}
