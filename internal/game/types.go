package game

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Cell is the value stored in one square. The sign is the side and the
// magnitude is the rank, which is also how boards are sent to clients.
type Cell int8

const (
	Empty     Cell = 0
	RedMan    Cell = 1
	RedKing   Cell = 2
	BlackMan  Cell = -1
	BlackKing Cell = -2
)

// Player identifies a side. Red starts at the top and moves down the rows.
type Player string

const (
	NoPlayer Player = ""
	Red      Player = "red"
	Black    Player = "black"
)

// Valid reports whether p is one of the two sides.
func (p Player) Valid() bool {
	return p == Red || p == Black
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoPlayer
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Pair returns the position in the [row, col] form used on the wire.
func (p Position) Pair() [2]int {
	return [2]int{p.Row, p.Col}
}

// PositionFromPair is the inverse of Pair.
func PositionFromPair(rc [2]int) Position {
	return Position{Row: rc[0], Col: rc[1]}
}

type Move struct {
	From    Position `json:"from"`
	To      Position `json:"to"`
	Capture bool     `json:"capture"`
}

// Board is indexed [row][col]. It is a value type, so assigning a board
// copies every cell.
type Board [BoardSize][BoardSize]Cell

// At returns the cell at p. p must be in bounds.
func (b *Board) At(p Position) Cell {
	return b[p.Row][p.Col]
}

func (b *Board) set(p Position, c Cell) {
	b[p.Row][p.Col] = c
}

// Count returns how many pieces p has on the board.
func (b *Board) Count(p Player) int {
	n := 0
	for r := range b {
		for c := range b[r] {
			if OwnerOf(b[r][c]) == p {
				n++
			}
		}
	}
	return n
}

// InitialBoard places red men on the dark squares of rows 0-2 and black men
// on the dark squares of rows 5-7.
func InitialBoard() Board {
	var b Board
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if !isDark(r, c) {
				continue
			}
			switch {
			case r < 3:
				b[r][c] = ManOf(Red)
			case r >= BoardSize-3:
				b[r][c] = ManOf(Black)
			}
		}
	}
	return b
}

func isDark(row, col int) bool {
	return (row+col)%2 == 1
}

func OwnerOf(c Cell) Player {
	switch {
	case c > 0:
		return Red
	case c < 0:
		return Black
	}
	return NoPlayer
}

func IsKing(c Cell) bool {
	return c == RedKing || c == BlackKing
}

// ForwardDirection is the row delta a player's men move toward.
func ForwardDirection(p Player) int {
	if p == Red {
		return 1
	}
	return -1
}

// BackRank is the row on which p's men are crowned.
func BackRank(p Player) int {
	if p == Red {
		return BoardSize - 1
	}
	return 0
}

func ManOf(p Player) Cell {
	if p == Red {
		return RedMan
	}
	return BlackMan
}

func KingOf(p Player) Cell {
	if p == Red {
		return RedKing
	}
	return BlackKing
}
