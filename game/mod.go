package game

import "golang.org/x/exp/constraints"

// Square is the content of one cell of the board.
type Square int8

const (
	Empty   Square = iota // 0
	Player1               // 1
	Player2               // 2

	// OffBoard is returned for lookups outside the grid so that a scan running off the edge
	// never matches a player or an empty cell.
	OffBoard Square = -1
)

const (
	DefaultSize = 8
	MinSize     = 4
	MaxSize     = 26
)

// Opponent returns the other player. Empty and OffBoard have no opponent.
func (s Square) Opponent() Square {
	switch s {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return s
	}
}

func (s Square) String() string {
	switch s {
	case Empty:
		return "empty"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "offboard"
	}
}

// Counts holds the number of cells per state, indexed by Square (Empty, Player1, Player2).
type Counts [3]int

func (c Counts) Discs() int {
	return c[Player1] + c[Player2]
}

// Values holds one evaluation per personality.
type Values [2]int

// BestMoves holds one move per personality, "" while unset.
type BestMoves [2]Move

// the 8 compass directions as (dx, dy)
var directions = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
