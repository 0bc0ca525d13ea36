package game

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Board is one position. A derived board is built by copying its parent and applying exactly one
// move; after that only the search annotations (values, best moves, depth) change.
type Board struct {
	size    int
	squares []Square // row-major: squares[y*size+x]
	turn    Square
	counts  Counts
	legal   []Move
	history string
	stables map[Square]map[int]struct{}
	wedges  map[Square]map[int]struct{}

	values Values
	best   BestMoves
	depth  int // search depth the values were computed for, -1 while unset
}

// NewBoard returns the initial position. Invalid sizes fall back to DefaultSize.
func NewBoard(size int) *Board {
	if err := ValidateSize(size); err != nil {
		log.Warn().Err(err).Msgf("using default board size %d", DefaultSize)
		size = DefaultSize
	}

	b := &Board{
		size:    size,
		squares: make([]Square, size*size),
		turn:    Player1,
		stables: map[Square]map[int]struct{}{Player1: {}, Player2: {}},
		wedges:  map[Square]map[int]struct{}{Player1: {}, Player2: {}},
		depth:   -1,
	}

	m := size / 2
	b.set(m, m, Player2)
	b.set(m-1, m-1, Player2)
	b.set(m-1, m, Player1)
	b.set(m, m-1, Player1)
	b.counts = Counts{size*size - 4, 2, 2}
	b.legal = b.legalMoves()

	return b
}

// Copy returns a deep copy of the position. Search annotations are not copied.
func (b *Board) Copy() *Board {
	squares := make([]Square, len(b.squares))
	copy(squares, b.squares)

	legal := make([]Move, len(b.legal))
	copy(legal, b.legal)

	return &Board{
		size:    b.size,
		squares: squares,
		turn:    b.turn,
		counts:  b.counts,
		legal:   legal,
		history: b.history,
		stables: copySets(b.stables),
		wedges:  copySets(b.wedges),
		depth:   -1,
	}
}

func copySets(sets map[Square]map[int]struct{}) map[Square]map[int]struct{} {
	out := make(map[Square]map[int]struct{}, len(sets))
	for player, set := range sets {
		c := make(map[int]struct{}, len(set))
		for k := range set {
			c[k] = struct{}{}
		}
		out[player] = c
	}
	return out
}

func (b *Board) Size() int { return b.size }
func (b *Board) Turn() Square { return b.turn }
func (b *Board) Counts() Counts { return b.counts }
func (b *Board) History() string { return b.history }
func (b *Board) BestMoves() BestMoves { return b.best }

// SearchedDepth is the depth the board's values were computed for, or -1.
func (b *Board) SearchedDepth() int { return b.depth }

// Values returns the search values and whether they have been set.
func (b *Board) Values() (Values, bool) {
	return b.values, b.depth >= 0
}

// Record stores the result of searching this board to the given depth.
func (b *Board) Record(values Values, best BestMoves, depth int) {
	b.values = values
	b.best = best
	b.depth = depth
}

// At returns the square at column x and row y, or OffBoard outside the grid.
func (b *Board) At(x, y int) Square {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return OffBoard
	}
	return b.squares[y*b.size+x]
}

// Squares returns a copy of the grid indexed [row][column].
func (b *Board) Squares() [][]Square {
	grid := make([][]Square, b.size)
	for y := range grid {
		grid[y] = make([]Square, b.size)
		copy(grid[y], b.squares[y*b.size:(y+1)*b.size])
	}
	return grid
}

func (b *Board) set(x, y int, s Square) {
	b.squares[y*b.size+x] = s
}

// LegalMoves returns the moves available to the side to move, or [Pass] when there are none.
// The slice is shared and must not be modified.
func (b *Board) LegalMoves() []Move {
	return b.legal
}

// IsLegal reports whether m is a legal move for the side to move.
func (b *Board) IsLegal(m Move) bool {
	if m == Pass {
		return len(b.legal) == 1 && b.legal[0] == Pass
	}
	x, y, err := ParseMove(string(m), b.size)
	if err != nil {
		return false
	}
	return b.flanks(x, y)
}

// flanks reports whether placing a disc for the side to move at (x, y) flips anything.
func (b *Board) flanks(x, y int) bool {
	if b.At(x, y) != Empty {
		return false
	}

	opponent := b.turn.Opponent()
	for _, d := range directions {
		cx, cy := x+d[0], y+d[1]
		if b.At(cx, cy) != opponent {
			continue
		}
		for b.At(cx, cy) == opponent {
			cx += d[0]
			cy += d[1]
		}
		if b.At(cx, cy) == b.turn {
			return true
		}
	}
	return false
}

func (b *Board) legalMoves() []Move {
	var moves []Move
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			if b.flanks(x, y) {
				moves = append(moves, MoveAt(x, y))
			}
		}
	}
	if len(moves) == 0 {
		return []Move{Pass}
	}
	return moves
}

// Play returns the position after m. The receiver is left untouched and nothing is mutated
// when m is malformed or illegal.
func (b *Board) Play(m Move) (*Board, error) {
	if _, _, err := ParseMove(string(m), b.size); err != nil {
		return nil, err
	}
	if !b.IsLegal(m) {
		return nil, errors.Wrapf(ErrIllegalMove, "%s is not legal for %s (legal: %s)", m, b.turn, joinMoves(b.legal))
	}

	next := b.Copy()
	next.doMove(m)
	return next, nil
}

// doMove applies m in place. m must be legal.
func (b *Board) doMove(m Move) {
	if m != Pass {
		x, y, err := ParseMove(string(m), b.size)
		if err != nil {
			panic(err)
		}

		opponent := b.turn.Opponent()
		for _, d := range directions {
			cx, cy := x+d[0], y+d[1]
			for b.At(cx, cy) == opponent {
				cx += d[0]
				cy += d[1]
			}
			if b.At(cx, cy) != b.turn {
				continue
			}
			// walk back to the origin flipping the run
			for cx, cy = cx-d[0], cy-d[1]; cx != x || cy != y; cx, cy = cx-d[0], cy-d[1] {
				b.set(cx, cy, b.turn)
				b.counts[opponent]--
				b.counts[b.turn]++
			}
		}

		b.set(x, y, b.turn)
		b.counts[Empty]--
		b.counts[b.turn]++
	}

	b.history += string(m)
	b.turn = b.turn.Opponent()
	b.legal = b.legalMoves()
}

// PieceDiff is the disc difference from the point of view of the side to move.
func (b *Board) PieceDiff() int {
	return b.counts[b.turn] - b.counts[b.turn.Opponent()]
}

// Full reports whether every cell holds a disc.
func (b *Board) Full() bool {
	return b.counts[Empty] == 0
}

// DoublePass reports whether the last two moves were both passes.
func (b *Board) DoublePass() bool {
	return strings.HasSuffix(b.history, string(Pass+Pass))
}

// Terminal reports whether the game is over in this position.
func (b *Board) Terminal() bool {
	return b.Full() || b.DoublePass()
}

// Winner returns the player with more discs, or Empty on a draw.
func (b *Board) Winner() Square {
	switch {
	case b.counts[Player1] > b.counts[Player2]:
		return Player1
	case b.counts[Player2] > b.counts[Player1]:
		return Player2
	default:
		return Empty
	}
}

// Stables returns the number of stable discs of a player.
func (b *Board) Stables(player Square) int {
	return len(b.stables[player])
}

// Wedges returns the number of wedge discs of a player.
func (b *Board) Wedges(player Square) int {
	return len(b.wedges[player])
}

func joinMoves(moves []Move) string {
	s := make([]string, len(moves))
	for i, m := range moves {
		s[i] = string(m)
	}
	return strings.Join(s, " ")
}
