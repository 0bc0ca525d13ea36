package player

import (
	"fmt"
	"math"
	"othello/game"

	"golang.org/x/exp/rand"
)

// Picker chooses a move for the side to move. Pick is never called on a finished game.
type Picker interface {
	Pick(b *game.Board) game.Move
	Name() string
}

// Observer is told about every move played in a match, by either side.
type Observer interface {
	Observe(move game.Move) error
}

type greedy struct{}

// NewGreedy returns a picker that plays the move leaving the mover with the largest disc lead.
// Ties keep the first move in enumeration order.
func NewGreedy() Picker {
	return greedy{}
}

func (greedy) Pick(b *game.Board) game.Move {
	moves := b.LegalMoves()
	best := moves[0]
	bestDiff := math.MinInt
	for _, move := range moves {
		next, err := b.Play(move)
		if err != nil {
			panic(err)
		}
		// next is seen from the opponent's side
		if diff := -next.PieceDiff(); diff > bestDiff {
			best, bestDiff = move, diff
		}
	}
	return best
}

func (greedy) Name() string {
	return "greedy"
}

type random struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandom returns a picker that plays a uniformly random legal move. The same seed replays the
// same choices.
func NewRandom(seed uint64) Picker {
	return &random{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *random) Pick(b *game.Board) game.Move {
	moves := b.LegalMoves()
	return moves[r.rng.Intn(len(moves))]
}

func (r *random) Name() string {
	return fmt.Sprintf("random(%d)", r.seed)
}
