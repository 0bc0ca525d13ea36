package player

import (
	"context"
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of one match.
type Result struct {
	Winner  game.Square // Empty on a draw
	Counts  game.Counts
	History string
	Moves   []metrics.MoveMetric
	Start   time.Time
	End     time.Time
}

func (r Result) GameMetric() metrics.GameMetric {
	return metrics.GameMetric{
		StartingPlayer: game.Player1,
		Winner:         r.Winner,
		Counts:         r.Counts,
		StartTime:      r.Start,
		EndTime:        r.End,
		Duration:       r.End.Sub(r.Start),
		TotalMoves:     len(r.Moves),
	}
}

type metered interface {
	LastMetric() metrics.SearchMetric
}

// Match plays p1 (Player1) against p2 (Player2) on a fresh board until two passes in a row or a
// full board.
func Match(ctx context.Context, p1, p2 Picker, size int) (Result, error) {
	pickers := map[game.Square]Picker{game.Player1: p1, game.Player2: p2}
	b := game.NewBoard(size)
	result := Result{Start: time.Now()}
	observers := []Picker{p1}
	if p2 != p1 {
		observers = append(observers, p2)
	}

	log.Debug().Msgf("match %s vs %s on %dx%d", p1.Name(), p2.Name(), b.Size(), b.Size())

	for step := 1; !b.Terminal(); step++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		turn := b.Turn()
		picker := pickers[turn]
		start := time.Now()
		move := picker.Pick(b)
		elapsed := time.Since(start)

		next, err := b.Play(move)
		if err != nil {
			return result, errors.Wrapf(err, "%s at step %d", picker.Name(), step)
		}

		// searching pickers do their work while observing, so their own timing is kept
		metric := metrics.SearchMetric{Duration: elapsed}
		if m, ok := picker.(metered); ok {
			metric = m.LastMetric()
		}
		result.Moves = append(result.Moves, metrics.MoveMetric{
			Step:         step,
			Player:       turn,
			Move:         move,
			SearchMetric: metric,
		})

		for _, p := range observers {
			if o, ok := p.(Observer); ok {
				if err := o.Observe(move); err != nil {
					return result, errors.Wrapf(err, "%s cannot observe %s", p.Name(), move)
				}
			}
		}
		b = next
	}

	result.End = time.Now()
	result.Winner = b.Winner()
	result.Counts = b.Counts()
	result.History = b.History()
	return result, nil
}
