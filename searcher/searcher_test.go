package searcher

import (
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

/*
- resolution: cached history -> same board; missing history -> materialized with its ancestors;
  odd, malformed or illegal history -> error, cache untouched
- look-ahead:
	- depth 0 -> instant values under both weightings
	- terminal -> decided payoff, no best move
	- otherwise -> per-weighting maximum, ties keep the first move
- reuse: board searched at least as deep -> not searched again
- determinism: fresh caches agree on every board
*/

func TestNew(t *testing.T) {
	s := New(8)

	require.Equal(t, 1, s.Len(), "Cache should only hold the initial position")
	require.Equal(t, DefaultDepth, s.Depth())
	require.Equal(t, game.DefaultPersonalities, s.Personalities())
	require.Equal(t, game.Counts{60, 2, 2}, s.Root().Counts())

	t.Run("invalid sizes fall back to the default board", func(t *testing.T) {
		require.Equal(t, game.DefaultSize, New(7).Root().Size())
	})

	t.Run("negative depth option is ignored", func(t *testing.T) {
		require.Equal(t, DefaultDepth, New(8, WithDepth(-1)).Depth())
	})
}

func TestBoard(t *testing.T) {
	t.Run("returns the same board for the same history", func(t *testing.T) {
		s := New(8)

		first, err := s.Board("d3")
		require.NoError(t, err)
		second, err := s.Board("d3")
		require.NoError(t, err)

		require.Same(t, first, second)
		require.Equal(t, 2, s.Len())
	})

	t.Run("materializes missing ancestors", func(t *testing.T) {
		s := New(8)

		b, err := s.Board("d3c3c4")

		require.NoError(t, err)
		require.Equal(t, "d3c3c4", b.History())
		require.Equal(t, 4, s.Len())
		parent, err := s.Board("d3c3")
		require.NoError(t, err)
		require.Equal(t, game.Player1, parent.Turn())
	})

	t.Run("rejects histories that do not name a position", func(t *testing.T) {
		s := New(8)

		_, err := s.Board("d3c")
		require.ErrorIs(t, err, ErrUnknownHistory)

		_, err = s.Board("a1")
		require.ErrorIs(t, err, game.ErrIllegalMove)

		_, err = s.Board("d3zz")
		require.ErrorIs(t, err, game.ErrMalformedMove)

		require.Equal(t, 2, s.Len(), "Only the legal prefix should be cached")
	})
}

func TestLookAhead(t *testing.T) {
	t.Run("depth zero scores the position under both weightings", func(t *testing.T) {
		s := New(8)

		values, err := s.LookAhead("", 0)

		require.NoError(t, err)
		require.Equal(t, game.Values{20, 32}, values)
		require.Equal(t, game.BestMoves{}, s.Root().BestMoves())
		require.Equal(t, 0, s.Root().SearchedDepth())
	})

	t.Run("one ply keeps the first of equal replies", func(t *testing.T) {
		s := New(8)

		values, err := s.LookAhead("", 1)

		require.NoError(t, err)
		// every opening leaves Player2 trailing 1 to 4 with three replies
		require.Equal(t, game.Values{-3*3 + 3*5, -3*2 + 3*8}, values)
		require.Equal(t, game.BestMoves{"c4", "c4"}, s.Root().BestMoves())
		require.Equal(t, 5, s.Len())

		got, ok := s.Root().Values()
		require.True(t, ok)
		require.Equal(t, values, got)
	})

	t.Run("each weighting keeps its own maximum", func(t *testing.T) {
		s := New(8)

		_, err := s.LookAhead("", 3)
		require.NoError(t, err)

		for history, b := range s.boards {
			if b.SearchedDepth() < 1 || b.Terminal() {
				continue
			}
			values, _ := b.Values()
			best := b.BestMoves()
			for p := range values {
				require.NotEmpty(t, best[p], "history %q", history)
				child := s.boards[history+string(best[p])]
				require.NotNil(t, child)
				childValues, _ := child.Values()
				require.Equal(t, values[p], childValues[p], "best child should carry the value for %q", history)

				for i, m := range b.LegalMoves() {
					other, _ := s.boards[history+string(m)].Values()
					require.LessOrEqual(t, other[p], values[p])
					if other[p] == values[p] {
						// the first move reaching the maximum wins
						require.Equal(t, best[p], m, "history %q move %d", history, i)
						break
					}
				}
			}
		}
	})

	t.Run("rejects negative depth", func(t *testing.T) {
		_, err := New(8).LookAhead("", -1)
		require.ErrorIs(t, err, ErrNegativeDepth)
	})

	t.Run("rejects unknown histories", func(t *testing.T) {
		_, err := New(8).LookAhead("h8", 2)
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("finished games score the decided payoff", func(t *testing.T) {
		s := New(4)
		history := playToEnd(t, s.Root())

		values, err := s.LookAhead(history, 3)
		require.NoError(t, err)

		b, err := s.Board(history)
		require.NoError(t, err)
		require.True(t, b.Terminal())
		require.Equal(t, b.TerminalValues(), values)
		require.Contains(t, []int{-game.TerminalScore, 0, game.TerminalScore}, values[0])
		require.Equal(t, game.BestMoves{}, b.BestMoves())
	})

	t.Run("searches every position of a finished game", func(t *testing.T) {
		s := New(4)
		history := playToEnd(t, s.Root())

		for cut := len(history) - 2; cut >= 0; cut -= 2 {
			_, err := s.LookAhead(history[:cut], 2)
			require.NoError(t, err)
		}
		for h, b := range s.boards {
			counts := b.Counts()
			require.Equal(t, 16, counts[game.Empty]+counts[game.Player1]+counts[game.Player2], "history %q", h)
		}
	})
}

func TestDeterminism(t *testing.T) {
	first := New(6, WithDepth(3))
	second := New(6, WithDepth(3))

	for _, s := range []*Searcher{first, second} {
		for _, history := range []string{"", "b3", "b3b2"} {
			_, _, err := s.Expand(history)
			require.NoError(t, err)
		}
	}

	require.Equal(t, first.Len(), second.Len())
	for history, b := range first.boards {
		other, ok := second.boards[history]
		require.True(t, ok, "history %q", history)
		v1, ok1 := b.Values()
		v2, ok2 := other.Values()
		require.Equal(t, ok1, ok2)
		require.Equal(t, v1, v2, "history %q", history)
		require.Equal(t, b.BestMoves(), other.BestMoves(), "history %q", history)
	}
}

func TestExpand(t *testing.T) {
	t.Run("collects metrics", func(t *testing.T) {
		s := New(8, WithDepth(1), WithMetrics())

		values, metric, err := s.Expand("")

		require.NoError(t, err)
		require.Equal(t, game.Values{6, 18}, values)
		require.Equal(t, 1, metric.Depth)
		require.Equal(t, 4, metric.BoardsCreated)
		require.Equal(t, 4, metric.LeafEvaluations)
		require.Equal(t, 5, metric.CacheSize)
		require.Zero(t, metric.Reused)
	})

	t.Run("does not search a board twice at the same depth", func(t *testing.T) {
		s := New(8, WithDepth(1), WithMetrics())
		_, _, err := s.Expand("")
		require.NoError(t, err)

		values, metric, err := s.Expand("")

		require.NoError(t, err)
		require.Equal(t, game.Values{6, 18}, values)
		require.Equal(t, 1, metric.Reused)
		require.Zero(t, metric.BoardsCreated)
		require.Zero(t, metric.LeafEvaluations)
	})

	t.Run("deepens boards first reached as leaves", func(t *testing.T) {
		s := New(8, WithDepth(2))
		_, _, err := s.Expand("")
		require.NoError(t, err)
		b, err := s.Board("d3c3")
		require.NoError(t, err)
		require.Equal(t, 0, b.SearchedDepth())

		_, _, err = s.Expand("d3")
		require.NoError(t, err)

		require.Equal(t, 1, b.SearchedDepth())
		require.NotEmpty(t, b.BestMoves()[game.First])
	})

	t.Run("pruning evicts boards off the played line", func(t *testing.T) {
		s := New(8, WithDepth(1), WithPruning(), WithMetrics())
		_, _, err := s.Expand("")
		require.NoError(t, err)
		require.Equal(t, 5, s.Len())

		_, metric, err := s.Expand("d3")

		require.NoError(t, err)
		require.Equal(t, 3, metric.Pruned, "c4, e6 and f5 should be evicted")
		require.Equal(t, 5, s.Len(), "root, d3 and its three replies")
		for _, h := range []string{"", "d3", "d3c3", "d3c5", "d3e3"} {
			_, ok := s.boards[h]
			require.True(t, ok, h)
		}
	})
}

func TestPrune(t *testing.T) {
	s := New(8)
	for _, h := range []string{"c4c3", "c4e3", "d3c5", "f5f4"} {
		_, err := s.Board(h)
		require.NoError(t, err)
	}
	require.Equal(t, 8, s.Len())

	evicted := s.Prune("c4")

	require.Equal(t, 4, evicted, "d3, d3c5, f5 and f5f4")
	require.Equal(t, 4, s.Len())
	require.NotNil(t, s.Root())
}

// playToEnd plays the first legal move until the game is over and returns the history.
func playToEnd(t *testing.T, b *game.Board) string {
	t.Helper()
	for !b.Terminal() {
		next, err := b.Play(b.LegalMoves()[0])
		require.NoError(t, err)
		b = next
	}
	return b.History()
}
