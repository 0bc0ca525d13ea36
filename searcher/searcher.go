package searcher

import (
	"othello/experiments/metrics"
	"othello/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher expands the game tree below a position to a fixed depth, annotating every internal
// board with the best move and value under each personality. Boards are cached by history and
// owned by the searcher; the cache only grows unless pruning is enabled, bounded by
// branching^depth new boards per ply played.
//
// A Searcher is not safe for concurrent use.
type Searcher struct {
	size          int
	depth         int
	personalities [2]game.Weights
	prune         bool
	boards        map[string]*game.Board
	metrics       metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithPersonalities(personalities [2]game.Weights) Option {
	return func(s *Searcher) {
		s.personalities = personalities
	}
}

// WithPruning drops every cached board off the path through the expanded position before each
// expansion.
func WithPruning() Option {
	return func(s *Searcher) {
		s.prune = true
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// New returns a searcher whose cache holds the initial position of a board of the given size.
func New(size int, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		size:          size,
		depth:         DefaultDepth,
		personalities: game.DefaultPersonalities,
		metrics:       metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	s.Reset()
	return s
}

// Reset empties the cache down to the initial position.
func (s *Searcher) Reset() {
	root := game.NewBoard(s.size)
	s.size = root.Size()
	s.boards = map[string]*game.Board{"": root}
}

func (s *Searcher) Depth() int {
	return s.depth
}

func (s *Searcher) Personalities() [2]game.Weights {
	return s.personalities
}

// Len is the number of cached boards.
func (s *Searcher) Len() int {
	return len(s.boards)
}

func (s *Searcher) Root() *game.Board {
	return s.boards[""]
}

// Board returns the cached board for history, materializing it and any missing ancestors from
// the closest cached one. The same board is returned every time for the same history.
func (s *Searcher) Board(history string) (*game.Board, error) {
	if b, ok := s.boards[history]; ok {
		s.metrics.AddCacheHit()
		return b, nil
	}
	if len(history)%2 != 0 {
		return nil, errors.Wrapf(ErrUnknownHistory, "%q is not a sequence of two character moves", history)
	}

	cut := len(history) - 2
	parent, err := s.Board(history[:cut])
	if err != nil {
		return nil, err
	}
	b, err := parent.Play(game.Move(history[cut:]))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot reach %q", history)
	}

	s.boards[history] = b
	s.metrics.AddBoard()
	return b, nil
}

// LookAhead searches the position named by history to the given depth and returns its values.
// A board already searched at least that deep is not searched again.
func (s *Searcher) LookAhead(history string, depth int) (game.Values, error) {
	if depth < 0 {
		return game.Values{}, errors.Wrapf(ErrNegativeDepth, "depth %d", depth)
	}
	if _, err := s.Board(history); err != nil {
		return game.Values{}, err
	}
	return s.lookAhead(history, depth), nil
}

func (s *Searcher) lookAhead(history string, depth int) game.Values {
	b, err := s.Board(history)
	if err != nil { // children are built from legal moves only
		panic(err)
	}

	if b.SearchedDepth() >= depth {
		s.metrics.AddReuse()
		values, _ := b.Values()
		return values
	}

	if depth == 0 {
		values := b.InstantValues(s.personalities)
		b.Record(values, game.BestMoves{}, 0)
		s.metrics.AddLeaf()
		return values
	}

	if b.Terminal() {
		values := b.TerminalValues()
		b.Record(values, game.BestMoves{}, depth)
		s.metrics.AddTerminal()
		return values
	}

	var values game.Values
	var best game.BestMoves
	for i, move := range b.LegalMoves() {
		v := s.lookAhead(history+string(move), depth-1)
		if i == 0 {
			values = v
			best = game.BestMoves{move, move}
			continue
		}
		// strictly greater: ties keep the earlier move
		for p := range values {
			if v[p] > values[p] {
				values[p] = v[p]
				best[p] = move
			}
		}
	}
	b.Record(values, best, depth)
	return values
}

// Expand searches history to the configured depth, pruning first when enabled, and reports
// what the expansion did.
func (s *Searcher) Expand(history string) (game.Values, metrics.SearchMetric, error) {
	if s.prune {
		s.metrics.AddPruned(s.Prune(history))
	}

	s.metrics.Start(s.depth)
	values, err := s.LookAhead(history, s.depth)
	metric := s.metrics.Complete(len(s.boards))
	if err != nil {
		return game.Values{}, metric, err
	}

	log.Debug().
		Str("history", history).
		Int("depth", s.depth).
		Int("cached", len(s.boards)).
		Ints("values", values[:]).
		Msg("expanded position")

	return values, metric, nil
}
