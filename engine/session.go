package engine

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Option func(s *Session)

// Session is one game: the search cache and a cursor naming the current position. The cursor is
// a history string; boards are always looked up through the searcher.
type Session struct {
	size       int
	options    []searcher.Option
	searcher   *searcher.Searcher
	current    string
	lastMetric metrics.SearchMetric
}

var _ Engine = (*Session)(nil)

func WithSize(size int) Option {
	return func(s *Session) {
		s.size = size
	}
}

func WithSearchOptions(options ...searcher.Option) Option {
	return func(s *Session) {
		s.options = append(s.options, options...)
	}
}

func NewSession(options ...Option) *Session {
	s := &Session{size: game.DefaultSize}
	for _, option := range options {
		option(s)
	}
	s.searcher = searcher.New(s.size, s.options...)
	s.size = s.searcher.Root().Size()
	return s
}

// NewGame resets the cache to the initial position and searches it.
func (s *Session) NewGame() (*game.Board, error) {
	s.searcher.Reset()
	s.current = ""
	if err := s.expand(); err != nil {
		return nil, err
	}

	log.Info().Msgf("new %dx%d game, search depth %d", s.size, s.size, s.searcher.Depth())
	return s.CurrentBoard(), nil
}

// ApplyMove plays token for the side to move and searches the resulting position. Malformed
// tokens are rejected before illegal ones; nothing changes on error.
func (s *Session) ApplyMove(token string) (*game.Board, error) {
	move := game.NormalizeMove(token)
	if _, _, err := game.ParseMove(string(move), s.size); err != nil {
		return nil, err
	}

	b := s.CurrentBoard()
	if b.Terminal() {
		return nil, errors.WithStack(ErrGameOver)
	}
	if !b.IsLegal(move) {
		return nil, errors.Wrapf(game.ErrIllegalMove, "%s cannot play %s", b.Turn(), move)
	}

	mover := b.Turn()
	s.current += string(move)
	if err := s.expand(); err != nil {
		s.current = s.current[:len(s.current)-2]
		return nil, err
	}

	next := s.CurrentBoard()
	counts := next.Counts()
	log.Info().Msgf("%s played %s (%d-%d)", mover, move, counts[game.Player1], counts[game.Player2])
	if next.Terminal() {
		log.Info().Msgf("game over, winner: %s", next.Winner())
	}
	return next, nil
}

func (s *Session) expand() error {
	_, metric, err := s.searcher.Expand(s.current)
	if err != nil {
		return err
	}
	s.lastMetric = metric
	return nil
}

// CurrentBoard returns the board at the cursor.
func (s *Session) CurrentBoard() *game.Board {
	b, err := s.searcher.Board(s.current)
	if err != nil { // the cursor only ever advances through legal moves
		panic(err)
	}
	return b
}

func (s *Session) History() string {
	return s.current
}

func (s *Session) Size() int {
	return s.size
}

// Over reports whether the current position ends the game.
func (s *Session) Over() bool {
	return s.CurrentBoard().Terminal()
}

// BestMove returns the move the given personality prefers in the current position.
func (s *Session) BestMove(p game.Personality) (game.Move, error) {
	b := s.CurrentBoard()
	if b.Terminal() {
		return "", errors.WithStack(ErrGameOver)
	}
	move := b.BestMoves()[p]
	if move == "" { // searched to depth 0
		move = b.LegalMoves()[0]
	}
	return move, nil
}

// AIMove plays the best move of the personality assigned to the side to move.
func (s *Session) AIMove() (game.Move, *game.Board, error) {
	p := game.PersonalityFor(s.CurrentBoard().Turn())
	move, err := s.BestMove(p)
	if err != nil {
		return "", nil, err
	}
	b, err := s.ApplyMove(string(move))
	if err != nil {
		return "", nil, err
	}
	return move, b, nil
}

// LastMetric describes the most recent search.
func (s *Session) LastMetric() metrics.SearchMetric {
	return s.lastMetric
}

// Cached is the number of boards held by the search cache.
func (s *Session) Cached() int {
	return s.searcher.Len()
}
