package player

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"strings"

	"github.com/pkg/errors"
)

// Searching plays the engine's best move for one personality. It owns a session that follows the
// game through Observe; Pick catches up on any moves it was not told about.
type Searching struct {
	personality game.Personality
	session     *engine.Session
}

var (
	_ Picker   = (*Searching)(nil)
	_ Observer = (*Searching)(nil)
)

func NewSearching(personality game.Personality, options ...engine.Option) (*Searching, error) {
	session := engine.NewSession(options...)
	if _, err := session.NewGame(); err != nil {
		return nil, err
	}
	return &Searching{
		personality: personality,
		session:     session,
	}, nil
}

func (s *Searching) Pick(b *game.Board) game.Move {
	if err := s.sync(b.History()); err != nil {
		panic(errors.Wrapf(err, "%s cannot follow %q", s.Name(), b.History()))
	}
	move, err := s.session.BestMove(s.personality)
	if err != nil {
		panic(err)
	}
	return move
}

func (s *Searching) Observe(move game.Move) error {
	_, err := s.session.ApplyMove(string(move))
	return err
}

func (s *Searching) sync(history string) error {
	current := s.session.History()
	if !strings.HasPrefix(history, current) {
		if _, err := s.session.NewGame(); err != nil {
			return err
		}
		current = ""
	}
	for i := len(current); i < len(history); i += 2 {
		if _, err := s.session.ApplyMove(history[i : i+2]); err != nil {
			return err
		}
	}
	return nil
}

// LastMetric describes the search behind the latest pick.
func (s *Searching) LastMetric() metrics.SearchMetric {
	return s.session.LastMetric()
}

func (s *Searching) Session() *engine.Session {
	return s.session
}

func (s *Searching) Name() string {
	return fmt.Sprintf("search(%s)", s.personality)
}
