package engine

import (
	"othello/game"

	"github.com/pkg/errors"
)

// ErrGameOver is returned for moves played after the game has ended.
var ErrGameOver = errors.New("game is over - no moves allowed")

// Engine is what the presentation layer drives: it never holds a board beyond one call.
type Engine interface {
	NewGame() (*game.Board, error)
	ApplyMove(token string) (*game.Board, error)
	CurrentBoard() *game.Board
}
