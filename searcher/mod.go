package searcher

import "github.com/pkg/errors"

// DefaultDepth is the number of plies searched below the current position.
const DefaultDepth = 4

var (
	ErrNegativeDepth  = errors.New("negative search depth")
	ErrUnknownHistory = errors.New("history does not name a position")
)
