package game

import "github.com/pkg/errors"

var (
	// ErrInvalidBoardSize is returned for sizes that are odd, below MinSize or above MaxSize.
	ErrInvalidBoardSize = errors.New("invalid board size")
	// ErrMalformedMove is returned for tokens outside the coordinate grammar or the grid.
	ErrMalformedMove = errors.New("malformed move token")
	// ErrIllegalMove is returned for well-formed moves that are not legal in the position.
	ErrIllegalMove = errors.New("illegal move")
)

// ValidateSize reports whether size can be used for a board.
func ValidateSize(size int) error {
	if size%2 == 1 || size < MinSize || size > MaxSize {
		return errors.Wrapf(ErrInvalidBoardSize, "size %d must be even and between %d and %d", size, MinSize, MaxSize)
	}
	return nil
}
