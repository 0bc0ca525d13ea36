package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Move is a two character token: a column letter followed by a row character, or Pass.
type Move string

// Pass is played when the side to move has no legal move.
const Pass Move = "__"

const (
	columns = "abcdefghijklmnopqrstuvwxyz"
	// rows 1-9 then A-Q for rows 10 to 26
	rows = "123456789ABCDEFGHIJKLMNOPQ"
)

// MoveAt returns the token for column x and row y (both 0-based).
func MoveAt(x, y int) Move {
	return Move([]byte{columns[x], rows[y]})
}

// ParseMove decodes a token into 0-based coordinates on a board of the given size.
// Pass decodes to (-1, -1).
func ParseMove(token string, size int) (x, y int, err error) {
	if Move(token) == Pass {
		return -1, -1, nil
	}
	if len(token) != 2 {
		return 0, 0, errors.Wrapf(ErrMalformedMove, "%q must be two characters", token)
	}
	x = strings.IndexByte(columns, token[0])
	y = strings.IndexByte(rows, token[1])
	if x < 0 || y < 0 {
		return 0, 0, errors.Wrapf(ErrMalformedMove, "%q is not a coordinate", token)
	}
	if x >= size || y >= size {
		return 0, 0, errors.Wrapf(ErrMalformedMove, "%q is outside a %dx%d board", token, size, size)
	}
	return x, y, nil
}

// NormalizeMove maps user spellings onto tokens: "pass" becomes Pass and whitespace is trimmed.
func NormalizeMove(input string) Move {
	input = strings.TrimSpace(input)
	if strings.EqualFold(input, "pass") {
		return Pass
	}
	return Move(input)
}
