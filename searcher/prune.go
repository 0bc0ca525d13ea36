package searcher

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Prune evicts every cached board that is neither an ancestor of current nor below it, and
// returns how many were evicted. The initial position is never evicted.
func (s *Searcher) Prune(current string) int {
	evicted := 0
	for history := range s.boards {
		if strings.HasPrefix(current, history) || strings.HasPrefix(history, current) {
			continue
		}
		delete(s.boards, history)
		evicted++
	}

	if evicted > 0 {
		log.Debug().Msgf("pruned %d boards off %q, %d left", evicted, current, len(s.boards))
	}
	return evicted
}
