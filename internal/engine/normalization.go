package engine

import (
	"fmt"

	"github.com/goserg/groupelo/internal/domain"
)

// Normalization selects the divisor applied to every accumulated delta of a match.
type Normalization string

const (
	// NormalizeContests divides by the total number of sub-contests.
	NormalizeContests Normalization = "contests"
	// NormalizeLastLoser divides by the opponent count of the last losing side,
	// reproducing reports produced by the historical groupelo script.
	NormalizeLastLoser Normalization = "last-loser"
)

func ParseNormalization(s string) (Normalization, error) {
	switch n := Normalization(s); n {
	case NormalizeContests, NormalizeLastLoser:
		return n, nil
	case "":
		return NormalizeContests, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNormalization, s)
}

func (n Normalization) divisor(m domain.Match, contests []Contest) int {
	if n == NormalizeLastLoser {
		return OpponentCount(m, len(m.Losers)-1)
	}
	return len(contests)
}
