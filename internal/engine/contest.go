package engine

import (
	"github.com/goserg/groupelo/internal/domain"
	"github.com/goserg/groupelo/internal/elo"
	"github.com/goserg/groupelo/internal/record"
)

// Contest is one effective 1v1 comparison derived from a match.
// Self and Opponent are canonical names; Outcome is from Self's point of view.
type Contest struct {
	Self     string
	Opponent string
	Outcome  elo.Points
}

// Contests enumerates every sub-contest of a match. For each loser, in losers
// order, it yields the loser's games against all winners followed by draws
// against members of strictly later losing sides. Winners are always Self of
// their pairs. The order fixes the floating point accumulation order.
func Contests(m domain.Match) []Contest {
	winners := bareNames(m.WinnerTokens())
	var contests []Contest
	for i, side := range m.Losers {
		for _, token := range side {
			loser := record.BareName(token)
			for _, winner := range winners {
				contests = append(contests, Contest{Self: winner, Opponent: loser, Outcome: elo.Win})
			}
			for _, later := range m.Losers[i+1:] {
				for _, other := range later {
					contests = append(contests, Contest{Self: loser, Opponent: record.BareName(other), Outcome: elo.Draw})
				}
			}
		}
	}
	return contests
}

// WinnerPairs lists the winner-vs-loser sub-contests.
func WinnerPairs(m domain.Match) []Contest {
	return filter(Contests(m), elo.Win)
}

// LoserPairs lists the loser-vs-later-loser draws.
func LoserPairs(m domain.Match) []Contest {
	return filter(Contests(m), elo.Draw)
}

// OpponentCount is the number of sub-contests a member of losing side i takes part in
// as the current loser: every winner plus every member of later losing sides.
func OpponentCount(m domain.Match, side int) int {
	n := len(m.WinnerTokens())
	if side < 0 || side >= len(m.Losers) {
		return n
	}
	for _, later := range m.Losers[side+1:] {
		n += len(later)
	}
	return n
}

func filter(contests []Contest, outcome elo.Points) []Contest {
	var out []Contest
	for _, c := range contests {
		if c.Outcome == outcome {
			out = append(out, c)
		}
	}
	return out
}

func bareNames(tokens []string) []string {
	names := make([]string, len(tokens))
	for i, token := range tokens {
		names[i] = record.BareName(token)
	}
	return names
}
