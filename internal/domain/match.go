package domain

import mapset "github.com/deckarep/golang-set/v2"

// Side is a team of one or more participants sharing one outcome.
// Tokens keep their trailing annotation marks.
type Side []string

// Match is one parsed record. Losers are ordered.
type Match struct {
	ID      string
	Line    int
	Tags    mapset.Set[string]
	Winners []Side
	Losers  []Side
}

// WinnerTokens flattens all winning sides.
func (m Match) WinnerTokens() []string {
	return flatten(m.Winners)
}

// LoserTokens flattens all losing sides.
func (m Match) LoserTokens() []string {
	return flatten(m.Losers)
}

// LargestSide returns the member count of the biggest side in the match.
func (m Match) LargestSide() int {
	largest := 0
	for _, sides := range [][]Side{m.Winners, m.Losers} {
		for _, side := range sides {
			largest = max(largest, len(side))
		}
	}
	return largest
}

// HasTag reports whether the record carried the given category tag.
func (m Match) HasTag(tag string) bool {
	return m.Tags != nil && m.Tags.Contains(tag)
}

func flatten(sides []Side) []string {
	var tokens []string
	for _, side := range sides {
		tokens = append(tokens, side...)
	}
	return tokens
}
