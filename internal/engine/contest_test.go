package engine

import (
	"testing"

	"github.com/goserg/groupelo/internal/domain"
	"github.com/goserg/groupelo/internal/elo"

	"github.com/stretchr/testify/assert"
)

func TestContests(t *testing.T) {
	tests := []struct {
		name      string
		match     domain.Match
		want      []Contest
		opponents []int
	}{
		{
			name:  "one on one",
			match: domain.Match{Winners: []domain.Side{{"Alice"}}, Losers: []domain.Side{{"Bob"}}},
			want: []Contest{
				{Self: "Alice", Opponent: "Bob", Outcome: elo.Win},
			},
			opponents: []int{1},
		},
		{
			name:  "team loser",
			match: domain.Match{Winners: []domain.Side{{"Alice"}}, Losers: []domain.Side{{"Bob", "Carol"}}},
			want: []Contest{
				{Self: "Alice", Opponent: "Bob", Outcome: elo.Win},
				{Self: "Alice", Opponent: "Carol", Outcome: elo.Win},
			},
			opponents: []int{1},
		},
		{
			name:  "two losing sides",
			match: domain.Match{Winners: []domain.Side{{"Alice"}}, Losers: []domain.Side{{"Bob"}, {"Carol"}}},
			want: []Contest{
				{Self: "Alice", Opponent: "Bob", Outcome: elo.Win},
				{Self: "Bob", Opponent: "Carol", Outcome: elo.Draw},
				{Self: "Alice", Opponent: "Carol", Outcome: elo.Win},
			},
			opponents: []int{2, 1},
		},
		{
			name: "marks are stripped",
			match: domain.Match{
				Winners: []domain.Side{{"Dave!!*", "Eve"}},
				Losers:  []domain.Side{{"Frank*"}, {"Gus", "Hal!"}},
			},
			want: []Contest{
				{Self: "Dave", Opponent: "Frank", Outcome: elo.Win},
				{Self: "Eve", Opponent: "Frank", Outcome: elo.Win},
				{Self: "Frank", Opponent: "Gus", Outcome: elo.Draw},
				{Self: "Frank", Opponent: "Hal", Outcome: elo.Draw},
				{Self: "Dave", Opponent: "Gus", Outcome: elo.Win},
				{Self: "Eve", Opponent: "Gus", Outcome: elo.Win},
				{Self: "Dave", Opponent: "Hal", Outcome: elo.Win},
				{Self: "Eve", Opponent: "Hal", Outcome: elo.Win},
			},
			opponents: []int{4, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contests(tt.match))
			for i, want := range tt.opponents {
				assert.Equal(t, want, OpponentCount(tt.match, i), "losing side %d", i)
			}
		})
	}
}

func TestWinnerAndLoserPairs(t *testing.T) {
	m := domain.Match{
		Winners: []domain.Side{{"A"}},
		Losers:  []domain.Side{{"B"}, {"C"}, {"D", "E"}},
	}
	assert.Len(t, WinnerPairs(m), 4)
	assert.Equal(t, []Contest{
		{Self: "B", Opponent: "C", Outcome: elo.Draw},
		{Self: "B", Opponent: "D", Outcome: elo.Draw},
		{Self: "B", Opponent: "E", Outcome: elo.Draw},
		{Self: "C", Opponent: "D", Outcome: elo.Draw},
		{Self: "C", Opponent: "E", Outcome: elo.Draw},
	}, LoserPairs(m))
	assert.Len(t, Contests(m), len(WinnerPairs(m))+len(LoserPairs(m)))
}

func TestMultipleWinningSides(t *testing.T) {
	m := domain.Match{
		Winners: []domain.Side{{"A"}, {"B"}},
		Losers:  []domain.Side{{"C"}},
	}
	assert.Equal(t, []Contest{
		{Self: "A", Opponent: "C", Outcome: elo.Win},
		{Self: "B", Opponent: "C", Outcome: elo.Win},
	}, Contests(m))
	assert.Equal(t, 2, OpponentCount(m, 0))
}

func TestParseNormalization(t *testing.T) {
	n, err := ParseNormalization("")
	assert.NoError(t, err)
	assert.Equal(t, NormalizeContests, n)

	n, err = ParseNormalization("last-loser")
	assert.NoError(t, err)
	assert.Equal(t, NormalizeLastLoser, n)

	_, err = ParseNormalization("per-player")
	assert.ErrorIs(t, err, ErrUnknownNormalization)
}
