package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

const (
	// DefaultK is the swing of a single 1v1 result.
	DefaultK = 50
	// StartingRating is assigned to a participant the first time it is seen.
	StartingRating = 1500
)

// WinExpectancy returns the probability that a player rated ra beats a player rated rb.
func WinExpectancy(ra, rb float64) float64 {
	return 1.0 / (math.Pow(10, (rb-ra)/400.0) + 1)
}

// Delta returns the rating change for player A.
// Ra - player A rating.
// Rb - player B rating.
// K - coefficient.
// Sa - points: 1 for win; 0.5 for draw; 0 for lose.
// Player B receives the negated value.
func Delta(ra, rb, k float64, sa Points) float64 {
	return k * (float64(sa) - WinExpectancy(ra, rb))
}
