package domain

// Player is one row of a final rating table.
type Player struct {
	Name   string
	Rating float64
	Wins   int
	Losses int
	Kills  int
	Maims  int
}
