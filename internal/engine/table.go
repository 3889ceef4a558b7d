package engine

import (
	"sort"

	"github.com/goserg/groupelo/internal/record"
)

// Ratings maps a canonical participant name to its current rating.
type Ratings struct {
	start  float64
	values map[string]float64
}

func NewRatings(start float64) *Ratings {
	return &Ratings{
		start:  start,
		values: make(map[string]float64),
	}
}

// Get returns the rating for name, inserting the starting rating on first use.
func (r *Ratings) Get(name string) float64 {
	rating, ok := r.values[name]
	if !ok {
		rating = r.start
		r.values[name] = rating
	}
	return rating
}

// Lookup reads a rating without inserting it.
func (r *Ratings) Lookup(name string) (float64, bool) {
	rating, ok := r.values[name]
	return rating, ok
}

func (r *Ratings) add(name string, delta float64) {
	r.values[name] = r.Get(name) + delta
}

func (r *Ratings) Len() int {
	return len(r.values)
}

// Names returns all known participants in lexical order.
func (r *Ratings) Names() []string {
	names := make([]string, 0, len(r.values))
	for name := range r.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stats is the per participant tally kept alongside the rating.
type Stats struct {
	Wins   int
	Losses int
	Kills  int
	Maims  int
}

type StatsTable struct {
	values map[string]*Stats
}

func NewStatsTable() *StatsTable {
	return &StatsTable{values: make(map[string]*Stats)}
}

// Get returns a copy of the stats for a canonical name.
func (t *StatsTable) Get(name string) Stats {
	if s, ok := t.values[name]; ok {
		return *s
	}
	return Stats{}
}

func (t *StatsTable) record(token string, won bool) {
	name := record.BareName(token)
	s, ok := t.values[name]
	if !ok {
		s = &Stats{}
		t.values[name] = s
	}
	if won {
		s.Wins++
	} else {
		s.Losses++
	}
	tally := record.CountMarks(token)
	s.Kills += tally.Kills
	s.Maims += tally.Maims
}
