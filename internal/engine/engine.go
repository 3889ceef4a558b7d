// Package engine folds parsed matches into a rating table.
package engine

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/goserg/groupelo/internal/domain"
	"github.com/goserg/groupelo/internal/elo"
	"github.com/goserg/groupelo/internal/record"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

var ErrUnknownNormalization = errors.New("unknown normalization")

// Engine owns one rating table and one statistics table. It is not safe for
// concurrent use; matches must be applied in input order.
type Engine struct {
	k        float64
	norm     Normalization
	category string
	ratings  *Ratings
	stats    *StatsTable
	metrics  *Metrics
	log      *logrus.Entry
	applied  int
}

type Option func(*Engine)

func WithK(k float64) Option {
	return func(e *Engine) {
		if k > 0 {
			e.k = k
		}
	}
}

func WithStartingRating(rating float64) Option {
	return func(e *Engine) {
		e.ratings = NewRatings(rating)
	}
}

func WithNormalization(n Normalization) Option {
	return func(e *Engine) {
		e.norm = n
	}
}

// WithCategory labels logs and metrics of this engine.
func WithCategory(name string) Option {
	return func(e *Engine) {
		e.category = name
	}
}

func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(e *Engine) {
		e.log = l.WithFields(map[string]interface{}{
			"from": "engine",
		})
	}
}

func New(opts ...Option) *Engine {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	e := &Engine{
		k:       elo.DefaultK,
		norm:    NormalizeContests,
		ratings: NewRatings(elo.StartingRating),
		stats:   NewStatsTable(),
		log:     logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.category != "" {
		e.log = e.log.WithField("category", e.category)
	}
	return e
}

// Apply folds one match into the tables and returns the normalized deltas it committed.
// Every delta is computed against the ratings as they stood before the match.
func (e *Engine) Apply(m domain.Match) (map[string]float64, error) {
	if err := validate(m); err != nil {
		return nil, fmt.Errorf("match %q: %w", m.ID, err)
	}

	for _, side := range m.Winners {
		for _, token := range side {
			e.stats.record(token, true)
		}
	}
	for _, side := range m.Losers {
		for _, token := range side {
			e.stats.record(token, false)
		}
	}

	contests := Contests(m)
	deltas := make(map[string]float64)
	for _, c := range contests {
		delta := elo.Delta(e.ratings.Get(c.Self), e.ratings.Get(c.Opponent), e.k, c.Outcome)
		deltas[c.Self] += delta
		deltas[c.Opponent] -= delta
	}

	divisor := float64(e.norm.divisor(m, contests))
	var gained float64
	for name, delta := range deltas {
		deltas[name] = delta / divisor
		gained += math.Max(deltas[name], 0)
	}
	for name, delta := range deltas {
		e.ratings.add(name, delta)
	}
	e.applied++

	e.log.WithFields(logrus.Fields{
		"match":    m.ID,
		"line":     m.Line,
		"contests": len(contests),
		"divisor":  divisor,
	}).Debug("match applied")
	e.metrics.observeMatch(e.category, len(contests), gained)
	e.metrics.setParticipants(e.category, e.ratings.Len())
	return deltas, nil
}

func validate(m domain.Match) error {
	if len(m.Winners) == 0 {
		return fmt.Errorf("%w: no winners", record.ErrEmptySide)
	}
	if len(m.Losers) == 0 {
		return fmt.Errorf("%w: no losers", record.ErrEmptySide)
	}
	for _, sides := range [][]domain.Side{m.Winners, m.Losers} {
		for _, side := range sides {
			if len(side) == 0 {
				return record.ErrEmptySide
			}
		}
	}
	return nil
}

// Applied returns the number of matches folded so far.
func (e *Engine) Applied() int {
	return e.applied
}

func (e *Engine) Ratings() *Ratings {
	return e.ratings
}

func (e *Engine) Stats() *StatsTable {
	return e.stats
}

// Players joins both tables into report rows, in name order.
func (e *Engine) Players() []domain.Player {
	names := mapset.NewThreadUnsafeSet[string](e.ratings.Names()...)
	for name := range e.stats.values {
		names.Add(name)
	}
	players := make([]domain.Player, 0, names.Cardinality())
	for _, name := range sortedSlice(names) {
		s := e.stats.Get(name)
		players = append(players, domain.Player{
			Name:   name,
			Rating: e.ratings.Get(name),
			Wins:   s.Wins,
			Losses: s.Losses,
			Kills:  s.Kills,
			Maims:  s.Maims,
		})
	}
	return players
}

func sortedSlice(s mapset.Set[string]) []string {
	out := s.ToSlice()
	sort.Strings(out)
	return out
}
