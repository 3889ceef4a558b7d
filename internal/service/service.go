package service

import (
	"context"
	"fmt"

	"github.com/goserg/groupelo/internal/category"
	"github.com/goserg/groupelo/internal/config"
	"github.com/goserg/groupelo/internal/domain"
	"github.com/goserg/groupelo/internal/engine"
	"github.com/goserg/groupelo/internal/record"
	"github.com/goserg/groupelo/internal/report"
	"github.com/goserg/groupelo/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RatingService struct {
	cfg     config.Config
	source  storage.RecordSource
	parser  *record.Parser
	norm    engine.Normalization
	metrics *engine.Metrics
	logger  *logrus.Logger
	log     *logrus.Entry
}

// Run is the outcome of one pass over all records.
type Run struct {
	ID         uuid.UUID
	Categories []report.Category
}

type Option func(*RatingService)

func WithMetrics(m *engine.Metrics) Option {
	return func(s *RatingService) {
		s.metrics = m
	}
}

// New validates cfg up front so that an unknown category fails before any record is read.
func New(l *logrus.Logger, cfg config.Config, source storage.RecordSource, opts ...Option) (*RatingService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	norm, err := engine.ParseNormalization(cfg.Engine.Normalization)
	if err != nil {
		return nil, err
	}
	s := &RatingService{
		cfg:    cfg,
		source: source,
		parser: record.NewParser(record.WithCategoryFields(cfg.Record.CategoryFields)),
		norm:   norm,
		logger: l,
		log: l.WithFields(map[string]interface{}{
			"from": "rating-service",
		}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Rate parses every record, then folds them in order into one fresh engine per category.
func (s *RatingService) Rate(ctx context.Context) (Run, error) {
	records, err := s.source.ListRecords(ctx)
	if err != nil {
		return Run{}, fmt.Errorf("read records: %w", err)
	}
	matches, err := s.parse(records)
	if err != nil {
		return Run{}, err
	}

	run := Run{ID: uuid.New()}
	log := s.log.WithField("run", run.ID)
	log.WithFields(logrus.Fields{
		"records": len(records),
		"matches": len(matches),
	}).Info("records parsed")

	for _, name := range s.cfg.Report.Categories {
		result, err := s.rateCategory(name, matches)
		if err != nil {
			return Run{}, err
		}
		log.WithFields(logrus.Fields{
			"category": name,
			"matches":  result.Matches,
			"players":  len(result.Players),
		}).Info("category rated")
		run.Categories = append(run.Categories, result)
	}
	return run, nil
}

func (s *RatingService) parse(records []storage.Record) ([]domain.Match, error) {
	matches := make([]domain.Match, 0, len(records))
	for _, r := range records {
		m, skip, err := s.parser.Parse(r.Text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.Line, err)
		}
		if skip {
			continue
		}
		m.Line = r.Line
		matches = append(matches, m)
	}
	return matches, nil
}

func (s *RatingService) rateCategory(name string, matches []domain.Match) (report.Category, error) {
	filter, err := category.Lookup(name)
	if err != nil {
		return report.Category{}, err
	}
	eng := engine.New(
		engine.WithK(s.cfg.Engine.K),
		engine.WithStartingRating(s.cfg.Engine.StartingRating),
		engine.WithNormalization(s.norm),
		engine.WithCategory(name),
		engine.WithMetrics(s.metrics),
		engine.WithLogger(s.logger),
	)
	for _, m := range matches {
		if !filter(m) {
			continue
		}
		if _, err := eng.Apply(m); err != nil {
			return report.Category{}, fmt.Errorf("line %d: %w", m.Line, err)
		}
	}
	players := eng.Players()
	report.Sort(players)
	return report.Category{
		Name:    name,
		Matches: eng.Applied(),
		Players: players,
	}, nil
}
