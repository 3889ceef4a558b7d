// Package record turns raw match lines into domain matches.
package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goserg/groupelo/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	FieldSeparator = ","
	TeamSeparator  = "&"
	CommentPrefix  = "#"
)

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrEmptySide       = errors.New("empty side")
	ErrEmptyName       = errors.New("empty participant name")
)

type Parser struct {
	categoryFields int
}

type Option func(*Parser)

// WithCategoryFields sets how many fields sit between the id and the winners field.
func WithCategoryFields(n int) Option {
	return func(p *Parser) {
		if n >= 0 {
			p.categoryFields = n
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MinFields is id + category fields + winners + at least one losers field.
func (p *Parser) MinFields() int {
	return p.categoryFields + 3
}

// Parse returns skip=true for blank and comment lines.
func (p *Parser) Parse(line string) (match domain.Match, skip bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, CommentPrefix) {
		return domain.Match{}, true, nil
	}
	parts := strings.Split(line, FieldSeparator)
	if len(parts) < p.MinFields() {
		return domain.Match{}, false, fmt.Errorf("%w: got %d fields, want at least %d",
			ErrMalformedRecord, len(parts), p.MinFields())
	}

	tags := mapset.NewThreadUnsafeSet[string]()
	for _, field := range parts[1 : 1+p.categoryFields] {
		if tag := strings.ToLower(strings.TrimSpace(field)); tag != "" {
			tags.Add(tag)
		}
	}
	winnersAt := 1 + p.categoryFields
	winners, err := explode(parts[winnersAt : winnersAt+1])
	if err != nil {
		return domain.Match{}, false, fmt.Errorf("winners: %w", err)
	}
	losers, err := explode(parts[winnersAt+1:])
	if err != nil {
		return domain.Match{}, false, fmt.Errorf("losers: %w", err)
	}
	return domain.Match{
		ID:      strings.TrimSpace(parts[0]),
		Tags:    tags,
		Winners: winners,
		Losers:  losers,
	}, false, nil
}

// explode splits every field into a side of trimmed tokens.
func explode(fields []string) ([]domain.Side, error) {
	sides := make([]domain.Side, 0, len(fields))
	for i, field := range fields {
		if strings.TrimSpace(field) == "" {
			return nil, fmt.Errorf("%w: field %d", ErrEmptySide, i+1)
		}
		var side domain.Side
		for _, token := range strings.Split(field, TeamSeparator) {
			token = strings.TrimSpace(token)
			if BareName(token) == "" {
				return nil, fmt.Errorf("%w: %q in field %d", ErrEmptyName, field, i+1)
			}
			side = append(side, token)
		}
		sides = append(sides, side)
	}
	return sides, nil
}
