// Package category gates records into named rating runs.
package category

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goserg/groupelo/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	Overall    = "overall"
	Solo       = "solo"
	Team       = "team"
	Exhibition = "exhibition"
	Tournament = "tournament"
	Armed      = "armed"
	Unarmed    = "unarmed"
)

var ErrUnknownCategory = errors.New("unknown category")

// Filter reports whether a match counts towards a category.
type Filter func(domain.Match) bool

var filters = map[string]Filter{
	Overall:    func(domain.Match) bool { return true },
	Solo:       func(m domain.Match) bool { return m.LargestSide() == 1 },
	Team:       func(m domain.Match) bool { return m.LargestSide() > 1 },
	Exhibition: tagged(Exhibition),
	Tournament: tagged(Tournament),
	Armed:      tagged(Armed),
	Unarmed:    tagged(Unarmed),
}

func tagged(tag string) Filter {
	return func(m domain.Match) bool {
		return m.HasTag(tag)
	}
}

// Known returns the recognised category names.
func Known() mapset.Set[string] {
	known := mapset.NewThreadUnsafeSet[string]()
	for name := range filters {
		known.Add(name)
	}
	return known
}

func Lookup(name string) (Filter, error) {
	f, ok := filters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return f, nil
}

// Validate rejects every name that is not a recognised category.
func Validate(names []string) error {
	var err error
	unknown := mapset.NewThreadUnsafeSet[string](names...).Difference(Known()).ToSlice()
	sort.Strings(unknown)
	for _, name := range unknown {
		err = errors.Join(err, fmt.Errorf("%w: %q", ErrUnknownCategory, name))
	}
	return err
}
