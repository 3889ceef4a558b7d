// Package report renders final rating tables.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goserg/groupelo/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const exportVersion = 1

var ErrInvalidExport = errors.New("invalid export file version")

// Sort orders players by rating, highest first. Equal ratings fall back to
// names in descending collation order.
func Sort(players []domain.Player) {
	c := collate.New(language.Und)
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Rating != players[j].Rating {
			return players[i].Rating > players[j].Rating
		}
		if cmp := c.CompareString(players[i].Name, players[j].Name); cmp != 0 {
			return cmp > 0
		}
		return players[i].Name > players[j].Name
	})
}

// Title turns a category name into a report heading.
func Title(category string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(category, "-", " "))
}

// WriteText prints a heading followed by one line per player, already sorted.
func WriteText(w io.Writer, category string, players []domain.Player) error {
	if _, err := fmt.Fprintln(w, Title(category)); err != nil {
		return err
	}
	for _, p := range players {
		_, err := fmt.Fprintf(w, "%.3f %s (%d-%d) %dk, %dm\n",
			p.Rating, p.Name, p.Wins, p.Losses, p.Kills, p.Maims)
		if err != nil {
			return err
		}
	}
	return nil
}

type Category struct {
	Name    string
	Matches int
	Players []domain.Player
}

type export struct {
	Version    int
	RunID      uuid.UUID
	Categories []Category
}

// Export serializes a whole run.
func Export(runID uuid.UUID, categories []Category) ([]byte, error) {
	return json.MarshalIndent(export{
		Version:    exportVersion,
		RunID:      runID,
		Categories: categories,
	}, "", "  ")
}

// Import reads data written by Export.
func Import(data []byte) (uuid.UUID, []Category, error) {
	var importData export
	if err := json.Unmarshal(data, &importData); err != nil {
		return uuid.Nil, nil, err
	}
	if importData.Version != exportVersion {
		return uuid.Nil, nil, ErrInvalidExport
	}
	return importData.RunID, importData.Categories, nil
}
