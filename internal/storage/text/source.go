package text

import (
	"bufio"
	"context"
	"io"

	"github.com/goserg/groupelo/internal/storage"
)

const maxLineSize = 1 << 20

// Source reads one record per line from r.
type Source struct {
	r io.Reader
}

var _ storage.RecordSource = (*Source)(nil)

func New(r io.Reader) *Source {
	return &Source{r: r}
}

func (s *Source) ListRecords(ctx context.Context) ([]storage.Record, error) {
	scanner := bufio.NewScanner(s.r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var records []storage.Record
	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records = append(records, storage.Record{Line: line, Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
