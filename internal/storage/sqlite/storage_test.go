package sqlite

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/goserg/groupelo/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) *Storage {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	s, err := New(l, filepath.Join(t.TempDir(), "records.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorage_ImportList(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	records, err := s.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	first := []storage.Record{
		{Line: 1, Text: "1,Alice,Bob"},
		{Line: 3, Text: "2,Bob,Carol&Dan"},
	}
	require.NoError(t, s.ImportRecords(ctx, first))
	require.NoError(t, s.ImportRecords(ctx, []storage.Record{{Line: 1, Text: "3,Carol,Alice"}}))

	records, err = s.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []storage.Record{
		{Line: 1, Text: "1,Alice,Bob"},
		{Line: 3, Text: "2,Bob,Carol&Dan"},
		{Line: 1, Text: "3,Carol,Alice"},
	}, records)

	require.NoError(t, s.Truncate(ctx))
	records, err = s.ListRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStorage_ImportBatches(t *testing.T) {
	ctx := context.Background()
	s := newStorage(t)

	var in []storage.Record
	for i := 1; i <= insertBatch*2+7; i++ {
		in = append(in, storage.Record{Line: i, Text: fmt.Sprintf("%d,P%d,P%d", i, i, i+1)})
	}
	require.NoError(t, s.ImportRecords(ctx, in))

	out, err := s.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
