package text

import (
	"context"
	"strings"
	"testing"

	"github.com/goserg/groupelo/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_ListRecords(t *testing.T) {
	src := New(strings.NewReader("# header\n1,Alice,Bob\n\n2,Bob,Alice\n"))
	records, err := src.ListRecords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []storage.Record{
		{Line: 1, Text: "# header"},
		{Line: 2, Text: "1,Alice,Bob"},
		{Line: 3, Text: ""},
		{Line: 4, Text: "2,Bob,Alice"},
	}, records)
}

func TestSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(strings.NewReader("1,Alice,Bob\n")).ListRecords(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
