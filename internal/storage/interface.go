package storage

import "context"

// Record is one raw match line with its 1-based position in the input.
type Record struct {
	Line int
	Text string
}

// RecordSource yields raw match records in input order.
type RecordSource interface {
	ListRecords(ctx context.Context) ([]Record, error)
}

// RecordSink stores raw match records for later runs.
type RecordSink interface {
	ImportRecords(ctx context.Context, records []Record) error
}
