package sqlite

import (
	"github.com/goserg/groupelo/internal/storage"
	"github.com/goserg/groupelo/internal/storage/sqlite/gen/model"
)

func convertRecordsToDomain(rows []model.Records) []storage.Record {
	converted := make([]storage.Record, 0, len(rows))
	for _, row := range rows {
		converted = append(converted, storage.Record{
			Line: int(row.LineNo),
			Text: row.Body,
		})
	}
	return converted
}

func convertRecordsFromDomain(records []storage.Record) []model.Records {
	converted := make([]model.Records, 0, len(records))
	for _, r := range records {
		converted = append(converted, model.Records{
			LineNo: int32(r.Line),
			Body:   r.Text,
		})
	}
	return converted
}
