// Package sqlite keeps raw match records in a SQLite file so a run can be
// repeated without the original text input.
package sqlite

import (
	"context"
	"database/sql"

	sqlite3 "github.com/goserg/groupelo/internal/migrate"
	"github.com/goserg/groupelo/internal/storage"
	"github.com/goserg/groupelo/internal/storage/sqlite/gen/model"
	"github.com/goserg/groupelo/internal/storage/sqlite/gen/table"

	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

const insertBatch = 200

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.RecordSource = (*Storage)(nil)
var _ storage.RecordSink = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "record-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpRecordsDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.WithField("file", fileName).Info("record storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// ListRecords returns records in import order.
func (s *Storage) ListRecords(ctx context.Context) ([]storage.Record, error) {
	var rows []model.Records
	err := table.Records.
		SELECT(table.Records.AllColumns).
		FROM(table.Records).
		ORDER_BY(table.Records.ID.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	s.log.WithField("records", len(rows)).Debug("records listed")
	return convertRecordsToDomain(rows), nil
}

// ImportRecords appends records after the ones already stored, in one transaction.
func (s *Storage) ImportRecords(ctx context.Context, records []storage.Record) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	rows := convertRecordsFromDomain(records)
	for start := 0; start < len(rows); start += insertBatch {
		end := min(start+insertBatch, len(rows))
		_, err = table.Records.
			INSERT(table.Records.MutableColumns).
			MODELS(rows[start:end]).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.log.WithField("records", len(records)).Info("records imported")
	return nil
}

// Truncate removes every stored record.
func (s *Storage) Truncate(ctx context.Context) error {
	_, err := table.Records.DELETE().WHERE(sqlite.Bool(true)).ExecContext(ctx, s.db)
	return err
}
