package store

import (
	"database/sql"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/migrations"
)

type dialect int

const (
	dialectPostgres dialect = iota
	dialectSQLite
)

// DB wraps a database/sql connection together with the dialect it speaks.
type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	if db.dialect == dialectSQLite {
		return migrations.MigrateLocal(db.DB)
	}
	return migrations.Migrate(db.DB)
}

// classify reports whether err is worth retrying. Errors are never retried
// here; the classification is logged for operators.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
