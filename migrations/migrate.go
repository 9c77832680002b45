// Package migrations embeds the goose SQL migrations of the note store
// (PostgreSQL) and of the client's local store (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrNilDB is returned when a migration is run without a connection.
var ErrNilDB = errors.New("db is nil")

// goose keeps the dialect and filesystem in package globals.
var gooseMu sync.Mutex

// Migrate applies the note store migrations to a PostgreSQL connection.
func Migrate(db *sql.DB) error {
	return up(db, "pgx", "postgres")
}

// MigrateLocal applies the client store migrations to a SQLite connection.
func MigrateLocal(db *sql.DB) error {
	return up(db, "sqlite3", "sqlite")
}

func up(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
