package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/coffee-notes/internal/config"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/session"
)

// Storages groups the server-side repositories.
type Storages struct {
	NoteRepository NoteRepository
	LikeRepository LikeRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, log)
}

func newStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDatabase
	}

	return &Storages{
		NoteRepository: NewNoteRepository(db, log),
		LikeRepository: NewLikeRepository(db, log),
		db:             db,
	}, nil
}

// Ping checks the database connection.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Stats returns connection pool statistics.
func (s *Storages) Stats() sql.DBStats {
	return s.db.Stats()
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

// ClientStorages groups client-side storage: the local key/value store
// holding the session identifier.
type ClientStorages struct {
	// SessionStore is nil when no local path is configured.
	SessionStore *LocalKV

	db *DB
}

// NewClientStorages opens the local SQLite file and applies its
// migrations. An empty path yields storages without a session store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	if cfg.LocalPath == "" {
		log.Warn().Str("func", "NewClientStorages").Msg("no local storage path configured")
		return &ClientStorages{}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.LocalPath, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionStore: NewLocalKV(db, log),
		db:           db,
	}, nil
}

// Sessions returns the session store, or a nil interface when persistence
// is disabled.
func (s *ClientStorages) Sessions() session.Store {
	if s == nil || s.SessionStore == nil {
		return nil
	}
	return s.SessionStore
}

// Close releases the local connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
