package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/session"
)

// LocalKV is the client's SQLite key/value table. It implements
// [session.Store].
type LocalKV struct {
	*DB
	logger *logger.Logger
}

// NewLocalKV constructs a key/value store backed by a SQLite connection.
func NewLocalKV(db *DB, logger *logger.Logger) *LocalKV {
	return &LocalKV{DB: db, logger: logger}
}

// Get returns the value stored under key. A missing key yields an error
// matching both ErrKeyNotFound and session.ErrNotFound.
func (s *LocalKV) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %w", ErrKeyNotFound, session.ErrNotFound)
	}
	if err != nil {
		log.Err(err).Str("func", "*LocalKV.Get").Str("key", key).Msg("failed to read local value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *LocalKV) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetValueQuery(ctx, key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*LocalKV.Set").Str("key", key).Msg("failed to write local value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
