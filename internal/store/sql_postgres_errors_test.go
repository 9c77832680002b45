package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/coffee-notes/internal/config"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func clientStorageConfig(path string) config.ClientStorage {
	return config.ClientStorage{LocalPath: path}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"wrapped serialization failure", fmt.Errorf("wrap: %w", pgError(pgerrcode.SerializationFailure)), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("x: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.True(t, isForeignKeyViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.Empty(t, postgresError(errors.New("boom")))
}
