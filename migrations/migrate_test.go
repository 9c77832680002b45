// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)
	require.ErrorIs(t, err, ErrNilDB)

	err = MigrateLocal(nil)
	require.ErrorIs(t, err, ErrNilDB)
}

func TestEmbeddedMigrations(t *testing.T) {
	pg, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	require.Len(t, pg, 2)

	notes, err := fs.ReadFile(embedMigrations, "postgres/00001_create_notes.sql")
	require.NoError(t, err)
	assert.Contains(t, string(notes), "CREATE TABLE IF NOT EXISTS notes")

	likes, err := fs.ReadFile(embedMigrations, "postgres/00002_create_note_likes.sql")
	require.NoError(t, err)
	assert.Contains(t, string(likes), "UNIQUE (note_id, session_id)")
	assert.Contains(t, string(likes), "ON DELETE CASCADE")

	local, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)
	require.Len(t, local, 1)

	for _, name := range append(pg, local...) {
		body, readErr := fs.ReadFile(embedMigrations, name)
		require.NoError(t, readErr)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}
