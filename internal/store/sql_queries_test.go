// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/MKhiriev/coffee-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListNotesQuery(t *testing.T) {
	query, args, err := buildListNotesQuery(context.Background())
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from notes")
	assert.Contains(t, q, "order by created_at desc")
	for _, c := range noteColumns {
		assert.Contains(t, q, c)
	}
	assert.Empty(t, args)
}

func Test_buildCreateNoteQuery(t *testing.T) {
	tests := []struct {
		name        string
		note        models.Note
		wantSession sql.NullString
	}{
		{
			name:        "with session",
			note:        models.Note{ID: "n1", Category: models.Reflection, Content: "c", PositionX: 10, PositionY: 20, SessionID: "s1"},
			wantSession: sql.NullString{String: "s1", Valid: true},
		},
		{
			name:        "anonymous note stores NULL session",
			note:        models.Note{ID: "n2", Category: models.ResourceList, Content: "c"},
			wantSession: sql.NullString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildCreateNoteQuery(context.Background(), tt.note)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "INSERT INTO notes"))
			assert.Contains(t, query, "$6")
			assert.Contains(t, query, "RETURNING id, type, content")
			require.Len(t, args, 6)
			assert.Equal(t, tt.note.ID, args[0])
			assert.Equal(t, string(tt.note.Category), args[1])
			assert.Equal(t, tt.wantSession, args[5])
		})
	}
}

func Test_buildUpdateQueries(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildUpdateContentQuery(ctx, "n1", "new")
	require.NoError(t, err)
	assert.Contains(t, query, "UPDATE notes SET content = $1 WHERE id = $2")
	assert.Contains(t, query, "RETURNING")
	assert.Equal(t, []any{"new", "n1"}, args)

	query, args, err = buildUpdatePositionQuery(ctx, "n1", 101, -5)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE notes SET position_x = $1, position_y = $2 WHERE id = $3", query)
	assert.Equal(t, []any{101, -5, "n1"}, args)

	query, args, err = buildDeleteNoteQuery(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM notes WHERE id = $1", query)
	assert.Equal(t, []any{"n1"}, args)
}

func Test_buildLikeQueries(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildFindLikeQuery(ctx, "n1", "s1")
	require.NoError(t, err)
	assert.Contains(t, query, "FROM note_likes")
	assert.Contains(t, query, "note_id = $1")
	assert.Contains(t, query, "session_id = $2")
	assert.Equal(t, []any{"n1", "s1"}, args)

	query, args, err = buildInsertLikeQuery(ctx, "n1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO note_likes (note_id,session_id) VALUES ($1,$2)", query)
	assert.Equal(t, []any{"n1", "s1"}, args)

	query, _, err = buildSetLikeCountQuery(ctx, "n1", 3)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE notes SET likes = $1 WHERE id = $2 RETURNING likes", query)

	query, args, err = buildLikedNoteIDsQuery(ctx, "s1", []string{"a", "b", "c"})
	require.NoError(t, err)
	// squirrel generates IN ($2,$3,$4) for a slice.
	assert.Contains(t, query, "note_id IN ($2,$3,$4)")
	assert.Equal(t, []any{"s1", "a", "b", "c"}, args)

	query, args, err = buildReconcileLikeCountsQuery(ctx)
	require.NoError(t, err)
	assert.Contains(t, query, "SET likes = "+likeCountSubquery)
	assert.Contains(t, query, "WHERE likes <> "+likeCountSubquery)
	assert.Empty(t, args)
}

func Test_buildLocalQueries_UseQuestionPlaceholders(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildGetValueQuery(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM kv WHERE key = ?", query)
	assert.Equal(t, []any{"k"}, args)

	query, args, err = buildSetValueQuery(ctx, "k", "v")
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO kv (key,value) VALUES (?,?)")
	assert.Contains(t, query, "ON CONFLICT(key) DO UPDATE")
	assert.Equal(t, []any{"k", "v"}, args)
}
