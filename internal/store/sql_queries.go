package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/coffee-notes/models"
)

const (
	notesTable     = "notes"
	noteLikesTable = "note_likes"
	kvTable        = "kv"

	// likeCountSubquery counts the like rows of the note in the outer query.
	likeCountSubquery = "(SELECT COUNT(*) FROM note_likes WHERE note_likes.note_id = notes.id)"
)

var noteColumns = []string{
	"id",
	"type",
	"content",
	"position_x",
	"position_y",
	"created_at",
	"likes",
	"session_id",
}

var likeColumns = []string{"id", "note_id", "session_id", "created_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningNote() string {
	return "RETURNING " + strings.Join(noteColumns, ", ")
}

// ── notes ──

func buildListNotesQuery(_ context.Context) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(notesTable).
		OrderBy("created_at DESC").
		ToSql()
}

func buildCreateNoteQuery(_ context.Context, note models.Note) (string, []any, error) {
	return psql.Insert(notesTable).
		Columns("id", "type", "content", "position_x", "position_y", "session_id").
		Values(
			note.ID,
			string(note.Category),
			note.Content,
			note.PositionX,
			note.PositionY,
			sql.NullString{String: note.SessionID, Valid: note.SessionID != ""},
		).
		Suffix(returningNote()).
		ToSql()
}

func buildUpdateContentQuery(_ context.Context, id, content string) (string, []any, error) {
	return psql.Update(notesTable).
		Set("content", content).
		Where(sq.Eq{"id": id}).
		Suffix(returningNote()).
		ToSql()
}

func buildUpdatePositionQuery(_ context.Context, id string, x, y int) (string, []any, error) {
	return psql.Update(notesTable).
		Set("position_x", x).
		Set("position_y", y).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteNoteQuery(_ context.Context, id string) (string, []any, error) {
	return psql.Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── likes ──

func buildFindLikeQuery(_ context.Context, noteID, sessionID string) (string, []any, error) {
	return psql.Select(likeColumns...).
		From(noteLikesTable).
		Where(sq.Eq{"note_id": noteID, "session_id": sessionID}).
		Limit(1).
		ToSql()
}

func buildInsertLikeQuery(_ context.Context, noteID, sessionID string) (string, []any, error) {
	return psql.Insert(noteLikesTable).
		Columns("note_id", "session_id").
		Values(noteID, sessionID).
		ToSql()
}

func buildDeleteLikeQuery(_ context.Context, likeID int64) (string, []any, error) {
	return psql.Delete(noteLikesTable).
		Where(sq.Eq{"id": likeID}).
		ToSql()
}

func buildGetLikeCountQuery(_ context.Context, noteID string) (string, []any, error) {
	return psql.Select("likes").
		From(notesTable).
		Where(sq.Eq{"id": noteID}).
		ToSql()
}

func buildSetLikeCountQuery(_ context.Context, noteID string, count int) (string, []any, error) {
	return psql.Update(notesTable).
		Set("likes", count).
		Where(sq.Eq{"id": noteID}).
		Suffix("RETURNING likes").
		ToSql()
}

func buildLikedNoteIDsQuery(_ context.Context, sessionID string, noteIDs []string) (string, []any, error) {
	return psql.Select("note_id").
		From(noteLikesTable).
		Where(sq.Eq{"session_id": sessionID}).
		Where(sq.Eq{"note_id": noteIDs}).
		ToSql()
}

func buildReconcileLikeCountsQuery(_ context.Context) (string, []any, error) {
	return psql.Update(notesTable).
		Set("likes", sq.Expr(likeCountSubquery)).
		Where(sq.Expr("likes <> " + likeCountSubquery)).
		ToSql()
}

// ── local key/value ──

func buildGetValueQuery(_ context.Context, key string) (string, []any, error) {
	return sq.Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSetValueQuery(_ context.Context, key, value string) (string, []any, error) {
	return sq.Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}
