// Package store is the persistence layer of Coffee Notes.
//
// On the server it holds the PostgreSQL repositories for notes and likes.
// On the client it holds the SQLite key/value store backing the session
// identifier.
package store

import (
	"context"

	"github.com/MKhiriev/coffee-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository persists notes in the "notes" table.
type NoteRepository interface {
	// ListNotes returns every note, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote inserts note and returns the stored row.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateContent replaces the content of a note and returns the stored
	// row. Returns ErrNoteNotFound for an unknown ID.
	UpdateContent(ctx context.Context, id, content string) (models.Note, error)

	// UpdatePosition moves a note. Unknown IDs are not an error.
	UpdatePosition(ctx context.Context, id string, x, y int) error

	// DeleteNote removes a note; its likes are removed by cascade.
	DeleteNote(ctx context.Context, id string) error
}

// LikeRepository persists likes in "note_likes" and the per-note counter
// in "notes.likes". Each method is a separate statement.
type LikeRepository interface {
	// FindLike returns the like of sessionID on noteID, or ErrLikeNotFound.
	FindLike(ctx context.Context, noteID, sessionID string) (models.Like, error)

	// InsertLike records a like.
	InsertLike(ctx context.Context, noteID, sessionID string) error

	// DeleteLike removes the like row with the given ID.
	DeleteLike(ctx context.Context, likeID int64) error

	// GetLikeCount reads notes.likes of a note.
	GetLikeCount(ctx context.Context, noteID string) (int, error)

	// SetLikeCount writes notes.likes of a note and returns the stored value.
	SetLikeCount(ctx context.Context, noteID string, count int) (int, error)

	// LikedNoteIDs returns the subset of noteIDs liked by sessionID.
	LikedNoteIDs(ctx context.Context, sessionID string, noteIDs []string) ([]string, error)

	// ReconcileLikeCounts recomputes notes.likes from note_likes where they
	// differ and returns the number of corrected notes.
	ReconcileLikeCounts(ctx context.Context) (int64, error)
}
