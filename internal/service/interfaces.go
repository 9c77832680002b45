// Package service holds the business logic of Coffee Notes.
//
// Server side: [NoteService] over the store repositories, decorated by a
// validation wrapper, the [LikeReconcileJob] and [AppInfoService].
// Client side: [ClientNoteService] over the note store adapter.
package service

import (
	"context"

	"github.com/MKhiriev/coffee-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=NoteServiceWrapper

// NoteService implements the note store operations.
type NoteService interface {
	// ListNotes returns every note, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote assigns an ID, floors the position and stores the note.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// UpdateContent replaces the content of a note. Ownership is not checked.
	UpdateContent(ctx context.Context, req models.UpdateNoteRequest) (models.Note, error)

	// UpdatePosition floors and stores a note position.
	UpdatePosition(ctx context.Context, req models.UpdatePositionRequest) error

	// DeleteNote removes a note and its likes. Ownership is not checked.
	DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error

	// ToggleLike flips the like of a session on a note.
	ToggleLike(ctx context.Context, req models.LikeRequest) (models.LikeStatus, error)

	// CheckLikes returns the liked subset of req.NoteIDs as a set.
	CheckLikes(ctx context.Context, req models.CheckLikesRequest) (map[string]bool, error)
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues note identifiers.
type IDGenerator interface {
	Generate() string
}
