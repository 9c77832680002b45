package service

import (
	"context"

	"github.com/MKhiriev/coffee-notes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientNoteService is the client view of the note store. It also satisfies
// canvas.PositionPersister, likes.Toggler and likes.Checker.
type ClientNoteService interface {
	// List returns every note, newest first.
	List(ctx context.Context) ([]models.Note, error)

	// Create encodes body for category and creates a note at a random
	// position inside the initial viewport. The session from ctx, if any,
	// becomes the owner.
	Create(ctx context.Context, category models.Category, body models.Body) (models.Note, error)

	// Edit replaces the body of note, keeping its category.
	Edit(ctx context.Context, note models.Note, body models.Body) (models.Note, error)

	// Delete removes a note.
	Delete(ctx context.Context, noteID string) error

	UpdatePosition(ctx context.Context, noteID string, x, y int) error
	ToggleLike(ctx context.Context, noteID, sessionID string) (models.LikeStatus, error)
	CheckLikes(ctx context.Context, sessionID string, noteIDs []string) (map[string]bool, error)

	// ServerVersion returns the version reported by the note store.
	ServerVersion(ctx context.Context) (string, error)
}
