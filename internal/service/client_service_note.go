package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/MKhiriev/coffee-notes/internal/adapter"
	"github.com/MKhiriev/coffee-notes/internal/codec"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/utils"
	"github.com/MKhiriev/coffee-notes/models"
)

// Placement range of new notes, in canvas coordinates.
const (
	spawnMinX, spawnMaxX = 100, 600
	spawnMinY, spawnMaxY = 150, 550
)

type clientNoteService struct {
	store adapter.NoteStore

	// intn returns a value in [0, n).
	intn func(n int) int

	logger *logger.Logger
}

// NewClientNoteService returns a [ClientNoteService] over store.
func NewClientNoteService(store adapter.NoteStore, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{
		store:  store,
		intn:   rand.IntN,
		logger: logger,
	}
}

func (s *clientNoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return notes, nil
}

func (s *clientNoteService) Create(ctx context.Context, category models.Category, body models.Body) (models.Note, error) {
	content, err := codec.Encode(category, body)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrEncodingNote, err)
	}

	sessionID, _ := utils.GetSessionIDFromContext(ctx)
	x, y := s.spawnPosition()

	note, err := s.store.CreateNote(ctx, models.CreateNoteRequest{
		Category:  category,
		Content:   content,
		PositionX: float64(x),
		PositionY: float64(y),
		SessionID: sessionID,
	})
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*clientNoteService.Create").
		Str("note_id", note.ID).
		Msg("note created")

	return note, nil
}

func (s *clientNoteService) Edit(ctx context.Context, note models.Note, body models.Body) (models.Note, error) {
	content, err := codec.Encode(note.Category, body)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrEncodingNote, err)
	}

	updated, err := s.store.UpdateNote(ctx, models.UpdateNoteRequest{ID: note.ID, Content: content})
	if err != nil {
		return models.Note{}, mapAdapterError(err)
	}
	return updated, nil
}

func (s *clientNoteService) Delete(ctx context.Context, noteID string) error {
	return mapAdapterError(s.store.DeleteNote(ctx, noteID))
}

func (s *clientNoteService) UpdatePosition(ctx context.Context, noteID string, x, y int) error {
	return mapAdapterError(s.store.UpdatePosition(ctx, models.UpdatePositionRequest{
		ID: noteID,
		X:  float64(x),
		Y:  float64(y),
	}))
}

func (s *clientNoteService) ToggleLike(ctx context.Context, noteID, sessionID string) (models.LikeStatus, error) {
	status, err := s.store.ToggleLike(ctx, models.LikeRequest{ID: noteID, SessionID: sessionID})
	if err != nil {
		return models.LikeStatus{}, mapAdapterError(err)
	}
	return status, nil
}

func (s *clientNoteService) CheckLikes(ctx context.Context, sessionID string, noteIDs []string) (map[string]bool, error) {
	liked, err := s.store.CheckLikes(ctx, models.CheckLikesRequest{NoteIDs: noteIDs, SessionID: sessionID})
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return liked, nil
}

func (s *clientNoteService) ServerVersion(ctx context.Context) (string, error) {
	v, err := s.store.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return v, nil
}

func (s *clientNoteService) spawnPosition() (int, int) {
	return spawnMinX + s.intn(spawnMaxX-spawnMinX), spawnMinY + s.intn(spawnMaxY-spawnMinY)
}
