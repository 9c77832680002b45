package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/metrics"
	"github.com/MKhiriev/coffee-notes/internal/store"
	"github.com/MKhiriev/coffee-notes/models"
)

type noteService struct {
	notes store.NoteRepository
	likes store.LikeRepository
	ids   IDGenerator

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewNoteService builds the repository-backed [NoteService]. Requests are
// assumed valid; wrap it with [NewNoteValidationService].
func NewNoteService(notes store.NoteRepository, likes store.LikeRepository, ids IDGenerator, m *metrics.Metrics, logger *logger.Logger) NoteService {
	return &noteService{
		notes:   notes,
		likes:   likes,
		ids:     ids,
		metrics: m,
		logger:  logger,
	}
}

func (s *noteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := s.notes.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

func (s *noteService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	note := models.Note{
		ID:        s.ids.Generate(),
		Category:  req.Category,
		Content:   req.Content,
		PositionX: floor(req.PositionX),
		PositionY: floor(req.PositionY),
		SessionID: req.SessionID,
	}

	created, err := s.notes.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}

	s.metrics.NoteCreated()
	logger.FromContext(ctx).Debug().
		Str("func", "*noteService.CreateNote").
		Str("note_id", created.ID).
		Str("type", string(created.Category)).
		Msg("note created")

	return created, nil
}

func (s *noteService) UpdateContent(ctx context.Context, req models.UpdateNoteRequest) (models.Note, error) {
	note, err := s.notes.UpdateContent(ctx, req.ID, req.Content)
	if err != nil {
		return models.Note{}, fmt.Errorf("error updating note content: %w", err)
	}
	return note, nil
}

func (s *noteService) UpdatePosition(ctx context.Context, req models.UpdatePositionRequest) error {
	if err := s.notes.UpdatePosition(ctx, req.ID, floor(req.X), floor(req.Y)); err != nil {
		return fmt.Errorf("error updating note position: %w", err)
	}
	return nil
}

func (s *noteService) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	if err := s.notes.DeleteNote(ctx, req.ID); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	return nil
}

// ToggleLike removes an existing like and decrements the counter (never
// below zero), or inserts a like and increments it. The steps are separate
// statements; concurrent toggles can leave the counter off until the
// reconciler runs.
func (s *noteService) ToggleLike(ctx context.Context, req models.LikeRequest) (models.LikeStatus, error) {
	log := logger.FromContext(ctx)

	like, err := s.likes.FindLike(ctx, req.ID, req.SessionID)
	switch {
	case err == nil:
		if err = s.likes.DeleteLike(ctx, like.ID); err != nil {
			return models.LikeStatus{}, fmt.Errorf("error removing like: %w", err)
		}
		count, err := s.adjustLikeCount(ctx, req.ID, -1)
		if err != nil {
			return models.LikeStatus{}, err
		}
		s.metrics.LikeToggled(false)
		return models.LikeStatus{Likes: count, IsLiked: false}, nil

	case errors.Is(err, store.ErrLikeNotFound):
		if err = s.likes.InsertLike(ctx, req.ID, req.SessionID); err != nil {
			return models.LikeStatus{}, fmt.Errorf("error adding like: %w", err)
		}
		count, err := s.adjustLikeCount(ctx, req.ID, +1)
		if err != nil {
			return models.LikeStatus{}, err
		}
		s.metrics.LikeToggled(true)
		return models.LikeStatus{Likes: count, IsLiked: true}, nil

	default:
		log.Err(err).Str("func", "*noteService.ToggleLike").Str("note_id", req.ID).Msg("error looking up like")
		return models.LikeStatus{}, fmt.Errorf("error looking up like: %w", err)
	}
}

func (s *noteService) adjustLikeCount(ctx context.Context, noteID string, delta int) (int, error) {
	count, err := s.likes.GetLikeCount(ctx, noteID)
	if err != nil {
		return 0, fmt.Errorf("error reading like count: %w", err)
	}

	stored, err := s.likes.SetLikeCount(ctx, noteID, max(0, count+delta))
	if err != nil {
		return 0, fmt.Errorf("error writing like count: %w", err)
	}

	return stored, nil
}

func (s *noteService) CheckLikes(ctx context.Context, req models.CheckLikesRequest) (map[string]bool, error) {
	ids, err := s.likes.LikedNoteIDs(ctx, req.SessionID, req.NoteIDs)
	if err != nil {
		return nil, fmt.Errorf("error checking likes: %w", err)
	}

	liked := make(map[string]bool, len(ids))
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func floor(v float64) int {
	return int(math.Floor(v))
}
