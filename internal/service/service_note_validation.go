package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coffee-notes/internal/validators"
	"github.com/MKhiriev/coffee-notes/models"
)

// NoteValidationService validates every request before the wrapped
// [NoteService] is called. Failures wrap [ErrInvalidDataProvided] and the
// validator sentinel.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

// NewNoteValidationService returns a wrapper using the note validator.
func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

// Wrap implements [NoteServiceWrapper].
func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func (v *NoteValidationService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return v.inner.ListNotes(ctx)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.Note{}, err
	}
	return v.inner.CreateNote(ctx, req)
}

func (v *NoteValidationService) UpdateContent(ctx context.Context, req models.UpdateNoteRequest) (models.Note, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.Note{}, err
	}
	return v.inner.UpdateContent(ctx, req)
}

func (v *NoteValidationService) UpdatePosition(ctx context.Context, req models.UpdatePositionRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.UpdatePosition(ctx, req)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	return v.inner.DeleteNote(ctx, req)
}

func (v *NoteValidationService) ToggleLike(ctx context.Context, req models.LikeRequest) (models.LikeStatus, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.LikeStatus{}, err
	}
	return v.inner.ToggleLike(ctx, req)
}

func (v *NoteValidationService) CheckLikes(ctx context.Context, req models.CheckLikesRequest) (map[string]bool, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.CheckLikes(ctx, req)
}

func (v *NoteValidationService) validate(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
