package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/coffee-notes/internal/config"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/utils"
	"github.com/MKhiriev/coffee-notes/models"
)

const (
	pathNotes          = "/api/notes"
	pathCreate         = "/api/notes/create"
	pathUpdate         = "/api/notes/update"
	pathUpdatePosition = "/api/notes/update-position"
	pathDelete         = "/api/notes/delete"
	pathLike           = "/api/notes/like"
	pathCheckLikes     = "/api/notes/check-likes"
	pathVersion        = "/api/version"
)

type httpNoteStore struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNoteStore constructs the HTTP implementation of [NoteStore].
// The base URL is normalised from cfg.HTTPAddress; a bare host:port gets
// the http scheme.
func NewHTTPNoteStore(cfg config.ClientAdapter, logger *logger.Logger) (NoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpNoteStore{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListNotes implements [NoteStore]. GET /api/notes.
func (h *httpNoteStore) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&notes).
		Get(pathNotes)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(ctx, "*httpNoteStore.ListNotes", err)
		return nil, err
	}

	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// CreateNote implements [NoteStore]. POST /api/notes/create.
func (h *httpNoteStore) CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&note).
		Post(pathCreate)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(ctx, "*httpNoteStore.CreateNote", err)
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote implements [NoteStore]. POST /api/notes/update.
func (h *httpNoteStore) UpdateNote(ctx context.Context, req models.UpdateNoteRequest) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&note).
		Post(pathUpdate)
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(ctx, "*httpNoteStore.UpdateNote", err)
		return models.Note{}, err
	}

	return note, nil
}

// UpdatePosition implements [NoteStore]. POST /api/notes/update-position.
func (h *httpNoteStore) UpdatePosition(ctx context.Context, req models.UpdatePositionRequest) error {
	var result models.SuccessResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(pathUpdatePosition)
	if err != nil {
		return fmt.Errorf("update position request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(ctx, "*httpNoteStore.UpdatePosition", err)
		return err
	}

	return nil
}

// DeleteNote implements [NoteStore]. POST /api/notes/delete.
func (h *httpNoteStore) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.DeleteNoteRequest{ID: id}).
		Post(pathDelete)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(ctx, "*httpNoteStore.DeleteNote", err)
		return err
	}

	return nil
}

// ToggleLike implements [NoteStore]. POST /api/notes/like.
func (h *httpNoteStore) ToggleLike(ctx context.Context, req models.LikeRequest) (models.LikeStatus, error) {
	var status models.LikeStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&status).
		Post(pathLike)
	if err != nil {
		return models.LikeStatus{}, fmt.Errorf("toggle like request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(ctx, "*httpNoteStore.ToggleLike", err)
		return models.LikeStatus{}, err
	}

	return status, nil
}

// CheckLikes implements [NoteStore]. POST /api/notes/check-likes.
func (h *httpNoteStore) CheckLikes(ctx context.Context, req models.CheckLikesRequest) (map[string]bool, error) {
	var result models.CheckLikesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(pathCheckLikes)
	if err != nil {
		return nil, fmt.Errorf("check likes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure(ctx, "*httpNoteStore.CheckLikes", err)
		return nil, err
	}

	if result.LikedNotes == nil {
		result.LikedNotes = map[string]bool{}
	}
	return result.LikedNotes, nil
}

// Version implements [NoteStore]. GET /api/version.
func (h *httpNoteStore) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(pathVersion)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpNoteStore) logFailure(ctx context.Context, fn string, err error) {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("note store request failed")
}
