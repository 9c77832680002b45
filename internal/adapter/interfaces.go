// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the Coffee Notes note
// store.
//
// The primary abstraction is [NoteStore], which decouples the client
// services from the HTTP protocol. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] (e.g. [ErrBadRequest] for 400) and [errors.As] with
// [*ServerError] to read the server message.
package adapter

import (
	"context"

	"github.com/MKhiriev/coffee-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_store_mock.go -package=mock

// NoteStore is the request/response API of the note store.
type NoteStore interface {
	// ListNotes returns every note, newest first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote creates a note and returns the stored record.
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)

	// UpdateNote replaces the content of a note and returns the stored record.
	UpdateNote(ctx context.Context, req models.UpdateNoteRequest) (models.Note, error)

	// UpdatePosition persists a note position.
	UpdatePosition(ctx context.Context, req models.UpdatePositionRequest) error

	// DeleteNote removes a note with its likes.
	DeleteNote(ctx context.Context, id string) error

	// ToggleLike flips the like of a session on a note and returns the
	// authoritative status.
	ToggleLike(ctx context.Context, req models.LikeRequest) (models.LikeStatus, error)

	// CheckLikes returns the set of liked note IDs among req.NoteIDs.
	CheckLikes(ctx context.Context, req models.CheckLikesRequest) (map[string]bool, error)

	// Version returns the note store version string.
	Version(ctx context.Context) (string, error)
}
