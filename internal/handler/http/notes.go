// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/coffee-notes/internal/app"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/utils"
	"github.com/MKhiriev/coffee-notes/models"
)

var (
	likeErrorMessages = errorMessages{
		missingFields: app.MsgLikeFieldsRequired,
		failed:        app.MsgFailedToToggleLike,
	}
	checkLikesErrorMessages = errorMessages{
		missingFields: app.MsgCheckLikesFieldsRequired,
		failed:        app.MsgFailedToCheckLikes,
	}
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.ListNotes(r.Context())
	if err != nil {
		h.respondError(w, r, "*Handler.listNotes", err, defaultErrorMessages)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, "*Handler.createNote", err, defaultErrorMessages)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), req)
	if err != nil {
		h.respondError(w, r, "*Handler.createNote", err, defaultErrorMessages)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, "*Handler.updateNote", err, defaultErrorMessages)
		return
	}

	note, err := h.services.NoteService.UpdateContent(r.Context(), req)
	if err != nil {
		h.respondError(w, r, "*Handler.updateNote", err, defaultErrorMessages)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updatePosition(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePositionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, "*Handler.updatePosition", err, defaultErrorMessages)
		return
	}

	if err := h.services.NoteService.UpdatePosition(r.Context(), req); err != nil {
		h.respondError(w, r, "*Handler.updatePosition", err, defaultErrorMessages)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, "*Handler.deleteNote", err, defaultErrorMessages)
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), req); err != nil {
		h.respondError(w, r, "*Handler.deleteNote", err, defaultErrorMessages)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	var req models.LikeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, "*Handler.toggleLike", err, likeErrorMessages)
		return
	}

	status, err := h.services.NoteService.ToggleLike(r.Context(), req)
	if err != nil {
		h.respondError(w, r, "*Handler.toggleLike", err, likeErrorMessages)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) checkLikes(w http.ResponseWriter, r *http.Request) {
	var req models.CheckLikesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, "*Handler.checkLikes", err, checkLikesErrorMessages)
		return
	}

	liked, err := h.services.NoteService.CheckLikes(r.Context(), req)
	if err != nil {
		h.respondError(w, r, "*Handler.checkLikes", err, checkLikesErrorMessages)
		return
	}
	if liked == nil {
		liked = map[string]bool{}
	}

	utils.WriteJSON(w, models.CheckLikesResponse{LikedNotes: liked}, http.StatusOK)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, funcName string, err error, msgs errorMessages) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteError(w, messageFromError(err, msgs), status)
}
