// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Coffee Notes server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// {"error": "..."} response envelope or into log entries.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMissingRequiredFields is returned when a required request field is
	// absent or empty.
	MsgMissingRequiredFields = "missing required fields"

	// MsgUnknownCategory is returned when a note category is outside the
	// closed category set.
	MsgUnknownCategory = "unknown note type"

	// MsgLikeFieldsRequired is returned by the like toggle when the note ID
	// or the session ID is missing.
	MsgLikeFieldsRequired = "Note ID and session ID are required"

	// MsgCheckLikesFieldsRequired is returned by the batch like check when
	// the note IDs or the session ID are missing.
	MsgCheckLikesFieldsRequired = "Note IDs and session ID are required"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgFailedToToggleLike is returned when the like toggle fails in the
	// store.
	MsgFailedToToggleLike = "Failed to toggle like"

	// MsgFailedToCheckLikes is returned when the batch like check fails in
	// the store.
	MsgFailedToCheckLikes = "Failed to check likes"

	// MsgMethodNotAllowed is written by the method guard middleware.
	MsgMethodNotAllowed = "method not allowed"
)
