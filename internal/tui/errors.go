// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/coffee-notes/internal/likes"
	"github.com/MKhiriev/coffee-notes/internal/service"
)

var (
	errTextRequired  = errors.New("note text is required")
	errTitleRequired = errors.New("list title is required")
	errItemsRequired = errors.New("a list needs at least one item")
	errNotOwner      = errors.New("only the author of a note can change it")
	errNothingToCopy = errors.New("this note has no list items")
)

// humanizeError turns an error from the note service into a line for the
// status bar.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNoteStoreUnavailable):
		return "Note store is unreachable. Check the server address and try again."
	case errors.Is(err, context.DeadlineExceeded):
		return "Note store did not answer in time. Try again."
	case errors.Is(err, likes.ErrNoSession):
		return "No session: likes are disabled."
	case errors.Is(err, likes.ErrToggleInFlight):
		return "Still waiting for the previous like."
	default:
		return err.Error()
	}
}
