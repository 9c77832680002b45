// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/coffee-notes/internal/adapter"
)

// mapAdapterError translates a note store adapter error into a service
// error. The server message is kept for display.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var serverErr *adapter.ServerError
	if !errors.As(err, &serverErr) {
		// no response at all
		return fmt.Errorf("%w: %w", ErrNoteStoreUnavailable, err)
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, serverErr.Message)
	case errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %s", ErrNoteStoreUnavailable, serverErr.Message)
	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %s", ErrNoteStoreFailure, serverErr.Message)
	}

	return err
}
