package tui

import (
	"github.com/MKhiriev/coffee-notes/internal/canvas"
	"github.com/MKhiriev/coffee-notes/internal/likes"
	"github.com/MKhiriev/coffee-notes/models"
)

type notesLoadedMsg struct {
	notes []models.Note
	liked map[string]bool
	err   error

	// likesErr is set when the notes loaded but the liked flags did not.
	likesErr error
}

type noteSavedMsg struct {
	note    models.Note
	created bool
	err     error
}

type noteDeletedMsg struct {
	noteID string
	err    error
}

type likeSettledMsg struct {
	tr     likes.Transition
	status models.LikeStatus
	err    error
}

type positionSavedMsg struct {
	move canvas.PendingMove
	err  error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	item string
	err  error
}

type frameMsg struct{}

type clearStatusMsg struct {
	seq int
}
