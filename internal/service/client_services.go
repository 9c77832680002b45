package service

import (
	"github.com/MKhiriev/coffee-notes/internal/adapter"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/session"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	NoteService ClientNoteService
	Sessions    *session.Provider
}

// NewClientServices wires the client services. sessions may be nil when the
// client has no local storage; the session identifier is then empty.
func NewClientServices(store adapter.NoteStore, sessions session.Store, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		NoteService: NewClientNoteService(store, logger),
		Sessions:    session.NewProvider(sessions),
	}
}
