package canvas

import (
	"context"

	"github.com/MKhiriev/coffee-notes/internal/logger"
)

//go:generate mockgen -source=persist.go -destination=../mock/position_persister_mock.go -package=mock

// PositionPersister stores the position of a note after a drag ends.
type PositionPersister interface {
	UpdatePosition(ctx context.Context, noteID string, x, y int) error
}

// PendingMove is the result of a finished drag. The local position is
// already updated; Commit sends it to the note store.
type PendingMove struct {
	NoteID string
	X, Y   int

	persister PositionPersister
}

// Commit persists the move. A failure is logged and returned but the local
// position is kept: the board shows the note where it was dropped until the
// next reload.
//
// Moves are not serialized per note. When two commits for the same note are
// in flight, the one whose response arrives last wins.
func (m PendingMove) Commit(ctx context.Context) error {
	if m.persister == nil {
		return nil
	}

	if err := m.persister.UpdatePosition(ctx, m.NoteID, m.X, m.Y); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "canvas.PendingMove.Commit").
			Str("note_id", m.NoteID).
			Int("x", m.X).
			Int("y", m.Y).
			Msg("error persisting note position")
		return err
	}

	return nil
}
