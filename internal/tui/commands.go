package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/coffee-notes/internal/canvas"
	"github.com/MKhiriev/coffee-notes/internal/likes"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/MKhiriev/coffee-notes/models"
)

const (
	frameInterval = time.Second / 60
	statusTTL     = 4 * time.Second
)

var (
	defaultWriteClipboard = clipboard.WriteAll
	writeClipboard        = defaultWriteClipboard
)

func loadNotesCmd(ctx context.Context, notes service.ClientNoteService) tea.Cmd {
	return func() tea.Msg {
		list, err := notes.List(ctx)
		if err != nil {
			return notesLoadedMsg{err: err}
		}
		liked, err := likes.Hydrate(ctx, notes, list)
		return notesLoadedMsg{notes: list, liked: liked, likesErr: err}
	}
}

func createNoteCmd(ctx context.Context, notes service.ClientNoteService, category models.Category, body models.Body) tea.Cmd {
	return func() tea.Msg {
		note, err := notes.Create(ctx, category, body)
		return noteSavedMsg{note: note, created: true, err: err}
	}
}

func editNoteCmd(ctx context.Context, notes service.ClientNoteService, note models.Note, body models.Body) tea.Cmd {
	return func() tea.Msg {
		updated, err := notes.Edit(ctx, note, body)
		return noteSavedMsg{note: updated, err: err}
	}
}

func deleteNoteCmd(ctx context.Context, notes service.ClientNoteService, noteID string) tea.Cmd {
	return func() tea.Msg {
		return noteDeletedMsg{noteID: noteID, err: notes.Delete(ctx, noteID)}
	}
}

func toggleLikeCmd(ctx context.Context, toggler likes.Toggler, tr likes.Transition) tea.Cmd {
	return func() tea.Msg {
		status, err := toggler.ToggleLike(ctx, tr.NoteID, tr.SessionID)
		return likeSettledMsg{tr: tr, status: status, err: err}
	}
}

func commitMoveCmd(ctx context.Context, move canvas.PendingMove) tea.Cmd {
	return func() tea.Msg {
		return positionSavedMsg{move: move, err: move.Commit(ctx)}
	}
}

func serverVersionCmd(ctx context.Context, notes service.ClientNoteService) tea.Cmd {
	return func() tea.Msg {
		v, err := notes.ServerVersion(ctx)
		return serverVersionMsg{version: v, err: err}
	}
}

func copyCmd(item string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{item: item, err: writeClipboard(item)}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}
