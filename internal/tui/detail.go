package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/coffee-notes/internal/codec"
	"github.com/MKhiriev/coffee-notes/internal/likes"
	"github.com/MKhiriev/coffee-notes/models"
)

// detailModel shows one note rendered as Markdown.
type detailModel struct {
	note     models.Note
	viewport viewport.Model
}

func newDetailModel(note models.Note, state likes.State, width, height int) detailModel {
	vp := viewport.New(max(width, 20), max(height, 3))
	vp.SetContent(renderMarkdown(noteMarkdown(note, state), vp.Width-2))
	return detailModel{note: note, viewport: vp}
}

// refresh re-renders the note, e.g. after its like state changed.
func (m *detailModel) refresh(state likes.State) {
	m.viewport.SetContent(renderMarkdown(noteMarkdown(m.note, state), m.viewport.Width-2))
}

func (m *detailModel) resize(width, height int, state likes.State) {
	m.viewport.Width = max(width, 20)
	m.viewport.Height = max(height, 3)
	m.refresh(state)
}

// item returns the n-th list item, counting from 1.
func (m detailModel) item(n int) (string, bool) {
	list, ok := codec.Decode(m.note.Content).(models.ListBody)
	if !ok || n < 1 || n > len(list.Items) {
		return "", false
	}
	return list.Items[n-1], true
}

func (m detailModel) isList() bool {
	_, ok := codec.Decode(m.note.Content).(models.ListBody)
	return ok
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m detailModel) View() string {
	return m.viewport.View()
}
