package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/coffee-notes/internal/canvas"
	"github.com/MKhiriev/coffee-notes/internal/filter"
	"github.com/MKhiriev/coffee-notes/internal/mock"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/MKhiriev/coffee-notes/internal/utils"
	"github.com/MKhiriev/coffee-notes/models"
)

const testSession = "user_1700000000000_abcdef0123456"

func testNotes() []models.Note {
	return []models.Note{
		{ID: "n3", Category: models.ResourceList, Content: `{"title":"Books","items":["The Go Programming Language","SICP"]}`, PositionX: 800, PositionY: 40, Likes: 1, SessionID: testSession},
		{ID: "n2", Category: models.CautionaryAdvice, Content: `{"text":"Never deploy on Friday","source":"ops"}`, PositionX: 400, PositionY: 300},
		{ID: "n1", Category: models.Reflection, Content: "Coffee first", Likes: 2, SessionID: testSession},
	}
}

func newTestBoard(t *testing.T) (boardModel, *mock.MockClientNoteService) {
	t.Helper()

	notes := mock.NewMockClientNoteService(gomock.NewController(t))
	ctx := utils.WithSessionID(context.Background(), testSession)
	m := newBoardModel(ctx, notes, testSession, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123"))
	m.width, m.height = 120, 40

	return m, notes
}

func loadedBoard(t *testing.T) (boardModel, *mock.MockClientNoteService) {
	t.Helper()

	m, notes := newTestBoard(t)
	m = update(t, m, notesLoadedMsg{notes: testNotes(), liked: map[string]bool{"n1": true}})
	return m, notes
}

func update(t *testing.T, m boardModel, msg tea.Msg) boardModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(boardModel)
}

func updateCmd(t *testing.T, m boardModel, msg tea.Msg) (boardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(boardModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ── loading ──

func TestBoard_LoadNotes(t *testing.T) {
	t.Run("hydrates likes for the session", func(t *testing.T) {
		m, notes := newTestBoard(t)
		notes.EXPECT().List(gomock.Any()).Return(testNotes(), nil)
		notes.EXPECT().CheckLikes(gomock.Any(), testSession, []string{"n3", "n2", "n1"}).
			Return(map[string]bool{"n1": true}, nil)

		msg := loadNotesCmd(m.ctx, m.notesSvc)()
		m = update(t, m, msg)

		assert.False(t, m.loading)
		assert.Len(t, m.visible, 3)
		assert.Equal(t, "n3", m.selected)
		assert.True(t, m.likes.Get("n1").State().Liked)
		assert.Equal(t, 2, m.likes.Get("n1").State().Count)

		pos, ok := m.canvas.Position("n2")
		require.True(t, ok)
		assert.Equal(t, canvas.Point{X: 400, Y: 300}, pos)
	})

	t.Run("list failure keeps the board and shows an error", func(t *testing.T) {
		m, notes := newTestBoard(t)
		notes.EXPECT().List(gomock.Any()).Return(nil, service.ErrNoteStoreUnavailable)

		m = update(t, m, loadNotesCmd(m.ctx, m.notesSvc)())

		assert.False(t, m.loading)
		assert.Empty(t, m.visible)
		assert.True(t, m.statusErr)
		assert.Contains(t, m.status, "unreachable")
	})

	t.Run("like check failure still shows notes", func(t *testing.T) {
		m, notes := newTestBoard(t)
		notes.EXPECT().List(gomock.Any()).Return(testNotes(), nil)
		notes.EXPECT().CheckLikes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		m = update(t, m, loadNotesCmd(m.ctx, m.notesSvc)())

		assert.Len(t, m.visible, 3)
		assert.False(t, m.likes.Get("n1").State().Liked)
		assert.True(t, m.statusErr)
	})
}

// ── selection and filters ──

func TestBoard_Selection(t *testing.T) {
	m, _ := loadedBoard(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "n2", m.selected)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "n1", m.selected)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "n2", m.selected)
}

func TestBoard_Filters(t *testing.T) {
	t.Run("category cycles through all categories", func(t *testing.T) {
		m, _ := loadedBoard(t)

		m = update(t, m, runes("c"))
		assert.Equal(t, string(models.Reflection), m.criteria.Category)
		require.Len(t, m.visible, 1)
		assert.Equal(t, "n1", m.selected)

		for range models.Categories {
			m = update(t, m, runes("c"))
		}
		assert.Equal(t, filter.All, m.criteria.Category)
		assert.Len(t, m.visible, 3)
	})

	t.Run("search follows every keystroke", func(t *testing.T) {
		m, _ := loadedBoard(t)

		m = update(t, m, runes("/"))
		require.Equal(t, overlaySearch, m.overlay)
		for _, r := range "sicp" {
			m = update(t, m, runes(string(r)))
		}
		assert.Equal(t, "sicp", m.criteria.Query)
		require.Len(t, m.visible, 1)
		assert.Equal(t, "n3", m.visible[0].ID)

		m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, overlayNone, m.overlay)
		assert.Equal(t, "sicp", m.criteria.Query)
	})

	t.Run("source filter and clear", func(t *testing.T) {
		m, _ := loadedBoard(t)

		m = update(t, m, runes("s"))
		m = update(t, m, runes("OPS"))
		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		require.Len(t, m.visible, 1)
		assert.Equal(t, "n2", m.visible[0].ID)

		m = update(t, m, runes("x"))
		assert.Len(t, m.visible, 3)
		assert.Equal(t, filter.All, m.criteria.Source)
	})
}

// ── likes ──

func TestBoard_Like(t *testing.T) {
	t.Run("optimistic toggle confirmed by the store", func(t *testing.T) {
		m, notes := loadedBoard(t)

		m, cmd := updateCmd(t, m, runes("l"))
		require.NotNil(t, cmd)
		state := m.likes.Get("n3").State()
		assert.True(t, state.Liked)
		assert.Equal(t, 2, state.Count)

		notes.EXPECT().ToggleLike(gomock.Any(), "n3", testSession).
			Return(models.LikeStatus{Likes: 5, IsLiked: true}, nil)
		m = update(t, m, cmd())

		state = m.likes.Get("n3").State()
		assert.True(t, state.Liked)
		assert.Equal(t, 5, state.Count)
		n, _ := m.note("n3")
		assert.Equal(t, 5, n.Likes)
	})

	t.Run("failure rolls back", func(t *testing.T) {
		m, notes := loadedBoard(t)
		m.selected = "n1"

		m, cmd := updateCmd(t, m, runes("l"))
		assert.False(t, m.likes.Get("n1").State().Liked)
		assert.Equal(t, 1, m.likes.Get("n1").State().Count)

		notes.EXPECT().ToggleLike(gomock.Any(), "n1", testSession).
			Return(models.LikeStatus{}, service.ErrNoteStoreFailure)
		m = update(t, m, cmd())

		state := m.likes.Get("n1").State()
		assert.True(t, state.Liked)
		assert.Equal(t, 2, state.Count)
		assert.True(t, m.statusErr)
	})

	t.Run("second press while in flight is refused", func(t *testing.T) {
		m, _ := loadedBoard(t)

		m, cmd := updateCmd(t, m, runes("l"))
		require.NotNil(t, cmd)
		m = update(t, m, runes("l"))

		assert.True(t, m.statusErr)
		assert.Contains(t, m.status, "previous like")
		assert.True(t, m.likes.Get("n3").State().Liked)
	})

	t.Run("no session", func(t *testing.T) {
		m, _ := loadedBoard(t)
		m.sessionID = ""

		m, _ = updateCmd(t, m, runes("l"))
		assert.True(t, m.statusErr)
		assert.False(t, m.likes.Get("n3").State().Liked)
	})
}

// ── create, edit, delete ──

func TestBoard_CreateNote(t *testing.T) {
	m, notes := loadedBoard(t)

	m = update(t, m, runes("n"))
	require.Equal(t, overlayForm, m.overlay)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Equal(t, errTextRequired.Error(), m.form.err)

	m.form.text.SetValue("  Taste before you add sugar  ")
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	created := models.Note{ID: "n4", Category: models.Reflection, Content: "Taste before you add sugar", SessionID: testSession}
	notes.EXPECT().Create(gomock.Any(), models.Reflection, models.TextBody{Text: "Taste before you add sugar"}).
		Return(created, nil)
	m = update(t, m, cmd())

	assert.Equal(t, overlayNone, m.overlay)
	assert.Equal(t, "n4", m.visible[0].ID)
	assert.Equal(t, "n4", m.selected)
	assert.Equal(t, "Note added", m.status)
}

func TestBoard_CreateListNote(t *testing.T) {
	m, notes := loadedBoard(t)

	m = update(t, m, runes("n"))
	for m.form.category() != models.ResourceList {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	m.form.title.SetValue("Books")
	m.form.text.SetValue("SICP\n\n  Refactoring ")

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	notes.EXPECT().Create(gomock.Any(), models.ResourceList,
		models.ListBody{Title: "Books", Items: []string{"SICP", "Refactoring"}}).
		Return(models.Note{}, service.ErrInvalidDataProvided)
	m = update(t, m, cmd())

	assert.Equal(t, overlayForm, m.overlay)
	assert.False(t, m.form.submitting)
	assert.Equal(t, service.ErrInvalidDataProvided.Error(), m.form.err)
}

func TestBoard_EditNote(t *testing.T) {
	t.Run("author edits", func(t *testing.T) {
		m, notes := loadedBoard(t)
		m.selected = "n1"

		m = update(t, m, runes("e"))
		require.Equal(t, overlayForm, m.overlay)
		assert.Equal(t, "Coffee first", m.form.text.Value())

		m.form.text.SetValue("Coffee second")
		m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
		require.NotNil(t, cmd)

		notes.EXPECT().Edit(gomock.Any(), gomock.Any(), models.TextBody{Text: "Coffee second"}).
			DoAndReturn(func(_ context.Context, n models.Note, _ models.Body) (models.Note, error) {
				assert.Equal(t, "n1", n.ID)
				n.Content = `{"text":"Coffee second"}`
				return n, nil
			})
		m = update(t, m, cmd())

		n, _ := m.note("n1")
		assert.Equal(t, `{"text":"Coffee second"}`, n.Content)
		assert.Equal(t, "Note saved", m.status)
	})

	t.Run("visitor cannot edit or delete", func(t *testing.T) {
		m, _ := loadedBoard(t)
		m.selected = "n2"

		m = update(t, m, runes("e"))
		assert.Equal(t, overlayNone, m.overlay)
		assert.Equal(t, humanizeError(errNotOwner), m.status)

		m = update(t, m, runes("d"))
		assert.Equal(t, overlayNone, m.overlay)
	})
}

func TestBoard_DeleteNote(t *testing.T) {
	m, notes := loadedBoard(t)

	m = update(t, m, runes("d"))
	require.Equal(t, overlayConfirmDelete, m.overlay)
	assert.Contains(t, m.View(), "Delete note?")

	m = update(t, m, runes("n"))
	assert.Equal(t, overlayNone, m.overlay)

	m = update(t, m, runes("d"))
	m, cmd := updateCmd(t, m, runes("y"))
	require.NotNil(t, cmd)

	notes.EXPECT().Delete(gomock.Any(), "n3").Return(nil)
	m = update(t, m, cmd())

	assert.Len(t, m.visible, 2)
	assert.Equal(t, "n2", m.selected)
}

// ── detail ──

func TestBoard_Detail(t *testing.T) {
	m, _ := loadedBoard(t)

	var copied string
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = defaultWriteClipboard })

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, overlayDetail, m.overlay)
	assert.Contains(t, m.View(), "Books")

	m, cmd := updateCmd(t, m, runes("2"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())
	assert.Equal(t, "SICP", copied)
	assert.Equal(t, "Copied: SICP", m.status)

	_, cmd = updateCmd(t, m, runes("9"))
	assert.Nil(t, cmd)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, overlayNone, m.overlay)
}

// ── canvas ──

func TestBoard_DragPersistsFlooredPosition(t *testing.T) {
	m, notes := loadedBoard(t)

	// n1 is at the origin and drawn from board row 0, screen row 1.
	m = update(t, m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, "n1", m.selected)
	assert.Equal(t, "n1", m.canvas.Dragging())

	m, cmd := updateCmd(t, m, tea.MouseMsg{X: 15, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.NotNil(t, cmd, "a frame is scheduled")
	assert.True(t, m.frameScheduled)

	m, cmd = updateCmd(t, m, tea.MouseMsg{X: 15, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	assert.Empty(t, m.canvas.Dragging())

	n, _ := m.note("n1")
	assert.Equal(t, 80, n.PositionX)
	assert.Equal(t, 32, n.PositionY)

	notes.EXPECT().UpdatePosition(gomock.Any(), "n1", 80, 32).Return(errors.New("offline"))
	m = update(t, m, cmd())

	pos, _ := m.canvas.Position("n1")
	assert.Equal(t, canvas.Point{X: 80, Y: 32}, pos)
	assert.False(t, m.statusErr)
}

func TestBoard_PanOnEmptyCanvas(t *testing.T) {
	m, _ := loadedBoard(t)

	m = update(t, m, tea.MouseMsg{X: 100, Y: 30, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.canvas.IsPanning())

	m = update(t, m, tea.MouseMsg{X: 98, Y: 29, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 98, Y: 29, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.False(t, m.canvas.IsPanning())
	assert.Equal(t, canvas.Point{X: -16, Y: -16}, m.canvas.Pan())
}

func TestBoard_LikeControlClick(t *testing.T) {
	m, _ := loadedBoard(t)

	// n1's controls line is board row 8 and starts at column 2.
	m, cmd := updateCmd(t, m, tea.MouseMsg{X: 2, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	assert.Empty(t, m.canvas.Dragging())
	assert.True(t, m.likes.Get("n1").InFlight())
}

func TestBoard_Zoom(t *testing.T) {
	m, _ := loadedBoard(t)

	m = update(t, m, runes("+"))
	assert.InDelta(t, 1.2, m.canvas.Zoom(), 1e-9)

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown, Ctrl: true})
	assert.InDelta(t, 1.1, m.canvas.Zoom(), 1e-9)

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.InDelta(t, 1.1, m.canvas.Zoom(), 1e-9)
	assert.Equal(t, float64(wheelScroll*cellHeight), m.canvas.Pan().Y)

	m = update(t, m, runes("0"))
	assert.Equal(t, 1.0, m.canvas.Zoom())
	assert.Equal(t, canvas.Point{}, m.canvas.Pan())
}

func TestBoard_GridMode(t *testing.T) {
	m, _ := loadedBoard(t)

	m = update(t, m, runes("g"))
	assert.Equal(t, canvas.ModeGrid, m.canvas.Mode())
	assert.Contains(t, m.View(), "grid")

	// Second card in the first row.
	m = update(t, m, tea.MouseMsg{X: gridCardWidth + gridGap + 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, "n2", m.selected)
	assert.Empty(t, m.canvas.Dragging())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "n1", m.selected)

	m = update(t, m, runes("g"))
	assert.Equal(t, canvas.ModeCanvas, m.canvas.Mode())
}

func TestGridLayout(t *testing.T) {
	assert.Equal(t, 1, gridColumns(10))
	assert.Equal(t, 1, gridColumns(gridCardWidth))
	assert.Equal(t, 2, gridColumns(2*gridCardWidth+gridGap))
	assert.Equal(t, 3, gridVisibleRows(3*gridCardHeight+2))
}

// ── view ──

func TestBoard_View(t *testing.T) {
	m, _ := newTestBoard(t)
	assert.Contains(t, m.View(), "Loading notes")

	m = update(t, m, notesLoadedMsg{})
	assert.Contains(t, m.View(), "No notes yet")

	m, _ = loadedBoard(t)
	view := m.View()
	assert.Contains(t, view, "Coffee Notes")
	assert.Contains(t, view, "3/3 notes")
	assert.Contains(t, view, "Reflections")

	m = update(t, m, runes("v"))
	assert.Contains(t, m.View(), "1.0.0")
}

func TestFilterSummary(t *testing.T) {
	assert.Empty(t, filterSummary(filter.Criteria{Category: filter.All, Source: filter.All}))
	assert.Equal(t, `category: Resources & Tools, search: "go"`,
		filterSummary(filter.Criteria{Category: string(models.ResourceList), Source: filter.All, Query: "go"}))
}
