package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/coffee-notes/internal/canvas"
	"github.com/MKhiriev/coffee-notes/internal/filter"
	"github.com/MKhiriev/coffee-notes/internal/likes"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/models"
)

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.overlay == overlayDetail {
			m.detail.resize(m.width, m.boardHeight(), m.likes.Get(m.detail.note.ID).State())
		}
		return m, nil

	case notesLoadedMsg:
		return m.onNotesLoaded(msg)

	case noteSavedMsg:
		return m.onNoteSaved(msg)

	case noteDeletedMsg:
		if msg.err != nil {
			return m, m.setError(msg.err)
		}
		m.removeNote(msg.noteID)
		m.refresh()
		return m, m.setStatus("Note deleted")

	case likeSettledMsg:
		return m.onLikeSettled(msg)

	case positionSavedMsg:
		// The note stays where it was dropped; the failure is only logged.
		return m, nil

	case serverVersionMsg:
		if msg.err != nil {
			m.serverVersion = "unavailable"
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m, m.setError(fmt.Errorf("clipboard: %w", msg.err))
		}
		return m, m.setStatus("Copied: " + msg.item)

	case frameMsg:
		m.frameScheduled = false
		m.canvas.Frame()
		return m, m.scheduleFrame()

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch m.overlay {
	case overlayForm:
		m.form, cmd = m.form.Update(msg)
	case overlaySearch, overlaySource:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// ── completions ──

func (m boardModel) onNotesLoaded(msg notesLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		logger.FromContext(m.ctx).Err(msg.err).Str("func", "boardModel.onNotesLoaded").Msg("error loading notes")
		return m, m.setError(msg.err)
	}

	m.notes = msg.notes
	m.likes.Load(m.notes, msg.liked)
	m.refresh()

	if msg.likesErr != nil {
		logger.FromContext(m.ctx).Err(msg.likesErr).Str("func", "boardModel.onNotesLoaded").Msg("error loading liked notes")
		return m, m.setError(fmt.Errorf("likes could not be loaded: %w", msg.likesErr))
	}
	return m, nil
}

func (m boardModel) onNoteSaved(msg noteSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.form.submitting = false
		m.form.err = humanizeError(msg.err)
		return m, nil
	}

	m.overlay = overlayNone
	if msg.created {
		m.notes = append([]models.Note{msg.note}, m.notes...)
		m.likes.Get(msg.note.ID)
	} else {
		m.replaceNote(msg.note)
	}
	m.refresh()
	if m.visibleIndex(msg.note.ID) >= 0 {
		m.selected = msg.note.ID
	}

	if msg.created {
		return m, m.setStatus("Note added")
	}
	return m, m.setStatus("Note saved")
}

func (m boardModel) onLikeSettled(msg likeSettledMsg) (tea.Model, tea.Cmd) {
	state := m.likes.Get(msg.tr.NoteID).Settle(msg.tr, msg.status, msg.err)

	if n, ok := m.note(msg.tr.NoteID); ok {
		n.Likes = state.Count
		m.replaceNote(n)
	}
	if m.overlay == overlayDetail && m.detail.note.ID == msg.tr.NoteID {
		m.detail.refresh(state)
	}

	if msg.err != nil {
		logger.FromContext(m.ctx).Err(msg.err).
			Str("func", "boardModel.onLikeSettled").
			Str("note_id", msg.tr.NoteID).
			Msg("like toggle rolled back")
		return m, m.setError(fmt.Errorf("like failed: %w", msg.err))
	}
	return m, nil
}

// ── actions ──

func (m *boardModel) like(noteID string) tea.Cmd {
	if noteID == "" {
		return nil
	}
	t := m.likes.Get(noteID)
	tr, ok := t.Begin(m.sessionID)
	if !ok {
		if m.sessionID == "" {
			return m.setError(likes.ErrNoSession)
		}
		return m.setError(likes.ErrToggleInFlight)
	}

	if m.overlay == overlayDetail && m.detail.note.ID == noteID {
		m.detail.refresh(tr.Tentative)
	}
	return toggleLikeCmd(m.ctx, m.notesSvc, tr)
}

func (m *boardModel) openEdit(noteID string) tea.Cmd {
	n, ok := m.note(noteID)
	if !ok {
		return nil
	}
	if !n.OwnedBy(m.sessionID) {
		return m.setError(errNotOwner)
	}
	m.form = newFormModel(&n)
	m.overlay = overlayForm
	return textinput.Blink
}

func (m *boardModel) openDelete(noteID string) tea.Cmd {
	n, ok := m.note(noteID)
	if !ok {
		return nil
	}
	if !n.OwnedBy(m.sessionID) {
		return m.setError(errNotOwner)
	}
	m.confirmID = noteID
	m.overlay = overlayConfirmDelete
	return nil
}

func (m *boardModel) openDetail(noteID string) {
	n, ok := m.note(noteID)
	if !ok {
		return
	}
	m.detail = newDetailModel(n, m.likes.Get(noteID).State(), m.width, m.boardHeight())
	m.overlay = overlayDetail
}

func (m *boardModel) activate(kind controlKind, noteID string) tea.Cmd {
	switch kind {
	case controlLike:
		return m.like(noteID)
	case controlEdit:
		return m.openEdit(noteID)
	case controlDelete:
		return m.openDelete(noteID)
	}
	return nil
}

func (m *boardModel) cycleCategory() {
	options := make([]string, 0, len(models.Categories)+1)
	options = append(options, filter.All)
	for _, c := range models.Categories {
		options = append(options, string(c))
	}

	next := 0
	for i, o := range options {
		if o == m.criteria.Category || (i == 0 && m.criteria.Category == "") {
			next = (i + 1) % len(options)
		}
	}
	m.criteria.Category = options[next]
	m.refresh()
}

func (m *boardModel) toggleLayout() {
	if m.canvas.Mode() == canvas.ModeCanvas {
		m.canvas.SetMode(canvas.ModeGrid)
		return
	}
	m.canvas.SetMode(canvas.ModeCanvas)
}

// ── keys ──

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayForm:
		return m.handleFormKey(msg)
	case overlayDetail:
		return m.handleDetailKey(msg)
	case overlayConfirmDelete:
		return m.handleConfirmKey(msg)
	case overlayInfo:
		if key.Matches(msg, keys.Back, keys.Info, keys.Open, keys.Quit) {
			m.overlay = overlayNone
		}
		return m, nil
	case overlaySearch, overlaySource:
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Next):
		m.selectDelta(1)
	case key.Matches(msg, keys.Prev):
		m.selectDelta(-1)
	case key.Matches(msg, keys.Open):
		m.openDetail(m.selected)
	case key.Matches(msg, keys.New):
		m.form = newFormModel(nil)
		m.overlay = overlayForm
		return m, textinput.Blink
	case key.Matches(msg, keys.Edit):
		return m, m.openEdit(m.selected)
	case key.Matches(msg, keys.Delete):
		return m, m.openDelete(m.selected)
	case key.Matches(msg, keys.Like):
		return m, m.like(m.selected)
	case key.Matches(msg, keys.Search):
		m.openInput(overlaySearch, "Search: ", m.criteria.Query)
		return m, textinput.Blink
	case key.Matches(msg, keys.Source):
		source := m.criteria.Source
		if source == filter.All {
			source = ""
		}
		m.openInput(overlaySource, "Source: ", source)
		return m, textinput.Blink
	case key.Matches(msg, keys.Category):
		m.cycleCategory()
	case key.Matches(msg, keys.Clear):
		m.criteria = filter.Criteria{Category: filter.All, Source: filter.All}
		m.refresh()
	case key.Matches(msg, keys.Layout):
		m.toggleLayout()
	case key.Matches(msg, keys.Reload):
		m.loading = true
		return m, loadNotesCmd(m.ctx, m.notesSvc)
	case key.Matches(msg, keys.Info):
		m.overlay = overlayInfo
		return m, serverVersionCmd(m.ctx, m.notesSvc)
	default:
		if m.canvas.Mode() == canvas.ModeGrid {
			m.handleGridNavKey(msg)
		} else {
			m.handleCanvasKey(msg)
		}
	}

	return m, nil
}

func (m *boardModel) handleCanvasKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.ZoomIn):
		m.canvas.ZoomIn()
	case key.Matches(msg, keys.ZoomOut):
		m.canvas.ZoomOut()
	case key.Matches(msg, keys.ZoomReset):
		m.canvas.ResetView()
	case key.Matches(msg, keys.Up):
		m.canvas.PanBy(canvas.Point{Y: panStep * cellHeight})
	case key.Matches(msg, keys.Down):
		m.canvas.PanBy(canvas.Point{Y: -panStep * cellHeight})
	case key.Matches(msg, keys.Left):
		m.canvas.PanBy(canvas.Point{X: panStep * 2 * cellWidth})
	case key.Matches(msg, keys.Right):
		m.canvas.PanBy(canvas.Point{X: -panStep * 2 * cellWidth})
	}
}

func (m *boardModel) handleGridNavKey(msg tea.KeyMsg) {
	cols := gridColumns(m.width)
	switch {
	case key.Matches(msg, keys.Up):
		m.selectDelta(-cols)
	case key.Matches(msg, keys.Down):
		m.selectDelta(cols)
	case key.Matches(msg, keys.Left):
		m.selectDelta(-1)
	case key.Matches(msg, keys.Right):
		m.selectDelta(1)
	}
}

func (m boardModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		if !m.form.submitting {
			m.overlay = overlayNone
		}
		return m, nil
	case key.Matches(msg, keys.Save):
		if m.form.submitting {
			return m, nil
		}
		body, err := m.form.body()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.err = ""
		m.form.submitting = true
		if m.form.editing != nil {
			return m, editNoteCmd(m.ctx, m.notesSvc, *m.form.editing, body)
		}
		return m, createNoteCmd(m.ctx, m.notesSvc, m.form.category(), body)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m boardModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.detail.note.ID

	switch {
	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Quit):
		m.overlay = overlayNone
		return m, nil
	case key.Matches(msg, keys.Like):
		return m, m.like(id)
	case key.Matches(msg, keys.Edit):
		return m, m.openEdit(id)
	case key.Matches(msg, keys.Delete):
		return m, m.openDelete(id)
	case key.Matches(msg, keys.CopyItem):
		if !m.detail.isList() {
			return m, m.setError(errNothingToCopy)
		}
		item, ok := m.detail.item(int(msg.Runes[0] - '0'))
		if !ok {
			return m, nil
		}
		return m, copyCmd(item)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m boardModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		id := m.confirmID
		m.confirmID = ""
		m.overlay = overlayNone
		return m, deleteNoteCmd(m.ctx, m.notesSvc, id)
	case key.Matches(msg, keys.Cancel):
		m.confirmID = ""
		m.overlay = overlayNone
	}
	return m, nil
}

func (m *boardModel) openInput(kind overlay, prompt, value string) {
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	m.overlay = kind
}

// handleInputKey edits the search or source filter. The board follows
// every keystroke; enter or esc closes the input and keeps the value.
func (m boardModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
		m.input.Blur()
		m.overlay = overlayNone
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	value := m.input.Value()
	if m.overlay == overlaySearch {
		m.criteria.Query = value
	} else {
		if value == "" {
			value = filter.All
		}
		m.criteria.Source = value
	}
	m.refresh()

	return m, cmd
}

// ── mouse ──

func (m boardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay == overlayDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	if m.overlay != overlayNone {
		return m, nil
	}

	row := msg.Y - headerHeight
	if m.canvas.Mode() == canvas.ModeGrid {
		return m.handleGridMouse(msg, row)
	}

	p := screenPoint(msg.X, row)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			delta := float64(wheelDelta)
			if msg.Button == tea.MouseButtonWheelUp {
				delta = -delta
			}
			if !m.canvas.Wheel(delta, msg.Ctrl || msg.Alt) {
				m.canvas.PanBy(canvas.Point{Y: -delta / wheelDelta * wheelScroll * cellHeight})
			}
			return m, nil

		case tea.MouseButtonLeft:
			if row < 0 || row >= m.boardHeight() {
				return m, nil
			}
			id, hit := m.canvas.HitTest(p)
			if hit {
				m.selected = id
				if kind := m.controlUnder(id, msg.X, row); kind != controlNone {
					return m, m.activate(kind, id)
				}
			}
			m.canvas.PointerDown(p, canvas.Target{NoteID: id})
		}

	case tea.MouseActionMotion:
		m.canvas.PointerMove(p)
		return m, m.scheduleFrame()

	case tea.MouseActionRelease:
		move, ok := m.canvas.PointerUp()
		if !ok {
			return m, nil
		}
		if n, found := m.note(move.NoteID); found {
			n.PositionX, n.PositionY = move.X, move.Y
			m.replaceNote(n)
			m.visible = filter.Apply(m.notes, m.criteria)
		}
		return m, commitMoveCmd(m.ctx, *move)
	}

	return m, nil
}

func (m boardModel) handleGridMouse(msg tea.MouseMsg, row int) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.selectDelta(-gridColumns(m.width))
	case tea.MouseButtonWheelDown:
		m.selectDelta(gridColumns(m.width))
	case tea.MouseButtonLeft:
		if idx := m.gridIndexAt(msg.X, row); idx >= 0 {
			m.selected = m.visible[idx].ID
		}
	}
	return m, nil
}
