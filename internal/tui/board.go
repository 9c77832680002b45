// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"math"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/coffee-notes/internal/canvas"
	"github.com/MKhiriev/coffee-notes/internal/filter"
	"github.com/MKhiriev/coffee-notes/internal/likes"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/MKhiriev/coffee-notes/models"
)

// A terminal cell covers cellWidth×cellHeight units of canvas space, so a
// note of the default size is 32×10 cells at zoom 1.
const (
	cellWidth  = 8
	cellHeight = 16

	headerHeight = 1
	footerHeight = 2

	// panStep is the keyboard pan distance in cells.
	panStep = 4
	// wheelDelta is the canvas delta of one wheel notch.
	wheelDelta = 100
	// wheelScroll is the pan distance of one wheel notch in rows.
	wheelScroll = 3
)

type overlay int

const (
	overlayNone overlay = iota
	overlayForm
	overlayDetail
	overlayConfirmDelete
	overlayInfo
	overlaySearch
	overlaySource
)

// boardModel is the root model of the client TUI.
type boardModel struct {
	ctx       context.Context
	notesSvc  service.ClientNoteService
	sessionID string
	buildInfo models.AppBuildInfo

	width, height int

	notes    []models.Note
	visible  []models.Note
	criteria filter.Criteria
	selected string

	canvas *canvas.Canvas
	likes  *likes.Registry

	overlay   overlay
	form      formModel
	detail    detailModel
	confirmID string
	input     textinput.Model

	loading        bool
	frameScheduled bool
	serverVersion  string

	status    string
	statusErr bool
	statusSeq int
}

func newBoardModel(ctx context.Context, notes service.ClientNoteService, sessionID string, info models.AppBuildInfo) boardModel {
	input := textinput.New()
	input.Width = 40
	input.CharLimit = 200

	return boardModel{
		ctx:       ctx,
		notesSvc:  notes,
		sessionID: sessionID,
		buildInfo: info,
		canvas:    canvas.New(notes),
		likes:     likes.NewRegistry(notes),
		input:     input,
		loading:   true,
		criteria:  filter.Criteria{Category: filter.All, Source: filter.All},
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(loadNotesCmd(m.ctx, m.notesSvc), textinput.Blink)
}

// ── board state ──

// refresh recomputes the visible notes and hands them to the canvas,
// oldest first so newer notes are drawn on top.
func (m *boardModel) refresh() {
	m.visible = filter.Apply(m.notes, m.criteria)

	items := make([]canvas.Item, 0, len(m.visible))
	for i := len(m.visible) - 1; i >= 0; i-- {
		n := m.visible[i]
		items = append(items, canvas.Item{
			ID:       n.ID,
			Position: canvas.Point{X: float64(n.PositionX), Y: float64(n.PositionY)},
		})
	}
	m.canvas.SetNotes(items)

	if m.visibleIndex(m.selected) < 0 {
		m.selected = ""
		if len(m.visible) > 0 {
			m.selected = m.visible[0].ID
		}
	}
}

func (m boardModel) visibleIndex(id string) int {
	if id == "" {
		return -1
	}
	for i, n := range m.visible {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (m boardModel) note(id string) (models.Note, bool) {
	for _, n := range m.notes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

func (m *boardModel) replaceNote(note models.Note) {
	for i, n := range m.notes {
		if n.ID == note.ID {
			m.notes[i] = note
			return
		}
	}
}

func (m *boardModel) removeNote(id string) {
	for i, n := range m.notes {
		if n.ID == id {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return
		}
	}
}

func (m *boardModel) selectDelta(delta int) {
	if len(m.visible) == 0 {
		return
	}
	idx := m.visibleIndex(m.selected)
	if idx < 0 {
		m.selected = m.visible[0].ID
		return
	}
	idx = min(max(idx+delta, 0), len(m.visible)-1)
	m.selected = m.visible[idx].ID
}

func (m boardModel) boardHeight() int {
	return max(0, m.height-headerHeight-footerHeight)
}

// ── status ──

func (m *boardModel) setStatus(s string) tea.Cmd {
	m.statusSeq++
	m.status = s
	m.statusErr = false
	return clearStatusCmd(m.statusSeq)
}

func (m *boardModel) setError(err error) tea.Cmd {
	m.statusSeq++
	m.status = humanizeError(err)
	m.statusErr = true
	return clearStatusCmd(m.statusSeq)
}

func (m *boardModel) scheduleFrame() tea.Cmd {
	if m.frameScheduled || !m.canvas.Frames().Pending() {
		return nil
	}
	m.frameScheduled = true
	return frameCmd()
}

// ── geometry ──

// screenPoint maps the center of a board cell to canvas screen space.
func screenPoint(col, row int) canvas.Point {
	return canvas.Point{
		X: (float64(col) + 0.5) * cellWidth,
		Y: (float64(row) + 0.5) * cellHeight,
	}
}

// cardRect returns the cells covered by a note at content position pos.
func cardRect(pos canvas.Point, t canvas.Transform) (x, y, w, h int) {
	sp := t.Apply(pos)
	x = int(math.Floor(sp.X / cellWidth))
	y = int(math.Floor(sp.Y / cellHeight))
	w = max(1, int(math.Round(canvas.NoteWidth*t.Scale/cellWidth)))
	h = max(1, int(math.Round(canvas.NoteHeight*t.Scale/cellHeight)))
	return x, y, w, h
}

// controlUnder returns the card control under a board cell, if any.
func (m boardModel) controlUnder(id string, col, row int) controlKind {
	n, ok := m.note(id)
	if !ok {
		return controlNone
	}
	pos, ok := m.canvas.Position(id)
	if !ok {
		return controlNone
	}

	x, y, w, h := cardRect(pos, m.canvas.Transform())
	if w < 4 || h < 3 || row != y+h-2 {
		return controlNone
	}

	t := m.likes.Get(id)
	_, zones := controlsLine(t.State(), t.InFlight(), n.OwnedBy(m.sessionID))
	return controlAt(zones, col-(x+2))
}
