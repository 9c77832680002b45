// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package canvas implements the interaction model of the free-form board:
// zoom, pan, per-note drag and pinch gestures, translated into a single
// content transform and absolute note positions.
//
// A Canvas is driven by one event loop and is not safe for concurrent use.
// Only [PendingMove.Commit] is meant to run on another goroutine.
package canvas

import (
	"math"
)

const (
	// MinZoom and MaxZoom bound every zoom change.
	MinZoom = 0.1
	MaxZoom = 3.0

	// ZoomStep is applied by ZoomIn and ZoomOut.
	ZoomStep = 0.2

	// WheelZoomFactor converts a wheel delta into a zoom delta.
	WheelZoomFactor = 0.001

	// NoteWidth and NoteHeight are the default extent of a note.
	NoteWidth  = 256
	NoteHeight = 160
)

// Mode is the layout of the board.
type Mode int

const (
	// ModeCanvas places notes at their stored positions and enables
	// panning, zooming and dragging.
	ModeCanvas Mode = iota

	// ModeGrid lays notes out in a fixed grid. Dragging is disabled.
	ModeGrid
)

// String returns the display name of the mode.
func (m Mode) String() string {
	if m == ModeGrid {
		return "grid"
	}
	return "canvas"
}

// Item is a note as seen by the canvas.
type Item struct {
	ID       string
	Position Point
	Size     Size
}

// Target describes what lies under the pointer when a gesture starts.
type Target struct {
	// NoteID is the note under the pointer, or "" for empty canvas.
	NoteID string

	// OnControl is true when the pointer is on an interactive control of
	// the note (like, edit or delete). Controls never start a drag.
	OnControl bool
}

type noteState struct {
	position Point
	size     Size
	dragging bool
}

// view is the state the renderer sees. During gestures it is refreshed at
// most once per frame.
type view struct {
	transform Transform
	dragID    string
	dragPos   Point
}

// Canvas holds the pan, zoom and drag state of one board.
type Canvas struct {
	zoom    float64
	pan     Point // committed
	livePan Point // in flight while panning

	panning  bool
	panStart Point

	pinching  bool
	pinchDist float64
	pinchZoom float64

	mode Mode

	order []string
	notes map[string]*noteState

	dragID     string
	dragOffset Point
	dragOrigin Point

	persister PositionPersister
	frames    *FrameScheduler
	view      view
}

// New returns a canvas at zoom 1 and pan {0, 0}.
// Finished drags are persisted through persister, which may be nil.
func New(persister PositionPersister) *Canvas {
	c := &Canvas{
		zoom:      1,
		notes:     make(map[string]*noteState),
		persister: persister,
		frames:    NewFrameScheduler(),
	}
	c.commitView()

	return c
}

// ── state accessors ──

// Zoom returns the current zoom level.
func (c *Canvas) Zoom() float64 { return c.zoom }

// Pan returns the committed pan offset.
func (c *Canvas) Pan() Point { return c.pan }

// IsPanning reports whether a pan gesture is in progress.
func (c *Canvas) IsPanning() bool { return c.panning }

// Dragging returns the ID of the note being dragged, or "".
func (c *Canvas) Dragging() string { return c.dragID }

// Mode returns the layout mode.
func (c *Canvas) Mode() Mode { return c.mode }

// Frames returns the scheduler that paces view updates.
func (c *Canvas) Frames() *FrameScheduler { return c.frames }

// Transform returns the transform the renderer should apply.
func (c *Canvas) Transform() Transform { return c.view.transform }

// Position returns the rendered position of a note.
func (c *Canvas) Position(id string) (Point, bool) {
	if id != "" && id == c.view.dragID {
		return c.view.dragPos, true
	}
	n, ok := c.notes[id]
	if !ok {
		return Point{}, false
	}
	return n.position, true
}

// IsDragging reports whether the note is being dragged.
func (c *Canvas) IsDragging(id string) bool {
	n, ok := c.notes[id]
	return ok && n.dragging
}

// ── notes ──

// SetNotes replaces the notes known to the canvas. The slice order is the
// render order: later items are drawn on top. A drag in progress is
// cancelled.
func (c *Canvas) SetNotes(items []Item) {
	c.cancelDrag()

	c.order = make([]string, 0, len(items))
	c.notes = make(map[string]*noteState, len(items))
	for _, it := range items {
		size := it.Size
		if size.W <= 0 || size.H <= 0 {
			size = Size{W: NoteWidth, H: NoteHeight}
		}
		if _, dup := c.notes[it.ID]; !dup {
			c.order = append(c.order, it.ID)
		}
		c.notes[it.ID] = &noteState{position: it.Position, size: size}
	}

	c.commitView()
}

// SetSize updates the extent of a note used for hit testing.
func (c *Canvas) SetSize(id string, size Size) {
	if n, ok := c.notes[id]; ok && size.W > 0 && size.H > 0 {
		n.size = size
	}
}

// HitTest returns the topmost note under a screen point.
func (c *Canvas) HitTest(screen Point) (string, bool) {
	p := c.toContent(screen)
	for i := len(c.order) - 1; i >= 0; i-- {
		id := c.order[i]
		n := c.notes[id]
		if p.X >= n.position.X && p.X < n.position.X+n.size.W &&
			p.Y >= n.position.Y && p.Y < n.position.Y+n.size.H {
			return id, true
		}
	}
	return "", false
}

// ToContent maps a screen point to content coordinates.
func (c *Canvas) ToContent(screen Point) Point {
	return c.toContent(screen)
}

func (c *Canvas) toContent(screen Point) Point {
	pan := c.pan
	if c.panning {
		pan = c.livePan
	}
	return screen.Sub(pan).Scale(1 / c.zoom)
}

// ── layout mode ──

// SetMode switches the layout. Entering grid mode cancels any drag and
// returns the dragged note to its starting position.
func (c *Canvas) SetMode(m Mode) {
	if m == ModeGrid {
		c.cancelDrag()
	}
	c.mode = m
	c.commitView()
}

// ── zoom ──

// ZoomIn increases the zoom by one step.
func (c *Canvas) ZoomIn() { c.setZoom(c.zoom + ZoomStep) }

// ZoomOut decreases the zoom by one step.
func (c *Canvas) ZoomOut() { c.setZoom(c.zoom - ZoomStep) }

// Wheel handles a scroll-wheel event. The wheel zooms only while ctrl or
// meta is held; otherwise the event is left to normal scrolling and Wheel
// returns false.
func (c *Canvas) Wheel(deltaY float64, modifier bool) bool {
	if !modifier {
		return false
	}
	c.setZoom(c.zoom - deltaY*WheelZoomFactor)
	return true
}

// ResetView sets zoom to 1 and pan to {0, 0}.
func (c *Canvas) ResetView() {
	c.zoom = 1
	c.pan = Point{}
	c.livePan = Point{}
	c.panning = false
	c.commitView()
}

func (c *Canvas) setZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	c.zoom = clampZoom(z)
	if c.panning || c.pinching {
		c.frames.Request()
		return
	}
	c.commitView()
}

func clampZoom(z float64) float64 {
	return math.Min(MaxZoom, math.Max(MinZoom, z))
}

// ── pan ──

// PanBy moves the committed pan offset by d screen units.
func (c *Canvas) PanBy(d Point) {
	if c.panning {
		return
	}
	c.pan = c.pan.Add(d)
	c.commitView()
}

// ── pointer ──

// PointerDown starts a gesture at a screen point.
//
// On empty canvas it starts a pan. On a note body in canvas mode it starts
// a drag. Controls and notes in grid mode start nothing.
func (c *Canvas) PointerDown(screen Point, target Target) {
	if c.panning || c.dragID != "" || c.pinching {
		return
	}

	if target.NoteID == "" {
		c.startPan(screen)
		return
	}

	if target.OnControl || c.mode != ModeCanvas {
		return
	}

	n, ok := c.notes[target.NoteID]
	if !ok {
		return
	}

	c.dragID = target.NoteID
	c.dragOffset = screen.Scale(1 / c.zoom).Sub(n.position)
	c.dragOrigin = n.position
	n.dragging = true
	c.commitView()
}

// PointerMove tracks the pointer during a gesture.
func (c *Canvas) PointerMove(screen Point) {
	switch {
	case c.dragID != "":
		n := c.notes[c.dragID]
		n.position = screen.Scale(1 / c.zoom).Sub(c.dragOffset)
		c.frames.Request()
	case c.panning:
		c.livePan = screen.Sub(c.panStart)
		c.frames.Request()
	}
}

// PointerUp ends the current gesture.
//
// A finished pan commits the in-flight offset. A finished drag floors the
// note position, updates it locally and returns the move to persist.
func (c *Canvas) PointerUp() (*PendingMove, bool) {
	if c.panning {
		c.endPan()
		return nil, false
	}

	if c.dragID == "" {
		return nil, false
	}

	id := c.dragID
	n := c.notes[id]
	x, y := n.position.Floor()
	n.position = Point{X: float64(x), Y: float64(y)}
	n.dragging = false
	c.dragID = ""
	c.commitView()

	return &PendingMove{NoteID: id, X: x, Y: y, persister: c.persister}, true
}

func (c *Canvas) startPan(screen Point) {
	c.panning = true
	c.panStart = screen.Sub(c.pan)
	c.livePan = c.pan
	c.commitView()
}

func (c *Canvas) endPan() {
	c.pan = c.livePan
	c.panning = false
	c.commitView()
}

// cancelDrag abandons the drag in progress and puts the note back where the
// drag started, so nothing needs to be persisted.
func (c *Canvas) cancelDrag() {
	if c.dragID == "" {
		return
	}
	if n, ok := c.notes[c.dragID]; ok {
		n.position = c.dragOrigin
		n.dragging = false
	}
	c.dragID = ""
	c.commitView()
}

// ── frames ──

// Frame is called once per display refresh. It applies the latest gesture
// state to the rendered view when an update was requested and reports
// whether the view changed.
func (c *Canvas) Frame() bool {
	if !c.frames.Take() {
		return false
	}
	c.view = c.snapshot()
	return true
}

func (c *Canvas) commitView() {
	c.frames.Cancel()
	c.view = c.snapshot()
}

func (c *Canvas) snapshot() view {
	pan := c.pan
	if c.panning {
		pan = c.livePan
	}

	v := view{
		transform: Transform{
			X:        pan.X,
			Y:        pan.Y,
			Scale:    c.zoom,
			Animated: !c.panning && c.dragID == "",
		},
		dragID: c.dragID,
	}
	if n, ok := c.notes[c.dragID]; ok {
		v.dragPos = n.position
	}

	return v
}
