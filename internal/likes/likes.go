// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package likes implements the optimistic like toggle of a note.
//
// A toggle is a two-phase transition: Begin applies the tentative state
// immediately, Settle either confirms it with the store's answer or rolls
// it back to the exact previous state.
package likes

import (
	"context"
	"sync"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/utils"
	"github.com/MKhiriev/coffee-notes/models"
)

//go:generate mockgen -source=likes.go -destination=../mock/likes_mock.go -package=mock

// Toggler flips the like of a session on a note in the note store and
// returns the authoritative result.
type Toggler interface {
	ToggleLike(ctx context.Context, noteID, sessionID string) (models.LikeStatus, error)
}

// Checker reports which of the given notes are liked by a session.
type Checker interface {
	CheckLikes(ctx context.Context, sessionID string, noteIDs []string) (map[string]bool, error)
}

// State is the like state of one note as seen by the current session.
type State struct {
	Liked bool
	Count int
}

// Phase is the position of a toggle in its lifecycle.
type Phase int

const (
	// Idle means no toggle has happened yet.
	Idle Phase = iota
	// Tentative means the optimistic state is shown and the store call is
	// in flight.
	Tentative
	// Confirmed means the last toggle was accepted and the state holds the
	// store's values.
	Confirmed
	// RolledBack means the last toggle failed and the previous state was
	// restored.
	RolledBack
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case Tentative:
		return "tentative"
	case Confirmed:
		return "confirmed"
	case RolledBack:
		return "rolled back"
	default:
		return "idle"
	}
}

// Transition is an in-flight toggle returned by Begin.
type Transition struct {
	NoteID    string
	SessionID string

	// Before is restored on rollback.
	Before State
	// Tentative is the optimistic state shown while the call is in flight.
	Tentative State

	seq uint64
}

// Toggle holds the like state of a single note.
type Toggle struct {
	mu sync.Mutex

	noteID   string
	state    State
	phase    Phase
	inFlight bool
	seq      uint64

	toggler Toggler
}

// NewToggle returns a toggle for noteID starting at initial.
func NewToggle(noteID string, initial State, toggler Toggler) *Toggle {
	return &Toggle{
		noteID:  noteID,
		state:   normalize(initial),
		toggler: toggler,
	}
}

// State returns the state to render.
func (t *Toggle) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Phase returns the lifecycle phase of the last toggle.
func (t *Toggle) Phase() Phase {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.phase
}

// InFlight reports whether a toggle is waiting for the store.
func (t *Toggle) InFlight() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.inFlight
}

// Hydrate overwrites the state with values loaded from the store.
// It is ignored while a toggle is in flight.
func (t *Toggle) Hydrate(s State) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inFlight {
		return
	}
	t.state = normalize(s)
}

// Begin starts a toggle for sessionID and applies the tentative state:
// the liked flag flips and the count moves by one, never below zero.
//
// It returns false and changes nothing when sessionID is empty or another
// toggle for the note is in flight.
func (t *Toggle) Begin(sessionID string) (Transition, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if sessionID == "" || t.inFlight {
		return Transition{}, false
	}

	before := t.state
	tentative := State{Liked: !before.Liked, Count: before.Count + 1}
	if before.Liked {
		tentative.Count = max(0, before.Count-1)
	}

	t.seq++
	t.inFlight = true
	t.phase = Tentative
	t.state = tentative

	return Transition{
		NoteID:    t.noteID,
		SessionID: sessionID,
		Before:    before,
		Tentative: tentative,
		seq:       t.seq,
	}, true
}

// Settle finishes tr. On success the state becomes the store's answer; on
// failure it is restored to tr.Before. A transition that is not the
// current one is ignored.
func (t *Toggle) Settle(tr Transition, status models.LikeStatus, err error) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.inFlight || tr.seq != t.seq {
		return t.state
	}

	t.inFlight = false
	if err != nil {
		t.state = tr.Before
		t.phase = RolledBack
		return t.state
	}

	t.state = normalize(State{Liked: status.IsLiked, Count: status.Likes})
	t.phase = Confirmed

	return t.state
}

// Toggle runs a full toggle with the session taken from ctx.
//
// Without a session, or while another toggle is in flight, it returns
// ErrNoSession or ErrToggleInFlight and leaves the state as it is. A store
// failure rolls the state back and is returned to the caller. The rollback
// also happens if the store call panics.
func (t *Toggle) Toggle(ctx context.Context) (state State, err error) {
	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		return t.State(), ErrNoSession
	}

	tr, ok := t.Begin(sessionID)
	if !ok {
		return t.State(), ErrToggleInFlight
	}

	settled := false
	defer func() {
		if !settled {
			t.Settle(tr, models.LikeStatus{}, ErrToggleAborted)
		}
	}()

	status, err := t.toggler.ToggleLike(ctx, tr.NoteID, tr.SessionID)
	state = t.Settle(tr, status, err)
	settled = true

	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*Toggle.Toggle").
			Str("note_id", tr.NoteID).
			Msg("like toggle rolled back")
		return state, err
	}

	return state, nil
}

func normalize(s State) State {
	if s.Count < 0 {
		s.Count = 0
	}
	return s
}
