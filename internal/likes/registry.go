package likes

import (
	"context"
	"sync"

	"github.com/MKhiriev/coffee-notes/internal/utils"
	"github.com/MKhiriev/coffee-notes/models"
)

// Registry keeps one Toggle per note of the board.
type Registry struct {
	mu      sync.Mutex
	toggles map[string]*Toggle
	toggler Toggler
}

// NewRegistry returns an empty registry whose toggles call toggler.
func NewRegistry(toggler Toggler) *Registry {
	return &Registry{
		toggles: make(map[string]*Toggle),
		toggler: toggler,
	}
}

// Get returns the toggle of noteID, creating an empty one if needed.
func (r *Registry) Get(noteID string) *Toggle {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.toggles[noteID]
	if !ok {
		t = NewToggle(noteID, State{}, r.toggler)
		r.toggles[noteID] = t
	}
	return t
}

// Load sets the state of every note from a fresh snapshot: counts come
// from the notes and liked flags from liked. Toggles of notes that are no
// longer present are dropped; toggles in flight keep their state.
func (r *Registry) Load(notes []models.Note, liked map[string]bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make(map[string]*Toggle, len(notes))
	for _, n := range notes {
		s := State{Liked: liked[n.ID], Count: n.Likes}
		t, ok := r.toggles[n.ID]
		if ok {
			t.Hydrate(s)
		} else {
			t = NewToggle(n.ID, s, r.toggler)
		}
		next[n.ID] = t
	}
	r.toggles = next
}

// Hydrate asks checker which of notes are liked by the session in ctx.
// Without a session nothing is liked and the checker is not called.
func Hydrate(ctx context.Context, checker Checker, notes []models.Note) (map[string]bool, error) {
	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok || len(notes) == 0 {
		return map[string]bool{}, nil
	}

	ids := make([]string, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}

	liked, err := checker.CheckLikes(ctx, sessionID, ids)
	if err != nil {
		return map[string]bool{}, err
	}
	if liked == nil {
		liked = map[string]bool{}
	}

	return liked, nil
}
