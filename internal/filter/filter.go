// Package filter derives the visible subset of the board from the loaded
// notes, a category filter, a source filter and a free-text query.
package filter

import (
	"strings"

	"github.com/MKhiriev/coffee-notes/internal/codec"
	"github.com/MKhiriev/coffee-notes/models"
)

// All disables a category or source filter.
const All = "all"

// Criteria is the set of active filters. The zero value matches everything.
type Criteria struct {
	// Category is All or one of the note categories.
	Category string

	// Source is All or a case-insensitive substring of the note source.
	Source string

	// Query is a case-insensitive substring of the searchable note text.
	Query string
}

// IsZero reports whether no filter is active.
func (c Criteria) IsZero() bool {
	return isAll(c.Category) && isAll(c.Source) && c.Query == ""
}

// Apply returns the notes that match c in their original relative order.
// The input slice is not modified.
func Apply(notes []models.Note, c Criteria) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if Matches(n, c) {
			out = append(out, n)
		}
	}
	return out
}

// Matches reports whether a single note passes every active filter.
func Matches(n models.Note, c Criteria) bool {
	if !isAll(c.Category) && string(n.Category) != c.Category {
		return false
	}

	body := codec.Decode(n.Content)

	if !isAll(c.Source) && !containsFold(body.Attribution(), c.Source) {
		return false
	}

	if c.Query != "" && !containsFold(codec.Searchable(body), c.Query) {
		return false
	}

	return true
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, All)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
