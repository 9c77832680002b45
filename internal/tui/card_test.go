package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/coffee-notes/internal/likes"
	"github.com/MKhiriev/coffee-notes/models"
)

func TestLikeLabel(t *testing.T) {
	assert.Equal(t, "♡ 0", likeLabel(likes.State{}, false))
	assert.Equal(t, "♥ 3", likeLabel(likes.State{Liked: true, Count: 3}, false))
	assert.Equal(t, "♥ 1…", likeLabel(likes.State{Liked: true, Count: 1}, true))
}

func TestControlsLine(t *testing.T) {
	t.Run("visitor sees only the like control", func(t *testing.T) {
		line, zones := controlsLine(likes.State{Count: 3}, false, false)
		assert.Equal(t, "♡ 3", line)
		assert.Equal(t, []controlZone{{kind: controlLike, from: 0, to: 3}}, zones)
	})

	t.Run("author sees edit and delete", func(t *testing.T) {
		line, zones := controlsLine(likes.State{Liked: true, Count: 3}, false, true)
		assert.Equal(t, "♥ 3   [e]dit [d]el", line)

		assert.Equal(t, controlLike, controlAt(zones, 0))
		assert.Equal(t, controlNone, controlAt(zones, 4))
		assert.Equal(t, controlEdit, controlAt(zones, 6))
		assert.Equal(t, controlEdit, controlAt(zones, 11))
		assert.Equal(t, controlNone, controlAt(zones, 12))
		assert.Equal(t, controlDelete, controlAt(zones, 13))
		assert.Equal(t, controlNone, controlAt(zones, 18))
	})
}

func TestCardLines(t *testing.T) {
	t.Run("text note with source", func(t *testing.T) {
		n := models.Note{
			Category: models.Reflection,
			Content:  `{"text":"Slow down and taste the coffee","source":"barista"}`,
		}

		lines := cardLines(n, likes.State{Count: 2}, false, true, 20, 6)
		assert.Equal(t, []string{
			"Reflections  ✎ yours",
			"Slow down and taste",
			"the coffee",
			"",
			"— barista",
			"♡ 2   [e]dit [d]el",
		}, lines)
	})

	t.Run("long list is cut with an ellipsis", func(t *testing.T) {
		n := models.Note{
			Category: models.ResourceList,
			Content:  `{"title":"Books","items":["a","b","c","d"]}`,
		}

		lines := cardLines(n, likes.State{}, false, false, 20, 5)
		assert.Equal(t, []string{
			"Resources & Tools",
			"Books",
			"• a",
			"• b…",
			"♡ 0",
		}, lines)
	})

	t.Run("one row shows only the header", func(t *testing.T) {
		n := models.Note{Category: models.ActionableAdvice, Content: "Ship it"}
		assert.Equal(t, []string{"Actionable Advice"}, cardLines(n, likes.State{}, false, false, 20, 1))
	})

	t.Run("no rows", func(t *testing.T) {
		assert.Nil(t, cardLines(models.Note{}, likes.State{}, false, false, 20, 0))
	})
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, wrap("abcdefghij", 4))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"a", "b"}, wrap("a\nb", 8))
}

func TestEllipsize(t *testing.T) {
	assert.Equal(t, "abc…", ellipsize("abc", 5))
	assert.Equal(t, "abcd…", ellipsize("abcdef", 5))
}
