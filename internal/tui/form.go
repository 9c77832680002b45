package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/coffee-notes/internal/codec"
	"github.com/MKhiriev/coffee-notes/models"
)

type formField int

const (
	fieldCategory formField = iota
	fieldTitle
	fieldText
	fieldSource
)

// formModel creates a note or edits the body of an existing one. The
// category is chosen only on creation.
type formModel struct {
	editing *models.Note

	categoryIdx int
	title       textinput.Model
	text        textarea.Model
	source      textinput.Model

	focus      formField
	submitting bool
	err        string
}

func newFormModel(note *models.Note) formModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.Width = 48
	title.CharLimit = 200

	text := textarea.New()
	text.SetWidth(52)
	text.SetHeight(6)
	text.ShowLineNumbers = false

	source := textinput.New()
	source.Placeholder = "Where did this come from? (optional)"
	source.Width = 48
	source.CharLimit = 200

	m := formModel{title: title, text: text, source: source}
	if note == nil {
		m.focusField(fieldCategory)
		return m
	}

	n := *note
	m.editing = &n
	for i, c := range models.Categories {
		if c == n.Category {
			m.categoryIdx = i
		}
	}

	switch b := codec.Decode(n.Content).(type) {
	case models.ListBody:
		m.title.SetValue(b.Title)
		m.text.SetValue(strings.Join(b.Items, "\n"))
		m.source.SetValue(b.Source)
	case models.TextBody:
		m.text.SetValue(b.Text)
		m.source.SetValue(b.Source)
	}
	m.focusField(m.fields()[0])

	return m
}

func (m formModel) category() models.Category {
	if m.editing != nil {
		return m.editing.Category
	}
	return models.Categories[m.categoryIdx]
}

// fields returns the editable fields in focus order.
func (m formModel) fields() []formField {
	var fs []formField
	if m.editing == nil {
		fs = append(fs, fieldCategory)
	}
	if m.category().IsList() {
		fs = append(fs, fieldTitle)
	}
	return append(fs, fieldText, fieldSource)
}

func (m *formModel) focusField(f formField) {
	m.focus = f
	m.title.Blur()
	m.text.Blur()
	m.source.Blur()

	switch f {
	case fieldTitle:
		m.title.Focus()
	case fieldText:
		m.text.Focus()
	case fieldSource:
		m.source.Focus()
	}
}

func (m *formModel) moveFocus(delta int) {
	fs := m.fields()
	idx := 0
	for i, f := range fs {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fs)) % len(fs)
	m.focusField(fs[idx])
}

// body validates the inputs and builds the note body.
func (m formModel) body() (models.Body, error) {
	source := strings.TrimSpace(m.source.Value())

	if !m.category().IsList() {
		text := strings.TrimSpace(m.text.Value())
		if text == "" {
			return nil, errTextRequired
		}
		return models.TextBody{Text: text, Source: source}, nil
	}

	title := strings.TrimSpace(m.title.Value())
	if title == "" {
		return nil, errTitleRequired
	}
	var items []string
	for _, line := range strings.Split(m.text.Value(), "\n") {
		if item := strings.TrimSpace(line); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, errItemsRequired
	}

	return models.ListBody{Title: title, Items: items, Source: source}, nil
}

// Update handles field navigation and typing. Saving and cancelling are
// handled by the board.
func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.FocusNext):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, keys.FocusPrev):
			m.moveFocus(-1)
			return m, nil
		}

		if m.focus == fieldCategory {
			switch msg.String() {
			case "left", "up", "h", "k":
				m.categoryIdx = (m.categoryIdx - 1 + len(models.Categories)) % len(models.Categories)
			case "right", "down", "l", "j", " ":
				m.categoryIdx = (m.categoryIdx + 1) % len(models.Categories)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldText:
		m.text, cmd = m.text.Update(msg)
	case fieldSource:
		m.source, cmd = m.source.Update(msg)
	}
	return m, cmd
}

func (m formModel) View() string {
	var b strings.Builder

	if m.editing != nil {
		b.WriteString(titleStyle.Render("Edit note") + "\n\n")
		b.WriteString(labelStyle.Render("Category: ") + m.category().Label() + "\n\n")
	} else {
		b.WriteString(titleStyle.Render("New note") + "\n\n")
		b.WriteString(m.fieldLabel(fieldCategory, "Category") + "\n")
		for i, c := range models.Categories {
			marker := "( )"
			if i == m.categoryIdx {
				marker = "(•)"
			}
			b.WriteString("  " + marker + " " + c.Label() + "\n")
		}
		b.WriteString(mutedStyle.Render("  "+m.category().Description()) + "\n\n")
	}

	if m.category().IsList() {
		b.WriteString(m.fieldLabel(fieldTitle, "Title") + "\n" + m.title.View() + "\n\n")
		b.WriteString(m.fieldLabel(fieldText, "Items, one per line") + "\n")
	} else {
		b.WriteString(m.fieldLabel(fieldText, "Text") + "\n")
	}
	b.WriteString(m.text.View() + "\n\n")
	b.WriteString(m.fieldLabel(fieldSource, "Source") + "\n" + m.source.View() + "\n\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err) + "\n\n")
	}
	if m.submitting {
		b.WriteString(mutedStyle.Render("Saving...") + "\n")
	} else {
		b.WriteString(helpStyle.Render("tab next field • ←/→ category • ctrl+s save • esc cancel"))
	}

	return b.String()
}

func (m formModel) fieldLabel(f formField, label string) string {
	if m.focus == f {
		return labelStyle.Render("› " + label)
	}
	return mutedStyle.Render("  " + label)
}
