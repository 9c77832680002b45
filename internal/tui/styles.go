package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/coffee-notes/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("94")).
			Bold(true).
			Padding(0, 1)

	headerInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("180")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("137")).
			Padding(1, 2)

	canvasBackgroundStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("237"))

	gridCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// categoryColors are the accent colors of the note categories.
var categoryColors = map[models.Category]lipgloss.Color{
	models.Reflection:       lipgloss.Color("180"),
	models.ActionableAdvice: lipgloss.Color("114"),
	models.CautionaryAdvice: lipgloss.Color("203"),
	models.ResourceList:     lipgloss.Color("111"),
}

func categoryColor(c models.Category) lipgloss.Color {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return lipgloss.Color("250")
}

// cardStyle is the style of a canvas card and its text.
func cardStyle(c models.Category, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(categoryColor(c))
	if selected {
		s = s.Bold(true).Background(lipgloss.Color("236"))
	}
	return s
}
