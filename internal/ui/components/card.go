package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/articlequest/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for card sections so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded-border box of content width cw.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Align(lipgloss.Center).
		Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
