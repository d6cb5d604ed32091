package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/articlequest/internal/ui/layout"
)

// Shared bindings used across screens.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	)
	KeyLeft = key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Left"),
	)
	KeyRight = key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Right"),
	)
	KeySelect = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	KeyBack = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	KeyQuit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
)

// Hints converts bindings into footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
