package components

import (
	"charm.land/lipgloss/v2"

	"github.com/kosmi-edu/kosmi/internal/ui/theme"
)

// Button is a labelled choice, highlighted when active.
type Button struct {
	Key    string
	Label  string
	Active bool
}

// View renders the button as "[Key] Label".
func (b Button) View() string {
	label := "[" + b.Key + "] " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons side by side.
func ButtonRow(buttons ...Button) string {
	parts := make([]string, 0, 2*len(buttons))
	for i, b := range buttons {
		if i > 0 {
			parts = append(parts, "   ")
		}
		parts = append(parts, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
