package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kosmi-edu/kosmi/internal/ui/theme"
)

// StepBar shows how far a student is through a lesson.
type StepBar struct {
	Current int // 1-based
	Total   int
	Width   int
}

// View renders the bar followed by "stap x van y".
func (p StepBar) View() string {
	label := fmt.Sprintf("  stap %d van %d", p.Current, p.Total)
	barWidth := p.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Current / p.Total
	}
	filled = max(0, min(filled, barWidth))

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}
