// Package notice shows a single message, such as an expired login.
package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kosmi-edu/kosmi/internal/screen"
	"github.com/kosmi-edu/kosmi/internal/ui/layout"
	"github.com/kosmi-edu/kosmi/internal/ui/theme"
)

// LoginRequired is shown when the API rejects the token.
const LoginRequired = "Je bent niet (meer) ingelogd.\n\nVraag je ouder om in te loggen en start Kosmi opnieuw."

// NoticeScreen displays a message until the student quits.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)
var _ screen.KeyHintProvider = (*NoticeScreen)(nil)

// New creates a NoticeScreen.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

// Login is the screen for a rejected token.
func Login() *NoticeScreen {
	return New("Inloggen", LoginRequired)
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && (k.String() == "enter" || k.String() == "q") {
		return n, tea.Quit
	}
	return n, nil
}

func (n *NoticeScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(n.message)
}

func (n *NoticeScreen) Title() string {
	return n.title
}

func (n *NoticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Afsluiten"}}
}
