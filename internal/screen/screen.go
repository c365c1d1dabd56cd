package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/kosmi-edu/kosmi/internal/ui/layout"
)

// Screen is one page of the player.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// PointsMsg reports the student's current points total for the header.
type PointsMsg struct {
	Total int
}

// ResumedMsg is delivered to a screen when the screen above it is popped.
type ResumedMsg struct{}

// Closer is implemented by screens that hold resources such as a running
// recorder. The router calls Close when the screen leaves the stack.
type Closer interface {
	Close()
}
