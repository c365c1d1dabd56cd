package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kosmi-edu/kosmi/internal/router"
	"github.com/kosmi-edu/kosmi/internal/screen"
	"github.com/kosmi-edu/kosmi/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	width     int
	height    int
	points    int
	hasPoints bool
}

// New creates the root model with root as the bottom screen.
func New(root screen.Screen) AppModel {
	return AppModel{
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.PointsMsg:
		m.points = msg.Total
		m.hasPoints = true
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.CloseAll()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.points, m.hasPoints, m.width)

	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Terug"},
			{Key: "Ctrl+C", Description: "Stoppen"},
		}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Kiezen"},
			{Key: "Enter", Description: "Openen"},
			{Key: "Ctrl+C", Description: "Stoppen"},
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the program with root as the first screen. Every screen is
// closed before Run returns.
func Run(root screen.Screen) error {
	m := New(root)
	defer m.router.CloseAll()
	_, err := tea.NewProgram(m).Run()
	return err
}
