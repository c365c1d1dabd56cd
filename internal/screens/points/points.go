// Package points is the student's "Mijn punten" screen: the ledger, newest
// first, filterable by event type.
package points

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kosmi-edu/kosmi/internal/api"
	"github.com/kosmi-edu/kosmi/internal/client"
	ledger "github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/router"
	"github.com/kosmi-edu/kosmi/internal/screen"
	"github.com/kosmi-edu/kosmi/internal/screens/notice"
	"github.com/kosmi-edu/kosmi/internal/ui/layout"
	"github.com/kosmi-edu/kosmi/internal/ui/theme"
)

// historyLimit is how many events the screen asks for.
const historyLimit = 200

// History fetches the ledger.
type History interface {
	PointsHistory(ctx context.Context, limit int) (*api.PointsHistoryResponse, error)
}

type historyLoadedMsg struct {
	resp *api.PointsHistoryResponse
	err  error
}

// PointsScreen lists the student's points events.
type PointsScreen struct {
	history History
	total   int
	events  []api.PointsEventView
	tab     int // 0 is all, then ledger.AllEventTypes() in order
	scroll  int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*PointsScreen)(nil)
var _ screen.KeyHintProvider = (*PointsScreen)(nil)

// New creates a PointsScreen.
func New(history History) *PointsScreen {
	return &PointsScreen{history: history}
}

func (s *PointsScreen) Init() tea.Cmd {
	history := s.history
	return func() tea.Msg {
		resp, err := history.PointsHistory(context.Background(), historyLimit)
		return historyLoadedMsg{resp: resp, err: err}
	}
}

func (s *PointsScreen) Title() string {
	return "Mijn punten"
}

func (s *PointsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Soort"},
		{Key: "↑↓", Description: "Scrollen"},
		{Key: "Esc", Description: "Terug"},
	}
}

func (s *PointsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		if msg.err != nil {
			if errors.Is(msg.err, client.ErrUnauthorized) {
				return s, func() tea.Msg { return router.ResetMsg{Screen: notice.Login()} }
			}
			s.errMsg = "Je punten konden niet geladen worden."
			return s, nil
		}
		s.errMsg = ""
		s.total = msg.resp.PointsTotal
		s.events = msg.resp.Events
		total := s.total
		return s, func() tea.Msg { return screen.PointsMsg{Total: total} }

	case tea.KeyPressMsg:
		tabs := len(ledger.AllEventTypes()) + 1
		switch msg.String() {
		case "tab":
			s.tab = (s.tab + 1) % tabs
			s.scroll = 0
		case "shift+tab":
			s.tab = (s.tab - 1 + tabs) % tabs
			s.scroll = 0
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			if s.scroll < len(s.filtered())-1 {
				s.scroll++
			}
		}
	}
	return s, nil
}

func (s *PointsScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render("\n\n" + s.errMsg)
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Punten laden...")
	}

	var b strings.Builder
	b.WriteString(center.Inherit(theme.Points).Render("\n" + layout.FormatPoints(s.total)))
	b.WriteString("\n\n")

	labels := []string{fmt.Sprintf("Alles (%d)", len(s.events))}
	for _, t := range ledger.AllEventTypes() {
		labels = append(labels, fmt.Sprintf("%s %s (%d)", t.Icon(), t.DisplayName(), s.count(t)))
	}
	for i := range labels {
		if i == s.tab {
			labels[i] = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(labels[i])
		} else {
			labels[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(labels[i])
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(labels, "     ")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(min(width-8, 60), 0)))))
	b.WriteString("\n\n")

	events := s.filtered()
	if len(events) == 0 {
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render("Hier heb je nog geen punten verdiend"))
		return b.String()
	}

	visible := max(height-10, 3)
	end := min(s.scroll+visible, len(events))
	for _, e := range events[s.scroll:end] {
		t := ledger.EventType(e.EventType)
		line := fmt.Sprintf("  %s %-24s %+5d   %s", t.Icon(), e.LessonID, e.Points, e.AwardedAt.Local().Format("02-01-2006"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(eventColor(t)).Render(line)))
		b.WriteString("\n")
	}
	if end < len(events) {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("... nog %d", len(events)-end)))
	}
	return b.String()
}

func (s *PointsScreen) filtered() []api.PointsEventView {
	if s.tab == 0 {
		return s.events
	}
	want := string(ledger.AllEventTypes()[s.tab-1])
	var out []api.PointsEventView
	for _, e := range s.events {
		if e.EventType == want {
			out = append(out, e)
		}
	}
	return out
}

func (s *PointsScreen) count(t ledger.EventType) int {
	n := 0
	for _, e := range s.events {
		if e.EventType == string(t) {
			n++
		}
	}
	return n
}

func eventColor(t ledger.EventType) color.Color {
	switch t {
	case ledger.EventDepthAccessed:
		return theme.Secondary
	case ledger.EventLessonCompleted:
		return theme.Accent
	default:
		return theme.Text
	}
}
