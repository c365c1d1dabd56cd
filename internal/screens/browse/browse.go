// Package browse lets a student pick a lesson: worlds, then topics, then
// courses, then lessons. Each level is its own screen on the router stack.
package browse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kosmi-edu/kosmi/internal/api"
	"github.com/kosmi-edu/kosmi/internal/client"
	"github.com/kosmi-edu/kosmi/internal/router"
	"github.com/kosmi-edu/kosmi/internal/screen"
	"github.com/kosmi-edu/kosmi/internal/screens/notice"
	"github.com/kosmi-edu/kosmi/internal/ui/components"
	"github.com/kosmi-edu/kosmi/internal/ui/layout"
	"github.com/kosmi-edu/kosmi/internal/ui/theme"
)

// Catalog is the content the student can browse.
type Catalog interface {
	Worlds(ctx context.Context) (*api.WorldsResponse, error)
	Topics(ctx context.Context, worldSlug string) (*api.TopicsResponse, error)
	Courses(ctx context.Context, topicID string) (*api.CoursesResponse, error)
	Lessons(ctx context.Context, courseID string) (*api.LessonsResponse, error)
}

// LessonOpener builds the screen that plays a lesson.
type LessonOpener func(lessonID string) screen.Screen

// ScreenOpener builds a screen pushed from the worlds list.
type ScreenOpener func() screen.Screen

// Level is a depth of the content tree.
type Level int

const (
	LevelWorlds Level = iota
	LevelTopics
	LevelCourses
	LevelLessons
)

type entry struct {
	id    string
	label string
	badge string
}

type loadedMsg struct {
	level    Level
	entries  []entry
	greeting string
	points   *int
	err      error
}

// BrowseScreen lists one level of the content tree.
type BrowseScreen struct {
	catalog  Catalog
	open     LessonOpener
	points   ScreenOpener
	level    Level
	parentID string
	title    string

	menu     components.Menu
	entries  []entry
	greeting string
	loading  bool
	errMsg   string
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New creates the worlds screen.
func New(catalog Catalog, open LessonOpener) *BrowseScreen {
	return newLevel(catalog, open, LevelWorlds, "", "Werelden")
}

// WithPoints lets the student open the points screen with "p" from the
// worlds list.
func (b *BrowseScreen) WithPoints(open ScreenOpener) *BrowseScreen {
	b.points = open
	return b
}

func newLevel(catalog Catalog, open LessonOpener, level Level, parentID, title string) *BrowseScreen {
	return &BrowseScreen{
		catalog:  catalog,
		open:     open,
		level:    level,
		parentID: parentID,
		title:    title,
		loading:  true,
	}
}

func (b *BrowseScreen) Init() tea.Cmd {
	return b.load()
}

func (b *BrowseScreen) Title() string {
	return b.title
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Kiezen"},
		{Key: "Enter", Description: "Openen"},
	}
	if b.level == LevelWorlds {
		if b.points != nil {
			hints = append(hints, layout.KeyHint{Key: "P", Description: "Mijn punten"})
		}
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Stoppen"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Terug"})
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return b.handleLoaded(msg)
	case screen.ResumedMsg:
		// Completion flags and the points total may have changed.
		if b.level == LevelLessons || b.level == LevelWorlds {
			return b, b.load()
		}
		return b, nil
	case tea.KeyPressMsg:
		if b.loading {
			return b, nil
		}
		if msg.String() == "p" && b.level == LevelWorlds && b.points != nil {
			next := b.points()
			return b, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
		var cmd tea.Cmd
		b.menu, cmd = b.menu.Update(msg)
		return b, cmd
	}
	return b, nil
}

func (b *BrowseScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if msg.level != b.level {
		return b, nil
	}
	b.loading = false
	if msg.err != nil {
		if errors.Is(msg.err, client.ErrUnauthorized) {
			return b, func() tea.Msg { return router.ResetMsg{Screen: notice.Login()} }
		}
		b.errMsg = "Het laden is niet gelukt. Probeer het later nog eens."
		return b, nil
	}
	b.errMsg = ""
	b.entries = msg.entries
	if msg.greeting != "" {
		b.greeting = msg.greeting
	}

	selected := b.menu.Selected
	items := make([]components.MenuItem, len(b.entries))
	for i, e := range b.entries {
		items[i] = components.MenuItem{Label: e.label, Badge: e.badge, Action: b.selectAction(e)}
	}
	b.menu = components.NewMenu(items)
	if selected < len(items) {
		b.menu.Selected = selected
	}

	if msg.points != nil {
		total := *msg.points
		return b, func() tea.Msg { return screen.PointsMsg{Total: total} }
	}
	return b, nil
}

func (b *BrowseScreen) selectAction(e entry) func() tea.Cmd {
	return func() tea.Cmd {
		var next screen.Screen
		switch b.level {
		case LevelWorlds:
			next = newLevel(b.catalog, b.open, LevelTopics, e.id, e.label)
		case LevelTopics:
			next = newLevel(b.catalog, b.open, LevelCourses, e.id, e.label)
		case LevelCourses:
			next = newLevel(b.catalog, b.open, LevelLessons, e.id, e.label)
		default:
			next = b.open(e.id)
		}
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (b *BrowseScreen) load() tea.Cmd {
	level, parent, catalog := b.level, b.parentID, b.catalog
	return func() tea.Msg {
		msg := loadedMsg{level: level}
		ctx := context.Background()
		switch level {
		case LevelWorlds:
			resp, err := catalog.Worlds(ctx)
			if err != nil {
				msg.err = err
				break
			}
			msg.greeting = resp.Greeting
			msg.points = &resp.PointsTotal
			for _, w := range resp.Worlds {
				msg.entries = append(msg.entries, entry{id: w.Slug, label: w.Title})
			}
		case LevelTopics:
			resp, err := catalog.Topics(ctx, parent)
			if err != nil {
				msg.err = err
				break
			}
			for _, t := range resp.Topics {
				msg.entries = append(msg.entries, entry{id: t.ID, label: t.Title})
			}
		case LevelCourses:
			resp, err := catalog.Courses(ctx, parent)
			if err != nil {
				msg.err = err
				break
			}
			for _, c := range resp.Courses {
				msg.entries = append(msg.entries, entry{id: c.ID, label: c.Title})
			}
		case LevelLessons:
			resp, err := catalog.Lessons(ctx, parent)
			if err != nil {
				msg.err = err
				break
			}
			for _, l := range resp.Lessons {
				e := entry{id: l.ID, label: fmt.Sprintf("%d. %s", l.Order, l.Title)}
				if l.Completed {
					e.badge = "✓"
				}
				msg.entries = append(msg.entries, e)
			}
		}
		return msg
	}
}

func (b *BrowseScreen) View(width, height int) string {
	var sections []string
	if b.level == LevelWorlds {
		sections = append(sections, RenderBanner(width))
		if b.greeting != "" {
			sections = append(sections, theme.Subtitle.Width(width).Render("Hoi "+b.greeting+"! Waar gaan we heen?"))
		}
	} else {
		sections = append(sections, theme.Title.Width(width).Render(b.title))
	}

	switch {
	case b.loading:
		sections = append(sections, theme.Hint.Render("  Laden..."))
	case b.errMsg != "":
		sections = append(sections, theme.Warning.Render("  "+b.errMsg))
	case len(b.entries) == 0:
		sections = append(sections, theme.Hint.Render("  "+emptyText(b.level)))
	default:
		sections = append(sections, b.menu.View())
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(strings.Join(sections, "\n\n"))
}

func emptyText(l Level) string {
	switch l {
	case LevelWorlds:
		return "Er zijn nog geen werelden."
	case LevelTopics:
		return "Deze wereld heeft nog geen onderwerpen."
	case LevelCourses:
		return "Er zijn nog geen cursussen voor jouw groep."
	default:
		return "Deze cursus heeft nog geen lessen."
	}
}
