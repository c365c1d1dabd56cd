package browse

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kosmi-edu/kosmi/internal/api"
	"github.com/kosmi-edu/kosmi/internal/client"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/router"
	"github.com/kosmi-edu/kosmi/internal/screen"
	"github.com/kosmi-edu/kosmi/internal/screens/notice"
)

type fakeCatalog struct {
	err error
}

func (f *fakeCatalog) Worlds(context.Context) (*api.WorldsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &api.WorldsResponse{
		Greeting:    "Sem",
		PointsTotal: 250,
		Worlds:      []content.World{{ID: "natuur", Slug: "natuur", Title: "Natuur"}, {ID: "ruimte", Slug: "ruimte", Title: "Ruimte"}},
	}, nil
}

func (f *fakeCatalog) Topics(_ context.Context, slug string) (*api.TopicsResponse, error) {
	return &api.TopicsResponse{Topics: []content.Topic{{ID: slug + "-dieren", Title: "Dieren"}}}, nil
}

func (f *fakeCatalog) Courses(_ context.Context, topicID string) (*api.CoursesResponse, error) {
	return &api.CoursesResponse{Courses: []content.Course{{ID: "beestjes", Title: "Kleine beestjes"}}}, nil
}

func (f *fakeCatalog) Lessons(_ context.Context, courseID string) (*api.LessonsResponse, error) {
	return &api.LessonsResponse{Lessons: []api.LessonSummary{
		{ID: "insect", Title: "Wat is een insect?", Order: 1, Completed: true},
		{ID: "spin", Title: "Is een spin een insect?", Order: 2},
	}}, nil
}

type stubLesson struct{ id string }

func (s *stubLesson) Init() tea.Cmd                           { return nil }
func (s *stubLesson) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubLesson) View(int, int) string                    { return s.id }
func (s *stubLesson) Title() string                           { return "Les" }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// load runs the screen's initial load and returns the follow-up message,
// if any.
func load(t *testing.T, b *BrowseScreen) tea.Msg {
	t.Helper()
	msg := b.Init()()
	_, cmd := b.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg")
	}
	return msg.Screen
}

func TestWorldsReportPointsAndGreeting(t *testing.T) {
	b := New(&fakeCatalog{}, nil)
	msg := load(t, b)

	pts, ok := msg.(screen.PointsMsg)
	if !ok || pts.Total != 250 {
		t.Fatalf("expected PointsMsg{250}, got %#v", msg)
	}
	view := b.View(100, 30)
	if !strings.Contains(view, "Hoi Sem!") {
		t.Error("expected greeting in view")
	}
	if !strings.Contains(view, "Ruimte") {
		t.Error("expected worlds in view")
	}
}

func TestDrillDownToLesson(t *testing.T) {
	var opened string
	open := func(id string) screen.Screen {
		opened = id
		return &stubLesson{id: id}
	}
	b := New(&fakeCatalog{}, open)
	load(t, b)

	// Second world.
	b.Update(specialKey(tea.KeyDown))
	_, cmd := b.Update(specialKey(tea.KeyEnter))
	topics := pushed(t, cmd).(*BrowseScreen)
	if topics.level != LevelTopics || topics.parentID != "ruimte" || topics.Title() != "Ruimte" {
		t.Fatalf("unexpected topics screen %+v", topics)
	}
	load(t, topics)

	_, cmd = topics.Update(specialKey(tea.KeyEnter))
	courses := pushed(t, cmd).(*BrowseScreen)
	if courses.parentID != "ruimte-dieren" {
		t.Fatalf("parent = %q", courses.parentID)
	}
	load(t, courses)

	_, cmd = courses.Update(specialKey(tea.KeyEnter))
	lessons := pushed(t, cmd).(*BrowseScreen)
	load(t, lessons)
	if !strings.Contains(lessons.View(100, 30), "✓") {
		t.Error("expected completed badge")
	}

	lessons.Update(specialKey(tea.KeyDown))
	_, cmd = lessons.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*stubLesson); !ok || opened != "spin" {
		t.Fatalf("expected lesson 'spin' opened, got %q", opened)
	}
}

func TestResumeReloadsLessons(t *testing.T) {
	b := newLevel(&fakeCatalog{}, nil, LevelLessons, "beestjes", "Kleine beestjes")
	load(t, b)
	_, cmd := b.Update(screen.ResumedMsg{})
	if cmd == nil {
		t.Fatal("expected reload on resume")
	}
	if _, ok := cmd().(loadedMsg); !ok {
		t.Fatal("expected loadedMsg")
	}

	topics := newLevel(&fakeCatalog{}, nil, LevelTopics, "natuur", "Natuur")
	if _, cmd := topics.Update(screen.ResumedMsg{}); cmd != nil {
		t.Error("topics do not change while playing")
	}
}

func TestUnauthorizedResetsToLogin(t *testing.T) {
	b := New(&fakeCatalog{err: client.ErrUnauthorized}, nil)
	msg := load(t, b)
	reset, ok := msg.(router.ResetMsg)
	if !ok {
		t.Fatalf("expected ResetMsg, got %#v", msg)
	}
	if _, ok := reset.Screen.(*notice.NoticeScreen); !ok {
		t.Fatal("expected login notice")
	}
}

func TestLoadFailureShowsMessage(t *testing.T) {
	b := New(&fakeCatalog{err: errors.New("boom")}, nil)
	if msg := load(t, b); msg != nil {
		t.Fatalf("unexpected message %#v", msg)
	}
	if !strings.Contains(b.View(100, 30), "niet gelukt") {
		t.Error("expected error text")
	}
}

func TestPointsKeyOpensPointsScreen(t *testing.T) {
	target := &stubLesson{id: "punten"}
	b := New(&fakeCatalog{}, nil).WithPoints(func() screen.Screen { return target })
	load(t, b)

	_, cmd := b.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	if got := pushed(t, cmd); got != target {
		t.Fatalf("expected points screen, got %#v", got)
	}

	plain := New(&fakeCatalog{}, nil)
	load(t, plain)
	if _, cmd := plain.Update(tea.KeyPressMsg{Code: 'p', Text: "p"}); cmd != nil {
		if _, ok := cmd().(router.PushScreenMsg); ok {
			t.Fatal("p must do nothing without a points screen")
		}
	}
}
