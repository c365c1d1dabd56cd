package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kosmi-edu/kosmi/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	closed  int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) Close()                                  { s.closed++ }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPopClosesScreen(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	cmd := r.Update(PopScreenMsg{})
	if cmd == nil {
		t.Fatal("expected a resume command")
	}
	if _, ok := cmd().(screen.ResumedMsg); !ok {
		t.Error("expected ResumedMsg for the screen below")
	}

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
	if s2.closed != 1 {
		t.Errorf("expected popped screen closed once, got %d", s2.closed)
	}
	if s1.closed != 0 {
		t.Error("remaining screen must stay open")
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	if cmd := r.Pop(); cmd != nil {
		t.Error("expected no command when popping the last screen")
	}

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if s1.closed != 0 {
		t.Error("bottom screen must not be closed")
	}
}

func TestResetClosesEverything(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "login"}
	r.Update(ResetMsg{Screen: s3})

	if r.Depth() != 1 || r.Active().Title() != "login" {
		t.Fatalf("expected only 'login' on the stack, depth %d", r.Depth())
	}
	if s1.closed != 1 || s2.closed != 1 {
		t.Errorf("expected both screens closed, got %d and %d", s1.closed, s2.closed)
	}
	if !s3.initRan {
		t.Error("expected Init() to run on reset screen")
	}
}

func TestCloseAll(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	r.CloseAll()

	if s1.closed != 1 || s2.closed != 1 {
		t.Errorf("expected both screens closed, got %d and %d", s1.closed, s2.closed)
	}
}
