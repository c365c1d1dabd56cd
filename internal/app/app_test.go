package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kosmi-edu/kosmi/internal/router"
	"github.com/kosmi-edu/kosmi/internal/screen"
)

type stubScreen struct {
	title  string
	closed bool
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "inhoud van " + s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) Close()                                  { s.closed = true }

func TestHeaderShowsPoints(t *testing.T) {
	var model tea.Model = New(&stubScreen{title: "Werelden"})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if strings.Contains(model.(AppModel).render(), "punten") {
		t.Error("points must be hidden until known")
	}

	model, _ = model.Update(screen.PointsMsg{Total: 550})
	view := model.(AppModel).render()
	if !strings.Contains(view, "550 punten") {
		t.Errorf("expected points total in header:\n%s", view)
	}
	if !strings.Contains(view, "Werelden") || !strings.Contains(view, "inhoud van Werelden") {
		t.Error("expected title and screen content")
	}
}

func TestEscPopsAndCtrlCClosesScreens(t *testing.T) {
	root := &stubScreen{title: "root"}
	top := &stubScreen{title: "top"}
	var model tea.Model = New(root)
	model, _ = model.Update(router.PushScreenMsg{Screen: top})

	model, cmd := model.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	model, _ = model.Update(cmd())
	if !top.closed {
		t.Error("popped screen must be closed")
	}

	_, cmd = model.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected quit")
	}
	if !root.closed {
		t.Error("ctrl+c must close the remaining screens")
	}
}

func TestTooSmall(t *testing.T) {
	var model tea.Model = New(&stubScreen{title: "x"})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(model.(AppModel).render(), "te klein") {
		t.Error("expected size warning")
	}
}
