package notice

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestLoginNotice(t *testing.T) {
	n := Login()
	if n.Title() != "Inloggen" {
		t.Errorf("title = %q", n.Title())
	}
	if !strings.Contains(n.View(80, 20), "ingelogd") {
		t.Error("expected login message in view")
	}

	_, cmd := n.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command on enter")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}

	if _, cmd := n.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("other keys must be ignored")
	}
}
