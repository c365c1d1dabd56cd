package points

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/kosmi-edu/kosmi/internal/api"
	"github.com/kosmi-edu/kosmi/internal/client"
	"github.com/kosmi-edu/kosmi/internal/router"
	"github.com/kosmi-edu/kosmi/internal/screen"
)

type fakeHistory struct {
	resp  *api.PointsHistoryResponse
	err   error
	limit int
}

func (f *fakeHistory) PointsHistory(_ context.Context, limit int) (*api.PointsHistoryResponse, error) {
	f.limit = limit
	return f.resp, f.err
}

func sampleHistory() *fakeHistory {
	at := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &fakeHistory{resp: &api.PointsHistoryResponse{
		PointsTotal: 250,
		Events: []api.PointsEventView{
			{Sequence: 3, LessonID: "spin", EventType: "lesson_completed", Points: 100, AwardedAt: at},
			{Sequence: 2, LessonID: "insect", EventType: "depth_accessed", Points: 50, AwardedAt: at},
			{Sequence: 1, LessonID: "insect", EventType: "lesson_completed", Points: 100, AwardedAt: at},
		},
	}}
}

func loaded(t *testing.T, s *PointsScreen) tea.Msg {
	t.Helper()
	_, cmd := s.Update(s.Init()())
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestLoadReportsTotal(t *testing.T) {
	h := sampleHistory()
	s := New(h)
	msg := loaded(t, s)
	if pts, ok := msg.(screen.PointsMsg); !ok || pts.Total != 250 {
		t.Fatalf("expected PointsMsg{250}, got %#v", msg)
	}
	if h.limit != historyLimit {
		t.Errorf("limit = %d", h.limit)
	}
	view := s.View(100, 30)
	for _, want := range []string{"250 punten", "Alles (3)", "Les afgerond (2)", "Verdieping (1)", "spin"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTabFiltersByType(t *testing.T) {
	s := New(sampleHistory())
	loaded(t, s)

	tests := []struct {
		key  tea.KeyPressMsg
		want int
	}{
		{tea.KeyPressMsg{Code: tea.KeyTab}, 2},                    // les afgerond
		{tea.KeyPressMsg{Code: tea.KeyTab}, 1},                    // verdieping
		{tea.KeyPressMsg{Code: tea.KeyTab}, 3},                    // wraps to all
		{tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}, 1}, // back to verdieping
	}
	for i, tt := range tests {
		s.Update(tt.key)
		if got := len(s.filtered()); got != tt.want {
			t.Fatalf("step %d: %d events, want %d", i, got, tt.want)
		}
	}
}

func TestScrollStaysInRange(t *testing.T) {
	s := New(sampleHistory())
	loaded(t, s)
	for range 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.scroll != 2 {
		t.Fatalf("scroll = %d, want 2", s.scroll)
	}
	for range 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	if s.scroll != 0 {
		t.Fatalf("scroll = %d, want 0", s.scroll)
	}
}

func TestUnauthorizedResetsToLogin(t *testing.T) {
	s := New(&fakeHistory{err: client.ErrUnauthorized})
	if _, ok := loaded(t, s).(router.ResetMsg); !ok {
		t.Fatal("expected ResetMsg")
	}
}

func TestEmptyHistory(t *testing.T) {
	s := New(&fakeHistory{resp: &api.PointsHistoryResponse{}})
	loaded(t, s)
	if !strings.Contains(s.View(100, 30), "nog geen punten") {
		t.Error("expected empty text")
	}
}
