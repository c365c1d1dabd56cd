package lesson

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/kosmi-edu/kosmi/internal/api"
	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/client"
	"github.com/kosmi-edu/kosmi/internal/content"
	engine "github.com/kosmi-edu/kosmi/internal/lesson"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
	"github.com/kosmi-edu/kosmi/internal/router"
	"github.com/kosmi-edu/kosmi/internal/screen"
)

type fakeLoader struct {
	view *api.LessonView
	err  error
}

func (f *fakeLoader) Lesson(context.Context, string) (*api.LessonView, error) {
	return f.view, f.err
}

type fakeBackend struct {
	mu          sync.Mutex
	completions []progress.Completion
	pointsReqs  []points.Request
	completeErr error
}

func (f *fakeBackend) Reply(_ context.Context, req chat.Request) (string, error) {
	return "Zes poten, " + req.StudentName + "!", nil
}

func (f *fakeBackend) Transcribe(_ context.Context, audio io.Reader, _ string) (string, error) {
	data, _ := io.ReadAll(audio)
	return "gezegd: " + string(data), nil
}

func (f *fakeBackend) RecordPoints(_ context.Context, req points.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pointsReqs = append(f.pointsReqs, req)
	return nil
}

func (f *fakeBackend) Complete(_ context.Context, c progress.Completion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completions = append(f.completions, c)
	return nil
}

// blockingRecorder records until stopped or cancelled.
type blockingRecorder struct {
	released chan struct{}
}

func (r *blockingRecorder) Record(ctx context.Context, stop <-chan struct{}) ([]byte, error) {
	defer close(r.released)
	select {
	case <-stop:
		return []byte("mier"), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func testView() *api.LessonView {
	return &api.LessonView{
		Lesson: content.Lesson{ID: "insect", Title: "Wat is een insect?"},
		Variant: content.Variant{
			TargetGrade:        5,
			IntroText:          "Insecten zijn overal.",
			Core:               content.Section{Content: "<p>Een <strong>insect</strong> heeft zes poten.</p>"},
			Depth:              content.Section{Content: "<p>Er zijn miljoenen soorten.</p>"},
			ReflectionQuestion: "Welk insect vind jij het mooist?",
			PointsBase:         100,
			PointsDepthBonus:   50,
		},
		Characters: []content.Character{{ID: "kever", Name: "Professor Kever"}},
		Profile:    api.ProfileView{Name: "Sem", Grade: 5, PointsTotal: 400},
	}
}

func newTestScreen(view *api.LessonView, rec Recorder) (*LessonScreen, *fakeBackend) {
	be := &fakeBackend{}
	s := New(Deps{
		Loader: &fakeLoader{view: view},
		Ports: engine.Ports{
			Companion:   be,
			Transcriber: be,
			Ledger:      be,
			Completer:   be,
		},
		Recorder: rec,
	}, "insect")
	return s, be
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func typeText(s *LessonScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

// collect runs cmd and any batched commands, returning every message
// except refresh ticks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if _, ok := msg.(refreshMsg); ok || msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// feed runs cmd and delivers its messages to the screen, returning the
// messages the screen emitted in response.
func feed(s *LessonScreen, cmd tea.Cmd) []tea.Msg {
	var emitted []tea.Msg
	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case viewLoadedMsg, actionDoneMsg, replyMsg, dictationMsg, completeMsg:
			_, next := s.Update(msg)
			emitted = append(emitted, feed(s, next)...)
		default:
			emitted = append(emitted, msg)
		}
	}
	return emitted
}

func load(t *testing.T, s *LessonScreen) []tea.Msg {
	t.Helper()
	return feed(s, s.Init())
}

func findPoints(msgs []tea.Msg) (int, bool) {
	for _, m := range msgs {
		if p, ok := m.(screen.PointsMsg); ok {
			return p.Total, true
		}
	}
	return 0, false
}

func TestLoadShowsIntroAndPoints(t *testing.T) {
	s, _ := newTestScreen(testView(), nil)
	emitted := load(t, s)

	if total, ok := findPoints(emitted); !ok || total != 400 {
		t.Fatalf("expected PointsMsg{400}, got %v", emitted)
	}
	if s.Title() != "Wat is een insect?" {
		t.Errorf("title = %q", s.Title())
	}
	if _, ok := s.engine.State().(engine.Intro); !ok {
		t.Fatalf("expected intro, got %T", s.engine.State())
	}
	if !strings.Contains(s.View(100, 30), "Insecten zijn overal.") {
		t.Error("expected intro text in view")
	}
}

func TestFullLessonWithDepth(t *testing.T) {
	s, be := newTestScreen(testView(), nil)
	load(t, s)

	s.Update(specialKey(tea.KeyEnter))
	if !strings.Contains(s.View(100, 30), "Een insect heeft zes poten.") {
		t.Fatalf("expected core content as text, got:\n%s", s.View(100, 30))
	}
	s.Update(specialKey(tea.KeyEnter))

	typeText(s, "Hoi")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	feed(s, cmd)
	st, ok := s.engine.State().(engine.Chat)
	if !ok || len(st.Transcript) != 2 {
		t.Fatalf("expected chat with 2 turns, got %#v", s.engine.State())
	}
	if st.Transcript[1].Content != "Zes poten, Sem!" {
		t.Errorf("reply = %q", st.Transcript[1].Content)
	}
	if s.chatInput.Value() != "" {
		t.Error("input must be cleared after sending")
	}

	// Empty input moves on to the depth prompt.
	s.Update(specialKey(tea.KeyEnter))
	if _, ok := s.engine.State().(engine.DepthPrompt); !ok {
		t.Fatalf("expected depth prompt, got %T", s.engine.State())
	}
	_, cmd = s.Update(keyPress('j'))
	feed(s, cmd)
	if _, ok := s.engine.State().(engine.Depth); !ok {
		t.Fatalf("expected depth, got %T", s.engine.State())
	}
	s.Update(specialKey(tea.KeyEnter))

	typeText(s, "Mier")
	_, cmd = s.Update(ctrl('s'))
	emitted := feed(s, cmd)

	done, ok := s.engine.State().(engine.Completed)
	if !ok {
		t.Fatalf("expected completed, got %T", s.engine.State())
	}
	if done.VisitPoints != 150 || done.Total != 550 {
		t.Errorf("points = %d total %d, want 150 / 550", done.VisitPoints, done.Total)
	}
	if total, ok := findPoints(emitted); !ok || total != 550 {
		t.Errorf("expected PointsMsg{550}, got %v", emitted)
	}
	if len(be.pointsReqs) != 1 || be.pointsReqs[0].Points != 50 {
		t.Errorf("points requests = %+v", be.pointsReqs)
	}
	if len(be.completions) != 1 || be.completions[0].ReflectionAnswer != "Mier" || !be.completions[0].DepthAccessed {
		t.Errorf("completions = %+v", be.completions)
	}

	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected enter on the summary to go back")
	}
}

func TestSkipDepth(t *testing.T) {
	s, be := newTestScreen(testView(), nil)
	load(t, s)
	for range 3 {
		s.Update(specialKey(tea.KeyEnter))
	}
	s.Update(keyPress('n'))
	if _, ok := s.engine.State().(engine.Reflection); !ok {
		t.Fatalf("expected reflection, got %T", s.engine.State())
	}
	_, cmd := s.Update(ctrl('s'))
	feed(s, cmd)
	done := s.engine.State().(engine.Completed)
	if done.VisitPoints != 100 || done.Total != 500 {
		t.Errorf("points = %d total %d, want 100 / 500", done.VisitPoints, done.Total)
	}
	if len(be.pointsReqs) != 0 {
		t.Error("skipping depth must not record points")
	}
}

func TestCompletionFailureCanBeRetried(t *testing.T) {
	s, be := newTestScreen(testView(), nil)
	load(t, s)
	for range 3 {
		s.Update(specialKey(tea.KeyEnter))
	}
	s.Update(keyPress('n'))

	be.completeErr = errors.New("server down")
	_, cmd := s.Update(ctrl('s'))
	feed(s, cmd)
	if _, ok := s.engine.State().(engine.Reflection); !ok {
		t.Fatalf("expected to stay on reflection, got %T", s.engine.State())
	}
	if !strings.Contains(s.View(100, 30), "niet gelukt") {
		t.Error("expected retry notice")
	}

	be.completeErr = nil
	_, cmd = s.Update(ctrl('s'))
	feed(s, cmd)
	if _, ok := s.engine.State().(engine.Completed); !ok {
		t.Fatalf("expected completed after retry, got %T", s.engine.State())
	}
}

func TestUnauthorizedGoesToLogin(t *testing.T) {
	s := New(Deps{Loader: &fakeLoader{err: client.ErrUnauthorized}}, "insect")
	emitted := load(t, s)
	if len(emitted) != 1 {
		t.Fatalf("expected one message, got %v", emitted)
	}
	if _, ok := emitted[0].(router.ResetMsg); !ok {
		t.Fatalf("expected ResetMsg, got %T", emitted[0])
	}
}

func TestRevisitOpensSummary(t *testing.T) {
	view := testView()
	view.Progress = &api.ProgressView{Completed: true, ReflectionAnswer: "De vlinder"}
	s, _ := newTestScreen(view, nil)
	load(t, s)
	if _, ok := s.engine.State().(engine.Completed); !ok {
		t.Fatalf("expected summary, got %T", s.engine.State())
	}
	if !strings.Contains(s.View(100, 30), "al gedaan") {
		t.Error("expected revisit text")
	}
	if s.reflection.Value() != "De vlinder" {
		t.Errorf("reflection = %q, want prior answer", s.reflection.Value())
	}
}

func TestDictationFillsChatInput(t *testing.T) {
	rec := &blockingRecorder{released: make(chan struct{})}
	s, _ := newTestScreen(testView(), rec)
	load(t, s)
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(ctrl('r'))
	if !s.recording {
		t.Fatal("expected recording to start")
	}
	msgs := make(chan []tea.Msg, 1)
	go func() { msgs <- collect(cmd) }()

	s.Update(ctrl('r'))
	if s.recording {
		t.Fatal("expected recording to stop")
	}
	select {
	case <-rec.released:
	case <-time.After(2 * time.Second):
		t.Fatal("recorder not released")
	}
	for _, m := range <-msgs {
		s.Update(m)
	}
	if got := s.chatInput.Value(); got != "gezegd: mier" {
		t.Errorf("chat input = %q", got)
	}
}

func TestCloseReleasesRecorder(t *testing.T) {
	rec := &blockingRecorder{released: make(chan struct{})}
	s, _ := newTestScreen(testView(), rec)
	load(t, s)
	for range 3 {
		s.Update(specialKey(tea.KeyEnter))
	}
	s.Update(keyPress('n'))

	_, cmd := s.Update(ctrl('r'))
	go collect(cmd)
	s.Close()

	select {
	case <-rec.released:
	case <-time.After(2 * time.Second):
		t.Fatal("recorder not released on close")
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText("<h2>Insecten</h2><p>Een <em>insect</em> heeft:</p><ul><li>zes poten</li><li>drie delen</li></ul>")
	want := "Insecten\n\nEen insect heeft:\n\n• zes poten\n• drie delen"
	if got != want {
		t.Fatalf("PlainText =\n%q\nwant\n%q", got, want)
	}
}
