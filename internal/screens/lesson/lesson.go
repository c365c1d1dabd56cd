// Package lesson is the player screen for one lesson visit. It renders the
// engine's current state and runs every network call in a command so the
// screen stays responsive.
package lesson

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/kosmi-edu/kosmi/internal/api"
	"github.com/kosmi-edu/kosmi/internal/client"
	engine "github.com/kosmi-edu/kosmi/internal/lesson"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/progress"
	"github.com/kosmi-edu/kosmi/internal/router"
	"github.com/kosmi-edu/kosmi/internal/screen"
	"github.com/kosmi-edu/kosmi/internal/screens/notice"
	"github.com/kosmi-edu/kosmi/internal/ui/components"
	"github.com/kosmi-edu/kosmi/internal/ui/layout"
)

const refreshInterval = 200 * time.Millisecond

// Loader fetches the lesson view.
type Loader interface {
	Lesson(ctx context.Context, id string) (*api.LessonView, error)
}

// Recorder captures microphone audio until stop is closed.
type Recorder interface {
	Record(ctx context.Context, stop <-chan struct{}) ([]byte, error)
}

// Deps are the collaborators of a LessonScreen. Recorder may be nil, which
// hides dictation.
type Deps struct {
	Loader   Loader
	Ports    engine.Ports
	Recorder Recorder
	Log      *logger.Logger
}

// LessonScreen plays one lesson.
type LessonScreen struct {
	deps     Deps
	lessonID string
	title    string

	engine     *engine.Engine
	chatInput  components.TextInput
	reflection components.TextInput

	ctx    context.Context
	cancel context.CancelFunc

	busy      int
	recording bool
	stopRec   chan struct{}
	notice    string
	errMsg    string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.Closer = (*LessonScreen)(nil)

// New creates a LessonScreen for the lesson with the given id.
func New(deps Deps, lessonID string) *LessonScreen {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &LessonScreen{
		deps:       deps,
		lessonID:   lessonID,
		title:      "Les",
		chatInput:  components.NewTextInput("Typ je vraag...", 500),
		reflection: components.NewTextInput("Typ je antwoord...", progress.MaxReflectionLength),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	loader, id, ctx := s.deps.Loader, s.lessonID, s.ctx
	return func() tea.Msg {
		view, err := loader.Lesson(ctx, id)
		return viewLoadedMsg{View: view, Err: err}
	}
}

func (s *LessonScreen) Title() string {
	return s.title
}

// Close stops the recorder and cancels narration and pending requests.
func (s *LessonScreen) Close() {
	s.stopRecording()
	s.cancel()
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case viewLoadedMsg:
		return s.handleLoaded(msg)
	case actionDoneMsg:
		s.busy--
		if msg.Err != nil {
			s.deps.Log.Debug("lesson action rejected", "error", msg.Err)
		}
		return s, nil
	case replyMsg:
		s.busy--
		return s, nil
	case dictationMsg:
		return s.handleDictation(msg)
	case completeMsg:
		return s.handleComplete(msg)
	case refreshMsg:
		if s.busy > 0 || s.recording {
			return s, refreshCmd()
		}
		return s, nil
	case tea.KeyPressMsg:
		if s.engine == nil {
			return s, nil
		}
		return s.handleKey(msg)
	}
	return s, s.forwardToInput(msg)
}

func (s *LessonScreen) handleLoaded(msg viewLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, client.ErrUnauthorized) {
			return s, loginCmd()
		}
		s.errMsg = "Deze les kon niet geladen worden."
		return s, nil
	}
	visit := client.Visit(msg.View)
	s.title = visit.Lesson.Title
	s.engine = engine.New(visit, s.deps.Ports, s.deps.Log)
	if visit.Progress != nil && visit.Progress.ReflectionAnswer != "" {
		s.reflection.SetValue(visit.Progress.ReflectionAnswer)
	}

	total := visit.Student.PointsTotal
	e := s.engine
	return s, tea.Batch(
		func() tea.Msg { return screen.PointsMsg{Total: total} },
		s.run(func(ctx context.Context) tea.Msg {
			e.Start(ctx)
			return actionDoneMsg{}
		}),
	)
}

func (s *LessonScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	s.notice = ""

	switch st := s.engine.State().(type) {
	case engine.Intro:
		switch key {
		case "enter":
			return s, s.next()
		case "ctrl+l":
			if st.CanListen {
				return s, s.do(s.engine.Listen)
			}
		}

	case engine.Core, engine.Depth:
		if key == "enter" {
			return s, s.next()
		}

	case engine.Chat:
		switch key {
		case "enter":
			text := strings.TrimSpace(s.chatInput.Value())
			if text == "" {
				s.stopRecording()
				return s, s.next()
			}
			if !st.Enabled() || st.Pending {
				return s, nil
			}
			s.chatInput.Reset()
			return s, s.send(text)
		case "ctrl+r":
			if st.Enabled() {
				return s, s.toggleRecording()
			}
			return s, nil
		}
		if st.Enabled() {
			var cmd tea.Cmd
			s.chatInput, cmd = s.chatInput.Update(msg)
			return s, cmd
		}

	case engine.DepthPrompt:
		switch key {
		case "y", "j":
			return s, s.do(s.engine.UnlockDepth)
		case "n":
			_ = s.engine.SkipDepth()
		}

	case engine.Reflection:
		switch key {
		case "ctrl+s":
			s.stopRecording()
			return s, s.complete()
		case "ctrl+r":
			return s, s.toggleRecording()
		case "enter":
			return s, nil
		}
		if !st.Saving {
			var cmd tea.Cmd
			s.reflection, cmd = s.reflection.Update(msg)
			return s, cmd
		}

	case engine.Completed:
		if key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *LessonScreen) forwardToInput(msg tea.Msg) tea.Cmd {
	if s.engine == nil {
		return nil
	}
	var cmd tea.Cmd
	switch s.engine.State().(type) {
	case engine.Chat:
		s.chatInput, cmd = s.chatInput.Update(msg)
	case engine.Reflection:
		s.reflection, cmd = s.reflection.Update(msg)
	}
	return cmd
}

func (s *LessonScreen) next() tea.Cmd {
	if err := s.engine.Next(); err != nil {
		s.deps.Log.Debug("next rejected", "error", err)
	}
	return nil
}

// run executes fn in a command with the screen's context and keeps the
// view refreshing until it returns.
func (s *LessonScreen) run(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	s.busy++
	ctx := s.ctx
	return tea.Batch(func() tea.Msg { return fn(ctx) }, refreshCmd())
}

func (s *LessonScreen) do(fn func(ctx context.Context) error) tea.Cmd {
	return s.run(func(ctx context.Context) tea.Msg {
		return actionDoneMsg{Err: fn(ctx)}
	})
}

func (s *LessonScreen) send(text string) tea.Cmd {
	e := s.engine
	return s.run(func(ctx context.Context) tea.Msg {
		if _, err := e.Send(ctx, text); err != nil {
			return actionDoneMsg{Err: err}
		}
		return replyMsg{}
	})
}

func (s *LessonScreen) complete() tea.Cmd {
	if err := s.engine.SetReflection(s.reflection.Value()); err != nil {
		return nil
	}
	e := s.engine
	return s.run(func(ctx context.Context) tea.Msg {
		return completeMsg{Err: e.Complete(ctx)}
	})
}

func (s *LessonScreen) handleComplete(msg completeMsg) (screen.Screen, tea.Cmd) {
	s.busy--
	switch {
	case msg.Err == nil:
		st, _ := s.engine.State().(engine.Completed)
		total := st.Total
		return s, func() tea.Msg { return screen.PointsMsg{Total: total} }
	case errors.Is(msg.Err, engine.ErrBusy):
		return s, nil
	case errors.Is(msg.Err, client.ErrUnauthorized):
		return s, loginCmd()
	default:
		s.notice = "Opslaan is niet gelukt. Druk op Ctrl+S om het opnieuw te proberen."
		return s, nil
	}
}

// dictationAvailable reports whether a recorder and a transcriber exist.
func (s *LessonScreen) dictationAvailable() bool {
	return s.deps.Recorder != nil && s.deps.Ports.Transcriber != nil
}

func (s *LessonScreen) toggleRecording() tea.Cmd {
	if s.recording {
		s.stopRecording()
		return nil
	}
	if !s.dictationAvailable() {
		return nil
	}
	stop := make(chan struct{})
	s.stopRec = stop
	s.recording = true
	rec, e := s.deps.Recorder, s.engine
	return s.run(func(ctx context.Context) tea.Msg {
		audio, err := rec.Record(ctx, stop)
		if err != nil {
			return dictationMsg{Stop: stop, Err: err}
		}
		text, err := e.Dictate(ctx, bytes.NewReader(audio))
		return dictationMsg{Stop: stop, Text: text, Err: err}
	})
}

// stopRecording releases the microphone. Safe to call when idle.
func (s *LessonScreen) stopRecording() {
	if !s.recording {
		return
	}
	close(s.stopRec)
	s.recording = false
}

func (s *LessonScreen) handleDictation(msg dictationMsg) (screen.Screen, tea.Cmd) {
	s.busy--
	if msg.Stop == s.stopRec && s.recording {
		// The recorder ended on its own.
		s.recording = false
	}
	if msg.Err != nil {
		s.deps.Log.Warn("dictation failed", "error", msg.Err)
		s.notice = "Opnemen is niet gelukt."
		return s, nil
	}
	if msg.Text == "" {
		return s, nil
	}
	switch s.engine.State().(type) {
	case engine.Chat:
		s.chatInput.SetValue(appendText(s.chatInput.Value(), msg.Text))
	case engine.Reflection:
		s.reflection.SetValue(appendText(s.reflection.Value(), msg.Text))
	}
	return s, nil
}

func appendText(current, add string) string {
	current = strings.TrimSpace(current)
	if current == "" {
		return add
	}
	return current + " " + add
}

func refreshCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

func loginCmd() tea.Cmd {
	return func() tea.Msg { return router.ResetMsg{Screen: notice.Login()} }
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.engine == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Terug"}}
	}
	back := layout.KeyHint{Key: "Esc", Description: "Stoppen"}
	switch st := s.engine.State().(type) {
	case engine.Intro:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Verder"}}
		if st.CanListen {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+L", Description: "Luisteren"})
		}
		return append(hints, back)
	case engine.Chat:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Versturen / verder"}}
		if st.Enabled() && s.dictationAvailable() {
			hints = append(hints, s.recordHint())
		}
		return append(hints, back)
	case engine.DepthPrompt:
		return []layout.KeyHint{{Key: "J", Description: "Ja, meer!"}, {Key: "N", Description: "Nee, door"}, back}
	case engine.Reflection:
		hints := []layout.KeyHint{{Key: "Ctrl+S", Description: "Klaar"}}
		if s.dictationAvailable() {
			hints = append(hints, s.recordHint())
		}
		return append(hints, back)
	case engine.Completed:
		return []layout.KeyHint{{Key: "Enter", Description: "Terug naar de lessen"}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Verder"}, back}
	}
}

func (s *LessonScreen) recordHint() layout.KeyHint {
	if s.recording {
		return layout.KeyHint{Key: "Ctrl+R", Description: "Stop opname"}
	}
	return layout.KeyHint{Key: "Ctrl+R", Description: "Inspreken"}
}
