package lesson

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
)

type fakePorts struct {
	mu sync.Mutex

	replies    []string
	replyErr   error
	chatReqs   []chat.Request
	narrations []string
	narrateErr error
	transcript string
	sttErr     error

	pointsErr   error
	pointReqs   []points.Request
	completeErr error
	completions []progress.Completion
	calls       []string
}

func (f *fakePorts) Reply(_ context.Context, req chat.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatReqs = append(f.chatReqs, req)
	if f.replyErr != nil {
		return "", f.replyErr
	}
	if len(f.replies) == 0 {
		return "", nil
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r, nil
}

func (f *fakePorts) Narrate(_ context.Context, text, voiceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.narrations = append(f.narrations, voiceID+":"+text)
	return f.narrateErr
}

func (f *fakePorts) Transcribe(_ context.Context, audio io.Reader, filename string) (string, error) {
	if filename != RecordingFilename {
		return "", errors.New("unexpected filename " + filename)
	}
	io.Copy(io.Discard, audio)
	return f.transcript, f.sttErr
}

func (f *fakePorts) RecordPoints(_ context.Context, req points.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "points")
	if f.pointsErr != nil {
		return f.pointsErr
	}
	f.pointReqs = append(f.pointReqs, req)
	return nil
}

func (f *fakePorts) Complete(_ context.Context, c progress.Completion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "complete")
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completions = append(f.completions, c)
	return nil
}

func (f *fakePorts) ports() Ports {
	return Ports{Companion: f, Narrator: f, Transcriber: f, Ledger: f, Completer: f}
}

var bijBas = content.Character{ID: "bas", Name: "Bas de Bij", VoiceID: "voice-bas"}

// insectVisit is "Wat is een insect?" with variants for grades 3, 5 and 7.
func insectVisit(grade int) Visit {
	lesson := content.Lesson{
		ID:           "wat-is-een-insect",
		Title:        "Wat is een insect?",
		CharacterIDs: []string{"bas"},
		Variants: []content.Variant{
			{TargetGrade: 3, IntroText: "Insecten hebben zes poten!", Core: content.Section{Content: "<p>Kop, borst en achterlijf.</p>"}, Depth: content.Section{Content: "<p>Vlinders proeven met hun poten.</p>"}, ReflectionQuestion: "Welk insect vind jij het mooist?", PointsBase: 100, PointsDepthBonus: 50},
			{TargetGrade: 5, IntroText: "Er zijn meer dan een miljoen soorten insecten.", PointsBase: 100, PointsDepthBonus: 50},
			{TargetGrade: 7, IntroText: "Insecten hebben een exoskelet.", PointsBase: 100, PointsDepthBonus: 50},
		},
	}
	variant, err := content.SelectVariant(lesson, grade)
	if err != nil {
		panic(err)
	}
	return Visit{
		Lesson:     lesson,
		Variant:    variant,
		Characters: []content.Character{bijBas},
		Student:    Student{Name: "Sem", Grade: grade, PointsTotal: 400},
	}
}

func advanceTo(t *testing.T, e *Engine, step Step) {
	t.Helper()
	for e.State().Step() != step {
		switch e.State().Step() {
		case StepDepthPrompt:
			if step == StepDepth {
				require.NoError(t, e.UnlockDepth(context.Background()))
			} else {
				require.NoError(t, e.SkipDepth())
			}
		default:
			require.NoError(t, e.Next())
		}
	}
}

func TestInitialState(t *testing.T) {
	tests := []struct {
		name  string
		prior *Prior
		want  Step
	}{
		{"first visit", nil, StepIntro},
		{"started before", &Prior{ReflectionAnswer: "mieren"}, StepIntro},
		{"completed before", &Prior{Completed: true, DepthAccessed: true}, StepCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := insectVisit(3)
			v.Progress = tt.prior
			e := New(v, (&fakePorts{}).ports(), nil)
			if got := e.State().Step(); got != tt.want {
				t.Fatalf("initial step = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRevisitSkipsContent(t *testing.T) {
	v := insectVisit(3)
	v.Progress = &Prior{Completed: true}
	f := &fakePorts{}
	e := New(v, f.ports(), nil)
	e.Start(context.Background())

	done, ok := e.State().(Completed)
	require.True(t, ok)
	require.True(t, done.Revisit)
	require.Equal(t, 0, done.VisitPoints)
	require.Equal(t, 400, done.Total)
	require.Empty(t, f.narrations, "summary must not narrate the intro")

	require.ErrorIs(t, e.Next(), ErrInvalidTransition)
	require.ErrorIs(t, e.Complete(context.Background()), ErrInvalidTransition)
}

func TestIntroNarration(t *testing.T) {
	tests := []struct {
		name       string
		grade      int
		voice      string
		wantAuto   bool
		wantListen bool
	}{
		{"young student hears intro", 3, "voice-bas", true, false},
		{"grade 1", 1, "voice-bas", true, false},
		{"older student gets listen button", 4, "voice-bas", false, true},
		{"no voice configured", 2, "", false, false},
		{"no voice no button", 6, "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := insectVisit(tt.grade)
			v.Characters[0].VoiceID = tt.voice
			f := &fakePorts{}
			e := New(v, f.ports(), nil)
			e.Start(context.Background())

			if got := len(f.narrations) == 1; got != tt.wantAuto {
				t.Errorf("auto narration = %v, want %v", got, tt.wantAuto)
			}
			intro := e.State().(Intro)
			if intro.CanListen != tt.wantListen {
				t.Errorf("CanListen = %v, want %v", intro.CanListen, tt.wantListen)
			}
			err := e.Listen(context.Background())
			if tt.wantListen && err != nil {
				t.Errorf("Listen: %v", err)
			}
			if !tt.wantListen && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("Listen err = %v, want ErrInvalidTransition", err)
			}
		})
	}
}

func TestNarrationFailureDoesNotBlock(t *testing.T) {
	f := &fakePorts{narrateErr: errors.New("elevenlabs: 503")}
	e := New(insectVisit(3), f.ports(), nil)
	e.Start(context.Background())
	require.Len(t, f.narrations, 1)
	require.NoError(t, e.Next())
	require.Equal(t, StepCore, e.State().Step())
}

func TestLessonWithoutCharacters(t *testing.T) {
	v := insectVisit(3)
	v.Characters = nil
	f := &fakePorts{}
	e := New(v, f.ports(), nil)
	e.Start(context.Background())
	require.Empty(t, f.narrations)

	advanceTo(t, e, StepChat)
	st := e.State().(Chat)
	require.False(t, st.Enabled())

	_, err := e.Send(context.Background(), "Hoi")
	require.ErrorIs(t, err, ErrChatDisabled)
	require.Empty(t, f.chatReqs)

	require.NoError(t, e.Next())
	require.Equal(t, StepDepthPrompt, e.State().Step())
}

func TestChatExchange(t *testing.T) {
	f := &fakePorts{replies: []string{"Een spin heeft acht poten, Sem!", "Mieren zijn insecten."}}
	e := New(insectVisit(5), f.ports(), nil)
	advanceTo(t, e, StepChat)

	reply, err := e.Send(context.Background(), "  Is een spin een insect?  ")
	require.NoError(t, err)
	require.Equal(t, "Een spin heeft acht poten, Sem!", reply)

	_, err = e.Send(context.Background(), "En een mier?")
	require.NoError(t, err)

	require.Len(t, f.chatReqs, 2)
	first := f.chatReqs[0]
	require.Equal(t, "bas", first.CharacterID)
	require.Equal(t, "Is een spin een insect?", first.Message)
	require.Equal(t, 5, first.StudentGrade)
	require.Equal(t, "Sem", first.StudentName)
	require.Empty(t, first.History)
	// The second request carries the first exchange, not the new message.
	require.Len(t, f.chatReqs[1].History, 2)

	st := e.State().(Chat)
	require.Len(t, st.Transcript, 4)
	require.Equal(t, chat.RoleUser, st.Transcript[2].Role)
	require.Equal(t, chat.RoleAssistant, st.Transcript[3].Role)

	// Both replies are spoken in the character's voice.
	require.Equal(t, []string{"voice-bas:Een spin heeft acht poten, Sem!", "voice-bas:Mieren zijn insecten."}, f.narrations)
}

func TestChatFailureKeepsOnlyUserLine(t *testing.T) {
	f := &fakePorts{replyErr: errors.New("anthropic: overloaded")}
	e := New(insectVisit(5), f.ports(), nil)
	advanceTo(t, e, StepChat)

	reply, err := e.Send(context.Background(), "Hoeveel poten heeft een kever?")
	require.NoError(t, err)
	require.Empty(t, reply)

	st := e.State().(Chat)
	require.Len(t, st.Transcript, 1)
	require.False(t, st.Pending)
	require.Empty(t, f.narrations)
	require.NoError(t, e.Next())
}

func TestSendRejects(t *testing.T) {
	e := New(insectVisit(5), (&fakePorts{}).ports(), nil)
	_, err := e.Send(context.Background(), "Hoi")
	require.ErrorIs(t, err, ErrInvalidTransition)

	advanceTo(t, e, StepChat)
	_, err = e.Send(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyMessage)
}

type blockingCompanion struct {
	started chan struct{}
	release chan struct{}
}

func (b blockingCompanion) Reply(ctx context.Context, _ chat.Request) (string, error) {
	close(b.started)
	<-b.release
	return "Zes poten!", nil
}

func TestPendingReplyDisablesOnlySend(t *testing.T) {
	f := &fakePorts{}
	ports := f.ports()
	bc := blockingCompanion{started: make(chan struct{}), release: make(chan struct{})}
	ports.Companion = bc
	e := New(insectVisit(5), ports, nil)
	advanceTo(t, e, StepChat)

	done := make(chan struct{})
	go func() {
		defer close(done)
		e.Send(context.Background(), "Hoeveel poten?")
	}()
	<-bc.started

	require.True(t, e.State().(Chat).Pending)
	_, err := e.Send(context.Background(), "Hallo?")
	require.ErrorIs(t, err, ErrReplyPending)

	// The student may move on while the reply is outstanding.
	require.NoError(t, e.Next())
	close(bc.release)
	<-done
	require.Equal(t, StepDepthPrompt, e.State().Step())
}

func TestDictation(t *testing.T) {
	f := &fakePorts{transcript: " Wat eet een rups? "}
	e := New(insectVisit(5), f.ports(), nil)

	_, err := e.Dictate(context.Background(), strings.NewReader("webm"))
	require.ErrorIs(t, err, ErrInvalidTransition)

	advanceTo(t, e, StepChat)
	text, err := e.Dictate(context.Background(), strings.NewReader("webm"))
	require.NoError(t, err)
	require.Equal(t, "Wat eet een rups?", text)

	f.sttErr = errors.New("whisper: 500")
	text, err = e.Dictate(context.Background(), strings.NewReader("webm"))
	require.NoError(t, err)
	require.Empty(t, text)
	require.NoError(t, e.Next())
}

func TestInvalidActionsLeaveStateUnchanged(t *testing.T) {
	e := New(insectVisit(3), (&fakePorts{}).ports(), nil)
	ctx := context.Background()

	require.ErrorIs(t, e.UnlockDepth(ctx), ErrInvalidTransition)
	require.ErrorIs(t, e.SkipDepth(), ErrInvalidTransition)
	require.ErrorIs(t, e.SetReflection("x"), ErrInvalidTransition)
	require.ErrorIs(t, e.Complete(ctx), ErrInvalidTransition)
	require.Equal(t, StepIntro, e.State().Step())

	advanceTo(t, e, StepDepthPrompt)
	require.ErrorIs(t, e.Next(), ErrInvalidTransition)
	require.Equal(t, StepDepthPrompt, e.State().Step())

	advanceTo(t, e, StepReflection)
	require.ErrorIs(t, e.Next(), ErrInvalidTransition)
}

func TestReflectionPrefilledFromProgress(t *testing.T) {
	v := insectVisit(3)
	v.Progress = &Prior{ReflectionAnswer: "De lieveheersbeestjes"}
	e := New(v, (&fakePorts{}).ports(), nil)
	advanceTo(t, e, StepReflection)

	st := e.State().(Reflection)
	require.Equal(t, "De lieveheersbeestjes", st.Answer)
	require.Equal(t, "Welk insect vind jij het mooist?", st.Question)
}

func TestScenarioSkipDepth(t *testing.T) {
	f := &fakePorts{}
	e := New(insectVisit(3), f.ports(), nil)
	ctx := context.Background()
	e.Start(ctx)

	advanceTo(t, e, StepReflection)
	require.NoError(t, e.SetReflection("De vlinder"))
	require.NoError(t, e.Complete(ctx))

	done := e.State().(Completed)
	require.Equal(t, 100, done.VisitPoints)
	require.Equal(t, 500, done.Total)
	require.False(t, done.DepthAccessed)

	require.Empty(t, f.pointReqs)
	require.Equal(t, []progress.Completion{{LessonID: "wat-is-een-insect", ReflectionAnswer: "De vlinder", DepthAccessed: false}}, f.completions)
}

func TestScenarioUnlockDepth(t *testing.T) {
	f := &fakePorts{}
	e := New(insectVisit(3), f.ports(), nil)
	ctx := context.Background()

	advanceTo(t, e, StepDepth)
	require.Equal(t, "<p>Vlinders proeven met hun poten.</p>", e.State().(Depth).Section.Content)
	require.NoError(t, e.Next())
	require.NoError(t, e.Complete(ctx))

	done := e.State().(Completed)
	require.Equal(t, 150, done.VisitPoints)
	require.Equal(t, 550, done.Total)
	require.True(t, done.DepthAccessed)

	require.Equal(t, []points.Request{{LessonID: "wat-is-een-insect", EventType: points.EventDepthAccessed, Points: 50}}, f.pointReqs)
	require.Len(t, f.completions, 1)
	require.True(t, f.completions[0].DepthAccessed)
	require.Equal(t, []string{"points", "complete"}, f.calls)
}

func TestFailedDepthWriteIsRetriedBeforeCompletion(t *testing.T) {
	f := &fakePorts{pointsErr: errors.New("network down")}
	e := New(insectVisit(3), f.ports(), nil)
	ctx := context.Background()

	advanceTo(t, e, StepDepth)
	require.True(t, e.State().(Depth).PointsPending)
	require.NoError(t, e.Next())
	require.True(t, e.State().(Reflection).PointsPending)

	// Still failing: completion is not attempted and the visit stays put.
	err := e.Complete(ctx)
	require.Error(t, err)
	require.Equal(t, StepReflection, e.State().Step())
	require.Empty(t, f.completions)

	f.pointsErr = nil
	require.NoError(t, e.Complete(ctx))
	require.Len(t, f.pointReqs, 1)
	require.Equal(t, []string{"points", "points", "points", "complete"}, f.calls)
	require.Equal(t, 150, e.State().(Completed).VisitPoints)
}

func TestFailedCompletionCanBeRetried(t *testing.T) {
	f := &fakePorts{completeErr: errors.New("503")}
	e := New(insectVisit(3), f.ports(), nil)
	ctx := context.Background()

	advanceTo(t, e, StepDepth)
	require.NoError(t, e.Next())
	require.NoError(t, e.SetReflection("Mieren"))

	require.Error(t, e.Complete(ctx))
	st := e.State().(Reflection)
	require.False(t, st.Saving)
	require.Equal(t, "Mieren", st.Answer)

	f.completeErr = nil
	require.NoError(t, e.Complete(ctx))
	// The depth award was stored once, before the first completion attempt.
	require.Len(t, f.pointReqs, 1)
	require.Equal(t, []string{"points", "complete", "complete"}, f.calls)
}

func TestStepString(t *testing.T) {
	want := []string{"intro", "core", "chat", "depth_prompt", "depth", "reflection", "completed"}
	for i, w := range want {
		if got := Step(i).String(); got != w {
			t.Errorf("Step(%d) = %q, want %q", i, got, w)
		}
	}
	if Step(42).String() != "unknown" {
		t.Error("out of range step should be unknown")
	}
}
