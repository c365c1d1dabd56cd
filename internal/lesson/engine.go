// Package lesson drives one student through one lesson variant: intro, core
// content, a chat with the lesson's companion, optional depth content,
// reflection and the completion summary.
//
// Narration, chat and dictation are advisory: their failures are logged and
// never block a transition. The completion write is the only durable step
// and its failures are returned to the caller, which may retry.
package lesson

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
)

var (
	// ErrInvalidTransition is returned for an action the current step does
	// not offer. The state is left unchanged.
	ErrInvalidTransition = errors.New("action not available in this step")
	// ErrChatDisabled is returned when sending in a lesson without characters.
	ErrChatDisabled = errors.New("chat is not available for this lesson")
	// ErrReplyPending is returned when sending while a reply is outstanding.
	ErrReplyPending = errors.New("waiting for a reply")
	// ErrEmptyMessage is returned when sending blank text.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrBusy is returned when completing while a write is in flight.
	ErrBusy = errors.New("a save is already in progress")
)

// AutoNarrateMaxGrade is the highest grade whose intro is read aloud
// without asking.
const AutoNarrateMaxGrade = 3

// RecordingFilename names dictation uploads.
const RecordingFilename = "recording.webm"

// Student is who plays the visit.
type Student struct {
	Name        string
	Grade       int
	PointsTotal int
}

// Prior is the student's stored progress on the lesson.
type Prior struct {
	Completed        bool
	DepthAccessed    bool
	ReflectionAnswer string
}

// Visit is everything needed to play a lesson once.
type Visit struct {
	Lesson     content.Lesson
	Variant    content.Variant
	Characters []content.Character
	Student    Student
	// Progress is nil on a first visit.
	Progress *Prior
}

// Engine holds the state of one visit. It is safe for concurrent use: port
// calls run outside the lock so a pending chat reply does not hold up the
// other steps.
type Engine struct {
	visit Visit
	ports Ports
	log   *logger.Logger

	mu            sync.Mutex
	step          Step
	transcript    []chat.Turn
	replyPending  bool
	depthAccessed bool
	depthPending  bool // depth award not stored yet
	depthWriting  bool
	saving        bool
	earned        int
	answer        string
	revisit       bool
}

// New starts a visit. A lesson the student already completed opens on the
// summary; anything else opens on the intro.
func New(v Visit, ports Ports, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	e := &Engine{
		visit: v,
		ports: ports,
		log:   log.With("lesson_id", v.Lesson.ID, "grade", v.Student.Grade),
		step:  StepIntro,
	}
	if v.Progress != nil {
		e.answer = v.Progress.ReflectionAnswer
		if v.Progress.Completed {
			e.step = StepCompleted
			e.revisit = true
			e.depthAccessed = v.Progress.DepthAccessed
		}
	}
	return e
}

// character is the lesson's primary companion, or nil.
func (e *Engine) character() *content.Character {
	if len(e.visit.Characters) == 0 {
		return nil
	}
	c := e.visit.Characters[0]
	return &c
}

func (e *Engine) voiceID() string {
	if c := e.character(); c != nil {
		return c.VoiceID
	}
	return ""
}

// State returns a snapshot of the current step.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() State {
	v := e.visit.Variant
	switch e.step {
	case StepIntro:
		return Intro{
			Title:     e.visit.Lesson.Title,
			Text:      v.IntroText,
			CanListen: e.visit.Student.Grade > AutoNarrateMaxGrade && e.voiceID() != "",
		}
	case StepCore:
		return Core{Title: e.visit.Lesson.Title, Section: v.Core}
	case StepChat:
		return Chat{
			Character:  e.character(),
			Transcript: append([]chat.Turn(nil), e.transcript...),
			Pending:    e.replyPending,
		}
	case StepDepthPrompt:
		return DepthPrompt{Bonus: v.PointsDepthBonus}
	case StepDepth:
		return Depth{Section: v.Depth, PointsPending: e.depthPending}
	case StepReflection:
		return Reflection{
			Question:      v.ReflectionQuestion,
			Answer:        e.answer,
			Saving:        e.saving,
			PointsPending: e.depthPending,
		}
	default:
		return Completed{
			VisitPoints:   e.earned,
			Total:         e.visit.Student.PointsTotal + e.earned,
			DepthAccessed: e.depthAccessed,
			Revisit:       e.revisit,
		}
	}
}

// Start runs the entry effects of the first step: young students hear the
// intro read aloud.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	auto := e.step == StepIntro && e.visit.Student.Grade <= AutoNarrateMaxGrade
	e.mu.Unlock()
	if auto {
		e.narrate(ctx, e.visit.Variant.IntroText)
	}
}

// Listen reads the intro aloud on request.
func (e *Engine) Listen(ctx context.Context) error {
	e.mu.Lock()
	st := e.stateLocked()
	e.mu.Unlock()
	intro, ok := st.(Intro)
	if !ok || !intro.CanListen {
		return ErrInvalidTransition
	}
	e.narrate(ctx, intro.Text)
	return nil
}

// Next advances through the steps that need a single action: intro to core,
// core to chat, chat to the depth prompt and depth to reflection.
func (e *Engine) Next() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.step {
	case StepIntro:
		e.step = StepCore
	case StepCore:
		e.step = StepChat
	case StepChat:
		e.step = StepDepthPrompt
	case StepDepth:
		e.step = StepReflection
	default:
		return fmt.Errorf("%w: next from %s", ErrInvalidTransition, e.step)
	}
	e.log.Debug("lesson step", "step", e.step.String())
	return nil
}

// Send posts a message to the companion and returns its reply. The message
// joins the transcript before the reply is requested. A failed reply is
// logged and leaves no transcript line; it returns "" and a nil error.
func (e *Engine) Send(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)

	e.mu.Lock()
	if e.step != StepChat {
		e.mu.Unlock()
		return "", fmt.Errorf("%w: send from %s", ErrInvalidTransition, e.step)
	}
	character := e.character()
	switch {
	case character == nil || e.ports.Companion == nil:
		e.mu.Unlock()
		return "", ErrChatDisabled
	case e.replyPending:
		e.mu.Unlock()
		return "", ErrReplyPending
	case message == "":
		e.mu.Unlock()
		return "", ErrEmptyMessage
	}
	history := append([]chat.Turn(nil), e.transcript...)
	e.transcript = append(e.transcript, chat.Turn{Role: chat.RoleUser, Content: message})
	e.replyPending = true
	e.mu.Unlock()

	reply, err := e.ports.Companion.Reply(ctx, chat.Request{
		CharacterID:  character.ID,
		Message:      message,
		StudentGrade: e.visit.Student.Grade,
		StudentName:  e.visit.Student.Name,
		History:      history,
	})
	reply = strings.TrimSpace(reply)

	e.mu.Lock()
	e.replyPending = false
	if err == nil && reply != "" {
		e.transcript = append(e.transcript, chat.Turn{Role: chat.RoleAssistant, Content: reply})
	}
	e.mu.Unlock()

	if err != nil {
		e.log.Warn("chat reply failed", "character_id", character.ID, "error", err)
		return "", nil
	}
	if reply == "" {
		return "", nil
	}
	e.narrate(ctx, reply)
	return reply, nil
}

// Dictate transcribes recorded speech for the chat or reflection input. A
// failed or empty transcription returns "" so the input stays as it was.
func (e *Engine) Dictate(ctx context.Context, audio io.Reader) (string, error) {
	e.mu.Lock()
	step := e.step
	e.mu.Unlock()
	if step != StepChat && step != StepReflection {
		return "", fmt.Errorf("%w: dictate from %s", ErrInvalidTransition, step)
	}
	if e.ports.Transcriber == nil {
		return "", nil
	}
	text, err := e.ports.Transcriber.Transcribe(ctx, audio, RecordingFilename)
	if err != nil {
		e.log.Warn("dictation failed", "error", err)
		return "", nil
	}
	return strings.TrimSpace(text), nil
}

// UnlockDepth shows the depth content and awards the depth bonus. The award
// is written right away; if that fails it stays pending and is written
// again before the completion.
func (e *Engine) UnlockDepth(ctx context.Context) error {
	e.mu.Lock()
	if e.step != StepDepthPrompt {
		e.mu.Unlock()
		return fmt.Errorf("%w: unlock depth from %s", ErrInvalidTransition, e.step)
	}
	v := e.visit.Variant
	e.step = StepDepth
	e.depthAccessed = true
	e.earned = v.PointsBase + v.PointsDepthBonus
	e.depthPending = true
	e.depthWriting = true
	e.mu.Unlock()

	err := e.recordDepth(ctx)

	e.mu.Lock()
	e.depthWriting = false
	if err == nil {
		e.depthPending = false
	}
	e.mu.Unlock()
	if err != nil {
		e.log.Warn("depth points not recorded, will retry", "error", err)
	}
	return nil
}

// SkipDepth declines the depth content and goes to the reflection.
func (e *Engine) SkipDepth() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != StepDepthPrompt {
		return fmt.Errorf("%w: skip depth from %s", ErrInvalidTransition, e.step)
	}
	e.earned = e.visit.Variant.PointsBase
	e.step = StepReflection
	return nil
}

// SetReflection replaces the reflection answer.
func (e *Engine) SetReflection(answer string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.step != StepReflection || e.saving {
		return fmt.Errorf("%w: edit reflection from %s", ErrInvalidTransition, e.step)
	}
	e.answer = answer
	return nil
}

// Complete stores the reflection and finishes the visit. A pending depth
// award is written first. On failure the visit stays on the reflection
// and Complete may be called again.
func (e *Engine) Complete(ctx context.Context) error {
	e.mu.Lock()
	if e.step != StepReflection {
		e.mu.Unlock()
		return fmt.Errorf("%w: complete from %s", ErrInvalidTransition, e.step)
	}
	if e.saving || e.depthWriting {
		e.mu.Unlock()
		return ErrBusy
	}
	e.saving = true
	pending := e.depthPending
	c := progress.Completion{
		LessonID:         e.visit.Lesson.ID,
		ReflectionAnswer: e.answer,
		DepthAccessed:    e.depthAccessed,
	}
	e.mu.Unlock()

	if pending {
		if err := e.recordDepth(ctx); err != nil {
			e.mu.Lock()
			e.saving = false
			e.mu.Unlock()
			e.log.Error("depth points not recorded", "error", err)
			return fmt.Errorf("record depth points: %w", err)
		}
		e.mu.Lock()
		e.depthPending = false
		e.mu.Unlock()
	}
	err := e.ports.Completer.Complete(ctx, c)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false
	if err != nil {
		err = fmt.Errorf("record completion: %w", err)
		e.log.Error("lesson completion failed", "error", err)
		return err
	}
	e.step = StepCompleted
	e.log.Info("lesson completed", "points", e.earned, "depth_accessed", e.depthAccessed)
	return nil
}

func (e *Engine) recordDepth(ctx context.Context) error {
	return e.ports.Ledger.RecordPoints(ctx, points.Request{
		LessonID:  e.visit.Lesson.ID,
		EventType: points.EventDepthAccessed,
		Points:    e.visit.Variant.PointsDepthBonus,
	})
}

func (e *Engine) narrate(ctx context.Context, text string) {
	voice := e.voiceID()
	if voice == "" || e.ports.Narrator == nil || strings.TrimSpace(text) == "" {
		return
	}
	if err := e.ports.Narrator.Narrate(ctx, text, voice); err != nil {
		e.log.Warn("narration failed", "error", err)
	}
}
