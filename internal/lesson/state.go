package lesson

import (
	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/content"
)

// Step names the seven steps of a visit, in order.
type Step int

const (
	StepIntro Step = iota
	StepCore
	StepChat
	StepDepthPrompt
	StepDepth
	StepReflection
	StepCompleted
)

var stepNames = [...]string{"intro", "core", "chat", "depth_prompt", "depth", "reflection", "completed"}

func (s Step) String() string {
	if int(s) < len(stepNames) {
		return stepNames[s]
	}
	return "unknown"
}

// State is what the student currently sees. The set of implementations is
// closed; switch on the concrete type to render.
type State interface {
	Step() Step
	sealed()
}

// Intro shows the variant's intro text.
type Intro struct {
	Title string
	Text  string
	// CanListen is set when the student may replay the intro as audio.
	CanListen bool
}

// Core shows the main content.
type Core struct {
	Title   string
	Section content.Section
}

// Chat is the conversation with the lesson's primary character. Character
// is nil when the lesson has none; the step still shows but sending is
// disabled.
type Chat struct {
	Character  *content.Character
	Transcript []chat.Turn
	// Pending is set while a reply is outstanding.
	Pending bool
}

// Enabled reports whether messages can be sent.
func (c Chat) Enabled() bool { return c.Character != nil }

// DepthPrompt offers the optional depth content.
type DepthPrompt struct {
	Bonus int
}

// Depth shows the unlocked depth content.
type Depth struct {
	Section content.Section
	// PointsPending is set while the depth award has not been stored yet.
	PointsPending bool
}

// Reflection asks the reflection question.
type Reflection struct {
	Question string
	Answer   string
	// Saving is set while the completion is being stored.
	Saving bool
	// PointsPending is set while the depth award has not been stored yet.
	PointsPending bool
}

// Completed is the end-of-visit summary.
type Completed struct {
	// VisitPoints is what this visit earned; zero on a revisit.
	VisitPoints int
	// Total is the previous running total plus VisitPoints. The server
	// recomputes the real total from the ledger.
	Total         int
	DepthAccessed bool
	Revisit       bool
}

func (Intro) Step() Step       { return StepIntro }
func (Core) Step() Step        { return StepCore }
func (Chat) Step() Step        { return StepChat }
func (DepthPrompt) Step() Step { return StepDepthPrompt }
func (Depth) Step() Step       { return StepDepth }
func (Reflection) Step() Step  { return StepReflection }
func (Completed) Step() Step   { return StepCompleted }

func (Intro) sealed()       {}
func (Core) sealed()        {}
func (Chat) sealed()        {}
func (DepthPrompt) sealed() {}
func (Depth) sealed()       {}
func (Reflection) sealed()  {}
func (Completed) sealed()   {}
