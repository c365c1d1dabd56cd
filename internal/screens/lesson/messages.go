package lesson

import (
	"time"

	"github.com/kosmi-edu/kosmi/internal/api"
)

// viewLoadedMsg carries the lesson view fetched on Init.
type viewLoadedMsg struct {
	View *api.LessonView
	Err  error
}

// actionDoneMsg is sent when a background engine call returns.
type actionDoneMsg struct {
	Err error
}

// replyMsg is sent when a chat exchange finishes.
type replyMsg struct{}

// dictationMsg carries a transcript for the active input. Stop identifies
// the recording it came from.
type dictationMsg struct {
	Stop chan struct{}
	Text string
	Err  error
}

// completeMsg is sent when the completion write returns.
type completeMsg struct {
	Err error
}

// refreshMsg re-renders while background work is in flight.
type refreshMsg time.Time
