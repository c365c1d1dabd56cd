package lesson

import (
	"context"
	"io"

	"github.com/kosmi-edu/kosmi/internal/chat"
	"github.com/kosmi-edu/kosmi/internal/points"
	"github.com/kosmi-edu/kosmi/internal/progress"
)

// Companion answers chat messages in character.
type Companion interface {
	Reply(ctx context.Context, req chat.Request) (string, error)
}

// Narrator speaks text in a character's voice.
type Narrator interface {
	Narrate(ctx context.Context, text, voiceID string) error
}

// Transcriber turns recorded speech into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

// Ledger records points events.
type Ledger interface {
	RecordPoints(ctx context.Context, req points.Request) error
}

// Completer stores the lesson completion. It must be idempotent for an
// identical payload.
type Completer interface {
	Complete(ctx context.Context, c progress.Completion) error
}

// Ports are the collaborators an Engine calls. Companion, Narrator and
// Transcriber may be nil, which disables the channel.
type Ports struct {
	Companion   Companion
	Narrator    Narrator
	Transcriber Transcriber
	Ledger      Ledger
	Completer   Completer
}
