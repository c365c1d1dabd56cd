// Package speech proxies narration and dictation to vendor APIs. Nothing
// here synthesizes or recognizes speech itself.
package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmptyInput is returned for a missing text, voice id or audio clip.
	ErrEmptyInput = errors.New("text en voiceId zijn verplicht")

	// ErrTextTooLong is returned when narration text exceeds MaxTextLength.
	ErrTextTooLong = errors.New("text too long for narration")
)

const (
	// MaxTextLength is the longest text sent for narration, in runes.
	MaxTextLength = 5000

	// MaxAudioBytes is the largest dictation clip accepted (the Whisper
	// upload limit).
	MaxAudioBytes = 25 << 20
)

// Audio is a narration stream. The caller must close Body.
type Audio struct {
	Body        io.ReadCloser
	ContentType string
	// Length is -1 when the vendor streams without a length.
	Length int64
}

// Synthesizer turns text into speech in a given voice.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) (*Audio, error)
}

// Transcriber turns a recorded clip into Dutch text. filename carries the
// container format ("recording.webm", "clip.wav").
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

// VendorError reports a request a speech vendor rejected. StatusCode is 0
// when the vendor SDK does not expose it.
type VendorError struct {
	Vendor     string
	StatusCode int
	Message    string
}

func (e *VendorError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s API error: %s", e.Vendor, e.Message)
	}
	return fmt.Sprintf("%s API error (%d): %s", e.Vendor, e.StatusCode, e.Message)
}

func checkText(text, voiceID string) error {
	if text == "" || voiceID == "" {
		return ErrEmptyInput
	}
	if len([]rune(text)) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}
