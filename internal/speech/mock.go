package speech

import (
	"bytes"
	"context"
	"io"
)

// MockSynthesizer returns a tiny silent MP3 frame for any input. It lets
// the server run without a narration vendor.
type MockSynthesizer struct{}

// silentFrame is one MPEG-1 Layer III frame of silence.
var silentFrame = append([]byte{0xFF, 0xFB, 0x90, 0x64}, make([]byte, 413)...)

func (MockSynthesizer) Synthesize(_ context.Context, text, voiceID string) (*Audio, error) {
	if err := checkText(text, voiceID); err != nil {
		return nil, err
	}
	return &Audio{
		Body:        io.NopCloser(bytes.NewReader(silentFrame)),
		ContentType: "audio/mpeg",
		Length:      int64(len(silentFrame)),
	}, nil
}

// MockTranscriber returns Text for any clip.
type MockTranscriber struct {
	Text string
}

func (m MockTranscriber) Transcribe(_ context.Context, audio io.Reader, _ string) (string, error) {
	if audio == nil {
		return "", ErrEmptyInput
	}
	return m.Text, nil
}
