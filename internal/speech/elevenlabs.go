package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/haguro/elevenlabs-go"
)

// ElevenLabs narrates through the ElevenLabs text-to-speech API.
type ElevenLabs struct {
	cfg     ElevenLabsConfig
	timeout time.Duration
}

// NewElevenLabs creates an ElevenLabs client. timeout bounds one narration,
// including the streamed body.
func NewElevenLabs(cfg ElevenLabsConfig, timeout time.Duration) *ElevenLabs {
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	return &ElevenLabs{cfg: cfg, timeout: timeout}
}

// Synthesize streams MP3 audio for text in the given voice. It returns once
// the first audio bytes arrive or the request fails; closing Body aborts the
// stream.
func (e *ElevenLabs) Synthesize(ctx context.Context, text, voiceID string) (*Audio, error) {
	if err := checkText(text, voiceID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	client := elevenlabs.NewClient(ctx, e.cfg.APIKey, e.timeout)
	req := elevenlabs.TextToSpeechRequest{
		Text:    text,
		ModelID: e.cfg.Model,
		VoiceSettings: &elevenlabs.VoiceSettings{
			Stability:       float32(e.cfg.Stability),
			SimilarityBoost: float32(e.cfg.Similarity),
		},
	}

	pr, pw := io.Pipe()
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		err := client.TextToSpeechStream(&firstWriteSignal{w: pw, started: started}, voiceID, req)
		pw.CloseWithError(err)
		done <- err
	}()

	body := &streamBody{PipeReader: pr, cancel: cancel}
	select {
	case <-started:
	case err := <-done:
		if err != nil {
			cancel()
			return nil, elevenLabsError(ctx, err)
		}
	}
	return &Audio{Body: body, ContentType: "audio/mpeg", Length: -1}, nil
}

// elevenLabsError keeps cancellation errors as they are and reports
// everything the API rejected as a VendorError.
func elevenLabsError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("elevenlabs request: %w", ctx.Err())
	}
	vendor := &VendorError{Vendor: "ElevenLabs", Message: err.Error()}
	var valErr *elevenlabs.ValidationError
	var apiErr *elevenlabs.APIError
	switch {
	case errors.As(err, &valErr):
		vendor.StatusCode = http.StatusUnprocessableEntity
	case errors.As(err, &apiErr):
		vendor.Message = apiErr.Error()
	}
	return vendor
}

// firstWriteSignal closes started on the first write.
type firstWriteSignal struct {
	w       io.Writer
	once    sync.Once
	started chan struct{}
}

func (f *firstWriteSignal) Write(p []byte) (int, error) {
	f.once.Do(func() { close(f.started) })
	return f.w.Write(p)
}

// streamBody ends the vendor request when the reader is closed.
type streamBody struct {
	*io.PipeReader
	cancel context.CancelFunc
}

func (b *streamBody) Close() error {
	err := b.PipeReader.Close()
	b.cancel()
	return err
}
