package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// openAIVoices are the voice ids the OpenAI speech endpoint accepts.
var openAIVoices = map[string]openai.SpeechVoice{
	"alloy":   openai.VoiceAlloy,
	"echo":    openai.VoiceEcho,
	"fable":   openai.VoiceFable,
	"onyx":    openai.VoiceOnyx,
	"nova":    openai.VoiceNova,
	"shimmer": openai.VoiceShimmer,
}

// OpenAI narrates with OpenAI TTS and dictates with Whisper.
type OpenAI struct {
	client   *openai.Client
	voice    openai.SpeechVoice
	language string
}

// NewOpenAI creates an OpenAI speech client.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	voice, ok := openAIVoices[cfg.DefaultVoice]
	if !ok {
		voice = openai.VoiceNova
	}
	lang := cfg.Language
	if lang == "" {
		lang = "nl"
	}
	return &OpenAI{client: openai.NewClientWithConfig(config), voice: voice, language: lang}
}

// Synthesize narrates text. Character voices are ElevenLabs ids; any id
// OpenAI does not know falls back to the configured default voice.
func (o *OpenAI) Synthesize(ctx context.Context, text, voiceID string) (*Audio, error) {
	if err := checkText(text, voiceID); err != nil {
		return nil, err
	}
	voice, ok := openAIVoices[strings.ToLower(voiceID)]
	if !ok {
		voice = o.voice
	}

	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	return &Audio{Body: resp, ContentType: "audio/mpeg", Length: -1}, nil
}

// Transcribe sends the clip to Whisper in Dutch.
func (o *OpenAI) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if audio == nil {
		return "", ErrEmptyInput
	}
	if filename == "" {
		filename = "recording.webm"
	}
	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filename,
		Reader:   audio,
		Language: o.language,
	})
	if err != nil {
		return "", mapOpenAIError(err)
	}
	return strings.TrimSpace(resp.Text), nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &VendorError{Vendor: "OpenAI", StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &VendorError{Vendor: "OpenAI", StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
	}
	return fmt.Errorf("openai speech: %w", err)
}
