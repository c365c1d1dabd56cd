package speech

import (
	"fmt"
	"os"
	"time"
)

// Backend names.
const (
	BackendElevenLabs = "elevenlabs"
	BackendOpenAI     = "openai"
	BackendMock       = "mock"
)

// Config selects and configures the narration and dictation vendors.
type Config struct {
	TTS string // elevenlabs, openai or mock
	STT string // openai or mock

	ElevenLabs ElevenLabsConfig
	OpenAI     OpenAIConfig

	Timeout time.Duration
}

// ElevenLabsConfig configures narration through ElevenLabs.
type ElevenLabsConfig struct {
	APIKey     string
	Model      string
	Stability  float64
	Similarity float64
}

// OpenAIConfig configures OpenAI TTS and Whisper.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	// DefaultVoice is used when a character's voice id is not an OpenAI voice.
	DefaultVoice string
	Language     string
}

// DefaultConfig narrates with ElevenLabs and dictates with Whisper.
func DefaultConfig() Config {
	return Config{
		TTS: BackendElevenLabs,
		STT: BackendOpenAI,
		ElevenLabs: ElevenLabsConfig{
			Model:      "eleven_multilingual_v2",
			Stability:  0.5,
			Similarity: 0.75,
		},
		OpenAI: OpenAIConfig{
			DefaultVoice: "nova",
			Language:     "nl",
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv reads KOSMI_TTS_PROVIDER, KOSMI_STT_PROVIDER and the vendor
// keys. The vendors' own variables (ELEVENLABS_API_KEY, OPENAI_API_KEY) are
// accepted as fallbacks.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("KOSMI_TTS_PROVIDER"); v != "" {
		cfg.TTS = v
	}
	if v := os.Getenv("KOSMI_STT_PROVIDER"); v != "" {
		cfg.STT = v
	}
	cfg.ElevenLabs.APIKey = firstEnv("KOSMI_ELEVENLABS_API_KEY", "ELEVENLABS_API_KEY")
	cfg.OpenAI.APIKey = firstEnv("KOSMI_OPENAI_API_KEY", "OPENAI_API_KEY")
	cfg.OpenAI.BaseURL = os.Getenv("KOSMI_OPENAI_BASE_URL")
	if v := os.Getenv("KOSMI_OPENAI_VOICE"); v != "" {
		cfg.OpenAI.DefaultVoice = v
	}
	return cfg
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// NewSynthesizer builds the configured narration backend.
func NewSynthesizer(cfg Config) (Synthesizer, error) {
	switch cfg.TTS {
	case BackendElevenLabs:
		if cfg.ElevenLabs.APIKey == "" {
			return nil, fmt.Errorf("KOSMI_ELEVENLABS_API_KEY is required for elevenlabs narration")
		}
		return NewElevenLabs(cfg.ElevenLabs, cfg.Timeout), nil
	case BackendOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("KOSMI_OPENAI_API_KEY is required for openai narration")
		}
		return NewOpenAI(cfg.OpenAI), nil
	case BackendMock:
		return MockSynthesizer{}, nil
	}
	return nil, fmt.Errorf("unknown TTS provider: %q", cfg.TTS)
}

// NewTranscriber builds the configured dictation backend.
func NewTranscriber(cfg Config) (Transcriber, error) {
	switch cfg.STT {
	case BackendOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("KOSMI_OPENAI_API_KEY is required for openai dictation")
		}
		return NewOpenAI(cfg.OpenAI), nil
	case BackendMock:
		return MockTranscriber{Text: "Hoeveel poten heeft een insect?"}, nil
	}
	return nil, fmt.Errorf("unknown STT provider: %q", cfg.STT)
}
