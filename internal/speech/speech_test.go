package speech

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// routeTo sends requests made through http.DefaultTransport to srv. The
// ElevenLabs SDK has no base URL setting.
func routeTo(t *testing.T, srv *httptest.Server) {
	t.Helper()
	target, err := url.Parse(srv.URL)
	require.NoError(t, err)
	orig := http.DefaultTransport
	http.DefaultTransport = roundTripFunc(func(r *http.Request) (*http.Response, error) {
		r = r.Clone(r.Context())
		r.URL.Scheme, r.URL.Host, r.Host = target.Scheme, target.Host, target.Host
		return orig.RoundTrip(r)
	})
	t.Cleanup(func() { http.DefaultTransport = orig })
}

func TestElevenLabsSynthesize(t *testing.T) {
	var got struct {
		Text          string `json:"text"`
		ModelID       string `json:"model_id"`
		VoiceSettings struct {
			Stability       float64 `json:"stability"`
			SimilarityBoost float64 `json:"similarity_boost"`
		} `json:"voice_settings"`
	}
	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3-audio"))
	}))
	t.Cleanup(server.Close)
	routeTo(t, server)

	cfg := DefaultConfig().ElevenLabs
	cfg.APIKey = "xi-test"
	tts := NewElevenLabs(cfg, 5*time.Second)

	audio, err := tts.Synthesize(context.Background(), "Insecten hebben zes poten.", "voice-kever")
	require.NoError(t, err)
	defer audio.Body.Close()

	body, err := io.ReadAll(audio.Body)
	require.NoError(t, err)
	require.Equal(t, "ID3-audio", string(body))
	require.Equal(t, "audio/mpeg", audio.ContentType)
	require.EqualValues(t, -1, audio.Length)

	require.Contains(t, gotPath, "/text-to-speech/voice-kever")
	require.Equal(t, "xi-test", gotKey)
	require.Equal(t, "eleven_multilingual_v2", got.ModelID)
	require.Equal(t, 0.5, got.VoiceSettings.Stability)
	require.Equal(t, 0.75, got.VoiceSettings.SimilarityBoost)
	require.Equal(t, "Insecten hebben zes poten.", got.Text)
}

func TestElevenLabsVendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":{"status":"invalid_api_key","message":"Invalid API key"}}`))
	}))
	t.Cleanup(server.Close)
	routeTo(t, server)

	tts := NewElevenLabs(ElevenLabsConfig{APIKey: "k", Model: "eleven_multilingual_v2"}, 5*time.Second)
	audio, err := tts.Synthesize(context.Background(), "Hallo", "onbekend")
	require.Nil(t, audio)

	var vendorErr *VendorError
	require.True(t, errors.As(err, &vendorErr), "err = %v", err)
	require.Equal(t, "ElevenLabs", vendorErr.Vendor)
	require.NotEmpty(t, vendorErr.Message)
}

func TestElevenLabsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tts := NewElevenLabs(ElevenLabsConfig{APIKey: "k"}, time.Second)
	_, err := tts.Synthesize(ctx, "Hallo", "voice")
	require.ErrorIs(t, err, context.Canceled)

	var vendorErr *VendorError
	require.False(t, errors.As(err, &vendorErr))
}

func TestSynthesizeRejectsBadInput(t *testing.T) {
	synths := map[string]Synthesizer{
		"elevenlabs": NewElevenLabs(ElevenLabsConfig{}, 0),
		"openai":     NewOpenAI(OpenAIConfig{APIKey: "k", BaseURL: "http://127.0.0.1:1"}),
		"mock":       MockSynthesizer{},
	}
	for name, s := range synths {
		t.Run(name, func(t *testing.T) {
			_, err := s.Synthesize(context.Background(), "", "voice")
			require.ErrorIs(t, err, ErrEmptyInput)
			_, err = s.Synthesize(context.Background(), "Hallo", "")
			require.ErrorIs(t, err, ErrEmptyInput)
			_, err = s.Synthesize(context.Background(), strings.Repeat("a", MaxTextLength+1), "voice")
			require.ErrorIs(t, err, ErrTextTooLong)
		})
	}
}

func TestOpenAITranscribe(t *testing.T) {
	var model, language, filename string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		model = r.FormValue("model")
		language = r.FormValue("language")
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		filename = header.Filename
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"text": " Hoeveel poten heeft een spin? "})
	}))
	t.Cleanup(server.Close)

	stt := NewOpenAI(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL})
	text, err := stt.Transcribe(context.Background(), strings.NewReader("webm-bytes"), "recording.webm")
	require.NoError(t, err)
	require.Equal(t, "Hoeveel poten heeft een spin?", text)
	require.Equal(t, "whisper-1", model)
	require.Equal(t, "nl", language)
	require.Equal(t, "recording.webm", filename)
}

func TestOpenAISynthesizeFallsBackToDefaultVoice(t *testing.T) {
	var voice string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		voice, _ = body["voice"].(string)
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3"))
	}))
	t.Cleanup(server.Close)

	tts := NewOpenAI(OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL, DefaultVoice: "shimmer"})
	audio, err := tts.Synthesize(context.Background(), "Hallo", "EXAVITQu4vr4xnSDxMaL")
	require.NoError(t, err)
	audio.Body.Close()
	require.Equal(t, "shimmer", voice)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("KOSMI_TTS_PROVIDER", "openai")
	t.Setenv("KOSMI_ELEVENLABS_API_KEY", "")
	t.Setenv("ELEVENLABS_API_KEY", "xi-fallback")
	t.Setenv("KOSMI_OPENAI_API_KEY", "sk-kosmi")
	t.Setenv("OPENAI_API_KEY", "sk-vendor")

	cfg := ConfigFromEnv()
	require.Equal(t, "openai", cfg.TTS)
	require.Equal(t, "xi-fallback", cfg.ElevenLabs.APIKey)
	require.Equal(t, "sk-kosmi", cfg.OpenAI.APIKey)
}

func TestNewBackends(t *testing.T) {
	_, err := NewSynthesizer(Config{TTS: BackendElevenLabs})
	require.Error(t, err)
	_, err = NewSynthesizer(Config{TTS: "espeak"})
	require.Error(t, err)

	s, err := NewSynthesizer(Config{TTS: BackendMock})
	require.NoError(t, err)
	audio, err := s.Synthesize(context.Background(), "Hallo", "v")
	require.NoError(t, err)
	require.EqualValues(t, len(silentFrame), audio.Length)

	tr, err := NewTranscriber(Config{STT: BackendMock})
	require.NoError(t, err)
	text, err := tr.Transcribe(context.Background(), strings.NewReader("x"), "")
	require.NoError(t, err)
	require.NotEmpty(t, text)
}
