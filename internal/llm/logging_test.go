package llm

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kosmi-edu/kosmi/internal/logger"
	"github.com/kosmi-edu/kosmi/internal/store"
)

// recordingRepo keeps appended events in memory.
type recordingRepo struct {
	store.EventRepo
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Content: []byte("Hallo!"), Usage: Usage{InputTokens: 12, OutputTokens: 3}})
	p := WithLogging(mock, "anthropic", repo, logger.Nop())

	ctx := WithPurpose(context.Background(), "chat")
	_, err := p.Generate(ctx, Request{System: "Je bent Uil Olivia.", Messages: []Message{UserMessage("Hoi")}})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	require.Equal(t, "anthropic", ev.Provider)
	require.Equal(t, "mock", ev.Model)
	require.Equal(t, "chat", ev.Purpose)
	require.Equal(t, 12, ev.InputTokens)
	require.True(t, ev.Success)
	require.Equal(t, "Hallo!", ev.ResponseBody)
	require.True(t, strings.Contains(ev.RequestBody, "[system]\nJe bent Uil Olivia."))
	require.True(t, strings.Contains(ev.RequestBody, "[user]\nHoi"))
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, "openai", repo, nil)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	require.False(t, repo.events[0].Success)
	require.Contains(t, repo.events[0].ErrorMessage, "down")
	require.Equal(t, "unknown", repo.events[0].Purpose)
}

func TestLogging_AuditFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(TextResponse("ok")), "mock", repo, logger.Nop())

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, "ok", resp.Text())
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "mock", p.ModelID())
}

func TestNewProvider_RejectsMissingKey(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: ProviderAnthropic}, nil, nil)
	require.Error(t, err)
}

func TestNewProvider_WrapsAnthropic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Anthropic.APIKey = "sk-test"
	p, err := NewProvider(context.Background(), cfg, &recordingRepo{}, logger.Nop())
	require.NoError(t, err)
	require.IsType(t, &TimeoutProvider{}, p)
	require.Equal(t, "claude-sonnet-4-5-20250929", p.ModelID())
}
