package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func invalid() MockResponse {
	return MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad")}}
}

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "first attempt succeeds",
			responses: []MockResponse{TextResponse("Hoi")},
			wantCalls: 1,
		},
		{
			name:      "transient then success",
			responses: []MockResponse{down(), TextResponse("Hoi")},
			wantCalls: 2,
		},
		{
			name:      "all attempts fail",
			responses: []MockResponse{down(), down(), down()},
			wantCalls: 3,
			wantErr:   true,
		},
		{
			name:      "max tokens not retried",
			responses: []MockResponse{{Err: &ErrMaxTokensExceeded{}}},
			wantCalls: 1,
			wantErr:   true,
		},
		{
			name:      "rejected request not retried",
			responses: []MockResponse{{Err: &ErrRequestRejected{StatusCode: 401, Err: errors.New("bad key")}}, TextResponse("unreached")},
			wantCalls: 1,
			wantErr:   true,
		},
		{
			name:      "invalid response retried once",
			responses: []MockResponse{invalid(), invalid(), TextResponse("unreached")},
			wantCalls: 2,
			wantErr:   true,
		},
		{
			name:      "rate limit then success",
			responses: []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, TextResponse("Hoi")},
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, retryConfig())

			resp, err := p.Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && resp.Text() != "Hoi" {
				t.Fatalf("text = %q", resp.Text())
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(down(), down(), TextResponse("Hoi"))
	p := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RetryAfterCappedAtMaxWait(t *testing.T) {
	r := &RetryProvider{config: retryConfig()}
	wait := r.backoff(0, &ErrRateLimit{RetryAfter: time.Hour})
	if wait != retryConfig().MaxWait {
		t.Fatalf("wait = %s, want %s", wait, retryConfig().MaxWait)
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
