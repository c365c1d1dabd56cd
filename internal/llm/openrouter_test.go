package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "anthropic/claude-sonnet-4.5"})
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("model passed through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  "gpt-4o", // would be mapped by the OpenAI provider
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "gpt-4o" {
			t.Errorf("model = %q, want %q", p.ModelID(), "gpt-4o")
		}
	})
}

func TestOpenRouterProvider_SendsAttribution(t *testing.T) {
	var gotReferer, gotTitle, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("HTTP-Referer")
		gotTitle = r.Header.Get("X-Title")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "gen-1",
			"model": "anthropic/claude-sonnet-4.5",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": "Hallo!"},
				"finish_reason": "stop",
			}},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "anthropic/claude-sonnet-4.5",
		BaseURL: server.URL,
		AppName: "Kosmi",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.Generate(context.Background(), Request{Messages: []Message{UserMessage("Hoi")}, MaxTokens: 50})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Text() != "Hallo!" {
		t.Errorf("text = %q", resp.Text())
	}
	if gotReferer != openRouterReferer || gotTitle != "Kosmi" {
		t.Errorf("attribution headers = %q, %q", gotReferer, gotTitle)
	}
	if gotAuth != "Bearer sk-or-test" {
		t.Errorf("authorization = %q", gotAuth)
	}
}
