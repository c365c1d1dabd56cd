package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"introText":   map[string]any{"type": "string"},
			"targetGroep": map[string]any{"type": "integer"},
			"tone":        map[string]any{"type": "string", "enum": []any{"speels", "uitleg", "verhaal"}},
			"pointsByStep": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"introText", "targetGroep"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["introText"].Type != "STRING" {
		t.Fatalf("expected STRING for introText, got %s", schema.Properties["introText"].Type)
	}
	if schema.Properties["targetGroep"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for targetGroep, got %s", schema.Properties["targetGroep"].Type)
	}
	if len(schema.Properties["tone"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["tone"].Enum))
	}
	if schema.Properties["pointsByStep"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER items, got %s", schema.Properties["pointsByStep"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestGeminiFilteredAndStopReason(t *testing.T) {
	candidate := func(reason genai.FinishReason) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: reason}}}
	}
	tests := []struct {
		name     string
		result   *genai.GenerateContentResponse
		filtered bool
		stop     string
	}{
		{"stop", candidate("STOP"), false, StopEnd},
		{"max tokens", candidate("MAX_TOKENS"), false, StopMaxTokens},
		{"safety", candidate("SAFETY"), true, StopEnd},
		{"blocklist", candidate("BLOCKLIST"), true, StopEnd},
		{"blocked prompt", &genai.GenerateContentResponse{}, true, StopEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := geminiFiltered(tt.result); got != tt.filtered {
				t.Errorf("geminiFiltered = %v, want %v", got, tt.filtered)
			}
			if got := mapGeminiStopReason(tt.result); got != tt.stop {
				t.Errorf("mapGeminiStopReason = %q, want %q", got, tt.stop)
			}
		})
	}

	resp, err := withheld(Request{}, "gemini-2.5-flash", geminiUsage(&genai.GenerateContentResponse{
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{PromptTokenCount: 9, TotalTokenCount: 9},
	}))
	if err != nil {
		t.Fatalf("withheld: %v", err)
	}
	if resp.StopReason != StopFiltered || resp.Usage.InputTokens != 9 {
		t.Errorf("withheld response = %+v", resp)
	}
}
