package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
		in    float64
	}{
		{"claude-sonnet-4-5-20250929", true, 3},
		{"anthropic/claude-sonnet-4.5", true, 3},
		{"openai/gpt-4o-mini", true, 0.15},
		{"someone/unknown-model", false, 0},
	}
	for _, tt := range tests {
		c := LookupCost(tt.model)
		if (c != nil) != tt.found {
			t.Errorf("LookupCost(%q) found = %v, want %v", tt.model, c != nil, tt.found)
			continue
		}
		if c != nil && c.InputPerMTok != tt.in {
			t.Errorf("LookupCost(%q).InputPerMTok = %v, want %v", tt.model, c.InputPerMTok, tt.in)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}
	// A typical chat turn: long persona prompt, three-sentence reply.
	got := c.Cost(1500, 120)
	want := 0.0045 + 0.0018
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("cost = %v, want %v", got, want)
	}
}
