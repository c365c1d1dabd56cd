package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func variantSchema() *Schema {
	return &Schema{
		Name:        "test-variant",
		Description: "One lesson variant",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"targetGroep": map[string]any{"type": "integer", "minimum": 1, "maximum": 8},
				"introText":   map[string]any{"type": "string"},
				"tone":        map[string]any{"type": "string", "enum": []any{"speels", "uitleg"}},
			},
			"required": []any{"targetGroep", "introText"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"targetGroep":4,"introText":"Bijen maken honing.","tone":"speels"}`, false},
		{"optional omitted", `{"targetGroep":4,"introText":"Bijen"}`, false},
		{"missing required", `{"targetGroep":4}`, true},
		{"wrong type", `{"targetGroep":"vier","introText":"Bijen"}`, true},
		{"out of range", `{"targetGroep":9,"introText":"Bijen"}`, true},
		{"bad enum", `{"targetGroep":4,"introText":"Bijen","tone":"boos"}`, true},
		{"malformed", `{"targetGroep":4,`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(variantSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_SchemaChangesUnderSameName(t *testing.T) {
	loose := &Schema{Name: "evolving", Definition: map[string]any{"type": "object"}}
	strict := &Schema{Name: "evolving", Definition: map[string]any{
		"type":     "object",
		"required": []any{"introText"},
	}}

	raw := json.RawMessage(`{}`)
	if err := validateResponse(loose, raw); err != nil {
		t.Fatalf("loose: %v", err)
	}
	if err := validateResponse(strict, raw); err == nil {
		t.Fatal("strict schema reused the loose compilation")
	}
}

func TestValidateJSON_NestedVariants(t *testing.T) {
	schema := &Schema{
		Name: "test-variants",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"variants": map[string]any{
					"type":  "array",
					"items": variantSchema().Definition,
				},
			},
			"required": []any{"variants"},
		},
	}

	valid := json.RawMessage(`{"variants":[{"targetGroep":3,"introText":"a"},{"targetGroep":6,"introText":"b"}]}`)
	if err := ValidateJSON(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"variants":[{"targetGroep":3}]}`)
	if err := ValidateJSON(schema, invalid); err == nil {
		t.Fatal("expected error for variant without introText")
	}
}
