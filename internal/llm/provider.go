package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Provider is the core abstraction for LLM interaction. Companion chat calls
// it for free text; lesson generation calls it with a Schema.
type Provider interface {
	// Generate sends a prompt to the LLM and returns a structured response.
	// The request's Schema field, when set, instructs the provider to return
	// JSON conforming to that schema. The response Content will be the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history, oldest first. Companion chat
	// sends the prior transcript followed by the child's new message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Zero leaves the provider default.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as the schema name for OpenAI and
	// the cache key for validation). Kebab-case, e.g. "lesson-variants".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. Otherwise it holds the
	// model's text verbatim; use Text to read it.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped. One of the Stop*
	// constants.
	StopReason string
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
	// StopFiltered means the vendor's safety filter withheld or refused the
	// reply. Content is empty.
	StopFiltered = "filtered"
)

// withheld builds the response for a reply the vendor filtered. A
// structured request has nothing to validate and fails instead.
func withheld(req Request, model string, usage Usage) (*Response, error) {
	if req.Schema != nil {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("reply withheld by %s content filter", model)}
	}
	return &Response{Usage: usage, Model: model, StopReason: StopFiltered}, nil
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response as trimmed plain text.
func (r *Response) Text() string {
	return strings.TrimSpace(string(r.Content))
}

// UserMessage is shorthand for a single user turn.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
