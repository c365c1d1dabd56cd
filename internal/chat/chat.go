// Package chat composes companion-character conversations on top of an LLM
// provider. The character's persona fields bound what the model may talk
// about; the student's name and grade set its register.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kosmi-edu/kosmi/internal/content"
	"github.com/kosmi-edu/kosmi/internal/llm"
	"github.com/kosmi-edu/kosmi/internal/logger"
)

// ErrMissingFields is returned when a request lacks a required field.
var ErrMissingFields = errors.New("ontbrekende verplichte velden")

const (
	// MaxReplyTokens keeps replies to a few sentences.
	MaxReplyTokens = 300

	// MaxHistory bounds how many prior turns are sent to the model.
	MaxHistory = 20

	// FallbackRedirect replaces a withheld reply when the character has no
	// off-topic answer of its own.
	FallbackRedirect = "Daar kan ik je niet mee helpen. Zullen we verder gaan met de les?"

	purpose = "chat"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one line of a conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a student's message to a character.
type Request struct {
	CharacterID  string
	Message      string
	StudentGrade int
	StudentName  string
	History      []Turn
}

func (r Request) validate() error {
	var missing []string
	if r.CharacterID == "" {
		missing = append(missing, "characterId")
	}
	if strings.TrimSpace(r.Message) == "" {
		missing = append(missing, "message")
	}
	if r.StudentGrade == 0 {
		missing = append(missing, "studentGroep")
	}
	if r.StudentName == "" {
		missing = append(missing, "studentDisplayName")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	if r.StudentGrade < content.MinGrade || r.StudentGrade > content.MaxGrade {
		return fmt.Errorf("%w: studentGroep %d out of range", ErrMissingFields, r.StudentGrade)
	}
	return nil
}

// CharacterSource looks up personas.
type CharacterSource interface {
	Character(ctx context.Context, id string) (*content.Character, error)
}

// Service answers student messages in character.
type Service struct {
	characters CharacterSource
	provider   llm.Provider
	log        *logger.Logger
}

// New creates a Service.
func New(characters CharacterSource, provider llm.Provider, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{characters: characters, provider: provider, log: log}
}

// Reply returns the character's answer. An unknown character yields
// content.ErrNotFound.
func (s *Service) Reply(ctx context.Context, req Request) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}

	character, err := s.characters.Character(ctx, req.CharacterID)
	if err != nil {
		return "", err
	}

	messages := append(historyMessages(req.History), llm.UserMessage(req.Message))
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, purpose), llm.Request{
		System:    SystemPrompt(*character, req.StudentName, req.StudentGrade),
		Messages:  messages,
		MaxTokens: MaxReplyTokens,
	})
	if err != nil {
		s.log.Warn("chat reply failed", "character_id", character.ID, "error", err)
		return "", fmt.Errorf("chat reply: %w", err)
	}

	switch text := resp.Text(); {
	case resp.StopReason == llm.StopFiltered || text == "":
		s.log.Warn("chat reply withheld", "character_id", character.ID, "stop_reason", resp.StopReason)
		return redirectText(*character), nil
	case resp.StopReason == llm.StopMaxTokens:
		return trimToSentence(text), nil
	default:
		return text, nil
	}
}

// redirectText is what a character says instead of a withheld reply.
func redirectText(c content.Character) string {
	if c.OffTopicRedirect != "" {
		return c.OffTopicRedirect
	}
	return FallbackRedirect
}

// trimToSentence cuts a truncated reply after its last complete sentence.
// Text without a sentence end is returned whole.
func trimToSentence(text string) string {
	if i := strings.LastIndexAny(text, ".!?"); i > 0 {
		return text[:i+1]
	}
	return text
}

// SystemPrompt composes the instruction header for a conversation. The
// character's own prompt comes first; the rest pins the audience, the
// knowledge scope and the off-topic answer.
func SystemPrompt(c content.Character, studentName string, grade int) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(c.SystemPrompt))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "De leerling heet %s en zit in groep %d.\n", studentName, grade)
	b.WriteString("Pas je taalgebruik aan op dit niveau.\n")
	if c.ToneGuide != "" {
		fmt.Fprintf(&b, "Toon: %s\n", c.ToneGuide)
	}
	fmt.Fprintf(&b, "Blijf binnen je kennisgebied: %s.\n", c.KnowledgeScope)
	fmt.Fprintf(&b, "Bij vragen buiten je kennisgebied zeg je: %q\n", c.OffTopicRedirect)
	b.WriteString("Spreek de leerling aan bij naam waar dat natuurlijk voelt.\n")
	b.WriteString("Antwoord altijd in het Nederlands.\n")
	b.WriteString("Maximaal 3 zinnen per antwoord.")
	return b.String()
}

// historyMessages converts the last MaxHistory turns. Unknown roles and
// empty lines are dropped, and the history always starts with a user turn.
func historyMessages(history []Turn) []llm.Message {
	if len(history) > MaxHistory {
		history = history[len(history)-MaxHistory:]
	}
	out := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		text := strings.TrimSpace(t.Content)
		if text == "" {
			continue
		}
		var role llm.Role
		switch t.Role {
		case RoleUser:
			role = llm.RoleUser
		case RoleAssistant:
			role = llm.RoleAssistant
		default:
			continue
		}
		if len(out) == 0 && role != llm.RoleUser {
			continue
		}
		out = append(out, llm.Message{Role: role, Content: text})
	}
	return out
}
