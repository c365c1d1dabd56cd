// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kosmi-edu/kosmi/ent/character"
)

// Character is the model entity for the Character schema.
type Character struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// WorldID holds the value of the "world_id" field.
	WorldID string `json:"world_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// PersonaDescription holds the value of the "persona_description" field.
	PersonaDescription string `json:"persona_description,omitempty"`
	// ToneGuide holds the value of the "tone_guide" field.
	ToneGuide string `json:"tone_guide,omitempty"`
	// KnowledgeScope holds the value of the "knowledge_scope" field.
	KnowledgeScope string `json:"knowledge_scope,omitempty"`
	// OffTopicRedirect holds the value of the "off_topic_redirect" field.
	OffTopicRedirect string `json:"off_topic_redirect,omitempty"`
	// VoiceID holds the value of the "voice_id" field.
	VoiceID string `json:"voice_id,omitempty"`
	// SystemPrompt holds the value of the "system_prompt" field.
	SystemPrompt string `json:"-"`
	// Avatar holds the value of the "avatar" field.
	Avatar       string `json:"avatar,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Character) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case character.FieldID, character.FieldSlug, character.FieldWorldID, character.FieldName, character.FieldPersonaDescription, character.FieldToneGuide, character.FieldKnowledgeScope, character.FieldOffTopicRedirect, character.FieldVoiceID, character.FieldSystemPrompt, character.FieldAvatar:
			values[i] = new(sql.NullString)
		case character.FieldCreatedAt, character.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Character fields.
func (_m *Character) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case character.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case character.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case character.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case character.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case character.FieldWorldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field world_id", values[i])
			} else if value.Valid {
				_m.WorldID = value.String
			}
		case character.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case character.FieldPersonaDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field persona_description", values[i])
			} else if value.Valid {
				_m.PersonaDescription = value.String
			}
		case character.FieldToneGuide:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tone_guide", values[i])
			} else if value.Valid {
				_m.ToneGuide = value.String
			}
		case character.FieldKnowledgeScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field knowledge_scope", values[i])
			} else if value.Valid {
				_m.KnowledgeScope = value.String
			}
		case character.FieldOffTopicRedirect:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field off_topic_redirect", values[i])
			} else if value.Valid {
				_m.OffTopicRedirect = value.String
			}
		case character.FieldVoiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field voice_id", values[i])
			} else if value.Valid {
				_m.VoiceID = value.String
			}
		case character.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = value.String
			}
		case character.FieldAvatar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar", values[i])
			} else if value.Valid {
				_m.Avatar = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Character.
// This includes values selected through modifiers, order, etc.
func (_m *Character) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Character.
// Note that you need to call Character.Unwrap() before calling this method if this Character
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Character) Update() *CharacterUpdateOne {
	return NewCharacterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Character entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Character) Unwrap() *Character {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Character is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Character) String() string {
	var builder strings.Builder
	builder.WriteString("Character(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("world_id=")
	builder.WriteString(_m.WorldID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("persona_description=")
	builder.WriteString(_m.PersonaDescription)
	builder.WriteString(", ")
	builder.WriteString("tone_guide=")
	builder.WriteString(_m.ToneGuide)
	builder.WriteString(", ")
	builder.WriteString("knowledge_scope=")
	builder.WriteString(_m.KnowledgeScope)
	builder.WriteString(", ")
	builder.WriteString("off_topic_redirect=")
	builder.WriteString(_m.OffTopicRedirect)
	builder.WriteString(", ")
	builder.WriteString("voice_id=")
	builder.WriteString(_m.VoiceID)
	builder.WriteString(", ")
	builder.WriteString("system_prompt=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("avatar=")
	builder.WriteString(_m.Avatar)
	builder.WriteByte(')')
	return builder.String()
}

// Characters is a parsable slice of Character.
type Characters []*Character
