// Code generated by ent, DO NOT EDIT.

package character

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the character type in the database.
	Label = "character"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldWorldID holds the string denoting the world_id field in the database.
	FieldWorldID = "world_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPersonaDescription holds the string denoting the persona_description field in the database.
	FieldPersonaDescription = "persona_description"
	// FieldToneGuide holds the string denoting the tone_guide field in the database.
	FieldToneGuide = "tone_guide"
	// FieldKnowledgeScope holds the string denoting the knowledge_scope field in the database.
	FieldKnowledgeScope = "knowledge_scope"
	// FieldOffTopicRedirect holds the string denoting the off_topic_redirect field in the database.
	FieldOffTopicRedirect = "off_topic_redirect"
	// FieldVoiceID holds the string denoting the voice_id field in the database.
	FieldVoiceID = "voice_id"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldAvatar holds the string denoting the avatar field in the database.
	FieldAvatar = "avatar"
	// Table holds the table name of the character in the database.
	Table = "characters"
)

// Columns holds all SQL columns for character fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSlug,
	FieldWorldID,
	FieldName,
	FieldPersonaDescription,
	FieldToneGuide,
	FieldKnowledgeScope,
	FieldOffTopicRedirect,
	FieldVoiceID,
	FieldSystemPrompt,
	FieldAvatar,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultWorldID holds the default value on creation for the "world_id" field.
	DefaultWorldID string
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPersonaDescription holds the default value on creation for the "persona_description" field.
	DefaultPersonaDescription string
	// DefaultToneGuide holds the default value on creation for the "tone_guide" field.
	DefaultToneGuide string
	// DefaultKnowledgeScope holds the default value on creation for the "knowledge_scope" field.
	DefaultKnowledgeScope string
	// DefaultOffTopicRedirect holds the default value on creation for the "off_topic_redirect" field.
	DefaultOffTopicRedirect string
	// DefaultVoiceID holds the default value on creation for the "voice_id" field.
	DefaultVoiceID string
	// DefaultSystemPrompt holds the default value on creation for the "system_prompt" field.
	DefaultSystemPrompt string
	// DefaultAvatar holds the default value on creation for the "avatar" field.
	DefaultAvatar string
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Character queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByWorldID orders the results by the world_id field.
func ByWorldID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPersonaDescription orders the results by the persona_description field.
func ByPersonaDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonaDescription, opts...).ToFunc()
}

// ByToneGuide orders the results by the tone_guide field.
func ByToneGuide(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToneGuide, opts...).ToFunc()
}

// ByKnowledgeScope orders the results by the knowledge_scope field.
func ByKnowledgeScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnowledgeScope, opts...).ToFunc()
}

// ByOffTopicRedirect orders the results by the off_topic_redirect field.
func ByOffTopicRedirect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOffTopicRedirect, opts...).ToFunc()
}

// ByVoiceID orders the results by the voice_id field.
func ByVoiceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoiceID, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByAvatar orders the results by the avatar field.
func ByAvatar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatar, opts...).ToFunc()
}
