package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Character is a chat companion persona.
type Character struct {
	ent.Schema
}

func (Character) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Character) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("slug").
			NotEmpty().
			Unique(),
		field.String("world_id").
			Default(""),
		field.String("name").
			NotEmpty(),
		field.Text("persona_description").
			Default(""),
		field.Text("tone_guide").
			Default(""),
		field.Text("knowledge_scope").
			Default(""),
		field.Text("off_topic_redirect").
			Default(""),
		field.String("voice_id").
			Default(""),
		field.Text("system_prompt").
			Default("").
			Sensitive(),
		field.String("avatar").
			Default(""),
	}
}

func (Character) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id"),
	}
}
