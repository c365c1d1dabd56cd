package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson belongs to a course and is played through one of its variants.
type Lesson struct {
	ent.Schema
}

func (Lesson) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("course_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Int("position").
			Default(0).
			Comment("Order within the course"),
		field.Strings("characters").
			Optional().
			Comment("Character ids; the first is the lesson's primary companion"),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "position"),
	}
}
