package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic groups courses inside a world.
type Topic struct {
	ent.Schema
}

func (Topic) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("slug").
			NotEmpty().
			Unique(),
		field.String("world_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.Bool("published").
			Default(false),
		field.Int("position").
			Default(0),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("world_id"),
	}
}
