package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// World is the top of the content hierarchy, e.g. "Natuur" or "Ruimte".
type World struct {
	ent.Schema
}

func (World) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (World) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("slug").
			NotEmpty().
			Unique(),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.String("cover_image").
			Default(""),
		field.Bool("published").
			Default(false),
		field.Int("position").
			Default(0),
	}
}

func (World) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("published"),
	}
}
