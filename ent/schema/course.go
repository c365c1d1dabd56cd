package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course is an ordered series of lessons aimed at a range of grades.
type Course struct {
	ent.Schema
}

func (Course) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("slug").
			NotEmpty().
			Unique(),
		field.String("topic_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Default(""),
		field.Int("grade_min").
			Default(1).
			Range(1, 8),
		field.Int("grade_max").
			Default(8).
			Range(1, 8),
		field.Bool("published").
			Default(false),
		field.Int("position").
			Default(0),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}
