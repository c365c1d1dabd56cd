package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonVariant is the rendering of a lesson for one grade.
type LessonVariant struct {
	ent.Schema
}

func (LessonVariant) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (LessonVariant) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			NotEmpty(),
		field.Int("target_grade").
			Range(1, 8),
		field.Int("position").
			Default(0).
			Comment("Definition order; the lowest is the fallback variant"),
		field.Text("intro_text").
			Default(""),
		field.Text("core_content").
			Default(""),
		field.String("core_image").
			Default(""),
		field.String("core_image_credit").
			Default(""),
		field.Text("depth_content").
			Default(""),
		field.String("depth_image").
			Default(""),
		field.String("depth_image_credit").
			Default(""),
		field.Text("reflection_question").
			Default(""),
		field.Int("points_base").
			Default(100).
			NonNegative(),
		field.Int("points_depth_bonus").
			Default(50).
			NonNegative(),
	}
}

func (LessonVariant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id", "target_grade").Unique(),
	}
}
