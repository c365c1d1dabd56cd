package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// LessonProgress is the completion record of one student for one lesson.
// There is at most one row per (student, lesson); completing again
// overwrites it.
type LessonProgress struct {
	ent.Schema
}

func (LessonProgress) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (LessonProgress) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("student_id", uuid.UUID{}).
			Immutable(),
		field.String("lesson_id").
			NotEmpty().
			Immutable(),
		field.Bool("completed").
			Default(false),
		field.Bool("depth_accessed").
			Default(false),
		field.Text("reflection_answer").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (LessonProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "lesson_id").Unique(),
	}
}
