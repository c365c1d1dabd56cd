package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PointsEvent is one immutable entry of a student's points ledger.
type PointsEvent struct {
	ent.Schema
}

func (PointsEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PointsEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("student_id", uuid.UUID{}).
			Immutable(),
		field.String("lesson_id").
			NotEmpty().
			Immutable(),
		field.String("event_type").
			NotEmpty().
			Immutable().
			Comment("depth_accessed or lesson_completed"),
		field.Int("points_awarded").
			NonNegative().
			Immutable(),
	}
}

func (PointsEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("student_id", "lesson_id"),
		index.Fields("event_type"),
		// Each award type is earned once per lesson.
		index.Fields("student_id", "lesson_id", "event_type").
			Unique(),
	}
}
