package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ParentChildLink connects a parent profile to a student profile.
type ParentChildLink struct {
	ent.Schema
}

func (ParentChildLink) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (ParentChildLink) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("parent_id", uuid.UUID{}).
			Immutable(),
		field.UUID("child_id", uuid.UUID{}).
			Immutable(),
	}
}

func (ParentChildLink) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id", "child_id").Unique(),
		index.Fields("child_id"),
	}
}
