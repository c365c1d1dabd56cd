package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Profile is an account known to Kosmi. The id matches the subject of the
// bearer tokens issued by the identity backend.
type Profile struct {
	ent.Schema
}

func (Profile) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("role").
			NotEmpty().
			Comment("parent, student or school_admin"),
		field.String("name").
			NotEmpty(),
		field.String("display_name").
			Default(""),
		field.Int("grade").
			Optional().
			Nillable().
			Range(1, 8).
			Comment("Groep 1-8, students only"),
		field.UUID("parent_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Int("points_total").
			Default(0).
			Comment("Denormalized sum of points_events, maintained by the ledger"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("parent_id"),
	}
}
