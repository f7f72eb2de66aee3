package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"time"
)

// Waiver records an override of a prerequisite gate. Unlike events,
// waivers are state: revoking one deletes the row.
type Waiver struct {
	ent.Schema
}

func (Waiver) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_id").
			NotEmpty().
			Comment("Prerequisite concept being waived"),
		field.String("target_id").
			NotEmpty().
			Comment("Concept whose gate the waiver unlocks"),
		field.String("waiver_type").NotEmpty(),
		field.String("note").Optional().Default(""),
		field.Time("granted_at").Default(time.Now),
	}
}

func (Waiver) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("target_id"),
		index.Fields("source_id", "target_id").Unique(),
	}
}
