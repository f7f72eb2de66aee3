package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionEvent records a single graded response to a study atom.
type InteractionEvent struct {
	ent.Schema
}

func (InteractionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InteractionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("atom_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.String("atom_type").NotEmpty(),
		field.Bool("correct"),
		field.Float("partial_score"),
		field.Int64("response_time_ms").Default(0),
		field.Int("confidence").
			Optional().
			Comment("Self-reported confidence 1-5, 0 when not given"),
		field.Int("attempt").Default(1),
		field.String("learner_answer").Optional().Default(""),
		field.String("origin").
			Default("origin").
			Comment("Queue provenance: origin, backtrack, remediation"),
	}
}

func (InteractionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
		index.Fields("session_id"),
	}
}
