package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisEvent records a failure-mode classification for one response.
type DiagnosisEvent struct {
	ent.Schema
}

func (DiagnosisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiagnosisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.String("atom_id").Optional().Default(""),
		field.String("failure_mode").NotEmpty(),
		field.Float("confidence"),
		field.String("rule").
			NotEmpty().
			Comment("Name of the classifier rule that fired"),
		field.JSON("evidence", map[string]float64{}).
			Optional().
			Comment("Signal values the classifier saw"),
	}
}

func (DiagnosisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
		index.Fields("session_id"),
		index.Fields("failure_mode"),
	}
}
