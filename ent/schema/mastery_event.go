package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a mastery recomputation for audit and analytics.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("concept_id").NotEmpty(),
		field.Float("review_mastery"),
		field.Float("quiz_mastery"),
		field.Float("combined_mastery"),
		field.String("trigger").
			NotEmpty().
			Comment("What drove the update: review, quiz, review+quiz"),
		field.String("session_id").Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
	}
}
