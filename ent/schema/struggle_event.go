package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StruggleEvent is the append-only audit trail for struggle weight
// mutations. Entries are never updated or deleted.
type StruggleEvent struct {
	ent.Schema
}

func (StruggleEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StruggleEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("module").NotEmpty(),
		field.String("section").Optional().Default(""),
		field.String("trigger").
			NotEmpty().
			Comment("What caused the mutation: diagnosis, decay"),
		field.String("failure_mode").Optional().Default(""),
		field.Float("static_weight"),
		field.Float("dynamic_weight"),
	}
}

func (StruggleEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("module"),
		index.Fields("module", "section"),
	}
}
