package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/pause/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// QueueSlotSummary is the serialized form of a queue slot for persistence.
type QueueSlotSummary struct {
	AtomID    string `json:"atom_id"`
	ConceptID string `json:"concept_id"`
	Origin    string `json:"origin"`
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start, pause, or end"),
		field.Int("items_served").
			Default(0).
			Comment("Total items served (on pause/end)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on pause/end)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Elapsed seconds (on pause/end)"),
		field.JSON("queue_summary", []QueueSlotSummary{}).
			Optional().
			Comment("Serialized queue (on start only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
