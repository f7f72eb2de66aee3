// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DiagnosisEventsColumns holds the columns for the "diagnosis_events" table.
	DiagnosisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "atom_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "failure_mode", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "rule", Type: field.TypeString},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
	}
	// DiagnosisEventsTable holds the schema information for the "diagnosis_events" table.
	DiagnosisEventsTable = &schema.Table{
		Name:       "diagnosis_events",
		Columns:    DiagnosisEventsColumns,
		PrimaryKey: []*schema.Column{DiagnosisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[1]},
			},
			{
				Name:    "diagnosisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[2]},
			},
			{
				Name:    "diagnosisevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[4]},
			},
			{
				Name:    "diagnosisevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[3]},
			},
			{
				Name:    "diagnosisevent_failure_mode",
				Unique:  false,
				Columns: []*schema.Column{DiagnosisEventsColumns[6]},
			},
		},
	}
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "atom_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "atom_type", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "partial_score", Type: field.TypeFloat64},
		{Name: "response_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "confidence", Type: field.TypeInt, Nullable: true},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "learner_answer", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "origin", Type: field.TypeString, Default: "origin"},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1]},
			},
			{
				Name:    "interactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[2]},
			},
			{
				Name:    "interactionevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[5]},
			},
			{
				Name:    "interactionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "review_mastery", Type: field.TypeFloat64},
		{Name: "quiz_mastery", Type: field.TypeFloat64},
		{Name: "combined_mastery", Type: field.TypeFloat64},
		{Name: "trigger", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "items_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "queue_summary", Type: field.TypeJSON, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StruggleEventsColumns holds the columns for the "struggle_events" table.
	StruggleEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "module", Type: field.TypeString},
		{Name: "section", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "trigger", Type: field.TypeString},
		{Name: "failure_mode", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "static_weight", Type: field.TypeFloat64},
		{Name: "dynamic_weight", Type: field.TypeFloat64},
	}
	// StruggleEventsTable holds the schema information for the "struggle_events" table.
	StruggleEventsTable = &schema.Table{
		Name:       "struggle_events",
		Columns:    StruggleEventsColumns,
		PrimaryKey: []*schema.Column{StruggleEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "struggleevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StruggleEventsColumns[1]},
			},
			{
				Name:    "struggleevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StruggleEventsColumns[2]},
			},
			{
				Name:    "struggleevent_module",
				Unique:  false,
				Columns: []*schema.Column{StruggleEventsColumns[3]},
			},
			{
				Name:    "struggleevent_module_section",
				Unique:  false,
				Columns: []*schema.Column{StruggleEventsColumns[3], StruggleEventsColumns[4]},
			},
		},
	}
	// WaiversColumns holds the columns for the "waivers" table.
	WaiversColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source_id", Type: field.TypeString},
		{Name: "target_id", Type: field.TypeString},
		{Name: "waiver_type", Type: field.TypeString},
		{Name: "note", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "granted_at", Type: field.TypeTime},
	}
	// WaiversTable holds the schema information for the "waivers" table.
	WaiversTable = &schema.Table{
		Name:       "waivers",
		Columns:    WaiversColumns,
		PrimaryKey: []*schema.Column{WaiversColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "waiver_target_id",
				Unique:  false,
				Columns: []*schema.Column{WaiversColumns[2]},
			},
			{
				Name:    "waiver_source_id_target_id",
				Unique:  true,
				Columns: []*schema.Column{WaiversColumns[1], WaiversColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DiagnosisEventsTable,
		InteractionEventsTable,
		LlmRequestEventsTable,
		MasteryEventsTable,
		SessionEventsTable,
		SnapshotsTable,
		StruggleEventsTable,
		WaiversTable,
	}
)

func init() {
}
