// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/okanta/memloop/ent/diagnosisevent"
	"github.com/okanta/memloop/ent/interactionevent"
	"github.com/okanta/memloop/ent/llmrequestevent"
	"github.com/okanta/memloop/ent/masteryevent"
	"github.com/okanta/memloop/ent/schema"
	"github.com/okanta/memloop/ent/sessionevent"
	"github.com/okanta/memloop/ent/snapshot"
	"github.com/okanta/memloop/ent/struggleevent"
	"github.com/okanta/memloop/ent/waiver"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	diagnosiseventMixin := schema.DiagnosisEvent{}.Mixin()
	diagnosiseventMixinFields0 := diagnosiseventMixin[0].Fields()
	_ = diagnosiseventMixinFields0
	diagnosiseventFields := schema.DiagnosisEvent{}.Fields()
	_ = diagnosiseventFields
	// diagnosiseventDescTimestamp is the schema descriptor for timestamp field.
	diagnosiseventDescTimestamp := diagnosiseventMixinFields0[1].Descriptor()
	// diagnosisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	diagnosisevent.DefaultTimestamp = diagnosiseventDescTimestamp.Default.(func() time.Time)
	// diagnosiseventDescSessionID is the schema descriptor for session_id field.
	diagnosiseventDescSessionID := diagnosiseventFields[0].Descriptor()
	// diagnosisevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	diagnosisevent.SessionIDValidator = diagnosiseventDescSessionID.Validators[0].(func(string) error)
	// diagnosiseventDescConceptID is the schema descriptor for concept_id field.
	diagnosiseventDescConceptID := diagnosiseventFields[1].Descriptor()
	// diagnosisevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	diagnosisevent.ConceptIDValidator = diagnosiseventDescConceptID.Validators[0].(func(string) error)
	// diagnosiseventDescAtomID is the schema descriptor for atom_id field.
	diagnosiseventDescAtomID := diagnosiseventFields[2].Descriptor()
	// diagnosisevent.DefaultAtomID holds the default value on creation for the atom_id field.
	diagnosisevent.DefaultAtomID = diagnosiseventDescAtomID.Default.(string)
	// diagnosiseventDescFailureMode is the schema descriptor for failure_mode field.
	diagnosiseventDescFailureMode := diagnosiseventFields[3].Descriptor()
	// diagnosisevent.FailureModeValidator is a validator for the "failure_mode" field. It is called by the builders before save.
	diagnosisevent.FailureModeValidator = diagnosiseventDescFailureMode.Validators[0].(func(string) error)
	// diagnosiseventDescRule is the schema descriptor for rule field.
	diagnosiseventDescRule := diagnosiseventFields[5].Descriptor()
	// diagnosisevent.RuleValidator is a validator for the "rule" field. It is called by the builders before save.
	diagnosisevent.RuleValidator = diagnosiseventDescRule.Validators[0].(func(string) error)
	interactioneventMixin := schema.InteractionEvent{}.Mixin()
	interactioneventMixinFields0 := interactioneventMixin[0].Fields()
	_ = interactioneventMixinFields0
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescTimestamp is the schema descriptor for timestamp field.
	interactioneventDescTimestamp := interactioneventMixinFields0[1].Descriptor()
	// interactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interactionevent.DefaultTimestamp = interactioneventDescTimestamp.Default.(func() time.Time)
	// interactioneventDescSessionID is the schema descriptor for session_id field.
	interactioneventDescSessionID := interactioneventFields[0].Descriptor()
	// interactionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interactionevent.SessionIDValidator = interactioneventDescSessionID.Validators[0].(func(string) error)
	// interactioneventDescAtomID is the schema descriptor for atom_id field.
	interactioneventDescAtomID := interactioneventFields[1].Descriptor()
	// interactionevent.AtomIDValidator is a validator for the "atom_id" field. It is called by the builders before save.
	interactionevent.AtomIDValidator = interactioneventDescAtomID.Validators[0].(func(string) error)
	// interactioneventDescConceptID is the schema descriptor for concept_id field.
	interactioneventDescConceptID := interactioneventFields[2].Descriptor()
	// interactionevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	interactionevent.ConceptIDValidator = interactioneventDescConceptID.Validators[0].(func(string) error)
	// interactioneventDescAtomType is the schema descriptor for atom_type field.
	interactioneventDescAtomType := interactioneventFields[3].Descriptor()
	// interactionevent.AtomTypeValidator is a validator for the "atom_type" field. It is called by the builders before save.
	interactionevent.AtomTypeValidator = interactioneventDescAtomType.Validators[0].(func(string) error)
	// interactioneventDescResponseTimeMs is the schema descriptor for response_time_ms field.
	interactioneventDescResponseTimeMs := interactioneventFields[6].Descriptor()
	// interactionevent.DefaultResponseTimeMs holds the default value on creation for the response_time_ms field.
	interactionevent.DefaultResponseTimeMs = interactioneventDescResponseTimeMs.Default.(int64)
	// interactioneventDescAttempt is the schema descriptor for attempt field.
	interactioneventDescAttempt := interactioneventFields[8].Descriptor()
	// interactionevent.DefaultAttempt holds the default value on creation for the attempt field.
	interactionevent.DefaultAttempt = interactioneventDescAttempt.Default.(int)
	// interactioneventDescLearnerAnswer is the schema descriptor for learner_answer field.
	interactioneventDescLearnerAnswer := interactioneventFields[9].Descriptor()
	// interactionevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	interactionevent.DefaultLearnerAnswer = interactioneventDescLearnerAnswer.Default.(string)
	// interactioneventDescOrigin is the schema descriptor for origin field.
	interactioneventDescOrigin := interactioneventFields[10].Descriptor()
	// interactionevent.DefaultOrigin holds the default value on creation for the origin field.
	interactionevent.DefaultOrigin = interactioneventDescOrigin.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescConceptID is the schema descriptor for concept_id field.
	masteryeventDescConceptID := masteryeventFields[0].Descriptor()
	// masteryevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryevent.ConceptIDValidator = masteryeventDescConceptID.Validators[0].(func(string) error)
	// masteryeventDescTrigger is the schema descriptor for trigger field.
	masteryeventDescTrigger := masteryeventFields[4].Descriptor()
	// masteryevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	masteryevent.TriggerValidator = masteryeventDescTrigger.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescItemsServed is the schema descriptor for items_served field.
	sessioneventDescItemsServed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultItemsServed holds the default value on creation for the items_served field.
	sessionevent.DefaultItemsServed = sessioneventDescItemsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	struggleeventMixin := schema.StruggleEvent{}.Mixin()
	struggleeventMixinFields0 := struggleeventMixin[0].Fields()
	_ = struggleeventMixinFields0
	struggleeventFields := schema.StruggleEvent{}.Fields()
	_ = struggleeventFields
	// struggleeventDescTimestamp is the schema descriptor for timestamp field.
	struggleeventDescTimestamp := struggleeventMixinFields0[1].Descriptor()
	// struggleevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	struggleevent.DefaultTimestamp = struggleeventDescTimestamp.Default.(func() time.Time)
	// struggleeventDescModule is the schema descriptor for module field.
	struggleeventDescModule := struggleeventFields[0].Descriptor()
	// struggleevent.ModuleValidator is a validator for the "module" field. It is called by the builders before save.
	struggleevent.ModuleValidator = struggleeventDescModule.Validators[0].(func(string) error)
	// struggleeventDescSection is the schema descriptor for section field.
	struggleeventDescSection := struggleeventFields[1].Descriptor()
	// struggleevent.DefaultSection holds the default value on creation for the section field.
	struggleevent.DefaultSection = struggleeventDescSection.Default.(string)
	// struggleeventDescTrigger is the schema descriptor for trigger field.
	struggleeventDescTrigger := struggleeventFields[2].Descriptor()
	// struggleevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	struggleevent.TriggerValidator = struggleeventDescTrigger.Validators[0].(func(string) error)
	// struggleeventDescFailureMode is the schema descriptor for failure_mode field.
	struggleeventDescFailureMode := struggleeventFields[3].Descriptor()
	// struggleevent.DefaultFailureMode holds the default value on creation for the failure_mode field.
	struggleevent.DefaultFailureMode = struggleeventDescFailureMode.Default.(string)
	waiverFields := schema.Waiver{}.Fields()
	_ = waiverFields
	// waiverDescSourceID is the schema descriptor for source_id field.
	waiverDescSourceID := waiverFields[0].Descriptor()
	// waiver.SourceIDValidator is a validator for the "source_id" field. It is called by the builders before save.
	waiver.SourceIDValidator = waiverDescSourceID.Validators[0].(func(string) error)
	// waiverDescTargetID is the schema descriptor for target_id field.
	waiverDescTargetID := waiverFields[1].Descriptor()
	// waiver.TargetIDValidator is a validator for the "target_id" field. It is called by the builders before save.
	waiver.TargetIDValidator = waiverDescTargetID.Validators[0].(func(string) error)
	// waiverDescWaiverType is the schema descriptor for waiver_type field.
	waiverDescWaiverType := waiverFields[2].Descriptor()
	// waiver.WaiverTypeValidator is a validator for the "waiver_type" field. It is called by the builders before save.
	waiver.WaiverTypeValidator = waiverDescWaiverType.Validators[0].(func(string) error)
	// waiverDescNote is the schema descriptor for note field.
	waiverDescNote := waiverFields[3].Descriptor()
	// waiver.DefaultNote holds the default value on creation for the note field.
	waiver.DefaultNote = waiverDescNote.Default.(string)
	// waiverDescGrantedAt is the schema descriptor for granted_at field.
	waiverDescGrantedAt := waiverFields[4].Descriptor()
	// waiver.DefaultGrantedAt holds the default value on creation for the granted_at field.
	waiver.DefaultGrantedAt = waiverDescGrantedAt.Default.(func() time.Time)
}
