// Code generated by ent, DO NOT EDIT.

package struggleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/okanta/memloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Module applies equality check predicate on the "module" field. It's identical to ModuleEQ.
func Module(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldModule, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldSection, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldTrigger, v))
}

// FailureMode applies equality check predicate on the "failure_mode" field. It's identical to FailureModeEQ.
func FailureMode(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldFailureMode, v))
}

// StaticWeight applies equality check predicate on the "static_weight" field. It's identical to StaticWeightEQ.
func StaticWeight(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldStaticWeight, v))
}

// DynamicWeight applies equality check predicate on the "dynamic_weight" field. It's identical to DynamicWeightEQ.
func DynamicWeight(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldDynamicWeight, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ModuleEQ applies the EQ predicate on the "module" field.
func ModuleEQ(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldModule, v))
}

// ModuleNEQ applies the NEQ predicate on the "module" field.
func ModuleNEQ(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNEQ(FieldModule, v))
}

// ModuleIn applies the In predicate on the "module" field.
func ModuleIn(vs ...string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIn(FieldModule, vs...))
}

// ModuleNotIn applies the NotIn predicate on the "module" field.
func ModuleNotIn(vs ...string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotIn(FieldModule, vs...))
}

// ModuleGT applies the GT predicate on the "module" field.
func ModuleGT(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGT(FieldModule, v))
}

// ModuleGTE applies the GTE predicate on the "module" field.
func ModuleGTE(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGTE(FieldModule, v))
}

// ModuleLT applies the LT predicate on the "module" field.
func ModuleLT(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLT(FieldModule, v))
}

// ModuleLTE applies the LTE predicate on the "module" field.
func ModuleLTE(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLTE(FieldModule, v))
}

// ModuleContains applies the Contains predicate on the "module" field.
func ModuleContains(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldContains(FieldModule, v))
}

// ModuleHasPrefix applies the HasPrefix predicate on the "module" field.
func ModuleHasPrefix(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldHasPrefix(FieldModule, v))
}

// ModuleHasSuffix applies the HasSuffix predicate on the "module" field.
func ModuleHasSuffix(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldHasSuffix(FieldModule, v))
}

// ModuleEqualFold applies the EqualFold predicate on the "module" field.
func ModuleEqualFold(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEqualFold(FieldModule, v))
}

// ModuleContainsFold applies the ContainsFold predicate on the "module" field.
func ModuleContainsFold(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldContainsFold(FieldModule, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldHasSuffix(FieldSection, v))
}

// SectionIsNil applies the IsNil predicate on the "section" field.
func SectionIsNil() predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIsNull(FieldSection))
}

// SectionNotNil applies the NotNil predicate on the "section" field.
func SectionNotNil() predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotNull(FieldSection))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldContainsFold(FieldSection, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// FailureModeEQ applies the EQ predicate on the "failure_mode" field.
func FailureModeEQ(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldFailureMode, v))
}

// FailureModeNEQ applies the NEQ predicate on the "failure_mode" field.
func FailureModeNEQ(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNEQ(FieldFailureMode, v))
}

// FailureModeIn applies the In predicate on the "failure_mode" field.
func FailureModeIn(vs ...string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIn(FieldFailureMode, vs...))
}

// FailureModeNotIn applies the NotIn predicate on the "failure_mode" field.
func FailureModeNotIn(vs ...string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotIn(FieldFailureMode, vs...))
}

// FailureModeGT applies the GT predicate on the "failure_mode" field.
func FailureModeGT(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGT(FieldFailureMode, v))
}

// FailureModeGTE applies the GTE predicate on the "failure_mode" field.
func FailureModeGTE(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGTE(FieldFailureMode, v))
}

// FailureModeLT applies the LT predicate on the "failure_mode" field.
func FailureModeLT(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLT(FieldFailureMode, v))
}

// FailureModeLTE applies the LTE predicate on the "failure_mode" field.
func FailureModeLTE(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLTE(FieldFailureMode, v))
}

// FailureModeContains applies the Contains predicate on the "failure_mode" field.
func FailureModeContains(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldContains(FieldFailureMode, v))
}

// FailureModeHasPrefix applies the HasPrefix predicate on the "failure_mode" field.
func FailureModeHasPrefix(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldHasPrefix(FieldFailureMode, v))
}

// FailureModeHasSuffix applies the HasSuffix predicate on the "failure_mode" field.
func FailureModeHasSuffix(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldHasSuffix(FieldFailureMode, v))
}

// FailureModeIsNil applies the IsNil predicate on the "failure_mode" field.
func FailureModeIsNil() predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIsNull(FieldFailureMode))
}

// FailureModeNotNil applies the NotNil predicate on the "failure_mode" field.
func FailureModeNotNil() predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotNull(FieldFailureMode))
}

// FailureModeEqualFold applies the EqualFold predicate on the "failure_mode" field.
func FailureModeEqualFold(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEqualFold(FieldFailureMode, v))
}

// FailureModeContainsFold applies the ContainsFold predicate on the "failure_mode" field.
func FailureModeContainsFold(v string) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldContainsFold(FieldFailureMode, v))
}

// StaticWeightEQ applies the EQ predicate on the "static_weight" field.
func StaticWeightEQ(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldStaticWeight, v))
}

// StaticWeightNEQ applies the NEQ predicate on the "static_weight" field.
func StaticWeightNEQ(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNEQ(FieldStaticWeight, v))
}

// StaticWeightIn applies the In predicate on the "static_weight" field.
func StaticWeightIn(vs ...float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIn(FieldStaticWeight, vs...))
}

// StaticWeightNotIn applies the NotIn predicate on the "static_weight" field.
func StaticWeightNotIn(vs ...float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotIn(FieldStaticWeight, vs...))
}

// StaticWeightGT applies the GT predicate on the "static_weight" field.
func StaticWeightGT(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGT(FieldStaticWeight, v))
}

// StaticWeightGTE applies the GTE predicate on the "static_weight" field.
func StaticWeightGTE(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGTE(FieldStaticWeight, v))
}

// StaticWeightLT applies the LT predicate on the "static_weight" field.
func StaticWeightLT(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLT(FieldStaticWeight, v))
}

// StaticWeightLTE applies the LTE predicate on the "static_weight" field.
func StaticWeightLTE(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLTE(FieldStaticWeight, v))
}

// DynamicWeightEQ applies the EQ predicate on the "dynamic_weight" field.
func DynamicWeightEQ(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldEQ(FieldDynamicWeight, v))
}

// DynamicWeightNEQ applies the NEQ predicate on the "dynamic_weight" field.
func DynamicWeightNEQ(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNEQ(FieldDynamicWeight, v))
}

// DynamicWeightIn applies the In predicate on the "dynamic_weight" field.
func DynamicWeightIn(vs ...float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldIn(FieldDynamicWeight, vs...))
}

// DynamicWeightNotIn applies the NotIn predicate on the "dynamic_weight" field.
func DynamicWeightNotIn(vs ...float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldNotIn(FieldDynamicWeight, vs...))
}

// DynamicWeightGT applies the GT predicate on the "dynamic_weight" field.
func DynamicWeightGT(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGT(FieldDynamicWeight, v))
}

// DynamicWeightGTE applies the GTE predicate on the "dynamic_weight" field.
func DynamicWeightGTE(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldGTE(FieldDynamicWeight, v))
}

// DynamicWeightLT applies the LT predicate on the "dynamic_weight" field.
func DynamicWeightLT(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLT(FieldDynamicWeight, v))
}

// DynamicWeightLTE applies the LTE predicate on the "dynamic_weight" field.
func DynamicWeightLTE(v float64) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.FieldLTE(FieldDynamicWeight, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StruggleEvent) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StruggleEvent) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StruggleEvent) predicate.StruggleEvent {
	return predicate.StruggleEvent(sql.NotPredicates(p))
}
