// Code generated by ent, DO NOT EDIT.

package waiver

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/okanta/memloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Waiver {
	return predicate.Waiver(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Waiver {
	return predicate.Waiver(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Waiver {
	return predicate.Waiver(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Waiver {
	return predicate.Waiver(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Waiver {
	return predicate.Waiver(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Waiver {
	return predicate.Waiver(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Waiver {
	return predicate.Waiver(sql.FieldLTE(FieldID, id))
}

// SourceID applies equality check predicate on the "source_id" field. It's identical to SourceIDEQ.
func SourceID(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldSourceID, v))
}

// TargetID applies equality check predicate on the "target_id" field. It's identical to TargetIDEQ.
func TargetID(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldTargetID, v))
}

// WaiverType applies equality check predicate on the "waiver_type" field. It's identical to WaiverTypeEQ.
func WaiverType(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldWaiverType, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldNote, v))
}

// GrantedAt applies equality check predicate on the "granted_at" field. It's identical to GrantedAtEQ.
func GrantedAt(v time.Time) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldGrantedAt, v))
}

// SourceIDEQ applies the EQ predicate on the "source_id" field.
func SourceIDEQ(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldSourceID, v))
}

// SourceIDNEQ applies the NEQ predicate on the "source_id" field.
func SourceIDNEQ(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldNEQ(FieldSourceID, v))
}

// SourceIDIn applies the In predicate on the "source_id" field.
func SourceIDIn(vs ...string) predicate.Waiver {
	return predicate.Waiver(sql.FieldIn(FieldSourceID, vs...))
}

// SourceIDNotIn applies the NotIn predicate on the "source_id" field.
func SourceIDNotIn(vs ...string) predicate.Waiver {
	return predicate.Waiver(sql.FieldNotIn(FieldSourceID, vs...))
}

// SourceIDGT applies the GT predicate on the "source_id" field.
func SourceIDGT(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldGT(FieldSourceID, v))
}

// SourceIDGTE applies the GTE predicate on the "source_id" field.
func SourceIDGTE(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldGTE(FieldSourceID, v))
}

// SourceIDLT applies the LT predicate on the "source_id" field.
func SourceIDLT(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldLT(FieldSourceID, v))
}

// SourceIDLTE applies the LTE predicate on the "source_id" field.
func SourceIDLTE(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldLTE(FieldSourceID, v))
}

// SourceIDContains applies the Contains predicate on the "source_id" field.
func SourceIDContains(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldContains(FieldSourceID, v))
}

// SourceIDHasPrefix applies the HasPrefix predicate on the "source_id" field.
func SourceIDHasPrefix(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldHasPrefix(FieldSourceID, v))
}

// SourceIDHasSuffix applies the HasSuffix predicate on the "source_id" field.
func SourceIDHasSuffix(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldHasSuffix(FieldSourceID, v))
}

// SourceIDEqualFold applies the EqualFold predicate on the "source_id" field.
func SourceIDEqualFold(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEqualFold(FieldSourceID, v))
}

// SourceIDContainsFold applies the ContainsFold predicate on the "source_id" field.
func SourceIDContainsFold(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldContainsFold(FieldSourceID, v))
}

// TargetIDEQ applies the EQ predicate on the "target_id" field.
func TargetIDEQ(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldTargetID, v))
}

// TargetIDNEQ applies the NEQ predicate on the "target_id" field.
func TargetIDNEQ(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldNEQ(FieldTargetID, v))
}

// TargetIDIn applies the In predicate on the "target_id" field.
func TargetIDIn(vs ...string) predicate.Waiver {
	return predicate.Waiver(sql.FieldIn(FieldTargetID, vs...))
}

// TargetIDNotIn applies the NotIn predicate on the "target_id" field.
func TargetIDNotIn(vs ...string) predicate.Waiver {
	return predicate.Waiver(sql.FieldNotIn(FieldTargetID, vs...))
}

// TargetIDGT applies the GT predicate on the "target_id" field.
func TargetIDGT(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldGT(FieldTargetID, v))
}

// TargetIDGTE applies the GTE predicate on the "target_id" field.
func TargetIDGTE(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldGTE(FieldTargetID, v))
}

// TargetIDLT applies the LT predicate on the "target_id" field.
func TargetIDLT(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldLT(FieldTargetID, v))
}

// TargetIDLTE applies the LTE predicate on the "target_id" field.
func TargetIDLTE(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldLTE(FieldTargetID, v))
}

// TargetIDContains applies the Contains predicate on the "target_id" field.
func TargetIDContains(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldContains(FieldTargetID, v))
}

// TargetIDHasPrefix applies the HasPrefix predicate on the "target_id" field.
func TargetIDHasPrefix(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldHasPrefix(FieldTargetID, v))
}

// TargetIDHasSuffix applies the HasSuffix predicate on the "target_id" field.
func TargetIDHasSuffix(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldHasSuffix(FieldTargetID, v))
}

// TargetIDEqualFold applies the EqualFold predicate on the "target_id" field.
func TargetIDEqualFold(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEqualFold(FieldTargetID, v))
}

// TargetIDContainsFold applies the ContainsFold predicate on the "target_id" field.
func TargetIDContainsFold(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldContainsFold(FieldTargetID, v))
}

// WaiverTypeEQ applies the EQ predicate on the "waiver_type" field.
func WaiverTypeEQ(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldWaiverType, v))
}

// WaiverTypeNEQ applies the NEQ predicate on the "waiver_type" field.
func WaiverTypeNEQ(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldNEQ(FieldWaiverType, v))
}

// WaiverTypeIn applies the In predicate on the "waiver_type" field.
func WaiverTypeIn(vs ...string) predicate.Waiver {
	return predicate.Waiver(sql.FieldIn(FieldWaiverType, vs...))
}

// WaiverTypeNotIn applies the NotIn predicate on the "waiver_type" field.
func WaiverTypeNotIn(vs ...string) predicate.Waiver {
	return predicate.Waiver(sql.FieldNotIn(FieldWaiverType, vs...))
}

// WaiverTypeGT applies the GT predicate on the "waiver_type" field.
func WaiverTypeGT(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldGT(FieldWaiverType, v))
}

// WaiverTypeGTE applies the GTE predicate on the "waiver_type" field.
func WaiverTypeGTE(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldGTE(FieldWaiverType, v))
}

// WaiverTypeLT applies the LT predicate on the "waiver_type" field.
func WaiverTypeLT(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldLT(FieldWaiverType, v))
}

// WaiverTypeLTE applies the LTE predicate on the "waiver_type" field.
func WaiverTypeLTE(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldLTE(FieldWaiverType, v))
}

// WaiverTypeContains applies the Contains predicate on the "waiver_type" field.
func WaiverTypeContains(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldContains(FieldWaiverType, v))
}

// WaiverTypeHasPrefix applies the HasPrefix predicate on the "waiver_type" field.
func WaiverTypeHasPrefix(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldHasPrefix(FieldWaiverType, v))
}

// WaiverTypeHasSuffix applies the HasSuffix predicate on the "waiver_type" field.
func WaiverTypeHasSuffix(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldHasSuffix(FieldWaiverType, v))
}

// WaiverTypeEqualFold applies the EqualFold predicate on the "waiver_type" field.
func WaiverTypeEqualFold(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEqualFold(FieldWaiverType, v))
}

// WaiverTypeContainsFold applies the ContainsFold predicate on the "waiver_type" field.
func WaiverTypeContainsFold(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldContainsFold(FieldWaiverType, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.Waiver {
	return predicate.Waiver(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.Waiver {
	return predicate.Waiver(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.Waiver {
	return predicate.Waiver(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.Waiver {
	return predicate.Waiver(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.Waiver {
	return predicate.Waiver(sql.FieldContainsFold(FieldNote, v))
}

// GrantedAtEQ applies the EQ predicate on the "granted_at" field.
func GrantedAtEQ(v time.Time) predicate.Waiver {
	return predicate.Waiver(sql.FieldEQ(FieldGrantedAt, v))
}

// GrantedAtNEQ applies the NEQ predicate on the "granted_at" field.
func GrantedAtNEQ(v time.Time) predicate.Waiver {
	return predicate.Waiver(sql.FieldNEQ(FieldGrantedAt, v))
}

// GrantedAtIn applies the In predicate on the "granted_at" field.
func GrantedAtIn(vs ...time.Time) predicate.Waiver {
	return predicate.Waiver(sql.FieldIn(FieldGrantedAt, vs...))
}

// GrantedAtNotIn applies the NotIn predicate on the "granted_at" field.
func GrantedAtNotIn(vs ...time.Time) predicate.Waiver {
	return predicate.Waiver(sql.FieldNotIn(FieldGrantedAt, vs...))
}

// GrantedAtGT applies the GT predicate on the "granted_at" field.
func GrantedAtGT(v time.Time) predicate.Waiver {
	return predicate.Waiver(sql.FieldGT(FieldGrantedAt, v))
}

// GrantedAtGTE applies the GTE predicate on the "granted_at" field.
func GrantedAtGTE(v time.Time) predicate.Waiver {
	return predicate.Waiver(sql.FieldGTE(FieldGrantedAt, v))
}

// GrantedAtLT applies the LT predicate on the "granted_at" field.
func GrantedAtLT(v time.Time) predicate.Waiver {
	return predicate.Waiver(sql.FieldLT(FieldGrantedAt, v))
}

// GrantedAtLTE applies the LTE predicate on the "granted_at" field.
func GrantedAtLTE(v time.Time) predicate.Waiver {
	return predicate.Waiver(sql.FieldLTE(FieldGrantedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Waiver) predicate.Waiver {
	return predicate.Waiver(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Waiver) predicate.Waiver {
	return predicate.Waiver(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Waiver) predicate.Waiver {
	return predicate.Waiver(sql.NotPredicates(p))
}
