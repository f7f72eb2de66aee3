// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/okanta/memloop/ent/interactionevent"
	"github.com/okanta/memloop/ent/predicate"
)

// InteractionEventUpdate is the builder for updating InteractionEvent entities.
type InteractionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdate) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InteractionEventUpdate) SetSessionID(v string) *InteractionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableSessionID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAtomID sets the "atom_id" field.
func (_u *InteractionEventUpdate) SetAtomID(v string) *InteractionEventUpdate {
	_u.mutation.SetAtomID(v)
	return _u
}

// SetNillableAtomID sets the "atom_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableAtomID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetAtomID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *InteractionEventUpdate) SetConceptID(v string) *InteractionEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableConceptID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetAtomType sets the "atom_type" field.
func (_u *InteractionEventUpdate) SetAtomType(v string) *InteractionEventUpdate {
	_u.mutation.SetAtomType(v)
	return _u
}

// SetNillableAtomType sets the "atom_type" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableAtomType(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetAtomType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *InteractionEventUpdate) SetCorrect(v bool) *InteractionEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableCorrect(v *bool) *InteractionEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetPartialScore sets the "partial_score" field.
func (_u *InteractionEventUpdate) SetPartialScore(v float64) *InteractionEventUpdate {
	_u.mutation.ResetPartialScore()
	_u.mutation.SetPartialScore(v)
	return _u
}

// SetNillablePartialScore sets the "partial_score" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillablePartialScore(v *float64) *InteractionEventUpdate {
	if v != nil {
		_u.SetPartialScore(*v)
	}
	return _u
}

// AddPartialScore adds value to the "partial_score" field.
func (_u *InteractionEventUpdate) AddPartialScore(v float64) *InteractionEventUpdate {
	_u.mutation.AddPartialScore(v)
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *InteractionEventUpdate) SetResponseTimeMs(v int64) *InteractionEventUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableResponseTimeMs(v *int64) *InteractionEventUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *InteractionEventUpdate) AddResponseTimeMs(v int64) *InteractionEventUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InteractionEventUpdate) SetConfidence(v int) *InteractionEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableConfidence(v *int) *InteractionEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InteractionEventUpdate) AddConfidence(v int) *InteractionEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InteractionEventUpdate) ClearConfidence() *InteractionEventUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *InteractionEventUpdate) SetAttempt(v int) *InteractionEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableAttempt(v *int) *InteractionEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *InteractionEventUpdate) AddAttempt(v int) *InteractionEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *InteractionEventUpdate) SetLearnerAnswer(v string) *InteractionEventUpdate {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableLearnerAnswer(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// ClearLearnerAnswer clears the value of the "learner_answer" field.
func (_u *InteractionEventUpdate) ClearLearnerAnswer() *InteractionEventUpdate {
	_u.mutation.ClearLearnerAnswer()
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *InteractionEventUpdate) SetOrigin(v string) *InteractionEventUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableOrigin(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdate) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interactionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AtomID(); ok {
		if err := interactionevent.AtomIDValidator(v); err != nil {
			return &ValidationError{Name: "atom_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.atom_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := interactionevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AtomType(); ok {
		if err := interactionevent.AtomTypeValidator(v); err != nil {
			return &ValidationError{Name: "atom_type", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.atom_type": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interactionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AtomID(); ok {
		_spec.SetField(interactionevent.FieldAtomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(interactionevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AtomType(); ok {
		_spec.SetField(interactionevent.FieldAtomType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(interactionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PartialScore(); ok {
		_spec.SetField(interactionevent.FieldPartialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPartialScore(); ok {
		_spec.AddField(interactionevent.FieldPartialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(interactionevent.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(interactionevent.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(interactionevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(interactionevent.FieldConfidence, field.TypeInt, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(interactionevent.FieldConfidence, field.TypeInt)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(interactionevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(interactionevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(interactionevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if _u.mutation.LearnerAnswerCleared() {
		_spec.ClearField(interactionevent.FieldLearnerAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(interactionevent.FieldOrigin, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionEventUpdateOne is the builder for updating a single InteractionEvent entity.
type InteractionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InteractionEventUpdateOne) SetSessionID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableSessionID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAtomID sets the "atom_id" field.
func (_u *InteractionEventUpdateOne) SetAtomID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetAtomID(v)
	return _u
}

// SetNillableAtomID sets the "atom_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableAtomID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetAtomID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *InteractionEventUpdateOne) SetConceptID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableConceptID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetAtomType sets the "atom_type" field.
func (_u *InteractionEventUpdateOne) SetAtomType(v string) *InteractionEventUpdateOne {
	_u.mutation.SetAtomType(v)
	return _u
}

// SetNillableAtomType sets the "atom_type" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableAtomType(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetAtomType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *InteractionEventUpdateOne) SetCorrect(v bool) *InteractionEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableCorrect(v *bool) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetPartialScore sets the "partial_score" field.
func (_u *InteractionEventUpdateOne) SetPartialScore(v float64) *InteractionEventUpdateOne {
	_u.mutation.ResetPartialScore()
	_u.mutation.SetPartialScore(v)
	return _u
}

// SetNillablePartialScore sets the "partial_score" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillablePartialScore(v *float64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetPartialScore(*v)
	}
	return _u
}

// AddPartialScore adds value to the "partial_score" field.
func (_u *InteractionEventUpdateOne) AddPartialScore(v float64) *InteractionEventUpdateOne {
	_u.mutation.AddPartialScore(v)
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *InteractionEventUpdateOne) SetResponseTimeMs(v int64) *InteractionEventUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableResponseTimeMs(v *int64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *InteractionEventUpdateOne) AddResponseTimeMs(v int64) *InteractionEventUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InteractionEventUpdateOne) SetConfidence(v int) *InteractionEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableConfidence(v *int) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InteractionEventUpdateOne) AddConfidence(v int) *InteractionEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *InteractionEventUpdateOne) ClearConfidence() *InteractionEventUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *InteractionEventUpdateOne) SetAttempt(v int) *InteractionEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableAttempt(v *int) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *InteractionEventUpdateOne) AddAttempt(v int) *InteractionEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *InteractionEventUpdateOne) SetLearnerAnswer(v string) *InteractionEventUpdateOne {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableLearnerAnswer(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// ClearLearnerAnswer clears the value of the "learner_answer" field.
func (_u *InteractionEventUpdateOne) ClearLearnerAnswer() *InteractionEventUpdateOne {
	_u.mutation.ClearLearnerAnswer()
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *InteractionEventUpdateOne) SetOrigin(v string) *InteractionEventUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableOrigin(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdateOne) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdateOne) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionEventUpdateOne) Select(field string, fields ...string) *InteractionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionEvent entity.
func (_u *InteractionEventUpdateOne) Save(ctx context.Context) (*InteractionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) SaveX(ctx context.Context) *InteractionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interactionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AtomID(); ok {
		if err := interactionevent.AtomIDValidator(v); err != nil {
			return &ValidationError{Name: "atom_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.atom_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := interactionevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AtomType(); ok {
		if err := interactionevent.AtomTypeValidator(v); err != nil {
			return &ValidationError{Name: "atom_type", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.atom_type": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdateOne) sqlSave(ctx context.Context) (_node *InteractionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionevent.FieldID)
		for _, f := range fields {
			if !interactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interactionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AtomID(); ok {
		_spec.SetField(interactionevent.FieldAtomID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(interactionevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AtomType(); ok {
		_spec.SetField(interactionevent.FieldAtomType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(interactionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PartialScore(); ok {
		_spec.SetField(interactionevent.FieldPartialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPartialScore(); ok {
		_spec.AddField(interactionevent.FieldPartialScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(interactionevent.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(interactionevent.FieldResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(interactionevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(interactionevent.FieldConfidence, field.TypeInt, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(interactionevent.FieldConfidence, field.TypeInt)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(interactionevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(interactionevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(interactionevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if _u.mutation.LearnerAnswerCleared() {
		_spec.ClearField(interactionevent.FieldLearnerAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(interactionevent.FieldOrigin, field.TypeString, value)
	}
	_node = &InteractionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
