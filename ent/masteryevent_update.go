// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/okanta/memloop/ent/masteryevent"
	"github.com/okanta/memloop/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryEventUpdate) SetConceptID(v string) *MasteryEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableConceptID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetReviewMastery sets the "review_mastery" field.
func (_u *MasteryEventUpdate) SetReviewMastery(v float64) *MasteryEventUpdate {
	_u.mutation.ResetReviewMastery()
	_u.mutation.SetReviewMastery(v)
	return _u
}

// SetNillableReviewMastery sets the "review_mastery" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableReviewMastery(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetReviewMastery(*v)
	}
	return _u
}

// AddReviewMastery adds value to the "review_mastery" field.
func (_u *MasteryEventUpdate) AddReviewMastery(v float64) *MasteryEventUpdate {
	_u.mutation.AddReviewMastery(v)
	return _u
}

// SetQuizMastery sets the "quiz_mastery" field.
func (_u *MasteryEventUpdate) SetQuizMastery(v float64) *MasteryEventUpdate {
	_u.mutation.ResetQuizMastery()
	_u.mutation.SetQuizMastery(v)
	return _u
}

// SetNillableQuizMastery sets the "quiz_mastery" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableQuizMastery(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetQuizMastery(*v)
	}
	return _u
}

// AddQuizMastery adds value to the "quiz_mastery" field.
func (_u *MasteryEventUpdate) AddQuizMastery(v float64) *MasteryEventUpdate {
	_u.mutation.AddQuizMastery(v)
	return _u
}

// SetCombinedMastery sets the "combined_mastery" field.
func (_u *MasteryEventUpdate) SetCombinedMastery(v float64) *MasteryEventUpdate {
	_u.mutation.ResetCombinedMastery()
	_u.mutation.SetCombinedMastery(v)
	return _u
}

// SetNillableCombinedMastery sets the "combined_mastery" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableCombinedMastery(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetCombinedMastery(*v)
	}
	return _u
}

// AddCombinedMastery adds value to the "combined_mastery" field.
func (_u *MasteryEventUpdate) AddCombinedMastery(v float64) *MasteryEventUpdate {
	_u.mutation.AddCombinedMastery(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryEventUpdate) SetTrigger(v string) *MasteryEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableTrigger(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdate) SetSessionID(v string) *MasteryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSessionID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdate) ClearSessionID() *MasteryEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewMastery(); ok {
		_spec.SetField(masteryevent.FieldReviewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReviewMastery(); ok {
		_spec.AddField(masteryevent.FieldReviewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuizMastery(); ok {
		_spec.SetField(masteryevent.FieldQuizMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuizMastery(); ok {
		_spec.AddField(masteryevent.FieldQuizMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CombinedMastery(); ok {
		_spec.SetField(masteryevent.FieldCombinedMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCombinedMastery(); ok {
		_spec.AddField(masteryevent.FieldCombinedMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetConceptID sets the "concept_id" field.
func (_u *MasteryEventUpdateOne) SetConceptID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableConceptID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetReviewMastery sets the "review_mastery" field.
func (_u *MasteryEventUpdateOne) SetReviewMastery(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetReviewMastery()
	_u.mutation.SetReviewMastery(v)
	return _u
}

// SetNillableReviewMastery sets the "review_mastery" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableReviewMastery(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetReviewMastery(*v)
	}
	return _u
}

// AddReviewMastery adds value to the "review_mastery" field.
func (_u *MasteryEventUpdateOne) AddReviewMastery(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddReviewMastery(v)
	return _u
}

// SetQuizMastery sets the "quiz_mastery" field.
func (_u *MasteryEventUpdateOne) SetQuizMastery(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetQuizMastery()
	_u.mutation.SetQuizMastery(v)
	return _u
}

// SetNillableQuizMastery sets the "quiz_mastery" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableQuizMastery(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetQuizMastery(*v)
	}
	return _u
}

// AddQuizMastery adds value to the "quiz_mastery" field.
func (_u *MasteryEventUpdateOne) AddQuizMastery(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddQuizMastery(v)
	return _u
}

// SetCombinedMastery sets the "combined_mastery" field.
func (_u *MasteryEventUpdateOne) SetCombinedMastery(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetCombinedMastery()
	_u.mutation.SetCombinedMastery(v)
	return _u
}

// SetNillableCombinedMastery sets the "combined_mastery" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableCombinedMastery(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetCombinedMastery(*v)
	}
	return _u
}

// AddCombinedMastery adds value to the "combined_mastery" field.
func (_u *MasteryEventUpdateOne) AddCombinedMastery(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddCombinedMastery(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryEventUpdateOne) SetTrigger(v string) *MasteryEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableTrigger(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdateOne) SetSessionID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSessionID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdateOne) ClearSessionID() *MasteryEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := masteryevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(masteryevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewMastery(); ok {
		_spec.SetField(masteryevent.FieldReviewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReviewMastery(); ok {
		_spec.AddField(masteryevent.FieldReviewMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuizMastery(); ok {
		_spec.SetField(masteryevent.FieldQuizMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuizMastery(); ok {
		_spec.AddField(masteryevent.FieldQuizMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CombinedMastery(); ok {
		_spec.SetField(masteryevent.FieldCombinedMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCombinedMastery(); ok {
		_spec.AddField(masteryevent.FieldCombinedMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
