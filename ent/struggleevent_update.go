// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/okanta/memloop/ent/predicate"
	"github.com/okanta/memloop/ent/struggleevent"
)

// StruggleEventUpdate is the builder for updating StruggleEvent entities.
type StruggleEventUpdate struct {
	config
	hooks    []Hook
	mutation *StruggleEventMutation
}

// Where appends a list predicates to the StruggleEventUpdate builder.
func (_u *StruggleEventUpdate) Where(ps ...predicate.StruggleEvent) *StruggleEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModule sets the "module" field.
func (_u *StruggleEventUpdate) SetModule(v string) *StruggleEventUpdate {
	_u.mutation.SetModule(v)
	return _u
}

// SetNillableModule sets the "module" field if the given value is not nil.
func (_u *StruggleEventUpdate) SetNillableModule(v *string) *StruggleEventUpdate {
	if v != nil {
		_u.SetModule(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *StruggleEventUpdate) SetSection(v string) *StruggleEventUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *StruggleEventUpdate) SetNillableSection(v *string) *StruggleEventUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// ClearSection clears the value of the "section" field.
func (_u *StruggleEventUpdate) ClearSection() *StruggleEventUpdate {
	_u.mutation.ClearSection()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *StruggleEventUpdate) SetTrigger(v string) *StruggleEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *StruggleEventUpdate) SetNillableTrigger(v *string) *StruggleEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetFailureMode sets the "failure_mode" field.
func (_u *StruggleEventUpdate) SetFailureMode(v string) *StruggleEventUpdate {
	_u.mutation.SetFailureMode(v)
	return _u
}

// SetNillableFailureMode sets the "failure_mode" field if the given value is not nil.
func (_u *StruggleEventUpdate) SetNillableFailureMode(v *string) *StruggleEventUpdate {
	if v != nil {
		_u.SetFailureMode(*v)
	}
	return _u
}

// ClearFailureMode clears the value of the "failure_mode" field.
func (_u *StruggleEventUpdate) ClearFailureMode() *StruggleEventUpdate {
	_u.mutation.ClearFailureMode()
	return _u
}

// SetStaticWeight sets the "static_weight" field.
func (_u *StruggleEventUpdate) SetStaticWeight(v float64) *StruggleEventUpdate {
	_u.mutation.ResetStaticWeight()
	_u.mutation.SetStaticWeight(v)
	return _u
}

// SetNillableStaticWeight sets the "static_weight" field if the given value is not nil.
func (_u *StruggleEventUpdate) SetNillableStaticWeight(v *float64) *StruggleEventUpdate {
	if v != nil {
		_u.SetStaticWeight(*v)
	}
	return _u
}

// AddStaticWeight adds value to the "static_weight" field.
func (_u *StruggleEventUpdate) AddStaticWeight(v float64) *StruggleEventUpdate {
	_u.mutation.AddStaticWeight(v)
	return _u
}

// SetDynamicWeight sets the "dynamic_weight" field.
func (_u *StruggleEventUpdate) SetDynamicWeight(v float64) *StruggleEventUpdate {
	_u.mutation.ResetDynamicWeight()
	_u.mutation.SetDynamicWeight(v)
	return _u
}

// SetNillableDynamicWeight sets the "dynamic_weight" field if the given value is not nil.
func (_u *StruggleEventUpdate) SetNillableDynamicWeight(v *float64) *StruggleEventUpdate {
	if v != nil {
		_u.SetDynamicWeight(*v)
	}
	return _u
}

// AddDynamicWeight adds value to the "dynamic_weight" field.
func (_u *StruggleEventUpdate) AddDynamicWeight(v float64) *StruggleEventUpdate {
	_u.mutation.AddDynamicWeight(v)
	return _u
}

// Mutation returns the StruggleEventMutation object of the builder.
func (_u *StruggleEventUpdate) Mutation() *StruggleEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StruggleEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StruggleEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StruggleEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StruggleEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StruggleEventUpdate) check() error {
	if v, ok := _u.mutation.Module(); ok {
		if err := struggleevent.ModuleValidator(v); err != nil {
			return &ValidationError{Name: "module", err: fmt.Errorf(`ent: validator failed for field "StruggleEvent.module": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := struggleevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "StruggleEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *StruggleEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(struggleevent.Table, struggleevent.Columns, sqlgraph.NewFieldSpec(struggleevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Module(); ok {
		_spec.SetField(struggleevent.FieldModule, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(struggleevent.FieldSection, field.TypeString, value)
	}
	if _u.mutation.SectionCleared() {
		_spec.ClearField(struggleevent.FieldSection, field.TypeString)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(struggleevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureMode(); ok {
		_spec.SetField(struggleevent.FieldFailureMode, field.TypeString, value)
	}
	if _u.mutation.FailureModeCleared() {
		_spec.ClearField(struggleevent.FieldFailureMode, field.TypeString)
	}
	if value, ok := _u.mutation.StaticWeight(); ok {
		_spec.SetField(struggleevent.FieldStaticWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStaticWeight(); ok {
		_spec.AddField(struggleevent.FieldStaticWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DynamicWeight(); ok {
		_spec.SetField(struggleevent.FieldDynamicWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDynamicWeight(); ok {
		_spec.AddField(struggleevent.FieldDynamicWeight, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{struggleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StruggleEventUpdateOne is the builder for updating a single StruggleEvent entity.
type StruggleEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StruggleEventMutation
}

// SetModule sets the "module" field.
func (_u *StruggleEventUpdateOne) SetModule(v string) *StruggleEventUpdateOne {
	_u.mutation.SetModule(v)
	return _u
}

// SetNillableModule sets the "module" field if the given value is not nil.
func (_u *StruggleEventUpdateOne) SetNillableModule(v *string) *StruggleEventUpdateOne {
	if v != nil {
		_u.SetModule(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *StruggleEventUpdateOne) SetSection(v string) *StruggleEventUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *StruggleEventUpdateOne) SetNillableSection(v *string) *StruggleEventUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// ClearSection clears the value of the "section" field.
func (_u *StruggleEventUpdateOne) ClearSection() *StruggleEventUpdateOne {
	_u.mutation.ClearSection()
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *StruggleEventUpdateOne) SetTrigger(v string) *StruggleEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *StruggleEventUpdateOne) SetNillableTrigger(v *string) *StruggleEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetFailureMode sets the "failure_mode" field.
func (_u *StruggleEventUpdateOne) SetFailureMode(v string) *StruggleEventUpdateOne {
	_u.mutation.SetFailureMode(v)
	return _u
}

// SetNillableFailureMode sets the "failure_mode" field if the given value is not nil.
func (_u *StruggleEventUpdateOne) SetNillableFailureMode(v *string) *StruggleEventUpdateOne {
	if v != nil {
		_u.SetFailureMode(*v)
	}
	return _u
}

// ClearFailureMode clears the value of the "failure_mode" field.
func (_u *StruggleEventUpdateOne) ClearFailureMode() *StruggleEventUpdateOne {
	_u.mutation.ClearFailureMode()
	return _u
}

// SetStaticWeight sets the "static_weight" field.
func (_u *StruggleEventUpdateOne) SetStaticWeight(v float64) *StruggleEventUpdateOne {
	_u.mutation.ResetStaticWeight()
	_u.mutation.SetStaticWeight(v)
	return _u
}

// SetNillableStaticWeight sets the "static_weight" field if the given value is not nil.
func (_u *StruggleEventUpdateOne) SetNillableStaticWeight(v *float64) *StruggleEventUpdateOne {
	if v != nil {
		_u.SetStaticWeight(*v)
	}
	return _u
}

// AddStaticWeight adds value to the "static_weight" field.
func (_u *StruggleEventUpdateOne) AddStaticWeight(v float64) *StruggleEventUpdateOne {
	_u.mutation.AddStaticWeight(v)
	return _u
}

// SetDynamicWeight sets the "dynamic_weight" field.
func (_u *StruggleEventUpdateOne) SetDynamicWeight(v float64) *StruggleEventUpdateOne {
	_u.mutation.ResetDynamicWeight()
	_u.mutation.SetDynamicWeight(v)
	return _u
}

// SetNillableDynamicWeight sets the "dynamic_weight" field if the given value is not nil.
func (_u *StruggleEventUpdateOne) SetNillableDynamicWeight(v *float64) *StruggleEventUpdateOne {
	if v != nil {
		_u.SetDynamicWeight(*v)
	}
	return _u
}

// AddDynamicWeight adds value to the "dynamic_weight" field.
func (_u *StruggleEventUpdateOne) AddDynamicWeight(v float64) *StruggleEventUpdateOne {
	_u.mutation.AddDynamicWeight(v)
	return _u
}

// Mutation returns the StruggleEventMutation object of the builder.
func (_u *StruggleEventUpdateOne) Mutation() *StruggleEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StruggleEventUpdate builder.
func (_u *StruggleEventUpdateOne) Where(ps ...predicate.StruggleEvent) *StruggleEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StruggleEventUpdateOne) Select(field string, fields ...string) *StruggleEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StruggleEvent entity.
func (_u *StruggleEventUpdateOne) Save(ctx context.Context) (*StruggleEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StruggleEventUpdateOne) SaveX(ctx context.Context) *StruggleEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StruggleEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StruggleEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StruggleEventUpdateOne) check() error {
	if v, ok := _u.mutation.Module(); ok {
		if err := struggleevent.ModuleValidator(v); err != nil {
			return &ValidationError{Name: "module", err: fmt.Errorf(`ent: validator failed for field "StruggleEvent.module": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := struggleevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "StruggleEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *StruggleEventUpdateOne) sqlSave(ctx context.Context) (_node *StruggleEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(struggleevent.Table, struggleevent.Columns, sqlgraph.NewFieldSpec(struggleevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StruggleEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, struggleevent.FieldID)
		for _, f := range fields {
			if !struggleevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != struggleevent.FieldID {
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
	if value, ok := _u.mutation.Module(); ok {
		_spec.SetField(struggleevent.FieldModule, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(struggleevent.FieldSection, field.TypeString, value)
	}
	if _u.mutation.SectionCleared() {
		_spec.ClearField(struggleevent.FieldSection, field.TypeString)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(struggleevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureMode(); ok {
		_spec.SetField(struggleevent.FieldFailureMode, field.TypeString, value)
	}
	if _u.mutation.FailureModeCleared() {
		_spec.ClearField(struggleevent.FieldFailureMode, field.TypeString)
	}
	if value, ok := _u.mutation.StaticWeight(); ok {
		_spec.SetField(struggleevent.FieldStaticWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStaticWeight(); ok {
		_spec.AddField(struggleevent.FieldStaticWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DynamicWeight(); ok {
		_spec.SetField(struggleevent.FieldDynamicWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDynamicWeight(); ok {
		_spec.AddField(struggleevent.FieldDynamicWeight, field.TypeFloat64, value)
	}
	_node = &StruggleEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{struggleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
