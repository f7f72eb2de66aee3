// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/okanta/memloop/ent/predicate"
	"github.com/okanta/memloop/ent/waiver"
)

// WaiverUpdate is the builder for updating Waiver entities.
type WaiverUpdate struct {
	config
	hooks    []Hook
	mutation *WaiverMutation
}

// Where appends a list predicates to the WaiverUpdate builder.
func (_u *WaiverUpdate) Where(ps ...predicate.Waiver) *WaiverUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *WaiverUpdate) SetSourceID(v string) *WaiverUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *WaiverUpdate) SetNillableSourceID(v *string) *WaiverUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *WaiverUpdate) SetTargetID(v string) *WaiverUpdate {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *WaiverUpdate) SetNillableTargetID(v *string) *WaiverUpdate {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetWaiverType sets the "waiver_type" field.
func (_u *WaiverUpdate) SetWaiverType(v string) *WaiverUpdate {
	_u.mutation.SetWaiverType(v)
	return _u
}

// SetNillableWaiverType sets the "waiver_type" field if the given value is not nil.
func (_u *WaiverUpdate) SetNillableWaiverType(v *string) *WaiverUpdate {
	if v != nil {
		_u.SetWaiverType(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *WaiverUpdate) SetNote(v string) *WaiverUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *WaiverUpdate) SetNillableNote(v *string) *WaiverUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *WaiverUpdate) ClearNote() *WaiverUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetGrantedAt sets the "granted_at" field.
func (_u *WaiverUpdate) SetGrantedAt(v time.Time) *WaiverUpdate {
	_u.mutation.SetGrantedAt(v)
	return _u
}

// SetNillableGrantedAt sets the "granted_at" field if the given value is not nil.
func (_u *WaiverUpdate) SetNillableGrantedAt(v *time.Time) *WaiverUpdate {
	if v != nil {
		_u.SetGrantedAt(*v)
	}
	return _u
}

// Mutation returns the WaiverMutation object of the builder.
func (_u *WaiverUpdate) Mutation() *WaiverMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WaiverUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WaiverUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WaiverUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WaiverUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WaiverUpdate) check() error {
	if v, ok := _u.mutation.SourceID(); ok {
		if err := waiver.SourceIDValidator(v); err != nil {
			return &ValidationError{Name: "source_id", err: fmt.Errorf(`ent: validator failed for field "Waiver.source_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetID(); ok {
		if err := waiver.TargetIDValidator(v); err != nil {
			return &ValidationError{Name: "target_id", err: fmt.Errorf(`ent: validator failed for field "Waiver.target_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaiverType(); ok {
		if err := waiver.WaiverTypeValidator(v); err != nil {
			return &ValidationError{Name: "waiver_type", err: fmt.Errorf(`ent: validator failed for field "Waiver.waiver_type": %w`, err)}
		}
	}
	return nil
}

func (_u *WaiverUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(waiver.Table, waiver.Columns, sqlgraph.NewFieldSpec(waiver.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(waiver.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(waiver.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WaiverType(); ok {
		_spec.SetField(waiver.FieldWaiverType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(waiver.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(waiver.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.GrantedAt(); ok {
		_spec.SetField(waiver.FieldGrantedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{waiver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WaiverUpdateOne is the builder for updating a single Waiver entity.
type WaiverUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WaiverMutation
}

// SetSourceID sets the "source_id" field.
func (_u *WaiverUpdateOne) SetSourceID(v string) *WaiverUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *WaiverUpdateOne) SetNillableSourceID(v *string) *WaiverUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetTargetID sets the "target_id" field.
func (_u *WaiverUpdateOne) SetTargetID(v string) *WaiverUpdateOne {
	_u.mutation.SetTargetID(v)
	return _u
}

// SetNillableTargetID sets the "target_id" field if the given value is not nil.
func (_u *WaiverUpdateOne) SetNillableTargetID(v *string) *WaiverUpdateOne {
	if v != nil {
		_u.SetTargetID(*v)
	}
	return _u
}

// SetWaiverType sets the "waiver_type" field.
func (_u *WaiverUpdateOne) SetWaiverType(v string) *WaiverUpdateOne {
	_u.mutation.SetWaiverType(v)
	return _u
}

// SetNillableWaiverType sets the "waiver_type" field if the given value is not nil.
func (_u *WaiverUpdateOne) SetNillableWaiverType(v *string) *WaiverUpdateOne {
	if v != nil {
		_u.SetWaiverType(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *WaiverUpdateOne) SetNote(v string) *WaiverUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *WaiverUpdateOne) SetNillableNote(v *string) *WaiverUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *WaiverUpdateOne) ClearNote() *WaiverUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetGrantedAt sets the "granted_at" field.
func (_u *WaiverUpdateOne) SetGrantedAt(v time.Time) *WaiverUpdateOne {
	_u.mutation.SetGrantedAt(v)
	return _u
}

// SetNillableGrantedAt sets the "granted_at" field if the given value is not nil.
func (_u *WaiverUpdateOne) SetNillableGrantedAt(v *time.Time) *WaiverUpdateOne {
	if v != nil {
		_u.SetGrantedAt(*v)
	}
	return _u
}

// Mutation returns the WaiverMutation object of the builder.
func (_u *WaiverUpdateOne) Mutation() *WaiverMutation {
	return _u.mutation
}

// Where appends a list predicates to the WaiverUpdate builder.
func (_u *WaiverUpdateOne) Where(ps ...predicate.Waiver) *WaiverUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WaiverUpdateOne) Select(field string, fields ...string) *WaiverUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Waiver entity.
func (_u *WaiverUpdateOne) Save(ctx context.Context) (*Waiver, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WaiverUpdateOne) SaveX(ctx context.Context) *Waiver {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WaiverUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WaiverUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WaiverUpdateOne) check() error {
	if v, ok := _u.mutation.SourceID(); ok {
		if err := waiver.SourceIDValidator(v); err != nil {
			return &ValidationError{Name: "source_id", err: fmt.Errorf(`ent: validator failed for field "Waiver.source_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetID(); ok {
		if err := waiver.TargetIDValidator(v); err != nil {
			return &ValidationError{Name: "target_id", err: fmt.Errorf(`ent: validator failed for field "Waiver.target_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WaiverType(); ok {
		if err := waiver.WaiverTypeValidator(v); err != nil {
			return &ValidationError{Name: "waiver_type", err: fmt.Errorf(`ent: validator failed for field "Waiver.waiver_type": %w`, err)}
		}
	}
	return nil
}

func (_u *WaiverUpdateOne) sqlSave(ctx context.Context) (_node *Waiver, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(waiver.Table, waiver.Columns, sqlgraph.NewFieldSpec(waiver.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Waiver.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, waiver.FieldID)
		for _, f := range fields {
			if !waiver.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != waiver.FieldID {
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
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(waiver.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetID(); ok {
		_spec.SetField(waiver.FieldTargetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WaiverType(); ok {
		_spec.SetField(waiver.FieldWaiverType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(waiver.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(waiver.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.GrantedAt(); ok {
		_spec.SetField(waiver.FieldGrantedAt, field.TypeTime, value)
	}
	_node = &Waiver{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{waiver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
