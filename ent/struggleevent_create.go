// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/okanta/memloop/ent/struggleevent"
)

// StruggleEventCreate is the builder for creating a StruggleEvent entity.
type StruggleEventCreate struct {
	config
	mutation *StruggleEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StruggleEventCreate) SetSequence(v int64) *StruggleEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StruggleEventCreate) SetTimestamp(v time.Time) *StruggleEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StruggleEventCreate) SetNillableTimestamp(v *time.Time) *StruggleEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetModule sets the "module" field.
func (_c *StruggleEventCreate) SetModule(v string) *StruggleEventCreate {
	_c.mutation.SetModule(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *StruggleEventCreate) SetSection(v string) *StruggleEventCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_c *StruggleEventCreate) SetNillableSection(v *string) *StruggleEventCreate {
	if v != nil {
		_c.SetSection(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *StruggleEventCreate) SetTrigger(v string) *StruggleEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetFailureMode sets the "failure_mode" field.
func (_c *StruggleEventCreate) SetFailureMode(v string) *StruggleEventCreate {
	_c.mutation.SetFailureMode(v)
	return _c
}

// SetNillableFailureMode sets the "failure_mode" field if the given value is not nil.
func (_c *StruggleEventCreate) SetNillableFailureMode(v *string) *StruggleEventCreate {
	if v != nil {
		_c.SetFailureMode(*v)
	}
	return _c
}

// SetStaticWeight sets the "static_weight" field.
func (_c *StruggleEventCreate) SetStaticWeight(v float64) *StruggleEventCreate {
	_c.mutation.SetStaticWeight(v)
	return _c
}

// SetDynamicWeight sets the "dynamic_weight" field.
func (_c *StruggleEventCreate) SetDynamicWeight(v float64) *StruggleEventCreate {
	_c.mutation.SetDynamicWeight(v)
	return _c
}

// Mutation returns the StruggleEventMutation object of the builder.
func (_c *StruggleEventCreate) Mutation() *StruggleEventMutation {
	return _c.mutation
}

// Save creates the StruggleEvent in the database.
func (_c *StruggleEventCreate) Save(ctx context.Context) (*StruggleEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StruggleEventCreate) SaveX(ctx context.Context) *StruggleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StruggleEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StruggleEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StruggleEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := struggleevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Section(); !ok {
		v := struggleevent.DefaultSection
		_c.mutation.SetSection(v)
	}
	if _, ok := _c.mutation.FailureMode(); !ok {
		v := struggleevent.DefaultFailureMode
		_c.mutation.SetFailureMode(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StruggleEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StruggleEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StruggleEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Module(); !ok {
		return &ValidationError{Name: "module", err: errors.New(`ent: missing required field "StruggleEvent.module"`)}
	}
	if v, ok := _c.mutation.Module(); ok {
		if err := struggleevent.ModuleValidator(v); err != nil {
			return &ValidationError{Name: "module", err: fmt.Errorf(`ent: validator failed for field "StruggleEvent.module": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "StruggleEvent.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := struggleevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "StruggleEvent.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StaticWeight(); !ok {
		return &ValidationError{Name: "static_weight", err: errors.New(`ent: missing required field "StruggleEvent.static_weight"`)}
	}
	if _, ok := _c.mutation.DynamicWeight(); !ok {
		return &ValidationError{Name: "dynamic_weight", err: errors.New(`ent: missing required field "StruggleEvent.dynamic_weight"`)}
	}
	return nil
}

func (_c *StruggleEventCreate) sqlSave(ctx context.Context) (*StruggleEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StruggleEventCreate) createSpec() (*StruggleEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StruggleEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(struggleevent.Table, sqlgraph.NewFieldSpec(struggleevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(struggleevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(struggleevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Module(); ok {
		_spec.SetField(struggleevent.FieldModule, field.TypeString, value)
		_node.Module = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(struggleevent.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(struggleevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.FailureMode(); ok {
		_spec.SetField(struggleevent.FieldFailureMode, field.TypeString, value)
		_node.FailureMode = value
	}
	if value, ok := _c.mutation.StaticWeight(); ok {
		_spec.SetField(struggleevent.FieldStaticWeight, field.TypeFloat64, value)
		_node.StaticWeight = value
	}
	if value, ok := _c.mutation.DynamicWeight(); ok {
		_spec.SetField(struggleevent.FieldDynamicWeight, field.TypeFloat64, value)
		_node.DynamicWeight = value
	}
	return _node, _spec
}

// StruggleEventCreateBulk is the builder for creating many StruggleEvent entities in bulk.
type StruggleEventCreateBulk struct {
	config
	err      error
	builders []*StruggleEventCreate
}

// Save creates the StruggleEvent entities in the database.
func (_c *StruggleEventCreateBulk) Save(ctx context.Context) ([]*StruggleEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StruggleEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StruggleEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StruggleEventCreateBulk) SaveX(ctx context.Context) []*StruggleEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StruggleEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StruggleEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
