// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/okanta/memloop/ent/waiver"
)

// WaiverCreate is the builder for creating a Waiver entity.
type WaiverCreate struct {
	config
	mutation *WaiverMutation
	hooks    []Hook
}

// SetSourceID sets the "source_id" field.
func (_c *WaiverCreate) SetSourceID(v string) *WaiverCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *WaiverCreate) SetTargetID(v string) *WaiverCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetWaiverType sets the "waiver_type" field.
func (_c *WaiverCreate) SetWaiverType(v string) *WaiverCreate {
	_c.mutation.SetWaiverType(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *WaiverCreate) SetNote(v string) *WaiverCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *WaiverCreate) SetNillableNote(v *string) *WaiverCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetGrantedAt sets the "granted_at" field.
func (_c *WaiverCreate) SetGrantedAt(v time.Time) *WaiverCreate {
	_c.mutation.SetGrantedAt(v)
	return _c
}

// SetNillableGrantedAt sets the "granted_at" field if the given value is not nil.
func (_c *WaiverCreate) SetNillableGrantedAt(v *time.Time) *WaiverCreate {
	if v != nil {
		_c.SetGrantedAt(*v)
	}
	return _c
}

// Mutation returns the WaiverMutation object of the builder.
func (_c *WaiverCreate) Mutation() *WaiverMutation {
	return _c.mutation
}

// Save creates the Waiver in the database.
func (_c *WaiverCreate) Save(ctx context.Context) (*Waiver, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WaiverCreate) SaveX(ctx context.Context) *Waiver {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WaiverCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WaiverCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WaiverCreate) defaults() {
	if _, ok := _c.mutation.Note(); !ok {
		v := waiver.DefaultNote
		_c.mutation.SetNote(v)
	}
	if _, ok := _c.mutation.GrantedAt(); !ok {
		v := waiver.DefaultGrantedAt()
		_c.mutation.SetGrantedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WaiverCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "Waiver.source_id"`)}
	}
	if v, ok := _c.mutation.SourceID(); ok {
		if err := waiver.SourceIDValidator(v); err != nil {
			return &ValidationError{Name: "source_id", err: fmt.Errorf(`ent: validator failed for field "Waiver.source_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "Waiver.target_id"`)}
	}
	if v, ok := _c.mutation.TargetID(); ok {
		if err := waiver.TargetIDValidator(v); err != nil {
			return &ValidationError{Name: "target_id", err: fmt.Errorf(`ent: validator failed for field "Waiver.target_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WaiverType(); !ok {
		return &ValidationError{Name: "waiver_type", err: errors.New(`ent: missing required field "Waiver.waiver_type"`)}
	}
	if v, ok := _c.mutation.WaiverType(); ok {
		if err := waiver.WaiverTypeValidator(v); err != nil {
			return &ValidationError{Name: "waiver_type", err: fmt.Errorf(`ent: validator failed for field "Waiver.waiver_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GrantedAt(); !ok {
		return &ValidationError{Name: "granted_at", err: errors.New(`ent: missing required field "Waiver.granted_at"`)}
	}
	return nil
}

func (_c *WaiverCreate) sqlSave(ctx context.Context) (*Waiver, error) {
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

func (_c *WaiverCreate) createSpec() (*Waiver, *sqlgraph.CreateSpec) {
	var (
		_node = &Waiver{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(waiver.Table, sqlgraph.NewFieldSpec(waiver.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(waiver.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(waiver.FieldTargetID, field.TypeString, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.WaiverType(); ok {
		_spec.SetField(waiver.FieldWaiverType, field.TypeString, value)
		_node.WaiverType = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(waiver.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.GrantedAt(); ok {
		_spec.SetField(waiver.FieldGrantedAt, field.TypeTime, value)
		_node.GrantedAt = value
	}
	return _node, _spec
}

// WaiverCreateBulk is the builder for creating many Waiver entities in bulk.
type WaiverCreateBulk struct {
	config
	err      error
	builders []*WaiverCreate
}

// Save creates the Waiver entities in the database.
func (_c *WaiverCreateBulk) Save(ctx context.Context) ([]*Waiver, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Waiver, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WaiverMutation)
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
func (_c *WaiverCreateBulk) SaveX(ctx context.Context) []*Waiver {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WaiverCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WaiverCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
