// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/okanta/memloop/ent/interactionevent"
)

// InteractionEventCreate is the builder for creating a InteractionEvent entity.
type InteractionEventCreate struct {
	config
	mutation *InteractionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InteractionEventCreate) SetSequence(v int64) *InteractionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InteractionEventCreate) SetTimestamp(v time.Time) *InteractionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableTimestamp(v *time.Time) *InteractionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InteractionEventCreate) SetSessionID(v string) *InteractionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAtomID sets the "atom_id" field.
func (_c *InteractionEventCreate) SetAtomID(v string) *InteractionEventCreate {
	_c.mutation.SetAtomID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *InteractionEventCreate) SetConceptID(v string) *InteractionEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetAtomType sets the "atom_type" field.
func (_c *InteractionEventCreate) SetAtomType(v string) *InteractionEventCreate {
	_c.mutation.SetAtomType(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *InteractionEventCreate) SetCorrect(v bool) *InteractionEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetPartialScore sets the "partial_score" field.
func (_c *InteractionEventCreate) SetPartialScore(v float64) *InteractionEventCreate {
	_c.mutation.SetPartialScore(v)
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *InteractionEventCreate) SetResponseTimeMs(v int64) *InteractionEventCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableResponseTimeMs(v *int64) *InteractionEventCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *InteractionEventCreate) SetConfidence(v int) *InteractionEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableConfidence(v *int) *InteractionEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *InteractionEventCreate) SetAttempt(v int) *InteractionEventCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableAttempt(v *int) *InteractionEventCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_c *InteractionEventCreate) SetLearnerAnswer(v string) *InteractionEventCreate {
	_c.mutation.SetLearnerAnswer(v)
	return _c
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableLearnerAnswer(v *string) *InteractionEventCreate {
	if v != nil {
		_c.SetLearnerAnswer(*v)
	}
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *InteractionEventCreate) SetOrigin(v string) *InteractionEventCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableOrigin(v *string) *InteractionEventCreate {
	if v != nil {
		_c.SetOrigin(*v)
	}
	return _c
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_c *InteractionEventCreate) Mutation() *InteractionEventMutation {
	return _c.mutation
}

// Save creates the InteractionEvent in the database.
func (_c *InteractionEventCreate) Save(ctx context.Context) (*InteractionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionEventCreate) SaveX(ctx context.Context) *InteractionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interactionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		v := interactionevent.DefaultResponseTimeMs
		_c.mutation.SetResponseTimeMs(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := interactionevent.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.LearnerAnswer(); !ok {
		v := interactionevent.DefaultLearnerAnswer
		_c.mutation.SetLearnerAnswer(v)
	}
	if _, ok := _c.mutation.Origin(); !ok {
		v := interactionevent.DefaultOrigin
		_c.mutation.SetOrigin(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InteractionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InteractionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InteractionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interactionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AtomID(); !ok {
		return &ValidationError{Name: "atom_id", err: errors.New(`ent: missing required field "InteractionEvent.atom_id"`)}
	}
	if v, ok := _c.mutation.AtomID(); ok {
		if err := interactionevent.AtomIDValidator(v); err != nil {
			return &ValidationError{Name: "atom_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.atom_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "InteractionEvent.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := interactionevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AtomType(); !ok {
		return &ValidationError{Name: "atom_type", err: errors.New(`ent: missing required field "InteractionEvent.atom_type"`)}
	}
	if v, ok := _c.mutation.AtomType(); ok {
		if err := interactionevent.AtomTypeValidator(v); err != nil {
			return &ValidationError{Name: "atom_type", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.atom_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "InteractionEvent.correct"`)}
	}
	if _, ok := _c.mutation.PartialScore(); !ok {
		return &ValidationError{Name: "partial_score", err: errors.New(`ent: missing required field "InteractionEvent.partial_score"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "InteractionEvent.response_time_ms"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "InteractionEvent.attempt"`)}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "InteractionEvent.origin"`)}
	}
	return nil
}

func (_c *InteractionEventCreate) sqlSave(ctx context.Context) (*InteractionEvent, error) {
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

func (_c *InteractionEventCreate) createSpec() (*InteractionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InteractionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interactionevent.Table, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interactionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interactionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interactionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.AtomID(); ok {
		_spec.SetField(interactionevent.FieldAtomID, field.TypeString, value)
		_node.AtomID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(interactionevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.AtomType(); ok {
		_spec.SetField(interactionevent.FieldAtomType, field.TypeString, value)
		_node.AtomType = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(interactionevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.PartialScore(); ok {
		_spec.SetField(interactionevent.FieldPartialScore, field.TypeFloat64, value)
		_node.PartialScore = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(interactionevent.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(interactionevent.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(interactionevent.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.LearnerAnswer(); ok {
		_spec.SetField(interactionevent.FieldLearnerAnswer, field.TypeString, value)
		_node.LearnerAnswer = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(interactionevent.FieldOrigin, field.TypeString, value)
		_node.Origin = value
	}
	return _node, _spec
}

// InteractionEventCreateBulk is the builder for creating many InteractionEvent entities in bulk.
type InteractionEventCreateBulk struct {
	config
	err      error
	builders []*InteractionEventCreate
}

// Save creates the InteractionEvent entities in the database.
func (_c *InteractionEventCreateBulk) Save(ctx context.Context) ([]*InteractionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InteractionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionEventMutation)
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
func (_c *InteractionEventCreateBulk) SaveX(ctx context.Context) []*InteractionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
