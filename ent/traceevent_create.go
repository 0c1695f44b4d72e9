// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aulalab/aula/ent/traceevent"
)

// TraceEventCreate is the builder for creating a TraceEvent entity.
type TraceEventCreate struct {
	config
	mutation *TraceEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TraceEventCreate) SetSequence(v int64) *TraceEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TraceEventCreate) SetTimestamp(v time.Time) *TraceEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TraceEventCreate) SetNillableTimestamp(v *time.Time) *TraceEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionKey sets the "session_key" field.
func (_c *TraceEventCreate) SetSessionKey(v string) *TraceEventCreate {
	_c.mutation.SetSessionKey(v)
	return _c
}

// SetStepCode sets the "step_code" field.
func (_c *TraceEventCreate) SetStepCode(v string) *TraceEventCreate {
	_c.mutation.SetStepCode(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *TraceEventCreate) SetLabel(v string) *TraceEventCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TraceEventCreate) SetKind(v string) *TraceEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *TraceEventCreate) SetPrompt(v string) *TraceEventCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *TraceEventCreate) SetNillablePrompt(v *string) *TraceEventCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetResponse sets the "response" field.
func (_c *TraceEventCreate) SetResponse(v string) *TraceEventCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_c *TraceEventCreate) SetNillableResponse(v *string) *TraceEventCreate {
	if v != nil {
		_c.SetResponse(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *TraceEventCreate) SetFeedback(v string) *TraceEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *TraceEventCreate) SetNillableFeedback(v *string) *TraceEventCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *TraceEventCreate) SetAttempt(v int) *TraceEventCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *TraceEventCreate) SetNillableAttempt(v *int) *TraceEventCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *TraceEventCreate) SetHintsUsed(v int) *TraceEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *TraceEventCreate) SetNillableHintsUsed(v *int) *TraceEventCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// Mutation returns the TraceEventMutation object of the builder.
func (_c *TraceEventCreate) Mutation() *TraceEventMutation {
	return _c.mutation
}

// Save creates the TraceEvent in the database.
func (_c *TraceEventCreate) Save(ctx context.Context) (*TraceEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TraceEventCreate) SaveX(ctx context.Context) *TraceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TraceEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TraceEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TraceEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := traceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		v := traceevent.DefaultPrompt
		_c.mutation.SetPrompt(v)
	}
	if _, ok := _c.mutation.Response(); !ok {
		v := traceevent.DefaultResponse
		_c.mutation.SetResponse(v)
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		v := traceevent.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := traceevent.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := traceevent.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TraceEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TraceEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TraceEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionKey(); !ok {
		return &ValidationError{Name: "session_key", err: errors.New(`ent: missing required field "TraceEvent.session_key"`)}
	}
	if v, ok := _c.mutation.SessionKey(); ok {
		if err := traceevent.SessionKeyValidator(v); err != nil {
			return &ValidationError{Name: "session_key", err: fmt.Errorf(`ent: validator failed for field "TraceEvent.session_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepCode(); !ok {
		return &ValidationError{Name: "step_code", err: errors.New(`ent: missing required field "TraceEvent.step_code"`)}
	}
	if v, ok := _c.mutation.StepCode(); ok {
		if err := traceevent.StepCodeValidator(v); err != nil {
			return &ValidationError{Name: "step_code", err: fmt.Errorf(`ent: validator failed for field "TraceEvent.step_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "TraceEvent.label"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TraceEvent.kind"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "TraceEvent.prompt"`)}
	}
	if _, ok := _c.mutation.Response(); !ok {
		return &ValidationError{Name: "response", err: errors.New(`ent: missing required field "TraceEvent.response"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "TraceEvent.feedback"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "TraceEvent.attempt"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "TraceEvent.hints_used"`)}
	}
	return nil
}

func (_c *TraceEventCreate) sqlSave(ctx context.Context) (*TraceEvent, error) {
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

func (_c *TraceEventCreate) createSpec() (*TraceEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TraceEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(traceevent.Table, sqlgraph.NewFieldSpec(traceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(traceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(traceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionKey(); ok {
		_spec.SetField(traceevent.FieldSessionKey, field.TypeString, value)
		_node.SessionKey = value
	}
	if value, ok := _c.mutation.StepCode(); ok {
		_spec.SetField(traceevent.FieldStepCode, field.TypeString, value)
		_node.StepCode = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(traceevent.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(traceevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(traceevent.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(traceevent.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(traceevent.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(traceevent.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(traceevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	return _node, _spec
}

// TraceEventCreateBulk is the builder for creating many TraceEvent entities in bulk.
type TraceEventCreateBulk struct {
	config
	err      error
	builders []*TraceEventCreate
}

// Save creates the TraceEvent entities in the database.
func (_c *TraceEventCreateBulk) Save(ctx context.Context) ([]*TraceEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TraceEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TraceEventMutation)
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
func (_c *TraceEventCreateBulk) SaveX(ctx context.Context) []*TraceEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TraceEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TraceEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
