// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/aulalab/aula/ent/predicate"
	"github.com/aulalab/aula/ent/traceevent"
)

// TraceEventUpdate is the builder for updating TraceEvent entities.
type TraceEventUpdate struct {
	config
	hooks    []Hook
	mutation *TraceEventMutation
}

// Where appends a list predicates to the TraceEventUpdate builder.
func (_u *TraceEventUpdate) Where(ps ...predicate.TraceEvent) *TraceEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionKey sets the "session_key" field.
func (_u *TraceEventUpdate) SetSessionKey(v string) *TraceEventUpdate {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *TraceEventUpdate) SetNillableSessionKey(v *string) *TraceEventUpdate {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetStepCode sets the "step_code" field.
func (_u *TraceEventUpdate) SetStepCode(v string) *TraceEventUpdate {
	_u.mutation.SetStepCode(v)
	return _u
}

// SetNillableStepCode sets the "step_code" field if the given value is not nil.
func (_u *TraceEventUpdate) SetNillableStepCode(v *string) *TraceEventUpdate {
	if v != nil {
		_u.SetStepCode(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *TraceEventUpdate) SetLabel(v string) *TraceEventUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *TraceEventUpdate) SetNillableLabel(v *string) *TraceEventUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TraceEventUpdate) SetKind(v string) *TraceEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TraceEventUpdate) SetNillableKind(v *string) *TraceEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TraceEventUpdate) SetPrompt(v string) *TraceEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TraceEventUpdate) SetNillablePrompt(v *string) *TraceEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *TraceEventUpdate) SetResponse(v string) *TraceEventUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *TraceEventUpdate) SetNillableResponse(v *string) *TraceEventUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *TraceEventUpdate) SetFeedback(v string) *TraceEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *TraceEventUpdate) SetNillableFeedback(v *string) *TraceEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TraceEventUpdate) SetAttempt(v int) *TraceEventUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *TraceEventUpdate) SetNillableAttempt(v *int) *TraceEventUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *TraceEventUpdate) AddAttempt(v int) *TraceEventUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *TraceEventUpdate) SetHintsUsed(v int) *TraceEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *TraceEventUpdate) SetNillableHintsUsed(v *int) *TraceEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *TraceEventUpdate) AddHintsUsed(v int) *TraceEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// Mutation returns the TraceEventMutation object of the builder.
func (_u *TraceEventUpdate) Mutation() *TraceEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TraceEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TraceEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TraceEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TraceEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TraceEventUpdate) check() error {
	if v, ok := _u.mutation.SessionKey(); ok {
		if err := traceevent.SessionKeyValidator(v); err != nil {
			return &ValidationError{Name: "session_key", err: fmt.Errorf(`ent: validator failed for field "TraceEvent.session_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepCode(); ok {
		if err := traceevent.StepCodeValidator(v); err != nil {
			return &ValidationError{Name: "step_code", err: fmt.Errorf(`ent: validator failed for field "TraceEvent.step_code": %w`, err)}
		}
	}
	return nil
}

func (_u *TraceEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(traceevent.Table, traceevent.Columns, sqlgraph.NewFieldSpec(traceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(traceevent.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepCode(); ok {
		_spec.SetField(traceevent.FieldStepCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(traceevent.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(traceevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(traceevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(traceevent.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(traceevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(traceevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(traceevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(traceevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(traceevent.FieldHintsUsed, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{traceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TraceEventUpdateOne is the builder for updating a single TraceEvent entity.
type TraceEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TraceEventMutation
}

// SetSessionKey sets the "session_key" field.
func (_u *TraceEventUpdateOne) SetSessionKey(v string) *TraceEventUpdateOne {
	_u.mutation.SetSessionKey(v)
	return _u
}

// SetNillableSessionKey sets the "session_key" field if the given value is not nil.
func (_u *TraceEventUpdateOne) SetNillableSessionKey(v *string) *TraceEventUpdateOne {
	if v != nil {
		_u.SetSessionKey(*v)
	}
	return _u
}

// SetStepCode sets the "step_code" field.
func (_u *TraceEventUpdateOne) SetStepCode(v string) *TraceEventUpdateOne {
	_u.mutation.SetStepCode(v)
	return _u
}

// SetNillableStepCode sets the "step_code" field if the given value is not nil.
func (_u *TraceEventUpdateOne) SetNillableStepCode(v *string) *TraceEventUpdateOne {
	if v != nil {
		_u.SetStepCode(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *TraceEventUpdateOne) SetLabel(v string) *TraceEventUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *TraceEventUpdateOne) SetNillableLabel(v *string) *TraceEventUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TraceEventUpdateOne) SetKind(v string) *TraceEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TraceEventUpdateOne) SetNillableKind(v *string) *TraceEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *TraceEventUpdateOne) SetPrompt(v string) *TraceEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *TraceEventUpdateOne) SetNillablePrompt(v *string) *TraceEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *TraceEventUpdateOne) SetResponse(v string) *TraceEventUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *TraceEventUpdateOne) SetNillableResponse(v *string) *TraceEventUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *TraceEventUpdateOne) SetFeedback(v string) *TraceEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *TraceEventUpdateOne) SetNillableFeedback(v *string) *TraceEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *TraceEventUpdateOne) SetAttempt(v int) *TraceEventUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *TraceEventUpdateOne) SetNillableAttempt(v *int) *TraceEventUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *TraceEventUpdateOne) AddAttempt(v int) *TraceEventUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *TraceEventUpdateOne) SetHintsUsed(v int) *TraceEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *TraceEventUpdateOne) SetNillableHintsUsed(v *int) *TraceEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *TraceEventUpdateOne) AddHintsUsed(v int) *TraceEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// Mutation returns the TraceEventMutation object of the builder.
func (_u *TraceEventUpdateOne) Mutation() *TraceEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TraceEventUpdate builder.
func (_u *TraceEventUpdateOne) Where(ps ...predicate.TraceEvent) *TraceEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TraceEventUpdateOne) Select(field string, fields ...string) *TraceEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TraceEvent entity.
func (_u *TraceEventUpdateOne) Save(ctx context.Context) (*TraceEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TraceEventUpdateOne) SaveX(ctx context.Context) *TraceEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TraceEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TraceEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TraceEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionKey(); ok {
		if err := traceevent.SessionKeyValidator(v); err != nil {
			return &ValidationError{Name: "session_key", err: fmt.Errorf(`ent: validator failed for field "TraceEvent.session_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepCode(); ok {
		if err := traceevent.StepCodeValidator(v); err != nil {
			return &ValidationError{Name: "step_code", err: fmt.Errorf(`ent: validator failed for field "TraceEvent.step_code": %w`, err)}
		}
	}
	return nil
}

func (_u *TraceEventUpdateOne) sqlSave(ctx context.Context) (_node *TraceEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(traceevent.Table, traceevent.Columns, sqlgraph.NewFieldSpec(traceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TraceEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, traceevent.FieldID)
		for _, f := range fields {
			if !traceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != traceevent.FieldID {
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
	if value, ok := _u.mutation.SessionKey(); ok {
		_spec.SetField(traceevent.FieldSessionKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepCode(); ok {
		_spec.SetField(traceevent.FieldStepCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(traceevent.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(traceevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(traceevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(traceevent.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(traceevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(traceevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(traceevent.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(traceevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(traceevent.FieldHintsUsed, field.TypeInt, value)
	}
	_node = &TraceEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{traceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
