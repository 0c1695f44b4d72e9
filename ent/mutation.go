// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/aulalab/aula/ent/llmrequestevent"
	"github.com/aulalab/aula/ent/predicate"
	"github.com/aulalab/aula/ent/sessionrecord"
	"github.com/aulalab/aula/ent/traceevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeSessionRecord   = "SessionRecord"
	TypeTraceEvent      = "TraceEvent"
)

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cost_cents       *int
	addcost_cents    *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCostCents sets the "cost_cents" field.
func (m *LLMRequestEventMutation) SetCostCents(i int) {
	m.cost_cents = &i
	m.addcost_cents = nil
}

// CostCents returns the value of the "cost_cents" field in the mutation.
func (m *LLMRequestEventMutation) CostCents() (r int, exists bool) {
	v := m.cost_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldCostCents returns the old "cost_cents" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldCostCents(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostCents: %w", err)
	}
	return oldValue.CostCents, nil
}

// AddCostCents adds i to the "cost_cents" field.
func (m *LLMRequestEventMutation) AddCostCents(i int) {
	if m.addcost_cents != nil {
		*m.addcost_cents += i
	} else {
		m.addcost_cents = &i
	}
}

// AddedCostCents returns the value that was added to the "cost_cents" field in this mutation.
func (m *LLMRequestEventMutation) AddedCostCents() (r int, exists bool) {
	v := m.addcost_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostCents resets all changes to the "cost_cents" field.
func (m *LLMRequestEventMutation) ResetCostCents() {
	m.cost_cents = nil
	m.addcost_cents = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.cost_cents != nil {
		fields = append(fields, llmrequestevent.FieldCostCents)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldCostCents:
		return m.CostCents()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldCostCents:
		return m.OldCostCents(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostCents(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addcost_cents != nil {
		fields = append(fields, llmrequestevent.FieldCostCents)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldCostCents:
		return m.AddedCostCents()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldCostCents:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostCents(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldCostCents:
		m.ResetCostCents()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// SessionRecordMutation represents an operation that mutates the SessionRecord nodes in the graph.
type SessionRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	session_key   *string
	state         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SessionRecord, error)
	predicates    []predicate.SessionRecord
}

var _ ent.Mutation = (*SessionRecordMutation)(nil)

// sessionrecordOption allows management of the mutation configuration using functional options.
type sessionrecordOption func(*SessionRecordMutation)

// newSessionRecordMutation creates new mutation for the SessionRecord entity.
func newSessionRecordMutation(c config, op Op, opts ...sessionrecordOption) *SessionRecordMutation {
	m := &SessionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionRecordID sets the ID field of the mutation.
func withSessionRecordID(id int) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionRecord
		)
		m.oldValue = func(ctx context.Context) (*SessionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionRecord sets the old SessionRecord of the mutation.
func withSessionRecord(node *SessionRecord) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		m.oldValue = func(context.Context) (*SessionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionKey sets the "session_key" field.
func (m *SessionRecordMutation) SetSessionKey(s string) {
	m.session_key = &s
}

// SessionKey returns the value of the "session_key" field in the mutation.
func (m *SessionRecordMutation) SessionKey() (r string, exists bool) {
	v := m.session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKey returns the old "session_key" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldSessionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKey: %w", err)
	}
	return oldValue.SessionKey, nil
}

// ResetSessionKey resets all changes to the "session_key" field.
func (m *SessionRecordMutation) ResetSessionKey() {
	m.session_key = nil
}

// SetState sets the "state" field.
func (m *SessionRecordMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *SessionRecordMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *SessionRecordMutation) ResetState() {
	m.state = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SessionRecordMutation builder.
func (m *SessionRecordMutation) Where(ps ...predicate.SessionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionRecord).
func (m *SessionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionRecordMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.session_key != nil {
		fields = append(fields, sessionrecord.FieldSessionKey)
	}
	if m.state != nil {
		fields = append(fields, sessionrecord.FieldState)
	}
	if m.updated_at != nil {
		fields = append(fields, sessionrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionrecord.FieldSessionKey:
		return m.SessionKey()
	case sessionrecord.FieldState:
		return m.State()
	case sessionrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionrecord.FieldSessionKey:
		return m.OldSessionKey(ctx)
	case sessionrecord.FieldState:
		return m.OldState(ctx)
	case sessionrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionrecord.FieldSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKey(v)
		return nil
	case sessionrecord.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case sessionrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionRecordMutation) ResetField(name string) error {
	switch name {
	case sessionrecord.FieldSessionKey:
		m.ResetSessionKey()
		return nil
	case sessionrecord.FieldState:
		m.ResetState()
		return nil
	case sessionrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord edge %s", name)
}

// TraceEventMutation represents an operation that mutates the TraceEvent nodes in the graph.
type TraceEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	session_key   *string
	step_code     *string
	label         *string
	kind          *string
	prompt        *string
	response      *string
	feedback      *string
	attempt       *int
	addattempt    *int
	hints_used    *int
	addhints_used *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TraceEvent, error)
	predicates    []predicate.TraceEvent
}

var _ ent.Mutation = (*TraceEventMutation)(nil)

// traceeventOption allows management of the mutation configuration using functional options.
type traceeventOption func(*TraceEventMutation)

// newTraceEventMutation creates new mutation for the TraceEvent entity.
func newTraceEventMutation(c config, op Op, opts ...traceeventOption) *TraceEventMutation {
	m := &TraceEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTraceEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTraceEventID sets the ID field of the mutation.
func withTraceEventID(id int) traceeventOption {
	return func(m *TraceEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TraceEvent
		)
		m.oldValue = func(ctx context.Context) (*TraceEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TraceEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTraceEvent sets the old TraceEvent of the mutation.
func withTraceEvent(node *TraceEvent) traceeventOption {
	return func(m *TraceEventMutation) {
		m.oldValue = func(context.Context) (*TraceEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TraceEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TraceEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TraceEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TraceEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TraceEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *TraceEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TraceEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TraceEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TraceEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TraceEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TraceEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TraceEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TraceEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionKey sets the "session_key" field.
func (m *TraceEventMutation) SetSessionKey(s string) {
	m.session_key = &s
}

// SessionKey returns the value of the "session_key" field in the mutation.
func (m *TraceEventMutation) SessionKey() (r string, exists bool) {
	v := m.session_key
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKey returns the old "session_key" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldSessionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKey: %w", err)
	}
	return oldValue.SessionKey, nil
}

// ResetSessionKey resets all changes to the "session_key" field.
func (m *TraceEventMutation) ResetSessionKey() {
	m.session_key = nil
}

// SetStepCode sets the "step_code" field.
func (m *TraceEventMutation) SetStepCode(s string) {
	m.step_code = &s
}

// StepCode returns the value of the "step_code" field in the mutation.
func (m *TraceEventMutation) StepCode() (r string, exists bool) {
	v := m.step_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStepCode returns the old "step_code" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldStepCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepCode: %w", err)
	}
	return oldValue.StepCode, nil
}

// ResetStepCode resets all changes to the "step_code" field.
func (m *TraceEventMutation) ResetStepCode() {
	m.step_code = nil
}

// SetLabel sets the "label" field.
func (m *TraceEventMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *TraceEventMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *TraceEventMutation) ResetLabel() {
	m.label = nil
}

// SetKind sets the "kind" field.
func (m *TraceEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TraceEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TraceEventMutation) ResetKind() {
	m.kind = nil
}

// SetPrompt sets the "prompt" field.
func (m *TraceEventMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TraceEventMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TraceEventMutation) ResetPrompt() {
	m.prompt = nil
}

// SetResponse sets the "response" field.
func (m *TraceEventMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *TraceEventMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ResetResponse resets all changes to the "response" field.
func (m *TraceEventMutation) ResetResponse() {
	m.response = nil
}

// SetFeedback sets the "feedback" field.
func (m *TraceEventMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *TraceEventMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *TraceEventMutation) ResetFeedback() {
	m.feedback = nil
}

// SetAttempt sets the "attempt" field.
func (m *TraceEventMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *TraceEventMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *TraceEventMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *TraceEventMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *TraceEventMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *TraceEventMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *TraceEventMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the TraceEvent entity.
// If the TraceEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceEventMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *TraceEventMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *TraceEventMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *TraceEventMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// Where appends a list predicates to the TraceEventMutation builder.
func (m *TraceEventMutation) Where(ps ...predicate.TraceEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TraceEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TraceEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TraceEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TraceEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TraceEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TraceEvent).
func (m *TraceEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TraceEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, traceevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, traceevent.FieldTimestamp)
	}
	if m.session_key != nil {
		fields = append(fields, traceevent.FieldSessionKey)
	}
	if m.step_code != nil {
		fields = append(fields, traceevent.FieldStepCode)
	}
	if m.label != nil {
		fields = append(fields, traceevent.FieldLabel)
	}
	if m.kind != nil {
		fields = append(fields, traceevent.FieldKind)
	}
	if m.prompt != nil {
		fields = append(fields, traceevent.FieldPrompt)
	}
	if m.response != nil {
		fields = append(fields, traceevent.FieldResponse)
	}
	if m.feedback != nil {
		fields = append(fields, traceevent.FieldFeedback)
	}
	if m.attempt != nil {
		fields = append(fields, traceevent.FieldAttempt)
	}
	if m.hints_used != nil {
		fields = append(fields, traceevent.FieldHintsUsed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TraceEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case traceevent.FieldSequence:
		return m.Sequence()
	case traceevent.FieldTimestamp:
		return m.Timestamp()
	case traceevent.FieldSessionKey:
		return m.SessionKey()
	case traceevent.FieldStepCode:
		return m.StepCode()
	case traceevent.FieldLabel:
		return m.Label()
	case traceevent.FieldKind:
		return m.Kind()
	case traceevent.FieldPrompt:
		return m.Prompt()
	case traceevent.FieldResponse:
		return m.Response()
	case traceevent.FieldFeedback:
		return m.Feedback()
	case traceevent.FieldAttempt:
		return m.Attempt()
	case traceevent.FieldHintsUsed:
		return m.HintsUsed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TraceEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case traceevent.FieldSequence:
		return m.OldSequence(ctx)
	case traceevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case traceevent.FieldSessionKey:
		return m.OldSessionKey(ctx)
	case traceevent.FieldStepCode:
		return m.OldStepCode(ctx)
	case traceevent.FieldLabel:
		return m.OldLabel(ctx)
	case traceevent.FieldKind:
		return m.OldKind(ctx)
	case traceevent.FieldPrompt:
		return m.OldPrompt(ctx)
	case traceevent.FieldResponse:
		return m.OldResponse(ctx)
	case traceevent.FieldFeedback:
		return m.OldFeedback(ctx)
	case traceevent.FieldAttempt:
		return m.OldAttempt(ctx)
	case traceevent.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	}
	return nil, fmt.Errorf("unknown TraceEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TraceEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case traceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case traceevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case traceevent.FieldSessionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKey(v)
		return nil
	case traceevent.FieldStepCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepCode(v)
		return nil
	case traceevent.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case traceevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case traceevent.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case traceevent.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case traceevent.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case traceevent.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case traceevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown TraceEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TraceEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, traceevent.FieldSequence)
	}
	if m.addattempt != nil {
		fields = append(fields, traceevent.FieldAttempt)
	}
	if m.addhints_used != nil {
		fields = append(fields, traceevent.FieldHintsUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TraceEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case traceevent.FieldSequence:
		return m.AddedSequence()
	case traceevent.FieldAttempt:
		return m.AddedAttempt()
	case traceevent.FieldHintsUsed:
		return m.AddedHintsUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TraceEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case traceevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case traceevent.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case traceevent.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown TraceEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TraceEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TraceEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TraceEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TraceEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TraceEventMutation) ResetField(name string) error {
	switch name {
	case traceevent.FieldSequence:
		m.ResetSequence()
		return nil
	case traceevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case traceevent.FieldSessionKey:
		m.ResetSessionKey()
		return nil
	case traceevent.FieldStepCode:
		m.ResetStepCode()
		return nil
	case traceevent.FieldLabel:
		m.ResetLabel()
		return nil
	case traceevent.FieldKind:
		m.ResetKind()
		return nil
	case traceevent.FieldPrompt:
		m.ResetPrompt()
		return nil
	case traceevent.FieldResponse:
		m.ResetResponse()
		return nil
	case traceevent.FieldFeedback:
		m.ResetFeedback()
		return nil
	case traceevent.FieldAttempt:
		m.ResetAttempt()
		return nil
	case traceevent.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	}
	return fmt.Errorf("unknown TraceEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TraceEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TraceEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TraceEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TraceEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TraceEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TraceEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TraceEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TraceEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TraceEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TraceEvent edge %s", name)
}
