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
	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/agent"
	"github.com/rsubramani/policy-tracker/gen/ent/customer"
	"github.com/rsubramani/policy-tracker/gen/ent/documentlog"
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
	"github.com/rsubramani/policy-tracker/gen/ent/predicate"
	"github.com/rsubramani/policy-tracker/gen/ent/premiumrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent           = "Agent"
	TypeCustomer        = "Customer"
	TypeDocumentLog     = "DocumentLog"
	TypeInsurancePolicy = "InsurancePolicy"
	TypePremiumRecord   = "PremiumRecord"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	code          *string
	name          *string
	branch_code   *string
	relationship  *string
	phone         *string
	email         *string
	active        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Agent, error)
	predicates    []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id int) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *AgentMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *AgentMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *AgentMutation) ResetCode() {
	m.code = nil
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetBranchCode sets the "branch_code" field.
func (m *AgentMutation) SetBranchCode(s string) {
	m.branch_code = &s
}

// BranchCode returns the value of the "branch_code" field in the mutation.
func (m *AgentMutation) BranchCode() (r string, exists bool) {
	v := m.branch_code
	if v == nil {
		return
	}
	return *v, true
}

// OldBranchCode returns the old "branch_code" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldBranchCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBranchCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBranchCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBranchCode: %w", err)
	}
	return oldValue.BranchCode, nil
}

// ClearBranchCode clears the value of the "branch_code" field.
func (m *AgentMutation) ClearBranchCode() {
	m.branch_code = nil
	m.clearedFields[agent.FieldBranchCode] = struct{}{}
}

// BranchCodeCleared returns if the "branch_code" field was cleared in this mutation.
func (m *AgentMutation) BranchCodeCleared() bool {
	_, ok := m.clearedFields[agent.FieldBranchCode]
	return ok
}

// ResetBranchCode resets all changes to the "branch_code" field.
func (m *AgentMutation) ResetBranchCode() {
	m.branch_code = nil
	delete(m.clearedFields, agent.FieldBranchCode)
}

// SetRelationship sets the "relationship" field.
func (m *AgentMutation) SetRelationship(s string) {
	m.relationship = &s
}

// Relationship returns the value of the "relationship" field in the mutation.
func (m *AgentMutation) Relationship() (r string, exists bool) {
	v := m.relationship
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationship returns the old "relationship" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRelationship(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationship: %w", err)
	}
	return oldValue.Relationship, nil
}

// ClearRelationship clears the value of the "relationship" field.
func (m *AgentMutation) ClearRelationship() {
	m.relationship = nil
	m.clearedFields[agent.FieldRelationship] = struct{}{}
}

// RelationshipCleared returns if the "relationship" field was cleared in this mutation.
func (m *AgentMutation) RelationshipCleared() bool {
	_, ok := m.clearedFields[agent.FieldRelationship]
	return ok
}

// ResetRelationship resets all changes to the "relationship" field.
func (m *AgentMutation) ResetRelationship() {
	m.relationship = nil
	delete(m.clearedFields, agent.FieldRelationship)
}

// SetPhone sets the "phone" field.
func (m *AgentMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *AgentMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *AgentMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[agent.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *AgentMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[agent.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *AgentMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, agent.FieldPhone)
}

// SetEmail sets the "email" field.
func (m *AgentMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AgentMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *AgentMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[agent.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *AgentMutation) EmailCleared() bool {
	_, ok := m.clearedFields[agent.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *AgentMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, agent.FieldEmail)
}

// SetActive sets the "active" field.
func (m *AgentMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *AgentMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *AgentMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.code != nil {
		fields = append(fields, agent.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.branch_code != nil {
		fields = append(fields, agent.FieldBranchCode)
	}
	if m.relationship != nil {
		fields = append(fields, agent.FieldRelationship)
	}
	if m.phone != nil {
		fields = append(fields, agent.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, agent.FieldEmail)
	}
	if m.active != nil {
		fields = append(fields, agent.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldCode:
		return m.Code()
	case agent.FieldName:
		return m.Name()
	case agent.FieldBranchCode:
		return m.BranchCode()
	case agent.FieldRelationship:
		return m.Relationship()
	case agent.FieldPhone:
		return m.Phone()
	case agent.FieldEmail:
		return m.Email()
	case agent.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldCode:
		return m.OldCode(ctx)
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldBranchCode:
		return m.OldBranchCode(ctx)
	case agent.FieldRelationship:
		return m.OldRelationship(ctx)
	case agent.FieldPhone:
		return m.OldPhone(ctx)
	case agent.FieldEmail:
		return m.OldEmail(ctx)
	case agent.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldBranchCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBranchCode(v)
		return nil
	case agent.FieldRelationship:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationship(v)
		return nil
	case agent.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case agent.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case agent.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldBranchCode) {
		fields = append(fields, agent.FieldBranchCode)
	}
	if m.FieldCleared(agent.FieldRelationship) {
		fields = append(fields, agent.FieldRelationship)
	}
	if m.FieldCleared(agent.FieldPhone) {
		fields = append(fields, agent.FieldPhone)
	}
	if m.FieldCleared(agent.FieldEmail) {
		fields = append(fields, agent.FieldEmail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldBranchCode:
		m.ClearBranchCode()
		return nil
	case agent.FieldRelationship:
		m.ClearRelationship()
		return nil
	case agent.FieldPhone:
		m.ClearPhone()
		return nil
	case agent.FieldEmail:
		m.ClearEmail()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldCode:
		m.ResetCode()
		return nil
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldBranchCode:
		m.ResetBranchCode()
		return nil
	case agent.FieldRelationship:
		m.ResetRelationship()
		return nil
	case agent.FieldPhone:
		m.ResetPhone()
		return nil
	case agent.FieldEmail:
		m.ResetEmail()
		return nil
	case agent.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// CustomerMutation represents an operation that mutates the Customer nodes in the graph.
type CustomerMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	phone             *string
	alt_phone         *string
	email             *string
	national_id       *string
	date_of_birth     *time.Time
	address           *string
	notes             *string
	extraction_method *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	policies          map[uuid.UUID]struct{}
	removedpolicies   map[uuid.UUID]struct{}
	clearedpolicies   bool
	done              bool
	oldValue          func(context.Context) (*Customer, error)
	predicates        []predicate.Customer
}

var _ ent.Mutation = (*CustomerMutation)(nil)

// customerOption allows management of the mutation configuration using functional options.
type customerOption func(*CustomerMutation)

// newCustomerMutation creates new mutation for the Customer entity.
func newCustomerMutation(c config, op Op, opts ...customerOption) *CustomerMutation {
	m := &CustomerMutation{
		config:        c,
		op:            op,
		typ:           TypeCustomer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCustomerID sets the ID field of the mutation.
func withCustomerID(id uuid.UUID) customerOption {
	return func(m *CustomerMutation) {
		var (
			err   error
			once  sync.Once
			value *Customer
		)
		m.oldValue = func(ctx context.Context) (*Customer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Customer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCustomer sets the old Customer of the mutation.
func withCustomer(node *Customer) customerOption {
	return func(m *CustomerMutation) {
		m.oldValue = func(context.Context) (*Customer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CustomerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CustomerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Customer entities.
func (m *CustomerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CustomerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CustomerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Customer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CustomerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CustomerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CustomerMutation) ResetName() {
	m.name = nil
}

// SetPhone sets the "phone" field.
func (m *CustomerMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *CustomerMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *CustomerMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[customer.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *CustomerMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[customer.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *CustomerMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, customer.FieldPhone)
}

// SetAltPhone sets the "alt_phone" field.
func (m *CustomerMutation) SetAltPhone(s string) {
	m.alt_phone = &s
}

// AltPhone returns the value of the "alt_phone" field in the mutation.
func (m *CustomerMutation) AltPhone() (r string, exists bool) {
	v := m.alt_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldAltPhone returns the old "alt_phone" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldAltPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAltPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAltPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAltPhone: %w", err)
	}
	return oldValue.AltPhone, nil
}

// ClearAltPhone clears the value of the "alt_phone" field.
func (m *CustomerMutation) ClearAltPhone() {
	m.alt_phone = nil
	m.clearedFields[customer.FieldAltPhone] = struct{}{}
}

// AltPhoneCleared returns if the "alt_phone" field was cleared in this mutation.
func (m *CustomerMutation) AltPhoneCleared() bool {
	_, ok := m.clearedFields[customer.FieldAltPhone]
	return ok
}

// ResetAltPhone resets all changes to the "alt_phone" field.
func (m *CustomerMutation) ResetAltPhone() {
	m.alt_phone = nil
	delete(m.clearedFields, customer.FieldAltPhone)
}

// SetEmail sets the "email" field.
func (m *CustomerMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CustomerMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *CustomerMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[customer.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *CustomerMutation) EmailCleared() bool {
	_, ok := m.clearedFields[customer.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *CustomerMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, customer.FieldEmail)
}

// SetNationalID sets the "national_id" field.
func (m *CustomerMutation) SetNationalID(s string) {
	m.national_id = &s
}

// NationalID returns the value of the "national_id" field in the mutation.
func (m *CustomerMutation) NationalID() (r string, exists bool) {
	v := m.national_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNationalID returns the old "national_id" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldNationalID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationalID: %w", err)
	}
	return oldValue.NationalID, nil
}

// ClearNationalID clears the value of the "national_id" field.
func (m *CustomerMutation) ClearNationalID() {
	m.national_id = nil
	m.clearedFields[customer.FieldNationalID] = struct{}{}
}

// NationalIDCleared returns if the "national_id" field was cleared in this mutation.
func (m *CustomerMutation) NationalIDCleared() bool {
	_, ok := m.clearedFields[customer.FieldNationalID]
	return ok
}

// ResetNationalID resets all changes to the "national_id" field.
func (m *CustomerMutation) ResetNationalID() {
	m.national_id = nil
	delete(m.clearedFields, customer.FieldNationalID)
}

// SetDateOfBirth sets the "date_of_birth" field.
func (m *CustomerMutation) SetDateOfBirth(t time.Time) {
	m.date_of_birth = &t
}

// DateOfBirth returns the value of the "date_of_birth" field in the mutation.
func (m *CustomerMutation) DateOfBirth() (r time.Time, exists bool) {
	v := m.date_of_birth
	if v == nil {
		return
	}
	return *v, true
}

// OldDateOfBirth returns the old "date_of_birth" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldDateOfBirth(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateOfBirth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateOfBirth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateOfBirth: %w", err)
	}
	return oldValue.DateOfBirth, nil
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (m *CustomerMutation) ClearDateOfBirth() {
	m.date_of_birth = nil
	m.clearedFields[customer.FieldDateOfBirth] = struct{}{}
}

// DateOfBirthCleared returns if the "date_of_birth" field was cleared in this mutation.
func (m *CustomerMutation) DateOfBirthCleared() bool {
	_, ok := m.clearedFields[customer.FieldDateOfBirth]
	return ok
}

// ResetDateOfBirth resets all changes to the "date_of_birth" field.
func (m *CustomerMutation) ResetDateOfBirth() {
	m.date_of_birth = nil
	delete(m.clearedFields, customer.FieldDateOfBirth)
}

// SetAddress sets the "address" field.
func (m *CustomerMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *CustomerMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *CustomerMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[customer.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *CustomerMutation) AddressCleared() bool {
	_, ok := m.clearedFields[customer.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *CustomerMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, customer.FieldAddress)
}

// SetNotes sets the "notes" field.
func (m *CustomerMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *CustomerMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *CustomerMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[customer.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *CustomerMutation) NotesCleared() bool {
	_, ok := m.clearedFields[customer.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *CustomerMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, customer.FieldNotes)
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *CustomerMutation) SetExtractionMethod(s string) {
	m.extraction_method = &s
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *CustomerMutation) ExtractionMethod() (r string, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldExtractionMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *CustomerMutation) ResetExtractionMethod() {
	m.extraction_method = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CustomerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CustomerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CustomerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CustomerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CustomerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CustomerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPolicyIDs adds the "policies" edge to the InsurancePolicy entity by ids.
func (m *CustomerMutation) AddPolicyIDs(ids ...uuid.UUID) {
	if m.policies == nil {
		m.policies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.policies[ids[i]] = struct{}{}
	}
}

// ClearPolicies clears the "policies" edge to the InsurancePolicy entity.
func (m *CustomerMutation) ClearPolicies() {
	m.clearedpolicies = true
}

// PoliciesCleared reports if the "policies" edge to the InsurancePolicy entity was cleared.
func (m *CustomerMutation) PoliciesCleared() bool {
	return m.clearedpolicies
}

// RemovePolicyIDs removes the "policies" edge to the InsurancePolicy entity by IDs.
func (m *CustomerMutation) RemovePolicyIDs(ids ...uuid.UUID) {
	if m.removedpolicies == nil {
		m.removedpolicies = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.policies, ids[i])
		m.removedpolicies[ids[i]] = struct{}{}
	}
}

// RemovedPolicies returns the removed IDs of the "policies" edge to the InsurancePolicy entity.
func (m *CustomerMutation) RemovedPoliciesIDs() (ids []uuid.UUID) {
	for id := range m.removedpolicies {
		ids = append(ids, id)
	}
	return
}

// PoliciesIDs returns the "policies" edge IDs in the mutation.
func (m *CustomerMutation) PoliciesIDs() (ids []uuid.UUID) {
	for id := range m.policies {
		ids = append(ids, id)
	}
	return
}

// ResetPolicies resets all changes to the "policies" edge.
func (m *CustomerMutation) ResetPolicies() {
	m.policies = nil
	m.clearedpolicies = false
	m.removedpolicies = nil
}

// Where appends a list predicates to the CustomerMutation builder.
func (m *CustomerMutation) Where(ps ...predicate.Customer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CustomerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CustomerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Customer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CustomerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CustomerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Customer).
func (m *CustomerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CustomerMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, customer.FieldName)
	}
	if m.phone != nil {
		fields = append(fields, customer.FieldPhone)
	}
	if m.alt_phone != nil {
		fields = append(fields, customer.FieldAltPhone)
	}
	if m.email != nil {
		fields = append(fields, customer.FieldEmail)
	}
	if m.national_id != nil {
		fields = append(fields, customer.FieldNationalID)
	}
	if m.date_of_birth != nil {
		fields = append(fields, customer.FieldDateOfBirth)
	}
	if m.address != nil {
		fields = append(fields, customer.FieldAddress)
	}
	if m.notes != nil {
		fields = append(fields, customer.FieldNotes)
	}
	if m.extraction_method != nil {
		fields = append(fields, customer.FieldExtractionMethod)
	}
	if m.created_at != nil {
		fields = append(fields, customer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, customer.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CustomerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case customer.FieldName:
		return m.Name()
	case customer.FieldPhone:
		return m.Phone()
	case customer.FieldAltPhone:
		return m.AltPhone()
	case customer.FieldEmail:
		return m.Email()
	case customer.FieldNationalID:
		return m.NationalID()
	case customer.FieldDateOfBirth:
		return m.DateOfBirth()
	case customer.FieldAddress:
		return m.Address()
	case customer.FieldNotes:
		return m.Notes()
	case customer.FieldExtractionMethod:
		return m.ExtractionMethod()
	case customer.FieldCreatedAt:
		return m.CreatedAt()
	case customer.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CustomerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case customer.FieldName:
		return m.OldName(ctx)
	case customer.FieldPhone:
		return m.OldPhone(ctx)
	case customer.FieldAltPhone:
		return m.OldAltPhone(ctx)
	case customer.FieldEmail:
		return m.OldEmail(ctx)
	case customer.FieldNationalID:
		return m.OldNationalID(ctx)
	case customer.FieldDateOfBirth:
		return m.OldDateOfBirth(ctx)
	case customer.FieldAddress:
		return m.OldAddress(ctx)
	case customer.FieldNotes:
		return m.OldNotes(ctx)
	case customer.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case customer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case customer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Customer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case customer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case customer.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case customer.FieldAltPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAltPhone(v)
		return nil
	case customer.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case customer.FieldNationalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationalID(v)
		return nil
	case customer.FieldDateOfBirth:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateOfBirth(v)
		return nil
	case customer.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case customer.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case customer.FieldExtractionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case customer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case customer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Customer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CustomerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CustomerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Customer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CustomerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(customer.FieldPhone) {
		fields = append(fields, customer.FieldPhone)
	}
	if m.FieldCleared(customer.FieldAltPhone) {
		fields = append(fields, customer.FieldAltPhone)
	}
	if m.FieldCleared(customer.FieldEmail) {
		fields = append(fields, customer.FieldEmail)
	}
	if m.FieldCleared(customer.FieldNationalID) {
		fields = append(fields, customer.FieldNationalID)
	}
	if m.FieldCleared(customer.FieldDateOfBirth) {
		fields = append(fields, customer.FieldDateOfBirth)
	}
	if m.FieldCleared(customer.FieldAddress) {
		fields = append(fields, customer.FieldAddress)
	}
	if m.FieldCleared(customer.FieldNotes) {
		fields = append(fields, customer.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CustomerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CustomerMutation) ClearField(name string) error {
	switch name {
	case customer.FieldPhone:
		m.ClearPhone()
		return nil
	case customer.FieldAltPhone:
		m.ClearAltPhone()
		return nil
	case customer.FieldEmail:
		m.ClearEmail()
		return nil
	case customer.FieldNationalID:
		m.ClearNationalID()
		return nil
	case customer.FieldDateOfBirth:
		m.ClearDateOfBirth()
		return nil
	case customer.FieldAddress:
		m.ClearAddress()
		return nil
	case customer.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown Customer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CustomerMutation) ResetField(name string) error {
	switch name {
	case customer.FieldName:
		m.ResetName()
		return nil
	case customer.FieldPhone:
		m.ResetPhone()
		return nil
	case customer.FieldAltPhone:
		m.ResetAltPhone()
		return nil
	case customer.FieldEmail:
		m.ResetEmail()
		return nil
	case customer.FieldNationalID:
		m.ResetNationalID()
		return nil
	case customer.FieldDateOfBirth:
		m.ResetDateOfBirth()
		return nil
	case customer.FieldAddress:
		m.ResetAddress()
		return nil
	case customer.FieldNotes:
		m.ResetNotes()
		return nil
	case customer.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case customer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case customer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Customer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CustomerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.policies != nil {
		edges = append(edges, customer.EdgePolicies)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CustomerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case customer.EdgePolicies:
		ids := make([]ent.Value, 0, len(m.policies))
		for id := range m.policies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CustomerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedpolicies != nil {
		edges = append(edges, customer.EdgePolicies)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CustomerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case customer.EdgePolicies:
		ids := make([]ent.Value, 0, len(m.removedpolicies))
		for id := range m.removedpolicies {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CustomerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpolicies {
		edges = append(edges, customer.EdgePolicies)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CustomerMutation) EdgeCleared(name string) bool {
	switch name {
	case customer.EdgePolicies:
		return m.clearedpolicies
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CustomerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Customer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CustomerMutation) ResetEdge(name string) error {
	switch name {
	case customer.EdgePolicies:
		m.ResetPolicies()
		return nil
	}
	return fmt.Errorf("unknown Customer edge %s", name)
}

// DocumentLogMutation represents an operation that mutates the DocumentLog nodes in the graph.
type DocumentLogMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	lookup_key         *string
	filename           *string
	document_type      *string
	content_hash       *string
	hash_algo          *string
	hash_prefix_len    *int
	addhash_prefix_len *int
	processed_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*DocumentLog, error)
	predicates         []predicate.DocumentLog
}

var _ ent.Mutation = (*DocumentLogMutation)(nil)

// documentlogOption allows management of the mutation configuration using functional options.
type documentlogOption func(*DocumentLogMutation)

// newDocumentLogMutation creates new mutation for the DocumentLog entity.
func newDocumentLogMutation(c config, op Op, opts ...documentlogOption) *DocumentLogMutation {
	m := &DocumentLogMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentLogID sets the ID field of the mutation.
func withDocumentLogID(id uuid.UUID) documentlogOption {
	return func(m *DocumentLogMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentLog
		)
		m.oldValue = func(ctx context.Context) (*DocumentLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentLog sets the old DocumentLog of the mutation.
func withDocumentLog(node *DocumentLog) documentlogOption {
	return func(m *DocumentLogMutation) {
		m.oldValue = func(context.Context) (*DocumentLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentLog entities.
func (m *DocumentLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLookupKey sets the "lookup_key" field.
func (m *DocumentLogMutation) SetLookupKey(s string) {
	m.lookup_key = &s
}

// LookupKey returns the value of the "lookup_key" field in the mutation.
func (m *DocumentLogMutation) LookupKey() (r string, exists bool) {
	v := m.lookup_key
	if v == nil {
		return
	}
	return *v, true
}

// OldLookupKey returns the old "lookup_key" field's value of the DocumentLog entity.
// If the DocumentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLogMutation) OldLookupKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLookupKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLookupKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLookupKey: %w", err)
	}
	return oldValue.LookupKey, nil
}

// ResetLookupKey resets all changes to the "lookup_key" field.
func (m *DocumentLogMutation) ResetLookupKey() {
	m.lookup_key = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentLogMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentLogMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the DocumentLog entity.
// If the DocumentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLogMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentLogMutation) ResetFilename() {
	m.filename = nil
}

// SetDocumentType sets the "document_type" field.
func (m *DocumentLogMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *DocumentLogMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the DocumentLog entity.
// If the DocumentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLogMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *DocumentLogMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentLogMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentLogMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the DocumentLog entity.
// If the DocumentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLogMutation) OldContentHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *DocumentLogMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[documentlog.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *DocumentLogMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[documentlog.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentLogMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, documentlog.FieldContentHash)
}

// SetHashAlgo sets the "hash_algo" field.
func (m *DocumentLogMutation) SetHashAlgo(s string) {
	m.hash_algo = &s
}

// HashAlgo returns the value of the "hash_algo" field in the mutation.
func (m *DocumentLogMutation) HashAlgo() (r string, exists bool) {
	v := m.hash_algo
	if v == nil {
		return
	}
	return *v, true
}

// OldHashAlgo returns the old "hash_algo" field's value of the DocumentLog entity.
// If the DocumentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLogMutation) OldHashAlgo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashAlgo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashAlgo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashAlgo: %w", err)
	}
	return oldValue.HashAlgo, nil
}

// ClearHashAlgo clears the value of the "hash_algo" field.
func (m *DocumentLogMutation) ClearHashAlgo() {
	m.hash_algo = nil
	m.clearedFields[documentlog.FieldHashAlgo] = struct{}{}
}

// HashAlgoCleared returns if the "hash_algo" field was cleared in this mutation.
func (m *DocumentLogMutation) HashAlgoCleared() bool {
	_, ok := m.clearedFields[documentlog.FieldHashAlgo]
	return ok
}

// ResetHashAlgo resets all changes to the "hash_algo" field.
func (m *DocumentLogMutation) ResetHashAlgo() {
	m.hash_algo = nil
	delete(m.clearedFields, documentlog.FieldHashAlgo)
}

// SetHashPrefixLen sets the "hash_prefix_len" field.
func (m *DocumentLogMutation) SetHashPrefixLen(i int) {
	m.hash_prefix_len = &i
	m.addhash_prefix_len = nil
}

// HashPrefixLen returns the value of the "hash_prefix_len" field in the mutation.
func (m *DocumentLogMutation) HashPrefixLen() (r int, exists bool) {
	v := m.hash_prefix_len
	if v == nil {
		return
	}
	return *v, true
}

// OldHashPrefixLen returns the old "hash_prefix_len" field's value of the DocumentLog entity.
// If the DocumentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLogMutation) OldHashPrefixLen(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashPrefixLen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashPrefixLen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashPrefixLen: %w", err)
	}
	return oldValue.HashPrefixLen, nil
}

// AddHashPrefixLen adds i to the "hash_prefix_len" field.
func (m *DocumentLogMutation) AddHashPrefixLen(i int) {
	if m.addhash_prefix_len != nil {
		*m.addhash_prefix_len += i
	} else {
		m.addhash_prefix_len = &i
	}
}

// AddedHashPrefixLen returns the value that was added to the "hash_prefix_len" field in this mutation.
func (m *DocumentLogMutation) AddedHashPrefixLen() (r int, exists bool) {
	v := m.addhash_prefix_len
	if v == nil {
		return
	}
	return *v, true
}

// ClearHashPrefixLen clears the value of the "hash_prefix_len" field.
func (m *DocumentLogMutation) ClearHashPrefixLen() {
	m.hash_prefix_len = nil
	m.addhash_prefix_len = nil
	m.clearedFields[documentlog.FieldHashPrefixLen] = struct{}{}
}

// HashPrefixLenCleared returns if the "hash_prefix_len" field was cleared in this mutation.
func (m *DocumentLogMutation) HashPrefixLenCleared() bool {
	_, ok := m.clearedFields[documentlog.FieldHashPrefixLen]
	return ok
}

// ResetHashPrefixLen resets all changes to the "hash_prefix_len" field.
func (m *DocumentLogMutation) ResetHashPrefixLen() {
	m.hash_prefix_len = nil
	m.addhash_prefix_len = nil
	delete(m.clearedFields, documentlog.FieldHashPrefixLen)
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentLogMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentLogMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the DocumentLog entity.
// If the DocumentLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentLogMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentLogMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// Where appends a list predicates to the DocumentLogMutation builder.
func (m *DocumentLogMutation) Where(ps ...predicate.DocumentLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentLog).
func (m *DocumentLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.lookup_key != nil {
		fields = append(fields, documentlog.FieldLookupKey)
	}
	if m.filename != nil {
		fields = append(fields, documentlog.FieldFilename)
	}
	if m.document_type != nil {
		fields = append(fields, documentlog.FieldDocumentType)
	}
	if m.content_hash != nil {
		fields = append(fields, documentlog.FieldContentHash)
	}
	if m.hash_algo != nil {
		fields = append(fields, documentlog.FieldHashAlgo)
	}
	if m.hash_prefix_len != nil {
		fields = append(fields, documentlog.FieldHashPrefixLen)
	}
	if m.processed_at != nil {
		fields = append(fields, documentlog.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentlog.FieldLookupKey:
		return m.LookupKey()
	case documentlog.FieldFilename:
		return m.Filename()
	case documentlog.FieldDocumentType:
		return m.DocumentType()
	case documentlog.FieldContentHash:
		return m.ContentHash()
	case documentlog.FieldHashAlgo:
		return m.HashAlgo()
	case documentlog.FieldHashPrefixLen:
		return m.HashPrefixLen()
	case documentlog.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentlog.FieldLookupKey:
		return m.OldLookupKey(ctx)
	case documentlog.FieldFilename:
		return m.OldFilename(ctx)
	case documentlog.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case documentlog.FieldContentHash:
		return m.OldContentHash(ctx)
	case documentlog.FieldHashAlgo:
		return m.OldHashAlgo(ctx)
	case documentlog.FieldHashPrefixLen:
		return m.OldHashPrefixLen(ctx)
	case documentlog.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentlog.FieldLookupKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLookupKey(v)
		return nil
	case documentlog.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case documentlog.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case documentlog.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case documentlog.FieldHashAlgo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashAlgo(v)
		return nil
	case documentlog.FieldHashPrefixLen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashPrefixLen(v)
		return nil
	case documentlog.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentLogMutation) AddedFields() []string {
	var fields []string
	if m.addhash_prefix_len != nil {
		fields = append(fields, documentlog.FieldHashPrefixLen)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentlog.FieldHashPrefixLen:
		return m.AddedHashPrefixLen()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentlog.FieldHashPrefixLen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHashPrefixLen(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentlog.FieldContentHash) {
		fields = append(fields, documentlog.FieldContentHash)
	}
	if m.FieldCleared(documentlog.FieldHashAlgo) {
		fields = append(fields, documentlog.FieldHashAlgo)
	}
	if m.FieldCleared(documentlog.FieldHashPrefixLen) {
		fields = append(fields, documentlog.FieldHashPrefixLen)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentLogMutation) ClearField(name string) error {
	switch name {
	case documentlog.FieldContentHash:
		m.ClearContentHash()
		return nil
	case documentlog.FieldHashAlgo:
		m.ClearHashAlgo()
		return nil
	case documentlog.FieldHashPrefixLen:
		m.ClearHashPrefixLen()
		return nil
	}
	return fmt.Errorf("unknown DocumentLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentLogMutation) ResetField(name string) error {
	switch name {
	case documentlog.FieldLookupKey:
		m.ResetLookupKey()
		return nil
	case documentlog.FieldFilename:
		m.ResetFilename()
		return nil
	case documentlog.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case documentlog.FieldContentHash:
		m.ResetContentHash()
		return nil
	case documentlog.FieldHashAlgo:
		m.ResetHashAlgo()
		return nil
	case documentlog.FieldHashPrefixLen:
		m.ResetHashPrefixLen()
		return nil
	case documentlog.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DocumentLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DocumentLog edge %s", name)
}

// InsurancePolicyMutation represents an operation that mutates the InsurancePolicy nodes in the graph.
type InsurancePolicyMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	policy_number          *string
	agent_code             *string
	plan_type              *string
	plan_name              *string
	commencement_date      *time.Time
	payment_mode           *string
	fup_due_date           *time.Time
	sum_assured            *float64
	addsum_assured         *float64
	premium_amount         *float64
	addpremium_amount      *float64
	policy_term            *int
	addpolicy_term         *int
	premium_paying_term    *int
	addpremium_paying_term *int
	status                 *string
	extraction_method      *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	customer               *uuid.UUID
	clearedcustomer        bool
	premium_records        map[uuid.UUID]struct{}
	removedpremium_records map[uuid.UUID]struct{}
	clearedpremium_records bool
	done                   bool
	oldValue               func(context.Context) (*InsurancePolicy, error)
	predicates             []predicate.InsurancePolicy
}

var _ ent.Mutation = (*InsurancePolicyMutation)(nil)

// insurancepolicyOption allows management of the mutation configuration using functional options.
type insurancepolicyOption func(*InsurancePolicyMutation)

// newInsurancePolicyMutation creates new mutation for the InsurancePolicy entity.
func newInsurancePolicyMutation(c config, op Op, opts ...insurancepolicyOption) *InsurancePolicyMutation {
	m := &InsurancePolicyMutation{
		config:        c,
		op:            op,
		typ:           TypeInsurancePolicy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsurancePolicyID sets the ID field of the mutation.
func withInsurancePolicyID(id uuid.UUID) insurancepolicyOption {
	return func(m *InsurancePolicyMutation) {
		var (
			err   error
			once  sync.Once
			value *InsurancePolicy
		)
		m.oldValue = func(ctx context.Context) (*InsurancePolicy, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InsurancePolicy.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsurancePolicy sets the old InsurancePolicy of the mutation.
func withInsurancePolicy(node *InsurancePolicy) insurancepolicyOption {
	return func(m *InsurancePolicyMutation) {
		m.oldValue = func(context.Context) (*InsurancePolicy, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsurancePolicyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsurancePolicyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InsurancePolicy entities.
func (m *InsurancePolicyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsurancePolicyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsurancePolicyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InsurancePolicy.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPolicyNumber sets the "policy_number" field.
func (m *InsurancePolicyMutation) SetPolicyNumber(s string) {
	m.policy_number = &s
}

// PolicyNumber returns the value of the "policy_number" field in the mutation.
func (m *InsurancePolicyMutation) PolicyNumber() (r string, exists bool) {
	v := m.policy_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyNumber returns the old "policy_number" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPolicyNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyNumber: %w", err)
	}
	return oldValue.PolicyNumber, nil
}

// ResetPolicyNumber resets all changes to the "policy_number" field.
func (m *InsurancePolicyMutation) ResetPolicyNumber() {
	m.policy_number = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *InsurancePolicyMutation) SetCustomerID(u uuid.UUID) {
	m.customer = &u
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *InsurancePolicyMutation) CustomerID() (r uuid.UUID, exists bool) {
	v := m.customer
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldCustomerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *InsurancePolicyMutation) ResetCustomerID() {
	m.customer = nil
}

// SetAgentCode sets the "agent_code" field.
func (m *InsurancePolicyMutation) SetAgentCode(s string) {
	m.agent_code = &s
}

// AgentCode returns the value of the "agent_code" field in the mutation.
func (m *InsurancePolicyMutation) AgentCode() (r string, exists bool) {
	v := m.agent_code
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentCode returns the old "agent_code" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldAgentCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentCode: %w", err)
	}
	return oldValue.AgentCode, nil
}

// ClearAgentCode clears the value of the "agent_code" field.
func (m *InsurancePolicyMutation) ClearAgentCode() {
	m.agent_code = nil
	m.clearedFields[insurancepolicy.FieldAgentCode] = struct{}{}
}

// AgentCodeCleared returns if the "agent_code" field was cleared in this mutation.
func (m *InsurancePolicyMutation) AgentCodeCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldAgentCode]
	return ok
}

// ResetAgentCode resets all changes to the "agent_code" field.
func (m *InsurancePolicyMutation) ResetAgentCode() {
	m.agent_code = nil
	delete(m.clearedFields, insurancepolicy.FieldAgentCode)
}

// SetPlanType sets the "plan_type" field.
func (m *InsurancePolicyMutation) SetPlanType(s string) {
	m.plan_type = &s
}

// PlanType returns the value of the "plan_type" field in the mutation.
func (m *InsurancePolicyMutation) PlanType() (r string, exists bool) {
	v := m.plan_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanType returns the old "plan_type" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPlanType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanType: %w", err)
	}
	return oldValue.PlanType, nil
}

// ClearPlanType clears the value of the "plan_type" field.
func (m *InsurancePolicyMutation) ClearPlanType() {
	m.plan_type = nil
	m.clearedFields[insurancepolicy.FieldPlanType] = struct{}{}
}

// PlanTypeCleared returns if the "plan_type" field was cleared in this mutation.
func (m *InsurancePolicyMutation) PlanTypeCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldPlanType]
	return ok
}

// ResetPlanType resets all changes to the "plan_type" field.
func (m *InsurancePolicyMutation) ResetPlanType() {
	m.plan_type = nil
	delete(m.clearedFields, insurancepolicy.FieldPlanType)
}

// SetPlanName sets the "plan_name" field.
func (m *InsurancePolicyMutation) SetPlanName(s string) {
	m.plan_name = &s
}

// PlanName returns the value of the "plan_name" field in the mutation.
func (m *InsurancePolicyMutation) PlanName() (r string, exists bool) {
	v := m.plan_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanName returns the old "plan_name" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPlanName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanName: %w", err)
	}
	return oldValue.PlanName, nil
}

// ClearPlanName clears the value of the "plan_name" field.
func (m *InsurancePolicyMutation) ClearPlanName() {
	m.plan_name = nil
	m.clearedFields[insurancepolicy.FieldPlanName] = struct{}{}
}

// PlanNameCleared returns if the "plan_name" field was cleared in this mutation.
func (m *InsurancePolicyMutation) PlanNameCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldPlanName]
	return ok
}

// ResetPlanName resets all changes to the "plan_name" field.
func (m *InsurancePolicyMutation) ResetPlanName() {
	m.plan_name = nil
	delete(m.clearedFields, insurancepolicy.FieldPlanName)
}

// SetCommencementDate sets the "commencement_date" field.
func (m *InsurancePolicyMutation) SetCommencementDate(t time.Time) {
	m.commencement_date = &t
}

// CommencementDate returns the value of the "commencement_date" field in the mutation.
func (m *InsurancePolicyMutation) CommencementDate() (r time.Time, exists bool) {
	v := m.commencement_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCommencementDate returns the old "commencement_date" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldCommencementDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommencementDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommencementDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommencementDate: %w", err)
	}
	return oldValue.CommencementDate, nil
}

// ClearCommencementDate clears the value of the "commencement_date" field.
func (m *InsurancePolicyMutation) ClearCommencementDate() {
	m.commencement_date = nil
	m.clearedFields[insurancepolicy.FieldCommencementDate] = struct{}{}
}

// CommencementDateCleared returns if the "commencement_date" field was cleared in this mutation.
func (m *InsurancePolicyMutation) CommencementDateCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldCommencementDate]
	return ok
}

// ResetCommencementDate resets all changes to the "commencement_date" field.
func (m *InsurancePolicyMutation) ResetCommencementDate() {
	m.commencement_date = nil
	delete(m.clearedFields, insurancepolicy.FieldCommencementDate)
}

// SetPaymentMode sets the "payment_mode" field.
func (m *InsurancePolicyMutation) SetPaymentMode(s string) {
	m.payment_mode = &s
}

// PaymentMode returns the value of the "payment_mode" field in the mutation.
func (m *InsurancePolicyMutation) PaymentMode() (r string, exists bool) {
	v := m.payment_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMode returns the old "payment_mode" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPaymentMode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMode: %w", err)
	}
	return oldValue.PaymentMode, nil
}

// ClearPaymentMode clears the value of the "payment_mode" field.
func (m *InsurancePolicyMutation) ClearPaymentMode() {
	m.payment_mode = nil
	m.clearedFields[insurancepolicy.FieldPaymentMode] = struct{}{}
}

// PaymentModeCleared returns if the "payment_mode" field was cleared in this mutation.
func (m *InsurancePolicyMutation) PaymentModeCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldPaymentMode]
	return ok
}

// ResetPaymentMode resets all changes to the "payment_mode" field.
func (m *InsurancePolicyMutation) ResetPaymentMode() {
	m.payment_mode = nil
	delete(m.clearedFields, insurancepolicy.FieldPaymentMode)
}

// SetFupDueDate sets the "fup_due_date" field.
func (m *InsurancePolicyMutation) SetFupDueDate(t time.Time) {
	m.fup_due_date = &t
}

// FupDueDate returns the value of the "fup_due_date" field in the mutation.
func (m *InsurancePolicyMutation) FupDueDate() (r time.Time, exists bool) {
	v := m.fup_due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldFupDueDate returns the old "fup_due_date" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldFupDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFupDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFupDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFupDueDate: %w", err)
	}
	return oldValue.FupDueDate, nil
}

// ClearFupDueDate clears the value of the "fup_due_date" field.
func (m *InsurancePolicyMutation) ClearFupDueDate() {
	m.fup_due_date = nil
	m.clearedFields[insurancepolicy.FieldFupDueDate] = struct{}{}
}

// FupDueDateCleared returns if the "fup_due_date" field was cleared in this mutation.
func (m *InsurancePolicyMutation) FupDueDateCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldFupDueDate]
	return ok
}

// ResetFupDueDate resets all changes to the "fup_due_date" field.
func (m *InsurancePolicyMutation) ResetFupDueDate() {
	m.fup_due_date = nil
	delete(m.clearedFields, insurancepolicy.FieldFupDueDate)
}

// SetSumAssured sets the "sum_assured" field.
func (m *InsurancePolicyMutation) SetSumAssured(f float64) {
	m.sum_assured = &f
	m.addsum_assured = nil
}

// SumAssured returns the value of the "sum_assured" field in the mutation.
func (m *InsurancePolicyMutation) SumAssured() (r float64, exists bool) {
	v := m.sum_assured
	if v == nil {
		return
	}
	return *v, true
}

// OldSumAssured returns the old "sum_assured" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldSumAssured(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSumAssured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSumAssured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSumAssured: %w", err)
	}
	return oldValue.SumAssured, nil
}

// AddSumAssured adds f to the "sum_assured" field.
func (m *InsurancePolicyMutation) AddSumAssured(f float64) {
	if m.addsum_assured != nil {
		*m.addsum_assured += f
	} else {
		m.addsum_assured = &f
	}
}

// AddedSumAssured returns the value that was added to the "sum_assured" field in this mutation.
func (m *InsurancePolicyMutation) AddedSumAssured() (r float64, exists bool) {
	v := m.addsum_assured
	if v == nil {
		return
	}
	return *v, true
}

// ClearSumAssured clears the value of the "sum_assured" field.
func (m *InsurancePolicyMutation) ClearSumAssured() {
	m.sum_assured = nil
	m.addsum_assured = nil
	m.clearedFields[insurancepolicy.FieldSumAssured] = struct{}{}
}

// SumAssuredCleared returns if the "sum_assured" field was cleared in this mutation.
func (m *InsurancePolicyMutation) SumAssuredCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldSumAssured]
	return ok
}

// ResetSumAssured resets all changes to the "sum_assured" field.
func (m *InsurancePolicyMutation) ResetSumAssured() {
	m.sum_assured = nil
	m.addsum_assured = nil
	delete(m.clearedFields, insurancepolicy.FieldSumAssured)
}

// SetPremiumAmount sets the "premium_amount" field.
func (m *InsurancePolicyMutation) SetPremiumAmount(f float64) {
	m.premium_amount = &f
	m.addpremium_amount = nil
}

// PremiumAmount returns the value of the "premium_amount" field in the mutation.
func (m *InsurancePolicyMutation) PremiumAmount() (r float64, exists bool) {
	v := m.premium_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldPremiumAmount returns the old "premium_amount" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPremiumAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPremiumAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPremiumAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPremiumAmount: %w", err)
	}
	return oldValue.PremiumAmount, nil
}

// AddPremiumAmount adds f to the "premium_amount" field.
func (m *InsurancePolicyMutation) AddPremiumAmount(f float64) {
	if m.addpremium_amount != nil {
		*m.addpremium_amount += f
	} else {
		m.addpremium_amount = &f
	}
}

// AddedPremiumAmount returns the value that was added to the "premium_amount" field in this mutation.
func (m *InsurancePolicyMutation) AddedPremiumAmount() (r float64, exists bool) {
	v := m.addpremium_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (m *InsurancePolicyMutation) ClearPremiumAmount() {
	m.premium_amount = nil
	m.addpremium_amount = nil
	m.clearedFields[insurancepolicy.FieldPremiumAmount] = struct{}{}
}

// PremiumAmountCleared returns if the "premium_amount" field was cleared in this mutation.
func (m *InsurancePolicyMutation) PremiumAmountCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldPremiumAmount]
	return ok
}

// ResetPremiumAmount resets all changes to the "premium_amount" field.
func (m *InsurancePolicyMutation) ResetPremiumAmount() {
	m.premium_amount = nil
	m.addpremium_amount = nil
	delete(m.clearedFields, insurancepolicy.FieldPremiumAmount)
}

// SetPolicyTerm sets the "policy_term" field.
func (m *InsurancePolicyMutation) SetPolicyTerm(i int) {
	m.policy_term = &i
	m.addpolicy_term = nil
}

// PolicyTerm returns the value of the "policy_term" field in the mutation.
func (m *InsurancePolicyMutation) PolicyTerm() (r int, exists bool) {
	v := m.policy_term
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyTerm returns the old "policy_term" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPolicyTerm(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyTerm: %w", err)
	}
	return oldValue.PolicyTerm, nil
}

// AddPolicyTerm adds i to the "policy_term" field.
func (m *InsurancePolicyMutation) AddPolicyTerm(i int) {
	if m.addpolicy_term != nil {
		*m.addpolicy_term += i
	} else {
		m.addpolicy_term = &i
	}
}

// AddedPolicyTerm returns the value that was added to the "policy_term" field in this mutation.
func (m *InsurancePolicyMutation) AddedPolicyTerm() (r int, exists bool) {
	v := m.addpolicy_term
	if v == nil {
		return
	}
	return *v, true
}

// ClearPolicyTerm clears the value of the "policy_term" field.
func (m *InsurancePolicyMutation) ClearPolicyTerm() {
	m.policy_term = nil
	m.addpolicy_term = nil
	m.clearedFields[insurancepolicy.FieldPolicyTerm] = struct{}{}
}

// PolicyTermCleared returns if the "policy_term" field was cleared in this mutation.
func (m *InsurancePolicyMutation) PolicyTermCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldPolicyTerm]
	return ok
}

// ResetPolicyTerm resets all changes to the "policy_term" field.
func (m *InsurancePolicyMutation) ResetPolicyTerm() {
	m.policy_term = nil
	m.addpolicy_term = nil
	delete(m.clearedFields, insurancepolicy.FieldPolicyTerm)
}

// SetPremiumPayingTerm sets the "premium_paying_term" field.
func (m *InsurancePolicyMutation) SetPremiumPayingTerm(i int) {
	m.premium_paying_term = &i
	m.addpremium_paying_term = nil
}

// PremiumPayingTerm returns the value of the "premium_paying_term" field in the mutation.
func (m *InsurancePolicyMutation) PremiumPayingTerm() (r int, exists bool) {
	v := m.premium_paying_term
	if v == nil {
		return
	}
	return *v, true
}

// OldPremiumPayingTerm returns the old "premium_paying_term" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldPremiumPayingTerm(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPremiumPayingTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPremiumPayingTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPremiumPayingTerm: %w", err)
	}
	return oldValue.PremiumPayingTerm, nil
}

// AddPremiumPayingTerm adds i to the "premium_paying_term" field.
func (m *InsurancePolicyMutation) AddPremiumPayingTerm(i int) {
	if m.addpremium_paying_term != nil {
		*m.addpremium_paying_term += i
	} else {
		m.addpremium_paying_term = &i
	}
}

// AddedPremiumPayingTerm returns the value that was added to the "premium_paying_term" field in this mutation.
func (m *InsurancePolicyMutation) AddedPremiumPayingTerm() (r int, exists bool) {
	v := m.addpremium_paying_term
	if v == nil {
		return
	}
	return *v, true
}

// ClearPremiumPayingTerm clears the value of the "premium_paying_term" field.
func (m *InsurancePolicyMutation) ClearPremiumPayingTerm() {
	m.premium_paying_term = nil
	m.addpremium_paying_term = nil
	m.clearedFields[insurancepolicy.FieldPremiumPayingTerm] = struct{}{}
}

// PremiumPayingTermCleared returns if the "premium_paying_term" field was cleared in this mutation.
func (m *InsurancePolicyMutation) PremiumPayingTermCleared() bool {
	_, ok := m.clearedFields[insurancepolicy.FieldPremiumPayingTerm]
	return ok
}

// ResetPremiumPayingTerm resets all changes to the "premium_paying_term" field.
func (m *InsurancePolicyMutation) ResetPremiumPayingTerm() {
	m.premium_paying_term = nil
	m.addpremium_paying_term = nil
	delete(m.clearedFields, insurancepolicy.FieldPremiumPayingTerm)
}

// SetStatus sets the "status" field.
func (m *InsurancePolicyMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InsurancePolicyMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InsurancePolicyMutation) ResetStatus() {
	m.status = nil
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *InsurancePolicyMutation) SetExtractionMethod(s string) {
	m.extraction_method = &s
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *InsurancePolicyMutation) ExtractionMethod() (r string, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldExtractionMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *InsurancePolicyMutation) ResetExtractionMethod() {
	m.extraction_method = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InsurancePolicyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsurancePolicyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsurancePolicyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InsurancePolicyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InsurancePolicyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InsurancePolicy entity.
// If the InsurancePolicy object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsurancePolicyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InsurancePolicyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (m *InsurancePolicyMutation) ClearCustomer() {
	m.clearedcustomer = true
	m.clearedFields[insurancepolicy.FieldCustomerID] = struct{}{}
}

// CustomerCleared reports if the "customer" edge to the Customer entity was cleared.
func (m *InsurancePolicyMutation) CustomerCleared() bool {
	return m.clearedcustomer
}

// CustomerIDs returns the "customer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CustomerID instead. It exists only for internal usage by the builders.
func (m *InsurancePolicyMutation) CustomerIDs() (ids []uuid.UUID) {
	if id := m.customer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCustomer resets all changes to the "customer" edge.
func (m *InsurancePolicyMutation) ResetCustomer() {
	m.customer = nil
	m.clearedcustomer = false
}

// AddPremiumRecordIDs adds the "premium_records" edge to the PremiumRecord entity by ids.
func (m *InsurancePolicyMutation) AddPremiumRecordIDs(ids ...uuid.UUID) {
	if m.premium_records == nil {
		m.premium_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.premium_records[ids[i]] = struct{}{}
	}
}

// ClearPremiumRecords clears the "premium_records" edge to the PremiumRecord entity.
func (m *InsurancePolicyMutation) ClearPremiumRecords() {
	m.clearedpremium_records = true
}

// PremiumRecordsCleared reports if the "premium_records" edge to the PremiumRecord entity was cleared.
func (m *InsurancePolicyMutation) PremiumRecordsCleared() bool {
	return m.clearedpremium_records
}

// RemovePremiumRecordIDs removes the "premium_records" edge to the PremiumRecord entity by IDs.
func (m *InsurancePolicyMutation) RemovePremiumRecordIDs(ids ...uuid.UUID) {
	if m.removedpremium_records == nil {
		m.removedpremium_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.premium_records, ids[i])
		m.removedpremium_records[ids[i]] = struct{}{}
	}
}

// RemovedPremiumRecords returns the removed IDs of the "premium_records" edge to the PremiumRecord entity.
func (m *InsurancePolicyMutation) RemovedPremiumRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedpremium_records {
		ids = append(ids, id)
	}
	return
}

// PremiumRecordsIDs returns the "premium_records" edge IDs in the mutation.
func (m *InsurancePolicyMutation) PremiumRecordsIDs() (ids []uuid.UUID) {
	for id := range m.premium_records {
		ids = append(ids, id)
	}
	return
}

// ResetPremiumRecords resets all changes to the "premium_records" edge.
func (m *InsurancePolicyMutation) ResetPremiumRecords() {
	m.premium_records = nil
	m.clearedpremium_records = false
	m.removedpremium_records = nil
}

// Where appends a list predicates to the InsurancePolicyMutation builder.
func (m *InsurancePolicyMutation) Where(ps ...predicate.InsurancePolicy) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsurancePolicyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsurancePolicyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InsurancePolicy, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsurancePolicyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsurancePolicyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InsurancePolicy).
func (m *InsurancePolicyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsurancePolicyMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.policy_number != nil {
		fields = append(fields, insurancepolicy.FieldPolicyNumber)
	}
	if m.customer != nil {
		fields = append(fields, insurancepolicy.FieldCustomerID)
	}
	if m.agent_code != nil {
		fields = append(fields, insurancepolicy.FieldAgentCode)
	}
	if m.plan_type != nil {
		fields = append(fields, insurancepolicy.FieldPlanType)
	}
	if m.plan_name != nil {
		fields = append(fields, insurancepolicy.FieldPlanName)
	}
	if m.commencement_date != nil {
		fields = append(fields, insurancepolicy.FieldCommencementDate)
	}
	if m.payment_mode != nil {
		fields = append(fields, insurancepolicy.FieldPaymentMode)
	}
	if m.fup_due_date != nil {
		fields = append(fields, insurancepolicy.FieldFupDueDate)
	}
	if m.sum_assured != nil {
		fields = append(fields, insurancepolicy.FieldSumAssured)
	}
	if m.premium_amount != nil {
		fields = append(fields, insurancepolicy.FieldPremiumAmount)
	}
	if m.policy_term != nil {
		fields = append(fields, insurancepolicy.FieldPolicyTerm)
	}
	if m.premium_paying_term != nil {
		fields = append(fields, insurancepolicy.FieldPremiumPayingTerm)
	}
	if m.status != nil {
		fields = append(fields, insurancepolicy.FieldStatus)
	}
	if m.extraction_method != nil {
		fields = append(fields, insurancepolicy.FieldExtractionMethod)
	}
	if m.created_at != nil {
		fields = append(fields, insurancepolicy.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, insurancepolicy.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsurancePolicyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insurancepolicy.FieldPolicyNumber:
		return m.PolicyNumber()
	case insurancepolicy.FieldCustomerID:
		return m.CustomerID()
	case insurancepolicy.FieldAgentCode:
		return m.AgentCode()
	case insurancepolicy.FieldPlanType:
		return m.PlanType()
	case insurancepolicy.FieldPlanName:
		return m.PlanName()
	case insurancepolicy.FieldCommencementDate:
		return m.CommencementDate()
	case insurancepolicy.FieldPaymentMode:
		return m.PaymentMode()
	case insurancepolicy.FieldFupDueDate:
		return m.FupDueDate()
	case insurancepolicy.FieldSumAssured:
		return m.SumAssured()
	case insurancepolicy.FieldPremiumAmount:
		return m.PremiumAmount()
	case insurancepolicy.FieldPolicyTerm:
		return m.PolicyTerm()
	case insurancepolicy.FieldPremiumPayingTerm:
		return m.PremiumPayingTerm()
	case insurancepolicy.FieldStatus:
		return m.Status()
	case insurancepolicy.FieldExtractionMethod:
		return m.ExtractionMethod()
	case insurancepolicy.FieldCreatedAt:
		return m.CreatedAt()
	case insurancepolicy.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsurancePolicyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insurancepolicy.FieldPolicyNumber:
		return m.OldPolicyNumber(ctx)
	case insurancepolicy.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case insurancepolicy.FieldAgentCode:
		return m.OldAgentCode(ctx)
	case insurancepolicy.FieldPlanType:
		return m.OldPlanType(ctx)
	case insurancepolicy.FieldPlanName:
		return m.OldPlanName(ctx)
	case insurancepolicy.FieldCommencementDate:
		return m.OldCommencementDate(ctx)
	case insurancepolicy.FieldPaymentMode:
		return m.OldPaymentMode(ctx)
	case insurancepolicy.FieldFupDueDate:
		return m.OldFupDueDate(ctx)
	case insurancepolicy.FieldSumAssured:
		return m.OldSumAssured(ctx)
	case insurancepolicy.FieldPremiumAmount:
		return m.OldPremiumAmount(ctx)
	case insurancepolicy.FieldPolicyTerm:
		return m.OldPolicyTerm(ctx)
	case insurancepolicy.FieldPremiumPayingTerm:
		return m.OldPremiumPayingTerm(ctx)
	case insurancepolicy.FieldStatus:
		return m.OldStatus(ctx)
	case insurancepolicy.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case insurancepolicy.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case insurancepolicy.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InsurancePolicy field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsurancePolicyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insurancepolicy.FieldPolicyNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyNumber(v)
		return nil
	case insurancepolicy.FieldCustomerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case insurancepolicy.FieldAgentCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentCode(v)
		return nil
	case insurancepolicy.FieldPlanType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanType(v)
		return nil
	case insurancepolicy.FieldPlanName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanName(v)
		return nil
	case insurancepolicy.FieldCommencementDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommencementDate(v)
		return nil
	case insurancepolicy.FieldPaymentMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMode(v)
		return nil
	case insurancepolicy.FieldFupDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFupDueDate(v)
		return nil
	case insurancepolicy.FieldSumAssured:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSumAssured(v)
		return nil
	case insurancepolicy.FieldPremiumAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPremiumAmount(v)
		return nil
	case insurancepolicy.FieldPolicyTerm:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyTerm(v)
		return nil
	case insurancepolicy.FieldPremiumPayingTerm:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPremiumPayingTerm(v)
		return nil
	case insurancepolicy.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case insurancepolicy.FieldExtractionMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case insurancepolicy.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case insurancepolicy.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsurancePolicyMutation) AddedFields() []string {
	var fields []string
	if m.addsum_assured != nil {
		fields = append(fields, insurancepolicy.FieldSumAssured)
	}
	if m.addpremium_amount != nil {
		fields = append(fields, insurancepolicy.FieldPremiumAmount)
	}
	if m.addpolicy_term != nil {
		fields = append(fields, insurancepolicy.FieldPolicyTerm)
	}
	if m.addpremium_paying_term != nil {
		fields = append(fields, insurancepolicy.FieldPremiumPayingTerm)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsurancePolicyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case insurancepolicy.FieldSumAssured:
		return m.AddedSumAssured()
	case insurancepolicy.FieldPremiumAmount:
		return m.AddedPremiumAmount()
	case insurancepolicy.FieldPolicyTerm:
		return m.AddedPolicyTerm()
	case insurancepolicy.FieldPremiumPayingTerm:
		return m.AddedPremiumPayingTerm()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsurancePolicyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case insurancepolicy.FieldSumAssured:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSumAssured(v)
		return nil
	case insurancepolicy.FieldPremiumAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPremiumAmount(v)
		return nil
	case insurancepolicy.FieldPolicyTerm:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPolicyTerm(v)
		return nil
	case insurancepolicy.FieldPremiumPayingTerm:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPremiumPayingTerm(v)
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsurancePolicyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(insurancepolicy.FieldAgentCode) {
		fields = append(fields, insurancepolicy.FieldAgentCode)
	}
	if m.FieldCleared(insurancepolicy.FieldPlanType) {
		fields = append(fields, insurancepolicy.FieldPlanType)
	}
	if m.FieldCleared(insurancepolicy.FieldPlanName) {
		fields = append(fields, insurancepolicy.FieldPlanName)
	}
	if m.FieldCleared(insurancepolicy.FieldCommencementDate) {
		fields = append(fields, insurancepolicy.FieldCommencementDate)
	}
	if m.FieldCleared(insurancepolicy.FieldPaymentMode) {
		fields = append(fields, insurancepolicy.FieldPaymentMode)
	}
	if m.FieldCleared(insurancepolicy.FieldFupDueDate) {
		fields = append(fields, insurancepolicy.FieldFupDueDate)
	}
	if m.FieldCleared(insurancepolicy.FieldSumAssured) {
		fields = append(fields, insurancepolicy.FieldSumAssured)
	}
	if m.FieldCleared(insurancepolicy.FieldPremiumAmount) {
		fields = append(fields, insurancepolicy.FieldPremiumAmount)
	}
	if m.FieldCleared(insurancepolicy.FieldPolicyTerm) {
		fields = append(fields, insurancepolicy.FieldPolicyTerm)
	}
	if m.FieldCleared(insurancepolicy.FieldPremiumPayingTerm) {
		fields = append(fields, insurancepolicy.FieldPremiumPayingTerm)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsurancePolicyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsurancePolicyMutation) ClearField(name string) error {
	switch name {
	case insurancepolicy.FieldAgentCode:
		m.ClearAgentCode()
		return nil
	case insurancepolicy.FieldPlanType:
		m.ClearPlanType()
		return nil
	case insurancepolicy.FieldPlanName:
		m.ClearPlanName()
		return nil
	case insurancepolicy.FieldCommencementDate:
		m.ClearCommencementDate()
		return nil
	case insurancepolicy.FieldPaymentMode:
		m.ClearPaymentMode()
		return nil
	case insurancepolicy.FieldFupDueDate:
		m.ClearFupDueDate()
		return nil
	case insurancepolicy.FieldSumAssured:
		m.ClearSumAssured()
		return nil
	case insurancepolicy.FieldPremiumAmount:
		m.ClearPremiumAmount()
		return nil
	case insurancepolicy.FieldPolicyTerm:
		m.ClearPolicyTerm()
		return nil
	case insurancepolicy.FieldPremiumPayingTerm:
		m.ClearPremiumPayingTerm()
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsurancePolicyMutation) ResetField(name string) error {
	switch name {
	case insurancepolicy.FieldPolicyNumber:
		m.ResetPolicyNumber()
		return nil
	case insurancepolicy.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case insurancepolicy.FieldAgentCode:
		m.ResetAgentCode()
		return nil
	case insurancepolicy.FieldPlanType:
		m.ResetPlanType()
		return nil
	case insurancepolicy.FieldPlanName:
		m.ResetPlanName()
		return nil
	case insurancepolicy.FieldCommencementDate:
		m.ResetCommencementDate()
		return nil
	case insurancepolicy.FieldPaymentMode:
		m.ResetPaymentMode()
		return nil
	case insurancepolicy.FieldFupDueDate:
		m.ResetFupDueDate()
		return nil
	case insurancepolicy.FieldSumAssured:
		m.ResetSumAssured()
		return nil
	case insurancepolicy.FieldPremiumAmount:
		m.ResetPremiumAmount()
		return nil
	case insurancepolicy.FieldPolicyTerm:
		m.ResetPolicyTerm()
		return nil
	case insurancepolicy.FieldPremiumPayingTerm:
		m.ResetPremiumPayingTerm()
		return nil
	case insurancepolicy.FieldStatus:
		m.ResetStatus()
		return nil
	case insurancepolicy.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case insurancepolicy.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case insurancepolicy.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsurancePolicyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.customer != nil {
		edges = append(edges, insurancepolicy.EdgeCustomer)
	}
	if m.premium_records != nil {
		edges = append(edges, insurancepolicy.EdgePremiumRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsurancePolicyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case insurancepolicy.EdgeCustomer:
		if id := m.customer; id != nil {
			return []ent.Value{*id}
		}
	case insurancepolicy.EdgePremiumRecords:
		ids := make([]ent.Value, 0, len(m.premium_records))
		for id := range m.premium_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsurancePolicyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpremium_records != nil {
		edges = append(edges, insurancepolicy.EdgePremiumRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsurancePolicyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case insurancepolicy.EdgePremiumRecords:
		ids := make([]ent.Value, 0, len(m.removedpremium_records))
		for id := range m.removedpremium_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsurancePolicyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcustomer {
		edges = append(edges, insurancepolicy.EdgeCustomer)
	}
	if m.clearedpremium_records {
		edges = append(edges, insurancepolicy.EdgePremiumRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsurancePolicyMutation) EdgeCleared(name string) bool {
	switch name {
	case insurancepolicy.EdgeCustomer:
		return m.clearedcustomer
	case insurancepolicy.EdgePremiumRecords:
		return m.clearedpremium_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsurancePolicyMutation) ClearEdge(name string) error {
	switch name {
	case insurancepolicy.EdgeCustomer:
		m.ClearCustomer()
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsurancePolicyMutation) ResetEdge(name string) error {
	switch name {
	case insurancepolicy.EdgeCustomer:
		m.ResetCustomer()
		return nil
	case insurancepolicy.EdgePremiumRecords:
		m.ResetPremiumRecords()
		return nil
	}
	return fmt.Errorf("unknown InsurancePolicy edge %s", name)
}

// PremiumRecordMutation represents an operation that mutates the PremiumRecord nodes in the graph.
type PremiumRecordMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	due_date        *time.Time
	amount          *float64
	addamount       *float64
	tax             *float64
	addtax          *float64
	total           *float64
	addtotal        *float64
	due_count       *int
	adddue_count    *int
	agent_code      *string
	source_document *string
	payment_date    *time.Time
	processed_at    *time.Time
	clearedFields   map[string]struct{}
	policy          *uuid.UUID
	clearedpolicy   bool
	done            bool
	oldValue        func(context.Context) (*PremiumRecord, error)
	predicates      []predicate.PremiumRecord
}

var _ ent.Mutation = (*PremiumRecordMutation)(nil)

// premiumrecordOption allows management of the mutation configuration using functional options.
type premiumrecordOption func(*PremiumRecordMutation)

// newPremiumRecordMutation creates new mutation for the PremiumRecord entity.
func newPremiumRecordMutation(c config, op Op, opts ...premiumrecordOption) *PremiumRecordMutation {
	m := &PremiumRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePremiumRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPremiumRecordID sets the ID field of the mutation.
func withPremiumRecordID(id uuid.UUID) premiumrecordOption {
	return func(m *PremiumRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PremiumRecord
		)
		m.oldValue = func(ctx context.Context) (*PremiumRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PremiumRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPremiumRecord sets the old PremiumRecord of the mutation.
func withPremiumRecord(node *PremiumRecord) premiumrecordOption {
	return func(m *PremiumRecordMutation) {
		m.oldValue = func(context.Context) (*PremiumRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PremiumRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PremiumRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PremiumRecord entities.
func (m *PremiumRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PremiumRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PremiumRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PremiumRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPolicyID sets the "policy_id" field.
func (m *PremiumRecordMutation) SetPolicyID(u uuid.UUID) {
	m.policy = &u
}

// PolicyID returns the value of the "policy_id" field in the mutation.
func (m *PremiumRecordMutation) PolicyID() (r uuid.UUID, exists bool) {
	v := m.policy
	if v == nil {
		return
	}
	return *v, true
}

// OldPolicyID returns the old "policy_id" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldPolicyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPolicyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPolicyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPolicyID: %w", err)
	}
	return oldValue.PolicyID, nil
}

// ResetPolicyID resets all changes to the "policy_id" field.
func (m *PremiumRecordMutation) ResetPolicyID() {
	m.policy = nil
}

// SetDueDate sets the "due_date" field.
func (m *PremiumRecordMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *PremiumRecordMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *PremiumRecordMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[premiumrecord.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *PremiumRecordMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *PremiumRecordMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, premiumrecord.FieldDueDate)
}

// SetAmount sets the "amount" field.
func (m *PremiumRecordMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *PremiumRecordMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *PremiumRecordMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *PremiumRecordMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ClearAmount clears the value of the "amount" field.
func (m *PremiumRecordMutation) ClearAmount() {
	m.amount = nil
	m.addamount = nil
	m.clearedFields[premiumrecord.FieldAmount] = struct{}{}
}

// AmountCleared returns if the "amount" field was cleared in this mutation.
func (m *PremiumRecordMutation) AmountCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldAmount]
	return ok
}

// ResetAmount resets all changes to the "amount" field.
func (m *PremiumRecordMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
	delete(m.clearedFields, premiumrecord.FieldAmount)
}

// SetTax sets the "tax" field.
func (m *PremiumRecordMutation) SetTax(f float64) {
	m.tax = &f
	m.addtax = nil
}

// Tax returns the value of the "tax" field in the mutation.
func (m *PremiumRecordMutation) Tax() (r float64, exists bool) {
	v := m.tax
	if v == nil {
		return
	}
	return *v, true
}

// OldTax returns the old "tax" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldTax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTax: %w", err)
	}
	return oldValue.Tax, nil
}

// AddTax adds f to the "tax" field.
func (m *PremiumRecordMutation) AddTax(f float64) {
	if m.addtax != nil {
		*m.addtax += f
	} else {
		m.addtax = &f
	}
}

// AddedTax returns the value that was added to the "tax" field in this mutation.
func (m *PremiumRecordMutation) AddedTax() (r float64, exists bool) {
	v := m.addtax
	if v == nil {
		return
	}
	return *v, true
}

// ClearTax clears the value of the "tax" field.
func (m *PremiumRecordMutation) ClearTax() {
	m.tax = nil
	m.addtax = nil
	m.clearedFields[premiumrecord.FieldTax] = struct{}{}
}

// TaxCleared returns if the "tax" field was cleared in this mutation.
func (m *PremiumRecordMutation) TaxCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldTax]
	return ok
}

// ResetTax resets all changes to the "tax" field.
func (m *PremiumRecordMutation) ResetTax() {
	m.tax = nil
	m.addtax = nil
	delete(m.clearedFields, premiumrecord.FieldTax)
}

// SetTotal sets the "total" field.
func (m *PremiumRecordMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *PremiumRecordMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldTotal(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *PremiumRecordMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *PremiumRecordMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotal clears the value of the "total" field.
func (m *PremiumRecordMutation) ClearTotal() {
	m.total = nil
	m.addtotal = nil
	m.clearedFields[premiumrecord.FieldTotal] = struct{}{}
}

// TotalCleared returns if the "total" field was cleared in this mutation.
func (m *PremiumRecordMutation) TotalCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldTotal]
	return ok
}

// ResetTotal resets all changes to the "total" field.
func (m *PremiumRecordMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
	delete(m.clearedFields, premiumrecord.FieldTotal)
}

// SetDueCount sets the "due_count" field.
func (m *PremiumRecordMutation) SetDueCount(i int) {
	m.due_count = &i
	m.adddue_count = nil
}

// DueCount returns the value of the "due_count" field in the mutation.
func (m *PremiumRecordMutation) DueCount() (r int, exists bool) {
	v := m.due_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDueCount returns the old "due_count" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldDueCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueCount: %w", err)
	}
	return oldValue.DueCount, nil
}

// AddDueCount adds i to the "due_count" field.
func (m *PremiumRecordMutation) AddDueCount(i int) {
	if m.adddue_count != nil {
		*m.adddue_count += i
	} else {
		m.adddue_count = &i
	}
}

// AddedDueCount returns the value that was added to the "due_count" field in this mutation.
func (m *PremiumRecordMutation) AddedDueCount() (r int, exists bool) {
	v := m.adddue_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearDueCount clears the value of the "due_count" field.
func (m *PremiumRecordMutation) ClearDueCount() {
	m.due_count = nil
	m.adddue_count = nil
	m.clearedFields[premiumrecord.FieldDueCount] = struct{}{}
}

// DueCountCleared returns if the "due_count" field was cleared in this mutation.
func (m *PremiumRecordMutation) DueCountCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldDueCount]
	return ok
}

// ResetDueCount resets all changes to the "due_count" field.
func (m *PremiumRecordMutation) ResetDueCount() {
	m.due_count = nil
	m.adddue_count = nil
	delete(m.clearedFields, premiumrecord.FieldDueCount)
}

// SetAgentCode sets the "agent_code" field.
func (m *PremiumRecordMutation) SetAgentCode(s string) {
	m.agent_code = &s
}

// AgentCode returns the value of the "agent_code" field in the mutation.
func (m *PremiumRecordMutation) AgentCode() (r string, exists bool) {
	v := m.agent_code
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentCode returns the old "agent_code" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldAgentCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentCode: %w", err)
	}
	return oldValue.AgentCode, nil
}

// ClearAgentCode clears the value of the "agent_code" field.
func (m *PremiumRecordMutation) ClearAgentCode() {
	m.agent_code = nil
	m.clearedFields[premiumrecord.FieldAgentCode] = struct{}{}
}

// AgentCodeCleared returns if the "agent_code" field was cleared in this mutation.
func (m *PremiumRecordMutation) AgentCodeCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldAgentCode]
	return ok
}

// ResetAgentCode resets all changes to the "agent_code" field.
func (m *PremiumRecordMutation) ResetAgentCode() {
	m.agent_code = nil
	delete(m.clearedFields, premiumrecord.FieldAgentCode)
}

// SetSourceDocument sets the "source_document" field.
func (m *PremiumRecordMutation) SetSourceDocument(s string) {
	m.source_document = &s
}

// SourceDocument returns the value of the "source_document" field in the mutation.
func (m *PremiumRecordMutation) SourceDocument() (r string, exists bool) {
	v := m.source_document
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDocument returns the old "source_document" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldSourceDocument(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDocument: %w", err)
	}
	return oldValue.SourceDocument, nil
}

// ResetSourceDocument resets all changes to the "source_document" field.
func (m *PremiumRecordMutation) ResetSourceDocument() {
	m.source_document = nil
}

// SetPaymentDate sets the "payment_date" field.
func (m *PremiumRecordMutation) SetPaymentDate(t time.Time) {
	m.payment_date = &t
}

// PaymentDate returns the value of the "payment_date" field in the mutation.
func (m *PremiumRecordMutation) PaymentDate() (r time.Time, exists bool) {
	v := m.payment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentDate returns the old "payment_date" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldPaymentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentDate: %w", err)
	}
	return oldValue.PaymentDate, nil
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (m *PremiumRecordMutation) ClearPaymentDate() {
	m.payment_date = nil
	m.clearedFields[premiumrecord.FieldPaymentDate] = struct{}{}
}

// PaymentDateCleared returns if the "payment_date" field was cleared in this mutation.
func (m *PremiumRecordMutation) PaymentDateCleared() bool {
	_, ok := m.clearedFields[premiumrecord.FieldPaymentDate]
	return ok
}

// ResetPaymentDate resets all changes to the "payment_date" field.
func (m *PremiumRecordMutation) ResetPaymentDate() {
	m.payment_date = nil
	delete(m.clearedFields, premiumrecord.FieldPaymentDate)
}

// SetProcessedAt sets the "processed_at" field.
func (m *PremiumRecordMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *PremiumRecordMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the PremiumRecord entity.
// If the PremiumRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PremiumRecordMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *PremiumRecordMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// ClearPolicy clears the "policy" edge to the InsurancePolicy entity.
func (m *PremiumRecordMutation) ClearPolicy() {
	m.clearedpolicy = true
	m.clearedFields[premiumrecord.FieldPolicyID] = struct{}{}
}

// PolicyCleared reports if the "policy" edge to the InsurancePolicy entity was cleared.
func (m *PremiumRecordMutation) PolicyCleared() bool {
	return m.clearedpolicy
}

// PolicyIDs returns the "policy" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PolicyID instead. It exists only for internal usage by the builders.
func (m *PremiumRecordMutation) PolicyIDs() (ids []uuid.UUID) {
	if id := m.policy; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPolicy resets all changes to the "policy" edge.
func (m *PremiumRecordMutation) ResetPolicy() {
	m.policy = nil
	m.clearedpolicy = false
}

// Where appends a list predicates to the PremiumRecordMutation builder.
func (m *PremiumRecordMutation) Where(ps ...predicate.PremiumRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PremiumRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PremiumRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PremiumRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PremiumRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PremiumRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PremiumRecord).
func (m *PremiumRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PremiumRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.policy != nil {
		fields = append(fields, premiumrecord.FieldPolicyID)
	}
	if m.due_date != nil {
		fields = append(fields, premiumrecord.FieldDueDate)
	}
	if m.amount != nil {
		fields = append(fields, premiumrecord.FieldAmount)
	}
	if m.tax != nil {
		fields = append(fields, premiumrecord.FieldTax)
	}
	if m.total != nil {
		fields = append(fields, premiumrecord.FieldTotal)
	}
	if m.due_count != nil {
		fields = append(fields, premiumrecord.FieldDueCount)
	}
	if m.agent_code != nil {
		fields = append(fields, premiumrecord.FieldAgentCode)
	}
	if m.source_document != nil {
		fields = append(fields, premiumrecord.FieldSourceDocument)
	}
	if m.payment_date != nil {
		fields = append(fields, premiumrecord.FieldPaymentDate)
	}
	if m.processed_at != nil {
		fields = append(fields, premiumrecord.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PremiumRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case premiumrecord.FieldPolicyID:
		return m.PolicyID()
	case premiumrecord.FieldDueDate:
		return m.DueDate()
	case premiumrecord.FieldAmount:
		return m.Amount()
	case premiumrecord.FieldTax:
		return m.Tax()
	case premiumrecord.FieldTotal:
		return m.Total()
	case premiumrecord.FieldDueCount:
		return m.DueCount()
	case premiumrecord.FieldAgentCode:
		return m.AgentCode()
	case premiumrecord.FieldSourceDocument:
		return m.SourceDocument()
	case premiumrecord.FieldPaymentDate:
		return m.PaymentDate()
	case premiumrecord.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PremiumRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case premiumrecord.FieldPolicyID:
		return m.OldPolicyID(ctx)
	case premiumrecord.FieldDueDate:
		return m.OldDueDate(ctx)
	case premiumrecord.FieldAmount:
		return m.OldAmount(ctx)
	case premiumrecord.FieldTax:
		return m.OldTax(ctx)
	case premiumrecord.FieldTotal:
		return m.OldTotal(ctx)
	case premiumrecord.FieldDueCount:
		return m.OldDueCount(ctx)
	case premiumrecord.FieldAgentCode:
		return m.OldAgentCode(ctx)
	case premiumrecord.FieldSourceDocument:
		return m.OldSourceDocument(ctx)
	case premiumrecord.FieldPaymentDate:
		return m.OldPaymentDate(ctx)
	case premiumrecord.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PremiumRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PremiumRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case premiumrecord.FieldPolicyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPolicyID(v)
		return nil
	case premiumrecord.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case premiumrecord.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case premiumrecord.FieldTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTax(v)
		return nil
	case premiumrecord.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case premiumrecord.FieldDueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueCount(v)
		return nil
	case premiumrecord.FieldAgentCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentCode(v)
		return nil
	case premiumrecord.FieldSourceDocument:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDocument(v)
		return nil
	case premiumrecord.FieldPaymentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentDate(v)
		return nil
	case premiumrecord.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PremiumRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PremiumRecordMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, premiumrecord.FieldAmount)
	}
	if m.addtax != nil {
		fields = append(fields, premiumrecord.FieldTax)
	}
	if m.addtotal != nil {
		fields = append(fields, premiumrecord.FieldTotal)
	}
	if m.adddue_count != nil {
		fields = append(fields, premiumrecord.FieldDueCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PremiumRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case premiumrecord.FieldAmount:
		return m.AddedAmount()
	case premiumrecord.FieldTax:
		return m.AddedTax()
	case premiumrecord.FieldTotal:
		return m.AddedTotal()
	case premiumrecord.FieldDueCount:
		return m.AddedDueCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PremiumRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case premiumrecord.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	case premiumrecord.FieldTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTax(v)
		return nil
	case premiumrecord.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case premiumrecord.FieldDueCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDueCount(v)
		return nil
	}
	return fmt.Errorf("unknown PremiumRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PremiumRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(premiumrecord.FieldDueDate) {
		fields = append(fields, premiumrecord.FieldDueDate)
	}
	if m.FieldCleared(premiumrecord.FieldAmount) {
		fields = append(fields, premiumrecord.FieldAmount)
	}
	if m.FieldCleared(premiumrecord.FieldTax) {
		fields = append(fields, premiumrecord.FieldTax)
	}
	if m.FieldCleared(premiumrecord.FieldTotal) {
		fields = append(fields, premiumrecord.FieldTotal)
	}
	if m.FieldCleared(premiumrecord.FieldDueCount) {
		fields = append(fields, premiumrecord.FieldDueCount)
	}
	if m.FieldCleared(premiumrecord.FieldAgentCode) {
		fields = append(fields, premiumrecord.FieldAgentCode)
	}
	if m.FieldCleared(premiumrecord.FieldPaymentDate) {
		fields = append(fields, premiumrecord.FieldPaymentDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PremiumRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PremiumRecordMutation) ClearField(name string) error {
	switch name {
	case premiumrecord.FieldDueDate:
		m.ClearDueDate()
		return nil
	case premiumrecord.FieldAmount:
		m.ClearAmount()
		return nil
	case premiumrecord.FieldTax:
		m.ClearTax()
		return nil
	case premiumrecord.FieldTotal:
		m.ClearTotal()
		return nil
	case premiumrecord.FieldDueCount:
		m.ClearDueCount()
		return nil
	case premiumrecord.FieldAgentCode:
		m.ClearAgentCode()
		return nil
	case premiumrecord.FieldPaymentDate:
		m.ClearPaymentDate()
		return nil
	}
	return fmt.Errorf("unknown PremiumRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PremiumRecordMutation) ResetField(name string) error {
	switch name {
	case premiumrecord.FieldPolicyID:
		m.ResetPolicyID()
		return nil
	case premiumrecord.FieldDueDate:
		m.ResetDueDate()
		return nil
	case premiumrecord.FieldAmount:
		m.ResetAmount()
		return nil
	case premiumrecord.FieldTax:
		m.ResetTax()
		return nil
	case premiumrecord.FieldTotal:
		m.ResetTotal()
		return nil
	case premiumrecord.FieldDueCount:
		m.ResetDueCount()
		return nil
	case premiumrecord.FieldAgentCode:
		m.ResetAgentCode()
		return nil
	case premiumrecord.FieldSourceDocument:
		m.ResetSourceDocument()
		return nil
	case premiumrecord.FieldPaymentDate:
		m.ResetPaymentDate()
		return nil
	case premiumrecord.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown PremiumRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PremiumRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.policy != nil {
		edges = append(edges, premiumrecord.EdgePolicy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PremiumRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case premiumrecord.EdgePolicy:
		if id := m.policy; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PremiumRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PremiumRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PremiumRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpolicy {
		edges = append(edges, premiumrecord.EdgePolicy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PremiumRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case premiumrecord.EdgePolicy:
		return m.clearedpolicy
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PremiumRecordMutation) ClearEdge(name string) error {
	switch name {
	case premiumrecord.EdgePolicy:
		m.ClearPolicy()
		return nil
	}
	return fmt.Errorf("unknown PremiumRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PremiumRecordMutation) ResetEdge(name string) error {
	switch name {
	case premiumrecord.EdgePolicy:
		m.ResetPolicy()
		return nil
	}
	return fmt.Errorf("unknown PremiumRecord edge %s", name)
}
