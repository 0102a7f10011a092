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
	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
	"github.com/rsubramani/policy-tracker/gen/ent/predicate"
	"github.com/rsubramani/policy-tracker/gen/ent/premiumrecord"
)

// PremiumRecordUpdate is the builder for updating PremiumRecord entities.
type PremiumRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PremiumRecordMutation
}

// Where appends a list predicates to the PremiumRecordUpdate builder.
func (_u *PremiumRecordUpdate) Where(ps ...predicate.PremiumRecord) *PremiumRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPolicyID sets the "policy_id" field.
func (_u *PremiumRecordUpdate) SetPolicyID(v uuid.UUID) *PremiumRecordUpdate {
	_u.mutation.SetPolicyID(v)
	return _u
}

// SetNillablePolicyID sets the "policy_id" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillablePolicyID(v *uuid.UUID) *PremiumRecordUpdate {
	if v != nil {
		_u.SetPolicyID(*v)
	}
	return _u
}

// SetPaymentDate sets the "payment_date" field.
func (_u *PremiumRecordUpdate) SetPaymentDate(v time.Time) *PremiumRecordUpdate {
	_u.mutation.SetPaymentDate(v)
	return _u
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_u *PremiumRecordUpdate) SetNillablePaymentDate(v *time.Time) *PremiumRecordUpdate {
	if v != nil {
		_u.SetPaymentDate(*v)
	}
	return _u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (_u *PremiumRecordUpdate) ClearPaymentDate() *PremiumRecordUpdate {
	_u.mutation.ClearPaymentDate()
	return _u
}

// SetPolicy sets the "policy" edge to the InsurancePolicy entity.
func (_u *PremiumRecordUpdate) SetPolicy(v *InsurancePolicy) *PremiumRecordUpdate {
	return _u.SetPolicyID(v.ID)
}

// Mutation returns the PremiumRecordMutation object of the builder.
func (_u *PremiumRecordUpdate) Mutation() *PremiumRecordMutation {
	return _u.mutation
}

// ClearPolicy clears the "policy" edge to the InsurancePolicy entity.
func (_u *PremiumRecordUpdate) ClearPolicy() *PremiumRecordUpdate {
	_u.mutation.ClearPolicy()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PremiumRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PremiumRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PremiumRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PremiumRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PremiumRecordUpdate) check() error {
	if _u.mutation.PolicyCleared() && len(_u.mutation.PolicyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PremiumRecord.policy"`)
	}
	return nil
}

func (_u *PremiumRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(premiumrecord.Table, premiumrecord.Columns, sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(premiumrecord.FieldDueDate, field.TypeTime)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(premiumrecord.FieldAmount, field.TypeFloat64)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(premiumrecord.FieldTax, field.TypeFloat64)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(premiumrecord.FieldTotal, field.TypeFloat64)
	}
	if _u.mutation.DueCountCleared() {
		_spec.ClearField(premiumrecord.FieldDueCount, field.TypeInt)
	}
	if _u.mutation.AgentCodeCleared() {
		_spec.ClearField(premiumrecord.FieldAgentCode, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentDate(); ok {
		_spec.SetField(premiumrecord.FieldPaymentDate, field.TypeTime, value)
	}
	if _u.mutation.PaymentDateCleared() {
		_spec.ClearField(premiumrecord.FieldPaymentDate, field.TypeTime)
	}
	if _u.mutation.PolicyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   premiumrecord.PolicyTable,
			Columns: []string{premiumrecord.PolicyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PolicyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   premiumrecord.PolicyTable,
			Columns: []string{premiumrecord.PolicyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{premiumrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PremiumRecordUpdateOne is the builder for updating a single PremiumRecord entity.
type PremiumRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PremiumRecordMutation
}

// SetPolicyID sets the "policy_id" field.
func (_u *PremiumRecordUpdateOne) SetPolicyID(v uuid.UUID) *PremiumRecordUpdateOne {
	_u.mutation.SetPolicyID(v)
	return _u
}

// SetNillablePolicyID sets the "policy_id" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillablePolicyID(v *uuid.UUID) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetPolicyID(*v)
	}
	return _u
}

// SetPaymentDate sets the "payment_date" field.
func (_u *PremiumRecordUpdateOne) SetPaymentDate(v time.Time) *PremiumRecordUpdateOne {
	_u.mutation.SetPaymentDate(v)
	return _u
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_u *PremiumRecordUpdateOne) SetNillablePaymentDate(v *time.Time) *PremiumRecordUpdateOne {
	if v != nil {
		_u.SetPaymentDate(*v)
	}
	return _u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (_u *PremiumRecordUpdateOne) ClearPaymentDate() *PremiumRecordUpdateOne {
	_u.mutation.ClearPaymentDate()
	return _u
}

// SetPolicy sets the "policy" edge to the InsurancePolicy entity.
func (_u *PremiumRecordUpdateOne) SetPolicy(v *InsurancePolicy) *PremiumRecordUpdateOne {
	return _u.SetPolicyID(v.ID)
}

// Mutation returns the PremiumRecordMutation object of the builder.
func (_u *PremiumRecordUpdateOne) Mutation() *PremiumRecordMutation {
	return _u.mutation
}

// ClearPolicy clears the "policy" edge to the InsurancePolicy entity.
func (_u *PremiumRecordUpdateOne) ClearPolicy() *PremiumRecordUpdateOne {
	_u.mutation.ClearPolicy()
	return _u
}

// Where appends a list predicates to the PremiumRecordUpdate builder.
func (_u *PremiumRecordUpdateOne) Where(ps ...predicate.PremiumRecord) *PremiumRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PremiumRecordUpdateOne) Select(field string, fields ...string) *PremiumRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PremiumRecord entity.
func (_u *PremiumRecordUpdateOne) Save(ctx context.Context) (*PremiumRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PremiumRecordUpdateOne) SaveX(ctx context.Context) *PremiumRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PremiumRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PremiumRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PremiumRecordUpdateOne) check() error {
	if _u.mutation.PolicyCleared() && len(_u.mutation.PolicyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PremiumRecord.policy"`)
	}
	return nil
}

func (_u *PremiumRecordUpdateOne) sqlSave(ctx context.Context) (_node *PremiumRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(premiumrecord.Table, premiumrecord.Columns, sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PremiumRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, premiumrecord.FieldID)
		for _, f := range fields {
			if !premiumrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != premiumrecord.FieldID {
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
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(premiumrecord.FieldDueDate, field.TypeTime)
	}
	if _u.mutation.AmountCleared() {
		_spec.ClearField(premiumrecord.FieldAmount, field.TypeFloat64)
	}
	if _u.mutation.TaxCleared() {
		_spec.ClearField(premiumrecord.FieldTax, field.TypeFloat64)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(premiumrecord.FieldTotal, field.TypeFloat64)
	}
	if _u.mutation.DueCountCleared() {
		_spec.ClearField(premiumrecord.FieldDueCount, field.TypeInt)
	}
	if _u.mutation.AgentCodeCleared() {
		_spec.ClearField(premiumrecord.FieldAgentCode, field.TypeString)
	}
	if value, ok := _u.mutation.PaymentDate(); ok {
		_spec.SetField(premiumrecord.FieldPaymentDate, field.TypeTime, value)
	}
	if _u.mutation.PaymentDateCleared() {
		_spec.ClearField(premiumrecord.FieldPaymentDate, field.TypeTime)
	}
	if _u.mutation.PolicyCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   premiumrecord.PolicyTable,
			Columns: []string{premiumrecord.PolicyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PolicyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   premiumrecord.PolicyTable,
			Columns: []string{premiumrecord.PolicyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PremiumRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{premiumrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
