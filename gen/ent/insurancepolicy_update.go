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
	"github.com/rsubramani/policy-tracker/gen/ent/customer"
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
	"github.com/rsubramani/policy-tracker/gen/ent/predicate"
	"github.com/rsubramani/policy-tracker/gen/ent/premiumrecord"
)

// InsurancePolicyUpdate is the builder for updating InsurancePolicy entities.
type InsurancePolicyUpdate struct {
	config
	hooks    []Hook
	mutation *InsurancePolicyMutation
}

// Where appends a list predicates to the InsurancePolicyUpdate builder.
func (_u *InsurancePolicyUpdate) Where(ps ...predicate.InsurancePolicy) *InsurancePolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *InsurancePolicyUpdate) SetCustomerID(v uuid.UUID) *InsurancePolicyUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableCustomerID(v *uuid.UUID) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetAgentCode sets the "agent_code" field.
func (_u *InsurancePolicyUpdate) SetAgentCode(v string) *InsurancePolicyUpdate {
	_u.mutation.SetAgentCode(v)
	return _u
}

// SetNillableAgentCode sets the "agent_code" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableAgentCode(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetAgentCode(*v)
	}
	return _u
}

// ClearAgentCode clears the value of the "agent_code" field.
func (_u *InsurancePolicyUpdate) ClearAgentCode() *InsurancePolicyUpdate {
	_u.mutation.ClearAgentCode()
	return _u
}

// SetPlanType sets the "plan_type" field.
func (_u *InsurancePolicyUpdate) SetPlanType(v string) *InsurancePolicyUpdate {
	_u.mutation.SetPlanType(v)
	return _u
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillablePlanType(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetPlanType(*v)
	}
	return _u
}

// ClearPlanType clears the value of the "plan_type" field.
func (_u *InsurancePolicyUpdate) ClearPlanType() *InsurancePolicyUpdate {
	_u.mutation.ClearPlanType()
	return _u
}

// SetPlanName sets the "plan_name" field.
func (_u *InsurancePolicyUpdate) SetPlanName(v string) *InsurancePolicyUpdate {
	_u.mutation.SetPlanName(v)
	return _u
}

// SetNillablePlanName sets the "plan_name" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillablePlanName(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetPlanName(*v)
	}
	return _u
}

// ClearPlanName clears the value of the "plan_name" field.
func (_u *InsurancePolicyUpdate) ClearPlanName() *InsurancePolicyUpdate {
	_u.mutation.ClearPlanName()
	return _u
}

// SetCommencementDate sets the "commencement_date" field.
func (_u *InsurancePolicyUpdate) SetCommencementDate(v time.Time) *InsurancePolicyUpdate {
	_u.mutation.SetCommencementDate(v)
	return _u
}

// SetNillableCommencementDate sets the "commencement_date" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableCommencementDate(v *time.Time) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetCommencementDate(*v)
	}
	return _u
}

// ClearCommencementDate clears the value of the "commencement_date" field.
func (_u *InsurancePolicyUpdate) ClearCommencementDate() *InsurancePolicyUpdate {
	_u.mutation.ClearCommencementDate()
	return _u
}

// SetPaymentMode sets the "payment_mode" field.
func (_u *InsurancePolicyUpdate) SetPaymentMode(v string) *InsurancePolicyUpdate {
	_u.mutation.SetPaymentMode(v)
	return _u
}

// SetNillablePaymentMode sets the "payment_mode" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillablePaymentMode(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetPaymentMode(*v)
	}
	return _u
}

// ClearPaymentMode clears the value of the "payment_mode" field.
func (_u *InsurancePolicyUpdate) ClearPaymentMode() *InsurancePolicyUpdate {
	_u.mutation.ClearPaymentMode()
	return _u
}

// SetFupDueDate sets the "fup_due_date" field.
func (_u *InsurancePolicyUpdate) SetFupDueDate(v time.Time) *InsurancePolicyUpdate {
	_u.mutation.SetFupDueDate(v)
	return _u
}

// SetNillableFupDueDate sets the "fup_due_date" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableFupDueDate(v *time.Time) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetFupDueDate(*v)
	}
	return _u
}

// ClearFupDueDate clears the value of the "fup_due_date" field.
func (_u *InsurancePolicyUpdate) ClearFupDueDate() *InsurancePolicyUpdate {
	_u.mutation.ClearFupDueDate()
	return _u
}

// SetSumAssured sets the "sum_assured" field.
func (_u *InsurancePolicyUpdate) SetSumAssured(v float64) *InsurancePolicyUpdate {
	_u.mutation.ResetSumAssured()
	_u.mutation.SetSumAssured(v)
	return _u
}

// SetNillableSumAssured sets the "sum_assured" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableSumAssured(v *float64) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetSumAssured(*v)
	}
	return _u
}

// AddSumAssured adds value to the "sum_assured" field.
func (_u *InsurancePolicyUpdate) AddSumAssured(v float64) *InsurancePolicyUpdate {
	_u.mutation.AddSumAssured(v)
	return _u
}

// ClearSumAssured clears the value of the "sum_assured" field.
func (_u *InsurancePolicyUpdate) ClearSumAssured() *InsurancePolicyUpdate {
	_u.mutation.ClearSumAssured()
	return _u
}

// SetPremiumAmount sets the "premium_amount" field.
func (_u *InsurancePolicyUpdate) SetPremiumAmount(v float64) *InsurancePolicyUpdate {
	_u.mutation.ResetPremiumAmount()
	_u.mutation.SetPremiumAmount(v)
	return _u
}

// SetNillablePremiumAmount sets the "premium_amount" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillablePremiumAmount(v *float64) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetPremiumAmount(*v)
	}
	return _u
}

// AddPremiumAmount adds value to the "premium_amount" field.
func (_u *InsurancePolicyUpdate) AddPremiumAmount(v float64) *InsurancePolicyUpdate {
	_u.mutation.AddPremiumAmount(v)
	return _u
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (_u *InsurancePolicyUpdate) ClearPremiumAmount() *InsurancePolicyUpdate {
	_u.mutation.ClearPremiumAmount()
	return _u
}

// SetPolicyTerm sets the "policy_term" field.
func (_u *InsurancePolicyUpdate) SetPolicyTerm(v int) *InsurancePolicyUpdate {
	_u.mutation.ResetPolicyTerm()
	_u.mutation.SetPolicyTerm(v)
	return _u
}

// SetNillablePolicyTerm sets the "policy_term" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillablePolicyTerm(v *int) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetPolicyTerm(*v)
	}
	return _u
}

// AddPolicyTerm adds value to the "policy_term" field.
func (_u *InsurancePolicyUpdate) AddPolicyTerm(v int) *InsurancePolicyUpdate {
	_u.mutation.AddPolicyTerm(v)
	return _u
}

// ClearPolicyTerm clears the value of the "policy_term" field.
func (_u *InsurancePolicyUpdate) ClearPolicyTerm() *InsurancePolicyUpdate {
	_u.mutation.ClearPolicyTerm()
	return _u
}

// SetPremiumPayingTerm sets the "premium_paying_term" field.
func (_u *InsurancePolicyUpdate) SetPremiumPayingTerm(v int) *InsurancePolicyUpdate {
	_u.mutation.ResetPremiumPayingTerm()
	_u.mutation.SetPremiumPayingTerm(v)
	return _u
}

// SetNillablePremiumPayingTerm sets the "premium_paying_term" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillablePremiumPayingTerm(v *int) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetPremiumPayingTerm(*v)
	}
	return _u
}

// AddPremiumPayingTerm adds value to the "premium_paying_term" field.
func (_u *InsurancePolicyUpdate) AddPremiumPayingTerm(v int) *InsurancePolicyUpdate {
	_u.mutation.AddPremiumPayingTerm(v)
	return _u
}

// ClearPremiumPayingTerm clears the value of the "premium_paying_term" field.
func (_u *InsurancePolicyUpdate) ClearPremiumPayingTerm() *InsurancePolicyUpdate {
	_u.mutation.ClearPremiumPayingTerm()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InsurancePolicyUpdate) SetStatus(v string) *InsurancePolicyUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableStatus(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *InsurancePolicyUpdate) SetExtractionMethod(v string) *InsurancePolicyUpdate {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableExtractionMethod(v *string) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InsurancePolicyUpdate) SetCreatedAt(v time.Time) *InsurancePolicyUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InsurancePolicyUpdate) SetNillableCreatedAt(v *time.Time) *InsurancePolicyUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsurancePolicyUpdate) SetUpdatedAt(v time.Time) *InsurancePolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *InsurancePolicyUpdate) SetCustomer(v *Customer) *InsurancePolicyUpdate {
	return _u.SetCustomerID(v.ID)
}

// AddPremiumRecordIDs adds the "premium_records" edge to the PremiumRecord entity by IDs.
func (_u *InsurancePolicyUpdate) AddPremiumRecordIDs(ids ...uuid.UUID) *InsurancePolicyUpdate {
	_u.mutation.AddPremiumRecordIDs(ids...)
	return _u
}

// AddPremiumRecords adds the "premium_records" edges to the PremiumRecord entity.
func (_u *InsurancePolicyUpdate) AddPremiumRecords(v ...*PremiumRecord) *InsurancePolicyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPremiumRecordIDs(ids...)
}

// Mutation returns the InsurancePolicyMutation object of the builder.
func (_u *InsurancePolicyUpdate) Mutation() *InsurancePolicyMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *InsurancePolicyUpdate) ClearCustomer() *InsurancePolicyUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearPremiumRecords clears all "premium_records" edges to the PremiumRecord entity.
func (_u *InsurancePolicyUpdate) ClearPremiumRecords() *InsurancePolicyUpdate {
	_u.mutation.ClearPremiumRecords()
	return _u
}

// RemovePremiumRecordIDs removes the "premium_records" edge to PremiumRecord entities by IDs.
func (_u *InsurancePolicyUpdate) RemovePremiumRecordIDs(ids ...uuid.UUID) *InsurancePolicyUpdate {
	_u.mutation.RemovePremiumRecordIDs(ids...)
	return _u
}

// RemovePremiumRecords removes "premium_records" edges to PremiumRecord entities.
func (_u *InsurancePolicyUpdate) RemovePremiumRecords(v ...*PremiumRecord) *InsurancePolicyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePremiumRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsurancePolicyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsurancePolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsurancePolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsurancePolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InsurancePolicyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := insurancepolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsurancePolicyUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := insurancepolicy.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InsurancePolicy.status": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InsurancePolicy.customer"`)
	}
	return nil
}

func (_u *InsurancePolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insurancepolicy.Table, insurancepolicy.Columns, sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentCode(); ok {
		_spec.SetField(insurancepolicy.FieldAgentCode, field.TypeString, value)
	}
	if _u.mutation.AgentCodeCleared() {
		_spec.ClearField(insurancepolicy.FieldAgentCode, field.TypeString)
	}
	if value, ok := _u.mutation.PlanType(); ok {
		_spec.SetField(insurancepolicy.FieldPlanType, field.TypeString, value)
	}
	if _u.mutation.PlanTypeCleared() {
		_spec.ClearField(insurancepolicy.FieldPlanType, field.TypeString)
	}
	if value, ok := _u.mutation.PlanName(); ok {
		_spec.SetField(insurancepolicy.FieldPlanName, field.TypeString, value)
	}
	if _u.mutation.PlanNameCleared() {
		_spec.ClearField(insurancepolicy.FieldPlanName, field.TypeString)
	}
	if value, ok := _u.mutation.CommencementDate(); ok {
		_spec.SetField(insurancepolicy.FieldCommencementDate, field.TypeTime, value)
	}
	if _u.mutation.CommencementDateCleared() {
		_spec.ClearField(insurancepolicy.FieldCommencementDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PaymentMode(); ok {
		_spec.SetField(insurancepolicy.FieldPaymentMode, field.TypeString, value)
	}
	if _u.mutation.PaymentModeCleared() {
		_spec.ClearField(insurancepolicy.FieldPaymentMode, field.TypeString)
	}
	if value, ok := _u.mutation.FupDueDate(); ok {
		_spec.SetField(insurancepolicy.FieldFupDueDate, field.TypeTime, value)
	}
	if _u.mutation.FupDueDateCleared() {
		_spec.ClearField(insurancepolicy.FieldFupDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SumAssured(); ok {
		_spec.SetField(insurancepolicy.FieldSumAssured, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSumAssured(); ok {
		_spec.AddField(insurancepolicy.FieldSumAssured, field.TypeFloat64, value)
	}
	if _u.mutation.SumAssuredCleared() {
		_spec.ClearField(insurancepolicy.FieldSumAssured, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PremiumAmount(); ok {
		_spec.SetField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPremiumAmount(); ok {
		_spec.AddField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if _u.mutation.PremiumAmountCleared() {
		_spec.ClearField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PolicyTerm(); ok {
		_spec.SetField(insurancepolicy.FieldPolicyTerm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPolicyTerm(); ok {
		_spec.AddField(insurancepolicy.FieldPolicyTerm, field.TypeInt, value)
	}
	if _u.mutation.PolicyTermCleared() {
		_spec.ClearField(insurancepolicy.FieldPolicyTerm, field.TypeInt)
	}
	if value, ok := _u.mutation.PremiumPayingTerm(); ok {
		_spec.SetField(insurancepolicy.FieldPremiumPayingTerm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPremiumPayingTerm(); ok {
		_spec.AddField(insurancepolicy.FieldPremiumPayingTerm, field.TypeInt, value)
	}
	if _u.mutation.PremiumPayingTermCleared() {
		_spec.ClearField(insurancepolicy.FieldPremiumPayingTerm, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(insurancepolicy.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(insurancepolicy.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CustomerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insurancepolicy.CustomerTable,
			Columns: []string{insurancepolicy.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insurancepolicy.CustomerTable,
			Columns: []string{insurancepolicy.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PremiumRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insurancepolicy.PremiumRecordsTable,
			Columns: []string{insurancepolicy.PremiumRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPremiumRecordsIDs(); len(nodes) > 0 && !_u.mutation.PremiumRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insurancepolicy.PremiumRecordsTable,
			Columns: []string{insurancepolicy.PremiumRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PremiumRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insurancepolicy.PremiumRecordsTable,
			Columns: []string{insurancepolicy.PremiumRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insurancepolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsurancePolicyUpdateOne is the builder for updating a single InsurancePolicy entity.
type InsurancePolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsurancePolicyMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *InsurancePolicyUpdateOne) SetCustomerID(v uuid.UUID) *InsurancePolicyUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableCustomerID(v *uuid.UUID) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetAgentCode sets the "agent_code" field.
func (_u *InsurancePolicyUpdateOne) SetAgentCode(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetAgentCode(v)
	return _u
}

// SetNillableAgentCode sets the "agent_code" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableAgentCode(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetAgentCode(*v)
	}
	return _u
}

// ClearAgentCode clears the value of the "agent_code" field.
func (_u *InsurancePolicyUpdateOne) ClearAgentCode() *InsurancePolicyUpdateOne {
	_u.mutation.ClearAgentCode()
	return _u
}

// SetPlanType sets the "plan_type" field.
func (_u *InsurancePolicyUpdateOne) SetPlanType(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetPlanType(v)
	return _u
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillablePlanType(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetPlanType(*v)
	}
	return _u
}

// ClearPlanType clears the value of the "plan_type" field.
func (_u *InsurancePolicyUpdateOne) ClearPlanType() *InsurancePolicyUpdateOne {
	_u.mutation.ClearPlanType()
	return _u
}

// SetPlanName sets the "plan_name" field.
func (_u *InsurancePolicyUpdateOne) SetPlanName(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetPlanName(v)
	return _u
}

// SetNillablePlanName sets the "plan_name" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillablePlanName(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetPlanName(*v)
	}
	return _u
}

// ClearPlanName clears the value of the "plan_name" field.
func (_u *InsurancePolicyUpdateOne) ClearPlanName() *InsurancePolicyUpdateOne {
	_u.mutation.ClearPlanName()
	return _u
}

// SetCommencementDate sets the "commencement_date" field.
func (_u *InsurancePolicyUpdateOne) SetCommencementDate(v time.Time) *InsurancePolicyUpdateOne {
	_u.mutation.SetCommencementDate(v)
	return _u
}

// SetNillableCommencementDate sets the "commencement_date" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableCommencementDate(v *time.Time) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetCommencementDate(*v)
	}
	return _u
}

// ClearCommencementDate clears the value of the "commencement_date" field.
func (_u *InsurancePolicyUpdateOne) ClearCommencementDate() *InsurancePolicyUpdateOne {
	_u.mutation.ClearCommencementDate()
	return _u
}

// SetPaymentMode sets the "payment_mode" field.
func (_u *InsurancePolicyUpdateOne) SetPaymentMode(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetPaymentMode(v)
	return _u
}

// SetNillablePaymentMode sets the "payment_mode" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillablePaymentMode(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetPaymentMode(*v)
	}
	return _u
}

// ClearPaymentMode clears the value of the "payment_mode" field.
func (_u *InsurancePolicyUpdateOne) ClearPaymentMode() *InsurancePolicyUpdateOne {
	_u.mutation.ClearPaymentMode()
	return _u
}

// SetFupDueDate sets the "fup_due_date" field.
func (_u *InsurancePolicyUpdateOne) SetFupDueDate(v time.Time) *InsurancePolicyUpdateOne {
	_u.mutation.SetFupDueDate(v)
	return _u
}

// SetNillableFupDueDate sets the "fup_due_date" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableFupDueDate(v *time.Time) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetFupDueDate(*v)
	}
	return _u
}

// ClearFupDueDate clears the value of the "fup_due_date" field.
func (_u *InsurancePolicyUpdateOne) ClearFupDueDate() *InsurancePolicyUpdateOne {
	_u.mutation.ClearFupDueDate()
	return _u
}

// SetSumAssured sets the "sum_assured" field.
func (_u *InsurancePolicyUpdateOne) SetSumAssured(v float64) *InsurancePolicyUpdateOne {
	_u.mutation.ResetSumAssured()
	_u.mutation.SetSumAssured(v)
	return _u
}

// SetNillableSumAssured sets the "sum_assured" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableSumAssured(v *float64) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetSumAssured(*v)
	}
	return _u
}

// AddSumAssured adds value to the "sum_assured" field.
func (_u *InsurancePolicyUpdateOne) AddSumAssured(v float64) *InsurancePolicyUpdateOne {
	_u.mutation.AddSumAssured(v)
	return _u
}

// ClearSumAssured clears the value of the "sum_assured" field.
func (_u *InsurancePolicyUpdateOne) ClearSumAssured() *InsurancePolicyUpdateOne {
	_u.mutation.ClearSumAssured()
	return _u
}

// SetPremiumAmount sets the "premium_amount" field.
func (_u *InsurancePolicyUpdateOne) SetPremiumAmount(v float64) *InsurancePolicyUpdateOne {
	_u.mutation.ResetPremiumAmount()
	_u.mutation.SetPremiumAmount(v)
	return _u
}

// SetNillablePremiumAmount sets the "premium_amount" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillablePremiumAmount(v *float64) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetPremiumAmount(*v)
	}
	return _u
}

// AddPremiumAmount adds value to the "premium_amount" field.
func (_u *InsurancePolicyUpdateOne) AddPremiumAmount(v float64) *InsurancePolicyUpdateOne {
	_u.mutation.AddPremiumAmount(v)
	return _u
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (_u *InsurancePolicyUpdateOne) ClearPremiumAmount() *InsurancePolicyUpdateOne {
	_u.mutation.ClearPremiumAmount()
	return _u
}

// SetPolicyTerm sets the "policy_term" field.
func (_u *InsurancePolicyUpdateOne) SetPolicyTerm(v int) *InsurancePolicyUpdateOne {
	_u.mutation.ResetPolicyTerm()
	_u.mutation.SetPolicyTerm(v)
	return _u
}

// SetNillablePolicyTerm sets the "policy_term" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillablePolicyTerm(v *int) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetPolicyTerm(*v)
	}
	return _u
}

// AddPolicyTerm adds value to the "policy_term" field.
func (_u *InsurancePolicyUpdateOne) AddPolicyTerm(v int) *InsurancePolicyUpdateOne {
	_u.mutation.AddPolicyTerm(v)
	return _u
}

// ClearPolicyTerm clears the value of the "policy_term" field.
func (_u *InsurancePolicyUpdateOne) ClearPolicyTerm() *InsurancePolicyUpdateOne {
	_u.mutation.ClearPolicyTerm()
	return _u
}

// SetPremiumPayingTerm sets the "premium_paying_term" field.
func (_u *InsurancePolicyUpdateOne) SetPremiumPayingTerm(v int) *InsurancePolicyUpdateOne {
	_u.mutation.ResetPremiumPayingTerm()
	_u.mutation.SetPremiumPayingTerm(v)
	return _u
}

// SetNillablePremiumPayingTerm sets the "premium_paying_term" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillablePremiumPayingTerm(v *int) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetPremiumPayingTerm(*v)
	}
	return _u
}

// AddPremiumPayingTerm adds value to the "premium_paying_term" field.
func (_u *InsurancePolicyUpdateOne) AddPremiumPayingTerm(v int) *InsurancePolicyUpdateOne {
	_u.mutation.AddPremiumPayingTerm(v)
	return _u
}

// ClearPremiumPayingTerm clears the value of the "premium_paying_term" field.
func (_u *InsurancePolicyUpdateOne) ClearPremiumPayingTerm() *InsurancePolicyUpdateOne {
	_u.mutation.ClearPremiumPayingTerm()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InsurancePolicyUpdateOne) SetStatus(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableStatus(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractionMethod sets the "extraction_method" field.
func (_u *InsurancePolicyUpdateOne) SetExtractionMethod(v string) *InsurancePolicyUpdateOne {
	_u.mutation.SetExtractionMethod(v)
	return _u
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableExtractionMethod(v *string) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetExtractionMethod(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InsurancePolicyUpdateOne) SetCreatedAt(v time.Time) *InsurancePolicyUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InsurancePolicyUpdateOne) SetNillableCreatedAt(v *time.Time) *InsurancePolicyUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsurancePolicyUpdateOne) SetUpdatedAt(v time.Time) *InsurancePolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *InsurancePolicyUpdateOne) SetCustomer(v *Customer) *InsurancePolicyUpdateOne {
	return _u.SetCustomerID(v.ID)
}

// AddPremiumRecordIDs adds the "premium_records" edge to the PremiumRecord entity by IDs.
func (_u *InsurancePolicyUpdateOne) AddPremiumRecordIDs(ids ...uuid.UUID) *InsurancePolicyUpdateOne {
	_u.mutation.AddPremiumRecordIDs(ids...)
	return _u
}

// AddPremiumRecords adds the "premium_records" edges to the PremiumRecord entity.
func (_u *InsurancePolicyUpdateOne) AddPremiumRecords(v ...*PremiumRecord) *InsurancePolicyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPremiumRecordIDs(ids...)
}

// Mutation returns the InsurancePolicyMutation object of the builder.
func (_u *InsurancePolicyUpdateOne) Mutation() *InsurancePolicyMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *InsurancePolicyUpdateOne) ClearCustomer() *InsurancePolicyUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// ClearPremiumRecords clears all "premium_records" edges to the PremiumRecord entity.
func (_u *InsurancePolicyUpdateOne) ClearPremiumRecords() *InsurancePolicyUpdateOne {
	_u.mutation.ClearPremiumRecords()
	return _u
}

// RemovePremiumRecordIDs removes the "premium_records" edge to PremiumRecord entities by IDs.
func (_u *InsurancePolicyUpdateOne) RemovePremiumRecordIDs(ids ...uuid.UUID) *InsurancePolicyUpdateOne {
	_u.mutation.RemovePremiumRecordIDs(ids...)
	return _u
}

// RemovePremiumRecords removes "premium_records" edges to PremiumRecord entities.
func (_u *InsurancePolicyUpdateOne) RemovePremiumRecords(v ...*PremiumRecord) *InsurancePolicyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePremiumRecordIDs(ids...)
}

// Where appends a list predicates to the InsurancePolicyUpdate builder.
func (_u *InsurancePolicyUpdateOne) Where(ps ...predicate.InsurancePolicy) *InsurancePolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsurancePolicyUpdateOne) Select(field string, fields ...string) *InsurancePolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InsurancePolicy entity.
func (_u *InsurancePolicyUpdateOne) Save(ctx context.Context) (*InsurancePolicy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsurancePolicyUpdateOne) SaveX(ctx context.Context) *InsurancePolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsurancePolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsurancePolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InsurancePolicyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := insurancepolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsurancePolicyUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := insurancepolicy.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InsurancePolicy.status": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InsurancePolicy.customer"`)
	}
	return nil
}

func (_u *InsurancePolicyUpdateOne) sqlSave(ctx context.Context) (_node *InsurancePolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insurancepolicy.Table, insurancepolicy.Columns, sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InsurancePolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insurancepolicy.FieldID)
		for _, f := range fields {
			if !insurancepolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insurancepolicy.FieldID {
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
	if value, ok := _u.mutation.AgentCode(); ok {
		_spec.SetField(insurancepolicy.FieldAgentCode, field.TypeString, value)
	}
	if _u.mutation.AgentCodeCleared() {
		_spec.ClearField(insurancepolicy.FieldAgentCode, field.TypeString)
	}
	if value, ok := _u.mutation.PlanType(); ok {
		_spec.SetField(insurancepolicy.FieldPlanType, field.TypeString, value)
	}
	if _u.mutation.PlanTypeCleared() {
		_spec.ClearField(insurancepolicy.FieldPlanType, field.TypeString)
	}
	if value, ok := _u.mutation.PlanName(); ok {
		_spec.SetField(insurancepolicy.FieldPlanName, field.TypeString, value)
	}
	if _u.mutation.PlanNameCleared() {
		_spec.ClearField(insurancepolicy.FieldPlanName, field.TypeString)
	}
	if value, ok := _u.mutation.CommencementDate(); ok {
		_spec.SetField(insurancepolicy.FieldCommencementDate, field.TypeTime, value)
	}
	if _u.mutation.CommencementDateCleared() {
		_spec.ClearField(insurancepolicy.FieldCommencementDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PaymentMode(); ok {
		_spec.SetField(insurancepolicy.FieldPaymentMode, field.TypeString, value)
	}
	if _u.mutation.PaymentModeCleared() {
		_spec.ClearField(insurancepolicy.FieldPaymentMode, field.TypeString)
	}
	if value, ok := _u.mutation.FupDueDate(); ok {
		_spec.SetField(insurancepolicy.FieldFupDueDate, field.TypeTime, value)
	}
	if _u.mutation.FupDueDateCleared() {
		_spec.ClearField(insurancepolicy.FieldFupDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SumAssured(); ok {
		_spec.SetField(insurancepolicy.FieldSumAssured, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSumAssured(); ok {
		_spec.AddField(insurancepolicy.FieldSumAssured, field.TypeFloat64, value)
	}
	if _u.mutation.SumAssuredCleared() {
		_spec.ClearField(insurancepolicy.FieldSumAssured, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PremiumAmount(); ok {
		_spec.SetField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPremiumAmount(); ok {
		_spec.AddField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64, value)
	}
	if _u.mutation.PremiumAmountCleared() {
		_spec.ClearField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PolicyTerm(); ok {
		_spec.SetField(insurancepolicy.FieldPolicyTerm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPolicyTerm(); ok {
		_spec.AddField(insurancepolicy.FieldPolicyTerm, field.TypeInt, value)
	}
	if _u.mutation.PolicyTermCleared() {
		_spec.ClearField(insurancepolicy.FieldPolicyTerm, field.TypeInt)
	}
	if value, ok := _u.mutation.PremiumPayingTerm(); ok {
		_spec.SetField(insurancepolicy.FieldPremiumPayingTerm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPremiumPayingTerm(); ok {
		_spec.AddField(insurancepolicy.FieldPremiumPayingTerm, field.TypeInt, value)
	}
	if _u.mutation.PremiumPayingTermCleared() {
		_spec.ClearField(insurancepolicy.FieldPremiumPayingTerm, field.TypeInt)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(insurancepolicy.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionMethod(); ok {
		_spec.SetField(insurancepolicy.FieldExtractionMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CustomerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insurancepolicy.CustomerTable,
			Columns: []string{insurancepolicy.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insurancepolicy.CustomerTable,
			Columns: []string{insurancepolicy.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PremiumRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insurancepolicy.PremiumRecordsTable,
			Columns: []string{insurancepolicy.PremiumRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPremiumRecordsIDs(); len(nodes) > 0 && !_u.mutation.PremiumRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insurancepolicy.PremiumRecordsTable,
			Columns: []string{insurancepolicy.PremiumRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PremiumRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insurancepolicy.PremiumRecordsTable,
			Columns: []string{insurancepolicy.PremiumRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InsurancePolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insurancepolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
