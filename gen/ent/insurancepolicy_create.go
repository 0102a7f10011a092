// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/customer"
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
	"github.com/rsubramani/policy-tracker/gen/ent/premiumrecord"
)

// InsurancePolicyCreate is the builder for creating a InsurancePolicy entity.
type InsurancePolicyCreate struct {
	config
	mutation *InsurancePolicyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPolicyNumber sets the "policy_number" field.
func (_c *InsurancePolicyCreate) SetPolicyNumber(v string) *InsurancePolicyCreate {
	_c.mutation.SetPolicyNumber(v)
	return _c
}

// SetCustomerID sets the "customer_id" field.
func (_c *InsurancePolicyCreate) SetCustomerID(v uuid.UUID) *InsurancePolicyCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetAgentCode sets the "agent_code" field.
func (_c *InsurancePolicyCreate) SetAgentCode(v string) *InsurancePolicyCreate {
	_c.mutation.SetAgentCode(v)
	return _c
}

// SetNillableAgentCode sets the "agent_code" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableAgentCode(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetAgentCode(*v)
	}
	return _c
}

// SetPlanType sets the "plan_type" field.
func (_c *InsurancePolicyCreate) SetPlanType(v string) *InsurancePolicyCreate {
	_c.mutation.SetPlanType(v)
	return _c
}

// SetNillablePlanType sets the "plan_type" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillablePlanType(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetPlanType(*v)
	}
	return _c
}

// SetPlanName sets the "plan_name" field.
func (_c *InsurancePolicyCreate) SetPlanName(v string) *InsurancePolicyCreate {
	_c.mutation.SetPlanName(v)
	return _c
}

// SetNillablePlanName sets the "plan_name" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillablePlanName(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetPlanName(*v)
	}
	return _c
}

// SetCommencementDate sets the "commencement_date" field.
func (_c *InsurancePolicyCreate) SetCommencementDate(v time.Time) *InsurancePolicyCreate {
	_c.mutation.SetCommencementDate(v)
	return _c
}

// SetNillableCommencementDate sets the "commencement_date" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableCommencementDate(v *time.Time) *InsurancePolicyCreate {
	if v != nil {
		_c.SetCommencementDate(*v)
	}
	return _c
}

// SetPaymentMode sets the "payment_mode" field.
func (_c *InsurancePolicyCreate) SetPaymentMode(v string) *InsurancePolicyCreate {
	_c.mutation.SetPaymentMode(v)
	return _c
}

// SetNillablePaymentMode sets the "payment_mode" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillablePaymentMode(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetPaymentMode(*v)
	}
	return _c
}

// SetFupDueDate sets the "fup_due_date" field.
func (_c *InsurancePolicyCreate) SetFupDueDate(v time.Time) *InsurancePolicyCreate {
	_c.mutation.SetFupDueDate(v)
	return _c
}

// SetNillableFupDueDate sets the "fup_due_date" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableFupDueDate(v *time.Time) *InsurancePolicyCreate {
	if v != nil {
		_c.SetFupDueDate(*v)
	}
	return _c
}

// SetSumAssured sets the "sum_assured" field.
func (_c *InsurancePolicyCreate) SetSumAssured(v float64) *InsurancePolicyCreate {
	_c.mutation.SetSumAssured(v)
	return _c
}

// SetNillableSumAssured sets the "sum_assured" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableSumAssured(v *float64) *InsurancePolicyCreate {
	if v != nil {
		_c.SetSumAssured(*v)
	}
	return _c
}

// SetPremiumAmount sets the "premium_amount" field.
func (_c *InsurancePolicyCreate) SetPremiumAmount(v float64) *InsurancePolicyCreate {
	_c.mutation.SetPremiumAmount(v)
	return _c
}

// SetNillablePremiumAmount sets the "premium_amount" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillablePremiumAmount(v *float64) *InsurancePolicyCreate {
	if v != nil {
		_c.SetPremiumAmount(*v)
	}
	return _c
}

// SetPolicyTerm sets the "policy_term" field.
func (_c *InsurancePolicyCreate) SetPolicyTerm(v int) *InsurancePolicyCreate {
	_c.mutation.SetPolicyTerm(v)
	return _c
}

// SetNillablePolicyTerm sets the "policy_term" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillablePolicyTerm(v *int) *InsurancePolicyCreate {
	if v != nil {
		_c.SetPolicyTerm(*v)
	}
	return _c
}

// SetPremiumPayingTerm sets the "premium_paying_term" field.
func (_c *InsurancePolicyCreate) SetPremiumPayingTerm(v int) *InsurancePolicyCreate {
	_c.mutation.SetPremiumPayingTerm(v)
	return _c
}

// SetNillablePremiumPayingTerm sets the "premium_paying_term" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillablePremiumPayingTerm(v *int) *InsurancePolicyCreate {
	if v != nil {
		_c.SetPremiumPayingTerm(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InsurancePolicyCreate) SetStatus(v string) *InsurancePolicyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableStatus(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExtractionMethod sets the "extraction_method" field.
func (_c *InsurancePolicyCreate) SetExtractionMethod(v string) *InsurancePolicyCreate {
	_c.mutation.SetExtractionMethod(v)
	return _c
}

// SetNillableExtractionMethod sets the "extraction_method" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableExtractionMethod(v *string) *InsurancePolicyCreate {
	if v != nil {
		_c.SetExtractionMethod(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsurancePolicyCreate) SetCreatedAt(v time.Time) *InsurancePolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableCreatedAt(v *time.Time) *InsurancePolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InsurancePolicyCreate) SetUpdatedAt(v time.Time) *InsurancePolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableUpdatedAt(v *time.Time) *InsurancePolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsurancePolicyCreate) SetID(v uuid.UUID) *InsurancePolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InsurancePolicyCreate) SetNillableID(v *uuid.UUID) *InsurancePolicyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_c *InsurancePolicyCreate) SetCustomer(v *Customer) *InsurancePolicyCreate {
	return _c.SetCustomerID(v.ID)
}

// AddPremiumRecordIDs adds the "premium_records" edge to the PremiumRecord entity by IDs.
func (_c *InsurancePolicyCreate) AddPremiumRecordIDs(ids ...uuid.UUID) *InsurancePolicyCreate {
	_c.mutation.AddPremiumRecordIDs(ids...)
	return _c
}

// AddPremiumRecords adds the "premium_records" edges to the PremiumRecord entity.
func (_c *InsurancePolicyCreate) AddPremiumRecords(v ...*PremiumRecord) *InsurancePolicyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPremiumRecordIDs(ids...)
}

// Mutation returns the InsurancePolicyMutation object of the builder.
func (_c *InsurancePolicyCreate) Mutation() *InsurancePolicyMutation {
	return _c.mutation
}

// Save creates the InsurancePolicy in the database.
func (_c *InsurancePolicyCreate) Save(ctx context.Context) (*InsurancePolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsurancePolicyCreate) SaveX(ctx context.Context) *InsurancePolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsurancePolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsurancePolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsurancePolicyCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := insurancepolicy.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ExtractionMethod(); !ok {
		v := insurancepolicy.DefaultExtractionMethod
		_c.mutation.SetExtractionMethod(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insurancepolicy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := insurancepolicy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := insurancepolicy.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsurancePolicyCreate) check() error {
	if _, ok := _c.mutation.PolicyNumber(); !ok {
		return &ValidationError{Name: "policy_number", err: errors.New(`ent: missing required field "InsurancePolicy.policy_number"`)}
	}
	if v, ok := _c.mutation.PolicyNumber(); ok {
		if err := insurancepolicy.PolicyNumberValidator(v); err != nil {
			return &ValidationError{Name: "policy_number", err: fmt.Errorf(`ent: validator failed for field "InsurancePolicy.policy_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "InsurancePolicy.customer_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InsurancePolicy.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := insurancepolicy.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InsurancePolicy.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionMethod(); !ok {
		return &ValidationError{Name: "extraction_method", err: errors.New(`ent: missing required field "InsurancePolicy.extraction_method"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InsurancePolicy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InsurancePolicy.updated_at"`)}
	}
	if len(_c.mutation.CustomerIDs()) == 0 {
		return &ValidationError{Name: "customer", err: errors.New(`ent: missing required edge "InsurancePolicy.customer"`)}
	}
	return nil
}

func (_c *InsurancePolicyCreate) sqlSave(ctx context.Context) (*InsurancePolicy, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsurancePolicyCreate) createSpec() (*InsurancePolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &InsurancePolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insurancepolicy.Table, sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PolicyNumber(); ok {
		_spec.SetField(insurancepolicy.FieldPolicyNumber, field.TypeString, value)
		_node.PolicyNumber = value
	}
	if value, ok := _c.mutation.AgentCode(); ok {
		_spec.SetField(insurancepolicy.FieldAgentCode, field.TypeString, value)
		_node.AgentCode = &value
	}
	if value, ok := _c.mutation.PlanType(); ok {
		_spec.SetField(insurancepolicy.FieldPlanType, field.TypeString, value)
		_node.PlanType = &value
	}
	if value, ok := _c.mutation.PlanName(); ok {
		_spec.SetField(insurancepolicy.FieldPlanName, field.TypeString, value)
		_node.PlanName = &value
	}
	if value, ok := _c.mutation.CommencementDate(); ok {
		_spec.SetField(insurancepolicy.FieldCommencementDate, field.TypeTime, value)
		_node.CommencementDate = &value
	}
	if value, ok := _c.mutation.PaymentMode(); ok {
		_spec.SetField(insurancepolicy.FieldPaymentMode, field.TypeString, value)
		_node.PaymentMode = &value
	}
	if value, ok := _c.mutation.FupDueDate(); ok {
		_spec.SetField(insurancepolicy.FieldFupDueDate, field.TypeTime, value)
		_node.FupDueDate = &value
	}
	if value, ok := _c.mutation.SumAssured(); ok {
		_spec.SetField(insurancepolicy.FieldSumAssured, field.TypeFloat64, value)
		_node.SumAssured = &value
	}
	if value, ok := _c.mutation.PremiumAmount(); ok {
		_spec.SetField(insurancepolicy.FieldPremiumAmount, field.TypeFloat64, value)
		_node.PremiumAmount = &value
	}
	if value, ok := _c.mutation.PolicyTerm(); ok {
		_spec.SetField(insurancepolicy.FieldPolicyTerm, field.TypeInt, value)
		_node.PolicyTerm = &value
	}
	if value, ok := _c.mutation.PremiumPayingTerm(); ok {
		_spec.SetField(insurancepolicy.FieldPremiumPayingTerm, field.TypeInt, value)
		_node.PremiumPayingTerm = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(insurancepolicy.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExtractionMethod(); ok {
		_spec.SetField(insurancepolicy.FieldExtractionMethod, field.TypeString, value)
		_node.ExtractionMethod = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(insurancepolicy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CustomerIDs(); len(nodes) > 0 {
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
		_node.CustomerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PremiumRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InsurancePolicy.Create().
//		SetPolicyNumber(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsurancePolicyUpsert) {
//			SetPolicyNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *InsurancePolicyCreate) OnConflict(opts ...sql.ConflictOption) *InsurancePolicyUpsertOne {
	_c.conflict = opts
	return &InsurancePolicyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InsurancePolicy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsurancePolicyCreate) OnConflictColumns(columns ...string) *InsurancePolicyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsurancePolicyUpsertOne{
		create: _c,
	}
}

type (
	// InsurancePolicyUpsertOne is the builder for "upsert"-ing
	//  one InsurancePolicy node.
	InsurancePolicyUpsertOne struct {
		create *InsurancePolicyCreate
	}

	// InsurancePolicyUpsert is the "OnConflict" setter.
	InsurancePolicyUpsert struct {
		*sql.UpdateSet
	}
)

// SetCustomerID sets the "customer_id" field.
func (u *InsurancePolicyUpsert) SetCustomerID(v uuid.UUID) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldCustomerID, v)
	return u
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdateCustomerID() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldCustomerID)
	return u
}

// SetAgentCode sets the "agent_code" field.
func (u *InsurancePolicyUpsert) SetAgentCode(v string) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldAgentCode, v)
	return u
}

// UpdateAgentCode sets the "agent_code" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdateAgentCode() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldAgentCode)
	return u
}

// ClearAgentCode clears the value of the "agent_code" field.
func (u *InsurancePolicyUpsert) ClearAgentCode() *InsurancePolicyUpsert {
	u.SetNull(insurancepolicy.FieldAgentCode)
	return u
}

// SetPlanType sets the "plan_type" field.
func (u *InsurancePolicyUpsert) SetPlanType(v string) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldPlanType, v)
	return u
}

// UpdatePlanType sets the "plan_type" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdatePlanType() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldPlanType)
	return u
}

// ClearPlanType clears the value of the "plan_type" field.
func (u *InsurancePolicyUpsert) ClearPlanType() *InsurancePolicyUpsert {
	u.SetNull(insurancepolicy.FieldPlanType)
	return u
}

// SetPlanName sets the "plan_name" field.
func (u *InsurancePolicyUpsert) SetPlanName(v string) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldPlanName, v)
	return u
}

// UpdatePlanName sets the "plan_name" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdatePlanName() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldPlanName)
	return u
}

// ClearPlanName clears the value of the "plan_name" field.
func (u *InsurancePolicyUpsert) ClearPlanName() *InsurancePolicyUpsert {
	u.SetNull(insurancepolicy.FieldPlanName)
	return u
}

// SetCommencementDate sets the "commencement_date" field.
func (u *InsurancePolicyUpsert) SetCommencementDate(v time.Time) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldCommencementDate, v)
	return u
}

// UpdateCommencementDate sets the "commencement_date" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdateCommencementDate() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldCommencementDate)
	return u
}

// ClearCommencementDate clears the value of the "commencement_date" field.
func (u *InsurancePolicyUpsert) ClearCommencementDate() *InsurancePolicyUpsert {
	u.SetNull(insurancepolicy.FieldCommencementDate)
	return u
}

// SetPaymentMode sets the "payment_mode" field.
func (u *InsurancePolicyUpsert) SetPaymentMode(v string) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldPaymentMode, v)
	return u
}

// UpdatePaymentMode sets the "payment_mode" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdatePaymentMode() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldPaymentMode)
	return u
}

// ClearPaymentMode clears the value of the "payment_mode" field.
func (u *InsurancePolicyUpsert) ClearPaymentMode() *InsurancePolicyUpsert {
	u.SetNull(insurancepolicy.FieldPaymentMode)
	return u
}

// SetFupDueDate sets the "fup_due_date" field.
func (u *InsurancePolicyUpsert) SetFupDueDate(v time.Time) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldFupDueDate, v)
	return u
}

// UpdateFupDueDate sets the "fup_due_date" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdateFupDueDate() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldFupDueDate)
	return u
}

// ClearFupDueDate clears the value of the "fup_due_date" field.
func (u *InsurancePolicyUpsert) ClearFupDueDate() *InsurancePolicyUpsert {
	u.SetNull(insurancepolicy.FieldFupDueDate)
	return u
}

// SetSumAssured sets the "sum_assured" field.
func (u *InsurancePolicyUpsert) SetSumAssured(v float64) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldSumAssured, v)
	return u
}

// UpdateSumAssured sets the "sum_assured" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdateSumAssured() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldSumAssured)
	return u
}

// AddSumAssured adds v to the "sum_assured" field.
func (u *InsurancePolicyUpsert) AddSumAssured(v float64) *InsurancePolicyUpsert {
	u.Add(insurancepolicy.FieldSumAssured, v)
	return u
}

// ClearSumAssured clears the value of the "sum_assured" field.
func (u *InsurancePolicyUpsert) ClearSumAssured() *InsurancePolicyUpsert {
	u.SetNull(insurancepolicy.FieldSumAssured)
	return u
}

// SetPremiumAmount sets the "premium_amount" field.
func (u *InsurancePolicyUpsert) SetPremiumAmount(v float64) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldPremiumAmount, v)
	return u
}

// UpdatePremiumAmount sets the "premium_amount" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdatePremiumAmount() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldPremiumAmount)
	return u
}

// AddPremiumAmount adds v to the "premium_amount" field.
func (u *InsurancePolicyUpsert) AddPremiumAmount(v float64) *InsurancePolicyUpsert {
	u.Add(insurancepolicy.FieldPremiumAmount, v)
	return u
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (u *InsurancePolicyUpsert) ClearPremiumAmount() *InsurancePolicyUpsert {
	u.SetNull(insurancepolicy.FieldPremiumAmount)
	return u
}

// SetPolicyTerm sets the "policy_term" field.
func (u *InsurancePolicyUpsert) SetPolicyTerm(v int) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldPolicyTerm, v)
	return u
}

// UpdatePolicyTerm sets the "policy_term" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdatePolicyTerm() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldPolicyTerm)
	return u
}

// AddPolicyTerm adds v to the "policy_term" field.
func (u *InsurancePolicyUpsert) AddPolicyTerm(v int) *InsurancePolicyUpsert {
	u.Add(insurancepolicy.FieldPolicyTerm, v)
	return u
}

// ClearPolicyTerm clears the value of the "policy_term" field.
func (u *InsurancePolicyUpsert) ClearPolicyTerm() *InsurancePolicyUpsert {
	u.SetNull(insurancepolicy.FieldPolicyTerm)
	return u
}

// SetPremiumPayingTerm sets the "premium_paying_term" field.
func (u *InsurancePolicyUpsert) SetPremiumPayingTerm(v int) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldPremiumPayingTerm, v)
	return u
}

// UpdatePremiumPayingTerm sets the "premium_paying_term" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdatePremiumPayingTerm() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldPremiumPayingTerm)
	return u
}

// AddPremiumPayingTerm adds v to the "premium_paying_term" field.
func (u *InsurancePolicyUpsert) AddPremiumPayingTerm(v int) *InsurancePolicyUpsert {
	u.Add(insurancepolicy.FieldPremiumPayingTerm, v)
	return u
}

// ClearPremiumPayingTerm clears the value of the "premium_paying_term" field.
func (u *InsurancePolicyUpsert) ClearPremiumPayingTerm() *InsurancePolicyUpsert {
	u.SetNull(insurancepolicy.FieldPremiumPayingTerm)
	return u
}

// SetStatus sets the "status" field.
func (u *InsurancePolicyUpsert) SetStatus(v string) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdateStatus() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldStatus)
	return u
}

// SetExtractionMethod sets the "extraction_method" field.
func (u *InsurancePolicyUpsert) SetExtractionMethod(v string) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldExtractionMethod, v)
	return u
}

// UpdateExtractionMethod sets the "extraction_method" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdateExtractionMethod() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldExtractionMethod)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *InsurancePolicyUpsert) SetCreatedAt(v time.Time) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdateCreatedAt() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InsurancePolicyUpsert) SetUpdatedAt(v time.Time) *InsurancePolicyUpsert {
	u.Set(insurancepolicy.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InsurancePolicyUpsert) UpdateUpdatedAt() *InsurancePolicyUpsert {
	u.SetExcluded(insurancepolicy.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InsurancePolicy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insurancepolicy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsurancePolicyUpsertOne) UpdateNewValues() *InsurancePolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(insurancepolicy.FieldID)
		}
		if _, exists := u.create.mutation.PolicyNumber(); exists {
			s.SetIgnore(insurancepolicy.FieldPolicyNumber)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InsurancePolicy.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InsurancePolicyUpsertOne) Ignore() *InsurancePolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsurancePolicyUpsertOne) DoNothing() *InsurancePolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsurancePolicyCreate.OnConflict
// documentation for more info.
func (u *InsurancePolicyUpsertOne) Update(set func(*InsurancePolicyUpsert)) *InsurancePolicyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsurancePolicyUpsert{UpdateSet: update})
	}))
	return u
}

// SetCustomerID sets the "customer_id" field.
func (u *InsurancePolicyUpsertOne) SetCustomerID(v uuid.UUID) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetCustomerID(v)
	})
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdateCustomerID() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateCustomerID()
	})
}

// SetAgentCode sets the "agent_code" field.
func (u *InsurancePolicyUpsertOne) SetAgentCode(v string) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetAgentCode(v)
	})
}

// UpdateAgentCode sets the "agent_code" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdateAgentCode() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateAgentCode()
	})
}

// ClearAgentCode clears the value of the "agent_code" field.
func (u *InsurancePolicyUpsertOne) ClearAgentCode() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearAgentCode()
	})
}

// SetPlanType sets the "plan_type" field.
func (u *InsurancePolicyUpsertOne) SetPlanType(v string) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPlanType(v)
	})
}

// UpdatePlanType sets the "plan_type" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdatePlanType() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePlanType()
	})
}

// ClearPlanType clears the value of the "plan_type" field.
func (u *InsurancePolicyUpsertOne) ClearPlanType() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPlanType()
	})
}

// SetPlanName sets the "plan_name" field.
func (u *InsurancePolicyUpsertOne) SetPlanName(v string) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPlanName(v)
	})
}

// UpdatePlanName sets the "plan_name" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdatePlanName() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePlanName()
	})
}

// ClearPlanName clears the value of the "plan_name" field.
func (u *InsurancePolicyUpsertOne) ClearPlanName() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPlanName()
	})
}

// SetCommencementDate sets the "commencement_date" field.
func (u *InsurancePolicyUpsertOne) SetCommencementDate(v time.Time) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetCommencementDate(v)
	})
}

// UpdateCommencementDate sets the "commencement_date" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdateCommencementDate() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateCommencementDate()
	})
}

// ClearCommencementDate clears the value of the "commencement_date" field.
func (u *InsurancePolicyUpsertOne) ClearCommencementDate() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearCommencementDate()
	})
}

// SetPaymentMode sets the "payment_mode" field.
func (u *InsurancePolicyUpsertOne) SetPaymentMode(v string) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPaymentMode(v)
	})
}

// UpdatePaymentMode sets the "payment_mode" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdatePaymentMode() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePaymentMode()
	})
}

// ClearPaymentMode clears the value of the "payment_mode" field.
func (u *InsurancePolicyUpsertOne) ClearPaymentMode() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPaymentMode()
	})
}

// SetFupDueDate sets the "fup_due_date" field.
func (u *InsurancePolicyUpsertOne) SetFupDueDate(v time.Time) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetFupDueDate(v)
	})
}

// UpdateFupDueDate sets the "fup_due_date" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdateFupDueDate() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateFupDueDate()
	})
}

// ClearFupDueDate clears the value of the "fup_due_date" field.
func (u *InsurancePolicyUpsertOne) ClearFupDueDate() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearFupDueDate()
	})
}

// SetSumAssured sets the "sum_assured" field.
func (u *InsurancePolicyUpsertOne) SetSumAssured(v float64) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetSumAssured(v)
	})
}

// AddSumAssured adds v to the "sum_assured" field.
func (u *InsurancePolicyUpsertOne) AddSumAssured(v float64) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.AddSumAssured(v)
	})
}

// UpdateSumAssured sets the "sum_assured" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdateSumAssured() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateSumAssured()
	})
}

// ClearSumAssured clears the value of the "sum_assured" field.
func (u *InsurancePolicyUpsertOne) ClearSumAssured() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearSumAssured()
	})
}

// SetPremiumAmount sets the "premium_amount" field.
func (u *InsurancePolicyUpsertOne) SetPremiumAmount(v float64) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPremiumAmount(v)
	})
}

// AddPremiumAmount adds v to the "premium_amount" field.
func (u *InsurancePolicyUpsertOne) AddPremiumAmount(v float64) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.AddPremiumAmount(v)
	})
}

// UpdatePremiumAmount sets the "premium_amount" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdatePremiumAmount() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePremiumAmount()
	})
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (u *InsurancePolicyUpsertOne) ClearPremiumAmount() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPremiumAmount()
	})
}

// SetPolicyTerm sets the "policy_term" field.
func (u *InsurancePolicyUpsertOne) SetPolicyTerm(v int) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPolicyTerm(v)
	})
}

// AddPolicyTerm adds v to the "policy_term" field.
func (u *InsurancePolicyUpsertOne) AddPolicyTerm(v int) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.AddPolicyTerm(v)
	})
}

// UpdatePolicyTerm sets the "policy_term" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdatePolicyTerm() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePolicyTerm()
	})
}

// ClearPolicyTerm clears the value of the "policy_term" field.
func (u *InsurancePolicyUpsertOne) ClearPolicyTerm() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPolicyTerm()
	})
}

// SetPremiumPayingTerm sets the "premium_paying_term" field.
func (u *InsurancePolicyUpsertOne) SetPremiumPayingTerm(v int) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPremiumPayingTerm(v)
	})
}

// AddPremiumPayingTerm adds v to the "premium_paying_term" field.
func (u *InsurancePolicyUpsertOne) AddPremiumPayingTerm(v int) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.AddPremiumPayingTerm(v)
	})
}

// UpdatePremiumPayingTerm sets the "premium_paying_term" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdatePremiumPayingTerm() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePremiumPayingTerm()
	})
}

// ClearPremiumPayingTerm clears the value of the "premium_paying_term" field.
func (u *InsurancePolicyUpsertOne) ClearPremiumPayingTerm() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPremiumPayingTerm()
	})
}

// SetStatus sets the "status" field.
func (u *InsurancePolicyUpsertOne) SetStatus(v string) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdateStatus() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateStatus()
	})
}

// SetExtractionMethod sets the "extraction_method" field.
func (u *InsurancePolicyUpsertOne) SetExtractionMethod(v string) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetExtractionMethod(v)
	})
}

// UpdateExtractionMethod sets the "extraction_method" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdateExtractionMethod() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateExtractionMethod()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *InsurancePolicyUpsertOne) SetCreatedAt(v time.Time) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdateCreatedAt() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InsurancePolicyUpsertOne) SetUpdatedAt(v time.Time) *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InsurancePolicyUpsertOne) UpdateUpdatedAt() *InsurancePolicyUpsertOne {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InsurancePolicyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsurancePolicyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsurancePolicyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InsurancePolicyUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InsurancePolicyUpsertOne.ID is not supported by MySQL driver. Use InsurancePolicyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InsurancePolicyUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InsurancePolicyCreateBulk is the builder for creating many InsurancePolicy entities in bulk.
type InsurancePolicyCreateBulk struct {
	config
	err      error
	builders []*InsurancePolicyCreate
	conflict []sql.ConflictOption
}

// Save creates the InsurancePolicy entities in the database.
func (_c *InsurancePolicyCreateBulk) Save(ctx context.Context) ([]*InsurancePolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InsurancePolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsurancePolicyMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *InsurancePolicyCreateBulk) SaveX(ctx context.Context) []*InsurancePolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsurancePolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsurancePolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InsurancePolicy.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsurancePolicyUpsert) {
//			SetPolicyNumber(v+v).
//		}).
//		Exec(ctx)
func (_c *InsurancePolicyCreateBulk) OnConflict(opts ...sql.ConflictOption) *InsurancePolicyUpsertBulk {
	_c.conflict = opts
	return &InsurancePolicyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InsurancePolicy.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsurancePolicyCreateBulk) OnConflictColumns(columns ...string) *InsurancePolicyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsurancePolicyUpsertBulk{
		create: _c,
	}
}

// InsurancePolicyUpsertBulk is the builder for "upsert"-ing
// a bulk of InsurancePolicy nodes.
type InsurancePolicyUpsertBulk struct {
	create *InsurancePolicyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InsurancePolicy.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insurancepolicy.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsurancePolicyUpsertBulk) UpdateNewValues() *InsurancePolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(insurancepolicy.FieldID)
			}
			if _, exists := b.mutation.PolicyNumber(); exists {
				s.SetIgnore(insurancepolicy.FieldPolicyNumber)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InsurancePolicy.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InsurancePolicyUpsertBulk) Ignore() *InsurancePolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsurancePolicyUpsertBulk) DoNothing() *InsurancePolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsurancePolicyCreateBulk.OnConflict
// documentation for more info.
func (u *InsurancePolicyUpsertBulk) Update(set func(*InsurancePolicyUpsert)) *InsurancePolicyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsurancePolicyUpsert{UpdateSet: update})
	}))
	return u
}

// SetCustomerID sets the "customer_id" field.
func (u *InsurancePolicyUpsertBulk) SetCustomerID(v uuid.UUID) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetCustomerID(v)
	})
}

// UpdateCustomerID sets the "customer_id" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdateCustomerID() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateCustomerID()
	})
}

// SetAgentCode sets the "agent_code" field.
func (u *InsurancePolicyUpsertBulk) SetAgentCode(v string) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetAgentCode(v)
	})
}

// UpdateAgentCode sets the "agent_code" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdateAgentCode() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateAgentCode()
	})
}

// ClearAgentCode clears the value of the "agent_code" field.
func (u *InsurancePolicyUpsertBulk) ClearAgentCode() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearAgentCode()
	})
}

// SetPlanType sets the "plan_type" field.
func (u *InsurancePolicyUpsertBulk) SetPlanType(v string) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPlanType(v)
	})
}

// UpdatePlanType sets the "plan_type" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdatePlanType() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePlanType()
	})
}

// ClearPlanType clears the value of the "plan_type" field.
func (u *InsurancePolicyUpsertBulk) ClearPlanType() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPlanType()
	})
}

// SetPlanName sets the "plan_name" field.
func (u *InsurancePolicyUpsertBulk) SetPlanName(v string) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPlanName(v)
	})
}

// UpdatePlanName sets the "plan_name" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdatePlanName() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePlanName()
	})
}

// ClearPlanName clears the value of the "plan_name" field.
func (u *InsurancePolicyUpsertBulk) ClearPlanName() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPlanName()
	})
}

// SetCommencementDate sets the "commencement_date" field.
func (u *InsurancePolicyUpsertBulk) SetCommencementDate(v time.Time) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetCommencementDate(v)
	})
}

// UpdateCommencementDate sets the "commencement_date" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdateCommencementDate() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateCommencementDate()
	})
}

// ClearCommencementDate clears the value of the "commencement_date" field.
func (u *InsurancePolicyUpsertBulk) ClearCommencementDate() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearCommencementDate()
	})
}

// SetPaymentMode sets the "payment_mode" field.
func (u *InsurancePolicyUpsertBulk) SetPaymentMode(v string) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPaymentMode(v)
	})
}

// UpdatePaymentMode sets the "payment_mode" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdatePaymentMode() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePaymentMode()
	})
}

// ClearPaymentMode clears the value of the "payment_mode" field.
func (u *InsurancePolicyUpsertBulk) ClearPaymentMode() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPaymentMode()
	})
}

// SetFupDueDate sets the "fup_due_date" field.
func (u *InsurancePolicyUpsertBulk) SetFupDueDate(v time.Time) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetFupDueDate(v)
	})
}

// UpdateFupDueDate sets the "fup_due_date" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdateFupDueDate() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateFupDueDate()
	})
}

// ClearFupDueDate clears the value of the "fup_due_date" field.
func (u *InsurancePolicyUpsertBulk) ClearFupDueDate() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearFupDueDate()
	})
}

// SetSumAssured sets the "sum_assured" field.
func (u *InsurancePolicyUpsertBulk) SetSumAssured(v float64) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetSumAssured(v)
	})
}

// AddSumAssured adds v to the "sum_assured" field.
func (u *InsurancePolicyUpsertBulk) AddSumAssured(v float64) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.AddSumAssured(v)
	})
}

// UpdateSumAssured sets the "sum_assured" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdateSumAssured() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateSumAssured()
	})
}

// ClearSumAssured clears the value of the "sum_assured" field.
func (u *InsurancePolicyUpsertBulk) ClearSumAssured() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearSumAssured()
	})
}

// SetPremiumAmount sets the "premium_amount" field.
func (u *InsurancePolicyUpsertBulk) SetPremiumAmount(v float64) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPremiumAmount(v)
	})
}

// AddPremiumAmount adds v to the "premium_amount" field.
func (u *InsurancePolicyUpsertBulk) AddPremiumAmount(v float64) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.AddPremiumAmount(v)
	})
}

// UpdatePremiumAmount sets the "premium_amount" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdatePremiumAmount() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePremiumAmount()
	})
}

// ClearPremiumAmount clears the value of the "premium_amount" field.
func (u *InsurancePolicyUpsertBulk) ClearPremiumAmount() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPremiumAmount()
	})
}

// SetPolicyTerm sets the "policy_term" field.
func (u *InsurancePolicyUpsertBulk) SetPolicyTerm(v int) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPolicyTerm(v)
	})
}

// AddPolicyTerm adds v to the "policy_term" field.
func (u *InsurancePolicyUpsertBulk) AddPolicyTerm(v int) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.AddPolicyTerm(v)
	})
}

// UpdatePolicyTerm sets the "policy_term" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdatePolicyTerm() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePolicyTerm()
	})
}

// ClearPolicyTerm clears the value of the "policy_term" field.
func (u *InsurancePolicyUpsertBulk) ClearPolicyTerm() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPolicyTerm()
	})
}

// SetPremiumPayingTerm sets the "premium_paying_term" field.
func (u *InsurancePolicyUpsertBulk) SetPremiumPayingTerm(v int) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetPremiumPayingTerm(v)
	})
}

// AddPremiumPayingTerm adds v to the "premium_paying_term" field.
func (u *InsurancePolicyUpsertBulk) AddPremiumPayingTerm(v int) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.AddPremiumPayingTerm(v)
	})
}

// UpdatePremiumPayingTerm sets the "premium_paying_term" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdatePremiumPayingTerm() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdatePremiumPayingTerm()
	})
}

// ClearPremiumPayingTerm clears the value of the "premium_paying_term" field.
func (u *InsurancePolicyUpsertBulk) ClearPremiumPayingTerm() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.ClearPremiumPayingTerm()
	})
}

// SetStatus sets the "status" field.
func (u *InsurancePolicyUpsertBulk) SetStatus(v string) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdateStatus() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateStatus()
	})
}

// SetExtractionMethod sets the "extraction_method" field.
func (u *InsurancePolicyUpsertBulk) SetExtractionMethod(v string) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetExtractionMethod(v)
	})
}

// UpdateExtractionMethod sets the "extraction_method" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdateExtractionMethod() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateExtractionMethod()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *InsurancePolicyUpsertBulk) SetCreatedAt(v time.Time) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdateCreatedAt() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InsurancePolicyUpsertBulk) SetUpdatedAt(v time.Time) *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InsurancePolicyUpsertBulk) UpdateUpdatedAt() *InsurancePolicyUpsertBulk {
	return u.Update(func(s *InsurancePolicyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InsurancePolicyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InsurancePolicyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsurancePolicyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsurancePolicyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
