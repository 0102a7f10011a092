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
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
	"github.com/rsubramani/policy-tracker/gen/ent/premiumrecord"
)

// PremiumRecordCreate is the builder for creating a PremiumRecord entity.
type PremiumRecordCreate struct {
	config
	mutation *PremiumRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPolicyID sets the "policy_id" field.
func (_c *PremiumRecordCreate) SetPolicyID(v uuid.UUID) *PremiumRecordCreate {
	_c.mutation.SetPolicyID(v)
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *PremiumRecordCreate) SetDueDate(v time.Time) *PremiumRecordCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableDueDate(v *time.Time) *PremiumRecordCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PremiumRecordCreate) SetAmount(v float64) *PremiumRecordCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableAmount(v *float64) *PremiumRecordCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetTax sets the "tax" field.
func (_c *PremiumRecordCreate) SetTax(v float64) *PremiumRecordCreate {
	_c.mutation.SetTax(v)
	return _c
}

// SetNillableTax sets the "tax" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableTax(v *float64) *PremiumRecordCreate {
	if v != nil {
		_c.SetTax(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *PremiumRecordCreate) SetTotal(v float64) *PremiumRecordCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableTotal(v *float64) *PremiumRecordCreate {
	if v != nil {
		_c.SetTotal(*v)
	}
	return _c
}

// SetDueCount sets the "due_count" field.
func (_c *PremiumRecordCreate) SetDueCount(v int) *PremiumRecordCreate {
	_c.mutation.SetDueCount(v)
	return _c
}

// SetNillableDueCount sets the "due_count" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableDueCount(v *int) *PremiumRecordCreate {
	if v != nil {
		_c.SetDueCount(*v)
	}
	return _c
}

// SetAgentCode sets the "agent_code" field.
func (_c *PremiumRecordCreate) SetAgentCode(v string) *PremiumRecordCreate {
	_c.mutation.SetAgentCode(v)
	return _c
}

// SetNillableAgentCode sets the "agent_code" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableAgentCode(v *string) *PremiumRecordCreate {
	if v != nil {
		_c.SetAgentCode(*v)
	}
	return _c
}

// SetSourceDocument sets the "source_document" field.
func (_c *PremiumRecordCreate) SetSourceDocument(v string) *PremiumRecordCreate {
	_c.mutation.SetSourceDocument(v)
	return _c
}

// SetPaymentDate sets the "payment_date" field.
func (_c *PremiumRecordCreate) SetPaymentDate(v time.Time) *PremiumRecordCreate {
	_c.mutation.SetPaymentDate(v)
	return _c
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillablePaymentDate(v *time.Time) *PremiumRecordCreate {
	if v != nil {
		_c.SetPaymentDate(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *PremiumRecordCreate) SetProcessedAt(v time.Time) *PremiumRecordCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableProcessedAt(v *time.Time) *PremiumRecordCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PremiumRecordCreate) SetID(v uuid.UUID) *PremiumRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PremiumRecordCreate) SetNillableID(v *uuid.UUID) *PremiumRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPolicy sets the "policy" edge to the InsurancePolicy entity.
func (_c *PremiumRecordCreate) SetPolicy(v *InsurancePolicy) *PremiumRecordCreate {
	return _c.SetPolicyID(v.ID)
}

// Mutation returns the PremiumRecordMutation object of the builder.
func (_c *PremiumRecordCreate) Mutation() *PremiumRecordMutation {
	return _c.mutation
}

// Save creates the PremiumRecord in the database.
func (_c *PremiumRecordCreate) Save(ctx context.Context) (*PremiumRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PremiumRecordCreate) SaveX(ctx context.Context) *PremiumRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PremiumRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PremiumRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PremiumRecordCreate) defaults() {
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := premiumrecord.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := premiumrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PremiumRecordCreate) check() error {
	if _, ok := _c.mutation.PolicyID(); !ok {
		return &ValidationError{Name: "policy_id", err: errors.New(`ent: missing required field "PremiumRecord.policy_id"`)}
	}
	if _, ok := _c.mutation.SourceDocument(); !ok {
		return &ValidationError{Name: "source_document", err: errors.New(`ent: missing required field "PremiumRecord.source_document"`)}
	}
	if v, ok := _c.mutation.SourceDocument(); ok {
		if err := premiumrecord.SourceDocumentValidator(v); err != nil {
			return &ValidationError{Name: "source_document", err: fmt.Errorf(`ent: validator failed for field "PremiumRecord.source_document": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "PremiumRecord.processed_at"`)}
	}
	if len(_c.mutation.PolicyIDs()) == 0 {
		return &ValidationError{Name: "policy", err: errors.New(`ent: missing required edge "PremiumRecord.policy"`)}
	}
	return nil
}

func (_c *PremiumRecordCreate) sqlSave(ctx context.Context) (*PremiumRecord, error) {
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

func (_c *PremiumRecordCreate) createSpec() (*PremiumRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PremiumRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(premiumrecord.Table, sqlgraph.NewFieldSpec(premiumrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(premiumrecord.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(premiumrecord.FieldAmount, field.TypeFloat64, value)
		_node.Amount = &value
	}
	if value, ok := _c.mutation.Tax(); ok {
		_spec.SetField(premiumrecord.FieldTax, field.TypeFloat64, value)
		_node.Tax = &value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(premiumrecord.FieldTotal, field.TypeFloat64, value)
		_node.Total = &value
	}
	if value, ok := _c.mutation.DueCount(); ok {
		_spec.SetField(premiumrecord.FieldDueCount, field.TypeInt, value)
		_node.DueCount = &value
	}
	if value, ok := _c.mutation.AgentCode(); ok {
		_spec.SetField(premiumrecord.FieldAgentCode, field.TypeString, value)
		_node.AgentCode = &value
	}
	if value, ok := _c.mutation.SourceDocument(); ok {
		_spec.SetField(premiumrecord.FieldSourceDocument, field.TypeString, value)
		_node.SourceDocument = value
	}
	if value, ok := _c.mutation.PaymentDate(); ok {
		_spec.SetField(premiumrecord.FieldPaymentDate, field.TypeTime, value)
		_node.PaymentDate = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(premiumrecord.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	if nodes := _c.mutation.PolicyIDs(); len(nodes) > 0 {
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
		_node.PolicyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PremiumRecord.Create().
//		SetPolicyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PremiumRecordUpsert) {
//			SetPolicyID(v+v).
//		}).
//		Exec(ctx)
func (_c *PremiumRecordCreate) OnConflict(opts ...sql.ConflictOption) *PremiumRecordUpsertOne {
	_c.conflict = opts
	return &PremiumRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PremiumRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PremiumRecordCreate) OnConflictColumns(columns ...string) *PremiumRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PremiumRecordUpsertOne{
		create: _c,
	}
}

type (
	// PremiumRecordUpsertOne is the builder for "upsert"-ing
	//  one PremiumRecord node.
	PremiumRecordUpsertOne struct {
		create *PremiumRecordCreate
	}

	// PremiumRecordUpsert is the "OnConflict" setter.
	PremiumRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetPolicyID sets the "policy_id" field.
func (u *PremiumRecordUpsert) SetPolicyID(v uuid.UUID) *PremiumRecordUpsert {
	u.Set(premiumrecord.FieldPolicyID, v)
	return u
}

// UpdatePolicyID sets the "policy_id" field to the value that was provided on create.
func (u *PremiumRecordUpsert) UpdatePolicyID() *PremiumRecordUpsert {
	u.SetExcluded(premiumrecord.FieldPolicyID)
	return u
}

// SetPaymentDate sets the "payment_date" field.
func (u *PremiumRecordUpsert) SetPaymentDate(v time.Time) *PremiumRecordUpsert {
	u.Set(premiumrecord.FieldPaymentDate, v)
	return u
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *PremiumRecordUpsert) UpdatePaymentDate() *PremiumRecordUpsert {
	u.SetExcluded(premiumrecord.FieldPaymentDate)
	return u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *PremiumRecordUpsert) ClearPaymentDate() *PremiumRecordUpsert {
	u.SetNull(premiumrecord.FieldPaymentDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PremiumRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(premiumrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PremiumRecordUpsertOne) UpdateNewValues() *PremiumRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(premiumrecord.FieldID)
		}
		if _, exists := u.create.mutation.DueDate(); exists {
			s.SetIgnore(premiumrecord.FieldDueDate)
		}
		if _, exists := u.create.mutation.Amount(); exists {
			s.SetIgnore(premiumrecord.FieldAmount)
		}
		if _, exists := u.create.mutation.Tax(); exists {
			s.SetIgnore(premiumrecord.FieldTax)
		}
		if _, exists := u.create.mutation.Total(); exists {
			s.SetIgnore(premiumrecord.FieldTotal)
		}
		if _, exists := u.create.mutation.DueCount(); exists {
			s.SetIgnore(premiumrecord.FieldDueCount)
		}
		if _, exists := u.create.mutation.AgentCode(); exists {
			s.SetIgnore(premiumrecord.FieldAgentCode)
		}
		if _, exists := u.create.mutation.SourceDocument(); exists {
			s.SetIgnore(premiumrecord.FieldSourceDocument)
		}
		if _, exists := u.create.mutation.ProcessedAt(); exists {
			s.SetIgnore(premiumrecord.FieldProcessedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PremiumRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PremiumRecordUpsertOne) Ignore() *PremiumRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PremiumRecordUpsertOne) DoNothing() *PremiumRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PremiumRecordCreate.OnConflict
// documentation for more info.
func (u *PremiumRecordUpsertOne) Update(set func(*PremiumRecordUpsert)) *PremiumRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PremiumRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetPolicyID sets the "policy_id" field.
func (u *PremiumRecordUpsertOne) SetPolicyID(v uuid.UUID) *PremiumRecordUpsertOne {
	return u.Update(func(s *PremiumRecordUpsert) {
		s.SetPolicyID(v)
	})
}

// UpdatePolicyID sets the "policy_id" field to the value that was provided on create.
func (u *PremiumRecordUpsertOne) UpdatePolicyID() *PremiumRecordUpsertOne {
	return u.Update(func(s *PremiumRecordUpsert) {
		s.UpdatePolicyID()
	})
}

// SetPaymentDate sets the "payment_date" field.
func (u *PremiumRecordUpsertOne) SetPaymentDate(v time.Time) *PremiumRecordUpsertOne {
	return u.Update(func(s *PremiumRecordUpsert) {
		s.SetPaymentDate(v)
	})
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *PremiumRecordUpsertOne) UpdatePaymentDate() *PremiumRecordUpsertOne {
	return u.Update(func(s *PremiumRecordUpsert) {
		s.UpdatePaymentDate()
	})
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *PremiumRecordUpsertOne) ClearPaymentDate() *PremiumRecordUpsertOne {
	return u.Update(func(s *PremiumRecordUpsert) {
		s.ClearPaymentDate()
	})
}

// Exec executes the query.
func (u *PremiumRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PremiumRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PremiumRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PremiumRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PremiumRecordUpsertOne.ID is not supported by MySQL driver. Use PremiumRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PremiumRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PremiumRecordCreateBulk is the builder for creating many PremiumRecord entities in bulk.
type PremiumRecordCreateBulk struct {
	config
	err      error
	builders []*PremiumRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the PremiumRecord entities in the database.
func (_c *PremiumRecordCreateBulk) Save(ctx context.Context) ([]*PremiumRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PremiumRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PremiumRecordMutation)
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
func (_c *PremiumRecordCreateBulk) SaveX(ctx context.Context) []*PremiumRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PremiumRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PremiumRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PremiumRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PremiumRecordUpsert) {
//			SetPolicyID(v+v).
//		}).
//		Exec(ctx)
func (_c *PremiumRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *PremiumRecordUpsertBulk {
	_c.conflict = opts
	return &PremiumRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PremiumRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PremiumRecordCreateBulk) OnConflictColumns(columns ...string) *PremiumRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PremiumRecordUpsertBulk{
		create: _c,
	}
}

// PremiumRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of PremiumRecord nodes.
type PremiumRecordUpsertBulk struct {
	create *PremiumRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PremiumRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(premiumrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PremiumRecordUpsertBulk) UpdateNewValues() *PremiumRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(premiumrecord.FieldID)
			}
			if _, exists := b.mutation.DueDate(); exists {
				s.SetIgnore(premiumrecord.FieldDueDate)
			}
			if _, exists := b.mutation.Amount(); exists {
				s.SetIgnore(premiumrecord.FieldAmount)
			}
			if _, exists := b.mutation.Tax(); exists {
				s.SetIgnore(premiumrecord.FieldTax)
			}
			if _, exists := b.mutation.Total(); exists {
				s.SetIgnore(premiumrecord.FieldTotal)
			}
			if _, exists := b.mutation.DueCount(); exists {
				s.SetIgnore(premiumrecord.FieldDueCount)
			}
			if _, exists := b.mutation.AgentCode(); exists {
				s.SetIgnore(premiumrecord.FieldAgentCode)
			}
			if _, exists := b.mutation.SourceDocument(); exists {
				s.SetIgnore(premiumrecord.FieldSourceDocument)
			}
			if _, exists := b.mutation.ProcessedAt(); exists {
				s.SetIgnore(premiumrecord.FieldProcessedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PremiumRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PremiumRecordUpsertBulk) Ignore() *PremiumRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PremiumRecordUpsertBulk) DoNothing() *PremiumRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PremiumRecordCreateBulk.OnConflict
// documentation for more info.
func (u *PremiumRecordUpsertBulk) Update(set func(*PremiumRecordUpsert)) *PremiumRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PremiumRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetPolicyID sets the "policy_id" field.
func (u *PremiumRecordUpsertBulk) SetPolicyID(v uuid.UUID) *PremiumRecordUpsertBulk {
	return u.Update(func(s *PremiumRecordUpsert) {
		s.SetPolicyID(v)
	})
}

// UpdatePolicyID sets the "policy_id" field to the value that was provided on create.
func (u *PremiumRecordUpsertBulk) UpdatePolicyID() *PremiumRecordUpsertBulk {
	return u.Update(func(s *PremiumRecordUpsert) {
		s.UpdatePolicyID()
	})
}

// SetPaymentDate sets the "payment_date" field.
func (u *PremiumRecordUpsertBulk) SetPaymentDate(v time.Time) *PremiumRecordUpsertBulk {
	return u.Update(func(s *PremiumRecordUpsert) {
		s.SetPaymentDate(v)
	})
}

// UpdatePaymentDate sets the "payment_date" field to the value that was provided on create.
func (u *PremiumRecordUpsertBulk) UpdatePaymentDate() *PremiumRecordUpsertBulk {
	return u.Update(func(s *PremiumRecordUpsert) {
		s.UpdatePaymentDate()
	})
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (u *PremiumRecordUpsertBulk) ClearPaymentDate() *PremiumRecordUpsertBulk {
	return u.Update(func(s *PremiumRecordUpsert) {
		s.ClearPaymentDate()
	})
}

// Exec executes the query.
func (u *PremiumRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PremiumRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PremiumRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PremiumRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
