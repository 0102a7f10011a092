// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsubramani/policy-tracker/gen/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCode sets the "code" field.
func (_c *AgentCreate) SetCode(v string) *AgentCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetBranchCode sets the "branch_code" field.
func (_c *AgentCreate) SetBranchCode(v string) *AgentCreate {
	_c.mutation.SetBranchCode(v)
	return _c
}

// SetNillableBranchCode sets the "branch_code" field if the given value is not nil.
func (_c *AgentCreate) SetNillableBranchCode(v *string) *AgentCreate {
	if v != nil {
		_c.SetBranchCode(*v)
	}
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *AgentCreate) SetRelationship(v string) *AgentCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetNillableRelationship sets the "relationship" field if the given value is not nil.
func (_c *AgentCreate) SetNillableRelationship(v *string) *AgentCreate {
	if v != nil {
		_c.SetRelationship(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *AgentCreate) SetPhone(v string) *AgentCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePhone(v *string) *AgentCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *AgentCreate) SetEmail(v string) *AgentCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *AgentCreate) SetNillableEmail(v *string) *AgentCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *AgentCreate) SetActive(v bool) *AgentCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *AgentCreate) SetNillableActive(v *bool) *AgentCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := agent.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "Agent.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := agent.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "Agent.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := agent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Agent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Agent.active"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(agent.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.BranchCode(); ok {
		_spec.SetField(agent.FieldBranchCode, field.TypeString, value)
		_node.BranchCode = &value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(agent.FieldRelationship, field.TypeString, value)
		_node.Relationship = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(agent.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(agent.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(agent.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.Create().
//		SetCode(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetCode(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *AgentUpsert) SetName(v string) *AgentUpsert {
	u.Set(agent.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsert) UpdateName() *AgentUpsert {
	u.SetExcluded(agent.FieldName)
	return u
}

// SetBranchCode sets the "branch_code" field.
func (u *AgentUpsert) SetBranchCode(v string) *AgentUpsert {
	u.Set(agent.FieldBranchCode, v)
	return u
}

// UpdateBranchCode sets the "branch_code" field to the value that was provided on create.
func (u *AgentUpsert) UpdateBranchCode() *AgentUpsert {
	u.SetExcluded(agent.FieldBranchCode)
	return u
}

// ClearBranchCode clears the value of the "branch_code" field.
func (u *AgentUpsert) ClearBranchCode() *AgentUpsert {
	u.SetNull(agent.FieldBranchCode)
	return u
}

// SetRelationship sets the "relationship" field.
func (u *AgentUpsert) SetRelationship(v string) *AgentUpsert {
	u.Set(agent.FieldRelationship, v)
	return u
}

// UpdateRelationship sets the "relationship" field to the value that was provided on create.
func (u *AgentUpsert) UpdateRelationship() *AgentUpsert {
	u.SetExcluded(agent.FieldRelationship)
	return u
}

// ClearRelationship clears the value of the "relationship" field.
func (u *AgentUpsert) ClearRelationship() *AgentUpsert {
	u.SetNull(agent.FieldRelationship)
	return u
}

// SetPhone sets the "phone" field.
func (u *AgentUpsert) SetPhone(v string) *AgentUpsert {
	u.Set(agent.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *AgentUpsert) UpdatePhone() *AgentUpsert {
	u.SetExcluded(agent.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *AgentUpsert) ClearPhone() *AgentUpsert {
	u.SetNull(agent.FieldPhone)
	return u
}

// SetEmail sets the "email" field.
func (u *AgentUpsert) SetEmail(v string) *AgentUpsert {
	u.Set(agent.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AgentUpsert) UpdateEmail() *AgentUpsert {
	u.SetExcluded(agent.FieldEmail)
	return u
}

// ClearEmail clears the value of the "email" field.
func (u *AgentUpsert) ClearEmail() *AgentUpsert {
	u.SetNull(agent.FieldEmail)
	return u
}

// SetActive sets the "active" field.
func (u *AgentUpsert) SetActive(v bool) *AgentUpsert {
	u.Set(agent.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *AgentUpsert) UpdateActive() *AgentUpsert {
	u.SetExcluded(agent.FieldActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Code(); exists {
			s.SetIgnore(agent.FieldCode)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertOne) SetName(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateName() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetBranchCode sets the "branch_code" field.
func (u *AgentUpsertOne) SetBranchCode(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetBranchCode(v)
	})
}

// UpdateBranchCode sets the "branch_code" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateBranchCode() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateBranchCode()
	})
}

// ClearBranchCode clears the value of the "branch_code" field.
func (u *AgentUpsertOne) ClearBranchCode() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearBranchCode()
	})
}

// SetRelationship sets the "relationship" field.
func (u *AgentUpsertOne) SetRelationship(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetRelationship(v)
	})
}

// UpdateRelationship sets the "relationship" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateRelationship() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateRelationship()
	})
}

// ClearRelationship clears the value of the "relationship" field.
func (u *AgentUpsertOne) ClearRelationship() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearRelationship()
	})
}

// SetPhone sets the "phone" field.
func (u *AgentUpsertOne) SetPhone(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdatePhone() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *AgentUpsertOne) ClearPhone() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearPhone()
	})
}

// SetEmail sets the "email" field.
func (u *AgentUpsertOne) SetEmail(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateEmail() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *AgentUpsertOne) ClearEmail() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearEmail()
	})
}

// SetActive sets the "active" field.
func (u *AgentUpsertOne) SetActive(v bool) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateActive() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetCode(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Code(); exists {
				s.SetIgnore(agent.FieldCode)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertBulk) SetName(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateName() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetBranchCode sets the "branch_code" field.
func (u *AgentUpsertBulk) SetBranchCode(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetBranchCode(v)
	})
}

// UpdateBranchCode sets the "branch_code" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateBranchCode() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateBranchCode()
	})
}

// ClearBranchCode clears the value of the "branch_code" field.
func (u *AgentUpsertBulk) ClearBranchCode() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearBranchCode()
	})
}

// SetRelationship sets the "relationship" field.
func (u *AgentUpsertBulk) SetRelationship(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetRelationship(v)
	})
}

// UpdateRelationship sets the "relationship" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateRelationship() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateRelationship()
	})
}

// ClearRelationship clears the value of the "relationship" field.
func (u *AgentUpsertBulk) ClearRelationship() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearRelationship()
	})
}

// SetPhone sets the "phone" field.
func (u *AgentUpsertBulk) SetPhone(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdatePhone() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *AgentUpsertBulk) ClearPhone() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearPhone()
	})
}

// SetEmail sets the "email" field.
func (u *AgentUpsertBulk) SetEmail(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateEmail() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateEmail()
	})
}

// ClearEmail clears the value of the "email" field.
func (u *AgentUpsertBulk) ClearEmail() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearEmail()
	})
}

// SetActive sets the "active" field.
func (u *AgentUpsertBulk) SetActive(v bool) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateActive() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateActive()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
