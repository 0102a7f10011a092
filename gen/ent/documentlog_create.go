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
	"github.com/rsubramani/policy-tracker/gen/ent/documentlog"
)

// DocumentLogCreate is the builder for creating a DocumentLog entity.
type DocumentLogCreate struct {
	config
	mutation *DocumentLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLookupKey sets the "lookup_key" field.
func (_c *DocumentLogCreate) SetLookupKey(v string) *DocumentLogCreate {
	_c.mutation.SetLookupKey(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DocumentLogCreate) SetFilename(v string) *DocumentLogCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *DocumentLogCreate) SetDocumentType(v string) *DocumentLogCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentLogCreate) SetContentHash(v string) *DocumentLogCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *DocumentLogCreate) SetNillableContentHash(v *string) *DocumentLogCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetHashAlgo sets the "hash_algo" field.
func (_c *DocumentLogCreate) SetHashAlgo(v string) *DocumentLogCreate {
	_c.mutation.SetHashAlgo(v)
	return _c
}

// SetNillableHashAlgo sets the "hash_algo" field if the given value is not nil.
func (_c *DocumentLogCreate) SetNillableHashAlgo(v *string) *DocumentLogCreate {
	if v != nil {
		_c.SetHashAlgo(*v)
	}
	return _c
}

// SetHashPrefixLen sets the "hash_prefix_len" field.
func (_c *DocumentLogCreate) SetHashPrefixLen(v int) *DocumentLogCreate {
	_c.mutation.SetHashPrefixLen(v)
	return _c
}

// SetNillableHashPrefixLen sets the "hash_prefix_len" field if the given value is not nil.
func (_c *DocumentLogCreate) SetNillableHashPrefixLen(v *int) *DocumentLogCreate {
	if v != nil {
		_c.SetHashPrefixLen(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *DocumentLogCreate) SetProcessedAt(v time.Time) *DocumentLogCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *DocumentLogCreate) SetNillableProcessedAt(v *time.Time) *DocumentLogCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentLogCreate) SetID(v uuid.UUID) *DocumentLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentLogCreate) SetNillableID(v *uuid.UUID) *DocumentLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DocumentLogMutation object of the builder.
func (_c *DocumentLogCreate) Mutation() *DocumentLogMutation {
	return _c.mutation
}

// Save creates the DocumentLog in the database.
func (_c *DocumentLogCreate) Save(ctx context.Context) (*DocumentLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentLogCreate) SaveX(ctx context.Context) *DocumentLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentLogCreate) defaults() {
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := documentlog.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documentlog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentLogCreate) check() error {
	if _, ok := _c.mutation.LookupKey(); !ok {
		return &ValidationError{Name: "lookup_key", err: errors.New(`ent: missing required field "DocumentLog.lookup_key"`)}
	}
	if v, ok := _c.mutation.LookupKey(); ok {
		if err := documentlog.LookupKeyValidator(v); err != nil {
			return &ValidationError{Name: "lookup_key", err: fmt.Errorf(`ent: validator failed for field "DocumentLog.lookup_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "DocumentLog.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := documentlog.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "DocumentLog.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "DocumentLog.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := documentlog.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DocumentLog.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "DocumentLog.processed_at"`)}
	}
	return nil
}

func (_c *DocumentLogCreate) sqlSave(ctx context.Context) (*DocumentLog, error) {
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

func (_c *DocumentLogCreate) createSpec() (*DocumentLog, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentlog.Table, sqlgraph.NewFieldSpec(documentlog.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LookupKey(); ok {
		_spec.SetField(documentlog.FieldLookupKey, field.TypeString, value)
		_node.LookupKey = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(documentlog.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(documentlog.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(documentlog.FieldContentHash, field.TypeString, value)
		_node.ContentHash = &value
	}
	if value, ok := _c.mutation.HashAlgo(); ok {
		_spec.SetField(documentlog.FieldHashAlgo, field.TypeString, value)
		_node.HashAlgo = &value
	}
	if value, ok := _c.mutation.HashPrefixLen(); ok {
		_spec.SetField(documentlog.FieldHashPrefixLen, field.TypeInt, value)
		_node.HashPrefixLen = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(documentlog.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocumentLog.Create().
//		SetLookupKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentLogUpsert) {
//			SetLookupKey(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentLogCreate) OnConflict(opts ...sql.ConflictOption) *DocumentLogUpsertOne {
	_c.conflict = opts
	return &DocumentLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocumentLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentLogCreate) OnConflictColumns(columns ...string) *DocumentLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentLogUpsertOne{
		create: _c,
	}
}

type (
	// DocumentLogUpsertOne is the builder for "upsert"-ing
	//  one DocumentLog node.
	DocumentLogUpsertOne struct {
		create *DocumentLogCreate
	}

	// DocumentLogUpsert is the "OnConflict" setter.
	DocumentLogUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DocumentLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(documentlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentLogUpsertOne) UpdateNewValues() *DocumentLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(documentlog.FieldID)
		}
		if _, exists := u.create.mutation.LookupKey(); exists {
			s.SetIgnore(documentlog.FieldLookupKey)
		}
		if _, exists := u.create.mutation.Filename(); exists {
			s.SetIgnore(documentlog.FieldFilename)
		}
		if _, exists := u.create.mutation.DocumentType(); exists {
			s.SetIgnore(documentlog.FieldDocumentType)
		}
		if _, exists := u.create.mutation.ContentHash(); exists {
			s.SetIgnore(documentlog.FieldContentHash)
		}
		if _, exists := u.create.mutation.HashAlgo(); exists {
			s.SetIgnore(documentlog.FieldHashAlgo)
		}
		if _, exists := u.create.mutation.HashPrefixLen(); exists {
			s.SetIgnore(documentlog.FieldHashPrefixLen)
		}
		if _, exists := u.create.mutation.ProcessedAt(); exists {
			s.SetIgnore(documentlog.FieldProcessedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocumentLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentLogUpsertOne) Ignore() *DocumentLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentLogUpsertOne) DoNothing() *DocumentLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentLogCreate.OnConflict
// documentation for more info.
func (u *DocumentLogUpsertOne) Update(set func(*DocumentLogUpsert)) *DocumentLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *DocumentLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentLogUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentLogUpsertOne.ID is not supported by MySQL driver. Use DocumentLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentLogUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentLogCreateBulk is the builder for creating many DocumentLog entities in bulk.
type DocumentLogCreateBulk struct {
	config
	err      error
	builders []*DocumentLogCreate
	conflict []sql.ConflictOption
}

// Save creates the DocumentLog entities in the database.
func (_c *DocumentLogCreateBulk) Save(ctx context.Context) ([]*DocumentLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentLogMutation)
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
func (_c *DocumentLogCreateBulk) SaveX(ctx context.Context) []*DocumentLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DocumentLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentLogUpsert) {
//			SetLookupKey(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentLogUpsertBulk {
	_c.conflict = opts
	return &DocumentLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DocumentLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentLogCreateBulk) OnConflictColumns(columns ...string) *DocumentLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentLogUpsertBulk{
		create: _c,
	}
}

// DocumentLogUpsertBulk is the builder for "upsert"-ing
// a bulk of DocumentLog nodes.
type DocumentLogUpsertBulk struct {
	create *DocumentLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DocumentLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(documentlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentLogUpsertBulk) UpdateNewValues() *DocumentLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(documentlog.FieldID)
			}
			if _, exists := b.mutation.LookupKey(); exists {
				s.SetIgnore(documentlog.FieldLookupKey)
			}
			if _, exists := b.mutation.Filename(); exists {
				s.SetIgnore(documentlog.FieldFilename)
			}
			if _, exists := b.mutation.DocumentType(); exists {
				s.SetIgnore(documentlog.FieldDocumentType)
			}
			if _, exists := b.mutation.ContentHash(); exists {
				s.SetIgnore(documentlog.FieldContentHash)
			}
			if _, exists := b.mutation.HashAlgo(); exists {
				s.SetIgnore(documentlog.FieldHashAlgo)
			}
			if _, exists := b.mutation.HashPrefixLen(); exists {
				s.SetIgnore(documentlog.FieldHashPrefixLen)
			}
			if _, exists := b.mutation.ProcessedAt(); exists {
				s.SetIgnore(documentlog.FieldProcessedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DocumentLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentLogUpsertBulk) Ignore() *DocumentLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentLogUpsertBulk) DoNothing() *DocumentLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentLogCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentLogUpsertBulk) Update(set func(*DocumentLogUpsert)) *DocumentLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *DocumentLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
