// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rsubramani/policy-tracker/gen/ent/documentlog"
	"github.com/rsubramani/policy-tracker/gen/ent/predicate"
)

// DocumentLogUpdate is the builder for updating DocumentLog entities.
type DocumentLogUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentLogMutation
}

// Where appends a list predicates to the DocumentLogUpdate builder.
func (_u *DocumentLogUpdate) Where(ps ...predicate.DocumentLog) *DocumentLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the DocumentLogMutation object of the builder.
func (_u *DocumentLogUpdate) Mutation() *DocumentLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DocumentLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(documentlog.Table, documentlog.Columns, sqlgraph.NewFieldSpec(documentlog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(documentlog.FieldContentHash, field.TypeString)
	}
	if _u.mutation.HashAlgoCleared() {
		_spec.ClearField(documentlog.FieldHashAlgo, field.TypeString)
	}
	if _u.mutation.HashPrefixLenCleared() {
		_spec.ClearField(documentlog.FieldHashPrefixLen, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentLogUpdateOne is the builder for updating a single DocumentLog entity.
type DocumentLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentLogMutation
}

// Mutation returns the DocumentLogMutation object of the builder.
func (_u *DocumentLogUpdateOne) Mutation() *DocumentLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentLogUpdate builder.
func (_u *DocumentLogUpdateOne) Where(ps ...predicate.DocumentLog) *DocumentLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentLogUpdateOne) Select(field string, fields ...string) *DocumentLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentLog entity.
func (_u *DocumentLogUpdateOne) Save(ctx context.Context) (*DocumentLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentLogUpdateOne) SaveX(ctx context.Context) *DocumentLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DocumentLogUpdateOne) sqlSave(ctx context.Context) (_node *DocumentLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(documentlog.Table, documentlog.Columns, sqlgraph.NewFieldSpec(documentlog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentlog.FieldID)
		for _, f := range fields {
			if !documentlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentlog.FieldID {
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
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(documentlog.FieldContentHash, field.TypeString)
	}
	if _u.mutation.HashAlgoCleared() {
		_spec.ClearField(documentlog.FieldHashAlgo, field.TypeString)
	}
	if _u.mutation.HashPrefixLenCleared() {
		_spec.ClearField(documentlog.FieldHashPrefixLen, field.TypeInt)
	}
	_node = &DocumentLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
