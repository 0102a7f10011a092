// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/customer"
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
	"github.com/rsubramani/policy-tracker/gen/ent/predicate"
	"github.com/rsubramani/policy-tracker/gen/ent/premiumrecord"
)

// InsurancePolicyQuery is the builder for querying InsurancePolicy entities.
type InsurancePolicyQuery struct {
	config
	ctx                *QueryContext
	order              []insurancepolicy.OrderOption
	inters             []Interceptor
	predicates         []predicate.InsurancePolicy
	withCustomer       *CustomerQuery
	withPremiumRecords *PremiumRecordQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InsurancePolicyQuery builder.
func (_q *InsurancePolicyQuery) Where(ps ...predicate.InsurancePolicy) *InsurancePolicyQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InsurancePolicyQuery) Limit(limit int) *InsurancePolicyQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InsurancePolicyQuery) Offset(offset int) *InsurancePolicyQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InsurancePolicyQuery) Unique(unique bool) *InsurancePolicyQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InsurancePolicyQuery) Order(o ...insurancepolicy.OrderOption) *InsurancePolicyQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCustomer chains the current query on the "customer" edge.
func (_q *InsurancePolicyQuery) QueryCustomer() *CustomerQuery {
	query := (&CustomerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(insurancepolicy.Table, insurancepolicy.FieldID, selector),
			sqlgraph.To(customer.Table, customer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, insurancepolicy.CustomerTable, insurancepolicy.CustomerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPremiumRecords chains the current query on the "premium_records" edge.
func (_q *InsurancePolicyQuery) QueryPremiumRecords() *PremiumRecordQuery {
	query := (&PremiumRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(insurancepolicy.Table, insurancepolicy.FieldID, selector),
			sqlgraph.To(premiumrecord.Table, premiumrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, insurancepolicy.PremiumRecordsTable, insurancepolicy.PremiumRecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first InsurancePolicy entity from the query.
// Returns a *NotFoundError when no InsurancePolicy was found.
func (_q *InsurancePolicyQuery) First(ctx context.Context) (*InsurancePolicy, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{insurancepolicy.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InsurancePolicyQuery) FirstX(ctx context.Context) *InsurancePolicy {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InsurancePolicy ID from the query.
// Returns a *NotFoundError when no InsurancePolicy ID was found.
func (_q *InsurancePolicyQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{insurancepolicy.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InsurancePolicyQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InsurancePolicy entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InsurancePolicy entity is found.
// Returns a *NotFoundError when no InsurancePolicy entities are found.
func (_q *InsurancePolicyQuery) Only(ctx context.Context) (*InsurancePolicy, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{insurancepolicy.Label}
	default:
		return nil, &NotSingularError{insurancepolicy.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InsurancePolicyQuery) OnlyX(ctx context.Context) *InsurancePolicy {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InsurancePolicy ID in the query.
// Returns a *NotSingularError when more than one InsurancePolicy ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InsurancePolicyQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{insurancepolicy.Label}
	default:
		err = &NotSingularError{insurancepolicy.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InsurancePolicyQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InsurancePolicies.
func (_q *InsurancePolicyQuery) All(ctx context.Context) ([]*InsurancePolicy, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InsurancePolicy, *InsurancePolicyQuery]()
	return withInterceptors[[]*InsurancePolicy](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InsurancePolicyQuery) AllX(ctx context.Context) []*InsurancePolicy {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InsurancePolicy IDs.
func (_q *InsurancePolicyQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(insurancepolicy.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InsurancePolicyQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InsurancePolicyQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InsurancePolicyQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InsurancePolicyQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InsurancePolicyQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *InsurancePolicyQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InsurancePolicyQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InsurancePolicyQuery) Clone() *InsurancePolicyQuery {
	if _q == nil {
		return nil
	}
	return &InsurancePolicyQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]insurancepolicy.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.InsurancePolicy{}, _q.predicates...),
		withCustomer:       _q.withCustomer.Clone(),
		withPremiumRecords: _q.withPremiumRecords.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCustomer tells the query-builder to eager-load the nodes that are connected to
// the "customer" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InsurancePolicyQuery) WithCustomer(opts ...func(*CustomerQuery)) *InsurancePolicyQuery {
	query := (&CustomerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCustomer = query
	return _q
}

// WithPremiumRecords tells the query-builder to eager-load the nodes that are connected to
// the "premium_records" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InsurancePolicyQuery) WithPremiumRecords(opts ...func(*PremiumRecordQuery)) *InsurancePolicyQuery {
	query := (&PremiumRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPremiumRecords = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PolicyNumber string `json:"policy_number,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.InsurancePolicy.Query().
//		GroupBy(insurancepolicy.FieldPolicyNumber).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InsurancePolicyQuery) GroupBy(field string, fields ...string) *InsurancePolicyGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InsurancePolicyGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = insurancepolicy.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PolicyNumber string `json:"policy_number,omitempty"`
//	}
//
//	client.InsurancePolicy.Query().
//		Select(insurancepolicy.FieldPolicyNumber).
//		Scan(ctx, &v)
func (_q *InsurancePolicyQuery) Select(fields ...string) *InsurancePolicySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InsurancePolicySelect{InsurancePolicyQuery: _q}
	sbuild.label = insurancepolicy.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InsurancePolicySelect configured with the given aggregations.
func (_q *InsurancePolicyQuery) Aggregate(fns ...AggregateFunc) *InsurancePolicySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InsurancePolicyQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !insurancepolicy.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *InsurancePolicyQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InsurancePolicy, error) {
	var (
		nodes       = []*InsurancePolicy{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withCustomer != nil,
			_q.withPremiumRecords != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InsurancePolicy).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InsurancePolicy{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withCustomer; query != nil {
		if err := _q.loadCustomer(ctx, query, nodes, nil,
			func(n *InsurancePolicy, e *Customer) { n.Edges.Customer = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPremiumRecords; query != nil {
		if err := _q.loadPremiumRecords(ctx, query, nodes,
			func(n *InsurancePolicy) { n.Edges.PremiumRecords = []*PremiumRecord{} },
			func(n *InsurancePolicy, e *PremiumRecord) { n.Edges.PremiumRecords = append(n.Edges.PremiumRecords, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InsurancePolicyQuery) loadCustomer(ctx context.Context, query *CustomerQuery, nodes []*InsurancePolicy, init func(*InsurancePolicy), assign func(*InsurancePolicy, *Customer)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*InsurancePolicy)
	for i := range nodes {
		fk := nodes[i].CustomerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(customer.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "customer_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InsurancePolicyQuery) loadPremiumRecords(ctx context.Context, query *PremiumRecordQuery, nodes []*InsurancePolicy, init func(*InsurancePolicy), assign func(*InsurancePolicy, *PremiumRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*InsurancePolicy)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(premiumrecord.FieldPolicyID)
	}
	query.Where(predicate.PremiumRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(insurancepolicy.PremiumRecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PolicyID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "policy_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InsurancePolicyQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InsurancePolicyQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(insurancepolicy.Table, insurancepolicy.Columns, sqlgraph.NewFieldSpec(insurancepolicy.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insurancepolicy.FieldID)
		for i := range fields {
			if fields[i] != insurancepolicy.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCustomer != nil {
			_spec.Node.AddColumnOnce(insurancepolicy.FieldCustomerID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *InsurancePolicyQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(insurancepolicy.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = insurancepolicy.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// InsurancePolicyGroupBy is the group-by builder for InsurancePolicy entities.
type InsurancePolicyGroupBy struct {
	selector
	build *InsurancePolicyQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InsurancePolicyGroupBy) Aggregate(fns ...AggregateFunc) *InsurancePolicyGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InsurancePolicyGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InsurancePolicyQuery, *InsurancePolicyGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InsurancePolicyGroupBy) sqlScan(ctx context.Context, root *InsurancePolicyQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// InsurancePolicySelect is the builder for selecting fields of InsurancePolicy entities.
type InsurancePolicySelect struct {
	*InsurancePolicyQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InsurancePolicySelect) Aggregate(fns ...AggregateFunc) *InsurancePolicySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InsurancePolicySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InsurancePolicyQuery, *InsurancePolicySelect](ctx, _s.InsurancePolicyQuery, _s, _s.inters, v)
}

func (_s *InsurancePolicySelect) sqlScan(ctx context.Context, root *InsurancePolicyQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
