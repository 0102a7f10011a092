// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/rsubramani/policy-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rsubramani/policy-tracker/gen/ent/agent"
	"github.com/rsubramani/policy-tracker/gen/ent/customer"
	"github.com/rsubramani/policy-tracker/gen/ent/documentlog"
	"github.com/rsubramani/policy-tracker/gen/ent/insurancepolicy"
	"github.com/rsubramani/policy-tracker/gen/ent/premiumrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// Customer is the client for interacting with the Customer builders.
	Customer *CustomerClient
	// DocumentLog is the client for interacting with the DocumentLog builders.
	DocumentLog *DocumentLogClient
	// InsurancePolicy is the client for interacting with the InsurancePolicy builders.
	InsurancePolicy *InsurancePolicyClient
	// PremiumRecord is the client for interacting with the PremiumRecord builders.
	PremiumRecord *PremiumRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.Customer = NewCustomerClient(c.config)
	c.DocumentLog = NewDocumentLogClient(c.config)
	c.InsurancePolicy = NewInsurancePolicyClient(c.config)
	c.PremiumRecord = NewPremiumRecordClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Agent:           NewAgentClient(cfg),
		Customer:        NewCustomerClient(cfg),
		DocumentLog:     NewDocumentLogClient(cfg),
		InsurancePolicy: NewInsurancePolicyClient(cfg),
		PremiumRecord:   NewPremiumRecordClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Agent:           NewAgentClient(cfg),
		Customer:        NewCustomerClient(cfg),
		DocumentLog:     NewDocumentLogClient(cfg),
		InsurancePolicy: NewInsurancePolicyClient(cfg),
		PremiumRecord:   NewPremiumRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Agent.Use(hooks...)
	c.Customer.Use(hooks...)
	c.DocumentLog.Use(hooks...)
	c.InsurancePolicy.Use(hooks...)
	c.PremiumRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Agent.Intercept(interceptors...)
	c.Customer.Intercept(interceptors...)
	c.DocumentLog.Intercept(interceptors...)
	c.InsurancePolicy.Intercept(interceptors...)
	c.PremiumRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *CustomerMutation:
		return c.Customer.mutate(ctx, m)
	case *DocumentLogMutation:
		return c.DocumentLog.mutate(ctx, m)
	case *InsurancePolicyMutation:
		return c.InsurancePolicy.mutate(ctx, m)
	case *PremiumRecordMutation:
		return c.PremiumRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id int) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id int) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id int) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id int) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// CustomerClient is a client for the Customer schema.
type CustomerClient struct {
	config
}

// NewCustomerClient returns a client for the Customer from the given config.
func NewCustomerClient(c config) *CustomerClient {
	return &CustomerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `customer.Hooks(f(g(h())))`.
func (c *CustomerClient) Use(hooks ...Hook) {
	c.hooks.Customer = append(c.hooks.Customer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `customer.Intercept(f(g(h())))`.
func (c *CustomerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Customer = append(c.inters.Customer, interceptors...)
}

// Create returns a builder for creating a Customer entity.
func (c *CustomerClient) Create() *CustomerCreate {
	mutation := newCustomerMutation(c.config, OpCreate)
	return &CustomerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Customer entities.
func (c *CustomerClient) CreateBulk(builders ...*CustomerCreate) *CustomerCreateBulk {
	return &CustomerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CustomerClient) MapCreateBulk(slice any, setFunc func(*CustomerCreate, int)) *CustomerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CustomerCreateBulk{err: fmt.Errorf("calling to CustomerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CustomerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CustomerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Customer.
func (c *CustomerClient) Update() *CustomerUpdate {
	mutation := newCustomerMutation(c.config, OpUpdate)
	return &CustomerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CustomerClient) UpdateOne(_m *Customer) *CustomerUpdateOne {
	mutation := newCustomerMutation(c.config, OpUpdateOne, withCustomer(_m))
	return &CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CustomerClient) UpdateOneID(id uuid.UUID) *CustomerUpdateOne {
	mutation := newCustomerMutation(c.config, OpUpdateOne, withCustomerID(id))
	return &CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Customer.
func (c *CustomerClient) Delete() *CustomerDelete {
	mutation := newCustomerMutation(c.config, OpDelete)
	return &CustomerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CustomerClient) DeleteOne(_m *Customer) *CustomerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CustomerClient) DeleteOneID(id uuid.UUID) *CustomerDeleteOne {
	builder := c.Delete().Where(customer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CustomerDeleteOne{builder}
}

// Query returns a query builder for Customer.
func (c *CustomerClient) Query() *CustomerQuery {
	return &CustomerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCustomer},
		inters: c.Interceptors(),
	}
}

// Get returns a Customer entity by its id.
func (c *CustomerClient) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return c.Query().Where(customer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CustomerClient) GetX(ctx context.Context, id uuid.UUID) *Customer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPolicies queries the policies edge of a Customer.
func (c *CustomerClient) QueryPolicies(_m *Customer) *InsurancePolicyQuery {
	query := (&InsurancePolicyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(customer.Table, customer.FieldID, id),
			sqlgraph.To(insurancepolicy.Table, insurancepolicy.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, customer.PoliciesTable, customer.PoliciesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CustomerClient) Hooks() []Hook {
	return c.hooks.Customer
}

// Interceptors returns the client interceptors.
func (c *CustomerClient) Interceptors() []Interceptor {
	return c.inters.Customer
}

func (c *CustomerClient) mutate(ctx context.Context, m *CustomerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CustomerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CustomerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CustomerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CustomerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Customer mutation op: %q", m.Op())
	}
}

// DocumentLogClient is a client for the DocumentLog schema.
type DocumentLogClient struct {
	config
}

// NewDocumentLogClient returns a client for the DocumentLog from the given config.
func NewDocumentLogClient(c config) *DocumentLogClient {
	return &DocumentLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentlog.Hooks(f(g(h())))`.
func (c *DocumentLogClient) Use(hooks ...Hook) {
	c.hooks.DocumentLog = append(c.hooks.DocumentLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentlog.Intercept(f(g(h())))`.
func (c *DocumentLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentLog = append(c.inters.DocumentLog, interceptors...)
}

// Create returns a builder for creating a DocumentLog entity.
func (c *DocumentLogClient) Create() *DocumentLogCreate {
	mutation := newDocumentLogMutation(c.config, OpCreate)
	return &DocumentLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentLog entities.
func (c *DocumentLogClient) CreateBulk(builders ...*DocumentLogCreate) *DocumentLogCreateBulk {
	return &DocumentLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentLogClient) MapCreateBulk(slice any, setFunc func(*DocumentLogCreate, int)) *DocumentLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentLogCreateBulk{err: fmt.Errorf("calling to DocumentLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentLog.
func (c *DocumentLogClient) Update() *DocumentLogUpdate {
	mutation := newDocumentLogMutation(c.config, OpUpdate)
	return &DocumentLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentLogClient) UpdateOne(_m *DocumentLog) *DocumentLogUpdateOne {
	mutation := newDocumentLogMutation(c.config, OpUpdateOne, withDocumentLog(_m))
	return &DocumentLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentLogClient) UpdateOneID(id uuid.UUID) *DocumentLogUpdateOne {
	mutation := newDocumentLogMutation(c.config, OpUpdateOne, withDocumentLogID(id))
	return &DocumentLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentLog.
func (c *DocumentLogClient) Delete() *DocumentLogDelete {
	mutation := newDocumentLogMutation(c.config, OpDelete)
	return &DocumentLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentLogClient) DeleteOne(_m *DocumentLog) *DocumentLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentLogClient) DeleteOneID(id uuid.UUID) *DocumentLogDeleteOne {
	builder := c.Delete().Where(documentlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentLogDeleteOne{builder}
}

// Query returns a query builder for DocumentLog.
func (c *DocumentLogClient) Query() *DocumentLogQuery {
	return &DocumentLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentLog},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentLog entity by its id.
func (c *DocumentLogClient) Get(ctx context.Context, id uuid.UUID) (*DocumentLog, error) {
	return c.Query().Where(documentlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentLogClient) GetX(ctx context.Context, id uuid.UUID) *DocumentLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DocumentLogClient) Hooks() []Hook {
	return c.hooks.DocumentLog
}

// Interceptors returns the client interceptors.
func (c *DocumentLogClient) Interceptors() []Interceptor {
	return c.inters.DocumentLog
}

func (c *DocumentLogClient) mutate(ctx context.Context, m *DocumentLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentLog mutation op: %q", m.Op())
	}
}

// InsurancePolicyClient is a client for the InsurancePolicy schema.
type InsurancePolicyClient struct {
	config
}

// NewInsurancePolicyClient returns a client for the InsurancePolicy from the given config.
func NewInsurancePolicyClient(c config) *InsurancePolicyClient {
	return &InsurancePolicyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `insurancepolicy.Hooks(f(g(h())))`.
func (c *InsurancePolicyClient) Use(hooks ...Hook) {
	c.hooks.InsurancePolicy = append(c.hooks.InsurancePolicy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `insurancepolicy.Intercept(f(g(h())))`.
func (c *InsurancePolicyClient) Intercept(interceptors ...Interceptor) {
	c.inters.InsurancePolicy = append(c.inters.InsurancePolicy, interceptors...)
}

// Create returns a builder for creating a InsurancePolicy entity.
func (c *InsurancePolicyClient) Create() *InsurancePolicyCreate {
	mutation := newInsurancePolicyMutation(c.config, OpCreate)
	return &InsurancePolicyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InsurancePolicy entities.
func (c *InsurancePolicyClient) CreateBulk(builders ...*InsurancePolicyCreate) *InsurancePolicyCreateBulk {
	return &InsurancePolicyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InsurancePolicyClient) MapCreateBulk(slice any, setFunc func(*InsurancePolicyCreate, int)) *InsurancePolicyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InsurancePolicyCreateBulk{err: fmt.Errorf("calling to InsurancePolicyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InsurancePolicyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InsurancePolicyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InsurancePolicy.
func (c *InsurancePolicyClient) Update() *InsurancePolicyUpdate {
	mutation := newInsurancePolicyMutation(c.config, OpUpdate)
	return &InsurancePolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InsurancePolicyClient) UpdateOne(_m *InsurancePolicy) *InsurancePolicyUpdateOne {
	mutation := newInsurancePolicyMutation(c.config, OpUpdateOne, withInsurancePolicy(_m))
	return &InsurancePolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InsurancePolicyClient) UpdateOneID(id uuid.UUID) *InsurancePolicyUpdateOne {
	mutation := newInsurancePolicyMutation(c.config, OpUpdateOne, withInsurancePolicyID(id))
	return &InsurancePolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InsurancePolicy.
func (c *InsurancePolicyClient) Delete() *InsurancePolicyDelete {
	mutation := newInsurancePolicyMutation(c.config, OpDelete)
	return &InsurancePolicyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InsurancePolicyClient) DeleteOne(_m *InsurancePolicy) *InsurancePolicyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InsurancePolicyClient) DeleteOneID(id uuid.UUID) *InsurancePolicyDeleteOne {
	builder := c.Delete().Where(insurancepolicy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InsurancePolicyDeleteOne{builder}
}

// Query returns a query builder for InsurancePolicy.
func (c *InsurancePolicyClient) Query() *InsurancePolicyQuery {
	return &InsurancePolicyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInsurancePolicy},
		inters: c.Interceptors(),
	}
}

// Get returns a InsurancePolicy entity by its id.
func (c *InsurancePolicyClient) Get(ctx context.Context, id uuid.UUID) (*InsurancePolicy, error) {
	return c.Query().Where(insurancepolicy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InsurancePolicyClient) GetX(ctx context.Context, id uuid.UUID) *InsurancePolicy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCustomer queries the customer edge of a InsurancePolicy.
func (c *InsurancePolicyClient) QueryCustomer(_m *InsurancePolicy) *CustomerQuery {
	query := (&CustomerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insurancepolicy.Table, insurancepolicy.FieldID, id),
			sqlgraph.To(customer.Table, customer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, insurancepolicy.CustomerTable, insurancepolicy.CustomerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPremiumRecords queries the premium_records edge of a InsurancePolicy.
func (c *InsurancePolicyClient) QueryPremiumRecords(_m *InsurancePolicy) *PremiumRecordQuery {
	query := (&PremiumRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insurancepolicy.Table, insurancepolicy.FieldID, id),
			sqlgraph.To(premiumrecord.Table, premiumrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, insurancepolicy.PremiumRecordsTable, insurancepolicy.PremiumRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InsurancePolicyClient) Hooks() []Hook {
	return c.hooks.InsurancePolicy
}

// Interceptors returns the client interceptors.
func (c *InsurancePolicyClient) Interceptors() []Interceptor {
	return c.inters.InsurancePolicy
}

func (c *InsurancePolicyClient) mutate(ctx context.Context, m *InsurancePolicyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InsurancePolicyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InsurancePolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InsurancePolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InsurancePolicyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InsurancePolicy mutation op: %q", m.Op())
	}
}

// PremiumRecordClient is a client for the PremiumRecord schema.
type PremiumRecordClient struct {
	config
}

// NewPremiumRecordClient returns a client for the PremiumRecord from the given config.
func NewPremiumRecordClient(c config) *PremiumRecordClient {
	return &PremiumRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `premiumrecord.Hooks(f(g(h())))`.
func (c *PremiumRecordClient) Use(hooks ...Hook) {
	c.hooks.PremiumRecord = append(c.hooks.PremiumRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `premiumrecord.Intercept(f(g(h())))`.
func (c *PremiumRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.PremiumRecord = append(c.inters.PremiumRecord, interceptors...)
}

// Create returns a builder for creating a PremiumRecord entity.
func (c *PremiumRecordClient) Create() *PremiumRecordCreate {
	mutation := newPremiumRecordMutation(c.config, OpCreate)
	return &PremiumRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PremiumRecord entities.
func (c *PremiumRecordClient) CreateBulk(builders ...*PremiumRecordCreate) *PremiumRecordCreateBulk {
	return &PremiumRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PremiumRecordClient) MapCreateBulk(slice any, setFunc func(*PremiumRecordCreate, int)) *PremiumRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PremiumRecordCreateBulk{err: fmt.Errorf("calling to PremiumRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PremiumRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PremiumRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PremiumRecord.
func (c *PremiumRecordClient) Update() *PremiumRecordUpdate {
	mutation := newPremiumRecordMutation(c.config, OpUpdate)
	return &PremiumRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PremiumRecordClient) UpdateOne(_m *PremiumRecord) *PremiumRecordUpdateOne {
	mutation := newPremiumRecordMutation(c.config, OpUpdateOne, withPremiumRecord(_m))
	return &PremiumRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PremiumRecordClient) UpdateOneID(id uuid.UUID) *PremiumRecordUpdateOne {
	mutation := newPremiumRecordMutation(c.config, OpUpdateOne, withPremiumRecordID(id))
	return &PremiumRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PremiumRecord.
func (c *PremiumRecordClient) Delete() *PremiumRecordDelete {
	mutation := newPremiumRecordMutation(c.config, OpDelete)
	return &PremiumRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PremiumRecordClient) DeleteOne(_m *PremiumRecord) *PremiumRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PremiumRecordClient) DeleteOneID(id uuid.UUID) *PremiumRecordDeleteOne {
	builder := c.Delete().Where(premiumrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PremiumRecordDeleteOne{builder}
}

// Query returns a query builder for PremiumRecord.
func (c *PremiumRecordClient) Query() *PremiumRecordQuery {
	return &PremiumRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePremiumRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a PremiumRecord entity by its id.
func (c *PremiumRecordClient) Get(ctx context.Context, id uuid.UUID) (*PremiumRecord, error) {
	return c.Query().Where(premiumrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PremiumRecordClient) GetX(ctx context.Context, id uuid.UUID) *PremiumRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPolicy queries the policy edge of a PremiumRecord.
func (c *PremiumRecordClient) QueryPolicy(_m *PremiumRecord) *InsurancePolicyQuery {
	query := (&InsurancePolicyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(premiumrecord.Table, premiumrecord.FieldID, id),
			sqlgraph.To(insurancepolicy.Table, insurancepolicy.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, premiumrecord.PolicyTable, premiumrecord.PolicyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PremiumRecordClient) Hooks() []Hook {
	return c.hooks.PremiumRecord
}

// Interceptors returns the client interceptors.
func (c *PremiumRecordClient) Interceptors() []Interceptor {
	return c.inters.PremiumRecord
}

func (c *PremiumRecordClient) mutate(ctx context.Context, m *PremiumRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PremiumRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PremiumRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PremiumRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PremiumRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PremiumRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, Customer, DocumentLog, InsurancePolicy, PremiumRecord []ent.Hook
	}
	inters struct {
		Agent, Customer, DocumentLog, InsurancePolicy, PremiumRecord []ent.Interceptor
	}
)
