// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/helmsman-ai/helmsman/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/helmsman-ai/helmsman/ent/agent"
	"github.com/helmsman-ai/helmsman/ent/agentbaseline"
	"github.com/helmsman-ai/helmsman/ent/budget"
	"github.com/helmsman-ai/helmsman/ent/costrecord"
	"github.com/helmsman-ai/helmsman/ent/guardianaction"
	"github.com/helmsman-ai/helmsman/ent/mergeattempt"
	"github.com/helmsman-ai/helmsman/ent/sandboxallocation"
	"github.com/helmsman-ai/helmsman/ent/sandboxevent"
	"github.com/helmsman-ai/helmsman/ent/sandboxmessage"
	"github.com/helmsman-ai/helmsman/ent/specdoc"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/ent/ticket"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AgentBaseline is the client for interacting with the AgentBaseline builders.
	AgentBaseline *AgentBaselineClient
	// Budget is the client for interacting with the Budget builders.
	Budget *BudgetClient
	// CostRecord is the client for interacting with the CostRecord builders.
	CostRecord *CostRecordClient
	// GuardianAction is the client for interacting with the GuardianAction builders.
	GuardianAction *GuardianActionClient
	// MergeAttempt is the client for interacting with the MergeAttempt builders.
	MergeAttempt *MergeAttemptClient
	// SandboxAllocation is the client for interacting with the SandboxAllocation builders.
	SandboxAllocation *SandboxAllocationClient
	// SandboxEvent is the client for interacting with the SandboxEvent builders.
	SandboxEvent *SandboxEventClient
	// SandboxMessage is the client for interacting with the SandboxMessage builders.
	SandboxMessage *SandboxMessageClient
	// SpecDoc is the client for interacting with the SpecDoc builders.
	SpecDoc *SpecDocClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// Ticket is the client for interacting with the Ticket builders.
	Ticket *TicketClient
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
	c.AgentBaseline = NewAgentBaselineClient(c.config)
	c.Budget = NewBudgetClient(c.config)
	c.CostRecord = NewCostRecordClient(c.config)
	c.GuardianAction = NewGuardianActionClient(c.config)
	c.MergeAttempt = NewMergeAttemptClient(c.config)
	c.SandboxAllocation = NewSandboxAllocationClient(c.config)
	c.SandboxEvent = NewSandboxEventClient(c.config)
	c.SandboxMessage = NewSandboxMessageClient(c.config)
	c.SpecDoc = NewSpecDocClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.Ticket = NewTicketClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		Agent:             NewAgentClient(cfg),
		AgentBaseline:     NewAgentBaselineClient(cfg),
		Budget:            NewBudgetClient(cfg),
		CostRecord:        NewCostRecordClient(cfg),
		GuardianAction:    NewGuardianActionClient(cfg),
		MergeAttempt:      NewMergeAttemptClient(cfg),
		SandboxAllocation: NewSandboxAllocationClient(cfg),
		SandboxEvent:      NewSandboxEventClient(cfg),
		SandboxMessage:    NewSandboxMessageClient(cfg),
		SpecDoc:           NewSpecDocClient(cfg),
		Task:              NewTaskClient(cfg),
		Ticket:            NewTicketClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		Agent:             NewAgentClient(cfg),
		AgentBaseline:     NewAgentBaselineClient(cfg),
		Budget:            NewBudgetClient(cfg),
		CostRecord:        NewCostRecordClient(cfg),
		GuardianAction:    NewGuardianActionClient(cfg),
		MergeAttempt:      NewMergeAttemptClient(cfg),
		SandboxAllocation: NewSandboxAllocationClient(cfg),
		SandboxEvent:      NewSandboxEventClient(cfg),
		SandboxMessage:    NewSandboxMessageClient(cfg),
		SpecDoc:           NewSpecDocClient(cfg),
		Task:              NewTaskClient(cfg),
		Ticket:            NewTicketClient(cfg),
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Agent, c.AgentBaseline, c.Budget, c.CostRecord, c.GuardianAction,
		c.MergeAttempt, c.SandboxAllocation, c.SandboxEvent, c.SandboxMessage,
		c.SpecDoc, c.Task, c.Ticket,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AgentBaseline, c.Budget, c.CostRecord, c.GuardianAction,
		c.MergeAttempt, c.SandboxAllocation, c.SandboxEvent, c.SandboxMessage,
		c.SpecDoc, c.Task, c.Ticket,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AgentBaselineMutation:
		return c.AgentBaseline.mutate(ctx, m)
	case *BudgetMutation:
		return c.Budget.mutate(ctx, m)
	case *CostRecordMutation:
		return c.CostRecord.mutate(ctx, m)
	case *GuardianActionMutation:
		return c.GuardianAction.mutate(ctx, m)
	case *MergeAttemptMutation:
		return c.MergeAttempt.mutate(ctx, m)
	case *SandboxAllocationMutation:
		return c.SandboxAllocation.mutate(ctx, m)
	case *SandboxEventMutation:
		return c.SandboxEvent.mutate(ctx, m)
	case *SandboxMessageMutation:
		return c.SandboxMessage.mutate(ctx, m)
	case *SpecDocMutation:
		return c.SpecDoc.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TicketMutation:
		return c.Ticket.mutate(ctx, m)
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
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
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
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
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
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
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

// AgentBaselineClient is a client for the AgentBaseline schema.
type AgentBaselineClient struct {
	config
}

// NewAgentBaselineClient returns a client for the AgentBaseline from the given config.
func NewAgentBaselineClient(c config) *AgentBaselineClient {
	return &AgentBaselineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentbaseline.Hooks(f(g(h())))`.
func (c *AgentBaselineClient) Use(hooks ...Hook) {
	c.hooks.AgentBaseline = append(c.hooks.AgentBaseline, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentbaseline.Intercept(f(g(h())))`.
func (c *AgentBaselineClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentBaseline = append(c.inters.AgentBaseline, interceptors...)
}

// Create returns a builder for creating a AgentBaseline entity.
func (c *AgentBaselineClient) Create() *AgentBaselineCreate {
	mutation := newAgentBaselineMutation(c.config, OpCreate)
	return &AgentBaselineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentBaseline entities.
func (c *AgentBaselineClient) CreateBulk(builders ...*AgentBaselineCreate) *AgentBaselineCreateBulk {
	return &AgentBaselineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentBaselineClient) MapCreateBulk(slice any, setFunc func(*AgentBaselineCreate, int)) *AgentBaselineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentBaselineCreateBulk{err: fmt.Errorf("calling to AgentBaselineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentBaselineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentBaselineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentBaseline.
func (c *AgentBaselineClient) Update() *AgentBaselineUpdate {
	mutation := newAgentBaselineMutation(c.config, OpUpdate)
	return &AgentBaselineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentBaselineClient) UpdateOne(_m *AgentBaseline) *AgentBaselineUpdateOne {
	mutation := newAgentBaselineMutation(c.config, OpUpdateOne, withAgentBaseline(_m))
	return &AgentBaselineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentBaselineClient) UpdateOneID(id int) *AgentBaselineUpdateOne {
	mutation := newAgentBaselineMutation(c.config, OpUpdateOne, withAgentBaselineID(id))
	return &AgentBaselineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentBaseline.
func (c *AgentBaselineClient) Delete() *AgentBaselineDelete {
	mutation := newAgentBaselineMutation(c.config, OpDelete)
	return &AgentBaselineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentBaselineClient) DeleteOne(_m *AgentBaseline) *AgentBaselineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentBaselineClient) DeleteOneID(id int) *AgentBaselineDeleteOne {
	builder := c.Delete().Where(agentbaseline.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentBaselineDeleteOne{builder}
}

// Query returns a query builder for AgentBaseline.
func (c *AgentBaselineClient) Query() *AgentBaselineQuery {
	return &AgentBaselineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentBaseline},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentBaseline entity by its id.
func (c *AgentBaselineClient) Get(ctx context.Context, id int) (*AgentBaseline, error) {
	return c.Query().Where(agentbaseline.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentBaselineClient) GetX(ctx context.Context, id int) *AgentBaseline {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentBaselineClient) Hooks() []Hook {
	return c.hooks.AgentBaseline
}

// Interceptors returns the client interceptors.
func (c *AgentBaselineClient) Interceptors() []Interceptor {
	return c.inters.AgentBaseline
}

func (c *AgentBaselineClient) mutate(ctx context.Context, m *AgentBaselineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentBaselineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentBaselineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentBaselineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentBaselineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentBaseline mutation op: %q", m.Op())
	}
}

// BudgetClient is a client for the Budget schema.
type BudgetClient struct {
	config
}

// NewBudgetClient returns a client for the Budget from the given config.
func NewBudgetClient(c config) *BudgetClient {
	return &BudgetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `budget.Hooks(f(g(h())))`.
func (c *BudgetClient) Use(hooks ...Hook) {
	c.hooks.Budget = append(c.hooks.Budget, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `budget.Intercept(f(g(h())))`.
func (c *BudgetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Budget = append(c.inters.Budget, interceptors...)
}

// Create returns a builder for creating a Budget entity.
func (c *BudgetClient) Create() *BudgetCreate {
	mutation := newBudgetMutation(c.config, OpCreate)
	return &BudgetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Budget entities.
func (c *BudgetClient) CreateBulk(builders ...*BudgetCreate) *BudgetCreateBulk {
	return &BudgetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BudgetClient) MapCreateBulk(slice any, setFunc func(*BudgetCreate, int)) *BudgetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BudgetCreateBulk{err: fmt.Errorf("calling to BudgetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BudgetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BudgetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Budget.
func (c *BudgetClient) Update() *BudgetUpdate {
	mutation := newBudgetMutation(c.config, OpUpdate)
	return &BudgetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BudgetClient) UpdateOne(_m *Budget) *BudgetUpdateOne {
	mutation := newBudgetMutation(c.config, OpUpdateOne, withBudget(_m))
	return &BudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BudgetClient) UpdateOneID(id string) *BudgetUpdateOne {
	mutation := newBudgetMutation(c.config, OpUpdateOne, withBudgetID(id))
	return &BudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Budget.
func (c *BudgetClient) Delete() *BudgetDelete {
	mutation := newBudgetMutation(c.config, OpDelete)
	return &BudgetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BudgetClient) DeleteOne(_m *Budget) *BudgetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BudgetClient) DeleteOneID(id string) *BudgetDeleteOne {
	builder := c.Delete().Where(budget.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BudgetDeleteOne{builder}
}

// Query returns a query builder for Budget.
func (c *BudgetClient) Query() *BudgetQuery {
	return &BudgetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBudget},
		inters: c.Interceptors(),
	}
}

// Get returns a Budget entity by its id.
func (c *BudgetClient) Get(ctx context.Context, id string) (*Budget, error) {
	return c.Query().Where(budget.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BudgetClient) GetX(ctx context.Context, id string) *Budget {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BudgetClient) Hooks() []Hook {
	return c.hooks.Budget
}

// Interceptors returns the client interceptors.
func (c *BudgetClient) Interceptors() []Interceptor {
	return c.inters.Budget
}

func (c *BudgetClient) mutate(ctx context.Context, m *BudgetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BudgetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BudgetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BudgetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BudgetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Budget mutation op: %q", m.Op())
	}
}

// CostRecordClient is a client for the CostRecord schema.
type CostRecordClient struct {
	config
}

// NewCostRecordClient returns a client for the CostRecord from the given config.
func NewCostRecordClient(c config) *CostRecordClient {
	return &CostRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `costrecord.Hooks(f(g(h())))`.
func (c *CostRecordClient) Use(hooks ...Hook) {
	c.hooks.CostRecord = append(c.hooks.CostRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `costrecord.Intercept(f(g(h())))`.
func (c *CostRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.CostRecord = append(c.inters.CostRecord, interceptors...)
}

// Create returns a builder for creating a CostRecord entity.
func (c *CostRecordClient) Create() *CostRecordCreate {
	mutation := newCostRecordMutation(c.config, OpCreate)
	return &CostRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CostRecord entities.
func (c *CostRecordClient) CreateBulk(builders ...*CostRecordCreate) *CostRecordCreateBulk {
	return &CostRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CostRecordClient) MapCreateBulk(slice any, setFunc func(*CostRecordCreate, int)) *CostRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CostRecordCreateBulk{err: fmt.Errorf("calling to CostRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CostRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CostRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CostRecord.
func (c *CostRecordClient) Update() *CostRecordUpdate {
	mutation := newCostRecordMutation(c.config, OpUpdate)
	return &CostRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CostRecordClient) UpdateOne(_m *CostRecord) *CostRecordUpdateOne {
	mutation := newCostRecordMutation(c.config, OpUpdateOne, withCostRecord(_m))
	return &CostRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CostRecordClient) UpdateOneID(id string) *CostRecordUpdateOne {
	mutation := newCostRecordMutation(c.config, OpUpdateOne, withCostRecordID(id))
	return &CostRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CostRecord.
func (c *CostRecordClient) Delete() *CostRecordDelete {
	mutation := newCostRecordMutation(c.config, OpDelete)
	return &CostRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CostRecordClient) DeleteOne(_m *CostRecord) *CostRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CostRecordClient) DeleteOneID(id string) *CostRecordDeleteOne {
	builder := c.Delete().Where(costrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CostRecordDeleteOne{builder}
}

// Query returns a query builder for CostRecord.
func (c *CostRecordClient) Query() *CostRecordQuery {
	return &CostRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCostRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a CostRecord entity by its id.
func (c *CostRecordClient) Get(ctx context.Context, id string) (*CostRecord, error) {
	return c.Query().Where(costrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CostRecordClient) GetX(ctx context.Context, id string) *CostRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a CostRecord.
func (c *CostRecordClient) QueryTask(_m *CostRecord) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(costrecord.Table, costrecord.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, costrecord.TaskTable, costrecord.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CostRecordClient) Hooks() []Hook {
	return c.hooks.CostRecord
}

// Interceptors returns the client interceptors.
func (c *CostRecordClient) Interceptors() []Interceptor {
	return c.inters.CostRecord
}

func (c *CostRecordClient) mutate(ctx context.Context, m *CostRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CostRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CostRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CostRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CostRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CostRecord mutation op: %q", m.Op())
	}
}

// GuardianActionClient is a client for the GuardianAction schema.
type GuardianActionClient struct {
	config
}

// NewGuardianActionClient returns a client for the GuardianAction from the given config.
func NewGuardianActionClient(c config) *GuardianActionClient {
	return &GuardianActionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `guardianaction.Hooks(f(g(h())))`.
func (c *GuardianActionClient) Use(hooks ...Hook) {
	c.hooks.GuardianAction = append(c.hooks.GuardianAction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `guardianaction.Intercept(f(g(h())))`.
func (c *GuardianActionClient) Intercept(interceptors ...Interceptor) {
	c.inters.GuardianAction = append(c.inters.GuardianAction, interceptors...)
}

// Create returns a builder for creating a GuardianAction entity.
func (c *GuardianActionClient) Create() *GuardianActionCreate {
	mutation := newGuardianActionMutation(c.config, OpCreate)
	return &GuardianActionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GuardianAction entities.
func (c *GuardianActionClient) CreateBulk(builders ...*GuardianActionCreate) *GuardianActionCreateBulk {
	return &GuardianActionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GuardianActionClient) MapCreateBulk(slice any, setFunc func(*GuardianActionCreate, int)) *GuardianActionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GuardianActionCreateBulk{err: fmt.Errorf("calling to GuardianActionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GuardianActionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GuardianActionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GuardianAction.
func (c *GuardianActionClient) Update() *GuardianActionUpdate {
	mutation := newGuardianActionMutation(c.config, OpUpdate)
	return &GuardianActionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GuardianActionClient) UpdateOne(_m *GuardianAction) *GuardianActionUpdateOne {
	mutation := newGuardianActionMutation(c.config, OpUpdateOne, withGuardianAction(_m))
	return &GuardianActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GuardianActionClient) UpdateOneID(id string) *GuardianActionUpdateOne {
	mutation := newGuardianActionMutation(c.config, OpUpdateOne, withGuardianActionID(id))
	return &GuardianActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GuardianAction.
func (c *GuardianActionClient) Delete() *GuardianActionDelete {
	mutation := newGuardianActionMutation(c.config, OpDelete)
	return &GuardianActionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GuardianActionClient) DeleteOne(_m *GuardianAction) *GuardianActionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GuardianActionClient) DeleteOneID(id string) *GuardianActionDeleteOne {
	builder := c.Delete().Where(guardianaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GuardianActionDeleteOne{builder}
}

// Query returns a query builder for GuardianAction.
func (c *GuardianActionClient) Query() *GuardianActionQuery {
	return &GuardianActionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGuardianAction},
		inters: c.Interceptors(),
	}
}

// Get returns a GuardianAction entity by its id.
func (c *GuardianActionClient) Get(ctx context.Context, id string) (*GuardianAction, error) {
	return c.Query().Where(guardianaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GuardianActionClient) GetX(ctx context.Context, id string) *GuardianAction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GuardianActionClient) Hooks() []Hook {
	return c.hooks.GuardianAction
}

// Interceptors returns the client interceptors.
func (c *GuardianActionClient) Interceptors() []Interceptor {
	return c.inters.GuardianAction
}

func (c *GuardianActionClient) mutate(ctx context.Context, m *GuardianActionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GuardianActionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GuardianActionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GuardianActionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GuardianActionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GuardianAction mutation op: %q", m.Op())
	}
}

// MergeAttemptClient is a client for the MergeAttempt schema.
type MergeAttemptClient struct {
	config
}

// NewMergeAttemptClient returns a client for the MergeAttempt from the given config.
func NewMergeAttemptClient(c config) *MergeAttemptClient {
	return &MergeAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mergeattempt.Hooks(f(g(h())))`.
func (c *MergeAttemptClient) Use(hooks ...Hook) {
	c.hooks.MergeAttempt = append(c.hooks.MergeAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mergeattempt.Intercept(f(g(h())))`.
func (c *MergeAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.MergeAttempt = append(c.inters.MergeAttempt, interceptors...)
}

// Create returns a builder for creating a MergeAttempt entity.
func (c *MergeAttemptClient) Create() *MergeAttemptCreate {
	mutation := newMergeAttemptMutation(c.config, OpCreate)
	return &MergeAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MergeAttempt entities.
func (c *MergeAttemptClient) CreateBulk(builders ...*MergeAttemptCreate) *MergeAttemptCreateBulk {
	return &MergeAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MergeAttemptClient) MapCreateBulk(slice any, setFunc func(*MergeAttemptCreate, int)) *MergeAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MergeAttemptCreateBulk{err: fmt.Errorf("calling to MergeAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MergeAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MergeAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MergeAttempt.
func (c *MergeAttemptClient) Update() *MergeAttemptUpdate {
	mutation := newMergeAttemptMutation(c.config, OpUpdate)
	return &MergeAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MergeAttemptClient) UpdateOne(_m *MergeAttempt) *MergeAttemptUpdateOne {
	mutation := newMergeAttemptMutation(c.config, OpUpdateOne, withMergeAttempt(_m))
	return &MergeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MergeAttemptClient) UpdateOneID(id string) *MergeAttemptUpdateOne {
	mutation := newMergeAttemptMutation(c.config, OpUpdateOne, withMergeAttemptID(id))
	return &MergeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MergeAttempt.
func (c *MergeAttemptClient) Delete() *MergeAttemptDelete {
	mutation := newMergeAttemptMutation(c.config, OpDelete)
	return &MergeAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MergeAttemptClient) DeleteOne(_m *MergeAttempt) *MergeAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MergeAttemptClient) DeleteOneID(id string) *MergeAttemptDeleteOne {
	builder := c.Delete().Where(mergeattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MergeAttemptDeleteOne{builder}
}

// Query returns a query builder for MergeAttempt.
func (c *MergeAttemptClient) Query() *MergeAttemptQuery {
	return &MergeAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMergeAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a MergeAttempt entity by its id.
func (c *MergeAttemptClient) Get(ctx context.Context, id string) (*MergeAttempt, error) {
	return c.Query().Where(mergeattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MergeAttemptClient) GetX(ctx context.Context, id string) *MergeAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MergeAttemptClient) Hooks() []Hook {
	return c.hooks.MergeAttempt
}

// Interceptors returns the client interceptors.
func (c *MergeAttemptClient) Interceptors() []Interceptor {
	return c.inters.MergeAttempt
}

func (c *MergeAttemptClient) mutate(ctx context.Context, m *MergeAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MergeAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MergeAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MergeAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MergeAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MergeAttempt mutation op: %q", m.Op())
	}
}

// SandboxAllocationClient is a client for the SandboxAllocation schema.
type SandboxAllocationClient struct {
	config
}

// NewSandboxAllocationClient returns a client for the SandboxAllocation from the given config.
func NewSandboxAllocationClient(c config) *SandboxAllocationClient {
	return &SandboxAllocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sandboxallocation.Hooks(f(g(h())))`.
func (c *SandboxAllocationClient) Use(hooks ...Hook) {
	c.hooks.SandboxAllocation = append(c.hooks.SandboxAllocation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sandboxallocation.Intercept(f(g(h())))`.
func (c *SandboxAllocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.SandboxAllocation = append(c.inters.SandboxAllocation, interceptors...)
}

// Create returns a builder for creating a SandboxAllocation entity.
func (c *SandboxAllocationClient) Create() *SandboxAllocationCreate {
	mutation := newSandboxAllocationMutation(c.config, OpCreate)
	return &SandboxAllocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SandboxAllocation entities.
func (c *SandboxAllocationClient) CreateBulk(builders ...*SandboxAllocationCreate) *SandboxAllocationCreateBulk {
	return &SandboxAllocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SandboxAllocationClient) MapCreateBulk(slice any, setFunc func(*SandboxAllocationCreate, int)) *SandboxAllocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SandboxAllocationCreateBulk{err: fmt.Errorf("calling to SandboxAllocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SandboxAllocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SandboxAllocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SandboxAllocation.
func (c *SandboxAllocationClient) Update() *SandboxAllocationUpdate {
	mutation := newSandboxAllocationMutation(c.config, OpUpdate)
	return &SandboxAllocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SandboxAllocationClient) UpdateOne(_m *SandboxAllocation) *SandboxAllocationUpdateOne {
	mutation := newSandboxAllocationMutation(c.config, OpUpdateOne, withSandboxAllocation(_m))
	return &SandboxAllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SandboxAllocationClient) UpdateOneID(id string) *SandboxAllocationUpdateOne {
	mutation := newSandboxAllocationMutation(c.config, OpUpdateOne, withSandboxAllocationID(id))
	return &SandboxAllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SandboxAllocation.
func (c *SandboxAllocationClient) Delete() *SandboxAllocationDelete {
	mutation := newSandboxAllocationMutation(c.config, OpDelete)
	return &SandboxAllocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SandboxAllocationClient) DeleteOne(_m *SandboxAllocation) *SandboxAllocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SandboxAllocationClient) DeleteOneID(id string) *SandboxAllocationDeleteOne {
	builder := c.Delete().Where(sandboxallocation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SandboxAllocationDeleteOne{builder}
}

// Query returns a query builder for SandboxAllocation.
func (c *SandboxAllocationClient) Query() *SandboxAllocationQuery {
	return &SandboxAllocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSandboxAllocation},
		inters: c.Interceptors(),
	}
}

// Get returns a SandboxAllocation entity by its id.
func (c *SandboxAllocationClient) Get(ctx context.Context, id string) (*SandboxAllocation, error) {
	return c.Query().Where(sandboxallocation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SandboxAllocationClient) GetX(ctx context.Context, id string) *SandboxAllocation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SandboxAllocationClient) Hooks() []Hook {
	return c.hooks.SandboxAllocation
}

// Interceptors returns the client interceptors.
func (c *SandboxAllocationClient) Interceptors() []Interceptor {
	return c.inters.SandboxAllocation
}

func (c *SandboxAllocationClient) mutate(ctx context.Context, m *SandboxAllocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SandboxAllocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SandboxAllocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SandboxAllocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SandboxAllocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SandboxAllocation mutation op: %q", m.Op())
	}
}

// SandboxEventClient is a client for the SandboxEvent schema.
type SandboxEventClient struct {
	config
}

// NewSandboxEventClient returns a client for the SandboxEvent from the given config.
func NewSandboxEventClient(c config) *SandboxEventClient {
	return &SandboxEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sandboxevent.Hooks(f(g(h())))`.
func (c *SandboxEventClient) Use(hooks ...Hook) {
	c.hooks.SandboxEvent = append(c.hooks.SandboxEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sandboxevent.Intercept(f(g(h())))`.
func (c *SandboxEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SandboxEvent = append(c.inters.SandboxEvent, interceptors...)
}

// Create returns a builder for creating a SandboxEvent entity.
func (c *SandboxEventClient) Create() *SandboxEventCreate {
	mutation := newSandboxEventMutation(c.config, OpCreate)
	return &SandboxEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SandboxEvent entities.
func (c *SandboxEventClient) CreateBulk(builders ...*SandboxEventCreate) *SandboxEventCreateBulk {
	return &SandboxEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SandboxEventClient) MapCreateBulk(slice any, setFunc func(*SandboxEventCreate, int)) *SandboxEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SandboxEventCreateBulk{err: fmt.Errorf("calling to SandboxEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SandboxEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SandboxEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SandboxEvent.
func (c *SandboxEventClient) Update() *SandboxEventUpdate {
	mutation := newSandboxEventMutation(c.config, OpUpdate)
	return &SandboxEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SandboxEventClient) UpdateOne(_m *SandboxEvent) *SandboxEventUpdateOne {
	mutation := newSandboxEventMutation(c.config, OpUpdateOne, withSandboxEvent(_m))
	return &SandboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SandboxEventClient) UpdateOneID(id int64) *SandboxEventUpdateOne {
	mutation := newSandboxEventMutation(c.config, OpUpdateOne, withSandboxEventID(id))
	return &SandboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SandboxEvent.
func (c *SandboxEventClient) Delete() *SandboxEventDelete {
	mutation := newSandboxEventMutation(c.config, OpDelete)
	return &SandboxEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SandboxEventClient) DeleteOne(_m *SandboxEvent) *SandboxEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SandboxEventClient) DeleteOneID(id int64) *SandboxEventDeleteOne {
	builder := c.Delete().Where(sandboxevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SandboxEventDeleteOne{builder}
}

// Query returns a query builder for SandboxEvent.
func (c *SandboxEventClient) Query() *SandboxEventQuery {
	return &SandboxEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSandboxEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SandboxEvent entity by its id.
func (c *SandboxEventClient) Get(ctx context.Context, id int64) (*SandboxEvent, error) {
	return c.Query().Where(sandboxevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SandboxEventClient) GetX(ctx context.Context, id int64) *SandboxEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SandboxEventClient) Hooks() []Hook {
	return c.hooks.SandboxEvent
}

// Interceptors returns the client interceptors.
func (c *SandboxEventClient) Interceptors() []Interceptor {
	return c.inters.SandboxEvent
}

func (c *SandboxEventClient) mutate(ctx context.Context, m *SandboxEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SandboxEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SandboxEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SandboxEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SandboxEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SandboxEvent mutation op: %q", m.Op())
	}
}

// SandboxMessageClient is a client for the SandboxMessage schema.
type SandboxMessageClient struct {
	config
}

// NewSandboxMessageClient returns a client for the SandboxMessage from the given config.
func NewSandboxMessageClient(c config) *SandboxMessageClient {
	return &SandboxMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sandboxmessage.Hooks(f(g(h())))`.
func (c *SandboxMessageClient) Use(hooks ...Hook) {
	c.hooks.SandboxMessage = append(c.hooks.SandboxMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sandboxmessage.Intercept(f(g(h())))`.
func (c *SandboxMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.SandboxMessage = append(c.inters.SandboxMessage, interceptors...)
}

// Create returns a builder for creating a SandboxMessage entity.
func (c *SandboxMessageClient) Create() *SandboxMessageCreate {
	mutation := newSandboxMessageMutation(c.config, OpCreate)
	return &SandboxMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SandboxMessage entities.
func (c *SandboxMessageClient) CreateBulk(builders ...*SandboxMessageCreate) *SandboxMessageCreateBulk {
	return &SandboxMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SandboxMessageClient) MapCreateBulk(slice any, setFunc func(*SandboxMessageCreate, int)) *SandboxMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SandboxMessageCreateBulk{err: fmt.Errorf("calling to SandboxMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SandboxMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SandboxMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SandboxMessage.
func (c *SandboxMessageClient) Update() *SandboxMessageUpdate {
	mutation := newSandboxMessageMutation(c.config, OpUpdate)
	return &SandboxMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SandboxMessageClient) UpdateOne(_m *SandboxMessage) *SandboxMessageUpdateOne {
	mutation := newSandboxMessageMutation(c.config, OpUpdateOne, withSandboxMessage(_m))
	return &SandboxMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SandboxMessageClient) UpdateOneID(id int64) *SandboxMessageUpdateOne {
	mutation := newSandboxMessageMutation(c.config, OpUpdateOne, withSandboxMessageID(id))
	return &SandboxMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SandboxMessage.
func (c *SandboxMessageClient) Delete() *SandboxMessageDelete {
	mutation := newSandboxMessageMutation(c.config, OpDelete)
	return &SandboxMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SandboxMessageClient) DeleteOne(_m *SandboxMessage) *SandboxMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SandboxMessageClient) DeleteOneID(id int64) *SandboxMessageDeleteOne {
	builder := c.Delete().Where(sandboxmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SandboxMessageDeleteOne{builder}
}

// Query returns a query builder for SandboxMessage.
func (c *SandboxMessageClient) Query() *SandboxMessageQuery {
	return &SandboxMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSandboxMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a SandboxMessage entity by its id.
func (c *SandboxMessageClient) Get(ctx context.Context, id int64) (*SandboxMessage, error) {
	return c.Query().Where(sandboxmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SandboxMessageClient) GetX(ctx context.Context, id int64) *SandboxMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SandboxMessageClient) Hooks() []Hook {
	return c.hooks.SandboxMessage
}

// Interceptors returns the client interceptors.
func (c *SandboxMessageClient) Interceptors() []Interceptor {
	return c.inters.SandboxMessage
}

func (c *SandboxMessageClient) mutate(ctx context.Context, m *SandboxMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SandboxMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SandboxMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SandboxMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SandboxMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SandboxMessage mutation op: %q", m.Op())
	}
}

// SpecDocClient is a client for the SpecDoc schema.
type SpecDocClient struct {
	config
}

// NewSpecDocClient returns a client for the SpecDoc from the given config.
func NewSpecDocClient(c config) *SpecDocClient {
	return &SpecDocClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `specdoc.Hooks(f(g(h())))`.
func (c *SpecDocClient) Use(hooks ...Hook) {
	c.hooks.SpecDoc = append(c.hooks.SpecDoc, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `specdoc.Intercept(f(g(h())))`.
func (c *SpecDocClient) Intercept(interceptors ...Interceptor) {
	c.inters.SpecDoc = append(c.inters.SpecDoc, interceptors...)
}

// Create returns a builder for creating a SpecDoc entity.
func (c *SpecDocClient) Create() *SpecDocCreate {
	mutation := newSpecDocMutation(c.config, OpCreate)
	return &SpecDocCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SpecDoc entities.
func (c *SpecDocClient) CreateBulk(builders ...*SpecDocCreate) *SpecDocCreateBulk {
	return &SpecDocCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SpecDocClient) MapCreateBulk(slice any, setFunc func(*SpecDocCreate, int)) *SpecDocCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SpecDocCreateBulk{err: fmt.Errorf("calling to SpecDocClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SpecDocCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SpecDocCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SpecDoc.
func (c *SpecDocClient) Update() *SpecDocUpdate {
	mutation := newSpecDocMutation(c.config, OpUpdate)
	return &SpecDocUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SpecDocClient) UpdateOne(_m *SpecDoc) *SpecDocUpdateOne {
	mutation := newSpecDocMutation(c.config, OpUpdateOne, withSpecDoc(_m))
	return &SpecDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SpecDocClient) UpdateOneID(id string) *SpecDocUpdateOne {
	mutation := newSpecDocMutation(c.config, OpUpdateOne, withSpecDocID(id))
	return &SpecDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SpecDoc.
func (c *SpecDocClient) Delete() *SpecDocDelete {
	mutation := newSpecDocMutation(c.config, OpDelete)
	return &SpecDocDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SpecDocClient) DeleteOne(_m *SpecDoc) *SpecDocDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SpecDocClient) DeleteOneID(id string) *SpecDocDeleteOne {
	builder := c.Delete().Where(specdoc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SpecDocDeleteOne{builder}
}

// Query returns a query builder for SpecDoc.
func (c *SpecDocClient) Query() *SpecDocQuery {
	return &SpecDocQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSpecDoc},
		inters: c.Interceptors(),
	}
}

// Get returns a SpecDoc entity by its id.
func (c *SpecDocClient) Get(ctx context.Context, id string) (*SpecDoc, error) {
	return c.Query().Where(specdoc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SpecDocClient) GetX(ctx context.Context, id string) *SpecDoc {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SpecDocClient) Hooks() []Hook {
	return c.hooks.SpecDoc
}

// Interceptors returns the client interceptors.
func (c *SpecDocClient) Interceptors() []Interceptor {
	return c.inters.SpecDoc
}

func (c *SpecDocClient) mutate(ctx context.Context, m *SpecDocMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SpecDocCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SpecDocUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SpecDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SpecDocDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SpecDoc mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTicket queries the ticket edge of a Task.
func (c *TaskClient) QueryTicket(_m *Task) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.TicketTable, task.TicketColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCostRecords queries the cost_records edge of a Task.
func (c *TaskClient) QueryCostRecords(_m *Task) *CostRecordQuery {
	query := (&CostRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(costrecord.Table, costrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.CostRecordsTable, task.CostRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TicketClient is a client for the Ticket schema.
type TicketClient struct {
	config
}

// NewTicketClient returns a client for the Ticket from the given config.
func NewTicketClient(c config) *TicketClient {
	return &TicketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticket.Hooks(f(g(h())))`.
func (c *TicketClient) Use(hooks ...Hook) {
	c.hooks.Ticket = append(c.hooks.Ticket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticket.Intercept(f(g(h())))`.
func (c *TicketClient) Intercept(interceptors ...Interceptor) {
	c.inters.Ticket = append(c.inters.Ticket, interceptors...)
}

// Create returns a builder for creating a Ticket entity.
func (c *TicketClient) Create() *TicketCreate {
	mutation := newTicketMutation(c.config, OpCreate)
	return &TicketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Ticket entities.
func (c *TicketClient) CreateBulk(builders ...*TicketCreate) *TicketCreateBulk {
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketClient) MapCreateBulk(slice any, setFunc func(*TicketCreate, int)) *TicketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketCreateBulk{err: fmt.Errorf("calling to TicketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Ticket.
func (c *TicketClient) Update() *TicketUpdate {
	mutation := newTicketMutation(c.config, OpUpdate)
	return &TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketClient) UpdateOne(_m *Ticket) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicket(_m))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketClient) UpdateOneID(id string) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicketID(id))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Ticket.
func (c *TicketClient) Delete() *TicketDelete {
	mutation := newTicketMutation(c.config, OpDelete)
	return &TicketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketClient) DeleteOne(_m *Ticket) *TicketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketClient) DeleteOneID(id string) *TicketDeleteOne {
	builder := c.Delete().Where(ticket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketDeleteOne{builder}
}

// Query returns a query builder for Ticket.
func (c *TicketClient) Query() *TicketQuery {
	return &TicketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicket},
		inters: c.Interceptors(),
	}
}

// Get returns a Ticket entity by its id.
func (c *TicketClient) Get(ctx context.Context, id string) (*Ticket, error) {
	return c.Query().Where(ticket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketClient) GetX(ctx context.Context, id string) *Ticket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a Ticket.
func (c *TicketClient) QueryTasks(_m *Ticket) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ticket.TasksTable, ticket.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TicketClient) Hooks() []Hook {
	return c.hooks.Ticket
}

// Interceptors returns the client interceptors.
func (c *TicketClient) Interceptors() []Interceptor {
	return c.inters.Ticket
}

func (c *TicketClient) mutate(ctx context.Context, m *TicketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Ticket mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AgentBaseline, Budget, CostRecord, GuardianAction, MergeAttempt,
		SandboxAllocation, SandboxEvent, SandboxMessage, SpecDoc, Task,
		Ticket []ent.Hook
	}
	inters struct {
		Agent, AgentBaseline, Budget, CostRecord, GuardianAction, MergeAttempt,
		SandboxAllocation, SandboxEvent, SandboxMessage, SpecDoc, Task,
		Ticket []ent.Interceptor
	}
)
