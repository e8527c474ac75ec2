// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/yourmoment/yourmoment/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/yourmoment/yourmoment/ent/llmproviderconfig"
	"github.com/yourmoment/yourmoment/ent/process"
	"github.com/yourmoment/yourmoment/ent/prompttemplate"
	"github.com/yourmoment/yourmoment/ent/upstreamlogin"
	"github.com/yourmoment/yourmoment/ent/workitem"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMProviderConfig is the client for interacting with the LLMProviderConfig builders.
	LLMProviderConfig *LLMProviderConfigClient
	// Process is the client for interacting with the Process builders.
	Process *ProcessClient
	// PromptTemplate is the client for interacting with the PromptTemplate builders.
	PromptTemplate *PromptTemplateClient
	// UpstreamLogin is the client for interacting with the UpstreamLogin builders.
	UpstreamLogin *UpstreamLoginClient
	// WorkItem is the client for interacting with the WorkItem builders.
	WorkItem *WorkItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMProviderConfig = NewLLMProviderConfigClient(c.config)
	c.Process = NewProcessClient(c.config)
	c.PromptTemplate = NewPromptTemplateClient(c.config)
	c.UpstreamLogin = NewUpstreamLoginClient(c.config)
	c.WorkItem = NewWorkItemClient(c.config)
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
		LLMProviderConfig: NewLLMProviderConfigClient(cfg),
		Process:           NewProcessClient(cfg),
		PromptTemplate:    NewPromptTemplateClient(cfg),
		UpstreamLogin:     NewUpstreamLoginClient(cfg),
		WorkItem:          NewWorkItemClient(cfg),
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
		LLMProviderConfig: NewLLMProviderConfigClient(cfg),
		Process:           NewProcessClient(cfg),
		PromptTemplate:    NewPromptTemplateClient(cfg),
		UpstreamLogin:     NewUpstreamLoginClient(cfg),
		WorkItem:          NewWorkItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMProviderConfig.
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
	c.LLMProviderConfig.Use(hooks...)
	c.Process.Use(hooks...)
	c.PromptTemplate.Use(hooks...)
	c.UpstreamLogin.Use(hooks...)
	c.WorkItem.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LLMProviderConfig.Intercept(interceptors...)
	c.Process.Intercept(interceptors...)
	c.PromptTemplate.Intercept(interceptors...)
	c.UpstreamLogin.Intercept(interceptors...)
	c.WorkItem.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMProviderConfigMutation:
		return c.LLMProviderConfig.mutate(ctx, m)
	case *ProcessMutation:
		return c.Process.mutate(ctx, m)
	case *PromptTemplateMutation:
		return c.PromptTemplate.mutate(ctx, m)
	case *UpstreamLoginMutation:
		return c.UpstreamLogin.mutate(ctx, m)
	case *WorkItemMutation:
		return c.WorkItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMProviderConfigClient is a client for the LLMProviderConfig schema.
type LLMProviderConfigClient struct {
	config
}

// NewLLMProviderConfigClient returns a client for the LLMProviderConfig from the given config.
func NewLLMProviderConfigClient(c config) *LLMProviderConfigClient {
	return &LLMProviderConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmproviderconfig.Hooks(f(g(h())))`.
func (c *LLMProviderConfigClient) Use(hooks ...Hook) {
	c.hooks.LLMProviderConfig = append(c.hooks.LLMProviderConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmproviderconfig.Intercept(f(g(h())))`.
func (c *LLMProviderConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMProviderConfig = append(c.inters.LLMProviderConfig, interceptors...)
}

// Create returns a builder for creating a LLMProviderConfig entity.
func (c *LLMProviderConfigClient) Create() *LLMProviderConfigCreate {
	mutation := newLLMProviderConfigMutation(c.config, OpCreate)
	return &LLMProviderConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMProviderConfig entities.
func (c *LLMProviderConfigClient) CreateBulk(builders ...*LLMProviderConfigCreate) *LLMProviderConfigCreateBulk {
	return &LLMProviderConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMProviderConfigClient) MapCreateBulk(slice any, setFunc func(*LLMProviderConfigCreate, int)) *LLMProviderConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMProviderConfigCreateBulk{err: fmt.Errorf("calling to LLMProviderConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMProviderConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMProviderConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMProviderConfig.
func (c *LLMProviderConfigClient) Update() *LLMProviderConfigUpdate {
	mutation := newLLMProviderConfigMutation(c.config, OpUpdate)
	return &LLMProviderConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMProviderConfigClient) UpdateOne(_m *LLMProviderConfig) *LLMProviderConfigUpdateOne {
	mutation := newLLMProviderConfigMutation(c.config, OpUpdateOne, withLLMProviderConfig(_m))
	return &LLMProviderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMProviderConfigClient) UpdateOneID(id string) *LLMProviderConfigUpdateOne {
	mutation := newLLMProviderConfigMutation(c.config, OpUpdateOne, withLLMProviderConfigID(id))
	return &LLMProviderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMProviderConfig.
func (c *LLMProviderConfigClient) Delete() *LLMProviderConfigDelete {
	mutation := newLLMProviderConfigMutation(c.config, OpDelete)
	return &LLMProviderConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMProviderConfigClient) DeleteOne(_m *LLMProviderConfig) *LLMProviderConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMProviderConfigClient) DeleteOneID(id string) *LLMProviderConfigDeleteOne {
	builder := c.Delete().Where(llmproviderconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMProviderConfigDeleteOne{builder}
}

// Query returns a query builder for LLMProviderConfig.
func (c *LLMProviderConfigClient) Query() *LLMProviderConfigQuery {
	return &LLMProviderConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMProviderConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMProviderConfig entity by its id.
func (c *LLMProviderConfigClient) Get(ctx context.Context, id string) (*LLMProviderConfig, error) {
	return c.Query().Where(llmproviderconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMProviderConfigClient) GetX(ctx context.Context, id string) *LLMProviderConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMProviderConfigClient) Hooks() []Hook {
	return c.hooks.LLMProviderConfig
}

// Interceptors returns the client interceptors.
func (c *LLMProviderConfigClient) Interceptors() []Interceptor {
	return c.inters.LLMProviderConfig
}

func (c *LLMProviderConfigClient) mutate(ctx context.Context, m *LLMProviderConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMProviderConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMProviderConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMProviderConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMProviderConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMProviderConfig mutation op: %q", m.Op())
	}
}

// ProcessClient is a client for the Process schema.
type ProcessClient struct {
	config
}

// NewProcessClient returns a client for the Process from the given config.
func NewProcessClient(c config) *ProcessClient {
	return &ProcessClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `process.Hooks(f(g(h())))`.
func (c *ProcessClient) Use(hooks ...Hook) {
	c.hooks.Process = append(c.hooks.Process, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `process.Intercept(f(g(h())))`.
func (c *ProcessClient) Intercept(interceptors ...Interceptor) {
	c.inters.Process = append(c.inters.Process, interceptors...)
}

// Create returns a builder for creating a Process entity.
func (c *ProcessClient) Create() *ProcessCreate {
	mutation := newProcessMutation(c.config, OpCreate)
	return &ProcessCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Process entities.
func (c *ProcessClient) CreateBulk(builders ...*ProcessCreate) *ProcessCreateBulk {
	return &ProcessCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessClient) MapCreateBulk(slice any, setFunc func(*ProcessCreate, int)) *ProcessCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessCreateBulk{err: fmt.Errorf("calling to ProcessClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Process.
func (c *ProcessClient) Update() *ProcessUpdate {
	mutation := newProcessMutation(c.config, OpUpdate)
	return &ProcessUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessClient) UpdateOne(_m *Process) *ProcessUpdateOne {
	mutation := newProcessMutation(c.config, OpUpdateOne, withProcess(_m))
	return &ProcessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessClient) UpdateOneID(id string) *ProcessUpdateOne {
	mutation := newProcessMutation(c.config, OpUpdateOne, withProcessID(id))
	return &ProcessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Process.
func (c *ProcessClient) Delete() *ProcessDelete {
	mutation := newProcessMutation(c.config, OpDelete)
	return &ProcessDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessClient) DeleteOne(_m *Process) *ProcessDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessClient) DeleteOneID(id string) *ProcessDeleteOne {
	builder := c.Delete().Where(process.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessDeleteOne{builder}
}

// Query returns a query builder for Process.
func (c *ProcessClient) Query() *ProcessQuery {
	return &ProcessQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcess},
		inters: c.Interceptors(),
	}
}

// Get returns a Process entity by its id.
func (c *ProcessClient) Get(ctx context.Context, id string) (*Process, error) {
	return c.Query().Where(process.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessClient) GetX(ctx context.Context, id string) *Process {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkItems queries the work_items edge of a Process.
func (c *ProcessClient) QueryWorkItems(_m *Process) *WorkItemQuery {
	query := (&WorkItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(process.Table, process.FieldID, id),
			sqlgraph.To(workitem.Table, workitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, process.WorkItemsTable, process.WorkItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmConfig queries the llm_config edge of a Process.
func (c *ProcessClient) QueryLlmConfig(_m *Process) *LLMProviderConfigQuery {
	query := (&LLMProviderConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(process.Table, process.FieldID, id),
			sqlgraph.To(llmproviderconfig.Table, llmproviderconfig.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, process.LlmConfigTable, process.LlmConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogins queries the logins edge of a Process.
func (c *ProcessClient) QueryLogins(_m *Process) *UpstreamLoginQuery {
	query := (&UpstreamLoginClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(process.Table, process.FieldID, id),
			sqlgraph.To(upstreamlogin.Table, upstreamlogin.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, process.LoginsTable, process.LoginsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPromptTemplates queries the prompt_templates edge of a Process.
func (c *ProcessClient) QueryPromptTemplates(_m *Process) *PromptTemplateQuery {
	query := (&PromptTemplateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(process.Table, process.FieldID, id),
			sqlgraph.To(prompttemplate.Table, prompttemplate.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, process.PromptTemplatesTable, process.PromptTemplatesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessClient) Hooks() []Hook {
	return c.hooks.Process
}

// Interceptors returns the client interceptors.
func (c *ProcessClient) Interceptors() []Interceptor {
	return c.inters.Process
}

func (c *ProcessClient) mutate(ctx context.Context, m *ProcessMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Process mutation op: %q", m.Op())
	}
}

// PromptTemplateClient is a client for the PromptTemplate schema.
type PromptTemplateClient struct {
	config
}

// NewPromptTemplateClient returns a client for the PromptTemplate from the given config.
func NewPromptTemplateClient(c config) *PromptTemplateClient {
	return &PromptTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompttemplate.Hooks(f(g(h())))`.
func (c *PromptTemplateClient) Use(hooks ...Hook) {
	c.hooks.PromptTemplate = append(c.hooks.PromptTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompttemplate.Intercept(f(g(h())))`.
func (c *PromptTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromptTemplate = append(c.inters.PromptTemplate, interceptors...)
}

// Create returns a builder for creating a PromptTemplate entity.
func (c *PromptTemplateClient) Create() *PromptTemplateCreate {
	mutation := newPromptTemplateMutation(c.config, OpCreate)
	return &PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromptTemplate entities.
func (c *PromptTemplateClient) CreateBulk(builders ...*PromptTemplateCreate) *PromptTemplateCreateBulk {
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptTemplateClient) MapCreateBulk(slice any, setFunc func(*PromptTemplateCreate, int)) *PromptTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptTemplateCreateBulk{err: fmt.Errorf("calling to PromptTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromptTemplate.
func (c *PromptTemplateClient) Update() *PromptTemplateUpdate {
	mutation := newPromptTemplateMutation(c.config, OpUpdate)
	return &PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptTemplateClient) UpdateOne(_m *PromptTemplate) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplate(_m))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptTemplateClient) UpdateOneID(id string) *PromptTemplateUpdateOne {
	mutation := newPromptTemplateMutation(c.config, OpUpdateOne, withPromptTemplateID(id))
	return &PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromptTemplate.
func (c *PromptTemplateClient) Delete() *PromptTemplateDelete {
	mutation := newPromptTemplateMutation(c.config, OpDelete)
	return &PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptTemplateClient) DeleteOne(_m *PromptTemplate) *PromptTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptTemplateClient) DeleteOneID(id string) *PromptTemplateDeleteOne {
	builder := c.Delete().Where(prompttemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptTemplateDeleteOne{builder}
}

// Query returns a query builder for PromptTemplate.
func (c *PromptTemplateClient) Query() *PromptTemplateQuery {
	return &PromptTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromptTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a PromptTemplate entity by its id.
func (c *PromptTemplateClient) Get(ctx context.Context, id string) (*PromptTemplate, error) {
	return c.Query().Where(prompttemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptTemplateClient) GetX(ctx context.Context, id string) *PromptTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProcesses queries the processes edge of a PromptTemplate.
func (c *PromptTemplateClient) QueryProcesses(_m *PromptTemplate) *ProcessQuery {
	query := (&ProcessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(prompttemplate.Table, prompttemplate.FieldID, id),
			sqlgraph.To(process.Table, process.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, prompttemplate.ProcessesTable, prompttemplate.ProcessesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromptTemplateClient) Hooks() []Hook {
	return c.hooks.PromptTemplate
}

// Interceptors returns the client interceptors.
func (c *PromptTemplateClient) Interceptors() []Interceptor {
	return c.inters.PromptTemplate
}

func (c *PromptTemplateClient) mutate(ctx context.Context, m *PromptTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromptTemplate mutation op: %q", m.Op())
	}
}

// UpstreamLoginClient is a client for the UpstreamLogin schema.
type UpstreamLoginClient struct {
	config
}

// NewUpstreamLoginClient returns a client for the UpstreamLogin from the given config.
func NewUpstreamLoginClient(c config) *UpstreamLoginClient {
	return &UpstreamLoginClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `upstreamlogin.Hooks(f(g(h())))`.
func (c *UpstreamLoginClient) Use(hooks ...Hook) {
	c.hooks.UpstreamLogin = append(c.hooks.UpstreamLogin, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `upstreamlogin.Intercept(f(g(h())))`.
func (c *UpstreamLoginClient) Intercept(interceptors ...Interceptor) {
	c.inters.UpstreamLogin = append(c.inters.UpstreamLogin, interceptors...)
}

// Create returns a builder for creating a UpstreamLogin entity.
func (c *UpstreamLoginClient) Create() *UpstreamLoginCreate {
	mutation := newUpstreamLoginMutation(c.config, OpCreate)
	return &UpstreamLoginCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UpstreamLogin entities.
func (c *UpstreamLoginClient) CreateBulk(builders ...*UpstreamLoginCreate) *UpstreamLoginCreateBulk {
	return &UpstreamLoginCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UpstreamLoginClient) MapCreateBulk(slice any, setFunc func(*UpstreamLoginCreate, int)) *UpstreamLoginCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UpstreamLoginCreateBulk{err: fmt.Errorf("calling to UpstreamLoginClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UpstreamLoginCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UpstreamLoginCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UpstreamLogin.
func (c *UpstreamLoginClient) Update() *UpstreamLoginUpdate {
	mutation := newUpstreamLoginMutation(c.config, OpUpdate)
	return &UpstreamLoginUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UpstreamLoginClient) UpdateOne(_m *UpstreamLogin) *UpstreamLoginUpdateOne {
	mutation := newUpstreamLoginMutation(c.config, OpUpdateOne, withUpstreamLogin(_m))
	return &UpstreamLoginUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UpstreamLoginClient) UpdateOneID(id string) *UpstreamLoginUpdateOne {
	mutation := newUpstreamLoginMutation(c.config, OpUpdateOne, withUpstreamLoginID(id))
	return &UpstreamLoginUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UpstreamLogin.
func (c *UpstreamLoginClient) Delete() *UpstreamLoginDelete {
	mutation := newUpstreamLoginMutation(c.config, OpDelete)
	return &UpstreamLoginDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UpstreamLoginClient) DeleteOne(_m *UpstreamLogin) *UpstreamLoginDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UpstreamLoginClient) DeleteOneID(id string) *UpstreamLoginDeleteOne {
	builder := c.Delete().Where(upstreamlogin.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UpstreamLoginDeleteOne{builder}
}

// Query returns a query builder for UpstreamLogin.
func (c *UpstreamLoginClient) Query() *UpstreamLoginQuery {
	return &UpstreamLoginQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUpstreamLogin},
		inters: c.Interceptors(),
	}
}

// Get returns a UpstreamLogin entity by its id.
func (c *UpstreamLoginClient) Get(ctx context.Context, id string) (*UpstreamLogin, error) {
	return c.Query().Where(upstreamlogin.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UpstreamLoginClient) GetX(ctx context.Context, id string) *UpstreamLogin {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkItems queries the work_items edge of a UpstreamLogin.
func (c *UpstreamLoginClient) QueryWorkItems(_m *UpstreamLogin) *WorkItemQuery {
	query := (&WorkItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamlogin.Table, upstreamlogin.FieldID, id),
			sqlgraph.To(workitem.Table, workitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upstreamlogin.WorkItemsTable, upstreamlogin.WorkItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProcesses queries the processes edge of a UpstreamLogin.
func (c *UpstreamLoginClient) QueryProcesses(_m *UpstreamLogin) *ProcessQuery {
	query := (&ProcessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upstreamlogin.Table, upstreamlogin.FieldID, id),
			sqlgraph.To(process.Table, process.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, upstreamlogin.ProcessesTable, upstreamlogin.ProcessesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UpstreamLoginClient) Hooks() []Hook {
	return c.hooks.UpstreamLogin
}

// Interceptors returns the client interceptors.
func (c *UpstreamLoginClient) Interceptors() []Interceptor {
	return c.inters.UpstreamLogin
}

func (c *UpstreamLoginClient) mutate(ctx context.Context, m *UpstreamLoginMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UpstreamLoginCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UpstreamLoginUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UpstreamLoginUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UpstreamLoginDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UpstreamLogin mutation op: %q", m.Op())
	}
}

// WorkItemClient is a client for the WorkItem schema.
type WorkItemClient struct {
	config
}

// NewWorkItemClient returns a client for the WorkItem from the given config.
func NewWorkItemClient(c config) *WorkItemClient {
	return &WorkItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workitem.Hooks(f(g(h())))`.
func (c *WorkItemClient) Use(hooks ...Hook) {
	c.hooks.WorkItem = append(c.hooks.WorkItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workitem.Intercept(f(g(h())))`.
func (c *WorkItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkItem = append(c.inters.WorkItem, interceptors...)
}

// Create returns a builder for creating a WorkItem entity.
func (c *WorkItemClient) Create() *WorkItemCreate {
	mutation := newWorkItemMutation(c.config, OpCreate)
	return &WorkItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkItem entities.
func (c *WorkItemClient) CreateBulk(builders ...*WorkItemCreate) *WorkItemCreateBulk {
	return &WorkItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkItemClient) MapCreateBulk(slice any, setFunc func(*WorkItemCreate, int)) *WorkItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkItemCreateBulk{err: fmt.Errorf("calling to WorkItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkItem.
func (c *WorkItemClient) Update() *WorkItemUpdate {
	mutation := newWorkItemMutation(c.config, OpUpdate)
	return &WorkItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkItemClient) UpdateOne(_m *WorkItem) *WorkItemUpdateOne {
	mutation := newWorkItemMutation(c.config, OpUpdateOne, withWorkItem(_m))
	return &WorkItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkItemClient) UpdateOneID(id string) *WorkItemUpdateOne {
	mutation := newWorkItemMutation(c.config, OpUpdateOne, withWorkItemID(id))
	return &WorkItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkItem.
func (c *WorkItemClient) Delete() *WorkItemDelete {
	mutation := newWorkItemMutation(c.config, OpDelete)
	return &WorkItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkItemClient) DeleteOne(_m *WorkItem) *WorkItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkItemClient) DeleteOneID(id string) *WorkItemDeleteOne {
	builder := c.Delete().Where(workitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkItemDeleteOne{builder}
}

// Query returns a query builder for WorkItem.
func (c *WorkItemClient) Query() *WorkItemQuery {
	return &WorkItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkItem},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkItem entity by its id.
func (c *WorkItemClient) Get(ctx context.Context, id string) (*WorkItem, error) {
	return c.Query().Where(workitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkItemClient) GetX(ctx context.Context, id string) *WorkItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProcess queries the process edge of a WorkItem.
func (c *WorkItemClient) QueryProcess(_m *WorkItem) *ProcessQuery {
	query := (&ProcessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workitem.Table, workitem.FieldID, id),
			sqlgraph.To(process.Table, process.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workitem.ProcessTable, workitem.ProcessColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLogin queries the login edge of a WorkItem.
func (c *WorkItemClient) QueryLogin(_m *WorkItem) *UpstreamLoginQuery {
	query := (&UpstreamLoginClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workitem.Table, workitem.FieldID, id),
			sqlgraph.To(upstreamlogin.Table, upstreamlogin.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workitem.LoginTable, workitem.LoginColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkItemClient) Hooks() []Hook {
	return c.hooks.WorkItem
}

// Interceptors returns the client interceptors.
func (c *WorkItemClient) Interceptors() []Interceptor {
	return c.inters.WorkItem
}

func (c *WorkItemClient) mutate(ctx context.Context, m *WorkItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMProviderConfig, Process, PromptTemplate, UpstreamLogin, WorkItem []ent.Hook
	}
	inters struct {
		LLMProviderConfig, Process, PromptTemplate, UpstreamLogin,
		WorkItem []ent.Interceptor
	}
)
