// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/fiscaldocument"
	"github.com/evozago/fluxo-e-dre-sub001/gen/ent/installment"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// FiscalDocument is the client for interacting with the FiscalDocument builders.
	FiscalDocument *FiscalDocumentClient
	// Installment is the client for interacting with the Installment builders.
	Installment *InstallmentClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.FiscalDocument = NewFiscalDocumentClient(c.config)
	c.Installment = NewInstallmentClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		FiscalDocument: NewFiscalDocumentClient(cfg),
		Installment:    NewInstallmentClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		FiscalDocument: NewFiscalDocumentClient(cfg),
		Installment:    NewInstallmentClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		FiscalDocument.
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
	c.FiscalDocument.Use(hooks...)
	c.Installment.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.FiscalDocument.Intercept(interceptors...)
	c.Installment.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *FiscalDocumentMutation:
		return c.FiscalDocument.mutate(ctx, m)
	case *InstallmentMutation:
		return c.Installment.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// FiscalDocumentClient is a client for the FiscalDocument schema.
type FiscalDocumentClient struct {
	config
}

// NewFiscalDocumentClient returns a client for the FiscalDocument from the given config.
func NewFiscalDocumentClient(c config) *FiscalDocumentClient {
	return &FiscalDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fiscaldocument.Hooks(f(g(h())))`.
func (c *FiscalDocumentClient) Use(hooks ...Hook) {
	c.hooks.FiscalDocument = append(c.hooks.FiscalDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fiscaldocument.Intercept(f(g(h())))`.
func (c *FiscalDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.FiscalDocument = append(c.inters.FiscalDocument, interceptors...)
}

// Create returns a builder for creating a FiscalDocument entity.
func (c *FiscalDocumentClient) Create() *FiscalDocumentCreate {
	mutation := newFiscalDocumentMutation(c.config, OpCreate)
	return &FiscalDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FiscalDocument entities.
func (c *FiscalDocumentClient) CreateBulk(builders ...*FiscalDocumentCreate) *FiscalDocumentCreateBulk {
	return &FiscalDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FiscalDocumentClient) MapCreateBulk(slice any, setFunc func(*FiscalDocumentCreate, int)) *FiscalDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FiscalDocumentCreateBulk{err: fmt.Errorf("calling to FiscalDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FiscalDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FiscalDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FiscalDocument.
func (c *FiscalDocumentClient) Update() *FiscalDocumentUpdate {
	mutation := newFiscalDocumentMutation(c.config, OpUpdate)
	return &FiscalDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FiscalDocumentClient) UpdateOne(_m *FiscalDocument) *FiscalDocumentUpdateOne {
	mutation := newFiscalDocumentMutation(c.config, OpUpdateOne, withFiscalDocument(_m))
	return &FiscalDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FiscalDocumentClient) UpdateOneID(id uuid.UUID) *FiscalDocumentUpdateOne {
	mutation := newFiscalDocumentMutation(c.config, OpUpdateOne, withFiscalDocumentID(id))
	return &FiscalDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FiscalDocument.
func (c *FiscalDocumentClient) Delete() *FiscalDocumentDelete {
	mutation := newFiscalDocumentMutation(c.config, OpDelete)
	return &FiscalDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FiscalDocumentClient) DeleteOne(_m *FiscalDocument) *FiscalDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FiscalDocumentClient) DeleteOneID(id uuid.UUID) *FiscalDocumentDeleteOne {
	builder := c.Delete().Where(fiscaldocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FiscalDocumentDeleteOne{builder}
}

// Query returns a query builder for FiscalDocument.
func (c *FiscalDocumentClient) Query() *FiscalDocumentQuery {
	return &FiscalDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFiscalDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a FiscalDocument entity by its id.
func (c *FiscalDocumentClient) Get(ctx context.Context, id uuid.UUID) (*FiscalDocument, error) {
	return c.Query().Where(fiscaldocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FiscalDocumentClient) GetX(ctx context.Context, id uuid.UUID) *FiscalDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstallments queries the installments edge of a FiscalDocument.
func (c *FiscalDocumentClient) QueryInstallments(_m *FiscalDocument) *InstallmentQuery {
	query := (&InstallmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fiscaldocument.Table, fiscaldocument.FieldID, id),
			sqlgraph.To(installment.Table, installment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fiscaldocument.InstallmentsTable, fiscaldocument.InstallmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FiscalDocumentClient) Hooks() []Hook {
	return c.hooks.FiscalDocument
}

// Interceptors returns the client interceptors.
func (c *FiscalDocumentClient) Interceptors() []Interceptor {
	return c.inters.FiscalDocument
}

func (c *FiscalDocumentClient) mutate(ctx context.Context, m *FiscalDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FiscalDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FiscalDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FiscalDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FiscalDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FiscalDocument mutation op: %q", m.Op())
	}
}

// InstallmentClient is a client for the Installment schema.
type InstallmentClient struct {
	config
}

// NewInstallmentClient returns a client for the Installment from the given config.
func NewInstallmentClient(c config) *InstallmentClient {
	return &InstallmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `installment.Hooks(f(g(h())))`.
func (c *InstallmentClient) Use(hooks ...Hook) {
	c.hooks.Installment = append(c.hooks.Installment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `installment.Intercept(f(g(h())))`.
func (c *InstallmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Installment = append(c.inters.Installment, interceptors...)
}

// Create returns a builder for creating a Installment entity.
func (c *InstallmentClient) Create() *InstallmentCreate {
	mutation := newInstallmentMutation(c.config, OpCreate)
	return &InstallmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Installment entities.
func (c *InstallmentClient) CreateBulk(builders ...*InstallmentCreate) *InstallmentCreateBulk {
	return &InstallmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstallmentClient) MapCreateBulk(slice any, setFunc func(*InstallmentCreate, int)) *InstallmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstallmentCreateBulk{err: fmt.Errorf("calling to InstallmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstallmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstallmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Installment.
func (c *InstallmentClient) Update() *InstallmentUpdate {
	mutation := newInstallmentMutation(c.config, OpUpdate)
	return &InstallmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstallmentClient) UpdateOne(_m *Installment) *InstallmentUpdateOne {
	mutation := newInstallmentMutation(c.config, OpUpdateOne, withInstallment(_m))
	return &InstallmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstallmentClient) UpdateOneID(id uuid.UUID) *InstallmentUpdateOne {
	mutation := newInstallmentMutation(c.config, OpUpdateOne, withInstallmentID(id))
	return &InstallmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Installment.
func (c *InstallmentClient) Delete() *InstallmentDelete {
	mutation := newInstallmentMutation(c.config, OpDelete)
	return &InstallmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstallmentClient) DeleteOne(_m *Installment) *InstallmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstallmentClient) DeleteOneID(id uuid.UUID) *InstallmentDeleteOne {
	builder := c.Delete().Where(installment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstallmentDeleteOne{builder}
}

// Query returns a query builder for Installment.
func (c *InstallmentClient) Query() *InstallmentQuery {
	return &InstallmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstallment},
		inters: c.Interceptors(),
	}
}

// Get returns a Installment entity by its id.
func (c *InstallmentClient) Get(ctx context.Context, id uuid.UUID) (*Installment, error) {
	return c.Query().Where(installment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstallmentClient) GetX(ctx context.Context, id uuid.UUID) *Installment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a Installment.
func (c *InstallmentClient) QueryDocument(_m *Installment) *FiscalDocumentQuery {
	query := (&FiscalDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(installment.Table, installment.FieldID, id),
			sqlgraph.To(fiscaldocument.Table, fiscaldocument.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, installment.DocumentTable, installment.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InstallmentClient) Hooks() []Hook {
	return c.hooks.Installment
}

// Interceptors returns the client interceptors.
func (c *InstallmentClient) Interceptors() []Interceptor {
	return c.inters.Installment
}

func (c *InstallmentClient) mutate(ctx context.Context, m *InstallmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstallmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstallmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstallmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstallmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Installment mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		FiscalDocument, Installment []ent.Hook
	}
	inters struct {
		FiscalDocument, Installment []ent.Interceptor
	}
)
