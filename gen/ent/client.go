// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Zoli1212/awsflow/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Zoli1212/awsflow/gen/ent/billing"
	"github.com/Zoli1212/awsflow/gen/ent/history"
	"github.com/Zoli1212/awsflow/gen/ent/offer"
	"github.com/Zoli1212/awsflow/gen/ent/pricelist"
	"github.com/Zoli1212/awsflow/gen/ent/requirement"
	"github.com/Zoli1212/awsflow/gen/ent/tenantpricelist"
	"github.com/Zoli1212/awsflow/gen/ent/user"
	"github.com/Zoli1212/awsflow/gen/ent/work"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Billing is the client for interacting with the Billing builders.
	Billing *BillingClient
	// History is the client for interacting with the History builders.
	History *HistoryClient
	// Offer is the client for interacting with the Offer builders.
	Offer *OfferClient
	// PriceList is the client for interacting with the PriceList builders.
	PriceList *PriceListClient
	// Requirement is the client for interacting with the Requirement builders.
	Requirement *RequirementClient
	// TenantPriceList is the client for interacting with the TenantPriceList builders.
	TenantPriceList *TenantPriceListClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// Work is the client for interacting with the Work builders.
	Work *WorkClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Billing = NewBillingClient(c.config)
	c.History = NewHistoryClient(c.config)
	c.Offer = NewOfferClient(c.config)
	c.PriceList = NewPriceListClient(c.config)
	c.Requirement = NewRequirementClient(c.config)
	c.TenantPriceList = NewTenantPriceListClient(c.config)
	c.User = NewUserClient(c.config)
	c.Work = NewWorkClient(c.config)
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
		Billing:         NewBillingClient(cfg),
		History:         NewHistoryClient(cfg),
		Offer:           NewOfferClient(cfg),
		PriceList:       NewPriceListClient(cfg),
		Requirement:     NewRequirementClient(cfg),
		TenantPriceList: NewTenantPriceListClient(cfg),
		User:            NewUserClient(cfg),
		Work:            NewWorkClient(cfg),
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
		Billing:         NewBillingClient(cfg),
		History:         NewHistoryClient(cfg),
		Offer:           NewOfferClient(cfg),
		PriceList:       NewPriceListClient(cfg),
		Requirement:     NewRequirementClient(cfg),
		TenantPriceList: NewTenantPriceListClient(cfg),
		User:            NewUserClient(cfg),
		Work:            NewWorkClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Billing.
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
		c.Billing, c.History, c.Offer, c.PriceList, c.Requirement, c.TenantPriceList,
		c.User, c.Work,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Billing, c.History, c.Offer, c.PriceList, c.Requirement, c.TenantPriceList,
		c.User, c.Work,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BillingMutation:
		return c.Billing.mutate(ctx, m)
	case *HistoryMutation:
		return c.History.mutate(ctx, m)
	case *OfferMutation:
		return c.Offer.mutate(ctx, m)
	case *PriceListMutation:
		return c.PriceList.mutate(ctx, m)
	case *RequirementMutation:
		return c.Requirement.mutate(ctx, m)
	case *TenantPriceListMutation:
		return c.TenantPriceList.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WorkMutation:
		return c.Work.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BillingClient is a client for the Billing schema.
type BillingClient struct {
	config
}

// NewBillingClient returns a client for the Billing from the given config.
func NewBillingClient(c config) *BillingClient {
	return &BillingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `billing.Hooks(f(g(h())))`.
func (c *BillingClient) Use(hooks ...Hook) {
	c.hooks.Billing = append(c.hooks.Billing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `billing.Intercept(f(g(h())))`.
func (c *BillingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Billing = append(c.inters.Billing, interceptors...)
}

// Create returns a builder for creating a Billing entity.
func (c *BillingClient) Create() *BillingCreate {
	mutation := newBillingMutation(c.config, OpCreate)
	return &BillingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Billing entities.
func (c *BillingClient) CreateBulk(builders ...*BillingCreate) *BillingCreateBulk {
	return &BillingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BillingClient) MapCreateBulk(slice any, setFunc func(*BillingCreate, int)) *BillingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BillingCreateBulk{err: fmt.Errorf("calling to BillingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BillingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BillingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Billing.
func (c *BillingClient) Update() *BillingUpdate {
	mutation := newBillingMutation(c.config, OpUpdate)
	return &BillingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BillingClient) UpdateOne(_m *Billing) *BillingUpdateOne {
	mutation := newBillingMutation(c.config, OpUpdateOne, withBilling(_m))
	return &BillingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BillingClient) UpdateOneID(id uuid.UUID) *BillingUpdateOne {
	mutation := newBillingMutation(c.config, OpUpdateOne, withBillingID(id))
	return &BillingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Billing.
func (c *BillingClient) Delete() *BillingDelete {
	mutation := newBillingMutation(c.config, OpDelete)
	return &BillingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BillingClient) DeleteOne(_m *Billing) *BillingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BillingClient) DeleteOneID(id uuid.UUID) *BillingDeleteOne {
	builder := c.Delete().Where(billing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BillingDeleteOne{builder}
}

// Query returns a query builder for Billing.
func (c *BillingClient) Query() *BillingQuery {
	return &BillingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBilling},
		inters: c.Interceptors(),
	}
}

// Get returns a Billing entity by its id.
func (c *BillingClient) Get(ctx context.Context, id uuid.UUID) (*Billing, error) {
	return c.Query().Where(billing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BillingClient) GetX(ctx context.Context, id uuid.UUID) *Billing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BillingClient) Hooks() []Hook {
	return c.hooks.Billing
}

// Interceptors returns the client interceptors.
func (c *BillingClient) Interceptors() []Interceptor {
	return c.inters.Billing
}

func (c *BillingClient) mutate(ctx context.Context, m *BillingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BillingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BillingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BillingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BillingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Billing mutation op: %q", m.Op())
	}
}

// HistoryClient is a client for the History schema.
type HistoryClient struct {
	config
}

// NewHistoryClient returns a client for the History from the given config.
func NewHistoryClient(c config) *HistoryClient {
	return &HistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `history.Hooks(f(g(h())))`.
func (c *HistoryClient) Use(hooks ...Hook) {
	c.hooks.History = append(c.hooks.History, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `history.Intercept(f(g(h())))`.
func (c *HistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.History = append(c.inters.History, interceptors...)
}

// Create returns a builder for creating a History entity.
func (c *HistoryClient) Create() *HistoryCreate {
	mutation := newHistoryMutation(c.config, OpCreate)
	return &HistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of History entities.
func (c *HistoryClient) CreateBulk(builders ...*HistoryCreate) *HistoryCreateBulk {
	return &HistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HistoryClient) MapCreateBulk(slice any, setFunc func(*HistoryCreate, int)) *HistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HistoryCreateBulk{err: fmt.Errorf("calling to HistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for History.
func (c *HistoryClient) Update() *HistoryUpdate {
	mutation := newHistoryMutation(c.config, OpUpdate)
	return &HistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HistoryClient) UpdateOne(_m *History) *HistoryUpdateOne {
	mutation := newHistoryMutation(c.config, OpUpdateOne, withHistory(_m))
	return &HistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HistoryClient) UpdateOneID(id uuid.UUID) *HistoryUpdateOne {
	mutation := newHistoryMutation(c.config, OpUpdateOne, withHistoryID(id))
	return &HistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for History.
func (c *HistoryClient) Delete() *HistoryDelete {
	mutation := newHistoryMutation(c.config, OpDelete)
	return &HistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HistoryClient) DeleteOne(_m *History) *HistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HistoryClient) DeleteOneID(id uuid.UUID) *HistoryDeleteOne {
	builder := c.Delete().Where(history.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HistoryDeleteOne{builder}
}

// Query returns a query builder for History.
func (c *HistoryClient) Query() *HistoryQuery {
	return &HistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a History entity by its id.
func (c *HistoryClient) Get(ctx context.Context, id uuid.UUID) (*History, error) {
	return c.Query().Where(history.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HistoryClient) GetX(ctx context.Context, id uuid.UUID) *History {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HistoryClient) Hooks() []Hook {
	return c.hooks.History
}

// Interceptors returns the client interceptors.
func (c *HistoryClient) Interceptors() []Interceptor {
	return c.inters.History
}

func (c *HistoryClient) mutate(ctx context.Context, m *HistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown History mutation op: %q", m.Op())
	}
}

// OfferClient is a client for the Offer schema.
type OfferClient struct {
	config
}

// NewOfferClient returns a client for the Offer from the given config.
func NewOfferClient(c config) *OfferClient {
	return &OfferClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `offer.Hooks(f(g(h())))`.
func (c *OfferClient) Use(hooks ...Hook) {
	c.hooks.Offer = append(c.hooks.Offer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `offer.Intercept(f(g(h())))`.
func (c *OfferClient) Intercept(interceptors ...Interceptor) {
	c.inters.Offer = append(c.inters.Offer, interceptors...)
}

// Create returns a builder for creating a Offer entity.
func (c *OfferClient) Create() *OfferCreate {
	mutation := newOfferMutation(c.config, OpCreate)
	return &OfferCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Offer entities.
func (c *OfferClient) CreateBulk(builders ...*OfferCreate) *OfferCreateBulk {
	return &OfferCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OfferClient) MapCreateBulk(slice any, setFunc func(*OfferCreate, int)) *OfferCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OfferCreateBulk{err: fmt.Errorf("calling to OfferClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OfferCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OfferCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Offer.
func (c *OfferClient) Update() *OfferUpdate {
	mutation := newOfferMutation(c.config, OpUpdate)
	return &OfferUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OfferClient) UpdateOne(_m *Offer) *OfferUpdateOne {
	mutation := newOfferMutation(c.config, OpUpdateOne, withOffer(_m))
	return &OfferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OfferClient) UpdateOneID(id uuid.UUID) *OfferUpdateOne {
	mutation := newOfferMutation(c.config, OpUpdateOne, withOfferID(id))
	return &OfferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Offer.
func (c *OfferClient) Delete() *OfferDelete {
	mutation := newOfferMutation(c.config, OpDelete)
	return &OfferDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OfferClient) DeleteOne(_m *Offer) *OfferDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OfferClient) DeleteOneID(id uuid.UUID) *OfferDeleteOne {
	builder := c.Delete().Where(offer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OfferDeleteOne{builder}
}

// Query returns a query builder for Offer.
func (c *OfferClient) Query() *OfferQuery {
	return &OfferQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOffer},
		inters: c.Interceptors(),
	}
}

// Get returns a Offer entity by its id.
func (c *OfferClient) Get(ctx context.Context, id uuid.UUID) (*Offer, error) {
	return c.Query().Where(offer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OfferClient) GetX(ctx context.Context, id uuid.UUID) *Offer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequirement queries the requirement edge of a Offer.
func (c *OfferClient) QueryRequirement(_m *Offer) *RequirementQuery {
	query := (&RequirementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(offer.Table, offer.FieldID, id),
			sqlgraph.To(requirement.Table, requirement.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, offer.RequirementTable, offer.RequirementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OfferClient) Hooks() []Hook {
	return c.hooks.Offer
}

// Interceptors returns the client interceptors.
func (c *OfferClient) Interceptors() []Interceptor {
	return c.inters.Offer
}

func (c *OfferClient) mutate(ctx context.Context, m *OfferMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OfferCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OfferUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OfferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OfferDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Offer mutation op: %q", m.Op())
	}
}

// PriceListClient is a client for the PriceList schema.
type PriceListClient struct {
	config
}

// NewPriceListClient returns a client for the PriceList from the given config.
func NewPriceListClient(c config) *PriceListClient {
	return &PriceListClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pricelist.Hooks(f(g(h())))`.
func (c *PriceListClient) Use(hooks ...Hook) {
	c.hooks.PriceList = append(c.hooks.PriceList, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pricelist.Intercept(f(g(h())))`.
func (c *PriceListClient) Intercept(interceptors ...Interceptor) {
	c.inters.PriceList = append(c.inters.PriceList, interceptors...)
}

// Create returns a builder for creating a PriceList entity.
func (c *PriceListClient) Create() *PriceListCreate {
	mutation := newPriceListMutation(c.config, OpCreate)
	return &PriceListCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PriceList entities.
func (c *PriceListClient) CreateBulk(builders ...*PriceListCreate) *PriceListCreateBulk {
	return &PriceListCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PriceListClient) MapCreateBulk(slice any, setFunc func(*PriceListCreate, int)) *PriceListCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PriceListCreateBulk{err: fmt.Errorf("calling to PriceListClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PriceListCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PriceListCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PriceList.
func (c *PriceListClient) Update() *PriceListUpdate {
	mutation := newPriceListMutation(c.config, OpUpdate)
	return &PriceListUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PriceListClient) UpdateOne(_m *PriceList) *PriceListUpdateOne {
	mutation := newPriceListMutation(c.config, OpUpdateOne, withPriceList(_m))
	return &PriceListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PriceListClient) UpdateOneID(id uuid.UUID) *PriceListUpdateOne {
	mutation := newPriceListMutation(c.config, OpUpdateOne, withPriceListID(id))
	return &PriceListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PriceList.
func (c *PriceListClient) Delete() *PriceListDelete {
	mutation := newPriceListMutation(c.config, OpDelete)
	return &PriceListDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PriceListClient) DeleteOne(_m *PriceList) *PriceListDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PriceListClient) DeleteOneID(id uuid.UUID) *PriceListDeleteOne {
	builder := c.Delete().Where(pricelist.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PriceListDeleteOne{builder}
}

// Query returns a query builder for PriceList.
func (c *PriceListClient) Query() *PriceListQuery {
	return &PriceListQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePriceList},
		inters: c.Interceptors(),
	}
}

// Get returns a PriceList entity by its id.
func (c *PriceListClient) Get(ctx context.Context, id uuid.UUID) (*PriceList, error) {
	return c.Query().Where(pricelist.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PriceListClient) GetX(ctx context.Context, id uuid.UUID) *PriceList {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PriceListClient) Hooks() []Hook {
	return c.hooks.PriceList
}

// Interceptors returns the client interceptors.
func (c *PriceListClient) Interceptors() []Interceptor {
	return c.inters.PriceList
}

func (c *PriceListClient) mutate(ctx context.Context, m *PriceListMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PriceListCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PriceListUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PriceListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PriceListDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PriceList mutation op: %q", m.Op())
	}
}

// RequirementClient is a client for the Requirement schema.
type RequirementClient struct {
	config
}

// NewRequirementClient returns a client for the Requirement from the given config.
func NewRequirementClient(c config) *RequirementClient {
	return &RequirementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `requirement.Hooks(f(g(h())))`.
func (c *RequirementClient) Use(hooks ...Hook) {
	c.hooks.Requirement = append(c.hooks.Requirement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `requirement.Intercept(f(g(h())))`.
func (c *RequirementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Requirement = append(c.inters.Requirement, interceptors...)
}

// Create returns a builder for creating a Requirement entity.
func (c *RequirementClient) Create() *RequirementCreate {
	mutation := newRequirementMutation(c.config, OpCreate)
	return &RequirementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Requirement entities.
func (c *RequirementClient) CreateBulk(builders ...*RequirementCreate) *RequirementCreateBulk {
	return &RequirementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequirementClient) MapCreateBulk(slice any, setFunc func(*RequirementCreate, int)) *RequirementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequirementCreateBulk{err: fmt.Errorf("calling to RequirementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequirementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequirementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Requirement.
func (c *RequirementClient) Update() *RequirementUpdate {
	mutation := newRequirementMutation(c.config, OpUpdate)
	return &RequirementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequirementClient) UpdateOne(_m *Requirement) *RequirementUpdateOne {
	mutation := newRequirementMutation(c.config, OpUpdateOne, withRequirement(_m))
	return &RequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequirementClient) UpdateOneID(id uuid.UUID) *RequirementUpdateOne {
	mutation := newRequirementMutation(c.config, OpUpdateOne, withRequirementID(id))
	return &RequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Requirement.
func (c *RequirementClient) Delete() *RequirementDelete {
	mutation := newRequirementMutation(c.config, OpDelete)
	return &RequirementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequirementClient) DeleteOne(_m *Requirement) *RequirementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequirementClient) DeleteOneID(id uuid.UUID) *RequirementDeleteOne {
	builder := c.Delete().Where(requirement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequirementDeleteOne{builder}
}

// Query returns a query builder for Requirement.
func (c *RequirementClient) Query() *RequirementQuery {
	return &RequirementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequirement},
		inters: c.Interceptors(),
	}
}

// Get returns a Requirement entity by its id.
func (c *RequirementClient) Get(ctx context.Context, id uuid.UUID) (*Requirement, error) {
	return c.Query().Where(requirement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequirementClient) GetX(ctx context.Context, id uuid.UUID) *Requirement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWork queries the work edge of a Requirement.
func (c *RequirementClient) QueryWork(_m *Requirement) *WorkQuery {
	query := (&WorkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(requirement.Table, requirement.FieldID, id),
			sqlgraph.To(work.Table, work.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, requirement.WorkTable, requirement.WorkColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOffers queries the offers edge of a Requirement.
func (c *RequirementClient) QueryOffers(_m *Requirement) *OfferQuery {
	query := (&OfferClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(requirement.Table, requirement.FieldID, id),
			sqlgraph.To(offer.Table, offer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, requirement.OffersTable, requirement.OffersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RequirementClient) Hooks() []Hook {
	return c.hooks.Requirement
}

// Interceptors returns the client interceptors.
func (c *RequirementClient) Interceptors() []Interceptor {
	return c.inters.Requirement
}

func (c *RequirementClient) mutate(ctx context.Context, m *RequirementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequirementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequirementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequirementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Requirement mutation op: %q", m.Op())
	}
}

// TenantPriceListClient is a client for the TenantPriceList schema.
type TenantPriceListClient struct {
	config
}

// NewTenantPriceListClient returns a client for the TenantPriceList from the given config.
func NewTenantPriceListClient(c config) *TenantPriceListClient {
	return &TenantPriceListClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenantpricelist.Hooks(f(g(h())))`.
func (c *TenantPriceListClient) Use(hooks ...Hook) {
	c.hooks.TenantPriceList = append(c.hooks.TenantPriceList, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenantpricelist.Intercept(f(g(h())))`.
func (c *TenantPriceListClient) Intercept(interceptors ...Interceptor) {
	c.inters.TenantPriceList = append(c.inters.TenantPriceList, interceptors...)
}

// Create returns a builder for creating a TenantPriceList entity.
func (c *TenantPriceListClient) Create() *TenantPriceListCreate {
	mutation := newTenantPriceListMutation(c.config, OpCreate)
	return &TenantPriceListCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TenantPriceList entities.
func (c *TenantPriceListClient) CreateBulk(builders ...*TenantPriceListCreate) *TenantPriceListCreateBulk {
	return &TenantPriceListCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantPriceListClient) MapCreateBulk(slice any, setFunc func(*TenantPriceListCreate, int)) *TenantPriceListCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantPriceListCreateBulk{err: fmt.Errorf("calling to TenantPriceListClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantPriceListCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantPriceListCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TenantPriceList.
func (c *TenantPriceListClient) Update() *TenantPriceListUpdate {
	mutation := newTenantPriceListMutation(c.config, OpUpdate)
	return &TenantPriceListUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantPriceListClient) UpdateOne(_m *TenantPriceList) *TenantPriceListUpdateOne {
	mutation := newTenantPriceListMutation(c.config, OpUpdateOne, withTenantPriceList(_m))
	return &TenantPriceListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantPriceListClient) UpdateOneID(id uuid.UUID) *TenantPriceListUpdateOne {
	mutation := newTenantPriceListMutation(c.config, OpUpdateOne, withTenantPriceListID(id))
	return &TenantPriceListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TenantPriceList.
func (c *TenantPriceListClient) Delete() *TenantPriceListDelete {
	mutation := newTenantPriceListMutation(c.config, OpDelete)
	return &TenantPriceListDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantPriceListClient) DeleteOne(_m *TenantPriceList) *TenantPriceListDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantPriceListClient) DeleteOneID(id uuid.UUID) *TenantPriceListDeleteOne {
	builder := c.Delete().Where(tenantpricelist.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantPriceListDeleteOne{builder}
}

// Query returns a query builder for TenantPriceList.
func (c *TenantPriceListClient) Query() *TenantPriceListQuery {
	return &TenantPriceListQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenantPriceList},
		inters: c.Interceptors(),
	}
}

// Get returns a TenantPriceList entity by its id.
func (c *TenantPriceListClient) Get(ctx context.Context, id uuid.UUID) (*TenantPriceList, error) {
	return c.Query().Where(tenantpricelist.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantPriceListClient) GetX(ctx context.Context, id uuid.UUID) *TenantPriceList {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TenantPriceListClient) Hooks() []Hook {
	return c.hooks.TenantPriceList
}

// Interceptors returns the client interceptors.
func (c *TenantPriceListClient) Interceptors() []Interceptor {
	return c.inters.TenantPriceList
}

func (c *TenantPriceListClient) mutate(ctx context.Context, m *TenantPriceListMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantPriceListCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantPriceListUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantPriceListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantPriceListDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TenantPriceList mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WorkClient is a client for the Work schema.
type WorkClient struct {
	config
}

// NewWorkClient returns a client for the Work from the given config.
func NewWorkClient(c config) *WorkClient {
	return &WorkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `work.Hooks(f(g(h())))`.
func (c *WorkClient) Use(hooks ...Hook) {
	c.hooks.Work = append(c.hooks.Work, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `work.Intercept(f(g(h())))`.
func (c *WorkClient) Intercept(interceptors ...Interceptor) {
	c.inters.Work = append(c.inters.Work, interceptors...)
}

// Create returns a builder for creating a Work entity.
func (c *WorkClient) Create() *WorkCreate {
	mutation := newWorkMutation(c.config, OpCreate)
	return &WorkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Work entities.
func (c *WorkClient) CreateBulk(builders ...*WorkCreate) *WorkCreateBulk {
	return &WorkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkClient) MapCreateBulk(slice any, setFunc func(*WorkCreate, int)) *WorkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkCreateBulk{err: fmt.Errorf("calling to WorkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Work.
func (c *WorkClient) Update() *WorkUpdate {
	mutation := newWorkMutation(c.config, OpUpdate)
	return &WorkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkClient) UpdateOne(_m *Work) *WorkUpdateOne {
	mutation := newWorkMutation(c.config, OpUpdateOne, withWork(_m))
	return &WorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkClient) UpdateOneID(id uuid.UUID) *WorkUpdateOne {
	mutation := newWorkMutation(c.config, OpUpdateOne, withWorkID(id))
	return &WorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Work.
func (c *WorkClient) Delete() *WorkDelete {
	mutation := newWorkMutation(c.config, OpDelete)
	return &WorkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkClient) DeleteOne(_m *Work) *WorkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkClient) DeleteOneID(id uuid.UUID) *WorkDeleteOne {
	builder := c.Delete().Where(work.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkDeleteOne{builder}
}

// Query returns a query builder for Work.
func (c *WorkClient) Query() *WorkQuery {
	return &WorkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWork},
		inters: c.Interceptors(),
	}
}

// Get returns a Work entity by its id.
func (c *WorkClient) Get(ctx context.Context, id uuid.UUID) (*Work, error) {
	return c.Query().Where(work.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkClient) GetX(ctx context.Context, id uuid.UUID) *Work {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequirements queries the requirements edge of a Work.
func (c *WorkClient) QueryRequirements(_m *Work) *RequirementQuery {
	query := (&RequirementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(work.Table, work.FieldID, id),
			sqlgraph.To(requirement.Table, requirement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, work.RequirementsTable, work.RequirementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkClient) Hooks() []Hook {
	return c.hooks.Work
}

// Interceptors returns the client interceptors.
func (c *WorkClient) Interceptors() []Interceptor {
	return c.inters.Work
}

func (c *WorkClient) mutate(ctx context.Context, m *WorkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Work mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Billing, History, Offer, PriceList, Requirement, TenantPriceList, User,
		Work []ent.Hook
	}
	inters struct {
		Billing, History, Offer, PriceList, Requirement, TenantPriceList, User,
		Work []ent.Interceptor
	}
)
