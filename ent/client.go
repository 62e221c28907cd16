// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"vc-drover.io/drover/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"vc-drover.io/drover/ent/notification"
	"vc-drover.io/drover/ent/poisonedevent"
	"vc-drover.io/drover/ent/projectionoffset"
	"vc-drover.io/drover/ent/provisioningprogress"
	"vc-drover.io/drover/ent/requestprojection"
	"vc-drover.io/drover/ent/timelineentry"
	"vc-drover.io/drover/ent/vmwareconfig"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// PoisonedEvent is the client for interacting with the PoisonedEvent builders.
	PoisonedEvent *PoisonedEventClient
	// ProjectionOffset is the client for interacting with the ProjectionOffset builders.
	ProjectionOffset *ProjectionOffsetClient
	// ProvisioningProgress is the client for interacting with the ProvisioningProgress builders.
	ProvisioningProgress *ProvisioningProgressClient
	// RequestProjection is the client for interacting with the RequestProjection builders.
	RequestProjection *RequestProjectionClient
	// TimelineEntry is the client for interacting with the TimelineEntry builders.
	TimelineEntry *TimelineEntryClient
	// VmwareConfig is the client for interacting with the VmwareConfig builders.
	VmwareConfig *VmwareConfigClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Notification = NewNotificationClient(c.config)
	c.PoisonedEvent = NewPoisonedEventClient(c.config)
	c.ProjectionOffset = NewProjectionOffsetClient(c.config)
	c.ProvisioningProgress = NewProvisioningProgressClient(c.config)
	c.RequestProjection = NewRequestProjectionClient(c.config)
	c.TimelineEntry = NewTimelineEntryClient(c.config)
	c.VmwareConfig = NewVmwareConfigClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		Notification:         NewNotificationClient(cfg),
		PoisonedEvent:        NewPoisonedEventClient(cfg),
		ProjectionOffset:     NewProjectionOffsetClient(cfg),
		ProvisioningProgress: NewProvisioningProgressClient(cfg),
		RequestProjection:    NewRequestProjectionClient(cfg),
		TimelineEntry:        NewTimelineEntryClient(cfg),
		VmwareConfig:         NewVmwareConfigClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		Notification:         NewNotificationClient(cfg),
		PoisonedEvent:        NewPoisonedEventClient(cfg),
		ProjectionOffset:     NewProjectionOffsetClient(cfg),
		ProvisioningProgress: NewProvisioningProgressClient(cfg),
		RequestProjection:    NewRequestProjectionClient(cfg),
		TimelineEntry:        NewTimelineEntryClient(cfg),
		VmwareConfig:         NewVmwareConfigClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Notification.
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
		c.Notification, c.PoisonedEvent, c.ProjectionOffset, c.ProvisioningProgress,
		c.RequestProjection, c.TimelineEntry, c.VmwareConfig,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Notification, c.PoisonedEvent, c.ProjectionOffset, c.ProvisioningProgress,
		c.RequestProjection, c.TimelineEntry, c.VmwareConfig,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PoisonedEventMutation:
		return c.PoisonedEvent.mutate(ctx, m)
	case *ProjectionOffsetMutation:
		return c.ProjectionOffset.mutate(ctx, m)
	case *ProvisioningProgressMutation:
		return c.ProvisioningProgress.mutate(ctx, m)
	case *RequestProjectionMutation:
		return c.RequestProjection.mutate(ctx, m)
	case *TimelineEntryMutation:
		return c.TimelineEntry.mutate(ctx, m)
	case *VmwareConfigMutation:
		return c.VmwareConfig.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id string) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id string) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id string) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id string) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// PoisonedEventClient is a client for the PoisonedEvent schema.
type PoisonedEventClient struct {
	config
}

// NewPoisonedEventClient returns a client for the PoisonedEvent from the given config.
func NewPoisonedEventClient(c config) *PoisonedEventClient {
	return &PoisonedEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `poisonedevent.Hooks(f(g(h())))`.
func (c *PoisonedEventClient) Use(hooks ...Hook) {
	c.hooks.PoisonedEvent = append(c.hooks.PoisonedEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `poisonedevent.Intercept(f(g(h())))`.
func (c *PoisonedEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PoisonedEvent = append(c.inters.PoisonedEvent, interceptors...)
}

// Create returns a builder for creating a PoisonedEvent entity.
func (c *PoisonedEventClient) Create() *PoisonedEventCreate {
	mutation := newPoisonedEventMutation(c.config, OpCreate)
	return &PoisonedEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PoisonedEvent entities.
func (c *PoisonedEventClient) CreateBulk(builders ...*PoisonedEventCreate) *PoisonedEventCreateBulk {
	return &PoisonedEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PoisonedEventClient) MapCreateBulk(slice any, setFunc func(*PoisonedEventCreate, int)) *PoisonedEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PoisonedEventCreateBulk{err: fmt.Errorf("calling to PoisonedEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PoisonedEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PoisonedEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PoisonedEvent.
func (c *PoisonedEventClient) Update() *PoisonedEventUpdate {
	mutation := newPoisonedEventMutation(c.config, OpUpdate)
	return &PoisonedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PoisonedEventClient) UpdateOne(_m *PoisonedEvent) *PoisonedEventUpdateOne {
	mutation := newPoisonedEventMutation(c.config, OpUpdateOne, withPoisonedEvent(_m))
	return &PoisonedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PoisonedEventClient) UpdateOneID(id string) *PoisonedEventUpdateOne {
	mutation := newPoisonedEventMutation(c.config, OpUpdateOne, withPoisonedEventID(id))
	return &PoisonedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PoisonedEvent.
func (c *PoisonedEventClient) Delete() *PoisonedEventDelete {
	mutation := newPoisonedEventMutation(c.config, OpDelete)
	return &PoisonedEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PoisonedEventClient) DeleteOne(_m *PoisonedEvent) *PoisonedEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PoisonedEventClient) DeleteOneID(id string) *PoisonedEventDeleteOne {
	builder := c.Delete().Where(poisonedevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PoisonedEventDeleteOne{builder}
}

// Query returns a query builder for PoisonedEvent.
func (c *PoisonedEventClient) Query() *PoisonedEventQuery {
	return &PoisonedEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePoisonedEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PoisonedEvent entity by its id.
func (c *PoisonedEventClient) Get(ctx context.Context, id string) (*PoisonedEvent, error) {
	return c.Query().Where(poisonedevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PoisonedEventClient) GetX(ctx context.Context, id string) *PoisonedEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PoisonedEventClient) Hooks() []Hook {
	return c.hooks.PoisonedEvent
}

// Interceptors returns the client interceptors.
func (c *PoisonedEventClient) Interceptors() []Interceptor {
	return c.inters.PoisonedEvent
}

func (c *PoisonedEventClient) mutate(ctx context.Context, m *PoisonedEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PoisonedEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PoisonedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PoisonedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PoisonedEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PoisonedEvent mutation op: %q", m.Op())
	}
}

// ProjectionOffsetClient is a client for the ProjectionOffset schema.
type ProjectionOffsetClient struct {
	config
}

// NewProjectionOffsetClient returns a client for the ProjectionOffset from the given config.
func NewProjectionOffsetClient(c config) *ProjectionOffsetClient {
	return &ProjectionOffsetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectionoffset.Hooks(f(g(h())))`.
func (c *ProjectionOffsetClient) Use(hooks ...Hook) {
	c.hooks.ProjectionOffset = append(c.hooks.ProjectionOffset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectionoffset.Intercept(f(g(h())))`.
func (c *ProjectionOffsetClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectionOffset = append(c.inters.ProjectionOffset, interceptors...)
}

// Create returns a builder for creating a ProjectionOffset entity.
func (c *ProjectionOffsetClient) Create() *ProjectionOffsetCreate {
	mutation := newProjectionOffsetMutation(c.config, OpCreate)
	return &ProjectionOffsetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectionOffset entities.
func (c *ProjectionOffsetClient) CreateBulk(builders ...*ProjectionOffsetCreate) *ProjectionOffsetCreateBulk {
	return &ProjectionOffsetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectionOffsetClient) MapCreateBulk(slice any, setFunc func(*ProjectionOffsetCreate, int)) *ProjectionOffsetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectionOffsetCreateBulk{err: fmt.Errorf("calling to ProjectionOffsetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectionOffsetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectionOffsetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectionOffset.
func (c *ProjectionOffsetClient) Update() *ProjectionOffsetUpdate {
	mutation := newProjectionOffsetMutation(c.config, OpUpdate)
	return &ProjectionOffsetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectionOffsetClient) UpdateOne(_m *ProjectionOffset) *ProjectionOffsetUpdateOne {
	mutation := newProjectionOffsetMutation(c.config, OpUpdateOne, withProjectionOffset(_m))
	return &ProjectionOffsetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectionOffsetClient) UpdateOneID(id int) *ProjectionOffsetUpdateOne {
	mutation := newProjectionOffsetMutation(c.config, OpUpdateOne, withProjectionOffsetID(id))
	return &ProjectionOffsetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectionOffset.
func (c *ProjectionOffsetClient) Delete() *ProjectionOffsetDelete {
	mutation := newProjectionOffsetMutation(c.config, OpDelete)
	return &ProjectionOffsetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectionOffsetClient) DeleteOne(_m *ProjectionOffset) *ProjectionOffsetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectionOffsetClient) DeleteOneID(id int) *ProjectionOffsetDeleteOne {
	builder := c.Delete().Where(projectionoffset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectionOffsetDeleteOne{builder}
}

// Query returns a query builder for ProjectionOffset.
func (c *ProjectionOffsetClient) Query() *ProjectionOffsetQuery {
	return &ProjectionOffsetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectionOffset},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectionOffset entity by its id.
func (c *ProjectionOffsetClient) Get(ctx context.Context, id int) (*ProjectionOffset, error) {
	return c.Query().Where(projectionoffset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectionOffsetClient) GetX(ctx context.Context, id int) *ProjectionOffset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectionOffsetClient) Hooks() []Hook {
	return c.hooks.ProjectionOffset
}

// Interceptors returns the client interceptors.
func (c *ProjectionOffsetClient) Interceptors() []Interceptor {
	return c.inters.ProjectionOffset
}

func (c *ProjectionOffsetClient) mutate(ctx context.Context, m *ProjectionOffsetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectionOffsetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectionOffsetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectionOffsetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectionOffsetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectionOffset mutation op: %q", m.Op())
	}
}

// ProvisioningProgressClient is a client for the ProvisioningProgress schema.
type ProvisioningProgressClient struct {
	config
}

// NewProvisioningProgressClient returns a client for the ProvisioningProgress from the given config.
func NewProvisioningProgressClient(c config) *ProvisioningProgressClient {
	return &ProvisioningProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `provisioningprogress.Hooks(f(g(h())))`.
func (c *ProvisioningProgressClient) Use(hooks ...Hook) {
	c.hooks.ProvisioningProgress = append(c.hooks.ProvisioningProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `provisioningprogress.Intercept(f(g(h())))`.
func (c *ProvisioningProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProvisioningProgress = append(c.inters.ProvisioningProgress, interceptors...)
}

// Create returns a builder for creating a ProvisioningProgress entity.
func (c *ProvisioningProgressClient) Create() *ProvisioningProgressCreate {
	mutation := newProvisioningProgressMutation(c.config, OpCreate)
	return &ProvisioningProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProvisioningProgress entities.
func (c *ProvisioningProgressClient) CreateBulk(builders ...*ProvisioningProgressCreate) *ProvisioningProgressCreateBulk {
	return &ProvisioningProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProvisioningProgressClient) MapCreateBulk(slice any, setFunc func(*ProvisioningProgressCreate, int)) *ProvisioningProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProvisioningProgressCreateBulk{err: fmt.Errorf("calling to ProvisioningProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProvisioningProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProvisioningProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProvisioningProgress.
func (c *ProvisioningProgressClient) Update() *ProvisioningProgressUpdate {
	mutation := newProvisioningProgressMutation(c.config, OpUpdate)
	return &ProvisioningProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProvisioningProgressClient) UpdateOne(_m *ProvisioningProgress) *ProvisioningProgressUpdateOne {
	mutation := newProvisioningProgressMutation(c.config, OpUpdateOne, withProvisioningProgress(_m))
	return &ProvisioningProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProvisioningProgressClient) UpdateOneID(id int) *ProvisioningProgressUpdateOne {
	mutation := newProvisioningProgressMutation(c.config, OpUpdateOne, withProvisioningProgressID(id))
	return &ProvisioningProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProvisioningProgress.
func (c *ProvisioningProgressClient) Delete() *ProvisioningProgressDelete {
	mutation := newProvisioningProgressMutation(c.config, OpDelete)
	return &ProvisioningProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProvisioningProgressClient) DeleteOne(_m *ProvisioningProgress) *ProvisioningProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProvisioningProgressClient) DeleteOneID(id int) *ProvisioningProgressDeleteOne {
	builder := c.Delete().Where(provisioningprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProvisioningProgressDeleteOne{builder}
}

// Query returns a query builder for ProvisioningProgress.
func (c *ProvisioningProgressClient) Query() *ProvisioningProgressQuery {
	return &ProvisioningProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProvisioningProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a ProvisioningProgress entity by its id.
func (c *ProvisioningProgressClient) Get(ctx context.Context, id int) (*ProvisioningProgress, error) {
	return c.Query().Where(provisioningprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProvisioningProgressClient) GetX(ctx context.Context, id int) *ProvisioningProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProvisioningProgressClient) Hooks() []Hook {
	return c.hooks.ProvisioningProgress
}

// Interceptors returns the client interceptors.
func (c *ProvisioningProgressClient) Interceptors() []Interceptor {
	return c.inters.ProvisioningProgress
}

func (c *ProvisioningProgressClient) mutate(ctx context.Context, m *ProvisioningProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProvisioningProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProvisioningProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProvisioningProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProvisioningProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProvisioningProgress mutation op: %q", m.Op())
	}
}

// RequestProjectionClient is a client for the RequestProjection schema.
type RequestProjectionClient struct {
	config
}

// NewRequestProjectionClient returns a client for the RequestProjection from the given config.
func NewRequestProjectionClient(c config) *RequestProjectionClient {
	return &RequestProjectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `requestprojection.Hooks(f(g(h())))`.
func (c *RequestProjectionClient) Use(hooks ...Hook) {
	c.hooks.RequestProjection = append(c.hooks.RequestProjection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `requestprojection.Intercept(f(g(h())))`.
func (c *RequestProjectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RequestProjection = append(c.inters.RequestProjection, interceptors...)
}

// Create returns a builder for creating a RequestProjection entity.
func (c *RequestProjectionClient) Create() *RequestProjectionCreate {
	mutation := newRequestProjectionMutation(c.config, OpCreate)
	return &RequestProjectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RequestProjection entities.
func (c *RequestProjectionClient) CreateBulk(builders ...*RequestProjectionCreate) *RequestProjectionCreateBulk {
	return &RequestProjectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequestProjectionClient) MapCreateBulk(slice any, setFunc func(*RequestProjectionCreate, int)) *RequestProjectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequestProjectionCreateBulk{err: fmt.Errorf("calling to RequestProjectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequestProjectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequestProjectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RequestProjection.
func (c *RequestProjectionClient) Update() *RequestProjectionUpdate {
	mutation := newRequestProjectionMutation(c.config, OpUpdate)
	return &RequestProjectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequestProjectionClient) UpdateOne(_m *RequestProjection) *RequestProjectionUpdateOne {
	mutation := newRequestProjectionMutation(c.config, OpUpdateOne, withRequestProjection(_m))
	return &RequestProjectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequestProjectionClient) UpdateOneID(id string) *RequestProjectionUpdateOne {
	mutation := newRequestProjectionMutation(c.config, OpUpdateOne, withRequestProjectionID(id))
	return &RequestProjectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RequestProjection.
func (c *RequestProjectionClient) Delete() *RequestProjectionDelete {
	mutation := newRequestProjectionMutation(c.config, OpDelete)
	return &RequestProjectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequestProjectionClient) DeleteOne(_m *RequestProjection) *RequestProjectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequestProjectionClient) DeleteOneID(id string) *RequestProjectionDeleteOne {
	builder := c.Delete().Where(requestprojection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequestProjectionDeleteOne{builder}
}

// Query returns a query builder for RequestProjection.
func (c *RequestProjectionClient) Query() *RequestProjectionQuery {
	return &RequestProjectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequestProjection},
		inters: c.Interceptors(),
	}
}

// Get returns a RequestProjection entity by its id.
func (c *RequestProjectionClient) Get(ctx context.Context, id string) (*RequestProjection, error) {
	return c.Query().Where(requestprojection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequestProjectionClient) GetX(ctx context.Context, id string) *RequestProjection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RequestProjectionClient) Hooks() []Hook {
	return c.hooks.RequestProjection
}

// Interceptors returns the client interceptors.
func (c *RequestProjectionClient) Interceptors() []Interceptor {
	return c.inters.RequestProjection
}

func (c *RequestProjectionClient) mutate(ctx context.Context, m *RequestProjectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequestProjectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequestProjectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequestProjectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequestProjectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RequestProjection mutation op: %q", m.Op())
	}
}

// TimelineEntryClient is a client for the TimelineEntry schema.
type TimelineEntryClient struct {
	config
}

// NewTimelineEntryClient returns a client for the TimelineEntry from the given config.
func NewTimelineEntryClient(c config) *TimelineEntryClient {
	return &TimelineEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timelineentry.Hooks(f(g(h())))`.
func (c *TimelineEntryClient) Use(hooks ...Hook) {
	c.hooks.TimelineEntry = append(c.hooks.TimelineEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timelineentry.Intercept(f(g(h())))`.
func (c *TimelineEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimelineEntry = append(c.inters.TimelineEntry, interceptors...)
}

// Create returns a builder for creating a TimelineEntry entity.
func (c *TimelineEntryClient) Create() *TimelineEntryCreate {
	mutation := newTimelineEntryMutation(c.config, OpCreate)
	return &TimelineEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimelineEntry entities.
func (c *TimelineEntryClient) CreateBulk(builders ...*TimelineEntryCreate) *TimelineEntryCreateBulk {
	return &TimelineEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimelineEntryClient) MapCreateBulk(slice any, setFunc func(*TimelineEntryCreate, int)) *TimelineEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimelineEntryCreateBulk{err: fmt.Errorf("calling to TimelineEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimelineEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimelineEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimelineEntry.
func (c *TimelineEntryClient) Update() *TimelineEntryUpdate {
	mutation := newTimelineEntryMutation(c.config, OpUpdate)
	return &TimelineEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimelineEntryClient) UpdateOne(_m *TimelineEntry) *TimelineEntryUpdateOne {
	mutation := newTimelineEntryMutation(c.config, OpUpdateOne, withTimelineEntry(_m))
	return &TimelineEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimelineEntryClient) UpdateOneID(id int) *TimelineEntryUpdateOne {
	mutation := newTimelineEntryMutation(c.config, OpUpdateOne, withTimelineEntryID(id))
	return &TimelineEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimelineEntry.
func (c *TimelineEntryClient) Delete() *TimelineEntryDelete {
	mutation := newTimelineEntryMutation(c.config, OpDelete)
	return &TimelineEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimelineEntryClient) DeleteOne(_m *TimelineEntry) *TimelineEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimelineEntryClient) DeleteOneID(id int) *TimelineEntryDeleteOne {
	builder := c.Delete().Where(timelineentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimelineEntryDeleteOne{builder}
}

// Query returns a query builder for TimelineEntry.
func (c *TimelineEntryClient) Query() *TimelineEntryQuery {
	return &TimelineEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimelineEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a TimelineEntry entity by its id.
func (c *TimelineEntryClient) Get(ctx context.Context, id int) (*TimelineEntry, error) {
	return c.Query().Where(timelineentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimelineEntryClient) GetX(ctx context.Context, id int) *TimelineEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TimelineEntryClient) Hooks() []Hook {
	return c.hooks.TimelineEntry
}

// Interceptors returns the client interceptors.
func (c *TimelineEntryClient) Interceptors() []Interceptor {
	return c.inters.TimelineEntry
}

func (c *TimelineEntryClient) mutate(ctx context.Context, m *TimelineEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimelineEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimelineEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimelineEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimelineEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TimelineEntry mutation op: %q", m.Op())
	}
}

// VmwareConfigClient is a client for the VmwareConfig schema.
type VmwareConfigClient struct {
	config
}

// NewVmwareConfigClient returns a client for the VmwareConfig from the given config.
func NewVmwareConfigClient(c config) *VmwareConfigClient {
	return &VmwareConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vmwareconfig.Hooks(f(g(h())))`.
func (c *VmwareConfigClient) Use(hooks ...Hook) {
	c.hooks.VmwareConfig = append(c.hooks.VmwareConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vmwareconfig.Intercept(f(g(h())))`.
func (c *VmwareConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.VmwareConfig = append(c.inters.VmwareConfig, interceptors...)
}

// Create returns a builder for creating a VmwareConfig entity.
func (c *VmwareConfigClient) Create() *VmwareConfigCreate {
	mutation := newVmwareConfigMutation(c.config, OpCreate)
	return &VmwareConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VmwareConfig entities.
func (c *VmwareConfigClient) CreateBulk(builders ...*VmwareConfigCreate) *VmwareConfigCreateBulk {
	return &VmwareConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VmwareConfigClient) MapCreateBulk(slice any, setFunc func(*VmwareConfigCreate, int)) *VmwareConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VmwareConfigCreateBulk{err: fmt.Errorf("calling to VmwareConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VmwareConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VmwareConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VmwareConfig.
func (c *VmwareConfigClient) Update() *VmwareConfigUpdate {
	mutation := newVmwareConfigMutation(c.config, OpUpdate)
	return &VmwareConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VmwareConfigClient) UpdateOne(_m *VmwareConfig) *VmwareConfigUpdateOne {
	mutation := newVmwareConfigMutation(c.config, OpUpdateOne, withVmwareConfig(_m))
	return &VmwareConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VmwareConfigClient) UpdateOneID(id int) *VmwareConfigUpdateOne {
	mutation := newVmwareConfigMutation(c.config, OpUpdateOne, withVmwareConfigID(id))
	return &VmwareConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VmwareConfig.
func (c *VmwareConfigClient) Delete() *VmwareConfigDelete {
	mutation := newVmwareConfigMutation(c.config, OpDelete)
	return &VmwareConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VmwareConfigClient) DeleteOne(_m *VmwareConfig) *VmwareConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VmwareConfigClient) DeleteOneID(id int) *VmwareConfigDeleteOne {
	builder := c.Delete().Where(vmwareconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VmwareConfigDeleteOne{builder}
}

// Query returns a query builder for VmwareConfig.
func (c *VmwareConfigClient) Query() *VmwareConfigQuery {
	return &VmwareConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVmwareConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a VmwareConfig entity by its id.
func (c *VmwareConfigClient) Get(ctx context.Context, id int) (*VmwareConfig, error) {
	return c.Query().Where(vmwareconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VmwareConfigClient) GetX(ctx context.Context, id int) *VmwareConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VmwareConfigClient) Hooks() []Hook {
	return c.hooks.VmwareConfig
}

// Interceptors returns the client interceptors.
func (c *VmwareConfigClient) Interceptors() []Interceptor {
	return c.inters.VmwareConfig
}

func (c *VmwareConfigClient) mutate(ctx context.Context, m *VmwareConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VmwareConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VmwareConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VmwareConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VmwareConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VmwareConfig mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Notification, PoisonedEvent, ProjectionOffset, ProvisioningProgress,
		RequestProjection, TimelineEntry, VmwareConfig []ent.Hook
	}
	inters struct {
		Notification, PoisonedEvent, ProjectionOffset, ProvisioningProgress,
		RequestProjection, TimelineEntry, VmwareConfig []ent.Interceptor
	}
)
