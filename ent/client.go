// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/waddlebot/waddlebot-core/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/waddlebot/waddlebot-core/ent/alias"
	"github.com/waddlebot/waddlebot-core/ent/botscore"
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/gateway"
	"github.com/waddlebot/waddlebot-core/ent/member"
	"github.com/waddlebot/waddlebot-core/ent/sessionrecord"
	"github.com/waddlebot/waddlebot-core/ent/translationrecord"
	"github.com/waddlebot/waddlebot-core/ent/workflow"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Alias is the client for interacting with the Alias builders.
	Alias *AliasClient
	// BotScore is the client for interacting with the BotScore builders.
	BotScore *BotScoreClient
	// Community is the client for interacting with the Community builders.
	Community *CommunityClient
	// Gateway is the client for interacting with the Gateway builders.
	Gateway *GatewayClient
	// Member is the client for interacting with the Member builders.
	Member *MemberClient
	// SessionRecord is the client for interacting with the SessionRecord builders.
	SessionRecord *SessionRecordClient
	// TranslationRecord is the client for interacting with the TranslationRecord builders.
	TranslationRecord *TranslationRecordClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Alias = NewAliasClient(c.config)
	c.BotScore = NewBotScoreClient(c.config)
	c.Community = NewCommunityClient(c.config)
	c.Gateway = NewGatewayClient(c.config)
	c.Member = NewMemberClient(c.config)
	c.SessionRecord = NewSessionRecordClient(c.config)
	c.TranslationRecord = NewTranslationRecordClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
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
		Alias:             NewAliasClient(cfg),
		BotScore:          NewBotScoreClient(cfg),
		Community:         NewCommunityClient(cfg),
		Gateway:           NewGatewayClient(cfg),
		Member:            NewMemberClient(cfg),
		SessionRecord:     NewSessionRecordClient(cfg),
		TranslationRecord: NewTranslationRecordClient(cfg),
		Workflow:          NewWorkflowClient(cfg),
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
		Alias:             NewAliasClient(cfg),
		BotScore:          NewBotScoreClient(cfg),
		Community:         NewCommunityClient(cfg),
		Gateway:           NewGatewayClient(cfg),
		Member:            NewMemberClient(cfg),
		SessionRecord:     NewSessionRecordClient(cfg),
		TranslationRecord: NewTranslationRecordClient(cfg),
		Workflow:          NewWorkflowClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Alias.
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
		c.Alias, c.BotScore, c.Community, c.Gateway, c.Member, c.SessionRecord,
		c.TranslationRecord, c.Workflow,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Alias, c.BotScore, c.Community, c.Gateway, c.Member, c.SessionRecord,
		c.TranslationRecord, c.Workflow,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AliasMutation:
		return c.Alias.mutate(ctx, m)
	case *BotScoreMutation:
		return c.BotScore.mutate(ctx, m)
	case *CommunityMutation:
		return c.Community.mutate(ctx, m)
	case *GatewayMutation:
		return c.Gateway.mutate(ctx, m)
	case *MemberMutation:
		return c.Member.mutate(ctx, m)
	case *SessionRecordMutation:
		return c.SessionRecord.mutate(ctx, m)
	case *TranslationRecordMutation:
		return c.TranslationRecord.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AliasClient is a client for the Alias schema.
type AliasClient struct {
	config
}

// NewAliasClient returns a client for the Alias from the given config.
func NewAliasClient(c config) *AliasClient {
	return &AliasClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alias.Hooks(f(g(h())))`.
func (c *AliasClient) Use(hooks ...Hook) {
	c.hooks.Alias = append(c.hooks.Alias, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alias.Intercept(f(g(h())))`.
func (c *AliasClient) Intercept(interceptors ...Interceptor) {
	c.inters.Alias = append(c.inters.Alias, interceptors...)
}

// Create returns a builder for creating a Alias entity.
func (c *AliasClient) Create() *AliasCreate {
	mutation := newAliasMutation(c.config, OpCreate)
	return &AliasCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Alias entities.
func (c *AliasClient) CreateBulk(builders ...*AliasCreate) *AliasCreateBulk {
	return &AliasCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AliasClient) MapCreateBulk(slice any, setFunc func(*AliasCreate, int)) *AliasCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AliasCreateBulk{err: fmt.Errorf("calling to AliasClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AliasCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AliasCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Alias.
func (c *AliasClient) Update() *AliasUpdate {
	mutation := newAliasMutation(c.config, OpUpdate)
	return &AliasUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AliasClient) UpdateOne(_m *Alias) *AliasUpdateOne {
	mutation := newAliasMutation(c.config, OpUpdateOne, withAlias(_m))
	return &AliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AliasClient) UpdateOneID(id int) *AliasUpdateOne {
	mutation := newAliasMutation(c.config, OpUpdateOne, withAliasID(id))
	return &AliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Alias.
func (c *AliasClient) Delete() *AliasDelete {
	mutation := newAliasMutation(c.config, OpDelete)
	return &AliasDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AliasClient) DeleteOne(_m *Alias) *AliasDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AliasClient) DeleteOneID(id int) *AliasDeleteOne {
	builder := c.Delete().Where(alias.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AliasDeleteOne{builder}
}

// Query returns a query builder for Alias.
func (c *AliasClient) Query() *AliasQuery {
	return &AliasQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlias},
		inters: c.Interceptors(),
	}
}

// Get returns a Alias entity by its id.
func (c *AliasClient) Get(ctx context.Context, id int) (*Alias, error) {
	return c.Query().Where(alias.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AliasClient) GetX(ctx context.Context, id int) *Alias {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AliasClient) Hooks() []Hook {
	return c.hooks.Alias
}

// Interceptors returns the client interceptors.
func (c *AliasClient) Interceptors() []Interceptor {
	return c.inters.Alias
}

func (c *AliasClient) mutate(ctx context.Context, m *AliasMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AliasCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AliasUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AliasDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Alias mutation op: %q", m.Op())
	}
}

// BotScoreClient is a client for the BotScore schema.
type BotScoreClient struct {
	config
}

// NewBotScoreClient returns a client for the BotScore from the given config.
func NewBotScoreClient(c config) *BotScoreClient {
	return &BotScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `botscore.Hooks(f(g(h())))`.
func (c *BotScoreClient) Use(hooks ...Hook) {
	c.hooks.BotScore = append(c.hooks.BotScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `botscore.Intercept(f(g(h())))`.
func (c *BotScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.BotScore = append(c.inters.BotScore, interceptors...)
}

// Create returns a builder for creating a BotScore entity.
func (c *BotScoreClient) Create() *BotScoreCreate {
	mutation := newBotScoreMutation(c.config, OpCreate)
	return &BotScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BotScore entities.
func (c *BotScoreClient) CreateBulk(builders ...*BotScoreCreate) *BotScoreCreateBulk {
	return &BotScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BotScoreClient) MapCreateBulk(slice any, setFunc func(*BotScoreCreate, int)) *BotScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BotScoreCreateBulk{err: fmt.Errorf("calling to BotScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BotScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BotScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BotScore.
func (c *BotScoreClient) Update() *BotScoreUpdate {
	mutation := newBotScoreMutation(c.config, OpUpdate)
	return &BotScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BotScoreClient) UpdateOne(_m *BotScore) *BotScoreUpdateOne {
	mutation := newBotScoreMutation(c.config, OpUpdateOne, withBotScore(_m))
	return &BotScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BotScoreClient) UpdateOneID(id int) *BotScoreUpdateOne {
	mutation := newBotScoreMutation(c.config, OpUpdateOne, withBotScoreID(id))
	return &BotScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BotScore.
func (c *BotScoreClient) Delete() *BotScoreDelete {
	mutation := newBotScoreMutation(c.config, OpDelete)
	return &BotScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BotScoreClient) DeleteOne(_m *BotScore) *BotScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BotScoreClient) DeleteOneID(id int) *BotScoreDeleteOne {
	builder := c.Delete().Where(botscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BotScoreDeleteOne{builder}
}

// Query returns a query builder for BotScore.
func (c *BotScoreClient) Query() *BotScoreQuery {
	return &BotScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBotScore},
		inters: c.Interceptors(),
	}
}

// Get returns a BotScore entity by its id.
func (c *BotScoreClient) Get(ctx context.Context, id int) (*BotScore, error) {
	return c.Query().Where(botscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BotScoreClient) GetX(ctx context.Context, id int) *BotScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCommunity queries the community edge of a BotScore.
func (c *BotScoreClient) QueryCommunity(_m *BotScore) *CommunityQuery {
	query := (&CommunityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(botscore.Table, botscore.FieldID, id),
			sqlgraph.To(community.Table, community.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, botscore.CommunityTable, botscore.CommunityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BotScoreClient) Hooks() []Hook {
	return c.hooks.BotScore
}

// Interceptors returns the client interceptors.
func (c *BotScoreClient) Interceptors() []Interceptor {
	return c.inters.BotScore
}

func (c *BotScoreClient) mutate(ctx context.Context, m *BotScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BotScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BotScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BotScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BotScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BotScore mutation op: %q", m.Op())
	}
}

// CommunityClient is a client for the Community schema.
type CommunityClient struct {
	config
}

// NewCommunityClient returns a client for the Community from the given config.
func NewCommunityClient(c config) *CommunityClient {
	return &CommunityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `community.Hooks(f(g(h())))`.
func (c *CommunityClient) Use(hooks ...Hook) {
	c.hooks.Community = append(c.hooks.Community, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `community.Intercept(f(g(h())))`.
func (c *CommunityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Community = append(c.inters.Community, interceptors...)
}

// Create returns a builder for creating a Community entity.
func (c *CommunityClient) Create() *CommunityCreate {
	mutation := newCommunityMutation(c.config, OpCreate)
	return &CommunityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Community entities.
func (c *CommunityClient) CreateBulk(builders ...*CommunityCreate) *CommunityCreateBulk {
	return &CommunityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommunityClient) MapCreateBulk(slice any, setFunc func(*CommunityCreate, int)) *CommunityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommunityCreateBulk{err: fmt.Errorf("calling to CommunityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommunityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommunityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Community.
func (c *CommunityClient) Update() *CommunityUpdate {
	mutation := newCommunityMutation(c.config, OpUpdate)
	return &CommunityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommunityClient) UpdateOne(_m *Community) *CommunityUpdateOne {
	mutation := newCommunityMutation(c.config, OpUpdateOne, withCommunity(_m))
	return &CommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommunityClient) UpdateOneID(id string) *CommunityUpdateOne {
	mutation := newCommunityMutation(c.config, OpUpdateOne, withCommunityID(id))
	return &CommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Community.
func (c *CommunityClient) Delete() *CommunityDelete {
	mutation := newCommunityMutation(c.config, OpDelete)
	return &CommunityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommunityClient) DeleteOne(_m *Community) *CommunityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommunityClient) DeleteOneID(id string) *CommunityDeleteOne {
	builder := c.Delete().Where(community.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommunityDeleteOne{builder}
}

// Query returns a query builder for Community.
func (c *CommunityClient) Query() *CommunityQuery {
	return &CommunityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCommunity},
		inters: c.Interceptors(),
	}
}

// Get returns a Community entity by its id.
func (c *CommunityClient) Get(ctx context.Context, id string) (*Community, error) {
	return c.Query().Where(community.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommunityClient) GetX(ctx context.Context, id string) *Community {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGateways queries the gateways edge of a Community.
func (c *CommunityClient) QueryGateways(_m *Community) *GatewayQuery {
	query := (&GatewayClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(community.Table, community.FieldID, id),
			sqlgraph.To(gateway.Table, gateway.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, community.GatewaysTable, community.GatewaysColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMembers queries the members edge of a Community.
func (c *CommunityClient) QueryMembers(_m *Community) *MemberQuery {
	query := (&MemberClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(community.Table, community.FieldID, id),
			sqlgraph.To(member.Table, member.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, community.MembersTable, community.MembersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWorkflows queries the workflows edge of a Community.
func (c *CommunityClient) QueryWorkflows(_m *Community) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(community.Table, community.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, community.WorkflowsTable, community.WorkflowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBotScore queries the bot_score edge of a Community.
func (c *CommunityClient) QueryBotScore(_m *Community) *BotScoreQuery {
	query := (&BotScoreClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(community.Table, community.FieldID, id),
			sqlgraph.To(botscore.Table, botscore.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, community.BotScoreTable, community.BotScoreColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommunityClient) Hooks() []Hook {
	return c.hooks.Community
}

// Interceptors returns the client interceptors.
func (c *CommunityClient) Interceptors() []Interceptor {
	return c.inters.Community
}

func (c *CommunityClient) mutate(ctx context.Context, m *CommunityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommunityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommunityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommunityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Community mutation op: %q", m.Op())
	}
}

// GatewayClient is a client for the Gateway schema.
type GatewayClient struct {
	config
}

// NewGatewayClient returns a client for the Gateway from the given config.
func NewGatewayClient(c config) *GatewayClient {
	return &GatewayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gateway.Hooks(f(g(h())))`.
func (c *GatewayClient) Use(hooks ...Hook) {
	c.hooks.Gateway = append(c.hooks.Gateway, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gateway.Intercept(f(g(h())))`.
func (c *GatewayClient) Intercept(interceptors ...Interceptor) {
	c.inters.Gateway = append(c.inters.Gateway, interceptors...)
}

// Create returns a builder for creating a Gateway entity.
func (c *GatewayClient) Create() *GatewayCreate {
	mutation := newGatewayMutation(c.config, OpCreate)
	return &GatewayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Gateway entities.
func (c *GatewayClient) CreateBulk(builders ...*GatewayCreate) *GatewayCreateBulk {
	return &GatewayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GatewayClient) MapCreateBulk(slice any, setFunc func(*GatewayCreate, int)) *GatewayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GatewayCreateBulk{err: fmt.Errorf("calling to GatewayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GatewayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GatewayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Gateway.
func (c *GatewayClient) Update() *GatewayUpdate {
	mutation := newGatewayMutation(c.config, OpUpdate)
	return &GatewayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GatewayClient) UpdateOne(_m *Gateway) *GatewayUpdateOne {
	mutation := newGatewayMutation(c.config, OpUpdateOne, withGateway(_m))
	return &GatewayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GatewayClient) UpdateOneID(id string) *GatewayUpdateOne {
	mutation := newGatewayMutation(c.config, OpUpdateOne, withGatewayID(id))
	return &GatewayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Gateway.
func (c *GatewayClient) Delete() *GatewayDelete {
	mutation := newGatewayMutation(c.config, OpDelete)
	return &GatewayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GatewayClient) DeleteOne(_m *Gateway) *GatewayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GatewayClient) DeleteOneID(id string) *GatewayDeleteOne {
	builder := c.Delete().Where(gateway.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GatewayDeleteOne{builder}
}

// Query returns a query builder for Gateway.
func (c *GatewayClient) Query() *GatewayQuery {
	return &GatewayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGateway},
		inters: c.Interceptors(),
	}
}

// Get returns a Gateway entity by its id.
func (c *GatewayClient) Get(ctx context.Context, id string) (*Gateway, error) {
	return c.Query().Where(gateway.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GatewayClient) GetX(ctx context.Context, id string) *Gateway {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCommunity queries the community edge of a Gateway.
func (c *GatewayClient) QueryCommunity(_m *Gateway) *CommunityQuery {
	query := (&CommunityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gateway.Table, gateway.FieldID, id),
			sqlgraph.To(community.Table, community.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gateway.CommunityTable, gateway.CommunityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GatewayClient) Hooks() []Hook {
	return c.hooks.Gateway
}

// Interceptors returns the client interceptors.
func (c *GatewayClient) Interceptors() []Interceptor {
	return c.inters.Gateway
}

func (c *GatewayClient) mutate(ctx context.Context, m *GatewayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GatewayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GatewayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GatewayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GatewayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Gateway mutation op: %q", m.Op())
	}
}

// MemberClient is a client for the Member schema.
type MemberClient struct {
	config
}

// NewMemberClient returns a client for the Member from the given config.
func NewMemberClient(c config) *MemberClient {
	return &MemberClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `member.Hooks(f(g(h())))`.
func (c *MemberClient) Use(hooks ...Hook) {
	c.hooks.Member = append(c.hooks.Member, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `member.Intercept(f(g(h())))`.
func (c *MemberClient) Intercept(interceptors ...Interceptor) {
	c.inters.Member = append(c.inters.Member, interceptors...)
}

// Create returns a builder for creating a Member entity.
func (c *MemberClient) Create() *MemberCreate {
	mutation := newMemberMutation(c.config, OpCreate)
	return &MemberCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Member entities.
func (c *MemberClient) CreateBulk(builders ...*MemberCreate) *MemberCreateBulk {
	return &MemberCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MemberClient) MapCreateBulk(slice any, setFunc func(*MemberCreate, int)) *MemberCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MemberCreateBulk{err: fmt.Errorf("calling to MemberClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MemberCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MemberCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Member.
func (c *MemberClient) Update() *MemberUpdate {
	mutation := newMemberMutation(c.config, OpUpdate)
	return &MemberUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MemberClient) UpdateOne(_m *Member) *MemberUpdateOne {
	mutation := newMemberMutation(c.config, OpUpdateOne, withMember(_m))
	return &MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MemberClient) UpdateOneID(id int) *MemberUpdateOne {
	mutation := newMemberMutation(c.config, OpUpdateOne, withMemberID(id))
	return &MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Member.
func (c *MemberClient) Delete() *MemberDelete {
	mutation := newMemberMutation(c.config, OpDelete)
	return &MemberDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MemberClient) DeleteOne(_m *Member) *MemberDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MemberClient) DeleteOneID(id int) *MemberDeleteOne {
	builder := c.Delete().Where(member.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MemberDeleteOne{builder}
}

// Query returns a query builder for Member.
func (c *MemberClient) Query() *MemberQuery {
	return &MemberQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMember},
		inters: c.Interceptors(),
	}
}

// Get returns a Member entity by its id.
func (c *MemberClient) Get(ctx context.Context, id int) (*Member, error) {
	return c.Query().Where(member.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MemberClient) GetX(ctx context.Context, id int) *Member {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCommunity queries the community edge of a Member.
func (c *MemberClient) QueryCommunity(_m *Member) *CommunityQuery {
	query := (&CommunityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(member.Table, member.FieldID, id),
			sqlgraph.To(community.Table, community.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, member.CommunityTable, member.CommunityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MemberClient) Hooks() []Hook {
	return c.hooks.Member
}

// Interceptors returns the client interceptors.
func (c *MemberClient) Interceptors() []Interceptor {
	return c.inters.Member
}

func (c *MemberClient) mutate(ctx context.Context, m *MemberMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MemberCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MemberUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MemberUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MemberDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Member mutation op: %q", m.Op())
	}
}

// SessionRecordClient is a client for the SessionRecord schema.
type SessionRecordClient struct {
	config
}

// NewSessionRecordClient returns a client for the SessionRecord from the given config.
func NewSessionRecordClient(c config) *SessionRecordClient {
	return &SessionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionrecord.Hooks(f(g(h())))`.
func (c *SessionRecordClient) Use(hooks ...Hook) {
	c.hooks.SessionRecord = append(c.hooks.SessionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionrecord.Intercept(f(g(h())))`.
func (c *SessionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionRecord = append(c.inters.SessionRecord, interceptors...)
}

// Create returns a builder for creating a SessionRecord entity.
func (c *SessionRecordClient) Create() *SessionRecordCreate {
	mutation := newSessionRecordMutation(c.config, OpCreate)
	return &SessionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionRecord entities.
func (c *SessionRecordClient) CreateBulk(builders ...*SessionRecordCreate) *SessionRecordCreateBulk {
	return &SessionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionRecordClient) MapCreateBulk(slice any, setFunc func(*SessionRecordCreate, int)) *SessionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionRecordCreateBulk{err: fmt.Errorf("calling to SessionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionRecord.
func (c *SessionRecordClient) Update() *SessionRecordUpdate {
	mutation := newSessionRecordMutation(c.config, OpUpdate)
	return &SessionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionRecordClient) UpdateOne(_m *SessionRecord) *SessionRecordUpdateOne {
	mutation := newSessionRecordMutation(c.config, OpUpdateOne, withSessionRecord(_m))
	return &SessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionRecordClient) UpdateOneID(id string) *SessionRecordUpdateOne {
	mutation := newSessionRecordMutation(c.config, OpUpdateOne, withSessionRecordID(id))
	return &SessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionRecord.
func (c *SessionRecordClient) Delete() *SessionRecordDelete {
	mutation := newSessionRecordMutation(c.config, OpDelete)
	return &SessionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionRecordClient) DeleteOne(_m *SessionRecord) *SessionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionRecordClient) DeleteOneID(id string) *SessionRecordDeleteOne {
	builder := c.Delete().Where(sessionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionRecordDeleteOne{builder}
}

// Query returns a query builder for SessionRecord.
func (c *SessionRecordClient) Query() *SessionRecordQuery {
	return &SessionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionRecord entity by its id.
func (c *SessionRecordClient) Get(ctx context.Context, id string) (*SessionRecord, error) {
	return c.Query().Where(sessionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionRecordClient) GetX(ctx context.Context, id string) *SessionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionRecordClient) Hooks() []Hook {
	return c.hooks.SessionRecord
}

// Interceptors returns the client interceptors.
func (c *SessionRecordClient) Interceptors() []Interceptor {
	return c.inters.SessionRecord
}

func (c *SessionRecordClient) mutate(ctx context.Context, m *SessionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionRecord mutation op: %q", m.Op())
	}
}

// TranslationRecordClient is a client for the TranslationRecord schema.
type TranslationRecordClient struct {
	config
}

// NewTranslationRecordClient returns a client for the TranslationRecord from the given config.
func NewTranslationRecordClient(c config) *TranslationRecordClient {
	return &TranslationRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `translationrecord.Hooks(f(g(h())))`.
func (c *TranslationRecordClient) Use(hooks ...Hook) {
	c.hooks.TranslationRecord = append(c.hooks.TranslationRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `translationrecord.Intercept(f(g(h())))`.
func (c *TranslationRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.TranslationRecord = append(c.inters.TranslationRecord, interceptors...)
}

// Create returns a builder for creating a TranslationRecord entity.
func (c *TranslationRecordClient) Create() *TranslationRecordCreate {
	mutation := newTranslationRecordMutation(c.config, OpCreate)
	return &TranslationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TranslationRecord entities.
func (c *TranslationRecordClient) CreateBulk(builders ...*TranslationRecordCreate) *TranslationRecordCreateBulk {
	return &TranslationRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranslationRecordClient) MapCreateBulk(slice any, setFunc func(*TranslationRecordCreate, int)) *TranslationRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranslationRecordCreateBulk{err: fmt.Errorf("calling to TranslationRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranslationRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranslationRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TranslationRecord.
func (c *TranslationRecordClient) Update() *TranslationRecordUpdate {
	mutation := newTranslationRecordMutation(c.config, OpUpdate)
	return &TranslationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranslationRecordClient) UpdateOne(_m *TranslationRecord) *TranslationRecordUpdateOne {
	mutation := newTranslationRecordMutation(c.config, OpUpdateOne, withTranslationRecord(_m))
	return &TranslationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranslationRecordClient) UpdateOneID(id int) *TranslationRecordUpdateOne {
	mutation := newTranslationRecordMutation(c.config, OpUpdateOne, withTranslationRecordID(id))
	return &TranslationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TranslationRecord.
func (c *TranslationRecordClient) Delete() *TranslationRecordDelete {
	mutation := newTranslationRecordMutation(c.config, OpDelete)
	return &TranslationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranslationRecordClient) DeleteOne(_m *TranslationRecord) *TranslationRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranslationRecordClient) DeleteOneID(id int) *TranslationRecordDeleteOne {
	builder := c.Delete().Where(translationrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranslationRecordDeleteOne{builder}
}

// Query returns a query builder for TranslationRecord.
func (c *TranslationRecordClient) Query() *TranslationRecordQuery {
	return &TranslationRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranslationRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a TranslationRecord entity by its id.
func (c *TranslationRecordClient) Get(ctx context.Context, id int) (*TranslationRecord, error) {
	return c.Query().Where(translationrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranslationRecordClient) GetX(ctx context.Context, id int) *TranslationRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TranslationRecordClient) Hooks() []Hook {
	return c.hooks.TranslationRecord
}

// Interceptors returns the client interceptors.
func (c *TranslationRecordClient) Interceptors() []Interceptor {
	return c.inters.TranslationRecord
}

func (c *TranslationRecordClient) mutate(ctx context.Context, m *TranslationRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranslationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranslationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranslationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranslationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TranslationRecord mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id string) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id string) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id string) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id string) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCommunity queries the community edge of a Workflow.
func (c *WorkflowClient) QueryCommunity(_m *Workflow) *CommunityQuery {
	query := (&CommunityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(community.Table, community.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflow.CommunityTable, workflow.CommunityColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Alias, BotScore, Community, Gateway, Member, SessionRecord, TranslationRecord,
		Workflow []ent.Hook
	}
	inters struct {
		Alias, BotScore, Community, Gateway, Member, SessionRecord, TranslationRecord,
		Workflow []ent.Interceptor
	}
)
