// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/waddlebot/waddlebot-core/ent/botscore"
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/gateway"
	"github.com/waddlebot/waddlebot-core/ent/member"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
	"github.com/waddlebot/waddlebot-core/ent/workflow"
)

// CommunityQuery is the builder for querying Community entities.
type CommunityQuery struct {
	config
	ctx           *QueryContext
	order         []community.OrderOption
	inters        []Interceptor
	predicates    []predicate.Community
	withGateways  *GatewayQuery
	withMembers   *MemberQuery
	withWorkflows *WorkflowQuery
	withBotScore  *BotScoreQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CommunityQuery builder.
func (_q *CommunityQuery) Where(ps ...predicate.Community) *CommunityQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CommunityQuery) Limit(limit int) *CommunityQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CommunityQuery) Offset(offset int) *CommunityQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CommunityQuery) Unique(unique bool) *CommunityQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CommunityQuery) Order(o ...community.OrderOption) *CommunityQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryGateways chains the current query on the "gateways" edge.
func (_q *CommunityQuery) QueryGateways() *GatewayQuery {
	query := (&GatewayClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(community.Table, community.FieldID, selector),
			sqlgraph.To(gateway.Table, gateway.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, community.GatewaysTable, community.GatewaysColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMembers chains the current query on the "members" edge.
func (_q *CommunityQuery) QueryMembers() *MemberQuery {
	query := (&MemberClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(community.Table, community.FieldID, selector),
			sqlgraph.To(member.Table, member.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, community.MembersTable, community.MembersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWorkflows chains the current query on the "workflows" edge.
func (_q *CommunityQuery) QueryWorkflows() *WorkflowQuery {
	query := (&WorkflowClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(community.Table, community.FieldID, selector),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, community.WorkflowsTable, community.WorkflowsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBotScore chains the current query on the "bot_score" edge.
func (_q *CommunityQuery) QueryBotScore() *BotScoreQuery {
	query := (&BotScoreClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(community.Table, community.FieldID, selector),
			sqlgraph.To(botscore.Table, botscore.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, community.BotScoreTable, community.BotScoreColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Community entity from the query.
// Returns a *NotFoundError when no Community was found.
func (_q *CommunityQuery) First(ctx context.Context) (*Community, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{community.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CommunityQuery) FirstX(ctx context.Context) *Community {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Community ID from the query.
// Returns a *NotFoundError when no Community ID was found.
func (_q *CommunityQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{community.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CommunityQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Community entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Community entity is found.
// Returns a *NotFoundError when no Community entities are found.
func (_q *CommunityQuery) Only(ctx context.Context) (*Community, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{community.Label}
	default:
		return nil, &NotSingularError{community.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CommunityQuery) OnlyX(ctx context.Context) *Community {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Community ID in the query.
// Returns a *NotSingularError when more than one Community ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CommunityQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{community.Label}
	default:
		err = &NotSingularError{community.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CommunityQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Communities.
func (_q *CommunityQuery) All(ctx context.Context) ([]*Community, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Community, *CommunityQuery]()
	return withInterceptors[[]*Community](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CommunityQuery) AllX(ctx context.Context) []*Community {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Community IDs.
func (_q *CommunityQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(community.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CommunityQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CommunityQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CommunityQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CommunityQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CommunityQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CommunityQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CommunityQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CommunityQuery) Clone() *CommunityQuery {
	if _q == nil {
		return nil
	}
	return &CommunityQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]community.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Community{}, _q.predicates...),
		withGateways:  _q.withGateways.Clone(),
		withMembers:   _q.withMembers.Clone(),
		withWorkflows: _q.withWorkflows.Clone(),
		withBotScore:  _q.withBotScore.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithGateways tells the query-builder to eager-load the nodes that are connected to
// the "gateways" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CommunityQuery) WithGateways(opts ...func(*GatewayQuery)) *CommunityQuery {
	query := (&GatewayClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGateways = query
	return _q
}

// WithMembers tells the query-builder to eager-load the nodes that are connected to
// the "members" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CommunityQuery) WithMembers(opts ...func(*MemberQuery)) *CommunityQuery {
	query := (&MemberClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMembers = query
	return _q
}

// WithWorkflows tells the query-builder to eager-load the nodes that are connected to
// the "workflows" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CommunityQuery) WithWorkflows(opts ...func(*WorkflowQuery)) *CommunityQuery {
	query := (&WorkflowClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWorkflows = query
	return _q
}

// WithBotScore tells the query-builder to eager-load the nodes that are connected to
// the "bot_score" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CommunityQuery) WithBotScore(opts ...func(*BotScoreQuery)) *CommunityQuery {
	query := (&BotScoreClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBotScore = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Community.Query().
//		GroupBy(community.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CommunityQuery) GroupBy(field string, fields ...string) *CommunityGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CommunityGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = community.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Community.Query().
//		Select(community.FieldName).
//		Scan(ctx, &v)
func (_q *CommunityQuery) Select(fields ...string) *CommunitySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CommunitySelect{CommunityQuery: _q}
	sbuild.label = community.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CommunitySelect configured with the given aggregations.
func (_q *CommunityQuery) Aggregate(fns ...AggregateFunc) *CommunitySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CommunityQuery) prepareQuery(ctx context.Context) error {
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
		if !community.ValidColumn(f) {
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

func (_q *CommunityQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Community, error) {
	var (
		nodes       = []*Community{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withGateways != nil,
			_q.withMembers != nil,
			_q.withWorkflows != nil,
			_q.withBotScore != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Community).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Community{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withGateways; query != nil {
		if err := _q.loadGateways(ctx, query, nodes,
			func(n *Community) { n.Edges.Gateways = []*Gateway{} },
			func(n *Community, e *Gateway) { n.Edges.Gateways = append(n.Edges.Gateways, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMembers; query != nil {
		if err := _q.loadMembers(ctx, query, nodes,
			func(n *Community) { n.Edges.Members = []*Member{} },
			func(n *Community, e *Member) { n.Edges.Members = append(n.Edges.Members, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWorkflows; query != nil {
		if err := _q.loadWorkflows(ctx, query, nodes,
			func(n *Community) { n.Edges.Workflows = []*Workflow{} },
			func(n *Community, e *Workflow) { n.Edges.Workflows = append(n.Edges.Workflows, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBotScore; query != nil {
		if err := _q.loadBotScore(ctx, query, nodes, nil,
			func(n *Community, e *BotScore) { n.Edges.BotScore = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CommunityQuery) loadGateways(ctx context.Context, query *GatewayQuery, nodes []*Community, init func(*Community), assign func(*Community, *Gateway)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Community)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(gateway.FieldCommunityID)
	}
	query.Where(predicate.Gateway(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(community.GatewaysColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CommunityID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "community_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CommunityQuery) loadMembers(ctx context.Context, query *MemberQuery, nodes []*Community, init func(*Community), assign func(*Community, *Member)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Community)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(member.FieldCommunityID)
	}
	query.Where(predicate.Member(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(community.MembersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CommunityID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "community_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CommunityQuery) loadWorkflows(ctx context.Context, query *WorkflowQuery, nodes []*Community, init func(*Community), assign func(*Community, *Workflow)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Community)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(workflow.FieldCommunityID)
	}
	query.Where(predicate.Workflow(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(community.WorkflowsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CommunityID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "community_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *CommunityQuery) loadBotScore(ctx context.Context, query *BotScoreQuery, nodes []*Community, init func(*Community), assign func(*Community, *BotScore)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Community)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(botscore.FieldCommunityID)
	}
	query.Where(predicate.BotScore(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(community.BotScoreColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.CommunityID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "community_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *CommunityQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CommunityQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(community.Table, community.Columns, sqlgraph.NewFieldSpec(community.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, community.FieldID)
		for i := range fields {
			if fields[i] != community.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *CommunityQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(community.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = community.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *CommunityQuery) ForUpdate(opts ...sql.LockOption) *CommunityQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *CommunityQuery) ForShare(opts ...sql.LockOption) *CommunityQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// CommunityGroupBy is the group-by builder for Community entities.
type CommunityGroupBy struct {
	selector
	build *CommunityQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CommunityGroupBy) Aggregate(fns ...AggregateFunc) *CommunityGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CommunityGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CommunityQuery, *CommunityGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CommunityGroupBy) sqlScan(ctx context.Context, root *CommunityQuery, v any) error {
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

// CommunitySelect is the builder for selecting fields of Community entities.
type CommunitySelect struct {
	*CommunityQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CommunitySelect) Aggregate(fns ...AggregateFunc) *CommunitySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CommunitySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CommunityQuery, *CommunitySelect](ctx, _s.CommunityQuery, _s, _s.inters, v)
}

func (_s *CommunitySelect) sqlScan(ctx context.Context, root *CommunityQuery, v any) error {
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
