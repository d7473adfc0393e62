// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/waddlebot/waddlebot-core/ent/botscore"
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/gateway"
	"github.com/waddlebot/waddlebot-core/ent/member"
	"github.com/waddlebot/waddlebot-core/ent/workflow"
)

// CommunityCreate is the builder for creating a Community entity.
type CommunityCreate struct {
	config
	mutation *CommunityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *CommunityCreate) SetName(v string) *CommunityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *CommunityCreate) SetOwnerID(v string) *CommunityCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetSettings sets the "settings" field.
func (_c *CommunityCreate) SetSettings(v map[string]interface{}) *CommunityCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommunityCreate) SetCreatedAt(v time.Time) *CommunityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommunityCreate) SetNillableCreatedAt(v *time.Time) *CommunityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CommunityCreate) SetUpdatedAt(v time.Time) *CommunityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CommunityCreate) SetNillableUpdatedAt(v *time.Time) *CommunityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommunityCreate) SetID(v string) *CommunityCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddGatewayIDs adds the "gateways" edge to the Gateway entity by IDs.
func (_c *CommunityCreate) AddGatewayIDs(ids ...string) *CommunityCreate {
	_c.mutation.AddGatewayIDs(ids...)
	return _c
}

// AddGateways adds the "gateways" edges to the Gateway entity.
func (_c *CommunityCreate) AddGateways(v ...*Gateway) *CommunityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGatewayIDs(ids...)
}

// AddMemberIDs adds the "members" edge to the Member entity by IDs.
func (_c *CommunityCreate) AddMemberIDs(ids ...int) *CommunityCreate {
	_c.mutation.AddMemberIDs(ids...)
	return _c
}

// AddMembers adds the "members" edges to the Member entity.
func (_c *CommunityCreate) AddMembers(v ...*Member) *CommunityCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemberIDs(ids...)
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by IDs.
func (_c *CommunityCreate) AddWorkflowIDs(ids ...string) *CommunityCreate {
	_c.mutation.AddWorkflowIDs(ids...)
	return _c
}

// AddWorkflows adds the "workflows" edges to the Workflow entity.
func (_c *CommunityCreate) AddWorkflows(v ...*Workflow) *CommunityCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWorkflowIDs(ids...)
}

// SetBotScoreID sets the "bot_score" edge to the BotScore entity by ID.
func (_c *CommunityCreate) SetBotScoreID(id int) *CommunityCreate {
	_c.mutation.SetBotScoreID(id)
	return _c
}

// SetNillableBotScoreID sets the "bot_score" edge to the BotScore entity by ID if the given value is not nil.
func (_c *CommunityCreate) SetNillableBotScoreID(id *int) *CommunityCreate {
	if id != nil {
		_c = _c.SetBotScoreID(*id)
	}
	return _c
}

// SetBotScore sets the "bot_score" edge to the BotScore entity.
func (_c *CommunityCreate) SetBotScore(v *BotScore) *CommunityCreate {
	return _c.SetBotScoreID(v.ID)
}

// Mutation returns the CommunityMutation object of the builder.
func (_c *CommunityCreate) Mutation() *CommunityMutation {
	return _c.mutation
}

// Save creates the Community in the database.
func (_c *CommunityCreate) Save(ctx context.Context) (*Community, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommunityCreate) SaveX(ctx context.Context) *Community {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommunityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommunityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommunityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := community.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := community.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommunityCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Community.name"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Community.owner_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Community.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Community.updated_at"`)}
	}
	return nil
}

func (_c *CommunityCreate) sqlSave(ctx context.Context) (*Community, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Community.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommunityCreate) createSpec() (*Community, *sqlgraph.CreateSpec) {
	var (
		_node = &Community{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(community.Table, sqlgraph.NewFieldSpec(community.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(community.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(community.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(community.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(community.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(community.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.GatewaysIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   community.GatewaysTable,
			Columns: []string{community.GatewaysColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gateway.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   community.MembersTable,
			Columns: []string{community.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(member.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WorkflowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   community.WorkflowsTable,
			Columns: []string{community.WorkflowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BotScoreIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   community.BotScoreTable,
			Columns: []string{community.BotScoreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botscore.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Community.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommunityUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CommunityCreate) OnConflict(opts ...sql.ConflictOption) *CommunityUpsertOne {
	_c.conflict = opts
	return &CommunityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Community.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommunityCreate) OnConflictColumns(columns ...string) *CommunityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommunityUpsertOne{
		create: _c,
	}
}

type (
	// CommunityUpsertOne is the builder for "upsert"-ing
	//  one Community node.
	CommunityUpsertOne struct {
		create *CommunityCreate
	}

	// CommunityUpsert is the "OnConflict" setter.
	CommunityUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *CommunityUpsert) SetName(v string) *CommunityUpsert {
	u.Set(community.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CommunityUpsert) UpdateName() *CommunityUpsert {
	u.SetExcluded(community.FieldName)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *CommunityUpsert) SetOwnerID(v string) *CommunityUpsert {
	u.Set(community.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *CommunityUpsert) UpdateOwnerID() *CommunityUpsert {
	u.SetExcluded(community.FieldOwnerID)
	return u
}

// SetSettings sets the "settings" field.
func (u *CommunityUpsert) SetSettings(v map[string]interface{}) *CommunityUpsert {
	u.Set(community.FieldSettings, v)
	return u
}

// UpdateSettings sets the "settings" field to the value that was provided on create.
func (u *CommunityUpsert) UpdateSettings() *CommunityUpsert {
	u.SetExcluded(community.FieldSettings)
	return u
}

// ClearSettings clears the value of the "settings" field.
func (u *CommunityUpsert) ClearSettings() *CommunityUpsert {
	u.SetNull(community.FieldSettings)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommunityUpsert) SetUpdatedAt(v time.Time) *CommunityUpsert {
	u.Set(community.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommunityUpsert) UpdateUpdatedAt() *CommunityUpsert {
	u.SetExcluded(community.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Community.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(community.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommunityUpsertOne) UpdateNewValues() *CommunityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(community.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(community.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Community.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CommunityUpsertOne) Ignore() *CommunityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommunityUpsertOne) DoNothing() *CommunityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommunityCreate.OnConflict
// documentation for more info.
func (u *CommunityUpsertOne) Update(set func(*CommunityUpsert)) *CommunityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommunityUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CommunityUpsertOne) SetName(v string) *CommunityUpsertOne {
	return u.Update(func(s *CommunityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CommunityUpsertOne) UpdateName() *CommunityUpsertOne {
	return u.Update(func(s *CommunityUpsert) {
		s.UpdateName()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *CommunityUpsertOne) SetOwnerID(v string) *CommunityUpsertOne {
	return u.Update(func(s *CommunityUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *CommunityUpsertOne) UpdateOwnerID() *CommunityUpsertOne {
	return u.Update(func(s *CommunityUpsert) {
		s.UpdateOwnerID()
	})
}

// SetSettings sets the "settings" field.
func (u *CommunityUpsertOne) SetSettings(v map[string]interface{}) *CommunityUpsertOne {
	return u.Update(func(s *CommunityUpsert) {
		s.SetSettings(v)
	})
}

// UpdateSettings sets the "settings" field to the value that was provided on create.
func (u *CommunityUpsertOne) UpdateSettings() *CommunityUpsertOne {
	return u.Update(func(s *CommunityUpsert) {
		s.UpdateSettings()
	})
}

// ClearSettings clears the value of the "settings" field.
func (u *CommunityUpsertOne) ClearSettings() *CommunityUpsertOne {
	return u.Update(func(s *CommunityUpsert) {
		s.ClearSettings()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommunityUpsertOne) SetUpdatedAt(v time.Time) *CommunityUpsertOne {
	return u.Update(func(s *CommunityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommunityUpsertOne) UpdateUpdatedAt() *CommunityUpsertOne {
	return u.Update(func(s *CommunityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CommunityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommunityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommunityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CommunityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CommunityUpsertOne.ID is not supported by MySQL driver. Use CommunityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CommunityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CommunityCreateBulk is the builder for creating many Community entities in bulk.
type CommunityCreateBulk struct {
	config
	err      error
	builders []*CommunityCreate
	conflict []sql.ConflictOption
}

// Save creates the Community entities in the database.
func (_c *CommunityCreateBulk) Save(ctx context.Context) ([]*Community, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Community, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommunityMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CommunityCreateBulk) SaveX(ctx context.Context) []*Community {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommunityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommunityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Community.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CommunityUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CommunityCreateBulk) OnConflict(opts ...sql.ConflictOption) *CommunityUpsertBulk {
	_c.conflict = opts
	return &CommunityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Community.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CommunityCreateBulk) OnConflictColumns(columns ...string) *CommunityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CommunityUpsertBulk{
		create: _c,
	}
}

// CommunityUpsertBulk is the builder for "upsert"-ing
// a bulk of Community nodes.
type CommunityUpsertBulk struct {
	create *CommunityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Community.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(community.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CommunityUpsertBulk) UpdateNewValues() *CommunityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(community.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(community.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Community.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CommunityUpsertBulk) Ignore() *CommunityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CommunityUpsertBulk) DoNothing() *CommunityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CommunityCreateBulk.OnConflict
// documentation for more info.
func (u *CommunityUpsertBulk) Update(set func(*CommunityUpsert)) *CommunityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CommunityUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CommunityUpsertBulk) SetName(v string) *CommunityUpsertBulk {
	return u.Update(func(s *CommunityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CommunityUpsertBulk) UpdateName() *CommunityUpsertBulk {
	return u.Update(func(s *CommunityUpsert) {
		s.UpdateName()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *CommunityUpsertBulk) SetOwnerID(v string) *CommunityUpsertBulk {
	return u.Update(func(s *CommunityUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *CommunityUpsertBulk) UpdateOwnerID() *CommunityUpsertBulk {
	return u.Update(func(s *CommunityUpsert) {
		s.UpdateOwnerID()
	})
}

// SetSettings sets the "settings" field.
func (u *CommunityUpsertBulk) SetSettings(v map[string]interface{}) *CommunityUpsertBulk {
	return u.Update(func(s *CommunityUpsert) {
		s.SetSettings(v)
	})
}

// UpdateSettings sets the "settings" field to the value that was provided on create.
func (u *CommunityUpsertBulk) UpdateSettings() *CommunityUpsertBulk {
	return u.Update(func(s *CommunityUpsert) {
		s.UpdateSettings()
	})
}

// ClearSettings clears the value of the "settings" field.
func (u *CommunityUpsertBulk) ClearSettings() *CommunityUpsertBulk {
	return u.Update(func(s *CommunityUpsert) {
		s.ClearSettings()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CommunityUpsertBulk) SetUpdatedAt(v time.Time) *CommunityUpsertBulk {
	return u.Update(func(s *CommunityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CommunityUpsertBulk) UpdateUpdatedAt() *CommunityUpsertBulk {
	return u.Update(func(s *CommunityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CommunityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CommunityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CommunityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CommunityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
