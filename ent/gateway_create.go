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
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/gateway"
)

// GatewayCreate is the builder for creating a Gateway entity.
type GatewayCreate struct {
	config
	mutation *GatewayMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlatform sets the "platform" field.
func (_c *GatewayCreate) SetPlatform(v gateway.Platform) *GatewayCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetServerID sets the "server_id" field.
func (_c *GatewayCreate) SetServerID(v string) *GatewayCreate {
	_c.mutation.SetServerID(v)
	return _c
}

// SetChannelID sets the "channel_id" field.
func (_c *GatewayCreate) SetChannelID(v string) *GatewayCreate {
	_c.mutation.SetChannelID(v)
	return _c
}

// SetCommunityID sets the "community_id" field.
func (_c *GatewayCreate) SetCommunityID(v string) *GatewayCreate {
	_c.mutation.SetCommunityID(v)
	return _c
}

// SetActivationCode sets the "activation_code" field.
func (_c *GatewayCreate) SetActivationCode(v string) *GatewayCreate {
	_c.mutation.SetActivationCode(v)
	return _c
}

// SetActivated sets the "activated" field.
func (_c *GatewayCreate) SetActivated(v bool) *GatewayCreate {
	_c.mutation.SetActivated(v)
	return _c
}

// SetNillableActivated sets the "activated" field if the given value is not nil.
func (_c *GatewayCreate) SetNillableActivated(v *bool) *GatewayCreate {
	if v != nil {
		_c.SetActivated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GatewayCreate) SetCreatedAt(v time.Time) *GatewayCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GatewayCreate) SetNillableCreatedAt(v *time.Time) *GatewayCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetActivatedAt sets the "activated_at" field.
func (_c *GatewayCreate) SetActivatedAt(v time.Time) *GatewayCreate {
	_c.mutation.SetActivatedAt(v)
	return _c
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_c *GatewayCreate) SetNillableActivatedAt(v *time.Time) *GatewayCreate {
	if v != nil {
		_c.SetActivatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GatewayCreate) SetID(v string) *GatewayCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCommunity sets the "community" edge to the Community entity.
func (_c *GatewayCreate) SetCommunity(v *Community) *GatewayCreate {
	return _c.SetCommunityID(v.ID)
}

// Mutation returns the GatewayMutation object of the builder.
func (_c *GatewayCreate) Mutation() *GatewayMutation {
	return _c.mutation
}

// Save creates the Gateway in the database.
func (_c *GatewayCreate) Save(ctx context.Context) (*Gateway, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GatewayCreate) SaveX(ctx context.Context) *Gateway {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GatewayCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GatewayCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GatewayCreate) defaults() {
	if _, ok := _c.mutation.Activated(); !ok {
		v := gateway.DefaultActivated
		_c.mutation.SetActivated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := gateway.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GatewayCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Gateway.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := gateway.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Gateway.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ServerID(); !ok {
		return &ValidationError{Name: "server_id", err: errors.New(`ent: missing required field "Gateway.server_id"`)}
	}
	if _, ok := _c.mutation.ChannelID(); !ok {
		return &ValidationError{Name: "channel_id", err: errors.New(`ent: missing required field "Gateway.channel_id"`)}
	}
	if _, ok := _c.mutation.CommunityID(); !ok {
		return &ValidationError{Name: "community_id", err: errors.New(`ent: missing required field "Gateway.community_id"`)}
	}
	if _, ok := _c.mutation.ActivationCode(); !ok {
		return &ValidationError{Name: "activation_code", err: errors.New(`ent: missing required field "Gateway.activation_code"`)}
	}
	if _, ok := _c.mutation.Activated(); !ok {
		return &ValidationError{Name: "activated", err: errors.New(`ent: missing required field "Gateway.activated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Gateway.created_at"`)}
	}
	if len(_c.mutation.CommunityIDs()) == 0 {
		return &ValidationError{Name: "community", err: errors.New(`ent: missing required edge "Gateway.community"`)}
	}
	return nil
}

func (_c *GatewayCreate) sqlSave(ctx context.Context) (*Gateway, error) {
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
			return nil, fmt.Errorf("unexpected Gateway.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GatewayCreate) createSpec() (*Gateway, *sqlgraph.CreateSpec) {
	var (
		_node = &Gateway{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gateway.Table, sqlgraph.NewFieldSpec(gateway.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(gateway.FieldPlatform, field.TypeEnum, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.ServerID(); ok {
		_spec.SetField(gateway.FieldServerID, field.TypeString, value)
		_node.ServerID = value
	}
	if value, ok := _c.mutation.ChannelID(); ok {
		_spec.SetField(gateway.FieldChannelID, field.TypeString, value)
		_node.ChannelID = value
	}
	if value, ok := _c.mutation.ActivationCode(); ok {
		_spec.SetField(gateway.FieldActivationCode, field.TypeString, value)
		_node.ActivationCode = value
	}
	if value, ok := _c.mutation.Activated(); ok {
		_spec.SetField(gateway.FieldActivated, field.TypeBool, value)
		_node.Activated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(gateway.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ActivatedAt(); ok {
		_spec.SetField(gateway.FieldActivatedAt, field.TypeTime, value)
		_node.ActivatedAt = &value
	}
	if nodes := _c.mutation.CommunityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gateway.CommunityTable,
			Columns: []string{gateway.CommunityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(community.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CommunityID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Gateway.Create().
//		SetPlatform(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GatewayUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *GatewayCreate) OnConflict(opts ...sql.ConflictOption) *GatewayUpsertOne {
	_c.conflict = opts
	return &GatewayUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Gateway.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GatewayCreate) OnConflictColumns(columns ...string) *GatewayUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GatewayUpsertOne{
		create: _c,
	}
}

type (
	// GatewayUpsertOne is the builder for "upsert"-ing
	//  one Gateway node.
	GatewayUpsertOne struct {
		create *GatewayCreate
	}

	// GatewayUpsert is the "OnConflict" setter.
	GatewayUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlatform sets the "platform" field.
func (u *GatewayUpsert) SetPlatform(v gateway.Platform) *GatewayUpsert {
	u.Set(gateway.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *GatewayUpsert) UpdatePlatform() *GatewayUpsert {
	u.SetExcluded(gateway.FieldPlatform)
	return u
}

// SetServerID sets the "server_id" field.
func (u *GatewayUpsert) SetServerID(v string) *GatewayUpsert {
	u.Set(gateway.FieldServerID, v)
	return u
}

// UpdateServerID sets the "server_id" field to the value that was provided on create.
func (u *GatewayUpsert) UpdateServerID() *GatewayUpsert {
	u.SetExcluded(gateway.FieldServerID)
	return u
}

// SetChannelID sets the "channel_id" field.
func (u *GatewayUpsert) SetChannelID(v string) *GatewayUpsert {
	u.Set(gateway.FieldChannelID, v)
	return u
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *GatewayUpsert) UpdateChannelID() *GatewayUpsert {
	u.SetExcluded(gateway.FieldChannelID)
	return u
}

// SetCommunityID sets the "community_id" field.
func (u *GatewayUpsert) SetCommunityID(v string) *GatewayUpsert {
	u.Set(gateway.FieldCommunityID, v)
	return u
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *GatewayUpsert) UpdateCommunityID() *GatewayUpsert {
	u.SetExcluded(gateway.FieldCommunityID)
	return u
}

// SetActivationCode sets the "activation_code" field.
func (u *GatewayUpsert) SetActivationCode(v string) *GatewayUpsert {
	u.Set(gateway.FieldActivationCode, v)
	return u
}

// UpdateActivationCode sets the "activation_code" field to the value that was provided on create.
func (u *GatewayUpsert) UpdateActivationCode() *GatewayUpsert {
	u.SetExcluded(gateway.FieldActivationCode)
	return u
}

// SetActivated sets the "activated" field.
func (u *GatewayUpsert) SetActivated(v bool) *GatewayUpsert {
	u.Set(gateway.FieldActivated, v)
	return u
}

// UpdateActivated sets the "activated" field to the value that was provided on create.
func (u *GatewayUpsert) UpdateActivated() *GatewayUpsert {
	u.SetExcluded(gateway.FieldActivated)
	return u
}

// SetActivatedAt sets the "activated_at" field.
func (u *GatewayUpsert) SetActivatedAt(v time.Time) *GatewayUpsert {
	u.Set(gateway.FieldActivatedAt, v)
	return u
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *GatewayUpsert) UpdateActivatedAt() *GatewayUpsert {
	u.SetExcluded(gateway.FieldActivatedAt)
	return u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *GatewayUpsert) ClearActivatedAt() *GatewayUpsert {
	u.SetNull(gateway.FieldActivatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Gateway.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gateway.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GatewayUpsertOne) UpdateNewValues() *GatewayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(gateway.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(gateway.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Gateway.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GatewayUpsertOne) Ignore() *GatewayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GatewayUpsertOne) DoNothing() *GatewayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GatewayCreate.OnConflict
// documentation for more info.
func (u *GatewayUpsertOne) Update(set func(*GatewayUpsert)) *GatewayUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GatewayUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *GatewayUpsertOne) SetPlatform(v gateway.Platform) *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *GatewayUpsertOne) UpdatePlatform() *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdatePlatform()
	})
}

// SetServerID sets the "server_id" field.
func (u *GatewayUpsertOne) SetServerID(v string) *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.SetServerID(v)
	})
}

// UpdateServerID sets the "server_id" field to the value that was provided on create.
func (u *GatewayUpsertOne) UpdateServerID() *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateServerID()
	})
}

// SetChannelID sets the "channel_id" field.
func (u *GatewayUpsertOne) SetChannelID(v string) *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.SetChannelID(v)
	})
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *GatewayUpsertOne) UpdateChannelID() *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateChannelID()
	})
}

// SetCommunityID sets the "community_id" field.
func (u *GatewayUpsertOne) SetCommunityID(v string) *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.SetCommunityID(v)
	})
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *GatewayUpsertOne) UpdateCommunityID() *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateCommunityID()
	})
}

// SetActivationCode sets the "activation_code" field.
func (u *GatewayUpsertOne) SetActivationCode(v string) *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.SetActivationCode(v)
	})
}

// UpdateActivationCode sets the "activation_code" field to the value that was provided on create.
func (u *GatewayUpsertOne) UpdateActivationCode() *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateActivationCode()
	})
}

// SetActivated sets the "activated" field.
func (u *GatewayUpsertOne) SetActivated(v bool) *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.SetActivated(v)
	})
}

// UpdateActivated sets the "activated" field to the value that was provided on create.
func (u *GatewayUpsertOne) UpdateActivated() *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateActivated()
	})
}

// SetActivatedAt sets the "activated_at" field.
func (u *GatewayUpsertOne) SetActivatedAt(v time.Time) *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.SetActivatedAt(v)
	})
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *GatewayUpsertOne) UpdateActivatedAt() *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateActivatedAt()
	})
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *GatewayUpsertOne) ClearActivatedAt() *GatewayUpsertOne {
	return u.Update(func(s *GatewayUpsert) {
		s.ClearActivatedAt()
	})
}

// Exec executes the query.
func (u *GatewayUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GatewayCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GatewayUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GatewayUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GatewayUpsertOne.ID is not supported by MySQL driver. Use GatewayUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GatewayUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GatewayCreateBulk is the builder for creating many Gateway entities in bulk.
type GatewayCreateBulk struct {
	config
	err      error
	builders []*GatewayCreate
	conflict []sql.ConflictOption
}

// Save creates the Gateway entities in the database.
func (_c *GatewayCreateBulk) Save(ctx context.Context) ([]*Gateway, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Gateway, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GatewayMutation)
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
func (_c *GatewayCreateBulk) SaveX(ctx context.Context) []*Gateway {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GatewayCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GatewayCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Gateway.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GatewayUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *GatewayCreateBulk) OnConflict(opts ...sql.ConflictOption) *GatewayUpsertBulk {
	_c.conflict = opts
	return &GatewayUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Gateway.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GatewayCreateBulk) OnConflictColumns(columns ...string) *GatewayUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GatewayUpsertBulk{
		create: _c,
	}
}

// GatewayUpsertBulk is the builder for "upsert"-ing
// a bulk of Gateway nodes.
type GatewayUpsertBulk struct {
	create *GatewayCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Gateway.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(gateway.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GatewayUpsertBulk) UpdateNewValues() *GatewayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(gateway.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(gateway.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Gateway.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GatewayUpsertBulk) Ignore() *GatewayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GatewayUpsertBulk) DoNothing() *GatewayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GatewayCreateBulk.OnConflict
// documentation for more info.
func (u *GatewayUpsertBulk) Update(set func(*GatewayUpsert)) *GatewayUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GatewayUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *GatewayUpsertBulk) SetPlatform(v gateway.Platform) *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *GatewayUpsertBulk) UpdatePlatform() *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdatePlatform()
	})
}

// SetServerID sets the "server_id" field.
func (u *GatewayUpsertBulk) SetServerID(v string) *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.SetServerID(v)
	})
}

// UpdateServerID sets the "server_id" field to the value that was provided on create.
func (u *GatewayUpsertBulk) UpdateServerID() *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateServerID()
	})
}

// SetChannelID sets the "channel_id" field.
func (u *GatewayUpsertBulk) SetChannelID(v string) *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.SetChannelID(v)
	})
}

// UpdateChannelID sets the "channel_id" field to the value that was provided on create.
func (u *GatewayUpsertBulk) UpdateChannelID() *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateChannelID()
	})
}

// SetCommunityID sets the "community_id" field.
func (u *GatewayUpsertBulk) SetCommunityID(v string) *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.SetCommunityID(v)
	})
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *GatewayUpsertBulk) UpdateCommunityID() *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateCommunityID()
	})
}

// SetActivationCode sets the "activation_code" field.
func (u *GatewayUpsertBulk) SetActivationCode(v string) *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.SetActivationCode(v)
	})
}

// UpdateActivationCode sets the "activation_code" field to the value that was provided on create.
func (u *GatewayUpsertBulk) UpdateActivationCode() *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateActivationCode()
	})
}

// SetActivated sets the "activated" field.
func (u *GatewayUpsertBulk) SetActivated(v bool) *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.SetActivated(v)
	})
}

// UpdateActivated sets the "activated" field to the value that was provided on create.
func (u *GatewayUpsertBulk) UpdateActivated() *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateActivated()
	})
}

// SetActivatedAt sets the "activated_at" field.
func (u *GatewayUpsertBulk) SetActivatedAt(v time.Time) *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.SetActivatedAt(v)
	})
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *GatewayUpsertBulk) UpdateActivatedAt() *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.UpdateActivatedAt()
	})
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *GatewayUpsertBulk) ClearActivatedAt() *GatewayUpsertBulk {
	return u.Update(func(s *GatewayUpsert) {
		s.ClearActivatedAt()
	})
}

// Exec executes the query.
func (u *GatewayUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GatewayCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GatewayCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GatewayUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
