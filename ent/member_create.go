// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/member"
)

// MemberCreate is the builder for creating a Member entity.
type MemberCreate struct {
	config
	mutation *MemberMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCommunityID sets the "community_id" field.
func (_c *MemberCreate) SetCommunityID(v string) *MemberCreate {
	_c.mutation.SetCommunityID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MemberCreate) SetUserID(v string) *MemberCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *MemberCreate) SetRole(v member.Role) *MemberCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *MemberCreate) SetNillableRole(v *member.Role) *MemberCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *MemberCreate) SetCapabilities(v []string) *MemberCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetJoinedAt sets the "joined_at" field.
func (_c *MemberCreate) SetJoinedAt(v time.Time) *MemberCreate {
	_c.mutation.SetJoinedAt(v)
	return _c
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_c *MemberCreate) SetNillableJoinedAt(v *time.Time) *MemberCreate {
	if v != nil {
		_c.SetJoinedAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *MemberCreate) SetLastSeenAt(v time.Time) *MemberCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *MemberCreate) SetNillableLastSeenAt(v *time.Time) *MemberCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetCommunity sets the "community" edge to the Community entity.
func (_c *MemberCreate) SetCommunity(v *Community) *MemberCreate {
	return _c.SetCommunityID(v.ID)
}

// Mutation returns the MemberMutation object of the builder.
func (_c *MemberCreate) Mutation() *MemberMutation {
	return _c.mutation
}

// Save creates the Member in the database.
func (_c *MemberCreate) Save(ctx context.Context) (*Member, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemberCreate) SaveX(ctx context.Context) *Member {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemberCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := member.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		v := member.DefaultJoinedAt()
		_c.mutation.SetJoinedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemberCreate) check() error {
	if _, ok := _c.mutation.CommunityID(); !ok {
		return &ValidationError{Name: "community_id", err: errors.New(`ent: missing required field "Member.community_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Member.user_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Member.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := member.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Member.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		return &ValidationError{Name: "joined_at", err: errors.New(`ent: missing required field "Member.joined_at"`)}
	}
	if len(_c.mutation.CommunityIDs()) == 0 {
		return &ValidationError{Name: "community", err: errors.New(`ent: missing required edge "Member.community"`)}
	}
	return nil
}

func (_c *MemberCreate) sqlSave(ctx context.Context) (*Member, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MemberCreate) createSpec() (*Member, *sqlgraph.CreateSpec) {
	var (
		_node = &Member{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(member.Table, sqlgraph.NewFieldSpec(member.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(member.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(member.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(member.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.JoinedAt(); ok {
		_spec.SetField(member.FieldJoinedAt, field.TypeTime, value)
		_node.JoinedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(member.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = &value
	}
	if nodes := _c.mutation.CommunityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   member.CommunityTable,
			Columns: []string{member.CommunityColumn},
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
//	client.Member.Create().
//		SetCommunityID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MemberUpsert) {
//			SetCommunityID(v+v).
//		}).
//		Exec(ctx)
func (_c *MemberCreate) OnConflict(opts ...sql.ConflictOption) *MemberUpsertOne {
	_c.conflict = opts
	return &MemberUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Member.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MemberCreate) OnConflictColumns(columns ...string) *MemberUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MemberUpsertOne{
		create: _c,
	}
}

type (
	// MemberUpsertOne is the builder for "upsert"-ing
	//  one Member node.
	MemberUpsertOne struct {
		create *MemberCreate
	}

	// MemberUpsert is the "OnConflict" setter.
	MemberUpsert struct {
		*sql.UpdateSet
	}
)

// SetCommunityID sets the "community_id" field.
func (u *MemberUpsert) SetCommunityID(v string) *MemberUpsert {
	u.Set(member.FieldCommunityID, v)
	return u
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *MemberUpsert) UpdateCommunityID() *MemberUpsert {
	u.SetExcluded(member.FieldCommunityID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *MemberUpsert) SetUserID(v string) *MemberUpsert {
	u.Set(member.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MemberUpsert) UpdateUserID() *MemberUpsert {
	u.SetExcluded(member.FieldUserID)
	return u
}

// SetRole sets the "role" field.
func (u *MemberUpsert) SetRole(v member.Role) *MemberUpsert {
	u.Set(member.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MemberUpsert) UpdateRole() *MemberUpsert {
	u.SetExcluded(member.FieldRole)
	return u
}

// SetCapabilities sets the "capabilities" field.
func (u *MemberUpsert) SetCapabilities(v []string) *MemberUpsert {
	u.Set(member.FieldCapabilities, v)
	return u
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *MemberUpsert) UpdateCapabilities() *MemberUpsert {
	u.SetExcluded(member.FieldCapabilities)
	return u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *MemberUpsert) ClearCapabilities() *MemberUpsert {
	u.SetNull(member.FieldCapabilities)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *MemberUpsert) SetLastSeenAt(v time.Time) *MemberUpsert {
	u.Set(member.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *MemberUpsert) UpdateLastSeenAt() *MemberUpsert {
	u.SetExcluded(member.FieldLastSeenAt)
	return u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (u *MemberUpsert) ClearLastSeenAt() *MemberUpsert {
	u.SetNull(member.FieldLastSeenAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Member.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MemberUpsertOne) UpdateNewValues() *MemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.JoinedAt(); exists {
			s.SetIgnore(member.FieldJoinedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Member.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MemberUpsertOne) Ignore() *MemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MemberUpsertOne) DoNothing() *MemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MemberCreate.OnConflict
// documentation for more info.
func (u *MemberUpsertOne) Update(set func(*MemberUpsert)) *MemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetCommunityID sets the "community_id" field.
func (u *MemberUpsertOne) SetCommunityID(v string) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetCommunityID(v)
	})
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateCommunityID() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateCommunityID()
	})
}

// SetUserID sets the "user_id" field.
func (u *MemberUpsertOne) SetUserID(v string) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateUserID() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateUserID()
	})
}

// SetRole sets the "role" field.
func (u *MemberUpsertOne) SetRole(v member.Role) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateRole() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateRole()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *MemberUpsertOne) SetCapabilities(v []string) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateCapabilities() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *MemberUpsertOne) ClearCapabilities() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.ClearCapabilities()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *MemberUpsertOne) SetLastSeenAt(v time.Time) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateLastSeenAt() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateLastSeenAt()
	})
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (u *MemberUpsertOne) ClearLastSeenAt() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.ClearLastSeenAt()
	})
}

// Exec executes the query.
func (u *MemberUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MemberCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MemberUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MemberUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MemberUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MemberCreateBulk is the builder for creating many Member entities in bulk.
type MemberCreateBulk struct {
	config
	err      error
	builders []*MemberCreate
	conflict []sql.ConflictOption
}

// Save creates the Member entities in the database.
func (_c *MemberCreateBulk) Save(ctx context.Context) ([]*Member, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Member, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemberMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *MemberCreateBulk) SaveX(ctx context.Context) []*Member {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Member.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MemberUpsert) {
//			SetCommunityID(v+v).
//		}).
//		Exec(ctx)
func (_c *MemberCreateBulk) OnConflict(opts ...sql.ConflictOption) *MemberUpsertBulk {
	_c.conflict = opts
	return &MemberUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Member.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MemberCreateBulk) OnConflictColumns(columns ...string) *MemberUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MemberUpsertBulk{
		create: _c,
	}
}

// MemberUpsertBulk is the builder for "upsert"-ing
// a bulk of Member nodes.
type MemberUpsertBulk struct {
	create *MemberCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Member.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MemberUpsertBulk) UpdateNewValues() *MemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.JoinedAt(); exists {
				s.SetIgnore(member.FieldJoinedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Member.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MemberUpsertBulk) Ignore() *MemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MemberUpsertBulk) DoNothing() *MemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MemberCreateBulk.OnConflict
// documentation for more info.
func (u *MemberUpsertBulk) Update(set func(*MemberUpsert)) *MemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetCommunityID sets the "community_id" field.
func (u *MemberUpsertBulk) SetCommunityID(v string) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetCommunityID(v)
	})
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateCommunityID() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateCommunityID()
	})
}

// SetUserID sets the "user_id" field.
func (u *MemberUpsertBulk) SetUserID(v string) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateUserID() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateUserID()
	})
}

// SetRole sets the "role" field.
func (u *MemberUpsertBulk) SetRole(v member.Role) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateRole() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateRole()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *MemberUpsertBulk) SetCapabilities(v []string) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateCapabilities() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *MemberUpsertBulk) ClearCapabilities() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.ClearCapabilities()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *MemberUpsertBulk) SetLastSeenAt(v time.Time) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateLastSeenAt() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateLastSeenAt()
	})
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (u *MemberUpsertBulk) ClearLastSeenAt() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.ClearLastSeenAt()
	})
}

// Exec executes the query.
func (u *MemberUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MemberCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MemberCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MemberUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
