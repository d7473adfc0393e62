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
	"github.com/waddlebot/waddlebot-core/ent/gateway"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
)

// GatewayUpdate is the builder for updating Gateway entities.
type GatewayUpdate struct {
	config
	hooks    []Hook
	mutation *GatewayMutation
}

// Where appends a list predicates to the GatewayUpdate builder.
func (_u *GatewayUpdate) Where(ps ...predicate.Gateway) *GatewayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *GatewayUpdate) SetPlatform(v gateway.Platform) *GatewayUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *GatewayUpdate) SetNillablePlatform(v *gateway.Platform) *GatewayUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetServerID sets the "server_id" field.
func (_u *GatewayUpdate) SetServerID(v string) *GatewayUpdate {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *GatewayUpdate) SetNillableServerID(v *string) *GatewayUpdate {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *GatewayUpdate) SetChannelID(v string) *GatewayUpdate {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *GatewayUpdate) SetNillableChannelID(v *string) *GatewayUpdate {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetCommunityID sets the "community_id" field.
func (_u *GatewayUpdate) SetCommunityID(v string) *GatewayUpdate {
	_u.mutation.SetCommunityID(v)
	return _u
}

// SetNillableCommunityID sets the "community_id" field if the given value is not nil.
func (_u *GatewayUpdate) SetNillableCommunityID(v *string) *GatewayUpdate {
	if v != nil {
		_u.SetCommunityID(*v)
	}
	return _u
}

// SetActivationCode sets the "activation_code" field.
func (_u *GatewayUpdate) SetActivationCode(v string) *GatewayUpdate {
	_u.mutation.SetActivationCode(v)
	return _u
}

// SetNillableActivationCode sets the "activation_code" field if the given value is not nil.
func (_u *GatewayUpdate) SetNillableActivationCode(v *string) *GatewayUpdate {
	if v != nil {
		_u.SetActivationCode(*v)
	}
	return _u
}

// SetActivated sets the "activated" field.
func (_u *GatewayUpdate) SetActivated(v bool) *GatewayUpdate {
	_u.mutation.SetActivated(v)
	return _u
}

// SetNillableActivated sets the "activated" field if the given value is not nil.
func (_u *GatewayUpdate) SetNillableActivated(v *bool) *GatewayUpdate {
	if v != nil {
		_u.SetActivated(*v)
	}
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *GatewayUpdate) SetActivatedAt(v time.Time) *GatewayUpdate {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *GatewayUpdate) SetNillableActivatedAt(v *time.Time) *GatewayUpdate {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *GatewayUpdate) ClearActivatedAt() *GatewayUpdate {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetCommunity sets the "community" edge to the Community entity.
func (_u *GatewayUpdate) SetCommunity(v *Community) *GatewayUpdate {
	return _u.SetCommunityID(v.ID)
}

// Mutation returns the GatewayMutation object of the builder.
func (_u *GatewayUpdate) Mutation() *GatewayMutation {
	return _u.mutation
}

// ClearCommunity clears the "community" edge to the Community entity.
func (_u *GatewayUpdate) ClearCommunity() *GatewayUpdate {
	_u.mutation.ClearCommunity()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GatewayUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GatewayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GatewayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GatewayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GatewayUpdate) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := gateway.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Gateway.platform": %w`, err)}
		}
	}
	if _u.mutation.CommunityCleared() && len(_u.mutation.CommunityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Gateway.community"`)
	}
	return nil
}

func (_u *GatewayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gateway.Table, gateway.Columns, sqlgraph.NewFieldSpec(gateway.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(gateway.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ServerID(); ok {
		_spec.SetField(gateway.FieldServerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(gateway.FieldChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivationCode(); ok {
		_spec.SetField(gateway.FieldActivationCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Activated(); ok {
		_spec.SetField(gateway.FieldActivated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(gateway.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(gateway.FieldActivatedAt, field.TypeTime)
	}
	if _u.mutation.CommunityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommunityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gateway.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GatewayUpdateOne is the builder for updating a single Gateway entity.
type GatewayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GatewayMutation
}

// SetPlatform sets the "platform" field.
func (_u *GatewayUpdateOne) SetPlatform(v gateway.Platform) *GatewayUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *GatewayUpdateOne) SetNillablePlatform(v *gateway.Platform) *GatewayUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetServerID sets the "server_id" field.
func (_u *GatewayUpdateOne) SetServerID(v string) *GatewayUpdateOne {
	_u.mutation.SetServerID(v)
	return _u
}

// SetNillableServerID sets the "server_id" field if the given value is not nil.
func (_u *GatewayUpdateOne) SetNillableServerID(v *string) *GatewayUpdateOne {
	if v != nil {
		_u.SetServerID(*v)
	}
	return _u
}

// SetChannelID sets the "channel_id" field.
func (_u *GatewayUpdateOne) SetChannelID(v string) *GatewayUpdateOne {
	_u.mutation.SetChannelID(v)
	return _u
}

// SetNillableChannelID sets the "channel_id" field if the given value is not nil.
func (_u *GatewayUpdateOne) SetNillableChannelID(v *string) *GatewayUpdateOne {
	if v != nil {
		_u.SetChannelID(*v)
	}
	return _u
}

// SetCommunityID sets the "community_id" field.
func (_u *GatewayUpdateOne) SetCommunityID(v string) *GatewayUpdateOne {
	_u.mutation.SetCommunityID(v)
	return _u
}

// SetNillableCommunityID sets the "community_id" field if the given value is not nil.
func (_u *GatewayUpdateOne) SetNillableCommunityID(v *string) *GatewayUpdateOne {
	if v != nil {
		_u.SetCommunityID(*v)
	}
	return _u
}

// SetActivationCode sets the "activation_code" field.
func (_u *GatewayUpdateOne) SetActivationCode(v string) *GatewayUpdateOne {
	_u.mutation.SetActivationCode(v)
	return _u
}

// SetNillableActivationCode sets the "activation_code" field if the given value is not nil.
func (_u *GatewayUpdateOne) SetNillableActivationCode(v *string) *GatewayUpdateOne {
	if v != nil {
		_u.SetActivationCode(*v)
	}
	return _u
}

// SetActivated sets the "activated" field.
func (_u *GatewayUpdateOne) SetActivated(v bool) *GatewayUpdateOne {
	_u.mutation.SetActivated(v)
	return _u
}

// SetNillableActivated sets the "activated" field if the given value is not nil.
func (_u *GatewayUpdateOne) SetNillableActivated(v *bool) *GatewayUpdateOne {
	if v != nil {
		_u.SetActivated(*v)
	}
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *GatewayUpdateOne) SetActivatedAt(v time.Time) *GatewayUpdateOne {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *GatewayUpdateOne) SetNillableActivatedAt(v *time.Time) *GatewayUpdateOne {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *GatewayUpdateOne) ClearActivatedAt() *GatewayUpdateOne {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetCommunity sets the "community" edge to the Community entity.
func (_u *GatewayUpdateOne) SetCommunity(v *Community) *GatewayUpdateOne {
	return _u.SetCommunityID(v.ID)
}

// Mutation returns the GatewayMutation object of the builder.
func (_u *GatewayUpdateOne) Mutation() *GatewayMutation {
	return _u.mutation
}

// ClearCommunity clears the "community" edge to the Community entity.
func (_u *GatewayUpdateOne) ClearCommunity() *GatewayUpdateOne {
	_u.mutation.ClearCommunity()
	return _u
}

// Where appends a list predicates to the GatewayUpdate builder.
func (_u *GatewayUpdateOne) Where(ps ...predicate.Gateway) *GatewayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GatewayUpdateOne) Select(field string, fields ...string) *GatewayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Gateway entity.
func (_u *GatewayUpdateOne) Save(ctx context.Context) (*Gateway, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GatewayUpdateOne) SaveX(ctx context.Context) *Gateway {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GatewayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GatewayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GatewayUpdateOne) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := gateway.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "Gateway.platform": %w`, err)}
		}
	}
	if _u.mutation.CommunityCleared() && len(_u.mutation.CommunityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Gateway.community"`)
	}
	return nil
}

func (_u *GatewayUpdateOne) sqlSave(ctx context.Context) (_node *Gateway, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gateway.Table, gateway.Columns, sqlgraph.NewFieldSpec(gateway.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Gateway.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gateway.FieldID)
		for _, f := range fields {
			if !gateway.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gateway.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(gateway.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ServerID(); ok {
		_spec.SetField(gateway.FieldServerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChannelID(); ok {
		_spec.SetField(gateway.FieldChannelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivationCode(); ok {
		_spec.SetField(gateway.FieldActivationCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Activated(); ok {
		_spec.SetField(gateway.FieldActivated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(gateway.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(gateway.FieldActivatedAt, field.TypeTime)
	}
	if _u.mutation.CommunityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CommunityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Gateway{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gateway.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
