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
	"github.com/waddlebot/waddlebot-core/ent/botscore"
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/gateway"
	"github.com/waddlebot/waddlebot-core/ent/member"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
	"github.com/waddlebot/waddlebot-core/ent/workflow"
)

// CommunityUpdate is the builder for updating Community entities.
type CommunityUpdate struct {
	config
	hooks    []Hook
	mutation *CommunityMutation
}

// Where appends a list predicates to the CommunityUpdate builder.
func (_u *CommunityUpdate) Where(ps ...predicate.Community) *CommunityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CommunityUpdate) SetName(v string) *CommunityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CommunityUpdate) SetNillableName(v *string) *CommunityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *CommunityUpdate) SetOwnerID(v string) *CommunityUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *CommunityUpdate) SetNillableOwnerID(v *string) *CommunityUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *CommunityUpdate) SetSettings(v map[string]interface{}) *CommunityUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *CommunityUpdate) ClearSettings() *CommunityUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommunityUpdate) SetUpdatedAt(v time.Time) *CommunityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddGatewayIDs adds the "gateways" edge to the Gateway entity by IDs.
func (_u *CommunityUpdate) AddGatewayIDs(ids ...string) *CommunityUpdate {
	_u.mutation.AddGatewayIDs(ids...)
	return _u
}

// AddGateways adds the "gateways" edges to the Gateway entity.
func (_u *CommunityUpdate) AddGateways(v ...*Gateway) *CommunityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGatewayIDs(ids...)
}

// AddMemberIDs adds the "members" edge to the Member entity by IDs.
func (_u *CommunityUpdate) AddMemberIDs(ids ...int) *CommunityUpdate {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the Member entity.
func (_u *CommunityUpdate) AddMembers(v ...*Member) *CommunityUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by IDs.
func (_u *CommunityUpdate) AddWorkflowIDs(ids ...string) *CommunityUpdate {
	_u.mutation.AddWorkflowIDs(ids...)
	return _u
}

// AddWorkflows adds the "workflows" edges to the Workflow entity.
func (_u *CommunityUpdate) AddWorkflows(v ...*Workflow) *CommunityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowIDs(ids...)
}

// SetBotScoreID sets the "bot_score" edge to the BotScore entity by ID.
func (_u *CommunityUpdate) SetBotScoreID(id int) *CommunityUpdate {
	_u.mutation.SetBotScoreID(id)
	return _u
}

// SetNillableBotScoreID sets the "bot_score" edge to the BotScore entity by ID if the given value is not nil.
func (_u *CommunityUpdate) SetNillableBotScoreID(id *int) *CommunityUpdate {
	if id != nil {
		_u = _u.SetBotScoreID(*id)
	}
	return _u
}

// SetBotScore sets the "bot_score" edge to the BotScore entity.
func (_u *CommunityUpdate) SetBotScore(v *BotScore) *CommunityUpdate {
	return _u.SetBotScoreID(v.ID)
}

// Mutation returns the CommunityMutation object of the builder.
func (_u *CommunityUpdate) Mutation() *CommunityMutation {
	return _u.mutation
}

// ClearGateways clears all "gateways" edges to the Gateway entity.
func (_u *CommunityUpdate) ClearGateways() *CommunityUpdate {
	_u.mutation.ClearGateways()
	return _u
}

// RemoveGatewayIDs removes the "gateways" edge to Gateway entities by IDs.
func (_u *CommunityUpdate) RemoveGatewayIDs(ids ...string) *CommunityUpdate {
	_u.mutation.RemoveGatewayIDs(ids...)
	return _u
}

// RemoveGateways removes "gateways" edges to Gateway entities.
func (_u *CommunityUpdate) RemoveGateways(v ...*Gateway) *CommunityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGatewayIDs(ids...)
}

// ClearMembers clears all "members" edges to the Member entity.
func (_u *CommunityUpdate) ClearMembers() *CommunityUpdate {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to Member entities by IDs.
func (_u *CommunityUpdate) RemoveMemberIDs(ids ...int) *CommunityUpdate {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to Member entities.
func (_u *CommunityUpdate) RemoveMembers(v ...*Member) *CommunityUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// ClearWorkflows clears all "workflows" edges to the Workflow entity.
func (_u *CommunityUpdate) ClearWorkflows() *CommunityUpdate {
	_u.mutation.ClearWorkflows()
	return _u
}

// RemoveWorkflowIDs removes the "workflows" edge to Workflow entities by IDs.
func (_u *CommunityUpdate) RemoveWorkflowIDs(ids ...string) *CommunityUpdate {
	_u.mutation.RemoveWorkflowIDs(ids...)
	return _u
}

// RemoveWorkflows removes "workflows" edges to Workflow entities.
func (_u *CommunityUpdate) RemoveWorkflows(v ...*Workflow) *CommunityUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowIDs(ids...)
}

// ClearBotScore clears the "bot_score" edge to the BotScore entity.
func (_u *CommunityUpdate) ClearBotScore() *CommunityUpdate {
	_u.mutation.ClearBotScore()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommunityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommunityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommunityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommunityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommunityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := community.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CommunityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(community.Table, community.Columns, sqlgraph.NewFieldSpec(community.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(community.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(community.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(community.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(community.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(community.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GatewaysCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGatewaysIDs(); len(nodes) > 0 && !_u.mutation.GatewaysCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GatewaysIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkflowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowsIDs(); len(nodes) > 0 && !_u.mutation.WorkflowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BotScoreCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BotScoreIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{community.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommunityUpdateOne is the builder for updating a single Community entity.
type CommunityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommunityMutation
}

// SetName sets the "name" field.
func (_u *CommunityUpdateOne) SetName(v string) *CommunityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CommunityUpdateOne) SetNillableName(v *string) *CommunityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *CommunityUpdateOne) SetOwnerID(v string) *CommunityUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *CommunityUpdateOne) SetNillableOwnerID(v *string) *CommunityUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *CommunityUpdateOne) SetSettings(v map[string]interface{}) *CommunityUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *CommunityUpdateOne) ClearSettings() *CommunityUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CommunityUpdateOne) SetUpdatedAt(v time.Time) *CommunityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddGatewayIDs adds the "gateways" edge to the Gateway entity by IDs.
func (_u *CommunityUpdateOne) AddGatewayIDs(ids ...string) *CommunityUpdateOne {
	_u.mutation.AddGatewayIDs(ids...)
	return _u
}

// AddGateways adds the "gateways" edges to the Gateway entity.
func (_u *CommunityUpdateOne) AddGateways(v ...*Gateway) *CommunityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGatewayIDs(ids...)
}

// AddMemberIDs adds the "members" edge to the Member entity by IDs.
func (_u *CommunityUpdateOne) AddMemberIDs(ids ...int) *CommunityUpdateOne {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the Member entity.
func (_u *CommunityUpdateOne) AddMembers(v ...*Member) *CommunityUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by IDs.
func (_u *CommunityUpdateOne) AddWorkflowIDs(ids ...string) *CommunityUpdateOne {
	_u.mutation.AddWorkflowIDs(ids...)
	return _u
}

// AddWorkflows adds the "workflows" edges to the Workflow entity.
func (_u *CommunityUpdateOne) AddWorkflows(v ...*Workflow) *CommunityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWorkflowIDs(ids...)
}

// SetBotScoreID sets the "bot_score" edge to the BotScore entity by ID.
func (_u *CommunityUpdateOne) SetBotScoreID(id int) *CommunityUpdateOne {
	_u.mutation.SetBotScoreID(id)
	return _u
}

// SetNillableBotScoreID sets the "bot_score" edge to the BotScore entity by ID if the given value is not nil.
func (_u *CommunityUpdateOne) SetNillableBotScoreID(id *int) *CommunityUpdateOne {
	if id != nil {
		_u = _u.SetBotScoreID(*id)
	}
	return _u
}

// SetBotScore sets the "bot_score" edge to the BotScore entity.
func (_u *CommunityUpdateOne) SetBotScore(v *BotScore) *CommunityUpdateOne {
	return _u.SetBotScoreID(v.ID)
}

// Mutation returns the CommunityMutation object of the builder.
func (_u *CommunityUpdateOne) Mutation() *CommunityMutation {
	return _u.mutation
}

// ClearGateways clears all "gateways" edges to the Gateway entity.
func (_u *CommunityUpdateOne) ClearGateways() *CommunityUpdateOne {
	_u.mutation.ClearGateways()
	return _u
}

// RemoveGatewayIDs removes the "gateways" edge to Gateway entities by IDs.
func (_u *CommunityUpdateOne) RemoveGatewayIDs(ids ...string) *CommunityUpdateOne {
	_u.mutation.RemoveGatewayIDs(ids...)
	return _u
}

// RemoveGateways removes "gateways" edges to Gateway entities.
func (_u *CommunityUpdateOne) RemoveGateways(v ...*Gateway) *CommunityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGatewayIDs(ids...)
}

// ClearMembers clears all "members" edges to the Member entity.
func (_u *CommunityUpdateOne) ClearMembers() *CommunityUpdateOne {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to Member entities by IDs.
func (_u *CommunityUpdateOne) RemoveMemberIDs(ids ...int) *CommunityUpdateOne {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to Member entities.
func (_u *CommunityUpdateOne) RemoveMembers(v ...*Member) *CommunityUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// ClearWorkflows clears all "workflows" edges to the Workflow entity.
func (_u *CommunityUpdateOne) ClearWorkflows() *CommunityUpdateOne {
	_u.mutation.ClearWorkflows()
	return _u
}

// RemoveWorkflowIDs removes the "workflows" edge to Workflow entities by IDs.
func (_u *CommunityUpdateOne) RemoveWorkflowIDs(ids ...string) *CommunityUpdateOne {
	_u.mutation.RemoveWorkflowIDs(ids...)
	return _u
}

// RemoveWorkflows removes "workflows" edges to Workflow entities.
func (_u *CommunityUpdateOne) RemoveWorkflows(v ...*Workflow) *CommunityUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWorkflowIDs(ids...)
}

// ClearBotScore clears the "bot_score" edge to the BotScore entity.
func (_u *CommunityUpdateOne) ClearBotScore() *CommunityUpdateOne {
	_u.mutation.ClearBotScore()
	return _u
}

// Where appends a list predicates to the CommunityUpdate builder.
func (_u *CommunityUpdateOne) Where(ps ...predicate.Community) *CommunityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommunityUpdateOne) Select(field string, fields ...string) *CommunityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Community entity.
func (_u *CommunityUpdateOne) Save(ctx context.Context) (*Community, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommunityUpdateOne) SaveX(ctx context.Context) *Community {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommunityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommunityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CommunityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := community.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CommunityUpdateOne) sqlSave(ctx context.Context) (_node *Community, err error) {
	_spec := sqlgraph.NewUpdateSpec(community.Table, community.Columns, sqlgraph.NewFieldSpec(community.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Community.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, community.FieldID)
		for _, f := range fields {
			if !community.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != community.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(community.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(community.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(community.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(community.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(community.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.GatewaysCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGatewaysIDs(); len(nodes) > 0 && !_u.mutation.GatewaysCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GatewaysIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WorkflowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWorkflowsIDs(); len(nodes) > 0 && !_u.mutation.WorkflowsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WorkflowsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BotScoreCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BotScoreIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Community{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{community.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
