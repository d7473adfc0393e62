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
	"github.com/waddlebot/waddlebot-core/ent/alias"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
)

// AliasUpdate is the builder for updating Alias entities.
type AliasUpdate struct {
	config
	hooks    []Hook
	mutation *AliasMutation
}

// Where appends a list predicates to the AliasUpdate builder.
func (_u *AliasUpdate) Where(ps ...predicate.Alias) *AliasUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *AliasUpdate) SetEntityID(v string) *AliasUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *AliasUpdate) SetNillableEntityID(v *string) *AliasUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *AliasUpdate) SetAlias(v string) *AliasUpdate {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *AliasUpdate) SetNillableAlias(v *string) *AliasUpdate {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetCommandType sets the "command_type" field.
func (_u *AliasUpdate) SetCommandType(v alias.CommandType) *AliasUpdate {
	_u.mutation.SetCommandType(v)
	return _u
}

// SetNillableCommandType sets the "command_type" field if the given value is not nil.
func (_u *AliasUpdate) SetNillableCommandType(v *alias.CommandType) *AliasUpdate {
	if v != nil {
		_u.SetCommandType(*v)
	}
	return _u
}

// SetResponseText sets the "response_text" field.
func (_u *AliasUpdate) SetResponseText(v string) *AliasUpdate {
	_u.mutation.SetResponseText(v)
	return _u
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_u *AliasUpdate) SetNillableResponseText(v *string) *AliasUpdate {
	if v != nil {
		_u.SetResponseText(*v)
	}
	return _u
}

// ClearResponseText clears the value of the "response_text" field.
func (_u *AliasUpdate) ClearResponseText() *AliasUpdate {
	_u.mutation.ClearResponseText()
	return _u
}

// SetActionCommand sets the "action_command" field.
func (_u *AliasUpdate) SetActionCommand(v string) *AliasUpdate {
	_u.mutation.SetActionCommand(v)
	return _u
}

// SetNillableActionCommand sets the "action_command" field if the given value is not nil.
func (_u *AliasUpdate) SetNillableActionCommand(v *string) *AliasUpdate {
	if v != nil {
		_u.SetActionCommand(*v)
	}
	return _u
}

// ClearActionCommand clears the value of the "action_command" field.
func (_u *AliasUpdate) ClearActionCommand() *AliasUpdate {
	_u.mutation.ClearActionCommand()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AliasUpdate) SetCreatedBy(v string) *AliasUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AliasUpdate) SetNillableCreatedBy(v *string) *AliasUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AliasUpdate) SetUpdatedAt(v time.Time) *AliasUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *AliasUpdate) SetUsageCount(v int) *AliasUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *AliasUpdate) SetNillableUsageCount(v *int) *AliasUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *AliasUpdate) AddUsageCount(v int) *AliasUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetLastUsed sets the "last_used" field.
func (_u *AliasUpdate) SetLastUsed(v time.Time) *AliasUpdate {
	_u.mutation.SetLastUsed(v)
	return _u
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_u *AliasUpdate) SetNillableLastUsed(v *time.Time) *AliasUpdate {
	if v != nil {
		_u.SetLastUsed(*v)
	}
	return _u
}

// ClearLastUsed clears the value of the "last_used" field.
func (_u *AliasUpdate) ClearLastUsed() *AliasUpdate {
	_u.mutation.ClearLastUsed()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AliasUpdate) SetIsActive(v bool) *AliasUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AliasUpdate) SetNillableIsActive(v *bool) *AliasUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AliasMutation object of the builder.
func (_u *AliasUpdate) Mutation() *AliasMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AliasUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AliasUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AliasUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AliasUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AliasUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alias.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AliasUpdate) check() error {
	if v, ok := _u.mutation.CommandType(); ok {
		if err := alias.CommandTypeValidator(v); err != nil {
			return &ValidationError{Name: "command_type", err: fmt.Errorf(`ent: validator failed for field "Alias.command_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AliasUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alias.Table, alias.Columns, sqlgraph.NewFieldSpec(alias.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(alias.FieldEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(alias.FieldAlias, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommandType(); ok {
		_spec.SetField(alias.FieldCommandType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseText(); ok {
		_spec.SetField(alias.FieldResponseText, field.TypeString, value)
	}
	if _u.mutation.ResponseTextCleared() {
		_spec.ClearField(alias.FieldResponseText, field.TypeString)
	}
	if value, ok := _u.mutation.ActionCommand(); ok {
		_spec.SetField(alias.FieldActionCommand, field.TypeString, value)
	}
	if _u.mutation.ActionCommandCleared() {
		_spec.ClearField(alias.FieldActionCommand, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(alias.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(alias.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(alias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(alias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsed(); ok {
		_spec.SetField(alias.FieldLastUsed, field.TypeTime, value)
	}
	if _u.mutation.LastUsedCleared() {
		_spec.ClearField(alias.FieldLastUsed, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(alias.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AliasUpdateOne is the builder for updating a single Alias entity.
type AliasUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AliasMutation
}

// SetEntityID sets the "entity_id" field.
func (_u *AliasUpdateOne) SetEntityID(v string) *AliasUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *AliasUpdateOne) SetNillableEntityID(v *string) *AliasUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *AliasUpdateOne) SetAlias(v string) *AliasUpdateOne {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *AliasUpdateOne) SetNillableAlias(v *string) *AliasUpdateOne {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetCommandType sets the "command_type" field.
func (_u *AliasUpdateOne) SetCommandType(v alias.CommandType) *AliasUpdateOne {
	_u.mutation.SetCommandType(v)
	return _u
}

// SetNillableCommandType sets the "command_type" field if the given value is not nil.
func (_u *AliasUpdateOne) SetNillableCommandType(v *alias.CommandType) *AliasUpdateOne {
	if v != nil {
		_u.SetCommandType(*v)
	}
	return _u
}

// SetResponseText sets the "response_text" field.
func (_u *AliasUpdateOne) SetResponseText(v string) *AliasUpdateOne {
	_u.mutation.SetResponseText(v)
	return _u
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_u *AliasUpdateOne) SetNillableResponseText(v *string) *AliasUpdateOne {
	if v != nil {
		_u.SetResponseText(*v)
	}
	return _u
}

// ClearResponseText clears the value of the "response_text" field.
func (_u *AliasUpdateOne) ClearResponseText() *AliasUpdateOne {
	_u.mutation.ClearResponseText()
	return _u
}

// SetActionCommand sets the "action_command" field.
func (_u *AliasUpdateOne) SetActionCommand(v string) *AliasUpdateOne {
	_u.mutation.SetActionCommand(v)
	return _u
}

// SetNillableActionCommand sets the "action_command" field if the given value is not nil.
func (_u *AliasUpdateOne) SetNillableActionCommand(v *string) *AliasUpdateOne {
	if v != nil {
		_u.SetActionCommand(*v)
	}
	return _u
}

// ClearActionCommand clears the value of the "action_command" field.
func (_u *AliasUpdateOne) ClearActionCommand() *AliasUpdateOne {
	_u.mutation.ClearActionCommand()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AliasUpdateOne) SetCreatedBy(v string) *AliasUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AliasUpdateOne) SetNillableCreatedBy(v *string) *AliasUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AliasUpdateOne) SetUpdatedAt(v time.Time) *AliasUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *AliasUpdateOne) SetUsageCount(v int) *AliasUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *AliasUpdateOne) SetNillableUsageCount(v *int) *AliasUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *AliasUpdateOne) AddUsageCount(v int) *AliasUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetLastUsed sets the "last_used" field.
func (_u *AliasUpdateOne) SetLastUsed(v time.Time) *AliasUpdateOne {
	_u.mutation.SetLastUsed(v)
	return _u
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_u *AliasUpdateOne) SetNillableLastUsed(v *time.Time) *AliasUpdateOne {
	if v != nil {
		_u.SetLastUsed(*v)
	}
	return _u
}

// ClearLastUsed clears the value of the "last_used" field.
func (_u *AliasUpdateOne) ClearLastUsed() *AliasUpdateOne {
	_u.mutation.ClearLastUsed()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AliasUpdateOne) SetIsActive(v bool) *AliasUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AliasUpdateOne) SetNillableIsActive(v *bool) *AliasUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AliasMutation object of the builder.
func (_u *AliasUpdateOne) Mutation() *AliasMutation {
	return _u.mutation
}

// Where appends a list predicates to the AliasUpdate builder.
func (_u *AliasUpdateOne) Where(ps ...predicate.Alias) *AliasUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AliasUpdateOne) Select(field string, fields ...string) *AliasUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Alias entity.
func (_u *AliasUpdateOne) Save(ctx context.Context) (*Alias, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AliasUpdateOne) SaveX(ctx context.Context) *Alias {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AliasUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AliasUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AliasUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := alias.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AliasUpdateOne) check() error {
	if v, ok := _u.mutation.CommandType(); ok {
		if err := alias.CommandTypeValidator(v); err != nil {
			return &ValidationError{Name: "command_type", err: fmt.Errorf(`ent: validator failed for field "Alias.command_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AliasUpdateOne) sqlSave(ctx context.Context) (_node *Alias, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(alias.Table, alias.Columns, sqlgraph.NewFieldSpec(alias.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Alias.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alias.FieldID)
		for _, f := range fields {
			if !alias.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alias.FieldID {
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
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(alias.FieldEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(alias.FieldAlias, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommandType(); ok {
		_spec.SetField(alias.FieldCommandType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResponseText(); ok {
		_spec.SetField(alias.FieldResponseText, field.TypeString, value)
	}
	if _u.mutation.ResponseTextCleared() {
		_spec.ClearField(alias.FieldResponseText, field.TypeString)
	}
	if value, ok := _u.mutation.ActionCommand(); ok {
		_spec.SetField(alias.FieldActionCommand, field.TypeString, value)
	}
	if _u.mutation.ActionCommandCleared() {
		_spec.ClearField(alias.FieldActionCommand, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(alias.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(alias.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(alias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(alias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsed(); ok {
		_spec.SetField(alias.FieldLastUsed, field.TypeTime, value)
	}
	if _u.mutation.LastUsedCleared() {
		_spec.ClearField(alias.FieldLastUsed, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(alias.FieldIsActive, field.TypeBool, value)
	}
	_node = &Alias{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
