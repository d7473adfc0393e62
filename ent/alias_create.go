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
)

// AliasCreate is the builder for creating a Alias entity.
type AliasCreate struct {
	config
	mutation *AliasMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEntityID sets the "entity_id" field.
func (_c *AliasCreate) SetEntityID(v string) *AliasCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetAlias sets the "alias" field.
func (_c *AliasCreate) SetAlias(v string) *AliasCreate {
	_c.mutation.SetAlias(v)
	return _c
}

// SetCommandType sets the "command_type" field.
func (_c *AliasCreate) SetCommandType(v alias.CommandType) *AliasCreate {
	_c.mutation.SetCommandType(v)
	return _c
}

// SetNillableCommandType sets the "command_type" field if the given value is not nil.
func (_c *AliasCreate) SetNillableCommandType(v *alias.CommandType) *AliasCreate {
	if v != nil {
		_c.SetCommandType(*v)
	}
	return _c
}

// SetResponseText sets the "response_text" field.
func (_c *AliasCreate) SetResponseText(v string) *AliasCreate {
	_c.mutation.SetResponseText(v)
	return _c
}

// SetNillableResponseText sets the "response_text" field if the given value is not nil.
func (_c *AliasCreate) SetNillableResponseText(v *string) *AliasCreate {
	if v != nil {
		_c.SetResponseText(*v)
	}
	return _c
}

// SetActionCommand sets the "action_command" field.
func (_c *AliasCreate) SetActionCommand(v string) *AliasCreate {
	_c.mutation.SetActionCommand(v)
	return _c
}

// SetNillableActionCommand sets the "action_command" field if the given value is not nil.
func (_c *AliasCreate) SetNillableActionCommand(v *string) *AliasCreate {
	if v != nil {
		_c.SetActionCommand(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *AliasCreate) SetCreatedBy(v string) *AliasCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AliasCreate) SetCreatedAt(v time.Time) *AliasCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AliasCreate) SetNillableCreatedAt(v *time.Time) *AliasCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AliasCreate) SetUpdatedAt(v time.Time) *AliasCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AliasCreate) SetNillableUpdatedAt(v *time.Time) *AliasCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *AliasCreate) SetUsageCount(v int) *AliasCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *AliasCreate) SetNillableUsageCount(v *int) *AliasCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetLastUsed sets the "last_used" field.
func (_c *AliasCreate) SetLastUsed(v time.Time) *AliasCreate {
	_c.mutation.SetLastUsed(v)
	return _c
}

// SetNillableLastUsed sets the "last_used" field if the given value is not nil.
func (_c *AliasCreate) SetNillableLastUsed(v *time.Time) *AliasCreate {
	if v != nil {
		_c.SetLastUsed(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AliasCreate) SetIsActive(v bool) *AliasCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AliasCreate) SetNillableIsActive(v *bool) *AliasCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// Mutation returns the AliasMutation object of the builder.
func (_c *AliasCreate) Mutation() *AliasMutation {
	return _c.mutation
}

// Save creates the Alias in the database.
func (_c *AliasCreate) Save(ctx context.Context) (*Alias, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AliasCreate) SaveX(ctx context.Context) *Alias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AliasCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AliasCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AliasCreate) defaults() {
	if _, ok := _c.mutation.CommandType(); !ok {
		v := alias.DefaultCommandType
		_c.mutation.SetCommandType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alias.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := alias.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := alias.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := alias.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AliasCreate) check() error {
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "Alias.entity_id"`)}
	}
	if _, ok := _c.mutation.Alias(); !ok {
		return &ValidationError{Name: "alias", err: errors.New(`ent: missing required field "Alias.alias"`)}
	}
	if _, ok := _c.mutation.CommandType(); !ok {
		return &ValidationError{Name: "command_type", err: errors.New(`ent: missing required field "Alias.command_type"`)}
	}
	if v, ok := _c.mutation.CommandType(); ok {
		if err := alias.CommandTypeValidator(v); err != nil {
			return &ValidationError{Name: "command_type", err: fmt.Errorf(`ent: validator failed for field "Alias.command_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Alias.created_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Alias.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Alias.updated_at"`)}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "Alias.usage_count"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Alias.is_active"`)}
	}
	return nil
}

func (_c *AliasCreate) sqlSave(ctx context.Context) (*Alias, error) {
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

func (_c *AliasCreate) createSpec() (*Alias, *sqlgraph.CreateSpec) {
	var (
		_node = &Alias{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alias.Table, sqlgraph.NewFieldSpec(alias.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(alias.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.Alias(); ok {
		_spec.SetField(alias.FieldAlias, field.TypeString, value)
		_node.Alias = value
	}
	if value, ok := _c.mutation.CommandType(); ok {
		_spec.SetField(alias.FieldCommandType, field.TypeEnum, value)
		_node.CommandType = value
	}
	if value, ok := _c.mutation.ResponseText(); ok {
		_spec.SetField(alias.FieldResponseText, field.TypeString, value)
		_node.ResponseText = value
	}
	if value, ok := _c.mutation.ActionCommand(); ok {
		_spec.SetField(alias.FieldActionCommand, field.TypeString, value)
		_node.ActionCommand = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(alias.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alias.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(alias.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(alias.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.LastUsed(); ok {
		_spec.SetField(alias.FieldLastUsed, field.TypeTime, value)
		_node.LastUsed = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(alias.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alias.Create().
//		SetEntityID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AliasUpsert) {
//			SetEntityID(v+v).
//		}).
//		Exec(ctx)
func (_c *AliasCreate) OnConflict(opts ...sql.ConflictOption) *AliasUpsertOne {
	_c.conflict = opts
	return &AliasUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alias.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AliasCreate) OnConflictColumns(columns ...string) *AliasUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AliasUpsertOne{
		create: _c,
	}
}

type (
	// AliasUpsertOne is the builder for "upsert"-ing
	//  one Alias node.
	AliasUpsertOne struct {
		create *AliasCreate
	}

	// AliasUpsert is the "OnConflict" setter.
	AliasUpsert struct {
		*sql.UpdateSet
	}
)

// SetEntityID sets the "entity_id" field.
func (u *AliasUpsert) SetEntityID(v string) *AliasUpsert {
	u.Set(alias.FieldEntityID, v)
	return u
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *AliasUpsert) UpdateEntityID() *AliasUpsert {
	u.SetExcluded(alias.FieldEntityID)
	return u
}

// SetAlias sets the "alias" field.
func (u *AliasUpsert) SetAlias(v string) *AliasUpsert {
	u.Set(alias.FieldAlias, v)
	return u
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *AliasUpsert) UpdateAlias() *AliasUpsert {
	u.SetExcluded(alias.FieldAlias)
	return u
}

// SetCommandType sets the "command_type" field.
func (u *AliasUpsert) SetCommandType(v alias.CommandType) *AliasUpsert {
	u.Set(alias.FieldCommandType, v)
	return u
}

// UpdateCommandType sets the "command_type" field to the value that was provided on create.
func (u *AliasUpsert) UpdateCommandType() *AliasUpsert {
	u.SetExcluded(alias.FieldCommandType)
	return u
}

// SetResponseText sets the "response_text" field.
func (u *AliasUpsert) SetResponseText(v string) *AliasUpsert {
	u.Set(alias.FieldResponseText, v)
	return u
}

// UpdateResponseText sets the "response_text" field to the value that was provided on create.
func (u *AliasUpsert) UpdateResponseText() *AliasUpsert {
	u.SetExcluded(alias.FieldResponseText)
	return u
}

// ClearResponseText clears the value of the "response_text" field.
func (u *AliasUpsert) ClearResponseText() *AliasUpsert {
	u.SetNull(alias.FieldResponseText)
	return u
}

// SetActionCommand sets the "action_command" field.
func (u *AliasUpsert) SetActionCommand(v string) *AliasUpsert {
	u.Set(alias.FieldActionCommand, v)
	return u
}

// UpdateActionCommand sets the "action_command" field to the value that was provided on create.
func (u *AliasUpsert) UpdateActionCommand() *AliasUpsert {
	u.SetExcluded(alias.FieldActionCommand)
	return u
}

// ClearActionCommand clears the value of the "action_command" field.
func (u *AliasUpsert) ClearActionCommand() *AliasUpsert {
	u.SetNull(alias.FieldActionCommand)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *AliasUpsert) SetCreatedBy(v string) *AliasUpsert {
	u.Set(alias.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AliasUpsert) UpdateCreatedBy() *AliasUpsert {
	u.SetExcluded(alias.FieldCreatedBy)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AliasUpsert) SetUpdatedAt(v time.Time) *AliasUpsert {
	u.Set(alias.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AliasUpsert) UpdateUpdatedAt() *AliasUpsert {
	u.SetExcluded(alias.FieldUpdatedAt)
	return u
}

// SetUsageCount sets the "usage_count" field.
func (u *AliasUpsert) SetUsageCount(v int) *AliasUpsert {
	u.Set(alias.FieldUsageCount, v)
	return u
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *AliasUpsert) UpdateUsageCount() *AliasUpsert {
	u.SetExcluded(alias.FieldUsageCount)
	return u
}

// AddUsageCount adds v to the "usage_count" field.
func (u *AliasUpsert) AddUsageCount(v int) *AliasUpsert {
	u.Add(alias.FieldUsageCount, v)
	return u
}

// SetLastUsed sets the "last_used" field.
func (u *AliasUpsert) SetLastUsed(v time.Time) *AliasUpsert {
	u.Set(alias.FieldLastUsed, v)
	return u
}

// UpdateLastUsed sets the "last_used" field to the value that was provided on create.
func (u *AliasUpsert) UpdateLastUsed() *AliasUpsert {
	u.SetExcluded(alias.FieldLastUsed)
	return u
}

// ClearLastUsed clears the value of the "last_used" field.
func (u *AliasUpsert) ClearLastUsed() *AliasUpsert {
	u.SetNull(alias.FieldLastUsed)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *AliasUpsert) SetIsActive(v bool) *AliasUpsert {
	u.Set(alias.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AliasUpsert) UpdateIsActive() *AliasUpsert {
	u.SetExcluded(alias.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Alias.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AliasUpsertOne) UpdateNewValues() *AliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(alias.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alias.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AliasUpsertOne) Ignore() *AliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AliasUpsertOne) DoNothing() *AliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AliasCreate.OnConflict
// documentation for more info.
func (u *AliasUpsertOne) Update(set func(*AliasUpsert)) *AliasUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AliasUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *AliasUpsertOne) SetEntityID(v string) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *AliasUpsertOne) UpdateEntityID() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateEntityID()
	})
}

// SetAlias sets the "alias" field.
func (u *AliasUpsertOne) SetAlias(v string) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.SetAlias(v)
	})
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *AliasUpsertOne) UpdateAlias() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateAlias()
	})
}

// SetCommandType sets the "command_type" field.
func (u *AliasUpsertOne) SetCommandType(v alias.CommandType) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.SetCommandType(v)
	})
}

// UpdateCommandType sets the "command_type" field to the value that was provided on create.
func (u *AliasUpsertOne) UpdateCommandType() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateCommandType()
	})
}

// SetResponseText sets the "response_text" field.
func (u *AliasUpsertOne) SetResponseText(v string) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.SetResponseText(v)
	})
}

// UpdateResponseText sets the "response_text" field to the value that was provided on create.
func (u *AliasUpsertOne) UpdateResponseText() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateResponseText()
	})
}

// ClearResponseText clears the value of the "response_text" field.
func (u *AliasUpsertOne) ClearResponseText() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.ClearResponseText()
	})
}

// SetActionCommand sets the "action_command" field.
func (u *AliasUpsertOne) SetActionCommand(v string) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.SetActionCommand(v)
	})
}

// UpdateActionCommand sets the "action_command" field to the value that was provided on create.
func (u *AliasUpsertOne) UpdateActionCommand() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateActionCommand()
	})
}

// ClearActionCommand clears the value of the "action_command" field.
func (u *AliasUpsertOne) ClearActionCommand() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.ClearActionCommand()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *AliasUpsertOne) SetCreatedBy(v string) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AliasUpsertOne) UpdateCreatedBy() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AliasUpsertOne) SetUpdatedAt(v time.Time) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AliasUpsertOne) UpdateUpdatedAt() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUsageCount sets the "usage_count" field.
func (u *AliasUpsertOne) SetUsageCount(v int) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.SetUsageCount(v)
	})
}

// AddUsageCount adds v to the "usage_count" field.
func (u *AliasUpsertOne) AddUsageCount(v int) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.AddUsageCount(v)
	})
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *AliasUpsertOne) UpdateUsageCount() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateUsageCount()
	})
}

// SetLastUsed sets the "last_used" field.
func (u *AliasUpsertOne) SetLastUsed(v time.Time) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.SetLastUsed(v)
	})
}

// UpdateLastUsed sets the "last_used" field to the value that was provided on create.
func (u *AliasUpsertOne) UpdateLastUsed() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateLastUsed()
	})
}

// ClearLastUsed clears the value of the "last_used" field.
func (u *AliasUpsertOne) ClearLastUsed() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.ClearLastUsed()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AliasUpsertOne) SetIsActive(v bool) *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AliasUpsertOne) UpdateIsActive() *AliasUpsertOne {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *AliasUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AliasCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AliasUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AliasUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AliasUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AliasCreateBulk is the builder for creating many Alias entities in bulk.
type AliasCreateBulk struct {
	config
	err      error
	builders []*AliasCreate
	conflict []sql.ConflictOption
}

// Save creates the Alias entities in the database.
func (_c *AliasCreateBulk) Save(ctx context.Context) ([]*Alias, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Alias, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AliasMutation)
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
func (_c *AliasCreateBulk) SaveX(ctx context.Context) []*Alias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AliasCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AliasCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Alias.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AliasUpsert) {
//			SetEntityID(v+v).
//		}).
//		Exec(ctx)
func (_c *AliasCreateBulk) OnConflict(opts ...sql.ConflictOption) *AliasUpsertBulk {
	_c.conflict = opts
	return &AliasUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Alias.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AliasCreateBulk) OnConflictColumns(columns ...string) *AliasUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AliasUpsertBulk{
		create: _c,
	}
}

// AliasUpsertBulk is the builder for "upsert"-ing
// a bulk of Alias nodes.
type AliasUpsertBulk struct {
	create *AliasCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Alias.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AliasUpsertBulk) UpdateNewValues() *AliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(alias.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Alias.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AliasUpsertBulk) Ignore() *AliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AliasUpsertBulk) DoNothing() *AliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AliasCreateBulk.OnConflict
// documentation for more info.
func (u *AliasUpsertBulk) Update(set func(*AliasUpsert)) *AliasUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AliasUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *AliasUpsertBulk) SetEntityID(v string) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *AliasUpsertBulk) UpdateEntityID() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateEntityID()
	})
}

// SetAlias sets the "alias" field.
func (u *AliasUpsertBulk) SetAlias(v string) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.SetAlias(v)
	})
}

// UpdateAlias sets the "alias" field to the value that was provided on create.
func (u *AliasUpsertBulk) UpdateAlias() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateAlias()
	})
}

// SetCommandType sets the "command_type" field.
func (u *AliasUpsertBulk) SetCommandType(v alias.CommandType) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.SetCommandType(v)
	})
}

// UpdateCommandType sets the "command_type" field to the value that was provided on create.
func (u *AliasUpsertBulk) UpdateCommandType() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateCommandType()
	})
}

// SetResponseText sets the "response_text" field.
func (u *AliasUpsertBulk) SetResponseText(v string) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.SetResponseText(v)
	})
}

// UpdateResponseText sets the "response_text" field to the value that was provided on create.
func (u *AliasUpsertBulk) UpdateResponseText() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateResponseText()
	})
}

// ClearResponseText clears the value of the "response_text" field.
func (u *AliasUpsertBulk) ClearResponseText() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.ClearResponseText()
	})
}

// SetActionCommand sets the "action_command" field.
func (u *AliasUpsertBulk) SetActionCommand(v string) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.SetActionCommand(v)
	})
}

// UpdateActionCommand sets the "action_command" field to the value that was provided on create.
func (u *AliasUpsertBulk) UpdateActionCommand() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateActionCommand()
	})
}

// ClearActionCommand clears the value of the "action_command" field.
func (u *AliasUpsertBulk) ClearActionCommand() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.ClearActionCommand()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *AliasUpsertBulk) SetCreatedBy(v string) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *AliasUpsertBulk) UpdateCreatedBy() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AliasUpsertBulk) SetUpdatedAt(v time.Time) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AliasUpsertBulk) UpdateUpdatedAt() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUsageCount sets the "usage_count" field.
func (u *AliasUpsertBulk) SetUsageCount(v int) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.SetUsageCount(v)
	})
}

// AddUsageCount adds v to the "usage_count" field.
func (u *AliasUpsertBulk) AddUsageCount(v int) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.AddUsageCount(v)
	})
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *AliasUpsertBulk) UpdateUsageCount() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateUsageCount()
	})
}

// SetLastUsed sets the "last_used" field.
func (u *AliasUpsertBulk) SetLastUsed(v time.Time) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.SetLastUsed(v)
	})
}

// UpdateLastUsed sets the "last_used" field to the value that was provided on create.
func (u *AliasUpsertBulk) UpdateLastUsed() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateLastUsed()
	})
}

// ClearLastUsed clears the value of the "last_used" field.
func (u *AliasUpsertBulk) ClearLastUsed() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.ClearLastUsed()
	})
}

// SetIsActive sets the "is_active" field.
func (u *AliasUpsertBulk) SetIsActive(v bool) *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AliasUpsertBulk) UpdateIsActive() *AliasUpsertBulk {
	return u.Update(func(s *AliasUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *AliasUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AliasCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AliasCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AliasUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
