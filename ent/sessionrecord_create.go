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
	"github.com/waddlebot/waddlebot-core/ent/sessionrecord"
)

// SessionRecordCreate is the builder for creating a SessionRecord entity.
type SessionRecordCreate struct {
	config
	mutation *SessionRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEntityID sets the "entity_id" field.
func (_c *SessionRecordCreate) SetEntityID(v string) *SessionRecordCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableEntityID(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetEntityID(*v)
	}
	return _c
}

// SetCommunityID sets the "community_id" field.
func (_c *SessionRecordCreate) SetCommunityID(v string) *SessionRecordCreate {
	_c.mutation.SetCommunityID(v)
	return _c
}

// SetNillableCommunityID sets the "community_id" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCommunityID(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetCommunityID(*v)
	}
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *SessionRecordCreate) SetPlatform(v sessionrecord.Platform) *SessionRecordCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionRecordCreate) SetUserID(v string) *SessionRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *SessionRecordCreate) SetUsername(v string) *SessionRecordCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetMessageType sets the "message_type" field.
func (_c *SessionRecordCreate) SetMessageType(v string) *SessionRecordCreate {
	_c.mutation.SetMessageType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionRecordCreate) SetStatus(v sessionrecord.Status) *SessionRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableStatus(v *sessionrecord.Status) *SessionRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetModulesInvoked sets the "modules_invoked" field.
func (_c *SessionRecordCreate) SetModulesInvoked(v []string) *SessionRecordCreate {
	_c.mutation.SetModulesInvoked(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SessionRecordCreate) SetErrorMessage(v string) *SessionRecordCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableErrorMessage(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionRecordCreate) SetCreatedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCreatedAt(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionRecordCreate) SetCompletedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCompletedAt(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionRecordCreate) SetID(v string) *SessionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_c *SessionRecordCreate) Mutation() *SessionRecordMutation {
	return _c.mutation
}

// Save creates the SessionRecord in the database.
func (_c *SessionRecordCreate) Save(ctx context.Context) (*SessionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRecordCreate) SaveX(ctx context.Context) *SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := sessionrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRecordCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "SessionRecord.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := sessionrecord.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionRecord.user_id"`)}
	}
	if _, ok := _c.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "SessionRecord.username"`)}
	}
	if _, ok := _c.mutation.MessageType(); !ok {
		return &ValidationError{Name: "message_type", err: errors.New(`ent: missing required field "SessionRecord.message_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SessionRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sessionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionRecord.created_at"`)}
	}
	return nil
}

func (_c *SessionRecordCreate) sqlSave(ctx context.Context) (*SessionRecord, error) {
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
			return nil, fmt.Errorf("unexpected SessionRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionRecordCreate) createSpec() (*SessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrecord.Table, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(sessionrecord.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.CommunityID(); ok {
		_spec.SetField(sessionrecord.FieldCommunityID, field.TypeString, value)
		_node.CommunityID = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(sessionrecord.FieldPlatform, field.TypeEnum, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(sessionrecord.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.MessageType(); ok {
		_spec.SetField(sessionrecord.FieldMessageType, field.TypeString, value)
		_node.MessageType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sessionrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ModulesInvoked(); ok {
		_spec.SetField(sessionrecord.FieldModulesInvoked, field.TypeJSON, value)
		_node.ModulesInvoked = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(sessionrecord.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(sessionrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionRecord.Create().
//		SetEntityID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionRecordUpsert) {
//			SetEntityID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionRecordCreate) OnConflict(opts ...sql.ConflictOption) *SessionRecordUpsertOne {
	_c.conflict = opts
	return &SessionRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionRecordCreate) OnConflictColumns(columns ...string) *SessionRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionRecordUpsertOne{
		create: _c,
	}
}

type (
	// SessionRecordUpsertOne is the builder for "upsert"-ing
	//  one SessionRecord node.
	SessionRecordUpsertOne struct {
		create *SessionRecordCreate
	}

	// SessionRecordUpsert is the "OnConflict" setter.
	SessionRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetEntityID sets the "entity_id" field.
func (u *SessionRecordUpsert) SetEntityID(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldEntityID, v)
	return u
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateEntityID() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldEntityID)
	return u
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *SessionRecordUpsert) ClearEntityID() *SessionRecordUpsert {
	u.SetNull(sessionrecord.FieldEntityID)
	return u
}

// SetCommunityID sets the "community_id" field.
func (u *SessionRecordUpsert) SetCommunityID(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldCommunityID, v)
	return u
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateCommunityID() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldCommunityID)
	return u
}

// ClearCommunityID clears the value of the "community_id" field.
func (u *SessionRecordUpsert) ClearCommunityID() *SessionRecordUpsert {
	u.SetNull(sessionrecord.FieldCommunityID)
	return u
}

// SetPlatform sets the "platform" field.
func (u *SessionRecordUpsert) SetPlatform(v sessionrecord.Platform) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdatePlatform() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldPlatform)
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionRecordUpsert) SetUserID(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateUserID() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldUserID)
	return u
}

// SetUsername sets the "username" field.
func (u *SessionRecordUpsert) SetUsername(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldUsername, v)
	return u
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateUsername() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldUsername)
	return u
}

// SetMessageType sets the "message_type" field.
func (u *SessionRecordUpsert) SetMessageType(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldMessageType, v)
	return u
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateMessageType() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldMessageType)
	return u
}

// SetStatus sets the "status" field.
func (u *SessionRecordUpsert) SetStatus(v sessionrecord.Status) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateStatus() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldStatus)
	return u
}

// SetModulesInvoked sets the "modules_invoked" field.
func (u *SessionRecordUpsert) SetModulesInvoked(v []string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldModulesInvoked, v)
	return u
}

// UpdateModulesInvoked sets the "modules_invoked" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateModulesInvoked() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldModulesInvoked)
	return u
}

// ClearModulesInvoked clears the value of the "modules_invoked" field.
func (u *SessionRecordUpsert) ClearModulesInvoked() *SessionRecordUpsert {
	u.SetNull(sessionrecord.FieldModulesInvoked)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionRecordUpsert) SetErrorMessage(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateErrorMessage() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionRecordUpsert) ClearErrorMessage() *SessionRecordUpsert {
	u.SetNull(sessionrecord.FieldErrorMessage)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionRecordUpsert) SetCompletedAt(v time.Time) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateCompletedAt() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionRecordUpsert) ClearCompletedAt() *SessionRecordUpsert {
	u.SetNull(sessionrecord.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionRecordUpsertOne) UpdateNewValues() *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sessionrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(sessionrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionRecordUpsertOne) Ignore() *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionRecordUpsertOne) DoNothing() *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionRecordCreate.OnConflict
// documentation for more info.
func (u *SessionRecordUpsertOne) Update(set func(*SessionRecordUpsert)) *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *SessionRecordUpsertOne) SetEntityID(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateEntityID() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *SessionRecordUpsertOne) ClearEntityID() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearEntityID()
	})
}

// SetCommunityID sets the "community_id" field.
func (u *SessionRecordUpsertOne) SetCommunityID(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetCommunityID(v)
	})
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateCommunityID() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateCommunityID()
	})
}

// ClearCommunityID clears the value of the "community_id" field.
func (u *SessionRecordUpsertOne) ClearCommunityID() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearCommunityID()
	})
}

// SetPlatform sets the "platform" field.
func (u *SessionRecordUpsertOne) SetPlatform(v sessionrecord.Platform) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdatePlatform() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdatePlatform()
	})
}

// SetUserID sets the "user_id" field.
func (u *SessionRecordUpsertOne) SetUserID(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateUserID() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetUsername sets the "username" field.
func (u *SessionRecordUpsertOne) SetUsername(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateUsername() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateUsername()
	})
}

// SetMessageType sets the "message_type" field.
func (u *SessionRecordUpsertOne) SetMessageType(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateMessageType() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateMessageType()
	})
}

// SetStatus sets the "status" field.
func (u *SessionRecordUpsertOne) SetStatus(v sessionrecord.Status) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateStatus() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetModulesInvoked sets the "modules_invoked" field.
func (u *SessionRecordUpsertOne) SetModulesInvoked(v []string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetModulesInvoked(v)
	})
}

// UpdateModulesInvoked sets the "modules_invoked" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateModulesInvoked() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateModulesInvoked()
	})
}

// ClearModulesInvoked clears the value of the "modules_invoked" field.
func (u *SessionRecordUpsertOne) ClearModulesInvoked() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearModulesInvoked()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionRecordUpsertOne) SetErrorMessage(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateErrorMessage() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionRecordUpsertOne) ClearErrorMessage() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionRecordUpsertOne) SetCompletedAt(v time.Time) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateCompletedAt() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionRecordUpsertOne) ClearCompletedAt() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SessionRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionRecordUpsertOne.ID is not supported by MySQL driver. Use SessionRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionRecordCreateBulk is the builder for creating many SessionRecord entities in bulk.
type SessionRecordCreateBulk struct {
	config
	err      error
	builders []*SessionRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionRecord entities in the database.
func (_c *SessionRecordCreateBulk) Save(ctx context.Context) ([]*SessionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRecordMutation)
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
func (_c *SessionRecordCreateBulk) SaveX(ctx context.Context) []*SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionRecordUpsert) {
//			SetEntityID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionRecordUpsertBulk {
	_c.conflict = opts
	return &SessionRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionRecordCreateBulk) OnConflictColumns(columns ...string) *SessionRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionRecordUpsertBulk{
		create: _c,
	}
}

// SessionRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionRecord nodes.
type SessionRecordUpsertBulk struct {
	create *SessionRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sessionrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionRecordUpsertBulk) UpdateNewValues() *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sessionrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(sessionrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionRecordUpsertBulk) Ignore() *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionRecordUpsertBulk) DoNothing() *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionRecordCreateBulk.OnConflict
// documentation for more info.
func (u *SessionRecordUpsertBulk) Update(set func(*SessionRecordUpsert)) *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *SessionRecordUpsertBulk) SetEntityID(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateEntityID() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *SessionRecordUpsertBulk) ClearEntityID() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearEntityID()
	})
}

// SetCommunityID sets the "community_id" field.
func (u *SessionRecordUpsertBulk) SetCommunityID(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetCommunityID(v)
	})
}

// UpdateCommunityID sets the "community_id" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateCommunityID() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateCommunityID()
	})
}

// ClearCommunityID clears the value of the "community_id" field.
func (u *SessionRecordUpsertBulk) ClearCommunityID() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearCommunityID()
	})
}

// SetPlatform sets the "platform" field.
func (u *SessionRecordUpsertBulk) SetPlatform(v sessionrecord.Platform) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdatePlatform() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdatePlatform()
	})
}

// SetUserID sets the "user_id" field.
func (u *SessionRecordUpsertBulk) SetUserID(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateUserID() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetUsername sets the "username" field.
func (u *SessionRecordUpsertBulk) SetUsername(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateUsername() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateUsername()
	})
}

// SetMessageType sets the "message_type" field.
func (u *SessionRecordUpsertBulk) SetMessageType(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetMessageType(v)
	})
}

// UpdateMessageType sets the "message_type" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateMessageType() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateMessageType()
	})
}

// SetStatus sets the "status" field.
func (u *SessionRecordUpsertBulk) SetStatus(v sessionrecord.Status) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateStatus() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetModulesInvoked sets the "modules_invoked" field.
func (u *SessionRecordUpsertBulk) SetModulesInvoked(v []string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetModulesInvoked(v)
	})
}

// UpdateModulesInvoked sets the "modules_invoked" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateModulesInvoked() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateModulesInvoked()
	})
}

// ClearModulesInvoked clears the value of the "modules_invoked" field.
func (u *SessionRecordUpsertBulk) ClearModulesInvoked() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearModulesInvoked()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionRecordUpsertBulk) SetErrorMessage(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateErrorMessage() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionRecordUpsertBulk) ClearErrorMessage() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionRecordUpsertBulk) SetCompletedAt(v time.Time) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateCompletedAt() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionRecordUpsertBulk) ClearCompletedAt() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SessionRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
