// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
	"github.com/waddlebot/waddlebot-core/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *SessionRecordUpdate) SetEntityID(v string) *SessionRecordUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableEntityID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *SessionRecordUpdate) ClearEntityID() *SessionRecordUpdate {
	_u.mutation.ClearEntityID()
	return _u
}

// SetCommunityID sets the "community_id" field.
func (_u *SessionRecordUpdate) SetCommunityID(v string) *SessionRecordUpdate {
	_u.mutation.SetCommunityID(v)
	return _u
}

// SetNillableCommunityID sets the "community_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCommunityID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetCommunityID(*v)
	}
	return _u
}

// ClearCommunityID clears the value of the "community_id" field.
func (_u *SessionRecordUpdate) ClearCommunityID() *SessionRecordUpdate {
	_u.mutation.ClearCommunityID()
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *SessionRecordUpdate) SetPlatform(v sessionrecord.Platform) *SessionRecordUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillablePlatform(v *sessionrecord.Platform) *SessionRecordUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionRecordUpdate) SetUserID(v string) *SessionRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableUserID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *SessionRecordUpdate) SetUsername(v string) *SessionRecordUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableUsername(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *SessionRecordUpdate) SetMessageType(v string) *SessionRecordUpdate {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableMessageType(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionRecordUpdate) SetStatus(v sessionrecord.Status) *SessionRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableStatus(v *sessionrecord.Status) *SessionRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModulesInvoked sets the "modules_invoked" field.
func (_u *SessionRecordUpdate) SetModulesInvoked(v []string) *SessionRecordUpdate {
	_u.mutation.SetModulesInvoked(v)
	return _u
}

// AppendModulesInvoked appends value to the "modules_invoked" field.
func (_u *SessionRecordUpdate) AppendModulesInvoked(v []string) *SessionRecordUpdate {
	_u.mutation.AppendModulesInvoked(v)
	return _u
}

// ClearModulesInvoked clears the value of the "modules_invoked" field.
func (_u *SessionRecordUpdate) ClearModulesInvoked() *SessionRecordUpdate {
	_u.mutation.ClearModulesInvoked()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionRecordUpdate) SetErrorMessage(v string) *SessionRecordUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableErrorMessage(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionRecordUpdate) ClearErrorMessage() *SessionRecordUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionRecordUpdate) SetCompletedAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCompletedAt(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionRecordUpdate) ClearCompletedAt() *SessionRecordUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdate) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := sessionrecord.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sessionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(sessionrecord.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(sessionrecord.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.CommunityID(); ok {
		_spec.SetField(sessionrecord.FieldCommunityID, field.TypeString, value)
	}
	if _u.mutation.CommunityIDCleared() {
		_spec.ClearField(sessionrecord.FieldCommunityID, field.TypeString)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(sessionrecord.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(sessionrecord.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(sessionrecord.FieldMessageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModulesInvoked(); ok {
		_spec.SetField(sessionrecord.FieldModulesInvoked, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModulesInvoked(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldModulesInvoked, value)
		})
	}
	if _u.mutation.ModulesInvokedCleared() {
		_spec.ClearField(sessionrecord.FieldModulesInvoked, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(sessionrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(sessionrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sessionrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sessionrecord.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetEntityID sets the "entity_id" field.
func (_u *SessionRecordUpdateOne) SetEntityID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableEntityID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *SessionRecordUpdateOne) ClearEntityID() *SessionRecordUpdateOne {
	_u.mutation.ClearEntityID()
	return _u
}

// SetCommunityID sets the "community_id" field.
func (_u *SessionRecordUpdateOne) SetCommunityID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetCommunityID(v)
	return _u
}

// SetNillableCommunityID sets the "community_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCommunityID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCommunityID(*v)
	}
	return _u
}

// ClearCommunityID clears the value of the "community_id" field.
func (_u *SessionRecordUpdateOne) ClearCommunityID() *SessionRecordUpdateOne {
	_u.mutation.ClearCommunityID()
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *SessionRecordUpdateOne) SetPlatform(v sessionrecord.Platform) *SessionRecordUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillablePlatform(v *sessionrecord.Platform) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionRecordUpdateOne) SetUserID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableUserID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *SessionRecordUpdateOne) SetUsername(v string) *SessionRecordUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableUsername(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetMessageType sets the "message_type" field.
func (_u *SessionRecordUpdateOne) SetMessageType(v string) *SessionRecordUpdateOne {
	_u.mutation.SetMessageType(v)
	return _u
}

// SetNillableMessageType sets the "message_type" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableMessageType(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetMessageType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionRecordUpdateOne) SetStatus(v sessionrecord.Status) *SessionRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableStatus(v *sessionrecord.Status) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModulesInvoked sets the "modules_invoked" field.
func (_u *SessionRecordUpdateOne) SetModulesInvoked(v []string) *SessionRecordUpdateOne {
	_u.mutation.SetModulesInvoked(v)
	return _u
}

// AppendModulesInvoked appends value to the "modules_invoked" field.
func (_u *SessionRecordUpdateOne) AppendModulesInvoked(v []string) *SessionRecordUpdateOne {
	_u.mutation.AppendModulesInvoked(v)
	return _u
}

// ClearModulesInvoked clears the value of the "modules_invoked" field.
func (_u *SessionRecordUpdateOne) ClearModulesInvoked() *SessionRecordUpdateOne {
	_u.mutation.ClearModulesInvoked()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionRecordUpdateOne) SetErrorMessage(v string) *SessionRecordUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableErrorMessage(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionRecordUpdateOne) ClearErrorMessage() *SessionRecordUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionRecordUpdateOne) SetCompletedAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionRecordUpdateOne) ClearCompletedAt() *SessionRecordUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := sessionrecord.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := sessionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
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
		_spec.SetField(sessionrecord.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(sessionrecord.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.CommunityID(); ok {
		_spec.SetField(sessionrecord.FieldCommunityID, field.TypeString, value)
	}
	if _u.mutation.CommunityIDCleared() {
		_spec.ClearField(sessionrecord.FieldCommunityID, field.TypeString)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(sessionrecord.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(sessionrecord.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageType(); ok {
		_spec.SetField(sessionrecord.FieldMessageType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModulesInvoked(); ok {
		_spec.SetField(sessionrecord.FieldModulesInvoked, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModulesInvoked(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldModulesInvoked, value)
		})
	}
	if _u.mutation.ModulesInvokedCleared() {
		_spec.ClearField(sessionrecord.FieldModulesInvoked, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(sessionrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(sessionrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(sessionrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(sessionrecord.FieldCompletedAt, field.TypeTime)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
