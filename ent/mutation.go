// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/waddlebot/waddlebot-core/ent/alias"
	"github.com/waddlebot/waddlebot-core/ent/botscore"
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/gateway"
	"github.com/waddlebot/waddlebot-core/ent/member"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
	"github.com/waddlebot/waddlebot-core/ent/sessionrecord"
	"github.com/waddlebot/waddlebot-core/ent/translationrecord"
	"github.com/waddlebot/waddlebot-core/ent/workflow"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlias             = "Alias"
	TypeBotScore          = "BotScore"
	TypeCommunity         = "Community"
	TypeGateway           = "Gateway"
	TypeMember            = "Member"
	TypeSessionRecord     = "SessionRecord"
	TypeTranslationRecord = "TranslationRecord"
	TypeWorkflow          = "Workflow"
)

// AliasMutation represents an operation that mutates the Alias nodes in the graph.
type AliasMutation struct {
	config
	op             Op
	typ            string
	id             *int
	entity_id      *string
	alias          *string
	command_type   *alias.CommandType
	response_text  *string
	action_command *string
	created_by     *string
	created_at     *time.Time
	updated_at     *time.Time
	usage_count    *int
	addusage_count *int
	last_used      *time.Time
	is_active      *bool
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Alias, error)
	predicates     []predicate.Alias
}

var _ ent.Mutation = (*AliasMutation)(nil)

// aliasOption allows management of the mutation configuration using functional options.
type aliasOption func(*AliasMutation)

// newAliasMutation creates new mutation for the Alias entity.
func newAliasMutation(c config, op Op, opts ...aliasOption) *AliasMutation {
	m := &AliasMutation{
		config:        c,
		op:            op,
		typ:           TypeAlias,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAliasID sets the ID field of the mutation.
func withAliasID(id int) aliasOption {
	return func(m *AliasMutation) {
		var (
			err   error
			once  sync.Once
			value *Alias
		)
		m.oldValue = func(ctx context.Context) (*Alias, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Alias.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlias sets the old Alias of the mutation.
func withAlias(node *Alias) aliasOption {
	return func(m *AliasMutation) {
		m.oldValue = func(context.Context) (*Alias, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AliasMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AliasMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AliasMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AliasMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Alias.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityID sets the "entity_id" field.
func (m *AliasMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AliasMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AliasMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetAlias sets the "alias" field.
func (m *AliasMutation) SetAlias(s string) {
	m.alias = &s
}

// Alias returns the value of the "alias" field in the mutation.
func (m *AliasMutation) Alias() (r string, exists bool) {
	v := m.alias
	if v == nil {
		return
	}
	return *v, true
}

// OldAlias returns the old "alias" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldAlias(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlias is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlias requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlias: %w", err)
	}
	return oldValue.Alias, nil
}

// ResetAlias resets all changes to the "alias" field.
func (m *AliasMutation) ResetAlias() {
	m.alias = nil
}

// SetCommandType sets the "command_type" field.
func (m *AliasMutation) SetCommandType(at alias.CommandType) {
	m.command_type = &at
}

// CommandType returns the value of the "command_type" field in the mutation.
func (m *AliasMutation) CommandType() (r alias.CommandType, exists bool) {
	v := m.command_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandType returns the old "command_type" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldCommandType(ctx context.Context) (v alias.CommandType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandType: %w", err)
	}
	return oldValue.CommandType, nil
}

// ResetCommandType resets all changes to the "command_type" field.
func (m *AliasMutation) ResetCommandType() {
	m.command_type = nil
}

// SetResponseText sets the "response_text" field.
func (m *AliasMutation) SetResponseText(s string) {
	m.response_text = &s
}

// ResponseText returns the value of the "response_text" field in the mutation.
func (m *AliasMutation) ResponseText() (r string, exists bool) {
	v := m.response_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseText returns the old "response_text" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldResponseText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseText: %w", err)
	}
	return oldValue.ResponseText, nil
}

// ClearResponseText clears the value of the "response_text" field.
func (m *AliasMutation) ClearResponseText() {
	m.response_text = nil
	m.clearedFields[alias.FieldResponseText] = struct{}{}
}

// ResponseTextCleared returns if the "response_text" field was cleared in this mutation.
func (m *AliasMutation) ResponseTextCleared() bool {
	_, ok := m.clearedFields[alias.FieldResponseText]
	return ok
}

// ResetResponseText resets all changes to the "response_text" field.
func (m *AliasMutation) ResetResponseText() {
	m.response_text = nil
	delete(m.clearedFields, alias.FieldResponseText)
}

// SetActionCommand sets the "action_command" field.
func (m *AliasMutation) SetActionCommand(s string) {
	m.action_command = &s
}

// ActionCommand returns the value of the "action_command" field in the mutation.
func (m *AliasMutation) ActionCommand() (r string, exists bool) {
	v := m.action_command
	if v == nil {
		return
	}
	return *v, true
}

// OldActionCommand returns the old "action_command" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldActionCommand(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionCommand: %w", err)
	}
	return oldValue.ActionCommand, nil
}

// ClearActionCommand clears the value of the "action_command" field.
func (m *AliasMutation) ClearActionCommand() {
	m.action_command = nil
	m.clearedFields[alias.FieldActionCommand] = struct{}{}
}

// ActionCommandCleared returns if the "action_command" field was cleared in this mutation.
func (m *AliasMutation) ActionCommandCleared() bool {
	_, ok := m.clearedFields[alias.FieldActionCommand]
	return ok
}

// ResetActionCommand resets all changes to the "action_command" field.
func (m *AliasMutation) ResetActionCommand() {
	m.action_command = nil
	delete(m.clearedFields, alias.FieldActionCommand)
}

// SetCreatedBy sets the "created_by" field.
func (m *AliasMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *AliasMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *AliasMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AliasMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AliasMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AliasMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AliasMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AliasMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AliasMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *AliasMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *AliasMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *AliasMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *AliasMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *AliasMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetLastUsed sets the "last_used" field.
func (m *AliasMutation) SetLastUsed(t time.Time) {
	m.last_used = &t
}

// LastUsed returns the value of the "last_used" field in the mutation.
func (m *AliasMutation) LastUsed() (r time.Time, exists bool) {
	v := m.last_used
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsed returns the old "last_used" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldLastUsed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsed: %w", err)
	}
	return oldValue.LastUsed, nil
}

// ClearLastUsed clears the value of the "last_used" field.
func (m *AliasMutation) ClearLastUsed() {
	m.last_used = nil
	m.clearedFields[alias.FieldLastUsed] = struct{}{}
}

// LastUsedCleared returns if the "last_used" field was cleared in this mutation.
func (m *AliasMutation) LastUsedCleared() bool {
	_, ok := m.clearedFields[alias.FieldLastUsed]
	return ok
}

// ResetLastUsed resets all changes to the "last_used" field.
func (m *AliasMutation) ResetLastUsed() {
	m.last_used = nil
	delete(m.clearedFields, alias.FieldLastUsed)
}

// SetIsActive sets the "is_active" field.
func (m *AliasMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AliasMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Alias entity.
// If the Alias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AliasMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AliasMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the AliasMutation builder.
func (m *AliasMutation) Where(ps ...predicate.Alias) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AliasMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AliasMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Alias, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AliasMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AliasMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Alias).
func (m *AliasMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AliasMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.entity_id != nil {
		fields = append(fields, alias.FieldEntityID)
	}
	if m.alias != nil {
		fields = append(fields, alias.FieldAlias)
	}
	if m.command_type != nil {
		fields = append(fields, alias.FieldCommandType)
	}
	if m.response_text != nil {
		fields = append(fields, alias.FieldResponseText)
	}
	if m.action_command != nil {
		fields = append(fields, alias.FieldActionCommand)
	}
	if m.created_by != nil {
		fields = append(fields, alias.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, alias.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, alias.FieldUpdatedAt)
	}
	if m.usage_count != nil {
		fields = append(fields, alias.FieldUsageCount)
	}
	if m.last_used != nil {
		fields = append(fields, alias.FieldLastUsed)
	}
	if m.is_active != nil {
		fields = append(fields, alias.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AliasMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alias.FieldEntityID:
		return m.EntityID()
	case alias.FieldAlias:
		return m.Alias()
	case alias.FieldCommandType:
		return m.CommandType()
	case alias.FieldResponseText:
		return m.ResponseText()
	case alias.FieldActionCommand:
		return m.ActionCommand()
	case alias.FieldCreatedBy:
		return m.CreatedBy()
	case alias.FieldCreatedAt:
		return m.CreatedAt()
	case alias.FieldUpdatedAt:
		return m.UpdatedAt()
	case alias.FieldUsageCount:
		return m.UsageCount()
	case alias.FieldLastUsed:
		return m.LastUsed()
	case alias.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AliasMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alias.FieldEntityID:
		return m.OldEntityID(ctx)
	case alias.FieldAlias:
		return m.OldAlias(ctx)
	case alias.FieldCommandType:
		return m.OldCommandType(ctx)
	case alias.FieldResponseText:
		return m.OldResponseText(ctx)
	case alias.FieldActionCommand:
		return m.OldActionCommand(ctx)
	case alias.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case alias.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case alias.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case alias.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case alias.FieldLastUsed:
		return m.OldLastUsed(ctx)
	case alias.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown Alias field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AliasMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alias.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case alias.FieldAlias:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlias(v)
		return nil
	case alias.FieldCommandType:
		v, ok := value.(alias.CommandType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandType(v)
		return nil
	case alias.FieldResponseText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseText(v)
		return nil
	case alias.FieldActionCommand:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionCommand(v)
		return nil
	case alias.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case alias.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case alias.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case alias.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case alias.FieldLastUsed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsed(v)
		return nil
	case alias.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown Alias field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AliasMutation) AddedFields() []string {
	var fields []string
	if m.addusage_count != nil {
		fields = append(fields, alias.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AliasMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alias.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AliasMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alias.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Alias numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AliasMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alias.FieldResponseText) {
		fields = append(fields, alias.FieldResponseText)
	}
	if m.FieldCleared(alias.FieldActionCommand) {
		fields = append(fields, alias.FieldActionCommand)
	}
	if m.FieldCleared(alias.FieldLastUsed) {
		fields = append(fields, alias.FieldLastUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AliasMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AliasMutation) ClearField(name string) error {
	switch name {
	case alias.FieldResponseText:
		m.ClearResponseText()
		return nil
	case alias.FieldActionCommand:
		m.ClearActionCommand()
		return nil
	case alias.FieldLastUsed:
		m.ClearLastUsed()
		return nil
	}
	return fmt.Errorf("unknown Alias nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AliasMutation) ResetField(name string) error {
	switch name {
	case alias.FieldEntityID:
		m.ResetEntityID()
		return nil
	case alias.FieldAlias:
		m.ResetAlias()
		return nil
	case alias.FieldCommandType:
		m.ResetCommandType()
		return nil
	case alias.FieldResponseText:
		m.ResetResponseText()
		return nil
	case alias.FieldActionCommand:
		m.ResetActionCommand()
		return nil
	case alias.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case alias.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case alias.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case alias.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case alias.FieldLastUsed:
		m.ResetLastUsed()
		return nil
	case alias.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown Alias field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AliasMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AliasMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AliasMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AliasMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AliasMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AliasMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AliasMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Alias unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AliasMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Alias edge %s", name)
}

// BotScoreMutation represents an operation that mutates the BotScore nodes in the graph.
type BotScoreMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	overall                *int
	addoverall             *int
	grade                  *string
	size_category          *botscore.SizeCategory
	bad_actor_score        *float64
	addbad_actor_score     *float64
	reputation_score       *float64
	addreputation_score    *float64
	security_score         *float64
	addsecurity_score      *float64
	ai_behavioral_score    *float64
	addai_behavioral_score *float64
	weights                *map[string]float64
	calculated_at          *time.Time
	next_recalculation     *time.Time
	clearedFields          map[string]struct{}
	community              *string
	clearedcommunity       bool
	done                   bool
	oldValue               func(context.Context) (*BotScore, error)
	predicates             []predicate.BotScore
}

var _ ent.Mutation = (*BotScoreMutation)(nil)

// botscoreOption allows management of the mutation configuration using functional options.
type botscoreOption func(*BotScoreMutation)

// newBotScoreMutation creates new mutation for the BotScore entity.
func newBotScoreMutation(c config, op Op, opts ...botscoreOption) *BotScoreMutation {
	m := &BotScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeBotScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBotScoreID sets the ID field of the mutation.
func withBotScoreID(id int) botscoreOption {
	return func(m *BotScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *BotScore
		)
		m.oldValue = func(ctx context.Context) (*BotScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BotScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBotScore sets the old BotScore of the mutation.
func withBotScore(node *BotScore) botscoreOption {
	return func(m *BotScoreMutation) {
		m.oldValue = func(context.Context) (*BotScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BotScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BotScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BotScoreMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BotScoreMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BotScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCommunityID sets the "community_id" field.
func (m *BotScoreMutation) SetCommunityID(s string) {
	m.community = &s
}

// CommunityID returns the value of the "community_id" field in the mutation.
func (m *BotScoreMutation) CommunityID() (r string, exists bool) {
	v := m.community
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunityID returns the old "community_id" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldCommunityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunityID: %w", err)
	}
	return oldValue.CommunityID, nil
}

// ResetCommunityID resets all changes to the "community_id" field.
func (m *BotScoreMutation) ResetCommunityID() {
	m.community = nil
}

// SetOverall sets the "overall" field.
func (m *BotScoreMutation) SetOverall(i int) {
	m.overall = &i
	m.addoverall = nil
}

// Overall returns the value of the "overall" field in the mutation.
func (m *BotScoreMutation) Overall() (r int, exists bool) {
	v := m.overall
	if v == nil {
		return
	}
	return *v, true
}

// OldOverall returns the old "overall" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldOverall(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverall: %w", err)
	}
	return oldValue.Overall, nil
}

// AddOverall adds i to the "overall" field.
func (m *BotScoreMutation) AddOverall(i int) {
	if m.addoverall != nil {
		*m.addoverall += i
	} else {
		m.addoverall = &i
	}
}

// AddedOverall returns the value that was added to the "overall" field in this mutation.
func (m *BotScoreMutation) AddedOverall() (r int, exists bool) {
	v := m.addoverall
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverall resets all changes to the "overall" field.
func (m *BotScoreMutation) ResetOverall() {
	m.overall = nil
	m.addoverall = nil
}

// SetGrade sets the "grade" field.
func (m *BotScoreMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *BotScoreMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ResetGrade resets all changes to the "grade" field.
func (m *BotScoreMutation) ResetGrade() {
	m.grade = nil
}

// SetSizeCategory sets the "size_category" field.
func (m *BotScoreMutation) SetSizeCategory(bc botscore.SizeCategory) {
	m.size_category = &bc
}

// SizeCategory returns the value of the "size_category" field in the mutation.
func (m *BotScoreMutation) SizeCategory() (r botscore.SizeCategory, exists bool) {
	v := m.size_category
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeCategory returns the old "size_category" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldSizeCategory(ctx context.Context) (v botscore.SizeCategory, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeCategory: %w", err)
	}
	return oldValue.SizeCategory, nil
}

// ResetSizeCategory resets all changes to the "size_category" field.
func (m *BotScoreMutation) ResetSizeCategory() {
	m.size_category = nil
}

// SetBadActorScore sets the "bad_actor_score" field.
func (m *BotScoreMutation) SetBadActorScore(f float64) {
	m.bad_actor_score = &f
	m.addbad_actor_score = nil
}

// BadActorScore returns the value of the "bad_actor_score" field in the mutation.
func (m *BotScoreMutation) BadActorScore() (r float64, exists bool) {
	v := m.bad_actor_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBadActorScore returns the old "bad_actor_score" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldBadActorScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadActorScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadActorScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadActorScore: %w", err)
	}
	return oldValue.BadActorScore, nil
}

// AddBadActorScore adds f to the "bad_actor_score" field.
func (m *BotScoreMutation) AddBadActorScore(f float64) {
	if m.addbad_actor_score != nil {
		*m.addbad_actor_score += f
	} else {
		m.addbad_actor_score = &f
	}
}

// AddedBadActorScore returns the value that was added to the "bad_actor_score" field in this mutation.
func (m *BotScoreMutation) AddedBadActorScore() (r float64, exists bool) {
	v := m.addbad_actor_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBadActorScore resets all changes to the "bad_actor_score" field.
func (m *BotScoreMutation) ResetBadActorScore() {
	m.bad_actor_score = nil
	m.addbad_actor_score = nil
}

// SetReputationScore sets the "reputation_score" field.
func (m *BotScoreMutation) SetReputationScore(f float64) {
	m.reputation_score = &f
	m.addreputation_score = nil
}

// ReputationScore returns the value of the "reputation_score" field in the mutation.
func (m *BotScoreMutation) ReputationScore() (r float64, exists bool) {
	v := m.reputation_score
	if v == nil {
		return
	}
	return *v, true
}

// OldReputationScore returns the old "reputation_score" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldReputationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReputationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReputationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReputationScore: %w", err)
	}
	return oldValue.ReputationScore, nil
}

// AddReputationScore adds f to the "reputation_score" field.
func (m *BotScoreMutation) AddReputationScore(f float64) {
	if m.addreputation_score != nil {
		*m.addreputation_score += f
	} else {
		m.addreputation_score = &f
	}
}

// AddedReputationScore returns the value that was added to the "reputation_score" field in this mutation.
func (m *BotScoreMutation) AddedReputationScore() (r float64, exists bool) {
	v := m.addreputation_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetReputationScore resets all changes to the "reputation_score" field.
func (m *BotScoreMutation) ResetReputationScore() {
	m.reputation_score = nil
	m.addreputation_score = nil
}

// SetSecurityScore sets the "security_score" field.
func (m *BotScoreMutation) SetSecurityScore(f float64) {
	m.security_score = &f
	m.addsecurity_score = nil
}

// SecurityScore returns the value of the "security_score" field in the mutation.
func (m *BotScoreMutation) SecurityScore() (r float64, exists bool) {
	v := m.security_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSecurityScore returns the old "security_score" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldSecurityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecurityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecurityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecurityScore: %w", err)
	}
	return oldValue.SecurityScore, nil
}

// AddSecurityScore adds f to the "security_score" field.
func (m *BotScoreMutation) AddSecurityScore(f float64) {
	if m.addsecurity_score != nil {
		*m.addsecurity_score += f
	} else {
		m.addsecurity_score = &f
	}
}

// AddedSecurityScore returns the value that was added to the "security_score" field in this mutation.
func (m *BotScoreMutation) AddedSecurityScore() (r float64, exists bool) {
	v := m.addsecurity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSecurityScore resets all changes to the "security_score" field.
func (m *BotScoreMutation) ResetSecurityScore() {
	m.security_score = nil
	m.addsecurity_score = nil
}

// SetAiBehavioralScore sets the "ai_behavioral_score" field.
func (m *BotScoreMutation) SetAiBehavioralScore(f float64) {
	m.ai_behavioral_score = &f
	m.addai_behavioral_score = nil
}

// AiBehavioralScore returns the value of the "ai_behavioral_score" field in the mutation.
func (m *BotScoreMutation) AiBehavioralScore() (r float64, exists bool) {
	v := m.ai_behavioral_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAiBehavioralScore returns the old "ai_behavioral_score" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldAiBehavioralScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiBehavioralScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiBehavioralScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiBehavioralScore: %w", err)
	}
	return oldValue.AiBehavioralScore, nil
}

// AddAiBehavioralScore adds f to the "ai_behavioral_score" field.
func (m *BotScoreMutation) AddAiBehavioralScore(f float64) {
	if m.addai_behavioral_score != nil {
		*m.addai_behavioral_score += f
	} else {
		m.addai_behavioral_score = &f
	}
}

// AddedAiBehavioralScore returns the value that was added to the "ai_behavioral_score" field in this mutation.
func (m *BotScoreMutation) AddedAiBehavioralScore() (r float64, exists bool) {
	v := m.addai_behavioral_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAiBehavioralScore resets all changes to the "ai_behavioral_score" field.
func (m *BotScoreMutation) ResetAiBehavioralScore() {
	m.ai_behavioral_score = nil
	m.addai_behavioral_score = nil
}

// SetWeights sets the "weights" field.
func (m *BotScoreMutation) SetWeights(value map[string]float64) {
	m.weights = &value
}

// Weights returns the value of the "weights" field in the mutation.
func (m *BotScoreMutation) Weights() (r map[string]float64, exists bool) {
	v := m.weights
	if v == nil {
		return
	}
	return *v, true
}

// OldWeights returns the old "weights" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldWeights(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeights: %w", err)
	}
	return oldValue.Weights, nil
}

// ResetWeights resets all changes to the "weights" field.
func (m *BotScoreMutation) ResetWeights() {
	m.weights = nil
}

// SetCalculatedAt sets the "calculated_at" field.
func (m *BotScoreMutation) SetCalculatedAt(t time.Time) {
	m.calculated_at = &t
}

// CalculatedAt returns the value of the "calculated_at" field in the mutation.
func (m *BotScoreMutation) CalculatedAt() (r time.Time, exists bool) {
	v := m.calculated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCalculatedAt returns the old "calculated_at" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldCalculatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalculatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalculatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalculatedAt: %w", err)
	}
	return oldValue.CalculatedAt, nil
}

// ResetCalculatedAt resets all changes to the "calculated_at" field.
func (m *BotScoreMutation) ResetCalculatedAt() {
	m.calculated_at = nil
}

// SetNextRecalculation sets the "next_recalculation" field.
func (m *BotScoreMutation) SetNextRecalculation(t time.Time) {
	m.next_recalculation = &t
}

// NextRecalculation returns the value of the "next_recalculation" field in the mutation.
func (m *BotScoreMutation) NextRecalculation() (r time.Time, exists bool) {
	v := m.next_recalculation
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRecalculation returns the old "next_recalculation" field's value of the BotScore entity.
// If the BotScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotScoreMutation) OldNextRecalculation(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRecalculation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRecalculation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRecalculation: %w", err)
	}
	return oldValue.NextRecalculation, nil
}

// ResetNextRecalculation resets all changes to the "next_recalculation" field.
func (m *BotScoreMutation) ResetNextRecalculation() {
	m.next_recalculation = nil
}

// ClearCommunity clears the "community" edge to the Community entity.
func (m *BotScoreMutation) ClearCommunity() {
	m.clearedcommunity = true
	m.clearedFields[botscore.FieldCommunityID] = struct{}{}
}

// CommunityCleared reports if the "community" edge to the Community entity was cleared.
func (m *BotScoreMutation) CommunityCleared() bool {
	return m.clearedcommunity
}

// CommunityIDs returns the "community" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CommunityID instead. It exists only for internal usage by the builders.
func (m *BotScoreMutation) CommunityIDs() (ids []string) {
	if id := m.community; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCommunity resets all changes to the "community" edge.
func (m *BotScoreMutation) ResetCommunity() {
	m.community = nil
	m.clearedcommunity = false
}

// Where appends a list predicates to the BotScoreMutation builder.
func (m *BotScoreMutation) Where(ps ...predicate.BotScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BotScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BotScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BotScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BotScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BotScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BotScore).
func (m *BotScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BotScoreMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.community != nil {
		fields = append(fields, botscore.FieldCommunityID)
	}
	if m.overall != nil {
		fields = append(fields, botscore.FieldOverall)
	}
	if m.grade != nil {
		fields = append(fields, botscore.FieldGrade)
	}
	if m.size_category != nil {
		fields = append(fields, botscore.FieldSizeCategory)
	}
	if m.bad_actor_score != nil {
		fields = append(fields, botscore.FieldBadActorScore)
	}
	if m.reputation_score != nil {
		fields = append(fields, botscore.FieldReputationScore)
	}
	if m.security_score != nil {
		fields = append(fields, botscore.FieldSecurityScore)
	}
	if m.ai_behavioral_score != nil {
		fields = append(fields, botscore.FieldAiBehavioralScore)
	}
	if m.weights != nil {
		fields = append(fields, botscore.FieldWeights)
	}
	if m.calculated_at != nil {
		fields = append(fields, botscore.FieldCalculatedAt)
	}
	if m.next_recalculation != nil {
		fields = append(fields, botscore.FieldNextRecalculation)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BotScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case botscore.FieldCommunityID:
		return m.CommunityID()
	case botscore.FieldOverall:
		return m.Overall()
	case botscore.FieldGrade:
		return m.Grade()
	case botscore.FieldSizeCategory:
		return m.SizeCategory()
	case botscore.FieldBadActorScore:
		return m.BadActorScore()
	case botscore.FieldReputationScore:
		return m.ReputationScore()
	case botscore.FieldSecurityScore:
		return m.SecurityScore()
	case botscore.FieldAiBehavioralScore:
		return m.AiBehavioralScore()
	case botscore.FieldWeights:
		return m.Weights()
	case botscore.FieldCalculatedAt:
		return m.CalculatedAt()
	case botscore.FieldNextRecalculation:
		return m.NextRecalculation()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BotScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case botscore.FieldCommunityID:
		return m.OldCommunityID(ctx)
	case botscore.FieldOverall:
		return m.OldOverall(ctx)
	case botscore.FieldGrade:
		return m.OldGrade(ctx)
	case botscore.FieldSizeCategory:
		return m.OldSizeCategory(ctx)
	case botscore.FieldBadActorScore:
		return m.OldBadActorScore(ctx)
	case botscore.FieldReputationScore:
		return m.OldReputationScore(ctx)
	case botscore.FieldSecurityScore:
		return m.OldSecurityScore(ctx)
	case botscore.FieldAiBehavioralScore:
		return m.OldAiBehavioralScore(ctx)
	case botscore.FieldWeights:
		return m.OldWeights(ctx)
	case botscore.FieldCalculatedAt:
		return m.OldCalculatedAt(ctx)
	case botscore.FieldNextRecalculation:
		return m.OldNextRecalculation(ctx)
	}
	return nil, fmt.Errorf("unknown BotScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case botscore.FieldCommunityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunityID(v)
		return nil
	case botscore.FieldOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverall(v)
		return nil
	case botscore.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case botscore.FieldSizeCategory:
		v, ok := value.(botscore.SizeCategory)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeCategory(v)
		return nil
	case botscore.FieldBadActorScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadActorScore(v)
		return nil
	case botscore.FieldReputationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReputationScore(v)
		return nil
	case botscore.FieldSecurityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecurityScore(v)
		return nil
	case botscore.FieldAiBehavioralScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiBehavioralScore(v)
		return nil
	case botscore.FieldWeights:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeights(v)
		return nil
	case botscore.FieldCalculatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalculatedAt(v)
		return nil
	case botscore.FieldNextRecalculation:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRecalculation(v)
		return nil
	}
	return fmt.Errorf("unknown BotScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BotScoreMutation) AddedFields() []string {
	var fields []string
	if m.addoverall != nil {
		fields = append(fields, botscore.FieldOverall)
	}
	if m.addbad_actor_score != nil {
		fields = append(fields, botscore.FieldBadActorScore)
	}
	if m.addreputation_score != nil {
		fields = append(fields, botscore.FieldReputationScore)
	}
	if m.addsecurity_score != nil {
		fields = append(fields, botscore.FieldSecurityScore)
	}
	if m.addai_behavioral_score != nil {
		fields = append(fields, botscore.FieldAiBehavioralScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BotScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case botscore.FieldOverall:
		return m.AddedOverall()
	case botscore.FieldBadActorScore:
		return m.AddedBadActorScore()
	case botscore.FieldReputationScore:
		return m.AddedReputationScore()
	case botscore.FieldSecurityScore:
		return m.AddedSecurityScore()
	case botscore.FieldAiBehavioralScore:
		return m.AddedAiBehavioralScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case botscore.FieldOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverall(v)
		return nil
	case botscore.FieldBadActorScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBadActorScore(v)
		return nil
	case botscore.FieldReputationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReputationScore(v)
		return nil
	case botscore.FieldSecurityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSecurityScore(v)
		return nil
	case botscore.FieldAiBehavioralScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAiBehavioralScore(v)
		return nil
	}
	return fmt.Errorf("unknown BotScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BotScoreMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BotScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BotScoreMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BotScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BotScoreMutation) ResetField(name string) error {
	switch name {
	case botscore.FieldCommunityID:
		m.ResetCommunityID()
		return nil
	case botscore.FieldOverall:
		m.ResetOverall()
		return nil
	case botscore.FieldGrade:
		m.ResetGrade()
		return nil
	case botscore.FieldSizeCategory:
		m.ResetSizeCategory()
		return nil
	case botscore.FieldBadActorScore:
		m.ResetBadActorScore()
		return nil
	case botscore.FieldReputationScore:
		m.ResetReputationScore()
		return nil
	case botscore.FieldSecurityScore:
		m.ResetSecurityScore()
		return nil
	case botscore.FieldAiBehavioralScore:
		m.ResetAiBehavioralScore()
		return nil
	case botscore.FieldWeights:
		m.ResetWeights()
		return nil
	case botscore.FieldCalculatedAt:
		m.ResetCalculatedAt()
		return nil
	case botscore.FieldNextRecalculation:
		m.ResetNextRecalculation()
		return nil
	}
	return fmt.Errorf("unknown BotScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BotScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.community != nil {
		edges = append(edges, botscore.EdgeCommunity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BotScoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case botscore.EdgeCommunity:
		if id := m.community; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BotScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BotScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BotScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcommunity {
		edges = append(edges, botscore.EdgeCommunity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BotScoreMutation) EdgeCleared(name string) bool {
	switch name {
	case botscore.EdgeCommunity:
		return m.clearedcommunity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BotScoreMutation) ClearEdge(name string) error {
	switch name {
	case botscore.EdgeCommunity:
		m.ClearCommunity()
		return nil
	}
	return fmt.Errorf("unknown BotScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BotScoreMutation) ResetEdge(name string) error {
	switch name {
	case botscore.EdgeCommunity:
		m.ResetCommunity()
		return nil
	}
	return fmt.Errorf("unknown BotScore edge %s", name)
}

// CommunityMutation represents an operation that mutates the Community nodes in the graph.
type CommunityMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	owner_id         *string
	settings         *map[string]interface{}
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	gateways         map[string]struct{}
	removedgateways  map[string]struct{}
	clearedgateways  bool
	members          map[int]struct{}
	removedmembers   map[int]struct{}
	clearedmembers   bool
	workflows        map[string]struct{}
	removedworkflows map[string]struct{}
	clearedworkflows bool
	bot_score        *int
	clearedbot_score bool
	done             bool
	oldValue         func(context.Context) (*Community, error)
	predicates       []predicate.Community
}

var _ ent.Mutation = (*CommunityMutation)(nil)

// communityOption allows management of the mutation configuration using functional options.
type communityOption func(*CommunityMutation)

// newCommunityMutation creates new mutation for the Community entity.
func newCommunityMutation(c config, op Op, opts ...communityOption) *CommunityMutation {
	m := &CommunityMutation{
		config:        c,
		op:            op,
		typ:           TypeCommunity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCommunityID sets the ID field of the mutation.
func withCommunityID(id string) communityOption {
	return func(m *CommunityMutation) {
		var (
			err   error
			once  sync.Once
			value *Community
		)
		m.oldValue = func(ctx context.Context) (*Community, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Community.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCommunity sets the old Community of the mutation.
func withCommunity(node *Community) communityOption {
	return func(m *CommunityMutation) {
		m.oldValue = func(context.Context) (*Community, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CommunityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CommunityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Community entities.
func (m *CommunityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CommunityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CommunityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Community.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CommunityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CommunityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CommunityMutation) ResetName() {
	m.name = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *CommunityMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *CommunityMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *CommunityMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetSettings sets the "settings" field.
func (m *CommunityMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *CommunityMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *CommunityMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[community.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *CommunityMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[community.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *CommunityMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, community.FieldSettings)
}

// SetCreatedAt sets the "created_at" field.
func (m *CommunityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CommunityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CommunityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CommunityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CommunityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Community entity.
// If the Community object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CommunityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CommunityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddGatewayIDs adds the "gateways" edge to the Gateway entity by ids.
func (m *CommunityMutation) AddGatewayIDs(ids ...string) {
	if m.gateways == nil {
		m.gateways = make(map[string]struct{})
	}
	for i := range ids {
		m.gateways[ids[i]] = struct{}{}
	}
}

// ClearGateways clears the "gateways" edge to the Gateway entity.
func (m *CommunityMutation) ClearGateways() {
	m.clearedgateways = true
}

// GatewaysCleared reports if the "gateways" edge to the Gateway entity was cleared.
func (m *CommunityMutation) GatewaysCleared() bool {
	return m.clearedgateways
}

// RemoveGatewayIDs removes the "gateways" edge to the Gateway entity by IDs.
func (m *CommunityMutation) RemoveGatewayIDs(ids ...string) {
	if m.removedgateways == nil {
		m.removedgateways = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.gateways, ids[i])
		m.removedgateways[ids[i]] = struct{}{}
	}
}

// RemovedGateways returns the removed IDs of the "gateways" edge to the Gateway entity.
func (m *CommunityMutation) RemovedGatewaysIDs() (ids []string) {
	for id := range m.removedgateways {
		ids = append(ids, id)
	}
	return
}

// GatewaysIDs returns the "gateways" edge IDs in the mutation.
func (m *CommunityMutation) GatewaysIDs() (ids []string) {
	for id := range m.gateways {
		ids = append(ids, id)
	}
	return
}

// ResetGateways resets all changes to the "gateways" edge.
func (m *CommunityMutation) ResetGateways() {
	m.gateways = nil
	m.clearedgateways = false
	m.removedgateways = nil
}

// AddMemberIDs adds the "members" edge to the Member entity by ids.
func (m *CommunityMutation) AddMemberIDs(ids ...int) {
	if m.members == nil {
		m.members = make(map[int]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the Member entity.
func (m *CommunityMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the Member entity was cleared.
func (m *CommunityMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the Member entity by IDs.
func (m *CommunityMutation) RemoveMemberIDs(ids ...int) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the Member entity.
func (m *CommunityMutation) RemovedMembersIDs() (ids []int) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *CommunityMutation) MembersIDs() (ids []int) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *CommunityMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// AddWorkflowIDs adds the "workflows" edge to the Workflow entity by ids.
func (m *CommunityMutation) AddWorkflowIDs(ids ...string) {
	if m.workflows == nil {
		m.workflows = make(map[string]struct{})
	}
	for i := range ids {
		m.workflows[ids[i]] = struct{}{}
	}
}

// ClearWorkflows clears the "workflows" edge to the Workflow entity.
func (m *CommunityMutation) ClearWorkflows() {
	m.clearedworkflows = true
}

// WorkflowsCleared reports if the "workflows" edge to the Workflow entity was cleared.
func (m *CommunityMutation) WorkflowsCleared() bool {
	return m.clearedworkflows
}

// RemoveWorkflowIDs removes the "workflows" edge to the Workflow entity by IDs.
func (m *CommunityMutation) RemoveWorkflowIDs(ids ...string) {
	if m.removedworkflows == nil {
		m.removedworkflows = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.workflows, ids[i])
		m.removedworkflows[ids[i]] = struct{}{}
	}
}

// RemovedWorkflows returns the removed IDs of the "workflows" edge to the Workflow entity.
func (m *CommunityMutation) RemovedWorkflowsIDs() (ids []string) {
	for id := range m.removedworkflows {
		ids = append(ids, id)
	}
	return
}

// WorkflowsIDs returns the "workflows" edge IDs in the mutation.
func (m *CommunityMutation) WorkflowsIDs() (ids []string) {
	for id := range m.workflows {
		ids = append(ids, id)
	}
	return
}

// ResetWorkflows resets all changes to the "workflows" edge.
func (m *CommunityMutation) ResetWorkflows() {
	m.workflows = nil
	m.clearedworkflows = false
	m.removedworkflows = nil
}

// SetBotScoreID sets the "bot_score" edge to the BotScore entity by id.
func (m *CommunityMutation) SetBotScoreID(id int) {
	m.bot_score = &id
}

// ClearBotScore clears the "bot_score" edge to the BotScore entity.
func (m *CommunityMutation) ClearBotScore() {
	m.clearedbot_score = true
}

// BotScoreCleared reports if the "bot_score" edge to the BotScore entity was cleared.
func (m *CommunityMutation) BotScoreCleared() bool {
	return m.clearedbot_score
}

// BotScoreID returns the "bot_score" edge ID in the mutation.
func (m *CommunityMutation) BotScoreID() (id int, exists bool) {
	if m.bot_score != nil {
		return *m.bot_score, true
	}
	return
}

// BotScoreIDs returns the "bot_score" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BotScoreID instead. It exists only for internal usage by the builders.
func (m *CommunityMutation) BotScoreIDs() (ids []int) {
	if id := m.bot_score; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBotScore resets all changes to the "bot_score" edge.
func (m *CommunityMutation) ResetBotScore() {
	m.bot_score = nil
	m.clearedbot_score = false
}

// Where appends a list predicates to the CommunityMutation builder.
func (m *CommunityMutation) Where(ps ...predicate.Community) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CommunityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CommunityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Community, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CommunityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CommunityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Community).
func (m *CommunityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CommunityMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, community.FieldName)
	}
	if m.owner_id != nil {
		fields = append(fields, community.FieldOwnerID)
	}
	if m.settings != nil {
		fields = append(fields, community.FieldSettings)
	}
	if m.created_at != nil {
		fields = append(fields, community.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, community.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CommunityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case community.FieldName:
		return m.Name()
	case community.FieldOwnerID:
		return m.OwnerID()
	case community.FieldSettings:
		return m.Settings()
	case community.FieldCreatedAt:
		return m.CreatedAt()
	case community.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CommunityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case community.FieldName:
		return m.OldName(ctx)
	case community.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case community.FieldSettings:
		return m.OldSettings(ctx)
	case community.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case community.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Community field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommunityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case community.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case community.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case community.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case community.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case community.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Community field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CommunityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CommunityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CommunityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Community numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CommunityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(community.FieldSettings) {
		fields = append(fields, community.FieldSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CommunityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CommunityMutation) ClearField(name string) error {
	switch name {
	case community.FieldSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown Community nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CommunityMutation) ResetField(name string) error {
	switch name {
	case community.FieldName:
		m.ResetName()
		return nil
	case community.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case community.FieldSettings:
		m.ResetSettings()
		return nil
	case community.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case community.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Community field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CommunityMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.gateways != nil {
		edges = append(edges, community.EdgeGateways)
	}
	if m.members != nil {
		edges = append(edges, community.EdgeMembers)
	}
	if m.workflows != nil {
		edges = append(edges, community.EdgeWorkflows)
	}
	if m.bot_score != nil {
		edges = append(edges, community.EdgeBotScore)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CommunityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case community.EdgeGateways:
		ids := make([]ent.Value, 0, len(m.gateways))
		for id := range m.gateways {
			ids = append(ids, id)
		}
		return ids
	case community.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	case community.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.workflows))
		for id := range m.workflows {
			ids = append(ids, id)
		}
		return ids
	case community.EdgeBotScore:
		if id := m.bot_score; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CommunityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedgateways != nil {
		edges = append(edges, community.EdgeGateways)
	}
	if m.removedmembers != nil {
		edges = append(edges, community.EdgeMembers)
	}
	if m.removedworkflows != nil {
		edges = append(edges, community.EdgeWorkflows)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CommunityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case community.EdgeGateways:
		ids := make([]ent.Value, 0, len(m.removedgateways))
		for id := range m.removedgateways {
			ids = append(ids, id)
		}
		return ids
	case community.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	case community.EdgeWorkflows:
		ids := make([]ent.Value, 0, len(m.removedworkflows))
		for id := range m.removedworkflows {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CommunityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedgateways {
		edges = append(edges, community.EdgeGateways)
	}
	if m.clearedmembers {
		edges = append(edges, community.EdgeMembers)
	}
	if m.clearedworkflows {
		edges = append(edges, community.EdgeWorkflows)
	}
	if m.clearedbot_score {
		edges = append(edges, community.EdgeBotScore)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CommunityMutation) EdgeCleared(name string) bool {
	switch name {
	case community.EdgeGateways:
		return m.clearedgateways
	case community.EdgeMembers:
		return m.clearedmembers
	case community.EdgeWorkflows:
		return m.clearedworkflows
	case community.EdgeBotScore:
		return m.clearedbot_score
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CommunityMutation) ClearEdge(name string) error {
	switch name {
	case community.EdgeBotScore:
		m.ClearBotScore()
		return nil
	}
	return fmt.Errorf("unknown Community unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CommunityMutation) ResetEdge(name string) error {
	switch name {
	case community.EdgeGateways:
		m.ResetGateways()
		return nil
	case community.EdgeMembers:
		m.ResetMembers()
		return nil
	case community.EdgeWorkflows:
		m.ResetWorkflows()
		return nil
	case community.EdgeBotScore:
		m.ResetBotScore()
		return nil
	}
	return fmt.Errorf("unknown Community edge %s", name)
}

// GatewayMutation represents an operation that mutates the Gateway nodes in the graph.
type GatewayMutation struct {
	config
	op               Op
	typ              string
	id               *string
	platform         *gateway.Platform
	server_id        *string
	channel_id       *string
	activation_code  *string
	activated        *bool
	created_at       *time.Time
	activated_at     *time.Time
	clearedFields    map[string]struct{}
	community        *string
	clearedcommunity bool
	done             bool
	oldValue         func(context.Context) (*Gateway, error)
	predicates       []predicate.Gateway
}

var _ ent.Mutation = (*GatewayMutation)(nil)

// gatewayOption allows management of the mutation configuration using functional options.
type gatewayOption func(*GatewayMutation)

// newGatewayMutation creates new mutation for the Gateway entity.
func newGatewayMutation(c config, op Op, opts ...gatewayOption) *GatewayMutation {
	m := &GatewayMutation{
		config:        c,
		op:            op,
		typ:           TypeGateway,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGatewayID sets the ID field of the mutation.
func withGatewayID(id string) gatewayOption {
	return func(m *GatewayMutation) {
		var (
			err   error
			once  sync.Once
			value *Gateway
		)
		m.oldValue = func(ctx context.Context) (*Gateway, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Gateway.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGateway sets the old Gateway of the mutation.
func withGateway(node *Gateway) gatewayOption {
	return func(m *GatewayMutation) {
		m.oldValue = func(context.Context) (*Gateway, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GatewayMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GatewayMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Gateway entities.
func (m *GatewayMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GatewayMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GatewayMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Gateway.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlatform sets the "platform" field.
func (m *GatewayMutation) SetPlatform(ga gateway.Platform) {
	m.platform = &ga
}

// Platform returns the value of the "platform" field in the mutation.
func (m *GatewayMutation) Platform() (r gateway.Platform, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Gateway entity.
// If the Gateway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayMutation) OldPlatform(ctx context.Context) (v gateway.Platform, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *GatewayMutation) ResetPlatform() {
	m.platform = nil
}

// SetServerID sets the "server_id" field.
func (m *GatewayMutation) SetServerID(s string) {
	m.server_id = &s
}

// ServerID returns the value of the "server_id" field in the mutation.
func (m *GatewayMutation) ServerID() (r string, exists bool) {
	v := m.server_id
	if v == nil {
		return
	}
	return *v, true
}

// OldServerID returns the old "server_id" field's value of the Gateway entity.
// If the Gateway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayMutation) OldServerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServerID: %w", err)
	}
	return oldValue.ServerID, nil
}

// ResetServerID resets all changes to the "server_id" field.
func (m *GatewayMutation) ResetServerID() {
	m.server_id = nil
}

// SetChannelID sets the "channel_id" field.
func (m *GatewayMutation) SetChannelID(s string) {
	m.channel_id = &s
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *GatewayMutation) ChannelID() (r string, exists bool) {
	v := m.channel_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the Gateway entity.
// If the Gateway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayMutation) OldChannelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *GatewayMutation) ResetChannelID() {
	m.channel_id = nil
}

// SetCommunityID sets the "community_id" field.
func (m *GatewayMutation) SetCommunityID(s string) {
	m.community = &s
}

// CommunityID returns the value of the "community_id" field in the mutation.
func (m *GatewayMutation) CommunityID() (r string, exists bool) {
	v := m.community
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunityID returns the old "community_id" field's value of the Gateway entity.
// If the Gateway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayMutation) OldCommunityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunityID: %w", err)
	}
	return oldValue.CommunityID, nil
}

// ResetCommunityID resets all changes to the "community_id" field.
func (m *GatewayMutation) ResetCommunityID() {
	m.community = nil
}

// SetActivationCode sets the "activation_code" field.
func (m *GatewayMutation) SetActivationCode(s string) {
	m.activation_code = &s
}

// ActivationCode returns the value of the "activation_code" field in the mutation.
func (m *GatewayMutation) ActivationCode() (r string, exists bool) {
	v := m.activation_code
	if v == nil {
		return
	}
	return *v, true
}

// OldActivationCode returns the old "activation_code" field's value of the Gateway entity.
// If the Gateway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayMutation) OldActivationCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivationCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivationCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivationCode: %w", err)
	}
	return oldValue.ActivationCode, nil
}

// ResetActivationCode resets all changes to the "activation_code" field.
func (m *GatewayMutation) ResetActivationCode() {
	m.activation_code = nil
}

// SetActivated sets the "activated" field.
func (m *GatewayMutation) SetActivated(b bool) {
	m.activated = &b
}

// Activated returns the value of the "activated" field in the mutation.
func (m *GatewayMutation) Activated() (r bool, exists bool) {
	v := m.activated
	if v == nil {
		return
	}
	return *v, true
}

// OldActivated returns the old "activated" field's value of the Gateway entity.
// If the Gateway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayMutation) OldActivated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivated: %w", err)
	}
	return oldValue.Activated, nil
}

// ResetActivated resets all changes to the "activated" field.
func (m *GatewayMutation) ResetActivated() {
	m.activated = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GatewayMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GatewayMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Gateway entity.
// If the Gateway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GatewayMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetActivatedAt sets the "activated_at" field.
func (m *GatewayMutation) SetActivatedAt(t time.Time) {
	m.activated_at = &t
}

// ActivatedAt returns the value of the "activated_at" field in the mutation.
func (m *GatewayMutation) ActivatedAt() (r time.Time, exists bool) {
	v := m.activated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldActivatedAt returns the old "activated_at" field's value of the Gateway entity.
// If the Gateway object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayMutation) OldActivatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivatedAt: %w", err)
	}
	return oldValue.ActivatedAt, nil
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (m *GatewayMutation) ClearActivatedAt() {
	m.activated_at = nil
	m.clearedFields[gateway.FieldActivatedAt] = struct{}{}
}

// ActivatedAtCleared returns if the "activated_at" field was cleared in this mutation.
func (m *GatewayMutation) ActivatedAtCleared() bool {
	_, ok := m.clearedFields[gateway.FieldActivatedAt]
	return ok
}

// ResetActivatedAt resets all changes to the "activated_at" field.
func (m *GatewayMutation) ResetActivatedAt() {
	m.activated_at = nil
	delete(m.clearedFields, gateway.FieldActivatedAt)
}

// ClearCommunity clears the "community" edge to the Community entity.
func (m *GatewayMutation) ClearCommunity() {
	m.clearedcommunity = true
	m.clearedFields[gateway.FieldCommunityID] = struct{}{}
}

// CommunityCleared reports if the "community" edge to the Community entity was cleared.
func (m *GatewayMutation) CommunityCleared() bool {
	return m.clearedcommunity
}

// CommunityIDs returns the "community" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CommunityID instead. It exists only for internal usage by the builders.
func (m *GatewayMutation) CommunityIDs() (ids []string) {
	if id := m.community; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCommunity resets all changes to the "community" edge.
func (m *GatewayMutation) ResetCommunity() {
	m.community = nil
	m.clearedcommunity = false
}

// Where appends a list predicates to the GatewayMutation builder.
func (m *GatewayMutation) Where(ps ...predicate.Gateway) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GatewayMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GatewayMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Gateway, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GatewayMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GatewayMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Gateway).
func (m *GatewayMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GatewayMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.platform != nil {
		fields = append(fields, gateway.FieldPlatform)
	}
	if m.server_id != nil {
		fields = append(fields, gateway.FieldServerID)
	}
	if m.channel_id != nil {
		fields = append(fields, gateway.FieldChannelID)
	}
	if m.community != nil {
		fields = append(fields, gateway.FieldCommunityID)
	}
	if m.activation_code != nil {
		fields = append(fields, gateway.FieldActivationCode)
	}
	if m.activated != nil {
		fields = append(fields, gateway.FieldActivated)
	}
	if m.created_at != nil {
		fields = append(fields, gateway.FieldCreatedAt)
	}
	if m.activated_at != nil {
		fields = append(fields, gateway.FieldActivatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GatewayMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gateway.FieldPlatform:
		return m.Platform()
	case gateway.FieldServerID:
		return m.ServerID()
	case gateway.FieldChannelID:
		return m.ChannelID()
	case gateway.FieldCommunityID:
		return m.CommunityID()
	case gateway.FieldActivationCode:
		return m.ActivationCode()
	case gateway.FieldActivated:
		return m.Activated()
	case gateway.FieldCreatedAt:
		return m.CreatedAt()
	case gateway.FieldActivatedAt:
		return m.ActivatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GatewayMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gateway.FieldPlatform:
		return m.OldPlatform(ctx)
	case gateway.FieldServerID:
		return m.OldServerID(ctx)
	case gateway.FieldChannelID:
		return m.OldChannelID(ctx)
	case gateway.FieldCommunityID:
		return m.OldCommunityID(ctx)
	case gateway.FieldActivationCode:
		return m.OldActivationCode(ctx)
	case gateway.FieldActivated:
		return m.OldActivated(ctx)
	case gateway.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gateway.FieldActivatedAt:
		return m.OldActivatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Gateway field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GatewayMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gateway.FieldPlatform:
		v, ok := value.(gateway.Platform)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case gateway.FieldServerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServerID(v)
		return nil
	case gateway.FieldChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case gateway.FieldCommunityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunityID(v)
		return nil
	case gateway.FieldActivationCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivationCode(v)
		return nil
	case gateway.FieldActivated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivated(v)
		return nil
	case gateway.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gateway.FieldActivatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Gateway field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GatewayMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GatewayMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GatewayMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Gateway numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GatewayMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gateway.FieldActivatedAt) {
		fields = append(fields, gateway.FieldActivatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GatewayMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GatewayMutation) ClearField(name string) error {
	switch name {
	case gateway.FieldActivatedAt:
		m.ClearActivatedAt()
		return nil
	}
	return fmt.Errorf("unknown Gateway nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GatewayMutation) ResetField(name string) error {
	switch name {
	case gateway.FieldPlatform:
		m.ResetPlatform()
		return nil
	case gateway.FieldServerID:
		m.ResetServerID()
		return nil
	case gateway.FieldChannelID:
		m.ResetChannelID()
		return nil
	case gateway.FieldCommunityID:
		m.ResetCommunityID()
		return nil
	case gateway.FieldActivationCode:
		m.ResetActivationCode()
		return nil
	case gateway.FieldActivated:
		m.ResetActivated()
		return nil
	case gateway.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gateway.FieldActivatedAt:
		m.ResetActivatedAt()
		return nil
	}
	return fmt.Errorf("unknown Gateway field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GatewayMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.community != nil {
		edges = append(edges, gateway.EdgeCommunity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GatewayMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gateway.EdgeCommunity:
		if id := m.community; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GatewayMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GatewayMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GatewayMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcommunity {
		edges = append(edges, gateway.EdgeCommunity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GatewayMutation) EdgeCleared(name string) bool {
	switch name {
	case gateway.EdgeCommunity:
		return m.clearedcommunity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GatewayMutation) ClearEdge(name string) error {
	switch name {
	case gateway.EdgeCommunity:
		m.ClearCommunity()
		return nil
	}
	return fmt.Errorf("unknown Gateway unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GatewayMutation) ResetEdge(name string) error {
	switch name {
	case gateway.EdgeCommunity:
		m.ResetCommunity()
		return nil
	}
	return fmt.Errorf("unknown Gateway edge %s", name)
}

// MemberMutation represents an operation that mutates the Member nodes in the graph.
type MemberMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *string
	role               *member.Role
	capabilities       *[]string
	appendcapabilities []string
	joined_at          *time.Time
	last_seen_at       *time.Time
	clearedFields      map[string]struct{}
	community          *string
	clearedcommunity   bool
	done               bool
	oldValue           func(context.Context) (*Member, error)
	predicates         []predicate.Member
}

var _ ent.Mutation = (*MemberMutation)(nil)

// memberOption allows management of the mutation configuration using functional options.
type memberOption func(*MemberMutation)

// newMemberMutation creates new mutation for the Member entity.
func newMemberMutation(c config, op Op, opts ...memberOption) *MemberMutation {
	m := &MemberMutation{
		config:        c,
		op:            op,
		typ:           TypeMember,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemberID sets the ID field of the mutation.
func withMemberID(id int) memberOption {
	return func(m *MemberMutation) {
		var (
			err   error
			once  sync.Once
			value *Member
		)
		m.oldValue = func(ctx context.Context) (*Member, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Member.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMember sets the old Member of the mutation.
func withMember(node *Member) memberOption {
	return func(m *MemberMutation) {
		m.oldValue = func(context.Context) (*Member, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemberMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemberMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemberMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemberMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Member.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCommunityID sets the "community_id" field.
func (m *MemberMutation) SetCommunityID(s string) {
	m.community = &s
}

// CommunityID returns the value of the "community_id" field in the mutation.
func (m *MemberMutation) CommunityID() (r string, exists bool) {
	v := m.community
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunityID returns the old "community_id" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldCommunityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunityID: %w", err)
	}
	return oldValue.CommunityID, nil
}

// ResetCommunityID resets all changes to the "community_id" field.
func (m *MemberMutation) ResetCommunityID() {
	m.community = nil
}

// SetUserID sets the "user_id" field.
func (m *MemberMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MemberMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MemberMutation) ResetUserID() {
	m.user_id = nil
}

// SetRole sets the "role" field.
func (m *MemberMutation) SetRole(value member.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MemberMutation) Role() (r member.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldRole(ctx context.Context) (v member.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MemberMutation) ResetRole() {
	m.role = nil
}

// SetCapabilities sets the "capabilities" field.
func (m *MemberMutation) SetCapabilities(s []string) {
	m.capabilities = &s
	m.appendcapabilities = nil
}

// Capabilities returns the value of the "capabilities" field in the mutation.
func (m *MemberMutation) Capabilities() (r []string, exists bool) {
	v := m.capabilities
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilities returns the old "capabilities" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldCapabilities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilities: %w", err)
	}
	return oldValue.Capabilities, nil
}

// AppendCapabilities adds s to the "capabilities" field.
func (m *MemberMutation) AppendCapabilities(s []string) {
	m.appendcapabilities = append(m.appendcapabilities, s...)
}

// AppendedCapabilities returns the list of values that were appended to the "capabilities" field in this mutation.
func (m *MemberMutation) AppendedCapabilities() ([]string, bool) {
	if len(m.appendcapabilities) == 0 {
		return nil, false
	}
	return m.appendcapabilities, true
}

// ClearCapabilities clears the value of the "capabilities" field.
func (m *MemberMutation) ClearCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	m.clearedFields[member.FieldCapabilities] = struct{}{}
}

// CapabilitiesCleared returns if the "capabilities" field was cleared in this mutation.
func (m *MemberMutation) CapabilitiesCleared() bool {
	_, ok := m.clearedFields[member.FieldCapabilities]
	return ok
}

// ResetCapabilities resets all changes to the "capabilities" field.
func (m *MemberMutation) ResetCapabilities() {
	m.capabilities = nil
	m.appendcapabilities = nil
	delete(m.clearedFields, member.FieldCapabilities)
}

// SetJoinedAt sets the "joined_at" field.
func (m *MemberMutation) SetJoinedAt(t time.Time) {
	m.joined_at = &t
}

// JoinedAt returns the value of the "joined_at" field in the mutation.
func (m *MemberMutation) JoinedAt() (r time.Time, exists bool) {
	v := m.joined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinedAt returns the old "joined_at" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldJoinedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinedAt: %w", err)
	}
	return oldValue.JoinedAt, nil
}

// ResetJoinedAt resets all changes to the "joined_at" field.
func (m *MemberMutation) ResetJoinedAt() {
	m.joined_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *MemberMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *MemberMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Member entity.
// If the Member object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemberMutation) OldLastSeenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (m *MemberMutation) ClearLastSeenAt() {
	m.last_seen_at = nil
	m.clearedFields[member.FieldLastSeenAt] = struct{}{}
}

// LastSeenAtCleared returns if the "last_seen_at" field was cleared in this mutation.
func (m *MemberMutation) LastSeenAtCleared() bool {
	_, ok := m.clearedFields[member.FieldLastSeenAt]
	return ok
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *MemberMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
	delete(m.clearedFields, member.FieldLastSeenAt)
}

// ClearCommunity clears the "community" edge to the Community entity.
func (m *MemberMutation) ClearCommunity() {
	m.clearedcommunity = true
	m.clearedFields[member.FieldCommunityID] = struct{}{}
}

// CommunityCleared reports if the "community" edge to the Community entity was cleared.
func (m *MemberMutation) CommunityCleared() bool {
	return m.clearedcommunity
}

// CommunityIDs returns the "community" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CommunityID instead. It exists only for internal usage by the builders.
func (m *MemberMutation) CommunityIDs() (ids []string) {
	if id := m.community; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCommunity resets all changes to the "community" edge.
func (m *MemberMutation) ResetCommunity() {
	m.community = nil
	m.clearedcommunity = false
}

// Where appends a list predicates to the MemberMutation builder.
func (m *MemberMutation) Where(ps ...predicate.Member) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemberMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemberMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Member, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemberMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemberMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Member).
func (m *MemberMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemberMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.community != nil {
		fields = append(fields, member.FieldCommunityID)
	}
	if m.user_id != nil {
		fields = append(fields, member.FieldUserID)
	}
	if m.role != nil {
		fields = append(fields, member.FieldRole)
	}
	if m.capabilities != nil {
		fields = append(fields, member.FieldCapabilities)
	}
	if m.joined_at != nil {
		fields = append(fields, member.FieldJoinedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, member.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemberMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case member.FieldCommunityID:
		return m.CommunityID()
	case member.FieldUserID:
		return m.UserID()
	case member.FieldRole:
		return m.Role()
	case member.FieldCapabilities:
		return m.Capabilities()
	case member.FieldJoinedAt:
		return m.JoinedAt()
	case member.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemberMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case member.FieldCommunityID:
		return m.OldCommunityID(ctx)
	case member.FieldUserID:
		return m.OldUserID(ctx)
	case member.FieldRole:
		return m.OldRole(ctx)
	case member.FieldCapabilities:
		return m.OldCapabilities(ctx)
	case member.FieldJoinedAt:
		return m.OldJoinedAt(ctx)
	case member.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown Member field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemberMutation) SetField(name string, value ent.Value) error {
	switch name {
	case member.FieldCommunityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunityID(v)
		return nil
	case member.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case member.FieldRole:
		v, ok := value.(member.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case member.FieldCapabilities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilities(v)
		return nil
	case member.FieldJoinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinedAt(v)
		return nil
	case member.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown Member field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemberMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemberMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemberMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Member numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemberMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(member.FieldCapabilities) {
		fields = append(fields, member.FieldCapabilities)
	}
	if m.FieldCleared(member.FieldLastSeenAt) {
		fields = append(fields, member.FieldLastSeenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemberMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemberMutation) ClearField(name string) error {
	switch name {
	case member.FieldCapabilities:
		m.ClearCapabilities()
		return nil
	case member.FieldLastSeenAt:
		m.ClearLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Member nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemberMutation) ResetField(name string) error {
	switch name {
	case member.FieldCommunityID:
		m.ResetCommunityID()
		return nil
	case member.FieldUserID:
		m.ResetUserID()
		return nil
	case member.FieldRole:
		m.ResetRole()
		return nil
	case member.FieldCapabilities:
		m.ResetCapabilities()
		return nil
	case member.FieldJoinedAt:
		m.ResetJoinedAt()
		return nil
	case member.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown Member field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemberMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.community != nil {
		edges = append(edges, member.EdgeCommunity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemberMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case member.EdgeCommunity:
		if id := m.community; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemberMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemberMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemberMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcommunity {
		edges = append(edges, member.EdgeCommunity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemberMutation) EdgeCleared(name string) bool {
	switch name {
	case member.EdgeCommunity:
		return m.clearedcommunity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemberMutation) ClearEdge(name string) error {
	switch name {
	case member.EdgeCommunity:
		m.ClearCommunity()
		return nil
	}
	return fmt.Errorf("unknown Member unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemberMutation) ResetEdge(name string) error {
	switch name {
	case member.EdgeCommunity:
		m.ResetCommunity()
		return nil
	}
	return fmt.Errorf("unknown Member edge %s", name)
}

// SessionRecordMutation represents an operation that mutates the SessionRecord nodes in the graph.
type SessionRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	entity_id             *string
	community_id          *string
	platform              *sessionrecord.Platform
	user_id               *string
	username              *string
	message_type          *string
	status                *sessionrecord.Status
	modules_invoked       *[]string
	appendmodules_invoked []string
	error_message         *string
	created_at            *time.Time
	completed_at          *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*SessionRecord, error)
	predicates            []predicate.SessionRecord
}

var _ ent.Mutation = (*SessionRecordMutation)(nil)

// sessionrecordOption allows management of the mutation configuration using functional options.
type sessionrecordOption func(*SessionRecordMutation)

// newSessionRecordMutation creates new mutation for the SessionRecord entity.
func newSessionRecordMutation(c config, op Op, opts ...sessionrecordOption) *SessionRecordMutation {
	m := &SessionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionRecordID sets the ID field of the mutation.
func withSessionRecordID(id string) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionRecord
		)
		m.oldValue = func(ctx context.Context) (*SessionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionRecord sets the old SessionRecord of the mutation.
func withSessionRecord(node *SessionRecord) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		m.oldValue = func(context.Context) (*SessionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionRecord entities.
func (m *SessionRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityID sets the "entity_id" field.
func (m *SessionRecordMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *SessionRecordMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *SessionRecordMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[sessionrecord.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *SessionRecordMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *SessionRecordMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, sessionrecord.FieldEntityID)
}

// SetCommunityID sets the "community_id" field.
func (m *SessionRecordMutation) SetCommunityID(s string) {
	m.community_id = &s
}

// CommunityID returns the value of the "community_id" field in the mutation.
func (m *SessionRecordMutation) CommunityID() (r string, exists bool) {
	v := m.community_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunityID returns the old "community_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldCommunityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunityID: %w", err)
	}
	return oldValue.CommunityID, nil
}

// ClearCommunityID clears the value of the "community_id" field.
func (m *SessionRecordMutation) ClearCommunityID() {
	m.community_id = nil
	m.clearedFields[sessionrecord.FieldCommunityID] = struct{}{}
}

// CommunityIDCleared returns if the "community_id" field was cleared in this mutation.
func (m *SessionRecordMutation) CommunityIDCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldCommunityID]
	return ok
}

// ResetCommunityID resets all changes to the "community_id" field.
func (m *SessionRecordMutation) ResetCommunityID() {
	m.community_id = nil
	delete(m.clearedFields, sessionrecord.FieldCommunityID)
}

// SetPlatform sets the "platform" field.
func (m *SessionRecordMutation) SetPlatform(s sessionrecord.Platform) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *SessionRecordMutation) Platform() (r sessionrecord.Platform, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldPlatform(ctx context.Context) (v sessionrecord.Platform, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *SessionRecordMutation) ResetPlatform() {
	m.platform = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetUsername sets the "username" field.
func (m *SessionRecordMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *SessionRecordMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *SessionRecordMutation) ResetUsername() {
	m.username = nil
}

// SetMessageType sets the "message_type" field.
func (m *SessionRecordMutation) SetMessageType(s string) {
	m.message_type = &s
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *SessionRecordMutation) MessageType() (r string, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldMessageType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *SessionRecordMutation) ResetMessageType() {
	m.message_type = nil
}

// SetStatus sets the "status" field.
func (m *SessionRecordMutation) SetStatus(s sessionrecord.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionRecordMutation) Status() (r sessionrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldStatus(ctx context.Context) (v sessionrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionRecordMutation) ResetStatus() {
	m.status = nil
}

// SetModulesInvoked sets the "modules_invoked" field.
func (m *SessionRecordMutation) SetModulesInvoked(s []string) {
	m.modules_invoked = &s
	m.appendmodules_invoked = nil
}

// ModulesInvoked returns the value of the "modules_invoked" field in the mutation.
func (m *SessionRecordMutation) ModulesInvoked() (r []string, exists bool) {
	v := m.modules_invoked
	if v == nil {
		return
	}
	return *v, true
}

// OldModulesInvoked returns the old "modules_invoked" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldModulesInvoked(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModulesInvoked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModulesInvoked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModulesInvoked: %w", err)
	}
	return oldValue.ModulesInvoked, nil
}

// AppendModulesInvoked adds s to the "modules_invoked" field.
func (m *SessionRecordMutation) AppendModulesInvoked(s []string) {
	m.appendmodules_invoked = append(m.appendmodules_invoked, s...)
}

// AppendedModulesInvoked returns the list of values that were appended to the "modules_invoked" field in this mutation.
func (m *SessionRecordMutation) AppendedModulesInvoked() ([]string, bool) {
	if len(m.appendmodules_invoked) == 0 {
		return nil, false
	}
	return m.appendmodules_invoked, true
}

// ClearModulesInvoked clears the value of the "modules_invoked" field.
func (m *SessionRecordMutation) ClearModulesInvoked() {
	m.modules_invoked = nil
	m.appendmodules_invoked = nil
	m.clearedFields[sessionrecord.FieldModulesInvoked] = struct{}{}
}

// ModulesInvokedCleared returns if the "modules_invoked" field was cleared in this mutation.
func (m *SessionRecordMutation) ModulesInvokedCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldModulesInvoked]
	return ok
}

// ResetModulesInvoked resets all changes to the "modules_invoked" field.
func (m *SessionRecordMutation) ResetModulesInvoked() {
	m.modules_invoked = nil
	m.appendmodules_invoked = nil
	delete(m.clearedFields, sessionrecord.FieldModulesInvoked)
}

// SetErrorMessage sets the "error_message" field.
func (m *SessionRecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SessionRecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SessionRecordMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[sessionrecord.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SessionRecordMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SessionRecordMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, sessionrecord.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionRecordMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[sessionrecord.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionRecordMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, sessionrecord.FieldCompletedAt)
}

// Where appends a list predicates to the SessionRecordMutation builder.
func (m *SessionRecordMutation) Where(ps ...predicate.SessionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionRecord).
func (m *SessionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.entity_id != nil {
		fields = append(fields, sessionrecord.FieldEntityID)
	}
	if m.community_id != nil {
		fields = append(fields, sessionrecord.FieldCommunityID)
	}
	if m.platform != nil {
		fields = append(fields, sessionrecord.FieldPlatform)
	}
	if m.user_id != nil {
		fields = append(fields, sessionrecord.FieldUserID)
	}
	if m.username != nil {
		fields = append(fields, sessionrecord.FieldUsername)
	}
	if m.message_type != nil {
		fields = append(fields, sessionrecord.FieldMessageType)
	}
	if m.status != nil {
		fields = append(fields, sessionrecord.FieldStatus)
	}
	if m.modules_invoked != nil {
		fields = append(fields, sessionrecord.FieldModulesInvoked)
	}
	if m.error_message != nil {
		fields = append(fields, sessionrecord.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, sessionrecord.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, sessionrecord.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionrecord.FieldEntityID:
		return m.EntityID()
	case sessionrecord.FieldCommunityID:
		return m.CommunityID()
	case sessionrecord.FieldPlatform:
		return m.Platform()
	case sessionrecord.FieldUserID:
		return m.UserID()
	case sessionrecord.FieldUsername:
		return m.Username()
	case sessionrecord.FieldMessageType:
		return m.MessageType()
	case sessionrecord.FieldStatus:
		return m.Status()
	case sessionrecord.FieldModulesInvoked:
		return m.ModulesInvoked()
	case sessionrecord.FieldErrorMessage:
		return m.ErrorMessage()
	case sessionrecord.FieldCreatedAt:
		return m.CreatedAt()
	case sessionrecord.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionrecord.FieldEntityID:
		return m.OldEntityID(ctx)
	case sessionrecord.FieldCommunityID:
		return m.OldCommunityID(ctx)
	case sessionrecord.FieldPlatform:
		return m.OldPlatform(ctx)
	case sessionrecord.FieldUserID:
		return m.OldUserID(ctx)
	case sessionrecord.FieldUsername:
		return m.OldUsername(ctx)
	case sessionrecord.FieldMessageType:
		return m.OldMessageType(ctx)
	case sessionrecord.FieldStatus:
		return m.OldStatus(ctx)
	case sessionrecord.FieldModulesInvoked:
		return m.OldModulesInvoked(ctx)
	case sessionrecord.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case sessionrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sessionrecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionrecord.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case sessionrecord.FieldCommunityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunityID(v)
		return nil
	case sessionrecord.FieldPlatform:
		v, ok := value.(sessionrecord.Platform)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case sessionrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionrecord.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case sessionrecord.FieldMessageType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case sessionrecord.FieldStatus:
		v, ok := value.(sessionrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sessionrecord.FieldModulesInvoked:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModulesInvoked(v)
		return nil
	case sessionrecord.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case sessionrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sessionrecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionrecord.FieldEntityID) {
		fields = append(fields, sessionrecord.FieldEntityID)
	}
	if m.FieldCleared(sessionrecord.FieldCommunityID) {
		fields = append(fields, sessionrecord.FieldCommunityID)
	}
	if m.FieldCleared(sessionrecord.FieldModulesInvoked) {
		fields = append(fields, sessionrecord.FieldModulesInvoked)
	}
	if m.FieldCleared(sessionrecord.FieldErrorMessage) {
		fields = append(fields, sessionrecord.FieldErrorMessage)
	}
	if m.FieldCleared(sessionrecord.FieldCompletedAt) {
		fields = append(fields, sessionrecord.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionRecordMutation) ClearField(name string) error {
	switch name {
	case sessionrecord.FieldEntityID:
		m.ClearEntityID()
		return nil
	case sessionrecord.FieldCommunityID:
		m.ClearCommunityID()
		return nil
	case sessionrecord.FieldModulesInvoked:
		m.ClearModulesInvoked()
		return nil
	case sessionrecord.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case sessionrecord.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionRecordMutation) ResetField(name string) error {
	switch name {
	case sessionrecord.FieldEntityID:
		m.ResetEntityID()
		return nil
	case sessionrecord.FieldCommunityID:
		m.ResetCommunityID()
		return nil
	case sessionrecord.FieldPlatform:
		m.ResetPlatform()
		return nil
	case sessionrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionrecord.FieldUsername:
		m.ResetUsername()
		return nil
	case sessionrecord.FieldMessageType:
		m.ResetMessageType()
		return nil
	case sessionrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case sessionrecord.FieldModulesInvoked:
		m.ResetModulesInvoked()
		return nil
	case sessionrecord.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case sessionrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sessionrecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord edge %s", name)
}

// TranslationRecordMutation represents an operation that mutates the TranslationRecord nodes in the graph.
type TranslationRecordMutation struct {
	config
	op              Op
	typ             string
	id              *int
	source_hash     *string
	source_lang     *string
	target_lang     *string
	translated_text *string
	provider        *string
	confidence      *float64
	addconfidence   *float64
	created_at      *time.Time
	access_count    *int
	addaccess_count *int
	last_accessed   *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TranslationRecord, error)
	predicates      []predicate.TranslationRecord
}

var _ ent.Mutation = (*TranslationRecordMutation)(nil)

// translationrecordOption allows management of the mutation configuration using functional options.
type translationrecordOption func(*TranslationRecordMutation)

// newTranslationRecordMutation creates new mutation for the TranslationRecord entity.
func newTranslationRecordMutation(c config, op Op, opts ...translationrecordOption) *TranslationRecordMutation {
	m := &TranslationRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeTranslationRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranslationRecordID sets the ID field of the mutation.
func withTranslationRecordID(id int) translationrecordOption {
	return func(m *TranslationRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *TranslationRecord
		)
		m.oldValue = func(ctx context.Context) (*TranslationRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TranslationRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranslationRecord sets the old TranslationRecord of the mutation.
func withTranslationRecord(node *TranslationRecord) translationrecordOption {
	return func(m *TranslationRecordMutation) {
		m.oldValue = func(context.Context) (*TranslationRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranslationRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranslationRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranslationRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranslationRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TranslationRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceHash sets the "source_hash" field.
func (m *TranslationRecordMutation) SetSourceHash(s string) {
	m.source_hash = &s
}

// SourceHash returns the value of the "source_hash" field in the mutation.
func (m *TranslationRecordMutation) SourceHash() (r string, exists bool) {
	v := m.source_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceHash returns the old "source_hash" field's value of the TranslationRecord entity.
// If the TranslationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRecordMutation) OldSourceHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceHash: %w", err)
	}
	return oldValue.SourceHash, nil
}

// ResetSourceHash resets all changes to the "source_hash" field.
func (m *TranslationRecordMutation) ResetSourceHash() {
	m.source_hash = nil
}

// SetSourceLang sets the "source_lang" field.
func (m *TranslationRecordMutation) SetSourceLang(s string) {
	m.source_lang = &s
}

// SourceLang returns the value of the "source_lang" field in the mutation.
func (m *TranslationRecordMutation) SourceLang() (r string, exists bool) {
	v := m.source_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceLang returns the old "source_lang" field's value of the TranslationRecord entity.
// If the TranslationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRecordMutation) OldSourceLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceLang: %w", err)
	}
	return oldValue.SourceLang, nil
}

// ResetSourceLang resets all changes to the "source_lang" field.
func (m *TranslationRecordMutation) ResetSourceLang() {
	m.source_lang = nil
}

// SetTargetLang sets the "target_lang" field.
func (m *TranslationRecordMutation) SetTargetLang(s string) {
	m.target_lang = &s
}

// TargetLang returns the value of the "target_lang" field in the mutation.
func (m *TranslationRecordMutation) TargetLang() (r string, exists bool) {
	v := m.target_lang
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLang returns the old "target_lang" field's value of the TranslationRecord entity.
// If the TranslationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRecordMutation) OldTargetLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLang: %w", err)
	}
	return oldValue.TargetLang, nil
}

// ResetTargetLang resets all changes to the "target_lang" field.
func (m *TranslationRecordMutation) ResetTargetLang() {
	m.target_lang = nil
}

// SetTranslatedText sets the "translated_text" field.
func (m *TranslationRecordMutation) SetTranslatedText(s string) {
	m.translated_text = &s
}

// TranslatedText returns the value of the "translated_text" field in the mutation.
func (m *TranslationRecordMutation) TranslatedText() (r string, exists bool) {
	v := m.translated_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslatedText returns the old "translated_text" field's value of the TranslationRecord entity.
// If the TranslationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRecordMutation) OldTranslatedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslatedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslatedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslatedText: %w", err)
	}
	return oldValue.TranslatedText, nil
}

// ResetTranslatedText resets all changes to the "translated_text" field.
func (m *TranslationRecordMutation) ResetTranslatedText() {
	m.translated_text = nil
}

// SetProvider sets the "provider" field.
func (m *TranslationRecordMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *TranslationRecordMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the TranslationRecord entity.
// If the TranslationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRecordMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *TranslationRecordMutation) ResetProvider() {
	m.provider = nil
}

// SetConfidence sets the "confidence" field.
func (m *TranslationRecordMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *TranslationRecordMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the TranslationRecord entity.
// If the TranslationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRecordMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *TranslationRecordMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *TranslationRecordMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *TranslationRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TranslationRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TranslationRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TranslationRecord entity.
// If the TranslationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TranslationRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAccessCount sets the "access_count" field.
func (m *TranslationRecordMutation) SetAccessCount(i int) {
	m.access_count = &i
	m.addaccess_count = nil
}

// AccessCount returns the value of the "access_count" field in the mutation.
func (m *TranslationRecordMutation) AccessCount() (r int, exists bool) {
	v := m.access_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCount returns the old "access_count" field's value of the TranslationRecord entity.
// If the TranslationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRecordMutation) OldAccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCount: %w", err)
	}
	return oldValue.AccessCount, nil
}

// AddAccessCount adds i to the "access_count" field.
func (m *TranslationRecordMutation) AddAccessCount(i int) {
	if m.addaccess_count != nil {
		*m.addaccess_count += i
	} else {
		m.addaccess_count = &i
	}
}

// AddedAccessCount returns the value that was added to the "access_count" field in this mutation.
func (m *TranslationRecordMutation) AddedAccessCount() (r int, exists bool) {
	v := m.addaccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccessCount resets all changes to the "access_count" field.
func (m *TranslationRecordMutation) ResetAccessCount() {
	m.access_count = nil
	m.addaccess_count = nil
}

// SetLastAccessed sets the "last_accessed" field.
func (m *TranslationRecordMutation) SetLastAccessed(t time.Time) {
	m.last_accessed = &t
}

// LastAccessed returns the value of the "last_accessed" field in the mutation.
func (m *TranslationRecordMutation) LastAccessed() (r time.Time, exists bool) {
	v := m.last_accessed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAccessed returns the old "last_accessed" field's value of the TranslationRecord entity.
// If the TranslationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranslationRecordMutation) OldLastAccessed(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAccessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAccessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAccessed: %w", err)
	}
	return oldValue.LastAccessed, nil
}

// ResetLastAccessed resets all changes to the "last_accessed" field.
func (m *TranslationRecordMutation) ResetLastAccessed() {
	m.last_accessed = nil
}

// Where appends a list predicates to the TranslationRecordMutation builder.
func (m *TranslationRecordMutation) Where(ps ...predicate.TranslationRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranslationRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranslationRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TranslationRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranslationRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranslationRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TranslationRecord).
func (m *TranslationRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranslationRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source_hash != nil {
		fields = append(fields, translationrecord.FieldSourceHash)
	}
	if m.source_lang != nil {
		fields = append(fields, translationrecord.FieldSourceLang)
	}
	if m.target_lang != nil {
		fields = append(fields, translationrecord.FieldTargetLang)
	}
	if m.translated_text != nil {
		fields = append(fields, translationrecord.FieldTranslatedText)
	}
	if m.provider != nil {
		fields = append(fields, translationrecord.FieldProvider)
	}
	if m.confidence != nil {
		fields = append(fields, translationrecord.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, translationrecord.FieldCreatedAt)
	}
	if m.access_count != nil {
		fields = append(fields, translationrecord.FieldAccessCount)
	}
	if m.last_accessed != nil {
		fields = append(fields, translationrecord.FieldLastAccessed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranslationRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case translationrecord.FieldSourceHash:
		return m.SourceHash()
	case translationrecord.FieldSourceLang:
		return m.SourceLang()
	case translationrecord.FieldTargetLang:
		return m.TargetLang()
	case translationrecord.FieldTranslatedText:
		return m.TranslatedText()
	case translationrecord.FieldProvider:
		return m.Provider()
	case translationrecord.FieldConfidence:
		return m.Confidence()
	case translationrecord.FieldCreatedAt:
		return m.CreatedAt()
	case translationrecord.FieldAccessCount:
		return m.AccessCount()
	case translationrecord.FieldLastAccessed:
		return m.LastAccessed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranslationRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case translationrecord.FieldSourceHash:
		return m.OldSourceHash(ctx)
	case translationrecord.FieldSourceLang:
		return m.OldSourceLang(ctx)
	case translationrecord.FieldTargetLang:
		return m.OldTargetLang(ctx)
	case translationrecord.FieldTranslatedText:
		return m.OldTranslatedText(ctx)
	case translationrecord.FieldProvider:
		return m.OldProvider(ctx)
	case translationrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case translationrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case translationrecord.FieldAccessCount:
		return m.OldAccessCount(ctx)
	case translationrecord.FieldLastAccessed:
		return m.OldLastAccessed(ctx)
	}
	return nil, fmt.Errorf("unknown TranslationRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranslationRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case translationrecord.FieldSourceHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceHash(v)
		return nil
	case translationrecord.FieldSourceLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceLang(v)
		return nil
	case translationrecord.FieldTargetLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLang(v)
		return nil
	case translationrecord.FieldTranslatedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslatedText(v)
		return nil
	case translationrecord.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case translationrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case translationrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case translationrecord.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCount(v)
		return nil
	case translationrecord.FieldLastAccessed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAccessed(v)
		return nil
	}
	return fmt.Errorf("unknown TranslationRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranslationRecordMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, translationrecord.FieldConfidence)
	}
	if m.addaccess_count != nil {
		fields = append(fields, translationrecord.FieldAccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranslationRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case translationrecord.FieldConfidence:
		return m.AddedConfidence()
	case translationrecord.FieldAccessCount:
		return m.AddedAccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranslationRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case translationrecord.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case translationrecord.FieldAccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown TranslationRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranslationRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranslationRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranslationRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TranslationRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranslationRecordMutation) ResetField(name string) error {
	switch name {
	case translationrecord.FieldSourceHash:
		m.ResetSourceHash()
		return nil
	case translationrecord.FieldSourceLang:
		m.ResetSourceLang()
		return nil
	case translationrecord.FieldTargetLang:
		m.ResetTargetLang()
		return nil
	case translationrecord.FieldTranslatedText:
		m.ResetTranslatedText()
		return nil
	case translationrecord.FieldProvider:
		m.ResetProvider()
		return nil
	case translationrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case translationrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case translationrecord.FieldAccessCount:
		m.ResetAccessCount()
		return nil
	case translationrecord.FieldLastAccessed:
		m.ResetLastAccessed()
		return nil
	}
	return fmt.Errorf("unknown TranslationRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranslationRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranslationRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranslationRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranslationRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranslationRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranslationRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranslationRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TranslationRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranslationRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TranslationRecord edge %s", name)
}

// WorkflowMutation represents an operation that mutates the Workflow nodes in the graph.
type WorkflowMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	definition       *map[string]interface{}
	is_active        *bool
	created_by       *string
	version          *int
	addversion       *int
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	community        *string
	clearedcommunity bool
	done             bool
	oldValue         func(context.Context) (*Workflow, error)
	predicates       []predicate.Workflow
}

var _ ent.Mutation = (*WorkflowMutation)(nil)

// workflowOption allows management of the mutation configuration using functional options.
type workflowOption func(*WorkflowMutation)

// newWorkflowMutation creates new mutation for the Workflow entity.
func newWorkflowMutation(c config, op Op, opts ...workflowOption) *WorkflowMutation {
	m := &WorkflowMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowID sets the ID field of the mutation.
func withWorkflowID(id string) workflowOption {
	return func(m *WorkflowMutation) {
		var (
			err   error
			once  sync.Once
			value *Workflow
		)
		m.oldValue = func(ctx context.Context) (*Workflow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workflow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflow sets the old Workflow of the mutation.
func withWorkflow(node *Workflow) workflowOption {
	return func(m *WorkflowMutation) {
		m.oldValue = func(context.Context) (*Workflow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workflow entities.
func (m *WorkflowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workflow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCommunityID sets the "community_id" field.
func (m *WorkflowMutation) SetCommunityID(s string) {
	m.community = &s
}

// CommunityID returns the value of the "community_id" field in the mutation.
func (m *WorkflowMutation) CommunityID() (r string, exists bool) {
	v := m.community
	if v == nil {
		return
	}
	return *v, true
}

// OldCommunityID returns the old "community_id" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCommunityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommunityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommunityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommunityID: %w", err)
	}
	return oldValue.CommunityID, nil
}

// ResetCommunityID resets all changes to the "community_id" field.
func (m *WorkflowMutation) ResetCommunityID() {
	m.community = nil
}

// SetName sets the "name" field.
func (m *WorkflowMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WorkflowMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WorkflowMutation) ResetName() {
	m.name = nil
}

// SetDefinition sets the "definition" field.
func (m *WorkflowMutation) SetDefinition(value map[string]interface{}) {
	m.definition = &value
}

// Definition returns the value of the "definition" field in the mutation.
func (m *WorkflowMutation) Definition() (r map[string]interface{}, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinition returns the old "definition" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldDefinition(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinition: %w", err)
	}
	return oldValue.Definition, nil
}

// ResetDefinition resets all changes to the "definition" field.
func (m *WorkflowMutation) ResetDefinition() {
	m.definition = nil
}

// SetIsActive sets the "is_active" field.
func (m *WorkflowMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *WorkflowMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *WorkflowMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *WorkflowMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *WorkflowMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *WorkflowMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetVersion sets the "version" field.
func (m *WorkflowMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *WorkflowMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *WorkflowMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *WorkflowMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *WorkflowMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Workflow entity.
// If the Workflow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCommunity clears the "community" edge to the Community entity.
func (m *WorkflowMutation) ClearCommunity() {
	m.clearedcommunity = true
	m.clearedFields[workflow.FieldCommunityID] = struct{}{}
}

// CommunityCleared reports if the "community" edge to the Community entity was cleared.
func (m *WorkflowMutation) CommunityCleared() bool {
	return m.clearedcommunity
}

// CommunityIDs returns the "community" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CommunityID instead. It exists only for internal usage by the builders.
func (m *WorkflowMutation) CommunityIDs() (ids []string) {
	if id := m.community; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCommunity resets all changes to the "community" edge.
func (m *WorkflowMutation) ResetCommunity() {
	m.community = nil
	m.clearedcommunity = false
}

// Where appends a list predicates to the WorkflowMutation builder.
func (m *WorkflowMutation) Where(ps ...predicate.Workflow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workflow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workflow).
func (m *WorkflowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.community != nil {
		fields = append(fields, workflow.FieldCommunityID)
	}
	if m.name != nil {
		fields = append(fields, workflow.FieldName)
	}
	if m.definition != nil {
		fields = append(fields, workflow.FieldDefinition)
	}
	if m.is_active != nil {
		fields = append(fields, workflow.FieldIsActive)
	}
	if m.created_by != nil {
		fields = append(fields, workflow.FieldCreatedBy)
	}
	if m.version != nil {
		fields = append(fields, workflow.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, workflow.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflow.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldCommunityID:
		return m.CommunityID()
	case workflow.FieldName:
		return m.Name()
	case workflow.FieldDefinition:
		return m.Definition()
	case workflow.FieldIsActive:
		return m.IsActive()
	case workflow.FieldCreatedBy:
		return m.CreatedBy()
	case workflow.FieldVersion:
		return m.Version()
	case workflow.FieldCreatedAt:
		return m.CreatedAt()
	case workflow.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflow.FieldCommunityID:
		return m.OldCommunityID(ctx)
	case workflow.FieldName:
		return m.OldName(ctx)
	case workflow.FieldDefinition:
		return m.OldDefinition(ctx)
	case workflow.FieldIsActive:
		return m.OldIsActive(ctx)
	case workflow.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case workflow.FieldVersion:
		return m.OldVersion(ctx)
	case workflow.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflow.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workflow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldCommunityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommunityID(v)
		return nil
	case workflow.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case workflow.FieldDefinition:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinition(v)
		return nil
	case workflow.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case workflow.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case workflow.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case workflow.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflow.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, workflow.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflow.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflow.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Workflow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Workflow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowMutation) ResetField(name string) error {
	switch name {
	case workflow.FieldCommunityID:
		m.ResetCommunityID()
		return nil
	case workflow.FieldName:
		m.ResetName()
		return nil
	case workflow.FieldDefinition:
		m.ResetDefinition()
		return nil
	case workflow.FieldIsActive:
		m.ResetIsActive()
		return nil
	case workflow.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case workflow.FieldVersion:
		m.ResetVersion()
		return nil
	case workflow.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflow.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workflow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.community != nil {
		edges = append(edges, workflow.EdgeCommunity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflow.EdgeCommunity:
		if id := m.community; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcommunity {
		edges = append(edges, workflow.EdgeCommunity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowMutation) EdgeCleared(name string) bool {
	switch name {
	case workflow.EdgeCommunity:
		return m.clearedcommunity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowMutation) ClearEdge(name string) error {
	switch name {
	case workflow.EdgeCommunity:
		m.ClearCommunity()
		return nil
	}
	return fmt.Errorf("unknown Workflow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowMutation) ResetEdge(name string) error {
	switch name {
	case workflow.EdgeCommunity:
		m.ResetCommunity()
		return nil
	}
	return fmt.Errorf("unknown Workflow edge %s", name)
}
