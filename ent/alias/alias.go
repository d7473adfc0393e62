// Code generated by ent, DO NOT EDIT.

package alias

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the alias type in the database.
	Label = "alias"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldAlias holds the string denoting the alias field in the database.
	FieldAlias = "alias"
	// FieldCommandType holds the string denoting the command_type field in the database.
	FieldCommandType = "command_type"
	// FieldResponseText holds the string denoting the response_text field in the database.
	FieldResponseText = "response_text"
	// FieldActionCommand holds the string denoting the action_command field in the database.
	FieldActionCommand = "action_command"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUsageCount holds the string denoting the usage_count field in the database.
	FieldUsageCount = "usage_count"
	// FieldLastUsed holds the string denoting the last_used field in the database.
	FieldLastUsed = "last_used"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// Table holds the table name of the alias in the database.
	Table = "alias"
)

// Columns holds all SQL columns for alias fields.
var Columns = []string{
	FieldID,
	FieldEntityID,
	FieldAlias,
	FieldCommandType,
	FieldResponseText,
	FieldActionCommand,
	FieldCreatedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUsageCount,
	FieldLastUsed,
	FieldIsActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultUsageCount holds the default value on creation for the "usage_count" field.
	DefaultUsageCount int
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
)

// CommandType defines the type for the "command_type" enum field.
type CommandType string

// CommandTypeCommand is the default value of the CommandType enum.
const DefaultCommandType = CommandTypeCommand

// CommandType values.
const (
	CommandTypeText    CommandType = "text"
	CommandTypeAction  CommandType = "action"
	CommandTypeCommand CommandType = "command"
	CommandTypeCounter CommandType = "counter"
)

func (ct CommandType) String() string {
	return string(ct)
}

// CommandTypeValidator is a validator for the "command_type" field enum values. It is called by the builders before save.
func CommandTypeValidator(ct CommandType) error {
	switch ct {
	case CommandTypeText, CommandTypeAction, CommandTypeCommand, CommandTypeCounter:
		return nil
	default:
		return fmt.Errorf("alias: invalid enum value for command_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the Alias queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByAlias orders the results by the alias field.
func ByAlias(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlias, opts...).ToFunc()
}

// ByCommandType orders the results by the command_type field.
func ByCommandType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommandType, opts...).ToFunc()
}

// ByResponseText orders the results by the response_text field.
func ByResponseText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseText, opts...).ToFunc()
}

// ByActionCommand orders the results by the action_command field.
func ByActionCommand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionCommand, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUsageCount orders the results by the usage_count field.
func ByUsageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsageCount, opts...).ToFunc()
}

// ByLastUsed orders the results by the last_used field.
func ByLastUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsed, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}
