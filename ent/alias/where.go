// Code generated by ent, DO NOT EDIT.

package alias

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/waddlebot/waddlebot-core/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Alias {
	return predicate.Alias(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Alias {
	return predicate.Alias(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Alias {
	return predicate.Alias(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Alias {
	return predicate.Alias(sql.FieldLTE(FieldID, id))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldEntityID, v))
}

// Alias applies equality check predicate on the "alias" field. It's identical to AliasEQ.
func Alias(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldAlias, v))
}

// ResponseText applies equality check predicate on the "response_text" field. It's identical to ResponseTextEQ.
func ResponseText(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldResponseText, v))
}

// ActionCommand applies equality check predicate on the "action_command" field. It's identical to ActionCommandEQ.
func ActionCommand(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldActionCommand, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldUpdatedAt, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldUsageCount, v))
}

// LastUsed applies equality check predicate on the "last_used" field. It's identical to LastUsedEQ.
func LastUsed(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldLastUsed, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldIsActive, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.Alias {
	return predicate.Alias(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.Alias {
	return predicate.Alias(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.Alias {
	return predicate.Alias(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.Alias {
	return predicate.Alias(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.Alias {
	return predicate.Alias(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.Alias {
	return predicate.Alias(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.Alias {
	return predicate.Alias(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.Alias {
	return predicate.Alias(sql.FieldContainsFold(FieldEntityID, v))
}

// AliasEQ applies the EQ predicate on the "alias" field.
func AliasEQ(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldAlias, v))
}

// AliasNEQ applies the NEQ predicate on the "alias" field.
func AliasNEQ(v string) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldAlias, v))
}

// AliasIn applies the In predicate on the "alias" field.
func AliasIn(vs ...string) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldAlias, vs...))
}

// AliasNotIn applies the NotIn predicate on the "alias" field.
func AliasNotIn(vs ...string) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldAlias, vs...))
}

// AliasGT applies the GT predicate on the "alias" field.
func AliasGT(v string) predicate.Alias {
	return predicate.Alias(sql.FieldGT(FieldAlias, v))
}

// AliasGTE applies the GTE predicate on the "alias" field.
func AliasGTE(v string) predicate.Alias {
	return predicate.Alias(sql.FieldGTE(FieldAlias, v))
}

// AliasLT applies the LT predicate on the "alias" field.
func AliasLT(v string) predicate.Alias {
	return predicate.Alias(sql.FieldLT(FieldAlias, v))
}

// AliasLTE applies the LTE predicate on the "alias" field.
func AliasLTE(v string) predicate.Alias {
	return predicate.Alias(sql.FieldLTE(FieldAlias, v))
}

// AliasContains applies the Contains predicate on the "alias" field.
func AliasContains(v string) predicate.Alias {
	return predicate.Alias(sql.FieldContains(FieldAlias, v))
}

// AliasHasPrefix applies the HasPrefix predicate on the "alias" field.
func AliasHasPrefix(v string) predicate.Alias {
	return predicate.Alias(sql.FieldHasPrefix(FieldAlias, v))
}

// AliasHasSuffix applies the HasSuffix predicate on the "alias" field.
func AliasHasSuffix(v string) predicate.Alias {
	return predicate.Alias(sql.FieldHasSuffix(FieldAlias, v))
}

// AliasEqualFold applies the EqualFold predicate on the "alias" field.
func AliasEqualFold(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEqualFold(FieldAlias, v))
}

// AliasContainsFold applies the ContainsFold predicate on the "alias" field.
func AliasContainsFold(v string) predicate.Alias {
	return predicate.Alias(sql.FieldContainsFold(FieldAlias, v))
}

// CommandTypeEQ applies the EQ predicate on the "command_type" field.
func CommandTypeEQ(v CommandType) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldCommandType, v))
}

// CommandTypeNEQ applies the NEQ predicate on the "command_type" field.
func CommandTypeNEQ(v CommandType) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldCommandType, v))
}

// CommandTypeIn applies the In predicate on the "command_type" field.
func CommandTypeIn(vs ...CommandType) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldCommandType, vs...))
}

// CommandTypeNotIn applies the NotIn predicate on the "command_type" field.
func CommandTypeNotIn(vs ...CommandType) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldCommandType, vs...))
}

// ResponseTextEQ applies the EQ predicate on the "response_text" field.
func ResponseTextEQ(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldResponseText, v))
}

// ResponseTextNEQ applies the NEQ predicate on the "response_text" field.
func ResponseTextNEQ(v string) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldResponseText, v))
}

// ResponseTextIn applies the In predicate on the "response_text" field.
func ResponseTextIn(vs ...string) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldResponseText, vs...))
}

// ResponseTextNotIn applies the NotIn predicate on the "response_text" field.
func ResponseTextNotIn(vs ...string) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldResponseText, vs...))
}

// ResponseTextGT applies the GT predicate on the "response_text" field.
func ResponseTextGT(v string) predicate.Alias {
	return predicate.Alias(sql.FieldGT(FieldResponseText, v))
}

// ResponseTextGTE applies the GTE predicate on the "response_text" field.
func ResponseTextGTE(v string) predicate.Alias {
	return predicate.Alias(sql.FieldGTE(FieldResponseText, v))
}

// ResponseTextLT applies the LT predicate on the "response_text" field.
func ResponseTextLT(v string) predicate.Alias {
	return predicate.Alias(sql.FieldLT(FieldResponseText, v))
}

// ResponseTextLTE applies the LTE predicate on the "response_text" field.
func ResponseTextLTE(v string) predicate.Alias {
	return predicate.Alias(sql.FieldLTE(FieldResponseText, v))
}

// ResponseTextContains applies the Contains predicate on the "response_text" field.
func ResponseTextContains(v string) predicate.Alias {
	return predicate.Alias(sql.FieldContains(FieldResponseText, v))
}

// ResponseTextHasPrefix applies the HasPrefix predicate on the "response_text" field.
func ResponseTextHasPrefix(v string) predicate.Alias {
	return predicate.Alias(sql.FieldHasPrefix(FieldResponseText, v))
}

// ResponseTextHasSuffix applies the HasSuffix predicate on the "response_text" field.
func ResponseTextHasSuffix(v string) predicate.Alias {
	return predicate.Alias(sql.FieldHasSuffix(FieldResponseText, v))
}

// ResponseTextIsNil applies the IsNil predicate on the "response_text" field.
func ResponseTextIsNil() predicate.Alias {
	return predicate.Alias(sql.FieldIsNull(FieldResponseText))
}

// ResponseTextNotNil applies the NotNil predicate on the "response_text" field.
func ResponseTextNotNil() predicate.Alias {
	return predicate.Alias(sql.FieldNotNull(FieldResponseText))
}

// ResponseTextEqualFold applies the EqualFold predicate on the "response_text" field.
func ResponseTextEqualFold(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEqualFold(FieldResponseText, v))
}

// ResponseTextContainsFold applies the ContainsFold predicate on the "response_text" field.
func ResponseTextContainsFold(v string) predicate.Alias {
	return predicate.Alias(sql.FieldContainsFold(FieldResponseText, v))
}

// ActionCommandEQ applies the EQ predicate on the "action_command" field.
func ActionCommandEQ(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldActionCommand, v))
}

// ActionCommandNEQ applies the NEQ predicate on the "action_command" field.
func ActionCommandNEQ(v string) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldActionCommand, v))
}

// ActionCommandIn applies the In predicate on the "action_command" field.
func ActionCommandIn(vs ...string) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldActionCommand, vs...))
}

// ActionCommandNotIn applies the NotIn predicate on the "action_command" field.
func ActionCommandNotIn(vs ...string) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldActionCommand, vs...))
}

// ActionCommandGT applies the GT predicate on the "action_command" field.
func ActionCommandGT(v string) predicate.Alias {
	return predicate.Alias(sql.FieldGT(FieldActionCommand, v))
}

// ActionCommandGTE applies the GTE predicate on the "action_command" field.
func ActionCommandGTE(v string) predicate.Alias {
	return predicate.Alias(sql.FieldGTE(FieldActionCommand, v))
}

// ActionCommandLT applies the LT predicate on the "action_command" field.
func ActionCommandLT(v string) predicate.Alias {
	return predicate.Alias(sql.FieldLT(FieldActionCommand, v))
}

// ActionCommandLTE applies the LTE predicate on the "action_command" field.
func ActionCommandLTE(v string) predicate.Alias {
	return predicate.Alias(sql.FieldLTE(FieldActionCommand, v))
}

// ActionCommandContains applies the Contains predicate on the "action_command" field.
func ActionCommandContains(v string) predicate.Alias {
	return predicate.Alias(sql.FieldContains(FieldActionCommand, v))
}

// ActionCommandHasPrefix applies the HasPrefix predicate on the "action_command" field.
func ActionCommandHasPrefix(v string) predicate.Alias {
	return predicate.Alias(sql.FieldHasPrefix(FieldActionCommand, v))
}

// ActionCommandHasSuffix applies the HasSuffix predicate on the "action_command" field.
func ActionCommandHasSuffix(v string) predicate.Alias {
	return predicate.Alias(sql.FieldHasSuffix(FieldActionCommand, v))
}

// ActionCommandIsNil applies the IsNil predicate on the "action_command" field.
func ActionCommandIsNil() predicate.Alias {
	return predicate.Alias(sql.FieldIsNull(FieldActionCommand))
}

// ActionCommandNotNil applies the NotNil predicate on the "action_command" field.
func ActionCommandNotNil() predicate.Alias {
	return predicate.Alias(sql.FieldNotNull(FieldActionCommand))
}

// ActionCommandEqualFold applies the EqualFold predicate on the "action_command" field.
func ActionCommandEqualFold(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEqualFold(FieldActionCommand, v))
}

// ActionCommandContainsFold applies the ContainsFold predicate on the "action_command" field.
func ActionCommandContainsFold(v string) predicate.Alias {
	return predicate.Alias(sql.FieldContainsFold(FieldActionCommand, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Alias {
	return predicate.Alias(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Alias {
	return predicate.Alias(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Alias {
	return predicate.Alias(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Alias {
	return predicate.Alias(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Alias {
	return predicate.Alias(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Alias {
	return predicate.Alias(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Alias {
	return predicate.Alias(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Alias {
	return predicate.Alias(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Alias {
	return predicate.Alias(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldLTE(FieldUpdatedAt, v))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.Alias {
	return predicate.Alias(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.Alias {
	return predicate.Alias(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.Alias {
	return predicate.Alias(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.Alias {
	return predicate.Alias(sql.FieldLTE(FieldUsageCount, v))
}

// LastUsedEQ applies the EQ predicate on the "last_used" field.
func LastUsedEQ(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldLastUsed, v))
}

// LastUsedNEQ applies the NEQ predicate on the "last_used" field.
func LastUsedNEQ(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldLastUsed, v))
}

// LastUsedIn applies the In predicate on the "last_used" field.
func LastUsedIn(vs ...time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldIn(FieldLastUsed, vs...))
}

// LastUsedNotIn applies the NotIn predicate on the "last_used" field.
func LastUsedNotIn(vs ...time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldNotIn(FieldLastUsed, vs...))
}

// LastUsedGT applies the GT predicate on the "last_used" field.
func LastUsedGT(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldGT(FieldLastUsed, v))
}

// LastUsedGTE applies the GTE predicate on the "last_used" field.
func LastUsedGTE(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldGTE(FieldLastUsed, v))
}

// LastUsedLT applies the LT predicate on the "last_used" field.
func LastUsedLT(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldLT(FieldLastUsed, v))
}

// LastUsedLTE applies the LTE predicate on the "last_used" field.
func LastUsedLTE(v time.Time) predicate.Alias {
	return predicate.Alias(sql.FieldLTE(FieldLastUsed, v))
}

// LastUsedIsNil applies the IsNil predicate on the "last_used" field.
func LastUsedIsNil() predicate.Alias {
	return predicate.Alias(sql.FieldIsNull(FieldLastUsed))
}

// LastUsedNotNil applies the NotNil predicate on the "last_used" field.
func LastUsedNotNil() predicate.Alias {
	return predicate.Alias(sql.FieldNotNull(FieldLastUsed))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Alias {
	return predicate.Alias(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Alias {
	return predicate.Alias(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Alias) predicate.Alias {
	return predicate.Alias(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Alias) predicate.Alias {
	return predicate.Alias(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Alias) predicate.Alias {
	return predicate.Alias(sql.NotPredicates(p))
}
