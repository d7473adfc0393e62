// Code generated by ent, DO NOT EDIT.

package translationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the translationrecord type in the database.
	Label = "translation_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceHash holds the string denoting the source_hash field in the database.
	FieldSourceHash = "source_hash"
	// FieldSourceLang holds the string denoting the source_lang field in the database.
	FieldSourceLang = "source_lang"
	// FieldTargetLang holds the string denoting the target_lang field in the database.
	FieldTargetLang = "target_lang"
	// FieldTranslatedText holds the string denoting the translated_text field in the database.
	FieldTranslatedText = "translated_text"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAccessCount holds the string denoting the access_count field in the database.
	FieldAccessCount = "access_count"
	// FieldLastAccessed holds the string denoting the last_accessed field in the database.
	FieldLastAccessed = "last_accessed"
	// Table holds the table name of the translationrecord in the database.
	Table = "translation_records"
)

// Columns holds all SQL columns for translationrecord fields.
var Columns = []string{
	FieldID,
	FieldSourceHash,
	FieldSourceLang,
	FieldTargetLang,
	FieldTranslatedText,
	FieldProvider,
	FieldConfidence,
	FieldCreatedAt,
	FieldAccessCount,
	FieldLastAccessed,
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
	// SourceHashValidator is a validator for the "source_hash" field. It is called by the builders before save.
	SourceHashValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultAccessCount holds the default value on creation for the "access_count" field.
	DefaultAccessCount int
	// DefaultLastAccessed holds the default value on creation for the "last_accessed" field.
	DefaultLastAccessed func() time.Time
)

// OrderOption defines the ordering options for the TranslationRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceHash orders the results by the source_hash field.
func BySourceHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceHash, opts...).ToFunc()
}

// BySourceLang orders the results by the source_lang field.
func BySourceLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceLang, opts...).ToFunc()
}

// ByTargetLang orders the results by the target_lang field.
func ByTargetLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLang, opts...).ToFunc()
}

// ByTranslatedText orders the results by the translated_text field.
func ByTranslatedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranslatedText, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAccessCount orders the results by the access_count field.
func ByAccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessCount, opts...).ToFunc()
}

// ByLastAccessed orders the results by the last_accessed field.
func ByLastAccessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAccessed, opts...).ToFunc()
}
