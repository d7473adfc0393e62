// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/waddlebot/waddlebot-core/ent/translationrecord"
)

// TranslationRecord is the model entity for the TranslationRecord schema.
type TranslationRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SHA-256 hex of "{src}:{tgt}:{text}"
	SourceHash string `json:"source_hash,omitempty"`
	// SourceLang holds the value of the "source_lang" field.
	SourceLang string `json:"source_lang,omitempty"`
	// TargetLang holds the value of the "target_lang" field.
	TargetLang string `json:"target_lang,omitempty"`
	// TranslatedText holds the value of the "translated_text" field.
	TranslatedText string `json:"translated_text,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// AccessCount holds the value of the "access_count" field.
	AccessCount int `json:"access_count,omitempty"`
	// LastAccessed holds the value of the "last_accessed" field.
	LastAccessed time.Time `json:"last_accessed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TranslationRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case translationrecord.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case translationrecord.FieldID, translationrecord.FieldAccessCount:
			values[i] = new(sql.NullInt64)
		case translationrecord.FieldSourceHash, translationrecord.FieldSourceLang, translationrecord.FieldTargetLang, translationrecord.FieldTranslatedText, translationrecord.FieldProvider:
			values[i] = new(sql.NullString)
		case translationrecord.FieldCreatedAt, translationrecord.FieldLastAccessed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TranslationRecord fields.
func (_m *TranslationRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case translationrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case translationrecord.FieldSourceHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_hash", values[i])
			} else if value.Valid {
				_m.SourceHash = value.String
			}
		case translationrecord.FieldSourceLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_lang", values[i])
			} else if value.Valid {
				_m.SourceLang = value.String
			}
		case translationrecord.FieldTargetLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_lang", values[i])
			} else if value.Valid {
				_m.TargetLang = value.String
			}
		case translationrecord.FieldTranslatedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field translated_text", values[i])
			} else if value.Valid {
				_m.TranslatedText = value.String
			}
		case translationrecord.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case translationrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case translationrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case translationrecord.FieldAccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field access_count", values[i])
			} else if value.Valid {
				_m.AccessCount = int(value.Int64)
			}
		case translationrecord.FieldLastAccessed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_accessed", values[i])
			} else if value.Valid {
				_m.LastAccessed = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TranslationRecord.
// This includes values selected through modifiers, order, etc.
func (_m *TranslationRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TranslationRecord.
// Note that you need to call TranslationRecord.Unwrap() before calling this method if this TranslationRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TranslationRecord) Update() *TranslationRecordUpdateOne {
	return NewTranslationRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TranslationRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TranslationRecord) Unwrap() *TranslationRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TranslationRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TranslationRecord) String() string {
	var builder strings.Builder
	builder.WriteString("TranslationRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_hash=")
	builder.WriteString(_m.SourceHash)
	builder.WriteString(", ")
	builder.WriteString("source_lang=")
	builder.WriteString(_m.SourceLang)
	builder.WriteString(", ")
	builder.WriteString("target_lang=")
	builder.WriteString(_m.TargetLang)
	builder.WriteString(", ")
	builder.WriteString("translated_text=")
	builder.WriteString(_m.TranslatedText)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("access_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccessCount))
	builder.WriteString(", ")
	builder.WriteString("last_accessed=")
	builder.WriteString(_m.LastAccessed.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TranslationRecords is a parsable slice of TranslationRecord.
type TranslationRecords []*TranslationRecord
