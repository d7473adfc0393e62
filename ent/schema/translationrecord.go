package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TranslationRecord holds the schema definition for the TranslationRecord
// entity: the durable (L3) tier of the translation cache. Rows are upserted
// on source_hash so concurrent misses converge, and a GC pass removes
// low-use old rows.
type TranslationRecord struct {
	ent.Schema
}

// Fields of the TranslationRecord.
func (TranslationRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("source_hash").
			MaxLen(64).
			Unique().
			Comment("SHA-256 hex of \"{src}:{tgt}:{text}\""),
		field.String("source_lang"),
		field.String("target_lang"),
		field.Text("translated_text"),
		field.String("provider"),
		field.Float("confidence"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Int("access_count").
			Default(1),
		field.Time("last_accessed").
			Default(time.Now),
	}
}

// Indexes of the TranslationRecord.
func (TranslationRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("access_count", "last_accessed"),
	}
}
