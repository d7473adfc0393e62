package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord holds the schema definition for the SessionRecord entity:
// the correlation row written for every inbound event and marked when the
// session reaches a terminal state.
type SessionRecord struct {
	ent.Schema
}

// Fields of the SessionRecord.
func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("entity_id").
			Optional().
			Comment("Gateway id; empty when the session was rejected before resolution"),
		field.String("community_id").
			Optional(),
		field.Enum("platform").
			Values("twitch", "discord", "slack", "kick", "youtube"),
		field.String("user_id"),
		field.String("username"),
		field.String("message_type"),
		field.Enum("status").
			Values("received", "resolving", "dispatching", "collecting", "completed", "failed", "rejected").
			Default("received"),
		field.JSON("modules_invoked", []string{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the SessionRecord.
func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("community_id", "created_at"),
		index.Fields("status"),
	}
}
