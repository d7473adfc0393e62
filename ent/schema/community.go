package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Community holds the schema definition for the Community entity. A
// community is the tenant boundary: permissions, settings, caches, and
// scores are all community-scoped.
type Community struct {
	ent.Schema
}

// Fields of the Community.
func (Community) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("community_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("owner_id").
			Comment("Platform user id of the community owner"),
		field.JSON("settings", map[string]interface{}{}).
			Optional().
			Comment("Feature flags and tunables: translation, AI mode, rate limits, question triggers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Community.
func (Community) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("gateways", Gateway.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("members", Member.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("workflows", Workflow.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("bot_score", BotScore.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Community.
func (Community) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
