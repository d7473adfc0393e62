package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Gateway holds the schema definition for the Gateway entity: an addressable
// platform location (platform : server : channel) activated into a community.
type Gateway struct {
	ent.Schema
}

// Fields of the Gateway.
func (Gateway) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("gateway_id").
			Unique().
			Immutable(),
		field.Enum("platform").
			Values("twitch", "discord", "slack", "kick", "youtube"),
		field.String("server_id").
			Comment("Platform server/guild identifier; empty for platforms without servers"),
		field.String("channel_id"),
		field.String("community_id"),
		field.String("activation_code").
			Comment("One-time code the operator enters to complete platform onboarding"),
		field.Bool("activated").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("activated_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Gateway.
func (Gateway) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("community", Community.Type).
			Ref("gateways").
			Field("community_id").
			Unique().
			Required(),
	}
}

// Indexes of the Gateway.
func (Gateway) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "server_id", "channel_id").
			Unique(),
		index.Fields("community_id"),
		index.Fields("activation_code"),
	}
}
