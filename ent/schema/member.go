package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Member holds the schema definition for the Member entity: a platform user's
// membership and role within one community.
type Member struct {
	ent.Schema
}

// Fields of the Member.
func (Member) Fields() []ent.Field {
	return []ent.Field{
		field.String("community_id"),
		field.String("user_id").
			Comment("Platform user id"),
		field.Enum("role").
			Values("owner", "admin", "moderator", "member", "visitor").
			Default("member"),
		field.JSON("capabilities", []string{}).
			Optional().
			Comment("Delegated per-resource grants, e.g. calendar:event:42:admin"),
		field.Time("joined_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Member.
func (Member) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("community", Community.Type).
			Ref("members").
			Field("community_id").
			Unique().
			Required(),
	}
}

// Indexes of the Member.
func (Member) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("community_id", "user_id").
			Unique(),
	}
}
