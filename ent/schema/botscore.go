package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// BotScore holds the schema definition for the BotScore entity: the cached
// composite health score of one community. Reads past next_recalculation
// trigger a recompute.
type BotScore struct {
	ent.Schema
}

// Fields of the BotScore.
func (BotScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("community_id").
			Unique(),
		field.Int("overall").
			Comment("Weighted composite, clamped to [0,100]"),
		field.String("grade").
			MaxLen(1),
		field.Enum("size_category").
			Values("small", "medium", "large"),
		field.Float("bad_actor_score"),
		field.Float("reputation_score"),
		field.Float("security_score"),
		field.Float("ai_behavioral_score"),
		field.JSON("weights", map[string]float64{}),
		field.Time("calculated_at").
			Default(time.Now),
		field.Time("next_recalculation"),
	}
}

// Edges of the BotScore.
func (BotScore) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("community", Community.Type).
			Ref("bot_score").
			Field("community_id").
			Unique().
			Required(),
	}
}
