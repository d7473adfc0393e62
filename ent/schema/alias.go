package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Alias holds the schema definition for the Alias entity: an entity-scoped
// short command expanded to a stored command at router input. Removal is a
// soft delete (is_active=false); uniqueness of (entity_id, alias) among
// active rows is enforced by a partial index applied in migrations.
type Alias struct {
	ent.Schema
}

// Fields of the Alias.
func (Alias) Fields() []ent.Field {
	return []ent.Field{
		field.String("entity_id").
			Comment("Gateway id the alias is scoped to"),
		field.String("alias").
			Comment("Alias name including the command prefix, e.g. !so"),
		field.Enum("command_type").
			Values("text", "action", "command", "counter").
			Default("command"),
		field.Text("response_text").
			Optional(),
		field.String("action_command").
			Optional().
			Comment("Stored command text with {user}/{arg1..n}/{all_args} placeholders"),
		field.String("created_by"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Int("usage_count").
			Default(0),
		field.Time("last_used").
			Optional().
			Nillable(),
		field.Bool("is_active").
			Default(true),
	}
}

// Indexes of the Alias.
func (Alias) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_id", "alias"),
		index.Fields("entity_id", "is_active"),
	}
}
