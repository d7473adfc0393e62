package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workflow holds the schema definition for the Workflow entity: a stored
// node-graph definition owned by a community. The definition JSON is the
// validator's input shape.
type Workflow struct {
	ent.Schema
}

// Fields of the Workflow.
func (Workflow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workflow_id").
			Unique().
			Immutable(),
		field.String("community_id"),
		field.String("name"),
		field.JSON("definition", map[string]interface{}{}).
			Comment("Node graph: metadata, nodes, connections"),
		field.Bool("is_active").
			Default(true),
		field.String("created_by"),
		field.Int("version").
			Default(1),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Workflow.
func (Workflow) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("community", Community.Type).
			Ref("workflows").
			Field("community_id").
			Unique().
			Required(),
	}
}

// Indexes of the Workflow.
func (Workflow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("community_id", "is_active"),
	}
}
