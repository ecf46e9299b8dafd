package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolInvocation holds the schema definition for the ToolInvocation
// entity — per-call telemetry written exclusively by the tool runtime.
type ToolInvocation struct {
	ent.Schema
}

// Fields of the ToolInvocation.
func (ToolInvocation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("invocation_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("run_id").
			Optional().
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.Text("input").
			Immutable().
			Comment("JSON input as received, post-validation"),
		field.Text("output").
			Optional().
			Comment("JSON result; error reason when status=error"),
		field.Enum("status").
			Values("running", "completed", "error", "cancelled").
			Default("running"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.Int("tokens").
			Optional().
			Nillable(),
		field.Float("cost_usd").
			Optional().
			Nillable(),
		field.Int64("estimated_bytes").
			Optional().
			Nillable().
			Comment("Cost-guard estimate for store-bound tools"),
	}
}

// Edges of the ToolInvocation.
func (ToolInvocation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("tool_invocations").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToolInvocation.
func (ToolInvocation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "started_at"),
		index.Fields("run_id"),
		index.Fields("status"),
	}
}
