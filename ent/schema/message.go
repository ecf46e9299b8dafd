package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Append-only within a session; readers observe writes in insertion
// order via the session-scoped sequence number.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("sequence_number").
			Immutable().
			Comment("Session-scoped insertion order, assigned by the store"),
		field.Enum("role").
			Values("system", "user", "assistant", "tool"),
		field.Text("content"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Server-assigned timestamp; monotonic per session"),

		// Metadata
		field.Int("tokens").
			Optional().
			Nillable(),
		field.JSON("tool_calls", []map[string]interface{}{}).
			Optional().
			Comment("For assistant messages: tool calls requested by the model"),
		field.Float("cost_impact").
			Optional().
			Nillable(),
		field.Int("latency_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Per-session insertion order
		index.Fields("session_id", "sequence_number").
			Unique(),
	}
}
