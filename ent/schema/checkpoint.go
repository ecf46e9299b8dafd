package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// Checkpoints form a tree per run (parent_id); writes are append-only —
// the orchestrator never mutates an existing checkpoint. A run resumes
// from its latest non-terminal checkpoint.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("sequence_number").
			Immutable().
			Comment("Run-scoped order"),
		field.String("node_id").
			Immutable().
			Comment("State-machine node: plan, act, observe, summarize, done, failed, cancelled"),
		field.Bool("terminal").
			Default(false).
			Immutable().
			Comment("True for done/failed/cancelled checkpoints"),
		field.Bytes("state_blob").
			Immutable().
			Comment("JSON snapshot: messages, pending tool calls, token budget, scratch"),
		field.String("parent_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Checkpoint.
func (Checkpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("checkpoints").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		// Run-scoped checkpoint order
		index.Fields("session_id", "run_id", "sequence_number").
			Unique(),
		index.Fields("run_id", "terminal"),
	}
}
