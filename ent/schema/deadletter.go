package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeadLetter holds the schema definition for the DeadLetter entity —
// the sink for source rows that failed normalization. Carries the
// original payload and the error reason; the batch continues past them.
type DeadLetter struct {
	ent.Schema
}

// Fields of the DeadLetter.
func (DeadLetter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dead_letter_id").
			Unique().
			Immutable(),
		field.String("source_table").
			Immutable(),
		field.String("source_ref").
			Optional().
			Immutable().
			Comment("Source-native id or synthesized hash of the failed row"),
		field.Text("payload").
			Immutable().
			Comment("Original row payload, verbatim"),
		field.String("reason").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DeadLetter.
func (DeadLetter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_table", "created_at"),
	}
}
