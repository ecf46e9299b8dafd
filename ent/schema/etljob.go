package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ETLJob holds the schema definition for the ETLJob entity — the
// job-state record keyed by (source_table, window_start). The "running"
// state acts as the claim lock for a window; re-runs of the same window
// are net-zero.
type ETLJob struct {
	ent.Schema
}

// Fields of the ETLJob.
func (ETLJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("source_table").
			Immutable(),
		field.Time("window_start").
			Immutable(),
		field.Time("window_end").
			Immutable(),
		field.Enum("state").
			Values("running", "done", "failed").
			Default("running"),
		field.Int("attempt").
			Default(1),
		field.Int("rows_in").
			Default(0),
		field.Int("rows_out").
			Default(0),
		field.Int("dead_letters").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("claimed_by").
			Optional().
			Comment("Worker identity holding the running claim"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ETLJob.
func (ETLJob) Indexes() []ent.Index {
	return []ent.Index{
		// One job record per (source_table, window)
		index.Fields("source_table", "window_start").
			Unique(),
		index.Fields("state"),
	}
}
