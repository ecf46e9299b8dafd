// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointsColumns holds the columns for the "checkpoints" table.
	CheckpointsColumns = []*schema.Column{
		{Name: "checkpoint_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "node_id", Type: field.TypeString},
		{Name: "terminal", Type: field.TypeBool, Default: false},
		{Name: "state_blob", Type: field.TypeBytes},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// CheckpointsTable holds the schema information for the "checkpoints" table.
	CheckpointsTable = &schema.Table{
		Name:       "checkpoints",
		Columns:    CheckpointsColumns,
		PrimaryKey: []*schema.Column{CheckpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "checkpoints_sessions_checkpoints",
				Columns:    []*schema.Column{CheckpointsColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_session_id_run_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{CheckpointsColumns[8], CheckpointsColumns[1], CheckpointsColumns[2]},
			},
			{
				Name:    "checkpoint_run_id_terminal",
				Unique:  false,
				Columns: []*schema.Column{CheckpointsColumns[1], CheckpointsColumns[4]},
			},
		},
	}
	// DeadLettersColumns holds the columns for the "dead_letters" table.
	DeadLettersColumns = []*schema.Column{
		{Name: "dead_letter_id", Type: field.TypeString, Unique: true},
		{Name: "source_table", Type: field.TypeString},
		{Name: "source_ref", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "reason", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DeadLettersTable holds the schema information for the "dead_letters" table.
	DeadLettersTable = &schema.Table{
		Name:       "dead_letters",
		Columns:    DeadLettersColumns,
		PrimaryKey: []*schema.Column{DeadLettersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deadletter_source_table_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[1], DeadLettersColumns[5]},
			},
		},
	}
	// EtlJobsColumns holds the columns for the "etl_jobs" table.
	EtlJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "source_table", Type: field.TypeString},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"running", "done", "failed"}, Default: "running"},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "rows_in", Type: field.TypeInt, Default: 0},
		{Name: "rows_out", Type: field.TypeInt, Default: 0},
		{Name: "dead_letters", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// EtlJobsTable holds the schema information for the "etl_jobs" table.
	EtlJobsTable = &schema.Table{
		Name:       "etl_jobs",
		Columns:    EtlJobsColumns,
		PrimaryKey: []*schema.Column{EtlJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "etljob_source_table_window_start",
				Unique:  true,
				Columns: []*schema.Column{EtlJobsColumns[1], EtlJobsColumns[2]},
			},
			{
				Name:    "etljob_state",
				Unique:  false,
				Columns: []*schema.Column{EtlJobsColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"system", "user", "assistant", "tool"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tokens", Type: field.TypeInt, Nullable: true},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "cost_impact", Type: field.TypeFloat64, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[9]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "archived"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "total_messages", Type: field.TypeInt, Default: 0},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[5]},
			},
		},
	}
	// ToolInvocationsColumns holds the columns for the "tool_invocations" table.
	ToolInvocationsColumns = []*schema.Column{
		{Name: "invocation_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "input", Type: field.TypeString, Size: 2147483647},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "error", "cancelled"}, Default: "running"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "tokens", Type: field.TypeInt, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Nullable: true},
		{Name: "estimated_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// ToolInvocationsTable holds the schema information for the "tool_invocations" table.
	ToolInvocationsTable = &schema.Table{
		Name:       "tool_invocations",
		Columns:    ToolInvocationsColumns,
		PrimaryKey: []*schema.Column{ToolInvocationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tool_invocations_sessions_tool_invocations",
				Columns:    []*schema.Column{ToolInvocationsColumns[12]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "toolinvocation_session_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ToolInvocationsColumns[12], ToolInvocationsColumns[6]},
			},
			{
				Name:    "toolinvocation_run_id",
				Unique:  false,
				Columns: []*schema.Column{ToolInvocationsColumns[1]},
			},
			{
				Name:    "toolinvocation_status",
				Unique:  false,
				Columns: []*schema.Column{ToolInvocationsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointsTable,
		DeadLettersTable,
		EtlJobsTable,
		MessagesTable,
		SessionsTable,
		ToolInvocationsTable,
	}
)

func init() {
	CheckpointsTable.ForeignKeys[0].RefTable = SessionsTable
	MessagesTable.ForeignKeys[0].RefTable = SessionsTable
	ToolInvocationsTable.ForeignKeys[0].RefTable = SessionsTable
}
