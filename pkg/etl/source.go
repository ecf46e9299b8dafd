// Package etl normalizes heterogeneous source tables into the canonical
// fact table. Work is partitioned into (source_table, hour bucket) units;
// job-state records make re-runs of a window net-zero.
package etl

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cloudsift/cloudsift/pkg/fault"
)

// SourceTable is the closed set of ingestible source tables. Each one
// has its own mapping function; anything else is a usage error.
type SourceTable string

const (
	// SourceSystemLogs carries plain-text host and daemon logs.
	SourceSystemLogs SourceTable = "system_logs"
	// SourceApplicationLogs carries structured JSON application logs.
	SourceApplicationLogs SourceTable = "application_logs"
	// SourceRequestLogs carries load-balancer request records.
	SourceRequestLogs SourceTable = "request_logs"
	// SourceVendorAuditLogs carries vendor-format admin audit records.
	SourceVendorAuditLogs SourceTable = "vendor_audit_logs"
)

// SourceTables lists every ingestible table.
func SourceTables() []SourceTable {
	return []SourceTable{
		SourceSystemLogs, SourceApplicationLogs,
		SourceRequestLogs, SourceVendorAuditLogs,
	}
}

// ParseSourceTable validates a caller-provided table name.
func ParseSourceTable(raw string) (SourceTable, error) {
	t := SourceTable(raw)
	switch t {
	case SourceSystemLogs, SourceApplicationLogs, SourceRequestLogs, SourceVendorAuditLogs:
		return t, nil
	}
	return "", fault.Usagef("unknown source table %q", raw)
}

// SourceRow is one raw row read from a source table. All source tables
// share this physical shape; the per-table payload format differs.
type SourceRow struct {
	InsertID string
	EventTS  time.Time
	Severity string
	Resource map[string]string
	Labels   map[string]string
	Payload  string
}

// Identity returns the source-native identity used for the idempotency
// key. Rows without an insert id fall back to the payload itself.
func (r *SourceRow) Identity() string {
	if r.InsertID != "" {
		return r.InsertID
	}
	return r.Payload
}

// Reader reads one window of source rows in stable order.
type Reader interface {
	ReadWindow(ctx context.Context, table SourceTable, start, end time.Time) ([]SourceRow, error)
}

// PGReader reads source tables over a pgx pool. Source tables are
// append-only staging relations loaded by collectors; the reader orders
// on (event_ts, insert_id) so replays see identical row sequences.
type PGReader struct {
	pool *pgxpool.Pool
}

// NewPGReader creates a reader over the shared fact-table pool.
func NewPGReader(pool *pgxpool.Pool) *PGReader {
	return &PGReader{pool: pool}
}

// ReadWindow reads rows within the half-open [start, end) window.
func (r *PGReader) ReadWindow(ctx context.Context, table SourceTable, start, end time.Time) ([]SourceRow, error) {
	// The table identifier comes from the closed SourceTable enum, never
	// from user input.
	sql := fmt.Sprintf(`SELECT insert_id, event_ts, severity, resource, labels, payload
FROM %s
WHERE event_ts >= @window_start AND event_ts < @window_end
ORDER BY event_ts, insert_id`, string(table))

	rows, err := r.pool.Query(ctx, sql, pgx.NamedArgs{
		"window_start": start,
		"window_end":   end,
	})
	if err != nil {
		return nil, fault.Wrap(fault.KindUnavailable, "source read failed", err)
	}
	defer rows.Close()

	var out []SourceRow
	for rows.Next() {
		var (
			row          SourceRow
			severity     *string
			resourceJSON []byte
			labelsJSON   []byte
		)
		if err := rows.Scan(&row.InsertID, &row.EventTS, &severity, &resourceJSON, &labelsJSON, &row.Payload); err != nil {
			return nil, fault.Wrap(fault.KindInternal, "failed to scan source row", err)
		}
		if severity != nil {
			row.Severity = *severity
		}
		if len(resourceJSON) > 0 {
			if err := json.Unmarshal(resourceJSON, &row.Resource); err != nil {
				return nil, fault.Wrap(fault.KindDataIntegrity, "malformed resource labels", err)
			}
		}
		if len(labelsJSON) > 0 {
			if err := json.Unmarshal(labelsJSON, &row.Labels); err != nil {
				return nil, fault.Wrap(fault.KindDataIntegrity, "malformed labels", err)
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Wrap(fault.KindUnavailable, "source read failed", err)
	}
	return out, nil
}
