// Package alertbus carries error-row alerts from the ETL normalizer to
// the vector index writer over PostgreSQL NOTIFY/LISTEN. Alerts are
// transient: a writer that was down during a window picks the rows up
// via backfill instead.
package alertbus

import "time"

// Channel is the NOTIFY channel for error-row alerts.
const Channel = "cloudsift_alerts"

// notifyLimit keeps payloads under PostgreSQL's 8000-byte NOTIFY cap,
// with headroom for quoting.
const notifyLimit = 7900

// ErrorAlert announces a newly ingested error-severity row. Snippet is
// the redacted message head; the writer embeds it and assigns the row to
// a cluster.
type ErrorAlert struct {
	LogID       string    `json:"log_id"`
	EventTS     time.Time `json:"event_ts"`
	ServiceName string    `json:"service_name,omitempty"`
	Severity    string    `json:"severity"`
	SourceTable string    `json:"source_table"`
	TraceID     string    `json:"trace_id,omitempty"`
	Snippet     string    `json:"snippet"`
}
