package logstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cloudsift/cloudsift/pkg/contract"
)

// upsertSQL writes one canonical row. The composite key makes window
// replays net-zero: a replayed row overwrites itself.
const upsertSQL = `INSERT INTO canonical_logs (
	log_id, event_day, event_ts, ingest_ts, severity, severity_level,
	service_name, log_type, resource_type, source_table, source_dataset,
	message, text_payload, json_payload, proto_payload,
	http_method, http_url, http_status, http_latency_ms,
	trace_id, span_id, parent_span_id, trace_sampled,
	envelope, is_error, is_audit, is_request, has_trace
) VALUES (
	@log_id, @event_day, @event_ts, @ingest_ts, @severity, @severity_level,
	@service_name, @log_type, @resource_type, @source_table, @source_dataset,
	@message, @text_payload, @json_payload, @proto_payload,
	@http_method, @http_url, @http_status, @http_latency_ms,
	@trace_id, @span_id, @parent_span_id, @trace_sampled,
	@envelope, @is_error, @is_audit, @is_request, @has_trace
) ON CONFLICT (log_id, event_day) DO UPDATE SET
	ingest_ts = EXCLUDED.ingest_ts,
	severity = EXCLUDED.severity,
	severity_level = EXCLUDED.severity_level,
	message = EXCLUDED.message,
	envelope = EXCLUDED.envelope`

// WriteBatch upserts a batch of canonical rows inside one transaction,
// creating the daily partitions the batch needs first. Returns the number
// of rows written.
func (s *Store) WriteBatch(ctx context.Context, batch []contract.CanonicalLogRow) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	days := map[time.Time]struct{}{}
	for i := range batch {
		days[dayOf(batch[i].EventTS)] = struct{}{}
	}
	for day := range days {
		s.ensurePartition(ctx, day)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin batch transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	b := &pgx.Batch{}
	for i := range batch {
		args, err := upsertArgs(&batch[i])
		if err != nil {
			return 0, err
		}
		b.Queue(upsertSQL, args)
	}

	br := tx.SendBatch(ctx, b)
	for range batch {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return 0, fmt.Errorf("batch upsert failed: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit batch: %w", err)
	}
	return len(batch), nil
}

// ensurePartition creates the daily partition if it does not exist.
// Creation can fail when the DEFAULT partition already holds rows for the
// day; the insert still succeeds against DEFAULT, so the failure is only
// logged.
func (s *Store) ensurePartition(ctx context.Context, day time.Time) {
	name := fmt.Sprintf("canonical_logs_p%s", day.Format("20060102"))
	sql := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s PARTITION OF canonical_logs FOR VALUES FROM ('%s') TO ('%s')",
		name, day.Format("2006-01-02"), day.AddDate(0, 0, 1).Format("2006-01-02"),
	)
	if _, err := s.pool.Exec(ctx, sql); err != nil {
		s.logger.Warn("partition creation failed, rows will land in default partition",
			"partition", name, "error", err)
	}
}

func dayOf(ts time.Time) time.Time {
	return ts.UTC().Truncate(24 * time.Hour)
}

func upsertArgs(r *contract.CanonicalLogRow) (pgx.NamedArgs, error) {
	envelope, err := json.Marshal(r.Envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope for %s: %w", r.LogID, err)
	}
	ingest := r.IngestTS
	if ingest.IsZero() {
		ingest = time.Now().UTC()
	}
	return pgx.NamedArgs{
		"log_id":          r.LogID,
		"event_day":       dayOf(r.EventTS),
		"event_ts":        r.EventTS,
		"ingest_ts":       ingest,
		"severity":        string(r.Severity),
		"severity_level":  r.SeverityLevel,
		"service_name":    nullable(r.ServiceName),
		"log_type":        nullable(r.LogType),
		"resource_type":   nullable(r.ResourceType),
		"source_table":    r.SourceTable,
		"source_dataset":  nullable(r.SourceDataset),
		"message":         nullable(r.Message),
		"text_payload":    nullable(r.TextPayload),
		"json_payload":    nullable(r.JSONPayload),
		"proto_payload":   nullable(r.ProtoPayload),
		"http_method":     nullable(r.HTTPMethod),
		"http_url":        nullable(r.HTTPURL),
		"http_status":     nullableInt(r.HTTPStatus),
		"http_latency_ms": nullableInt64(r.HTTPLatencyMS),
		"trace_id":        nullable(r.TraceID),
		"span_id":         nullable(r.SpanID),
		"parent_span_id":  nullable(r.ParentSpanID),
		"trace_sampled":   r.TraceSampled,
		"envelope":        envelope,
		"is_error":        r.IsError,
		"is_audit":        r.IsAudit,
		"is_request":      r.IsRequest,
		"has_trace":       r.HasTrace,
	}, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func nullableInt64(n int64) *int64 {
	if n == 0 {
		return nil
	}
	return &n
}
