// Package logstore executes planner queries against the canonical fact
// table and writes normalized rows into it. It is the only package that
// touches canonical_logs directly; everything above it speaks in
// contract.CanonicalLogRow and planner.Query.
package logstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cloudsift/cloudsift/pkg/contract"
	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/planner"
)

// Store executes read queries and byte estimation over a pgx pool.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// New creates a store over an existing pool.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{pool: pool, logger: logger.With("component", "logstore")}
}

// Connect opens a pgx pool for the fact table. Separate from the
// database/sql pool used by the session store: list queries and batch
// ingest benefit from pgx-native binary scanning.
func Connect(ctx context.Context, dsn string, maxConns int) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}
	cfg.MaxConns = int32(maxConns)
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// Bucket is one aggregate result row.
type Bucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// List runs a list- or trace-shaped query and scans the canonical rows.
func (s *Store) List(ctx context.Context, q *planner.Query) ([]contract.CanonicalLogRow, error) {
	rows, err := s.pool.Query(ctx, q.SQL, q.Args)
	if err != nil {
		return nil, fault.Wrap(fault.KindUnavailable, "log query failed", err)
	}
	defer rows.Close()

	var out []contract.CanonicalLogRow
	for rows.Next() {
		row, err := scanCanonicalRow(rows)
		if err != nil {
			return nil, fault.Wrap(fault.KindInternal, "failed to scan log row", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Wrap(fault.KindUnavailable, "log query failed", err)
	}
	return out, nil
}

// Aggregate runs an aggregate-shaped query and returns its buckets.
func (s *Store) Aggregate(ctx context.Context, q *planner.Query) ([]Bucket, error) {
	rows, err := s.pool.Query(ctx, q.SQL, q.Args)
	if err != nil {
		return nil, fault.Wrap(fault.KindUnavailable, "aggregate query failed", err)
	}
	defer rows.Close()

	var out []Bucket
	for rows.Next() {
		var b Bucket
		var key *string
		if err := rows.Scan(&key, &b.Count); err != nil {
			return nil, fault.Wrap(fault.KindInternal, "failed to scan bucket", err)
		}
		if key != nil {
			b.Key = *key
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Wrap(fault.KindUnavailable, "aggregate query failed", err)
	}
	return out, nil
}

// scanCanonicalRow scans one row in listColumns order. Nullable columns
// scan through pointers so absent values stay zero.
func scanCanonicalRow(rows pgx.Rows) (contract.CanonicalLogRow, error) {
	var (
		r            contract.CanonicalLogRow
		serviceName  *string
		logType      *string
		resourceType *string
		message      *string
		httpMethod   *string
		httpURL      *string
		httpStatus   *int
		httpLatency  *int64
		traceID      *string
		spanID       *string
		envelopeJSON []byte
	)
	err := rows.Scan(
		&r.LogID, &r.EventTS, &r.Severity, &r.SeverityLevel, &serviceName,
		&logType, &resourceType, &r.SourceTable, &message, &httpMethod,
		&httpURL, &httpStatus, &httpLatency, &traceID, &spanID, &envelopeJSON,
		&r.IsError, &r.IsAudit, &r.IsRequest, &r.HasTrace,
	)
	if err != nil {
		return r, err
	}
	assignString(&r.ServiceName, serviceName)
	assignString(&r.LogType, logType)
	assignString(&r.ResourceType, resourceType)
	assignString(&r.Message, message)
	assignString(&r.HTTPMethod, httpMethod)
	assignString(&r.HTTPURL, httpURL)
	assignString(&r.TraceID, traceID)
	assignString(&r.SpanID, spanID)
	if httpStatus != nil {
		r.HTTPStatus = *httpStatus
	}
	if httpLatency != nil {
		r.HTTPLatencyMS = *httpLatency
	}
	if len(envelopeJSON) > 0 {
		if err := json.Unmarshal(envelopeJSON, &r.Envelope); err != nil {
			return r, fmt.Errorf("failed to decode envelope: %w", err)
		}
	}
	return r, nil
}

func assignString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
