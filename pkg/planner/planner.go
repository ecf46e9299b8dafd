// Package planner builds parameterized fact-table queries from validated
// request structs. With the partition filter enabled (the default) every
// emitted query carries a closed time-range predicate on event_ts
// (partition pruning); disabling it lets a zero-window request scan
// unbounded, subject to the cost guard. Every query carries exactly one
// LIMIT; all user-provided values travel as named parameters — string
// interpolation of user input is forbidden by construction. The only
// identifiers spliced into SQL come from closed enums.
package planner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/contract"
	"github.com/cloudsift/cloudsift/pkg/fault"
)

// Sentinel errors for request validation. All are usage errors (400).
var (
	ErrInvalidSeverity      = errors.New("invalid severity")
	ErrLimitOutOfRange      = errors.New("limit out of range")
	ErrTimeWindowOutOfRange = errors.New("time window out of range")
	ErrUnknownGroupBy       = errors.New("unknown group_by column")
	ErrMissingTraceID       = errors.New("trace_id is required")
)

// LogQueryRequest is the validated input for list and aggregate queries.
// Zero values for TimeWindowHours and Limit take the configured defaults.
type LogQueryRequest struct {
	TimeWindowHours int                    `json:"time_window_hours,omitempty"`
	Limit           int                    `json:"limit,omitempty"`
	Severity        string                 `json:"severity,omitempty"`
	Service         string                 `json:"service,omitempty"`
	Search          string                 `json:"search,omitempty"`
	TraceID         string                 `json:"trace_id,omitempty"`
	GroupBy         contract.GroupByColumn `json:"group_by,omitempty"`
}

// Query is the planner's output: a SQL template plus its named parameter
// map. The store binds parameters server-side; the template never embeds
// user input.
type Query struct {
	SQL  string
	Args pgx.NamedArgs
}

// Planner builds canonical-view queries. The fact table is the only
// relation it references.
type Planner struct {
	cfg config.QueryConfig
	now func() time.Time
}

// New creates a planner bound to the query configuration.
func New(cfg config.QueryConfig) *Planner {
	return &Planner{cfg: cfg, now: time.Now}
}

// WithClock overrides the planner clock. Test hook.
func (p *Planner) WithClock(now func() time.Time) *Planner {
	p.now = now
	return p
}

// listColumns is the canonical-row subset returned by list and trace
// queries. Kept in one place so readers and scanners stay aligned.
const listColumns = `log_id, event_ts, severity, severity_level, service_name,
	log_type, resource_type, source_table, message, http_method, http_url,
	http_status, http_latency_ms, trace_id, span_id, envelope,
	is_error, is_audit, is_request, has_trace`

// Normalize applies configured defaults and validates range constraints.
// It mutates the request in place and returns the first violation found.
// A zero time window takes the configured default while the partition
// filter is required; with the filter disabled it stays zero and the
// query runs unbounded.
func (p *Planner) Normalize(req *LogQueryRequest) error {
	if req.TimeWindowHours == 0 && p.cfg.RequirePartitionFilter {
		req.TimeWindowHours = p.cfg.DefaultTimeWindowHours
	}
	if req.Limit == 0 {
		req.Limit = p.cfg.DefaultLimit
	}
	if req.TimeWindowHours != 0 && (req.TimeWindowHours < 1 || req.TimeWindowHours > p.cfg.MaxTimeWindowHours) {
		return fault.Wrap(fault.KindUsage,
			fmt.Sprintf("time_window_hours must be in [1,%d]", p.cfg.MaxTimeWindowHours),
			ErrTimeWindowOutOfRange)
	}
	if req.Limit < 1 || req.Limit > p.cfg.MaxLimit {
		return fault.Wrap(fault.KindUsage,
			fmt.Sprintf("limit must be in [1,%d]", p.cfg.MaxLimit),
			ErrLimitOutOfRange)
	}
	if req.Severity != "" {
		sev, err := contract.ParseSeverity(req.Severity)
		if err != nil {
			return fault.Wrap(fault.KindUsage, err.Error(), ErrInvalidSeverity)
		}
		req.Severity = string(sev)
	}
	if req.GroupBy != "" && !contract.ValidGroupBy(req.GroupBy) {
		return fault.Wrap(fault.KindUsage,
			fmt.Sprintf("group_by must be one of severity, service_name, source_table, resource_type; got %q", req.GroupBy),
			ErrUnknownGroupBy)
	}
	return nil
}

// BuildList builds the list-shape query: filtered rows ordered by
// event_ts desc.
func (p *Planner) BuildList(req *LogQueryRequest) (*Query, error) {
	if err := p.Normalize(req); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + listColumns + "\nFROM canonical_logs\n")
	args := p.whereWindow(&sb, req)

	p.appendFilters(&sb, args, req)

	sb.WriteString("\nORDER BY event_ts DESC\nLIMIT @row_limit")
	args["row_limit"] = req.Limit

	return &Query{SQL: sb.String(), Args: args}, nil
}

// BuildAggregate builds the aggregate shape: bucket counts over the
// requested dimension, ordered by count desc.
func (p *Planner) BuildAggregate(req *LogQueryRequest) (*Query, error) {
	if err := p.Normalize(req); err != nil {
		return nil, err
	}
	if req.GroupBy == "" {
		return nil, fault.Wrap(fault.KindUsage, "group_by is required for aggregate queries", ErrUnknownGroupBy)
	}
	col, err := groupByIdent(req.GroupBy)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s AS bucket_key, COUNT(*) AS bucket_count\nFROM canonical_logs\n", col)
	args := p.whereWindow(&sb, req)

	p.appendFilters(&sb, args, req)

	fmt.Fprintf(&sb, "\nGROUP BY %s\nORDER BY bucket_count DESC, bucket_key ASC\nLIMIT @row_limit", col)
	args["row_limit"] = req.Limit

	return &Query{SQL: sb.String(), Args: args}, nil
}

// BuildTrace builds the trace reconstruction query. Trace queries bypass
// service and severity filters and order ascending for timeline assembly.
func (p *Planner) BuildTrace(traceID string, windowHours, limit int) (*Query, error) {
	if strings.TrimSpace(traceID) == "" {
		return nil, fault.Wrap(fault.KindUsage, "trace_id must be non-empty", ErrMissingTraceID)
	}
	req := &LogQueryRequest{TimeWindowHours: windowHours, Limit: limit}
	if err := p.Normalize(req); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + listColumns + "\nFROM canonical_logs\n")
	args := p.whereWindow(&sb, req)
	args["trace_id"] = traceID
	args["row_limit"] = req.Limit

	sb.WriteString("\n  AND trace_id = @trace_id")
	sb.WriteString("\nORDER BY event_ts ASC\nLIMIT @row_limit")

	return &Query{SQL: sb.String(), Args: args}, nil
}

// whereWindow writes the WHERE clause opener. Requests with a window get
// the closed half-open time predicate; a zero window (possible only when
// the partition filter is disabled) scans unbounded.
func (p *Planner) whereWindow(sb *strings.Builder, req *LogQueryRequest) pgx.NamedArgs {
	if req.TimeWindowHours == 0 {
		sb.WriteString("WHERE TRUE")
		return pgx.NamedArgs{}
	}
	sb.WriteString("WHERE event_ts >= @window_start AND event_ts < @window_end")
	end := p.now()
	return pgx.NamedArgs{
		"window_start": end.Add(-time.Duration(req.TimeWindowHours) * time.Hour),
		"window_end":   end,
	}
}

// appendFilters adds the optional list filters. Trace id, when present,
// wins over service and severity (trace reconstruction semantics).
func (p *Planner) appendFilters(sb *strings.Builder, args pgx.NamedArgs, req *LogQueryRequest) {
	if req.TraceID != "" {
		sb.WriteString("\n  AND trace_id = @trace_id")
		args["trace_id"] = req.TraceID
		return
	}
	if req.Severity != "" {
		sb.WriteString("\n  AND severity = @severity")
		args["severity"] = req.Severity
	}
	if req.Service != "" {
		sb.WriteString("\n  AND service_name = @service")
		args["service"] = req.Service
	}
	if req.Search != "" {
		sb.WriteString("\n  AND (message ILIKE @search OR text_payload ILIKE @search)")
		args["search"] = "%" + escapeLike(req.Search) + "%"
	}
}

// groupByIdent maps the closed group-by enum to a column identifier.
// Only enum members reach this point; the mapping is the sole place an
// identifier enters SQL.
func groupByIdent(col contract.GroupByColumn) (string, error) {
	switch col {
	case contract.GroupBySeverity:
		return "severity", nil
	case contract.GroupByServiceName:
		return "service_name", nil
	case contract.GroupBySourceTable:
		return "source_table", nil
	case contract.GroupByResourceType:
		return "resource_type", nil
	default:
		return "", fault.Wrap(fault.KindUsage, fmt.Sprintf("unknown group_by %q", col), ErrUnknownGroupBy)
	}
}

// escapeLike escapes LIKE wildcards so search is containment, not
// pattern matching.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
