// Package contract declares the canonical log-row schema — the single
// source of truth consumed by the query planner, the ETL normalizer, and
// the tool runtime. Readers never touch source tables directly; the
// canonical fact table exposed through this contract is the only schema
// they reference.
package contract

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// SchemaVersion is the semantic version of the canonical contract.
// Additive changes bump minor; removals or type changes bump major and
// require a new logical view.
const SchemaVersion = "2.1.0"

// EnvelopeSchemaVersion is stamped into every row's envelope by the
// normalizer that wrote it.
const EnvelopeSchemaVersion = "v2"

// Severity is the normalized log severity. Values are upper-case; ordering
// is defined by Level, not lexicographically.
type Severity string

const (
	SeverityDefault   Severity = "DEFAULT"
	SeverityDebug     Severity = "DEBUG"
	SeverityInfo      Severity = "INFO"
	SeverityNotice    Severity = "NOTICE"
	SeverityWarning   Severity = "WARNING"
	SeverityError     Severity = "ERROR"
	SeverityCritical  Severity = "CRITICAL"
	SeverityAlert     Severity = "ALERT"
	SeverityEmergency Severity = "EMERGENCY"
)

// severityLevels maps each severity to its numeric level. The numeric
// level is a strict function of the severity name; filters like
// "severity >= ERROR" compare levels, never strings.
var severityLevels = map[Severity]int{
	SeverityDefault:   0,
	SeverityDebug:     100,
	SeverityInfo:      200,
	SeverityNotice:    300,
	SeverityWarning:   400,
	SeverityError:     500,
	SeverityCritical:  600,
	SeverityAlert:     700,
	SeverityEmergency: 800,
}

// Level returns the numeric severity level (0 for unknown values).
func (s Severity) Level() int {
	return severityLevels[s]
}

// Valid reports whether s is a member of the severity enum.
func (s Severity) Valid() bool {
	_, ok := severityLevels[s]
	return ok
}

// AtLeast reports whether s is at or above other by numeric level.
func (s Severity) AtLeast(other Severity) bool {
	return s.Level() >= other.Level()
}

// ParseSeverity validates a caller-provided severity string. It upper-cases
// the input but does not fall back: unknown values are an error. The ETL
// normalizer applies its own DEFAULT fallback via NormalizeSeverity.
func ParseSeverity(raw string) (Severity, error) {
	s := Severity(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown severity %q", raw)
	}
	return s, nil
}

// NormalizeSeverity upper-cases a source severity and falls back to
// DEFAULT for unknown values. Used only by the normalizer.
func NormalizeSeverity(raw string) Severity {
	s := Severity(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return SeverityDefault
	}
	return s
}

// Severities lists the enum in ascending level order.
func Severities() []Severity {
	return []Severity{
		SeverityDefault, SeverityDebug, SeverityInfo, SeverityNotice,
		SeverityWarning, SeverityError, SeverityCritical, SeverityAlert,
		SeverityEmergency,
	}
}

// PIIRisk classifies the privacy risk of a row's payload.
type PIIRisk string

const (
	PIIRiskNone     PIIRisk = "none"
	PIIRiskLow      PIIRisk = "low"
	PIIRiskModerate PIIRisk = "moderate"
	PIIRiskHigh     PIIRisk = "high"
)

// RetentionClass controls partition expiration policy for a row.
type RetentionClass string

const (
	RetentionStandard RetentionClass = "standard"
	RetentionAudit    RetentionClass = "audit"
)

// GroupByColumn is the closed set of aggregation dimensions accepted by
// the planner. Anything else is a usage error.
type GroupByColumn string

const (
	GroupBySeverity     GroupByColumn = "severity"
	GroupByServiceName  GroupByColumn = "service_name"
	GroupBySourceTable  GroupByColumn = "source_table"
	GroupByResourceType GroupByColumn = "resource_type"
)

// ValidGroupBy reports whether col is an allowed aggregation dimension.
func ValidGroupBy(col GroupByColumn) bool {
	switch col {
	case GroupBySeverity, GroupByServiceName, GroupBySourceTable, GroupByResourceType:
		return true
	}
	return false
}

// Actor identifies who or what produced an event.
type Actor struct {
	UserID    string `json:"user_id,omitempty"`
	TenantID  string `json:"tenant_id,omitempty"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// Correlation carries request-scoped correlation identifiers.
type Correlation struct {
	RequestID      string `json:"request_id,omitempty"`
	SessionID      string `json:"session_id,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// Privacy carries the PII classification for a row.
type Privacy struct {
	PIIRisk        PIIRisk        `json:"pii_risk"`
	RedactionState string         `json:"redaction_state,omitempty"`
	RetentionClass RetentionClass `json:"retention_class"`
}

// Envelope is the nested cross-cutting metadata attached to every
// canonical row: tracing context is top-level on the row; the envelope
// holds actor, correlation, privacy, and versioning.
type Envelope struct {
	SchemaVersion string      `json:"schema_version"`
	Environment   string      `json:"environment,omitempty"`
	Actor         Actor       `json:"actor"`
	Correlation   Correlation `json:"correlation"`
	Privacy       Privacy     `json:"privacy"`
	Versioning    string      `json:"versioning,omitempty"`
	Labels        []string    `json:"labels,omitempty"`
}

// CanonicalLogRow is the unified log row. Created exclusively by the ETL
// normalizer; immutable thereafter (logs are append-only).
type CanonicalLogRow struct {
	LogID    string    `json:"log_id"`
	EventTS  time.Time `json:"event_ts"`
	IngestTS time.Time `json:"ingest_ts,omitempty"`

	Severity      Severity `json:"severity"`
	SeverityLevel int      `json:"severity_level"`

	ServiceName   string `json:"service_name,omitempty"`
	LogType       string `json:"log_type,omitempty"`
	ResourceType  string `json:"resource_type,omitempty"`
	SourceTable   string `json:"source_table"`
	SourceDataset string `json:"source_dataset,omitempty"`

	Message      string `json:"message,omitempty"`
	TextPayload  string `json:"text_payload,omitempty"`
	JSONPayload  string `json:"json_payload,omitempty"`
	ProtoPayload string `json:"proto_payload,omitempty"`

	HTTPMethod    string `json:"http_method,omitempty"`
	HTTPURL       string `json:"http_url,omitempty"`
	HTTPStatus    int    `json:"http_status,omitempty"`
	HTTPLatencyMS int64  `json:"http_latency_ms,omitempty"`

	TraceID      string `json:"trace_id,omitempty"`
	SpanID       string `json:"span_id,omitempty"`
	ParentSpanID string `json:"parent_span_id,omitempty"`
	TraceSampled bool   `json:"trace_sampled,omitempty"`

	Envelope Envelope `json:"envelope"`

	IsError   bool `json:"is_error"`
	IsAudit   bool `json:"is_audit"`
	IsRequest bool `json:"is_request"`
	HasTrace  bool `json:"has_trace"`
}

// Validate checks the write-time invariants. Violations are data-integrity
// errors: the row goes to dead-letter and the batch continues.
func (r *CanonicalLogRow) Validate() error {
	if r.EventTS.IsZero() {
		return fmt.Errorf("event_ts is required")
	}
	if !r.Severity.Valid() {
		return fmt.Errorf("severity %q is not a member of the enum", r.Severity)
	}
	if r.SeverityLevel != r.Severity.Level() {
		return fmt.Errorf("severity_level %d does not match severity %s", r.SeverityLevel, r.Severity)
	}
	if r.SourceTable == "" {
		return fmt.Errorf("source_table is required")
	}
	if r.LogID == "" {
		return fmt.Errorf("log_id is required")
	}
	if r.Envelope.SchemaVersion != EnvelopeSchemaVersion {
		return fmt.Errorf("envelope schema_version %q, want %q", r.Envelope.SchemaVersion, EnvelopeSchemaVersion)
	}
	return nil
}

// SynthesizeLogID derives a stable log id for rows whose source has no
// native identifier. The id is a function of the event timestamp, the
// source table, and a content hash, so re-ingesting the same source row
// yields the same id.
func SynthesizeLogID(eventTS time.Time, sourceTable, content string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d|%s|%s", eventTS.UnixNano(), sourceTable, content)
	return hex.EncodeToString(h.Sum(nil))[:32]
}

// SynthesizeTrace derives deterministic trace and span ids for source rows
// that carry no trace context: the same (service, minute, insert id)
// always yields the same ids, so related rows correlate across replays.
func SynthesizeTrace(service string, eventTS time.Time, insertID string) (traceID, spanID string) {
	minute := eventTS.Truncate(time.Minute)
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%s", service, minute.Unix(), insertID)))
	sum := hex.EncodeToString(h[:])
	return sum[:32], sum[32:48]
}
