package etl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudsift/cloudsift/pkg/contract"
)

// mapFunc normalizes one source row into a canonical row. Mapping errors
// send the row to dead-letter; the batch continues.
type mapFunc func(row *SourceRow) (contract.CanonicalLogRow, error)

// mappings binds each source table to its mapper.
var mappings = map[SourceTable]mapFunc{
	SourceSystemLogs:      mapSystemLog,
	SourceApplicationLogs: mapApplicationLog,
	SourceRequestLogs:     mapRequestLog,
	SourceVendorAuditLogs: mapVendorAudit,
}

// baseRow fills the fields every mapping shares: identity, timestamps,
// severity normalization, service derivation, and trace synthesis.
func baseRow(row *SourceRow, table SourceTable, logType string) (contract.CanonicalLogRow, error) {
	if row.EventTS.IsZero() {
		return contract.CanonicalLogRow{}, fmt.Errorf("missing event_ts")
	}

	severity := contract.NormalizeSeverity(row.Severity)
	service := deriveService(row)

	r := contract.CanonicalLogRow{
		LogID:         contract.SynthesizeLogID(row.EventTS, string(table), row.Identity()),
		EventTS:       row.EventTS,
		Severity:      severity,
		SeverityLevel: severity.Level(),
		ServiceName:   service,
		LogType:       logType,
		ResourceType:  deriveResourceType(row),
		SourceTable:   string(table),
	}
	r.IsError = severity.AtLeast(contract.SeverityError)
	return r, nil
}

// deriveService resolves service_name from resource labels with
// documented fallbacks: resource.service, then labels.app, then the
// resource module name, then "unknown".
func deriveService(row *SourceRow) string {
	if s := row.Resource["service"]; s != "" {
		return s
	}
	if s := row.Labels["app"]; s != "" {
		return s
	}
	if s := row.Resource["module"]; s != "" {
		return s
	}
	return "unknown"
}

func deriveResourceType(row *SourceRow) string {
	if t := row.Resource["type"]; t != "" {
		return t
	}
	return "unspecified"
}

// finishTrace fills trace context, synthesizing deterministic ids when
// the source carries none so related rows correlate across replays.
func finishTrace(r *contract.CanonicalLogRow, row *SourceRow, traceID, spanID string) {
	if traceID == "" {
		traceID, spanID = contract.SynthesizeTrace(r.ServiceName, r.EventTS, row.Identity())
	}
	r.TraceID = traceID
	r.SpanID = spanID
	r.HasTrace = true
}

// mapSystemLog handles the plain-text payload pattern: the payload is the
// message, kept verbatim in text_payload.
func mapSystemLog(row *SourceRow) (contract.CanonicalLogRow, error) {
	r, err := baseRow(row, SourceSystemLogs, "system")
	if err != nil {
		return r, err
	}
	text := strings.TrimSpace(row.Payload)
	if text == "" {
		return r, fmt.Errorf("empty text payload")
	}
	r.TextPayload = text
	r.Message = firstLine(text)
	finishTrace(&r, row, "", "")
	return r, nil
}

// appPayload is the structured application log shape.
type appPayload struct {
	Message string `json:"message"`
	Msg     string `json:"msg"`
	Logger  string `json:"logger"`
	TraceID string `json:"trace_id"`
	SpanID  string `json:"span_id"`
}

// mapApplicationLog handles the JSON payload pattern.
func mapApplicationLog(row *SourceRow) (contract.CanonicalLogRow, error) {
	r, err := baseRow(row, SourceApplicationLogs, "application")
	if err != nil {
		return r, err
	}
	var p appPayload
	if err := json.Unmarshal([]byte(row.Payload), &p); err != nil {
		return r, fmt.Errorf("malformed json payload: %w", err)
	}
	r.JSONPayload = row.Payload
	r.Message = p.Message
	if r.Message == "" {
		r.Message = p.Msg
	}
	if r.Message == "" {
		return r, fmt.Errorf("json payload has no message")
	}
	finishTrace(&r, row, p.TraceID, p.SpanID)
	return r, nil
}

// requestPayload is the load-balancer request record shape.
type requestPayload struct {
	Method    string `json:"method"`
	URL       string `json:"url"`
	Status    int    `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	RemoteIP  string `json:"remote_ip"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id"`
	TraceID   string `json:"trace_id"`
	SpanID    string `json:"span_id"`
}

// mapRequestLog handles the proto-derived JSON pattern: structured
// request records with HTTP fields promoted to canonical columns.
func mapRequestLog(row *SourceRow) (contract.CanonicalLogRow, error) {
	r, err := baseRow(row, SourceRequestLogs, "request")
	if err != nil {
		return r, err
	}
	var p requestPayload
	if err := json.Unmarshal([]byte(row.Payload), &p); err != nil {
		return r, fmt.Errorf("malformed request payload: %w", err)
	}
	if p.Method == "" || p.URL == "" {
		return r, fmt.Errorf("request payload missing method or url")
	}
	r.ProtoPayload = row.Payload
	r.IsRequest = true
	r.HTTPMethod = p.Method
	r.HTTPURL = p.URL
	r.HTTPStatus = p.Status
	r.HTTPLatencyMS = p.LatencyMS
	r.Message = fmt.Sprintf("%s %s %d", p.Method, p.URL, p.Status)
	r.Envelope.Actor.IP = p.RemoteIP
	r.Envelope.Actor.UserAgent = p.UserAgent
	r.Envelope.Correlation.RequestID = p.RequestID

	// 5xx responses are errors regardless of the collector's severity.
	if p.Status >= 500 && !r.Severity.AtLeast(contract.SeverityError) {
		r.Severity = contract.SeverityError
		r.SeverityLevel = r.Severity.Level()
		r.IsError = true
	}
	finishTrace(&r, row, p.TraceID, p.SpanID)
	return r, nil
}

// auditPayload is the vendor-specific admin audit record shape.
type auditPayload struct {
	ServiceName        string `json:"serviceName"`
	MethodName         string `json:"methodName"`
	AuthenticationInfo struct {
		PrincipalEmail string `json:"principalEmail"`
		TenantID       string `json:"tenantId"`
	} `json:"authenticationInfo"`
	RequestMetadata struct {
		CallerIP        string `json:"callerIp"`
		CallerUserAgent string `json:"callerSuppliedUserAgent"`
	} `json:"requestMetadata"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// mapVendorAudit handles the vendor audit JSON pattern. Audit rows always
// get the audit retention class downstream.
func mapVendorAudit(row *SourceRow) (contract.CanonicalLogRow, error) {
	r, err := baseRow(row, SourceVendorAuditLogs, "audit")
	if err != nil {
		return r, err
	}
	var p auditPayload
	if err := json.Unmarshal([]byte(row.Payload), &p); err != nil {
		return r, fmt.Errorf("malformed audit payload: %w", err)
	}
	if p.MethodName == "" {
		return r, fmt.Errorf("audit payload missing methodName")
	}
	r.JSONPayload = row.Payload
	r.IsAudit = true
	r.Message = p.MethodName
	if p.ServiceName != "" {
		r.ServiceName = p.ServiceName
	}
	r.Envelope.Actor.UserID = p.AuthenticationInfo.PrincipalEmail
	r.Envelope.Actor.TenantID = p.AuthenticationInfo.TenantID
	r.Envelope.Actor.IP = p.RequestMetadata.CallerIP
	r.Envelope.Actor.UserAgent = p.RequestMetadata.CallerUserAgent

	// Failed admin operations are errors even when the collector tagged
	// them informational.
	if p.Status.Code != 0 && !r.Severity.AtLeast(contract.SeverityError) {
		r.Severity = contract.SeverityError
		r.SeverityLevel = r.Severity.Level()
		r.IsError = true
		if p.Status.Message != "" {
			r.Message = fmt.Sprintf("%s: %s", p.MethodName, p.Status.Message)
		}
	}
	finishTrace(&r, row, "", "")
	return r, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
