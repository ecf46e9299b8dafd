package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/cloudsift/cloudsift/ent"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/contract"
	"github.com/cloudsift/cloudsift/pkg/costguard"
	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/logstore"
	"github.com/cloudsift/cloudsift/pkg/planner"
	"github.com/cloudsift/cloudsift/pkg/services"
	"github.com/cloudsift/cloudsift/pkg/vectorindex"
)

// LogReader reads the canonical fact table. Implemented by the log store.
type LogReader interface {
	List(ctx context.Context, q *planner.Query) ([]contract.CanonicalLogRow, error)
	Aggregate(ctx context.Context, q *planner.Query) ([]logstore.Bucket, error)
}

// SimilaritySearcher finds error clusters near a query text. Implemented
// by the vector index writer.
type SimilaritySearcher interface {
	SimilarErrors(ctx context.Context, queryText, service string, limit int) ([]vectorindex.ClusterMatch, error)
}

// Telemetry records per-invocation rows. Implemented by the invocation
// service.
type Telemetry interface {
	Start(ctx context.Context, sessionID, runID, toolName, inputJSON string) (*ent.ToolInvocation, error)
	Complete(ctx context.Context, invocationID string, res services.CompleteResult) error
	Fail(ctx context.Context, invocationID, reason string) error
	Cancel(ctx context.Context, invocationID string) error
}

// Status is the terminal state of one tool call.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Metrics carries per-call measurements surfaced to the agent.
type Metrics struct {
	DurationMS     int64 `json:"duration_ms"`
	EstimatedBytes int64 `json:"estimated_bytes,omitempty"`
	Rows           int   `json:"rows,omitempty"`
}

// Result is the reified outcome of one tool call. Failures become
// Status error with a Reason the agent can observe; Execute never
// returns a handler error to the caller. LogIDs lists the rows a
// row-returning tool touched, for citation frames.
type Result struct {
	Tool      Kind       `json:"tool"`
	Status    Status     `json:"status"`
	ErrorKind fault.Kind `json:"error_kind,omitempty"`
	Reason    string     `json:"reason,omitempty"`
	Data      any        `json:"data,omitempty"`
	LogIDs    []string   `json:"log_ids,omitempty"`
	Metrics   Metrics    `json:"metrics"`
}

// Runtime executes catalog tools against the store, the cost guard, and
// the vector index.
type Runtime struct {
	planner   *planner.Planner
	guard     *costguard.Guard
	store     LogReader
	vector    SimilaritySearcher
	telemetry Telemetry
	schemas   map[Kind]*jsonschema.Schema
	timeout   time.Duration
	logger    *slog.Logger
}

// NewRuntime wires a tool runtime. The per-call deadline comes from the
// agent configuration.
func NewRuntime(p *planner.Planner, guard *costguard.Guard, store LogReader,
	vector SimilaritySearcher, telemetry Telemetry, cfg config.AgentConfig,
	logger *slog.Logger) (*Runtime, error) {
	schemas, err := compileSchemas()
	if err != nil {
		return nil, err
	}
	return &Runtime{
		planner:   p,
		guard:     guard,
		store:     store,
		vector:    vector,
		telemetry: telemetry,
		schemas:   schemas,
		timeout:   cfg.ToolTimeout,
		logger:    logger,
	}, nil
}

// Execute runs one tool call end to end: catalog check, schema
// validation, handler dispatch under the per-call deadline, telemetry.
// The returned result is always non-nil; failures are reified into it.
func (r *Runtime) Execute(ctx context.Context, sessionID, runID, name string, rawInput []byte) *Result {
	started := time.Now()

	invocationID := ""
	if r.telemetry != nil {
		inv, err := r.telemetry.Start(ctx, sessionID, runID, name, string(rawInput))
		if err != nil {
			r.logger.Warn("failed to record tool invocation start",
				"tool", name, "session_id", sessionID, "error", err)
		} else {
			invocationID = inv.ID
		}
	}

	res := r.run(ctx, name, rawInput)
	res.Metrics.DurationMS = time.Since(started).Milliseconds()

	if invocationID != "" {
		r.finishTelemetry(ctx, invocationID, res)
	}
	return res
}

// run dispatches to the handler and reifies any error.
func (r *Runtime) run(ctx context.Context, name string, rawInput []byte) *Result {
	kind, err := ParseKind(name)
	if err != nil {
		return errorResult(Kind(name), err)
	}

	if _, err := validateInput(r.schemas[kind], rawInput); err != nil {
		return errorResult(kind, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var res *Result
	switch kind {
	case KindLogSearch:
		res = r.logSearch(callCtx, rawInput)
	case KindLogAggregate:
		res = r.logAggregate(callCtx, rawInput)
	case KindTraceLookup:
		res = r.traceLookup(callCtx, rawInput)
	case KindSimilarErrors:
		res = r.similarErrors(callCtx, rawInput)
	case KindDryRun:
		res = r.dryRun(callCtx, rawInput)
	}

	if res.Status == StatusError && callCtx.Err() != nil {
		res.ErrorKind = fault.KindTimeout
		res.Reason = fmt.Sprintf("tool %s exceeded its %s deadline", kind, r.timeout)
		if errors.Is(ctx.Err(), context.Canceled) {
			res.ErrorKind = fault.KindCancelled
			res.Reason = fmt.Sprintf("tool %s was cancelled", kind)
		}
	}
	return res
}

func (r *Runtime) logSearch(ctx context.Context, raw []byte) *Result {
	var req planner.LogQueryRequest
	if err := json.Unmarshal(orEmpty(raw), &req); err != nil {
		return errorResult(KindLogSearch, fault.Wrap(fault.KindUsage, "invalid log_search input", err))
	}
	req.GroupBy = ""
	req.TraceID = ""

	q, err := r.planner.BuildList(&req)
	if err != nil {
		return errorResult(KindLogSearch, err)
	}
	estimated, err := r.guard.Check(ctx, q)
	if err != nil {
		return errorResult(KindLogSearch, err)
	}
	rows, err := r.store.List(ctx, q)
	if err != nil {
		return errorResult(KindLogSearch, err)
	}
	return &Result{
		Tool:   KindLogSearch,
		Status: StatusCompleted,
		Data: map[string]any{
			"rows":  rows,
			"count": len(rows),
		},
		LogIDs:  rowIDs(rows),
		Metrics: Metrics{EstimatedBytes: estimated, Rows: len(rows)},
	}
}

func (r *Runtime) logAggregate(ctx context.Context, raw []byte) *Result {
	var req planner.LogQueryRequest
	if err := json.Unmarshal(orEmpty(raw), &req); err != nil {
		return errorResult(KindLogAggregate, fault.Wrap(fault.KindUsage, "invalid log_aggregate input", err))
	}
	req.TraceID = ""

	q, err := r.planner.BuildAggregate(&req)
	if err != nil {
		return errorResult(KindLogAggregate, err)
	}
	estimated, err := r.guard.Check(ctx, q)
	if err != nil {
		return errorResult(KindLogAggregate, err)
	}
	buckets, err := r.store.Aggregate(ctx, q)
	if err != nil {
		return errorResult(KindLogAggregate, err)
	}
	return &Result{
		Tool:   KindLogAggregate,
		Status: StatusCompleted,
		Data: map[string]any{
			"group_by": req.GroupBy,
			"buckets":  buckets,
		},
		Metrics: Metrics{EstimatedBytes: estimated, Rows: len(buckets)},
	}
}

func (r *Runtime) traceLookup(ctx context.Context, raw []byte) *Result {
	var req struct {
		TraceID         string `json:"trace_id"`
		TimeWindowHours int    `json:"time_window_hours"`
		Limit           int    `json:"limit"`
	}
	if err := json.Unmarshal(orEmpty(raw), &req); err != nil {
		return errorResult(KindTraceLookup, fault.Wrap(fault.KindUsage, "invalid trace_lookup input", err))
	}

	q, err := r.planner.BuildTrace(req.TraceID, req.TimeWindowHours, req.Limit)
	if err != nil {
		return errorResult(KindTraceLookup, err)
	}
	estimated, err := r.guard.Check(ctx, q)
	if err != nil {
		return errorResult(KindTraceLookup, err)
	}
	rows, err := r.store.List(ctx, q)
	if err != nil {
		return errorResult(KindTraceLookup, err)
	}
	return &Result{
		Tool:   KindTraceLookup,
		Status: StatusCompleted,
		Data: map[string]any{
			"trace_id": req.TraceID,
			"spans":    rows,
			"count":    len(rows),
		},
		LogIDs:  rowIDs(rows),
		Metrics: Metrics{EstimatedBytes: estimated, Rows: len(rows)},
	}
}

func (r *Runtime) similarErrors(ctx context.Context, raw []byte) *Result {
	var req struct {
		Query   string `json:"query"`
		Service string `json:"service"`
		Limit   int    `json:"limit"`
	}
	if err := json.Unmarshal(orEmpty(raw), &req); err != nil {
		return errorResult(KindSimilarErrors, fault.Wrap(fault.KindUsage, "invalid similar_errors input", err))
	}

	matches, err := r.vector.SimilarErrors(ctx, req.Query, req.Service, req.Limit)
	if err != nil {
		return errorResult(KindSimilarErrors, err)
	}
	return &Result{
		Tool:   KindSimilarErrors,
		Status: StatusCompleted,
		Data: map[string]any{
			"clusters": matches,
		},
		Metrics: Metrics{Rows: len(matches)},
	}
}

// dryRun estimates a query without executing it. A budget rejection is a
// successful dry run with allowed=false.
func (r *Runtime) dryRun(ctx context.Context, raw []byte) *Result {
	var req planner.LogQueryRequest
	if err := json.Unmarshal(orEmpty(raw), &req); err != nil {
		return errorResult(KindDryRun, fault.Wrap(fault.KindUsage, "invalid dry_run input", err))
	}
	req.TraceID = ""

	var (
		q   *planner.Query
		err error
	)
	if req.GroupBy != "" {
		q, err = r.planner.BuildAggregate(&req)
	} else {
		q, err = r.planner.BuildList(&req)
	}
	if err != nil {
		return errorResult(KindDryRun, err)
	}

	estimated, err := r.guard.Check(ctx, q)
	allowed := err == nil
	if err != nil {
		var budget *fault.BudgetExceededError
		if !errors.As(err, &budget) {
			return errorResult(KindDryRun, err)
		}
	}
	return &Result{
		Tool:   KindDryRun,
		Status: StatusCompleted,
		Data: map[string]any{
			"estimated_bytes": estimated,
			"ceiling":         r.guard.Ceiling(),
			"allowed":         allowed,
		},
		Metrics: Metrics{EstimatedBytes: estimated},
	}
}

// finishTelemetry mirrors the result into the invocation row.
func (r *Runtime) finishTelemetry(ctx context.Context, invocationID string, res *Result) {
	// The call context may already be done; telemetry writes get their
	// own short deadline.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	var err error
	switch {
	case res.Status == StatusCompleted:
		output, _ := json.Marshal(res.Data)
		err = r.telemetry.Complete(writeCtx, invocationID, services.CompleteResult{
			Output:         string(output),
			EstimatedBytes: res.Metrics.EstimatedBytes,
		})
	case res.ErrorKind == fault.KindCancelled:
		err = r.telemetry.Cancel(writeCtx, invocationID)
	default:
		err = r.telemetry.Fail(writeCtx, invocationID, res.Reason)
	}
	if err != nil {
		r.logger.Warn("failed to record tool invocation outcome",
			"invocation_id", invocationID, "error", err)
	}
}

// errorResult reifies a handler error into a result.
func errorResult(kind Kind, err error) *Result {
	return &Result{
		Tool:      kind,
		Status:    StatusError,
		ErrorKind: fault.KindOf(err),
		Reason:    err.Error(),
	}
}

func rowIDs(rows []contract.CanonicalLogRow) []string {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.LogID
	}
	return ids
}

func orEmpty(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("{}")
	}
	return raw
}
