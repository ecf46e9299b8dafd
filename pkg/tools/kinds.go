// Package tools implements the closed tool catalog the agent can invoke.
// Every call validates its input against a JSON schema, runs under a
// per-tool deadline, and records telemetry; handler failures are reified
// into the result, never propagated.
package tools

import "github.com/cloudsift/cloudsift/pkg/fault"

// Kind identifies a tool in the catalog. The set is closed: the planner
// LLM can only request these names.
type Kind string

const (
	KindLogSearch     Kind = "log_search"
	KindLogAggregate  Kind = "log_aggregate"
	KindTraceLookup   Kind = "trace_lookup"
	KindSimilarErrors Kind = "similar_errors"
	KindDryRun        Kind = "dry_run"
)

// Kinds lists the full catalog.
func Kinds() []Kind {
	return []Kind{
		KindLogSearch, KindLogAggregate, KindTraceLookup,
		KindSimilarErrors, KindDryRun,
	}
}

// ParseKind validates a requested tool name.
func ParseKind(raw string) (Kind, error) {
	k := Kind(raw)
	switch k {
	case KindLogSearch, KindLogAggregate, KindTraceLookup, KindSimilarErrors, KindDryRun:
		return k, nil
	}
	return "", fault.Usagef("unknown tool %q", raw)
}

// CostClass hints how expensive a tool is for fan-out scheduling.
type CostClass string

const (
	// CostStore marks tools that scan the fact table.
	CostStore CostClass = "store"
	// CostVector marks tools that hit the embedding model and index.
	CostVector CostClass = "vector"
	// CostEstimate marks tools that only dry-run.
	CostEstimate CostClass = "estimate"
)

// Cost returns the tool's cost class.
func (k Kind) Cost() CostClass {
	switch k {
	case KindSimilarErrors:
		return CostVector
	case KindDryRun:
		return CostEstimate
	default:
		return CostStore
	}
}

// Description returns the catalog description handed to the planner LLM.
func (k Kind) Description() string {
	switch k {
	case KindLogSearch:
		return "Search canonical logs by time window, severity, service, and free text. Returns matching rows newest first."
	case KindLogAggregate:
		return "Count logs bucketed by severity, service_name, source_table, or resource_type within a time window."
	case KindTraceLookup:
		return "Reconstruct a distributed trace timeline: all rows sharing a trace_id, oldest first."
	case KindSimilarErrors:
		return "Find clusters of errors similar to a description, from the last seven days."
	case KindDryRun:
		return "Estimate the bytes a log query would scan without executing it."
	default:
		return ""
	}
}
