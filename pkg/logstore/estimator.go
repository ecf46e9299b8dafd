package logstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudsift/cloudsift/pkg/planner"
)

// EstimateBytes predicts the bytes a query would scan without executing
// it, using the planner's row and width estimates from EXPLAIN. The
// estimate covers the whole scan, not just the rows surviving the LIMIT,
// which is what a per-query byte ceiling has to guard.
func (s *Store) EstimateBytes(ctx context.Context, q *planner.Query) (int64, error) {
	explainSQL := "EXPLAIN (FORMAT JSON) " + q.SQL
	var raw []byte
	if err := s.pool.QueryRow(ctx, explainSQL, q.Args).Scan(&raw); err != nil {
		return 0, fmt.Errorf("explain failed: %w", err)
	}
	bytes, err := parseExplainBytes(raw)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("dry-run estimate", "estimated_bytes", bytes)
	return bytes, nil
}

// explainNode is the subset of the EXPLAIN JSON tree we read.
type explainNode struct {
	PlanRows  float64       `json:"Plan Rows"`
	PlanWidth float64       `json:"Plan Width"`
	NodeType  string        `json:"Node Type"`
	Plans     []explainNode `json:"Plans"`
}

// parseExplainBytes sums rows*width over the scan leaves of the plan
// tree. Leaf scans are where bytes actually leave storage; interior
// nodes would double-count them.
func parseExplainBytes(raw []byte) (int64, error) {
	var doc []struct {
		Plan explainNode `json:"Plan"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("failed to decode explain output: %w", err)
	}
	if len(doc) == 0 {
		return 0, fmt.Errorf("empty explain output")
	}
	return sumLeafBytes(doc[0].Plan), nil
}

func sumLeafBytes(n explainNode) int64 {
	if len(n.Plans) == 0 {
		return int64(n.PlanRows * n.PlanWidth)
	}
	var total int64
	for _, child := range n.Plans {
		total += sumLeafBytes(child)
	}
	return total
}
