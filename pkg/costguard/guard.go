// Package costguard dry-runs every query against the store's estimator
// before execution and refuses queries over the bytes-scanned ceiling.
package costguard

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/planner"
)

// Estimator estimates the bytes a query would scan, without executing it.
// Implemented by the log store via EXPLAIN.
type Estimator interface {
	EstimateBytes(ctx context.Context, q *planner.Query) (int64, error)
}

// fallbackMaxLimit is the largest limit accepted when the estimator is
// unreachable and the conservative policy applies.
const fallbackMaxLimit = 100

// Guard enforces the per-query bytes-scanned ceiling. Estimator calls run
// through a circuit breaker so a flapping estimator degrades to the
// conservative fallback policy instead of stalling every request.
type Guard struct {
	estimator Estimator
	maxBytes  int64
	breaker   *gobreaker.CircuitBreaker
}

// New creates a cost guard with the given ceiling.
func New(estimator Estimator, maxBytes int64) *Guard {
	return &Guard{
		estimator: estimator,
		maxBytes:  maxBytes,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "cost-estimator",
			MaxRequests: 1,
			Interval:    30 * time.Second,
			Timeout:     15 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("Cost estimator breaker state change",
					"breaker", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

// Check dry-runs the query and returns the estimated bytes scanned.
// Queries over the ceiling are rejected with BudgetExceeded; when the
// estimator is unreachable, the conservative policy accepts only queries
// that carry a time filter and a limit of at most 100 rows.
func (g *Guard) Check(ctx context.Context, q *planner.Query) (int64, error) {
	res, err := g.breaker.Execute(func() (any, error) {
		return g.estimator.EstimateBytes(ctx, q)
	})
	if err != nil {
		if ctx.Err() != nil {
			return 0, fault.Wrap(fault.KindCancelled, "cost check cancelled", ctx.Err())
		}
		return g.fallback(q, err)
	}

	estimated := res.(int64)
	if estimated > g.maxBytes {
		return estimated, &fault.BudgetExceededError{
			EstimatedBytes: estimated,
			Ceiling:        g.maxBytes,
		}
	}
	return estimated, nil
}

// fallback applies the conservative policy when no estimate is available.
func (g *Guard) fallback(q *planner.Query, cause error) (int64, error) {
	if !hasTimeFilter(q) {
		return 0, fault.Wrap(fault.KindUnavailable,
			"cost estimator unavailable and query has no time filter", cause)
	}
	limit, ok := q.Args["row_limit"].(int)
	if !ok || limit > fallbackMaxLimit {
		return 0, fault.Wrap(fault.KindUnavailable,
			"cost estimator unavailable; only queries with limit <= 100 are accepted", cause)
	}
	slog.Warn("Cost estimator unavailable, accepting query under fallback policy",
		"limit", limit, "error", cause)
	return 0, nil
}

// hasTimeFilter checks for the planner's closed window parameters. They
// are absent on unbounded queries (partition filter disabled) and on
// hand-built queries; neither is accepted without an estimate.
func hasTimeFilter(q *planner.Query) bool {
	_, hasStart := q.Args["window_start"]
	_, hasEnd := q.Args["window_end"]
	return hasStart && hasEnd
}

// Ceiling returns the configured bytes-scanned ceiling.
func (g *Guard) Ceiling() int64 { return g.maxBytes }
