package costguard

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/pkg/fault"
	"github.com/cloudsift/cloudsift/pkg/planner"
)

type stubEstimator struct {
	bytes int64
	err   error
	calls int
}

func (s *stubEstimator) EstimateBytes(_ context.Context, _ *planner.Query) (int64, error) {
	s.calls++
	return s.bytes, s.err
}

func guardedQuery(limit int) *planner.Query {
	return &planner.Query{
		SQL: "SELECT 1",
		Args: pgx.NamedArgs{
			"window_start": "2026-03-01",
			"window_end":   "2026-03-02",
			"row_limit":    limit,
		},
	}
}

func TestCheckUnderCeiling(t *testing.T) {
	est := &stubEstimator{bytes: 1 << 20}
	g := New(est, 50<<30)

	got, err := g.Check(context.Background(), guardedQuery(100))
	require.NoError(t, err)
	assert.Equal(t, int64(1<<20), got)
	assert.Equal(t, 1, est.calls)
}

func TestCheckOverCeiling(t *testing.T) {
	est := &stubEstimator{bytes: 60 << 30}
	g := New(est, 50<<30)

	got, err := g.Check(context.Background(), guardedQuery(100))
	require.Error(t, err)

	be, ok := fault.IsBudgetExceeded(err)
	require.True(t, ok)
	require.NotNil(t, be)
	assert.Equal(t, int64(60)<<30, be.EstimatedBytes)
	assert.Equal(t, int64(50)<<30, be.Ceiling)
	assert.Equal(t, int64(60)<<30, got)
	assert.Equal(t, fault.KindBudgetExceeded, fault.KindOf(err))
}

func TestCheckFallbackPolicy(t *testing.T) {
	t.Run("accepts small bounded query when estimator is down", func(t *testing.T) {
		est := &stubEstimator{err: errors.New("estimator unreachable")}
		g := New(est, 50<<30)

		_, err := g.Check(context.Background(), guardedQuery(100))
		assert.NoError(t, err)
	})

	t.Run("rejects large limit when estimator is down", func(t *testing.T) {
		est := &stubEstimator{err: errors.New("estimator unreachable")}
		g := New(est, 50<<30)

		_, err := g.Check(context.Background(), guardedQuery(500))
		require.Error(t, err)
		assert.Equal(t, fault.KindUnavailable, fault.KindOf(err))
	})

	t.Run("rejects query without time filter when estimator is down", func(t *testing.T) {
		est := &stubEstimator{err: errors.New("estimator unreachable")}
		g := New(est, 50<<30)

		q := &planner.Query{SQL: "SELECT 1", Args: pgx.NamedArgs{"row_limit": 10}}
		_, err := g.Check(context.Background(), q)
		require.Error(t, err)
		assert.Equal(t, fault.KindUnavailable, fault.KindOf(err))
	})
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	est := &stubEstimator{err: errors.New("estimator unreachable")}
	g := New(est, 50<<30)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, _ = g.Check(ctx, guardedQuery(10))
	}
	// Breaker opens after 3 consecutive failures; later checks skip the
	// estimator entirely and go straight to the fallback policy.
	assert.Equal(t, 3, est.calls)
}
