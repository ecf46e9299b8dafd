package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/contract"
	"github.com/cloudsift/cloudsift/pkg/fault"
)

func testPlanner() *Planner {
	cfg := config.QueryConfig{
		DefaultLimit:           100,
		MaxLimit:               1000,
		DefaultTimeWindowHours: 24,
		MaxTimeWindowHours:     720,
		RequirePartitionFilter: true,
	}
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return New(cfg).WithClock(func() time.Time { return fixed })
}

func TestBuildListInvariants(t *testing.T) {
	p := testPlanner()

	requests := []*LogQueryRequest{
		{},
		{TimeWindowHours: 1, Limit: 10, Severity: "ERROR"},
		{Service: "checkout", Search: "timeout"},
		{TraceID: "abc", Severity: "INFO", Service: "ignored"},
		{Limit: 1000, TimeWindowHours: 720},
	}

	for _, req := range requests {
		q, err := p.BuildList(req)
		require.NoError(t, err)

		// Every accepted query carries a closed time range and exactly one LIMIT.
		assert.Contains(t, q.SQL, "event_ts >= @window_start")
		assert.Contains(t, q.SQL, "event_ts < @window_end")
		assert.Equal(t, 1, strings.Count(q.SQL, "LIMIT"))
		assert.NotNil(t, q.Args["window_start"])
		assert.NotNil(t, q.Args["window_end"])
		assert.NotNil(t, q.Args["row_limit"])
	}
}

func TestBuildListFilters(t *testing.T) {
	p := testPlanner()

	t.Run("severity and service become named params", func(t *testing.T) {
		q, err := p.BuildList(&LogQueryRequest{Severity: "error", Service: "checkout"})
		require.NoError(t, err)
		assert.Contains(t, q.SQL, "severity = @severity")
		assert.Contains(t, q.SQL, "service_name = @service")
		assert.Equal(t, "ERROR", q.Args["severity"])
		assert.Equal(t, "checkout", q.Args["service"])
		// No user value appears in the template itself.
		assert.NotContains(t, q.SQL, "checkout")
		assert.NotContains(t, q.SQL, "ERROR")
	})

	t.Run("search escapes like wildcards", func(t *testing.T) {
		q, err := p.BuildList(&LogQueryRequest{Search: "100%_done"})
		require.NoError(t, err)
		assert.Equal(t, `%100\%\_done%`, q.Args["search"])
	})

	t.Run("trace id bypasses severity and service filters", func(t *testing.T) {
		q, err := p.BuildList(&LogQueryRequest{TraceID: "t-1", Severity: "ERROR", Service: "checkout"})
		require.NoError(t, err)
		assert.Contains(t, q.SQL, "trace_id = @trace_id")
		assert.NotContains(t, q.SQL, "@severity")
		assert.NotContains(t, q.SQL, "@service")
	})

	t.Run("window bounds honor the request", func(t *testing.T) {
		q, err := p.BuildList(&LogQueryRequest{TimeWindowHours: 2})
		require.NoError(t, err)
		start := q.Args["window_start"].(time.Time)
		end := q.Args["window_end"].(time.Time)
		assert.Equal(t, 2*time.Hour, end.Sub(start))
	})
}

func TestPartitionFilterDisabled(t *testing.T) {
	cfg := config.QueryConfig{
		DefaultLimit:           100,
		MaxLimit:               1000,
		DefaultTimeWindowHours: 24,
		MaxTimeWindowHours:     720,
		RequirePartitionFilter: false,
	}
	p := New(cfg)

	t.Run("zero window scans unbounded", func(t *testing.T) {
		q, err := p.BuildList(&LogQueryRequest{})
		require.NoError(t, err)
		assert.NotContains(t, q.SQL, "@window_start")
		assert.NotContains(t, q.SQL, "@window_end")
		assert.Equal(t, 1, strings.Count(q.SQL, "LIMIT"))
	})

	t.Run("explicit window still applies", func(t *testing.T) {
		q, err := p.BuildList(&LogQueryRequest{TimeWindowHours: 6})
		require.NoError(t, err)
		assert.Contains(t, q.SQL, "event_ts >= @window_start")
	})

	t.Run("negative window still rejected", func(t *testing.T) {
		_, err := p.BuildList(&LogQueryRequest{TimeWindowHours: -1})
		assert.ErrorIs(t, err, ErrTimeWindowOutOfRange)
	})
}

func TestNormalizeBoundaries(t *testing.T) {
	p := testPlanner()

	t.Run("limit zero takes the default", func(t *testing.T) {
		req := &LogQueryRequest{}
		require.NoError(t, p.Normalize(req))
		assert.Equal(t, 100, req.Limit)
		assert.Equal(t, 24, req.TimeWindowHours)
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		err := p.Normalize(&LogQueryRequest{Limit: -1})
		assert.ErrorIs(t, err, ErrLimitOutOfRange)
		assert.Equal(t, fault.KindUsage, fault.KindOf(err))
	})

	t.Run("limit above max rejected", func(t *testing.T) {
		err := p.Normalize(&LogQueryRequest{Limit: 1001})
		assert.ErrorIs(t, err, ErrLimitOutOfRange)
	})

	t.Run("limit at max accepted", func(t *testing.T) {
		req := &LogQueryRequest{Limit: 1000}
		assert.NoError(t, p.Normalize(req))
	})

	t.Run("window above max rejected", func(t *testing.T) {
		err := p.Normalize(&LogQueryRequest{TimeWindowHours: 721})
		assert.ErrorIs(t, err, ErrTimeWindowOutOfRange)
	})

	t.Run("unknown severity rejected", func(t *testing.T) {
		err := p.Normalize(&LogQueryRequest{Severity: "FATAL"})
		assert.ErrorIs(t, err, ErrInvalidSeverity)
	})

	t.Run("unknown group_by rejected", func(t *testing.T) {
		err := p.Normalize(&LogQueryRequest{GroupBy: "log_id"})
		assert.ErrorIs(t, err, ErrUnknownGroupBy)
	})
}

func TestBuildAggregate(t *testing.T) {
	p := testPlanner()

	t.Run("groups by enum column and orders by count desc", func(t *testing.T) {
		q, err := p.BuildAggregate(&LogQueryRequest{GroupBy: contract.GroupBySeverity})
		require.NoError(t, err)
		assert.Contains(t, q.SQL, "GROUP BY severity")
		assert.Contains(t, q.SQL, "ORDER BY bucket_count DESC")
		assert.Equal(t, 1, strings.Count(q.SQL, "LIMIT"))
		assert.Contains(t, q.SQL, "event_ts >= @window_start")
	})

	t.Run("missing group_by rejected", func(t *testing.T) {
		_, err := p.BuildAggregate(&LogQueryRequest{})
		assert.ErrorIs(t, err, ErrUnknownGroupBy)
	})
}

func TestBuildTrace(t *testing.T) {
	p := testPlanner()

	t.Run("orders ascending with closed window", func(t *testing.T) {
		q, err := p.BuildTrace("trace-1", 0, 0)
		require.NoError(t, err)
		assert.Contains(t, q.SQL, "ORDER BY event_ts ASC")
		assert.Contains(t, q.SQL, "event_ts >= @window_start")
		assert.Equal(t, "trace-1", q.Args["trace_id"])
	})

	t.Run("empty trace id rejected", func(t *testing.T) {
		_, err := p.BuildTrace("  ", 0, 0)
		assert.ErrorIs(t, err, ErrMissingTraceID)
	})
}
