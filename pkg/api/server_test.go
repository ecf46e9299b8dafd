package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/pkg/agent"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/contract"
	"github.com/cloudsift/cloudsift/pkg/costguard"
	"github.com/cloudsift/cloudsift/pkg/logstore"
	"github.com/cloudsift/cloudsift/pkg/masking"
	"github.com/cloudsift/cloudsift/pkg/planner"
)

type fakeLogStore struct {
	rows    []contract.CanonicalLogRow
	buckets []logstore.Bucket
}

func (f *fakeLogStore) List(_ context.Context, _ *planner.Query) ([]contract.CanonicalLogRow, error) {
	return f.rows, nil
}

func (f *fakeLogStore) Aggregate(_ context.Context, _ *planner.Query) ([]logstore.Bucket, error) {
	return f.buckets, nil
}

type fakeEstimator struct {
	bytes int64
	err   error
}

func (f *fakeEstimator) EstimateBytes(_ context.Context, _ *planner.Query) (int64, error) {
	return f.bytes, f.err
}

// slowLogStore parks until the query context expires.
type slowLogStore struct{}

func (slowLogStore) List(ctx context.Context, _ *planner.Query) ([]contract.CanonicalLogRow, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowLogStore) Aggregate(ctx context.Context, _ *planner.Query) ([]logstore.Bucket, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func testServer(store LogStore, est *fakeEstimator) *Server {
	return testServerWithTimeout(store, est, 60*time.Second)
}

func testServerWithTimeout(store LogStore, est *fakeEstimator, queryTimeout time.Duration) *Server {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Query: config.QueryConfig{
			MaxBytesScanned:        50 << 30,
			RequirePartitionFilter: true,
			DefaultLimit:           100,
			MaxLimit:               1000,
			DefaultTimeWindowHours: 24,
			MaxTimeWindowHours:     720,
			QueryTimeout:           queryTimeout,
		},
		Agent: config.AgentConfig{
			TokenBudgetMax:      10000,
			ToolFanoutMax:       4,
			MaxToolCallsPerTurn: 6,
			RunTimeout:          300 * time.Second,
		},
		Stream: config.StreamConfig{
			HeartbeatInterval:   15 * time.Second,
			SlowConsumerTimeout: 30 * time.Second,
			BufferSize:          64,
		},
	}
	orch := agent.NewOrchestrator(nil, nil, nil, nil, nil,
		masking.NewService(false), cfg.Agent, slog.Default())
	return NewServer(cfg, nil, planner.New(cfg.Query),
		costguard.New(est, cfg.Query.MaxBytesScanned), store,
		nil, nil, nil, orch, slog.Default())
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestListLogs(t *testing.T) {
	t.Run("returns rows with estimate", func(t *testing.T) {
		store := &fakeLogStore{rows: []contract.CanonicalLogRow{
			{LogID: "a", Severity: contract.SeverityError, ServiceName: "checkout"},
		}}
		s := testServer(store, &fakeEstimator{bytes: 2048})

		rec := doRequest(t, s, http.MethodGet, "/api/logs?hours=1&severity=ERROR&service=checkout")

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Count          int   `json:"count"`
			EstimatedBytes int64 `json:"estimated_bytes"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, int64(2048), body.EstimatedBytes)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("invalid severity is a 400", func(t *testing.T) {
		s := testServer(&fakeLogStore{}, &fakeEstimator{})
		rec := doRequest(t, s, http.MethodGet, "/api/logs?severity=SHOUTING")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-integer limit is a 400", func(t *testing.T) {
		s := testServer(&fakeLogStore{}, &fakeEstimator{})
		rec := doRequest(t, s, http.MethodGet, "/api/logs?limit=many")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("window past the maximum is a 400", func(t *testing.T) {
		s := testServer(&fakeLogStore{}, &fakeEstimator{})
		rec := doRequest(t, s, http.MethodGet, "/api/logs?hours=721")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store slower than the query timeout is a 504", func(t *testing.T) {
		s := testServerWithTimeout(slowLogStore{}, &fakeEstimator{bytes: 10}, 20*time.Millisecond)
		rec := doRequest(t, s, http.MethodGet, "/api/logs")
		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})

	t.Run("over-ceiling query is a 429 with figures", func(t *testing.T) {
		s := testServer(&fakeLogStore{}, &fakeEstimator{bytes: 200 << 30})
		rec := doRequest(t, s, http.MethodGet, "/api/logs")

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(200<<30), body.EstimatedBytes)
		assert.Equal(t, int64(50<<30), body.Ceiling)
		assert.NotEmpty(t, body.CorrelationID)
	})
}

func TestAggregateLogs(t *testing.T) {
	t.Run("returns buckets", func(t *testing.T) {
		store := &fakeLogStore{buckets: []logstore.Bucket{{Key: "ERROR", Count: 12}}}
		s := testServer(store, &fakeEstimator{bytes: 100})

		rec := doRequest(t, s, http.MethodGet, "/api/logs/aggregate?group_by=severity")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ERROR"`)
	})

	t.Run("missing group_by is a 400", func(t *testing.T) {
		s := testServer(&fakeLogStore{}, &fakeEstimator{})
		rec := doRequest(t, s, http.MethodGet, "/api/logs/aggregate")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetTrace(t *testing.T) {
	store := &fakeLogStore{rows: []contract.CanonicalLogRow{
		{LogID: "a", TraceID: "trace-1"},
		{LogID: "b", TraceID: "trace-1"},
	}}
	s := testServer(store, &fakeEstimator{bytes: 10})

	rec := doRequest(t, s, http.MethodGet, "/api/traces/trace-1")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		TraceID string `json:"trace_id"`
		Count   int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "trace-1", body.TraceID)
	assert.Equal(t, 2, body.Count)
}

func TestCancelRun_NoActiveRun(t *testing.T) {
	s := testServer(&fakeLogStore{}, &fakeEstimator{})
	rec := doRequest(t, s, http.MethodPost, "/api/sessions/s1/cancel")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChat_InvalidBody(t *testing.T) {
	s := testServer(&fakeLogStore{}, &fakeEstimator{})
	rec := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/api/chat", nil)
	require.NoError(t, err)
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short question", truncateTitle("short question"))

	long := strings.Repeat("é", 60) // 120 bytes
	title := truncateTitle(long)
	assert.LessOrEqual(t, len(title), 80)
	assert.True(t, utf8.ValidString(title))
}
