package tools

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

type fakeStore struct {
	rows    []contract.CanonicalLogRow
	buckets []logstore.Bucket
	listErr error
}

func (f *fakeStore) List(_ context.Context, _ *planner.Query) ([]contract.CanonicalLogRow, error) {
	return f.rows, f.listErr
}

func (f *fakeStore) Aggregate(_ context.Context, _ *planner.Query) ([]logstore.Bucket, error) {
	return f.buckets, nil
}

type fakeVector struct {
	matches []vectorindex.ClusterMatch
	err     error
	gotQ    string
	gotSvc  string
}

func (f *fakeVector) SimilarErrors(_ context.Context, queryText, service string, _ int) ([]vectorindex.ClusterMatch, error) {
	f.gotQ, f.gotSvc = queryText, service
	return f.matches, f.err
}

type fakeEstimator struct {
	bytes int64
	err   error
}

func (f *fakeEstimator) EstimateBytes(_ context.Context, _ *planner.Query) (int64, error) {
	return f.bytes, f.err
}

type recordedFinish struct {
	status string
	reason string
	result services.CompleteResult
}

type fakeTelemetry struct {
	started  []string
	finished map[string]recordedFinish
}

func newFakeTelemetry() *fakeTelemetry {
	return &fakeTelemetry{finished: map[string]recordedFinish{}}
}

func (f *fakeTelemetry) Start(_ context.Context, _, _, toolName, _ string) (*ent.ToolInvocation, error) {
	id := toolName + "-inv"
	f.started = append(f.started, id)
	return &ent.ToolInvocation{ID: id}, nil
}

func (f *fakeTelemetry) Complete(_ context.Context, id string, res services.CompleteResult) error {
	f.finished[id] = recordedFinish{status: "completed", result: res}
	return nil
}

func (f *fakeTelemetry) Fail(_ context.Context, id, reason string) error {
	f.finished[id] = recordedFinish{status: "error", reason: reason}
	return nil
}

func (f *fakeTelemetry) Cancel(_ context.Context, id string) error {
	f.finished[id] = recordedFinish{status: "cancelled"}
	return nil
}

func testQueryConfig() config.QueryConfig {
	return config.QueryConfig{
		MaxBytesScanned:        50 << 30,
		RequirePartitionFilter: true,
		DefaultLimit:           100,
		MaxLimit:               1000,
		DefaultTimeWindowHours: 24,
		MaxTimeWindowHours:     720,
	}
}

func newTestRuntime(t *testing.T, store *fakeStore, vector *fakeVector,
	est *fakeEstimator, tel Telemetry) *Runtime {
	t.Helper()
	cfg := testQueryConfig()
	rt, err := NewRuntime(
		planner.New(cfg),
		costguard.New(est, cfg.MaxBytesScanned),
		store, vector, tel,
		config.AgentConfig{ToolTimeout: 30 * time.Second},
		slog.Default(),
	)
	require.NoError(t, err)
	return rt
}

func TestRuntime_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("log_search returns rows and telemetry", func(t *testing.T) {
		store := &fakeStore{rows: []contract.CanonicalLogRow{
			{LogID: "a", Severity: contract.SeverityError},
			{LogID: "b", Severity: contract.SeverityWarning},
		}}
		tel := newFakeTelemetry()
		rt := newTestRuntime(t, store, &fakeVector{}, &fakeEstimator{bytes: 1024}, tel)

		res := rt.Execute(ctx, "s1", "r1", "log_search",
			[]byte(`{"severity":"ERROR","time_window_hours":6}`))

		require.Equal(t, StatusCompleted, res.Status)
		assert.Equal(t, 2, res.Metrics.Rows)
		assert.Equal(t, []string{"a", "b"}, res.LogIDs)
		assert.Equal(t, int64(1024), res.Metrics.EstimatedBytes)
		assert.Equal(t, "completed", tel.finished["log_search-inv"].status)
		assert.Equal(t, int64(1024), tel.finished["log_search-inv"].result.EstimatedBytes)
	})

	t.Run("unknown tool is reified", func(t *testing.T) {
		rt := newTestRuntime(t, &fakeStore{}, &fakeVector{}, &fakeEstimator{}, newFakeTelemetry())

		res := rt.Execute(ctx, "s1", "r1", "drop_table", nil)

		require.Equal(t, StatusError, res.Status)
		assert.Equal(t, fault.KindUsage, res.ErrorKind)
		assert.Contains(t, res.Reason, "unknown tool")
	})

	t.Run("schema rejects unexpected properties", func(t *testing.T) {
		tel := newFakeTelemetry()
		rt := newTestRuntime(t, &fakeStore{}, &fakeVector{}, &fakeEstimator{}, tel)

		res := rt.Execute(ctx, "s1", "r1", "log_search", []byte(`{"sql":"DROP TABLE"}`))

		require.Equal(t, StatusError, res.Status)
		assert.Equal(t, fault.KindUsage, res.ErrorKind)
		assert.Equal(t, "error", tel.finished["log_search-inv"].status)
	})

	t.Run("log_aggregate requires group_by", func(t *testing.T) {
		rt := newTestRuntime(t, &fakeStore{}, &fakeVector{}, &fakeEstimator{}, newFakeTelemetry())

		res := rt.Execute(ctx, "s1", "r1", "log_aggregate", []byte(`{}`))

		require.Equal(t, StatusError, res.Status)
		assert.Equal(t, fault.KindUsage, res.ErrorKind)
	})

	t.Run("log_aggregate returns buckets", func(t *testing.T) {
		store := &fakeStore{buckets: []logstore.Bucket{
			{Key: "checkout", Count: 40},
			{Key: "auth", Count: 2},
		}}
		rt := newTestRuntime(t, store, &fakeVector{}, &fakeEstimator{bytes: 10}, newFakeTelemetry())

		res := rt.Execute(ctx, "s1", "r1", "log_aggregate",
			[]byte(`{"group_by":"service_name"}`))

		require.Equal(t, StatusCompleted, res.Status)
		data := res.Data.(map[string]any)
		assert.Len(t, data["buckets"], 2)
	})

	t.Run("trace_lookup returns spans with their log ids", func(t *testing.T) {
		store := &fakeStore{rows: []contract.CanonicalLogRow{
			{LogID: "span-1", TraceID: "trace-9"},
			{LogID: "span-2", TraceID: "trace-9"},
		}}
		rt := newTestRuntime(t, store, &fakeVector{}, &fakeEstimator{bytes: 5}, newFakeTelemetry())

		res := rt.Execute(ctx, "s1", "r1", "trace_lookup", []byte(`{"trace_id":"trace-9"}`))

		require.Equal(t, StatusCompleted, res.Status)
		assert.Equal(t, []string{"span-1", "span-2"}, res.LogIDs)
		data := res.Data.(map[string]any)
		assert.Equal(t, "trace-9", data["trace_id"])
	})

	t.Run("trace_lookup requires trace_id", func(t *testing.T) {
		rt := newTestRuntime(t, &fakeStore{}, &fakeVector{}, &fakeEstimator{}, newFakeTelemetry())

		res := rt.Execute(ctx, "s1", "r1", "trace_lookup", []byte(`{}`))

		require.Equal(t, StatusError, res.Status)
		assert.Equal(t, fault.KindUsage, res.ErrorKind)
	})

	t.Run("similar_errors passes query and service through", func(t *testing.T) {
		vector := &fakeVector{matches: []vectorindex.ClusterMatch{
			{ClusterID: "c1", ServiceName: "checkout", MemberCount: 12, Similarity: 0.93},
		}}
		rt := newTestRuntime(t, &fakeStore{}, vector, &fakeEstimator{}, newFakeTelemetry())

		res := rt.Execute(ctx, "s1", "r1", "similar_errors",
			[]byte(`{"query":"payment timeout","service":"checkout"}`))

		require.Equal(t, StatusCompleted, res.Status)
		assert.Equal(t, "payment timeout", vector.gotQ)
		assert.Equal(t, "checkout", vector.gotSvc)
		assert.Equal(t, 1, res.Metrics.Rows)
	})

	t.Run("budget rejection is reified not propagated", func(t *testing.T) {
		tel := newFakeTelemetry()
		rt := newTestRuntime(t, &fakeStore{}, &fakeVector{},
			&fakeEstimator{bytes: 200 << 30}, tel)

		res := rt.Execute(ctx, "s1", "r1", "log_search", []byte(`{}`))

		require.Equal(t, StatusError, res.Status)
		assert.Equal(t, fault.KindBudgetExceeded, res.ErrorKind)
		assert.Equal(t, "error", tel.finished["log_search-inv"].status)
	})
}

func TestRuntime_DryRun(t *testing.T) {
	ctx := context.Background()

	t.Run("under ceiling is allowed", func(t *testing.T) {
		rt := newTestRuntime(t, &fakeStore{}, &fakeVector{}, &fakeEstimator{bytes: 4096}, nil)

		res := rt.Execute(ctx, "s1", "r1", "dry_run", []byte(`{"time_window_hours":24}`))

		require.Equal(t, StatusCompleted, res.Status)
		data := res.Data.(map[string]any)
		assert.Equal(t, true, data["allowed"])
		assert.Equal(t, int64(4096), data["estimated_bytes"])
	})

	t.Run("over ceiling completes with allowed=false", func(t *testing.T) {
		rt := newTestRuntime(t, &fakeStore{}, &fakeVector{}, &fakeEstimator{bytes: 200 << 30}, nil)

		res := rt.Execute(ctx, "s1", "r1", "dry_run", []byte(`{}`))

		require.Equal(t, StatusCompleted, res.Status)
		data := res.Data.(map[string]any)
		assert.Equal(t, false, data["allowed"])
		assert.Equal(t, int64(200<<30), data["estimated_bytes"])
		assert.Equal(t, int64(50<<30), data["ceiling"])
	})

	t.Run("aggregate shape when group_by present", func(t *testing.T) {
		rt := newTestRuntime(t, &fakeStore{}, &fakeVector{}, &fakeEstimator{bytes: 1}, nil)

		res := rt.Execute(ctx, "s1", "r1", "dry_run", []byte(`{"group_by":"severity"}`))

		require.Equal(t, StatusCompleted, res.Status)
	})
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseKind("shell_exec")
	require.Error(t, err)
	assert.Equal(t, fault.KindUsage, fault.KindOf(err))
}
