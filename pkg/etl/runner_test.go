package etl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/ent/etljob"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/logstore"
	"github.com/cloudsift/cloudsift/pkg/masking"
	"github.com/cloudsift/cloudsift/pkg/planner"
	"github.com/cloudsift/cloudsift/pkg/services"
	testdb "github.com/cloudsift/cloudsift/test/database"
)

// fakeReader serves canned source rows per table.
type fakeReader struct {
	rows map[SourceTable][]SourceRow
}

func (f *fakeReader) ReadWindow(_ context.Context, table SourceTable, start, end time.Time) ([]SourceRow, error) {
	var out []SourceRow
	for _, r := range f.rows[table] {
		if !r.EventTS.Before(start) && r.EventTS.Before(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func testRunner(t *testing.T, reader Reader) (*Runner, *services.ETLJobService, *services.DeadLetterService, *logstore.Store) {
	t.Helper()
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	pool, err := logstore.Connect(context.Background(), shared.ConnString(), 4)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := logstore.New(pool, slog.Default())
	jobs := services.NewETLJobService(client.Client, 3)
	deadLetters := services.NewDeadLetterService(client.Client)

	runner := NewRunner(reader, store, jobs, deadLetters, nil,
		masking.NewService(true),
		config.ETLConfig{BatchSize: 2, ErrorThresholdPct: 5, MaxAttempts: 3, IncrementalLookback: 2 * time.Hour},
		"test-worker", slog.Default())
	return runner, jobs, deadLetters, store
}

func TestRunner_RunWindow(t *testing.T) {
	windowStart := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	ctx := context.Background()

	reader := &fakeReader{rows: map[SourceTable][]SourceRow{
		SourceApplicationLogs: {
			{InsertID: "a-1", EventTS: windowStart.Add(5 * time.Minute), Severity: "INFO",
				Labels: map[string]string{"app": "checkout"}, Payload: `{"message":"order placed"}`},
			{InsertID: "a-2", EventTS: windowStart.Add(10 * time.Minute), Severity: "CRITICAL",
				Labels: map[string]string{"app": "checkout"}, Payload: `{"message":"payment provider down"}`},
			{InsertID: "a-3", EventTS: windowStart.Add(15 * time.Minute), Severity: "INFO",
				Labels: map[string]string{"app": "checkout"}, Payload: `{"message":"order placed again"}`},
		},
	}}
	runner, jobs, _, store := testRunner(t, reader)

	res, err := runner.RunWindow(ctx, SourceApplicationLogs, windowStart)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 3, res.RowsIn)
	assert.Equal(t, 3, res.RowsOut)
	assert.Equal(t, 0, res.DeadLetters)

	job, err := jobs.GetWindow(ctx, string(SourceApplicationLogs), windowStart)
	require.NoError(t, err)
	assert.Equal(t, etljob.StateDone, job.State)

	// Rows are queryable through the planner path.
	p := planner.New(config.QueryConfig{
		DefaultLimit: 100, MaxLimit: 1000,
		DefaultTimeWindowHours: 24, MaxTimeWindowHours: 720,
		RequirePartitionFilter: true,
	}).WithClock(func() time.Time { return windowStart.Add(time.Hour) })
	q, err := p.BuildList(&planner.LogQueryRequest{Service: "checkout"})
	require.NoError(t, err)
	rows, err := store.List(ctx, q)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	t.Run("replay is net-zero", func(t *testing.T) {
		res2, err := runner.RunWindow(ctx, SourceApplicationLogs, windowStart)
		require.NoError(t, err)
		assert.True(t, res2.Skipped)

		rows, err := store.List(ctx, q)
		require.NoError(t, err)
		assert.Len(t, rows, 3, "replay must not duplicate rows")
	})
}

func TestRunner_DeadLettersAndThreshold(t *testing.T) {
	windowStart := time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// 1 bad row of 40 (2.5%) stays under the 5% threshold.
	var rows []SourceRow
	for i := 0; i < 39; i++ {
		rows = append(rows, SourceRow{
			InsertID: fmt.Sprintf("ok-%d", i),
			EventTS:  windowStart.Add(time.Duration(i) * time.Second),
			Severity: "INFO",
			Payload:  `{"message":"fine"}`,
		})
	}
	rows = append(rows, SourceRow{InsertID: "bad-1", EventTS: windowStart, Payload: "not json"})

	reader := &fakeReader{rows: map[SourceTable][]SourceRow{SourceApplicationLogs: rows}}
	runner, jobs, deadLetters, _ := testRunner(t, reader)

	res, err := runner.RunWindow(ctx, SourceApplicationLogs, windowStart)
	require.NoError(t, err)
	assert.Equal(t, 40, res.RowsIn)
	assert.Equal(t, 39, res.RowsOut)
	assert.Equal(t, 1, res.DeadLetters)

	job, err := jobs.GetWindow(ctx, string(SourceApplicationLogs), windowStart)
	require.NoError(t, err)
	assert.Equal(t, etljob.StateDone, job.State)

	letters, err := deadLetters.ListForSource(ctx, string(SourceApplicationLogs), 10)
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, "not json", letters[0].Payload)
}

func TestRunner_ThresholdAbortsWindow(t *testing.T) {
	windowStart := time.Date(2026, 8, 21, 11, 0, 0, 0, time.UTC)
	ctx := context.Background()

	// 2 bad rows of 10 (20%) exceeds the 5% threshold.
	var rows []SourceRow
	for i := 0; i < 8; i++ {
		rows = append(rows, SourceRow{
			InsertID: fmt.Sprintf("ok-%d", i),
			EventTS:  windowStart.Add(time.Duration(i) * time.Second),
			Severity: "INFO",
			Payload:  `{"message":"fine"}`,
		})
	}
	rows = append(rows,
		SourceRow{InsertID: "bad-1", EventTS: windowStart, Payload: "not json"},
		SourceRow{InsertID: "bad-2", EventTS: windowStart, Payload: "also not json"},
	)

	reader := &fakeReader{rows: map[SourceTable][]SourceRow{SourceApplicationLogs: rows}}
	runner, jobs, _, _ := testRunner(t, reader)

	_, err := runner.RunWindow(ctx, SourceApplicationLogs, windowStart)
	require.NoError(t, err)

	job, err := jobs.GetWindow(ctx, string(SourceApplicationLogs), windowStart)
	require.NoError(t, err)
	assert.Equal(t, etljob.StateFailed, job.State)
	require.NotNil(t, job.ErrorMessage)
	assert.Contains(t, *job.ErrorMessage, "dead-letter rate")
}
