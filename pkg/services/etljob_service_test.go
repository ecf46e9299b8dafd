package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/ent/etljob"
	testdb "github.com/cloudsift/cloudsift/test/database"
)

func TestETLJobService_ClaimWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewETLJobService(client.Client, 3)
	deadLetters := NewDeadLetterService(client.Client)
	ctx := context.Background()

	windowStart := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.Add(time.Hour)

	t.Run("first claim wins", func(t *testing.T) {
		job, err := svc.ClaimWindow(ctx, "request_logs", windowStart, windowEnd, "worker-a")
		require.NoError(t, err)
		assert.Equal(t, etljob.StateRunning, job.State)
		assert.Equal(t, 1, job.Attempt)
	})

	t.Run("second claim of running window is rejected", func(t *testing.T) {
		_, err := svc.ClaimWindow(ctx, "request_logs", windowStart, windowEnd, "worker-b")
		assert.ErrorIs(t, err, ErrWindowClaimed)
	})

	t.Run("done window is skipped on replay", func(t *testing.T) {
		job, err := svc.GetWindow(ctx, "request_logs", windowStart)
		require.NoError(t, err)
		require.NoError(t, svc.CompleteJob(ctx, job.ID, JobCounts{RowsIn: 100, RowsOut: 98, DeadLetters: 2}))

		_, err = svc.ClaimWindow(ctx, "request_logs", windowStart, windowEnd, "worker-b")
		assert.ErrorIs(t, err, ErrWindowClaimed)

		done, err := svc.GetWindow(ctx, "request_logs", windowStart)
		require.NoError(t, err)
		assert.Equal(t, etljob.StateDone, done.State)
		assert.Equal(t, 98, done.RowsOut)
	})

	t.Run("failed window retries until attempts exhausted", func(t *testing.T) {
		start := windowStart.Add(2 * time.Hour)
		end := start.Add(time.Hour)

		job, err := svc.ClaimWindow(ctx, "app_logs", start, end, "worker-a")
		require.NoError(t, err)
		require.NoError(t, svc.FailJob(ctx, job.ID, "error threshold exceeded", JobCounts{RowsIn: 50, DeadLetters: 10}))

		// Attempts 2 and 3.
		for want := 2; want <= 3; want++ {
			reclaimed, err := svc.ClaimWindow(ctx, "app_logs", start, end, "worker-a")
			require.NoError(t, err)
			assert.Equal(t, want, reclaimed.Attempt)
			require.NoError(t, svc.FailJob(ctx, reclaimed.ID, "error threshold exceeded", JobCounts{}))
		}

		_, err = svc.ClaimWindow(ctx, "app_logs", start, end, "worker-a")
		assert.ErrorIs(t, err, ErrRetriesExhausted)
	})

	t.Run("configured attempt cap is honored", func(t *testing.T) {
		strict := NewETLJobService(client.Client, 1)
		start := windowStart.Add(4 * time.Hour)
		end := start.Add(time.Hour)

		job, err := strict.ClaimWindow(ctx, "app_logs", start, end, "worker-a")
		require.NoError(t, err)
		require.NoError(t, strict.FailJob(ctx, job.ID, "error threshold exceeded", JobCounts{}))

		_, err = strict.ClaimWindow(ctx, "app_logs", start, end, "worker-a")
		assert.ErrorIs(t, err, ErrRetriesExhausted)
	})

	t.Run("dead letters are recorded with payload and reason", func(t *testing.T) {
		require.NoError(t, deadLetters.Record(ctx, "app_logs", "row-7", `{"broken":true}`, "missing event_ts"))
		letters, err := deadLetters.ListForSource(ctx, "app_logs", 10)
		require.NoError(t, err)
		require.Len(t, letters, 1)
		assert.Equal(t, "missing event_ts", letters[0].Reason)
	})
}
