package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cloudsift/cloudsift/ent"
	"github.com/cloudsift/cloudsift/ent/etljob"
)

// ETLJobService manages the per-window job-state records that make ETL
// runs idempotent. A window in 'running' is claimed; 'done' windows are
// skipped; 'failed' windows may be retried up to maxAttempts, beyond
// which they stay failed until an operator intervenes.
type ETLJobService struct {
	client      *ent.Client
	maxAttempts int
}

// NewETLJobService creates a new ETLJobService. maxAttempts caps
// automatic retries per (source_table, window); non-positive values fall
// back to 3.
func NewETLJobService(client *ent.Client, maxAttempts int) *ETLJobService {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &ETLJobService{client: client, maxAttempts: maxAttempts}
}

// ClaimWindow tries to take the running claim for a window. The unique
// (source_table, window_start) constraint makes concurrent claims race to
// a single winner. Returns the job on success; ErrWindowClaimed when the
// window is running or done elsewhere; ErrRetriesExhausted when the
// window has burned all attempts.
func (s *ETLJobService) ClaimWindow(ctx context.Context, sourceTable string, windowStart, windowEnd time.Time, workerID string) (*ent.ETLJob, error) {
	if sourceTable == "" {
		return nil, NewValidationError("source_table", "required")
	}

	created, err := s.client.ETLJob.Create().
		SetID(uuid.New().String()).
		SetSourceTable(sourceTable).
		SetWindowStart(windowStart).
		SetWindowEnd(windowEnd).
		SetState(etljob.StateRunning).
		SetClaimedBy(workerID).
		Save(ctx)
	if err == nil {
		return created, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create job record: %w", err)
	}

	// A record already exists for this window; decide based on its state.
	existing, err := s.client.ETLJob.Query().
		Where(
			etljob.SourceTableEQ(sourceTable),
			etljob.WindowStartEQ(windowStart),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing job record: %w", err)
	}

	switch existing.State {
	case etljob.StateDone, etljob.StateRunning:
		return nil, ErrWindowClaimed
	case etljob.StateFailed:
		if existing.Attempt >= s.maxAttempts {
			return nil, ErrRetriesExhausted
		}
		// Retry: flip back to running. The state predicate keeps two
		// retries of the same failed window from both winning.
		n, err := s.client.ETLJob.Update().
			Where(
				etljob.IDEQ(existing.ID),
				etljob.StateEQ(etljob.StateFailed),
			).
			SetState(etljob.StateRunning).
			SetClaimedBy(workerID).
			AddAttempt(1).
			SetStartedAt(time.Now()).
			ClearErrorMessage().
			ClearFinishedAt().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to reclaim failed job: %w", err)
		}
		if n == 0 {
			return nil, ErrWindowClaimed
		}
		return s.client.ETLJob.Get(ctx, existing.ID)
	default:
		return nil, fmt.Errorf("job %s in unexpected state %s", existing.ID, existing.State)
	}
}

// JobCounts carries the row accounting for a finished window.
type JobCounts struct {
	RowsIn      int
	RowsOut     int
	DeadLetters int
}

// CompleteJob marks a claimed window done with its row accounting.
func (s *ETLJobService) CompleteJob(ctx context.Context, jobID string, counts JobCounts) error {
	err := s.client.ETLJob.UpdateOneID(jobID).
		SetState(etljob.StateDone).
		SetRowsIn(counts.RowsIn).
		SetRowsOut(counts.RowsOut).
		SetDeadLetters(counts.DeadLetters).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete job: %w", err)
	}
	return nil
}

// FailJob marks a claimed window failed with the abort reason.
func (s *ETLJobService) FailJob(ctx context.Context, jobID, reason string, counts JobCounts) error {
	err := s.client.ETLJob.UpdateOneID(jobID).
		SetState(etljob.StateFailed).
		SetErrorMessage(reason).
		SetRowsIn(counts.RowsIn).
		SetRowsOut(counts.RowsOut).
		SetDeadLetters(counts.DeadLetters).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fail job: %w", err)
	}
	return nil
}

// GetWindow loads the job record for a window, or ErrNotFound.
func (s *ETLJobService) GetWindow(ctx context.Context, sourceTable string, windowStart time.Time) (*ent.ETLJob, error) {
	job, err := s.client.ETLJob.Query().
		Where(
			etljob.SourceTableEQ(sourceTable),
			etljob.WindowStartEQ(windowStart),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job record: %w", err)
	}
	return job, nil
}
