package etl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloudsift/cloudsift/pkg/alertbus"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/contract"
	"github.com/cloudsift/cloudsift/pkg/logstore"
	"github.com/cloudsift/cloudsift/pkg/masking"
	"github.com/cloudsift/cloudsift/pkg/services"
)

// snippetMax bounds the alert snippet length.
const snippetMax = 240

// Runner executes normalization windows. One Runner serves one process;
// windows are claimed through the job-state table, so multiple runners
// can share the source backlog.
type Runner struct {
	reader      Reader
	store       *logstore.Store
	jobs        *services.ETLJobService
	deadLetters *services.DeadLetterService
	alerts      *alertbus.Publisher
	masker      *masking.Service
	cfg         config.ETLConfig
	workerID    string
	logger      *slog.Logger
}

// NewRunner wires a runner from its collaborators.
func NewRunner(
	reader Reader,
	store *logstore.Store,
	jobs *services.ETLJobService,
	deadLetters *services.DeadLetterService,
	alerts *alertbus.Publisher,
	masker *masking.Service,
	cfg config.ETLConfig,
	workerID string,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		reader:      reader,
		store:       store,
		jobs:        jobs,
		deadLetters: deadLetters,
		alerts:      alerts,
		masker:      masker,
		cfg:         cfg,
		workerID:    workerID,
		logger:      logger.With("component", "etl"),
	}
}

// WindowResult accounts for one processed window.
type WindowResult struct {
	SourceTable SourceTable
	WindowStart time.Time
	RowsIn      int
	RowsOut     int
	DeadLetters int
	Skipped     bool
}

// RunIncremental processes the lookback window (hour buckets) for every
// source table. Returns the per-window results; windows claimed elsewhere
// count as skipped, not failed.
func (r *Runner) RunIncremental(ctx context.Context, now time.Time) ([]WindowResult, error) {
	end := now.UTC().Truncate(time.Hour)
	start := end.Add(-r.cfg.IncrementalLookback)
	return r.runRange(ctx, start, end)
}

// RunFull processes one full UTC day for every source table.
func (r *Runner) RunFull(ctx context.Context, day time.Time) ([]WindowResult, error) {
	start := day.UTC().Truncate(24 * time.Hour)
	return r.runRange(ctx, start, start.Add(24*time.Hour))
}

func (r *Runner) runRange(ctx context.Context, start, end time.Time) ([]WindowResult, error) {
	var results []WindowResult
	for _, table := range SourceTables() {
		for ws := start; ws.Before(end); ws = ws.Add(time.Hour) {
			res, err := r.RunWindow(ctx, table, ws)
			if err != nil {
				return results, err
			}
			results = append(results, res)
		}
	}
	return results, nil
}

// RunWindow claims and processes one (source_table, hour) unit. A window
// already done or held by another worker is skipped. Dead-letter rate
// above the threshold aborts the window as failed.
func (r *Runner) RunWindow(ctx context.Context, table SourceTable, windowStart time.Time) (WindowResult, error) {
	windowStart = windowStart.UTC().Truncate(time.Hour)
	windowEnd := windowStart.Add(time.Hour)
	res := WindowResult{SourceTable: table, WindowStart: windowStart}

	job, err := r.jobs.ClaimWindow(ctx, string(table), windowStart, windowEnd, r.workerID)
	if err != nil {
		if errors.Is(err, services.ErrWindowClaimed) || errors.Is(err, services.ErrRetriesExhausted) {
			r.logger.Debug("skipping window", "source_table", table,
				"window_start", windowStart, "reason", err)
			res.Skipped = true
			return res, nil
		}
		return res, fmt.Errorf("failed to claim window: %w", err)
	}

	rows, err := r.reader.ReadWindow(ctx, table, windowStart, windowEnd)
	if err != nil {
		_ = r.jobs.FailJob(ctx, job.ID, err.Error(), services.JobCounts{})
		return res, fmt.Errorf("failed to read %s window: %w", table, err)
	}
	res.RowsIn = len(rows)

	mapper := mappings[table]
	batch := make([]contract.CanonicalLogRow, 0, r.cfg.BatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		written, err := r.store.WriteBatch(ctx, batch)
		if err != nil {
			return err
		}
		res.RowsOut += written
		r.publishErrorAlerts(ctx, batch)
		batch = batch[:0]
		return nil
	}

	for i := range rows {
		row := &rows[i]
		canonical, err := r.normalize(mapper, row, table)
		if err != nil {
			res.DeadLetters++
			if dlErr := r.deadLetters.Record(ctx, string(table), row.InsertID, row.Payload, err.Error()); dlErr != nil {
				r.logger.Error("failed to record dead letter", "error", dlErr)
			}
			if r.overThreshold(res.DeadLetters, len(rows)) {
				reason := fmt.Sprintf("dead-letter rate exceeded %d%% (%d of %d rows)",
					r.cfg.ErrorThresholdPct, res.DeadLetters, len(rows))
				_ = r.jobs.FailJob(ctx, job.ID, reason, services.JobCounts{
					RowsIn: res.RowsIn, RowsOut: res.RowsOut, DeadLetters: res.DeadLetters,
				})
				return res, nil
			}
			continue
		}
		batch = append(batch, canonical)
		if len(batch) >= r.cfg.BatchSize {
			if err := flush(); err != nil {
				_ = r.jobs.FailJob(ctx, job.ID, err.Error(), services.JobCounts{
					RowsIn: res.RowsIn, RowsOut: res.RowsOut, DeadLetters: res.DeadLetters,
				})
				return res, fmt.Errorf("failed to write batch: %w", err)
			}
		}
	}
	if err := flush(); err != nil {
		_ = r.jobs.FailJob(ctx, job.ID, err.Error(), services.JobCounts{
			RowsIn: res.RowsIn, RowsOut: res.RowsOut, DeadLetters: res.DeadLetters,
		})
		return res, fmt.Errorf("failed to write batch: %w", err)
	}

	if err := r.jobs.CompleteJob(ctx, job.ID, services.JobCounts{
		RowsIn: res.RowsIn, RowsOut: res.RowsOut, DeadLetters: res.DeadLetters,
	}); err != nil {
		return res, fmt.Errorf("failed to complete job: %w", err)
	}

	r.logger.Info("window processed", "source_table", table,
		"window_start", windowStart, "rows_in", res.RowsIn,
		"rows_out", res.RowsOut, "dead_letters", res.DeadLetters)
	return res, nil
}

// normalize maps one source row, derives its envelope, and checks the
// write-time invariants.
func (r *Runner) normalize(mapper mapFunc, row *SourceRow, table SourceTable) (contract.CanonicalLogRow, error) {
	canonical, err := mapper(row)
	if err != nil {
		return canonical, err
	}
	finishEnvelope(&canonical, row, r.masker)
	if err := canonical.Validate(); err != nil {
		return canonical, err
	}
	return canonical, nil
}

// overThreshold reports whether the dead-letter count exceeds the
// configured percentage of the window's input rows.
func (r *Runner) overThreshold(deadLetters, total int) bool {
	if total == 0 {
		return false
	}
	return deadLetters*100 > r.cfg.ErrorThresholdPct*total
}

// publishErrorAlerts announces ERROR-and-above rows from a committed
// batch. Alert failures are logged, never fatal: the rows are durable and
// backfill will find them.
func (r *Runner) publishErrorAlerts(ctx context.Context, batch []contract.CanonicalLogRow) {
	if r.alerts == nil {
		return
	}
	for i := range batch {
		row := &batch[i]
		if !row.IsError {
			continue
		}
		snippet := row.Message
		if len(snippet) > snippetMax {
			snippet = snippet[:snippetMax]
		}
		err := r.alerts.Publish(ctx, alertbus.ErrorAlert{
			LogID:       row.LogID,
			EventTS:     row.EventTS,
			ServiceName: row.ServiceName,
			Severity:    string(row.Severity),
			SourceTable: row.SourceTable,
			TraceID:     row.TraceID,
			Snippet:     snippet,
		})
		if err != nil {
			r.logger.Warn("failed to publish error alert", "log_id", row.LogID, "error", err)
		}
	}
}
