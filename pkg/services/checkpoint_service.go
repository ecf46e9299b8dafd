package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cloudsift/cloudsift/ent"
	"github.com/cloudsift/cloudsift/ent/checkpoint"
)

// CheckpointService manages the append-only checkpoint log for agent
// runs. A checkpoint is written before every node transition; resuming a
// session replays from the latest checkpoint of its most recent run.
type CheckpointService struct {
	client *ent.Client
}

// NewCheckpointService creates a new CheckpointService
func NewCheckpointService(client *ent.Client) *CheckpointService {
	return &CheckpointService{client: client}
}

// AppendCheckpointRequest is the input for Append.
type AppendCheckpointRequest struct {
	SessionID string
	RunID     string
	NodeID    string
	Terminal  bool
	StateBlob []byte
}

// Append writes the next checkpoint for a run. Sequence numbers are dense
// per (session, run); the unique constraint rejects duplicate appends
// from a concurrent resume.
func (s *CheckpointService) Append(ctx context.Context, req AppendCheckpointRequest) (*ent.Checkpoint, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.NodeID == "" {
		return nil, NewValidationError("node_id", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	next := 1
	parentID := ""
	last, err := tx.Checkpoint.Query().
		Where(
			checkpoint.SessionIDEQ(req.SessionID),
			checkpoint.RunIDEQ(req.RunID),
		).
		Order(ent.Desc(checkpoint.FieldSequenceNumber)).
		First(ctx)
	switch {
	case err == nil:
		next = last.SequenceNumber + 1
		parentID = last.ID
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("failed to read last checkpoint: %w", err)
	}

	builder := tx.Checkpoint.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetRunID(req.RunID).
		SetSequenceNumber(next).
		SetNodeID(req.NodeID).
		SetTerminal(req.Terminal).
		SetStateBlob(req.StateBlob)
	if parentID != "" {
		builder.SetParentID(parentID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("failed to append checkpoint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

// Latest returns the most recent checkpoint for a session across all
// runs, or ErrNotFound when the session has none.
func (s *CheckpointService) Latest(ctx context.Context, sessionID string) (*ent.Checkpoint, error) {
	last, err := s.client.Checkpoint.Query().
		Where(checkpoint.SessionIDEQ(sessionID)).
		Order(ent.Desc(checkpoint.FieldCreatedAt), ent.Desc(checkpoint.FieldSequenceNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest checkpoint: %w", err)
	}
	return last, nil
}

// LatestResumable returns the most recent checkpoint if its run is still
// in flight. A terminal checkpoint means the last run finished; there is
// nothing to resume and the caller starts a fresh run.
func (s *CheckpointService) LatestResumable(ctx context.Context, sessionID string) (*ent.Checkpoint, error) {
	last, err := s.Latest(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if last.Terminal {
		return nil, ErrNotFound
	}
	return last, nil
}

// ListRun returns a run's checkpoints in sequence order.
func (s *CheckpointService) ListRun(ctx context.Context, sessionID, runID string) ([]*ent.Checkpoint, error) {
	checkpoints, err := s.client.Checkpoint.Query().
		Where(
			checkpoint.SessionIDEQ(sessionID),
			checkpoint.RunIDEQ(runID),
		).
		Order(ent.Asc(checkpoint.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	return checkpoints, nil
}
