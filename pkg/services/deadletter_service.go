package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cloudsift/cloudsift/ent"
	"github.com/cloudsift/cloudsift/ent/deadletter"
)

// DeadLetterService records source rows that failed normalization.
type DeadLetterService struct {
	client *ent.Client
}

// NewDeadLetterService creates a new DeadLetterService
func NewDeadLetterService(client *ent.Client) *DeadLetterService {
	return &DeadLetterService{client: client}
}

// Record stores a failed row with its original payload and failure reason.
func (s *DeadLetterService) Record(ctx context.Context, sourceTable, sourceRef, payload, reason string) error {
	if sourceTable == "" {
		return NewValidationError("source_table", "required")
	}
	if reason == "" {
		return NewValidationError("reason", "required")
	}
	builder := s.client.DeadLetter.Create().
		SetID(uuid.New().String()).
		SetSourceTable(sourceTable).
		SetPayload(payload).
		SetReason(reason)
	if sourceRef != "" {
		builder.SetSourceRef(sourceRef)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record dead letter: %w", err)
	}
	return nil
}

// PruneOld deletes dead letters older than ttl. Returns the number of
// rows removed.
func (s *DeadLetterService) PruneOld(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, NewValidationError("ttl", "must be positive")
	}
	cutoff := time.Now().Add(-ttl)
	count, err := s.client.DeadLetter.Delete().
		Where(deadletter.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune dead letters: %w", err)
	}
	return count, nil
}

// ListForSource returns the most recent dead letters for a source table.
func (s *DeadLetterService) ListForSource(ctx context.Context, sourceTable string, limit int) ([]*ent.DeadLetter, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	letters, err := s.client.DeadLetter.Query().
		Where(deadletter.SourceTableEQ(sourceTable)).
		Order(ent.Desc(deadletter.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list dead letters: %w", err)
	}
	return letters, nil
}
