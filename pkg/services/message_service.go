package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cloudsift/cloudsift/ent"
	"github.com/cloudsift/cloudsift/ent/message"
)

// MessageService manages the ordered message log inside a session.
// Sequence numbers are dense per session and assigned at append time; the
// unique (session_id, sequence_number) constraint turns append races into
// ErrConcurrentModification instead of silent reordering.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// AppendMessageRequest is the input for AppendMessage. ToolCalls carries
// the structured tool-call records of an assistant turn (id, name, input).
type AppendMessageRequest struct {
	SessionID  string                   `json:"session_id"`
	Role       string                   `json:"role"`
	Content    string                   `json:"content"`
	Tokens     int                      `json:"tokens,omitempty"`
	ToolCalls  []map[string]interface{} `json:"tool_calls,omitempty"`
	CostImpact float64                  `json:"cost_impact,omitempty"`
	LatencyMS  int                      `json:"latency_ms,omitempty"`
}

// AppendMessage appends a message with the next sequence number.
func (s *MessageService) AppendMessage(ctx context.Context, req AppendMessageRequest) (*ent.Message, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	next, err := nextSequence(ctx, tx, req.SessionID)
	if err != nil {
		return nil, err
	}

	builder := tx.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetSequenceNumber(next).
		SetRole(message.Role(req.Role)).
		SetContent(req.Content)
	if req.Tokens > 0 {
		builder.SetTokens(req.Tokens)
	}
	if len(req.ToolCalls) > 0 {
		builder.SetToolCalls(req.ToolCalls)
	}
	if req.CostImpact > 0 {
		builder.SetCostImpact(req.CostImpact)
	}
	if req.LatencyMS > 0 {
		builder.SetLatencyMs(req.LatencyMS)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

// nextSequence returns max(sequence_number)+1 for the session, starting
// at 1 for an empty session.
func nextSequence(ctx context.Context, tx *ent.Tx, sessionID string) (int, error) {
	last, err := tx.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Desc(message.FieldSequenceNumber)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to read last sequence: %w", err)
	}
	return last.SequenceNumber + 1, nil
}

// ListMessages returns a session's messages in sequence order, optionally
// starting after a given sequence number.
func (s *MessageService) ListMessages(ctx context.Context, sessionID string, afterSeq, limit int) ([]*ent.Message, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID))
	if afterSeq > 0 {
		q = q.Where(message.SequenceNumberGT(afterSeq))
	}
	messages, err := q.
		Order(ent.Asc(message.FieldSequenceNumber)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
