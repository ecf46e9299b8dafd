package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cloudsift/cloudsift/ent"
	"github.com/cloudsift/cloudsift/ent/toolinvocation"
)

// InvocationService records per-call tool telemetry. The tool runtime is
// the only writer; dashboards and cost accounting read it.
type InvocationService struct {
	client *ent.Client
}

// NewInvocationService creates a new InvocationService
func NewInvocationService(client *ent.Client) *InvocationService {
	return &InvocationService{client: client}
}

// Start records the beginning of a tool call and returns its id.
func (s *InvocationService) Start(ctx context.Context, sessionID, runID, toolName, inputJSON string) (*ent.ToolInvocation, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if toolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}

	builder := s.client.ToolInvocation.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetToolName(toolName).
		SetInput(inputJSON).
		SetStatus(toolinvocation.StatusRunning)
	if runID != "" {
		builder.SetRunID(runID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record tool invocation: %w", err)
	}
	return created, nil
}

// CompleteResult carries the terminal telemetry for a finished call.
type CompleteResult struct {
	Output         string
	Tokens         int
	CostUSD        float64
	EstimatedBytes int64
}

// Complete marks an invocation finished with its result telemetry.
func (s *InvocationService) Complete(ctx context.Context, invocationID string, res CompleteResult) error {
	return s.finish(ctx, invocationID, toolinvocation.StatusCompleted, res.Output, res)
}

// Fail marks an invocation failed with the error reason as output.
func (s *InvocationService) Fail(ctx context.Context, invocationID, reason string) error {
	return s.finish(ctx, invocationID, toolinvocation.StatusError, reason, CompleteResult{})
}

// Cancel marks an invocation cancelled.
func (s *InvocationService) Cancel(ctx context.Context, invocationID string) error {
	return s.finish(ctx, invocationID, toolinvocation.StatusCancelled, "", CompleteResult{})
}

func (s *InvocationService) finish(ctx context.Context, invocationID string, status toolinvocation.Status, output string, res CompleteResult) error {
	inv, err := s.client.ToolInvocation.Query().
		Where(toolinvocation.IDEQ(invocationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load tool invocation: %w", err)
	}

	now := time.Now()
	builder := inv.Update().
		SetStatus(status).
		SetCompletedAt(now).
		SetDurationMs(int(now.Sub(inv.StartedAt).Milliseconds()))
	if output != "" {
		builder.SetOutput(output)
	}
	if res.Tokens > 0 {
		builder.SetTokens(res.Tokens)
	}
	if res.CostUSD > 0 {
		builder.SetCostUsd(res.CostUSD)
	}
	if res.EstimatedBytes > 0 {
		builder.SetEstimatedBytes(res.EstimatedBytes)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to finish tool invocation: %w", err)
	}
	return nil
}

// ListForSession returns a session's invocations in start order.
func (s *InvocationService) ListForSession(ctx context.Context, sessionID string) ([]*ent.ToolInvocation, error) {
	invocations, err := s.client.ToolInvocation.Query().
		Where(toolinvocation.SessionIDEQ(sessionID)).
		Order(ent.Asc(toolinvocation.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool invocations: %w", err)
	}
	return invocations, nil
}
