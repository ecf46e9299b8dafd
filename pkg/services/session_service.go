package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cloudsift/cloudsift/ent"
	"github.com/cloudsift/cloudsift/ent/session"
)

// SessionService manages conversational session lifecycle.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSessionRequest is the input for CreateSession.
type CreateSessionRequest struct {
	UserID string   `json:"user_id"`
	Title  string   `json:"title,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// CreateSession creates a new session in the active state.
func (s *SessionService) CreateSession(ctx context.Context, req CreateSessionRequest) (*ent.Session, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	builder := s.client.Session.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetStatus(session.StatusActive)
	if req.Title != "" {
		builder.SetTitle(req.Title)
	}
	if len(req.Tags) > 0 {
		builder.SetTags(req.Tags)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

// GetSession retrieves a session by ID.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	found, err := s.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return found, nil
}

// ListSessions returns a user's sessions ordered by most recent
// activity. A non-empty status narrows to active or archived sessions.
func (s *SessionService) ListSessions(ctx context.Context, userID, status string, limit, offset int) ([]*ent.Session, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := s.client.Session.Query().
		Where(session.UserIDEQ(userID))
	if status != "" {
		parsed := session.Status(status)
		if err := session.StatusValidator(parsed); err != nil {
			return nil, NewValidationError("status", "must be active or archived")
		}
		query = query.Where(session.StatusEQ(parsed))
	}
	sessions, err := query.
		Order(ent.Desc(session.FieldUpdatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// ArchiveSession moves a session to the archived state. Archived sessions
// are read-only.
func (s *SessionService) ArchiveSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	updated, err := s.client.Session.UpdateOneID(sessionID).
		SetStatus(session.StatusArchived).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to archive session: %w", err)
	}
	return updated, nil
}

// RecordUsage accumulates message count and cost onto the session after a
// completed agent turn.
func (s *SessionService) RecordUsage(ctx context.Context, sessionID string, messages int, cost float64) error {
	err := s.client.Session.UpdateOneID(sessionID).
		AddTotalMessages(messages).
		AddTotalCost(cost).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record session usage: %w", err)
	}
	return nil
}

// ArchiveIdleSessions archives active sessions whose last activity is
// older than idleDays. Returns the number of sessions archived.
// Idempotent and safe to run from multiple replicas.
func (s *SessionService) ArchiveIdleSessions(ctx context.Context, idleDays int) (int, error) {
	if idleDays <= 0 {
		return 0, NewValidationError("idle_days", "must be positive")
	}
	cutoff := time.Now().AddDate(0, 0, -idleDays)
	count, err := s.client.Session.Update().
		Where(
			session.StatusEQ(session.StatusActive),
			session.UpdatedAtLT(cutoff),
		).
		SetStatus(session.StatusArchived).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to archive idle sessions: %w", err)
	}
	return count, nil
}

// RequireActive loads a session and rejects archived ones. Used by every
// write path into a session.
func (s *SessionService) RequireActive(ctx context.Context, sessionID string) (*ent.Session, error) {
	found, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if found.Status == session.StatusArchived {
		return nil, ErrSessionArchived
	}
	return found, nil
}
