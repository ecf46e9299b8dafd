package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/ent/session"
	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/database"
	"github.com/cloudsift/cloudsift/pkg/services"
	testdb "github.com/cloudsift/cloudsift/test/database"
)

func setupRetention(t *testing.T) (*database.Client, *Service, *services.SessionService, *services.DeadLetterService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	deadLetters := services.NewDeadLetterService(client.Client)
	cfg := config.RetentionConfig{
		SessionIdleDays: 30,
		DeadLetterTTL:   30 * 24 * time.Hour,
		Interval:        time.Hour,
	}
	return client, NewService(cfg, sessions, deadLetters), sessions, deadLetters
}

func TestService_ArchivesIdleSessions(t *testing.T) {
	client, svc, sessions, _ := setupRetention(t)
	ctx := context.Background()

	created, err := sessions.CreateSession(ctx, services.CreateSessionRequest{
		UserID: "alice", Title: "stale investigation",
	})
	require.NoError(t, err)

	err = client.Session.UpdateOneID(created.ID).
		SetUpdatedAt(time.Now().AddDate(0, 0, -45)).
		Exec(ctx)
	require.NoError(t, err)

	svc.RunOnce(ctx)

	updated, err := sessions.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusArchived, updated.Status)
}

func TestService_PreservesRecentSessions(t *testing.T) {
	_, svc, sessions, _ := setupRetention(t)
	ctx := context.Background()

	created, err := sessions.CreateSession(ctx, services.CreateSessionRequest{
		UserID: "alice", Title: "live investigation",
	})
	require.NoError(t, err)

	svc.RunOnce(ctx)

	updated, err := sessions.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusActive, updated.Status)
}

func TestService_PrunesOldDeadLetters(t *testing.T) {
	client, svc, _, deadLetters := setupRetention(t)
	ctx := context.Background()

	// One expired, one fresh.
	err := client.DeadLetter.Create().
		SetID(uuid.New().String()).
		SetSourceTable("request_log").
		SetPayload(`{"broken":true}`).
		SetReason("missing event timestamp").
		SetCreatedAt(time.Now().Add(-45 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, deadLetters.Record(ctx, "request_log", "ref-1",
		`{"broken":true}`, "missing event timestamp"))

	svc.RunOnce(ctx)

	remaining, err := deadLetters.ListForSource(ctx, "request_log", 10)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "expired dead letter should be pruned, fresh one preserved")
}
