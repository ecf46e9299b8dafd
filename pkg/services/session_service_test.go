package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/ent/session"
	testdb "github.com/cloudsift/cloudsift/test/database"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates active session", func(t *testing.T) {
		created, err := svc.CreateSession(ctx, CreateSessionRequest{
			UserID: "user-1",
			Title:  "checkout 500s",
			Tags:   []string{"incident"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, session.StatusActive, created.Status)
		assert.Equal(t, "user-1", created.UserID)
	})

	t.Run("rejects missing user_id", func(t *testing.T) {
		_, err := svc.CreateSession(ctx, CreateSessionRequest{})
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	t.Run("get returns the session", func(t *testing.T) {
		got, err := svc.GetSession(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("get unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := svc.GetSession(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("record usage accumulates", func(t *testing.T) {
		require.NoError(t, svc.RecordUsage(ctx, created.ID, 2, 0.05))
		require.NoError(t, svc.RecordUsage(ctx, created.ID, 1, 0.01))
		got, err := svc.GetSession(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.TotalMessages)
		assert.InDelta(t, 0.06, got.TotalCost, 1e-9)
	})

	t.Run("archive makes session read-only", func(t *testing.T) {
		archived, err := svc.ArchiveSession(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, session.StatusArchived, archived.Status)

		_, err = svc.RequireActive(ctx, created.ID)
		assert.ErrorIs(t, err, ErrSessionArchived)
	})
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSession(ctx, CreateSessionRequest{UserID: "user-a"})
		require.NoError(t, err)
	}
	_, err := svc.CreateSession(ctx, CreateSessionRequest{UserID: "user-b"})
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx, "user-a", "", 10, 0)
	require.NoError(t, err)
	assert.Len(t, sessions, 3)
	for _, s := range sessions {
		assert.Equal(t, "user-a", s.UserID)
	}

	t.Run("status filter", func(t *testing.T) {
		_, err := svc.ArchiveSession(ctx, sessions[0].ID)
		require.NoError(t, err)

		archived, err := svc.ListSessions(ctx, "user-a", "archived", 10, 0)
		require.NoError(t, err)
		assert.Len(t, archived, 1)

		active, err := svc.ListSessions(ctx, "user-a", "active", 10, 0)
		require.NoError(t, err)
		assert.Len(t, active, 2)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.ListSessions(ctx, "user-a", "deleted", 10, 0)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_ArchiveIdleSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()

	stale, err := svc.CreateSession(ctx, CreateSessionRequest{UserID: "user-a"})
	require.NoError(t, err)
	fresh, err := svc.CreateSession(ctx, CreateSessionRequest{UserID: "user-a"})
	require.NoError(t, err)

	err = client.Session.UpdateOneID(stale.ID).
		SetUpdatedAt(stale.UpdatedAt.AddDate(0, 0, -60)).
		Exec(ctx)
	require.NoError(t, err)

	count, err := svc.ArchiveIdleSessions(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := svc.GetSession(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusActive, got.Status)
}
