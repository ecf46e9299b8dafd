package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/cloudsift/cloudsift/test/database"
)

func TestCheckpointService_AppendAndResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	svc := NewCheckpointService(client.Client)
	ctx := context.Background()

	sess, err := sessions.CreateSession(ctx, CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	t.Run("no checkpoints means nothing to resume", func(t *testing.T) {
		_, err := svc.LatestResumable(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("append chains sequence and parent", func(t *testing.T) {
		first, err := svc.Append(ctx, AppendCheckpointRequest{
			SessionID: sess.ID, RunID: "run-1", NodeID: "plan",
			StateBlob: []byte(`{"node":"plan"}`),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, first.SequenceNumber)
		assert.Empty(t, first.ParentID)

		second, err := svc.Append(ctx, AppendCheckpointRequest{
			SessionID: sess.ID, RunID: "run-1", NodeID: "act",
			StateBlob: []byte(`{"node":"act"}`),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, second.SequenceNumber)
		if assert.NotNil(t, second.ParentID) {
			assert.Equal(t, first.ID, *second.ParentID)
		}
	})

	t.Run("latest resumable returns in-flight run", func(t *testing.T) {
		cp, err := svc.LatestResumable(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "act", cp.NodeID)
		assert.False(t, cp.Terminal)
	})

	t.Run("terminal checkpoint ends resumability", func(t *testing.T) {
		_, err := svc.Append(ctx, AppendCheckpointRequest{
			SessionID: sess.ID, RunID: "run-1", NodeID: "done",
			Terminal:  true,
			StateBlob: []byte(`{"node":"done"}`),
		})
		require.NoError(t, err)

		_, err = svc.LatestResumable(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list run returns sequence order", func(t *testing.T) {
		checkpoints, err := svc.ListRun(ctx, sess.ID, "run-1")
		require.NoError(t, err)
		require.Len(t, checkpoints, 3)
		assert.Equal(t, []string{"plan", "act", "done"}, []string{
			checkpoints[0].NodeID, checkpoints[1].NodeID, checkpoints[2].NodeID,
		})
	})
}
