package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/cloudsift/cloudsift/test/database"
)

func TestMessageService_AppendMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	svc := NewMessageService(client.Client)
	ctx := context.Background()

	sess, err := sessions.CreateSession(ctx, CreateSessionRequest{UserID: "user-1"})
	require.NoError(t, err)

	t.Run("sequence numbers are dense from 1", func(t *testing.T) {
		for i, role := range []string{"user", "assistant", "tool"} {
			msg, err := svc.AppendMessage(ctx, AppendMessageRequest{
				SessionID: sess.ID,
				Role:      role,
				Content:   "content",
			})
			require.NoError(t, err)
			assert.Equal(t, i+1, msg.SequenceNumber)
		}
	})

	t.Run("list returns sequence order", func(t *testing.T) {
		messages, err := svc.ListMessages(ctx, sess.ID, 0, 10)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		for i, m := range messages {
			assert.Equal(t, i+1, m.SequenceNumber)
		}
	})

	t.Run("list after sequence skips earlier rows", func(t *testing.T) {
		messages, err := svc.ListMessages(ctx, sess.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, 2, messages[0].SequenceNumber)
	})

	t.Run("rejects missing role", func(t *testing.T) {
		_, err := svc.AppendMessage(ctx, AppendMessageRequest{SessionID: sess.ID})
		assert.True(t, IsValidationError(err))
	})

	t.Run("assistant tool calls round-trip as structured records", func(t *testing.T) {
		msg, err := svc.AppendMessage(ctx, AppendMessageRequest{
			SessionID: sess.ID,
			Role:      "assistant",
			Content:   "checking the logs",
			ToolCalls: []map[string]interface{}{
				{"id": "t1", "name": "log_search", "input": map[string]interface{}{"severity": "ERROR"}},
			},
		})
		require.NoError(t, err)

		stored, err := svc.ListMessages(ctx, sess.ID, msg.SequenceNumber-1, 1)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		require.Len(t, stored[0].ToolCalls, 1)
		assert.Equal(t, "t1", stored[0].ToolCalls[0]["id"])
		assert.Equal(t, "log_search", stored[0].ToolCalls[0]["name"])
	})
}
