package alertbus

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/cloudsift/cloudsift/test/database"
)

func TestTrimSnippet(t *testing.T) {
	t.Run("cut lands on a rune boundary", func(t *testing.T) {
		s := strings.Repeat("ü", 100) // 2 bytes per rune
		trimmed := trimSnippet(s, 1)
		assert.True(t, utf8.ValidString(trimmed))
		assert.Equal(t, 198, len(trimmed))
	})

	t.Run("over-trim empties the snippet", func(t *testing.T) {
		assert.Equal(t, "", trimSnippet("abc", 5))
	})
}

func TestPublisher_SnippetTruncation(t *testing.T) {
	alert := ErrorAlert{
		LogID:       "abc",
		EventTS:     time.Now(),
		Severity:    "ERROR",
		SourceTable: "app_logs",
		Snippet:     strings.Repeat("x", 10000),
	}
	// Exercise the trim loop directly through Publish against a real DB.
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	pub := NewPublisher(client.DB())

	err := pub.Publish(context.Background(), alert)
	require.NoError(t, err)

	alert.Snippet = strings.Repeat("ü", 6000)
	require.NoError(t, pub.Publish(context.Background(), alert))
}

func TestPublishAndListen(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)
	ctx := context.Background()

	var mu sync.Mutex
	var received []ErrorAlert
	listener := NewListener(shared.ConnString(), func(_ context.Context, alert ErrorAlert) {
		mu.Lock()
		received = append(received, alert)
		mu.Unlock()
	})
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })

	pub := NewPublisher(client.DB())
	want := ErrorAlert{
		LogID:       "log-1",
		EventTS:     time.Now().UTC().Truncate(time.Second),
		ServiceName: "checkout",
		Severity:    "CRITICAL",
		SourceTable: "app_logs",
		Snippet:     "payment provider timeout",
	}
	require.NoError(t, pub.Publish(ctx, want))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 1
	}, 5*time.Second, 50*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, want.LogID, received[0].LogID)
	assert.Equal(t, want.Severity, received[0].Severity)
	assert.Equal(t, want.Snippet, received[0].Snippet)
}
