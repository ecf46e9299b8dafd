package stream

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/pkg/config"
)

func testStreamConfig() config.StreamConfig {
	return config.StreamConfig{
		HeartbeatInterval:   15 * time.Second,
		SlowConsumerTimeout: 30 * time.Second,
		BufferSize:          64,
	}
}

func TestChannel_Publish(t *testing.T) {
	t.Run("sequence starts at one and increases strictly", func(t *testing.T) {
		ch := NewChannel(testStreamConfig())
		require.NoError(t, ch.Publish(EventToken, TokenData{Text: "a"}))
		require.NoError(t, ch.Publish(EventToken, TokenData{Text: "b"}))
		require.NoError(t, ch.Publish(EventDone, nil))

		for want := uint64(1); want <= 3; want++ {
			ev := <-ch.events
			assert.Equal(t, want, ev.Seq)
		}
	})

	t.Run("publish after close returns ErrClosed", func(t *testing.T) {
		ch := NewChannel(testStreamConfig())
		ch.Close("client_disconnected")
		assert.ErrorIs(t, ch.Publish(EventToken, nil), ErrClosed)
		assert.Equal(t, "client_disconnected", ch.CloseReason())
	})

	t.Run("full buffer past the timeout closes as slow consumer", func(t *testing.T) {
		cfg := testStreamConfig()
		cfg.BufferSize = 1
		cfg.SlowConsumerTimeout = 20 * time.Millisecond
		ch := NewChannel(cfg)

		require.NoError(t, ch.Publish(EventToken, nil))
		err := ch.Publish(EventToken, nil)
		assert.ErrorIs(t, err, ErrSlowConsumer)
		assert.Equal(t, CloseReasonSlowConsumer, ch.CloseReason())
		assert.ErrorIs(t, ch.Publish(EventToken, nil), ErrClosed)
	})

	t.Run("tryPublish skips when the buffer is full", func(t *testing.T) {
		cfg := testStreamConfig()
		cfg.BufferSize = 1
		ch := NewChannel(cfg)

		assert.True(t, ch.tryPublish(EventPing, nil))
		assert.False(t, ch.tryPublish(EventPing, nil))

		ev := <-ch.events
		assert.Equal(t, uint64(1), ev.Seq)
		assert.True(t, ch.tryPublish(EventPing, nil))
		ev = <-ch.events
		assert.Equal(t, uint64(2), ev.Seq)
	})
}

func TestChannel_Serve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(t *testing.T, ch *Channel) *httptest.ResponseRecorder {
		t.Helper()
		rec := httptest.NewRecorder()
		gc, _ := gin.CreateTestContext(rec)
		req, err := http.NewRequest(http.MethodGet, "/api/chat", nil)
		require.NoError(t, err)
		gc.Request = req
		ch.Serve(gc)
		return rec
	}

	t.Run("delivers enqueued frames in order", func(t *testing.T) {
		ch := NewChannel(testStreamConfig())
		require.NoError(t, ch.Publish(EventToken, TokenData{Text: "hello"}))
		require.NoError(t, ch.Publish(EventDone, DoneData{RunID: "r1", FinalAnswer: true}))
		ch.Close("")

		rec := serve(t, ch)

		body := rec.Body.String()
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		assert.Contains(t, body, "event: token\n")
		assert.Contains(t, body, `"text":"hello"`)
		assert.Contains(t, body, "event: done\n")
		assert.Less(t, strings.Index(body, "event: token"), strings.Index(body, "event: done"))
	})

	t.Run("steady event flow suppresses heartbeats", func(t *testing.T) {
		cfg := testStreamConfig()
		cfg.HeartbeatInterval = 50 * time.Millisecond
		ch := NewChannel(cfg)

		go func() {
			for i := 0; i < 10; i++ {
				_ = ch.Publish(EventToken, TokenData{Text: "t"})
				time.Sleep(20 * time.Millisecond)
			}
			ch.Close("")
		}()

		rec := serve(t, ch)
		assert.NotContains(t, rec.Body.String(), "event: ping\n")
	})

	t.Run("slow consumer teardown appends an error frame", func(t *testing.T) {
		ch := NewChannel(testStreamConfig())
		require.NoError(t, ch.Publish(EventToken, TokenData{Text: "partial"}))
		ch.Close(CloseReasonSlowConsumer)

		rec := serve(t, ch)

		body := rec.Body.String()
		assert.Contains(t, body, "event: token\n")
		assert.Contains(t, body, "event: error\n")
		assert.Contains(t, body, CloseReasonSlowConsumer)
	})
}
