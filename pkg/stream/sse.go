package stream

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Serve drains the channel into an SSE response until the client
// disconnects or the channel closes. Exactly one Serve loop per channel.
// Heartbeats keep intermediaries from timing the connection out.
func (c *Channel) Serve(gc *gin.Context) {
	w := gc.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ticker := time.NewTicker(c.heartbeat)
	defer ticker.Stop()

	ctx := gc.Request.Context()
	var lastSeq uint64

	for {
		select {
		case <-ctx.Done():
			c.Close("client_disconnected")
			return

		case ev := <-c.events:
			lastSeq = ev.Seq
			writeFrame(w, ev)
			// Any frame keeps the connection warm; heartbeats count
			// from the last delivery, not from connection start.
			ticker.Reset(c.heartbeat)

		case <-ticker.C:
			c.tryPublish(EventPing, nil)

		case <-c.done:
			// Deliver frames that were already enqueued, then the
			// teardown frame if the close was abnormal.
			for {
				select {
				case ev := <-c.events:
					lastSeq = ev.Seq
					writeFrame(w, ev)
					continue
				default:
				}
				break
			}
			if c.reason == CloseReasonSlowConsumer {
				writeFrame(w, Event{
					Seq:       lastSeq + 1,
					Type:      EventError,
					Data:      ErrorData{Kind: CloseReasonSlowConsumer, Message: "client stopped consuming events"},
					Timestamp: time.Now().UTC(),
				})
			}
			return
		}
	}
}

func writeFrame(w gin.ResponseWriter, ev Event) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, ev.encode())
	w.Flush()
}
