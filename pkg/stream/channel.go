package stream

import (
	"errors"
	"sync"
	"time"

	"github.com/cloudsift/cloudsift/pkg/config"
)

// Sentinel errors returned by Publish.
var (
	ErrClosed       = errors.New("stream channel closed")
	ErrSlowConsumer = errors.New("stream consumer too slow")
)

// CloseReasonSlowConsumer marks a channel torn down because the client
// stopped draining frames.
const CloseReasonSlowConsumer = "slow_consumer"

// Channel is one run's bounded event stream. Producers publish through
// it; exactly one SSE serving loop drains it. When the buffer stays full
// past the slow-consumer timeout the channel closes itself and the
// producer gets ErrSlowConsumer, so a stalled browser cannot wedge an
// agent run.
type Channel struct {
	mu     sync.Mutex
	seq    uint64
	events chan Event

	done      chan struct{}
	closeOnce sync.Once
	reason    string

	slowTimeout time.Duration
	heartbeat   time.Duration
}

// NewChannel creates a run stream with the configured buffer and
// timeouts.
func NewChannel(cfg config.StreamConfig) *Channel {
	return &Channel{
		events:      make(chan Event, cfg.BufferSize),
		done:        make(chan struct{}),
		slowTimeout: cfg.SlowConsumerTimeout,
		heartbeat:   cfg.HeartbeatInterval,
	}
}

// Publish enqueues one frame. It blocks while the buffer is full, up to
// the slow-consumer timeout; past that the channel closes and every
// later Publish returns ErrClosed. Sequence numbers are assigned at
// enqueue time, so concurrent publishers still produce a strictly
// increasing stream.
func (c *Channel) Publish(t EventType, data any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return ErrClosed
	default:
	}

	ev := Event{
		Seq:       c.seq + 1,
		Type:      t,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	timer := time.NewTimer(c.slowTimeout)
	defer timer.Stop()
	select {
	case c.events <- ev:
		c.seq = ev.Seq
		return nil
	case <-timer.C:
		c.closeWith(CloseReasonSlowConsumer)
		return ErrSlowConsumer
	case <-c.done:
		return ErrClosed
	}
}

// Close tears the channel down. Safe to call more than once; only the
// first reason sticks.
func (c *Channel) Close(reason string) {
	c.closeWith(reason)
}

func (c *Channel) closeWith(reason string) {
	c.closeOnce.Do(func() {
		c.reason = reason
		close(c.done)
	})
}

// Done reports channel teardown to serving loops.
func (c *Channel) Done() <-chan struct{} { return c.done }

// CloseReason returns the reason recorded at teardown, empty while the
// channel is open.
func (c *Channel) CloseReason() string {
	select {
	case <-c.done:
		return c.reason
	default:
		return ""
	}
}

// tryPublish enqueues a frame only if buffer space is free. Used for
// heartbeats: a client too far behind to take a ping does not need one.
func (c *Channel) tryPublish(t EventType, data any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return false
	default:
	}

	ev := Event{
		Seq:       c.seq + 1,
		Type:      t,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
	select {
	case c.events <- ev:
		c.seq = ev.Seq
		return true
	default:
		return false
	}
}
