package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsift/cloudsift/pkg/config"
	"github.com/cloudsift/cloudsift/pkg/fault"
)

func TestNewAnthropicClient_RequiresKey(t *testing.T) {
	_, err := NewAnthropicClient("", config.AgentConfig{Model: "claude-sonnet-4-5"}, 4)
	require.Error(t, err)
	assert.Equal(t, fault.KindUsage, fault.KindOf(err))
}

func TestAnthropicClient_ChannelCap(t *testing.T) {
	c, err := NewAnthropicClient("test-key", config.AgentConfig{Model: "claude-sonnet-4-5"}, 1)
	require.NoError(t, err)

	// Hold the only channel so the next stream has to wait for a slot.
	require.NoError(t, c.channels.Acquire(context.Background(), 1))
	defer c.channels.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Stream(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	require.Error(t, err)
	assert.Equal(t, fault.KindTimeout, fault.KindOf(err))
}
