package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(50)<<30, cfg.Query.MaxBytesScanned)
	assert.True(t, cfg.Query.RequirePartitionFilter)
	assert.Equal(t, 100, cfg.Query.DefaultLimit)
	assert.Equal(t, 1000, cfg.Query.MaxLimit)
	assert.Equal(t, 24, cfg.Query.DefaultTimeWindowHours)
	assert.Equal(t, 720, cfg.Query.MaxTimeWindowHours)
	assert.Equal(t, 1000, cfg.ETL.BatchSize)
	assert.Equal(t, 5, cfg.ETL.ErrorThresholdPct)
	assert.Equal(t, 7, cfg.Embedding.TTLDays)
	assert.Equal(t, 0.85, cfg.Embedding.SimilarityThreshold)
	assert.Equal(t, 10000, cfg.Agent.TokenBudgetMax)
	assert.Equal(t, 4, cfg.Agent.ToolFanoutMax)
	assert.Equal(t, 15*time.Second, cfg.Stream.HeartbeatInterval)
	assert.Equal(t, 30*time.Second, cfg.Stream.SlowConsumerTimeout)
	assert.True(t, cfg.Agent.PIIRedactionEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAX_BYTES_SCANNED", "1073741824")
	t.Setenv("STREAM_HEARTBEAT_SECONDS", "5")
	t.Setenv("PII_REDACTION_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<30, cfg.Query.MaxBytesScanned)
	assert.Equal(t, 5*time.Second, cfg.Stream.HeartbeatInterval)
	assert.False(t, cfg.Agent.PIIRedactionEnabled)
}

func TestValidateRejectsBadRanges(t *testing.T) {
	t.Run("negative byte ceiling", func(t *testing.T) {
		t.Setenv("MAX_BYTES_SCANNED", "-1")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("max limit below default limit", func(t *testing.T) {
		t.Setenv("MAX_LIMIT", "50")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("threshold over 100", func(t *testing.T) {
		t.Setenv("ETL_ERROR_THRESHOLD_PCT", "150")
		_, err := Load()
		assert.Error(t, err)
	})
}
