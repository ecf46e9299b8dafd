// Package config loads and validates CloudSift configuration from the
// environment. A .env file (loaded by the binaries via godotenv) may seed
// the environment; after that, configuration is immutable for the life of
// the process.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object used throughout the
// application. Returned by Load() and threaded through component
// constructors — there are no configuration singletons.
type Config struct {
	Query     QueryConfig
	ETL       ETLConfig
	Embedding EmbeddingConfig
	Agent     AgentConfig
	Stream    StreamConfig
	Pools     PoolConfig
	Retention RetentionConfig
}

// QueryConfig bounds the query planner and cost guard.
type QueryConfig struct {
	// MaxBytesScanned is the cost-guard ceiling per query.
	MaxBytesScanned int64
	// RequirePartitionFilter refuses queries without a time filter.
	RequirePartitionFilter bool
	DefaultLimit           int
	MaxLimit               int
	DefaultTimeWindowHours int
	MaxTimeWindowHours     int
	// QueryTimeout bounds fact-table query execution.
	QueryTimeout time.Duration
}

// ETLConfig bounds the normalizer batch job.
type ETLConfig struct {
	BatchSize int
	// ErrorThresholdPct aborts a window when exceeded (dead-letter rate).
	ErrorThresholdPct int
	MaxAttempts       int
	// IncrementalLookback is the window covered by incremental runs.
	IncrementalLookback time.Duration
}

// EmbeddingConfig configures the error-embedding writer.
type EmbeddingConfig struct {
	TTLDays   int
	Dimension int
	Model     string
	// SimilarityThreshold is the cosine similarity above which an error
	// joins an existing cluster.
	SimilarityThreshold float64
	Timeout             time.Duration
}

// AgentConfig bounds the orchestrator.
type AgentConfig struct {
	TokenBudgetMax int
	ToolFanoutMax  int
	// MaxToolCallsPerTurn caps act→observe cycles before returning to plan.
	MaxToolCallsPerTurn int
	ToolTimeout         time.Duration
	RunTimeout          time.Duration
	LLMTimeout          time.Duration
	Model               string
	PIIRedactionEnabled bool
}

// StreamConfig bounds the SSE channel.
type StreamConfig struct {
	HeartbeatInterval   time.Duration
	SlowConsumerTimeout time.Duration
	BufferSize          int
}

// PoolConfig bounds external connection pools.
type PoolConfig struct {
	StoreConns  int
	VectorConns int
	LLMChannels int
}

// RetentionConfig bounds the background retention loop.
type RetentionConfig struct {
	// SessionIdleDays archives active sessions with no activity for this long.
	SessionIdleDays int
	// DeadLetterTTL prunes dead letters older than this.
	DeadLetterTTL time.Duration
	// Interval between retention passes.
	Interval time.Duration
}

// Load reads configuration from the environment, applying documented
// defaults. Returns a validation error (exit code 2 territory) when a
// value is out of range.
func Load() (*Config, error) {
	cfg := &Config{
		Query: QueryConfig{
			MaxBytesScanned:        envInt64("MAX_BYTES_SCANNED", 50<<30),
			RequirePartitionFilter: envBool("REQUIRE_PARTITION_FILTER", true),
			DefaultLimit:           envInt("DEFAULT_LIMIT", 100),
			MaxLimit:               envInt("MAX_LIMIT", 1000),
			DefaultTimeWindowHours: envInt("DEFAULT_TIME_WINDOW_HOURS", 24),
			MaxTimeWindowHours:     envInt("MAX_TIME_WINDOW_HOURS", 720),
			QueryTimeout:           envDuration("QUERY_TIMEOUT", 60*time.Second),
		},
		ETL: ETLConfig{
			BatchSize:           envInt("ETL_BATCH_SIZE", 1000),
			ErrorThresholdPct:   envInt("ETL_ERROR_THRESHOLD_PCT", 5),
			MaxAttempts:         envInt("ETL_MAX_ATTEMPTS", 3),
			IncrementalLookback: envDuration("ETL_INCREMENTAL_LOOKBACK", 2*time.Hour),
		},
		Embedding: EmbeddingConfig{
			TTLDays:             envInt("EMBEDDING_TTL_DAYS", 7),
			Dimension:           envInt("EMBEDDING_DIMENSION", 1536),
			Model:               envString("EMBEDDING_MODEL", "text-embedding-3-small"),
			SimilarityThreshold: envFloat("EMBEDDING_SIMILARITY_THRESHOLD", 0.85),
			Timeout:             envDuration("EMBEDDING_TIMEOUT", 5*time.Second),
		},
		Agent: AgentConfig{
			TokenBudgetMax:      envInt("TOKEN_BUDGET_MAX", 10000),
			ToolFanoutMax:       envInt("TOOL_FANOUT_MAX", 4),
			MaxToolCallsPerTurn: envInt("MAX_TOOL_CALLS_PER_TURN", 6),
			ToolTimeout:         envDuration("TOOL_TIMEOUT", 30*time.Second),
			RunTimeout:          envDuration("RUN_TIMEOUT", 300*time.Second),
			LLMTimeout:          envDuration("LLM_TIMEOUT", 120*time.Second),
			Model:               envString("AGENT_MODEL", "claude-sonnet-4-5"),
			PIIRedactionEnabled: envBool("PII_REDACTION_ENABLED", true),
		},
		Stream: StreamConfig{
			HeartbeatInterval:   envDuration("STREAM_HEARTBEAT_SECONDS", 15*time.Second),
			SlowConsumerTimeout: envDuration("STREAM_SLOW_CONSUMER_SECONDS", 30*time.Second),
			BufferSize:          envInt("STREAM_BUFFER_SIZE", 64),
		},
		Pools: PoolConfig{
			StoreConns:  envInt("POOL_STORE_CONNS", 8),
			VectorConns: envInt("POOL_VECTOR_CONNS", 16),
			LLMChannels: envInt("POOL_LLM_CHANNELS", 4),
		},
		Retention: RetentionConfig{
			SessionIdleDays: envInt("RETENTION_SESSION_IDLE_DAYS", 30),
			DeadLetterTTL:   envDuration("RETENTION_DEAD_LETTER_TTL", 30*24*time.Hour),
			Interval:        envDuration("RETENTION_INTERVAL", time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks range constraints on loaded values.
func (c *Config) Validate() error {
	if c.Query.MaxBytesScanned <= 0 {
		return fmt.Errorf("MAX_BYTES_SCANNED must be positive, got %d", c.Query.MaxBytesScanned)
	}
	if c.Query.MaxLimit < c.Query.DefaultLimit {
		return fmt.Errorf("MAX_LIMIT (%d) must be >= DEFAULT_LIMIT (%d)", c.Query.MaxLimit, c.Query.DefaultLimit)
	}
	if c.Query.MaxTimeWindowHours < c.Query.DefaultTimeWindowHours {
		return fmt.Errorf("MAX_TIME_WINDOW_HOURS (%d) must be >= DEFAULT_TIME_WINDOW_HOURS (%d)",
			c.Query.MaxTimeWindowHours, c.Query.DefaultTimeWindowHours)
	}
	if c.ETL.BatchSize <= 0 {
		return fmt.Errorf("ETL_BATCH_SIZE must be positive, got %d", c.ETL.BatchSize)
	}
	if c.ETL.ErrorThresholdPct < 0 || c.ETL.ErrorThresholdPct > 100 {
		return fmt.Errorf("ETL_ERROR_THRESHOLD_PCT must be in [0,100], got %d", c.ETL.ErrorThresholdPct)
	}
	if c.Embedding.SimilarityThreshold <= 0 || c.Embedding.SimilarityThreshold > 1 {
		return fmt.Errorf("EMBEDDING_SIMILARITY_THRESHOLD must be in (0,1], got %f", c.Embedding.SimilarityThreshold)
	}
	if c.Agent.TokenBudgetMax <= 0 {
		return fmt.Errorf("TOKEN_BUDGET_MAX must be positive, got %d", c.Agent.TokenBudgetMax)
	}
	if c.Agent.ToolFanoutMax <= 0 {
		return fmt.Errorf("TOOL_FANOUT_MAX must be positive, got %d", c.Agent.ToolFanoutMax)
	}
	if c.Stream.BufferSize <= 0 {
		return fmt.Errorf("STREAM_BUFFER_SIZE must be positive, got %d", c.Stream.BufferSize)
	}
	if c.Retention.SessionIdleDays <= 0 {
		return fmt.Errorf("RETENTION_SESSION_IDLE_DAYS must be positive, got %d", c.Retention.SessionIdleDays)
	}
	return nil
}

// --- env helpers ---

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// envDuration reads a duration. Keys ending in _SECONDS also accept a bare
// integer (seconds) for compatibility with the documented configuration
// table.
func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
