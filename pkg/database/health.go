package database

import (
	"context"
	stdsql "database/sql"
	"time"
)

// HealthStatus reports database connectivity and pool utilization.
type HealthStatus struct {
	Healthy   bool          `json:"healthy"`
	Error     string        `json:"error,omitempty"`
	Latency   time.Duration `json:"latency_ns"`
	OpenConns int           `json:"open_conns"`
	InUse     int           `json:"in_use"`
	Idle      int           `json:"idle"`
}

// Health pings the database and returns connectivity status with pool
// statistics.
func Health(ctx context.Context, db *stdsql.DB) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	err := db.PingContext(ctx)
	latency := time.Since(start)

	stats := db.Stats()
	status := HealthStatus{
		Healthy:   err == nil,
		Latency:   latency,
		OpenConns: stats.OpenConnections,
		InUse:     stats.InUse,
		Idle:      stats.Idle,
	}
	if err != nil {
		status.Error = err.Error()
	}
	return status
}
