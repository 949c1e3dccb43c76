package database

import (
	"context"
	"time"
)

// HealthReport is the /health view of the database: one ping latency sample
// plus connection pool pressure.
type HealthReport struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
	PingMS  int64  `json:"ping_ms"`
	Open    int    `json:"open_conns"`
	InUse   int    `json:"in_use"`
	Idle    int    `json:"idle"`
	Waits   int64  `json:"waits"`
	WaitMS  int64  `json:"wait_ms"`
	MaxOpen int    `json:"max_open_conns"`
}

// Health pings the pool and snapshots its statistics. Wait counters are
// cumulative since process start; a climbing WaitMS means the pool is
// undersized for the pod's worker count.
func (c *Client) Health(ctx context.Context) *HealthReport {
	start := time.Now()
	report := &HealthReport{}

	if err := c.db.PingContext(ctx); err != nil {
		report.Error = err.Error()
		report.PingMS = time.Since(start).Milliseconds()
		return report
	}
	report.Healthy = true
	report.PingMS = time.Since(start).Milliseconds()

	stats := c.db.Stats()
	report.Open = stats.OpenConnections
	report.InUse = stats.InUse
	report.Idle = stats.Idle
	report.Waits = stats.WaitCount
	report.WaitMS = stats.WaitDuration.Milliseconds()
	report.MaxOpen = stats.MaxOpenConnections
	return report
}
