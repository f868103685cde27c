// control/metrics.go
//
// Runtime metrics collector for cueue-bench's throughput and latency counters.

package control

import (
	"sync"
	"time"
)

// BenchMetrics is a point-in-time view of a running bench session's
// throughput and commit-latency percentiles.
type BenchMetrics struct {
	BytesWritten     uint64
	BytesRead        uint64
	MessagesWritten  uint64
	CommitLatencyP50 time.Duration
	CommitLatencyP99 time.Duration
	Updated          time.Time
}

// MetricsRegistry holds the latest BenchMetrics for a running bench session.
type MetricsRegistry struct {
	mu sync.RWMutex
	m  BenchMetrics
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{}
}

// Set replaces the current metrics snapshot, stamping it with the current time.
func (mr *MetricsRegistry) Set(m BenchMetrics) {
	m.Updated = time.Now()
	mr.mu.Lock()
	mr.m = m
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() BenchMetrics {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.m
}
