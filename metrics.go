package closestpair

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSolve is called once per computed point set.
	// points is the input size, duplicate reports whether the duplicate
	// pre-check decided the result.
	RecordSolve(points int, duplicate bool, duration time.Duration)

	// RecordBatch is called after each batch run.
	// count is the number of sets attempted, failed is the number that failed.
	RecordBatch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(int, bool, time.Duration)   {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount      atomic.Int64
	SolvePoints     atomic.Int64
	SolveDuplicates atomic.Int64
	SolveTotalNanos atomic.Int64
	BatchCount      atomic.Int64
	BatchSets       atomic.Int64
	BatchFailed     atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(points int, duplicate bool, duration time.Duration) {
	b.SolveCount.Add(1)
	b.SolvePoints.Add(int64(points))
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	if duplicate {
		b.SolveDuplicates.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchSets.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SolveCount:      b.SolveCount.Load(),
		SolvePoints:     b.SolvePoints.Load(),
		SolveDuplicates: b.SolveDuplicates.Load(),
		SolveAvgNanos:   b.getAvgSolveNanos(),
		BatchCount:      b.BatchCount.Load(),
		BatchSets:       b.BatchSets.Load(),
		BatchFailed:     b.BatchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSolveNanos() int64 {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector values.
type BasicMetricsStats struct {
	SolveCount      int64
	SolvePoints     int64
	SolveDuplicates int64
	SolveAvgNanos   int64
	BatchCount      int64
	BatchSets       int64
	BatchFailed     int64
}
