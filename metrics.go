package stargrid

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordBuild is called after each build step (Sort, Retain,
	// DeriveIndex). duration is the time taken.
	RecordBuild(duration time.Duration)

	// RecordNearest is called after each Nearest or NearestK query.
	// results is the number of stars returned.
	RecordNearest(results int, duration time.Duration)

	// RecordTriples is called after each FindTriples query.
	// matches is the number of triples emitted.
	RecordTriples(matches int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(time.Duration)        {}
func (NoopMetricsCollector) RecordNearest(int, time.Duration) {}
func (NoopMetricsCollector) RecordTriples(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildTotalNanos   atomic.Int64
	NearestCount      atomic.Int64
	NearestResults    atomic.Int64
	NearestTotalNanos atomic.Int64
	TriplesCount      atomic.Int64
	TriplesMatches    atomic.Int64
	TriplesTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordNearest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearest(results int, duration time.Duration) {
	b.NearestCount.Add(1)
	b.NearestResults.Add(int64(results))
	b.NearestTotalNanos.Add(duration.Nanoseconds())
}

// RecordTriples implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTriples(matches int, duration time.Duration) {
	b.TriplesCount.Add(1)
	b.TriplesMatches.Add(int64(matches))
	b.TriplesTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:      b.BuildCount.Load(),
		BuildAvgNanos:   avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		NearestCount:    b.NearestCount.Load(),
		NearestResults:  b.NearestResults.Load(),
		NearestAvgNanos: avg(b.NearestTotalNanos.Load(), b.NearestCount.Load()),
		TriplesCount:    b.TriplesCount.Load(),
		TriplesMatches:  b.TriplesMatches.Load(),
		TriplesAvgNanos: avg(b.TriplesTotalNanos.Load(), b.TriplesCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount      int64
	BuildAvgNanos   int64
	NearestCount    int64
	NearestResults  int64
	NearestAvgNanos int64
	TriplesCount    int64
	TriplesMatches  int64
	TriplesAvgNanos int64
}
