package symtab

import (
	"sync/atomic"
	"time"
)

// ResizeKind distinguishes growth from shrink reallocations.
type ResizeKind uint8

const (
	// ResizeGrow is a capacity doubling triggered by an insert into full storage.
	ResizeGrow ResizeKind = iota
	// ResizeShrink is a capacity halving triggered by a sparse table after removal.
	ResizeShrink
)

func (k ResizeKind) String() string {
	switch k {
	case ResizeGrow:
		return "grow"
	case ResizeShrink:
		return "shrink"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Containers are single-owner, but a collector may be shared by several of
// them, so implementations should be safe for concurrent use.
type MetricsCollector interface {
	// RecordResize is called after backing storage was reallocated.
	RecordResize(kind ResizeKind, from, to int)

	// RecordSnapshot is called after each snapshot save.
	// bytes is the encoded size written to the store.
	RecordSnapshot(entries, bytes int, duration time.Duration, err error)

	// RecordRestore is called after each snapshot load.
	RecordRestore(entries int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResize(ResizeKind, int, int)              {}
func (NoopMetricsCollector) RecordSnapshot(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRestore(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount          atomic.Int64
	ShrinkCount        atomic.Int64
	PeakCapacity       atomic.Int64
	SnapshotCount      atomic.Int64
	SnapshotErrors     atomic.Int64
	SnapshotBytes      atomic.Int64
	SnapshotTotalNanos atomic.Int64
	RestoreCount       atomic.Int64
	RestoreErrors      atomic.Int64
	RestoreEntries     atomic.Int64
}

// RecordResize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResize(kind ResizeKind, _, to int) {
	switch kind {
	case ResizeGrow:
		b.GrowCount.Add(1)
	case ResizeShrink:
		b.ShrinkCount.Add(1)
	}
	for {
		peak := b.PeakCapacity.Load()
		if int64(to) <= peak || b.PeakCapacity.CompareAndSwap(peak, int64(to)) {
			return
		}
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(_ int, bytes int, duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	b.SnapshotTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SnapshotErrors.Add(1)
		return
	}
	b.SnapshotBytes.Add(int64(bytes))
}

// RecordRestore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRestore(entries int, _ time.Duration, err error) {
	b.RestoreCount.Add(1)
	if err != nil {
		b.RestoreErrors.Add(1)
		return
	}
	b.RestoreEntries.Add(int64(entries))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:        b.GrowCount.Load(),
		ShrinkCount:      b.ShrinkCount.Load(),
		PeakCapacity:     b.PeakCapacity.Load(),
		SnapshotCount:    b.SnapshotCount.Load(),
		SnapshotErrors:   b.SnapshotErrors.Load(),
		SnapshotBytes:    b.SnapshotBytes.Load(),
		SnapshotAvgNanos: b.avgSnapshotNanos(),
		RestoreCount:     b.RestoreCount.Load(),
		RestoreErrors:    b.RestoreErrors.Load(),
		RestoreEntries:   b.RestoreEntries.Load(),
	}
}

func (b *BasicMetricsCollector) avgSnapshotNanos() int64 {
	count := b.SnapshotCount.Load()
	if count == 0 {
		return 0
	}
	return b.SnapshotTotalNanos.Load() / count
}

// BasicMetricsStats is a point-in-time view of BasicMetricsCollector.
type BasicMetricsStats struct {
	GrowCount        int64
	ShrinkCount      int64
	PeakCapacity     int64
	SnapshotCount    int64
	SnapshotErrors   int64
	SnapshotBytes    int64
	SnapshotAvgNanos int64
	RestoreCount     int64
	RestoreErrors    int64
	RestoreEntries   int64
}
