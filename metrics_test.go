package symtab

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResizeKind_String(t *testing.T) {
	assert.Equal(t, "grow", ResizeGrow.String())
	assert.Equal(t, "shrink", ResizeShrink.String())
}

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector
	var _ MetricsCollector = &m

	m.RecordResize(ResizeGrow, 4, 8)
	m.RecordResize(ResizeGrow, 8, 16)
	m.RecordResize(ResizeShrink, 16, 8)
	m.RecordSnapshot(10, 100, 2*time.Millisecond, nil)
	m.RecordSnapshot(0, 0, 4*time.Millisecond, errors.New("boom"))
	m.RecordRestore(10, time.Millisecond, nil)
	m.RecordRestore(3, time.Millisecond, errors.New("boom"))

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.GrowCount)
	assert.Equal(t, int64(1), stats.ShrinkCount)
	assert.Equal(t, int64(16), stats.PeakCapacity)
	assert.Equal(t, int64(2), stats.SnapshotCount)
	assert.Equal(t, int64(1), stats.SnapshotErrors)
	assert.Equal(t, int64(100), stats.SnapshotBytes)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.SnapshotAvgNanos)
	assert.Equal(t, int64(2), stats.RestoreCount)
	assert.Equal(t, int64(1), stats.RestoreErrors)
	assert.Equal(t, int64(10), stats.RestoreEntries)
}

func TestBasicMetricsCollector_PeakUnderContention(t *testing.T) {
	var m BasicMetricsCollector
	var wg sync.WaitGroup
	for i := 1; i <= 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordResize(ResizeGrow, 0, i)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(64), m.GetStats().PeakCapacity)
	assert.Equal(t, int64(64), m.GetStats().GrowCount)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordResize(ResizeGrow, 1, 2)
	m.RecordSnapshot(1, 1, time.Second, nil)
	m.RecordRestore(1, time.Second, nil)
}
