package metrics

import (
	"context"
	"runtime"
	"time"
)

const nanosecondsPerMillisecond = 1e6

// CollectSystem samples runtime memory, goroutine and GC figures once.
func CollectSystem() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	UpdateSystemMemoryUsage(m.Alloc)
	UpdateSystemGoroutineCount(runtime.NumGoroutine())
	if m.NumGC > 0 {
		UpdateGCPauseAverage(m.PauseTotalNs, m.NumGC)
	}
}

// UpdateGCPauseAverage observes the mean GC pause across numGC collections.
func UpdateGCPauseAverage(pauseTotalNs uint64, numGC uint32) {
	if numGC == 0 {
		return
	}
	RecordSystemGCPauseTime(float64(pauseTotalNs) / float64(numGC) / nanosecondsPerMillisecond)
}

// RunSystemCollector calls CollectSystem every interval until ctx is done.
func RunSystemCollector(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			CollectSystem()
		}
	}
}
