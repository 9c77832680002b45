package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/coffee-notes/internal/metrics"
)

// DBStatsWorker publishes connection pool statistics to the metrics on a
// fixed interval.
type DBStatsWorker struct {
	source   StatsSource
	metrics  *metrics.Metrics
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDBStatsWorker creates an idle worker.
func NewDBStatsWorker(source StatsSource, m *metrics.Metrics, interval time.Duration) *DBStatsWorker {
	return &DBStatsWorker{
		source:   source,
		metrics:  m,
		interval: interval,
	}
}

// Start publishes once immediately and then every interval.
func (w *DBStatsWorker) Start(ctx context.Context) {
	if w.interval <= 0 || w.source == nil {
		return
	}

	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.metrics.SetDBStats(w.source.Stats())
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				w.metrics.SetDBStats(w.source.Stats())
			}
		}
	}()
}

// Stop cancels the worker and waits for it to exit.
func (w *DBStatsWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
