package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/metrics"
	"github.com/MKhiriev/coffee-notes/internal/store"
)

// LikeReconcileJob periodically rewrites notes.likes from the note_likes
// rows so that counters drifting after concurrent toggles converge.
type LikeReconcileJob struct {
	likes    store.LikeRepository
	interval time.Duration

	metrics *metrics.Metrics
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLikeReconcileJob creates an idle job. A non-positive interval disables
// it: Start then does nothing.
func NewLikeReconcileJob(likes store.LikeRepository, interval time.Duration, m *metrics.Metrics, logger *logger.Logger) *LikeReconcileJob {
	return &LikeReconcileJob{
		likes:    likes,
		interval: interval,
		metrics:  m,
		logger:   logger,
	}
}

// Start stops any previous run and launches a goroutine reconciling every
// interval until ctx is cancelled or Stop is called.
func (j *LikeReconcileJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Info().Str("func", "*LikeReconcileJob.Start").Msg("like reconciliation disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.ReconcileOnce(jobCtx)
			}
		}
	}()

	j.logger.Info().
		Str("func", "*LikeReconcileJob.Start").
		Dur("interval", j.interval).
		Msg("like reconciliation started")
}

// Stop cancels the background goroutine and waits for it to exit. Safe to
// call when the job is not running.
func (j *LikeReconcileJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// ReconcileOnce runs a single reconciliation and returns the number of
// corrected notes.
func (j *LikeReconcileJob) ReconcileOnce(ctx context.Context) (int64, error) {
	n, err := j.likes.ReconcileLikeCounts(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "*LikeReconcileJob.ReconcileOnce").Msg("like reconciliation failed")
		return 0, err
	}

	j.metrics.LikeCountsCorrected(n)
	if n > 0 {
		j.logger.Info().
			Str("func", "*LikeReconcileJob.ReconcileOnce").
			Int64("corrected", n).
			Msg("like counters reconciled")
	}

	return n, nil
}
