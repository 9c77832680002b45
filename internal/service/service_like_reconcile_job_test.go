package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/metrics"
	"github.com/MKhiriev/coffee-notes/internal/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── ReconcileOnce ──

func TestLikeReconcileJob_ReconcileOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("records corrections", func(t *testing.T) {
		likes := mock.NewMockLikeRepository(gomock.NewController(t))
		m := metrics.NewMetrics(prometheus.NewRegistry())
		job := NewLikeReconcileJob(likes, time.Minute, m, logger.Nop())

		likes.EXPECT().ReconcileLikeCounts(ctx).Return(int64(3), nil)

		n, err := job.ReconcileOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.Equal(t, 3.0, testutil.ToFloat64(m.LikeCountCorrections))
	})

	t.Run("returns repository error", func(t *testing.T) {
		likes := mock.NewMockLikeRepository(gomock.NewController(t))
		job := NewLikeReconcileJob(likes, time.Minute, nil, logger.Nop())

		likes.EXPECT().ReconcileLikeCounts(ctx).Return(int64(0), errors.New("db down"))

		_, err := job.ReconcileOnce(ctx)
		require.Error(t, err)
	})
}

// ── Start / Stop ──

func TestLikeReconcileJob_StartRunsOnTicker(t *testing.T) {
	likes := mock.NewMockLikeRepository(gomock.NewController(t))
	job := NewLikeReconcileJob(likes, 10*time.Millisecond, nil, logger.Nop())

	called := make(chan struct{}, 10)
	likes.EXPECT().ReconcileLikeCounts(gomock.Any()).
		DoAndReturn(func(context.Context) (int64, error) {
			select {
			case called <- struct{}{}:
			default:
			}
			return 0, nil
		}).
		MinTimes(1)

	job.Start(context.Background())

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciliation was not triggered")
	}

	job.Stop()
}

func TestLikeReconcileJob_DisabledWithZeroInterval(t *testing.T) {
	likes := mock.NewMockLikeRepository(gomock.NewController(t))
	job := NewLikeReconcileJob(likes, 0, nil, logger.Nop())

	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()
}

func TestLikeReconcileJob_StopWithoutStart(t *testing.T) {
	job := NewLikeReconcileJob(nil, time.Minute, nil, logger.Nop())
	assert.NotPanics(t, job.Stop)
}

func TestLikeReconcileJob_StopsOnContextCancel(t *testing.T) {
	likes := mock.NewMockLikeRepository(gomock.NewController(t))
	likes.EXPECT().ReconcileLikeCounts(gomock.Any()).Return(int64(0), nil).AnyTimes()
	job := NewLikeReconcileJob(likes, 5*time.Millisecond, nil, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not stop after context cancellation")
	}
}
