// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/coffee-notes/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// recordingWorker appends its id to a shared log on Start and Stop.
type recordingWorker struct {
	id  string
	log *[]string
}

func (r *recordingWorker) Start(context.Context) { *r.log = append(*r.log, "start "+r.id) }
func (r *recordingWorker) Stop()                 { *r.log = append(*r.log, "stop "+r.id) }

// ── Workers ──

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: "a", log: &log},
		nil,
		&recordingWorker{id: "b", log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

// ── DBStatsWorker ──

type fakeStats struct {
	calls atomic.Int32
}

func (f *fakeStats) Stats() sql.DBStats {
	f.calls.Add(1)
	return sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3}
}

func TestDBStatsWorker_PublishesStats(t *testing.T) {
	src := &fakeStats{}
	m := metrics.NewMetrics(prometheus.NewRegistry())
	w := NewDBStatsWorker(src, m, 5*time.Millisecond)

	w.Start(context.Background())
	assert.Eventually(t, func() bool { return src.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	w.Stop()

	assert.Equal(t, 4.0, testutil.ToFloat64(m.DBConnPoolStats.WithLabelValues("open")))
}

func TestDBStatsWorker_DisabledWithoutInterval(t *testing.T) {
	src := &fakeStats{}
	w := NewDBStatsWorker(src, nil, 0)

	w.Start(context.Background())
	w.Stop()

	assert.Equal(t, int32(0), src.calls.Load())
}
