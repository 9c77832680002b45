// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the note store.
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "coffee_notes"

// Metrics holds Prometheus metrics for the note store.
type Metrics struct {
	RequestCounter       *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	RequestsInFlight     prometheus.Gauge
	NotesCreated         prometheus.Counter
	LikeToggles          *prometheus.CounterVec
	LikeCountCorrections prometheus.Counter
	DBConnPoolStats      *prometheus.GaugeVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),
		NotesCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "notes",
				Name:      "created_total",
				Help:      "Total number of created notes",
			},
		),
		LikeToggles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "likes",
				Name:      "toggles_total",
				Help:      "Total number of like toggles by resulting state",
			},
			[]string{"result"}, // liked or unliked
		),
		LikeCountCorrections: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "likes",
				Name:      "count_corrections_total",
				Help:      "Total number of note like counters corrected by the reconciler",
			},
		),
		DBConnPoolStats: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "connection_pool",
				Help:      "Database connection pool statistics",
			},
			[]string{"stat"},
		),
	}
}

// ObserveRequest records a finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RequestStarted increments the in-flight gauge and returns its decrement.
func (m *Metrics) RequestStarted() func() {
	if m == nil {
		return func() {}
	}
	m.RequestsInFlight.Inc()
	return m.RequestsInFlight.Dec
}

// NoteCreated counts a created note.
func (m *Metrics) NoteCreated() {
	if m == nil {
		return
	}
	m.NotesCreated.Inc()
}

// LikeToggled counts a toggle by its resulting state.
func (m *Metrics) LikeToggled(liked bool) {
	if m == nil {
		return
	}
	result := "unliked"
	if liked {
		result = "liked"
	}
	m.LikeToggles.WithLabelValues(result).Inc()
}

// LikeCountsCorrected adds n reconciled counters.
func (m *Metrics) LikeCountsCorrected(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.LikeCountCorrections.Add(float64(n))
}

// SetDBStats publishes connection pool statistics.
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.DBConnPoolStats.WithLabelValues("open").Set(float64(stats.OpenConnections))
	m.DBConnPoolStats.WithLabelValues("in_use").Set(float64(stats.InUse))
	m.DBConnPoolStats.WithLabelValues("idle").Set(float64(stats.Idle))
	m.DBConnPoolStats.WithLabelValues("wait_count").Set(float64(stats.WaitCount))
}
