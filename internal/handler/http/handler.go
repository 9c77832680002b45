package http

import (
	"time"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/metrics"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// maxRequestBodySize bounds every JSON request body.
const maxRequestBodySize = 1 << 20

// Handler serves the note store API.
type Handler struct {
	services *service.Services

	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer

	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures optional parts of the Handler.
type Option func(*Handler)

// WithMetrics records request metrics in m and exposes gatherer on /metrics.
func WithMetrics(m *metrics.Metrics, gatherer prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.metrics = m
		h.gatherer = gatherer
	}
}

// WithRequestTimeout bounds the time a handler may spend on a request.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
