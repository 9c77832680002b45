package handler

import (
	"github.com/MKhiriev/coffee-notes/internal/config"
	"github.com/MKhiriev/coffee-notes/internal/handler/http"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/metrics"
	"github.com/MKhiriev/coffee-notes/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers for the configured addresses.
// m and gatherer may be nil, which disables request metrics and /metrics.
func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	opts := []http.Option{http.WithRequestTimeout(cfg.RequestTimeout)}
	if m != nil && gatherer != nil {
		opts = append(opts, http.WithMetrics(m, gatherer))
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger, opts...),
	}, nil
}
