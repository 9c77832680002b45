package service

import (
	"fmt"

	"github.com/MKhiriev/coffee-notes/internal/config"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/internal/metrics"
	"github.com/MKhiriev/coffee-notes/internal/store"
	"github.com/MKhiriev/coffee-notes/internal/utils"
)

// Services groups the server-side services.
type Services struct {
	NoteService      NoteService
	AppInfoService   AppInfoService
	LikeReconcileJob *LikeReconcileJob
}

// NewServices wires the services over the storages. The note service is
// wrapped with validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	notes := NewNoteService(storages.NoteRepository, storages.LikeRepository, utils.NewUUIDGenerator(), m, logger)

	return &Services{
		NoteService:      NewNoteValidationService().Wrap(notes),
		AppInfoService:   appInfo,
		LikeReconcileJob: NewLikeReconcileJob(storages.LikeRepository, cfg.Workers.LikeReconcileInterval, m, logger),
	}, nil
}
