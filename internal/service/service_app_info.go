package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/coffee-notes/internal/config"
	"github.com/MKhiriev/coffee-notes/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService returns the reporter behind GET /api/version. A blank
// version is a configuration error.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("func", "NewAppInfoService").Str("version", version).Msg("note store version")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
