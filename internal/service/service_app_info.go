package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// appInfoService reports the running server's version. The configured
// version wins; the linker-injected build version is used when none is set.
type appInfoService struct {
	appVersion string
	buildInfo  models.BuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, buildInfo models.BuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" && buildInfo.Version != "" && buildInfo.Version != models.NotAvailable {
		version = buildInfo.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().
		Str("func", "NewAppInfoService").
		Str("version", version).
		Str("commit", buildInfo.Commit).
		Msg("app info initialized")

	return &appInfoService{
		appVersion: version,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.buildInfo
}
