package http

import (
	"time"

	"github.com/MKhiriev/go-notes/internal/access"
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/validators"
)

type Handler struct {
	services *service.Services
	policy   access.Policy
	// validator completes decode error reports with field validation
	validator validators.Validator

	requestTimeout time.Duration
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		policy:         access.NewPostAndReadPolicy(),
		validator:      validators.NewNoteValidator(),
		requestTimeout: cfg.RequestTimeout,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         logger,
	}
}
