// Package grpc exposes the standard grpc.health.v1 service of the notes
// server.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-notes/internal/logger"
)

// NotesServiceName is the service name reported by the health service next to
// the overall ("") status.
const NotesServiceName = "go-notes.Notes"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows the server lifecycle:
// NOT_SERVING until [Handler.SetServing], NOT_SERVING again after
// [Handler.Shutdown].
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The reported status starts as
// NOT_SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(NotesServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		health: healthServer,
		logger: logger,
	}
}

// Register adds the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks the server and the notes service as SERVING.
func (h *Handler) SetServing() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(NotesServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Msg("gRPC health status set to SERVING")
}

// Shutdown switches every status to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Msg("gRPC health status set to NOT_SERVING")
}
