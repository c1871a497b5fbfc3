package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Methods served by each notes route, reported in the Allow header.
const (
	noteListAllowedMethods   = "GET, POST, HEAD, OPTIONS"
	noteDetailAllowedMethods = "GET, PUT, PATCH, DELETE, HEAD, OPTIONS"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		middleware.StripSlashes,
		middleware.GetHead,
		withGZipRequest,
		middleware.Compress(5, "application/json", "text/plain"),
		h.withCORS(),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Get("/api/version", h.getServerVersion)

	// every notes route identifies the caller and applies the access policy
	// before method matching, so a denied request never reaches storage
	router.Route("/api/notes", func(r chi.Router) {
		r.Use(h.auth, h.permission)

		r.Get("/", h.listNotes)
		r.Post("/", h.createNotes)
		r.Options("/", h.options(noteListAllowedMethods, "Note List"))

		r.Get("/{id}", h.retrieveNote)
		r.Put("/{id}", h.replaceNote)
		r.Patch("/{id}", h.patchNote)
		r.Delete("/{id}", h.deleteNote)
		r.Options("/{id}", h.options(noteDetailAllowedMethods, "Note Instance"))
	})

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{"Location", traceIDHeader},
		MaxAge:         300,
	})
}
