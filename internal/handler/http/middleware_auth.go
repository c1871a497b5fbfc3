package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
)

// auth identifies the caller from an optional "Authorization: Bearer <JWT>"
// header.
//
// A request without the header proceeds as anonymous. A header that cannot be
// parsed, or a token rejected by [service.AuthService.ParseToken], ends the
// request with 401. On success the caller is stored in the request context
// via [utils.WithCaller].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("malformed authorization header")
			h.unauthorized(w, detailInvalidHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			h.unauthorized(w, detailInvalidToken)
			return
		}

		log.Debug().Str("subject", token.Caller.Subject).Stringer("role", token.Caller.Role).Msg("caller identified")
		next.ServeHTTP(w, r.WithContext(utils.WithCaller(ctx, token.Caller)))
	})
}

// permission applies the access policy to the request method and the caller
// identified by auth. Denied requests end with 403.
func (h *Handler) permission(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := utils.GetCallerFromContext(r.Context())

		decision := h.policy.Evaluate(r.Method, caller)
		if !decision {
			logger.FromRequest(r).Info().
				Str("method", r.Method).
				Bool("anonymous", caller == nil).
				Stringer("decision", decision).
				Msg("request denied by access policy")
			_, _ = utils.WriteDetail(w, detailPermissionDenied, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	_, _ = utils.WriteDetail(w, detail, http.StatusUnauthorized)
}
