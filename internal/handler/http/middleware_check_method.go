// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/utils"
)

// routeMetadata is the body of an OPTIONS response.
type routeMetadata struct {
	Name    string   `json:"name"`
	Renders []string `json:"renders"`
	Parses  []string `json:"parses"`
}

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. It answers
// with 405 and a JSON detail naming the rejected method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteDetail(w, fmt.Sprintf(detailMethodNotAllowed, r.Method), http.StatusMethodNotAllowed)
}

// notFound is registered via [chi.Mux.NotFound].
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteDetail(w, detailNotFound, http.StatusNotFound)
}

// options describes a route: the Allow header lists its methods and the body
// names the route and the media types it speaks.
func (h *Handler) options(allowed, name string) http.HandlerFunc {
	metadata := routeMetadata{
		Name:    name,
		Renders: []string{"application/json"},
		Parses:  []string{"application/json"},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allowed)
		h.writeJSON(w, r, metadata, http.StatusOK)
	}
}
