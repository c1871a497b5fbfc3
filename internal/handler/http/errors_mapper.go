package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:           http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrInvalidNoteID:                   http.StatusNotFound,
	ErrRequestBodyTooLarge:             http.StatusRequestEntityTooLarge,

	store.ErrNoteNotFound: http.StatusNotFound,
	store.ErrNoteRejected: http.StatusBadRequest,
	store.ErrNoteNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

var statusDetailMap = map[int]string{
	http.StatusBadRequest:            detailRejected,
	http.StatusUnauthorized:          detailInvalidToken,
	http.StatusForbidden:             detailPermissionDenied,
	http.StatusNotFound:              detailNotFound,
	http.StatusRequestEntityTooLarge: detailTooLarge,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromStatus(status int) string {
	if detail, ok := statusDetailMap[status]; ok {
		return detail
	}
	return detailServerError
}
