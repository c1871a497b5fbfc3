// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidNoteID is returned when the {id} path segment is not a
	// positive integer. It is reported as 404, like a missing note.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrRequestBodyTooLarge is returned when the body exceeds maxBodyBytes.
	ErrRequestBodyTooLarge = errors.New("request body too large")
)

// Response details in the {"detail": ...} error body.
const (
	detailNotFound         = "Not found."
	detailPermissionDenied = "You do not have permission to perform this action."
	detailInvalidToken     = "Invalid token."
	detailInvalidHeader    = "Invalid token header."
	detailRejected         = "Invalid data."
	detailTooLarge         = "Request body is too large."
	detailServerError      = "A server error occurred."
	detailMethodNotAllowed = "Method %q not allowed."
	detailInvalidGzip      = "Invalid gzip data."
)
