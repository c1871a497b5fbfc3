// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the notes server.
//
// The primary abstraction is [NotesAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPNotesAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotesAdapter defines transport-agnostic communication with the notes
// server. Implementations are responsible for serialisation, the bearer
// token header, and mapping transport-level errors to the sentinel values
// defined in this package.
type NotesAdapter interface {
	// ListNotes returns every note ordered by id.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote stores a single note.
	CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error)

	// ImportNotes posts payload, a JSON object or a JSON array of objects, in
	// a single request and returns the created notes. A rejected payload
	// yields [ErrBadRequest] wrapping the server's field errors.
	ImportNotes(ctx context.Context, payload []byte) ([]models.Note, error)

	// ReplaceNote overwrites the writable fields of note id. Requires a staff
	// token.
	ReplaceNote(ctx context.Context, id int64, input models.NoteInput) (models.Note, error)

	// DeleteNote removes note id. Requires a staff token.
	DeleteNote(ctx context.Context, id int64) error

	// GetServerVersion returns the version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
