package store

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository persists notes.
type NoteRepository interface {
	// ListNotes returns every note ordered by id.
	ListNotes(ctx context.Context) ([]models.Note, error)
	// GetNote returns the note with id or [ErrNoteNotFound].
	GetNote(ctx context.Context, id int64) (models.Note, error)
	// SaveNotes inserts all inputs in one transaction and returns the stored
	// notes in input order. Either every note is stored or none is.
	SaveNotes(ctx context.Context, inputs ...models.NoteInput) ([]models.Note, error)
	// UpdateNote applies the non-nil fields of update and returns the stored
	// note, or [ErrNoteNotFound].
	UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error)
	// DeleteNote removes the note or returns [ErrNoteNotFound].
	DeleteNote(ctx context.Context, id int64) error
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
