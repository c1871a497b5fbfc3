package service

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService is the business API over notes used by the HTTP handlers.
type NoteService interface {
	List(ctx context.Context) ([]models.Note, error)
	Get(ctx context.Context, id int64) (models.Note, error)

	// Create stores every input atomically and returns them in input order.
	Create(ctx context.Context, inputs ...models.NoteInput) ([]models.Note, error)

	// Replace overwrites all writable fields of an existing note.
	Replace(ctx context.Context, id int64, input models.NoteInput) (models.Note, error)
	// Patch changes only the fields set in update.
	Patch(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error)

	Delete(ctx context.Context, id int64) error
}

type AuthService interface {
	CreateToken(ctx context.Context, caller models.Caller) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
