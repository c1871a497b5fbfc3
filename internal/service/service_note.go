package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (n *noteService) List(ctx context.Context) ([]models.Note, error) {
	return n.noteRepository.ListNotes(ctx)
}

func (n *noteService) Get(ctx context.Context, id int64) (models.Note, error) {
	return n.noteRepository.GetNote(ctx, id)
}

func (n *noteService) Create(ctx context.Context, inputs ...models.NoteInput) ([]models.Note, error) {
	if len(inputs) == 0 {
		return []models.Note{}, nil
	}
	return n.noteRepository.SaveNotes(ctx, inputs...)
}

func (n *noteService) Replace(ctx context.Context, id int64, input models.NoteInput) (models.Note, error) {
	return n.noteRepository.UpdateNote(ctx, id, input.AsUpdate())
}

// Patch with no fields set returns the stored note unchanged.
func (n *noteService) Patch(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error) {
	if update.IsEmpty() {
		return n.noteRepository.GetNote(ctx, id)
	}
	return n.noteRepository.UpdateNote(ctx, id, update)
}

func (n *noteService) Delete(ctx context.Context, id int64) error {
	return n.noteRepository.DeleteNote(ctx, id)
}
