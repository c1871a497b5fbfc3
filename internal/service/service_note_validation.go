package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// noteValidationService normalizes and validates note payloads before they
// reach the wrapped NoteService. Reads and deletes pass straight through.
type noteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &noteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *noteValidationService) List(ctx context.Context) ([]models.Note, error) {
	return v.inner.List(ctx)
}

func (v *noteValidationService) Get(ctx context.Context, id int64) (models.Note, error) {
	return v.inner.Get(ctx, id)
}

// Create validates every input before storing any of them. A batch of more
// than one input reports [validators.BatchErrors] with one entry per input;
// a single input reports [validators.FieldErrors].
func (v *noteValidationService) Create(ctx context.Context, inputs ...models.NoteInput) ([]models.Note, error) {
	if len(inputs) == 0 {
		return []models.Note{}, nil
	}

	normalized := make([]models.NoteInput, len(inputs))
	batchErrors := make(validators.BatchErrors, len(inputs))

	for i, input := range inputs {
		normalized[i] = input.Normalize()
		batchErrors[i] = validators.FieldErrors{}

		if err := v.validate(ctx, normalized[i], batchErrors, i); err != nil {
			return nil, err
		}
	}

	if batchErrors.HasErrors() {
		logger.FromContext(ctx).Debug().
			Str("func", "noteValidationService.Create").
			Int("count", len(inputs)).
			Msg("rejected invalid notes")

		if len(inputs) == 1 {
			return nil, batchErrors[0]
		}
		return nil, batchErrors
	}

	return v.inner.Create(ctx, normalized...)
}

func (v *noteValidationService) Replace(ctx context.Context, id int64, input models.NoteInput) (models.Note, error) {
	input = input.Normalize()
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Note{}, err
	}

	return v.inner.Replace(ctx, id, input)
}

func (v *noteValidationService) Patch(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error) {
	update = update.Normalize()
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, err
	}

	return v.inner.Patch(ctx, id, update)
}

func (v *noteValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *noteValidationService) Wrap(wrapper NoteService) NoteService {
	v.inner = wrapper
	return v
}

// validate records field errors of input at index i. Any other failure is
// returned as is.
func (v *noteValidationService) validate(ctx context.Context, input models.NoteInput, batchErrors validators.BatchErrors, i int) error {
	err := v.validator.Validate(ctx, input)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validators.FieldErrors)
	if !ok {
		return fmt.Errorf("error during note validation: %w", err)
	}

	batchErrors[i] = fieldErrors
	return nil
}
