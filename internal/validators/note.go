package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-notes/models"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// NoteValidator validates [models.NoteInput] and [models.NoteUpdate].
type NoteValidator struct {
	validate *validator.Validate
}

// NewNoteValidator builds a validator that reports errors under JSON field
// names.
func NewNoteValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	// notblank rejects strings made only of whitespace
	_ = validate.RegisterValidation("notblank", nonstandard.NotBlank)

	return &NoteValidator{validate: validate}
}

// Validate implements [Validator].
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteInput, *models.NoteInput, models.NoteUpdate, *models.NoteUpdate:
		return v.validateStruct(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *NoteValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors.Add(fieldErr.Field(), messageFor(fieldErr))
	}

	return fieldErrors
}

func messageFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required."
	case "notblank":
		return "This field may not be blank."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fieldErr.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fieldErr.Param())
	default:
		return "Invalid value."
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// FromDecodeError converts a JSON decoding failure of a single object into
// FieldErrors. Type mismatches are attributed to their field; anything else
// becomes a non-field error.
func FromDecodeError(err error) FieldErrors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return FieldErrors{typeErr.Field: {"Not a valid string."}}
	}

	return NonFieldError(fmt.Sprintf("JSON parse error - %s", err.Error()))
}

// InvalidDataTypeError reports a request element that is not a JSON object.
func InvalidDataTypeError(got string) FieldErrors {
	return NonFieldError(fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", got))
}
