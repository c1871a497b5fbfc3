package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation is matched by every error describing invalid client input.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// NonFieldErrorsKey holds errors that do not belong to a single field.
const NonFieldErrorsKey = "non_field_errors"

// FieldErrors maps a JSON field name to its error messages. It serializes to
// the response body of a rejected single-object request.
type FieldErrors map[string][]string

// Add appends a message for field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Error implements error.
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(f[field], " ")))
	}

	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Unwrap makes FieldErrors match [ErrValidation].
func (f FieldErrors) Unwrap() error {
	return ErrValidation
}

// BatchErrors holds one entry per element of a rejected list request. Valid
// elements carry an empty FieldErrors so indices line up with the request.
type BatchErrors []FieldErrors

// Error implements error.
func (b BatchErrors) Error() string {
	parts := make([]string, 0, len(b))
	for i, fieldErrors := range b {
		if len(fieldErrors) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("[%d] %s", i, fieldErrors.Error()))
	}

	return strings.Join(parts, ", ")
}

// Unwrap makes BatchErrors match [ErrValidation].
func (b BatchErrors) Unwrap() error {
	return ErrValidation
}

// HasErrors reports whether at least one element is invalid.
func (b BatchErrors) HasErrors() bool {
	for _, fieldErrors := range b {
		if len(fieldErrors) > 0 {
			return true
		}
	}
	return false
}

// NonFieldError builds FieldErrors with a single non-field message.
func NonFieldError(message string) FieldErrors {
	return FieldErrors{NonFieldErrorsKey: {message}}
}

// Merge copies the messages of other for fields f does not report yet. A field
// keeps only the first error found for it.
func (f FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		if _, ok := f[field]; ok {
			continue
		}
		f[field] = append([]string(nil), messages...)
	}
}
