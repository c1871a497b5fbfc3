// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// maxBodyBytes limits the size of a create or update request body.
const maxBodyBytes = 1 << 20

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listNotes")
		return
	}

	h.writeJSON(w, r, notes, http.StatusOK)
}

func (h *Handler) retrieveNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.retrieveNote")
		return
	}

	note, err := h.services.NoteService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "*Handler.retrieveNote")
		return
	}

	h.writeJSON(w, r, note, http.StatusOK)
}

// createNotes accepts either a single JSON object or a JSON array of objects.
//
// A single object yields 201 with the note and a Location header. An array
// yields 201 with the notes in request order; if any element is invalid the
// whole array is rejected with one error object per element and nothing is
// stored.
func (h *Handler) createNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createNotes")
		return
	}

	switch firstByte(body) {
	case '[':
		h.createBatch(w, r, body)
	case '{', 0:
		input, fieldErrors := decodeObject[models.NoteInput](body, validators.NoteInputRules)
		if fieldErrors != nil {
			fieldErrors = completeFieldErrors(r.Context(), h.validator, input, fieldErrors)
			h.writeError(w, r, fieldErrors, "*Handler.createNotes")
			return
		}

		notes, err := h.services.NoteService.Create(r.Context(), input)
		if err != nil {
			h.writeError(w, r, err, "*Handler.createNotes")
			return
		}
		if len(notes) != 1 {
			log.Error().Str("func", "*Handler.createNotes").Int("count", len(notes)).Msg("unexpected number of created notes")
			h.writeError(w, r, fmt.Errorf("created %d notes for a single input", len(notes)), "*Handler.createNotes")
			return
		}

		w.Header().Set("Location", noteLocation(notes[0].ID))
		h.writeJSON(w, r, notes[0], http.StatusCreated)
	default:
		h.writeError(w, r, validators.InvalidDataTypeError(jsonTypeName(body)), "*Handler.createNotes")
	}
}

func (h *Handler) createBatch(w http.ResponseWriter, r *http.Request, body []byte) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		h.writeError(w, r, validators.FromDecodeError(err), "*Handler.createBatch")
		return
	}

	inputs := make([]models.NoteInput, len(elements))
	batchErrors := make(validators.BatchErrors, len(elements))
	for i, element := range elements {
		input, fieldErrors := decodeObject[models.NoteInput](element, validators.NoteInputRules)
		if fieldErrors == nil {
			fieldErrors = validators.FieldErrors{}
		}
		inputs[i], batchErrors[i] = input, fieldErrors
	}
	if batchErrors.HasErrors() {
		// elements that decoded are still validated so every element gets its full report
		for i := range batchErrors {
			batchErrors[i] = completeFieldErrors(r.Context(), h.validator, inputs[i], batchErrors[i])
		}
		h.writeError(w, r, batchErrors, "*Handler.createBatch")
		return
	}

	notes, err := h.services.NoteService.Create(r.Context(), inputs...)
	if err != nil {
		// a single-element batch is still answered with a list of errors
		var fieldErrors validators.FieldErrors
		if errors.As(err, &fieldErrors) {
			err = validators.BatchErrors{fieldErrors}
		}
		h.writeError(w, r, err, "*Handler.createBatch")
		return
	}

	h.writeJSON(w, r, notes, http.StatusCreated)
}

func (h *Handler) replaceNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.replaceNote")
		return
	}

	input, err := decodeRequest[models.NoteInput](w, r, h.validator, validators.NoteInputRules)
	if err != nil {
		h.writeError(w, r, err, "*Handler.replaceNote")
		return
	}

	note, err := h.services.NoteService.Replace(r.Context(), id, input)
	if err != nil {
		h.writeError(w, r, err, "*Handler.replaceNote")
		return
	}

	h.writeJSON(w, r, note, http.StatusOK)
}

func (h *Handler) patchNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.patchNote")
		return
	}

	update, err := decodeRequest[models.NoteUpdate](w, r, h.validator, validators.NoteUpdateRules)
	if err != nil {
		h.writeError(w, r, err, "*Handler.patchNote")
		return
	}

	note, err := h.services.NoteService.Patch(r.Context(), id, update)
	if err != nil {
		h.writeError(w, r, err, "*Handler.patchNote")
		return
	}

	h.writeJSON(w, r, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteNote")
		return
	}

	if err = h.services.NoteService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err, "*Handler.deleteNote")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError answers with the validation errors carried by err, or with a
// {"detail": ...} body for the status err maps to.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	log := logger.FromRequest(r)

	var (
		fieldErrors validators.FieldErrors
		batchErrors validators.BatchErrors
	)
	switch {
	case errors.As(err, &batchErrors):
		log.Info().Str("func", funcName).Err(err).Msg("invalid batch rejected")
		h.writeJSON(w, r, batchErrors, http.StatusBadRequest)
		return
	case errors.As(err, &fieldErrors):
		log.Info().Str("func", funcName).Err(err).Msg("invalid input rejected")
		h.writeJSON(w, r, fieldErrors, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("error handling request")
	} else {
		log.Info().Err(err).Str("func", funcName).Int("status", status).Send()
	}

	_, _ = utils.WriteDetail(w, detailFromStatus(status), status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}

func noteIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteID, raw)
	}
	return id, nil
}

func noteLocation(id int64) string {
	return fmt.Sprintf("/api/notes/%d/", id)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
		}
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	return body, nil
}

// normalizer is implemented by request payloads that clean themselves up
// before validation.
type normalizer[T any] interface {
	Normalize() T
}

// decodeRequest reads a body that must hold a single JSON object. An empty
// body is decoded as {}.
func decodeRequest[T normalizer[T]](w http.ResponseWriter, r *http.Request, v validators.Validator, rules validators.ObjectRules) (T, error) {
	var zero T

	body, err := readBody(w, r)
	if err != nil {
		return zero, err
	}

	switch firstByte(body) {
	case '{', 0:
		value, fieldErrors := decodeObject[T](body, rules)
		if fieldErrors != nil {
			return zero, completeFieldErrors(r.Context(), v, value, fieldErrors)
		}
		return value, nil
	default:
		return zero, validators.InvalidDataTypeError(jsonTypeName(body))
	}
}

// decodeObject decodes raw into T and checks it against rules. Anything that
// is not a JSON object is reported as a non-field error. An empty raw value
// is decoded as {}.
func decodeObject[T any](raw []byte, rules validators.ObjectRules) (T, validators.FieldErrors) {
	var value T

	switch firstByte(raw) {
	case 0:
		raw = []byte("{}")
	case '{':
	default:
		return value, validators.InvalidDataTypeError(jsonTypeName(raw))
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return value, validators.FromDecodeError(err)
	}

	fieldErrors := rules.Check(obj)
	if err := json.Unmarshal(raw, &value); err != nil {
		if fieldErrors == nil {
			fieldErrors = validators.FieldErrors{}
		}
		fieldErrors.Merge(validators.FromDecodeError(err))
	}
	return value, fieldErrors
}

// completeFieldErrors adds the validation errors of value to fieldErrors for
// fields that are not reported yet. Non-field errors are returned unchanged.
func completeFieldErrors[T normalizer[T]](ctx context.Context, v validators.Validator, value T, fieldErrors validators.FieldErrors) validators.FieldErrors {
	if _, ok := fieldErrors[validators.NonFieldErrorsKey]; ok {
		return fieldErrors
	}

	var validationErrors validators.FieldErrors
	if errors.As(v.Validate(ctx, value.Normalize()), &validationErrors) {
		fieldErrors.Merge(validationErrors)
	}
	return fieldErrors
}

// firstByte returns the first non-whitespace byte of data, or 0 if there is
// none.
func firstByte(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// jsonTypeName names the type of a JSON value the way the API reports it in
// "Expected a dictionary" errors.
func jsonTypeName(raw []byte) string {
	switch c := firstByte(raw); {
	case c == '[':
		return "list"
	case c == '"':
		return "str"
	case c == 't' || c == 'f':
		return "bool"
	case c == 'n':
		return "NoneType"
	case c == '-' || (c >= '0' && c <= '9'):
		if bytes.ContainsAny(raw, ".eE") {
			return "float"
		}
		return "int"
	default:
		return "str"
	}
}
