package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes/models"
)

// marshalFailedBody is sent when a response value cannot be encoded.
const marshalFailedBody = `{"detail":"A server error occurred."}`

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code.
//
// If marshaling fails, it responds with 500 Internal Server Error and a JSON
// error body, and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, note, http.StatusOK)
//	WriteJSON(w, []models.Note{}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailedBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteDetail writes a {"detail": message} error body.
func WriteDetail(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Detail: message}, statusCode)
}
