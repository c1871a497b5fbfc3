package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

const (
	notesPath   = "/api/notes/"
	versionPath = "/api/version/"
)

type httpNotesAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs an HTTP/REST implementation of
// [NotesAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress, and configures the request timeout and the bearer token.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPNotesAdapter(cfg config.ClientAdapter, logger *logger.Logger) (NotesAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithToken(strings.TrimSpace(cfg.Token))

	return &httpNotesAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListNotes implements [NotesAdapter] via GET /api/notes/.
func (h *httpNotesAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&notes).
		Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// CreateNote implements [NotesAdapter] via POST /api/notes/.
func (h *httpNotesAdapter) CreateNote(ctx context.Context, input models.NoteInput) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&note).
		Post(notesPath)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	h.logger.Debug().Int64("id", note.ID).Str("location", resp.Header().Get("Location")).Msg("note created")
	return note, nil
}

// ImportNotes implements [NotesAdapter]. The payload is sent unchanged, so
// the server decides between single and batch creation.
func (h *httpNotesAdapter) ImportNotes(ctx context.Context, payload []byte) ([]models.Note, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", ErrInvalidInput)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(trimmed).
		Post(notesPath)
	if err != nil {
		return nil, fmt.Errorf("import notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	// the server echoes the shape of the request
	if trimmed[0] == '[' {
		var notes []models.Note
		if err = json.Unmarshal(resp.Body(), &notes); err != nil {
			return nil, fmt.Errorf("decode import response: %w", err)
		}
		return notes, nil
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return nil, fmt.Errorf("decode import response: %w", err)
	}
	return []models.Note{note}, nil
}

// ReplaceNote implements [NotesAdapter] via PUT /api/notes/{id}/.
func (h *httpNotesAdapter) ReplaceNote(ctx context.Context, id int64, input models.NoteInput) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&note).
		Put(notePath(id))
	if err != nil {
		return models.Note{}, fmt.Errorf("replace note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote implements [NotesAdapter] via DELETE /api/notes/{id}/.
func (h *httpNotesAdapter) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(notePath(id))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetServerVersion implements [NotesAdapter] via GET /api/version/.
func (h *httpNotesAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func notePath(id int64) string {
	return notesPath + strconv.FormatInt(id, 10) + "/"
}
