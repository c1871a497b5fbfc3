package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-notes/models"
)

var statusErrorMap = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := responseDetail(resp.Body())
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if base, ok := statusErrorMap[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", base, body)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// responseDetail extracts the "detail" message of an error body, falling back
// to the raw body (validation errors are reported verbatim).
func responseDetail(body []byte) string {
	var errorResponse models.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err == nil && errorResponse.Detail != "" {
		return errorResponse.Detail
	}
	return strings.TrimSpace(string(body))
}
