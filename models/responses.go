package models

// ErrorResponse is the body returned for every non-validation error.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
