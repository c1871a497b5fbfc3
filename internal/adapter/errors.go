package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("server rejected the request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("permission denied")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress = errors.New("empty server address")
	ErrInvalidInput = errors.New("invalid input")
)
