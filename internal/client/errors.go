package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing command argument")
	ErrInvalidNoteID  = errors.New("note id must be a positive integer")
)
