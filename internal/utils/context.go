// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and trace identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the authenticated [models.Caller] in
// the context.
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying caller.
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// GetCallerFromContext retrieves the caller stored by [WithCaller].
//
// Returns nil for anonymous requests, so the result can be passed straight to
// an access policy.
func GetCallerFromContext(ctx context.Context) *models.Caller {
	caller, ok := ctx.Value(CallerCtxKey).(models.Caller)
	if !ok {
		return nil
	}
	return &caller
}
