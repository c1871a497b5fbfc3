// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client input before it reaches storage.
//
// Rules are declared as `validate` struct tags on the models and enforced with
// go-playground/validator. Failures are reported as [FieldErrors] keyed by the
// JSON field name, so the transport layer can return them verbatim.
package validators

import "context"

// Validator validates an arbitrary value. When fields are given, only those
// struct fields (Go names) are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
