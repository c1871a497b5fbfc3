// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access decides whether a caller may perform a request on the notes
// resource.
//
// The decision depends only on the HTTP method and the caller's role. There
// is no ownership check: the policy is global for every note.
package access

import (
	"net/http"

	"github.com/MKhiriev/go-notes/models"
)

// Decision is the outcome of a policy evaluation.
type Decision bool

const (
	// Deny rejects the request before it reaches the handler.
	Deny Decision = false
	// Allow lets the request through.
	Allow Decision = true
)

// String returns "allow" or "deny".
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Policy evaluates a single request. A nil caller is anonymous.
type Policy interface {
	Evaluate(method string, caller *models.Caller) Decision
}

type postAndReadPolicy struct{}

// NewPostAndReadPolicy returns the policy used on the notes routes: anyone
// may read or create, only staff may replace, patch or delete.
func NewPostAndReadPolicy() Policy {
	return postAndReadPolicy{}
}

// Evaluate implements [Policy].
func (postAndReadPolicy) Evaluate(method string, caller *models.Caller) Decision {
	if IsSafeMethod(method) || method == http.MethodPost {
		return Allow
	}

	return Decision(caller.Elevated())
}

// IsSafeMethod reports whether method never modifies state.
func IsSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
