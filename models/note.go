// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Note is the single resource exposed by the notes API.
//
// ID is assigned by storage on insert and never changes afterwards.
// CreatedAt and UpdatedAt are maintained by the repository; values sent by
// clients for these fields are ignored.
type Note struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NoteInput carries the writable fields of a [Note]. It is used for create
// and for full replacement (PUT).
type NoteInput struct {
	Title       string `json:"title" validate:"notblank,max=255"`
	Description string `json:"description" validate:"max=10000"`
}

// Normalize trims surrounding whitespace from the title.
func (n NoteInput) Normalize() NoteInput {
	n.Title = strings.TrimSpace(n.Title)
	return n
}

// NoteUpdate describes a partial update (PATCH). Nil fields are left unchanged.
type NoteUpdate struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,notblank,max=255"`
	Description *string `json:"description,omitempty" validate:"omitnil,max=10000"`
}

// Normalize trims surrounding whitespace from the title when it is set.
func (u NoteUpdate) Normalize() NoteUpdate {
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		u.Title = &title
	}
	return u
}

// IsEmpty reports whether the update changes no field.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil
}

// AsUpdate converts a full replacement into an update touching every
// writable field.
func (n NoteInput) AsUpdate() NoteUpdate {
	title, description := n.Title, n.Description
	return NoteUpdate{Title: &title, Description: &description}
}
