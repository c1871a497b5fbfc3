// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal view of the notes list
// on top of bubbletea.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

type TUI struct {
	notes     adapter.NotesAdapter
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(notes adapter.NotesAdapter, buildInfo models.BuildInfo, logger *logger.Logger) *TUI {
	return &TUI{notes: notes, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newNotesModel(ctx, t.notes, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(notesModel); ok && result.lastErr != nil {
		t.logger.Debug().Err(result.lastErr).Msg("terminal client closed with an error on screen")
	}
	return nil
}
