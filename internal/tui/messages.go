package tui

import "github.com/MKhiriev/go-notes/models"

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type noteSavedMsg struct {
	note    models.Note
	created bool
	err     error
}

type noteDeletedMsg struct {
	id  int64
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type serverVersionMsg struct {
	version string
	err     error
}
