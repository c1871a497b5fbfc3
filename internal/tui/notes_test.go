package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/models"
)

var testNotes = []models.Note{
	{ID: 1, Title: "first", Description: "one"},
	{ID: 2, Title: "second", Description: "two"},
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newLoadedModel(t *testing.T) (notesModel, *mock.MockNotesAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesAdapter(ctrl)

	m := newNotesModel(context.Background(), notes, models.NewBuildInfo("1.0.0", "", ""))
	updated, _ := m.Update(notesLoadedMsg{notes: testNotes})
	return updated.(notesModel), notes
}

func press(t *testing.T, m notesModel, msg tea.Msg) (notesModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(notesModel)
	require.True(t, ok)
	return model, cmd
}

func TestNotesModel_LoadNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesAdapter(ctrl)
	notes.EXPECT().ListNotes(gomock.Any()).Return(testNotes, nil)

	m := newNotesModel(context.Background(), notes, models.BuildInfo{})
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading...")

	msg := m.cmdLoadNotes()()
	m, _ = press(t, m, msg)

	assert.False(t, m.loading)
	assert.Len(t, m.items, 2)
	assert.Contains(t, m.View(), "first")
	assert.Contains(t, m.View(), "one")
}

func TestNotesModel_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNotesAdapter(ctrl)
	m := newNotesModel(context.Background(), notes, models.BuildInfo{})

	m, _ = press(t, m, notesLoadedMsg{err: errors.New("dial tcp 127.0.0.1:8080: connection refused")})

	assert.Contains(t, m.View(), "server is unavailable")
	assert.Contains(t, m.View(), "No notes yet")
}

func TestNotesModel_Navigation(t *testing.T) {
	m, _ := newLoadedModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.idx)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)

	m, _ = press(t, m, runeKey('j'))
	assert.Equal(t, 1, m.idx)

	m, _ = press(t, m, runeKey('k'))
	assert.Equal(t, 0, m.idx)
}

func TestNotesModel_ReloadClampsSelection(t *testing.T) {
	m, _ := newLoadedModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, _ = press(t, m, notesLoadedMsg{notes: testNotes[:1]})
	assert.Equal(t, 0, m.idx)

	m, _ = press(t, m, notesLoadedMsg{notes: nil})
	assert.Equal(t, 0, m.idx)
	_, ok := m.current()
	assert.False(t, ok)
}

func TestNotesModel_Refresh(t *testing.T) {
	m, notes := newLoadedModel(t)
	notes.EXPECT().ListNotes(gomock.Any()).Return(testNotes[:1], nil)

	m, cmd := press(t, m, runeKey('r'))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	m, _ = press(t, m, cmd())
	assert.Len(t, m.items, 1)
}

func TestNotesModel_CreateNote(t *testing.T) {
	m, notes := newLoadedModel(t)
	notes.EXPECT().
		CreateNote(gomock.Any(), models.NoteInput{Title: "hi", Description: "there"}).
		Return(models.Note{ID: 3, Title: "hi", Description: "there"}, nil)

	m, _ = press(t, m, runeKey('n'))
	require.Equal(t, modeForm, m.mode)
	assert.Contains(t, m.View(), "New note")

	m, _ = press(t, m, runeKey('h'))
	m, _ = press(t, m, runeKey('i'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	for _, r := range "there" {
		m, _ = press(t, m, runeKey(r))
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	saved, ok := cmd().(noteSavedMsg)
	require.True(t, ok)
	assert.True(t, saved.created)

	m, cmd = press(t, m, saved)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "Note #3 created", m.status)
	assert.NotNil(t, cmd)
}

func TestNotesModel_EditForbidden(t *testing.T) {
	m, notes := newLoadedModel(t)
	notes.EXPECT().
		ReplaceNote(gomock.Any(), int64(1), models.NoteInput{Title: "first!", Description: "one"}).
		Return(models.Note{}, adapter.ErrForbidden)

	m, _ = press(t, m, runeKey('e'))
	require.Equal(t, modeForm, m.mode)
	assert.Contains(t, m.View(), "Edit note #1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = press(t, m, runeKey('!'))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	assert.Equal(t, modeForm, m.mode)
	assert.False(t, m.form.submitting)
	assert.Contains(t, m.View(), "requires a staff token")
}

func TestNotesModel_FormCancel(t *testing.T) {
	m, _ := newLoadedModel(t)

	m, _ = press(t, m, runeKey('n'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeList, m.mode)
}

func TestNotesModel_DeleteConfirmed(t *testing.T) {
	m, notes := newLoadedModel(t)
	notes.EXPECT().DeleteNote(gomock.Any(), int64(2)).Return(nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, runeKey('d'))
	require.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.View(), `Delete "second"?`)

	m, cmd := press(t, m, runeKey('y'))
	require.NotNil(t, cmd)

	m, _ = press(t, m, cmd())
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "Note #2 deleted", m.status)
	assert.True(t, m.loading)
}

func TestNotesModel_DeleteCancelled(t *testing.T) {
	m, _ := newLoadedModel(t)

	m, _ = press(t, m, runeKey('d'))
	m, cmd := press(t, m, runeKey('n'))

	assert.Nil(t, cmd)
	assert.Equal(t, modeList, m.mode)
}

func TestNotesModel_DeleteError(t *testing.T) {
	m, notes := newLoadedModel(t)
	notes.EXPECT().DeleteNote(gomock.Any(), int64(1)).Return(adapter.ErrNotFound)

	m, _ = press(t, m, runeKey('d'))
	m, cmd := press(t, m, runeKey('y'))
	m, _ = press(t, m, cmd())

	assert.Equal(t, modeList, m.mode)
	assert.Contains(t, m.View(), "no longer exists")
}

func TestNotesModel_Copy(t *testing.T) {
	m, _ := newLoadedModel(t)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := press(t, m, runeKey('c'))
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())

	assert.Equal(t, "one", copied)
	assert.Equal(t, "Description copied", m.status)

	m, _ = press(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestNotesModel_CopyError(t *testing.T) {
	m, _ := newLoadedModel(t)
	m.copyText = func(string) error { return errors.New("no clipboard utility") }

	m, cmd := press(t, m, runeKey('c'))
	m, _ = press(t, m, cmd())

	assert.Contains(t, m.View(), "no clipboard utility")
}

func TestNotesModel_BuildInfo(t *testing.T) {
	m, notes := newLoadedModel(t)
	notes.EXPECT().GetServerVersion(gomock.Any()).Return("2.0.0", nil)

	m, cmd := press(t, m, runeKey('v'))
	require.Equal(t, modeBuildInfo, m.mode)
	m, _ = press(t, m, cmd())

	view := m.View()
	assert.Contains(t, view, "Build version: 1.0.0")
	assert.Contains(t, view, "Build date: N/A")
	assert.Contains(t, view, "Server version: 2.0.0")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
}

func TestNotesModel_Quit(t *testing.T) {
	m, _ := newLoadedModel(t)

	_, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = press(t, m, runeKey('n'))
	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNotesModel_EmptyListIgnoresItemKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newNotesModel(context.Background(), mock.NewMockNotesAdapter(ctrl), models.BuildInfo{})
	m, _ = press(t, m, notesLoadedMsg{})

	for _, r := range "edc" {
		var cmd tea.Cmd
		m, cmd = press(t, m, runeKey(r))
		assert.Nil(t, cmd)
		assert.Equal(t, modeList, m.mode)
	}
}
