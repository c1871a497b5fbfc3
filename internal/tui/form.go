package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes/models"
)

const (
	formTitleLimit       = 255
	formDescriptionLimit = 10000
)

// noteForm edits the writable fields of a note. A zero id means a new note.
type noteForm struct {
	id          int64
	title       textinput.Model
	description textarea.Model
	focus       int
	submitting  bool
}

func newNoteForm(note *models.Note) noteForm {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = formTitleLimit
	title.Width = 50
	title.Focus()

	description := textarea.New()
	description.Placeholder = "Description"
	description.CharLimit = formDescriptionLimit
	description.SetWidth(60)
	description.SetHeight(6)
	description.Blur()

	f := noteForm{title: title, description: description}
	if note != nil {
		f.id = note.ID
		f.title.SetValue(note.Title)
		f.description.SetValue(note.Description)
	}
	return f
}

func (f noteForm) editing() bool {
	return f.id != 0
}

func (f noteForm) input() models.NoteInput {
	return models.NoteInput{Title: f.title.Value(), Description: f.description.Value()}
}

func (f noteForm) update(msg tea.Msg) (noteForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.tab) {
		f.focus = 1 - f.focus
		if f.focus == 0 {
			f.description.Blur()
			return f, f.title.Focus()
		}
		f.title.Blur()
		return f, f.description.Focus()
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd
}

func (f noteForm) View() string {
	title := "New note"
	if f.editing() {
		title = "Edit note #" + formatID(f.id)
	}

	body := "Title:\n" + f.title.View() + "\n\nDescription:\n" + f.description.View()
	if f.submitting {
		body += "\n\nSaving..."
	}

	return renderPage(title, body, "tab: next field  ctrl+s: save  esc: cancel")
}
