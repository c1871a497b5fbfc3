package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/models"
)

const statusTTL = 3 * time.Second

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirm
	modeBuildInfo
)

type notesModel struct {
	ctx       context.Context
	notes     adapter.NotesAdapter
	buildInfo models.BuildInfo
	copyText  func(string) error

	mode    mode
	items   []models.Note
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	lastErr error

	form          noteForm
	confirm       confirmModel
	serverVersion string
}

func newNotesModel(ctx context.Context, notes adapter.NotesAdapter, buildInfo models.BuildInfo) notesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return notesModel{
		ctx:       ctx,
		notes:     notes,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		loading:   true,
		spinner:   s,
	}
}

func (m notesModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadNotes())
}

func (m notesModel) current() (models.Note, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Note{}, false
	}
	return m.items[m.idx], true
}

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.items = msg.notes
		m.idx = min(m.idx, len(m.items)-1)
		m.idx = max(m.idx, 0)
		return m, nil
	case noteSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.mode = modeList
		m.lastErr = nil
		if msg.created {
			m.status = fmt.Sprintf("Note #%d created", msg.note.ID)
		} else {
			m.status = fmt.Sprintf("Note #%d updated", msg.note.ID)
		}
		m.loading = true
		return m, tea.Batch(m.cmdLoadNotes(), clearStatusAfter(statusTTL))
	case noteDeletedMsg:
		m.mode = modeList
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.lastErr = nil
		m.status = fmt.Sprintf("Note #%d deleted", msg.id)
		m.loading = true
		return m, tea.Batch(m.cmdLoadNotes(), clearStatusAfter(statusTTL))
	case copiedMsg:
		if msg.err != nil {
			m.lastErr = fmt.Errorf("copy to clipboard: %w", msg.err)
			return m, nil
		}
		m.status = "Description copied"
		return m, clearStatusAfter(statusTTL)
	case serverVersionMsg:
		m.serverVersion = msg.version
		if msg.err != nil {
			m.lastErr = msg.err
		}
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirm:
		if ok {
			return m.updateConfirm(keyMsg)
		}
	case modeBuildInfo:
		if ok && key.Matches(keyMsg, keys.esc) {
			m.mode = modeList
		}
	default:
		if ok {
			return m.updateList(keyMsg)
		}
	}
	return m, nil
}

func (m notesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, m.cmdLoadNotes()
	case key.Matches(msg, keys.newNote):
		m.form = newNoteForm(nil)
		m.mode = modeForm
		m.lastErr = nil
		return m, nil
	case key.Matches(msg, keys.edit):
		if note, ok := m.current(); ok {
			m.form = newNoteForm(&note)
			m.mode = modeForm
			m.lastErr = nil
		}
	case key.Matches(msg, keys.delete):
		if note, ok := m.current(); ok {
			m.confirm = confirmModel{id: note.ID, title: note.Title}
			m.mode = modeConfirm
		}
	case key.Matches(msg, keys.copy):
		if note, ok := m.current(); ok {
			return m, m.cmdCopy(note.Description)
		}
	case key.Matches(msg, keys.info):
		m.mode = modeBuildInfo
		return m, m.cmdServerVersion()
	}
	return m, nil
}

func (m notesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList
			m.lastErr = nil
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSave(m.form.id, m.form.input())
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m notesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		return m, m.cmdDelete(m.confirm.id)
	case key.Matches(msg, keys.no):
		m.mode = modeList
	}
	return m, nil
}

func (m notesModel) cmdLoadNotes() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.notes.ListNotes(m.ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m notesModel) cmdSave(id int64, input models.NoteInput) tea.Cmd {
	return func() tea.Msg {
		if id == 0 {
			note, err := m.notes.CreateNote(m.ctx, input)
			return noteSavedMsg{note: note, created: true, err: err}
		}
		note, err := m.notes.ReplaceNote(m.ctx, id, input)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m notesModel) cmdDelete(id int64) tea.Cmd {
	return func() tea.Msg {
		return noteDeletedMsg{id: id, err: m.notes.DeleteNote(m.ctx, id)}
	}
}

func (m notesModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.copyText(text)}
	}
}

func (m notesModel) cmdServerVersion() tea.Cmd {
	return func() tea.Msg {
		version, err := m.notes.GetServerVersion(m.ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m notesModel) View() string {
	switch m.mode {
	case modeForm:
		return m.form.View() + m.errorLine()
	case modeConfirm:
		return m.listView() + "\n\n" + m.confirm.View()
	case modeBuildInfo:
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}
	return m.listView()
}

func (m notesModel) listView() string {
	title := "NOTES"
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString("No notes yet. Press n to add one.")
	default:
		for i, note := range m.items {
			line := fmt.Sprintf("#%-4d %s", note.ID, fitText(note.Title, 60))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if note, ok := m.current(); ok && note.Description != "" {
			b.WriteString("\n")
			b.WriteString(fitText(note.Description, 400))
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	page := renderPage(title, strings.TrimRight(b.String(), "\n"),
		"↑/↓ move  n new  e edit  d delete  r refresh  c copy  v about  q quit")
	return page + m.errorLine()
}

func (m notesModel) errorLine() string {
	if m.lastErr == nil {
		return ""
	}
	return "\n\n  " + errorStyle.Render("Error: "+humanizeError(m.lastErr))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
