package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

const usage = `usage: notes-client [flags] [command]

commands:
  (none)          interactive notes list
  list            print all notes
  import <file>   create the note or notes stored in a JSON file
  delete <id>     delete a note (staff token required)
  version         print client and server versions`

type App struct {
	notes       adapter.NotesAdapter
	interactive Interactive
	buildInfo   models.BuildInfo
	out         io.Writer
	readFile    func(string) ([]byte, error)

	logger *logger.Logger
}

func NewApp(notes adapter.NotesAdapter, interactive Interactive, buildInfo models.BuildInfo, logger *logger.Logger) *App {
	return &App{
		notes:       notes,
		interactive: interactive,
		buildInfo:   buildInfo,
		out:         os.Stdout,
		readFile:    os.ReadFile,
		logger:      logger,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.interactive.Run(ctx)
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running client command")

	switch command {
	case "list":
		return a.list(ctx)
	case "import":
		if len(rest) != 1 {
			return fmt.Errorf("%w: import <file>", ErrMissingArgs)
		}
		return a.importFile(ctx, rest[0])
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("%w: delete <id>", ErrMissingArgs)
		}
		return a.delete(ctx, rest[0])
	case "version":
		return a.version(ctx)
	case "help", "-h", "--help":
		_, err := fmt.Fprintln(a.out, usage)
		return err
	}

	return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, usage)
}

func (a *App) list(ctx context.Context) error {
	notes, err := a.notes.ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	return a.printNotes(notes)
}

func (a *App) importFile(ctx context.Context, path string) error {
	payload, err := a.readFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	notes, err := a.notes.ImportNotes(ctx, payload)
	if err != nil {
		return fmt.Errorf("import notes from %s: %w", path, err)
	}

	a.logger.Info().Int("count", len(notes)).Str("file", path).Msg("notes imported")
	if _, err = fmt.Fprintf(a.out, "imported %d note(s)\n", len(notes)); err != nil {
		return err
	}
	return a.printNotes(notes)
}

func (a *App) delete(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidNoteID, rawID)
	}

	if err = a.notes.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}

	_, err = fmt.Fprintf(a.out, "note %d deleted\n", id)
	return err
}

func (a *App) version(ctx context.Context) error {
	if _, err := fmt.Fprintln(a.out, a.buildInfo.String()); err != nil {
		return err
	}

	serverVersion, err := a.notes.GetServerVersion(ctx)
	if err != nil {
		return fmt.Errorf("get server version: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "Server version: %s\n", serverVersion)
	return err
}

func (a *App) printNotes(notes []models.Note) error {
	if len(notes) == 0 {
		_, err := fmt.Fprintln(a.out, "no notes")
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tUPDATED")
	for _, note := range notes {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", note.ID, note.Title, note.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
