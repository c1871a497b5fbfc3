package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/models"
)

const notesTable = "notes"

// noteColumns is the column order every note query selects and scans.
var noteColumns = []string{"id", "title", "description", "created_at", "updated_at"}

var returningNote = fmt.Sprintf("RETURNING %s, %s, %s, %s, %s",
	noteColumns[0], noteColumns[1], noteColumns[2], noteColumns[3], noteColumns[4])

func buildListNotesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		OrderBy("id ASC").
		ToSql()
}

func buildGetNoteQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildInsertNoteQuery returns the statement text only; it is prepared once
// and executed per note.
func buildInsertNoteQuery(b sq.StatementBuilderType) (string, error) {
	query, _, err := b.Insert(notesTable).
		Columns("title", "description", "created_at", "updated_at").
		Values("", "", time.Time{}, time.Time{}).
		Suffix(returningNote).
		ToSql()
	return query, err
}

// buildUpdateNoteQuery sets the non-nil fields of update and always bumps
// updated_at.
func buildUpdateNoteQuery(b sq.StatementBuilderType, id int64, update models.NoteUpdate, now time.Time) (string, []any, error) {
	query := b.Update(notesTable)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}

	return query.Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(returningNote).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
