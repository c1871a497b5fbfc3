package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// noteRepository is the SQL implementation of [NoteRepository]. It works
// against both PostgreSQL and SQLite; the driver differences live in [DB].
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// ListNotes returns all notes ordered by id. An empty table yields an empty,
// non-nil slice.
func (n *noteRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(n.builder)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	notes, err := n.queryNotes(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Stringer("classification", n.errorClassificator.Classify(err)).
			Msg("failed to list notes")
		return nil, err
	}

	return notes, nil
}

// GetNote returns a single note or [ErrNoteNotFound].
func (n *noteRepository) GetNote(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(n.builder, id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Int64("id", id).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = scanNote(n.DB.QueryRowContext(ctx, query, args...), &note)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "noteRepository.GetNote").Int64("id", id).Msg("note not found")
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Int64("id", id).Msg("failed to get note")
		return models.Note{}, n.wrapError(ErrExecutingQuery, err)
	}

	return note, nil
}

// SaveNotes inserts every input inside a single transaction using one
// prepared statement. The transaction is rolled back if any insert fails, so
// a batch is stored completely or not at all.
func (n *noteRepository) SaveNotes(ctx context.Context, inputs ...models.NoteInput) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if len(inputs) == 0 {
		log.Warn().Str("func", "noteRepository.SaveNotes").Msg("no notes provided")
		return []models.Note{}, nil
	}

	query, err := buildInsertNoteQuery(n.builder)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.SaveNotes").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := n.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.SaveNotes").
			Int("count", len(inputs)).
			Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.SaveNotes").
			Int("count", len(inputs)).
			Msg("failed to prepare statement")
		return nil, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	saved := make([]models.Note, 0, len(inputs))

	for idx, input := range inputs {
		var note models.Note

		scanErr := scanNote(stmt.QueryRowContext(ctx, input.Title, input.Description, now, now), &note)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return nil, ErrNoteNotSaved
		}
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.SaveNotes").
				Int("iteration", idx+1).
				Int("total", len(inputs)).
				Msg("failed to execute prepared statement")
			return nil, n.wrapError(ErrExecutingStatement, scanErr)
		}

		saved = append(saved, note)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "noteRepository.SaveNotes").
			Int("count", len(inputs)).
			Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "noteRepository.SaveNotes").
		Int("count", len(saved)).
		Msg("notes saved")

	return saved, nil
}

// UpdateNote writes the set fields of update and returns the resulting note.
func (n *noteRepository) UpdateNote(ctx context.Context, id int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(n.builder, id, update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Int64("id", id).Msg("failed to build query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = scanNote(n.DB.QueryRowContext(ctx, query, args...), &note)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "noteRepository.UpdateNote").Int64("id", id).Msg("note not found")
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Int64("id", id).Msg("failed to update note")
		return models.Note{}, n.wrapError(ErrExecutingQuery, err)
	}

	return note, nil
}

// DeleteNote removes a note permanently.
func (n *noteRepository) DeleteNote(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(n.builder, id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("id", id).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("id", id).Msg("failed to delete note")
		return n.wrapError(ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	log.Info().Str("func", "noteRepository.DeleteNote").Int64("id", id).Msg("note deleted")

	return nil
}

func (n *noteRepository) queryNotes(ctx context.Context, query string, args ...any) ([]models.Note, error) {
	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)
	for rows.Next() {
		var note models.Note
		if scanErr := scanNote(rows, &note); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// wrapError attaches [ErrNoteRejected] when the database refused the data,
// and base otherwise. Other failures are logged with their classification.
func (n *noteRepository) wrapError(base, err error) error {
	classification := n.errorClassificator.Classify(err)
	if classification == Rejected {
		return fmt.Errorf("%w: %w", ErrNoteRejected, err)
	}

	n.logger.Warn().
		Err(err).
		Str("func", "noteRepository.wrapError").
		Stringer("classification", classification).
		Msg("database operation failed")

	return fmt.Errorf("%w: %w", base, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner, note *models.Note) error {
	return row.Scan(
		&note.ID,
		&note.Title,
		&note.Description,
		(*timestamp)(&note.CreatedAt),
		(*timestamp)(&note.UpdatedAt),
	)
}

// timestamp scans both native time values (pgx) and the text forms SQLite
// hands back when a column's declared type is lost, e.g. in RETURNING.
type timestamp time.Time

func (t *timestamp) Scan(src any) error {
	var text string

	switch v := src.(type) {
	case time.Time:
		*t = timestamp(v.UTC())
		return nil
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}

	text = strings.TrimSuffix(text, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			*t = timestamp(parsed.UTC())
			return nil
		}
	}

	return fmt.Errorf("cannot parse timestamp %q", text)
}
