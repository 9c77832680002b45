package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note      models.Note
		category  string
		sessionID sql.NullString
	)

	err := row.Scan(
		&note.ID,
		&category,
		&note.Content,
		&note.PositionX,
		&note.PositionY,
		&note.CreatedAt,
		&note.Likes,
		&sessionID,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.Category = models.Category(category)
	note.SessionID = sessionID.String

	return note, nil
}

// ListNotes returns every note ordered by created_at descending.
// An empty table yields an empty, non-nil slice.
func (r *noteRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(ctx)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Stringer("classification", r.classify(err)).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 64)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.ListNotes").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.ListNotes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// CreateNote inserts a note and returns it with the server-assigned
// created_at and likes.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(ctx, note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("note_id", note.ID).
			Stringer("classification", r.classify(err)).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// UpdateContent replaces the content of a note and returns the stored row.
func (r *noteRepository) UpdateContent(ctx context.Context, id, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContentQuery(ctx, id, content)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateContent").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().Str("func", "noteRepository.UpdateContent").Str("note_id", id).Msg("note not found")
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateContent").
			Str("note_id", id).
			Stringer("classification", r.classify(err)).
			Msg("failed to update note content")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// UpdatePosition writes the integer position of a note. Zero affected rows
// are not reported.
func (r *noteRepository) UpdatePosition(ctx context.Context, id string, x, y int) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePositionQuery(ctx, id, x, y)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdatePosition").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdatePosition").
			Str("note_id", id).
			Stringer("classification", r.classify(err)).
			Msg("failed to update note position")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteNote removes a note. Deleting an unknown ID succeeds.
func (r *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", id).
			Stringer("classification", r.classify(err)).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
