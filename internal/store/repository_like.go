// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/MKhiriev/coffee-notes/models"
)

// likeRepository is the PostgreSQL-backed implementation of [LikeRepository].
type likeRepository struct {
	*DB
	logger *logger.Logger
}

// NewLikeRepository constructs a [LikeRepository] backed by db.
func NewLikeRepository(db *DB, logger *logger.Logger) LikeRepository {
	logger.Debug().Msg("creating like repository")
	return &likeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *likeRepository) FindLike(ctx context.Context, noteID, sessionID string) (models.Like, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindLikeQuery(ctx, noteID, sessionID)
	if err != nil {
		log.Err(err).Str("func", "likeRepository.FindLike").Msg("failed to create query")
		return models.Like{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var like models.Like
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&like.ID, &like.NoteID, &like.SessionID, &like.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Like{}, ErrLikeNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "likeRepository.FindLike").
			Str("note_id", noteID).
			Stringer("classification", r.classify(err)).
			Msg("failed to find like")
		return models.Like{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return like, nil
}

// InsertLike maps a uniqueness violation to ErrLikeAlreadyExists and a
// missing note to ErrNoteNotFound.
func (r *likeRepository) InsertLike(ctx context.Context, noteID, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertLikeQuery(ctx, noteID, sessionID)
	if err != nil {
		log.Err(err).Str("func", "likeRepository.InsertLike").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "likeRepository.InsertLike").
			Str("note_id", noteID).
			Stringer("classification", r.classify(err)).
			Msg("failed to insert like")

		switch {
		case isUniqueViolation(err):
			return fmt.Errorf("%w: %w", ErrLikeAlreadyExists, err)
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *likeRepository) DeleteLike(ctx context.Context, likeID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteLikeQuery(ctx, likeID)
	if err != nil {
		log.Err(err).Str("func", "likeRepository.DeleteLike").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "likeRepository.DeleteLike").
			Int64("like_id", likeID).
			Stringer("classification", r.classify(err)).
			Msg("failed to delete like")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *likeRepository) GetLikeCount(ctx context.Context, noteID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLikeCountQuery(ctx, noteID)
	if err != nil {
		log.Err(err).Str("func", "likeRepository.GetLikeCount").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "likeRepository.GetLikeCount").
			Str("note_id", noteID).
			Stringer("classification", r.classify(err)).
			Msg("failed to read like count")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *likeRepository) SetLikeCount(ctx context.Context, noteID string, count int) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSetLikeCountQuery(ctx, noteID, count)
	if err != nil {
		log.Err(err).Str("func", "likeRepository.SetLikeCount").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored int
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "likeRepository.SetLikeCount").
			Str("note_id", noteID).
			Int("count", count).
			Stringer("classification", r.classify(err)).
			Msg("failed to write like count")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stored, nil
}

// LikedNoteIDs returns an empty slice without querying when noteIDs is empty.
func (r *likeRepository) LikedNoteIDs(ctx context.Context, sessionID string, noteIDs []string) ([]string, error) {
	if len(noteIDs) == 0 {
		return []string{}, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildLikedNoteIDsQuery(ctx, sessionID, noteIDs)
	if err != nil {
		log.Err(err).Str("func", "likeRepository.LikedNoteIDs").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "likeRepository.LikedNoteIDs").
			Int("note_ids_count", len(noteIDs)).
			Stringer("classification", r.classify(err)).
			Msg("failed to query liked notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	liked := make([]string, 0, len(noteIDs))
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			log.Err(scanErr).Str("func", "likeRepository.LikedNoteIDs").Msg("failed to scan note id")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		liked = append(liked, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "likeRepository.LikedNoteIDs").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return liked, nil
}

func (r *likeRepository) ReconcileLikeCounts(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReconcileLikeCountsQuery(ctx)
	if err != nil {
		log.Err(err).Str("func", "likeRepository.ReconcileLikeCounts").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "likeRepository.ReconcileLikeCounts").
			Stringer("classification", r.classify(err)).
			Msg("failed to reconcile like counts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
