package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/coffee-notes/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLikeRepo(t *testing.T) (LikeRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewLikeRepository(db, logger.Nop()), mock
}

// ── FindLike ──

func TestFindLike(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestLikeRepo(t)
		now := time.Now()
		mock.ExpectQuery("FROM note_likes").
			WithArgs("n1", "s1").
			WillReturnRows(sqlmock.NewRows(likeColumns).AddRow(int64(7), "n1", "s1", now))

		like, err := repo.FindLike(context.Background(), "n1", "s1")

		require.NoError(t, err)
		assert.Equal(t, int64(7), like.ID)
		assert.Equal(t, "s1", like.SessionID)
	})

	t.Run("absent", func(t *testing.T) {
		repo, mock := newTestLikeRepo(t)
		mock.ExpectQuery("FROM note_likes").WillReturnRows(sqlmock.NewRows(likeColumns))

		_, err := repo.FindLike(context.Background(), "n1", "s1")
		assert.ErrorIs(t, err, ErrLikeNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestLikeRepo(t)
		mock.ExpectQuery("FROM note_likes").WillReturnError(errors.New("boom"))

		_, err := repo.FindLike(context.Background(), "n1", "s1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

// ── InsertLike / DeleteLike ──

func TestInsertLike(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "success"},
		{name: "duplicate", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrLikeAlreadyExists},
		{name: "note missing", dbErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrNoteNotFound},
		{name: "other", dbErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestLikeRepo(t)
			exp := mock.ExpectExec("INSERT INTO note_likes").WithArgs("n1", "s1")
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := repo.InsertLike(context.Background(), "n1", "s1")

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteLike(t *testing.T) {
	repo, mock := newTestLikeRepo(t)
	mock.ExpectExec("DELETE FROM note_likes").WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteLike(context.Background(), 7))

	mock.ExpectExec("DELETE FROM note_likes").WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, repo.DeleteLike(context.Background(), 7), ErrExecutingStatement)
}

// ── counters ──

func TestGetLikeCount(t *testing.T) {
	repo, mock := newTestLikeRepo(t)

	mock.ExpectQuery("SELECT likes FROM notes").
		WithArgs("n1").
		WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(4))
	count, err := repo.GetLikeCount(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	mock.ExpectQuery("SELECT likes FROM notes").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetLikeCount(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestSetLikeCount(t *testing.T) {
	repo, mock := newTestLikeRepo(t)

	mock.ExpectQuery("UPDATE notes SET likes").
		WithArgs(5, "n1").
		WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(5))
	stored, err := repo.SetLikeCount(context.Background(), "n1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, stored)

	mock.ExpectQuery("UPDATE notes SET likes").WillReturnError(errors.New("boom"))
	_, err = repo.SetLikeCount(context.Background(), "n1", 5)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── batch check / reconcile ──

func TestLikedNoteIDs(t *testing.T) {
	t.Run("subset", func(t *testing.T) {
		repo, mock := newTestLikeRepo(t)
		mock.ExpectQuery("SELECT note_id FROM note_likes").
			WithArgs("s1", "a", "b").
			WillReturnRows(sqlmock.NewRows([]string{"note_id"}).AddRow("b"))

		ids, err := repo.LikedNoteIDs(context.Background(), "s1", []string{"a", "b"})

		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, ids)
	})

	t.Run("empty input skips the query", func(t *testing.T) {
		repo, mock := newTestLikeRepo(t)

		ids, err := repo.LikedNoteIDs(context.Background(), "s1", nil)

		require.NoError(t, err)
		assert.Empty(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestLikeRepo(t)
		mock.ExpectQuery("SELECT note_id").WillReturnError(errors.New("boom"))

		_, err := repo.LikedNoteIDs(context.Background(), "s1", []string{"a"})
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestReconcileLikeCounts(t *testing.T) {
	repo, mock := newTestLikeRepo(t)

	mock.ExpectExec("UPDATE notes SET likes").WillReturnResult(sqlmock.NewResult(0, 3))
	n, err := repo.ReconcileLikeCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	mock.ExpectExec("UPDATE notes SET likes").WillReturnError(errors.New("boom"))
	_, err = repo.ReconcileLikeCounts(context.Background())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
