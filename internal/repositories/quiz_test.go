package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quizColumns = []string{"id", "name", "description", "created_at", "created_by"}

func TestQuizReadRepository_GetByID(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM quizzes")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(quizColumns).AddRow(1, "Q1", "first", now, 2))

		quiz, err := NewQuizReadRepository(db).GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, &models.QuizDB{ID: 1, Name: "Q1", Description: "first", CreatedAt: now, CreatedBy: 2}, quiz)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM quizzes")).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(quizColumns))

		quiz, err := NewQuizReadRepository(db).GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, quiz)
	})
}

func TestQuizReadRepository_GetAll(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(quizColumns).
			AddRow(1, "Q1", "first", now, 1).
			AddRow(2, "Q2", "second", now, 1))

	quizzes, err := NewQuizReadRepository(db).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, int64(1), quizzes[0].ID)
	assert.Equal(t, int64(2), quizzes[1].ID)
}

func TestQuizWriteRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quizzes")).
		WithArgs("Q1", "first", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(10, now))

	quiz := &models.QuizDB{Name: "Q1", Description: "first", CreatedBy: 5}
	id, err := NewQuizWriteRepository(db).Insert(context.Background(), quiz)

	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	assert.Equal(t, int64(10), quiz.ID)
	assert.Equal(t, now, quiz.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizWriteRepository_UpdateDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQuizWriteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE quizzes")).
		WithArgs("Q1b", "edited", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quizzes WHERE id = $1")).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Update(context.Background(), &models.QuizDB{ID: 10, Name: "Q1b", Description: "edited"}))
	// a missing row is not an error
	require.NoError(t, repo.Delete(context.Background(), 10))

	assert.NoError(t, mock.ExpectationsWereMet())
}
