package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

// QuizReadRepository handles quiz read operations
type QuizReadRepository struct {
	base
}

func NewQuizReadRepository(db *sqlx.DB, opts ...Option) *QuizReadRepository {
	return &QuizReadRepository{base: newBase(db, opts...)}
}

// GetByID returns the quiz row with the given ID or apperror.ErrNotFound.
func (r *QuizReadRepository) GetByID(ctx context.Context, id int64) (*models.QuizDB, error) {
	const query = `
		SELECT id, name, description, created_at, created_by
		FROM quizzes
		WHERE id = $1
	`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var quiz models.QuizDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &quiz, query, id)

	logQuery(query, []any{id}, quiz, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &quiz, nil
}

// GetAll returns every quiz row ordered by ID.
func (r *QuizReadRepository) GetAll(ctx context.Context) ([]models.QuizDB, error) {
	const query = `
		SELECT id, name, description, created_at, created_by
		FROM quizzes
		ORDER BY id
	`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	quizzes := []models.QuizDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &quizzes, query)

	logQuery(query, nil, len(quizzes), err)

	if err != nil {
		return nil, mapError(err)
	}
	return quizzes, nil
}

// QuizWriteRepository handles quiz write operations
type QuizWriteRepository struct {
	base
}

func NewQuizWriteRepository(db *sqlx.DB, opts ...Option) *QuizWriteRepository {
	return &QuizWriteRepository{base: newBase(db, opts...)}
}

// Insert stores a quiz and fills in its ID and CreatedAt from the database.
func (r *QuizWriteRepository) Insert(ctx context.Context, quiz *models.QuizDB) (int64, error) {
	const query = `
		INSERT INTO quizzes (name, description, created_at, created_by)
		VALUES ($1, $2, NOW(), $3)
		RETURNING id, created_at
	`
	args := []any{quiz.Name, quiz.Description, quiz.CreatedBy}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	err := sqlx.GetContext(ctx, r.executor(ctx), &row, query, args...)

	logQuery(query, args, row.ID, err)

	if err != nil {
		return 0, mapError(err)
	}

	quiz.ID = row.ID
	quiz.CreatedAt = row.CreatedAt
	return row.ID, nil
}

// Update overwrites name and description by ID. Creator and creation time never change.
func (r *QuizWriteRepository) Update(ctx context.Context, quiz *models.QuizDB) error {
	const query = `
		UPDATE quizzes
		SET name = $1, description = $2
		WHERE id = $3
	`
	args := []any{quiz.Name, quiz.Description, quiz.ID}
	return r.exec(ctx, query, args, args...)
}

// Delete removes a quiz by ID. Its questions go with it (ON DELETE CASCADE).
func (r *QuizWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM quizzes WHERE id = $1`
	return r.exec(ctx, query, []any{id}, id)
}
