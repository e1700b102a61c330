package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

const questionColumns = `id, quiz_id, position, question, answer, options`

// QuestionReadRepository handles question read operations
type QuestionReadRepository struct {
	base
}

func NewQuestionReadRepository(db *sqlx.DB, opts ...Option) *QuestionReadRepository {
	return &QuestionReadRepository{base: newBase(db, opts...)}
}

// GetByID returns the question with the given ID or apperror.ErrNotFound.
func (r *QuestionReadRepository) GetByID(ctx context.Context, id int64) (*models.QuestionDB, error) {
	const query = `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var q models.QuestionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &q, query, id)

	logQuery(query, []any{id}, q, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &q, nil
}

// GetAll returns every question ordered by ID.
func (r *QuestionReadRepository) GetAll(ctx context.Context) ([]models.QuestionDB, error) {
	const query = `SELECT ` + questionColumns + ` FROM questions ORDER BY id`
	return r.selectMany(ctx, query)
}

// GetByQuizID returns the questions of a quiz in their stored order.
func (r *QuestionReadRepository) GetByQuizID(ctx context.Context, quizID int64) ([]models.QuestionDB, error) {
	const query = `SELECT ` + questionColumns + ` FROM questions WHERE quiz_id = $1 ORDER BY position, id`
	return r.selectMany(ctx, query, quizID)
}

func (r *QuestionReadRepository) selectMany(ctx context.Context, query string, args ...any) ([]models.QuestionDB, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	questions := []models.QuestionDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &questions, query, args...)

	logQuery(query, args, len(questions), err)

	if err != nil {
		return nil, mapError(err)
	}
	return questions, nil
}

// QuestionWriteRepository handles question write operations
type QuestionWriteRepository struct {
	base
}

func NewQuestionWriteRepository(db *sqlx.DB, opts ...Option) *QuestionWriteRepository {
	return &QuestionWriteRepository{base: newBase(db, opts...)}
}

// Insert stores a question and fills in its ID.
func (r *QuestionWriteRepository) Insert(ctx context.Context, q *models.QuestionDB) (int64, error) {
	const query = `
		INSERT INTO questions (quiz_id, position, question, answer, options)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	args := []any{q.QuizID, q.Position, q.Question, q.Answer, q.Options}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logQuery(query, args, id, err)

	if err != nil {
		return 0, mapError(err)
	}

	q.ID = id
	return id, nil
}

// Update overwrites a question by ID.
func (r *QuestionWriteRepository) Update(ctx context.Context, q *models.QuestionDB) error {
	const query = `
		UPDATE questions
		SET position = $1, question = $2, answer = $3, options = $4
		WHERE id = $5
	`
	args := []any{q.Position, q.Question, q.Answer, q.Options, q.ID}
	return r.exec(ctx, query, args, args...)
}

// Delete removes a question by ID.
func (r *QuestionWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM questions WHERE id = $1`
	return r.exec(ctx, query, []any{id}, id)
}
