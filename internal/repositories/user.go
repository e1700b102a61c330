package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	base
}

func NewUserReadRepository(db *sqlx.DB, opts ...Option) *UserReadRepository {
	return &UserReadRepository{base: newBase(db, opts...)}
}

// GetByID returns the user with the given ID or apperror.ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByUsername returns the user with the given username or apperror.ErrNotFound.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`
	return r.getOne(ctx, query, username)
}

// GetAll returns every user ordered by ID.
func (r *UserReadRepository) GetAll(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, username, password_hash, created_at
		FROM users
		ORDER BY id
	`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	users := []models.UserDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &users, query)

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, mapError(err)
	}
	return users, nil
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, arg)

	logQuery(query, []any{arg}, user, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	base
}

func NewUserWriteRepository(db *sqlx.DB, opts ...Option) *UserWriteRepository {
	return &UserWriteRepository{base: newBase(db, opts...)}
}

// Insert stores a new user and returns its ID.
// A taken username yields apperror.ErrConflict.
func (r *UserWriteRepository) Insert(ctx context.Context, username, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO users (username, password_hash, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`
	args := []any{username, "***"}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, username, passwordHash)

	logQuery(query, args, id, err)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperror.ErrConflict
	}
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

// Update overwrites username and password hash by ID.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET username = $1, password_hash = $2
		WHERE id = $3
	`
	return r.exec(ctx, query, []any{user.Username, "***", user.ID}, user.Username, user.PasswordHash, user.ID)
}

// Delete removes a user by ID.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	return r.exec(ctx, query, []any{id}, id)
}
