package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/logger"
	"github.com/sbilibin2017/quizcraft/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// PasswordCost is the bcrypt cost used for new password hashes.
const PasswordCost = 10

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Insert(ctx context.Context, username, passwordHash string) (int64, error)
}

// UserCache caches users by username.
type UserCache interface {
	Get(ctx context.Context, username string) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// AuditPublisher records who did what.
type AuditPublisher interface {
	Publish(ctx context.Context, actor, action, entity string, entityID int64)
}

// AuthService handles registration, login and token subject resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache
	jwt    JWTGenerator
	audit  AuditPublisher
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(reader UserReader, writer UserWriter, cache UserCache, jwt JWTGenerator, audit AuditPublisher) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		cache:  cache,
		jwt:    jwt,
		audit:  audit,
	}
}

// Register creates a user and returns its ID.
func (svc *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	if err := validateCredentials(username, password); err != nil {
		return 0, err
	}

	_, err := svc.reader.GetByUsername(ctx, username)
	switch {
	case err == nil:
		logger.Log.Infow("user already exists", "username", username)
		return 0, apperror.ErrConflict
	case !errors.Is(err, apperror.ErrNotFound):
		logger.Log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	// the unique constraint still guards against a concurrent registration
	id, err := svc.writer.Insert(ctx, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return 0, err
	}

	svc.audit.Publish(ctx, username, models.ActionRegister, "user", id)

	return id, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if err := validateCredentials(username, password); err != nil {
		return "", err
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if errors.Is(err, apperror.ErrNotFound) {
		logger.Log.Infow("user does not exist", "username", username)
		return "", apperror.ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", apperror.ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	svc.audit.Publish(ctx, user.Username, models.ActionLogin, "user", user.ID)

	return token, nil
}

// ResolveUser returns the user a token was issued to.
// A user that no longer exists is reported as apperror.ErrUnauthenticated.
func (svc *AuthService) ResolveUser(ctx context.Context, username string) (*models.UserDB, error) {
	if svc.cache != nil {
		user, err := svc.cache.Get(ctx, username)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			logger.Log.Warnw("user cache read failed", "username", username, "err", err)
		}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %q does not exist", apperror.ErrUnauthenticated, username)
	}
	if err != nil {
		logger.Log.Errorw("failed to resolve user", "username", username, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("user cache write failed", "username", username, "err", err)
		}
	}

	return user, nil
}

func validateCredentials(username, password string) error {
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return apperror.NewValidationError(missing...)
	}
	return nil
}
