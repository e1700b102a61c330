package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/jwt"
	"github.com/sbilibin2017/quizcraft/internal/logger"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserResolver turns a token subject into a stored user.
type UserResolver interface {
	ResolveUser(ctx context.Context, username string) (*models.UserDB, error)
}

type userContextKey struct{}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the user stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.UserDB, bool) {
	user, ok := ctx.Value(userContextKey{}).(*models.UserDB)
	return user, ok && user != nil
}

// AuthMiddleware returns a middleware that validates the JWT and attaches its user to the request context
func AuthMiddleware(tokener Tokener, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeError(w, apperror.ErrUnauthenticated)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeError(w, apperror.ErrUnauthenticated)
				return
			}

			user, err := users.ResolveUser(ctx, claims.Username)
			if err != nil {
				logger.Log.Infow("authorization failed", "username", claims.Username, "err", err)
				writeError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}
