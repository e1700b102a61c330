package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

//go:generate mockgen -source=login.go -destination=mock_login.go -package=handlers

// Loginer defines the interface for user authentication
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login
// @Description Authenticates the user and returns a JWT token valid for one hour.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login request"
// @Success 200 {object} models.LoginResponse "JWT token"
// @Failure 400 {object} apperror.ErrorResponse "Missing username or password"
// @Failure 401 {object} apperror.ErrorResponse "Invalid username or password"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, apperror.ErrInvalidBody)
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{Token: token})
	}
}
