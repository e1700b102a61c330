package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (int64, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The username must be unique. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} apperror.ErrorResponse "Missing username or password"
// @Failure 409 {object} apperror.ErrorResponse "Username already taken"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, apperror.ErrInvalidBody)
			return
		}

		id, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			ID:      id,
			Message: "User registered successfully",
		})
	}
}
