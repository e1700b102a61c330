package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/middlewares"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

//go:generate mockgen -source=create_quiz.go -destination=mock_create_quiz.go -package=handlers

// QuizCreator stores a new quiz for a user.
type QuizCreator interface {
	Create(ctx context.Context, user *models.UserDB, in models.QuizInput) (int64, error)
}

// NewCreateQuizHandler returns an HTTP handler for quiz creation.
// @Summary Create quiz
// @Description Creates a quiz owned by the caller. Name, description and at least one question with question and answer are required.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param quiz body models.QuizRequest true "Quiz"
// @Success 201 {object} models.IDResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing required fields"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /quizzes [post]
func NewCreateQuizHandler(svc QuizCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, r, apperror.ErrUnauthenticated)
			return
		}

		var req models.QuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, apperror.ErrInvalidBody)
			return
		}

		id, err := svc.Create(r.Context(), user, req.ToInput())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.IDResponse{ID: id})
	}
}
