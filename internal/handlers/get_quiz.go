package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/quizcraft/internal/models"
)

//go:generate mockgen -source=get_quiz.go -destination=mock_get_quiz.go -package=handlers

// QuizGetter returns a single quiz.
type QuizGetter interface {
	Get(ctx context.Context, id int64) (*models.Quiz, error)
}

// NewGetQuizHandler returns an HTTP handler for a single quiz.
// @Summary Get quiz
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} models.Quiz
// @Failure 400 {object} apperror.ErrorResponse "Invalid id"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 404 {object} apperror.ErrorResponse "Not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /quizzes/{id} [get]
func NewGetQuizHandler(svc QuizGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := quizIDParam(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		quiz, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, quiz)
	}
}
