package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/middlewares"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

//go:generate mockgen -source=delete_quiz.go -destination=mock_delete_quiz.go -package=handlers

// QuizDeleter removes a quiz owned by the user.
type QuizDeleter interface {
	Delete(ctx context.Context, user *models.UserDB, id int64) error
}

// NewDeleteQuizHandler returns an HTTP handler for quiz deletion.
// @Summary Delete quiz
// @Description Deletes the quiz and its questions. Only the creator may delete.
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} models.IDResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid id"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 403 {object} apperror.ErrorResponse "Not the creator"
// @Failure 404 {object} apperror.ErrorResponse "Not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /quizzes/{id} [delete]
func NewDeleteQuizHandler(svc QuizDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middlewares.UserFromContext(r.Context())
		if !ok {
			writeError(w, r, apperror.ErrUnauthenticated)
			return
		}

		id, err := quizIDParam(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), user, id); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.IDResponse{ID: id})
	}
}
