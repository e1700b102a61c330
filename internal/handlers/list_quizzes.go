package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/quizcraft/internal/models"
)

//go:generate mockgen -source=list_quizzes.go -destination=mock_list_quizzes.go -package=handlers

// QuizLister returns every quiz.
type QuizLister interface {
	List(ctx context.Context) ([]models.Quiz, error)
}

// NewListQuizzesHandler returns an HTTP handler listing all quizzes.
// @Summary List quizzes
// @Description Returns every quiz with its creator and questions, ordered by ID.
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Quiz
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func NewListQuizzesHandler(svc QuizLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizzes, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, quizzes)
	}
}
