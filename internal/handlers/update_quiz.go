package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/logger"
	"github.com/sbilibin2017/quizcraft/internal/middlewares"
	"github.com/sbilibin2017/quizcraft/internal/models"
)

//go:generate mockgen -source=update_quiz.go -destination=mock_update_quiz.go -package=handlers

// QuizUpdater replaces a quiz owned by the user.
type QuizUpdater interface {
	Update(ctx context.Context, user *models.UserDB, id int64, in models.QuizInput) error
}

// NewUpdateQuizHandler returns an HTTP handler for quiz updates.
// @Summary Update quiz
// @Description Replaces name, description and questions. Only the creator may update. The name is read from "title", falling back to "name". Questions carrying an existing id are edited in place, the others are added, and stored questions left out are removed.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz ID"
// @Param quiz body models.QuizRequest true "Quiz"
// @Success 200 {object} models.IDResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid id or missing required fields"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 403 {object} apperror.ErrorResponse "Not the creator"
// @Failure 404 {object} apperror.ErrorResponse "Not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /quizzes/{id} [put]
func NewUpdateQuizHandler(svc QuizUpdater) http.HandlerFunc {
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

		// An unreadable body is left empty so that existence and ownership
		// are reported before the missing fields.
		var req models.QuizRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Infow("unreadable quiz body", "quiz_id", id, "err", err)
			req = models.QuizRequest{}
		}

		if err := svc.Update(r.Context(), user, id, req.ToUpdateInput()); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, models.IDResponse{ID: id})
	}
}
