package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/quizcraft/internal/apperror"
	"github.com/sbilibin2017/quizcraft/internal/logger"
	"github.com/sbilibin2017/quizcraft/internal/middlewares"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeError maps err to its status and client message. Server-side
// failures are logged with the request ID; their details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperror.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"method", r.Method,
			"uri", r.RequestURI,
			"err", err,
		)
	}
	if apperror.IsRetryable(err) {
		w.Header().Set("Retry-After", "1")
	}
	writeJSON(w, status, apperror.ToResponse(err))
}

// quizIDParam parses the {id} path segment.
func quizIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.ErrInvalidID
	}
	return id, nil
}
