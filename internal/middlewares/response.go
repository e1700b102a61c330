package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/quizcraft/internal/apperror"
)

func writeError(w http.ResponseWriter, err error) {
	if apperror.IsRetryable(err) {
		w.Header().Set("Retry-After", "1")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperror.StatusCode(err))
	_ = json.NewEncoder(w).Encode(apperror.ToResponse(err))
}
