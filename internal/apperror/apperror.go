// Package apperror defines the error kinds shared by repositories, services
// and handlers, and how each kind maps to an HTTP status.
package apperror

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique value is already taken.
	ErrConflict = errors.New("already exists")
	// ErrUnauthenticated is returned for a missing, invalid or expired token.
	ErrUnauthenticated = errors.New("unauthorized")
	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrForbidden is returned when an authenticated user may not act on a resource.
	ErrForbidden = errors.New("forbidden")
	// ErrTimeout is returned when a datastore operation exceeds its deadline.
	ErrTimeout = errors.New("datastore timeout")
	// ErrInvalidBody is returned when a request body is not valid JSON.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrInvalidID is returned when a path ID is not a positive integer.
	ErrInvalidID = errors.New("invalid id")
)

// ValidationError lists the request fields that are missing or invalid.
type ValidationError struct {
	Fields []string
}

// NewValidationError creates a ValidationError for the given fields.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "missing required fields"
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// StatusCode returns the HTTP status for err.
func StatusCode(err error) int {
	var verr *ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr), errors.Is(err, ErrInvalidBody), errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing text for err. Internal details are never included.
func Message(err error) string {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return "Missing required fields"
	case errors.Is(err, ErrInvalidBody):
		return "Invalid request body"
	case errors.Is(err, ErrInvalidID):
		return "Invalid id"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, ErrUnauthenticated):
		return "Unauthorized"
	case errors.Is(err, ErrForbidden):
		return "Forbidden"
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrConflict):
		return "Already exists"
	case errors.Is(err, ErrTimeout):
		return "Service temporarily unavailable"
	default:
		return "Internal server error"
	}
}

// IsRetryable reports whether the client may retry the same request.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// ErrorResponse is the JSON body written for a failed request.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// ToResponse builds the client-facing body for err.
func ToResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: Message(err)}
	var verr *ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	return resp
}
