package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/logger"
)

// internalMessage hides unexpected failures from clients.
const internalMessage = "Internal server error"

// jsonError represents a JSON error payload.
type jsonError struct {
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="mapmarket"`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{
		Timestamp: time.Now().UTC(),
		Error:     http.StatusText(status),
		Message:   message,
		Details:   details,
	})
}

// writeError translates a service error into a response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.L().Error("request_failed",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			message = domainErr.Message
		} else {
			message = internalMessage
		}
	}
	WriteJSONError(w, status, message, "uri="+r.URL.Path)
}

// statusFor maps domain error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCreationFailed):
		// A constraint conflict underneath a failed create is still a conflict.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return http.StatusConflict
		}
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAuthRequired),
		errors.Is(err, domain.ErrAuthExpired),
		errors.Is(err, domain.ErrAuthInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotImplemented):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
