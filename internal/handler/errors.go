package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// ErrorDetail is the code/message pair carried by every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

const storageMessage = "storage unavailable, please retry"

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}}
}

func storageBody() ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "storage_error", Message: storageMessage}}
}

func internalBody() ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if _, after, ok := strings.Cut(msg, domain.ErrValidation.Error()+": "); ok && after != "" {
		return after
	}
	return msg
}

// writeServiceError maps a service error onto the response status.
// notFound is the message used when err wraps domain.ErrNotFound.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody(notFound))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
	case errors.Is(err, domain.ErrStorage):
		s.log.ErrorContext(r.Context(), "storage failure",
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, storageBody())
	default:
		s.log.ErrorContext(r.Context(), "unhandled error",
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, internalBody())
	}
}
