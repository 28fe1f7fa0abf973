package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/inkpost/inkpost/internal/apperr"
)

// errorResponse is the exit shape for failed actions.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse is the exit shape for mutating actions with no payload.
type successResponse struct {
	Success bool `json:"success"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondSuccess(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, successResponse{Success: true})
}

// respondError maps an error onto HTTP status plus a user-facing
// message. Raw backend detail is logged, never shown.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperr.CodeOf(err)

	var status int
	switch code {
	case apperr.CodeInvalidInput:
		status = http.StatusBadRequest
	case apperr.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case apperr.CodeNotFound:
		status = http.StatusNotFound
	case apperr.CodeUploadFailure:
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}

	if status >= 500 || code == apperr.CodeUploadFailure {
		slog.Error("request failed", "error", err, "code", code, "method", r.Method, "path", r.URL.Path)
	}

	respondJSON(w, status, errorResponse{Error: apperr.Message(err)})
}

func respondInvalid(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
