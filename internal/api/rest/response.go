package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/logger"
)

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError writes a JSON error message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondServiceError maps the domain error taxonomy to HTTP statuses:
// NotFound 404, Conflict and Validation 400, everything else 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "Server Error")
	}
}

// decodeJSON decodes a JSON request body into target. An empty body is not an
// error; callers validate required fields themselves.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	err := json.NewDecoder(r.Body).Decode(target)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
