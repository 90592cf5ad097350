package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/matevzh/nuzlog/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// storeError maps store sentinel errors to HTTP responses. Missing and
// unowned rows both map to 404 so the API does not leak existence.
func storeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrRunNotFound), errors.Is(err, store.ErrUnauthorized):
		jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrPartyFull), errors.Is(err, store.ErrPositionOccupied):
		jsonError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrInvalidPosition), errors.Is(err, store.ErrCrossRunMismatch):
		jsonError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(fallback, "error", err)
		jsonError(w, http.StatusInternalServerError, fallback)
	}
}
