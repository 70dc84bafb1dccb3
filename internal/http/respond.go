package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// All API responses share the envelope {"success": bool, ...}. Errors
// carry a human-readable message; handlers never leak internal error
// text for 5xx responses.

func respondJSON(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, map[string]any{
		"success": true,
		"data":    data,
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// decodeBody parses a JSON request body into dst. A malformed body is
// a client error and reported as such.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
