package http

import (
	"errors"
	"net/http"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/ai"
)

type extractRequest struct {
	Transcript string `json:"transcript"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Transcript == "" {
		respondError(w, http.StatusBadRequest, "Transcript is required")
		return
	}
	if s.extractor == nil {
		respondError(w, http.StatusServiceUnavailable, "AI extraction is not configured")
		return
	}

	draft, err := s.extractor.Extract(r.Context(), req.Transcript)
	var invalidJSON *ai.InvalidJSONError
	switch {
	case errors.As(err, &invalidJSON):
		respondJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "AI did not return valid JSON",
			"raw":     invalidJSON.Raw,
		})
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Could not extract transaction")
	case draft.Err != "":
		respondError(w, http.StatusBadRequest, draft.Err)
	default:
		respondData(w, http.StatusOK, draft)
	}
}
