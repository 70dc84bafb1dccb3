package http

import (
	"errors"
	"net/http"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/services"
)

type enrollRequest struct {
	Passphrase string `json:"passphrase"`
}

type verifyRequest struct {
	SpokenText string `json:"spokenText"`
}

func (s *Server) handleVoiceEnroll(w http.ResponseWriter, r *http.Request) {
	var req enrollRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := UserFromContext(r.Context())
	err := s.voice.Enroll(r.Context(), user.ID, req.Passphrase)
	switch {
	case errors.Is(err, services.ErrEmptyPassphrase):
		respondError(w, http.StatusBadRequest, "Passphrase is required")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Could not enroll voice passphrase")
	default:
		respondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Voice enrolled successfully",
		})
	}
}

func (s *Server) handleVoiceVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.SpokenText == "" {
		respondError(w, http.StatusBadRequest, "spokenText is required")
		return
	}

	user := UserFromContext(r.Context())
	result, err := s.voice.Verify(r.Context(), user.ID, req.SpokenText)
	switch {
	case errors.Is(err, core.ErrNotEnrolled):
		respondError(w, http.StatusBadRequest, "No voice passphrase found. Please enroll first.")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Could not verify voice")
	default:
		message := "Voice not recognized"
		if result.Verified {
			message = "Voice verified"
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"verified": result.Verified,
			"score":    result.Score,
			"message":  message,
		})
	}
}
