package http

import (
	"errors"
	"net/http"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/services"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func userPayload(u *core.User) map[string]any {
	return map[string]any{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, token, err := s.authService.Signup(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrMissingCredentials):
		respondError(w, http.StatusBadRequest, "Name, email and password are required")
	case errors.Is(err, services.ErrEmailTaken):
		respondError(w, http.StatusConflict, "Email already registered")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Could not create account")
	default:
		respondJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"token":   token,
			"user":    userPayload(user),
		})
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, token, err := s.authService.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Could not log in")
	default:
		respondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"token":   token,
			"user":    userPayload(user),
		})
	}
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	respondData(w, http.StatusOK, userPayload(user))
}
