// Package http exposes the bookkeeping API over JSON. Routes are
// registered with Go 1.22 method patterns; authenticated routes run
// behind bearer token middleware.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/cors"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/ai"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/services"
)

// TransactionExtractor turns a free-text transcript into a structured
// transaction draft. Nil when no AI backend is configured.
type TransactionExtractor interface {
	Extract(ctx context.Context, transcript string) (*ai.Draft, error)
}

type Server struct {
	http.Server

	auth         Authenticator
	authService  *services.AuthService
	transactions *services.TransactionService
	voice        *services.VoiceService
	extractor    TransactionExtractor

	rateLimiter  *rateLimiter
	shutdownOnce sync.Once
}

// Deps carries the collaborators the server needs. Extractor may be
// nil; the extract endpoint then responds 503.
type Deps struct {
	Auth          *services.AuthService
	Transactions  *services.TransactionService
	Voice         *services.VoiceService
	Extractor     TransactionExtractor
	AllowedOrigin string
}

// NewServer configures routes and middleware, returning a
// ready-to-run http.Server.
func NewServer(addr string, deps Deps) *Server {
	s := &Server{
		auth:         deps.Auth,
		authService:  deps.Auth,
		transactions: deps.Transactions,
		voice:        deps.Voice,
		extractor:    deps.Extractor,
		rateLimiter:  newRateLimiter(),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", handleIndex)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /api/auth/signup", s.handleSignup)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/auth/me", s.requireAuth(s.handleMe))

	mux.HandleFunc("POST /api/transactions", s.requireAuth(s.handleCreateTransaction))
	mux.HandleFunc("GET /api/transactions", s.requireAuth(s.handleListTransactions))
	mux.HandleFunc("GET /api/transactions/summary", s.requireAuth(s.handleSummary))
	mux.HandleFunc("GET /api/transactions/analytics", s.requireAuth(s.handleAnalytics))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.requireAuth(s.handleDeleteTransaction))

	mux.HandleFunc("POST /api/voice/enroll", s.requireAuth(s.handleVoiceEnroll))
	mux.HandleFunc("POST /api/voice/verify", s.requireAuth(s.handleVoiceVerify))

	mux.HandleFunc("POST /api/ai/extract", s.requireAuth(s.handleExtract))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{deps.AllowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.withObservability(c.Handler(mux)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Shutdown stops the HTTP server and the rate limiter cleanup
// goroutine.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleIndex(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"message": "API is running"})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
