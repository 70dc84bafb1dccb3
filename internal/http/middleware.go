package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
	applog "github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/log"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userKey      contextKey = "user"
)

// UserFromContext returns the authenticated user placed on the context
// by requireAuth. It panics if called outside an authenticated route.
func UserFromContext(ctx context.Context) *core.User {
	user, ok := ctx.Value(userKey).(*core.User)
	if !ok {
		panic("http: UserFromContext called on unauthenticated request")
	}
	return user
}

// Authenticator resolves a bearer token into a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*core.User, error)
}

// requireAuth extracts the Bearer token, resolves the user and puts it
// on the request context. Any failure is a uniform 401.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		user, err := s.auth.Authenticate(r.Context(), token)
		if err != nil {
			slog.DebugContext(r.Context(), "Token rejected", applog.FieldError, err.Error())
			respondError(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next(w, r.WithContext(ctx))
	}
}

// withObservability adds request IDs, request logging, rate limiting
// on mutating methods, and baseline security headers.
func (s *Server) withObservability(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Extract client IP (considering proxies)
		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldClientIP, clientIP)

		if isMutating(r.Method) && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded",
				applog.FieldClientIP, clientIP,
				applog.FieldMethod, r.Method,
				applog.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			respondError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		slog.InfoContext(ctx, "Request completed",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rw.statusCode,
			applog.FieldDuration, duration.Milliseconds(),
			applog.FieldClientIP, clientIP)
	})
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func generateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b)
}
