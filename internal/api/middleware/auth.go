package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/courtqueue/internal/api/apierr"
	"github.com/mcoot/courtqueue/internal/services/auth"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionCookie is the cookie the login endpoint sets
const SessionCookie = "session"

// SessionValidator checks admin session tokens
type SessionValidator interface {
	ValidateSession(token string) (*auth.Session, error)
}

// Admin rejects requests without a valid admin session token
func Admin(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			session, err := sessions.ValidateSession(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken returns the bearer token, falling back to the session cookie
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	cookie, err := r.Cookie(SessionCookie)
	if err == nil {
		return cookie.Value
	}

	return ""
}

// GetSession returns the admin session from the request context
func GetSession(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionContextKey).(*auth.Session)
	return session
}

// Audit logs each admin request with when its session began. It must run
// inside Admin; the token itself is never logged.
func Audit(logger *slog.Logger) func(http.Handler) http.Handler {
	logger = logger.With(slog.String("component", "audit"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			}
			if session := GetSession(r.Context()); session != nil {
				attrs = append(attrs, slog.Time("session_created", session.CreatedAt))
			}
			logger.Info("admin request", attrs...)
			next.ServeHTTP(w, r)
		})
	}
}
