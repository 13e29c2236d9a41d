package handler

import (
	"net/http"

	"github.com/mcoot/courtqueue/internal/api/middleware"
	"github.com/mcoot/courtqueue/internal/api/request"
	"github.com/mcoot/courtqueue/internal/api/response"
	"github.com/mcoot/courtqueue/internal/services/auth"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := decode(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	response.JSON(w, http.StatusOK, response.AuthResponseFromSession(session))
}

// Logout handles POST /api/v1/auth/logout. Unknown tokens are ignored.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.ExtractToken(r); token != "" {
		h.authService.InvalidateSession(token)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	response.NoContent(w)
}
