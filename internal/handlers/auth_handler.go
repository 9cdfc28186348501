package handlers

import (
	"net/http"

	"church-backend/internal/auth"
	"church-backend/internal/config"
	"church-backend/internal/middleware"
)

// AuthHandler serves the login and session-status endpoints for both the
// admin dashboard and regular site visitors.
type AuthHandler struct {
	Config   *config.Config
	Sessions *auth.SessionStore
}

func NewAuthHandler(cfg *config.Config, sessions *auth.SessionStore) *AuthHandler {
	return &AuthHandler{Config: cfg, Sessions: sessions}
}

// AdminLogin checks the configured credentials and, on success, mints an
// admin session token. The token is returned in the body and also set as
// an HttpOnly cookie so the dashboard works without client-side storage.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User     string `json:"user"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.User != h.Config.Admin.User || req.Password != h.Config.Admin.Password {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Sessions.Issue(auth.RoleAdmin, req.User)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
	})
}

// UserLogin mints a user session for any non-empty email and password.
// There is no user account store; the session only gates uploads.
func (h *AuthHandler) UserLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := h.Sessions.Issue(auth.RoleUser, req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
	})
}

// AdminStatus handles GET /api/admin/auth, reporting whether the request
// carries a valid admin session.
func (h *AuthHandler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	token := middleware.TokenFromRequest(r)
	ok := h.Sessions.Validate(token, auth.RoleAdmin)
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": ok})
}

// Logout revokes whichever session the request carries and clears the
// admin cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.TokenFromRequest(r); token != "" {
		h.Sessions.Revoke(token)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
