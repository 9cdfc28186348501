package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"church-backend/internal/auth"
)

// AuthMiddleware guards routes with the in-memory session store. Tokens
// arrive as an Authorization bearer header, with the admin cookie as a
// fallback for browser navigation.
type AuthMiddleware struct {
	Sessions *auth.SessionStore
}

// AdminCookieName is the cookie set by the admin login endpoint.
const AdminCookieName = "admin_token"

func NewAuthMiddleware(sessions *auth.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{Sessions: sessions}
}

// TokenFromRequest extracts the session token, preferring the bearer
// header over the admin cookie.
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie(AdminCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// RequireAdmin admits only tokens minted by the admin login.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.Sessions.Validate(TokenFromRequest(r), auth.RoleAdmin) {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth admits admin or generic user tokens.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.Sessions.ValidateAny(TokenFromRequest(r)) {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
