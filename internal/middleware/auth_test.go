package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"church-backend/internal/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// TestRequireAdmin checks both token transports and the role boundary.
func TestRequireAdmin(t *testing.T) {
	sessions := auth.NewSessionStore()
	adminToken, _ := sessions.Issue(auth.RoleAdmin, "admin")
	userToken, _ := sessions.Issue(auth.RoleUser, "visitor@example.org")

	handler := NewAuthMiddleware(sessions).RequireAdmin(okHandler())

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
	}{
		{"no token", func(r *http.Request) {}, http.StatusUnauthorized},
		{"bearer admin token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+adminToken)
		}, http.StatusOK},
		{"admin cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: AdminCookieName, Value: adminToken})
		}, http.StatusOK},
		{"user token rejected", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+userToken)
		}, http.StatusUnauthorized},
		{"garbage token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer nonsense")
		}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			tt.setup(r)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

// TestRequireAuthAcceptsEitherRole checks upload routes admit user and
// admin sessions alike.
func TestRequireAuthAcceptsEitherRole(t *testing.T) {
	sessions := auth.NewSessionStore()
	adminToken, _ := sessions.Issue(auth.RoleAdmin, "admin")
	userToken, _ := sessions.Issue(auth.RoleUser, "visitor@example.org")

	handler := NewAuthMiddleware(sessions).RequireAuth(okHandler())

	for name, token := range map[string]string{"admin": adminToken, "user": userToken} {
		r := httptest.NewRequest(http.MethodPost, "/api/videos/upload", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Errorf("%s token: status = %d, want 200", name, w.Code)
		}
	}

	r := httptest.NewRequest(http.MethodPost, "/api/videos/upload", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: status = %d, want 401", w.Code)
	}
}

// TestBearerHeaderWinsOverCookie checks the documented precedence.
func TestBearerHeaderWinsOverCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer header-token")
	r.AddCookie(&http.Cookie{Name: AdminCookieName, Value: "cookie-token"})

	if got := TokenFromRequest(r); got != "header-token" {
		t.Errorf("TokenFromRequest = %q, want header token", got)
	}
}
