package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestRateLimiterWindow checks requests past the limit are rejected until
// the window rolls over, per key.
func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(3, 50*time.Millisecond)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d rejected within limit", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request over the limit admitted")
	}

	// A different client has its own window.
	if !rl.Allow("10.0.0.2") {
		t.Error("unrelated client rejected")
	}

	time.Sleep(60 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Error("request rejected after window reset")
	}
}

// TestRateLimiterMiddleware checks the HTTP wiring: 429 with Retry-After
// once the limit is hit.
func TestRateLimiterMiddleware(t *testing.T) {
	handler := NewRateLimiter(1, time.Minute).Middleware(okHandler())

	r := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
	r.Header.Set("X-Real-IP", "203.0.113.9")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After = %q, want 60", w.Header().Get("Retry-After"))
	}
}

// TestSecurityHeaders checks the hardening headers land on responses.
func TestSecurityHeaders(t *testing.T) {
	handler := SecurityHeaders(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, value := range want {
		if got := w.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
}
