package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"church-backend/internal/auth"
	"church-backend/internal/config"
	"church-backend/internal/handlers"
	"church-backend/internal/health"
	"church-backend/internal/mailer"
	"church-backend/internal/middleware"
	"church-backend/internal/services"
	"church-backend/internal/store/filestore"
)

// newTestHandler assembles the full route tree over the JSON-file backend
// in a temp directory, the same wiring the server binary does.
func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Admin.User = "admin"
	cfg.Admin.Password = "opensesame"
	cfg.Storage.MediaDir = filepath.Join(dir, "media")

	fileStore := filestore.New(filepath.Join(dir, "data.json"))
	messages := filestore.NewMessageRepository(fileStore)
	videos := filestore.NewVideoRepository(fileStore)
	photos := filestore.NewPhotoRepository(fileStore)

	media, err := services.NewMediaService(cfg.Storage.MediaDir)
	if err != nil {
		t.Fatalf("NewMediaService: %v", err)
	}

	sessions := auth.NewSessionStore()
	contact := services.NewContactService(messages, mailer.NewMockMailer())

	return New(Deps{
		Auth:     middleware.NewAuthMiddleware(sessions),
		Login:    handlers.NewAuthHandler(cfg, sessions),
		Messages: handlers.NewMessageHandler(contact, messages),
		Videos:   handlers.NewVideoHandler(videos, media),
		Photos:   handlers.NewPhotoHandler(photos, media),
		Stats:    handlers.NewStatsHandler(fileStore),
		System:   handlers.NewSystemHandler(),
		Health:   handlers.NewHealthHandler(health.NewHealthChecker(nil)),
		Static:   handlers.NewStaticHandler(""),
		MediaDir: cfg.Storage.MediaDir,
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	r := httptest.NewRequest(method, path, &buf)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	var decoded map[string]interface{}
	json.NewDecoder(w.Body).Decode(&decoded)
	return w, decoded
}

func adminLogin(t *testing.T, h http.Handler) string {
	t.Helper()
	w, body := doJSON(t, h, http.MethodPost, "/api/admin/login", "",
		map[string]string{"user": "admin", "password": "opensesame"})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login status = %d", w.Code)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("admin login returned no token")
	}
	return token
}

// TestContactFlow submits a message and walks it through the admin inbox.
func TestContactFlow(t *testing.T) {
	h := newTestHandler(t)

	// Missing fields are rejected with the canonical message.
	w, body := doJSON(t, h, http.MethodPost, "/api/contact", "",
		map[string]string{"name": "Jo"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("partial submit status = %d, want 400", w.Code)
	}
	if body["error"] != "Missing required fields: name, email, subject, message" {
		t.Errorf("error = %q", body["error"])
	}

	w, body = doJSON(t, h, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Jo", "email": "jo@example.org",
		"subject": "Choir", "message": "When does choir practice meet?",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", w.Code)
	}
	if body["success"] != true || body["message"] != "Message sent successfully" {
		t.Errorf("unexpected submit response: %v", body)
	}

	// Inbox is admin only.
	if w, _ := doJSON(t, h, http.MethodGet, "/api/messages", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous inbox status = %d, want 401", w.Code)
	}

	token := adminLogin(t, h)
	r := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("inbox status = %d, want 200", rec.Code)
	}
	var msgs []map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&msgs); err != nil {
		t.Fatalf("decode inbox: %v", err)
	}
	if len(msgs) != 1 || msgs[0]["subject"] != "Choir" {
		t.Errorf("inbox = %v", msgs)
	}
}

// TestVideoModerationFlow checks submissions stay pending until an admin
// approves them.
func TestVideoModerationFlow(t *testing.T) {
	h := newTestHandler(t)

	// Submissions need a session.
	w, _ := doJSON(t, h, http.MethodPost, "/api/videos", "",
		map[string]string{"title": "Service", "url": "https://youtu.be/dQw4w9WgXcQ"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous submit status = %d, want 401", w.Code)
	}

	// Any non-empty email and password mints a user session.
	w, body := doJSON(t, h, http.MethodPost, "/api/user/login", "",
		map[string]string{"email": "jo@example.org", "password": "pw"})
	if w.Code != http.StatusOK {
		t.Fatalf("user login status = %d, want 200", w.Code)
	}
	userToken := body["token"].(string)

	w, body = doJSON(t, h, http.MethodPost, "/api/videos", userToken,
		map[string]string{"title": "Service", "url": "https://youtu.be/dQw4w9WgXcQ"})
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, want 200", w.Code)
	}
	id := int64(body["id"].(float64))

	// Pending videos are hidden from the public list.
	r := httptest.NewRequest(http.MethodGet, "/api/videos", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	var public []map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&public)
	if len(public) != 0 {
		t.Fatalf("pending video publicly visible: %v", public)
	}

	adminToken := adminLogin(t, h)

	// Approval is admin only; the user token must not pass.
	w, _ = doJSON(t, h, http.MethodPatch,
		"/api/videos/"+jsonNumber(id)+"/approve", userToken, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("user approve status = %d, want 401", w.Code)
	}

	w, _ = doJSON(t, h, http.MethodPatch,
		"/api/videos/"+jsonNumber(id)+"/approve", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("approve status = %d, want 200", w.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/videos", nil))
	public = nil
	json.NewDecoder(rec.Body).Decode(&public)
	if len(public) != 1 || public[0]["videoId"] != "dQw4w9WgXcQ" {
		t.Errorf("public list after approval = %v", public)
	}

	// Approving an unknown id is a 404 with the standard envelope.
	w, body = doJSON(t, h, http.MethodPatch, "/api/videos/999/approve", adminToken, nil)
	if w.Code != http.StatusNotFound || body["error"] != "Video not found" {
		t.Errorf("unknown approve = %d %v", w.Code, body)
	}
}

// TestVideoUploadRequiresTitle checks a multipart video upload without a
// title is rejected before anything is stored, and succeeds once the
// title field is present.
func TestVideoUploadRequiresTitle(t *testing.T) {
	h := newTestHandler(t)

	w, body := doJSON(t, h, http.MethodPost, "/api/user/login", "",
		map[string]string{"email": "jo@example.org", "password": "pw"})
	if w.Code != http.StatusOK {
		t.Fatalf("user login status = %d, want 200", w.Code)
	}
	token := body["token"].(string)

	upload := func(withTitle bool) (*httptest.ResponseRecorder, map[string]interface{}) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreatePart(map[string][]string{
			"Content-Disposition": {`form-data; name="videoFile"; filename="sermon.mp4"`},
			"Content-Type":        {"video/mp4"},
		})
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		part.Write([]byte("mp4 bytes"))
		if withTitle {
			mw.WriteField("title", "Sunday Service")
		}
		mw.Close()

		r := httptest.NewRequest(http.MethodPost, "/api/videos/upload", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())
		r.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)

		var decoded map[string]interface{}
		json.NewDecoder(rec.Body).Decode(&decoded)
		return rec, decoded
	}

	w, body = upload(false)
	if w.Code != http.StatusBadRequest || body["error"] != "Title is required" {
		t.Fatalf("untitled upload = %d %v, want 400 Title is required", w.Code, body)
	}

	w, body = upload(true)
	if w.Code != http.StatusOK || body["success"] != true {
		t.Fatalf("titled upload = %d %v, want 200 success", w.Code, body)
	}
}

// TestAdminLoginRequestShape checks the login body uses the `user` key;
// the dashboard and API clients send {user, password}.
func TestAdminLoginRequestShape(t *testing.T) {
	h := newTestHandler(t)

	w, body := doJSON(t, h, http.MethodPost, "/api/admin/login", "",
		map[string]string{"user": "admin", "password": "opensesame"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if tok, _ := body["token"].(string); body["success"] != true || tok == "" {
		t.Errorf("unexpected login response: %v", body)
	}

	// The same credentials under a different key must not authenticate.
	w, _ = doJSON(t, h, http.MethodPost, "/api/admin/login", "",
		map[string]string{"username": "admin", "password": "opensesame"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong-key login status = %d, want 401", w.Code)
	}
}

// TestAdminLoginRejectsBadCredentials checks the 401 envelope.
func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	h := newTestHandler(t)

	w, body := doJSON(t, h, http.MethodPost, "/api/admin/login", "",
		map[string]string{"user": "admin", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body["error"] != "Invalid credentials" {
		t.Errorf("error = %q", body["error"])
	}
}

// TestHealthEndpoint checks the liveness probe answers without auth.
func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(t)

	w, body := doJSON(t, h, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["status"] != "Server is running" {
		t.Errorf("status field = %q", body["status"])
	}
}

func jsonNumber(id int64) string {
	return strconv.FormatInt(id, 10)
}
