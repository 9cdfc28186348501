package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func newMediaService(t *testing.T) *MediaService {
	t.Helper()
	svc, err := NewMediaService(filepath.Join(t.TempDir(), "media"))
	if err != nil {
		t.Fatalf("NewMediaService: %v", err)
	}
	return svc
}

// multipartRequest builds an upload request with a single file part plus
// any extra text fields, given as alternating name, value pairs.
func multipartRequest(t *testing.T, field, filename, mime string, content []byte, fields ...string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="` + field + `"; filename="` + filename + `"`},
		"Content-Type":        {mime},
	})
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	part.Write(content)
	for i := 0; i+1 < len(fields); i += 2 {
		w.WriteField(fields[i], fields[i+1])
	}
	w.Close()

	r := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	r.Header.Set("Content-Type", w.FormDataContentType())
	return r
}

// TestSaveUploadSuccess checks a valid photo lands on disk under the
// generated name and the returned metadata matches.
func TestSaveUploadSuccess(t *testing.T) {
	svc := newMediaService(t)
	content := []byte("fake jpeg bytes")
	r := multipartRequest(t, PhotoUpload.Field, "picnic.jpg", "image/jpeg", content)

	stored, err := svc.SaveUpload(httptest.NewRecorder(), r, PhotoUpload)
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}

	namePattern := regexp.MustCompile(`^photo-\d{13}-\d{9}\.jpg$`)
	if !namePattern.MatchString(stored.Name) {
		t.Errorf("generated name %q does not match photo-<ms>-<rand>.jpg", stored.Name)
	}
	if !strings.HasPrefix(stored.RelPath, "media/photos/") {
		t.Errorf("RelPath = %q, want media/photos/ prefix", stored.RelPath)
	}
	if stored.Size != int64(len(content)) {
		t.Errorf("Size = %d, want %d", stored.Size, len(content))
	}
	if stored.OriginalName != "picnic.jpg" {
		t.Errorf("OriginalName = %q, want picnic.jpg", stored.OriginalName)
	}

	data, err := os.ReadFile(filepath.Join(svc.Root, "photos", stored.Name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Error("stored file content differs from upload")
	}
}

// TestSaveUploadRejectsBadMIME checks the allow-list runs before any disk
// write, leaving the media directory empty on rejection.
func TestSaveUploadRejectsBadMIME(t *testing.T) {
	svc := newMediaService(t)
	r := multipartRequest(t, PhotoUpload.Field, "evil.exe", "application/octet-stream", []byte("mz"))

	_, err := svc.SaveUpload(httptest.NewRecorder(), r, PhotoUpload)
	if !IsValidationError(err) {
		t.Fatalf("SaveUpload = %v, want validation error", err)
	}

	assertDirEmpty(t, filepath.Join(svc.Root, "photos"))
}

// TestSaveUploadRejectsMissingFile checks a request without the expected
// field is a client error.
func TestSaveUploadRejectsMissingFile(t *testing.T) {
	svc := newMediaService(t)
	r := multipartRequest(t, "wrongField", "a.jpg", "image/jpeg", []byte("x"))

	_, err := svc.SaveUpload(httptest.NewRecorder(), r, PhotoUpload)
	if !IsValidationError(err) {
		t.Fatalf("SaveUpload = %v, want validation error", err)
	}
	if !strings.Contains(err.Error(), "No photo file") {
		t.Errorf("error = %q, want missing-file message", err)
	}
}

// TestSaveUploadRejectsOversize checks the size ceiling using the icon
// kind, whose 5MB limit is practical to exceed in a test.
func TestSaveUploadRejectsOversize(t *testing.T) {
	svc := newMediaService(t)
	big := bytes.Repeat([]byte("a"), int(IconUpload.MaxBytes)+1)
	r := multipartRequest(t, IconUpload.Field, "huge.png", "image/png", big)

	_, err := svc.SaveUpload(httptest.NewRecorder(), r, IconUpload)
	if !IsValidationError(err) {
		t.Fatalf("SaveUpload = %v, want validation error", err)
	}

	assertDirEmpty(t, filepath.Join(svc.Root, "icons"))
}

// TestSaveUploadRequiresTitle checks the kinds that carry a title form
// field reject an upload without one before anything lands on disk, while
// photos still accept a bare file.
func TestSaveUploadRequiresTitle(t *testing.T) {
	svc := newMediaService(t)

	for _, kind := range []UploadKind{VideoUpload, IconUpload} {
		r := multipartRequest(t, kind.Field, "untitled.dat", kind.AllowedMIMEs[0], []byte("data"))
		_, err := svc.SaveUpload(httptest.NewRecorder(), r, kind)
		if !IsValidationError(err) {
			t.Fatalf("%s upload without title: err = %v, want validation error", kind.Kind, err)
		}
		if err.Error() != "Title is required" {
			t.Errorf("%s upload without title: error = %q, want Title is required", kind.Kind, err)
		}
		assertDirEmpty(t, filepath.Join(svc.Root, kind.Subdir))
	}

	r := multipartRequest(t, PhotoUpload.Field, "bare.jpg", "image/jpeg", []byte("jpg"))
	if _, err := svc.SaveUpload(httptest.NewRecorder(), r, PhotoUpload); err != nil {
		t.Fatalf("photo upload without title: %v", err)
	}
}

// TestRemove checks deletion is best effort: removing a stored file works
// and removing it again is silent.
func TestRemove(t *testing.T) {
	svc := newMediaService(t)
	r := multipartRequest(t, VideoUpload.Field, "sermon.mp4", "video/mp4", []byte("mp4"), "title", "Sunday Sermon")

	stored, err := svc.SaveUpload(httptest.NewRecorder(), r, VideoUpload)
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}

	svc.Remove(stored.RelPath)
	if _, err := os.Stat(filepath.Join(svc.Root, "videos", stored.Name)); !os.IsNotExist(err) {
		t.Error("file still present after Remove")
	}

	// Second removal of the same path must not panic or log spuriously.
	svc.Remove(stored.RelPath)
	svc.Remove("")
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("%s contains %d files, want none", dir, len(entries))
	}
}
