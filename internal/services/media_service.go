package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// UploadKind describes one class of media upload: where files land, what
// names they get, and what the validation gates are.
type UploadKind struct {
	// Kind is the human-readable noun used in error messages ("video").
	Kind string
	// Field is the multipart form field carrying the file.
	Field string
	// Subdir under the media root ("videos", "photos", "icons").
	Subdir string
	// Prefix of generated filenames ("video-").
	Prefix string
	// MaxBytes is the payload ceiling.
	MaxBytes int64
	// AllowedMIMEs is the content-type allow-list.
	AllowedMIMEs []string
	// RequireTitle rejects uploads without a title form field. Photos are
	// exempt, their display name derives from the filename.
	RequireTitle bool
}

var (
	VideoUpload = UploadKind{
		Kind:     "video",
		Field:    "videoFile",
		Subdir:   "videos",
		Prefix:   "video-",
		MaxBytes: 500 << 20,
		AllowedMIMEs: []string{
			"video/mp4", "video/mpeg", "video/quicktime", "video/x-msvideo",
		},
		RequireTitle: true,
	}

	PhotoUpload = UploadKind{
		Kind:     "photo",
		Field:    "photoFile",
		Subdir:   "photos",
		Prefix:   "photo-",
		MaxBytes: 10 << 20,
		AllowedMIMEs: []string{
			"image/jpeg", "image/png", "image/gif", "image/webp",
		},
	}

	IconUpload = UploadKind{
		Kind:     "icon",
		Field:    "iconFile",
		Subdir:   "icons",
		Prefix:   "icon-",
		MaxBytes: 5 << 20,
		AllowedMIMEs: []string{
			"image/jpeg", "image/png", "image/gif", "image/webp", "image/svg+xml",
		},
		RequireTitle: true,
	}
)

// ValidationError marks a rejection the client caused; handlers turn it
// into a 400 with the message verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a client-side rejection.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoredFile describes an upload that made it to disk.
type StoredFile struct {
	// RelPath is the server-relative path recorded in metadata and served
	// back to browsers ("media/videos/video-...mp4").
	RelPath string
	// Name is the generated filename.
	Name string
	// OriginalName is the filename the client sent.
	OriginalName string
	// Size in bytes.
	Size int64
	// MIME is the declared content type of the part.
	MIME string
}

// MediaService owns the media directory tree and the upload validation
// pipeline. Validation happens strictly before any disk write.
type MediaService struct {
	// Root is the media directory ("media"), containing one subdirectory
	// per upload kind.
	Root string
}

// NewMediaService creates the per-kind directories up front, like the old
// server did at startup.
func NewMediaService(root string) (*MediaService, error) {
	for _, kind := range []UploadKind{VideoUpload, PhotoUpload, IconUpload} {
		if err := os.MkdirAll(filepath.Join(root, kind.Subdir), 0755); err != nil {
			return nil, fmt.Errorf("failed to create media directory: %w", err)
		}
	}
	return &MediaService{Root: root}, nil
}

// SaveUpload validates the multipart request against kind and, only when
// every gate passes, streams the file to its generated name.
func (s *MediaService) SaveUpload(w http.ResponseWriter, r *http.Request, kind UploadKind) (*StoredFile, error) {
	// Hard ceiling on the whole request body; the slack covers the other
	// form fields and multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, kind.MaxBytes+(1<<20))

	if r.ContentLength > kind.MaxBytes+(1<<20) {
		return nil, validationErrorf("File exceeds the %dMB limit", kind.MaxBytes>>20)
	}

	// ParseMultipartForm spools parts over its memory threshold to the OS
	// temp dir; nothing reaches the media tree until every check below has
	// passed, and the spool is cleaned up with the request.
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, validationErrorf("File exceeds the %dMB limit", kind.MaxBytes>>20)
		}
		return nil, validationErrorf("Invalid multipart request")
	}

	file, header, err := r.FormFile(kind.Field)
	if err != nil {
		return nil, validationErrorf("No %s file provided", kind.Kind)
	}
	defer file.Close()

	if header.Size > kind.MaxBytes {
		return nil, validationErrorf("File exceeds the %dMB limit", kind.MaxBytes>>20)
	}

	mime := header.Header.Get("Content-Type")
	if !mimeAllowed(mime, kind.AllowedMIMEs) {
		if kind.Kind == "video" {
			return nil, validationErrorf("Only video files are allowed")
		}
		return nil, validationErrorf("Only image files are allowed")
	}

	if kind.RequireTitle && r.FormValue("title") == "" {
		return nil, validationErrorf("Title is required")
	}

	name := generateFilename(kind.Prefix, header.Filename)
	dest := filepath.Join(s.Root, kind.Subdir, name)

	dst, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		// Partial writes are not left behind.
		dst.Close()
		os.Remove(dest)
		return nil, fmt.Errorf("failed to save media file: %w", err)
	}

	return &StoredFile{
		RelPath:      filepath.ToSlash(filepath.Join(filepath.Base(s.Root), kind.Subdir, name)),
		Name:         name,
		OriginalName: header.Filename,
		Size:         size,
		MIME:         mime,
	}, nil
}

// Remove unlinks the stored file for a deleted item. Best effort: a file
// already gone is not an error.
func (s *MediaService) Remove(relPath string) {
	if relPath == "" {
		return
	}
	// relPath starts with the media root segment ("media/...").
	full := filepath.Join(filepath.Dir(s.Root), filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[Media] Failed to remove %s: %v", relPath, err)
		}
	}
}

func mimeAllowed(mime string, allowed []string) bool {
	for _, m := range allowed {
		if mime == m {
			return true
		}
	}
	return false
}

// generateFilename builds "<prefix><unix-ms>-<9 random digits><ext>",
// collision-resistant and compatible with existing media directories.
func generateFilename(prefix, original string) string {
	return fmt.Sprintf("%s%d-%09d%s",
		prefix, time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(original))
}
