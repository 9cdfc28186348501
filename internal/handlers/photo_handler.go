package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"church-backend/internal/models"
	"church-backend/internal/services"
	"church-backend/internal/store"
)

// PhotoHandler serves the photo gallery and its moderation operations.
type PhotoHandler struct {
	Photos store.PhotoRepository
	Media  *services.MediaService
}

func NewPhotoHandler(photos store.PhotoRepository, media *services.MediaService) *PhotoHandler {
	return &PhotoHandler{Photos: photos, Media: media}
}

// ListApproved handles GET /api/photos (public).
func (h *PhotoHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	photos, err := h.Photos.GetApproved(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load photos")
		return
	}
	writeJSON(w, http.StatusOK, photos)
}

// ListAll handles GET /api/admin/photos (admin).
func (h *PhotoHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	photos, err := h.Photos.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load photos")
		return
	}
	writeJSON(w, http.StatusOK, photos)
}

// Submit handles POST /api/photos (admin): a JSON submission carrying the
// image as an inline base64 payload.
func (h *PhotoHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Uploader    string `json:"uploader"`
		Data        string `json:"data"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Data == "" {
		writeError(w, http.StatusBadRequest, "Name and data are required")
		return
	}

	if req.Uploader == "" {
		req.Uploader = "Anonymous"
	}

	photo := &models.Photo{
		ID:          models.NewID(),
		Name:        req.Name,
		Description: req.Description,
		Uploader:    req.Uploader,
		Timestamp:   models.DisplayTime(time.Now()),
		Approved:    false,
		Data:        req.Data,
	}

	if err := h.Photos.Create(r.Context(), photo); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Photo submitted for approval",
		"id":      photo.ID,
	})
}

// Upload handles POST /api/photos/upload: a multipart file upload. The
// display name defaults to the original filename without its extension.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	stored, err := h.Media.SaveUpload(w, r, services.PhotoUpload)
	if err != nil {
		if services.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save photo file")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = strings.TrimSuffix(stored.OriginalName, filepath.Ext(stored.OriginalName))
	}
	uploader := r.FormValue("uploader")
	if uploader == "" {
		uploader = "Anonymous"
	}

	photo := &models.Photo{
		ID:          models.NewID(),
		Name:        name,
		Description: r.FormValue("description"),
		Uploader:    uploader,
		Timestamp:   models.DisplayTime(time.Now()),
		Approved:    false,
		FilePath:    stored.RelPath,
		FileSize:    stored.Size,
		FileName:    stored.Name,
		IsLocalFile: true,
	}

	if err := h.Photos.Create(r.Context(), photo); err != nil {
		h.Media.Remove(stored.RelPath)
		writeError(w, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Photo uploaded for approval",
		"id":       photo.ID,
		"filePath": stored.RelPath,
	})
}

// Approve handles PATCH /api/photos/{id}/approve (admin).
func (h *PhotoHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid photo id")
		return
	}

	if err := h.Photos.UpdateApproval(r.Context(), id, true); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to approve photo")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /api/photos/{id} (admin).
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid photo id")
		return
	}

	photo, err := h.Photos.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	if err := h.Photos.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Photo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete photo")
		return
	}

	if photo.IsLocalFile {
		h.Media.Remove(photo.FilePath)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
