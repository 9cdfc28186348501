package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"church-backend/internal/models"
	"church-backend/internal/services"
	"church-backend/internal/store"
)

// GalleryIconHandler serves the categorised gallery icons. These routes
// are only mounted when the relational backend is active.
type GalleryIconHandler struct {
	Icons store.GalleryIconRepository
	Media *services.MediaService
}

func NewGalleryIconHandler(icons store.GalleryIconRepository, media *services.MediaService) *GalleryIconHandler {
	return &GalleryIconHandler{Icons: icons, Media: media}
}

// ListApproved handles GET /api/gallery-icons (public).
func (h *GalleryIconHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	icons, err := h.Icons.GetApproved(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load gallery icons")
		return
	}
	writeJSON(w, http.StatusOK, icons)
}

// ByCategory handles GET /api/gallery-icons/category/{category} (public).
func (h *GalleryIconHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	icons, err := h.Icons.GetByCategory(r.Context(), mux.Vars(r)["category"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load gallery icons")
		return
	}
	writeJSON(w, http.StatusOK, icons)
}

// Featured handles GET /api/gallery-icons/featured (public).
func (h *GalleryIconHandler) Featured(w http.ResponseWriter, r *http.Request) {
	icons, err := h.Icons.GetFeatured(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load gallery icons")
		return
	}
	writeJSON(w, http.StatusOK, icons)
}

// Get handles GET /api/gallery-icons/{id} (public). Each fetch counts as
// a view.
func (h *GalleryIconHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid icon id")
		return
	}

	icon, err := h.Icons.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Gallery icon not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load gallery icon")
		return
	}

	if err := h.Icons.IncrementViews(r.Context(), id); err == nil {
		icon.Views++
	}

	writeJSON(w, http.StatusOK, icon)
}

// ListAll handles GET /api/admin/gallery-icons (admin).
func (h *GalleryIconHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	icons, err := h.Icons.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load gallery icons")
		return
	}
	writeJSON(w, http.StatusOK, icons)
}

// Submit handles POST /api/gallery-icons (admin): a metadata-only
// submission referencing an already hosted image.
func (h *GalleryIconHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		IconPath    string `json:"iconPath"`
		Uploader    string `json:"uploader"`
		Featured    bool   `json:"featured"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	if req.Category == "" {
		req.Category = models.DefaultIconCategory
	}
	if req.Uploader == "" {
		req.Uploader = "Anonymous"
	}

	icon := &models.GalleryIcon{
		ID:          models.NewID(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IconPath:    req.IconPath,
		Uploader:    req.Uploader,
		Featured:    req.Featured,
		Timestamp:   models.DisplayTime(time.Now()),
		Approved:    false,
	}

	if err := h.Icons.Create(r.Context(), icon); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save gallery icon")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Gallery icon submitted for approval",
		"id":      icon.ID,
	})
}

// Upload handles POST /api/gallery-icons/upload (admin): a multipart
// image upload.
func (h *GalleryIconHandler) Upload(w http.ResponseWriter, r *http.Request) {
	stored, err := h.Media.SaveUpload(w, r, services.IconUpload)
	if err != nil {
		if services.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save icon file")
		return
	}

	title := r.FormValue("title")
	featured := r.FormValue("featured") == "true"
	category := r.FormValue("category")
	if category == "" {
		category = models.DefaultIconCategory
	}
	uploader := r.FormValue("uploader")
	if uploader == "" {
		uploader = "Anonymous"
	}

	icon := &models.GalleryIcon{
		ID:          models.NewID(),
		Title:       title,
		Description: r.FormValue("description"),
		Category:    category,
		IconPath:    stored.RelPath,
		FileSize:    stored.Size,
		FileName:    stored.Name,
		MimeType:    stored.MIME,
		Uploader:    uploader,
		Featured:    featured,
		Timestamp:   models.DisplayTime(time.Now()),
		Approved:    false,
		IsLocalFile: true,
	}

	if err := h.Icons.Create(r.Context(), icon); err != nil {
		h.Media.Remove(stored.RelPath)
		writeError(w, http.StatusInternalServerError, "Failed to save gallery icon")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Gallery icon uploaded for approval",
		"id":       icon.ID,
		"filePath": stored.RelPath,
	})
}

// Approve handles PATCH /api/gallery-icons/{id}/approve (admin).
func (h *GalleryIconHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid icon id")
		return
	}

	if err := h.Icons.UpdateApproval(r.Context(), id, true); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Gallery icon not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to approve gallery icon")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// SetFeatured handles PATCH /api/gallery-icons/{id}/featured (admin),
// toggling the featured flag to the value in the body.
func (h *GalleryIconHandler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid icon id")
		return
	}

	var req struct {
		Featured bool `json:"featured"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Icons.UpdateFeatured(r.Context(), id, req.Featured); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Gallery icon not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update gallery icon")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"featured": req.Featured,
	})
}

// Delete handles DELETE /api/gallery-icons/{id} (admin).
func (h *GalleryIconHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid icon id")
		return
	}

	icon, err := h.Icons.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Gallery icon not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete gallery icon")
		return
	}

	if err := h.Icons.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Gallery icon not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete gallery icon")
		return
	}

	if icon.IsLocalFile {
		h.Media.Remove(icon.IconPath)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
