package handlers

import (
	"errors"
	"net/http"
	"time"

	"church-backend/internal/models"
	"church-backend/internal/services"
	"church-backend/internal/store"
)

// VideoHandler serves the video gallery: public listing, link submission,
// file upload, and the admin moderation operations.
type VideoHandler struct {
	Videos store.VideoRepository
	Media  *services.MediaService
}

func NewVideoHandler(videos store.VideoRepository, media *services.MediaService) *VideoHandler {
	return &VideoHandler{Videos: videos, Media: media}
}

// ListApproved handles GET /api/videos (public). Only approved videos are
// visible outside the dashboard.
func (h *VideoHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	videos, err := h.Videos.GetApproved(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load videos")
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

// ListAll handles GET /api/admin/videos (admin), pending included.
func (h *VideoHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	videos, err := h.Videos.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load videos")
		return
	}
	writeJSON(w, http.StatusOK, videos)
}

// Submit handles POST /api/videos: a link submission (YouTube or other
// external URL). The video starts out pending.
func (h *VideoHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		Description string `json:"description"`
		Uploader    string `json:"uploader"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.URL == "" {
		writeError(w, http.StatusBadRequest, "Title and URL are required")
		return
	}

	if req.Uploader == "" {
		req.Uploader = "Anonymous"
	}

	video := &models.Video{
		ID:          models.NewID(),
		Title:       req.Title,
		URL:         req.URL,
		VideoID:     models.ExtractYouTubeID(req.URL),
		Description: req.Description,
		Uploader:    req.Uploader,
		Timestamp:   models.DisplayTime(time.Now()),
		Approved:    false,
	}

	if err := h.Videos.Create(r.Context(), video); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save video")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Video submitted for approval",
		"id":      video.ID,
	})
}

// Upload handles POST /api/videos/upload: a multipart file upload. The
// file is validated and written before the pending record is created.
func (h *VideoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	stored, err := h.Media.SaveUpload(w, r, services.VideoUpload)
	if err != nil {
		if services.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save video file")
		return
	}

	title := r.FormValue("title")
	uploader := r.FormValue("uploader")
	if uploader == "" {
		uploader = "Anonymous"
	}

	video := &models.Video{
		ID:          models.NewID(),
		Title:       title,
		Description: r.FormValue("description"),
		Uploader:    uploader,
		Timestamp:   models.DisplayTime(time.Now()),
		Approved:    false,
		FilePath:    stored.RelPath,
		FileSize:    stored.Size,
		FileName:    stored.Name,
		IsLocalFile: true,
	}

	if err := h.Videos.Create(r.Context(), video); err != nil {
		h.Media.Remove(stored.RelPath)
		writeError(w, http.StatusInternalServerError, "Failed to save video")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Video uploaded for approval",
		"id":       video.ID,
		"filePath": stored.RelPath,
	})
}

// Approve handles PATCH /api/videos/{id}/approve (admin). Approving an
// already approved video is a no-op success.
func (h *VideoHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid video id")
		return
	}

	if err := h.Videos.UpdateApproval(r.Context(), id, true); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Video not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to approve video")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /api/videos/{id} (admin). The backing file,
// if any, is removed best effort after the record goes.
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid video id")
		return
	}

	video, err := h.Videos.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Video not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete video")
		return
	}

	if err := h.Videos.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Video not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete video")
		return
	}

	if video.IsLocalFile {
		h.Media.Remove(video.FilePath)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
