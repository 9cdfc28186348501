package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"church-backend/internal/services"
	"church-backend/internal/store"
)

// MessageHandler serves the contact-form endpoints: public submission plus
// the admin inbox operations.
type MessageHandler struct {
	Contact  *services.ContactService
	Messages store.MessageRepository
}

func NewMessageHandler(contact *services.ContactService, messages store.MessageRepository) *MessageHandler {
	return &MessageHandler{Contact: contact, Messages: messages}
}

// Submit handles POST /api/contact.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: name, email, subject, message")
		return
	}

	msg, err := h.Contact.Submit(r.Context(), req.Name, req.Email, req.Phone, req.Subject, req.Message)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save message")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Message sent successfully",
		"id":      msg.ID,
	})
}

// List handles GET /api/messages (admin). Messages come back in insertion
// order; the dashboard shows newest first by reversing client-side.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.Messages.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load messages")
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// MarkRead handles PATCH /api/messages/{id} (admin).
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := h.Messages.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Message not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update message")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /api/messages/{id} (admin).
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := h.Messages.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Message not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete message")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// pathID extracts the {id} route variable.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
