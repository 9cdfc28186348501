package handlers

import (
	"net/http"

	"church-backend/internal/health"
)

// HealthHandler exposes the liveness probe.
type HealthHandler struct {
	Checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{Checker: checker}
}

// Get handles GET /api/health.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()
	code := http.StatusOK
	if status.Database != nil && status.Database.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}
