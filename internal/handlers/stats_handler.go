package handlers

import (
	"net/http"

	"church-backend/internal/store"
)

// StatsHandler serves the dashboard counters.
type StatsHandler struct {
	Stats store.StatsProvider
}

func NewStatsHandler(stats store.StatsProvider) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

// Get handles GET /api/stats (admin).
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Statistics(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
