package rest

import (
	"net/http"

	"toolroom-backend/internal/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats handles GET /api/dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// Overdue handles GET /api/dashboard/overdue
func (h *DashboardHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	tools, err := h.svc.GetOverdueTools(r.Context(), 10)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tools)
}

// Recent handles GET /api/dashboard/recent
func (h *DashboardHandler) Recent(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.GetRecentActivity(r.Context(), 10)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
