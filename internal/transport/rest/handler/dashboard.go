package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"safetyvitals/internal/service"
)

// DashboardHandler handles dashboard and benchmark endpoints
type DashboardHandler struct {
	dashboardSvc *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardSvc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Get handles GET /v1/surveys/{surveyId}/dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	snapshot, err := h.dashboardSvc.Dashboard(r.Context(), orgID, mux.Vars(r)["surveyId"])
	if err != nil {
		writeSurveyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// Benchmark handles GET /v1/benchmark
func (h *DashboardHandler) Benchmark(w http.ResponseWriter, r *http.Request) {
	orgID := orgFromContext(w, r)
	if orgID == "" {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.dashboardSvc.Benchmark(r.Context(), orgID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}
