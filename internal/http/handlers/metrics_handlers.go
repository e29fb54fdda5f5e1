package handlers

import "net/http"

// GetDashboardMetricsHandler godoc
// @Summary Catalog dashboard metrics
// @Description Per-category counts pair the live catalog membership with the static count shown on the category tile, so drift between the two is visible.
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	metrics, err := metricsRepo.GetDashboardMetrics()
	if err != nil {
		http.Error(w, "could not compute metrics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
