package httpadapter

import "net/http"

// handleDashboard returns the summary dashboard: totals, invoice status
// breakdowns, the monthly series, expenses by service type and the top
// campaigns by revenue.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard.Summary(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, d)
}
