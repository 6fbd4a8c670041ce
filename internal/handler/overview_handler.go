package handler

import (
	"net/http"
)

func (h *Handler) GetWeeklyOverview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	overview, err := h.overviewService.WeeklyOverview(r.Context(), query.Get("userId"), query.Get("weekStart"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainWeeklyOverviewToHTTP(overview))
}
