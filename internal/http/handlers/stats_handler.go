package handlers

import (
	"focuspad/internal/http/dto"
	"net/http"
)

// GET /stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewStatsResponse(stats))
}
