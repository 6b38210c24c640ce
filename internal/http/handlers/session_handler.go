package handlers

import (
	"focuspad/internal/http/dto"
	"net/http"
)

// POST /sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if err := dto.Decode(r.Body, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	in, err := req.ToDomain()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	session, err := h.service.CreateSession(in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewFocusSessionResponse(session))
}

// GET /sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.ListSessions()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response := make([]dto.FocusSessionResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, dto.NewFocusSessionResponse(session))
	}

	writeJSON(w, http.StatusOK, response)
}
