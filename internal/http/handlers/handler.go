package handlers

import (
	"focuspad/internal/domain"
	"focuspad/internal/http/dto"
	"log/slog"
	"net/http"
)

type FocusService interface {
	CreateTask(in domain.NewTask) (domain.Task, error)
	GetTask(id int64) (domain.Task, error)
	ListTasks() ([]domain.Task, error)
	UpdateTask(id int64, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(id int64) error

	CreateSession(in domain.NewSession) (domain.FocusSession, error)
	ListSessions() ([]domain.FocusSession, error)

	Stats() (domain.Stats, error)
}

type Handler struct {
	service FocusService
	logger  *slog.Logger
}

func New(service FocusService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// GET /ping
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.PingResponse{Msg: "pong"})
}
