package handlers

import (
	"focuspad/internal/http/dto"
	"net/http"
)

// POST /tasks
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if err := dto.Decode(r.Body, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	in, err := req.ToDomain()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	task, err := h.service.CreateTask(in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewTaskResponse(task))
}

// GET /tasks/{id}
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	task, err := h.service.GetTask(id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaskResponse(task))
}

// GET /tasks
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListTasks()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response := make([]dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, dto.NewTaskResponse(task))
	}

	writeJSON(w, http.StatusOK, response)
}

// PATCH /tasks/{id}
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if err := dto.Decode(r.Body, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	task, err := h.service.UpdateTask(id, req.ToPatch())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaskResponse(task))
}

// DELETE /tasks/{id}
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.service.DeleteTask(id); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
