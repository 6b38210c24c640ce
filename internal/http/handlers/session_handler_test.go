package handlers_test

import (
	"net/http"
	"testing"

	"focuspad/internal/http/dto"
)

func TestPOST_Sessions_Created(t *testing.T) {
	app, _ := newApp(t)

	task := createTask(t, app, map[string]any{"title": "Study algorithms"})

	rr := sendJSON(t, app, http.MethodPost, "/sessions", map[string]any{
		"task_id": task.ID,
		"seconds": 1500,
		"note":    "Pomodoro",
	})
	expectStatus(t, rr, http.StatusCreated)

	session := decode[dto.FocusSessionResponse](t, rr)
	if session.Seconds != 1500 {
		t.Fatalf("seconds=%d, want 1500", session.Seconds)
	}
	if session.TaskID == nil || *session.TaskID != task.ID {
		t.Fatalf("task_id=%v, want %d", session.TaskID, task.ID)
	}
	if session.Note == nil || *session.Note != "Pomodoro" {
		t.Fatalf("note=%v, want Pomodoro", session.Note)
	}
}

func TestPOST_Sessions_UnknownTask_404(t *testing.T) {
	app, _ := newApp(t)

	rr := sendJSON(t, app, http.MethodPost, "/sessions", map[string]any{"task_id": 99, "seconds": 1200})
	expectStatus(t, rr, http.StatusNotFound)

	rr = sendJSON(t, app, http.MethodPost, "/sessions", map[string]any{"seconds": 1200})
	expectStatus(t, rr, http.StatusCreated)

	if session := decode[dto.FocusSessionResponse](t, rr); session.ID != 1 {
		t.Fatalf("id=%d, want 1", session.ID)
	}
}

func TestPOST_Sessions_Validation_422(t *testing.T) {
	app, _ := newApp(t)

	bodies := map[string]string{
		"missing seconds": `{"note": "x"}`,
		"too short":       `{"seconds": 59}`,
		"too long":        `{"seconds": 43201}`,
		"seconds as text": `{"seconds": "long"}`,
		"task id as text": `{"seconds": 600, "task_id": "one"}`,
	}

	for name, raw := range bodies {
		t.Run(name, func(t *testing.T) {
			expectStatus(t, send(t, app, http.MethodPost, "/sessions", raw), http.StatusUnprocessableEntity)
		})
	}
}

func TestGET_Sessions_NewestFirst(t *testing.T) {
	app, _ := newApp(t)

	expectStatus(t, sendJSON(t, app, http.MethodPost, "/sessions", map[string]any{"seconds": 600}), http.StatusCreated)
	expectStatus(t, sendJSON(t, app, http.MethodPost, "/sessions", map[string]any{"seconds": 900}), http.StatusCreated)

	rr := sendJSON(t, app, http.MethodGet, "/sessions", nil)
	expectStatus(t, rr, http.StatusOK)

	sessions := decode[[]dto.FocusSessionResponse](t, rr)
	if len(sessions) != 2 || sessions[0].Seconds != 900 || sessions[1].Seconds != 600 {
		t.Fatalf("sessions=%+v, want newest first", sessions)
	}
}
