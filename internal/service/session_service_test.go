package service

import (
	"errors"
	"testing"
	"time"

	"focuspad/internal/domain"
)

func TestCreateSession_WithTask(t *testing.T) {
	svc := newTestService(t)

	task, _ := svc.CreateTask(newTask("Study algorithms"))
	note := "Pomodoro"

	session, err := svc.CreateSession(domain.NewSession{TaskID: &task.ID, Seconds: 1500, Note: &note})
	if err != nil {
		t.Fatalf("CreateSession() err=%v", err)
	}
	if session.ID != 1 {
		t.Fatalf("id=%d, want 1", session.ID)
	}
	if session.TaskID == nil || *session.TaskID != task.ID {
		t.Fatalf("task_id=%v, want %d", session.TaskID, task.ID)
	}
	if session.Note == nil || *session.Note != note {
		t.Fatalf("note=%v, want %q", session.Note, note)
	}
}

func TestCreateSession_UnknownTaskDoesNotConsumeID(t *testing.T) {
	svc := newTestService(t)

	missing := int64(99)
	_, err := svc.CreateSession(domain.NewSession{TaskID: &missing, Seconds: 1200})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("CreateSession() err=%v, want %v", err, ErrNotFound)
	}

	session, err := svc.CreateSession(domain.NewSession{Seconds: 1200})
	if err != nil {
		t.Fatalf("CreateSession() err=%v", err)
	}
	if session.ID != 1 {
		t.Fatalf("id=%d, want 1", session.ID)
	}
}

func TestCreateSession_DeletedTaskRejected(t *testing.T) {
	svc := newTestService(t)

	task, _ := svc.CreateTask(newTask("gone"))
	_ = svc.DeleteTask(task.ID)

	_, err := svc.CreateSession(domain.NewSession{TaskID: &task.ID, Seconds: 600})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("CreateSession() err=%v, want %v", err, ErrNotFound)
	}
}

func TestCreateSession_Invalid(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateSession(domain.NewSession{Seconds: 30})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CreateSession() err=%v, want *domain.ValidationError", err)
	}
}

func TestListSessions_NewestFirst(t *testing.T) {
	svc := newTestService(t, WithClock(stepClock(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))))

	first, _ := svc.CreateSession(domain.NewSession{Seconds: 600})
	second, _ := svc.CreateSession(domain.NewSession{Seconds: 900})

	sessions, err := svc.ListSessions()
	if err != nil {
		t.Fatalf("ListSessions() err=%v", err)
	}
	if len(sessions) != 2 || sessions[0].ID != second.ID || sessions[1].ID != first.ID {
		t.Fatalf("order=%+v, want [%d %d]", sessions, second.ID, first.ID)
	}
}
