package store

import (
	"errors"
	"focuspad/internal/domain"
)

var ErrNotFound = errors.New("record not found")

type TaskStore interface {
	Create(t domain.Task) (domain.Task, error)
	Get(id int64) (domain.Task, bool)
	List() ([]domain.Task, error)
	Update(id int64, patch domain.TaskPatch) (domain.Task, error)
	Delete(id int64) error
	Reset()
}

type SessionStore interface {
	Create(s domain.FocusSession) (domain.FocusSession, error)
	List() ([]domain.FocusSession, error)
	Reset()
}
