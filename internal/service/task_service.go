package service

import (
	"errors"
	"focuspad/internal/domain"
	"focuspad/internal/store"
	"slices"
)

func (s *FocusService) CreateTask(in domain.NewTask) (domain.Task, error) {
	if err := in.Validate(); err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		Title:            in.Title,
		Description:      in.Description,
		Priority:         in.Priority,
		EstimatedMinutes: in.EstimatedMinutes,
		CreatedAt:        s.timestamp(),
	}

	return s.tasks.Create(task)
}

func (s *FocusService) GetTask(id int64) (domain.Task, error) {
	task, ok := s.tasks.Get(id)
	if !ok {
		return domain.Task{}, ErrNotFound
	}
	return task, nil
}

// ListTasks returns open tasks before completed ones, newest first within each group.
func (s *FocusService) ListTasks() ([]domain.Task, error) {
	tasks, err := s.tasks.List()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(tasks, func(a, b domain.Task) int {
		if a.Completed != b.Completed {
			if !a.Completed {
				return -1
			}
			return 1
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareIDsDesc(a.ID, b.ID)
	})

	return tasks, nil
}

func (s *FocusService) UpdateTask(id int64, patch domain.TaskPatch) (domain.Task, error) {
	if err := patch.Validate(); err != nil {
		return domain.Task{}, err
	}

	task, err := s.tasks.Update(id, patch)
	if err != nil {
		return domain.Task{}, mapStoreErr(err)
	}
	return task, nil
}

func (s *FocusService) DeleteTask(id int64) error {
	return mapStoreErr(s.tasks.Delete(id))
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func compareIDsDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
