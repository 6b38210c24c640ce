package memory

import (
	"errors"
	"fmt"
	"focuspad/internal/domain"
	"focuspad/internal/store"
	"sync"
)

var (
	ErrNotInitialized = errors.New("store not initialized")
	ErrNotFound       = store.ErrNotFound
)

type TaskStore struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]domain.Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks: make(map[int64]domain.Task),
	}
}

// Create assigns the next id and stores the task. Id assignment and insertion
// happen under one lock so concurrent creates never share an id.
func (ts *TaskStore) Create(task domain.Task) (domain.Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.tasks == nil {
		return domain.Task{}, ErrNotInitialized
	}

	ts.nextID++
	task.ID = ts.nextID

	// completion is not definable by the caller on create
	task.Completed = false

	ts.tasks[task.ID] = task

	return task, nil
}

// Get returns a copy; callers cannot mutate the stored record through it.
func (ts *TaskStore) Get(id int64) (domain.Task, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	task, found := ts.tasks[id]
	return task, found
}

// List returns tasks in no particular order.
func (ts *TaskStore) List() ([]domain.Task, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	if ts.tasks == nil {
		return nil, ErrNotInitialized
	}

	tasks := make([]domain.Task, 0, len(ts.tasks))
	for _, t := range ts.tasks {
		tasks = append(tasks, t)
	}

	return tasks, nil
}

func (ts *TaskStore) Update(id int64, patch domain.TaskPatch) (domain.Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	task, ok := ts.tasks[id]
	if !ok {
		return domain.Task{}, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}

	updated := patch.Apply(task)
	ts.tasks[id] = updated

	return updated, nil
}

func (ts *TaskStore) Delete(id int64) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, ok := ts.tasks[id]; !ok {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	delete(ts.tasks, id)

	return nil
}

// Reset drops every task and restarts ids at 1.
func (ts *TaskStore) Reset() {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.tasks = make(map[int64]domain.Task)
	ts.nextID = 0
}
