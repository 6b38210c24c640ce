package dto

import (
	"focuspad/internal/domain"
	"focuspad/internal/optional"
	"time"
)

type CreateTaskRequest struct {
	Title            optional.Field[string]          `json:"title"`
	Description      optional.Field[string]          `json:"description"`
	Priority         optional.Field[domain.Priority] `json:"priority"`
	EstimatedMinutes optional.Field[int]             `json:"estimated_minutes"`
}

// ToDomain checks presence rules; value constraints are checked by domain.NewTask.Validate.
func (r CreateTaskRequest) ToDomain() (domain.NewTask, error) {
	var verr domain.ValidationError

	title, ok := r.Title.Get()
	if !ok {
		verr.Add("title", "missing", "Field required")
	}

	// only an absent key takes the default; "" is left for Validate to reject
	priority := domain.PriorityMedium
	if r.Priority.IsNull() {
		verr.Add("priority", "literal_error", "Input should be 'low', 'medium' or 'high'")
	} else if v, ok := r.Priority.Get(); ok {
		priority = v
	}

	if err := verr.Err(); err != nil {
		return domain.NewTask{}, err
	}

	return domain.NewTask{
		Title:            title,
		Description:      r.Description.Ptr(),
		Priority:         priority,
		EstimatedMinutes: r.EstimatedMinutes.Ptr(),
	}, nil
}

// UpdateTaskRequest keeps key presence so that omitted fields stay untouched.
type UpdateTaskRequest struct {
	Title            optional.Field[string]          `json:"title"`
	Description      optional.Field[string]          `json:"description"`
	Priority         optional.Field[domain.Priority] `json:"priority"`
	EstimatedMinutes optional.Field[int]             `json:"estimated_minutes"`
	Completed        optional.Field[bool]            `json:"completed"`
}

func (r UpdateTaskRequest) ToPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:            r.Title,
		Description:      r.Description,
		Priority:         r.Priority,
		EstimatedMinutes: r.EstimatedMinutes,
		Completed:        r.Completed,
	}
}

type TaskResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      *string   `json:"description"`
	Priority         string    `json:"priority"`
	EstimatedMinutes *int      `json:"estimated_minutes"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewTaskResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		Priority:         string(task.Priority),
		EstimatedMinutes: task.EstimatedMinutes,
		Completed:        task.Completed,
		CreatedAt:        task.CreatedAt.UTC(),
	}
}
