package domain

import (
	"time"

	"focuspad/internal/optional"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 1000
	MinEstimatedMinutes  = 1
	MaxEstimatedMinutes  = 720
)

type Task struct {
	ID               int64
	Title            string
	Description      *string
	Priority         Priority
	EstimatedMinutes *int

	Completed bool

	CreatedAt time.Time
}

// NewTask is the input to task creation.
type NewTask struct {
	Title            string
	Description      *string
	Priority         Priority
	EstimatedMinutes *int
}

// TaskPatch carries the fields of a partial update. Absent fields are left
// alone; a null Description or EstimatedMinutes clears the stored value.
type TaskPatch struct {
	Title            optional.Field[string]
	Description      optional.Field[string]
	Priority         optional.Field[Priority]
	EstimatedMinutes optional.Field[int]
	Completed        optional.Field[bool]
}

// Apply returns a copy of t with the patch applied. ID and CreatedAt never change.
func (p TaskPatch) Apply(t Task) Task {
	if v, ok := p.Title.Get(); ok {
		t.Title = v
	}
	if p.Description.IsSet() {
		t.Description = p.Description.Ptr()
	}
	if v, ok := p.Priority.Get(); ok {
		t.Priority = v
	}
	if p.EstimatedMinutes.IsSet() {
		t.EstimatedMinutes = p.EstimatedMinutes.Ptr()
	}
	if v, ok := p.Completed.Get(); ok {
		t.Completed = v
	}
	return t
}
