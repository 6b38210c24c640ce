package dto

import (
	"focuspad/internal/domain"
	"focuspad/internal/optional"
	"time"
)

type CreateSessionRequest struct {
	TaskID  optional.Field[int64]  `json:"task_id"`
	Seconds optional.Field[int]    `json:"seconds"`
	Note    optional.Field[string] `json:"note"`
}

func (r CreateSessionRequest) ToDomain() (domain.NewSession, error) {
	seconds, ok := r.Seconds.Get()
	if !ok {
		var verr domain.ValidationError
		verr.Add("seconds", "missing", "Field required")
		return domain.NewSession{}, &verr
	}

	return domain.NewSession{
		TaskID:  r.TaskID.Ptr(),
		Seconds: seconds,
		Note:    r.Note.Ptr(),
	}, nil
}

type FocusSessionResponse struct {
	ID        int64     `json:"id"`
	TaskID    *int64    `json:"task_id"`
	Seconds   int       `json:"seconds"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFocusSessionResponse(session domain.FocusSession) FocusSessionResponse {
	return FocusSessionResponse{
		ID:        session.ID,
		TaskID:    session.TaskID,
		Seconds:   session.Seconds,
		Note:      session.Note,
		CreatedAt: session.CreatedAt.UTC(),
	}
}
