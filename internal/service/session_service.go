package service

import (
	"focuspad/internal/domain"
	"slices"
)

// CreateSession checks the referenced task before touching the session store,
// so a missing task never consumes a session id.
func (s *FocusService) CreateSession(in domain.NewSession) (domain.FocusSession, error) {
	if err := in.Validate(); err != nil {
		return domain.FocusSession{}, err
	}

	if in.TaskID != nil {
		if _, ok := s.tasks.Get(*in.TaskID); !ok {
			return domain.FocusSession{}, ErrNotFound
		}
	}

	session := domain.FocusSession{
		TaskID:    in.TaskID,
		Seconds:   in.Seconds,
		Note:      in.Note,
		CreatedAt: s.timestamp(),
	}

	return s.sessions.Create(session)
}

// ListSessions returns sessions newest first.
func (s *FocusService) ListSessions() ([]domain.FocusSession, error) {
	sessions, err := s.sessions.List()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(sessions, func(a, b domain.FocusSession) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return compareIDsDesc(a.ID, b.ID)
	})

	return sessions, nil
}
