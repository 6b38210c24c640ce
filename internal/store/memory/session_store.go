package memory

import (
	"focuspad/internal/domain"
	"sync"
)

type SessionStore struct {
	mu       sync.RWMutex
	nextID   int64
	sessions map[int64]domain.FocusSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]domain.FocusSession),
	}
}

func (ss *SessionStore) Create(session domain.FocusSession) (domain.FocusSession, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	if ss.sessions == nil {
		return domain.FocusSession{}, ErrNotInitialized
	}

	ss.nextID++
	session.ID = ss.nextID
	ss.sessions[session.ID] = session

	return session, nil
}

func (ss *SessionStore) List() ([]domain.FocusSession, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	if ss.sessions == nil {
		return nil, ErrNotInitialized
	}

	sessions := make([]domain.FocusSession, 0, len(ss.sessions))
	for _, s := range ss.sessions {
		sessions = append(sessions, s)
	}

	return sessions, nil
}

func (ss *SessionStore) Reset() {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.sessions = make(map[int64]domain.FocusSession)
	ss.nextID = 0
}
