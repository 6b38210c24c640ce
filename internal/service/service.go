package service

import (
	"focuspad/internal/store"
	"time"
)

// FocusService owns both stores for the lifetime of the process and is the
// single object every handler works through.
type FocusService struct {
	tasks    store.TaskStore
	sessions store.SessionStore
	now      func() time.Time
}

type Option func(*FocusService)

// WithClock replaces the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *FocusService) {
		s.now = now
	}
}

func New(tasks store.TaskStore, sessions store.SessionStore, opts ...Option) (*FocusService, error) {
	if tasks == nil {
		return nil, ErrStoreNil
	}
	if sessions == nil {
		return nil, ErrSessionStoreNil
	}

	s := &FocusService{
		tasks:    tasks,
		sessions: sessions,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Reset empties both stores and restarts their id counters.
func (s *FocusService) Reset() {
	s.tasks.Reset()
	s.sessions.Reset()
}

func (s *FocusService) timestamp() time.Time {
	return s.now().UTC()
}
