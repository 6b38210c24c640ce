package domain

import "time"

const (
	MinSessionSeconds = 60
	MaxSessionSeconds = 12 * 60 * 60
	MaxNoteLength     = 240
)

// FocusSession is immutable once stored.
type FocusSession struct {
	ID        int64
	TaskID    *int64
	Seconds   int
	Note      *string
	CreatedAt time.Time
}

type NewSession struct {
	TaskID  *int64
	Seconds int
	Note    *string
}
