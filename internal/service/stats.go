package service

import (
	"focuspad/internal/domain"
	"math"
)

func (s *FocusService) Stats() (domain.Stats, error) {
	sessions, err := s.sessions.List()
	if err != nil {
		return domain.Stats{}, err
	}
	tasks, err := s.tasks.List()
	if err != nil {
		return domain.Stats{}, err
	}

	return Aggregate(sessions, tasks), nil
}

// Aggregate derives the summary from a snapshot of both stores.
func Aggregate(sessions []domain.FocusSession, tasks []domain.Task) domain.Stats {
	var stats domain.Stats

	totalSeconds := 0
	longestSeconds := 0
	days := make(map[string]struct{})
	for _, session := range sessions {
		totalSeconds += session.Seconds
		longestSeconds = max(longestSeconds, session.Seconds)
		days[session.CreatedAt.UTC().Format("2006-01-02")] = struct{}{}
	}

	stats.TotalSessions = len(sessions)
	stats.TotalFocusMinutes = totalSeconds / 60
	stats.FocusDays = len(days)
	if stats.TotalSessions > 0 {
		stats.AverageSessionMinutes = roundTenth(float64(totalSeconds) / 60 / float64(stats.TotalSessions))
		stats.LongestSessionMinutes = roundTenth(float64(longestSeconds) / 60)
	}

	for _, task := range tasks {
		if task.Completed {
			stats.CompletedTasks++
		} else {
			stats.ActiveTasks++
		}
	}

	return stats
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
