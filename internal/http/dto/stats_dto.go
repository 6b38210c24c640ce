package dto

import (
	"focuspad/internal/domain"
	"strconv"
)

// Minutes is written with exactly one decimal place, so 25 encodes as 25.0.
type Minutes float64

func (m Minutes) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(m), 'f', 1, 64), nil
}

type StatsResponse struct {
	TotalSessions         int     `json:"total_sessions"`
	TotalFocusMinutes     int     `json:"total_focus_minutes"`
	AverageSessionMinutes Minutes `json:"average_session_minutes"`
	LongestSessionMinutes Minutes `json:"longest_session_minutes"`
	FocusDays             int     `json:"focus_days"`
	CompletedTasks        int     `json:"completed_tasks"`
	ActiveTasks           int     `json:"active_tasks"`
}

func NewStatsResponse(s domain.Stats) StatsResponse {
	return StatsResponse{
		TotalSessions:         s.TotalSessions,
		TotalFocusMinutes:     s.TotalFocusMinutes,
		AverageSessionMinutes: Minutes(s.AverageSessionMinutes),
		LongestSessionMinutes: Minutes(s.LongestSessionMinutes),
		FocusDays:             s.FocusDays,
		CompletedTasks:        s.CompletedTasks,
		ActiveTasks:           s.ActiveTasks,
	}
}

type PingResponse struct {
	Msg string `json:"msg"`
}
