package domain

type Stats struct {
	TotalSessions         int
	TotalFocusMinutes     int
	AverageSessionMinutes float64
	LongestSessionMinutes float64
	FocusDays             int
	CompletedTasks        int
	ActiveTasks           int
}
