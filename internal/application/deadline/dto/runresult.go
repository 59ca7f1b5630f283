package dto

import "time"

// ProjectResult summarizes one project whose deadline matched a reminder day.
type ProjectResult struct {
	Slug              string
	DaysLeft          int
	IncompleteLocales int
	Contributors      int
	Sent              int
}

// RunResult summarizes one deadline notification pass.
type RunResult struct {
	RunID             string
	Date              string
	ProjectsScanned   int
	ProjectsMatched   int
	NotificationsSent int
	SkippedByPolicy   int
	SkippedDuplicates int
	Projects          []ProjectResult
	StartedAt         time.Time
	FinishedAt        time.Time
}

func (r *RunResult) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
