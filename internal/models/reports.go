package models

// CompletionFilter parameterizes the task completion report. StartDate
// and EndDate are always applied; Finished and MinImportance are
// optional predicates (MinImportance is a lower bound, not an exact
// match).
type CompletionFilter struct {
	UserID        int64
	StartDate     Date
	EndDate       Date
	Finished      *bool
	MinImportance *int
}

// CompletionReport aggregates tasks matching a CompletionFilter. Every
// field is exactly zero when no tasks match; "no data" never surfaces
// as null.
type CompletionReport struct {
	TotalTasks        int64   `json:"total_tasks"`
	CompletedTasks    int64   `json:"completed_tasks"`
	AvgCompletionDays float64 `json:"avg_completion_days"`
	AvgImportance     float64 `json:"avg_importance"`
	CompletionRate    float64 `json:"completion_rate"`
}

// NoteActivityReport counts notes created within a date interval,
// inclusive on both ends.
type NoteActivityReport struct {
	TotalNotes int64 `json:"total_notes"`
}
