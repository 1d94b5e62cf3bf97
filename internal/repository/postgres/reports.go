package postgres

import (
	"context"
	"fmt"

	"planner/internal/models"
)

// TaskCompletionReport computes completion statistics over the owner's
// tasks due within the filter interval. Predicates are assembled
// dynamically so the two optional filters compose in any combination.
//
// Aggregate outputs are coalesced to zero: COUNT over an empty set is 0
// but SUM and AVG are NULL, and the report contract is numbers, never
// nulls. Importance is coalesced to 0 per row before averaging, so an
// unset priority weighs the average down instead of being skipped.
// Completion latency only averages finished tasks that carry both
// dates; date subtraction yields whole days.
func (s *Storage) TaskCompletionReport(ctx context.Context, filter models.CompletionFilter) (*models.CompletionReport, error) {
	var p predicates
	p.add("user_id", "=", filter.UserID)
	p.between("due_date", filter.StartDate, filter.EndDate)
	if filter.Finished != nil {
		p.add("finished", "=", *filter.Finished)
	}
	if filter.MinImportance != nil {
		p.add("importance", ">=", *filter.MinImportance)
	}

	query := fmt.Sprintf(`SELECT
				COUNT(*) AS total_tasks,
				COALESCE(SUM(CASE WHEN finished THEN 1 ELSE 0 END), 0) AS completed_tasks,
				COALESCE(AVG(CASE WHEN finished AND date_finished IS NOT NULL AND date_made IS NOT NULL
					THEN (date_finished - date_made)::float8 END), 0) AS avg_completion_days,
				COALESCE(AVG(COALESCE(importance, 0)), 0)::float8 AS avg_importance,
				CASE WHEN COUNT(*) > 0
					THEN ROUND(SUM(CASE WHEN finished THEN 1 ELSE 0 END)::numeric / COUNT(*), 2)::float8
					ELSE 0 END AS completion_rate
			FROM tasks
			WHERE %s`, p.clause())

	report := &models.CompletionReport{}
	err := s.pool.QueryRow(ctx, query, p.args...).Scan(
		&report.TotalTasks,
		&report.CompletedTasks,
		&report.AvgCompletionDays,
		&report.AvgImportance,
		&report.CompletionRate,
	)
	if err != nil {
		return nil, translateError("task completion report", err)
	}
	return report, nil
}

// NoteActivityReport counts the owner's notes created within
// [start, end], inclusive on both ends.
func (s *Storage) NoteActivityReport(ctx context.Context, userID int64, start, end models.Date) (*models.NoteActivityReport, error) {
	query := `SELECT COUNT(*) AS total_notes
			FROM notes
			WHERE user_id = $1 AND date_created >= $2 AND date_created <= $3`

	report := &models.NoteActivityReport{}
	if err := s.pool.QueryRow(ctx, query, userID, start, end).Scan(&report.TotalNotes); err != nil {
		return nil, translateError("note activity report", err)
	}
	return report, nil
}
