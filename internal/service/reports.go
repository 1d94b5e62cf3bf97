package service

import (
	"context"

	"planner/internal/models"
)

type ReportService struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) ReportService {
	return ReportService{repo: repo}
}

func (s *ReportService) TaskCompletionReport(ctx context.Context, filter models.CompletionFilter) (*models.CompletionReport, error) {
	if filter.EndDate.Before(filter.StartDate.Time) {
		return nil, NewValidationError("end_date", "must not precede start_date")
	}
	return s.repo.TaskCompletionReport(ctx, filter)
}

func (s *ReportService) NoteActivityReport(ctx context.Context, userID int64, start, end models.Date) (*models.NoteActivityReport, error) {
	if end.Before(start.Time) {
		return nil, NewValidationError("end_date", "must not precede start_date")
	}
	return s.repo.NoteActivityReport(ctx, userID, start, end)
}
