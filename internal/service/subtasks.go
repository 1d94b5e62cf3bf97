package service

import (
	"context"
	"errors"

	"planner/internal/models"
	"planner/internal/repository"
)

type SubtaskService struct {
	repo SubtaskRepository
}

func NewSubtaskService(repo SubtaskRepository) SubtaskService {
	return SubtaskService{repo: repo}
}

func (s *SubtaskService) CreateSubtask(ctx context.Context, subtask *models.Subtask) (*models.Subtask, error) {
	if subtask.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if subtask.TaskID <= 0 {
		return nil, NewValidationError("task_id", "must be a positive id")
	}

	if err := s.repo.CreateSubtask(ctx, subtask); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, NewInvalidReference("task_id", subtask.TaskID)
		}
		return nil, err
	}
	return subtask, nil
}

func (s *SubtaskService) GetSubtask(ctx context.Context, id int64) (*models.Subtask, error) {
	subtask, err := s.repo.GetSubtask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("subtask", id)
		}
		return nil, err
	}
	return subtask, nil
}

func (s *SubtaskService) ListSubtasksByTask(ctx context.Context, taskID int64) ([]*models.Subtask, error) {
	return s.repo.ListSubtasksByTask(ctx, taskID)
}

func (s *SubtaskService) UpdateSubtask(ctx context.Context, id int64, patch models.SubtaskPatch) (*models.Subtask, error) {
	if patch.Title.IsNull() {
		return nil, NewValidationError("title", "must not be null")
	}

	subtask, err := s.repo.UpdateSubtask(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("subtask", id)
		}
		return nil, err
	}
	return subtask, nil
}

func (s *SubtaskService) DeleteSubtask(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSubtask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFound("subtask", id)
		}
		return err
	}
	return nil
}
