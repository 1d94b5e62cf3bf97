package service

import (
	"context"
	"errors"

	"planner/internal/logger"
	"planner/internal/models"
	"planner/internal/repository"

	"go.uber.org/zap"
)

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) TaskService {
	return TaskService{repo: repo}
}

func (s *TaskService) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if task.DueDate.IsZero() {
		return nil, NewValidationError("due_date", "must be set")
	}
	if task.UserID <= 0 {
		return nil, NewValidationError("user_id", "must be a positive id")
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			// either owner can be missing; report the optional one only
			// when it was supplied
			if task.ProjectID != nil {
				return nil, NewInvalidReference("project_id", *task.ProjectID)
			}
			return nil, NewInvalidReference("user_id", task.UserID)
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("task", id)
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListTasksByUser(ctx context.Context, userID int64) ([]*models.Task, error) {
	return s.repo.ListTasksByUser(ctx, userID)
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	if patch.Title.IsNull() {
		return nil, NewValidationError("title", "must not be null")
	}
	if patch.DueDate.IsNull() {
		return nil, NewValidationError("due_date", "must not be null")
	}
	if patch.Finished.IsNull() {
		return nil, NewValidationError("finished", "must not be null")
	}

	task, err := s.repo.UpdateTask(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, NewNotFound("task", id)
		case errors.Is(err, repository.ErrForeignKeyViolation):
			projectID, _ := patch.ProjectID.Get()
			return nil, NewInvalidReference("project_id", projectID)
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFound("task", id)
		}
		return err
	}
	return nil
}

// MarkTaskComplete is idempotent: completing twice leaves the task
// finished with date_finished stamped to the later day.
func (s *TaskService) MarkTaskComplete(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.repo.MarkTaskComplete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("task", id)
		}
		return nil, err
	}
	logger.Info("Service: task completed", zap.Int64("task_id", id))
	return task, nil
}

func (s *TaskService) GetTasksByDateAndStatus(ctx context.Context, userID int64, dueDate models.Date, finished bool) ([]*models.Task, error) {
	return s.repo.GetTasksByDateAndStatus(ctx, userID, dueDate, finished)
}

func (s *TaskService) GetTasksInRange(ctx context.Context, userID int64, start, end models.Date) ([]*models.Task, error) {
	if end.Before(start.Time) {
		return nil, NewValidationError("end", "must not precede start")
	}
	return s.repo.GetTasksInRange(ctx, userID, start, end)
}

// PurgeOldTasks deletes the owner's tasks made strictly before
// today - days. A task made exactly days ago survives.
func (s *TaskService) PurgeOldTasks(ctx context.Context, userID int64, days int) (int64, error) {
	if days < 0 {
		return 0, NewValidationError("days", "must not be negative")
	}

	cutoff := models.Today().AddDays(-days)
	deleted, err := s.repo.PurgeOldTasks(ctx, userID, cutoff)
	if err != nil {
		return 0, err
	}
	logger.Info("Service: purged old tasks",
		zap.Int64("user_id", userID),
		zap.Int("days", days),
		zap.Int64("deleted", deleted))
	return deleted, nil
}
