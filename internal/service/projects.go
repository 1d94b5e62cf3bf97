package service

import (
	"context"
	"errors"

	"planner/internal/models"
	"planner/internal/repository"
)

type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) ProjectService {
	return ProjectService{repo: repo}
}

func (s *ProjectService) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	if project.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if project.UserID <= 0 {
		return nil, NewValidationError("user_id", "must be a positive id")
	}

	if err := s.repo.CreateProject(ctx, project); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, NewInvalidReference("user_id", project.UserID)
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("project", id)
		}
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) ListProjectsByUser(ctx context.Context, userID int64) ([]*models.Project, error) {
	return s.repo.ListProjectsByUser(ctx, userID)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	if patch.Title.IsNull() {
		return nil, NewValidationError("title", "must not be null")
	}
	if patch.Color.IsNull() {
		return nil, NewValidationError("color", "must not be null")
	}

	project, err := s.repo.UpdateProject(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("project", id)
		}
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project together with its tasks; tasks'
// subtasks follow transitively.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFound("project", id)
		}
		return err
	}
	return nil
}
