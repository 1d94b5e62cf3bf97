package service

import (
	"context"
	"errors"

	"planner/internal/logger"
	"planner/internal/models"
	"planner/internal/repository"

	"go.uber.org/zap"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return UserService{repo: repo}
}

func (s *UserService) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	if name == "" {
		return nil, NewValidationError("name", "must not be empty")
	}
	if email == "" {
		return nil, NewValidationError("email", "must not be empty")
	}

	user := &models.User{Name: name, Email: email}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			logger.Warn("Service: duplicate email on user create", zap.String("email", email))
			return nil, NewUniqueViolation("email", email)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("user", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	if patch.Name.IsNull() {
		return nil, NewValidationError("name", "must not be null")
	}
	if patch.Email.IsNull() {
		return nil, NewValidationError("email", "must not be null")
	}

	user, err := s.repo.UpdateUser(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, NewNotFound("user", id)
		case errors.Is(err, repository.ErrUniqueViolation):
			email, _ := patch.Email.Get()
			return nil, NewUniqueViolation("email", email)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFound("user", id)
		}
		return err
	}
	logger.Info("Service: user deleted with owned entities", zap.Int64("user_id", id))
	return nil
}
