package service

import (
	"context"
	"errors"

	"planner/internal/logger"
	"planner/internal/models"
	"planner/internal/repository"

	"go.uber.org/zap"
)

type NoteService struct {
	repo NoteRepository
}

func NewNoteService(repo NoteRepository) NoteService {
	return NoteService{repo: repo}
}

func (s *NoteService) CreateNote(ctx context.Context, note *models.Note) (*models.Note, error) {
	if note.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if note.UserID <= 0 {
		return nil, NewValidationError("user_id", "must be a positive id")
	}

	if err := s.repo.CreateNote(ctx, note); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, NewInvalidReference("user_id", note.UserID)
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	note, err := s.repo.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("note", id)
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) ListNotesByUser(ctx context.Context, userID int64) ([]*models.Note, error) {
	return s.repo.ListNotesByUser(ctx, userID)
}

func (s *NoteService) UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (*models.Note, error) {
	if patch.Title.IsNull() {
		return nil, NewValidationError("title", "must not be null")
	}

	note, err := s.repo.UpdateNote(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFound("note", id)
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, id int64) error {
	if err := s.repo.DeleteNote(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFound("note", id)
		}
		return err
	}
	return nil
}

// PurgeOldNotes deletes the owner's notes created strictly before
// today - days.
func (s *NoteService) PurgeOldNotes(ctx context.Context, userID int64, days int) (int64, error) {
	if days < 0 {
		return 0, NewValidationError("days", "must not be negative")
	}

	cutoff := models.Today().AddDays(-days)
	deleted, err := s.repo.PurgeOldNotes(ctx, userID, cutoff)
	if err != nil {
		return 0, err
	}
	logger.Info("Service: purged old notes",
		zap.Int64("user_id", userID),
		zap.Int("days", days),
		zap.Int64("deleted", deleted))
	return deleted, nil
}
