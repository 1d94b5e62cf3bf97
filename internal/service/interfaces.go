package service

import (
	"context"

	"planner/internal/models"
)

type UserRepository interface {
	CreateUser(context.Context, *models.User) error
	GetUser(context.Context, int64) (*models.User, error)
	ListUsers(context.Context) ([]*models.User, error)
	UpdateUser(context.Context, int64, models.UserPatch) (*models.User, error)
	DeleteUser(context.Context, int64) error
}

type ProjectRepository interface {
	CreateProject(context.Context, *models.Project) error
	GetProject(context.Context, int64) (*models.Project, error)
	ListProjectsByUser(context.Context, int64) ([]*models.Project, error)
	UpdateProject(context.Context, int64, models.ProjectPatch) (*models.Project, error)
	DeleteProject(context.Context, int64) error
}

type TaskRepository interface {
	CreateTask(context.Context, *models.Task) error
	GetTask(context.Context, int64) (*models.Task, error)
	ListTasksByUser(context.Context, int64) ([]*models.Task, error)
	UpdateTask(context.Context, int64, models.TaskPatch) (*models.Task, error)
	DeleteTask(context.Context, int64) error
	MarkTaskComplete(context.Context, int64) (*models.Task, error)
	GetTasksByDateAndStatus(context.Context, int64, models.Date, bool) ([]*models.Task, error)
	GetTasksInRange(context.Context, int64, models.Date, models.Date) ([]*models.Task, error)
	PurgeOldTasks(context.Context, int64, models.Date) (int64, error)
}

type SubtaskRepository interface {
	CreateSubtask(context.Context, *models.Subtask) error
	GetSubtask(context.Context, int64) (*models.Subtask, error)
	ListSubtasksByTask(context.Context, int64) ([]*models.Subtask, error)
	UpdateSubtask(context.Context, int64, models.SubtaskPatch) (*models.Subtask, error)
	DeleteSubtask(context.Context, int64) error
}

type NoteRepository interface {
	CreateNote(context.Context, *models.Note) error
	GetNote(context.Context, int64) (*models.Note, error)
	ListNotesByUser(context.Context, int64) ([]*models.Note, error)
	UpdateNote(context.Context, int64, models.NotePatch) (*models.Note, error)
	DeleteNote(context.Context, int64) error
	PurgeOldNotes(context.Context, int64, models.Date) (int64, error)
}

type ReportRepository interface {
	TaskCompletionReport(context.Context, models.CompletionFilter) (*models.CompletionReport, error)
	NoteActivityReport(context.Context, int64, models.Date, models.Date) (*models.NoteActivityReport, error)
}
