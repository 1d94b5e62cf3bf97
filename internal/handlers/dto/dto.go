// Package dto holds the request bodies the HTTP layer decodes. Partial
// update bodies decode straight into the models patch types; responses
// are the entities themselves.
package dto

import "planner/internal/models"

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateProjectRequest struct {
	Title  string `json:"title"`
	UserID int64  `json:"user_id"`
	Color  string `json:"color"`
}

type CreateTaskRequest struct {
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	DueDate     models.Date        `json:"due_date"`
	DueTime     *models.TimeOfDay  `json:"due_time"`
	Importance  *int               `json:"importance"`
	ProjectID   *int64             `json:"project_id"`
	UserID      int64              `json:"user_id"`
	Finished    bool               `json:"finished"`
}

func (r CreateTaskRequest) ToTask() *models.Task {
	return &models.Task{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		DueTime:     r.DueTime,
		Importance:  r.Importance,
		ProjectID:   r.ProjectID,
		UserID:      r.UserID,
		Finished:    r.Finished,
	}
}

type CreateSubtaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	TaskID      int64   `json:"task_id"`
}

type CreateNoteRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	UserID      int64   `json:"user_id"`
}

type CleanupResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}
