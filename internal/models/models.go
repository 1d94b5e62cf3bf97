package models

type User struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type Project struct {
	ProjectID int64  `json:"project_id"`
	Title     string `json:"title"`
	UserID    int64  `json:"user_id"`
	Color     string `json:"color"`
}

type Task struct {
	TaskID       int64      `json:"task_id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	DateMade     Date       `json:"date_made"`
	DateFinished *Date      `json:"date_finished,omitempty"`
	DueDate      Date       `json:"due_date"`
	DueTime      *TimeOfDay `json:"due_time,omitempty"`
	Importance   *int       `json:"importance,omitempty"`
	ProjectID    *int64     `json:"project_id,omitempty"`
	UserID       int64      `json:"user_id"`
	Finished     bool       `json:"finished"`
}

type Subtask struct {
	SubtaskID    int64   `json:"subtask_id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	DateMade     Date    `json:"date_made"`
	DateFinished *Date   `json:"date_finished,omitempty"`
	TaskID       int64   `json:"task_id"`
}

type Note struct {
	NoteID      int64   `json:"note_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	UserID      int64   `json:"user_id"`
	DateCreated Date    `json:"date_created"`
}
