package postgres

import (
	"context"
	"fmt"

	"planner/internal/models"
	"planner/internal/repository"

	"github.com/jackc/pgx/v5"
)

const taskColumns = `task_id, title, description, date_made, date_finished,
		due_date, due_time, importance, project_id, user_id, finished`

func scanTask(row pgx.Row) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(
		&t.TaskID,
		&t.Title,
		&t.Description,
		&t.DateMade,
		&t.DateFinished,
		&t.DueDate,
		&t.DueTime,
		&t.Importance,
		&t.ProjectID,
		&t.UserID,
		&t.Finished,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Storage) collectTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError("query tasks", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, translateError("scan task", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("query tasks", err)
	}
	return tasks, nil
}

// CreateTask inserts the task and fills in the assigned id and the
// stamped creation date.
func (s *Storage) CreateTask(ctx context.Context, t *models.Task) error {
	query := `INSERT INTO tasks
				(title, description, due_date, due_time, importance, project_id, user_id, finished)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				RETURNING task_id, date_made`

	err := s.pool.QueryRow(ctx, query,
		t.Title,
		t.Description,
		t.DueDate,
		t.DueTime,
		t.Importance,
		t.ProjectID,
		t.UserID,
		t.Finished,
	).Scan(&t.TaskID, &t.DateMade)

	if err != nil {
		return translateError("create task", err)
	}
	return nil
}

func (s *Storage) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE task_id = $1`, taskColumns)

	t, err := scanTask(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError("get task", err)
	}
	return t, nil
}

func (s *Storage) ListTasksByUser(ctx context.Context, userID int64) ([]*models.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE user_id = $1`, taskColumns)
	return s.collectTasks(ctx, query, userID)
}

func (s *Storage) UpdateTask(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	var b updateBuilder
	if v, ok := patch.Title.Get(); ok {
		b.set("title", v)
	}
	if patch.Description.IsSet() {
		if v, ok := patch.Description.Get(); ok {
			b.set("description", v)
		} else {
			b.setNull("description")
		}
	}
	if v, ok := patch.DueDate.Get(); ok {
		b.set("due_date", v)
	}
	if patch.DueTime.IsSet() {
		if v, ok := patch.DueTime.Get(); ok {
			b.set("due_time", v)
		} else {
			b.setNull("due_time")
		}
	}
	if patch.Importance.IsSet() {
		if v, ok := patch.Importance.Get(); ok {
			b.set("importance", v)
		} else {
			b.setNull("importance")
		}
	}
	if patch.ProjectID.IsSet() {
		if v, ok := patch.ProjectID.Get(); ok {
			b.set("project_id", v)
		} else {
			b.setNull("project_id")
		}
	}
	if v, ok := patch.Finished.Get(); ok {
		b.set("finished", v)
	}
	if b.empty() {
		return s.GetTask(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE task_id = $%d RETURNING %s`,
		b.clause(), b.bind(id), taskColumns)

	t, err := scanTask(s.pool.QueryRow(ctx, query, b.args...))
	if err != nil {
		return nil, translateError("update task", err)
	}
	return t, nil
}

// DeleteTask removes the task and, via the cascade, its subtasks.
func (s *Storage) DeleteTask(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1`, id)
	if err != nil {
		return translateError("delete task", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete task: %w", repository.ErrNotFound)
	}
	return nil
}

// MarkTaskComplete sets finished and stamps today's date. Re-marking an
// already finished task just moves date_finished to today.
func (s *Storage) MarkTaskComplete(ctx context.Context, id int64) (*models.Task, error) {
	query := fmt.Sprintf(`UPDATE tasks
				SET finished = TRUE,
					date_finished = CURRENT_DATE
				WHERE task_id = $1
				RETURNING %s`, taskColumns)

	t, err := scanTask(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError("mark task complete", err)
	}
	return t, nil
}

// GetTasksByDateAndStatus returns the tasks matching owner, exact due
// date and finished flag.
func (s *Storage) GetTasksByDateAndStatus(ctx context.Context, userID int64, dueDate models.Date, finished bool) ([]*models.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks
				WHERE user_id = $1 AND due_date = $2 AND finished = $3`, taskColumns)
	return s.collectTasks(ctx, query, userID, dueDate, finished)
}

// GetTasksInRange returns the owner's tasks due within [start, end],
// inclusive on both ends.
func (s *Storage) GetTasksInRange(ctx context.Context, userID int64, start, end models.Date) ([]*models.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks
				WHERE user_id = $1 AND due_date BETWEEN $2 AND $3`, taskColumns)
	return s.collectTasks(ctx, query, userID, start, end)
}

// PurgeOldTasks deletes the owner's tasks created strictly before the
// cutoff and reports how many went.
func (s *Storage) PurgeOldTasks(ctx context.Context, userID int64, cutoff models.Date) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM tasks WHERE user_id = $1 AND date_made < $2`, userID, cutoff)
	if err != nil {
		return 0, translateError("purge tasks", err)
	}
	return tag.RowsAffected(), nil
}
