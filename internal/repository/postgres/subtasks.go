package postgres

import (
	"context"
	"fmt"

	"planner/internal/models"
	"planner/internal/repository"

	"github.com/jackc/pgx/v5"
)

const subtaskColumns = "subtask_id, title, description, date_made, date_finished, task_id"

func scanSubtask(row pgx.Row) (*models.Subtask, error) {
	st := &models.Subtask{}
	err := row.Scan(
		&st.SubtaskID,
		&st.Title,
		&st.Description,
		&st.DateMade,
		&st.DateFinished,
		&st.TaskID,
	)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Storage) CreateSubtask(ctx context.Context, st *models.Subtask) error {
	query := `INSERT INTO subtasks (title, description, task_id)
				VALUES ($1, $2, $3)
				RETURNING subtask_id, date_made`

	err := s.pool.QueryRow(ctx, query, st.Title, st.Description, st.TaskID).
		Scan(&st.SubtaskID, &st.DateMade)
	if err != nil {
		return translateError("create subtask", err)
	}
	return nil
}

func (s *Storage) GetSubtask(ctx context.Context, id int64) (*models.Subtask, error) {
	query := fmt.Sprintf(`SELECT %s FROM subtasks WHERE subtask_id = $1`, subtaskColumns)

	st, err := scanSubtask(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError("get subtask", err)
	}
	return st, nil
}

func (s *Storage) ListSubtasksByTask(ctx context.Context, taskID int64) ([]*models.Subtask, error) {
	query := fmt.Sprintf(`SELECT %s FROM subtasks WHERE task_id = $1`, subtaskColumns)

	rows, err := s.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, translateError("list subtasks", err)
	}
	defer rows.Close()

	subtasks := []*models.Subtask{}
	for rows.Next() {
		st, err := scanSubtask(rows)
		if err != nil {
			return nil, translateError("scan subtask", err)
		}
		subtasks = append(subtasks, st)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list subtasks", err)
	}
	return subtasks, nil
}

func (s *Storage) UpdateSubtask(ctx context.Context, id int64, patch models.SubtaskPatch) (*models.Subtask, error) {
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
	if patch.DateFinished.IsSet() {
		if v, ok := patch.DateFinished.Get(); ok {
			b.set("date_finished", v)
		} else {
			b.setNull("date_finished")
		}
	}
	if b.empty() {
		return s.GetSubtask(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE subtasks SET %s WHERE subtask_id = $%d RETURNING %s`,
		b.clause(), b.bind(id), subtaskColumns)

	st, err := scanSubtask(s.pool.QueryRow(ctx, query, b.args...))
	if err != nil {
		return nil, translateError("update subtask", err)
	}
	return st, nil
}

func (s *Storage) DeleteSubtask(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM subtasks WHERE subtask_id = $1`, id)
	if err != nil {
		return translateError("delete subtask", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete subtask: %w", repository.ErrNotFound)
	}
	return nil
}
