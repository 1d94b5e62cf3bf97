package postgres

import (
	"context"
	"fmt"

	"planner/internal/models"
	"planner/internal/repository"

	"github.com/jackc/pgx/v5"
)

const projectColumns = "project_id, title, user_id, color"

func scanProject(row pgx.Row) (*models.Project, error) {
	p := &models.Project{}
	if err := row.Scan(&p.ProjectID, &p.Title, &p.UserID, &p.Color); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProject inserts the project and fills in the assigned id and
// the stamped default color when none was supplied.
func (s *Storage) CreateProject(ctx context.Context, p *models.Project) error {
	if p.Color == "" {
		query := `INSERT INTO projects (title, user_id)
					VALUES ($1, $2)
					RETURNING project_id, color`
		if err := s.pool.QueryRow(ctx, query, p.Title, p.UserID).Scan(&p.ProjectID, &p.Color); err != nil {
			return translateError("create project", err)
		}
		return nil
	}

	query := `INSERT INTO projects (title, user_id, color)
				VALUES ($1, $2, $3)
				RETURNING project_id`
	if err := s.pool.QueryRow(ctx, query, p.Title, p.UserID, p.Color).Scan(&p.ProjectID); err != nil {
		return translateError("create project", err)
	}
	return nil
}

func (s *Storage) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE project_id = $1`, projectColumns)

	p, err := scanProject(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError("get project", err)
	}
	return p, nil
}

func (s *Storage) ListProjectsByUser(ctx context.Context, userID int64) ([]*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE user_id = $1`, projectColumns)

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError("list projects", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, translateError("scan project", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list projects", err)
	}
	return projects, nil
}

func (s *Storage) UpdateProject(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	var b updateBuilder
	if v, ok := patch.Title.Get(); ok {
		b.set("title", v)
	}
	if v, ok := patch.Color.Get(); ok {
		b.set("color", v)
	}
	if b.empty() {
		return s.GetProject(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE projects SET %s WHERE project_id = $%d RETURNING %s`,
		b.clause(), b.bind(id), projectColumns)

	p, err := scanProject(s.pool.QueryRow(ctx, query, b.args...))
	if err != nil {
		return nil, translateError("update project", err)
	}
	return p, nil
}

// DeleteProject removes the project; its tasks (and their subtasks) go
// with it via the cascade.
func (s *Storage) DeleteProject(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1`, id)
	if err != nil {
		return translateError("delete project", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete project: %w", repository.ErrNotFound)
	}
	return nil
}
