package postgres

import (
	"context"
	"fmt"

	"planner/internal/models"
	"planner/internal/repository"

	"github.com/jackc/pgx/v5"
)

const userColumns = "user_id, name, email"

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	if err := row.Scan(&u.UserID, &u.Name, &u.Email); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (name, email)
				VALUES ($1, $2)
				RETURNING user_id`

	if err := s.pool.QueryRow(ctx, query, u.Name, u.Email).Scan(&u.UserID); err != nil {
		return translateError("create user", err)
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1`, userColumns)

	u, err := scanUser(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError("get user", err)
	}
	return u, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users`, userColumns)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, translateError("list users", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translateError("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list users", err)
	}
	return users, nil
}

func (s *Storage) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	var b updateBuilder
	if v, ok := patch.Name.Get(); ok {
		b.set("name", v)
	}
	if v, ok := patch.Email.Get(); ok {
		b.set("email", v)
	}
	if b.empty() {
		return s.GetUser(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE user_id = $%d RETURNING %s`,
		b.clause(), b.bind(id), userColumns)

	u, err := scanUser(s.pool.QueryRow(ctx, query, b.args...))
	if err != nil {
		return nil, translateError("update user", err)
	}
	return u, nil
}

// DeleteUser removes the user; the schema cascades the delete to the
// user's projects, tasks, subtasks and notes.
func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return translateError("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete user: %w", repository.ErrNotFound)
	}
	return nil
}
