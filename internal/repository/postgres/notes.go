package postgres

import (
	"context"
	"fmt"

	"planner/internal/models"
	"planner/internal/repository"

	"github.com/jackc/pgx/v5"
)

const noteColumns = "note_id, title, description, user_id, date_created"

func scanNote(row pgx.Row) (*models.Note, error) {
	n := &models.Note{}
	err := row.Scan(&n.NoteID, &n.Title, &n.Description, &n.UserID, &n.DateCreated)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Storage) CreateNote(ctx context.Context, n *models.Note) error {
	query := `INSERT INTO notes (title, description, user_id)
				VALUES ($1, $2, $3)
				RETURNING note_id, date_created`

	err := s.pool.QueryRow(ctx, query, n.Title, n.Description, n.UserID).
		Scan(&n.NoteID, &n.DateCreated)
	if err != nil {
		return translateError("create note", err)
	}
	return nil
}

func (s *Storage) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	query := fmt.Sprintf(`SELECT %s FROM notes WHERE note_id = $1`, noteColumns)

	n, err := scanNote(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError("get note", err)
	}
	return n, nil
}

func (s *Storage) ListNotesByUser(ctx context.Context, userID int64) ([]*models.Note, error) {
	query := fmt.Sprintf(`SELECT %s FROM notes WHERE user_id = $1`, noteColumns)

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError("list notes", err)
	}
	defer rows.Close()

	notes := []*models.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, translateError("scan note", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list notes", err)
	}
	return notes, nil
}

func (s *Storage) UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (*models.Note, error) {
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
	if b.empty() {
		return s.GetNote(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE notes SET %s WHERE note_id = $%d RETURNING %s`,
		b.clause(), b.bind(id), noteColumns)

	n, err := scanNote(s.pool.QueryRow(ctx, query, b.args...))
	if err != nil {
		return nil, translateError("update note", err)
	}
	return n, nil
}

func (s *Storage) DeleteNote(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM notes WHERE note_id = $1`, id)
	if err != nil {
		return translateError("delete note", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete note: %w", repository.ErrNotFound)
	}
	return nil
}

// PurgeOldNotes deletes the owner's notes created strictly before the
// cutoff and reports how many went.
func (s *Storage) PurgeOldNotes(ctx context.Context, userID int64, cutoff models.Date) (int64, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM notes WHERE user_id = $1 AND date_created < $2`, userID, cutoff)
	if err != nil {
		return 0, translateError("purge notes", err)
	}
	return tag.RowsAffected(), nil
}
